package camera

import "github.com/go-gl/mathgl/mgl32"

// DecomposeLookAt recovers eye, center and up from a view matrix built by a
// look-at construction. The rows of the upper 3x3 block must be mutually
// orthogonal and non-zero, which every look-at matrix satisfies; the inverse
// rotation is then the transpose scaled per row, so no general inversion is
// involved. center is placed distance units along the viewing direction.
func DecomposeLookAt(view mgl32.Mat4, distance float32) (eye, center, up mgl32.Vec3) {
	side := view.Row(0).Vec3()
	up = view.Row(1).Vec3()
	back := view.Row(2).Vec3()
	t := view.Col(3)

	// eye = -R⁻¹t
	eye = side.Mul(t[0] / side.Dot(side)).
		Add(up.Mul(t[1] / up.Dot(up))).
		Add(back.Mul(t[2] / back.Dot(back))).
		Mul(-1)

	up = up.Normalize()
	center = eye.Sub(back.Normalize().Mul(distance))
	return eye, center, up
}
