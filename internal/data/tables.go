// Package data holds the compiled-in curve tables.
package data

import "github.com/go-gl/mathgl/mgl32"

// PolygonPositions outlines the filled sample polygon.
var PolygonPositions = []mgl32.Vec3{
	{0, 0, 0},
	{0, 0, 1},
	{1, 0, 1},
	{1, 0, 0},
	{1, 1, 0},
	{0.5, 5, 0},
}

var PolygonColors = []mgl32.Vec4{
	{0.1, 0.9, 0.1, 1},
	{0.2, 0.1, 0.9, 1},
	{0.7, 0.9, 0.1, 1},
	{0.9, 0.2, 0.9, 1},
	{0.9, 0.2, 0.9, 1},
	{0.9, 0.9, 0.1, 1},
}

// BezierPositions holds three cubic segments as groups of four control points.
var BezierPositions = []mgl32.Vec3{
	{0, 0, 0},
	{0, 0, 1},
	{1, 0, 1},
	{1, 0, 0},

	{1, 0, 0},
	{1, 0, -1},
	{2, 0, -1},
	{2, 0, 0},

	{2, 0, 0},
	{2, 3, 0},
	{2, 3, 1},
	{2, 3, 2},
}

var BezierColors = []mgl32.Vec4{
	{0.1, 0.9, 0.1, 1},
	{0.2, 0.1, 0.9, 1},
	{0.7, 0.9, 0.1, 1},
	{0.9, 0.2, 0.9, 1},

	{0.9, 0.2, 0.9, 1},
	{0.9, 0.9, 0.1, 1},
	{0.7, 0.1, 0.9, 1},
	{0.2, 0.9, 0.1, 1},

	{0.0, 0.0, 0.0, 1},
	{0.25, 0.25, 0.25, 1},
	{0.5, 0.5, 0.5, 1},
	{1.0, 1.0, 1.0, 1},
}

const polylineY = -0.5

// PolylinePositions is a path expanded into adjacency groups: each group is
// (previous, start, end, next).
var PolylinePositions = []mgl32.Vec3{
	{0, polylineY, 0},
	{0, polylineY, 1},
	{1, polylineY, 1},
	{1, polylineY, 0},

	{0, polylineY, 1},
	{1, polylineY, 1},
	{1, polylineY, 0},
	{1, polylineY, 0},

	{1, polylineY, 1},
	{1, polylineY, 0},
	{1, polylineY, 0},
	{1, polylineY, -1},

	{1, polylineY, 0},
	{1, polylineY, 0},
	{1, polylineY, -1},
	{2, polylineY, -1},

	{1, polylineY, 0},
	{1, polylineY, -1},
	{2, polylineY, -1},
	{2, polylineY, 0},
}

var PolylineColors = []mgl32.Vec4{
	{0.1, 0.9, 0.1, 1},
	{0.2, 0.1, 0.9, 1},
	{0.7, 0.9, 0.1, 1},
	{0.9, 0.2, 0.9, 1},

	{0.2, 0.1, 0.9, 1},
	{0.7, 0.9, 0.1, 1},
	{0.9, 0.2, 0.9, 1},
	{0.9, 0.2, 0.9, 1},

	{0.7, 0.9, 0.1, 1},
	{0.9, 0.2, 0.9, 1},
	{0.9, 0.2, 0.9, 1},
	{0.9, 0.9, 0.1, 1},

	{0.9, 0.2, 0.9, 1},
	{0.9, 0.2, 0.9, 1},
	{0.9, 0.9, 0.1, 1},
	{0.7, 0.1, 0.9, 1},

	{0.9, 0.2, 0.9, 1},
	{0.9, 0.9, 0.1, 1},
	{0.7, 0.1, 0.9, 1},
	{0.2, 0.9, 0.1, 1},
}

// Adjacency expands a polyline into adjacency groups. End points are
// repeated as their own neighbours.
func Adjacency(path []mgl32.Vec3) []mgl32.Vec3 {
	if len(path) < 2 {
		return nil
	}
	at := func(i int) mgl32.Vec3 {
		if i < 0 {
			return path[0]
		}
		if i >= len(path) {
			return path[len(path)-1]
		}
		return path[i]
	}
	out := make([]mgl32.Vec3, 0, 4*(len(path)-1))
	for i := 0; i < len(path)-1; i++ {
		out = append(out, at(i-1), at(i), at(i+1), at(i+2))
	}
	return out
}

// Table returns the positions and colors for a shader name: "polygon",
// "bezier" or "polyline".
func Table(name string) (positions []mgl32.Vec3, colors []mgl32.Vec4, ok bool) {
	switch name {
	case "polygon":
		return PolygonPositions, PolygonColors, true
	case "bezier":
		return BezierPositions, BezierColors, true
	case "polyline":
		return PolylinePositions, PolylineColors, true
	}
	return nil, nil, false
}
