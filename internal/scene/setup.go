package scene

import (
	"fmt"

	"curve-viewer/internal/config"
	"curve-viewer/internal/data"
	"curve-viewer/internal/shader"
)

// ParseVariant resolves a shader name ("polygon", "bezier", "polyline").
func ParseVariant(name string) (Variant, error) {
	for v, info := range variants {
		if info.name == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// ComposeFromSettings builds one unit per configured variant from the
// compiled-in tables and composes them in the configured order.
func ComposeFromSettings(s *config.Settings, loader shader.Loader) (*Scene, error) {
	b := NewBuilder(loader)
	units := make([]*Unit, 0, len(s.Scene.Units))
	for _, name := range s.Scene.Units {
		v, err := ParseVariant(name)
		if err != nil {
			return nil, err
		}
		positions, colors, ok := data.Table(name)
		if !ok {
			return nil, fmt.Errorf("no vertex table for %q", name)
		}
		u, err := b.Build(v, positions, colors, "", TuningFor(v, s))
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", name, err)
		}
		units = append(units, u)
	}
	return NewComposer(s.FogColor()).Compose(units...), nil
}
