package shader

import (
	"fmt"
	"io/fs"
	"path"

	"curve-viewer/internal/logging"
)

// Dir is the directory shader text is requested from.
const Dir = "Shaders"

// Stage identifies a programmable pipeline stage
type Stage int

const (
	StageVertex Stage = iota
	StageGeometry
	StageFragment
	StageCount
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageGeometry:
		return "geometry"
	case StageFragment:
		return "fragment"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Ext returns the file extension used for the stage's source text.
func (s Stage) Ext() string {
	switch s {
	case StageVertex:
		return ".vert"
	case StageGeometry:
		return ".geom"
	case StageFragment:
		return ".frag"
	}
	return ""
}

// Path returns the conventional location of a stage's source, e.g.
// Shaders/bezier.geom.
func Path(name string, stage Stage) string {
	return path.Join(Dir, name+stage.Ext())
}

// Loader supplies shader source text.
type Loader interface {
	Load(stage Stage, path string) (string, error)
}

// FSLoader reads shader text from a file system.
type FSLoader struct {
	FS fs.FS
}

func (l FSLoader) Load(stage Stage, p string) (string, error) {
	src, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return "", fmt.Errorf("could not read %s shader: %w", stage, err)
	}
	return string(src), nil
}

// Program is the set of stage sources making up one shader program. A stage
// whose text could not be loaded is listed in Missing and has no source.
type Program struct {
	Name    string
	Sources [StageCount]string
	present [StageCount]bool
	Missing []Stage
}

// Has reports whether the program carries source for the stage.
func (p *Program) Has(stage Stage) bool {
	return stage >= 0 && stage < StageCount && p.present[stage]
}

// Stages returns the stages with source, in pipeline order.
func (p *Program) Stages() []Stage {
	var out []Stage
	for s := StageVertex; s < StageCount; s++ {
		if p.present[s] {
			out = append(out, s)
		}
	}
	return out
}

// Degraded reports whether a requested stage failed to load.
func (p *Program) Degraded() bool {
	return len(p.Missing) > 0
}

// LoadProgram requests every listed stage of the named program. A failed
// stage is logged and left out; the partial program is still returned so the
// caller renders incorrectly instead of aborting.
func LoadProgram(l Loader, name string, stages ...Stage) *Program {
	p := &Program{Name: name}
	for _, stage := range stages {
		path := Path(name, stage)
		src, err := l.Load(stage, path)
		if err != nil {
			logging.Logger().Warn("shader load failure",
				"program", name, "stage", stage.String(), "path", path, "err", err)
			p.Missing = append(p.Missing, stage)
			continue
		}
		p.Sources[stage] = src
		p.present[stage] = true
	}
	return p
}
