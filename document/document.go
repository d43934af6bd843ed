// Package document reads drawing documents: YAML files describing paths
// of line and arc segments, and CSV point lists imported as polylines.
package document

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"

	"github.com/draftcad/draft"
	"github.com/draftcad/draft/path"
)

// Drawing is a decoded drawing document.
type Drawing struct {
	Name  string     `yaml:"name"`
	Paths []PathSpec `yaml:"paths"`
}

// PathSpec describes one path as an ordered list of segments.
type PathSpec struct {
	Segments []SegmentSpec `yaml:"segments"`
}

// PointSpec is a 2D coordinate pair.
type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p PointSpec) vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// SegmentSpec describes a single segment. Kind selects which fields are
// meaningful: "line" uses origin and end, "arc" uses center, radius and
// the angles in degrees.
type SegmentSpec struct {
	Kind       string     `yaml:"kind"`
	Origin     *PointSpec `yaml:"origin,omitempty"`
	End        *PointSpec `yaml:"end,omitempty"`
	Center     *PointSpec `yaml:"center,omitempty"`
	Radius     float64    `yaml:"radius,omitempty"`
	StartAngle float64    `yaml:"start_angle,omitempty"`
	EndAngle   float64    `yaml:"end_angle,omitempty"`
}

// Decode reads a YAML drawing document.
func Decode(r io.Reader) (*Drawing, error) {
	d := &Drawing{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(d); err != nil {
		return nil, fmt.Errorf("decoding drawing: %w", err)
	}
	return d, nil
}

// Load reads a YAML drawing document from a file.
func Load(name string) (*Drawing, error) {
	fp, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Decode(fp)
}

// BuildPaths converts the document's path specs into validated paths.
func (d *Drawing) BuildPaths() ([]path.Path, error) {
	paths := make([]path.Path, 0, len(d.Paths))
	for i, ps := range d.Paths {
		segs := make([]path.Segment, 0, len(ps.Segments))
		for j, ss := range ps.Segments {
			seg, err := ss.segment()
			if err != nil {
				return nil, fmt.Errorf("path %d segment %d: %w", i, j, err)
			}
			segs = append(segs, seg)
		}
		p, err := path.New(segs...)
		if err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func (s SegmentSpec) segment() (path.Segment, error) {
	switch s.Kind {
	case "line":
		if s.Origin == nil || s.End == nil {
			return nil, fmt.Errorf("line needs origin and end")
		}
		return draft.Line{Origin: s.Origin.vec(), End: s.End.vec()}, nil
	case "arc":
		if s.Center == nil {
			return nil, fmt.Errorf("arc needs a center")
		}
		return draft.Arc{
			Center: s.Center.vec(),
			Radius: s.Radius,
			Start:  s.StartAngle,
			End:    s.EndAngle,
		}, nil
	}
	return nil, fmt.Errorf("unknown segment kind %q", s.Kind)
}
