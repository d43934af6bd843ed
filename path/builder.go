package path

import (
	"github.com/draftcad/draft"
	"github.com/draftcad/draft/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Builder constructs a path by moving a pen. Segments appended with the
// pen are connected by construction; Build revalidates the chain so a
// stray MoveTo in the middle of a path surfaces as an error.
type Builder struct {
	segs []Segment
	pen  r2.Vec
}

// NewBuilder returns a builder with the pen at the origin.
func NewBuilder() *Builder {
	return &Builder{}
}

// MoveTo places the pen without drawing.
func (b *Builder) MoveTo(p r2.Vec) *Builder {
	b.pen = p
	return b
}

// LineTo draws a straight segment from the pen to p.
func (b *Builder) LineTo(p r2.Vec) *Builder {
	b.segs = append(b.segs, draft.Line{Origin: b.pen, End: p})
	b.pen = p
	return b
}

// ArcTo draws a counterclockwise arc about center, from the pen's
// current position around to endAngle degrees. The radius is the pen's
// distance to the center.
func (b *Builder) ArcTo(center r2.Vec, endAngle float64) *Builder {
	a := draft.Arc{
		Center: center,
		Radius: r2.Norm(r2.Sub(b.pen, center)),
		Start:  draft.Line{Origin: center, End: b.pen}.Angle(),
		End:    endAngle,
	}
	b.segs = append(b.segs, a)
	b.pen = a.EndPoint()
	return b
}

// Close draws a straight segment back to the start of the first segment
// unless the pen is already there.
func (b *Builder) Close() *Builder {
	if len(b.segs) == 0 {
		return b
	}
	first := b.segs[0].StartPoint()
	if !d2.EqualWithin(b.pen, first, tolerance) {
		b.LineTo(first)
	}
	return b
}

// Build validates the chain and returns the finished path.
func (b *Builder) Build() (Path, error) {
	return New(b.segs...)
}
