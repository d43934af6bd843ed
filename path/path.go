// Package path assembles lines and arcs into connected 2D paths and
// provides the operations the drafting system layers on top of them:
// tessellation, bounding boxes and whole-path mirroring.
package path

import (
	"fmt"
	"runtime/debug"

	"github.com/draftcad/draft"
	"github.com/draftcad/draft/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	tolerance = 1e-9
	// defaultFacets is the arc subdivision used when computing bounds.
	defaultFacets = 32
)

// Segment is one piece of a path. draft.Line and draft.Arc are the two
// segment kinds.
type Segment interface {
	// StartPoint returns the point where the segment begins.
	StartPoint() r2.Vec
	// EndPoint returns the point where the segment ends.
	EndPoint() r2.Vec
}

// Path is an ordered chain of segments in which every segment starts
// where the previous one ended.
type Path struct {
	segs []Segment
}

type pathErr struct {
	panicObj interface{}
	stack    string
}

func (e *pathErr) Error() string {
	return fmt.Sprintf("path: %v\n%s", e.panicObj, e.stack)
}

// New returns a path made from a chain of segments. It returns an error
// if consecutive segments are not connected end to start, or if a
// segment is neither a draft.Line nor a draft.Arc.
func New(segs ...Segment) (p Path, err error) {
	defer func() {
		if a := recover(); a != nil {
			err = &pathErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return mustNew(segs), err
}

// mustNew builds a path, panicking on a broken chain.
func mustNew(segs []Segment) Path {
	for i, s := range segs {
		switch s.(type) {
		case draft.Line, draft.Arc:
		default:
			panic(fmt.Sprintf("segment %d: unsupported type %T", i, s))
		}
		if i == 0 {
			continue
		}
		if !d2.EqualWithin(s.StartPoint(), segs[i-1].EndPoint(), tolerance) {
			panic(fmt.Sprintf("segment %d starts at %v, previous ends at %v", i, s.StartPoint(), segs[i-1].EndPoint()))
		}
	}
	return Path{segs: segs}
}

// Segments returns the path's segments in order.
func (p Path) Segments() []Segment {
	return p.segs
}

// Closed reports whether the path's last segment ends where its first
// segment begins.
func (p Path) Closed() bool {
	if len(p.segs) == 0 {
		return false
	}
	return d2.EqualWithin(p.segs[0].StartPoint(), p.segs[len(p.segs)-1].EndPoint(), tolerance)
}

// Vertices tessellates the path into a polyline. Each arc is subdivided
// into facets straight pieces; lines contribute their endpoints.
func (p Path) Vertices(facets int) []r2.Vec {
	if len(p.segs) == 0 {
		return nil
	}
	if facets < 1 {
		facets = 1
	}
	v := []r2.Vec{p.segs[0].StartPoint()}
	for _, s := range p.segs {
		switch seg := s.(type) {
		case draft.Line:
			v = append(v, seg.End)
		case draft.Arc:
			for i := 1; i <= facets; i++ {
				v = append(v, seg.PointAt(float64(i)/float64(facets)))
			}
		}
	}
	return v
}

// Bounds returns the bounding box of the path. Arc extents are
// approximated by tessellation.
func (p Path) Bounds() r2.Box {
	v := p.Vertices(defaultFacets)
	if len(v) == 0 {
		return r2.Box{}
	}
	return r2.Box(d2.Set(v).Box())
}

// Mirror reflects the whole path across the X axis, Y axis, or both.
// Point coordinates and arc angles are mirrored consistently so the
// result is again a connected chain of counterclockwise arcs. A
// single-axis mirror reverses the direction of travel, so the segment
// order is reversed to keep the chain running end to start.
func (p Path) Mirror(mirrorX, mirrorY bool) Path {
	t := d2.Mirror(mirrorX, mirrorY)
	reversed := mirrorX != mirrorY
	segs := make([]Segment, len(p.segs))
	for i, s := range p.segs {
		m := mirrorSegment(s, t, mirrorX, mirrorY, reversed)
		if reversed {
			segs[len(segs)-1-i] = m
		} else {
			segs[i] = m
		}
	}
	return Path{segs: segs}
}

// Translate returns the path moved by v.
func (p Path) Translate(v r2.Vec) Path {
	t := d2.Translate(v)
	segs := make([]Segment, len(p.segs))
	for i, s := range p.segs {
		switch seg := s.(type) {
		case draft.Line:
			segs[i] = draft.Line{Origin: t.ApplyPos(seg.Origin), End: t.ApplyPos(seg.End)}
		case draft.Arc:
			seg.Center = t.ApplyPos(seg.Center)
			segs[i] = seg
		default:
			segs[i] = s
		}
	}
	return Path{segs: segs}
}

// Rotate returns the path rotated counterclockwise about the origin by
// theta degrees. Arc start and end angles shift by theta without
// normalization, so sweeps are unchanged.
func (p Path) Rotate(theta float64) Path {
	t := d2.Rotate(draft.DtoR(theta))
	segs := make([]Segment, len(p.segs))
	for i, s := range p.segs {
		switch seg := s.(type) {
		case draft.Line:
			segs[i] = draft.Line{Origin: t.ApplyPos(seg.Origin), End: t.ApplyPos(seg.End)}
		case draft.Arc:
			segs[i] = draft.Arc{
				Center: t.ApplyPos(seg.Center),
				Radius: seg.Radius,
				Start:  seg.Start + theta,
				End:    seg.End + theta,
			}
		default:
			segs[i] = s
		}
	}
	return Path{segs: segs}
}

func mirrorSegment(s Segment, t d2.Transform, mirrorX, mirrorY, reversed bool) Segment {
	switch seg := s.(type) {
	case draft.Line:
		o, e := t.ApplyPos(seg.Origin), t.ApplyPos(seg.End)
		if reversed {
			o, e = e, o
		}
		return draft.Line{Origin: o, End: e}
	case draft.Arc:
		start := draft.MirrorDegrees(seg.Start, mirrorX, mirrorY)
		end := draft.MirrorDegrees(seg.End, mirrorX, mirrorY)
		if reversed {
			// Reflection flips orientation; swapping the angles keeps
			// the arc counterclockwise.
			start, end = end, start
		}
		return draft.Arc{
			Center: t.ApplyPos(seg.Center),
			Radius: seg.Radius,
			Start:  start,
			End:    end,
		}
	}
	return s
}
