// Package render draws paths to SVG and PNG canvases.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/draftcad/draft"
	"github.com/draftcad/draft/internal/d2"
	"github.com/draftcad/draft/path"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Options control how paths are drawn.
type Options struct {
	// Scale is canvas points per drawing unit. Zero means 1.
	Scale float64
	// Margin is blank space around the drawing.
	Margin vg.Length
	// LineWidth of stroked paths. Zero means 1pt.
	LineWidth vg.Length
	// Color of stroked paths. Nil means black.
	Color color.Color
}

func (o Options) canon() Options {
	if o.Scale == 0 {
		o.Scale = 1
	}
	if o.LineWidth == 0 {
		o.LineWidth = vg.Points(1)
	}
	if o.Color == nil {
		o.Color = color.Black
	}
	return o
}

// WriteSVG strokes the paths to w as an SVG image.
func WriteSVG(w io.Writer, opt Options, paths ...path.Path) error {
	width, height, draw, err := layout(opt, paths)
	if err != nil {
		return err
	}
	c := vgsvg.New(width, height)
	draw(c)
	_, err = c.WriteTo(w)
	return err
}

// WritePNG strokes the paths to w as a PNG image.
func WritePNG(w io.Writer, opt Options, paths ...path.Path) error {
	width, height, draw, err := layout(opt, paths)
	if err != nil {
		return err
	}
	c := vgimg.New(width, height)
	draw(c)
	png := vgimg.PngCanvas{Canvas: c}
	_, err = png.WriteTo(w)
	return err
}

// CreateSVG renders paths to a new SVG file.
func CreateSVG(name string, opt Options, paths ...path.Path) error {
	fp, err := os.Create(name)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := WriteSVG(fp, opt, paths...); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}

// layout computes the canvas size and returns the draw callback shared
// by the SVG and PNG writers.
func layout(opt Options, paths []path.Path) (width, height vg.Length, draw func(vg.Canvas), err error) {
	opt = opt.canon()
	var bb d2.Box
	first := true
	for _, p := range paths {
		if len(p.Segments()) == 0 {
			continue
		}
		b := d2.Box(p.Bounds())
		if first {
			bb = b
			first = false
			continue
		}
		bb = bb.Extend(b)
	}
	if first {
		return 0, 0, nil, errors.New("no segments to render")
	}
	size := bb.Size()
	width = vg.Length(size.X*opt.Scale) + 2*opt.Margin
	height = vg.Length(size.Y*opt.Scale) + 2*opt.Margin

	toCanvas := func(v r2.Vec) vg.Point {
		return vg.Point{
			X: opt.Margin + vg.Length((v.X-bb.Min.X)*opt.Scale),
			Y: opt.Margin + vg.Length((v.Y-bb.Min.Y)*opt.Scale),
		}
	}
	draw = func(c vg.Canvas) {
		c.SetColor(opt.Color)
		c.SetLineWidth(opt.LineWidth)
		for _, p := range paths {
			segs := p.Segments()
			if len(segs) == 0 {
				continue
			}
			var vp vg.Path
			vp.Move(toCanvas(segs[0].StartPoint()))
			for _, s := range segs {
				switch seg := s.(type) {
				case draft.Line:
					vp.Line(toCanvas(seg.End))
				case draft.Arc:
					vp.Arc(toCanvas(seg.Center), vg.Length(seg.Radius*opt.Scale),
						draft.DtoR(seg.Start), seg.Sweep()*math.Pi/180)
				default:
					vp.Line(toCanvas(s.EndPoint()))
				}
			}
			if p.Closed() {
				vp.Close()
			}
			c.Stroke(vp)
		}
	}
	return width, height, draw, nil
}
