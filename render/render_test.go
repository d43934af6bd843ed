package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/draftcad/draft"
	"github.com/draftcad/draft/path"
	"github.com/draftcad/draft/render"
	"gonum.org/v1/gonum/spatial/r2"
)

func slotPath(t *testing.T) path.Path {
	t.Helper()
	// A closed slot: two horizontal lines joined by half-circle caps.
	p, err := path.New(
		draft.Line{Origin: r2.Vec{X: 0, Y: -1}, End: r2.Vec{X: 4, Y: -1}},
		draft.Arc{Center: r2.Vec{X: 4}, Radius: 1, Start: 270, End: 90},
		draft.Line{Origin: r2.Vec{X: 4, Y: 1}, End: r2.Vec{X: 0, Y: 1}},
		draft.Arc{Center: r2.Vec{}, Radius: 1, Start: 90, End: 270},
	)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Closed() {
		t.Fatal("slot path is not closed")
	}
	return p
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	err := render.WriteSVG(&buf, render.Options{Scale: 10, Margin: 5}, slotPath(t))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output does not look like SVG")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	err := render.WritePNG(&buf, render.Options{Scale: 10, Margin: 5}, slotPath(t))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output does not look like PNG")
	}
}

func TestWriteSVGEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := render.WriteSVG(&buf, render.Options{}); err == nil {
		t.Fatal("expected error for empty drawing")
	}
}
