package document

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/draftcad/draft/path"
)

// csvPoint is one row of an x,y point list.
type csvPoint struct {
	X float64 `csv:"x"`
	Y float64 `csv:"y"`
}

// DecodePolylineCSV reads a CSV point list with x and y columns and
// joins consecutive points with line segments.
func DecodePolylineCSV(r io.Reader) (path.Path, error) {
	var pts []*csvPoint
	if err := gocsv.Unmarshal(r, &pts); err != nil {
		return path.Path{}, fmt.Errorf("decoding point list: %w", err)
	}
	if len(pts) < 2 {
		return path.Path{}, errors.New("polyline needs at least 2 points")
	}
	b := path.NewBuilder().MoveTo(r2.Vec{X: pts[0].X, Y: pts[0].Y})
	for _, p := range pts[1:] {
		b.LineTo(r2.Vec{X: p.X, Y: p.Y})
	}
	return b.Build()
}

// LoadPolylineCSV reads a polyline from a CSV file.
func LoadPolylineCSV(name string) (path.Path, error) {
	fp, err := os.Open(name)
	if err != nil {
		return path.Path{}, err
	}
	defer fp.Close()
	return DecodePolylineCSV(fp)
}
