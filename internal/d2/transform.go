package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Transform represents a 2D spatial transformation as a 3x3 matrix in
// row-major order, including translation, rotation and axis mirroring.
type Transform struct {
	data [3 * 3]float64
}

// Identity returns the identity transform.
func Identity() Transform {
	t := Transform{}
	t.Set(0, 0, 1)
	t.Set(1, 1, 1)
	t.Set(2, 2, 1)
	return t
}

// Translate returns a translation transform.
func Translate(v r2.Vec) Transform {
	t := Identity()
	t.Set(0, 2, v.X)
	t.Set(1, 2, v.Y)
	return t
}

// Rotate returns a counterclockwise rotation transform about the origin.
// theta is in radians.
func Rotate(theta float64) Transform {
	s, c := math.Sin(theta), math.Cos(theta)
	t := Identity()
	t.Set(0, 0, c)
	t.Set(0, 1, -s)
	t.Set(1, 0, s)
	t.Set(1, 1, c)
	return t
}

// Mirror returns a reflection transform. mirrorX negates x coordinates
// and mirrorY negates y coordinates, matching the drafting convention
// for mirrored angles.
func Mirror(mirrorX, mirrorY bool) Transform {
	t := Identity()
	if mirrorX {
		t.Set(0, 0, -1)
	}
	if mirrorY {
		t.Set(1, 1, -1)
	}
	return t
}

func (t *Transform) At(i, j int) float64 {
	return t.data[i*3+j]
}

func (t *Transform) Set(i, j int, v float64) {
	t.data[i*3+j] = v
}

// ApplyPos applies the transform to a position vector.
func (t Transform) ApplyPos(b r2.Vec) r2.Vec {
	return r2.Vec{
		X: t.At(0, 0)*b.X + t.At(0, 1)*b.Y + t.At(0, 2),
		Y: t.At(1, 0)*b.X + t.At(1, 1)*b.Y + t.At(1, 2),
	}
}
