// Package draft provides the angle arithmetic and geometric value types
// underlying a 2D drafting system in which paths of lines and arcs are
// described by points and angles in degrees.
//
// All functions are pure and total over finite inputs. Non-finite values
// propagate per IEEE 754 rules without guards.
package draft

import "math"

const (
	pi  = math.Pi
	tau = 2 * pi
)

// roundScale fixes the decimal precision used by Round: 9 decimal places,
// matching the geometric tolerance used by path construction.
const roundScale = 1e9

// NormalizeDegrees reduces an angle to the canonical range [0, 360).
// Floor division, so negative angles map correctly: -10 becomes 350.
// Exactly 360 maps to 0.
func NormalizeDegrees(a float64) float64 {
	return a - 360*math.Floor(a/360)
}

// DtoR converts degrees to radians. The angle is normalized before the
// conversion so the result is always in [0, 2π). Trigonometric consumers
// rely on the bounded range; do not reorder.
func DtoR(degrees float64) float64 {
	return NormalizeDegrees(degrees) * (pi / 180)
}

// RtoD converts radians to degrees without normalizing. The asymmetry
// with DtoR is deliberate: call sites that need a canonical degree value
// compose with NormalizeDegrees themselves.
func RtoD(radians float64) float64 {
	return radians * (180 / pi)
}

// Round snaps a value to 9 decimal places, suppressing floating-point
// noise before angle comparison.
func Round(v float64) float64 {
	return math.Round(v*roundScale) / roundScale
}

// EqualAngles reports whether two angles denote the same direction modulo
// one revolution. Both angles are rounded and normalized first; equality
// is then exact, with a ±360 check for values that round to opposite
// sides of the 0/360 boundary. This is not an epsilon comparison.
func EqualAngles(a, b float64) bool {
	a1 := NormalizeDegrees(Round(a))
	a2 := NormalizeDegrees(Round(b))
	return a1 == a2 || a1+360 == a2 || a1-360 == a2
}

// MirrorDegrees reflects an angle across the X axis, Y axis, or both.
// The Y reflection is applied before the X reflection; the two steps do
// not commute. An angle of exactly 180 resolves through the 540 branch.
func MirrorDegrees(a float64, mirrorX, mirrorY bool) float64 {
	if mirrorY {
		a = 360 - a
	}
	if mirrorX {
		if a < 180 {
			a = 180 - a
		} else {
			a = 540 - a
		}
	}
	return a
}
