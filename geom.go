package draft

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Line is a straight segment from Origin to End. Both points are owned by
// the caller and never mutated.
type Line struct {
	Origin r2.Vec
	End    r2.Vec
}

// Arc is a circular arc on the circle of Center and Radius, spanning
// counterclockwise from Start to End. Angles are degrees.
type Arc struct {
	Center r2.Vec
	Radius float64
	Start  float64
	End    float64
}

// PointAngle returns the angle of the vector from origin to target, in
// radians in [0, 2π), with zero along +x and counterclockwise positive.
//
// The formula atan2(-dy, -dx) + π remaps atan2's native (-π, π] range
// onto [0, 2π). It is not equivalent to atan2(dy, dx) at the branch cut;
// keep it as written.
func PointAngle(origin, target r2.Vec) float64 {
	d := r2.Sub(target, origin)
	return math.Atan2(-d.Y, -d.X) + pi
}

// PointAngleDeg is PointAngle in degrees. The result is not normalized.
func PointAngleDeg(origin, target r2.Vec) float64 {
	return RtoD(PointAngle(origin, target))
}

// Angle returns the direction of the line in degrees, normalized to
// [0, 360).
func (l Line) Angle() float64 {
	return NormalizeDegrees(RtoD(PointAngle(l.Origin, l.End)))
}

// StartPoint returns the line's origin.
func (l Line) StartPoint() r2.Vec { return l.Origin }

// EndPoint returns the line's end.
func (l Line) EndPoint() r2.Vec { return l.End }

// EndAngle returns the arc's end angle, unwrapped past 360 where needed
// so that it is never smaller than Start. Start itself is not normalized.
func (a Arc) EndAngle() float64 {
	if a.End >= a.Start {
		return a.End
	}
	return a.End + 360
}

// Sweep returns the angular size of the arc in degrees. Never negative.
func (a Arc) Sweep() float64 {
	return a.EndAngle() - a.Start
}

// AngleAt returns the angle at fraction t of the arc's sweep, measured
// from Start. t is not range checked: values outside [0, 1] extrapolate
// past the arc's endpoints.
func (a Arc) AngleAt(t float64) float64 {
	return a.Start + a.Sweep()*t
}

// Middle returns the angle halfway along the arc.
func (a Arc) Middle() float64 {
	return a.AngleAt(0.5)
}

// PointAt returns the point on the arc's circle at fraction t of the
// sweep.
func (a Arc) PointAt(t float64) r2.Vec {
	rad := DtoR(a.AngleAt(t))
	return r2.Add(a.Center, r2.Scale(a.Radius, r2.Vec{X: math.Cos(rad), Y: math.Sin(rad)}))
}

// StartPoint returns the point where the arc begins.
func (a Arc) StartPoint() r2.Vec {
	return a.PointAt(0)
}

// EndPoint returns the point where the arc ends.
func (a Arc) EndPoint() r2.Vec {
	return a.PointAt(1)
}
