package draft_test

import (
	"math"
	"testing"

	"github.com/draftcad/draft"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestLineAngle(t *testing.T) {
	origin := r2.Vec{}
	tests := []struct {
		end  r2.Vec
		want float64
	}{
		{r2.Vec{X: 1, Y: 0}, 0},
		{r2.Vec{X: 1, Y: 1}, 45},
		{r2.Vec{X: 0, Y: 1}, 90},
		{r2.Vec{X: -1, Y: 0}, 180},
		{r2.Vec{X: -1, Y: -1}, 225},
		{r2.Vec{X: 0, Y: -1}, 270},
		{r2.Vec{X: 5, Y: -5}, 315},
	}
	for _, tt := range tests {
		l := draft.Line{Origin: origin, End: tt.end}
		got := l.Angle()
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Line to %v: Angle() = %v, want %v", tt.end, got, tt.want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("Line to %v: Angle() = %v, outside [0, 360)", tt.end, got)
		}
	}
}

func TestPointAngle(t *testing.T) {
	// The radian result is always in [0, 2π): the atan2 shift remaps the
	// branch cut instead of returning negative angles.
	origin := r2.Vec{X: 2, Y: 3}
	for deg := 0.0; deg < 360; deg += 7.5 {
		rad := deg * math.Pi / 180
		target := r2.Add(origin, r2.Vec{X: math.Cos(rad), Y: math.Sin(rad)})
		got := draft.PointAngle(origin, target)
		if got < 0 || got >= 2*math.Pi {
			t.Fatalf("PointAngle at %v° = %v rad, outside [0, 2π)", deg, got)
		}
		if diff := math.Abs(got - rad); diff > 1e-9 && math.Abs(diff-2*math.Pi) > 1e-9 {
			t.Errorf("PointAngle at %v° = %v rad, want %v", deg, got, rad)
		}
	}
}

func TestPointAngleDegUnnormalized(t *testing.T) {
	// PointAngleDeg converts without an extra normalization pass; the
	// underlying radian value is already in range, so the degree result
	// lands in [0, 360) too.
	got := draft.PointAngleDeg(r2.Vec{}, r2.Vec{X: 0, Y: -1})
	if math.Abs(got-270) > 1e-9 {
		t.Errorf("PointAngleDeg to (0,-1) = %v, want 270", got)
	}
}

func TestArcEndAngle(t *testing.T) {
	tests := []struct {
		start, end float64
		want       float64
	}{
		{350, 10, 370},
		{10, 350, 350},
		{90, 90, 90},
		{0, 360, 360},
		{-20, -30, 330},
	}
	for _, tt := range tests {
		a := draft.Arc{Start: tt.start, End: tt.end}
		if got := a.EndAngle(); got != tt.want {
			t.Errorf("Arc{%v, %v}.EndAngle() = %v, want %v", tt.start, tt.end, got, tt.want)
		}
		if got := a.EndAngle() - a.Start; got < 0 {
			t.Errorf("Arc{%v, %v}: negative sweep %v", tt.start, tt.end, got)
		}
	}
}

func TestArcSweepAndAngleAt(t *testing.T) {
	a := draft.Arc{Start: 350, End: 10}
	if got := a.Sweep(); got != 20 {
		t.Errorf("Sweep() = %v, want 20", got)
	}
	if got := a.Middle(); got != 360 {
		t.Errorf("Middle() = %v, want 360", got)
	}

	q := draft.Arc{Start: 0, End: 90}
	if got := q.AngleAt(0.5); got != 45 {
		t.Errorf("AngleAt(0.5) = %v, want 45", got)
	}
	// Ratios outside [0, 1] extrapolate past the endpoints.
	if got := q.AngleAt(2); got != 180 {
		t.Errorf("AngleAt(2) = %v, want 180", got)
	}
	if got := q.AngleAt(-1); got != -90 {
		t.Errorf("AngleAt(-1) = %v, want -90", got)
	}
}

func TestArcPoints(t *testing.T) {
	a := draft.Arc{Center: r2.Vec{X: 1, Y: 2}, Radius: 2, Start: 0, End: 90}
	checkVec(t, "StartPoint", a.StartPoint(), r2.Vec{X: 3, Y: 2})
	checkVec(t, "EndPoint", a.EndPoint(), r2.Vec{X: 1, Y: 4})
	checkVec(t, "PointAt(0.5)", a.PointAt(0.5), r2.Vec{X: 1 + math.Sqrt2, Y: 2 + math.Sqrt2})
}

func checkVec(t *testing.T, name string, got, want r2.Vec) {
	t.Helper()
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}
