// Package stem builds the curved stems that hang below each flower head.
package stem

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	ControlPoints   = 11
	Radius          = 0.04
	TubularSegments = 20
	RadialSegments  = 8

	arcSamples = 200
)

// Curve is a centripetal Catmull-Rom spline through the stem control points.
type Curve struct {
	points  []mgl64.Vec3
	lengths []float64 // cumulative arc length at arcSamples+1 uniform params
}

// Controls returns the control points: the first is the origin, the stem
// runs down to y = -length with a half-sine X bow and a quarter-sine Z drift.
func Controls(length, curvature float64) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, ControlPoints)
	for i := range pts {
		t := float64(i) / float64(ControlPoints-1)
		pts[i] = mgl64.Vec3{
			math.Sin(t*math.Pi) * curvature,
			-t * length,
			math.Sin(t*math.Pi*0.5) * curvature * 0.5,
		}
	}
	return pts
}

// New builds the stem curve for the given length and curvature.
func New(length, curvature float64) *Curve {
	c := &Curve{points: Controls(length, curvature)}
	c.lengths = make([]float64, arcSamples+1)
	prev := c.Point(0)
	for i := 1; i <= arcSamples; i++ {
		p := c.Point(float64(i) / arcSamples)
		c.lengths[i] = c.lengths[i-1] + p.Sub(prev).Len()
		prev = p
	}
	return c
}

// Controls returns a copy of the control points.
func (c *Curve) Controls() []mgl64.Vec3 {
	return append([]mgl64.Vec3(nil), c.points...)
}

// Length is the arc length of the curve.
func (c *Curve) Length() float64 {
	return c.lengths[len(c.lengths)-1]
}

// Point evaluates the spline at parameter t in [0,1].
func (c *Curve) Point(t float64) mgl64.Vec3 {
	n := len(c.points)
	p := float64(n-1) * t
	seg := int(math.Floor(p))
	w := p - float64(seg)
	if seg >= n-1 {
		seg, w = n-2, 1
	}
	if seg < 0 {
		seg, w = 0, 0
	}

	p1, p2 := c.points[seg], c.points[seg+1]
	var p0, p3 mgl64.Vec3
	if seg > 0 {
		p0 = c.points[seg-1]
	} else {
		p0 = p1.Mul(2).Sub(p2)
	}
	if seg+2 < n {
		p3 = c.points[seg+2]
	} else {
		p3 = p2.Mul(2).Sub(p1)
	}

	dt0 := math.Pow(p0.Sub(p1).LenSqr(), 0.25)
	dt1 := math.Pow(p1.Sub(p2).LenSqr(), 0.25)
	dt2 := math.Pow(p2.Sub(p3).LenSqr(), 0.25)
	if dt1 < 1e-4 {
		dt1 = 1
	}
	if dt0 < 1e-4 {
		dt0 = dt1
	}
	if dt2 < 1e-4 {
		dt2 = dt1
	}

	var out mgl64.Vec3
	for k := 0; k < 3; k++ {
		out[k] = nonuniform(p0[k], p1[k], p2[k], p3[k], dt0, dt1, dt2, w)
	}
	return out
}

// PointAt evaluates the curve at fraction u of its arc length.
func (c *Curve) PointAt(u float64) mgl64.Vec3 {
	return c.Point(c.arcToParam(u))
}

func (c *Curve) arcToParam(u float64) float64 {
	if u <= 0 {
		return 0
	}
	if u >= 1 {
		return 1
	}
	target := u * c.Length()
	lo, hi := 0, len(c.lengths)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if c.lengths[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == 0 {
		return 0
	}
	before := c.lengths[lo-1]
	span := c.lengths[lo] - before
	frac := 0.0
	if span > 0 {
		frac = (target - before) / span
	}
	return (float64(lo-1) + frac) / float64(len(c.lengths)-1)
}

func nonuniform(x0, x1, x2, x3, dt0, dt1, dt2, t float64) float64 {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	t1 *= dt1
	t2 *= dt1

	c0 := x1
	c1 := t1
	c2 := -3*x1 + 3*x2 - 2*t1 - t2
	c3 := 2*x1 - 2*x2 + t1 + t2
	return c0 + c1*t + c2*t*t + c3*t*t*t
}
