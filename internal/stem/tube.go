package stem

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Tube is a curve extruded to a constant radius. Rings[i] is the cross
// section at Centers[i].
type Tube struct {
	Radius  float64
	Centers []mgl64.Vec3
	Rings   [][]mgl64.Vec3
}

// Extrude sweeps a circle of the given radius along the curve using
// rotation-minimizing frames.
func (c *Curve) Extrude(radius float64, tubular, radial int) *Tube {
	tube := &Tube{
		Radius:  radius,
		Centers: make([]mgl64.Vec3, tubular+1),
		Rings:   make([][]mgl64.Vec3, tubular+1),
	}

	tangents := make([]mgl64.Vec3, tubular+1)
	for i := 0; i <= tubular; i++ {
		u := float64(i) / float64(tubular)
		tube.Centers[i] = c.PointAt(u)
		tangents[i] = c.tangentAt(u)
	}

	normal := initialNormal(tangents[0])
	for i := 0; i <= tubular; i++ {
		if i > 0 {
			axis := tangents[i-1].Cross(tangents[i])
			if axis.Len() > 1e-9 {
				angle := math.Acos(mgl64.Clamp(tangents[i-1].Dot(tangents[i]), -1, 1))
				normal = mgl64.QuatRotate(angle, axis.Normalize()).Rotate(normal)
			}
		}
		binormal := tangents[i].Cross(normal)

		ring := make([]mgl64.Vec3, radial)
		for j := 0; j < radial; j++ {
			v := float64(j) / float64(radial) * 2 * math.Pi
			dir := normal.Mul(-math.Cos(v)).Add(binormal.Mul(math.Sin(v)))
			ring[j] = tube.Centers[i].Add(dir.Mul(radius))
		}
		tube.Rings[i] = ring
	}
	return tube
}

// Default extrudes with the stem radius and segment counts.
func (c *Curve) Default() *Tube {
	return c.Extrude(Radius, TubularSegments, RadialSegments)
}

func (c *Curve) tangentAt(u float64) mgl64.Vec3 {
	const delta = 1e-4
	u1, u2 := u-delta, u+delta
	if u1 < 0 {
		u1 = 0
	}
	if u2 > 1 {
		u2 = 1
	}
	return c.PointAt(u2).Sub(c.PointAt(u1)).Normalize()
}

// initialNormal picks the axis least aligned with the tangent.
func initialNormal(t mgl64.Vec3) mgl64.Vec3 {
	ax, ay, az := math.Abs(t[0]), math.Abs(t[1]), math.Abs(t[2])
	axis := mgl64.Vec3{0, 0, 1}
	switch {
	case ax <= ay && ax <= az:
		axis = mgl64.Vec3{1, 0, 0}
	case ay <= az:
		axis = mgl64.Vec3{0, 1, 0}
	}
	return t.Cross(axis).Normalize()
}
