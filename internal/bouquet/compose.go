package bouquet

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/bouquet/internal/config"
	"github.com/iburimskiy/bouquet/internal/flower"
	"github.com/iburimskiy/bouquet/internal/hsl"
	"github.com/iburimskiy/bouquet/internal/rng"
)

// GoldenAngle is π(3-√5), the per-step turn of the sphere spiral.
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// SpherePoints spreads count points over the unit sphere, y running from 1
// down to -1.
func SpherePoints(count int) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, count)
	if count == 1 {
		pts[0] = mgl64.Vec3{0, 1, 0}
		return pts
	}
	for i := range pts {
		y := 1 - float64(i)/float64(count-1)*2
		radius := math.Sqrt(1 - y*y)
		theta := float64(i) * GoldenAngle
		pts[i] = mgl64.Vec3{math.Cos(theta) * radius, y, math.Sin(theta) * radius}
	}
	return pts
}

// Dome keeps the sphere points at or above the cutoff.
func Dome(pts []mgl64.Vec3, cutoff float64) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, 0, len(pts))
	for _, p := range pts {
		if p[1] < cutoff {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Orientation tilts a flower at pos to face away from the bouquet center.
func Orientation(pos mgl64.Vec3) mgl64.Vec3 {
	n := pos.Normalize()
	pitch := math.Atan2(n[1], math.Hypot(n[0], n[2])) - math.Pi/2
	yaw := math.Atan2(-n[0], -n[2])
	return mgl64.Vec3{-pitch * config.PitchDamping, yaw, 0}
}

// JitterColor derives a flower color from the base: hue ±0.05 (wrapped),
// saturation 0.8, lightness in [0.5, 0.8).
func JitterColor(base hsl.HSL, r rng.Source) hsl.HSL {
	h := base.H + (r.Float64()*0.1 - 0.05)
	l := 0.5 + r.Float64()*0.3
	return hsl.New(h, 0.8, l)
}

// Compose lays out the flower instances for one color generation.
func Compose(base hsl.HSL, count int, r rng.Source) []flower.Instance {
	dome := Dome(SpherePoints(count), config.DomeCutoff)
	out := make([]flower.Instance, 0, len(dome))
	for _, p := range dome {
		pos := p.Mul(config.DomeScale).Add(mgl64.Vec3{0, config.DomeLift, 0})
		variant := flower.VariantOf(r.Float64())
		scale := 0.8 + r.Float64()*0.4
		out = append(out, flower.Instance{
			Position: pos,
			Rotation: Orientation(pos),
			Variant:  variant,
			Scale:    scale,
			Color:    JitterColor(base, r),
		})
	}
	return out
}
