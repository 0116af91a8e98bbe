package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/bouquet/internal/hsl"
	"github.com/iburimskiy/bouquet/internal/rng"
)

// Star is one backdrop point.
type Star struct {
	Position mgl64.Vec3
	Size     float64
	Color    colorful.Color
	phase    float64
}

// StarField is a shell of stars between Radius and Radius+Depth.
type StarField struct {
	Radius     float64
	Depth      float64
	Factor     float64
	Saturation float64
	Speed      float64
	Fade       bool
	Stars      []Star
}

// NewStarField scatters count stars from r.
func NewStarField(count int, r rng.Source) *StarField {
	f := &StarField{Radius: 100, Depth: 50, Factor: 4, Saturation: 0, Speed: 1, Fade: true}
	f.Stars = make([]Star, count)

	dist := f.Radius + f.Depth
	step := f.Depth / float64(count)
	for i := range f.Stars {
		dist -= step * r.Float64()
		polar := math.Acos(1 - r.Float64()*2)
		azimuth := r.Float64() * 2 * math.Pi
		f.Stars[i] = Star{
			Position: mgl64.Vec3{
				dist * math.Sin(polar) * math.Sin(azimuth),
				dist * math.Cos(polar),
				dist * math.Sin(polar) * math.Cos(azimuth),
			},
			Size:  (0.5 + 0.5*r.Float64()) * f.Factor,
			Color: hsl.New(float64(i)/float64(count), f.Saturation, 0.9).Colorful(),
			phase: r.Float64() * 100,
		}
	}
	return f
}

// Twinkle is the brightness of star i at time t, in [0,1].
func (f *StarField) Twinkle(i int, t float64) float64 {
	s := 0.65 + 0.35*math.Sin(t*f.Speed+f.Stars[i].phase)
	if !f.Fade {
		return s
	}
	// farther stars are dimmer
	d := f.Stars[i].Position.Len()
	k := 1 - 0.5*mgl64.Clamp((d-f.Radius)/f.Depth, 0, 1)
	return s * k
}

// ContactShadow darkens a ground plane under nearby objects.
type ContactShadow struct {
	Y       float64
	Scale   float64
	Opacity float64
	Blur    float64
	Far     float64
}

// DefaultShadow sits just under the bouquet.
func DefaultShadow() ContactShadow {
	return ContactShadow{Y: -3.5, Scale: 10, Opacity: 0.3, Blur: 2.5, Far: 4}
}

// Blob is the shadow cast by a sphere of radius r at world point p. ok is
// false when p is off the plane or too high above it.
func (s ContactShadow) Blob(p mgl64.Vec3, r float64) (center mgl64.Vec3, radius, alpha float64, ok bool) {
	half := s.Scale / 2
	if math.Abs(p[0]) > half || math.Abs(p[2]) > half {
		return mgl64.Vec3{}, 0, 0, false
	}
	h := p[1] - s.Y
	if h < 0 || h > s.Far {
		return mgl64.Vec3{}, 0, 0, false
	}
	k := 1 - h/s.Far
	center = mgl64.Vec3{p[0], s.Y, p[2]}
	radius = r + s.Blur*0.1*(h/s.Far)
	return center, radius, s.Opacity * k, true
}
