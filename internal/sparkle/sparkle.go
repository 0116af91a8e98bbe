// Package sparkle animates the ambient glitter floating around the bouquet.
package sparkle

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/bouquet/internal/rng"
)

const (
	Scale   = 4.0
	Size    = 4.0
	Speed   = 0.4
	Opacity = 0.5
	drift   = 0.2
)

// Center is the effect's origin inside the bouquet group.
var Center = mgl64.Vec3{0, 1, 0}

// Point is one sparkle.
type Point struct {
	Home     mgl64.Vec3 // rest position inside the box
	Position mgl64.Vec3
	Size     float64
	Alpha    float64
	seed     float64
}

// Field is the whole effect.
type Field struct {
	Points []Point
	Seed   int64 // noise seed
	noise  *perlin.Perlin
}

// New scatters count points through a box of edge Scale around Center.
func New(count int, r rng.Source, seed int64) *Field {
	f := &Field{
		Points: make([]Point, count),
		Seed:   seed,
		noise:  perlin.NewPerlin(2, 2, 3, seed),
	}
	for i := range f.Points {
		home := mgl64.Vec3{
			(r.Float64() - 0.5) * Scale,
			(r.Float64() - 0.5) * Scale,
			(r.Float64() - 0.5) * Scale,
		}.Add(Center)
		f.Points[i] = Point{
			Home:     home,
			Position: home,
			Size:     Size * (0.5 + r.Float64()*0.5),
			Alpha:    Opacity,
			seed:     r.Float64() * 100,
		}
	}
	return f
}

// Update moves each point along a noise path and pulses its alpha.
func (f *Field) Update(t float64) {
	for i := range f.Points {
		p := &f.Points[i]
		u := t*Speed + p.seed
		offset := mgl64.Vec3{
			mgl64.Clamp(f.noise.Noise2D(u, p.seed), -1, 1),
			mgl64.Clamp(f.noise.Noise2D(u, p.seed+31.7), -1, 1),
			mgl64.Clamp(f.noise.Noise2D(u, p.seed+63.1), -1, 1),
		}
		p.Position = p.Home.Add(offset.Mul(drift * Scale))
		p.Alpha = Opacity * (0.6 + 0.4*math.Sin(u*5))
	}
}
