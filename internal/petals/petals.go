// Package petals runs the fixed pool of falling petals.
package petals

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/bouquet/internal/rng"
)

const (
	Floor     = -4.0
	TopMin    = 4.0
	TopBand   = 2.0
	HalfWidth = 3.0
	Radius    = 0.08
	Opacity   = 0.8
	swayStep  = 0.01
)

// Petal is one particle. Only Position and Rotation change after creation.
type Petal struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3

	FallSpeed     float64
	RotationSpeed float64
	SwayPhase     float64
}

// System is a fixed-size petal pool. Petals are recycled, never recreated.
type System struct {
	Petals []Petal

	rand rng.Source
}

// New fills a pool of count petals from r.
func New(count int, r rng.Source) *System {
	s := &System{
		Petals: make([]Petal, count),
		rand:   r,
	}
	for i := range s.Petals {
		p := &s.Petals[i]
		p.Position = mgl64.Vec3{
			(r.Float64() - 0.5) * 2 * HalfWidth,
			r.Float64()*6 - 2,
			(r.Float64() - 0.5) * 2 * HalfWidth,
		}
		p.Rotation = mgl64.Vec3{r.Float64() * math.Pi, r.Float64() * math.Pi, 0}
		p.FallSpeed = 0.02 + r.Float64()*0.03
		p.RotationSpeed = (r.Float64() - 0.5) * 0.05
		p.SwayPhase = r.Float64() * 100
	}
	return s
}

// Update advances every petal by one frame at elapsed time t.
func (s *System) Update(t float64) {
	for i := range s.Petals {
		p := &s.Petals[i]
		p.Position[1] -= p.FallSpeed
		p.Position[0] += math.Sin(t+p.SwayPhase) * swayStep
		p.Position[2] += math.Cos(t+p.SwayPhase) * swayStep

		p.Rotation[0] += p.RotationSpeed
		p.Rotation[1] += p.RotationSpeed
		p.Rotation[2] += p.RotationSpeed

		if p.Position[1] < Floor {
			s.respawn(p)
		}
	}
}

func (s *System) respawn(p *Petal) {
	p.Position[1] = TopMin + s.rand.Float64()*TopBand
	p.Position[0] = (s.rand.Float64() - 0.5) * 2 * HalfWidth
	p.Position[2] = (s.rand.Float64() - 0.5) * 2 * HalfWidth
}
