// Package bouquet composes the flowers, falling petals and sparkles into one
// group and advances them frame by frame.
package bouquet

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/bouquet/internal/config"
	"github.com/iburimskiy/bouquet/internal/flower"
	"github.com/iburimskiy/bouquet/internal/hsl"
	"github.com/iburimskiy/bouquet/internal/petals"
	"github.com/iburimskiy/bouquet/internal/rng"
	"github.com/iburimskiy/bouquet/internal/sparkle"
)

// Offset places the whole group in the scene.
var Offset = mgl64.Vec3{0, -1, 0}

var tieColor = hsl.ParseOr("#ec4899", config.DefaultColor)

type Options struct {
	Flowers  int
	Petals   int
	Sparkles int
	Seed     int64 // noise seed for the sparkles
}

func (o *Options) normalize() {
	if o.Flowers <= 0 {
		o.Flowers = config.FlowerCount
	}
	if o.Petals <= 0 {
		o.Petals = config.PetalCount
	}
	if o.Sparkles <= 0 {
		o.Sparkles = config.SparkleCount
	}
}

// Bouquet owns the flower arena. A flower's ID is its index in Flowers and
// stays stable until the next color generation.
type Bouquet struct {
	Flowers  []flower.Flower
	Petals   *petals.System
	Sparkles *sparkle.Field

	opts       Options
	rand       rng.Source
	base       hsl.HSL
	hex        string
	generation int
}

// New builds a bouquet for the given base color.
func New(color string, opts Options, r rng.Source) *Bouquet {
	opts.normalize()
	b := &Bouquet{
		opts:     opts,
		rand:     r,
		Petals:   petals.New(opts.Petals, r),
		Sparkles: sparkle.New(opts.Sparkles, r, opts.Seed),
	}
	b.SetColor(color)
	return b
}

// SetColor switches the base color. A new color regenerates every flower; the
// same color is a no-op. Petals keep their motion and only pick up the tint.
func (b *Bouquet) SetColor(color string) bool {
	base := hsl.ParseOr(color, config.DefaultColor)
	hex := base.Hex()
	if b.generation > 0 && hex == b.hex {
		return false
	}
	b.base, b.hex = base, hex
	b.Regenerate()
	return true
}

// Regenerate redraws every flower instance from the current base color.
func (b *Bouquet) Regenerate() {
	instances := Compose(b.base, b.opts.Flowers, b.rand)
	b.Flowers = b.Flowers[:0]
	for i, inst := range instances {
		b.Flowers = append(b.Flowers, flower.New(i, inst, b.rand))
	}
	b.generation++
	log.Printf("bouquet: generation %d, %d flowers in %s", b.generation, len(b.Flowers), b.hex)
}

// Color is the current base color.
func (b *Bouquet) Color() hsl.HSL { return b.base }

// Hex is the current base color as "#rrggbb".
func (b *Bouquet) Hex() string { return b.hex }

// Generation counts flower regenerations.
func (b *Bouquet) Generation() int { return b.generation }

// Flower returns the arena entry for id, or nil.
func (b *Bouquet) Flower(id int) *flower.Flower {
	if id < 0 || id >= len(b.Flowers) {
		return nil
	}
	return &b.Flowers[id]
}

// Update advances flowers, petals and sparkles to elapsed time t. Only the
// flowers react to playing.
func (b *Bouquet) Update(t float64, playing bool) {
	for i := range b.Flowers {
		b.Flowers[i].Update(t, playing)
	}
	b.Petals.Update(t)
	b.Sparkles.Update(t)
}

// Model is the group transform.
func (b *Bouquet) Model() mgl64.Mat4 {
	return mgl64.Translate3D(Offset[0], Offset[1], Offset[2])
}

// Tie is the ribbon ring binding the stems, in group coordinates.
func (b *Bouquet) Tie() flower.Part {
	m := mgl64.Translate3D(0, -1.8, 0).Mul4(mgl64.HomogRotate3DX(math.Pi / 2))
	return flower.Part{
		Shape:   flower.Strand,
		Points:  flower.Transform(m, flower.TorusLoop(0.25, 32)),
		Width:   0.16,
		Closed:  true,
		Color:   tieColor.Colorful(),
		Opacity: 1,
	}
}

// PetalParts returns each petal as a solid in group coordinates.
func (b *Bouquet) PetalParts() []flower.Part {
	tint := b.base.Colorful()
	shape := flower.Dodecahedron(petals.Radius)
	parts := make([]flower.Part, len(b.Petals.Petals))
	for i, p := range b.Petals.Petals {
		m := mgl64.Translate3D(p.Position[0], p.Position[1], p.Position[2]).Mul4(flower.Euler(p.Rotation))
		parts[i] = flower.Part{
			Shape:   flower.Solid,
			Points:  flower.Transform(m, shape),
			Color:   tint,
			Opacity: petals.Opacity,
		}
	}
	return parts
}
