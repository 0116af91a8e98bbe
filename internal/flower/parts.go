package flower

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/bouquet/internal/hsl"
)

// Shape tells the renderer how to rasterize a Part.
type Shape int

const (
	// Solid is a convex body drawn as the hull of its projected points.
	Solid Shape = iota
	// Strand is a tube drawn as a thick polyline through its points.
	Strand
)

// Part is one mesh of a flower in flower-local coordinates.
type Part struct {
	Shape   Shape
	Points  []mgl64.Vec3
	Width   float64 // strand thickness
	Closed  bool
	Color   colorful.Color
	Opacity float64
}

var (
	stemColor  = mustHex("#4a7c59")
	calyxColor = mustHex("#5a8c69")
)

// Parts returns the flower's meshes for the current frame, stem first.
func (f *Flower) Parts() []Part {
	parts := []Part{{
		Shape:   Strand,
		Points:  f.stem.Centers,
		Width:   f.stem.Radius * 2,
		Color:   stemColor,
		Opacity: 1,
	}}

	switch f.Variant {
	case LayeredSphere:
		parts = append(parts, f.layeredSphere()...)
	case TwistedCore:
		parts = append(parts, f.twistedCore()...)
	case CupShaped:
		parts = append(parts, f.cupShaped()...)
	}
	return parts
}

func (f *Flower) layeredSphere() []Part {
	base := f.Color
	if f.Hovered {
		base = base.Offset(0, 0.1, 0.1)
	}
	factor := 0.8
	if f.Hovered {
		factor *= 1.5
	}

	parts := make([]Part, 0, 6)
	for i := 0; i < 5; i++ {
		layer := 1 - float64(i)*0.15
		verts := Wobble(Dodecahedron(0.5*layer), f.WobbleTime, factor)
		m := mgl64.Translate3D(0, float64(i)*0.1, 0).Mul4(mgl64.HomogRotate3DY(float64(i)))
		parts = append(parts, Part{
			Shape:   Solid,
			Points:  Transform(m, verts),
			Color:   base.Colorful(),
			Opacity: 0.9,
		})
	}
	parts = append(parts, Part{
		Shape:   Solid,
		Points:  Transform(mgl64.Translate3D(0, -0.4, 0), Cone(0.2, 0.6, 6)),
		Color:   calyxColor,
		Opacity: 1,
	})
	return parts
}

func (f *Flower) twistedCore() []Part {
	head := mgl64.Translate3D(0, 0.2, 0)

	core := f.Color
	if f.Hovered {
		core = core.Offset(0, 0, 0.1)
	}
	factor := 0.2
	if f.Hovered {
		factor = 0.6
	}

	ring := Wobble(TorusLoop(0.35, 32), f.WobbleTime, factor)
	ringM := head.Mul4(mgl64.Translate3D(0, -0.1, 0)).Mul4(mgl64.HomogRotate3DX(math.Pi / 2))

	return []Part{
		{
			Shape:   Strand,
			Points:  Transform(ringM, ring),
			Width:   0.2,
			Closed:  true,
			Color:   f.Color.Colorful(),
			Opacity: 1,
		},
		{
			Shape:   Strand,
			Points:  Transform(head, TorusKnot(0.25, 2, 3, 64)),
			Width:   0.2,
			Closed:  true,
			Color:   core.Colorful(),
			Opacity: 1,
		},
		{
			Shape:   Solid,
			Points:  Transform(head.Mul4(mgl64.Translate3D(0, -0.4, 0)), Cylinder(0.1, 0.05, 0.5, 5)),
			Color:   calyxColor,
			Opacity: 1,
		},
	}
}

func (f *Flower) cupShaped() []Part {
	head := mgl64.Translate3D(0, 0.4, 0)

	outer := f.Color
	if f.Hovered {
		outer = outer.Offset(0, 0.1, 0.1)
	}
	innerM := head.Mul4(mgl64.Translate3D(0, -0.1, 0)).Mul4(mgl64.HomogRotate3DX(math.Pi))

	return []Part{
		{
			Shape:   Solid,
			Points:  Transform(head, SphereCap(0.4, math.Pi*0.6, 16)),
			Color:   outer.Colorful(),
			Opacity: 1,
		},
		{
			Shape:   Solid,
			Points:  Transform(innerM, SphereCap(0.38, math.Pi*0.3, 16)),
			Color:   hsl.Scale(f.Color.Colorful(), 0.8),
			Opacity: 1,
		},
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
