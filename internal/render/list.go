// Package render turns the scene into a flat, depth-sorted list of 2D shapes.
// It does no rasterization itself; the game layer draws the list.
package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/bouquet/internal/flower"
	"github.com/iburimskiy/bouquet/internal/hsl"
	"github.com/iburimskiy/bouquet/internal/scene"
	"github.com/iburimskiy/bouquet/internal/sparkle"
)

type Kind int

const (
	Polygon Kind = iota // convex, Points in hull order
	Line                // Points[0] to Points[1], Width pixels thick
	Disc                // centered on Points[0], Width is the radius
)

// Layer groups items that are drawn before anything in a later layer.
type Layer int

const (
	Backdrop Layer = iota
	Ground
	Body
)

// Item is one shape to draw. Color is straight (not premultiplied) alpha.
type Item struct {
	Kind   Kind
	Layer  Layer
	Depth  float64
	Points []Point
	Width  float64
	Color  color.NRGBA
}

// Fog blends distant shapes toward the backdrop color.
type Fog struct {
	Color colorful.Color
	Near  float64
	Far   float64
	Max   float64
}

// DefaultFog matches the dark backdrop gradient.
var DefaultFog = Fog{
	Color: colorful.Color{R: 0.04, G: 0.04, B: 0.09},
	Near:  6,
	Far:   30,
	Max:   0.5,
}

func (f Fog) apply(c colorful.Color, depth float64) colorful.Color {
	if f.Far <= f.Near {
		return c
	}
	k := mgl64.Clamp((depth-f.Near)/(f.Far-f.Near), 0, 1) * f.Max
	return c.BlendRgb(f.Color, k)
}

// List is a reusable display list.
type List struct {
	Items []Item
	Fog   Fog

	view  scene.View
	rig   scene.Rig
	core  mgl64.Vec3
	scale float64
}

const (
	starPixels    = 0.3
	sparkleWorld  = 0.01
	shadowSides   = 16
	minLinePixels = 1
)

// Build replaces the list with the current frame of h, back to front.
func (l *List) Build(h *scene.Host) {
	l.Items = l.Items[:0]
	l.view = h.View()
	l.rig = h.Lights

	b := h.Bouquet
	group := b.Model()
	l.core = mgl64.TransformCoordinate(mgl64.Vec3{0, 0.5, 0}, group)

	l.stars(h.Stars, h.Time())

	for i := range b.Flowers {
		f := &b.Flowers[i]
		m := group.Mul4(f.Model())
		l.scale = f.CurrentScale
		for _, p := range f.Parts() {
			l.part(m, p)
		}
		c, r := h.HeadBounds(f)
		l.shadow(h.Shadow, c, r)
	}

	l.scale = 1
	l.part(group, b.Tie())
	for _, p := range b.PetalParts() {
		l.part(group, p)
	}
	l.sparkles(b.Sparkles, group)

	sort.SliceStable(l.Items, func(i, j int) bool {
		p, q := &l.Items[i], &l.Items[j]
		if p.Layer != q.Layer {
			return p.Layer < q.Layer
		}
		return p.Depth > q.Depth
	})
}

func (l *List) stars(f *scene.StarField, t float64) {
	for i, s := range f.Stars {
		x, y, depth, ok := l.view.Project(s.Position)
		if !ok || !l.onScreen(x, y) {
			continue
		}
		k := f.Twinkle(i, t)
		l.Items = append(l.Items, Item{
			Kind:   Disc,
			Layer:  Backdrop,
			Depth:  depth,
			Points: []Point{{x, y}},
			Width:  s.Size * starPixels,
			Color:  nrgba(hsl.Scale(s.Color, k), k),
		})
	}
}

func (l *List) part(m mgl64.Mat4, p flower.Part) {
	switch p.Shape {
	case flower.Solid:
		l.solid(m, p)
	case flower.Strand:
		l.strand(m, p)
	}
}

func (l *List) solid(m mgl64.Mat4, p flower.Part) {
	pts := make([]Point, 0, len(p.Points))
	var centroid mgl64.Vec3
	var depth float64
	for _, v := range p.Points {
		w := mgl64.TransformCoordinate(v, m)
		x, y, d, ok := l.view.Project(w)
		if !ok {
			return
		}
		pts = append(pts, Point{x, y})
		centroid = centroid.Add(w)
		depth += d
	}
	if len(pts) == 0 {
		return
	}
	n := float64(len(pts))
	centroid = centroid.Mul(1 / n)

	hull := Hull(pts)
	if len(hull) < 3 {
		return
	}
	c := l.shade(p.Color, centroid, depth/n)
	l.Items = append(l.Items, Item{
		Kind:   Polygon,
		Layer:  Body,
		Depth:  depth / n,
		Points: hull,
		Color:  nrgba(c, p.Opacity),
	})
}

func (l *List) strand(m mgl64.Mat4, p flower.Part) {
	n := len(p.Points)
	if n < 2 {
		return
	}
	segments := n - 1
	if p.Closed {
		segments = n
	}
	world := make([]mgl64.Vec3, n)
	for i, v := range p.Points {
		world[i] = mgl64.TransformCoordinate(v, m)
	}
	for i := 0; i < segments; i++ {
		a, b := world[i], world[(i+1)%n]
		ax, ay, ad, okA := l.view.Project(a)
		bx, by, bd, okB := l.view.Project(b)
		if !okA || !okB {
			continue
		}
		depth := (ad + bd) / 2
		mid := a.Add(b).Mul(0.5)
		w := math.Max(minLinePixels, l.view.ScreenRadius(p.Width*l.scale, depth))
		l.Items = append(l.Items, Item{
			Kind:   Line,
			Layer:  Body,
			Depth:  depth,
			Points: []Point{{ax, ay}, {bx, by}},
			Width:  w,
			Color:  nrgba(l.shade(p.Color, mid, depth), p.Opacity),
		})
	}
}

func (l *List) shadow(s scene.ContactShadow, c mgl64.Vec3, r float64) {
	center, radius, alpha, ok := s.Blob(c, r)
	if !ok {
		return
	}
	pts := make([]Point, 0, shadowSides)
	var depth float64
	for i := 0; i < shadowSides; i++ {
		a := float64(i) / shadowSides * 2 * math.Pi
		w := center.Add(mgl64.Vec3{radius * math.Cos(a), 0, radius * math.Sin(a)})
		x, y, d, ok := l.view.Project(w)
		if !ok {
			return
		}
		pts = append(pts, Point{x, y})
		depth += d
	}
	hull := Hull(pts)
	if len(hull) < 3 {
		return
	}
	l.Items = append(l.Items, Item{
		Kind:   Polygon,
		Layer:  Ground,
		Depth:  depth / shadowSides,
		Points: hull,
		Color:  color.NRGBA{A: uint8(mgl64.Clamp(alpha, 0, 1) * 255)},
	})
}

func (l *List) sparkles(f *sparkle.Field, group mgl64.Mat4) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	for _, p := range f.Points {
		w := mgl64.TransformCoordinate(p.Position, group)
		x, y, depth, ok := l.view.Project(w)
		if !ok || !l.onScreen(x, y) {
			continue
		}
		l.Items = append(l.Items, Item{
			Kind:   Disc,
			Layer:  Body,
			Depth:  depth,
			Points: []Point{{x, y}},
			Width:  math.Max(minLinePixels, l.view.ScreenRadius(p.Size*sparkleWorld, depth)),
			Color:  nrgba(white, p.Alpha),
		})
	}
}

// shade lights a surface point whose normal is taken to point away from the
// bouquet core, tilted toward the viewer.
func (l *List) shade(base colorful.Color, pos mgl64.Vec3, depth float64) colorful.Color {
	out := pos.Sub(l.core)
	toEye := l.view.Eye.Sub(pos)
	if out.Len() > 0 {
		out = out.Normalize()
	}
	if toEye.Len() > 0 {
		toEye = toEye.Normalize()
	}
	n := out.Add(toEye.Mul(0.5))
	if n.Len() == 0 {
		n = mgl64.Vec3{0, 1, 0}
	}
	c := l.rig.Shade(base, pos, n.Normalize())
	return l.Fog.apply(c, depth)
}

func (l *List) onScreen(x, y float64) bool {
	return x >= 0 && y >= 0 && x <= l.view.Width && y <= l.view.Height
}

func nrgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(mgl64.Clamp(alpha, 0, 1)*255 + 0.5)}
}
