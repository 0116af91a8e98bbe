package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

type LightKind int

const (
	SpotLight LightKind = iota
	PointLight
)

// Light is a positioned light aimed at the origin.
type Light struct {
	Kind      LightKind
	Position  mgl64.Vec3
	Color     colorful.Color
	Intensity float64
	Angle     float64 // spot cone half-angle
	Penumbra  float64
}

// Environment is a hemisphere tint standing in for an image-based preset.
type Environment struct {
	Name      string
	Sky       colorful.Color
	Ground    colorful.Color
	Intensity float64
}

// Rig is the fixed lighting of the scene.
type Rig struct {
	Ambient float64
	Lights  []Light
	Env     Environment
}

var white = colorful.Color{R: 1, G: 1, B: 1}

// DefaultRig is ambient 0.6, a key spot from the upper right and a warm
// fill from below, plus the "city" environment.
func DefaultRig() Rig {
	fill, _ := colorful.Hex("#ffcccc")
	return Rig{
		Ambient: 0.6,
		Lights: []Light{
			{Kind: SpotLight, Position: mgl64.Vec3{10, 10, 10}, Color: white, Intensity: 1.5, Angle: 0.3, Penumbra: 0.5},
			{Kind: PointLight, Position: mgl64.Vec3{-5, -5, -5}, Color: fill, Intensity: 0.5},
		},
		Env: Environment{
			Name:      "city",
			Sky:       colorful.Color{R: 0.78, G: 0.82, B: 0.9},
			Ground:    colorful.Color{R: 0.36, G: 0.32, B: 0.3},
			Intensity: 0.25,
		},
	}
}

// Shade lights a surface point of the given base color and unit normal.
func (r Rig) Shade(base colorful.Color, pos, normal mgl64.Vec3) colorful.Color {
	sky := 0.5 + 0.5*normal[1]
	env := r.Env.Ground.BlendRgb(r.Env.Sky, mgl64.Clamp(sky, 0, 1))

	lr := r.Ambient + env.R*r.Env.Intensity
	lg := r.Ambient + env.G*r.Env.Intensity
	lb := r.Ambient + env.B*r.Env.Intensity

	for _, l := range r.Lights {
		toLight := l.Position.Sub(pos)
		if toLight.Len() == 0 {
			continue
		}
		dir := toLight.Normalize()
		k := math.Max(0, normal.Dot(dir)) * l.Intensity * l.attenuation(pos)
		lr += l.Color.R * k
		lg += l.Color.G * k
		lb += l.Color.B * k
	}

	return colorful.Color{R: base.R * lr, G: base.G * lg, B: base.B * lb}.Clamped()
}

// attenuation is the spot cone falloff; point lights are unattenuated.
func (l Light) attenuation(pos mgl64.Vec3) float64 {
	if l.Kind != SpotLight {
		return 1
	}
	axis := l.Position.Mul(-1).Normalize()
	ray := pos.Sub(l.Position).Normalize()
	cos := axis.Dot(ray)
	outer := math.Cos(l.Angle)
	inner := math.Cos(l.Angle * (1 - l.Penumbra))
	if cos <= outer {
		return 0
	}
	if cos >= inner {
		return 1
	}
	x := (cos - outer) / (inner - outer)
	return x * x * (3 - 2*x)
}
