// Package flower implements the three animated flower variants. Each Flower
// owns its animation state; nothing is shared between instances.
package flower

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/bouquet/internal/config"
	"github.com/iburimskiy/bouquet/internal/hsl"
	"github.com/iburimskiy/bouquet/internal/rng"
	"github.com/iburimskiy/bouquet/internal/stem"
)

type Variant int

const (
	LayeredSphere Variant = iota
	TwistedCore
	CupShaped

	variantCount = 3
)

func (v Variant) String() string {
	switch v {
	case LayeredSphere:
		return "layered-sphere"
	case TwistedCore:
		return "twisted-core"
	case CupShaped:
		return "cup-shaped"
	}
	return "unknown"
}

// VariantOf maps a uniform draw in [0,1) onto equal thirds.
func VariantOf(r float64) Variant {
	v := Variant(math.Floor(r * variantCount))
	if v < LayeredSphere {
		return LayeredSphere
	}
	if v > CupShaped {
		return CupShaped
	}
	return v
}

// Tuning holds the per-variant animation and geometry constants.
type Tuning struct {
	PulseFreq  float64
	PulseAmp   float64
	HoverScale float64

	StemLength    float64
	StemCurvature float64

	HeadCenter mgl64.Vec3 // hover target, flower-local
	HeadRadius float64
}

var tunings = [variantCount]Tuning{
	LayeredSphere: {
		PulseFreq: 10, PulseAmp: 0.05, HoverScale: 0.2,
		StemLength: 4, StemCurvature: 0.3,
		HeadCenter: mgl64.Vec3{0, 0.2, 0}, HeadRadius: 0.5,
	},
	TwistedCore: {
		PulseFreq: 12, PulseAmp: 0.05, HoverScale: 0.3,
		StemLength: 3.5, StemCurvature: 0.3,
		HeadCenter: mgl64.Vec3{0, 0.2, 0}, HeadRadius: 0.45,
	},
	CupShaped: {
		PulseFreq: 8, PulseAmp: 0.08, HoverScale: 0.25,
		StemLength: 4.5, StemCurvature: 0.2,
		HeadCenter: mgl64.Vec3{0, 0.4, 0}, HeadRadius: 0.4,
	},
}

// TuningOf returns the constants for v.
func TuningOf(v Variant) Tuning {
	return tunings[v]
}

// Cursor is the pointer affordance a flower asks the host to show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
)

// Instance is the static part of a flower, fixed for one color generation.
type Instance struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3 // XYZ Euler angles
	Variant  Variant
	Scale    float64
	Color    hsl.HSL
}

// State is the live animation state of one flower.
type State struct {
	Hovered      bool
	TimeOffset   float64
	CurrentScale float64
	LiveRotation mgl64.Vec3
	WobbleTime   float64

	lastT   float64
	started bool
}

// Flower is one entry of the bouquet arena.
type Flower struct {
	ID int
	Instance
	State

	stem *stem.Tube
}

// New creates a flower and draws its phase offset from r.
func New(id int, inst Instance, r rng.Source) Flower {
	t := tunings[inst.Variant]
	return Flower{
		ID:       id,
		Instance: inst,
		State: State{
			TimeOffset:   r.Float64() * 100,
			CurrentScale: inst.Scale,
			LiveRotation: inst.Rotation,
		},
		stem: stem.New(t.StemLength, t.StemCurvature).Default(),
	}
}

// Tuning returns the constants of this flower's variant.
func (f *Flower) Tuning() Tuning {
	return tunings[f.Variant]
}

// Stem returns the extruded stem.
func (f *Flower) Stem() *stem.Tube {
	return f.stem
}

// Pulse is the beat-driven scale oscillation, zero while not playing.
func (f *Flower) Pulse(t float64, playing bool) float64 {
	if !playing {
		return 0
	}
	tn := tunings[f.Variant]
	return tn.PulseAmp * math.Sin(tn.PulseFreq*t+f.TimeOffset)
}

// TargetScale is the scale the flower is easing toward at time t.
func (f *Flower) TargetScale(t float64, playing bool) float64 {
	target := f.Scale + f.Pulse(t, playing)
	if f.Hovered {
		target += tunings[f.Variant].HoverScale
	}
	return target
}

// Update advances the animation to elapsed time t.
func (f *Flower) Update(t float64, playing bool) {
	dt := 0.0
	if f.started {
		dt = t - f.lastT
		if dt < 0 {
			dt = 0
		}
	}
	f.lastT, f.started = t, true

	target := f.TargetScale(t, playing)
	f.CurrentScale += (target - f.CurrentScale) * config.ScaleSmoothing

	f.LiveRotation = f.Instance.Rotation
	switch f.Variant {
	case LayeredSphere:
		f.LiveRotation[2] += math.Sin(t+f.TimeOffset) * 0.05
		if f.Hovered {
			f.LiveRotation[2] += math.Sin(t*20) * 0.05
		}
	case TwistedCore:
		f.LiveRotation[0] += math.Sin(t*0.5+f.TimeOffset) * 0.03
		if f.Hovered {
			f.LiveRotation[0] += 0.2
		}
	case CupShaped:
		f.LiveRotation[2] += math.Cos(t*0.7+f.TimeOffset) * 0.04
		if f.Hovered {
			f.LiveRotation[2] += math.Sin(t*15) * 0.1
		}
	}

	f.WobbleTime += dt * f.wobbleSpeed()
}

// PointerEnter marks the flower hovered and asks for a pointer cursor.
func (f *Flower) PointerEnter() Cursor {
	f.Hovered = true
	return CursorPointer
}

// PointerLeave clears the hover and releases the cursor.
func (f *Flower) PointerLeave() Cursor {
	f.Hovered = false
	return CursorDefault
}

// Model is the flower's local-to-bouquet transform for the current frame.
func (f *Flower) Model() mgl64.Mat4 {
	s := f.CurrentScale
	return mgl64.Translate3D(f.Position[0], f.Position[1], f.Position[2]).
		Mul4(Euler(f.LiveRotation)).
		Mul4(mgl64.Scale3D(s, s, s))
}

func (f *Flower) wobbleSpeed() float64 {
	switch f.Variant {
	case LayeredSphere:
		if f.Hovered {
			return 5
		}
		return 2
	case TwistedCore:
		if f.Hovered {
			return 3
		}
		return 1
	}
	return 0
}
