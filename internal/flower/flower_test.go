package flower

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/bouquet/internal/hsl"
	"github.com/iburimskiy/bouquet/internal/rng/rngtest"
)

func newTestFlower(v Variant) Flower {
	inst := Instance{
		Position: mgl64.Vec3{0.5, 1, 0.2},
		Rotation: mgl64.Vec3{0.3, 1.2, 0},
		Variant:  v,
		Scale:    1,
		Color:    hsl.New(0.97, 0.8, 0.6),
	}
	return New(3, inst, &rngtest.Sequence{Values: []float64{0.5}})
}

var allVariants = []Variant{LayeredSphere, TwistedCore, CupShaped}

func TestVariantOf(t *testing.T) {
	tests := []struct {
		r    float64
		want Variant
	}{
		{0, LayeredSphere},
		{0.33, LayeredSphere},
		{0.34, TwistedCore},
		{0.66, TwistedCore},
		{0.67, CupShaped},
		{0.999999, CupShaped},
		{1, CupShaped},
	}
	for _, tt := range tests {
		if got := VariantOf(tt.r); got != tt.want {
			t.Errorf("VariantOf(%v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestNewDrawsTimeOffset(t *testing.T) {
	f := newTestFlower(TwistedCore)
	if f.TimeOffset != 50 {
		t.Errorf("TimeOffset = %v, want 50", f.TimeOffset)
	}
	if f.CurrentScale != f.Scale {
		t.Errorf("CurrentScale = %v, want base scale %v", f.CurrentScale, f.Scale)
	}
	if f.ID != 3 {
		t.Errorf("ID = %d, want 3", f.ID)
	}
}

func TestPulse(t *testing.T) {
	for _, v := range allVariants {
		t.Run(v.String(), func(t *testing.T) {
			f := newTestFlower(v)
			amp := TuningOf(v).PulseAmp
			for i := 0; i < 120; i++ {
				tt := float64(i) / 60
				if p := f.Pulse(tt, false); p != 0 {
					t.Fatalf("idle pulse at t=%v is %v", tt, p)
				}
				if p := f.Pulse(tt, true); math.Abs(p) > amp+1e-12 {
					t.Fatalf("pulse %v exceeds amplitude %v", p, amp)
				}
			}
			if f.Pulse(1.0/60, true) == 0 {
				t.Error("playing pulse is zero")
			}
		})
	}
}

func TestIdleShowsOnlySway(t *testing.T) {
	f := newTestFlower(LayeredSphere)
	for i := 1; i <= 30; i++ {
		f.Update(float64(i)/60, false)
		if f.CurrentScale != f.Scale {
			t.Fatalf("frame %d: scale moved to %v while idle", i, f.CurrentScale)
		}
	}
	if f.LiveRotation[2] == f.Instance.Rotation[2] {
		t.Error("no sway while idle")
	}
	if f.LiveRotation[0] != f.Instance.Rotation[0] || f.LiveRotation[1] != f.Instance.Rotation[1] {
		t.Errorf("sway touched the wrong axis: %v", f.LiveRotation)
	}
}

func TestPlayingMovesScaleWithinOneFrame(t *testing.T) {
	f := newTestFlower(CupShaped)
	f.Update(0.5, false)
	before := f.CurrentScale
	f.Update(0.5+1.0/60, true)
	if f.CurrentScale == before {
		t.Error("scale did not react to playing within one frame")
	}
}

func TestSmoothingIsMonotonic(t *testing.T) {
	f := newTestFlower(TwistedCore)
	f.PointerEnter()
	target := f.TargetScale(0, false)

	gap := math.Abs(f.CurrentScale - target)
	for i := 1; i <= 100; i++ {
		f.Update(float64(i)/60, false)
		next := math.Abs(f.CurrentScale - target)
		if next >= gap {
			t.Fatalf("frame %d: gap %v did not shrink from %v", i, next, gap)
		}
		if f.CurrentScale > target {
			t.Fatalf("frame %d: overshoot %v > %v", i, f.CurrentScale, target)
		}
		gap = next
	}
	if gap > 1e-4 {
		t.Errorf("after 100 frames gap is still %v", gap)
	}
}

func TestHoverExceedsRestingTarget(t *testing.T) {
	for _, v := range allVariants {
		t.Run(v.String(), func(t *testing.T) {
			f := newTestFlower(v)
			resting := f.TargetScale(0, false)
			if c := f.PointerEnter(); c != CursorPointer {
				t.Errorf("PointerEnter cursor = %v", c)
			}
			for i := 1; i <= 3; i++ {
				f.Update(float64(i)/60, false)
			}
			if f.CurrentScale <= resting {
				t.Errorf("hovered scale %v does not exceed resting target %v", f.CurrentScale, resting)
			}
			if c := f.PointerLeave(); c != CursorDefault || f.Hovered {
				t.Errorf("PointerLeave: cursor %v hovered %v", c, f.Hovered)
			}
		})
	}
}

func TestWobbleAdvancesWithTime(t *testing.T) {
	tests := []struct {
		v       Variant
		idle    float64
		hovered float64
	}{
		{LayeredSphere, 2, 5},
		{TwistedCore, 1, 3},
		{CupShaped, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			f := newTestFlower(tt.v)
			f.Update(1, false)
			f.Update(2, false)
			if math.Abs(f.WobbleTime-tt.idle) > 1e-12 {
				t.Errorf("idle wobble time = %v, want %v", f.WobbleTime, tt.idle)
			}
			f.PointerEnter()
			f.Update(3, false)
			if math.Abs(f.WobbleTime-tt.idle-tt.hovered) > 1e-12 {
				t.Errorf("hovered wobble time = %v, want %v", f.WobbleTime, tt.idle+tt.hovered)
			}
		})
	}
}

func TestParts(t *testing.T) {
	tests := []struct {
		v     Variant
		count int
	}{
		{LayeredSphere, 7},
		{TwistedCore, 4},
		{CupShaped, 3},
	}
	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			f := newTestFlower(tt.v)
			parts := f.Parts()
			if len(parts) != tt.count {
				t.Fatalf("got %d parts, want %d", len(parts), tt.count)
			}
			if parts[0].Shape != Strand || parts[0].Points[0].Len() > 1e-9 {
				t.Error("first part should be the stem rooted at the origin")
			}
			for i, p := range parts {
				if len(p.Points) == 0 {
					t.Errorf("part %d is empty", i)
				}
				if p.Opacity <= 0 || p.Opacity > 1 {
					t.Errorf("part %d opacity %v", i, p.Opacity)
				}
			}
		})
	}
}

func TestHoverTintsHead(t *testing.T) {
	f := newTestFlower(CupShaped)
	idle := f.Parts()[1].Color
	f.PointerEnter()
	hov := f.Parts()[1].Color
	if hov == idle {
		t.Error("hover did not change the head tint")
	}
	_, _, li := idle.Hsl()
	_, _, lh := hov.Hsl()
	if lh <= li {
		t.Errorf("hovered lightness %v not above idle %v", lh, li)
	}
}

func TestModelScalesAroundPosition(t *testing.T) {
	f := newTestFlower(LayeredSphere)
	origin := mgl64.TransformCoordinate(mgl64.Vec3{}, f.Model())
	if origin.Sub(f.Position).Len() > 1e-12 {
		t.Errorf("model maps origin to %v, want %v", origin, f.Position)
	}
}
