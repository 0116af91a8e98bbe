package sparkle

import (
	"math"
	"testing"

	"github.com/iburimskiy/bouquet/internal/rng"
)

func TestNewInsideBox(t *testing.T) {
	f := New(50, rng.New(9), 9)
	if len(f.Points) != 50 {
		t.Fatalf("got %d points, want 50", len(f.Points))
	}
	for i, p := range f.Points {
		d := p.Home.Sub(Center)
		for axis := 0; axis < 3; axis++ {
			if math.Abs(d[axis]) > Scale/2 {
				t.Errorf("point %d outside the box: %v", i, p.Home)
			}
		}
		if p.Size <= 0 || p.Size > Size {
			t.Errorf("point %d size %v", i, p.Size)
		}
	}
}

func TestUpdateStaysNearHome(t *testing.T) {
	f := New(20, rng.New(3), 3)
	moved := false
	for frame := 0; frame < 300; frame++ {
		f.Update(float64(frame) / 60)
		for i, p := range f.Points {
			if d := p.Position.Sub(p.Home).Len(); d > drift*Scale*math.Sqrt(3)+1e-9 {
				t.Fatalf("point %d drifted %v from home", i, d)
			}
			if p.Alpha < 0 || p.Alpha > Opacity {
				t.Fatalf("point %d alpha %v", i, p.Alpha)
			}
			if p.Position != p.Home {
				moved = true
			}
		}
	}
	if !moved {
		t.Error("sparkles never moved")
	}
}
