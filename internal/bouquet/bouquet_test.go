package bouquet

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/bouquet/internal/flower"
	"github.com/iburimskiy/bouquet/internal/hsl"
	"github.com/iburimskiy/bouquet/internal/rng"
	"github.com/iburimskiy/bouquet/internal/rng/rngtest"
)

func TestDomeKeepsElevenOfEighteen(t *testing.T) {
	pts := SpherePoints(18)
	dome := Dome(pts, -0.2)
	if len(dome) != 11 {
		t.Fatalf("dome kept %d points, want 11", len(dome))
	}
	for i, p := range pts {
		kept := i <= 10
		if (p[1] >= -0.2) != kept {
			t.Errorf("point %d (y=%v) kept=%v", i, p[1], !kept)
		}
	}
	for i := 0; i < 5; i++ {
		if again := Dome(SpherePoints(18), -0.2); len(again) != 11 {
			t.Fatalf("run %d kept %d points", i, len(again))
		}
	}
}

func TestSpherePointsOnUnitSphere(t *testing.T) {
	pts := SpherePoints(18)
	if pts[0][1] != 1 || pts[17][1] != -1 {
		t.Errorf("y range %v..%v, want 1..-1", pts[0][1], pts[17][1])
	}
	for i, p := range pts {
		if math.Abs(p.Len()-1) > 1e-12 {
			t.Errorf("point %d has length %v", i, p.Len())
		}
	}
	theta := 3 * GoldenAngle
	want := mgl64.Vec3{math.Cos(theta), 0, math.Sin(theta)}.Mul(math.Sqrt(1 - pts[3][1]*pts[3][1]))
	if got := (mgl64.Vec3{pts[3][0], 0, pts[3][2]}); got.Sub(want).Len() > 1e-12 {
		t.Errorf("point 3 = %v, want horizontal %v", got, want)
	}
}

func TestOrientationFacesOutward(t *testing.T) {
	tests := []struct {
		name      string
		pos       mgl64.Vec3
		wantPitch float64
		wantYaw   float64
	}{
		// -x and -z are negative zero here, so atan2 lands on -π
		{"top", mgl64.Vec3{0, 1, 0}, 0, -math.Pi},
		{"front horizon", mgl64.Vec3{0, 0, 1}, math.Pi / 2 * 0.7, -math.Pi},
		{"right horizon", mgl64.Vec3{1, 0, 0}, math.Pi / 2 * 0.7, -math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Orientation(tt.pos)
			if math.Abs(r[0]-tt.wantPitch) > 1e-12 {
				t.Errorf("pitch = %v, want %v", r[0], tt.wantPitch)
			}
			if math.Abs(r[1]-tt.wantYaw) > 1e-12 {
				t.Errorf("yaw = %v, want %v", r[1], tt.wantYaw)
			}
			if r[2] != 0 {
				t.Errorf("roll = %v, want 0", r[2])
			}
		})
	}
}

func TestJitterColorWraps(t *testing.T) {
	base := hsl.New(0.99, 1, 0.5)
	c := JitterColor(base, &rngtest.Sequence{Values: []float64{0.999999, 0}})
	if c.H > 0.05 {
		t.Errorf("hue %v did not wrap past 1", c.H)
	}
	if d := hsl.HueDistance(c.H, 0.04); d > 1e-4 {
		t.Errorf("hue %v, want about 0.04", c.H)
	}
	if c.S != 0.8 || c.L != 0.5 {
		t.Errorf("s=%v l=%v, want 0.8 / 0.5", c.S, c.L)
	}
}

func TestComposeDistribution(t *testing.T) {
	base := hsl.ParseOr("#ff4d6d", "#ff4d6d")
	for seed := uint64(1); seed <= 20; seed++ {
		insts := Compose(base, 18, rng.New(seed))
		if len(insts) != 11 {
			t.Fatalf("seed %d: %d instances", seed, len(insts))
		}
		for i, in := range insts {
			if in.Scale < 0.8 || in.Scale >= 1.2 {
				t.Errorf("seed %d instance %d scale %v", seed, i, in.Scale)
			}
			if d := hsl.HueDistance(in.Color.H, base.H); d > 0.05+1e-12 {
				t.Errorf("seed %d instance %d hue off by %v", seed, i, d)
			}
			if in.Color.S != 0.8 {
				t.Errorf("seed %d instance %d saturation %v", seed, i, in.Color.S)
			}
			if in.Color.L < 0.5 || in.Color.L >= 0.8 {
				t.Errorf("seed %d instance %d lightness %v", seed, i, in.Color.L)
			}
			if in.Variant < flower.LayeredSphere || in.Variant > flower.CupShaped {
				t.Errorf("seed %d instance %d variant %v", seed, i, in.Variant)
			}
		}
	}
}

func TestComposeIsDeterministicForSeed(t *testing.T) {
	base := hsl.ParseOr("#c9184a", "#ff4d6d")
	a := Compose(base, 18, rng.New(77))
	b := Compose(base, 18, rng.New(77))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("instance %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestComposeExactDraws(t *testing.T) {
	// per point: variant, scale, hue, lightness
	seq := &rngtest.Sequence{Values: []float64{0.5, 0.25, 0.5, 0.5}}
	insts := Compose(hsl.New(0.3, 1, 0.5), 18, seq)
	want := mgl64.Vec3{0, 1.2 + 0.5, 0}
	if insts[0].Position.Sub(want).Len() > 1e-12 {
		t.Errorf("first position %v, want %v", insts[0].Position, want)
	}
	for i, in := range insts {
		if in.Variant != flower.TwistedCore {
			t.Errorf("instance %d variant %v", i, in.Variant)
		}
		if math.Abs(in.Scale-0.9) > 1e-12 {
			t.Errorf("instance %d scale %v", i, in.Scale)
		}
		if math.Abs(in.Color.H-0.3) > 1e-12 || math.Abs(in.Color.L-0.65) > 1e-12 {
			t.Errorf("instance %d color %+v", i, in.Color)
		}
	}
}

func TestBouquetRegeneratesOnNewColor(t *testing.T) {
	b := New("#ff4d6d", Options{}, rng.New(5))
	if len(b.Flowers) != 11 {
		t.Fatalf("got %d flowers", len(b.Flowers))
	}
	for i := range b.Flowers {
		if b.Flowers[i].ID != i {
			t.Errorf("flower %d has ID %d", i, b.Flowers[i].ID)
		}
	}
	gen := b.Generation()

	if b.SetColor("#FF4D6D") {
		t.Error("same color regenerated the flowers")
	}
	if b.Generation() != gen {
		t.Error("generation moved on a same-color update")
	}

	for i := 0; i < 30; i++ {
		b.Update(float64(i)/60, false)
	}
	petalsBefore := append(b.Petals.Petals[:0:0], b.Petals.Petals...)

	if !b.SetColor("#e0aaff") {
		t.Fatal("new color did not regenerate")
	}
	if b.Generation() != gen+1 {
		t.Errorf("generation = %d, want %d", b.Generation(), gen+1)
	}
	for i := range petalsBefore {
		if petalsBefore[i] != b.Petals.Petals[i] {
			t.Fatalf("petal %d was disturbed by recolor", i)
		}
	}
	if got := b.PetalParts()[0].Color; got != b.Color().Colorful() {
		t.Errorf("petal tint %v, want base %v", got, b.Color().Colorful())
	}
}

func TestBouquetMalformedColorFallsBack(t *testing.T) {
	b := New("definitely not a color", Options{}, rng.New(8))
	if b.Hex() != "#ff4d6d" {
		t.Errorf("Hex() = %q, want the default", b.Hex())
	}
}

func TestBouquetAcceptsCSSColors(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"#ff0000", "#ff0000"},
		{"red", "#ff0000"},
		{"hotpink", "#ff69b4"},
		{"rgb(255, 0, 0)", "#ff0000"},
		{"hsl(120, 100%, 50%)", "#00ff00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := New(tt.in, Options{}, rng.New(1)).Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBouquetPlayingDoesNotTouchPetals(t *testing.T) {
	idle := New("#ff4d6d", Options{}, rng.New(11))
	live := New("#ff4d6d", Options{}, rng.New(11))
	for i := 0; i < 60; i++ {
		tt := float64(i) / 60
		idle.Update(tt, false)
		live.Update(tt, true)
	}
	for i := range idle.Petals.Petals {
		if idle.Petals.Petals[i] != live.Petals.Petals[i] {
			t.Fatalf("petal %d depends on playing", i)
		}
	}
}

func TestFlowerLookup(t *testing.T) {
	b := New("#ffd700", Options{}, rng.New(2))
	if b.Flower(-1) != nil || b.Flower(len(b.Flowers)) != nil {
		t.Error("out-of-range lookup returned a flower")
	}
	f := b.Flower(0)
	f.PointerEnter()
	if !b.Flowers[0].Hovered {
		t.Error("Flower did not return the arena entry")
	}
}

func TestTieSitsBelowFlowers(t *testing.T) {
	b := New("#ff4d6d", Options{}, rng.New(4))
	for _, p := range b.Tie().Points {
		if math.Abs(p[1]+1.8) > 0.26 {
			t.Fatalf("tie point %v far from y=-1.8", p)
		}
	}
}
