package render

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/bouquet/internal/rng"
	"github.com/iburimskiy/bouquet/internal/scene"
)

func TestHull(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
		want int
	}{
		{"square with center", []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {1, 1}}, 4},
		{"triangle with edge point", []Point{{0, 0}, {4, 0}, {2, 0}, {2, 3}}, 3},
		{"collinear", []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, 2},
		{"two points", []Point{{0, 0}, {1, 0}}, 2},
		{"hexagon", hexagon(), 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Hull(tt.pts)
			if len(h) != tt.want {
				t.Fatalf("hull has %d points, want %d: %v", len(h), tt.want, h)
			}
			if len(h) < 3 {
				return
			}
			for i := range h {
				a, b, c := h[i], h[(i+1)%len(h)], h[(i+2)%len(h)]
				if cross(a, b, c) <= 0 {
					t.Errorf("turn at %v is not counter-clockwise", b)
				}
			}
		})
	}
}

func hexagon() []Point {
	var pts []Point
	for i := 0; i < 6; i++ {
		a := float64(i) * math.Pi / 3
		pts = append(pts, Point{math.Cos(a), math.Sin(a)}, Point{0.5 * math.Cos(a), 0.5 * math.Sin(a)})
	}
	return pts
}

func TestFog(t *testing.T) {
	c := colorful.Color{R: 1, G: 0, B: 0}
	if got := (Fog{}).apply(c, 100); got != c {
		t.Errorf("zero fog changed the color to %v", got)
	}
	if got := DefaultFog.apply(c, 1); got != c {
		t.Errorf("near shape fogged to %v", got)
	}
	far := DefaultFog.apply(c, 1000)
	want := c.BlendRgb(DefaultFog.Color, DefaultFog.Max)
	if math.Abs(far.R-want.R) > 1e-12 || math.Abs(far.B-want.B) > 1e-12 {
		t.Errorf("far shape = %v, want %v", far, want)
	}
}

func TestBuildOrdering(t *testing.T) {
	h := scene.NewHost(scene.Options{Width: 800, Height: 600, Stars: 200}, rng.New(5))
	h.Update(0)

	l := List{Fog: DefaultFog}
	l.Build(h)
	if len(l.Items) == 0 {
		t.Fatal("empty display list")
	}

	counts := map[Kind]int{}
	layers := map[Layer]int{}
	for i, it := range l.Items {
		counts[it.Kind]++
		layers[it.Layer]++
		if i == 0 {
			continue
		}
		prev := l.Items[i-1]
		if prev.Layer > it.Layer {
			t.Fatalf("item %d: layer %d after %d", i, it.Layer, prev.Layer)
		}
		if prev.Layer == it.Layer && prev.Depth < it.Depth {
			t.Fatalf("item %d: depth %v drawn after nearer %v", i, it.Depth, prev.Depth)
		}
	}
	if counts[Polygon] == 0 || counts[Line] == 0 || counts[Disc] == 0 {
		t.Errorf("missing shape kinds: %v", counts)
	}
	if layers[Backdrop] == 0 || layers[Body] == 0 {
		t.Errorf("missing layers: %v", layers)
	}
	for _, it := range l.Items {
		switch it.Kind {
		case Polygon:
			if len(it.Points) < 3 {
				t.Errorf("polygon with %d points", len(it.Points))
			}
		case Line:
			if len(it.Points) != 2 || it.Width < minLinePixels {
				t.Errorf("bad line %+v", it)
			}
		case Disc:
			if len(it.Points) != 1 || it.Width <= 0 {
				t.Errorf("bad disc %+v", it)
			}
		}
	}
}

func TestBuildReusesList(t *testing.T) {
	h := scene.NewHost(scene.Options{Width: 640, Height: 480, Stars: 50}, rng.New(8))
	h.Update(0)

	var l List
	l.Build(h)
	n := len(l.Items)
	l.Build(h)
	if len(l.Items) != n {
		t.Errorf("rebuilding the same frame gave %d items, want %d", len(l.Items), n)
	}
}
