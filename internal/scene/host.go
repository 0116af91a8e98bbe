// Package scene hosts the bouquet: camera, orbit controls, lighting,
// backdrop and hover picking. It holds no application logic.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/bouquet/internal/bouquet"
	"github.com/iburimskiy/bouquet/internal/config"
	"github.com/iburimskiy/bouquet/internal/flower"
	"github.com/iburimskiy/bouquet/internal/rng"
)

// SignalSource is the outside world's view of the two scene inputs.
type SignalSource interface {
	Color() string
	Playing() bool
}

type Options struct {
	Width   int
	Height  int
	Stars   int
	Color   string
	Playing bool
	Bouquet bouquet.Options
}

// Host composes the bouquet into a viewable scene.
type Host struct {
	Camera  Camera
	Orbit   *Orbit
	Lights  Rig
	Stars   *StarField
	Shadow  ContactShadow
	Bouquet *bouquet.Bouquet

	color   string
	playing bool
	time    float64
	hovered int
	cursor  flower.Cursor
}

// NewHost builds the scene. r seeds every random draw.
func NewHost(opts Options, r rng.Source) *Host {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = config.WindowWidth, config.WindowHeight
	}
	if opts.Stars <= 0 {
		opts.Stars = config.StarCount
	}
	if opts.Color == "" {
		opts.Color = config.DefaultColor
	}
	return &Host{
		Camera:  Camera{FOV: config.CameraFOV, Width: opts.Width, Height: opts.Height},
		Orbit:   NewOrbit(InitialEye, mgl64.Vec3{}),
		Lights:  DefaultRig(),
		Stars:   NewStarField(opts.Stars, r),
		Shadow:  DefaultShadow(),
		Bouquet: bouquet.New(opts.Color, opts.Bouquet, r),
		color:   opts.Color,
		playing: opts.Playing,
		hovered: -1,
	}
}

// SetColor takes effect on the next Update.
func (h *Host) SetColor(c string) { h.color = c }

// SetPlaying takes effect on the next Update.
func (h *Host) SetPlaying(p bool) { h.playing = p }

// Sync reads both signals from src. A nil source means the default color
// and not playing.
func (h *Host) Sync(src SignalSource) {
	if src == nil {
		h.color, h.playing = config.DefaultColor, false
		return
	}
	h.color, h.playing = src.Color(), src.Playing()
}

func (h *Host) Playing() bool { return h.playing }
func (h *Host) Time() float64 { return h.time }
func (h *Host) Hovered() int { return h.hovered }
func (h *Host) Cursor() flower.Cursor { return h.cursor }

// Update advances the scene to elapsed time t.
func (h *Host) Update(t float64) {
	h.time = t
	if h.Bouquet.SetColor(h.color) {
		// a new generation starts unhovered
		h.hovered = -1
		h.cursor = flower.CursorDefault
	}
	h.Orbit.Update(h.playing)
	h.Bouquet.Update(t, h.playing)
}

// View is the camera for the current frame.
func (h *Host) View() View {
	return NewView(h.Camera, h.Orbit)
}

// Resize follows the window's logical size.
func (h *Host) Resize(w, hgt int) {
	if w > 0 && hgt > 0 {
		h.Camera.Width, h.Camera.Height = w, hgt
	}
}

// HeadBounds returns the world-space center and radius of a flower head.
func (h *Host) HeadBounds(f *flower.Flower) (mgl64.Vec3, float64) {
	tn := f.Tuning()
	m := h.Bouquet.Model().Mul4(f.Model())
	return mgl64.TransformCoordinate(tn.HeadCenter, m), tn.HeadRadius * f.CurrentScale
}

// Pick returns the front-most flower whose head covers screen point x, y, or
// -1.
func (h *Host) Pick(v View, x, y float64) int {
	best, bestDepth := -1, math.Inf(1)
	for i := range h.Bouquet.Flowers {
		f := &h.Bouquet.Flowers[i]
		c, r := h.HeadBounds(f)
		sx, sy, depth, ok := v.Project(c)
		if !ok {
			continue
		}
		sr := v.ScreenRadius(r, depth)
		if math.Hypot(x-sx, y-sy) > sr {
			continue
		}
		if depth < bestDepth {
			best, bestDepth = i, depth
		}
	}
	return best
}

// Pointer moves the hover to whatever is under x, y. inside is false when
// the pointer has left the surface. It returns the cursor the host should
// show.
func (h *Host) Pointer(x, y float64, inside bool) flower.Cursor {
	next := -1
	if inside {
		next = h.Pick(h.View(), x, y)
	}
	if next == h.hovered {
		return h.cursor
	}
	cursor := flower.CursorDefault
	if f := h.Bouquet.Flower(h.hovered); f != nil {
		cursor = f.PointerLeave()
	}
	if f := h.Bouquet.Flower(next); f != nil {
		cursor = f.PointerEnter()
	}
	h.hovered, h.cursor = next, cursor
	return cursor
}
