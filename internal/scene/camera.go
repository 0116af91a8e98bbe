package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/bouquet/internal/config"
)

var (
	InitialEye = mgl64.Vec3{0, 1, 6}
	up         = mgl64.Vec3{0, 1, 0}
)

const (
	near = 0.1
	far  = 1000

	minPolar = math.Pi / 4
	maxPolar = math.Pi / 1.8
	polarEps = 1e-6
)

// Camera is a perspective camera with a vertical field of view in degrees.
type Camera struct {
	FOV    float64
	Width  int
	Height int
}

func (c Camera) aspect() float64 {
	if c.Height == 0 {
		return 1
	}
	return float64(c.Width) / float64(c.Height)
}

// Projection is the perspective matrix for the viewport.
func (c Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.aspect(), near, far)
}

// Focal is the distance in pixels at which one world unit spans one pixel.
func (c Camera) Focal() float64 {
	return float64(c.Height) / 2 / math.Tan(mgl64.DegToRad(c.FOV)/2)
}

// Orbit keeps the camera on a sphere around Target. It never pans.
type Orbit struct {
	Target mgl64.Vec3

	Theta  float64 // azimuth, from +Z toward +X
	Phi    float64 // polar angle from +Y
	Radius float64

	MinDistance float64
	MaxDistance float64
	Damping     float64
	AutoRotate  bool

	dTheta   float64
	dPhi     float64
	zoom     float64
	dragging bool
}

// NewOrbit starts at eye looking at target with the scene's limits.
func NewOrbit(eye, target mgl64.Vec3) *Orbit {
	off := eye.Sub(target)
	r := off.Len()
	return &Orbit{
		Target:      target,
		Theta:       math.Atan2(off[0], off[2]),
		Phi:         math.Acos(mgl64.Clamp(off[1]/r, -1, 1)),
		Radius:      r,
		MinDistance: config.MinDistance,
		MaxDistance: config.MaxDistance,
		Damping:     config.DampingFactor,
		AutoRotate:  true,
		zoom:        1,
	}
}

// SetDragging suspends auto-rotation while the user holds the camera.
func (o *Orbit) SetDragging(d bool) { o.dragging = d }

// Rotate turns the camera by a pointer drag of dx, dy pixels; a drag across
// the full viewport height is one revolution.
func (o *Orbit) Rotate(dx, dy float64, viewportHeight int) {
	if viewportHeight <= 0 {
		return
	}
	o.dTheta -= 2 * math.Pi * dx / float64(viewportHeight)
	o.dPhi -= 2 * math.Pi * dy / float64(viewportHeight)
}

// Zoom moves the camera by wheel steps; positive steps move closer.
func (o *Orbit) Zoom(steps float64) {
	o.zoom *= math.Pow(config.WheelZoomPerStep, steps)
}

// AutoRotateSpeed is faster while music is playing.
func AutoRotateSpeed(playing bool) float64 {
	if playing {
		return config.AutoRotatePlay
	}
	return config.AutoRotateIdle
}

// Update applies one tick of auto-rotation, damping and clamping.
func (o *Orbit) Update(playing bool) {
	if o.AutoRotate && !o.dragging {
		o.dTheta -= 2 * math.Pi / 60 / config.TicksPerSecond * AutoRotateSpeed(playing)
	}

	o.Theta += o.dTheta * o.Damping
	o.Phi += o.dPhi * o.Damping
	o.Phi = mgl64.Clamp(o.Phi, math.Max(minPolar, polarEps), math.Min(maxPolar, math.Pi-polarEps))

	o.Radius = mgl64.Clamp(o.Radius*o.zoom, o.MinDistance, o.MaxDistance)
	o.zoom = 1

	o.dTheta *= 1 - o.Damping
	o.dPhi *= 1 - o.Damping
}

// Eye is the current camera position.
func (o *Orbit) Eye() mgl64.Vec3 {
	s := math.Sin(o.Phi)
	return o.Target.Add(mgl64.Vec3{
		o.Radius * s * math.Sin(o.Theta),
		o.Radius * math.Cos(o.Phi),
		o.Radius * s * math.Cos(o.Theta),
	})
}

// View is a frozen camera for one frame.
type View struct {
	Eye    mgl64.Vec3
	VP     mgl64.Mat4
	Width  float64
	Height float64
	Focal  float64
}

// NewView combines the camera and the current orbit position.
func NewView(c Camera, o *Orbit) View {
	eye := o.Eye()
	v := mgl64.LookAtV(eye, o.Target, up)
	return View{
		Eye:    eye,
		VP:     c.Projection().Mul4(v),
		Width:  float64(c.Width),
		Height: float64(c.Height),
		Focal:  c.Focal(),
	}
}

// Project maps a world point to screen pixels. depth is the distance along
// the view axis; ok is false behind the near plane.
func (v View) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := v.VP.Mul4x1(p.Vec4(1))
	if clip[3] <= near {
		return 0, 0, clip[3], false
	}
	nx, ny := clip[0]/clip[3], clip[1]/clip[3]
	return (nx + 1) / 2 * v.Width, (1 - ny) / 2 * v.Height, clip[3], true
}

// ScreenRadius is the pixel radius of a world-space radius at depth.
func (v View) ScreenRadius(r, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return r * v.Focal / depth
}
