package flower

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var phi = (1 + math.Sqrt(5)) / 2

// Dodecahedron returns the 20 vertices of a regular dodecahedron of the given
// circumradius.
func Dodecahedron(radius float64) []mgl64.Vec3 {
	a, b := 1/phi, phi
	raw := []mgl64.Vec3{
		{-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {-1, 1, 1},
		{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},
		{0, -a, -b}, {0, -a, b}, {0, a, -b}, {0, a, b},
		{-a, -b, 0}, {-a, b, 0}, {a, -b, 0}, {a, b, 0},
		{-b, 0, -a}, {b, 0, -a}, {-b, 0, a}, {b, 0, a},
	}
	k := radius / math.Sqrt(3)
	for i := range raw {
		raw[i] = raw[i].Mul(k)
	}
	return raw
}

// Cone is centered on its axis midpoint with the apex up.
func Cone(radius, height float64, segments int) []mgl64.Vec3 {
	pts := ring(radius, -height/2, segments)
	return append(pts, mgl64.Vec3{0, height / 2, 0})
}

// Cylinder is centered on its axis midpoint.
func Cylinder(top, bottom, height float64, segments int) []mgl64.Vec3 {
	pts := ring(top, height/2, segments)
	return append(pts, ring(bottom, -height/2, segments)...)
}

// SphereCap covers polar angles [0, thetaLength] around +Y.
func SphereCap(radius, thetaLength float64, segments int) []mgl64.Vec3 {
	pts := []mgl64.Vec3{{0, radius, 0}}
	for i := 1; i <= segments; i++ {
		theta := thetaLength * float64(i) / float64(segments)
		y := radius * math.Cos(theta)
		pts = append(pts, ring(radius*math.Sin(theta), y, segments)...)
	}
	return pts
}

// TorusLoop is the centerline of a torus lying in the XY plane.
func TorusLoop(radius float64, segments int) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, segments)
	for i := range pts {
		u := float64(i) / float64(segments) * 2 * math.Pi
		pts[i] = mgl64.Vec3{radius * math.Cos(u), radius * math.Sin(u), 0}
	}
	return pts
}

// TorusKnot is the centerline of a (p,q) torus knot.
func TorusKnot(radius float64, p, q, segments int) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, segments)
	for i := range pts {
		u := float64(i) / float64(segments) * float64(p) * 2 * math.Pi
		quOverP := float64(q) / float64(p) * u
		cs := math.Cos(quOverP)
		pts[i] = mgl64.Vec3{
			radius * (2 + cs) * 0.5 * math.Cos(u),
			radius * (2 + cs) * 0.5 * math.Sin(u),
			radius * math.Sin(quOverP) * 0.5,
		}
	}
	return pts
}

func ring(radius, y float64, segments int) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, segments)
	for i := range pts {
		a := float64(i) / float64(segments) * 2 * math.Pi
		pts[i] = mgl64.Vec3{radius * math.Sin(a), y, radius * math.Cos(a)}
	}
	return pts
}

// Wobble twists vertices about the local Y axis by sin(time+y)/2*factor.
func Wobble(pts []mgl64.Vec3, time, factor float64) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(pts))
	for i, v := range pts {
		theta := math.Sin(time+v[1]) / 2 * factor
		c, s := math.Cos(theta), math.Sin(theta)
		out[i] = mgl64.Vec3{c*v[0] + s*v[2], v[1], -s*v[0] + c*v[2]}
	}
	return out
}

// Transform applies m to every point.
func Transform(m mgl64.Mat4, pts []mgl64.Vec3) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(pts))
	for i, p := range pts {
		out[i] = mgl64.TransformCoordinate(p, m)
	}
	return out
}

// Euler builds a rotation matrix from XYZ-ordered angles.
func Euler(r mgl64.Vec3) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(r[0]).
		Mul4(mgl64.HomogRotate3DY(r[1])).
		Mul4(mgl64.HomogRotate3DZ(r[2]))
}
