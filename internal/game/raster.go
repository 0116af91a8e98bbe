package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/bouquet/internal/render"
)

var whiteSubImage *ebiten.Image

// white is a 1x1 opaque source for untextured triangles. Its neighbours are
// also white so linear filtering at the edges stays white.
func white() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// raster draws display lists. Its buffers are reused across frames.
type raster struct {
	vertices []ebiten.Vertex
	indices  []uint16
}

func (r *raster) draw(dst *ebiten.Image, l *render.List) {
	for i := range l.Items {
		it := &l.Items[i]
		switch it.Kind {
		case render.Polygon:
			r.fill(dst, it.Points, it.Color)
		case render.Line:
			a, b := it.Points[0], it.Points[1]
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(it.Width), it.Color, true)
		case render.Disc:
			p := it.Points[0]
			vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(it.Width), it.Color, true)
		}
	}
}

func (r *raster) fill(dst *ebiten.Image, pts []render.Point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	r.paint(c, c, 0, 0)
	dst.DrawTriangles(r.vertices, r.indices, white(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// gradient fills dst with a vertical blend from top to bottom.
func (r *raster) gradient(dst *ebiten.Image, top, bottom color.NRGBA) {
	b := dst.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())

	r.vertices = append(r.vertices[:0],
		ebiten.Vertex{DstX: 0, DstY: 0},
		ebiten.Vertex{DstX: w, DstY: 0},
		ebiten.Vertex{DstX: 0, DstY: h},
		ebiten.Vertex{DstX: w, DstY: h},
	)
	r.indices = append(r.indices[:0], 0, 1, 2, 1, 3, 2)
	r.paint(top, bottom, 0, h)
	dst.DrawTriangles(r.vertices, r.indices, white(), nil)
}

// paint sets the source and color of every vertex, blending from c0 at y0 to
// c1 at y1. Equal y0 and y1 paint c0 everywhere.
func (r *raster) paint(c0, c1 color.NRGBA, y0, y1 float32) {
	for i := range r.vertices {
		v := &r.vertices[i]
		v.SrcX, v.SrcY = 1, 1

		k := float32(0)
		if y1 > y0 {
			k = (v.DstY - y0) / (y1 - y0)
		}
		v.ColorR = lerp8(c0.R, c1.R, k)
		v.ColorG = lerp8(c0.G, c1.G, k)
		v.ColorB = lerp8(c0.B, c1.B, k)
		v.ColorA = lerp8(c0.A, c1.A, k)
	}
}

func lerp8(a, b uint8, k float32) float32 {
	return (float32(a) + (float32(b)-float32(a))*k) / 255
}
