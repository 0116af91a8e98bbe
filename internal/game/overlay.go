package game

import (
	"image/color"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	titleColor    = color.RGBA{R: 255, G: 214, B: 224, A: 255}
	subtitleColor = color.RGBA{R: 255, G: 179, B: 193, A: 230}
	messageColor  = color.RGBA{R: 255, G: 255, B: 255, A: 220}
	shadowColor   = color.RGBA{A: 160}
)

// fold strips diacritics; the bitmap face only has ASCII glyphs.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// overlay is the greeting text drawn over the scene.
type overlay struct {
	face     text.Face
	title    string
	subtitle string
	message  string
}

func newOverlay(recipient, subtitle string) *overlay {
	return &overlay{
		face:     text.NewGoXFace(basicfont.Face7x13),
		title:    fold("Para " + recipient),
		subtitle: fold(subtitle),
	}
}

func (o *overlay) setMessage(m string) {
	o.message = fold(m)
}

func (o *overlay) draw(screen *ebiten.Image) {
	b := screen.Bounds()
	cx := float64(b.Dx()) / 2

	o.line(screen, o.title, cx, 28, 3, titleColor)
	o.line(screen, o.subtitle, cx, 78, 2, subtitleColor)
	if o.message != "" {
		o.line(screen, o.message, cx, float64(b.Dy())-72, 2, messageColor)
	}
}

// line draws s centered on cx with its top at y, with a drop shadow.
func (o *overlay) line(screen *ebiten.Image, s string, cx, y, scale float64, clr color.Color) {
	shadowOp := &text.DrawOptions{}
	shadowOp.GeoM.Scale(scale, scale)
	shadowOp.GeoM.Translate(cx+scale, y+scale)
	shadowOp.ColorScale.ScaleWithColor(shadowColor)
	shadowOp.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, o.face, shadowOp)

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, o.face, op)
}
