// Package hsl converts between RGB and HSL. All channels live in [0,1];
// hue wraps around, saturation and lightness are clamped.
package hsl

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var ErrBadColor = errors.New("malformed color")

// HSL is a color in hue/saturation/lightness form.
type HSL struct {
	H, S, L float64
}

// New builds an HSL value with the hue wrapped and s, l clamped.
func New(h, s, l float64) HSL {
	return HSL{H: Wrap(h), S: clamp01(s), L: clamp01(l)}
}

// Wrap maps any hue onto [0,1).
func Wrap(h float64) float64 {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	if h >= 1 {
		h = 0
	}
	return h
}

// HueDistance is the shortest distance between two hues on the unit circle.
func HueDistance(a, b float64) float64 {
	d := math.Abs(Wrap(a) - Wrap(b))
	return math.Min(d, 1-d)
}

// FromRGB converts r, g, b in [0,1].
func FromRGB(r, g, b float64) HSL {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (min + max) / 2

	if min == max {
		return HSL{H: 0, S: 0, L: l}
	}

	delta := max - min
	var s float64
	if l <= 0.5 {
		s = delta / (max + min)
	} else {
		s = delta / (2 - max - min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	return HSL{H: Wrap(h / 6), S: s, L: l}
}

// RGB converts back to r, g, b in [0,1].
func (c HSL) RGB() (r, g, b float64) {
	h := Wrap(c.H)
	s := clamp01(c.S)
	l := clamp01(c.L)

	if s == 0 {
		return l, l, l
	}
	var q float64
	if l <= 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return hueToRGB(p, q, h+1.0/3), hueToRGB(p, q, h), hueToRGB(p, q, h-1.0/3)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*6*(2.0/3-t)
	}
	return p
}

// Offset shifts each channel, wrapping hue and clamping the rest.
func (c HSL) Offset(dh, ds, dl float64) HSL {
	return New(c.H+dh, c.S+ds, c.L+dl)
}

// Colorful returns the color as a go-colorful value.
func (c HSL) Colorful() colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: r, G: g, B: b}
}

// RGBA returns an opaque 8-bit color.
func (c HSL) RGBA() color.RGBA {
	r, g, b := c.Colorful().Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Hex formats the color as "#rrggbb".
func (c HSL) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// Parse reads a CSS color: "#rgb" or "#rrggbb" (the leading '#' is
// optional), a named color such as "hotpink", or an rgb()/rgba()/hsl()/hsla()
// function. Alpha is accepted and ignored.
func Parse(s string) (HSL, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return HSL{}, fmt.Errorf("%w: empty", ErrBadColor)
	case strings.HasPrefix(s, "rgb"):
		return parseRGBFunc(s)
	case strings.HasPrefix(s, "hsl"):
		return parseHSLFunc(s)
	}
	if c, ok := colornames.Map[s]; ok {
		return FromRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255), nil
	}
	return parseHex(s)
}

func parseHex(s string) (HSL, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return HSL{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return HSL{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
	}
	return FromRGB(c.R, c.G, c.B), nil
}

// funcArgs splits "name(a, b, c)" or "name(a b c / d)" into name and args.
func funcArgs(s string) (string, []string, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return "", nil, false
	}
	name := strings.TrimSpace(s[:open])
	args := strings.FieldsFunc(s[open+1:len(s)-1], func(r rune) bool {
		return r == ',' || r == '/' || unicode.IsSpace(r)
	})
	return name, args, true
}

func parseRGBFunc(s string) (HSL, error) {
	name, args, ok := funcArgs(s)
	if !ok || (name != "rgb" && name != "rgba") || len(args) < 3 || len(args) > 4 {
		return HSL{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	var ch [3]float64
	for i := range ch {
		v, pct, err := number(args[i])
		if err != nil {
			return HSL{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
		}
		if pct {
			ch[i] = clamp01(v / 100)
		} else {
			ch[i] = clamp01(v / 255)
		}
	}
	return FromRGB(ch[0], ch[1], ch[2]), nil
}

func parseHSLFunc(s string) (HSL, error) {
	name, args, ok := funcArgs(s)
	if !ok || (name != "hsl" && name != "hsla") || len(args) < 3 || len(args) > 4 {
		return HSL{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	h, _, err := number(strings.TrimSuffix(args[0], "deg"))
	if err != nil {
		return HSL{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
	}
	sat, _, err := number(args[1])
	if err != nil {
		return HSL{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
	}
	l, _, err := number(args[2])
	if err != nil {
		return HSL{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
	}
	return New(h/360, sat/100, l/100), nil
}

// number parses "12.5" or "12.5%"; pct reports the percent sign.
func number(s string) (v float64, pct bool, err error) {
	if strings.HasSuffix(s, "%") {
		s, pct = strings.TrimSuffix(s, "%"), true
	}
	v, err = strconv.ParseFloat(s, 64)
	return v, pct, err
}

// ParseOr parses s and falls back to fallback when s is malformed. The
// fallback itself must be well formed.
func ParseOr(s, fallback string) HSL {
	c, err := Parse(s)
	if err == nil {
		return c
	}
	c, err = Parse(fallback)
	if err != nil {
		panic(err)
	}
	return c
}

// Scale multiplies the RGB channels by k, like darkening a material color.
func Scale(c colorful.Color, k float64) colorful.Color {
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}.Clamped()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
