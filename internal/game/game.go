// Package game is the ebiten front end of the bouquet: it owns the signals,
// reads input, keeps the clock and draws the scene with its overlay.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/bouquet/internal/bouquet"
	"github.com/iburimskiy/bouquet/internal/config"
	"github.com/iburimskiy/bouquet/internal/flower"
	"github.com/iburimskiy/bouquet/internal/hsl"
	"github.com/iburimskiy/bouquet/internal/player"
	"github.com/iburimskiy/bouquet/internal/render"
	"github.com/iburimskiy/bouquet/internal/rng"
	"github.com/iburimskiy/bouquet/internal/scene"
)

// Level meter
const (
	meterWidth  = 160
	meterHeight = 8
	meterMargin = 16
)

type Game struct {
	settings *config.Settings
	host     *scene.Host
	list     render.List
	raster   raster
	overlay  *overlay
	player   *player.Player
	shots    *snapshots

	now   func() time.Time
	start time.Time
	seed  uint64 // resolved, for reproducing a run with -seed

	// signals
	color   string
	visuals bool

	palette int
	message int

	// input edge detection
	prevKey map[ebiten.Key]bool

	dragging     bool
	dragX, dragY int

	width, height int

	wantShot bool
	notice   string
	lastErr  error
}

// New builds the game from normalized settings. A failing startup track is
// reported on the status line, not returned.
func New(s *config.Settings) *Game {
	seed := rng.Resolve(s.Seed)
	r := rng.New(seed)
	host := scene.NewHost(scene.Options{
		Width:   config.WindowWidth,
		Height:  config.WindowHeight,
		Stars:   s.Stars,
		Color:   s.Color,
		Playing: s.Visuals,
		Bouquet: bouquet.Options{
			Petals:   s.Petals,
			Sparkles: s.Sparkles,
			Seed:     int64(seed),
		},
	}, r)

	g := &Game{
		settings: s,
		host:     host,
		list:     render.List{Fog: render.DefaultFog},
		overlay:  newOverlay(s.Recipient, s.Subtitle),
		player:   player.New(),
		shots:    newSnapshots(s.Snapshots),
		now:      time.Now,
		seed:     seed,
		color:    s.Color,
		visuals:  s.Visuals,
		palette:  paletteIndex(s.Palette, s.Color),
		prevKey:  map[ebiten.Key]bool{},
		width:    config.WindowWidth,
		height:   config.WindowHeight,
	}
	g.start = g.now()
	log.Printf("game: seed %d", seed)
	if len(s.Messages) > 0 {
		g.message = int(r.Float64() * float64(len(s.Messages)))
		g.overlay.setMessage(s.Messages[g.message])
	}

	if s.Audio != "" {
		if err := g.player.Load(s.Audio); err != nil {
			g.fail(err)
		}
	}
	return g
}

// Color is the current base color signal.
func (g *Game) Color() string { return g.color }

// Playing is the beat signal: the visuals toggle or music playing.
func (g *Game) Playing() bool {
	return g.visuals || g.player.Playing()
}

// Close stops audio. Pending snapshots finish on their own.
func (g *Game) Close() {
	g.player.Close()
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		g.player.TogglePause()
	}
	if justPressed(ebiten.KeyV) {
		g.visuals = !g.visuals
	}
	if justPressed(ebiten.KeyC) {
		g.cycleColor()
	}
	if justPressed(ebiten.KeyK) {
		if err := g.pickColor(); err != nil {
			g.fail(err)
		}
	}
	if justPressed(ebiten.KeyO) {
		if err := g.player.OpenDialog(); err != nil {
			g.fail(err)
		}
	}
	if justPressed(ebiten.KeyM) {
		g.nextMessage()
	}
	if justPressed(ebiten.KeyP) {
		g.wantShot = true
	}

	g.player.Update()
	g.pollSnapshots()

	g.host.Sync(g)
	g.host.Update(g.elapsed())
	g.pointer()

	ebiten.SetCursorShape(cursorShape(g.host.Cursor()))
	return nil
}

func (g *Game) elapsed() float64 {
	return g.now().Sub(g.start).Seconds()
}

// pointer handles orbit drags, wheel zoom and hover.
func (g *Game) pointer() {
	x, y := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.dragX, g.dragY = x, y
	}
	if g.dragging {
		g.host.Orbit.Rotate(float64(x-g.dragX), float64(y-g.dragY), g.height)
		g.dragX, g.dragY = x, y
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.dragging = false
		}
	}
	g.host.Orbit.SetDragging(g.dragging)

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.host.Orbit.Zoom(wy)
	}

	inside := x >= 0 && y >= 0 && x < g.width && y < g.height
	g.host.Pointer(float64(x), float64(y), inside && !g.dragging)
}

func cursorShape(c flower.Cursor) ebiten.CursorShapeType {
	if c == flower.CursorPointer {
		return ebiten.CursorShapePointer
	}
	return ebiten.CursorShapeDefault
}

func paletteIndex(palette []string, c string) int {
	want := strings.ToLower(strings.TrimSpace(c))
	for i, p := range palette {
		if strings.ToLower(p) == want {
			return i
		}
	}
	return -1
}

// cycleColor moves to the next palette entry.
func (g *Game) cycleColor() {
	p := g.settings.Palette
	if len(p) == 0 {
		return
	}
	g.palette = (g.palette + 1) % len(p)
	g.color = p[g.palette]
	g.notice = "color " + g.color
}

// pickColor asks for a color with the native picker. Cancelling is not an
// error.
func (g *Game) pickColor() error {
	cur := hsl.ParseOr(g.color, config.DefaultColor).Colorful()
	c, err := zenity.SelectColor(
		zenity.Title("Bouquet color"),
		zenity.Color(cur),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("color dialog: %w", err)
	}
	picked, ok := colorful.MakeColor(c)
	if !ok {
		return errors.New("color dialog returned a transparent color")
	}
	g.color = picked.Hex()
	g.palette = paletteIndex(g.settings.Palette, g.color)
	g.notice = "color " + g.color
	return nil
}

func (g *Game) nextMessage() {
	m := g.settings.Messages
	if len(m) == 0 {
		return
	}
	g.message = (g.message + 1) % len(m)
	g.overlay.setMessage(m[g.message])
}

func (g *Game) pollSnapshots() {
	for {
		r, ok := g.shots.poll()
		if !ok {
			return
		}
		if r.err != nil {
			g.fail(r.err)
			continue
		}
		log.Printf("game: saved snapshot %s", r.path)
		g.notice = "saved " + r.path
	}
}

func (g *Game) fail(err error) {
	log.Printf("game: %v", err)
	g.lastErr = err
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	g.list.Build(g.host)
	g.raster.draw(screen, &g.list)

	g.drawLevel(screen)
	g.overlay.draw(screen)

	if g.wantShot {
		g.wantShot = false
		g.shots.capture(screen, g.now())
	}

	ebitenutil.DebugPrintAt(screen, g.status(), 12, g.height-20)
}

func (g *Game) status() string {
	var s string
	switch {
	case g.player.Loaded() && g.player.Paused():
		s = "Paused " + g.player.Name() + " " + g.player.Progress()
	case g.player.Loaded():
		s = "Playing " + g.player.Name() + " " + g.player.Progress()
	case g.visuals:
		s = "Visuals on"
	default:
		s = "O: open music  V: visuals"
	}
	s += " | Space play/pause  C/K color  M message  P snapshot  Esc quit"
	if n := g.shots.pending; n > 0 {
		s += fmt.Sprintf(" | saving %d snapshot(s)", n)
	}
	if g.notice != "" {
		s += " | " + g.notice
	}
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	t := g.host.Time()
	top := color.NRGBA{
		R: uint8(8 + 6*math.Sin(t*0.5)),
		G: uint8(8 + 4*math.Cos(t*0.3)),
		B: uint8(24 + 8*math.Sin(t*0.7)),
		A: 255,
	}
	bottom := color.NRGBA{
		R: uint8(30 + 10*math.Sin(t*0.5+math.Pi)),
		G: uint8(12 + 6*math.Cos(t*0.3+math.Pi)),
		B: uint8(38 + 12*math.Sin(t*0.7+math.Pi)),
		A: 255,
	}
	g.raster.gradient(screen, top, bottom)
}

// drawLevel is a small loudness meter while a track is open.
func (g *Game) drawLevel(screen *ebiten.Image) {
	if !g.player.Loaded() {
		return
	}
	x := float32(g.width - meterWidth - meterMargin)
	y := float32(g.height - meterHeight - meterMargin)

	vector.DrawFilledRect(screen, x, y, meterWidth, meterHeight, color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	fill := hsl.ParseOr(g.color, config.DefaultColor).RGBA()
	vector.DrawFilledRect(screen, x, y, float32(g.player.Level())*meterWidth, meterHeight, fill, false)
	vector.StrokeRect(screen, x, y, meterWidth, meterHeight, 1, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)
}

// Layout follows the window so the projection keeps its aspect ratio.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
		g.host.Resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}
