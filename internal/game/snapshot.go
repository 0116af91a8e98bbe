package game

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/hajimehoshi/ebiten/v2"
)

type shotResult struct {
	path string
	err  error
}

// snapshots encodes frames to WebP files off the frame loop.
type snapshots struct {
	dir     string
	done    chan shotResult
	pending int
}

func newSnapshots(dir string) *snapshots {
	return &snapshots{dir: dir, done: make(chan shotResult, 4)}
}

// capture copies the screen so the encoder never touches GPU memory.
func (s *snapshots) capture(screen *ebiten.Image, at time.Time) {
	img := image.NewRGBA(image.Rect(0, 0, screen.Bounds().Dx(), screen.Bounds().Dy()))
	screen.ReadPixels(img.Pix)
	s.save(img, at)
}

func (s *snapshots) save(img image.Image, at time.Time) {
	path := filepath.Join(s.dir, "bouquet-"+at.Format("20060102-150405.000")+".webp")
	s.pending++
	go func() {
		s.done <- shotResult{path: path, err: writeWebP(path, img)}
	}()
}

// poll returns one finished snapshot, if any.
func (s *snapshots) poll() (shotResult, bool) {
	select {
	case r := <-s.done:
		s.pending--
		return r, true
	default:
		return shotResult{}, false
	}
}

func writeWebP(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode webp %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	return nil
}
