// Package player plays a local audio file through the speaker and reports
// whether music is playing and how loud it currently is.
package player

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/bouquet/internal/config"
)

// ErrUnsupported is returned for files that are not wav, mp3 or flac.
var ErrUnsupported = errors.New("unsupported audio file type")

// levelWindow is about 46ms at 44.1kHz.
const levelWindow = 2048

var speakerInit = speaker.Init

// Player owns at most one open track. It is driven from the frame loop; only
// the end-of-track callback runs on the speaker goroutine.
type Player struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *tap

	name     string
	duration time.Duration
	level    float64
	paused   bool
	initDone bool

	track    uint64
	finished atomic.Uint64
}

func New() *Player {
	return &Player{}
}

// OpenDialog asks for a file and plays it. Cancelling the dialog is not an
// error.
func (p *Player) OpenDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("audio file dialog: %w", err)
	}
	return p.Load(filename)
}

// Load stops the current track, if any, and starts playing path.
func (p *Player) Load(path string) error {
	f, streamer, format, err := decode(path)
	if err != nil {
		return err
	}

	t := newTap(streamer, config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t, Paused: false}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !p.initDone || p.format.SampleRate != format.SampleRate {
		if p.initDone {
			speaker.Clear()
		}
		if err := speakerInit(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			if p.initDone {
				// the old track was cleared along with the speaker
				p.release()
				p.initDone = false
			}
			return fmt.Errorf("init speaker at %d Hz: %w", format.SampleRate, err)
		}
		p.initDone = true
	} else {
		speaker.Clear()
	}
	p.release()

	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.tap = t
	p.paused = false
	p.name = filepath.Base(path)
	p.duration = format.SampleRate.D(streamer.Len())
	p.track++

	track := p.track
	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		p.finished.Store(track)
	})))

	log.Printf("player: playing %s (%s, %d Hz)", p.name, formatDuration(p.duration), format.SampleRate)
	return nil
}

func decode(path string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, fmt.Errorf("open audio file: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return f, streamer, format, nil
}

// TogglePause pauses or resumes the current track.
func (p *Player) TogglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

// Update runs once per tick: it releases a finished track and follows the
// loudness of what played since the last tick.
func (p *Player) Update() {
	if p.ctrl != nil && p.finished.Load() == p.track {
		log.Printf("player: %s finished", p.name)
		p.release()
	}

	next := 0.0
	if p.Playing() {
		next = rms(p.tap.snapshot(levelWindow))
	}
	p.level = config.SmoothingFactor*p.level + (1-config.SmoothingFactor)*next
}

// Playing reports whether a track is loaded and not paused.
func (p *Player) Playing() bool {
	return p.ctrl != nil && !p.paused
}

// Loaded reports whether a track is open, paused or not.
func (p *Player) Loaded() bool { return p.ctrl != nil }

func (p *Player) Paused() bool { return p.paused }

// Level is the smoothed loudness in [0,1].
func (p *Player) Level() float64 { return p.level }

func (p *Player) Name() string { return p.name }

func (p *Player) Duration() time.Duration { return p.duration }

// Position is how far into the current track playback is.
func (p *Player) Position() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

// Progress is "MM:SS / MM:SS" for the status line, empty with no track.
func (p *Player) Progress() string {
	if !p.Loaded() {
		return ""
	}
	return formatDuration(p.Position()) + " / " + formatDuration(p.duration)
}

// Close stops playback and releases the file.
func (p *Player) Close() {
	if p.initDone {
		speaker.Clear()
	}
	p.release()
}

func (p *Player) release() {
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		_ = p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.tap = nil
	p.paused = false
}

// formatDuration renders whole seconds as MM:SS; minutes keep counting past
// an hour.
func formatDuration(d time.Duration) string {
	secs := max(int(d/time.Second), 0)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
