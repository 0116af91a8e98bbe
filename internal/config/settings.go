package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the user-tunable part of the scene. Zero fields fall back to
// the package defaults in Normalize.
type Settings struct {
	Recipient string   `yaml:"recipient"` // name in the overlay title
	Subtitle  string   `yaml:"subtitle"`
	Color     string   `yaml:"color"`   // starting base color, hex or CSS
	Palette   []string `yaml:"palette"` // colors cycled with C
	Messages  []string `yaml:"messages"`
	Seed      uint64   `yaml:"seed"` // 0 picks a time-based seed
	Petals    int      `yaml:"petals"`
	Sparkles  int      `yaml:"sparkles"`
	Stars     int      `yaml:"stars"`
	Visuals   bool     `yaml:"visuals"` // start with the beat toggle on
	Audio     string   `yaml:"audio"`   // file played at startup
	Snapshots string   `yaml:"snapshots"`
}

// Default returns the settings used when no file is given.
func Default() *Settings {
	s := &Settings{}
	s.Normalize()
	return s
}

// Normalize fills zero or invalid fields with defaults.
func (s *Settings) Normalize() {
	if s.Recipient == "" {
		s.Recipient = "Pame"
	}
	if s.Subtitle == "" {
		s.Subtitle = "La niña más linda"
	}
	if s.Color == "" {
		s.Color = DefaultColor
	}
	if len(s.Palette) == 0 {
		s.Palette = append([]string(nil), Palette...)
	}
	if len(s.Messages) == 0 {
		s.Messages = append([]string(nil), Messages...)
	}
	if s.Petals <= 0 {
		s.Petals = PetalCount
	}
	if s.Sparkles <= 0 {
		s.Sparkles = SparkleCount
	}
	if s.Stars <= 0 {
		s.Stars = StarCount
	}
	if s.Snapshots == "" {
		s.Snapshots = "snapshots"
	}
}

// Load reads settings from a YAML file and normalizes them.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML from %s: %w", path, err)
	}
	s.Normalize()
	return &s, nil
}
