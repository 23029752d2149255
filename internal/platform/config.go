package platform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML config file layout.
//
//	max_open_notes: 4
//	id_strategy: auto
//	event_buffer: 100
//	seed_notes:
//	  - title: Welcome
//	    content: Press n to add a note.
//	    open: true
type FileConfig struct {
	MaxOpenNotes int        `yaml:"max_open_notes"`
	IDStrategy   string     `yaml:"id_strategy"`
	EventBuffer  int        `yaml:"event_buffer"`
	SeedNotes    []SeedNote `yaml:"seed_notes"`
}

// LoadConfig reads a YAML config file. Unknown keys are rejected.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := ParseConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML config. An empty document yields the zero config.
func ParseConfig(r io.Reader) (*FileConfig, error) {
	var cfg FileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.MaxOpenNotes < 0 {
		return nil, fmt.Errorf("invalid config: max_open_notes must not be negative")
	}
	return &cfg, nil
}

// Options maps the file onto functional options. Zero values keep defaults.
func (c *FileConfig) Options() []Option {
	var opts []Option
	if c.MaxOpenNotes > 0 {
		opts = append(opts, WithMaxOpenNotes(c.MaxOpenNotes))
	}
	if c.IDStrategy != "" {
		opts = append(opts, WithIDStrategy(c.IDStrategy))
	}
	if c.EventBuffer > 0 {
		opts = append(opts, WithEventBuffer(c.EventBuffer))
	}
	if len(c.SeedNotes) > 0 {
		opts = append(opts, WithSeedNotes(c.SeedNotes...))
	}
	return opts
}
