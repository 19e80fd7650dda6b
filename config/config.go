// Package config loads the niffty YAML configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/sirupsen/logrus"

	"moria.us/niffty/score"
	"moria.us/niffty/svg"
)

// A Config contains the decoding, layout, rendering and server settings.
// Missing or zero fields take their default values.
type Config struct {
	Layout score.Layout `yaml:"layout"`
	Decode Decode       `yaml:"decode"`
	Render svg.Options  `yaml:"render"`
	Serve  Serve        `yaml:"serve"`
}

// Decode contains the decoder settings.
type Decode struct {
	// Merge is the merge policy for time slices with equal start times,
	// "keep-first" or "overlay".
	Merge string `yaml:"merge"`
}

// Serve contains the address of the score viewer.
type Serve struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DefaultPort is the port the viewer listens on.
const DefaultPort = 9013

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Layout: score.DefaultLayout(),
		Decode: Decode{Merge: score.MergeKeepFirst.String()},
		Render: svg.DefaultOptions(),
		Serve:  Serve{Host: "localhost", Port: DefaultPort},
	}
}

// Load loads the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, logrus.StandardLogger().WithField("config", path))
}

// Parse parses a configuration file. Unknown fields are an error. Invalid
// values are logged and replaced with defaults.
func Parse(data []byte, log logrus.FieldLogger) (*Config, error) {
	var c Config
	if err := yaml.UnmarshalWithOptions(data, &c, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("invalid config: %v", err)
	}
	c.fill(log)
	return &c, nil
}

func positive(log logrus.FieldLogger, name string, v *int, def int) {
	switch {
	case *v == 0:
		*v = def
	case *v < 0:
		log.Warnf("'%s' is negative, using %d", name, def)
		*v = def
	}
}

func (c *Config) fill(log logrus.FieldLogger) {
	d := Default()

	l, dl := &c.Layout, d.Layout
	if l.StavesX == 0 {
		l.StavesX = dl.StavesX
	}
	if l.StavesY == 0 {
		l.StavesY = dl.StavesY
	}
	positive(log, "layout.stavesWidth", &l.StavesWidth, dl.StavesWidth)
	positive(log, "layout.stavesHeight", &l.StavesHeight, dl.StavesHeight)
	if l.MaxStaffSpacing <= 0 {
		if l.MaxStaffSpacing < 0 {
			log.Warnf("'layout.maxStaffSpacing' is negative, using %v", dl.MaxStaffSpacing)
		}
		l.MaxStaffSpacing = dl.MaxStaffSpacing
	}

	if _, err := score.ParseMergePolicy(c.Decode.Merge); err != nil {
		log.Warnf("'decode.merge': %v", err)
		c.Decode.Merge = d.Decode.Merge
	} else if c.Decode.Merge == "" {
		c.Decode.Merge = d.Decode.Merge
	}

	r, dr := &c.Render, d.Render
	if r.Margin < 0 {
		log.Warnf("'render.margin' is negative, using %d", dr.Margin)
		r.Margin = dr.Margin
	}
	positive(log, "render.width", &r.Width, dr.Width)
	positive(log, "render.height", &r.Height, dr.Height)
	positive(log, "render.fontSize", &r.FontSize, dr.FontSize)
	if r.Stroke == "" {
		r.Stroke = dr.Stroke
	}
	if r.FontFamily == "" {
		r.FontFamily = dr.FontFamily
	}

	s := &c.Serve
	if s.Host == "" {
		s.Host = d.Serve.Host
	}
	if s.Port < 0 || s.Port > 0xffff {
		log.Warnf("'serve.port' out of range: %d", s.Port)
		s.Port = 0
	}
	if s.Port == 0 {
		s.Port = d.Serve.Port
	}
}

// MergePolicy returns the configured merge policy.
func (c *Config) MergePolicy() score.MergePolicy {
	p, _ := score.ParseMergePolicy(c.Decode.Merge)
	return p
}

// ScoreOptions returns the options for loading a score with this
// configuration.
func (c *Config) ScoreOptions(log logrus.FieldLogger) []score.Option {
	opts := []score.Option{
		score.WithLayout(c.Layout),
		score.WithMergePolicy(c.MergePolicy()),
	}
	if log != nil {
		opts = append(opts, score.WithLogger(log))
	}
	return opts
}
