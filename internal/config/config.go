// Package config loads mars.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// Config is the decoded mars.toml. Zero sections keep their defaults.
type Config struct {
	Window WindowConfig `toml:"window"`
	Loop   LoopConfig   `toml:"loop"`
	Audio  AudioConfig  `toml:"audio"`
	Assets AssetsConfig `toml:"assets"`
	Locale LocaleConfig `toml:"locale"`
	Log    LogConfig    `toml:"log"`

	// Undecoded lists keys present in the file that no field consumed.
	Undecoded []string `toml:"-"`
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Fullscreen bool   `toml:"fullscreen"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
}

type LoopConfig struct {
	TPS int `toml:"tps"`
}

type AudioConfig struct {
	Muted      bool    `toml:"muted"`
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"`
	Tap        string  `toml:"tap"`   // empty: synthesized
	Music      string  `toml:"music"` // empty: no startup music
}

type AssetsConfig struct {
	Background string `toml:"background"`
}

type LocaleConfig struct {
	Lang string `toml:"lang"`
}

type LogConfig struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

var sampleRates = []int{22050, 44100, 48000}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Window: WindowConfig{Title: "MARS", Fullscreen: true, Width: 1280, Height: 720},
		Loop:   LoopConfig{TPS: 240},
		Audio:  AudioConfig{SampleRate: 44100, Volume: 1},
		Locale: LocaleConfig{Lang: "en"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load decodes path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	for _, k := range md.Undecoded() {
		cfg.Undecoded = append(cfg.Undecoded, k.String())
	}
	return cfg, nil
}

// Validate reports every out-of-range value at once.
func (c Config) Validate() error {
	var errs []error
	if c.Loop.TPS < 1 || c.Loop.TPS > 1000 {
		errs = append(errs, fmt.Errorf("loop.tps %d out of range [1, 1000]", c.Loop.TPS))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume %g out of range [0, 1]", c.Audio.Volume))
	}
	if !slices.Contains(sampleRates, c.Audio.SampleRate) {
		errs = append(errs, fmt.Errorf("audio.sample_rate %d not one of %v", c.Audio.SampleRate, sampleRates))
	}
	if _, err := language.Parse(c.Locale.Lang); err != nil {
		errs = append(errs, fmt.Errorf("locale.lang %q: %w", c.Locale.Lang, err))
	}
	return errors.Join(errs...)
}
