// uiext - Media and text helpers written in Go.
// Copyright (C) 2024 Tulir Asokan
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"
	"go.mau.fi/util/ptr"
	"go.mau.fi/zeroconfig"
	"gopkg.in/yaml.v3"

	"go.mau.fi/uiext/pkg/canvas"
	"go.mau.fi/uiext/pkg/media"
)

const FileName = "config.yaml"

const (
	DefaultPreviewWidth      = 80
	DefaultPreviewBackground = "#000000"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Media   MediaConfig       `yaml:"media"`
	Preview PreviewConfig     `yaml:"preview"`
	Logging zeroconfig.Config `yaml:"logging"`

	Dir string `yaml:"-"`
}

type MediaConfig struct {
	JPEGQuality int  `yaml:"jpeg_quality"`
	MaxPixels   int  `yaml:"max_pixels"`
	AlwaysCopy  bool `yaml:"always_copy"`
}

type PreviewConfig struct {
	Width      int    `yaml:"width"`
	Background string `yaml:"background"`
}

var defaultLogWriter = zeroconfig.WriterConfig{
	Type:   zeroconfig.WriterTypeStderr,
	Format: zeroconfig.LogFormatPrettyColored,
}

func MakeDefault() Config {
	return Config{
		Media: MediaConfig{
			JPEGQuality: media.DefaultJPEGQuality,
			MaxPixels:   canvas.DefaultMaxPixels,
		},
		Preview: PreviewConfig{
			Width:      DefaultPreviewWidth,
			Background: DefaultPreviewBackground,
		},
		Logging: zeroconfig.Config{
			MinLevel: ptr.Ptr(zerolog.InfoLevel),
			Writers:  []zeroconfig.WriterConfig{defaultLogWriter},
		},
	}
}

// Load reads the config file in dir. Missing fields are filled with their
// defaults, and the file is written back if anything was filled in.
func Load(dir string) (*Config, error) {
	cfg := Config{Dir: dir}
	changed := false
	file, err := os.Open(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		changed = true
	} else if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	} else {
		err = yaml.NewDecoder(file).Decode(&cfg)
		_ = file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if cfg.Media.JPEGQuality == 0 {
		cfg.Media.JPEGQuality = media.DefaultJPEGQuality
		changed = true
	}
	if cfg.Media.MaxPixels == 0 {
		cfg.Media.MaxPixels = canvas.DefaultMaxPixels
		changed = true
	}
	if cfg.Preview.Width == 0 {
		cfg.Preview.Width = DefaultPreviewWidth
		changed = true
	}
	if cfg.Preview.Background == "" {
		cfg.Preview.Background = DefaultPreviewBackground
		changed = true
	}
	if cfg.Logging.MinLevel == nil {
		cfg.Logging.MinLevel = ptr.Ptr(zerolog.InfoLevel)
		changed = true
	}
	if len(cfg.Logging.Writers) == 0 {
		cfg.Logging.Writers = []zeroconfig.WriterConfig{defaultLogWriter}
		changed = true
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	if changed {
		if err = cfg.Save(); err != nil {
			return nil, fmt.Errorf("failed to save config: %w", err)
		}
	}
	return &cfg, nil
}

func (cfg *Config) Validate() error {
	if cfg.Media.JPEGQuality < 1 || cfg.Media.JPEGQuality > 100 {
		return fmt.Errorf("%w: media.jpeg_quality must be between 1 and 100", ErrInvalidConfig)
	} else if cfg.Media.MaxPixels < 0 {
		return fmt.Errorf("%w: media.max_pixels can't be negative", ErrInvalidConfig)
	} else if cfg.Preview.Width < 0 {
		return fmt.Errorf("%w: preview.width can't be negative", ErrInvalidConfig)
	} else if _, err := cfg.BackgroundColor(); err != nil {
		return fmt.Errorf("%w: preview.background: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (cfg *Config) Save() error {
	err := os.MkdirAll(cfg.Dir, 0700)
	if err != nil {
		return err
	}
	file, err := os.OpenFile(filepath.Join(cfg.Dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer file.Close()
	enc := yaml.NewEncoder(file)
	enc.SetIndent(2)
	if err = enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// BackgroundColor parses the preview background as a hex colour.
func (cfg *Config) BackgroundColor() (colorful.Color, error) {
	return colorful.Hex(cfg.Preview.Background)
}

// Fixer returns an orientation fixer configured with the media limits.
func (cfg *Config) Fixer() *media.Fixer {
	return &media.Fixer{
		MaxPixels:  cfg.Media.MaxPixels,
		AlwaysCopy: cfg.Media.AlwaysCopy,
	}
}
