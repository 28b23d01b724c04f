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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mau.fi/uiext/config"
	"go.mau.fi/uiext/pkg/canvas"
	"go.mau.fi/uiext/pkg/media"
)

func TestLoad_NonexistentCreatesDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uiext")
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, media.DefaultJPEGQuality, cfg.Media.JPEGQuality)
	assert.Equal(t, canvas.DefaultMaxPixels, cfg.Media.MaxPixels)
	assert.False(t, cfg.Media.AlwaysCopy)
	assert.Equal(t, config.DefaultPreviewWidth, cfg.Preview.Width)
	assert.Equal(t, config.DefaultPreviewBackground, cfg.Preview.Background)
	require.NotNil(t, cfg.Logging.MinLevel)
	assert.Equal(t, zerolog.InfoLevel, *cfg.Logging.MinLevel)
	assert.Len(t, cfg.Logging.Writers, 1)

	stat, err := os.Stat(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.False(t, stat.IsDir())
}

func TestLoad_DefaultsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	first, err := config.Load(dir)
	require.NoError(t, err)
	second, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, first.Media, second.Media)
	assert.Equal(t, first.Preview, second.Preview)
	require.NotNil(t, second.Logging.MinLevel)
	assert.Equal(t, *first.Logging.MinLevel, *second.Logging.MinLevel)
	assert.Len(t, second.Logging.Writers, 1)
}

func TestLoad_ExistingFileIsLoaded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(`
media:
  jpeg_quality: 80
  always_copy: true
preview:
  background: "#ff8000"
`), 0600))
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.Media.JPEGQuality)
	assert.True(t, cfg.Media.AlwaysCopy)
	// Missing fields are filled in and saved.
	assert.Equal(t, canvas.DefaultMaxPixels, cfg.Media.MaxPixels)
	assert.Equal(t, config.DefaultPreviewWidth, cfg.Preview.Width)
	data, err := os.ReadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "max_pixels: 268435456")
	assert.Contains(t, string(data), "jpeg_quality: 80")

	bg, err := cfg.BackgroundColor()
	require.NoError(t, err)
	assert.InDelta(t, 1, bg.R, 1e-9)
	assert.InDelta(t, 128.0/255, bg.G, 1e-9)
	assert.InDelta(t, 0, bg.B, 1e-9)

	fixer := cfg.Fixer()
	assert.Equal(t, canvas.DefaultMaxPixels, fixer.MaxPixels)
	assert.True(t, fixer.AlwaysCopy)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"quality":    "media:\n  jpeg_quality: 101\n",
		"max pixels": "media:\n  max_pixels: -1\n",
		"width":      "preview:\n  width: -5\n",
		"background": "preview:\n  background: black\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(data), 0600))
			_, err := config.Load(dir)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_BrokenYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("media: [\n"), 0600))
	_, err := config.Load(dir)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_DirectoryFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, config.FileName), 0700))
	_, err := config.Load(dir)
	assert.Error(t, err)
}
