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

package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"go.mau.fi/uiext/pkg/canvas"
)

const DefaultJPEGQuality = 100

var ErrInvalidQuality = errors.New("JPEG quality must be between 1 and 100")

func normalizeQuality(quality int) (int, error) {
	if quality == 0 {
		return DefaultJPEGQuality, nil
	} else if quality < 1 || quality > 100 {
		return 0, fmt.Errorf("%w (got %d)", ErrInvalidQuality, quality)
	}
	return quality, nil
}

// EncodeJPEG writes img to w as a JPEG using DefaultFixer.
func EncodeJPEG(ctx context.Context, w io.Writer, img *Image, quality int) error {
	return DefaultFixer.EncodeJPEG(ctx, w, img, quality)
}

// JPEGStream encodes img into memory using DefaultFixer.
func JPEGStream(ctx context.Context, img *Image, quality int) (*bytes.Reader, error) {
	return DefaultFixer.JPEGStream(ctx, img, quality)
}

// SaveJPEG encodes img into path using DefaultFixer.
func SaveJPEG(ctx context.Context, path string, img *Image, quality int) error {
	return DefaultFixer.SaveJPEG(ctx, path, img, quality)
}

// EncodeJPEG writes img to w as a JPEG. JPEG output has no orientation
// tag, so the image is redrawn upright first. A quality of 0 means
// DefaultJPEGQuality.
func (f *Fixer) EncodeJPEG(ctx context.Context, w io.Writer, img *Image, quality int) error {
	quality, err := normalizeQuality(quality)
	if err != nil {
		return err
	}
	upright, err := f.Fix(ctx, img)
	if err != nil {
		return fmt.Errorf("failed to fix orientation: %w", err)
	} else if err = canvas.Validate(upright.Raster); err != nil {
		return err
	}
	err = imaging.Encode(w, upright.Raster, imaging.JPEG, imaging.JPEGQuality(quality))
	if err != nil {
		return fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return nil
}

// JPEGStream encodes img as a JPEG into memory. The returned reader is
// positioned at the start of the data.
func (f *Fixer) JPEGStream(ctx context.Context, img *Image, quality int) (*bytes.Reader, error) {
	var buf bytes.Buffer
	if err := f.EncodeJPEG(ctx, &buf, img, quality); err != nil {
		return nil, err
	}
	return bytes.NewReader(buf.Bytes()), nil
}

// SaveJPEG encodes img as a JPEG into path. The data is written to a
// temporary file next to path, which is then renamed into place.
func (f *Fixer) SaveJPEG(ctx context.Context, path string, img *Image, quality int) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		_ = tempFile.Close()
		_ = os.Remove(tempFile.Name())
	}()
	if err = f.EncodeJPEG(ctx, tempFile, img, quality); err != nil {
		return err
	}
	if err = tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err = os.Rename(tempFile.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("Saved JPEG")
	return nil
}
