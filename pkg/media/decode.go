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
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go.mau.fi/uiext/pkg/canvas"
	"go.mau.fi/uiext/pkg/orientation"
)

var ErrNotImage = errors.New("file is not an image")

// Decoded is the result of Decode.
type Decoded struct {
	*Image
	// MimeType is the sniffed content type, e.g. image/jpeg.
	MimeType string
	// Format is the name of the decoder that was used.
	Format string
}

// Decode reads an image from r using DefaultFixer's limits.
func Decode(ctx context.Context, r io.Reader) (*Decoded, error) {
	return DefaultFixer.Decode(ctx, r)
}

// Open decodes the image file at path using DefaultFixer's limits.
func Open(ctx context.Context, path string) (*Decoded, error) {
	return DefaultFixer.Open(ctx, path)
}

// Decode reads an image from r. The content type is sniffed before
// decoding, and the EXIF orientation is read for JPEGs. Other formats are
// assumed to be stored upright. Images with more pixels than MaxPixels are
// rejected with canvas.ErrTooLarge before the pixel data is decoded.
func (f *Fixer) Decode(ctx context.Context, r io.Reader) (*Decoded, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	mimeType := mimetype.Detect(data)
	if !strings.HasPrefix(mimeType.String(), "image/") {
		return nil, fmt.Errorf("%w (detected %s)", ErrNotImage, mimeType.String())
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s header: %w", mimeType.String(), err)
	} else if maxPixels := f.maxPixels(); cfg.Width > 0 && cfg.Height > 0 && cfg.Width > maxPixels/cfg.Height {
		return nil, fmt.Errorf("%w: %dx%d image exceeds the limit of %d pixels", canvas.ErrTooLarge, cfg.Width, cfg.Height, maxPixels)
	}
	raster, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", mimeType.String(), err)
	}
	orient := orientation.Up
	if format == "jpeg" {
		orient = orientation.Read(bytes.NewReader(data))
	}
	decoded := &Decoded{
		Image:    NewImage(raster, orient),
		MimeType: mimeType.String(),
		Format:   format,
	}
	zerolog.Ctx(ctx).Debug().
		Str("mime_type", decoded.MimeType).
		Object("image", decoded.Image).
		Msg("Decoded image")
	return decoded, nil
}

// Open decodes the image file at path.
func (f *Fixer) Open(ctx context.Context, path string) (*Decoded, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return f.Decode(ctx, file)
}

func (f *Fixer) maxPixels() int {
	if f.MaxPixels > 0 {
		return f.MaxPixels
	}
	return canvas.DefaultMaxPixels
}
