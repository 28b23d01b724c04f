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

package media_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mau.fi/uiext/pkg/canvas"
	"go.mau.fi/uiext/pkg/media"
	"go.mau.fi/uiext/pkg/orientation"
)

// withEXIFOrientation inserts an APP1 segment with the given orientation
// tag right after the SOI marker of a JPEG.
func withEXIFOrientation(t *testing.T, data []byte, value uint16) []byte {
	t.Helper()
	require.True(t, bytes.HasPrefix(data, []byte{0xff, 0xd8}))
	var tiff bytes.Buffer
	tiff.WriteString("II")
	_ = binary.Write(&tiff, binary.LittleEndian, uint16(42))
	_ = binary.Write(&tiff, binary.LittleEndian, uint32(8))
	_ = binary.Write(&tiff, binary.LittleEndian, uint16(1))
	_ = binary.Write(&tiff, binary.LittleEndian, uint16(0x0112))
	_ = binary.Write(&tiff, binary.LittleEndian, uint16(3))
	_ = binary.Write(&tiff, binary.LittleEndian, uint32(1))
	_ = binary.Write(&tiff, binary.LittleEndian, value)
	tiff.Write([]byte{0, 0, 0, 0, 0, 0})

	var out bytes.Buffer
	out.Write(data[:2])
	out.Write([]byte{0xff, 0xe1})
	_ = binary.Write(&out, binary.BigEndian, uint16(2+6+tiff.Len()))
	out.WriteString("Exif\x00\x00")
	out.Write(tiff.Bytes())
	out.Write(data[2:])
	return out.Bytes()
}

func TestDecode_JPEGWithOrientation(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, halfImage(16, 8), &jpeg.Options{Quality: 95}))
	data := withEXIFOrientation(t, buf.Bytes(), 6)

	decoded, err := media.Decode(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", decoded.MimeType)
	assert.Equal(t, "jpeg", decoded.Format)
	assert.Equal(t, orientation.Left, decoded.Orientation)
	assert.Equal(t, image.Pt(16, 8), decoded.PixelSize())
	assert.Equal(t, image.Pt(8, 16), decoded.Size())

	upright, err := media.FixOrientation(context.Background(), decoded.Image)
	require.NoError(t, err)
	assert.Greater(t, brightness(upright.Raster, 4, 3), uint8(200))
	assert.Less(t, brightness(upright.Raster, 4, 12), uint8(50))
}

func TestDecode_PNG(t *testing.T) {
	var buf bytes.Buffer
	src := patternImage(5, 3)
	require.NoError(t, png.Encode(&buf, src))
	decoded, err := media.Decode(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, "image/png", decoded.MimeType)
	assert.Equal(t, "png", decoded.Format)
	assert.Equal(t, orientation.Up, decoded.Orientation)
	assert.Equal(t, 1.0, decoded.Scale)
	assert.Equal(t, src.Pix, nrgba(decoded.Raster).Pix)
}

func TestDecode_NotImage(t *testing.T) {
	_, err := media.Decode(context.Background(), strings.NewReader("just some plain text\n"))
	assert.ErrorIs(t, err, media.ErrNotImage)
}

func TestDecode_Truncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, patternImage(8, 8)))
	_, err := media.Decode(context.Background(), bytes.NewReader(buf.Bytes()[:buf.Len()/2]))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, media.ErrNotImage)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, patternImage(2, 2)))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0600))
	decoded, err := media.Open(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(2, 2), decoded.Size())

	_, err = media.Open(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBlurhash(t *testing.T) {
	hash, err := media.Blurhash(context.Background(), media.NewImage(halfImage(16, 8), orientation.Left))
	require.NoError(t, err)
	// 1 size flag + 1 max AC + 4 DC + 2 per AC component.
	assert.Len(t, hash, 1+1+4+2*(4*3-1))

	_, err = media.Blurhash(context.Background(), &media.Image{})
	assert.Error(t, err)
}

func TestFixer_DecodeLimit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, patternImage(5, 3)))
	data := buf.Bytes()

	_, err := (&media.Fixer{MaxPixels: 14}).Decode(context.Background(), bytes.NewReader(data))
	assert.ErrorIs(t, err, canvas.ErrTooLarge)
	decoded, err := (&media.Fixer{MaxPixels: 15}).Decode(context.Background(), bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(5, 3), decoded.PixelSize())

	path := filepath.Join(t.TempDir(), "image.png")
	require.NoError(t, os.WriteFile(path, data, 0600))
	_, err = (&media.Fixer{MaxPixels: 4}).Open(context.Background(), path)
	assert.ErrorIs(t, err, canvas.ErrTooLarge)
}

func TestFixer_BlurhashUsesLimits(t *testing.T) {
	fixer := &media.Fixer{MaxPixels: 100}
	_, err := fixer.Blurhash(context.Background(), media.NewImage(halfImage(16, 8), orientation.Left))
	assert.ErrorIs(t, err, canvas.ErrTooLarge)

	hash, err := fixer.Blurhash(context.Background(), media.NewImage(halfImage(8, 4), orientation.Left))
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
}
