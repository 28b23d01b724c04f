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

package canvas

import (
	"fmt"
	"image"
)

// Validate checks that img has a readable backing store for its declared
// bounds. Images that don't expose their pixel slice are only checked for
// nil and empty bounds.
func Validate(img image.Image) error {
	if img == nil {
		return fmt.Errorf("%w: image is nil", ErrUnreadableSource)
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return fmt.Errorf("%w: image has empty bounds %v", ErrUnreadableSource, bounds)
	}
	w, h := bounds.Dx(), bounds.Dy()
	switch src := img.(type) {
	case *image.Gray:
		return checkPix(len(src.Pix), src.Stride, w, h, 1)
	case *image.Alpha:
		return checkPix(len(src.Pix), src.Stride, w, h, 1)
	case *image.Paletted:
		if len(src.Palette) == 0 {
			return fmt.Errorf("%w: paletted image has no palette", ErrUnreadableSource)
		}
		return checkPix(len(src.Pix), src.Stride, w, h, 1)
	case *image.Gray16:
		return checkPix(len(src.Pix), src.Stride, w, h, 2)
	case *image.Alpha16:
		return checkPix(len(src.Pix), src.Stride, w, h, 2)
	case *image.RGBA:
		return checkPix(len(src.Pix), src.Stride, w, h, 4)
	case *image.NRGBA:
		return checkPix(len(src.Pix), src.Stride, w, h, 4)
	case *image.CMYK:
		return checkPix(len(src.Pix), src.Stride, w, h, 4)
	case *image.RGBA64:
		return checkPix(len(src.Pix), src.Stride, w, h, 8)
	case *image.NRGBA64:
		return checkPix(len(src.Pix), src.Stride, w, h, 8)
	case *image.YCbCr:
		return checkYCbCr(src, w, h)
	case *image.NYCbCrA:
		if err := checkYCbCr(&src.YCbCr, w, h); err != nil {
			return err
		}
		return checkPix(len(src.A), src.AStride, w, h, 1)
	}
	return nil
}

func checkYCbCr(src *image.YCbCr, w, h int) error {
	if err := checkPix(len(src.Y), src.YStride, w, h, 1); err != nil {
		return err
	}
	cw, ch := chromaSize(src.Rect, src.SubsampleRatio)
	if err := checkPix(len(src.Cb), src.CStride, cw, ch, 1); err != nil {
		return fmt.Errorf("Cb plane: %w", err)
	} else if err = checkPix(len(src.Cr), src.CStride, cw, ch, 1); err != nil {
		return fmt.Errorf("Cr plane: %w", err)
	}
	return nil
}

// chromaSize returns the size of the Cb and Cr planes of a YCbCr image
// with the given bounds, matching how image.YCbCr addresses them.
func chromaSize(r image.Rectangle, ratio image.YCbCrSubsampleRatio) (cw, ch int) {
	cw, ch = r.Dx(), r.Dy()
	switch ratio {
	case image.YCbCrSubsampleRatio422:
		cw = (r.Max.X+1)/2 - r.Min.X/2
	case image.YCbCrSubsampleRatio420:
		cw = (r.Max.X+1)/2 - r.Min.X/2
		ch = (r.Max.Y+1)/2 - r.Min.Y/2
	case image.YCbCrSubsampleRatio440:
		ch = (r.Max.Y+1)/2 - r.Min.Y/2
	case image.YCbCrSubsampleRatio411:
		cw = (r.Max.X+3)/4 - r.Min.X/4
	case image.YCbCrSubsampleRatio410:
		cw = (r.Max.X+3)/4 - r.Min.X/4
		ch = (r.Max.Y+1)/2 - r.Min.Y/2
	}
	return
}

func checkPix(length, stride, w, h, bytesPerPixel int) error {
	rowBytes := w * bytesPerPixel
	if stride < rowBytes {
		return fmt.Errorf("%w: stride %d is shorter than a row of %d bytes", ErrUnreadableSource, stride, rowBytes)
	}
	if need := (h-1)*stride + rowBytes; length < need {
		return fmt.Errorf("%w: backing store has %d bytes, need %d", ErrUnreadableSource, length, need)
	}
	return nil
}
