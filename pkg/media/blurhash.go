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
	"context"
	"fmt"

	"github.com/buckket/go-blurhash"
	"github.com/disintegration/imaging"

	"go.mau.fi/uiext/pkg/canvas"
)

const blurhashSide = 64

// Blurhash returns a blurhash of img using DefaultFixer.
func Blurhash(ctx context.Context, img *Image) (string, error) {
	return DefaultFixer.Blurhash(ctx, img)
}

// Blurhash returns a 4x3 component blurhash of the upright image.
func (f *Fixer) Blurhash(ctx context.Context, img *Image) (string, error) {
	upright, err := f.Fix(ctx, img)
	if err != nil {
		return "", fmt.Errorf("failed to fix orientation: %w", err)
	} else if err = canvas.Validate(upright.Raster); err != nil {
		return "", err
	}
	small := imaging.Fit(upright.Raster, blurhashSide, blurhashSide, imaging.Box)
	hash, err := blurhash.Encode(4, 3, small)
	if err != nil {
		return "", fmt.Errorf("failed to generate blurhash: %w", err)
	}
	return hash, nil
}
