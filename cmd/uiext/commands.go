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

package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	fcolor "github.com/fatih/color"
	"github.com/rs/zerolog"

	"go.mau.fi/uiext/config"
	"go.mau.fi/uiext/lib/open"
	"go.mau.fi/uiext/pkg/media"
	"go.mau.fi/uiext/pkg/orientation"
	"go.mau.fi/uiext/pkg/preview"
)

var errNotTerminal = errors.New("stdout is not a terminal, use -f to print the preview anyway")

type options struct {
	cfg         *config.Config
	fixer       *media.Fixer
	quality     int
	width       int
	orientation *orientation.Orientation
	rect        *media.Rect
	background  color.Color
	force       bool
	open        bool
	terminal    bool
}

func parseRect(val string) (*media.Rect, error) {
	parts := strings.Split(val, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: rectangle must be x,y,width,height", errUsage)
	}
	var nums [4]float64
	for i, part := range parts {
		var err error
		nums[i], err = strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid rectangle component %q", errUsage, part)
		}
	}
	if nums[2] <= 0 || nums[3] <= 0 {
		return nil, fmt.Errorf("%w: rectangle width and height must be positive", errUsage)
	}
	return &media.Rect{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}, nil
}

func defaultOutput(input, suffix string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "-" + suffix + ".jpg"
}

func run(ctx context.Context, opts *options, args []string, out io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: expected a command and an input file", errUsage)
	}
	command, input := args[0], args[1]
	var output string
	if len(args) > 2 {
		output = args[2]
	}
	if len(args) > 3 {
		return fmt.Errorf("%w: too many arguments", errUsage)
	}
	switch command {
	case "info", "fix", "crop", "preview":
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
	if command == "preview" && !opts.terminal && !opts.force {
		return errNotTerminal
	}

	decoded, err := opts.fixer.Open(ctx, input)
	if err != nil {
		return err
	}
	if opts.orientation != nil {
		zerolog.Ctx(ctx).Debug().
			Stringer("detected", decoded.Orientation).
			Stringer("override", *opts.orientation).
			Msg("Overriding image orientation")
		decoded.Orientation = *opts.orientation
	}

	switch command {
	case "info":
		return printInfo(ctx, opts, decoded, out)
	case "fix":
		if output == "" {
			output = defaultOutput(input, "fixed")
		}
		return saveJPEG(ctx, opts, decoded.Image, output, out)
	case "crop":
		if opts.rect == nil {
			return fmt.Errorf("%w: crop needs a rectangle (-r)", errUsage)
		}
		cropped, err := media.Crop(decoded.Image, *opts.rect)
		if err != nil {
			return err
		}
		if output == "" {
			output = defaultOutput(input, "cropped")
		}
		return saveJPEG(ctx, opts, cropped, output, out)
	default:
		return printPreview(ctx, opts, decoded.Image, out)
	}
}

func printInfo(ctx context.Context, opts *options, decoded *media.Decoded, out io.Writer) error {
	label := fcolor.New(fcolor.Bold)
	pixelSize, size := decoded.PixelSize(), decoded.Size()
	hash, err := opts.fixer.Blurhash(ctx, decoded.Image)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("Failed to generate blurhash")
	}
	lines := [][2]string{
		{"Type", decoded.MimeType},
		{"Pixel size", fmt.Sprintf("%dx%d", pixelSize.X, pixelSize.Y)},
		{"Orientation", fmt.Sprintf("%s (EXIF %d)", decoded.Orientation, decoded.Orientation.EXIF())},
		{"Upright size", fmt.Sprintf("%dx%d", size.X, size.Y)},
	}
	if hash != "" {
		lines = append(lines, [2]string{"Blurhash", hash})
	}
	for _, line := range lines {
		_, _ = label.Fprintf(out, "%-14s", line[0]+":")
		_, _ = fmt.Fprintln(out, line[1])
	}
	return nil
}

func saveJPEG(ctx context.Context, opts *options, img *media.Image, output string, out io.Writer) error {
	if err := opts.fixer.SaveJPEG(ctx, output, img, opts.quality); err != nil {
		return err
	}
	_, _ = fcolor.New(fcolor.FgGreen).Fprintln(out, "Wrote", output)
	if opts.open {
		return open.Open(ctx, output)
	}
	return nil
}

func printPreview(ctx context.Context, opts *options, img *media.Image, out io.Writer) error {
	upright, err := opts.fixer.Fix(ctx, img)
	if err != nil {
		return err
	}
	lines, err := preview.Lines(upright.Raster, opts.width, opts.background)
	if err != nil {
		return err
	}
	for _, line := range lines {
		_, _ = fmt.Fprintln(out, line)
	}
	return nil
}
