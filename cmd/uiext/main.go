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
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"go.mau.fi/util/exerrors"
	"go.mau.fi/util/exzerolog"
	flag "maunium.net/go/mauflag"

	"go.mau.fi/uiext/config"
	"go.mau.fi/uiext/debug"
	"go.mau.fi/uiext/initialize"
	"go.mau.fi/uiext/pkg/orientation"
	"go.mau.fi/uiext/version"
)

var wantHelp, _ = flag.MakeHelpFlag()
var wantVersion = flag.MakeFull("v", "version", "View uiext version and quit.", "false").Bool()
var configDir = flag.MakeFull("c", "config", "Directory containing config.yaml.", "").String()
var quality = flag.MakeFull("q", "quality", "JPEG quality (1-100). Defaults to the config value.", "0").String()
var orientationOverride = flag.MakeFull("o", "orientation", "Orientation to use instead of the EXIF tag (name or EXIF number).", "").String()
var cropRect = flag.MakeFull("r", "rect", "Crop rectangle in points as x,y,width,height.", "").String()
var previewWidth = flag.MakeFull("w", "width", "Preview width in columns. Defaults to the config value.", "0").String()
var forcePreview = flag.MakeFull("f", "force", "Print previews even if stdout is not a terminal.", "false").Bool()
var openOutput = flag.MakeFull("O", "open", "Open written files with the default application.", "false").Bool()

var errUsage = errors.New("invalid usage")

func supportsColor() {
	fd := os.Stdout.Fd()
	color.NoColor = !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func fail(err error) {
	_, _ = color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "Error:", err)
	if errors.Is(err, errUsage) {
		flag.PrintHelp()
	}
	os.Exit(1)
}

func parseInt(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", errUsage, name)
	}
	return n, nil
}

func buildOptions(cfg *config.Config) (*options, error) {
	opts := &options{
		cfg:      cfg,
		fixer:    cfg.Fixer(),
		quality:  cfg.Media.JPEGQuality,
		width:    cfg.Preview.Width,
		force:    *forcePreview,
		open:     *openOutput,
		terminal: isTerminal(),
	}
	var err error
	if q, err := parseInt("quality", *quality); err != nil {
		return nil, err
	} else if q != 0 {
		opts.quality = q
	}
	if w, err := parseInt("width", *previewWidth); err != nil {
		return nil, err
	} else if w != 0 {
		opts.width = w
	}
	if *orientationOverride != "" {
		o, err := orientation.ParseOrientation(*orientationOverride)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errUsage, err)
		}
		opts.orientation = &o
	}
	if *cropRect != "" {
		opts.rect, err = parseRect(*cropRect)
		if err != nil {
			return nil, err
		}
	}
	opts.background, err = cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}
	return opts, nil
}

func main() {
	flag.SetHelpTitles(
		"uiext - Media and text helpers written in Go.",
		"uiext [-hvfO] [-c dir] [-q quality] [-o orientation] [-r x,y,w,h] [-w width] <info|fix|crop|preview> <input> [output]",
	)
	err := flag.Parse()

	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		flag.PrintHelp()
		os.Exit(1)
	} else if *wantHelp {
		flag.PrintHelp()
		os.Exit(0)
	} else if *wantVersion {
		fmt.Println(version.Description)
		os.Exit(0)
	}
	supportsColor()
	defer debug.Recover()

	if *configDir == "" {
		*configDir = exerrors.Must(initialize.UserConfigDir())
	}
	cfg, err := config.Load(*configDir)
	if err != nil {
		fail(err)
	}
	log := exerrors.Must(cfg.Logging.Compile())
	exzerolog.SetupDefaults(log)
	ctx := log.WithContext(context.Background())
	zerolog.Ctx(ctx).Debug().
		Str("version", version.Version).
		Str("config_dir", cfg.Dir).
		Msg("Initializing uiext")

	opts, err := buildOptions(cfg)
	if err != nil {
		fail(err)
	}
	if err = run(ctx, opts, flag.Args(), os.Stdout); err != nil {
		fail(err)
	}
}
