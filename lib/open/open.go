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

//go:build !windows

package open

import (
	"context"
	"os/exec"
	"runtime"

	"github.com/rs/zerolog"
)

var Command = "xdg-open"
var Args []string

func init() {
	if runtime.GOOS == "darwin" {
		Command = "open"
	}
}

// Open opens input with the default application and doesn't wait for it
// to exit.
func Open(ctx context.Context, input string) error {
	cmd := exec.Command(Command, append(Args, input)...)
	err := cmd.Start()
	if err != nil {
		zerolog.Ctx(ctx).Err(err).Str("command", Command).Msg("Failed to start opener")
		return err
	}
	go func() {
		if waitErr := cmd.Wait(); waitErr != nil {
			zerolog.Ctx(ctx).Warn().Err(waitErr).Str("command", Command).Msg("Opener exited with error")
		}
	}()
	return nil
}
