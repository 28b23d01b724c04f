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

package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/fatih/color"
)

var RecoverPrettyPanic = true
var OnRecover func()

// Output is where PrettyPanic prints its message.
var Output io.Writer = os.Stderr

var exit = os.Exit

// Recover recovers a panic, runs the OnRecover handler and either re-panics or
// shows an user-friendly message about the panic depending on whether or not
// the pretty panic mode is enabled.
func Recover() {
	if p := recover(); p != nil {
		if OnRecover != nil {
			OnRecover()
		}
		if RecoverPrettyPanic {
			PrettyPanic(p)
		} else {
			panic(p)
		}
	}
}

const Oops = ` __________
< Oh noes! >
 ‾‾‾\‾‾‾‾‾‾
     \   ^__^
      \  (XX)\_______
         (__)\       )\/\
          U  ||----W |
             ||     ||`

// WriteTrace saves the panic value and stack trace into a new file in the
// temp directory and returns its path.
func WriteTrace(panic any, stack []byte) (string, error) {
	traceFile := filepath.Join(os.TempDir(), fmt.Sprintf("uiext-panic-%s.txt", time.Now().Format("2006-01-02--15-04-05.000")))
	var buf bytes.Buffer
	_, _ = fmt.Fprintln(&buf, panic)
	buf.Write(stack)
	err := os.WriteFile(traceFile, buf.Bytes(), 0600)
	if err != nil {
		return "", err
	}
	return traceFile, nil
}

func PrettyPanic(panic any) {
	red := color.New(color.FgRed, color.Bold)
	_, _ = fmt.Fprintln(Output, Oops)
	_, _ = fmt.Fprintln(Output)
	_, _ = red.Fprintln(Output, "A fatal error has occurred.")
	_, _ = fmt.Fprintln(Output)

	stack := debug.Stack()
	traceFile, err := WriteTrace(panic, stack)
	if err != nil {
		_, _ = fmt.Fprintln(Output, "Saving the stack trace failed:")
		_, _ = fmt.Fprintln(Output, "--------------------------------------------------------------------------------")
		_, _ = fmt.Fprintln(Output, err)
		_, _ = fmt.Fprintln(Output, "--------------------------------------------------------------------------------")
		_, _ = fmt.Fprintln(Output)
		_, _ = fmt.Fprintln(Output, "Please provide the file save error (above) and the stack trace of the original error (below) when filing an issue.")
		_, _ = fmt.Fprintln(Output)
		_, _ = fmt.Fprintln(Output, "--------------------------------------------------------------------------------")
		_, _ = fmt.Fprintln(Output, panic)
		_, _ = Output.Write(stack)
		_, _ = fmt.Fprintln(Output, "--------------------------------------------------------------------------------")
	} else {
		_, _ = fmt.Fprintln(Output, "The stack trace has been saved to", traceFile)
		_, _ = fmt.Fprintln(Output)
		_, _ = fmt.Fprintln(Output, "Please provide the contents of that file when filing an issue.")
	}
	exit(1)
}
