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
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTrace(t *testing.T) {
	path, err := WriteTrace("something broke", []byte("goroutine 1 [running]:\n"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(path) })
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "something broke\ngoroutine 1 [running]:\n", string(data))
}

func TestRecover_PrettyPanic(t *testing.T) {
	var out bytes.Buffer
	var exitCode int
	var recovered bool
	Output, exit, OnRecover = &out, func(code int) { exitCode = code }, func() { recovered = true }
	t.Cleanup(func() { Output, exit, OnRecover = os.Stderr, os.Exit, nil })

	func() {
		defer Recover()
		panic("test panic")
	}()
	assert.True(t, recovered)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, out.String(), "A fatal error has occurred.")
	for _, line := range strings.Split(out.String(), "\n") {
		if path, ok := strings.CutPrefix(line, "The stack trace has been saved to "); ok {
			_ = os.Remove(path)
		}
	}
}

func TestRecover_Repanics(t *testing.T) {
	RecoverPrettyPanic = false
	t.Cleanup(func() { RecoverPrettyPanic = true })
	assert.PanicsWithValue(t, "again", func() {
		defer Recover()
		panic("again")
	})
}
