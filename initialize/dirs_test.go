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

package initialize_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mau.fi/uiext/initialize"
)

func TestUserConfigDir(t *testing.T) {
	t.Setenv("UIEXT_CONFIG_HOME", "/tmp/uiext-config")
	t.Setenv("UIEXT_ROOT", "/tmp/uiext-root")
	dir, err := initialize.UserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/uiext-config", dir)

	t.Setenv("UIEXT_CONFIG_HOME", "")
	dir, err = initialize.UserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/uiext-root", "config"), dir)

	t.Setenv("UIEXT_ROOT", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	dir, err = initialize.UserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "uiext", filepath.Base(dir))
}
