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

package version

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

const StaticVersion = "0.1.0"
const URL = "https://github.com/tulir/uiext"

var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var (
	Version         string
	Description     string
	ParsedBuildTime time.Time
)

func init() {
	tagWithoutV := strings.TrimPrefix(Tag, "v")
	if tagWithoutV != StaticVersion {
		suffix := "+dev"
		if len(Commit) > 8 {
			Version = fmt.Sprintf("%s%s.%s", StaticVersion, suffix, Commit[:8])
		} else {
			Version = fmt.Sprintf("%s%s.unknown", StaticVersion, suffix)
		}
	} else {
		Version = StaticVersion
	}

	if BuildTime != "unknown" {
		ParsedBuildTime, _ = time.Parse(time.RFC3339, BuildTime)
	}
	var builtWith string
	if ParsedBuildTime.IsZero() {
		BuildTime = "unknown"
		builtWith = runtime.Version()
	} else {
		BuildTime = ParsedBuildTime.Format(time.RFC1123)
		builtWith = fmt.Sprintf("built at %s with %s", BuildTime, runtime.Version())
	}
	Description = fmt.Sprintf("uiext %s (%s)", Version, builtWith)
}
