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

package spantext

import (
	"go.mau.fi/tcell"
)

// Span modifies the style of the cells it's applied to.
type Span func(tcell.Style) tcell.Style

func Bold() Span {
	return func(s tcell.Style) tcell.Style { return s.Bold(true) }
}

func Italic() Span {
	return func(s tcell.Style) tcell.Style { return s.Italic(true) }
}

func Underline() Span {
	return func(s tcell.Style) tcell.Style { return s.Underline(true) }
}

func Reverse() Span {
	return func(s tcell.Style) tcell.Style { return s.Reverse(true) }
}

func Dim() Span {
	return func(s tcell.Style) tcell.Style { return s.Dim(true) }
}

func Blink() Span {
	return func(s tcell.Style) tcell.Style { return s.Blink(true) }
}

func Foreground(color tcell.Color) Span {
	return func(s tcell.Style) tcell.Style { return s.Foreground(color) }
}

func Background(color tcell.Color) Span {
	return func(s tcell.Style) tcell.Style { return s.Background(color) }
}
