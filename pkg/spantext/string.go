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
	"strings"
	"unicode/utf8"

	"go.mau.fi/tcell"
)

type TString []Cell

func NewBlankTString() TString {
	return make([]Cell, 0)
}

func NewTString(str string) TString {
	return NewBlankTString().Append(str)
}

func NewColorTString(str string, color tcell.Color) TString {
	return NewBlankTString().AppendColor(str, color)
}

func NewStyleTString(str string, style tcell.Style) TString {
	return NewBlankTString().AppendStyle(str, style)
}

func (str TString) AppendTString(data TString) TString {
	return append(str, data...)
}

func (str TString) Append(data string) TString {
	return str.AppendCustom(data, NewCell)
}

func (str TString) AppendColor(data string, color tcell.Color) TString {
	return str.AppendCustom(data, func(r rune) Cell {
		return NewColorCell(r, color)
	})
}

func (str TString) AppendStyle(data string, style tcell.Style) TString {
	return str.AppendCustom(data, func(r rune) Cell {
		return NewStyleCell(r, style)
	})
}

// AppendCustom appends one cell per rune of data. The receiver is never
// modified.
func (str TString) AppendCustom(data string, cellCreator func(rune) Cell) TString {
	newStr := make(TString, len(str), len(str)+utf8.RuneCountInString(data))
	copy(newStr, str)
	for _, char := range data {
		newStr = append(newStr, cellCreator(char))
	}
	return newStr
}

// Colorize sets the foreground colour of length cells starting at from.
// The range is clipped to the string.
func (str TString) Colorize(from, length int, color tcell.Color) {
	str.Restyle(from, from+length, func(style tcell.Style) tcell.Style {
		return style.Foreground(color)
	})
}

// Restyle replaces the style of the cells in [start, end) with the output
// of fn. The range is clipped to the string.
func (str TString) Restyle(start, end int, fn func(tcell.Style) tcell.Style) {
	start = max(start, 0)
	end = min(end, len(str))
	for i := start; i < end; i++ {
		str[i].Style = fn(str[i].Style)
	}
}

func (str TString) RuneWidth() (width int) {
	for _, cell := range str {
		width += cell.RuneWidth()
	}
	return width
}

func (str TString) String() string {
	var buf strings.Builder
	for _, cell := range str {
		buf.WriteRune(cell.Char)
	}
	return buf.String()
}

// Truncate return string truncated with w cells
func (str TString) Truncate(w int) TString {
	if str.RuneWidth() <= w {
		return str[:]
	}
	width := 0
	i := 0
	for ; i < len(str); i++ {
		cw := str[i].RuneWidth()
		if width+cw > w {
			break
		}
		width += cw
	}
	return str[0:i]
}

func (str TString) IndexFrom(r rune, from int) int {
	for i := from; i < len(str); i++ {
		if str[i].Char == r {
			return i
		}
	}
	return -1
}

func (str TString) Index(r rune) int {
	return str.IndexFrom(r, 0)
}

func (str TString) Split(sep rune) []TString {
	var parts []TString
	for {
		m := str.Index(sep)
		if m < 0 {
			break
		}
		parts = append(parts, str[:m])
		str = str[m+1:]
	}
	return append(parts, str)
}
