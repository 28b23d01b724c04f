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
	"strconv"
	"strings"

	"go.mau.fi/tcell"
)

const sgrReset = "\x1b[0m"

var attrCodes = []struct {
	mask tcell.AttrMask
	code string
}{
	{tcell.AttrBold, "1"},
	{tcell.AttrDim, "2"},
	{tcell.AttrItalic, "3"},
	{tcell.AttrUnderline, "4"},
	{tcell.AttrBlink, "5"},
	{tcell.AttrReverse, "7"},
}

func appendColor(codes []string, color tcell.Color, base int) []string {
	if color == tcell.ColorDefault {
		return codes
	} else if color&tcell.ColorIsRGB != 0 {
		r, g, b := color.RGB()
		return append(codes,
			strconv.Itoa(base+8), "2",
			strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b)))
	} else if color >= 0 && color < 256 {
		return append(codes, strconv.Itoa(base+8), "5", strconv.Itoa(int(color)))
	}
	return codes
}

// SGR returns the escape sequence that switches a terminal to style.
// The sequence always starts with a reset.
func SGR(style tcell.Style) string {
	fg, bg, attr := style.Decompose()
	codes := []string{"0"}
	for _, ac := range attrCodes {
		if attr&ac.mask != 0 {
			codes = append(codes, ac.code)
		}
	}
	codes = appendColor(codes, fg, 30)
	codes = appendColor(codes, bg, 40)
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

// ANSI renders the string with SGR escape sequences. Sequences are only
// emitted when the style changes, and a styled string ends with a reset.
func (str TString) ANSI() string {
	var buf strings.Builder
	current := tcell.StyleDefault
	for _, cell := range str {
		if cell.Style != current {
			if cell.Style == tcell.StyleDefault {
				buf.WriteString(sgrReset)
			} else {
				buf.WriteString(SGR(cell.Style))
			}
			current = cell.Style
		}
		buf.WriteRune(cell.Char)
	}
	if current != tcell.StyleDefault {
		buf.WriteString(sgrReset)
	}
	return buf.String()
}
