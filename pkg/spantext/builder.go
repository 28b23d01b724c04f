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
)

type section struct {
	start, end int
	spans      []Span
}

// Builder collects text and remembers which spans apply to which part of
// it. The zero value is ready to use.
type Builder struct {
	text     strings.Builder
	length   int
	sections []section
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Append adds text to the builder. If any spans are given, they will be
// applied to exactly the appended runes when building.
func (b *Builder) Append(text string, spans ...Span) *Builder {
	n := utf8.RuneCountInString(text)
	if len(spans) > 0 {
		b.sections = append(b.sections, section{
			start: b.length,
			end:   b.length + n,
			spans: append([]Span(nil), spans...),
		})
	}
	b.text.WriteString(text)
	b.length += n
	return b
}

// Build returns the styled text. Sections are applied in the order they
// were appended, so later spans win when they touch the same attribute.
func (b *Builder) Build() TString {
	str := NewTString(b.text.String())
	for _, sec := range b.sections {
		for _, span := range sec.spans {
			str.Restyle(sec.start, sec.end, span)
		}
	}
	return str
}

// Len returns the number of runes appended so far.
func (b *Builder) Len() int {
	return b.length
}

func (b *Builder) String() string {
	return b.text.String()
}
