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

package orientation

import (
	"fmt"
	"strconv"
	"strings"
)

// Orientation says how the stored pixel data of an image relates to the
// way it should be displayed: one of four rotations, optionally mirrored.
type Orientation int

const (
	Up Orientation = iota
	Down
	Left
	Right
	UpMirrored
	DownMirrored
	LeftMirrored
	RightMirrored
)

var names = [...]string{
	Up:            "up",
	Down:          "down",
	Left:          "left",
	Right:         "right",
	UpMirrored:    "upMirrored",
	DownMirrored:  "downMirrored",
	LeftMirrored:  "leftMirrored",
	RightMirrored: "rightMirrored",
}

func (o Orientation) IsValid() bool {
	return o >= Up && o <= RightMirrored
}

func (o Orientation) String() string {
	if !o.IsValid() {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return names[o]
}

func (o Orientation) IsMirrored() bool {
	switch o {
	case UpMirrored, DownMirrored, LeftMirrored, RightMirrored:
		return true
	default:
		return false
	}
}

// SwapsDimensions reports whether the upright image is a quarter turn away
// from the stored pixels.
func (o Orientation) SwapsDimensions() bool {
	switch o {
	case Left, Right, LeftMirrored, RightMirrored:
		return true
	default:
		return false
	}
}

// ApplyToDimensions converts between stored and upright pixel dimensions.
func (o Orientation) ApplyToDimensions(w, h int) (int, int) {
	if o.SwapsDimensions() {
		return h, w
	}
	return w, h
}

// EXIF orientation tag values, indexed by the orientation whose correction
// turns an image carrying that tag upright.
var exifValues = [...]int{
	Up:            1,
	UpMirrored:    2,
	Down:          3,
	DownMirrored:  4,
	RightMirrored: 5,
	Left:          6,
	LeftMirrored:  7,
	Right:         8,
}

// FromEXIF converts an EXIF orientation tag value (1-8).
func FromEXIF(value int) (Orientation, bool) {
	for o, v := range exifValues {
		if v == value {
			return Orientation(o), true
		}
	}
	return Up, false
}

// EXIF returns the EXIF orientation tag value, or 0 for invalid orientations.
func (o Orientation) EXIF() int {
	if !o.IsValid() {
		return 0
	}
	return exifValues[o]
}

// ParseOrientation accepts the names returned by String (case-insensitively)
// as well as EXIF tag values.
func ParseOrientation(str string) (Orientation, error) {
	str = strings.TrimSpace(str)
	for o, name := range names {
		if strings.EqualFold(name, str) {
			return Orientation(o), nil
		}
	}
	if value, err := strconv.Atoi(str); err == nil {
		if o, ok := FromEXIF(value); ok {
			return o, nil
		}
	}
	return Up, fmt.Errorf("unknown orientation %q", str)
}

func (o Orientation) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("invalid orientation %d", int(o))
	}
	return []byte(o.String()), nil
}

func (o *Orientation) UnmarshalText(text []byte) (err error) {
	*o, err = ParseOrientation(string(text))
	return
}
