// Based on https://github.com/disintegration/imaging/blob/v1.6.2/io.go#L285-L422
// The MIT License (MIT)
// Copyright (c) 2012 Grigory Dryapak

package orientation

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	ErrNotJPEG       = errors.New("missing JPEG SOI marker")
	ErrNoEXIF        = errors.New("no EXIF block found")
	ErrNoOrientation = errors.New("no orientation tag in EXIF block")
)

const (
	markerSOI      = 0xffd8
	markerAPP1     = 0xffe1
	markerSOS      = 0xffda
	exifHeader     = 0x45786966
	byteOrderBE    = 0x4d4d
	byteOrderLE    = 0x4949
	orientationTag = 0x0112
)

// Read tries to read the orientation EXIF flag from image data in r.
// If the EXIF data is missing or malformed, it returns Up.
func Read(r io.Reader) Orientation {
	value, err := ReadEXIF(r)
	if err != nil {
		return Up
	}
	o, _ := FromEXIF(value)
	return o
}

// ReadEXIF returns the raw EXIF orientation tag value from JPEG data in r.
func ReadEXIF(r io.Reader) (int, error) {
	var soi uint16
	if err := binary.Read(r, binary.BigEndian, &soi); err != nil {
		return 0, err
	} else if soi != markerSOI {
		return 0, ErrNotJPEG
	}

	// Find the Exif APP1 segment. Other APP1 segments, like XMP, are skipped.
	for {
		var marker, size uint16
		if err := binary.Read(r, binary.BigEndian, &marker); err != nil {
			return 0, err
		}
		if marker>>8 != 0xff {
			return 0, fmt.Errorf("invalid JPEG marker %#04x", marker)
		} else if marker == markerSOS {
			return 0, ErrNoEXIF
		}
		if err := binary.Read(r, binary.BigEndian, &size); err != nil {
			return 0, err
		} else if size < 2 {
			return 0, fmt.Errorf("invalid JPEG segment size %d", size)
		}
		remaining := int64(size) - 2
		if marker == markerAPP1 && remaining >= 6 {
			var header uint32
			if err := binary.Read(r, binary.BigEndian, &header); err != nil {
				return 0, err
			}
			remaining -= 4
			if header == exifHeader {
				if _, err := io.CopyN(io.Discard, r, 2); err != nil {
					return 0, err
				}
				break
			}
		}
		if _, err := io.CopyN(io.Discard, r, remaining); err != nil {
			return 0, err
		}
	}

	var byteOrderTag uint16
	var byteOrder binary.ByteOrder
	if err := binary.Read(r, binary.BigEndian, &byteOrderTag); err != nil {
		return 0, err
	}
	switch byteOrderTag {
	case byteOrderBE:
		byteOrder = binary.BigEndian
	case byteOrderLE:
		byteOrder = binary.LittleEndian
	default:
		return 0, fmt.Errorf("invalid TIFF byte order %#04x", byteOrderTag)
	}
	if _, err := io.CopyN(io.Discard, r, 2); err != nil {
		return 0, err
	}

	var offset uint32
	if err := binary.Read(r, byteOrder, &offset); err != nil {
		return 0, err
	} else if offset < 8 {
		return 0, fmt.Errorf("invalid IFD0 offset %d", offset)
	}
	if _, err := io.CopyN(io.Discard, r, int64(offset-8)); err != nil {
		return 0, err
	}

	var numTags uint16
	if err := binary.Read(r, byteOrder, &numTags); err != nil {
		return 0, err
	}
	for i := 0; i < int(numTags); i++ {
		var tag uint16
		if err := binary.Read(r, byteOrder, &tag); err != nil {
			return 0, err
		}
		if tag != orientationTag {
			if _, err := io.CopyN(io.Discard, r, 10); err != nil {
				return 0, err
			}
			continue
		}
		// Skip the type and count fields.
		if _, err := io.CopyN(io.Discard, r, 6); err != nil {
			return 0, err
		}
		var val uint16
		if err := binary.Read(r, byteOrder, &val); err != nil {
			return 0, err
		} else if val < 1 || val > 8 {
			return 0, fmt.Errorf("invalid orientation value %d", val)
		}
		return int(val), nil
	}
	return 0, ErrNoOrientation
}
