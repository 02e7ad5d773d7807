// seehuhn.de/go/winfnt - a library for reading Windows bitmap fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fnt

import "fmt"

// Format identifies the layout of an FNT resource.
type Format uint16

// These are the supported FNT versions.
const (
	Format2 Format = 0x0200 // Windows 2.x, 16-bit glyph offsets
	Format3 Format = 0x0300 // Windows 3.x, 32-bit glyph offsets
)

func (f Format) String() string {
	switch f {
	case Format2:
		return "2.0"
	case Format3:
		return "3.0"
	default:
		return fmt.Sprintf("Format(0x%04x)", uint16(f))
	}
}

// HeaderSize returns the number of bytes before the glyph table.
func (f Format) HeaderSize() int {
	if f == Format3 {
		return 148
	}
	return 118
}

// EntrySize returns the size of a single glyph table entry.
func (f Format) EntrySize() int {
	if f == Format3 {
		return 6
	}
	return 4
}

// binaryHeader is the fixed part of the FNT header, common to
// versions 2.0 and 3.0.
type binaryHeader struct {
	Version         uint16
	Size            uint32
	Copyright       [60]byte
	Type            uint16
	Points          uint16
	VertRes         uint16
	HorizRes        uint16
	Ascent          uint16
	InternalLeading uint16
	ExternalLeading uint16
	Italic          uint8
	Underline       uint8
	StrikeOut       uint8
	Weight          uint16
	CharSet         uint8
	PixWidth        uint16
	PixHeight       uint16
	PitchAndFamily  uint8
	AvgWidth        uint16
	MaxWidth        uint16
	FirstChar       uint8
	LastChar        uint8
	DefaultChar     uint8
	BreakChar       uint8
	WidthBytes      uint16
	Device          uint32
	Face            uint32
	BitsPointer     uint32
	BitsOffset      uint32
	Reserved        uint8
}

// binaryHeader3 holds the fields which version 3.0 appends to the header.
// All of them are reserved and normally zero.
type binaryHeader3 struct {
	Flags        uint32
	ASpace       uint16
	BSpace       uint16
	CSpace       uint16
	ColorPointer uint32
	Reserved1    [16]byte
}

const typeVector = 0x0001
