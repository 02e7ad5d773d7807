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

// Package fnttest generates synthetic FNT resources and FON containers
// for use in tests.
package fnttest

import (
	"encoding/binary"
	"fmt"
)

// Glyph is a glyph bitmap in row-major order, most significant bit first.
type Glyph struct {
	Width  int
	Bitmap []byte
}

// NewGlyph builds a glyph from rows of '#' (set) and '.' (clear) pixels.
// All rows must have the same length.
func NewGlyph(rows ...string) Glyph {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	stride := (width + 7) / 8
	bitmap := make([]byte, stride*len(rows))
	for y, row := range rows {
		if len(row) != width {
			panic("fnttest: rows of different length")
		}
		for x := 0; x < width; x++ {
			if row[x] == '#' {
				bitmap[y*stride+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return Glyph{Width: width, Bitmap: bitmap}
}

// Font describes an FNT resource.  Zero values are written as they are,
// except that MaxWidth and AvgWidth are computed from the glyphs if unset.
type Font struct {
	Version   uint16 // 0x0200 or 0x0300
	Vector    bool
	Copyright string

	Points   uint16
	VertRes  uint16
	HorizRes uint16

	Ascent          uint16
	InternalLeading uint16
	ExternalLeading uint16

	Italic    bool
	Underline bool
	StrikeOut bool
	Weight    uint16
	Charset   byte

	PixWidth  uint16
	PixHeight uint16
	MaxWidth  uint16
	AvgWidth  uint16

	FirstChar   byte
	LastChar    byte
	DefaultChar byte // relative to FirstChar, as in the file
	BreakChar   byte // relative to FirstChar, as in the file

	Face string

	Glyphs []Glyph // LastChar-FirstChar+1 entries
}

// HeaderSize returns the size of the fixed header for the version of f.
func (f *Font) HeaderSize() int {
	if f.Version == 0x0300 {
		return 148
	}
	return 118
}

// EntrySize returns the size of a glyph table entry for the version of f.
func (f *Font) EntrySize() int {
	if f.Version == 0x0300 {
		return 6
	}
	return 4
}

// BitsOffset returns the position of the first glyph bitmap.
func (f *Font) BitsOffset() int {
	return f.HeaderSize() + (len(f.Glyphs)+1)*f.EntrySize()
}

// Bytes encodes the font in FNT format.
func (f *Font) Bytes() []byte {
	height := int(f.PixHeight)

	// glyph bitmaps, converted to byte columns
	bitsStart := f.BitsOffset()
	var bits []byte
	offsets := make([]int, len(f.Glyphs)+1)
	maxWidth, sumWidth := 0, 0
	for i, g := range f.Glyphs {
		offsets[i] = bitsStart + len(bits)
		bits = append(bits, ToColumns(g.Bitmap, g.Width, height)...)
		maxWidth = max(maxWidth, g.Width)
		sumWidth += g.Width
	}
	// the "absolute space" sentinel, one blank byte column
	offsets[len(f.Glyphs)] = bitsStart + len(bits)
	bits = append(bits, make([]byte, height)...)

	faceOffset := 0
	total := bitsStart + len(bits)
	if f.Face != "" {
		faceOffset = total
		total += len(f.Face) + 1
	}

	buf := make([]byte, total)
	le := binary.LittleEndian
	le.PutUint16(buf[0:], f.Version)
	le.PutUint32(buf[2:], uint32(total))
	copy(buf[6:66], f.Copyright)
	typ := uint16(0)
	if f.Vector {
		typ = 1
	}
	le.PutUint16(buf[66:], typ)
	le.PutUint16(buf[68:], f.Points)
	le.PutUint16(buf[70:], f.VertRes)
	le.PutUint16(buf[72:], f.HorizRes)
	le.PutUint16(buf[74:], f.Ascent)
	le.PutUint16(buf[76:], f.InternalLeading)
	le.PutUint16(buf[78:], f.ExternalLeading)
	buf[80] = boolByte(f.Italic)
	buf[81] = boolByte(f.Underline)
	buf[82] = boolByte(f.StrikeOut)
	le.PutUint16(buf[83:], f.Weight)
	buf[85] = f.Charset
	le.PutUint16(buf[86:], f.PixWidth)
	le.PutUint16(buf[88:], f.PixHeight)
	buf[90] = 0x20 // FF_SWISS, variable pitch
	avgWidth := f.AvgWidth
	if avgWidth == 0 && len(f.Glyphs) > 0 {
		avgWidth = uint16(sumWidth / len(f.Glyphs))
	}
	le.PutUint16(buf[91:], avgWidth)
	mw := f.MaxWidth
	if mw == 0 {
		mw = uint16(maxWidth)
	}
	le.PutUint16(buf[93:], mw)
	buf[95] = f.FirstChar
	buf[96] = f.LastChar
	buf[97] = f.DefaultChar
	buf[98] = f.BreakChar
	le.PutUint16(buf[99:], uint16((maxWidth+7)/8*2))
	le.PutUint32(buf[105:], uint32(faceOffset))
	le.PutUint32(buf[113:], uint32(bitsStart))

	pos := f.HeaderSize()
	for i := range offsets {
		width := 8
		if i < len(f.Glyphs) {
			width = f.Glyphs[i].Width
		}
		le.PutUint16(buf[pos:], uint16(width))
		if f.Version == 0x0300 {
			le.PutUint32(buf[pos+2:], uint32(offsets[i]))
		} else {
			if offsets[i] > 0xFFFF {
				panic(fmt.Sprintf("fnttest: offset %d too large for version 2.0", offsets[i]))
			}
			le.PutUint16(buf[pos+2:], uint16(offsets[i]))
		}
		pos += f.EntrySize()
	}

	copy(buf[bitsStart:], bits)
	if faceOffset > 0 {
		copy(buf[faceOffset:], f.Face)
	}
	return buf
}

// ToColumns converts a row-major bitmap into the column layout used by
// FNT files.
func ToColumns(bitmap []byte, width, height int) []byte {
	stride := (width + 7) / 8
	res := make([]byte, stride*height)
	for col := 0; col < stride; col++ {
		for row := 0; row < height; row++ {
			res[col*height+row] = bitmap[row*stride+col]
		}
	}
	return res
}

// Sample returns a proportional font covering the codes 32 to 126.  Glyph
// widths vary between 3 and 13 pixels, so that some glyphs need two byte
// columns.  The pixel pattern depends on the character code.
func Sample(version uint16) *Font {
	const height = 8
	f := &Font{
		Version:         version,
		Copyright:       "Copyright (c) test",
		Points:          10,
		VertRes:         96,
		HorizRes:        96,
		Ascent:          6,
		InternalLeading: 1,
		ExternalLeading: 1,
		Weight:          400,
		Charset:         0,
		PixHeight:       height,
		FirstChar:       32,
		LastChar:        126,
		DefaultChar:     '?' - 32,
		BreakChar:       0,
		Face:            "Helv",
	}
	for c := 32; c <= 126; c++ {
		f.Glyphs = append(f.Glyphs, SampleGlyph(c, height))
	}
	return f
}

// SampleGlyph returns the glyph used by Sample for the code c.
func SampleGlyph(c, height int) Glyph {
	width := 3 + c%11
	stride := (width + 7) / 8
	bitmap := make([]byte, stride*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x*7+y*3+c)%5 == 0 {
				bitmap[y*stride+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return Glyph{Width: width, Bitmap: bitmap}
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
