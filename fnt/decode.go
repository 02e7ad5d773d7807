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

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"seehuhn.de/go/winfnt/parser"
)

const maxNameLen = 256

// DecodeBytes decodes an FNT resource held in memory.
func DecodeBytes(data []byte) (*Font, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads an FNT resource from r.  On success, the returned font is
// fully populated.  On failure, the font is nil and the error is a
// *DecodeError.
func Decode(r parser.ReadSeekSizer) (*Font, error) {
	p := parser.New("fnt", r)

	version, err := p.ReadUint16()
	if err != nil {
		return nil, wrapError(ErrTruncatedHeader, 0, err)
	}
	format := Format(version)
	if format != Format2 && format != Format3 {
		return nil, newError(ErrUnsupportedVersion, 0,
			fmt.Sprintf("version 0x%04x", version))
	}

	err = p.SeekPos(0)
	if err != nil {
		return nil, wrapError(ErrTruncatedHeader, 0, err)
	}
	hdr := &binaryHeader{}
	err = binary.Read(p, binary.LittleEndian, hdr)
	if err != nil {
		return nil, wrapError(ErrTruncatedHeader, p.Size(), err)
	}
	if format == Format3 {
		hdr3 := &binaryHeader3{}
		err = binary.Read(p, binary.LittleEndian, hdr3)
		if err != nil {
			return nil, wrapError(ErrTruncatedHeader, p.Size(), err)
		}
	}
	if hdr.Type&typeVector != 0 {
		return nil, newError(ErrUnsupportedVersion, 66, "vector font")
	}

	f := &Font{
		format: format,

		points:   hdr.Points,
		vertRes:  hdr.VertRes,
		horizRes: hdr.HorizRes,

		pixHeight:       hdr.PixHeight,
		ascent:          hdr.Ascent,
		maxWidth:        hdr.MaxWidth,
		avgWidth:        hdr.AvgWidth,
		pixWidth:        hdr.PixWidth,
		internalLeading: hdr.InternalLeading,
		externalLeading: hdr.ExternalLeading,

		weight:        hdr.Weight,
		italic:        hdr.Italic != 0,
		underline:     hdr.Underline != 0,
		strikethrough: hdr.StrikeOut != 0,
		charset:       hdr.CharSet,

		firstChar:   hdr.FirstChar,
		lastChar:    hdr.LastChar,
		defaultChar: int(hdr.FirstChar) + int(hdr.DefaultChar),
		breakChar:   int(hdr.FirstChar) + int(hdr.BreakChar),
	}
	f.copyright = DecodeString(hdr.CharSet, trimNUL(hdr.Copyright[:]))
	f.name = readFaceName(p, hdr.Face, hdr.CharSet)

	numGlyphs := int(hdr.LastChar) - int(hdr.FirstChar) + 1
	if numGlyphs <= 0 || numGlyphs > MaxGlyphs {
		return nil, newError(ErrInvalidCharRange, 95,
			fmt.Sprintf("first=%d, last=%d", hdr.FirstChar, hdr.LastChar))
	}

	glyphs, err := readGlyphTable(p, format, numGlyphs)
	if err != nil {
		return nil, err
	}
	for i := range glyphs {
		g := &glyphs[i]
		if hdr.PixWidth != 0 {
			g.width = hdr.PixWidth
		}
		g.bitmap, err = readBitmap(p, g.offset, int(g.width), int(hdr.PixHeight))
		if err != nil {
			return nil, err
		}
	}
	f.glyphs = glyphs

	return f, nil
}

// readGlyphTable reads the glyph descriptors which follow the header.
// The table has one more entry than there are glyphs; the final entry
// describes the "absolute space" character and is checked but discarded.
func readGlyphTable(p *parser.Parser, format Format, numGlyphs int) ([]glyphEntry, error) {
	start := int64(format.HeaderSize())
	tableSize := int64(numGlyphs+1) * int64(format.EntrySize())
	if !p.Has(start, tableSize) {
		return nil, newError(ErrCorruptGlyphData, start, "glyph table extends beyond end of data")
	}
	err := p.SeekPos(start)
	if err != nil {
		return nil, wrapError(ErrCorruptGlyphData, start, err)
	}

	glyphs := make([]glyphEntry, numGlyphs+1)
	for i := range glyphs {
		width, err := p.ReadUint16()
		if err != nil {
			return nil, wrapError(ErrCorruptGlyphData, p.Pos(), err)
		}
		var offset uint32
		switch format {
		case Format3:
			offset, err = p.ReadUint32()
		default:
			var o16 uint16
			o16, err = p.ReadUint16()
			offset = uint32(o16)
		}
		if err != nil {
			return nil, wrapError(ErrCorruptGlyphData, p.Pos(), err)
		}
		glyphs[i] = glyphEntry{width: width, offset: offset}
	}
	return glyphs[:numGlyphs], nil
}

// readBitmap reads the bitmap of a single glyph and converts it to
// row-major order.
//
// In the file, the bitmap is stored as a sequence of byte columns, each
// eight pixels wide and extending over the full height of the font, top
// row first.
func readBitmap(p *parser.Parser, offset uint32, width, height int) ([]byte, error) {
	stride := (width + 7) / 8
	n := stride * height
	if n == 0 {
		return []byte{}, nil
	}
	if !p.Has(int64(offset), int64(n)) {
		return nil, newError(ErrCorruptGlyphData, int64(offset),
			fmt.Sprintf("bitmap of %d bytes extends beyond end of data", n))
	}

	err := p.SeekPos(int64(offset))
	if err != nil {
		return nil, wrapError(ErrCorruptGlyphData, int64(offset), err)
	}
	planes := make([]byte, n)
	_, err = p.Read(planes)
	if err != nil {
		return nil, wrapError(ErrCorruptGlyphData, int64(offset), err)
	}

	bitmap := make([]byte, n)
	for col := 0; col < stride; col++ {
		for row := 0; row < height; row++ {
			bitmap[row*stride+col] = planes[col*height+row]
		}
	}
	return bitmap, nil
}

// readFaceName reads the NUL-terminated face name.  Since the name is
// only informational, invalid offsets give an empty name instead of an
// error.
func readFaceName(p *parser.Parser, offset uint32, charset byte) string {
	if offset == 0 || !p.Has(int64(offset), 1) {
		return ""
	}
	err := p.SeekPos(int64(offset))
	if err != nil {
		return ""
	}
	raw, _ := p.ReadCString(maxNameLen)
	return DecodeString(charset, raw)
}

func trimNUL(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return bytes.TrimRight(b, " ")
}
