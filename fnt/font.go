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

// Package fnt decodes Windows bitmap font resources (".FNT" files).
//
// A decoded Font gives access to the font metrics and to monochrome glyph
// bitmaps.  Glyphs are addressed by their byte code in the character set
// of the font.  Bitmaps are stored row by row, top row first, with the
// leftmost pixel of each row in the most significant bit of the first
// byte.
//
// Fonts are never modified after decoding and can be used concurrently.
package fnt

import (
	"math"
)

// Style is the combination of the bold, italic and underline attributes
// of a font.  Strikethrough is not part of the style, use
// Font.Strikethrough to query it.
type Style int

// These are the bits which make up a Style.
const (
	StyleRegular   Style = 0
	StyleBold      Style = 1
	StyleItalic    Style = 2
	StyleUnderline Style = 4
)

// BoldWeight is the minimum weight of a font which is considered bold.
// This is FW_BOLD from the Windows API.
const BoldWeight = 700

// MaxGlyphs is the largest number of glyphs in an FNT resource.
const MaxGlyphs = 256

// Font is a decoded Windows bitmap font.
type Font struct {
	format    Format
	name      string
	copyright string

	points   uint16
	vertRes  uint16
	horizRes uint16

	pixHeight       uint16
	ascent          uint16
	maxWidth        uint16
	avgWidth        uint16
	pixWidth        uint16
	internalLeading uint16
	externalLeading uint16

	weight        uint16
	italic        bool
	underline     bool
	strikethrough bool
	charset       byte

	firstChar   byte
	lastChar    byte
	defaultChar int // absolute code, may be out of range
	breakChar   int

	glyphs []glyphEntry
}

// glyphEntry describes one character.  The offset is only used while
// decoding.
type glyphEntry struct {
	width  uint16
	offset uint32
	bitmap []byte
}

// Version returns the FNT version the font was decoded from.
func (f *Font) Version() Format {
	return f.format
}

// Name returns the face name of the font.
func (f *Font) Name() string {
	return f.name
}

// Copyright returns the copyright notice stored in the font header.
func (f *Font) Copyright() string {
	return f.copyright
}

// Height returns the height of the font in pixels.
// For the size in points, see SizeInPointsAtDPI.
func (f *Font) Height() int {
	return int(f.pixHeight)
}

// Ascent returns the distance from the top of the character cell to the
// baseline, in pixels.
func (f *Font) Ascent() int {
	return int(f.ascent)
}

// MaxCharWidth returns the width of the widest glyph in pixels.
func (f *Font) MaxCharWidth() int {
	return int(f.maxWidth)
}

// AvgCharWidth returns the average glyph width declared in the header.
func (f *Font) AvgCharWidth() int {
	return int(f.avgWidth)
}

// IsFixedPitch reports whether all glyphs of the font have the same width.
func (f *Font) IsFixedPitch() bool {
	return f.pixWidth != 0
}

// InternalLeading returns the space inside the character cell which is
// reserved for accent marks.
func (f *Font) InternalLeading() int {
	return int(f.internalLeading)
}

// ExternalLeading returns the recommended extra space between lines.
func (f *Font) ExternalLeading() int {
	return int(f.externalLeading)
}

// Points returns the nominal point size of the font.
func (f *Font) Points() int {
	return int(f.points)
}

// DPI returns the vertical resolution the font was designed for.
func (f *Font) DPI() int {
	return int(f.vertRes)
}

// HorizontalDPI returns the horizontal resolution the font was designed for.
func (f *Font) HorizontalDPI() int {
	return int(f.horizRes)
}

// Weight returns the weight of the font, in the range 1 to 1000.
func (f *Font) Weight() int {
	return int(f.weight)
}

// Italic reports whether the font is italic.
func (f *Font) Italic() bool {
	return f.italic
}

// Underline reports whether the font is underlined.
func (f *Font) Underline() bool {
	return f.underline
}

// Strikethrough reports whether the font is struck out.
func (f *Font) Strikethrough() bool {
	return f.strikethrough
}

// Style combines the weight, italic and underline attributes.
func (f *Font) Style() Style {
	style := StyleRegular
	if f.weight >= BoldWeight {
		style |= StyleBold
	}
	if f.italic {
		style |= StyleItalic
	}
	if f.underline {
		style |= StyleUnderline
	}
	return style
}

// Charset returns the Windows character set identifier of the font.
func (f *Font) Charset() byte {
	return f.charset
}

// FirstChar returns the first character code covered by the font.
func (f *Font) FirstChar() int {
	return int(f.firstChar)
}

// LastChar returns the last character code covered by the font.
func (f *Font) LastChar() int {
	return int(f.lastChar)
}

// DefaultChar returns the character code which is used for codes outside
// the range FirstChar to LastChar.
func (f *Font) DefaultChar() int {
	return f.defaultChar
}

// BreakChar returns the character code which marks word breaks.
func (f *Font) BreakChar() int {
	return f.breakChar
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return len(f.glyphs)
}

// SizeInPointsAtDPI returns the point size which corresponds to the pixel
// height of the font, when the font is shown on a device with the given
// resolution.  If dpi is not positive, the resolution stored in the font
// is used.
func (f *Font) SizeInPointsAtDPI(dpi int) int {
	stored := float64(f.vertRes)
	if stored <= 0 {
		stored = 96
	}
	target := float64(dpi)
	if target <= 0 {
		target = stored
	}
	points := float64(f.pixHeight) * 72 / stored
	return int(math.Round(points * stored / target))
}
