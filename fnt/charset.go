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
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Windows character set identifiers, as found in the dfCharSet field.
const (
	CharsetANSI       = 0
	CharsetDefault    = 1
	CharsetSymbol     = 2
	CharsetMac        = 77
	CharsetShiftJIS   = 128
	CharsetGreek      = 161
	CharsetTurkish    = 162
	CharsetVietnamese = 163
	CharsetHebrew     = 177
	CharsetArabic     = 178
	CharsetBaltic     = 186
	CharsetRussian    = 204
	CharsetThai       = 222
	CharsetEastEurope = 238
	CharsetOEM        = 255
)

var charsetMaps = map[byte]*charmap.Charmap{
	CharsetANSI:       charmap.Windows1252,
	CharsetDefault:    charmap.Windows1252,
	CharsetMac:        charmap.Macintosh,
	CharsetGreek:      charmap.Windows1253,
	CharsetTurkish:    charmap.Windows1254,
	CharsetVietnamese: charmap.Windows1258,
	CharsetHebrew:     charmap.Windows1255,
	CharsetArabic:     charmap.Windows1256,
	CharsetBaltic:     charmap.Windows1257,
	CharsetRussian:    charmap.Windows1251,
	CharsetThai:       charmap.Windows874,
	CharsetEastEurope: charmap.Windows1250,
	CharsetOEM:        charmap.CodePage437,
}

// Charmap returns the single-byte code page for a Windows character set.
// The result is nil for symbol fonts and for character sets without a
// single-byte code page; for these, character codes are used as they are.
func Charmap(charset byte) *charmap.Charmap {
	return charsetMaps[charset]
}

// Rune returns the Unicode character for a character code of the font.
func (f *Font) Rune(code byte) rune {
	cm := Charmap(f.charset)
	if cm == nil {
		return rune(code)
	}
	return cm.DecodeByte(code)
}

// Code returns the character code which represents r in the character set
// of the font.  The result is not checked against the range of the font.
func (f *Font) Code(r rune) (int, bool) {
	cm := Charmap(f.charset)
	if cm == nil {
		if r < 0 || r > 255 {
			return 0, false
		}
		return int(r), true
	}
	b, ok := cm.EncodeRune(r)
	return int(b), ok
}

// DecodeString converts a string of character codes of the given Windows
// character set to UTF-8.
func DecodeString(charset byte, raw []byte) string {
	cm := Charmap(charset)
	if cm == nil {
		// Face names of symbol fonts are still plain ASCII in practice.
		cm = charmap.Windows1252
	}
	var b strings.Builder
	for _, c := range raw {
		b.WriteRune(cm.DecodeByte(c))
	}
	return b.String()
}

