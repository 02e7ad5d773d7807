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

import "image/color"

// Surface is the destination for DrawChar.  Every draw.Image from the
// standard library implements this interface.  Coordinates outside the
// surface must be ignored by the implementation.
type Surface interface {
	Set(x, y int, c color.Color)
}

// Glyph is a read-only view of a glyph bitmap.
type Glyph struct {
	Width  int // advance width in pixels
	Height int // equal to the font height
	Stride int // bytes per row

	// Bitmap holds Stride*Height bytes, one bit per pixel, most significant
	// bit first.  The slice is owned by the font and must not be modified.
	Bitmap []byte
}

// At reports whether the pixel at (x, y) is set.
func (g Glyph) At(x, y int) bool {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return false
	}
	return g.Bitmap[y*g.Stride+x/8]&(0x80>>(x%8)) != 0
}

// Resolve maps a character code to the code of the glyph used to show it.
// Codes outside the range of the font are replaced by the default
// character.  If the default character is itself outside the range, ok is
// false.
func (f *Font) Resolve(code int) (resolved int, ok bool) {
	idx, ok := f.index(code)
	if !ok {
		return 0, false
	}
	return int(f.firstChar) + idx, true
}

func (f *Font) index(code int) (int, bool) {
	if f == nil || len(f.glyphs) == 0 {
		return 0, false
	}
	if code < int(f.firstChar) || code > int(f.lastChar) {
		code = f.defaultChar
	}
	idx := code - int(f.firstChar)
	if idx < 0 || idx >= len(f.glyphs) {
		return 0, false
	}
	return idx, true
}

// CharWidth returns the advance width of the glyph for the given
// character code, or 0 if the code cannot be resolved.
func (f *Font) CharWidth(code int) int {
	idx, ok := f.index(code)
	if !ok {
		return 0
	}
	return int(f.glyphs[idx].width)
}

// Glyph returns the bitmap used for the given character code.
func (f *Font) Glyph(code int) (Glyph, bool) {
	idx, ok := f.index(code)
	if !ok {
		return Glyph{}, false
	}
	g := &f.glyphs[idx]
	width := int(g.width)
	res := Glyph{
		Width:  width,
		Height: int(f.pixHeight),
		Stride: (width + 7) / 8,
		Bitmap: g.bitmap,
	}
	return res, true
}

// DrawChar paints the glyph for the given character code with its top
// left corner at (x, y).  Only the foreground pixels are painted.
// If the code cannot be resolved, nothing is drawn.
func (f *Font) DrawChar(dst Surface, code int, x, y int, c color.Color) {
	g, ok := f.Glyph(code)
	if !ok {
		return
	}
	for row := 0; row < g.Height; row++ {
		line := g.Bitmap[row*g.Stride : (row+1)*g.Stride]
		for col := 0; col < g.Width; col++ {
			if line[col/8]&(0x80>>(col%8)) != 0 {
				dst.Set(x+col, y+row, c)
			}
		}
	}
}

// DrawString paints the bytes of s as character codes, starting with the
// top left corner at (x, y).  The return value is the total advance width.
func (f *Font) DrawString(dst Surface, s string, x, y int, c color.Color) int {
	x0 := x
	for i := 0; i < len(s); i++ {
		code := int(s[i])
		f.DrawChar(dst, code, x, y, c)
		x += f.CharWidth(code)
	}
	return x - x0
}

// StringWidth returns the advance width of the byte string s.
func (f *Font) StringWidth(s string) int {
	w := 0
	for i := 0; i < len(s); i++ {
		w += f.CharWidth(int(s[i]))
	}
	return w
}
