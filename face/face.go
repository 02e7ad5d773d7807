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

// Package face makes Windows bitmap fonts available as font.Face values,
// so that they can be used with golang.org/x/image/font.Drawer.
package face

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/winfnt/fnt"
)

// Face is a font.Face for a decoded bitmap font.  All glyph masks are
// created by New, so a Face can be used concurrently.
type Face struct {
	font    *fnt.Font
	masks   []*image.Alpha // indexed by code - FirstChar
	metrics font.Metrics
}

var _ font.Face = (*Face)(nil)

// New returns a font.Face which draws the glyphs of f.
// Runes are mapped to character codes using the character set of f;
// runes which are not part of the character set are shown using the
// default character of the font.
func New(f *fnt.Font) *Face {
	first := f.FirstChar()
	masks := make([]*image.Alpha, f.NumGlyphs())
	for i := range masks {
		g, _ := f.Glyph(first + i)
		m := image.NewAlpha(image.Rect(0, 0, g.Width, g.Height))
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if g.At(x, y) {
					m.Pix[y*m.Stride+x] = 0xFF
				}
			}
		}
		masks[i] = m
	}

	res := &Face{
		font:  f,
		masks: masks,
	}
	height := f.Height()
	ascent := f.Ascent()
	res.metrics = font.Metrics{
		Height:     fixed.I(height + f.ExternalLeading()),
		Ascent:     fixed.I(ascent),
		Descent:    fixed.I(height - ascent),
		XHeight:    fixed.I(res.inkHeight('x')),
		CapHeight:  fixed.I(res.inkHeight('H')),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
	return res
}

// Font returns the underlying bitmap font.
func (f *Face) Font() *fnt.Font {
	return f.font
}

// mask returns the glyph mask for r.
func (f *Face) mask(r rune) (*image.Alpha, bool) {
	code, ok := f.font.Code(r)
	if !ok {
		code = f.font.DefaultChar()
	}
	code, ok = f.font.Resolve(code)
	if !ok {
		return nil, false
	}
	return f.masks[code-f.font.FirstChar()], true
}

// inkHeight returns the distance between the baseline and the topmost
// pixel of the glyph for r, or 0 if the glyph is blank or lies below the
// baseline.
func (f *Face) inkHeight(r rune) int {
	code, ok := f.font.Code(r)
	if !ok {
		return 0
	}
	if code < f.font.FirstChar() || code > f.font.LastChar() {
		return 0
	}
	g, _ := f.font.Glyph(code)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) {
				return max(f.font.Ascent()-y, 0)
			}
		}
	}
	return 0
}

// Close implements the font.Face interface.
func (f *Face) Close() error {
	return nil
}

// Glyph implements the font.Face interface.
func (f *Face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	m, ok := f.mask(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x := dot.X.Round()
	y := dot.Y.Round() - f.font.Ascent()
	dr = m.Rect.Add(image.Point{X: x, Y: y})
	return dr, m, image.Point{}, fixed.I(m.Rect.Dx()), true
}

// GlyphBounds implements the font.Face interface.
func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	m, ok := f.mask(r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	w := m.Rect.Dx()
	ascent := f.font.Ascent()
	bounds = fixed.Rectangle26_6{
		Min: fixed.P(0, -ascent),
		Max: fixed.P(w, m.Rect.Dy()-ascent),
	}
	return bounds, fixed.I(w), true
}

// GlyphAdvance implements the font.Face interface.
func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	m, ok := f.mask(r)
	if !ok {
		return 0, false
	}
	return fixed.I(m.Rect.Dx()), true
}

// Kern implements the font.Face interface.  Bitmap fonts have no kerning.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}

// Metrics implements the font.Face interface.
func (f *Face) Metrics() font.Metrics {
	return f.metrics
}
