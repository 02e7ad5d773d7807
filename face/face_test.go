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

package face

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/winfnt/fnt"
	"seehuhn.de/go/winfnt/internal/fnttest"
)

func sample(t *testing.T) *fnt.Font {
	t.Helper()
	f, err := fnt.DecodeBytes(fnttest.Sample(0x0200).Bytes())
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestDrawer(t *testing.T) {
	f := sample(t)
	face := New(f)

	const text = "Hello, World!"
	width := f.StringWidth(text)
	height := f.Height()

	got := image.NewAlpha(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  got,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, f.Ascent()),
	}
	d.DrawString(text)

	want := image.NewAlpha(got.Rect)
	f.DrawString(want, text, 0, 0, color.Alpha{A: 0xFF})

	if diff := cmp.Diff(want.Pix, got.Pix); diff != "" {
		t.Errorf("pixel mismatch (-want +got):\n%s", diff)
	}
	if d.Dot.X != fixed.I(width) {
		t.Errorf("advance %v, want %d", d.Dot.X, width)
	}
	if w := font.MeasureString(face, text); w != fixed.I(width) {
		t.Errorf("MeasureString = %v, want %d", w, width)
	}
}

func TestGlyphBounds(t *testing.T) {
	f := sample(t)
	face := New(f)

	for r := rune(32); r <= 126; r++ {
		bounds, advance, ok := face.GlyphBounds(r)
		if !ok {
			t.Errorf("%q: not found", r)
			continue
		}
		w := f.CharWidth(int(r))
		if advance != fixed.I(w) {
			t.Errorf("%q: advance %v, want %d", r, advance, w)
		}
		want := fixed.Rectangle26_6{
			Min: fixed.P(0, -f.Ascent()),
			Max: fixed.P(w, f.Height()-f.Ascent()),
		}
		if bounds != want {
			t.Errorf("%q: bounds %v, want %v", r, bounds, want)
		}
	}
}

func TestDefaultChar(t *testing.T) {
	f := sample(t)
	face := New(f)
	want, _ := face.GlyphAdvance('?')

	// U+4E00 is not in the character set, U+20AC maps to code 0x80
	// which is outside the range of the font
	for _, r := range []rune{'一', '€'} {
		got, ok := face.GlyphAdvance(r)
		if !ok {
			t.Errorf("%q: not found", r)
			continue
		}
		if got != want {
			t.Errorf("%q: advance %v, want %v", r, got, want)
		}
	}
}

func TestInvalidDefaultChar(t *testing.T) {
	src := fnttest.Sample(0x0300)
	src.DefaultChar = 200
	f, err := fnt.DecodeBytes(src.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	face := New(f)

	if _, ok := face.GlyphAdvance('A'); !ok {
		t.Error("glyph in range not found")
	}
	if _, _, _, _, ok := face.Glyph(fixed.P(0, 0), '一'); ok {
		t.Error("expected glyph lookup to fail")
	}
	if _, ok := face.GlyphAdvance('一'); ok {
		t.Error("expected advance lookup to fail")
	}
}

func TestMetrics(t *testing.T) {
	f := sample(t)
	m := New(f).Metrics()
	if m.Height != fixed.I(f.Height()+f.ExternalLeading()) {
		t.Errorf("height %v", m.Height)
	}
	if m.Ascent+m.Descent != fixed.I(f.Height()) {
		t.Errorf("ascent %v + descent %v != %d", m.Ascent, m.Descent, f.Height())
	}
	if m.XHeight < 0 || m.XHeight > m.Ascent || m.CapHeight > m.Ascent {
		t.Errorf("implausible x-height %v / cap height %v", m.XHeight, m.CapHeight)
	}
	if k := New(f).Kern('A', 'V'); k != 0 {
		t.Errorf("kern = %v", k)
	}
}
