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

package main

import (
	"bytes"
	"strings"
	"testing"

	"seehuhn.de/go/winfnt/fnt"
	"seehuhn.de/go/winfnt/internal/fnttest"
)

func sampleFont(t *testing.T) *fnt.Font {
	t.Helper()
	src := fnttest.Sample(0x0200)
	src.Face = "MS Sans Serif"
	f, err := fnt.DecodeBytes(src.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestEmitC(t *testing.T) {
	f := sampleFont(t)
	if name := cName(f); name != "MS_SANS_SERIF_10" {
		t.Errorf("got name %q", name)
	}

	buf := &bytes.Buffer{}
	err := emitC(buf, f)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"#define MS_SANS_SERIF_10_HEIGHT 8\n",
		"#define MS_SANS_SERIF_10_FIRST_CHAR 32\n",
		"static const uint8_t MS_SANS_SERIF_10_BITMAPS[] = {\n",
		"#endif\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestRenderText(t *testing.T) {
	f := sampleFont(t)
	text := "Hello, World!"

	lines := renderText(f, text, 1000)
	if len(lines) != f.Height() {
		t.Fatalf("got %d lines, want %d", len(lines), f.Height())
	}

	// every chunk must fit into the given width
	width := 20
	lines = renderText(f, text, width)
	if len(lines)%f.Height() != 0 || len(lines) <= f.Height() {
		t.Fatalf("got %d lines", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n > width {
			t.Errorf("line %d has %d characters", i, n)
		}
	}
}

func TestRenderImage(t *testing.T) {
	f := sampleFont(t)
	text := "Hi"

	img := renderImage(f, text, 1)
	b := img.Bounds()
	wantW := f.StringWidth(text) + 2*margin
	wantH := f.Height() + f.ExternalLeading() + 2*margin
	if b.Dx() != wantW || b.Dy() != wantH {
		t.Errorf("image size %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}

	img = renderImage(f, text, 3)
	if img.Bounds().Dx() != 3*wantW {
		t.Errorf("zoomed width %d, want %d", img.Bounds().Dx(), 3*wantW)
	}
}
