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
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/winfnt/face"
	"seehuhn.de/go/winfnt/fnt"
)

const margin = 4

// renderText draws text in f, with one character per pixel.  Lines are
// wrapped so that no output line is longer than width characters.
func renderText(f *fnt.Font, text string, width int) []string {
	var codes []int
	for _, r := range text {
		code, ok := f.Code(r)
		if !ok {
			code = f.DefaultChar()
		}
		codes = append(codes, code)
	}

	var res []string
	for len(codes) > 0 {
		n, w := 0, 0
		for n < len(codes) {
			cw := f.CharWidth(codes[n])
			if n > 0 && w+cw > width {
				break
			}
			w += cw
			n++
		}

		img := image.NewGray(image.Rect(0, 0, w, f.Height()))
		x := 0
		for _, code := range codes[:n] {
			f.DrawChar(img, code, x, 0, color.White)
			x += f.CharWidth(code)
		}
		for y := 0; y < f.Height(); y++ {
			var b strings.Builder
			for x := 0; x < w; x++ {
				if img.GrayAt(x, y).Y != 0 {
					b.WriteRune('█')
				} else {
					b.WriteByte(' ')
				}
			}
			res = append(res, strings.TrimRight(b.String(), " "))
		}
		codes = codes[n:]
	}
	return res
}

// renderImage draws text in black on a white background, using the
// font.Face adapter.
func renderImage(f *fnt.Font, text string, zoom int) image.Image {
	ff := face.New(f)
	m := ff.Metrics()
	w := font.MeasureString(ff, text).Ceil() + 2*margin
	h := m.Height.Ceil() + 2*margin

	img := imaging.New(w, h, color.White)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: ff,
		Dot:  fixed.Point26_6{X: fixed.I(margin), Y: fixed.I(margin) + m.Ascent},
	}
	d.DrawString(text)

	if zoom > 1 {
		return imaging.Resize(img, w*zoom, h*zoom, imaging.NearestNeighbor)
	}
	return img
}

func writePNG(fname string, f *fnt.Font, text string, zoom int) error {
	return imaging.Save(renderImage(f, text, zoom), fname)
}
