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

// Package winfnt reads Windows bitmap fonts.
//
// Bitmap fonts come either as single FNT resources, or bundled inside a
// FON file, which is a Windows executable holding one FNT resource per
// font size.  LoadFile handles both cases:
//
//	f, err := winfnt.LoadFile("SSERIFE.FON", &winfnt.Options{
//	    Selector: fon.Selector{FaceName: "MS Sans Serif", Points: 10},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img := image.NewGray(image.Rect(0, 0, 200, f.Height()))
//	f.DrawString(img, "Hello", 0, 0, color.White)
//
// The sub-packages give access to the individual steps:
// package fnt decodes and scales FNT resources, package exe reads the
// resource tables of executables, package fon selects fonts from a FON
// file, and package face adapts decoded fonts to golang.org/x/image/font.
package winfnt
