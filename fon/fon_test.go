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

package fon

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/winfnt/exe"
	"seehuhn.de/go/winfnt/internal/fnttest"
)

func sampleFont(face string, points uint16) *fnttest.Font {
	f := fnttest.Sample(0x0300)
	f.Face = face
	f.Points = points
	return f
}

func openContainer(t *testing.T, data []byte) *exe.File {
	t.Helper()
	file, err := exe.Open(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	return file
}

func twoSizes(t *testing.T) *exe.File {
	return openContainer(t, fnttest.NE(fnttest.FON(
		sampleFont("Helv", 10),
		sampleFont("Helv", 12),
	)))
}

func TestReadDir(t *testing.T) {
	fonts := []*fnttest.Font{sampleFont("Helv", 10), sampleFont("Courier", 12)}
	fonts[1].Weight = 700
	fonts[1].Italic = true
	fonts[1].Charset = 238

	for _, build := range []func([]fnttest.Resource) []byte{fnttest.NE, fnttest.PE} {
		file := openContainer(t, build(fnttest.FON(fonts...)))
		entries, err := ReadDir(file)
		if err != nil {
			t.Fatal(err)
		}
		want := []DirEntry{
			{Ordinal: 1, FaceName: "Helv", Points: 10, PixHeight: 8, Weight: 400},
			{Ordinal: 2, FaceName: "Courier", Points: 12, PixHeight: 8, Weight: 700, Italic: true, Charset: 238},
		}
		if d := cmp.Diff(want, entries, cmpopts.IgnoreFields(DirEntry{}, "Offset")); d != "" {
			t.Errorf("%s: directory mismatch (-want +got):\n%s", file.Format, d)
		}
		for _, e := range entries {
			res, err := file.FindResource(exe.TypeFont, exe.IntID(e.Ordinal))
			if err != nil {
				t.Fatal(err)
			}
			if e.Offset != res.Offset {
				t.Errorf("%s: font %d: offset %d, want %d", file.Format, e.Ordinal, e.Offset, res.Offset)
			}
		}
	}
}

func TestDeviceName(t *testing.T) {
	fonts := []*fnttest.Font{sampleFont("Helv", 10), sampleFont("Helv", 12)}
	for _, n := range []int{10, 255, 256, 300, 5000} {
		device := strings.Repeat("D", n)
		dir := []fnttest.DirEntry{
			fnttest.DirEntryFor(1, fonts[0]),
			fnttest.DirEntryFor(2, fonts[1]),
		}
		dir[0].Device = device
		resources := fnttest.FON(fonts...)
		resources[0].Data = fnttest.FontDir(dir)
		file := openContainer(t, fnttest.NE(resources))

		entries, err := ReadDir(file)
		if err != nil {
			t.Fatalf("%d: %v", n, err)
		}
		want := []DirEntry{
			{Ordinal: 1, FaceName: "Helv", DeviceName: device[:min(n, 256)], Points: 10, PixHeight: 8, Weight: 400},
			{Ordinal: 2, FaceName: "Helv", Points: 12, PixHeight: 8, Weight: 400},
		}
		if d := cmp.Diff(want, entries, cmpopts.IgnoreFields(DirEntry{}, "Offset")); d != "" {
			t.Errorf("%d: directory mismatch (-want +got):\n%s", n, d)
		}

		second, err := file.FindResource(exe.TypeFont, exe.IntID(2))
		if err != nil {
			t.Fatal(err)
		}
		got, err := Locate(file, Selector{FaceName: "Helv", Points: 12})
		if err != nil {
			t.Errorf("%d: %v", n, err)
		} else if got != second.Offset {
			t.Errorf("%d: got offset %d, want %d", n, got, second.Offset)
		}
	}
}

func TestLocate(t *testing.T) {
	file := twoSizes(t)
	first, err := file.FindResource(exe.TypeFont, exe.IntID(1))
	if err != nil {
		t.Fatal(err)
	}
	second, err := file.FindResource(exe.TypeFont, exe.IntID(2))
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		sel  Selector
		want int64
	}{
		{Selector{}, first.Offset},
		{Selector{FaceName: "Helv", Points: 12}, second.Offset},
		{Selector{FaceName: "Helv", Points: 10}, first.Offset},
		{Selector{FaceName: "Helv"}, first.Offset},
	}
	for _, c := range cases {
		got, err := Locate(file, c.sel)
		if err != nil {
			t.Errorf("%v: %v", c.sel, err)
			continue
		}
		if got != c.want {
			t.Errorf("%v: got offset %d, want %d", c.sel, got, c.want)
		}
	}

	for _, sel := range []Selector{
		{FaceName: "helv", Points: 12},
		{FaceName: "Helv", Points: 11},
		{FaceName: "Times"},
	} {
		_, err := Locate(file, sel)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("%v: expected ErrNotFound, got %v", sel, err)
		}
	}
}

func TestMissingDirectory(t *testing.T) {
	f := fnttest.Sample(0x0200)
	file := openContainer(t, fnttest.NE([]fnttest.Resource{
		{Type: fnttest.TypeFont, ID: 1, Data: f.Bytes()},
	}))
	_, err := Locate(file, Selector{})
	if !errors.Is(err, ErrNotFound) || !errors.Is(err, exe.ErrResourceNotFound) {
		t.Errorf("expected ErrNotFound and ErrResourceNotFound, got %v", err)
	}
}

func TestEmptyDirectory(t *testing.T) {
	file := openContainer(t, fnttest.NE(fnttest.FON()))
	_, err := Locate(file, Selector{})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDirectoryName(t *testing.T) {
	// a directory which is not called "FONTDIR" is still found
	res := fnttest.FON(sampleFont("Helv", 10))
	res[0].Name = ""
	res[0].ID = 1
	file := openContainer(t, fnttest.PE(res))

	font, err := Load(file, Selector{FaceName: "Helv"})
	if err != nil {
		t.Fatal(err)
	}
	if font.Name() != "Helv" {
		t.Errorf("got face %q", font.Name())
	}
}

func TestLoad(t *testing.T) {
	file := twoSizes(t)
	font, err := Load(file, Selector{FaceName: "Helv", Points: 12})
	if err != nil {
		t.Fatal(err)
	}
	if font.Points() != 12 || font.Name() != "Helv" {
		t.Errorf("got %s %dpt", font.Name(), font.Points())
	}
}

func TestNearest(t *testing.T) {
	entries := []DirEntry{
		{Ordinal: 1, FaceName: "Helv", Points: 8},
		{Ordinal: 2, FaceName: "Helv", Points: 10},
		{Ordinal: 3, FaceName: "Helv", Points: 14},
		{Ordinal: 4, FaceName: "Courier", Points: 12},
		{Ordinal: 5, FaceName: "Helv", Points: 12, Offset: -1},
	}
	cases := []struct {
		face    string
		points  int
		ordinal uint16
	}{
		{"Helv", 8, 1},
		{"Helv", 9, 1},  // tie between 8 and 10
		{"Helv", 12, 2}, // tie between 10 and 14, 12 has no data
		{"Helv", 13, 3},
		{"Helv", 40, 3},
		{"Courier", 8, 4},
		{"", 12, 4},
		{"", 1, 1},
	}
	for _, c := range cases {
		e, ok := Nearest(entries, c.face, c.points)
		if !ok {
			t.Errorf("%s %d: no match", c.face, c.points)
			continue
		}
		if e.Ordinal != c.ordinal {
			t.Errorf("%s %d: got font %d, want %d", c.face, c.points, e.Ordinal, c.ordinal)
		}
	}

	if _, ok := Nearest(entries, "Times", 10); ok {
		t.Error("unexpected match for missing face")
	}
}

func TestLoadScaled(t *testing.T) {
	file := twoSizes(t)

	font, err := LoadScaled(file, "Helv", 24)
	if err != nil {
		t.Fatal(err)
	}
	if font.Points() != 24 {
		t.Errorf("got %dpt, want 24pt", font.Points())
	}
	if font.Height() != 16 {
		t.Errorf("got height %d, want 16", font.Height())
	}

	font, err = LoadScaled(file, "Helv", 12)
	if err != nil {
		t.Fatal(err)
	}
	if font.Points() != 12 || font.Height() != 8 {
		t.Errorf("got %dpt, height %d", font.Points(), font.Height())
	}

	_, err = LoadScaled(file, "Times", 12)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
