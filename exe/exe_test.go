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

package exe

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/winfnt/internal/fnttest"
)

var testResources = []fnttest.Resource{
	{Type: fnttest.TypeFontDir, Name: "FONTDIR", Data: []byte("directory")},
	{Type: fnttest.TypeFont, ID: 1, Data: []byte("first font")},
	{Type: fnttest.TypeFont, ID: 2, Data: bytes.Repeat([]byte{0xAA}, 100)},
	{TypeName: "CUSTOM", Name: "Thing", Data: []byte{1, 2, 3}},
}

func openBytes(t *testing.T, data []byte) *File {
	t.Helper()
	f, err := Open(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestFindResource(t *testing.T) {
	builders := []struct {
		format Format
		build  func([]fnttest.Resource) []byte
	}{
		{FormatNE, fnttest.NE},
		{FormatPE, fnttest.PE},
	}
	for _, b := range builders {
		t.Run(b.format.String(), func(t *testing.T) {
			f := openBytes(t, b.build(testResources))
			if f.Format != b.format {
				t.Errorf("format = %s, want %s", f.Format, b.format)
			}

			cases := []struct {
				typ, name ID
				data      []byte
			}{
				{TypeFontDir, NameID("FONTDIR"), testResources[0].Data},
				{TypeFontDir, NameID("fontdir"), testResources[0].Data},
				{TypeFont, IntID(1), testResources[1].Data},
				{TypeFont, IntID(2), testResources[2].Data},
				{NameID("custom"), NameID("THING"), testResources[3].Data},
			}
			for _, c := range cases {
				res, err := f.FindResource(c.typ, c.name)
				if err != nil {
					t.Errorf("%s/%s: %v", c.typ, c.name, err)
					continue
				}
				// NE resources are padded to the alignment unit
				got := res.Data
				if b.format == FormatNE {
					if len(got) < len(c.data) {
						t.Errorf("%s/%s: short data", c.typ, c.name)
						continue
					}
					got = got[:len(c.data)]
				}
				if d := cmp.Diff(c.data, got); d != "" {
					t.Errorf("%s/%s: data mismatch (-want +got):\n%s", c.typ, c.name, d)
				}
			}

			_, err := f.FindResource(TypeFont, IntID(3))
			if !errors.Is(err, ErrResourceNotFound) {
				t.Errorf("missing resource: got %v", err)
			}
			_, err = f.FindResource(TypeFont, NameID("1"))
			if !errors.Is(err, ErrResourceNotFound) {
				t.Errorf("string ID matched integer ID: got %v", err)
			}
		})
	}
}

func TestResources(t *testing.T) {
	for _, data := range [][]byte{fnttest.NE(testResources), fnttest.PE(testResources)} {
		f := openBytes(t, data)
		got := f.Resources(TypeFont)
		want := []ID{IntID(1), IntID(2)}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("%s: font list mismatch (-want +got):\n%s", f.Format, d)
		}
		got = f.Resources(TypeFontDir)
		want = []ID{NameID("FONTDIR")}
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("%s: directory list mismatch (-want +got):\n%s", f.Format, d)
		}
		if ids := f.Resources(IntID(99)); len(ids) != 0 {
			t.Errorf("%s: unexpected resources %v", f.Format, ids)
		}
	}
}

func TestNoResources(t *testing.T) {
	data := fnttest.NE(testResources)
	le := binary.LittleEndian
	ne := le.Uint32(data[0x3C:])
	// a resident-name table offset equal to the resource table offset
	// marks a file without resources
	le.PutUint16(data[ne+0x26:], le.Uint16(data[ne+0x24:]))

	f := openBytes(t, data)
	if ids := f.Resources(TypeFont); len(ids) != 0 {
		t.Errorf("unexpected resources %v", ids)
	}
}

func TestNotExecutable(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("M"),
		[]byte("MZ"),
		fnttest.Sample(0x0200).Bytes(),
		append([]byte("MZ"), make([]byte, 0x40)...),
	}
	for i, data := range cases {
		_, err := Open(bytes.NewReader(data), int64(len(data)))
		if !errors.Is(err, ErrNotExecutable) {
			t.Errorf("%d: expected ErrNotExecutable, got %v", i, err)
		}
	}
}

func TestResourceBeyondEOF(t *testing.T) {
	data := fnttest.NE(testResources)
	// cut into the data of the last resource
	data = data[:len(data)-8]
	_, err := Open(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatal(err)
	}

	// cut before the start of the last resource
	full := fnttest.NE(testResources)
	f := openBytes(t, full)
	res, err := f.FindResource(NameID("CUSTOM"), NameID("Thing"))
	if err != nil {
		t.Fatal(err)
	}
	short := full[:res.Offset-1]
	_, err = Open(bytes.NewReader(short), int64(len(short)))
	if err == nil {
		t.Error("resource beyond end of file not detected")
	}
}

func TestIDString(t *testing.T) {
	cases := []struct {
		id   ID
		want string
	}{
		{IntID(8), "#8"},
		{NameID("FONTDIR"), `"FONTDIR"`},
	}
	for _, c := range cases {
		if got := c.id.String(); got != c.want {
			t.Errorf("%v: got %q, want %q", c.id, got, c.want)
		}
	}
}

func FuzzOpen(f *testing.F) {
	f.Add(fnttest.NE(testResources))
	f.Add(fnttest.PE(testResources))
	f.Add(fnttest.NE(fnttest.FON(fnttest.Sample(0x0300))))

	f.Fuzz(func(t *testing.T, data []byte) {
		file, err := Open(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return
		}
		for _, typ := range []ID{TypeFontDir, TypeFont} {
			for _, name := range file.Resources(typ) {
				res, err := file.FindResource(typ, name)
				if err != nil {
					t.Fatal(err)
				}
				if res.Offset+int64(len(res.Data)) > int64(len(data)) {
					t.Fatal("resource data beyond end of file")
				}
			}
		}
	})
}
