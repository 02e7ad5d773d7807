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

package winfnt

import (
	"bytes"
	"io"
	"os"

	"seehuhn.de/go/winfnt/exe"
	"seehuhn.de/go/winfnt/fnt"
	"seehuhn.de/go/winfnt/fon"
)

// Options controls how a font is loaded.
type Options struct {
	// Selector chooses a font from a FON file.  It is ignored for FNT
	// files.
	Selector fon.Selector

	// If Points is positive, the font is scaled to this point size.  For
	// FON files, the font of the selected face which is closest in size is
	// used as the starting point, and Selector.Points is ignored.
	Points int
}

var defaultOptions = &Options{}

// LoadFile loads a font from an FNT or FON file.
func LoadFile(fname string, opt *Options) (*fnt.Font, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	fi, err := fd.Stat()
	if err != nil {
		return nil, err
	}
	return Read(fd, fi.Size(), opt)
}

// Load loads a font from the contents of an FNT or FON file.
func Load(data []byte, opt *Options) (*fnt.Font, error) {
	return Read(bytes.NewReader(data), int64(len(data)), opt)
}

// Read loads a font from an FNT or FON file.  The format is detected
// from the first two bytes of the data.  If opt is nil, the first font
// is loaded at its native size.
func Read(r io.ReaderAt, size int64, opt *Options) (*fnt.Font, error) {
	if opt == nil {
		opt = defaultOptions
	}

	var magic [2]byte
	_, err := r.ReadAt(magic[:], 0)
	if err != nil && size >= 2 {
		return nil, err
	}

	if string(magic[:]) == "MZ" {
		table, err := exe.Open(r, size)
		if err != nil {
			return nil, err
		}
		if opt.Points > 0 {
			return fon.LoadScaled(table, opt.Selector.FaceName, opt.Points)
		}
		return fon.Load(table, opt.Selector)
	}

	f, err := fnt.Decode(io.NewSectionReader(r, 0, size))
	if err != nil {
		return nil, err
	}
	if opt.Points > 0 {
		return fnt.Scale(f, opt.Points)
	}
	return f, nil
}
