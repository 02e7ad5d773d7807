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
	"fmt"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/winfnt/exe"
	"seehuhn.de/go/winfnt/fnt"
)

// Nearest returns the entry of the given face whose point size is closest
// to points.  An empty face matches all entries.  If two sizes are equally
// close, the smaller one is chosen, so that the font can be enlarged by
// pixel replication.  Entries without a font resource are ignored.
func Nearest(entries []DirEntry, face string, points int) (DirEntry, bool) {
	candidates := slices.DeleteFunc(slices.Clone(entries), func(e DirEntry) bool {
		return e.Offset < 0 || face != "" && e.FaceName != face
	})
	if len(candidates) == 0 {
		return DirEntry{}, false
	}

	dist := func(e DirEntry) int {
		d := int(e.Points) - points
		if d < 0 {
			d = -d
		}
		return d
	}
	best := slices.MinFunc(candidates, func(a, b DirEntry) int {
		if da, db := dist(a), dist(b); da != db {
			return da - db
		}
		return int(a.Points) - int(b.Points)
	})
	return best, true
}

// LoadScaled loads the font of the given face which is closest in size to
// points and scales it to the requested size using fnt.Scale.
func LoadScaled(t exe.Table, face string, points int) (*fnt.Font, error) {
	entries, err := ReadDir(t)
	if err != nil {
		return nil, err
	}
	e, ok := Nearest(entries, face, points)
	if !ok {
		return nil, fmt.Errorf("winfnt/fon: face %q: %w", face, ErrNotFound)
	}
	f, err := loadEntry(t, e)
	if err != nil {
		return nil, err
	}
	return fnt.Scale(f, points)
}
