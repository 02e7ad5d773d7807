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
	"fmt"
	"io"

	"github.com/saferwall/pe"
)

const nameIsString = 0x80000000

// readPE reads the resource tree of a portable executable.  The tree has
// three levels (type, name, language); for every resource the first
// language is used.
func readPE(r io.ReaderAt, size int64) ([]entry, error) {
	data, err := io.ReadAll(io.NewSectionReader(r, 0, size))
	if err != nil {
		return nil, fmt.Errorf("exe: %w", err)
	}
	// The file is backed by data, so there is nothing to close.
	f, err := pe.NewBytes(data, &pe.Options{})
	if err != nil {
		return nil, fmt.Errorf("exe: %w", err)
	}
	err = f.Parse()
	if err != nil {
		return nil, fmt.Errorf("exe: %w", err)
	}

	var res []entry
	for _, t := range f.Resources.Entries {
		if !t.IsResourceDir {
			continue
		}
		typ, err := resourceID(t)
		if err != nil {
			return nil, err
		}
		for _, n := range t.Directory.Entries {
			name, err := resourceID(n)
			if err != nil {
				return nil, err
			}
			leaf := n
			if n.IsResourceDir {
				langs := n.Directory.Entries
				if len(langs) == 0 || langs[0].IsResourceDir {
					continue
				}
				leaf = langs[0]
			}

			rva := leaf.Data.Struct.OffsetToData
			offset := f.GetOffsetFromRva(rva)
			if offset == ^uint32(0) {
				return nil, fmt.Errorf("exe: resource %s/%s: RVA 0x%x outside of all sections", typ, name, rva)
			}
			res = append(res, entry{
				typ:    typ,
				name:   name,
				offset: int64(offset),
				size:   int64(leaf.Data.Struct.Size),
			})
			if len(res) > maxResources {
				return nil, fmt.Errorf("exe: too many resources")
			}
		}
	}
	return res, nil
}

// resourceID returns the type or name of a resource directory entry.
func resourceID(e pe.ResourceDirectoryEntry) (ID, error) {
	if e.Struct.Name&nameIsString == 0 {
		return IntID(uint16(e.Struct.Name)), nil
	}
	if e.Name == "" {
		return ID{}, fmt.Errorf("exe: empty resource name")
	}
	return NameID(e.Name), nil
}
