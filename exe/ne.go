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
	"seehuhn.de/go/winfnt/parser"
)

// readNE reads the resource table of a 16-bit executable.  The NE header
// starts at position neStart.
//
// The resource table consists of an alignment shift count, followed by a
// sequence of type blocks terminated by a zero type ID.  Each type block
// lists the resources of one type, with offsets and lengths given in
// units of 1<<shift bytes.  String IDs are stored as offsets of length
// prefixed strings, relative to the start of the resource table.
func readNE(p *parser.Parser, neStart int64) ([]entry, error) {
	err := p.SeekPos(neStart + 0x24)
	if err != nil {
		return nil, err
	}
	rsrcOffset, err := p.ReadUint16()
	if err != nil {
		return nil, p.Error("truncated NE header")
	}
	residentOffset, err := p.ReadUint16()
	if err != nil {
		return nil, p.Error("truncated NE header")
	}
	if rsrcOffset == residentOffset {
		// no resource table
		return nil, nil
	}

	tableStart := neStart + int64(rsrcOffset)
	err = p.SeekPos(tableStart)
	if err != nil {
		return nil, err
	}
	shift, err := p.ReadUint16()
	if err != nil {
		return nil, p.Error("truncated resource table")
	}
	if shift > 24 {
		return nil, p.Error("invalid alignment shift %d", shift)
	}

	type rawEntry struct {
		typ, name    uint16
		offset, size int64
	}
	var raw []rawEntry
	for {
		typeID, err := p.ReadUint16()
		if err != nil {
			return nil, p.Error("truncated resource table")
		}
		if typeID == 0 {
			break
		}
		count, err := p.ReadUint16()
		if err != nil {
			return nil, p.Error("truncated resource table")
		}
		if len(raw)+int(count) > maxResources {
			return nil, p.Error("too many resources")
		}
		err = p.Discard(4)
		if err != nil {
			return nil, err
		}
		for i := 0; i < int(count); i++ {
			buf, err := p.ReadBytes(12)
			if err != nil {
				return nil, p.Error("truncated resource table")
			}
			off := uint16(buf[0]) | uint16(buf[1])<<8
			length := uint16(buf[2]) | uint16(buf[3])<<8
			id := uint16(buf[6]) | uint16(buf[7])<<8
			raw = append(raw, rawEntry{
				typ:    typeID,
				name:   id,
				offset: int64(off) << shift,
				size:   int64(length) << shift,
			})
		}
	}

	// String IDs are resolved after the table has been read, since this
	// moves the read position.
	names := make(map[uint16]string)
	neID := func(v uint16) (ID, error) {
		if v&0x8000 != 0 {
			return IntID(v & 0x7FFF), nil
		}
		if s, ok := names[v]; ok {
			return NameID(s), nil
		}
		err := p.SeekPos(tableStart + int64(v))
		if err != nil {
			return ID{}, err
		}
		s, err := p.ReadPascalString()
		if err != nil {
			return ID{}, p.Error("invalid resource name at offset %d", v)
		}
		if len(s) == 0 {
			return ID{}, p.Error("empty resource name at offset %d", v)
		}
		names[v] = string(s)
		return NameID(string(s)), nil
	}

	entries := make([]entry, 0, len(raw))
	for _, r := range raw {
		typ, err := neID(r.typ)
		if err != nil {
			return nil, err
		}
		name, err := neID(r.name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{
			typ:    typ,
			name:   name,
			offset: r.offset,
			size:   r.size,
		})
	}
	return entries, nil
}
