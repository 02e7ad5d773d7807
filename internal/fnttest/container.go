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

package fnttest

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
)

// Resource types used in font containers.
const (
	TypeFontDir = 7
	TypeFont    = 8
)

// Resource is an entry in the resource table of an executable.
// If TypeName or Name is non-empty, the resource type or name is given by
// a string, otherwise by the integer Type or ID.
type Resource struct {
	Type     uint16
	TypeName string
	ID       uint16
	Name     string
	Data     []byte
}

// DirEntry is one entry of a FONTDIR resource.
type DirEntry struct {
	Ordinal   uint16
	Face      string
	Device    string
	Points    uint16
	PixHeight uint16
	Weight    uint16
	Italic    bool
	Charset   byte
}

// DirEntryFor returns the directory entry which describes f.
func DirEntryFor(ordinal uint16, f *Font) DirEntry {
	return DirEntry{
		Ordinal:   ordinal,
		Face:      f.Face,
		Points:    f.Points,
		PixHeight: f.PixHeight,
		Weight:    f.Weight,
		Italic:    f.Italic,
		Charset:   f.Charset,
	}
}

// FontDir encodes a FONTDIR resource.  Each entry consists of the font
// ordinal, the first 113 bytes of the font header, the device name and
// the face name.
func FontDir(entries []DirEntry) []byte {
	le := binary.LittleEndian
	buf := make([]byte, 2)
	le.PutUint16(buf, uint16(len(entries)))
	for _, e := range entries {
		rec := make([]byte, 2+113)
		le.PutUint16(rec[0:], e.Ordinal)
		hdr := rec[2:]
		le.PutUint16(hdr[0:], 0x0300)
		le.PutUint16(hdr[68:], e.Points)
		le.PutUint16(hdr[70:], 96)
		le.PutUint16(hdr[72:], 96)
		hdr[80] = boolByte(e.Italic)
		le.PutUint16(hdr[83:], e.Weight)
		hdr[85] = e.Charset
		le.PutUint16(hdr[88:], e.PixHeight)
		buf = append(buf, rec...)
		buf = append(buf, e.Device...)
		buf = append(buf, 0)
		buf = append(buf, e.Face...)
		buf = append(buf, 0)
	}
	return buf
}

// FON returns the resources of a font container holding the given fonts.
// The fonts get the ordinals 1, 2, ... in the given order.
func FON(fonts ...*Font) []Resource {
	var entries []DirEntry
	res := []Resource{{Type: TypeFontDir, Name: "FONTDIR"}}
	for i, f := range fonts {
		ordinal := uint16(i + 1)
		entries = append(entries, DirEntryFor(ordinal, f))
		res = append(res, Resource{Type: TypeFont, ID: ordinal, Data: f.Bytes()})
	}
	res[0].Data = FontDir(entries)
	return res
}

const neShift = 4

// NE builds a 16-bit "new executable" containing the given resources.
func NE(resources []Resource) []byte {
	le := binary.LittleEndian

	const neStart = 0x40
	const rsrcStart = 0x80

	types, byType := groupByType(resources)

	// resource table: shift, type blocks, terminator, names
	tableSize := 2 + 2
	for _, t := range types {
		tableSize += 8 + 12*len(byType[t])
	}
	names := []byte{}
	nameOffset := map[string]int{}
	addName := func(s string) int {
		if off, ok := nameOffset[s]; ok {
			return off
		}
		off := tableSize + len(names)
		names = append(names, byte(len(s)))
		names = append(names, s...)
		nameOffset[s] = off
		return off
	}
	for _, t := range types {
		if t.name != "" {
			addName(t.name)
		}
		for _, r := range byType[t] {
			if r.Name != "" {
				addName(r.Name)
			}
		}
	}
	names = append(names, 0)

	residentStart := rsrcStart + tableSize + len(names)
	dataStart := align(residentStart+1, 1<<neShift)

	pos := dataStart
	dataPos := make(map[*Resource]int)
	for _, t := range types {
		for _, r := range byType[t] {
			dataPos[r] = pos
			pos = align(pos+len(r.Data), 1<<neShift)
		}
	}
	buf := make([]byte, pos)

	copy(buf, "MZ")
	le.PutUint32(buf[0x3C:], neStart)
	copy(buf[neStart:], "NE")
	le.PutUint16(buf[neStart+0x24:], rsrcStart-neStart)
	le.PutUint16(buf[neStart+0x26:], uint16(residentStart-neStart))

	p := rsrcStart
	le.PutUint16(buf[p:], neShift)
	p += 2
	for _, t := range types {
		if t.name != "" {
			le.PutUint16(buf[p:], uint16(nameOffset[t.name]))
		} else {
			le.PutUint16(buf[p:], 0x8000|t.id)
		}
		le.PutUint16(buf[p+2:], uint16(len(byType[t])))
		p += 8
		for _, r := range byType[t] {
			le.PutUint16(buf[p:], uint16(dataPos[r]>>neShift))
			le.PutUint16(buf[p+2:], uint16(align(len(r.Data), 1<<neShift)>>neShift))
			le.PutUint16(buf[p+4:], 0x1c30)
			if r.Name != "" {
				le.PutUint16(buf[p+6:], uint16(nameOffset[r.Name]))
			} else {
				le.PutUint16(buf[p+6:], 0x8000|r.ID)
			}
			p += 12
		}
	}
	p += 2 // terminator
	copy(buf[p:], names)

	for r, off := range dataPos {
		copy(buf[off:], r.Data)
	}
	return buf
}

// PE builds a 32-bit "portable executable" with a single .rsrc section
// containing the given resources.
func PE(resources []Resource) []byte {
	le := binary.LittleEndian

	const peStart = 0x40
	const optSize = 224
	const sectionHeader = peStart + 4 + 20 + optSize
	const rawStart = 0x200
	const rva = 0x1000

	rsrc := peResourceSection(resources, rva)
	buf := make([]byte, rawStart+align(len(rsrc), 0x200))

	copy(buf, "MZ")
	le.PutUint32(buf[0x3C:], peStart)
	copy(buf[peStart:], "PE\x00\x00")

	fh := buf[peStart+4:]
	le.PutUint16(fh[0:], 0x014c) // i386
	le.PutUint16(fh[2:], 1)      // one section
	le.PutUint16(fh[16:], optSize)
	le.PutUint16(fh[18:], 0x2102) // DLL, 32-bit, executable

	oh := buf[peStart+4+20:]
	le.PutUint16(oh[0:], 0x010b)
	le.PutUint32(oh[32:], 0x1000) // section alignment
	le.PutUint32(oh[36:], 0x200)  // file alignment
	le.PutUint32(oh[56:], uint32(rva+align(len(rsrc), 0x1000)))
	le.PutUint32(oh[60:], rawStart)
	le.PutUint32(oh[92:], 16)
	le.PutUint32(oh[96+2*8:], rva)
	le.PutUint32(oh[96+2*8+4:], uint32(len(rsrc)))

	sh := buf[sectionHeader:]
	copy(sh[0:8], ".rsrc")
	le.PutUint32(sh[8:], uint32(len(rsrc)))
	le.PutUint32(sh[12:], rva)
	le.PutUint32(sh[16:], uint32(align(len(rsrc), 0x200)))
	le.PutUint32(sh[20:], rawStart)
	le.PutUint32(sh[36:], 0x40000040) // initialized data, readable

	copy(buf[rawStart:], rsrc)
	return buf
}

func peResourceSection(resources []Resource, rva int) []byte {
	le := binary.LittleEndian
	types, byType := groupByType(resources)

	// named entries must precede integer entries in every directory
	var typeOrder []resType
	for _, t := range types {
		if t.name != "" {
			typeOrder = append(typeOrder, t)
		}
	}
	for _, t := range types {
		if t.name == "" {
			typeOrder = append(typeOrder, t)
		}
	}
	resOrder := make(map[resType][]*Resource)
	for _, t := range typeOrder {
		for _, r := range byType[t] {
			if r.Name != "" {
				resOrder[t] = append(resOrder[t], r)
			}
		}
		for _, r := range byType[t] {
			if r.Name == "" {
				resOrder[t] = append(resOrder[t], r)
			}
		}
	}

	pos := 16 + 8*len(typeOrder)
	typeDir := make(map[resType]int)
	for _, t := range typeOrder {
		typeDir[t] = pos
		pos += 16 + 8*len(resOrder[t])
	}
	langDir := make(map[*Resource]int)
	for _, t := range typeOrder {
		for _, r := range resOrder[t] {
			langDir[r] = pos
			pos += 16 + 8
		}
	}
	dataEntry := make(map[*Resource]int)
	for _, t := range typeOrder {
		for _, r := range resOrder[t] {
			dataEntry[r] = pos
			pos += 16
		}
	}
	var strs []byte
	strStart := pos
	strPos := make(map[string]int)
	addString := func(s string) {
		if _, ok := strPos[s]; ok {
			return
		}
		enc, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
		if err != nil {
			panic(err)
		}
		strPos[s] = strStart + len(strs)
		var n [2]byte
		le.PutUint16(n[:], uint16(len(enc)/2))
		strs = append(strs, n[:]...)
		strs = append(strs, enc...)
	}
	for _, t := range typeOrder {
		if t.name != "" {
			addString(t.name)
		}
		for _, r := range resOrder[t] {
			if r.Name != "" {
				addString(r.Name)
			}
		}
	}
	pos = align(strStart+len(strs), 4)
	dataPos := make(map[*Resource]int)
	for _, t := range typeOrder {
		for _, r := range resOrder[t] {
			dataPos[r] = pos
			pos = align(pos+len(r.Data), 4)
		}
	}

	buf := make([]byte, pos)
	writeDir := func(off, named, ids int) {
		le.PutUint16(buf[off+12:], uint16(named))
		le.PutUint16(buf[off+14:], uint16(ids))
	}

	named := 0
	for _, t := range typeOrder {
		if t.name != "" {
			named++
		}
	}
	writeDir(0, named, len(typeOrder)-named)
	for i, t := range typeOrder {
		e := 16 + 8*i
		if t.name != "" {
			le.PutUint32(buf[e:], 0x80000000|uint32(strPos[t.name]))
		} else {
			le.PutUint32(buf[e:], uint32(t.id))
		}
		le.PutUint32(buf[e+4:], 0x80000000|uint32(typeDir[t]))

		named := 0
		for _, r := range resOrder[t] {
			if r.Name != "" {
				named++
			}
		}
		writeDir(typeDir[t], named, len(resOrder[t])-named)
		for j, r := range resOrder[t] {
			e := typeDir[t] + 16 + 8*j
			if r.Name != "" {
				le.PutUint32(buf[e:], 0x80000000|uint32(strPos[r.Name]))
			} else {
				le.PutUint32(buf[e:], uint32(r.ID))
			}
			le.PutUint32(buf[e+4:], 0x80000000|uint32(langDir[r]))

			l := langDir[r]
			writeDir(l, 0, 1)
			le.PutUint32(buf[l+16:], 0x0409) // en-US
			le.PutUint32(buf[l+20:], uint32(dataEntry[r]))

			d := dataEntry[r]
			le.PutUint32(buf[d:], uint32(rva+dataPos[r]))
			le.PutUint32(buf[d+4:], uint32(len(r.Data)))
			copy(buf[dataPos[r]:], r.Data)
		}
	}
	copy(buf[strStart:], strs)
	return buf
}

type resType struct {
	id   uint16
	name string
}

func groupByType(resources []Resource) ([]resType, map[resType][]*Resource) {
	var types []resType
	byType := make(map[resType][]*Resource)
	for i := range resources {
		r := &resources[i]
		t := resType{id: r.Type, name: r.TypeName}
		if t.name != "" {
			t.id = 0
		}
		if _, seen := byType[t]; !seen {
			types = append(types, t)
		}
		byType[t] = append(byType[t], r)
	}
	return types, byType
}

func align(x, a int) int {
	return (x + a - 1) / a * a
}
