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

// Package fon selects fonts from FON containers.
//
// A FON file is a Windows executable which holds one or more FNT resources,
// together with a FONTDIR resource listing the face name and size of each
// font.
package fon

import (
	"errors"
	"fmt"

	"seehuhn.de/go/winfnt/exe"
	"seehuhn.de/go/winfnt/fnt"
	"seehuhn.de/go/winfnt/parser"
)

// ErrNotFound is returned when no font matches a selector.
var ErrNotFound = errors.New("font not found")

// Selector describes the font to load from a container.
// The zero value selects the first font.
type Selector struct {
	FaceName string
	Points   uint16 // 0 matches any size
}

// DirEntry is an entry of the font directory of a container.
type DirEntry struct {
	Ordinal    uint16
	FaceName   string
	DeviceName string
	Points     uint16
	PixHeight  uint16
	Weight     uint16
	Italic     bool
	Charset    byte

	// Offset is the position of the font resource within the container,
	// or -1 if the container has no font with the given ordinal.
	Offset int64
}

const (
	dirHeaderSize = 113
	maxNameLen    = 256
)

// ReadDir reads the font directory of a container.
func ReadDir(t exe.Table) ([]DirEntry, error) {
	res, err := t.FindResource(exe.TypeFontDir, exe.NameID("FONTDIR"))
	if errors.Is(err, exe.ErrResourceNotFound) {
		// Some files use a different name for the directory.
		if names := t.Resources(exe.TypeFontDir); len(names) > 0 {
			res, err = t.FindResource(exe.TypeFontDir, names[0])
		}
	}
	if err != nil {
		return nil, fmt.Errorf("winfnt/fon: %w: %w", ErrNotFound, err)
	}

	entries, err := parseDir(res.Data)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		e := &entries[i]
		e.Offset = -1
		font, err := t.FindResource(exe.TypeFont, exe.IntID(e.Ordinal))
		if err == nil {
			e.Offset = font.Offset
		}
	}
	return entries, nil
}

// parseDir decodes the body of a FONTDIR resource.
func parseDir(data []byte) ([]DirEntry, error) {
	p := parser.NewBytes("FONTDIR", data)
	count, err := p.ReadUint16()
	if err != nil {
		return nil, fmt.Errorf("winfnt/fon: truncated FONTDIR: %w", err)
	}

	var entries []DirEntry
	for i := 0; i < int(count); i++ {
		ordinal, err := p.ReadUint16()
		if err != nil {
			return nil, fmt.Errorf("winfnt/fon: truncated FONTDIR: %w", err)
		}
		hdr, err := p.ReadBytes(dirHeaderSize)
		if err != nil {
			return nil, fmt.Errorf("winfnt/fon: truncated FONTDIR: %w", err)
		}
		le16 := func(pos int) uint16 {
			return uint16(hdr[pos]) | uint16(hdr[pos+1])<<8
		}
		e := DirEntry{
			Ordinal:   ordinal,
			Points:    le16(68),
			Italic:    hdr[80] != 0,
			Weight:    le16(83),
			Charset:   hdr[85],
			PixHeight: le16(88),
		}

		// The device name is not used for font selection.  It is skipped
		// whatever its length, and only a prefix is kept.
		device, err := p.ReadCString(int(p.Size()))
		if err != nil {
			return nil, fmt.Errorf("winfnt/fon: truncated FONTDIR: %w", err)
		}
		if len(device) > maxNameLen {
			device = device[:maxNameLen]
		}
		face, err := p.ReadCString(maxNameLen)
		if err != nil {
			return nil, fmt.Errorf("winfnt/fon: invalid face name: %w", err)
		}
		e.DeviceName = fnt.DecodeString(e.Charset, device)
		e.FaceName = fnt.DecodeString(e.Charset, face)

		entries = append(entries, e)
	}
	return entries, nil
}

// Find returns the first directory entry which matches sel.  If the face
// name of sel is empty, the first entry is returned.  Otherwise, both face
// name and point size must match exactly; the point size is ignored if it
// is zero.
func Find(entries []DirEntry, sel Selector) (DirEntry, bool) {
	if len(entries) == 0 {
		return DirEntry{}, false
	}
	if sel.FaceName == "" {
		return entries[0], true
	}
	for _, e := range entries {
		if e.FaceName != sel.FaceName {
			continue
		}
		if sel.Points != 0 && e.Points != sel.Points {
			continue
		}
		return e, true
	}
	return DirEntry{}, false
}

// Locate returns the position of the font resource selected by sel.
func Locate(t exe.Table, sel Selector) (int64, error) {
	e, err := lookup(t, sel)
	if err != nil {
		return 0, err
	}
	if e.Offset < 0 {
		return 0, fmt.Errorf("winfnt/fon: font #%d: %w: %w",
			e.Ordinal, ErrNotFound, exe.ErrResourceNotFound)
	}
	return e.Offset, nil
}

// Load decodes the font selected by sel.
func Load(t exe.Table, sel Selector) (*fnt.Font, error) {
	e, err := lookup(t, sel)
	if err != nil {
		return nil, err
	}
	return loadEntry(t, e)
}

func lookup(t exe.Table, sel Selector) (DirEntry, error) {
	entries, err := ReadDir(t)
	if err != nil {
		return DirEntry{}, err
	}
	e, ok := Find(entries, sel)
	if !ok {
		return DirEntry{}, fmt.Errorf("winfnt/fon: %s: %w", describe(sel), ErrNotFound)
	}
	return e, nil
}

func loadEntry(t exe.Table, e DirEntry) (*fnt.Font, error) {
	res, err := t.FindResource(exe.TypeFont, exe.IntID(e.Ordinal))
	if err != nil {
		return nil, fmt.Errorf("winfnt/fon: font #%d: %w: %w", e.Ordinal, ErrNotFound, err)
	}
	return fnt.DecodeBytes(res.Data)
}

func describe(sel Selector) string {
	if sel.FaceName == "" {
		return "first font"
	}
	if sel.Points == 0 {
		return fmt.Sprintf("%q", sel.FaceName)
	}
	return fmt.Sprintf("%q at %dpt", sel.FaceName, sel.Points)
}
