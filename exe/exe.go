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

// Package exe reads the resource tables of Windows executables.
//
// Both 16-bit "new executables" (NE), the format of classic .FON files,
// and 32/64-bit "portable executables" (PE) are supported.  Only the
// location of resources is decoded; the resource data is returned as
// raw bytes.
package exe

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/winfnt/parser"
)

// ID identifies a resource type or a resource name.  Resources are
// identified either by a 16-bit integer or by a string.
type ID struct {
	Num  uint16
	Name string
}

// IntID returns an ID given by an integer.
func IntID(n uint16) ID {
	return ID{Num: n}
}

// NameID returns an ID given by a string.
func NameID(s string) ID {
	return ID{Name: s}
}

// IsInt reports whether id is given by an integer.
func (id ID) IsInt() bool {
	return id.Name == ""
}

// Equal reports whether two IDs refer to the same resource.
// String IDs are compared case-insensitively, like Windows does.
func (id ID) Equal(other ID) bool {
	if id.IsInt() || other.IsInt() {
		return id.IsInt() && other.IsInt() && id.Num == other.Num
	}
	return strings.EqualFold(id.Name, other.Name)
}

func (id ID) String() string {
	if id.IsInt() {
		return "#" + strconv.Itoa(int(id.Num))
	}
	return strconv.Quote(id.Name)
}

// Predefined resource types.
var (
	TypeFontDir = IntID(7)
	TypeFont    = IntID(8)
)

// Resource is a single resource from an executable.
type Resource struct {
	Type, Name ID
	Offset     int64 // position of the data within the executable
	Size       int64
	Data       []byte
}

// Table gives access to the resources of a container.
type Table interface {
	// FindResource returns the resource with the given type and name.
	// If no such resource exists, the error wraps ErrResourceNotFound.
	FindResource(typ, name ID) (*Resource, error)

	// Resources lists the names of all resources of the given type,
	// in the order they are stored.
	Resources(typ ID) []ID
}

// Errors returned by this package.
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrNotExecutable    = errors.New("not a Windows executable")
)

// Format identifies the executable format.
type Format int

// These are the supported executable formats.
const (
	FormatNE Format = iota + 1
	FormatPE
)

func (f Format) String() string {
	switch f {
	case FormatNE:
		return "NE"
	case FormatPE:
		return "PE"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// maxResources limits the number of resources read from a table.
const maxResources = 4096

type entry struct {
	typ, name    ID
	offset, size int64
}

// File is an executable file with its resource table.
type File struct {
	Format Format

	r       io.ReaderAt
	size    int64
	entries []entry
}

// Open reads the resource table of an executable.  The executable must
// start with an MZ header, which points to either an NE or a PE header.
func Open(r io.ReaderAt, size int64) (*File, error) {
	p := parser.New("exe", io.NewSectionReader(r, 0, size))

	magic, err := p.ReadBytes(2)
	if err != nil || string(magic) != "MZ" {
		return nil, ErrNotExecutable
	}
	err = p.SeekPos(0x3C)
	if err != nil {
		return nil, err
	}
	lfanew, err := p.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("exe: %w: truncated MZ header", ErrNotExecutable)
	}
	err = p.SeekPos(int64(lfanew))
	if err != nil {
		return nil, err
	}
	sig, err := p.ReadBytes(2)
	if err != nil {
		return nil, fmt.Errorf("exe: %w: missing header signature", ErrNotExecutable)
	}

	f := &File{
		r:    r,
		size: size,
	}
	switch string(sig) {
	case "NE":
		f.Format = FormatNE
		f.entries, err = readNE(p, int64(lfanew))
	case "PE":
		f.Format = FormatPE
		f.entries, err = readPE(r, size)
	default:
		return nil, fmt.Errorf("exe: %w: unknown signature %q", ErrNotExecutable, sig)
	}
	if err != nil {
		return nil, err
	}

	for _, e := range f.entries {
		if e.offset < 0 || e.offset > size || e.size < 0 {
			return nil, fmt.Errorf("exe: resource %s/%s: invalid location %d", e.typ, e.name, e.offset)
		}
	}
	return f, nil
}

// FindResource implements the Table interface.
func (f *File) FindResource(typ, name ID) (*Resource, error) {
	for _, e := range f.entries {
		if !e.typ.Equal(typ) || !e.name.Equal(name) {
			continue
		}
		size := e.size
		if size > f.size-e.offset {
			size = f.size - e.offset
		}
		data := make([]byte, size)
		n, err := f.r.ReadAt(data, e.offset)
		if n < len(data) && err != nil {
			return nil, fmt.Errorf("exe: resource %s/%s: %w", typ, name, err)
		}
		res := &Resource{
			Type:   e.typ,
			Name:   e.name,
			Offset: e.offset,
			Size:   size,
			Data:   data,
		}
		return res, nil
	}
	return nil, fmt.Errorf("exe: resource %s/%s: %w", typ, name, ErrResourceNotFound)
}

// Resources implements the Table interface.
func (f *File) Resources(typ ID) []ID {
	var res []ID
	for _, e := range f.entries {
		if e.typ.Equal(typ) {
			res = append(res, e.name)
		}
	}
	return res
}
