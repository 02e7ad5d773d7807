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

// Package parser reads little-endian binary data from Windows font
// resources and executable files.
//
// All reads are bounds-checked: reading beyond the end of the input
// returns an error which wraps io.ErrUnexpectedEOF.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

const bufferSize = 1024

// Parser allows to read data from a font resource or an executable file.
type Parser struct {
	r      ReadSeekSizer
	region string

	buf       []byte
	from      int64
	pos, used int
	lastRead  int64
}

// ReadSeekSizer describes the requirements for a reader that can be used
// as the input to a Parser.  A *bytes.Reader satisfies this interface.
type ReadSeekSizer interface {
	io.ReadSeeker
	Size() int64
}

// New allocates a new Parser.  The region name is used as a prefix
// in error messages.
func New(region string, r ReadSeekSizer) *Parser {
	p := &Parser{
		r:      r,
		region: region,
	}
	err := p.SeekPos(0)
	if err != nil {
		panic(err)
	}
	return p
}

// NewBytes allocates a new Parser which reads from an in-memory buffer.
func NewBytes(region string, data []byte) *Parser {
	return New(region, bytes.NewReader(data))
}

// Size returns the total size of the underlying input.
func (p *Parser) Size() int64 {
	return p.r.Size()
}

// Pos returns the current reading position.
func (p *Parser) Pos() int64 {
	return p.from + int64(p.pos)
}

// SeekPos changes the reading position.  Seeking beyond the end of the
// input is allowed, but the next read will fail.
func (p *Parser) SeekPos(filePos int64) error {
	if filePos < 0 {
		p.lastRead = filePos
		return p.Error("negative offset")
	}
	if filePos >= p.from && filePos <= p.from+int64(p.used) {
		p.pos = int(filePos - p.from)
	} else {
		_, err := p.r.Seek(filePos, io.SeekStart)
		if err != nil {
			return err
		}
		p.from = filePos
		p.pos = 0
		p.used = 0
	}

	return nil
}

// Discard skips the next n bytes of input.
func (p *Parser) Discard(n int) error {
	if n < 0 {
		panic("negative discard")
	}
	return p.SeekPos(p.Pos() + int64(n))
}

// Has reports whether n bytes are available starting at position pos.
func (p *Parser) Has(pos, n int64) bool {
	return pos >= 0 && n >= 0 && pos <= p.Size() && n <= p.Size()-pos
}

// Read reads len(buf) bytes of data into buf.  It returns the number of bytes
// read and an error, if any.  The error is non-nil if and only if less than
// len(buf) bytes were read.
func (p *Parser) Read(buf []byte) (int, error) {
	total := 0
	for len(buf) > 0 {
		k := len(buf)
		if k > bufferSize {
			k = bufferSize
		}
		tmp, err := p.ReadBytes(k)
		k = copy(buf, tmp)
		total += k
		buf = buf[k:]
		if len(buf) > 0 && err != nil {
			return total, err
		}
	}
	return total, nil
}

// ReadUint8 reads a single uint8 value from the current position.
func (p *Parser) ReadUint8() (uint8, error) {
	buf, err := p.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadUint16 reads a single little-endian uint16 value from the current
// position.
func (p *Parser) ReadUint16() (uint16, error) {
	buf, err := p.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return uint16(buf[0]) | uint16(buf[1])<<8, nil
}

// ReadUint32 reads a single little-endian uint32 value from the current
// position.
func (p *Parser) ReadUint32() (uint32, error) {
	buf, err := p.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24, nil
}

// ReadCString reads a NUL-terminated string from the current position.
// At most maxLen bytes are examined; if no NUL byte is found within this
// limit, or if the input ends first, the bytes read so far are returned
// together with an error.
// The returned slice is a copy and may be retained by the caller.
func (p *Parser) ReadCString(maxLen int) ([]byte, error) {
	var res []byte
	for len(res) < maxLen {
		c, err := p.ReadUint8()
		if err != nil {
			return res, err
		}
		if c == 0 {
			return res, nil
		}
		res = append(res, c)
	}
	return res, p.Error("string exceeds %d bytes", maxLen)
}

// ReadPascalString reads a string which is prefixed by a single length
// byte.
func (p *Parser) ReadPascalString() ([]byte, error) {
	n, err := p.ReadUint8()
	if err != nil {
		return nil, err
	}
	res := make([]byte, n)
	_, err = p.Read(res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ReadBytes reads n bytes from the file, starting at the current position.  The
// returned slice points into the internal buffer, slice contents must not be
// modified by the caller and are only valid until the next call to one of the
// parser methods.
//
// The read size n must be <= 1024.
func (p *Parser) ReadBytes(n int) ([]byte, error) {
	p.lastRead = p.from + int64(p.pos)
	if n < 0 {
		n = 0
	} else if n > bufferSize {
		panic("buffer size exceeded")
	}

	for p.pos+n > p.used {
		if len(p.buf) == 0 {
			p.buf = make([]byte, bufferSize)
		}
		k := copy(p.buf, p.buf[p.pos:p.used])
		p.from += int64(p.pos)
		p.pos = 0
		p.used = k

		l, err := p.r.Read(p.buf[p.used:])
		if err == io.EOF {
			if l > 0 {
				err = nil
			} else {
				err = io.ErrUnexpectedEOF
			}
		}
		if err != nil {
			return nil, p.Error("read failed: %w", err)
		}
		p.used += l
	}

	res := p.buf[p.pos : p.pos+n]
	p.pos += n
	return res, nil
}

// Error returns an error which is prefixed by the region name and by the
// offset of the most recent read.
func (p *Parser) Error(format string, a ...interface{}) error {
	region := p.region
	if region == "" {
		region = "input"
	}
	a = append([]interface{}{region, p.lastRead}, a...)
	return fmt.Errorf("%s%+d: "+format, a...)
}

// IsEOF reports whether err was caused by reading past the end of the
// input.
func IsEOF(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)
}
