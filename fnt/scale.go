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

package fnt

import (
	"fmt"
	"math"
)

// MaxScaledBitmapBytes limits the total size of the glyph bitmaps
// produced by Scale.
const MaxScaledBitmapBytes = 64 << 20

// Scale returns a version of src for the given point size.
//
// If src already has the requested size, src itself is returned; the two
// values then refer to the same font.  Otherwise a new font is built by
// replicating every pixel of src into a k×k block, where k is the requested
// size divided by the size of src, rounded to the nearest integer.  Fonts
// are never scaled down: if the rounded factor is less than one, an
// independent copy of src with the original metrics is returned.
//
// The only possible error is ErrAllocationFailure, for factors which would
// overflow the 16-bit metrics of the format or exceed
// MaxScaledBitmapBytes.
func Scale(src *Font, points int) (*Font, error) {
	if points == int(src.points) {
		return src, nil
	}

	k := 1
	if src.points > 0 && points > 0 {
		k = int(math.Round(float64(points) / float64(src.points)))
	}
	if k < 1 {
		k = 1
	}

	tooLarge := func(what string) error {
		return newError(ErrAllocationFailure, 0, fmt.Sprintf("%s at scale factor %d", what, k))
	}
	mul := func(v uint16) (uint16, bool) {
		x := int(v) * k
		return uint16(x), x <= math.MaxUint16
	}

	dst := *src
	var ok [8]bool
	dst.points, ok[0] = mul(src.points)
	dst.pixHeight, ok[1] = mul(src.pixHeight)
	dst.ascent, ok[2] = mul(src.ascent)
	dst.maxWidth, ok[3] = mul(src.maxWidth)
	dst.avgWidth, ok[4] = mul(src.avgWidth)
	dst.pixWidth, ok[5] = mul(src.pixWidth)
	dst.internalLeading, ok[6] = mul(src.internalLeading)
	dst.externalLeading, ok[7] = mul(src.externalLeading)
	for _, good := range ok {
		if !good {
			return nil, tooLarge("metrics overflow")
		}
	}

	total := 0
	height := int(dst.pixHeight)
	for _, g := range src.glyphs {
		w := int(g.width) * k
		if w > math.MaxUint16 {
			return nil, tooLarge("glyph width overflow")
		}
		total += (w + 7) / 8 * height
		if total > MaxScaledBitmapBytes {
			return nil, tooLarge("bitmap size")
		}
	}

	dst.glyphs = make([]glyphEntry, len(src.glyphs))
	for i, g := range src.glyphs {
		dst.glyphs[i] = glyphEntry{
			width:  g.width * uint16(k),
			bitmap: replicate(g.bitmap, int(g.width), int(src.pixHeight), k),
		}
	}
	return &dst, nil
}

// replicate scales a packed bitmap by the integer factor k.
func replicate(bitmap []byte, width, height, k int) []byte {
	srcStride := (width + 7) / 8
	dstStride := (width*k + 7) / 8
	out := make([]byte, dstStride*height*k)

	for y := 0; y < height; y++ {
		row := out[y*k*dstStride : (y*k+1)*dstStride]
		for x := 0; x < width; x++ {
			if bitmap[y*srcStride+x/8]&(0x80>>(x%8)) == 0 {
				continue
			}
			for X := x * k; X < (x+1)*k; X++ {
				row[X/8] |= 0x80 >> (X % 8)
			}
		}
		for dy := 1; dy < k; dy++ {
			copy(out[(y*k+dy)*dstStride:], row)
		}
	}
	return out
}
