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

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/iancoleman/strcase"

	"seehuhn.de/go/winfnt/fnt"
)

func writeCHeader(fname string, f *fnt.Font) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = emitC(out, f)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// cName returns the prefix for the C identifiers of the font,
// for example HELV_10 for 10pt Helv.
func cName(f *fnt.Font) string {
	name := f.Name()
	if name == "" {
		name = "font"
	}
	return strcase.ToScreamingSnake(fmt.Sprintf("%s %d", name, f.Points()))
}

// emitC writes the font as a C header.  Glyph bitmaps are stored row by
// row, most significant bit first, and are located using the offset
// table.
func emitC(w io.Writer, f *fnt.Font) error {
	b := bufio.NewWriter(w)
	name := cName(f)

	fmt.Fprintf(b, "#ifndef _%s_H_\n#define _%[1]s_H_\n\n", name)
	fmt.Fprintf(b, "#include <stdint.h>\n\n")
	fmt.Fprintf(b, "// %s, %dpt, %s\n", f.Name(), f.Points(), f.Copyright())
	fmt.Fprintf(b, "#define %s_HEIGHT %d\n", name, f.Height())
	fmt.Fprintf(b, "#define %s_ASCENT %d\n", name, f.Ascent())
	fmt.Fprintf(b, "#define %s_FIRST_CHAR %d\n", name, f.FirstChar())
	fmt.Fprintf(b, "#define %s_LAST_CHAR %d\n", name, f.LastChar())
	fmt.Fprintf(b, "#define %s_DEFAULT_CHAR %d\n\n", name, f.DefaultChar())

	var offsets []int
	pos := 0
	fmt.Fprintf(b, "static const uint16_t %s_WIDTHS[] = {\n", name)
	for code := f.FirstChar(); code <= f.LastChar(); code++ {
		g, _ := f.Glyph(code)
		fmt.Fprintf(b, "    %d, // %d\n", g.Width, code)
		offsets = append(offsets, pos)
		pos += len(g.Bitmap)
	}
	fmt.Fprintf(b, "};\n\n")

	fmt.Fprintf(b, "static const uint32_t %s_OFFSETS[] = {\n", name)
	for i, off := range offsets {
		fmt.Fprintf(b, "    %d, // %d\n", off, f.FirstChar()+i)
	}
	fmt.Fprintf(b, "};\n\n")

	fmt.Fprintf(b, "static const uint8_t %s_BITMAPS[] = {\n", name)
	for code := f.FirstChar(); code <= f.LastChar(); code++ {
		g, _ := f.Glyph(code)
		if len(g.Bitmap) == 0 {
			continue
		}
		b.WriteString("   ")
		for _, x := range g.Bitmap {
			fmt.Fprintf(b, " 0x%02x,", x)
		}
		fmt.Fprintf(b, " // %d\n", code)
	}
	fmt.Fprintf(b, "};\n\n#endif\n")

	return b.Flush()
}
