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

// Fntdump shows information about Windows bitmap fonts.
//
// Usage:
//
//	fntdump [options] font.fon
//
// By default, the metrics of the selected font are printed, followed by a
// text sample rendered to the terminal.  With -l, the fonts contained in a
// FON file are listed.  With -c or -png, the font is exported as a C header
// file or the text sample is rendered to a PNG image.
package main

import (
	"flag"
	"fmt"
	"os"
	"slices"

	"golang.org/x/exp/maps"
	"golang.org/x/term"

	"seehuhn.de/go/winfnt"
	"seehuhn.de/go/winfnt/exe"
	"seehuhn.de/go/winfnt/fnt"
	"seehuhn.de/go/winfnt/fon"
)

func main() {
	list := flag.Bool("l", false, "list the fonts in a FON file")
	faceName := flag.String("face", "", "face name of the font to load")
	size := flag.Int("size", 0, "point size of the font to load")
	scale := flag.Int("scale", 0, "scale the font to this point size")
	text := flag.String("text", "Hello, World!", "text sample to render")
	cFile := flag.String("c", "", "write the font as a C header file")
	pngFile := flag.String("png", "", "render the text sample to a PNG file")
	zoom := flag.Int("zoom", 1, "magnification factor for -png")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Printf("Usage: %s [options] font.fon\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputFile := flag.Arg(0)

	if *list {
		err := listFonts(inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing fonts: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *size < 0 || *size > 0xFFFF {
		fmt.Fprintf(os.Stderr, "Invalid point size %d\n", *size)
		os.Exit(1)
	}
	opt := &winfnt.Options{
		Selector: fon.Selector{FaceName: *faceName, Points: uint16(*size)},
		Points:   *scale,
	}
	f, err := winfnt.LoadFile(inputFile, opt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading font: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *cFile != "":
		err = writeCHeader(*cFile, f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing C header: %v\n", err)
			os.Exit(1)
		}
	case *pngFile != "":
		err = writePNG(*pngFile, f, *text, *zoom)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing PNG: %v\n", err)
			os.Exit(1)
		}
	default:
		showInfo(f)
		fmt.Println()
		for _, line := range renderText(f, *text, terminalWidth()) {
			fmt.Println(line)
		}
	}
}

func listFonts(fname string) error {
	fd, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fd.Close()
	fi, err := fd.Stat()
	if err != nil {
		return err
	}

	table, err := exe.Open(fd, fi.Size())
	if err != nil {
		return err
	}
	entries, err := fon.ReadDir(table)
	if err != nil {
		return err
	}

	fmt.Printf("%s file, %d fonts\n\n", table.Format, len(entries))
	fmt.Println("  # face                     points height weight italic charset offset")
	sizes := make(map[string][]int)
	for _, e := range entries {
		fmt.Printf("%3d %-24s %6d %6d %6d %6t %7d %6d\n",
			e.Ordinal, e.FaceName, e.Points, e.PixHeight, e.Weight, e.Italic, e.Charset, e.Offset)
		sizes[e.FaceName] = append(sizes[e.FaceName], int(e.Points))
	}

	fmt.Println()
	faces := maps.Keys(sizes)
	slices.Sort(faces)
	for _, face := range faces {
		pts := sizes[face]
		slices.Sort(pts)
		fmt.Printf("%s: %v\n", face, slices.Compact(pts))
	}
	return nil
}

func showInfo(f *fnt.Font) {
	fmt.Printf("face:      %s\n", f.Name())
	if c := f.Copyright(); c != "" {
		fmt.Printf("copyright: %s\n", c)
	}
	fmt.Printf("version:   %s\n", f.Version())
	fmt.Printf("size:      %dpt at %d dpi (%dpt at 96 dpi)\n",
		f.Points(), f.DPI(), f.SizeInPointsAtDPI(96))
	fmt.Printf("height:    %d (ascent %d, internal leading %d, external leading %d)\n",
		f.Height(), f.Ascent(), f.InternalLeading(), f.ExternalLeading())
	pitch := "variable"
	if f.IsFixedPitch() {
		pitch = "fixed"
	}
	fmt.Printf("width:     max %d, average %d, %s pitch\n",
		f.MaxCharWidth(), f.AvgCharWidth(), pitch)
	fmt.Printf("style:     weight %d, italic %t, underline %t, strikethrough %t\n",
		f.Weight(), f.Italic(), f.Underline(), f.Strikethrough())
	fmt.Printf("charset:   %d\n", f.Charset())
	fmt.Printf("codes:     %d to %d, default %d, break %d\n",
		f.FirstChar(), f.LastChar(), f.DefaultChar(), f.BreakChar())
}

// terminalWidth returns the width of the terminal connected to stdout,
// or 80 if stdout is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err == nil && w > 0 {
			return w
		}
	}
	return 80
}
