package nes

import (
	"image/color"
	"io/ioutil"

	"golang.org/x/image/colornames"
)

const paletteSize = 64

// defaultPalette is used when no .pal file is supplied. It is not a
// faithful NTSC decode — that would need a real PPU color-generation
// circuit — just a deterministic, visibly-varied 64-entry table built
// from the named colors golang.org/x/image/colornames ships, so distinct
// sampled indexes render as distinct colors. Entry 0 is black.
func defaultPalette() [paletteSize]color.RGBA {
	names := []string{
		"black", "darkslategray", "navy", "darkblue", "indigo", "purple",
		"maroon", "darkred", "saddlebrown", "darkolivegreen", "darkgreen",
		"darkslategray", "teal", "steelblue", "slategray", "dimgray",
		"gray", "royalblue", "blue", "blueviolet", "mediumpurple",
		"crimson", "firebrick", "chocolate", "darkgoldenrod", "olive",
		"forestgreen", "seagreen", "cadetblue", "dodgerblue",
		"mediumslateblue", "slateblue",
		"silver", "cornflowerblue", "mediumblue", "violet", "orchid",
		"mediumvioletred", "tomato", "orangered", "orange", "goldenrod",
		"yellowgreen", "limegreen", "mediumseagreen", "turquoise",
		"skyblue", "lightsteelblue",
		"white", "lightblue", "lightskyblue", "plum", "lightpink",
		"lightsalmon", "sandybrown", "khaki", "gold", "greenyellow",
		"lightgreen", "paleturquoise", "lightcyan", "lavender", "gainsboro",
		"lightyellow",
	}

	var p [paletteSize]color.RGBA
	for i := range p {
		c := colornames.Map[names[i%len(names)]]
		p[i] = c
	}
	return p
}

// loadPalette reads a raw .pal file (three bytes per entry, R,G,B) as
// produced by most NES palette-editor tools.
func loadPalette(filepath string) ([paletteSize]color.RGBA, error) {
	data, err := ioutil.ReadFile(filepath)
	if err != nil {
		return [paletteSize]color.RGBA{}, err
	}

	var palette [paletteSize]color.RGBA
	for i := 0; i+2 < len(data) && i/3 < paletteSize; i += 3 {
		palette[i/3] = color.RGBA{R: data[i], G: data[i+1], B: data[i+2], A: 255}
	}
	return palette, nil
}
