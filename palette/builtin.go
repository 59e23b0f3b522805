// Package palette provides the fixed color tables a conversion runs
// against: named built-in palettes, RIFF PAL files, and plain hex-code
// lists. The quantization core never defines colors itself; everything
// it matches against comes from here or from a user-supplied file.
package palette

import (
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Dawnology/WplacePixelConverter/quant"
)

// Wplace is the free tier of the wplace.live color set, in site order.
var wplaceFree = []string{
	"#000000", // black
	"#3c3c3c", // dark gray
	"#787878", // gray
	"#d2d2d2", // light gray
	"#ffffff", // white
	"#600018", // deep red
	"#ed1c24", // red
	"#ff7f27", // orange
	"#f6aa09", // gold
	"#f9dd3b", // yellow
	"#fffabc", // light yellow
	"#0eb968", // dark green
	"#13e67b", // green
	"#87ff5e", // light green
	"#0c816e", // dark teal
	"#10aea6", // teal
	"#13e1be", // light teal
	"#28509e", // dark blue
	"#4093e4", // blue
	"#60f7f2", // cyan
	"#6b50f6", // indigo
	"#99b1fb", // light indigo
	"#780c99", // dark purple
	"#aa38b9", // purple
	"#e09ff9", // light purple
	"#cb007a", // dark pink
	"#ec1f80", // pink
	"#f38da9", // light pink
	"#684634", // dark brown
	"#95682a", // brown
	"#f8b277", // beige
}

var vga16 = []string{
	"#000000", "#0000aa", "#00aa00", "#00aaaa",
	"#aa0000", "#aa00aa", "#aa5500", "#aaaaaa",
	"#555555", "#5555ff", "#55ff55", "#55ffff",
	"#ff5555", "#ff55ff", "#ffff55", "#ffffff",
}

var builtins = map[string]func() quant.Palette{
	"wplace": func() quant.Palette { return fromHexes(wplaceFree) },
	"bw":     func() quant.Palette { return fromHexes([]string{"#000000", "#ffffff"}) },
	"vga16":  func() quant.Palette { return fromHexes(vga16) },
	"gray16": grays16,
}

// Names lists the built-in palette names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fromHexes(hexes []string) quant.Palette {
	entries := make([]quant.RGB, len(hexes))
	for i, h := range hexes {
		entries[i] = mustHex(h)
	}
	return quant.NewPaletteRGB(entries)
}

func mustHex(s string) quant.RGB {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("bad built-in palette color %q: %v", s, err))
	}
	r, g, b := c.RGB255()
	return quant.RGB{R: r, G: g, B: b}
}

func grays16() quant.Palette {
	entries := make([]quant.RGB, 16)
	for i := range entries {
		v := uint8(i * 255 / 15)
		entries[i] = quant.RGB{R: v, G: v, B: v}
	}
	return quant.NewPaletteRGB(entries)
}
