package palette

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Dawnology/WplacePixelConverter/quant"
)

// Load resolves a palette by built-in name or file path. Files ending
// in .pal are read as RIFF PAL; anything else is read as a plain list
// of hex color codes, one per line.
func Load(nameOrPath string) (quant.Palette, error) {
	if build, ok := builtins[strings.ToLower(nameOrPath)]; ok {
		return build(), nil
	}

	f, err := os.Open(nameOrPath)
	if err != nil {
		return quant.Palette{}, fmt.Errorf("unknown palette %q (built-ins: %s): %w",
			nameOrPath, strings.Join(Names(), ", "), err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(nameOrPath), ".pal") {
		pal, err := ReadRIFF(f)
		if err != nil {
			return quant.Palette{}, fmt.Errorf("could not load palette %q: %w", nameOrPath, err)
		}
		return pal, nil
	}

	pal, err := readHexList(f)
	if err != nil {
		return quant.Palette{}, fmt.Errorf("could not load palette %q: %w", nameOrPath, err)
	}
	return pal, nil
}

func readHexList(f *os.File) (quant.Palette, error) {
	var entries []quant.RGB
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, ";") {
			continue
		}
		if !strings.HasPrefix(s, "#") {
			s = "#" + s
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return quant.Palette{}, fmt.Errorf("bad color on line %d: %w", line, err)
		}
		r, g, b := c.RGB255()
		entries = append(entries, quant.RGB{R: r, G: g, B: b})
	}
	if err := scanner.Err(); err != nil {
		return quant.Palette{}, fmt.Errorf("could not read color list: %w", err)
	}
	if len(entries) == 0 {
		return quant.Palette{}, fmt.Errorf("color list is empty")
	}
	return quant.NewPaletteRGB(entries), nil
}
