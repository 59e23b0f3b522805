package palette

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dawnology/WplacePixelConverter/quant"
)

func TestBuiltinNames(t *testing.T) {
	names := Names()
	if !sortedStrings(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	for _, name := range names {
		pal, err := Load(name)
		if err != nil {
			t.Errorf("Load(%q): %v", name, err)
			continue
		}
		if pal.Len() == 0 {
			t.Errorf("built-in %q is empty", name)
		}
	}
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func TestBuiltinWplace(t *testing.T) {
	pal, err := Load("WPLACE") // name lookup is case-insensitive
	if err != nil {
		t.Fatal(err)
	}
	if pal.Len() != 31 {
		t.Fatalf("wplace palette has %d colors, want 31", pal.Len())
	}
	if pal.At(0) != (quant.RGB{}) {
		t.Errorf("first color = %v, want black", pal.At(0))
	}
	if pal.At(4) != (quant.RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("fifth color = %v, want white", pal.At(4))
	}
}

func TestLoadHexList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.txt")
	content := strings.Join([]string{
		"; comment line",
		"#ff0000",
		"",
		"00ff00", // bare hex, no hash
		"  #0000ff  ",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	pal, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := []quant.RGB{{R: 255}, {G: 255}, {B: 255}}
	if pal.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", pal.Len(), len(want))
	}
	for i, w := range want {
		if pal.At(i) != w {
			t.Errorf("color %d = %v, want %v", i, pal.At(i), w)
		}
	}
}

func TestLoadHexListBadLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.txt")
	if err := os.WriteFile(path, []byte("#ff0000\n#nothex\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed color")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the offending line", err)
	}
}

func TestLoadHexListEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.txt")
	if err := os.WriteFile(path, []byte("; nothing but comments\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty color list")
	}
}

func TestLoadUnknownName(t *testing.T) {
	_, err := Load("no-such-palette")
	if err == nil {
		t.Fatal("expected error for unknown palette")
	}
	if !strings.Contains(err.Error(), "wplace") {
		t.Errorf("error %q does not list the built-ins", err)
	}
}

func TestRIFFRoundTrip(t *testing.T) {
	pal := quant.NewPaletteRGB([]quant.RGB{
		{R: 1, G: 2, B: 3},
		{R: 250, G: 128, B: 0},
		{R: 255, G: 255, B: 255},
	})

	var buf bytes.Buffer
	if err := WriteRIFF(&buf, pal); err != nil {
		t.Fatal(err)
	}
	got, err := ReadRIFF(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != pal.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), pal.Len())
	}
	for i := 0; i < pal.Len(); i++ {
		if got.At(i) != pal.At(i) {
			t.Errorf("color %d = %v, want %v", i, got.At(i), pal.At(i))
		}
	}
}

func TestReadRIFFRejectsWrongForm(t *testing.T) {
	// A well-formed RIFF document that is not a palette.
	doc := []byte("RIFF\x04\x00\x00\x00WAVE")
	if _, err := ReadRIFF(bytes.NewReader(doc)); err == nil {
		t.Fatal("expected error for non-PAL RIFF document")
	}
}

func TestLoadRIFFFile(t *testing.T) {
	pal := quant.NewPaletteRGB([]quant.RGB{{R: 9}, {G: 9}, {B: 9}})
	path := filepath.Join(t.TempDir(), "test.pal")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteRIFF(f, pal); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 3 || got.At(0) != (quant.RGB{R: 9}) {
		t.Errorf("loaded palette %d colors, first %v", got.Len(), got.At(0))
	}
}
