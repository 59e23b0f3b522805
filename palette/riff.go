package palette

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/image/riff"

	"github.com/Dawnology/WplacePixelConverter/quant"
)

// RIFF PAL layout, after the form header: a "data" chunk holding a
// LOGPALETTE — palVersion (0x0300, big-endian on disk as 00 03),
// palNumEntries (little-endian), then 4 bytes (red, green, blue,
// flags) per entry.

var (
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

// ReadRIFF reads the first palette from a RIFF PAL stream.
func ReadRIFF(r io.Reader) (quant.Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return quant.Palette{}, fmt.Errorf("could not open RIFF stream: %w", err)
	}
	if formType != palType {
		return quant.Palette{}, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	for {
		id, _, data, err := rd.Next()
		if err == io.EOF {
			return quant.Palette{}, fmt.Errorf("RIFF stream has no data chunk")
		}
		if err != nil {
			return quant.Palette{}, fmt.Errorf("could not read chunk: %w", err)
		}
		if id != dataType {
			continue
		}
		return readLogPalette(data)
	}
}

func readLogPalette(r io.Reader) (quant.Palette, error) {
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return quant.Palette{}, fmt.Errorf("could not read palette header: %w", err)
	}

	if ver := binary.BigEndian.Uint16(head[:2]); ver != 3 {
		return quant.Palette{}, fmt.Errorf("unsupported palette version: %d", ver)
	}

	count := binary.LittleEndian.Uint16(head[2:])
	entries := make([]quant.RGB, 0, count)
	var buf [4]byte
	for i := range int(count) {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return quant.Palette{}, fmt.Errorf("could not read color %d/%d: %w", i, count, err)
		}
		entries = append(entries, quant.RGB{R: buf[0], G: buf[1], B: buf[2]})
	}

	return quant.NewPaletteRGB(entries), nil
}

// WriteRIFF writes the palette as a RIFF PAL document.
func WriteRIFF(w io.Writer, pal quant.Palette) error {
	body := 4 + 4 + 4 + pal.Len()*4 // chunk id + size + version + count + colors

	var head []byte
	head = append(head, 'R', 'I', 'F', 'F')
	head = binary.LittleEndian.AppendUint32(head, uint32(body+4))
	head = append(head, palType[:]...)
	head = append(head, dataType[:]...)
	head = binary.LittleEndian.AppendUint32(head, uint32(4+pal.Len()*4))
	head = append(head, 0x00, 0x03) // palVersion
	head = binary.LittleEndian.AppendUint16(head, uint16(pal.Len()))
	if err := writeAll(w, head); err != nil {
		return fmt.Errorf("could not write palette header: %w", err)
	}

	for i := 0; i < pal.Len(); i++ {
		e := pal.At(i)
		if err := writeAll(w, []byte{e.R, e.G, e.B, 0x00}); err != nil {
			return fmt.Errorf("could not write color %d/%d: %w", i, pal.Len(), err)
		}
	}
	return nil
}

func writeAll(w io.Writer, b []byte) error {
	n, err := w.Write(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return fmt.Errorf("wrote only %d/%d bytes", n, len(b))
	}
	return nil
}
