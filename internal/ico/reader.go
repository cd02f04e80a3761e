package ico

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"os"
)

// pngMagic is the 8-byte PNG file signature.
var pngMagic = []byte("\x89PNG\r\n\x1a\n")

// Entry describes one ICONDIRENTRY.
type Entry struct {
	Width    int // pixels, 256 when stored as 0
	Height   int
	Planes   int
	BitCount int
	Size     int // payload bytes
	Offset   int // payload offset from start of file
	PNG      bool
}

// Format returns "png" or "bmp" depending on the payload signature.
func (e Entry) Format() string {
	if e.PNG {
		return "png"
	}
	return "bmp"
}

// ReadDir parses the icon directory of an ICO file held in data. Every
// payload must lie inside data.
func ReadDir(data []byte) ([]Entry, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("ico: file too short")
	}
	reserved := binary.LittleEndian.Uint16(data[0:2])
	typ := binary.LittleEndian.Uint16(data[2:4])
	count := int(binary.LittleEndian.Uint16(data[4:6]))
	if reserved != 0 || typ != typeIcon {
		return nil, fmt.Errorf("ico: not an icon file")
	}
	if count == 0 {
		return nil, fmt.Errorf("ico: no images")
	}
	if len(data) < headerSize+count*entrySize {
		return nil, fmt.Errorf("ico: directory truncated (%d entries)", count)
	}

	entries := make([]Entry, count)
	for i := range entries {
		off := headerSize + i*entrySize
		e := Entry{
			Width:    dimInt(data[off]),
			Height:   dimInt(data[off+1]),
			Planes:   int(binary.LittleEndian.Uint16(data[off+4 : off+6])),
			BitCount: int(binary.LittleEndian.Uint16(data[off+6 : off+8])),
			Size:     int(binary.LittleEndian.Uint32(data[off+8 : off+12])),
			Offset:   int(binary.LittleEndian.Uint32(data[off+12 : off+16])),
		}
		if e.Offset < 0 || e.Size <= 0 || e.Offset > len(data) || e.Size > len(data)-e.Offset {
			return nil, fmt.Errorf("ico: entry %d payload out of range", i)
		}
		e.PNG = bytes.HasPrefix(data[e.Offset:e.Offset+e.Size], pngMagic)
		entries[i] = e
	}
	return entries, nil
}

// ReadFile reads an ICO file and returns its raw bytes and directory.
func ReadFile(path string) ([]byte, []Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("ico: %w", err)
	}
	entries, err := ReadDir(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, entries, nil
}

// DecodeEntry decodes the payload of e. Only PNG payloads are supported.
func DecodeEntry(data []byte, e Entry) (image.Image, error) {
	if !e.PNG {
		return nil, fmt.Errorf("ico: %dx%d entry is BMP, only PNG payloads are supported", e.Width, e.Height)
	}
	img, err := png.Decode(bytes.NewReader(data[e.Offset : e.Offset+e.Size]))
	if err != nil {
		return nil, fmt.Errorf("ico: decoding %dx%d entry: %w", e.Width, e.Height, err)
	}
	return img, nil
}

func dimInt(b byte) int {
	if b == 0 {
		return maxDim
	}
	return int(b)
}
