// Package ico reads and writes Windows ICO containers holding 32-bit
// PNG-compressed frames. PNG payloads are valid in ICO files since Vista
// and keep the alpha channel intact at every size.
package ico

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/Mavwarf/mkicon/internal/paths"
)

const (
	headerSize = 6  // ICONDIR
	entrySize  = 16 // ICONDIRENTRY
	typeIcon   = 1
	maxDim     = 256
	maxEntries = 0xffff
)

// Encode writes images as an ICO container, one directory entry per image
// in the given order. Each image must be between 1×1 and 256×256.
func Encode(w io.Writer, images []image.Image) error {
	data, err := Marshal(images)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Marshal returns the ICO encoding of images.
func Marshal(images []image.Image) ([]byte, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("ico: no images")
	}
	if len(images) > maxEntries {
		return nil, fmt.Errorf("ico: too many images (%d)", len(images))
	}

	payloads := make([][]byte, len(images))
	for i, img := range images {
		b := img.Bounds()
		if b.Dx() < 1 || b.Dy() < 1 || b.Dx() > maxDim || b.Dy() > maxDim {
			return nil, fmt.Errorf("ico: image %d is %dx%d, want 1..%d", i, b.Dx(), b.Dy(), maxDim)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("ico: encoding image %d: %w", i, err)
		}
		payloads[i] = buf.Bytes()
	}

	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, [3]uint16{0, typeIcon, uint16(len(images))})

	offset := uint32(headerSize + entrySize*len(images))
	for i, img := range images {
		b := img.Bounds()
		// width, height, palette, reserved
		buf.Write([]byte{dimByte(b.Dx()), dimByte(b.Dy()), 0, 0})
		binary.Write(buf, binary.LittleEndian, uint16(1))                // color planes
		binary.Write(buf, binary.LittleEndian, uint16(32))               // bits per pixel
		binary.Write(buf, binary.LittleEndian, uint32(len(payloads[i]))) // data size
		binary.Write(buf, binary.LittleEndian, offset)                   // data offset
		offset += uint32(len(payloads[i]))
	}

	for _, p := range payloads {
		buf.Write(p)
	}
	return buf.Bytes(), nil
}

// WriteFile encodes images and writes them to path, replacing any existing
// file atomically.
func WriteFile(path string, images []image.Image) error {
	data, err := Marshal(images)
	if err != nil {
		return err
	}
	if err := paths.AtomicWrite(path, data); err != nil {
		return fmt.Errorf("ico: %w", err)
	}
	return nil
}

// dimByte maps a pixel dimension to its directory byte; 256 is stored as 0.
func dimByte(n int) byte {
	if n >= maxDim {
		return 0
	}
	return byte(n)
}
