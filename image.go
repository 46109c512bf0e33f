// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrImageFormat rejects image data that is not a supported PNG, JPEG
// or BMP, or that is malformed.
var ErrImageFormat = errors.New("unsupported image data")

// ImageKind classifies embedded raster images.
type ImageKind uint8

const (
	ImagePNG ImageKind = iota + 1
	ImageJPEG
	ImageBMP
)

func (k ImageKind) String() string {
	switch k {
	case ImagePNG:
		return "png"
	case ImageJPEG:
		return "jpeg"
	case ImageBMP:
		return "bmp"
	}
	return "unknown"
}

// contentType returns the MIME type for the content-types manifest.
func (k ImageKind) contentType() string {
	switch k {
	case ImagePNG:
		return "image/png"
	case ImageJPEG:
		return "image/jpeg"
	case ImageBMP:
		return "image/bmp"
	}
	return "application/octet-stream"
}

// imageRef is one distinct image file: sniffed type and dimensions plus
// the reference id assigned at first sighting. Repeat insertions of the
// same path only bump the reference count.
type imageRef struct {
	path     string
	name     string
	kind     ImageKind
	width    uint32
	height   uint32
	refID    int
	refCount int
	data     []byte
}

// imageProperties returns the cached reference for path, reading and
// sniffing the file only on first sight.
func (wb *Workbook) imageProperties(path string) (*imageRef, error) {
	if ref, ok := wb.imageCache[path]; ok {
		ref.refCount++
		return ref, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	kind, width, height, err := sniffImage(data, path)
	if err != nil {
		return nil, err
	}
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	ref := &imageRef{
		path:     path,
		name:     name,
		kind:     kind,
		width:    width,
		height:   height,
		refID:    len(wb.images) + 1,
		refCount: 1,
		data:     data,
	}
	wb.imageCache[path] = ref
	wb.images = append(wb.images, ref)
	return ref, nil
}

// sniffImage classifies raw image bytes by magic numbers and extracts
// the pixel dimensions. filename is only used in error messages.
func sniffImage(data []byte, filename string) (ImageKind, uint32, uint32, error) {
	switch {
	case len(data) >= 4 && string(data[1:4]) == "PNG":
		w, h, err := processPNG(data, filename)
		return ImagePNG, w, h, err
	case len(data) >= 10 && data[0] == 0xFF && data[1] == 0xD8 &&
		(string(data[6:10]) == "JFIF" || string(data[6:10]) == "Exif"):
		w, h, err := processJPEG(data, filename)
		return ImageJPEG, w, h, err
	case len(data) >= 2 && string(data[:2]) == "BM":
		w, h, err := processBMP(data, filename)
		return ImageBMP, w, h, err
	}
	return 0, 0, 0, fmt.Errorf("%w: %q: unsupported image format", ErrImageFormat, filename)
}

// processPNG reads the IHDR width/height, big endian, at their fixed
// offsets behind the 8-byte signature and chunk header.
func processPNG(data []byte, filename string) (uint32, uint32, error) {
	if len(data) < 24 {
		return 0, 0, fmt.Errorf("%w: %q: png data is truncated", ErrImageFormat, filename)
	}
	width := binary.BigEndian.Uint32(data[16:])
	height := binary.BigEndian.Uint32(data[20:])
	return width, height, nil
}

// processJPEG walks the marker segments from offset 2 until a start of
// frame yields the dimensions, or a start of scan proves there are
// none.
func processJPEG(data []byte, filename string) (uint32, uint32, error) {
	offset := 2
	for offset < len(data)-9 {
		marker := binary.BigEndian.Uint16(data[offset:])
		length := binary.BigEndian.Uint16(data[offset+2:])
		if marker == 0xFFC0 || marker == 0xFFC2 {
			height := binary.BigEndian.Uint16(data[offset+5:])
			width := binary.BigEndian.Uint16(data[offset+7:])
			return uint32(width), uint32(height), nil
		}
		if marker == 0xFFDA {
			break
		}
		offset += int(length) + 2
	}
	return 0, 0, fmt.Errorf("%w: %q: no size data found in jpeg image", ErrImageFormat, filename)
}

// processBMP accepts only minimal uncompressed 24-bit single-plane
// bitmaps, matching what spreadsheet applications render.
func processBMP(data []byte, filename string) (uint32, uint32, error) {
	if len(data) <= 0x36 {
		return 0, 0, fmt.Errorf("%w: %q: bmp data is truncated", ErrImageFormat, filename)
	}
	width := binary.LittleEndian.Uint32(data[0x12:])
	height := binary.LittleEndian.Uint32(data[0x16:])
	if planes := binary.LittleEndian.Uint16(data[0x1A:]); planes != 1 {
		return 0, 0, fmt.Errorf("%w: %q: only 1 plane supported in bmp image", ErrImageFormat, filename)
	}
	if bits := binary.LittleEndian.Uint16(data[0x1C:]); bits != 24 {
		return 0, 0, fmt.Errorf("%w: %q isn't a 24bit true color bitmap", ErrImageFormat, filename)
	}
	if compression := binary.LittleEndian.Uint32(data[0x1E:]); compression != 0 {
		return 0, 0, fmt.Errorf("%w: %q: compression not supported in bmp image", ErrImageFormat, filename)
	}
	return width, height, nil
}
