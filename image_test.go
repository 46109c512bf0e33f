// SPDX-License-Identifier: Apache-2.0

package xlsxwriter

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func pngData(width, height uint32) []byte {
	data := make([]byte, 33)
	copy(data, []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A})
	copy(data[12:], "IHDR")
	binary.BigEndian.PutUint32(data[16:], width)
	binary.BigEndian.PutUint32(data[20:], height)
	return data
}

func jpegData(width, height uint16) []byte {
	data := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	data = append(data, []byte("JFIF\x00")...)
	data = append(data, make([]byte, 9)...) // rest of the APP0 payload
	sof := []byte{0xFF, 0xC0, 0x00, 0x11, 0x08, 0, 0, 0, 0, 0x03}
	binary.BigEndian.PutUint16(sof[5:], height)
	binary.BigEndian.PutUint16(sof[7:], width)
	data = append(data, sof...)
	return append(data, make([]byte, 16)...)
}

func bmpData(width, height uint32, planes, bits uint16, compression uint32) []byte {
	data := make([]byte, 0x40)
	data[0], data[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(data[0x12:], width)
	binary.LittleEndian.PutUint32(data[0x16:], height)
	binary.LittleEndian.PutUint16(data[0x1A:], planes)
	binary.LittleEndian.PutUint16(data[0x1C:], bits)
	binary.LittleEndian.PutUint32(data[0x1E:], compression)
	return data
}

func TestSniffImage(t *testing.T) {
	cases := []struct {
		name          string
		data          []byte
		kind          ImageKind
		width, height uint32
	}{
		{"png", pngData(640, 480), ImagePNG, 640, 480},
		{"jpeg", jpegData(128, 64), ImageJPEG, 128, 64},
		{"bmp", bmpData(32, 16, 1, 24, 0), ImageBMP, 32, 16},
	}
	for _, tc := range cases {
		kind, w, h, err := sniffImage(tc.data, tc.name)
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if kind != tc.kind || w != tc.width || h != tc.height {
			t.Errorf("%s = %v %dx%d, want %v %dx%d", tc.name, kind, w, h, tc.kind, tc.width, tc.height)
		}
	}
}

func TestSniffImageRejects(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"gif", []byte("GIF89a.............")},
		{"bmp 2 planes", bmpData(8, 8, 2, 24, 0)},
		{"bmp 8 bit", bmpData(8, 8, 1, 8, 0)},
		{"bmp rle", bmpData(8, 8, 1, 24, 1)},
		{"jpeg without frame", append([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}, []byte("JFIF\x00\x00\x00\x00\x00\x00\x00\x00\x00\xFF\xDA\x00\x02")...)},
	}
	for _, tc := range cases {
		if _, _, _, err := sniffImage(tc.data, tc.name); !errors.Is(err, ErrImageFormat) {
			t.Errorf("%s: err = %v, want ErrImageFormat", tc.name, err)
		}
	}
}

func TestImagePropertiesCaching(t *testing.T) {
	dir := t.TempDir()
	logo := filepath.Join(dir, "logo.png")
	if err := os.WriteFile(logo, pngData(10, 20), 0o644); err != nil {
		t.Fatal(err)
	}
	banner := filepath.Join(dir, "banner.bmp")
	if err := os.WriteFile(banner, bmpData(300, 50, 1, 24, 0), 0o644); err != nil {
		t.Fatal(err)
	}

	wb := New()
	a, err := wb.imageProperties(logo)
	if err != nil {
		t.Fatal(err)
	}
	b, err := wb.imageProperties(logo)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("repeat insertion must return the cached reference")
	}
	if a.refCount != 2 {
		t.Errorf("refCount = %d, want 2", a.refCount)
	}
	if a.refID != 1 {
		t.Errorf("refID = %d, want 1", a.refID)
	}
	if a.name != "logo" {
		t.Errorf("name = %q, want logo", a.name)
	}

	c, err := wb.imageProperties(banner)
	if err != nil {
		t.Fatal(err)
	}
	if c.refID != 2 || c.kind != ImageBMP {
		t.Errorf("banner = id %d kind %v, want 2 bmp", c.refID, c.kind)
	}
	if len(wb.images) != 2 {
		t.Errorf("images = %d, want 2", len(wb.images))
	}
}

func TestImagePropertiesMissingFile(t *testing.T) {
	wb := New()
	if _, err := wb.imageProperties(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("want error for missing file")
	}
}
