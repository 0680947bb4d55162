package bmp

import (
	"bytes"
	"errors"
	"image/color"
	"testing"
)

func TestRowStride(t *testing.T) {
	tests := []struct {
		width, bpp, want int
	}{
		{3, 24, 12},
		{1, 1, 4},
		{16, 1, 4},
		{17, 1, 4},
		{33, 1, 8},
		{1, 24, 4},
		{2, 24, 8},
		{1, 32, 4},
		{3, 4, 4},
		{5, 16, 12},
	}
	for _, tt := range tests {
		if got := rowStride(tt.width, tt.bpp); got != tt.want {
			t.Errorf("rowStride(%d, %d) = %d, want %d", tt.width, tt.bpp, got, tt.want)
		}
	}
}

func TestPixelsSubByte(t *testing.T) {
	// 4 bpp, 3 pixels wide: nibbles A, B, C packed MSB first.
	dib := infoHeaderBytes(3, 1, 4, CompressionRGB)
	row := []byte{0xAB, 0xC0, 0, 0}
	f := FromBytes(assembleBMP(dib, nil, row))

	grid, err := f.Pixels()
	if err != nil {
		t.Fatalf("Pixels: %v", err)
	}
	want := []byte{0xA, 0xB, 0xC}
	for x, w := range want {
		if got := grid[0][x][0]; got != w {
			t.Errorf("pixel %d = %#x, want %#x", x, got, w)
		}
	}
}

func TestPixelsOneBit(t *testing.T) {
	// 1 bpp, 10 pixels: 1010101010 packed across two bytes.
	dib := infoHeaderBytes(10, 1, 1, CompressionRGB)
	row := []byte{0b10101010, 0b10000000, 0, 0}
	f := FromBytes(assembleBMP(dib, nil, row))

	grid, err := f.Pixels()
	if err != nil {
		t.Fatalf("Pixels: %v", err)
	}
	for x := 0; x < 10; x++ {
		want := byte(1 - x%2)
		if got := grid[0][x][0]; got != want {
			t.Errorf("pixel %d = %d, want %d", x, got, want)
		}
	}
}

// TestPixelsOrientation pins the invariant that grid row 0 is the visual
// top row for both storage orders.
func TestPixelsOrientation(t *testing.T) {
	top := color.RGBA{R: 1, A: 255}
	bottom := color.RGBA{B: 2, A: 255}
	px := [][]color.RGBA{{top}, {bottom}}

	for _, topDown := range []bool{false, true} {
		f := build24(px, topDown)
		grid, err := f.Pixels()
		if err != nil {
			t.Fatalf("topDown=%v: Pixels: %v", topDown, err)
		}
		if len(grid) != 2 {
			t.Fatalf("topDown=%v: %d rows, want 2", topDown, len(grid))
		}
		// Top row stores R=1 as B,G,R = 0,0,1.
		if !bytes.Equal(grid[0][0], []byte{0, 0, 1}) {
			t.Errorf("topDown=%v: grid[0][0] = %v, want [0 0 1]", topDown, grid[0][0])
		}
		if !bytes.Equal(grid[1][0], []byte{2, 0, 0}) {
			t.Errorf("topDown=%v: grid[1][0] = %v, want [2 0 0]", topDown, grid[1][0])
		}
	}
}

func TestPixelsRowsDerivedFromBuffer(t *testing.T) {
	// Declared height 4, but only two rows of data present.
	dib := infoHeaderBytes(1, 4, 24, CompressionRGB)
	f := FromBytes(assembleBMP(dib, nil, make([]byte, 8)))
	grid, err := f.Pixels()
	if err != nil {
		t.Fatalf("Pixels: %v", err)
	}
	if len(grid) != 2 {
		t.Errorf("%d rows, want 2 (derived from buffer length)", len(grid))
	}
}

// Byte-aligned samples are views over the buffer, not copies: a write
// through SetPixel shows up in a grid unpacked beforehand.
func TestPixelsAliasBuffer(t *testing.T) {
	f := build24([][]color.RGBA{{{}}}, false)
	grid, err := f.Pixels()
	if err != nil {
		t.Fatalf("Pixels: %v", err)
	}
	if err := f.SetPixel(0, 0, color.RGBA{R: 9, G: 8, B: 7, A: 255}); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	if !bytes.Equal(grid[0][0], []byte{7, 8, 9}) {
		t.Errorf("grid[0][0] = %v after write, want aliased [7 8 9]", grid[0][0])
	}
}

func TestPixelsOffsetInsideHeaders(t *testing.T) {
	data := assembleBMP(infoHeaderBytes(1, 1, 24, CompressionRGB), nil, make([]byte, 4))
	putU32(data, 10, 20) // pixel data offset inside the DIB header
	if _, err := FromBytes(data).Pixels(); !errors.Is(err, ErrMalformed) {
		t.Errorf("Pixels = %v, want ErrMalformed", err)
	}
}

func TestPixelsErrors(t *testing.T) {
	tests := []struct {
		name string
		dib  []byte
		want error
	}{
		{"zero height", infoHeaderBytes(1, 0, 24, CompressionRGB), ErrMalformed},
		{"zero width", infoHeaderBytes(0, 1, 24, CompressionRGB), ErrMalformed},
		{"negative width", infoHeaderBytes(-5, 1, 24, CompressionRGB), ErrMalformed},
		{"odd bit depth", infoHeaderBytes(1, 1, 13, CompressionRGB), ErrUnsupported},
		{"RLE8", infoHeaderBytes(1, 1, 8, CompressionRLE8), ErrUnsupported},
		{"RLE4", infoHeaderBytes(1, 1, 4, CompressionRLE4), ErrUnsupported},
		{"JPEG", infoHeaderBytes(1, 1, 24, CompressionJPEG), ErrUnsupported},
		{"PNG", infoHeaderBytes(1, 1, 24, CompressionPNG), ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FromBytes(assembleBMP(tt.dib, nil, make([]byte, 16)))
			if _, err := f.Pixels(); !errors.Is(err, tt.want) {
				t.Errorf("Pixels = %v, want %v", err, tt.want)
			}
		})
	}
}
