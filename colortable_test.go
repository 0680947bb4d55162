package bmp

import (
	"bytes"
	"errors"
	"testing"
)

func TestColorTableCoreTriples(t *testing.T) {
	table := []byte{
		10, 20, 30, // entry 0: B,G,R
		40, 50, 60, // entry 1
		70, 80, // partial entry, ignored
	}
	dib := coreHeaderBytes(1, 1, 4)
	f := FromBytes(assembleBMP(dib, table, make([]byte, 4)))

	ct, err := f.ColorTable()
	if err != nil {
		t.Fatalf("ColorTable: %v", err)
	}
	if ct.EntrySize != 3 {
		t.Errorf("EntrySize = %d, want 3", ct.EntrySize)
	}
	if len(ct.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(ct.Entries))
	}
	if !bytes.Equal(ct.Entries[0], []byte{10, 20, 30}) ||
		!bytes.Equal(ct.Entries[1], []byte{40, 50, 60}) {
		t.Errorf("Entries = %v", ct.Entries)
	}
}

func TestColorTableInfoQuads(t *testing.T) {
	table := []byte{
		255, 0, 0, 0, // entry 0: blue
		0, 0, 255, 128, // entry 1: red, half alpha
	}
	dib := infoHeaderBytes(1, 1, 8, CompressionRGB)
	f := FromBytes(assembleBMP(dib, table, make([]byte, 4)))

	ct, err := f.ColorTable()
	if err != nil {
		t.Fatalf("ColorTable: %v", err)
	}
	if ct.EntrySize != 4 {
		t.Errorf("EntrySize = %d, want 4", ct.EntrySize)
	}
	if len(ct.Entries) != 2 {
		t.Fatalf("len(Entries) = %d, want 2", len(ct.Entries))
	}
	if !bytes.Equal(ct.Entries[1], []byte{0, 0, 255, 128}) {
		t.Errorf("Entries[1] = %v, want raw B,G,R,A order", ct.Entries[1])
	}
}

func TestColorTableV5Quads(t *testing.T) {
	table := []byte{1, 2, 3, 4}
	dib := v5HeaderBytes(1, 1, 8, CompressionRGB)
	f := FromBytes(assembleBMP(dib, table, make([]byte, 4)))

	ct, err := f.ColorTable()
	if err != nil {
		t.Fatalf("ColorTable: %v", err)
	}
	if len(ct.Entries) != 1 || !bytes.Equal(ct.Entries[0], table) {
		t.Errorf("Entries = %v, want [[1 2 3 4]]", ct.Entries)
	}
}

func TestColorTableErrors(t *testing.T) {
	tests := []struct {
		name string
		dib  []byte
		want error
	}{
		{"16-bit bitfields", infoHeaderBytes(1, 1, 16, CompressionBitFields), ErrUseExtraBitMasks},
		{"32-bit bitfields", infoHeaderBytes(1, 1, 32, CompressionBitFields), ErrUseExtraBitMasks},
		{"32-bit alpha bitfields", infoHeaderBytes(1, 1, 32, CompressionAlphaBitFields), ErrUseExtraBitMasks},
		{"16-bit BI_RGB", infoHeaderBytes(1, 1, 16, CompressionRGB), ErrDoesNotExist},
		{"24-bit BI_RGB", infoHeaderBytes(1, 1, 24, CompressionRGB), ErrDoesNotExist},
		{"32-bit BI_RGB", infoHeaderBytes(1, 1, 32, CompressionRGB), ErrDoesNotExist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FromBytes(assembleBMP(tt.dib, nil, make([]byte, 8)))
			if _, err := f.ColorTable(); !errors.Is(err, tt.want) {
				t.Errorf("ColorTable = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestColorTableEmpty(t *testing.T) {
	dib := infoHeaderBytes(1, 1, 8, CompressionRGB)
	f := FromBytes(assembleBMP(dib, nil, make([]byte, 4)))
	ct, err := f.ColorTable()
	if err != nil {
		t.Fatalf("ColorTable: %v", err)
	}
	if len(ct.Entries) != 0 {
		t.Errorf("len(Entries) = %d, want 0", len(ct.Entries))
	}
}
