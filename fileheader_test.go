package bmp

import (
	"errors"
	"testing"
)

func TestFileHeaderFields(t *testing.T) {
	b := fileHeaderBytes(146, 54)
	putU16(b, 6, 0x1122)
	putU16(b, 8, 0x3344)
	b = append(b, make([]byte, 132)...)

	h, err := FromBytes(b).FileHeader()
	if err != nil {
		t.Fatalf("FileHeader: %v", err)
	}
	if h.Signature != [2]byte{'B', 'M'} {
		t.Errorf("Signature = %q, want BM", h.Signature[:])
	}
	if h.FileSize != 146 {
		t.Errorf("FileSize = %d, want 146", h.FileSize)
	}
	if h.Reserved1 != 0x1122 || h.Reserved2 != 0x3344 {
		t.Errorf("reserved = %#x, %#x, want 0x1122, 0x3344", h.Reserved1, h.Reserved2)
	}
	if h.DataOffset != 54 {
		t.Errorf("DataOffset = %d, want 54", h.DataOffset)
	}
}

// TestFileHeaderWideOffset pins the pixel data offset to its full 4-byte
// width: values above 65535 must survive.
func TestFileHeaderWideOffset(t *testing.T) {
	const offset = 70000
	b := fileHeaderBytes(offset+4, offset)
	b = append(b, make([]byte, offset+4-fileHeaderLen)...)

	h, err := FromBytes(b).FileHeader()
	if err != nil {
		t.Fatalf("FileHeader: %v", err)
	}
	if h.DataOffset != offset {
		t.Errorf("DataOffset = %d, want %d", h.DataOffset, offset)
	}
}

func TestFileHeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrTruncated},
		{"short", []byte{'B', 'M', 1, 2, 3}, ErrTruncated},
		{"thirteen bytes", fileHeaderBytes(14, 0)[:13:13], ErrTruncated},
		{"wrong magic", append([]byte{'P', 'N'}, fileHeaderBytes(14, 0)[2:]...), ErrMalformed},
		{"offset beyond buffer", fileHeaderBytes(14, 100), ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromBytes(tt.data).FileHeader(); !errors.Is(err, tt.want) {
				t.Errorf("FileHeader = %v, want %v", err, tt.want)
			}
		})
	}
}
