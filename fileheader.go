package bmp

import (
	"encoding/binary"
	"fmt"
)

const fileHeaderLen = 14

// FileHeader is the fixed 14-byte header at the start of every BMP file.
// DataOffset is the absolute offset of the pixel array; it is kept at the
// format's full 4-byte width.
type FileHeader struct {
	Signature  [2]byte
	FileSize   uint32
	Reserved1  uint16
	Reserved2  uint16
	DataOffset uint32
}

// FileHeader parses the file header from the current buffer.
func (f *File) FileHeader() (FileHeader, error) {
	if len(f.data) < fileHeaderLen {
		return FileHeader{}, fmt.Errorf("%w: %d bytes, need %d for file header",
			ErrTruncated, len(f.data), fileHeaderLen)
	}
	h := FileHeader{
		Signature:  [2]byte{f.data[0], f.data[1]},
		FileSize:   binary.LittleEndian.Uint32(f.data[2:6]),
		Reserved1:  binary.LittleEndian.Uint16(f.data[6:8]),
		Reserved2:  binary.LittleEndian.Uint16(f.data[8:10]),
		DataOffset: binary.LittleEndian.Uint32(f.data[10:14]),
	}
	if h.Signature[0] != 'B' || h.Signature[1] != 'M' {
		return FileHeader{}, fmt.Errorf("%w: signature %q is not \"BM\"",
			ErrMalformed, h.Signature[:])
	}
	if h.DataOffset > uint32(len(f.data)) {
		return FileHeader{}, fmt.Errorf("%w: pixel data offset %d beyond %d-byte buffer",
			ErrMalformed, h.DataOffset, len(f.data))
	}
	return h, nil
}
