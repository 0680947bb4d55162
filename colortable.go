package bmp

import "fmt"

// ColorTable is the optional palette stored between the DIB header and
// the pixel array. Entries keep the raw file byte order, blue first:
// 3-byte RGBTRIPLEs after a core header, 4-byte RGBQUADs otherwise. No
// channel reordering is performed here.
type ColorTable struct {
	EntrySize int
	Entries   [][]byte
}

// ColorTable decodes the palette. 16- and 32-bit images under bit-field
// compression carry channel masks instead of a table and fail with
// ErrUseExtraBitMasks; true-color BI_RGB images at 16 bits or more have no
// table and fail with ErrDoesNotExist. Trailing bytes that do not fill a
// whole entry are ignored. Entries alias the File's buffer; a later
// mutation is visible through them.
func (f *File) ColorTable() (ColorTable, error) {
	fh, err := f.FileHeader()
	if err != nil {
		return ColorTable{}, err
	}
	hdr, err := f.DIBHeader()
	if err != nil {
		return ColorTable{}, err
	}

	entrySize := 4
	if _, ok := hdr.(CoreHeader); ok {
		entrySize = 3
	} else {
		comp, _ := compressionOf(hdr)
		bpp := hdr.BitsPerPixel()
		switch {
		case (comp == CompressionBitFields || comp == CompressionAlphaBitFields) &&
			(bpp == 16 || bpp == 32):
			return ColorTable{}, fmt.Errorf("%w: %d-bit %v image", ErrUseExtraBitMasks, bpp, comp)
		case comp == CompressionRGB && bpp >= 16:
			return ColorTable{}, fmt.Errorf("%w: no color table for %d-bit BI_RGB", ErrDoesNotExist, bpp)
		}
	}

	start := fileHeaderLen + int(hdr.HeaderSize())
	end := int(fh.DataOffset)
	if end < start {
		return ColorTable{}, fmt.Errorf("%w: pixel data offset %d inside the DIB header",
			ErrMalformed, end)
	}

	count := (end - start) / entrySize
	entries := make([][]byte, count)
	for i := 0; i < count; i++ {
		off := start + i*entrySize
		entries[i] = f.data[off : off+entrySize : off+entrySize]
	}
	return ColorTable{EntrySize: entrySize, Entries: entries}, nil
}
