package bmp

import "fmt"

// Sample is the raw bytes of one pixel, not yet resolved to a color. For
// sub-byte depths it is a single byte holding the extracted palette index.
type Sample []byte

// rowStride returns the padded byte length of one pixel row. Rows are
// always padded to a 4-byte boundary.
func rowStride(width, bpp int) int {
	return 4 * ((bpp*width + 31) / 32)
}

// geometry captures the pixel array layout derived from the two headers.
type geometry struct {
	width   int
	height  int // absolute
	topDown bool
	bpp     int
	stride  int
	offset  int // absolute offset of the pixel array
	rows    int // row count derived from the buffer length
}

func (f *File) geometry() (geometry, error) {
	fh, err := f.FileHeader()
	if err != nil {
		return geometry{}, err
	}
	hdr, err := f.DIBHeader()
	if err != nil {
		return geometry{}, err
	}
	return f.geometryFor(hdr, fh)
}

func (f *File) geometryFor(hdr DIBHeader, fh FileHeader) (geometry, error) {
	g := geometry{
		width:  int(hdr.ImageWidth()),
		bpp:    int(hdr.BitsPerPixel()),
		offset: int(fh.DataOffset),
	}
	h := int(hdr.ImageHeight())
	switch {
	case h == 0:
		return geometry{}, fmt.Errorf("%w: zero image height", ErrMalformed)
	case h < 0:
		g.topDown = true
		g.height = -h
	default:
		g.height = h
	}
	if g.width <= 0 {
		return geometry{}, fmt.Errorf("%w: image width %d", ErrMalformed, g.width)
	}
	switch g.bpp {
	case 1, 2, 4, 8, 16, 24, 32:
	default:
		return geometry{}, fmt.Errorf("%w: %d bits per pixel", ErrUnsupported, g.bpp)
	}
	if g.offset < fileHeaderLen+int(hdr.HeaderSize()) {
		return geometry{}, fmt.Errorf("%w: pixel data offset %d inside the headers",
			ErrMalformed, g.offset)
	}
	if comp, ok := compressionOf(hdr); ok {
		switch comp {
		case CompressionRLE4, CompressionRLE8, CompressionJPEG, CompressionPNG:
			return geometry{}, fmt.Errorf("%w: %v pixel data is not decoded", ErrUnsupported, comp)
		}
	}
	g.stride = rowStride(g.width, g.bpp)
	g.rows = (len(f.data) - g.offset) / g.stride
	return g, nil
}

// Pixels unpacks the padded pixel array into a grid of raw samples. Row 0
// of the grid is always the visual top row: bottom-up files (positive
// header height) are reversed, top-down files (negative height) are taken
// in file order. The row count is derived from the buffer length and the
// stride. Pixels at 1, 2 or 4 bits per pixel are packed most significant
// bits first, 8/bpp pixels per byte. Byte-aligned samples alias the
// File's buffer; a later mutation is visible through them.
func (f *File) Pixels() ([][]Sample, error) {
	g, err := f.geometry()
	if err != nil {
		return nil, err
	}

	grid := make([][]Sample, g.rows)
	for r := 0; r < g.rows; r++ {
		rowStart := g.offset + r*g.stride
		row := make([]Sample, g.width)
		if g.bpp >= 8 {
			size := g.bpp / 8
			for x := 0; x < g.width; x++ {
				off := rowStart + x*size
				row[x] = Sample(f.data[off : off+size : off+size])
			}
		} else {
			perByte := 8 / g.bpp
			mask := byte(1<<g.bpp - 1)
			for x := 0; x < g.width; x++ {
				b := f.data[rowStart+x/perByte]
				shift := 8 - g.bpp*(x%perByte+1)
				row[x] = Sample{(b >> shift) & mask}
			}
		}

		if g.topDown {
			grid[r] = row
		} else {
			grid[g.rows-1-r] = row
		}
	}
	return grid, nil
}

// pixelOffset computes the absolute byte offset of pixel (x, y), with y in
// visual top-down coordinates, for byte-aligned depths. Bottom-up files
// store row y at file row height-1-y.
func (f *File) pixelOffset(g geometry, x, y int) (int, error) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return 0, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	fileY := y
	if !g.topDown {
		fileY = g.height - 1 - y
	}
	size := g.bpp / 8
	off := g.offset + fileY*g.stride + x*size
	if off+size > len(f.data) {
		return 0, fmt.Errorf("%w: pixel (%d, %d) at offset %d beyond %d-byte buffer",
			ErrTruncated, x, y, off, len(f.data))
	}
	return off, nil
}
