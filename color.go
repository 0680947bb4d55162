package bmp

import (
	"fmt"
	"image/color"
	"math/bits"
)

// resolver snapshots everything needed to turn grid coordinates into RGBA
// colors: the header, the unpacked grid, and the palette or channel order
// the bit depth calls for. It is valid until the next buffer mutation.
type resolver struct {
	grid     [][]Sample
	width    int
	bpp      int
	table    ColorTable
	order    byteOrder
	hasMasks bool
	masks    BitMasks
}

func (f *File) newResolver() (*resolver, error) {
	fh, err := f.FileHeader()
	if err != nil {
		return nil, err
	}
	hdr, err := f.DIBHeader()
	if err != nil {
		return nil, err
	}
	g, err := f.geometryFor(hdr, fh)
	if err != nil {
		return nil, err
	}
	grid, err := f.Pixels()
	if err != nil {
		return nil, err
	}

	r := &resolver{
		grid:  grid,
		width: g.width,
		bpp:   g.bpp,
		order: rgbaByteOrder,
	}
	switch g.bpp {
	case 1, 2, 4, 8:
		table, err := f.ColorTable()
		if err != nil {
			return nil, err
		}
		r.table = table
	case 16, 32:
		masks, ok, err := f.pixelMasks(hdr)
		if err != nil {
			return nil, err
		}
		if ok {
			r.masks = masks
			r.hasMasks = true
			r.order = channelByteOrder(masks)
		}
	}
	return r, nil
}

func (r *resolver) colorAt(x, y int) (color.RGBA, error) {
	if x < 0 || y < 0 || x >= r.width || y >= len(r.grid) {
		return color.RGBA{}, fmt.Errorf("%w: (%d, %d) outside %dx%d",
			ErrOutOfBounds, x, y, r.width, len(r.grid))
	}
	s := r.grid[y][x]

	switch r.bpp {
	case 1, 2, 4, 8:
		idx := int(s[0])
		if idx >= len(r.table.Entries) {
			return color.RGBA{}, fmt.Errorf("%w: palette index %d with %d entries",
				ErrMalformed, idx, len(r.table.Entries))
		}
		e := r.table.Entries[idx]
		c := color.RGBA{R: e[2], G: e[1], B: e[0], A: 255}
		if r.table.EntrySize == 4 {
			c.A = e[3]
		}
		return c, nil

	case 24:
		return color.RGBA{R: s[2], G: s[1], B: s[0], A: 255}, nil

	case 32:
		c := color.RGBA{
			R: s[r.order[0]],
			G: s[r.order[1]],
			B: s[r.order[2]],
			A: 255,
		}
		if r.order[3] >= 0 {
			c.A = s[r.order[3]]
		}
		return c, nil

	case 16:
		if !r.hasMasks {
			// Precise 5-5-5/5-6-5 unpacking without masks is
			// unimplemented; callers get opaque black.
			return color.RGBA{A: 255}, nil
		}
		v := uint32(s[0]) | uint32(s[1])<<8
		c := color.RGBA{
			R: maskExtract(v, r.masks.Red),
			G: maskExtract(v, r.masks.Green),
			B: maskExtract(v, r.masks.Blue),
			A: 255,
		}
		if r.masks.HasAlpha && r.masks.Alpha != 0 {
			c.A = maskExtract(v, r.masks.Alpha)
		}
		return c, nil

	default:
		return color.RGBA{}, fmt.Errorf("%w: %d bits per pixel", ErrUnsupported, r.bpp)
	}
}

// maskExtract isolates the channel selected by mask and scales it to 8
// bits, replicating the high bits into the low ones so full-scale channel
// values map to 255. Exact for the contiguous 5-5-5 and 5-6-5 masks.
func maskExtract(v, mask uint32) uint8 {
	if mask == 0 {
		return 0
	}
	shift := bits.TrailingZeros32(mask)
	width := bits.OnesCount32(mask)
	val := (v & mask) >> shift
	if width >= 8 {
		return uint8(val >> (width - 8))
	}
	scaled := val << (8 - width)
	return uint8(scaled | scaled>>width)
}

// ColorAt resolves the pixel at grid coordinates (x, y) to an RGBA color,
// with (0, 0) the visual top-left pixel. Palette depths look the sample up
// in the color table; 24-bit samples are file-order B,G,R with alpha
// forced to 255; 32- and 16-bit samples honor the channel bit masks when
// the compression carries them. See maskExtract and channelByteOrder for
// the simplifications applied to masked formats.
func (f *File) ColorAt(x, y int) (color.RGBA, error) {
	r, err := f.newResolver()
	if err != nil {
		return color.RGBA{}, err
	}
	return r.colorAt(x, y)
}
