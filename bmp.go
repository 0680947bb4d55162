package bmp

import (
	"encoding/binary"
	"fmt"
	"image/color"
)

// File is a BMP image held as one owned, mutable byte buffer. Headers,
// the color table and the pixel grid are derived views recomputed from
// the buffer on demand, so a mutation is immediately visible to every
// accessor. Concurrent readers are safe; mutations require exclusive
// access — the type provides no internal locking.
type File struct {
	data []byte
}

// FromBytes wraps an in-memory BMP. The File takes ownership of data.
func FromBytes(data []byte) *File {
	return &File{data: data}
}

// Bytes returns the underlying buffer. The slice aliases the File's own
// storage; mutating it mutates the image.
func (f *File) Bytes() []byte { return f.data }

// Len returns the buffer length in bytes.
func (f *File) Len() int { return len(f.data) }

// New builds a blank width x height image in memory: a 14-byte file
// header, a 40-byte info header (24-bit, BI_RGB, bottom-up) and a zeroed,
// row-padded pixel array.
func New(width, height int) (*File, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrMalformed, width, height)
	}
	stride := rowStride(width, 24)
	imageSize := stride * height
	total := fileHeaderLen + infoHeaderLen + imageSize

	data := make([]byte, total)
	data[0], data[1] = 'B', 'M'
	putU32(data, 2, uint32(total))
	putU32(data, 10, fileHeaderLen+infoHeaderLen)
	putU32(data, 14, infoHeaderLen)
	putU32(data, 18, uint32(width))
	putU32(data, 22, uint32(height))
	putU16(data, 26, 1)  // planes
	putU16(data, 28, 24) // bits per pixel
	putU32(data, 34, uint32(imageSize))
	return &File{data: data}, nil
}

// Dimensions returns the image width and absolute height.
func (f *File) Dimensions() (width, height int, err error) {
	g, err := f.geometry()
	if err != nil {
		return 0, 0, err
	}
	return g.width, g.height, nil
}

// FileSize returns the declared size from the file header when fromHeader
// is true, otherwise the actual buffer length.
func (f *File) FileSize(fromHeader bool) (uint32, error) {
	if !fromHeader {
		return uint32(len(f.data)), nil
	}
	h, err := f.FileHeader()
	if err != nil {
		return 0, err
	}
	return h.FileSize, nil
}

// SetPixel writes c to the pixel at visual coordinates (x, y), mutating
// the buffer in place. Only 24- and 32-bit images are writable. Bytes are
// stored in the inverse of ColorAt's channel order, so writing then
// reading the same coordinate returns the written color; 24-bit images
// drop alpha and resolve it back as 255.
func (f *File) SetPixel(x, y int, c color.RGBA) error {
	fh, err := f.FileHeader()
	if err != nil {
		return err
	}
	hdr, err := f.DIBHeader()
	if err != nil {
		return err
	}
	g, err := f.geometryFor(hdr, fh)
	if err != nil {
		return err
	}
	if g.bpp != 24 && g.bpp != 32 {
		return fmt.Errorf("%w: pixel writes need 24 or 32 bits per pixel, image has %d",
			ErrUnsupported, g.bpp)
	}
	off, err := f.pixelOffset(g, x, y)
	if err != nil {
		return err
	}

	if g.bpp == 24 {
		f.data[off] = c.B
		f.data[off+1] = c.G
		f.data[off+2] = c.R
		return nil
	}

	order := rgbaByteOrder
	if masks, ok, err := f.pixelMasks(hdr); err != nil {
		return err
	} else if ok {
		order = channelByteOrder(masks)
	}
	f.data[off+order[0]] = c.R
	f.data[off+order[1]] = c.G
	f.data[off+order[2]] = c.B
	if order[3] >= 0 {
		f.data[off+order[3]] = c.A
	}
	return nil
}

func u32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off:])
}

func putU16(b []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(b[off:], v)
}

func putU32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:], v)
}
