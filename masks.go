package bmp

import (
	"fmt"
	"sort"
)

// BitMasks holds the per-channel bit masks that govern 16- and 32-bit
// samples. V4 and V5 headers carry them as header fields; a 40-byte info
// header under BI_BITFIELDS or BI_ALPHABITFIELDS compression stores them
// as an extra block immediately after the header.
type BitMasks struct {
	Red      uint32
	Green    uint32
	Blue     uint32
	Alpha    uint32
	HasAlpha bool
}

// ExtraBitMasks reads the trailing mask block of a 40-byte info header:
// three little-endian uint32 masks at offset 54 under BI_BITFIELDS, plus a
// fourth alpha mask under BI_ALPHABITFIELDS. Any other header shape or
// compression fails with ErrDoesNotExist.
func (f *File) ExtraBitMasks() (BitMasks, error) {
	hdr, err := f.DIBHeader()
	if err != nil {
		return BitMasks{}, err
	}
	ih, ok := hdr.(InfoHeader)
	if !ok {
		return BitMasks{}, fmt.Errorf("%w: extra bit masks only follow a %d-byte info header",
			ErrDoesNotExist, infoHeaderLen)
	}

	const maskOffset = fileHeaderLen + infoHeaderLen
	var n int
	switch ih.Compression {
	case CompressionBitFields:
		n = 3
	case CompressionAlphaBitFields:
		n = 4
	default:
		return BitMasks{}, fmt.Errorf("%w: no extra bit masks for compression %v",
			ErrDoesNotExist, ih.Compression)
	}
	if len(f.data) < maskOffset+n*4 {
		return BitMasks{}, fmt.Errorf("%w: %d mask words claimed at offset %d",
			ErrTruncated, n, maskOffset)
	}

	m := BitMasks{
		Red:   u32(f.data, maskOffset),
		Green: u32(f.data, maskOffset+4),
		Blue:  u32(f.data, maskOffset+8),
	}
	if n == 4 {
		m.Alpha = u32(f.data, maskOffset+12)
		m.HasAlpha = true
	}
	return m, nil
}

// pixelMasks returns the masks governing this image's packed samples, or
// ok=false when the pixel format is a fixed-order true-color layout.
func (f *File) pixelMasks(hdr DIBHeader) (BitMasks, bool, error) {
	comp, hasComp := compressionOf(hdr)
	if !hasComp || (comp != CompressionBitFields && comp != CompressionAlphaBitFields) {
		return BitMasks{}, false, nil
	}
	switch h := hdr.(type) {
	case InfoHeader:
		m, err := f.ExtraBitMasks()
		if err != nil {
			return BitMasks{}, false, err
		}
		return m, true, nil
	case V4Header:
		return headerMasks(h), true, nil
	case V5Header:
		return headerMasks(h.V4Header), true, nil
	}
	return BitMasks{}, false, nil
}

func headerMasks(h V4Header) BitMasks {
	return BitMasks{
		Red:      h.RedMask,
		Green:    h.GreenMask,
		Blue:     h.BlueMask,
		Alpha:    h.AlphaMask,
		HasAlpha: h.AlphaMask != 0,
	}
}

// byteOrder maps channels to byte positions within a little-endian 32-bit
// sample. Indexes 0..3 are red, green, blue, alpha; the value is the byte
// index inside the sample, or -1 when the channel has no mask.
type byteOrder [4]int

// rgbaByteOrder is the fixed layout used when no masks are present.
var rgbaByteOrder = byteOrder{0, 1, 2, 3}

// channelByteOrder infers which byte of a 32-bit sample belongs to each
// channel by ranking the masks by numeric magnitude: a larger mask value
// occupies a more significant byte. This yields RGBA, BGRA, ARGB or ABGR
// and is exact for the standard one-byte-per-channel masks; it is not a
// general bit-position decoder.
func channelByteOrder(m BitMasks) byteOrder {
	type channelMask struct {
		channel int
		mask    uint32
	}
	masks := []channelMask{{0, m.Red}, {1, m.Green}, {2, m.Blue}}
	if m.HasAlpha {
		masks = append(masks, channelMask{3, m.Alpha})
	}
	sort.Slice(masks, func(i, j int) bool { return masks[i].mask < masks[j].mask })

	order := byteOrder{-1, -1, -1, -1}
	for pos, cm := range masks {
		order[cm.channel] = pos
	}
	return order
}
