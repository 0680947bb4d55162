package bmp

import (
	"encoding/binary"
	"fmt"
)

// DIB header sizes double as the shape discriminant.
const (
	coreHeaderLen = 12
	infoHeaderLen = 40
	v4HeaderLen   = 108
	v5HeaderLen   = 124

	dibHeaderOffset = fileHeaderLen
)

// Compression identifies the pixel array encoding per the BITMAPINFOHEADER
// biCompression field. Only RGB and the two bit-field variants have
// decodable pixel data here; the rest are recognized by name only.
type Compression uint32

const (
	CompressionRGB Compression = iota
	CompressionRLE8
	CompressionRLE4
	CompressionBitFields
	CompressionJPEG
	CompressionPNG
	CompressionAlphaBitFields
)

func (c Compression) String() string {
	switch c {
	case CompressionRGB:
		return "BI_RGB"
	case CompressionRLE8:
		return "BI_RLE8"
	case CompressionRLE4:
		return "BI_RLE4"
	case CompressionBitFields:
		return "BI_BITFIELDS"
	case CompressionJPEG:
		return "BI_JPEG"
	case CompressionPNG:
		return "BI_PNG"
	case CompressionAlphaBitFields:
		return "BI_ALPHABITFIELDS"
	default:
		return fmt.Sprintf("Compression(%d)", uint32(c))
	}
}

// Color space tags carried by V4/V5 headers (bV4CSType/bV5CSType).
const (
	ColorSpaceCalibratedRGB   uint32 = 0
	ColorSpaceSRGB            uint32 = 0x73524742 // "sRGB"
	ColorSpaceWindows         uint32 = 0x57696E20 // "Win "
	ColorSpaceProfileLinked   uint32 = 0x4C494E4B // "LINK"
	ColorSpaceProfileEmbedded uint32 = 0x4D424544 // "MBED"
)

// DIBHeader is the variable-shape header that follows the file header.
// Exactly one of CoreHeader, InfoHeader, V4Header and V5Header implements
// it; the shape is selected by the header's own leading size field.
type DIBHeader interface {
	HeaderSize() uint32
	ImageWidth() int32
	// ImageHeight is negative when rows are stored top-down.
	ImageHeight() int32
	BitsPerPixel() uint16

	dibHeader()
}

// CoreHeader is the 12-byte BITMAPCOREHEADER. All of its integer fields
// are 16-bit, so the height is always positive (bottom-up storage).
type CoreHeader struct {
	Size     uint32
	Width    uint16
	Height   uint16
	Planes   uint16
	BitCount uint16
}

func (h CoreHeader) HeaderSize() uint32   { return h.Size }
func (h CoreHeader) ImageWidth() int32    { return int32(h.Width) }
func (h CoreHeader) ImageHeight() int32   { return int32(h.Height) }
func (h CoreHeader) BitsPerPixel() uint16 { return h.BitCount }
func (CoreHeader) dibHeader()             {}

// InfoHeader is the 40-byte BITMAPINFOHEADER.
type InfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   Compression
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

func (h InfoHeader) HeaderSize() uint32   { return h.Size }
func (h InfoHeader) ImageWidth() int32    { return h.Width }
func (h InfoHeader) ImageHeight() int32   { return h.Height }
func (h InfoHeader) BitsPerPixel() uint16 { return h.BitCount }
func (InfoHeader) dibHeader()             {}

// CIEXYZTriple holds the V4/V5 color space endpoints as a 3x3 matrix of
// FXPT2DOT30 fixed-point values, row order red, green, blue.
type CIEXYZTriple [3][3]int32

// V4Header is the 108-byte BITMAPV4HEADER.
type V4Header struct {
	InfoHeader
	RedMask        uint32
	GreenMask      uint32
	BlueMask       uint32
	AlphaMask      uint32
	ColorSpaceType uint32
	Endpoints      CIEXYZTriple
	GammaRed       uint32
	GammaGreen     uint32
	GammaBlue      uint32
}

// V5Header is the 124-byte BITMAPV5HEADER.
type V5Header struct {
	V4Header
	Intent      uint32
	ProfileData uint32 // profile offset, relative to the DIB header start
	ProfileSize uint32
	Reserved    uint32
}

// DIBHeader reads the size discriminant at offset 14 and parses the
// matching header shape. An unrecognized size fails with ErrUnsupported.
func (f *File) DIBHeader() (DIBHeader, error) {
	if len(f.data) < dibHeaderOffset+4 {
		return nil, fmt.Errorf("%w: no room for DIB header size field", ErrTruncated)
	}
	size := binary.LittleEndian.Uint32(f.data[dibHeaderOffset : dibHeaderOffset+4])
	switch size {
	case coreHeaderLen, infoHeaderLen, v4HeaderLen, v5HeaderLen:
		if len(f.data) < dibHeaderOffset+int(size) {
			return nil, fmt.Errorf("%w: %d-byte DIB header claimed, %d bytes available",
				ErrTruncated, size, len(f.data)-dibHeaderOffset)
		}
	default:
		return nil, fmt.Errorf("%w: unrecognized DIB header size %d", ErrUnsupported, size)
	}

	b := f.data[dibHeaderOffset : dibHeaderOffset+int(size)]
	switch size {
	case coreHeaderLen:
		return parseCoreHeader(b), nil
	case infoHeaderLen:
		return parseInfoHeader(b), nil
	case v4HeaderLen:
		return parseV4Header(b), nil
	default:
		return parseV5Header(b), nil
	}
}

func parseCoreHeader(b []byte) CoreHeader {
	return CoreHeader{
		Size:     binary.LittleEndian.Uint32(b[0:4]),
		Width:    binary.LittleEndian.Uint16(b[4:6]),
		Height:   binary.LittleEndian.Uint16(b[6:8]),
		Planes:   binary.LittleEndian.Uint16(b[8:10]),
		BitCount: binary.LittleEndian.Uint16(b[10:12]),
	}
}

func parseInfoHeader(b []byte) InfoHeader {
	return InfoHeader{
		Size:          binary.LittleEndian.Uint32(b[0:4]),
		Width:         int32(binary.LittleEndian.Uint32(b[4:8])),
		Height:        int32(binary.LittleEndian.Uint32(b[8:12])),
		Planes:        binary.LittleEndian.Uint16(b[12:14]),
		BitCount:      binary.LittleEndian.Uint16(b[14:16]),
		Compression:   Compression(binary.LittleEndian.Uint32(b[16:20])),
		SizeImage:     binary.LittleEndian.Uint32(b[20:24]),
		XPelsPerMeter: int32(binary.LittleEndian.Uint32(b[24:28])),
		YPelsPerMeter: int32(binary.LittleEndian.Uint32(b[28:32])),
		ClrUsed:       binary.LittleEndian.Uint32(b[32:36]),
		ClrImportant:  binary.LittleEndian.Uint32(b[36:40]),
	}
}

func parseV4Header(b []byte) V4Header {
	h := V4Header{
		InfoHeader:     parseInfoHeader(b[:infoHeaderLen]),
		RedMask:        binary.LittleEndian.Uint32(b[40:44]),
		GreenMask:      binary.LittleEndian.Uint32(b[44:48]),
		BlueMask:       binary.LittleEndian.Uint32(b[48:52]),
		AlphaMask:      binary.LittleEndian.Uint32(b[52:56]),
		ColorSpaceType: binary.LittleEndian.Uint32(b[56:60]),
		GammaRed:       binary.LittleEndian.Uint32(b[96:100]),
		GammaGreen:     binary.LittleEndian.Uint32(b[100:104]),
		GammaBlue:      binary.LittleEndian.Uint32(b[104:108]),
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			h.Endpoints[i][j] = int32(binary.LittleEndian.Uint32(b[60+(i*3+j)*4:]))
		}
	}
	return h
}

func parseV5Header(b []byte) V5Header {
	return V5Header{
		V4Header:    parseV4Header(b[:v4HeaderLen]),
		Intent:      binary.LittleEndian.Uint32(b[108:112]),
		ProfileData: binary.LittleEndian.Uint32(b[112:116]),
		ProfileSize: binary.LittleEndian.Uint32(b[116:120]),
		Reserved:    binary.LittleEndian.Uint32(b[120:124]),
	}
}

// compressionOf returns the compression field shared by the Info, V4 and
// V5 shapes. Core headers have none and report ok=false.
func compressionOf(hdr DIBHeader) (Compression, bool) {
	switch h := hdr.(type) {
	case InfoHeader:
		return h.Compression, true
	case V4Header:
		return h.Compression, true
	case V5Header:
		return h.Compression, true
	default:
		return 0, false
	}
}
