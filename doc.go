// Package bmp implements a pure Go decoder and editor for the Windows
// Bitmap (BMP) format.
//
// This package parses the 14-byte file header and all four DIB header
// variants (BITMAPCOREHEADER, BITMAPINFOHEADER, BITMAPV4HEADER,
// BITMAPV5HEADER), resolves color tables and channel bit masks, and
// unpacks pixel arrays at 1, 2, 4, 8, 16, 24 and 32 bits per pixel.
// Pixels of 24- and 32-bit images can be mutated in place, and two raster
// primitives (line drawing, 4-connected flood fill) are built on top of
// the pixel read/write paths.
//
// Reading and editing a file:
//
//	f, err := bmp.ReadFile("in.bmp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c, err := f.ColorAt(10, 20)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = f.SetPixel(10, 20, color.RGBA{R: 255, A: 255})
//	err = f.WriteFile("out.bmp")
//
// RLE- and JPEG/PNG-compressed pixel data is recognized by name but not
// decoded. Embedded V5 ICC profiles are exposed as raw bytes only.
//
// The package registers itself with the image package for automatic
// format detection:
//
//	import _ "github.com/ajroetker/go-bmp"
//	img, _, err := image.Decode(reader)
package bmp
