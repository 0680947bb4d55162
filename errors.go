package bmp

import "errors"

var (
	ErrUnsupported      = errors.New("bmp: unsupported feature")
	ErrDoesNotExist     = errors.New("bmp: requested structure does not exist")
	ErrUseExtraBitMasks = errors.New("bmp: color table replaced by bit masks")
	ErrMalformed        = errors.New("bmp: malformed data")
	ErrTruncated        = errors.New("bmp: truncated data")
	ErrOutOfBounds      = errors.New("bmp: coordinates out of bounds")
)
