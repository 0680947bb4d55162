package bmp

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

func init() {
	image.RegisterFormat("bmp", "BM", Decode, DecodeConfig)
}

// Decode reads a BMP image from r.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("bmp: %w", err)
	}
	return FromBytes(data).Image()
}

// DecodeConfig returns the dimensions and color model of a BMP image
// without decoding the pixel array.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return image.Config{}, fmt.Errorf("bmp: %w", err)
	}
	w, h, err := FromBytes(data).Dimensions()
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{Width: w, Height: h, ColorModel: color.RGBAModel}, nil
}

// Image materializes the pixel grid as an *image.RGBA via ColorAt's
// resolution rules. The row count follows the stored pixel array.
func (f *File) Image() (image.Image, error) {
	res, err := f.newResolver()
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, res.width, len(res.grid)))
	for y := range res.grid {
		for x := 0; x < res.width; x++ {
			c, err := res.colorAt(x, y)
			if err != nil {
				return nil, err
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img, nil
}

// Encode writes img to w as a 24-bit uncompressed bottom-up BMP.
func Encode(w io.Writer, img image.Image) error {
	b := img.Bounds()
	f, err := New(b.Dx(), b.Dy())
	if err != nil {
		return err
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			if err := f.SetPixel(x, y, c); err != nil {
				return err
			}
		}
	}
	if _, err := w.Write(f.Bytes()); err != nil {
		return fmt.Errorf("bmp: %w", err)
	}
	return nil
}
