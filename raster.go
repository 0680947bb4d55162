package bmp

import (
	"image"
	"image/color"
)

// DrawLine draws a straight line from p0 to p1 in the given color.
// Horizontal and vertical lines set every pixel along the shared axis.
// Diagonal lines partition the longer run into one segment per step of
// the shorter run: the middle segments are floor(major/minor) pixels long
// and the two end segments absorb the remainder. This trades the accuracy
// of an incremental-error rasterizer for simplicity; endpoints are always
// set exactly.
func (f *File) DrawLine(p0, p1 image.Point, c color.RGBA) error {
	switch {
	case p0 == p1:
		return f.SetPixel(p0.X, p0.Y, c)
	case p0.X == p1.X:
		for y := min(p0.Y, p1.Y); y <= max(p0.Y, p1.Y); y++ {
			if err := f.SetPixel(p0.X, y, c); err != nil {
				return err
			}
		}
		return nil
	case p0.Y == p1.Y:
		for x := min(p0.X, p1.X); x <= max(p0.X, p1.X); x++ {
			if err := f.SetPixel(x, p0.Y, c); err != nil {
				return err
			}
		}
		return nil
	}

	dx, sx := span(p0.X, p1.X)
	dy, sy := span(p0.Y, p1.Y)
	if dx >= dy {
		return f.drawDiagonal(c, dx, dy, func(maj, min int) (int, int) {
			return p0.X + sx*maj, p0.Y + sy*min
		})
	}
	return f.drawDiagonal(c, dy, dx, func(maj, min int) (int, int) {
		return p0.X + sx*min, p0.Y + sy*maj
	})
}

// drawDiagonal rasterizes a run of major+1 steps split across minor+1
// positions of the shorter axis; at maps (major, minor) progress to pixel
// coordinates.
func (f *File) drawDiagonal(c color.RGBA, major, minor int, at func(maj, min int) (int, int)) error {
	seg := major / minor
	rem := major % minor
	pos := 0
	for i := 0; i < minor; i++ {
		length := seg
		if i == 0 {
			length += rem / 2
		}
		if i == minor-1 {
			length += rem - rem/2
		}
		for n := 0; n < length; n++ {
			x, y := at(pos, i)
			if err := f.SetPixel(x, y, c); err != nil {
				return err
			}
			pos++
		}
	}
	x, y := at(major, minor)
	return f.SetPixel(x, y, c)
}

// FloodFill replaces the 4-connected region of pixels matching the seed's
// color with the fill color and returns the coordinates it visited, in
// traversal order. The traversal is a breadth-first search that resolves
// colors against the buffer state at entry; pixels are written only after
// the traversal completes. A write failure mid-pass is returned without
// rolling back pixels already written.
func (f *File) FloodFill(seed image.Point, c color.RGBA) ([]image.Point, error) {
	res, err := f.newResolver()
	if err != nil {
		return nil, err
	}
	target, err := res.colorAt(seed.X, seed.Y)
	if err != nil {
		return nil, err
	}

	width, height := res.width, len(res.grid)
	directions := [4]image.Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	visited := map[image.Point]bool{seed: true}
	queue := []image.Point{seed}
	var order []image.Point
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		order = append(order, p)

		for _, d := range directions {
			n := p.Add(d)
			if n.X < 0 || n.Y < 0 || n.X >= width || n.Y >= height || visited[n] {
				continue
			}
			nc, err := res.colorAt(n.X, n.Y)
			if err != nil {
				return nil, err
			}
			if nc == target {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	for _, p := range order {
		if err := f.SetPixel(p.X, p.Y, c); err != nil {
			return order, err
		}
	}
	return order, nil
}

func span(from, to int) (diff, step int) {
	if to >= from {
		return to - from, 1
	}
	return from - to, -1
}
