// Copyright 2026 The GoutGuard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gradient provides vertical linear gradient images.
package gradient

import (
	"image"
	"image/color"
	"math"
)

// Linear is a very large image.Image (the same size as an image.Uniform) whose
// rows form a gradient from Top, at row Y0, to Bottom, at row Y1.
//
// Progress is measured at the integer row index, not at the pixel centre, and
// channels are truncated rather than rounded. Row y of a gradient spanning
// [0, n) therefore has channel value trunc(top + (bottom-top)*y/n).
type Linear struct {
	Top, Bottom color.NRGBA
	Y0, Y1      float64
}

// Init initializes g to be a vertical gradient from top at row y0 to bottom at
// row y1.
func (g *Linear) Init(top, bottom color.NRGBA, y0, y1 float64) {
	g.Top, g.Bottom = top, bottom
	g.Y0, g.Y1 = y0, y1
}

// Progress returns the interpolation factor for row y, in the range [0, 1].
// Rows above Y0 take the Top color and rows past Y1 the Bottom color.
func (g *Linear) Progress(y int) float64 {
	d := g.Y1 - g.Y0
	if d == 0 {
		return 0
	}
	return math.Min(1, math.Max(0, (float64(y)-g.Y0)/d))
}

// RowColor returns the color of every pixel in row y.
func (g *Linear) RowColor(y int) color.NRGBA {
	t := g.Progress(y)
	return color.NRGBA{
		R: lerp(g.Top.R, g.Bottom.R, t),
		G: lerp(g.Top.G, g.Bottom.G, t),
		B: lerp(g.Top.B, g.Bottom.B, t),
		A: lerp(g.Top.A, g.Bottom.A, t),
	}
}

func lerp(c0, c1 uint8, t float64) uint8 {
	return uint8(float64(c0) + (float64(c1)-float64(c0))*t)
}

// ColorModel satisfies the image.Image interface.
func (g *Linear) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds satisfies the image.Image interface.
func (g *Linear) Bounds() image.Rectangle {
	return image.Rectangle{
		Min: image.Point{-1e9, -1e9},
		Max: image.Point{+1e9, +1e9},
	}
}

// At satisfies the image.Image interface.
func (g *Linear) At(x, y int) color.Color {
	return g.RowColor(y)
}
