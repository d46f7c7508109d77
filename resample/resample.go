// Copyright 2026 The GoutGuard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resample implements high quality downsampling of square icons.
package resample

import (
	"image"

	"github.com/nfnt/resize"
	xdraw "golang.org/x/image/draw"
)

// Resampler scales an image to a size×size square.
type Resampler interface {
	Resize(src image.Image, size int) *image.RGBA
}

// Lanczos resamples with a three-lobed Lanczos filter.
type Lanczos struct{}

// Resize satisfies the Resampler interface.
func (Lanczos) Resize(src image.Image, size int) *image.RGBA {
	return toRGBA(resize.Resize(uint(size), uint(size), src, resize.Lanczos3))
}

// CatmullRom resamples with the Catmull-Rom cubic kernel.
type CatmullRom struct{}

// Resize satisfies the Resampler interface.
func (CatmullRom) Resize(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Src, nil)
	return dst
}

func toRGBA(m image.Image) *image.RGBA {
	if m, ok := m.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	b := m.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Rect, m, b.Min, xdraw.Src)
	return dst
}

// Flatten composites src onto opaque black and returns the result, which has
// no transparent or translucent pixels.
func Flatten(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Rect, image.Black, image.Point{}, xdraw.Src)
	xdraw.Draw(dst, dst.Rect, src, b.Min, xdraw.Over)
	return dst
}
