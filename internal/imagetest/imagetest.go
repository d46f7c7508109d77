// Copyright 2026 The GoutGuard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagetest provides image comparison helpers for tests.
package imagetest

import (
	"image"
	"image/color"
)

// Opaque reports whether every pixel of m is fully opaque.
func Opaque(m image.Image) bool {
	if o, ok := m.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := m.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

// BlockMean returns the mean color of each n×n block of m, in row-major order.
// Trailing pixels that do not fill a block are ignored.
func BlockMean(m image.Image, n int) []color.RGBA64 {
	b := m.Bounds()
	bw, bh := b.Dx()/n, b.Dy()/n
	out := make([]color.RGBA64, 0, bw*bh)
	for by := 0; by < bh; by++ {
		for bx := 0; bx < bw; bx++ {
			var sr, sg, sb, sa uint64
			for y := 0; y < n; y++ {
				for x := 0; x < n; x++ {
					r, g, bl, a := m.At(b.Min.X+bx*n+x, b.Min.Y+by*n+y).RGBA()
					sr += uint64(r)
					sg += uint64(g)
					sb += uint64(bl)
					sa += uint64(a)
				}
			}
			k := uint64(n * n)
			out = append(out, color.RGBA64{uint16(sr / k), uint16(sg / k), uint16(sb / k), uint16(sa / k)})
		}
	}
	return out
}
