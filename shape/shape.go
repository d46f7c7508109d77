// Copyright 2026 The GoutGuard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape rasterizes simple filled shapes (rectangles, rounded
// rectangles, polygons and ellipses) into anti-aliased coverage masks.
//
// Coordinates are pixel indices. Boxes are inclusive: the box (x0, y0, x1, y1)
// covers the pixels x0 through x1 and y0 through y1. Polygon vertices lie on
// pixel centres. All shapes added to one Rasterizer are unioned.
//
// Coverage is anti-aliased: pixels on a shape's edge get partial coverage,
// and Fill and Replace blend them in proportion to it. Only fully covered and
// fully uncovered pixels match an aliased rasterizer exactly.
package shape

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"
)

// kappa is the cubic Bézier control point distance, relative to the radius,
// that best approximates a quarter circle.
const kappa = 0.5522847498

// Box is an inclusive pixel box.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// Point is a polygon vertex in pixel index coordinates.
type Point struct {
	X, Y float64
}

// Rasterizer accumulates shapes over a w×h area.
//
// The zero value is usable after a call to Reset.
type Rasterizer struct {
	z    vector.Rasterizer
	w, h int
}

// NewRasterizer returns a Rasterizer for a w×h area.
func NewRasterizer(w, h int) *Rasterizer {
	z := &Rasterizer{}
	z.Reset(w, h)
	return z
}

// Reset clears all accumulated shapes and resizes the area to w×h.
func (z *Rasterizer) Reset(w, h int) {
	z.w, z.h = w, h
	z.z.Reset(w, h)
}

// Bounds returns the area covered by the Rasterizer.
func (z *Rasterizer) Bounds() image.Rectangle {
	return image.Rect(0, 0, z.w, z.h)
}

// edges converts the inclusive box b to the continuous rectangle that its
// pixels cover.
func (b Box) edges() (x0, y0, x1, y1 float32) {
	return float32(b.X0), float32(b.Y0), float32(b.X1 + 1), float32(b.Y1 + 1)
}

// Rect adds the box b.
func (z *Rasterizer) Rect(b Box) {
	x0, y0, x1, y1 := b.edges()
	z.path([]f32.Vec2{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}})
}

// RoundedRect adds the box b with corners of radius r. The radius is clamped
// to half of the shorter side.
func (z *Rasterizer) RoundedRect(b Box, r float64) {
	x0, y0, x1, y1 := b.edges()
	rr := float32(r)
	if m := (x1 - x0) / 2; rr > m {
		rr = m
	}
	if m := (y1 - y0) / 2; rr > m {
		rr = m
	}
	if rr <= 0 {
		z.Rect(b)
		return
	}
	k := rr * kappa

	// Clockwise on screen, starting after the top left corner.
	z.z.MoveTo(x0+rr, y0)
	z.z.LineTo(x1-rr, y0)
	z.z.CubeTo(x1-rr+k, y0, x1, y0+rr-k, x1, y0+rr)
	z.z.LineTo(x1, y1-rr)
	z.z.CubeTo(x1, y1-rr+k, x1-rr+k, y1, x1-rr, y1)
	z.z.LineTo(x0+rr, y1)
	z.z.CubeTo(x0+rr-k, y1, x0, y1-rr+k, x0, y1-rr)
	z.z.LineTo(x0, y0+rr)
	z.z.CubeTo(x0, y0+rr-k, x0+rr-k, y0, x0+rr, y0)
	z.z.ClosePath()
}

// Ellipse adds the ellipse inscribed in the box b.
func (z *Rasterizer) Ellipse(b Box) {
	x0, y0, x1, y1 := b.edges()
	cx, cy := (x0+x1)/2, (y0+y1)/2
	rx, ry := (x1-x0)/2, (y1-y0)/2
	kx, ky := rx*kappa, ry*kappa

	z.z.MoveTo(cx, y0)
	z.z.CubeTo(cx+kx, y0, x1, cy-ky, x1, cy)
	z.z.CubeTo(x1, cy+ky, cx+kx, y1, cx, y1)
	z.z.CubeTo(cx-kx, y1, x0, cy+ky, x0, cy)
	z.z.CubeTo(x0, cy-ky, cx-kx, y0, cx, y0)
	z.z.ClosePath()
}

// Polygon adds the closed polygon through pts. Fewer than three points add
// nothing.
func (z *Rasterizer) Polygon(pts []Point) {
	if len(pts) < 3 {
		return
	}
	vs := make([]f32.Vec2, len(pts))
	for i, p := range pts {
		vs[i] = f32.Vec2{float32(p.X + 0.5), float32(p.Y + 0.5)}
	}
	z.path(vs)
}

// path adds the closed path through vs, reversing it if needed so that it is
// clockwise on screen. The vector rasterizer accumulates signed area, so
// overlapping sub-paths of opposite winding would cancel instead of union.
func (z *Rasterizer) path(vs []f32.Vec2) {
	if signedArea(vs) < 0 {
		for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
			vs[i], vs[j] = vs[j], vs[i]
		}
	}
	z.z.MoveTo(vs[0][0], vs[0][1])
	for _, v := range vs[1:] {
		z.z.LineTo(v[0], v[1])
	}
	z.z.ClosePath()
}

// signedArea returns twice the signed area of the polygon vs. It is positive
// when vs is clockwise on screen, where y grows downwards.
func signedArea(vs []f32.Vec2) float64 {
	a := 0.0
	for i, v := range vs {
		w := vs[(i+1)%len(vs)]
		a += float64(v[0])*float64(w[1]) - float64(w[0])*float64(v[1])
	}
	return a
}

// Mask returns the accumulated coverage as a new single channel image.
func (z *Rasterizer) Mask() *image.Alpha {
	m := image.NewAlpha(z.Bounds())
	z.z.DrawOp = draw.Src
	z.z.Draw(m, m.Bounds(), image.Opaque, image.Point{})
	return m
}

// Fill composites src onto dst through the accumulated coverage, using op.
//
// Like the underlying vector rasterizer, draw.Src overwrites every pixel of
// the area with src scaled by coverage, including the uncovered ones. Use
// Replace to overwrite only the covered pixels.
func (z *Rasterizer) Fill(dst draw.Image, src image.Image, op draw.Op) {
	z.z.DrawOp = op
	z.z.Draw(dst, z.Bounds(), src, image.Point{})
}

// Replace overwrites the covered pixels of dst with src, without blending.
// Partially covered pixels are interpolated between dst and src, alpha
// included, so a translucent src leaves translucent pixels behind.
func (z *Rasterizer) Replace(dst draw.Image, src image.Image) {
	m := z.Mask()
	r := m.Bounds().Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			ma := uint32(m.AlphaAt(x, y).A) * 0x101
			if ma == 0 {
				continue
			}
			sr, sg, sb, sa := src.At(x, y).RGBA()
			if ma == 0xffff {
				dst.Set(x, y, color.RGBA64{uint16(sr), uint16(sg), uint16(sb), uint16(sa)})
				continue
			}
			dr, dg, db, da := dst.At(x, y).RGBA()
			na := 0xffff - ma
			dst.Set(x, y, color.RGBA64{
				R: uint16((sr*ma + dr*na) / 0xffff),
				G: uint16((sg*ma + dg*na) / 0xffff),
				B: uint16((sb*ma + db*na) / 0xffff),
				A: uint16((sa*ma + da*na) / 0xffff),
			})
		}
	}
}

// Arc returns n+1 points on the arc of the ellipse centred at (cx, cy) with
// radii rx and ry, from angle a0 to a1 in radians. Angles grow clockwise on
// screen.
func Arc(cx, cy, rx, ry, a0, a1 float64, n int) []Point {
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(n)
		pts = append(pts, Point{cx + rx*math.Cos(a), cy + ry*math.Sin(a)})
	}
	return pts
}
