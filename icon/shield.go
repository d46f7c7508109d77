// Copyright 2026 The GoutGuard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icon

import (
	"image"
	"image/draw"
	"math"

	"github.com/goutguard/icongen/glyph"
	"github.com/goutguard/icongen/gradient"
	"github.com/goutguard/icongen/resample"
	"github.com/goutguard/icongen/shape"
	"golang.org/x/image/math/fixed"
)

// shieldGeom is a ShieldLayout scaled to one canvas size.
type shieldGeom struct {
	l  *ShieldLayout
	k  float64
	cx float64
}

func newShieldGeom(l *ShieldLayout, size int) shieldGeom {
	return shieldGeom{
		l:  l,
		k:  float64(size) / float64(l.Design),
		cx: float64(size / 2),
	}
}

func (g shieldGeom) s(v float64) float64 { return v * g.k }

// silhouette adds the shield outline: a rounded rectangle whose lower corners
// are hidden by a square skirt, joined to a triangle pointing down at pointY.
func (g shieldGeom) silhouette(z *shape.Rasterizer, left, right, top, pointY float64) {
	rectBot := g.s(g.l.RectBottom)
	skirt := g.skirt(left, right)
	z.RoundedRect(shape.Box{X0: left, Y0: top, X1: right, Y1: skirt.Y1}, g.s(g.l.CornerRadius))
	z.Polygon([]shape.Point{{X: left, Y: rectBot}, {X: right, Y: rectBot}, {X: g.cx, Y: pointY}})
	z.Rect(skirt)
}

// skirt returns the square band that covers the rounded lower corners and
// overlaps the top of the triangle.
func (g shieldGeom) skirt(left, right float64) shape.Box {
	rectBot := g.s(g.l.RectBottom)
	return shape.Box{
		X0: left, Y0: rectBot - g.s(g.l.SkirtOverlap),
		X1: right, Y1: rectBot + g.s(g.l.SkirtDepth),
	}
}

func (g shieldGeom) outer(z *shape.Rasterizer) {
	g.silhouette(z, g.s(g.l.Left), g.s(g.l.Right), g.s(g.l.Top), g.s(g.l.PointY))
}

// innerBounds returns the inner shield's extent: left, right, top and the
// tip of its point.
func (g shieldGeom) innerBounds() (il, ir, it, ipy float64) {
	b := g.s(g.l.Border)
	il = g.s(g.l.Left) + b
	ir = g.s(g.l.Right) - b
	it = g.s(g.l.Top) + b
	ipy = g.s(g.l.PointY) - b - g.s(g.l.InnerPointLift)
	return il, ir, it, ipy
}

func (g shieldGeom) inner(z *shape.Rasterizer) {
	il, ir, it, ipy := g.innerBounds()
	g.silhouette(z, il, ir, it, ipy)
}

// drop adds the water drop body: a circle at the bottom and a triangle
// rising to a point, with a bar filling the seam between them.
func (g shieldGeom) drop(z *shape.Rasterizer) {
	r := g.s(g.l.DropRadius)
	bottom := g.s(g.l.DropBottom)
	ccy := bottom - r
	in := g.s(g.l.DropInset)

	z.Ellipse(shape.Box{X0: g.cx - r, Y0: bottom - 2*r, X1: g.cx + r, Y1: bottom})
	z.Polygon([]shape.Point{
		{X: g.cx, Y: g.s(g.l.DropTop)},
		{X: g.cx - r + in, Y: ccy},
		{X: g.cx + r - in, Y: ccy},
	})
	z.Rect(shape.Box{
		X0: g.cx - r + in, Y0: ccy - g.s(g.l.GapAbove),
		X1: g.cx + r - in, Y1: ccy + g.s(g.l.GapBelow),
	})
}

// dropBox converts b, relative to the drop's round base, to canvas
// coordinates.
func (g shieldGeom) dropBox(b Box) shape.Box {
	ccy := g.s(g.l.DropBottom) - g.s(g.l.DropRadius)
	return shape.Box{
		X0: g.cx + g.s(b.X0), Y0: ccy + g.s(b.Y0),
		X1: g.cx + g.s(b.X1), Y1: ccy + g.s(b.Y1),
	}
}

func (r *Renderer) renderShield(l *ShieldLayout, size int) *image.RGBA {
	g := newShieldGeom(l, size)
	dst := image.NewRGBA(image.Rect(0, 0, size, size))

	var bg gradient.Linear
	bg.Init(l.BgTop, l.BgBottom, 0, float64(size))
	draw.Draw(dst, dst.Rect, &bg, image.Point{}, draw.Src)

	z := shape.NewRasterizer(size, size)
	g.outer(z)
	z.Fill(dst, image.NewUniform(l.Outline), draw.Over)

	z.Reset(size, size)
	g.inner(z)
	_, _, it, ipy := g.innerBounds()
	var fill gradient.Linear
	fill.Init(l.InnerTop, l.InnerBottom, math.Trunc(it), math.Trunc(ipy))
	z.Fill(dst, &fill, draw.Over)

	r.shieldLetter(dst, g)

	z.Reset(size, size)
	g.drop(z)
	z.Fill(dst, image.NewUniform(l.DropColor), draw.Over)

	z.Reset(size, size)
	z.Ellipse(g.dropBox(l.Shine))
	z.Fill(dst, image.NewUniform(l.ShineColor), draw.Over)

	z.Reset(size, size)
	z.Ellipse(g.dropBox(l.Sparkle))
	z.Fill(dst, image.NewUniform(l.SparkleColor), draw.Over)

	return resample.Flatten(dst)
}

// shieldLetter draws the letter horizontally centred, with the top of its line
// box at LetterTop, over a shadow copy offset down and to the right.
func (r *Renderer) shieldLetter(dst *image.RGBA, g shieldGeom) {
	l := g.l
	face := r.face(l.Fonts, math.Max(1, g.s(l.FontSize)))
	defer face.Close()

	b := glyph.Measure(face, l.Letter)
	tw := (b.Max.X - b.Min.X).Round()
	gx := g.cx - float64(tw/2)
	dot := fixed.Point26_6{
		X: fx(gx),
		Y: fx(math.Round(g.s(l.LetterTop))) + glyph.Ascent(face),
	}

	off := fx(math.Max(1, math.Round(g.s(l.ShadowOffset))))
	glyph.Draw(dst, face, l.Letter, dot.Add(fixed.Point26_6{X: off, Y: off}), l.Shadow)
	glyph.Draw(dst, face, l.Letter, dot, l.LetterColor)
}
