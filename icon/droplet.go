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
	"github.com/goutguard/icongen/shape"
	"golang.org/x/image/math/fixed"
)

func (r *Renderer) renderDroplet(l *DropletLayout, size int) *image.RGBA {
	s := float64(size)
	dst := image.NewRGBA(image.Rect(0, 0, size, size))

	// The corner mask becomes the alpha channel of the gradient tile.
	var bg gradient.Linear
	bg.Init(l.BgTop, l.BgBottom, 0, s)
	z := shape.NewRasterizer(size, size)
	z.RoundedRect(shape.Box{X0: 0, Y0: 0, X1: s - 1, Y1: s - 1}, math.Trunc(l.CornerRadius*s))
	z.Fill(dst, &bg, draw.Src)

	z.Reset(size, size)
	z.Polygon(teardrop(l, s))
	z.Replace(dst, image.NewUniform(l.Fill))

	r.dropletLetter(dst, l, s)

	z.Reset(size, size)
	plus(z, l, s)
	z.Replace(dst, image.NewUniform(l.PlusColor))

	return dst
}

// teardrop returns the outline of a drop with its tip at the top: a left
// shoulder widening from the tip, a stretched semicircular base, and the
// mirrored right shoulder back up to the tip.
func teardrop(l *DropletLayout, s float64) []shape.Point {
	cx, cy := l.CX*s, l.CY*s
	h, w := l.Height*s, l.Width*s
	topY := cy - h*l.TipRise
	ccy := cy + h*l.BulbOffset
	cr := w * 0.5
	span := ccy - topY + cr*l.ShoulderDip
	n := l.Samples

	shoulder := func(t float64) (dx, y float64) {
		return w * 0.5 * math.Pow(t, l.ShoulderPower), topY + t*span
	}

	pts := make([]shape.Point, 0, 3*(n+1))
	for i := 0; i <= n; i++ {
		dx, y := shoulder(float64(i) / float64(n))
		pts = append(pts, shape.Point{X: cx - dx, Y: y})
	}
	pts = append(pts, shape.Arc(cx, ccy, cr, cr*l.BaseStretch, math.Pi, 0, n)...)
	for i := 0; i <= n; i++ {
		dx, y := shoulder(1 - float64(i)/float64(n))
		pts = append(pts, shape.Point{X: cx + dx, Y: y})
	}
	return pts
}

// plus adds a plus sign made of two rounded bars.
func plus(z *shape.Rasterizer, l *DropletLayout, s float64) {
	px := l.CX*s + l.PlusDX*s
	py := l.CY*s + l.PlusDY*s
	arm := l.PlusArm * s
	th := math.Max(float64(l.PlusMinThick), math.Trunc(l.PlusThickness*s))

	z.RoundedRect(shape.Box{X0: px - arm, Y0: py - th, X1: px + arm, Y1: py + th}, th)
	z.RoundedRect(shape.Box{X0: px - th, Y0: py - arm, X1: px + th, Y1: py + arm}, th)
}

// dropletLetter draws the letter with its ink box centred on the drop, nudged
// down into the drop's body.
func (r *Renderer) dropletLetter(dst *image.RGBA, l *DropletLayout, s float64) {
	px := math.Max(1, math.Trunc(l.FontSize*s))
	face := r.face(l.Fonts, px)
	defer face.Close()

	b := glyph.Measure(face, l.Letter)
	centre := fixed.Point26_6{X: fx(l.CX * s), Y: fx(l.CY*s + l.LetterDrop*s)}
	dot := centre.Sub(fixed.Point26_6{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
	})
	glyph.Draw(dst, face, l.Letter, dot, l.LetterColor)
}
