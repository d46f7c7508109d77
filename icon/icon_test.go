// Copyright 2026 The GoutGuard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icon

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/goutguard/icongen/glyph"
	"github.com/goutguard/icongen/gradient"
	"github.com/goutguard/icongen/internal/imagetest"
	"github.com/goutguard/icongen/shape"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// testRenderer uses only the embedded font, so that output does not depend on
// the fonts installed on the host.
func testRenderer() *Renderer {
	return &Renderer{Fonts: glyph.Chain{glyph.GoBold}}
}

func nrgba(m image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
}

func near(c, want color.NRGBA, tol int) bool {
	d := func(a, b uint8) bool {
		x := int(a) - int(b)
		return -tol <= x && x <= tol
	}
	return d(c.R, want.R) && d(c.G, want.G) && d(c.B, want.B) && d(c.A, want.A)
}

func TestRenderSize(t *testing.T) {
	r := testRenderer()
	for _, style := range []Style{Shield, Droplet} {
		for _, size := range []int{1, 16, 192, 1024} {
			m := r.Render(size, style)
			if got, want := m.Bounds(), image.Rect(0, 0, size, size); got != want {
				t.Errorf("%v %d: got %v, want %v", style, size, got, want)
			}
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, style := range []Style{Shield, Droplet} {
		a := testRenderer().Render(300, style)
		b := testRenderer().Render(300, style)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("%v: two renders differ", style)
		}
	}
}

func TestRenderNonPositivePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("got no panic, want one")
		}
	}()
	testRenderer().Render(0, Shield)
}

func TestStyleString(t *testing.T) {
	testCases := []struct {
		s    Style
		want string
	}{
		{Shield, "shield"},
		{Droplet, "droplet"},
		{Style(9), "Style(9)"},
	}
	for _, tc := range testCases {
		if got := tc.s.String(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}

func TestRenderLogsFontFallback(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := &Renderer{
		Fonts:  glyph.Chain{glyph.File("/nonexistent/font.ttf"), glyph.GoBold},
		Logger: zap.New(core),
	}
	r.Render(64, Droplet)

	if n := logs.FilterMessage("font unavailable").Len(); n != 1 {
		t.Errorf("font warnings: got %d, want 1", n)
	}
	if n := logs.FilterMessage("rendered icon").Len(); n != 1 {
		t.Errorf("render entries: got %d, want 1", n)
	}
}

func TestShieldOpaque(t *testing.T) {
	m := testRenderer().Render(1024, Shield)
	if !imagetest.Opaque(m) {
		t.Error("shield icon has transparent pixels")
	}
}

func TestShieldBackgroundGradient(t *testing.T) {
	l := &ShieldConfig
	for _, size := range []int{1024, 256} {
		m := testRenderer().Render(size, Shield)
		n := float64(size)
		for y := 0; y < size; y++ {
			tt := float64(y) / n
			want := [3]float64{
				float64(l.BgTop.R) + (float64(l.BgBottom.R)-float64(l.BgTop.R))*tt,
				float64(l.BgTop.G) + (float64(l.BgBottom.G)-float64(l.BgTop.G))*tt,
				float64(l.BgTop.B) + (float64(l.BgBottom.B)-float64(l.BgTop.B))*tt,
			}
			c := m.RGBAAt(0, y)
			got := [3]float64{float64(c.R), float64(c.G), float64(c.B)}
			for i := range got {
				if d := got[i] - want[i]; d < -1 || d > 1 {
					t.Fatalf("size %d, row %d: got %v, want %v ±1", size, y, got, want)
				}
			}
			if y > 0 {
				p := m.RGBAAt(0, y-1)
				if c.R < p.R || c.G < p.G || c.B < p.B {
					t.Fatalf("size %d, row %d: %v is darker than the row above, %v", size, y, c, p)
				}
			}
		}
	}
}

func TestShieldInnerMaskContained(t *testing.T) {
	const size = 1024
	g := newShieldGeom(&ShieldConfig, size)
	il, ir, it, ipy := g.innerBounds()
	if il != 216 || ir != 808 || it != 146 || ipy != 859 {
		t.Fatalf("inner bounds: got %v %v %v %v", il, ir, it, ipy)
	}

	z := shape.NewRasterizer(size, size)
	g.inner(z)
	mask := z.Mask()
	painted := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if mask.AlphaAt(x, y).A == 0 {
				continue
			}
			painted++
			if float64(x) < il || float64(x) > ir || float64(y) < it || float64(y) > ipy {
				t.Fatalf("(%d, %d) is painted, outside [%v, %v]×[%v, %v]", x, y, il, ir, it, ipy)
			}
		}
	}
	if painted == 0 {
		t.Fatal("inner mask is empty")
	}
}

func TestShieldInnerFillContained(t *testing.T) {
	const size = 1024
	r := testRenderer()
	l := ShieldConfig
	plain := l
	plain.InnerTop, plain.InnerBottom = l.Outline, l.Outline

	got := r.renderShield(&l, size)
	without := r.renderShield(&plain, size)

	g := newShieldGeom(&l, size)
	il, ir, it, ipy := g.innerBounds()
	maxY := ipy + g.s(l.Border)
	changed := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if got.RGBAAt(x, y) == without.RGBAAt(x, y) {
				continue
			}
			changed++
			if float64(x) < il || float64(x) > ir || float64(y) < it || float64(y) > maxY {
				t.Fatalf("(%d, %d) is painted by the inner fill, outside [%v, %v]×[%v, %v]",
					x, y, il, ir, it, maxY)
			}
		}
	}
	if changed == 0 {
		t.Fatal("inner fill paints no pixels")
	}
}

func TestShieldSkirtScales(t *testing.T) {
	l := &ShieldConfig
	testCases := []struct {
		size           int
		wantY0, wantY1 float64
	}{
		{1024, 579, 620},
		{2048, 1158, 1240},
		{512, 289.5, 310},
	}
	for _, tc := range testCases {
		g := newShieldGeom(l, tc.size)
		b := g.skirt(0, 10)
		if b.Y0 != tc.wantY0 || b.Y1 != tc.wantY1 {
			t.Errorf("size %d: got rows [%v, %v], want [%v, %v]", tc.size, b.Y0, b.Y1, tc.wantY0, tc.wantY1)
		}
	}
}

func TestShieldLayers(t *testing.T) {
	l := &ShieldConfig
	m := testRenderer().Render(1024, Shield)

	var fill gradient.Linear
	fill.Init(l.InnerTop, l.InnerBottom, 146, 859)
	white := color.NRGBA{255, 255, 255, 255}

	testCases := []struct {
		name string
		p    image.Point
		want color.NRGBA
	}{
		{"border", image.Pt(200, 400), white},
		{"point border", image.Pt(512, 885), white},
		{"inner top", image.Pt(250, 250), fill.RowColor(250)},
		{"inner middle", image.Pt(250, 500), fill.RowColor(500)},
		{"inner point", image.Pt(512, 840), fill.RowColor(840)},
		{"drop", image.Pt(530, 790), l.DropColor},
		{"drop tip", image.Pt(512, 660), l.DropColor},
		{"shine", image.Pt(490, 755), l.ShineColor},
		{"sparkle", image.Pt(489, 744), l.SparkleColor},
	}
	for _, tc := range testCases {
		if got := nrgba(m, tc.p.X, tc.p.Y); got != tc.want {
			t.Errorf("%s %v: got %v, want %v", tc.name, tc.p, got, tc.want)
		}
	}
}

func TestShieldLetter(t *testing.T) {
	m := testRenderer().Render(1024, Shield)
	white, shadow := 0, 0
	for y := 195; y < 520; y++ {
		for x := 300; x < 724; x++ {
			switch nrgba(m, x, y) {
			case color.NRGBA{255, 255, 255, 255}:
				white++
			case ShieldConfig.Shadow:
				shadow++
			}
		}
	}
	if white == 0 || shadow == 0 {
		t.Errorf("letter pixels: got %d white and %d shadow, want both", white, shadow)
	}
}

func TestDropletAlpha(t *testing.T) {
	for _, size := range []int{192, 512, 1024} {
		m := testRenderer().Render(size, Droplet)
		for _, p := range []image.Point{{0, 0}, {2, 2}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}} {
			if a := m.RGBAAt(p.X, p.Y).A; a != 0 {
				t.Errorf("size %d, corner %v: got alpha %d, want 0", size, p, a)
			}
		}
		if a := m.RGBAAt(size/2, size/2).A; a == 0 {
			t.Errorf("size %d, centre: got alpha 0", size)
		}
		if a := m.RGBAAt(size/2, 0).A; a != 0xff {
			t.Errorf("size %d, top edge: got alpha %d, want 255", size, a)
		}
	}
}

func TestDropletLayers(t *testing.T) {
	l := &DropletConfig
	m := testRenderer().Render(512, Droplet)

	if got := nrgba(m, 256, 170); !near(got, l.Fill, 1) {
		t.Errorf("drop body: got %v, want %v", got, l.Fill)
	}
	if got := nrgba(m, 297, 215); !near(got, l.PlusColor, 2) {
		t.Errorf("plus: got %v, want %v", got, l.PlusColor)
	}
	if got := nrgba(m, 256, 0); got != l.BgTop {
		t.Errorf("background: got %v, want %v", got, l.BgTop)
	}

	// Inside the drop the background is hidden, so blue comes from the letter.
	blue := 0
	for y := 240; y < 340; y++ {
		for x := 200; x < 312; x++ {
			if near(nrgba(m, x, y), l.LetterColor, 2) {
				blue++
			}
		}
	}
	if blue == 0 {
		t.Error("no letter pixels inside the drop")
	}
}

func TestTeardrop(t *testing.T) {
	l := &DropletConfig
	pts := teardrop(l, 512)
	if got, want := len(pts), 3*(l.Samples+1); got != want {
		t.Fatalf("got %d points, want %d", got, want)
	}
	if pts[0] != pts[len(pts)-1] {
		t.Errorf("outline does not return to the tip: %v, %v", pts[0], pts[len(pts)-1])
	}
	lowest := pts[0]
	for _, p := range pts {
		if p.Y > lowest.Y {
			lowest = p
		}
	}
	// The base is the semicircle's lowest point, stretched vertically.
	wantY := 0.52*512 + 0.1*0.52*512 + 0.5*0.36*512*1.1
	if d := lowest.Y - wantY; d < -1e-6 || d > 1e-6 {
		t.Errorf("lowest point: got y=%v, want %v", lowest.Y, wantY)
	}
}
