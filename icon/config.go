// Copyright 2026 The GoutGuard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package icon

import (
	"image/color"

	"github.com/goutguard/icongen/glyph"
)

// ShieldLayout holds the constants of the shield icon. Lengths are in pixels
// of the Design×Design canvas and scale linearly with the rendered size. Boxes
// are inclusive, as in package shape.
type ShieldLayout struct {
	Design int

	BgTop, BgBottom color.NRGBA

	Left, Right    float64
	Top            float64
	RectBottom     float64
	PointY         float64
	Border         float64
	InnerPointLift float64
	CornerRadius   float64
	SkirtDepth     float64
	SkirtOverlap   float64

	Outline               color.NRGBA
	InnerTop, InnerBottom color.NRGBA

	Letter       string
	FontSize     float64
	LetterTop    float64
	ShadowOffset float64
	Shadow       color.NRGBA
	LetterColor  color.NRGBA

	DropTop, DropBottom float64
	DropRadius          float64
	DropInset           float64
	GapAbove, GapBelow  float64
	DropColor           color.NRGBA
	Shine               Box
	ShineColor          color.NRGBA
	Sparkle             Box
	SparkleColor        color.NRGBA

	Fonts glyph.Chain
}

// Box is an inclusive box, relative to the centre of the water drop's round
// base.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// DropletLayout holds the constants of the droplet icon. Lengths are
// fractions of the rendered size.
type DropletLayout struct {
	BgTop, BgBottom color.NRGBA
	CornerRadius    float64

	CX, CY        float64
	Height, Width float64
	TipRise       float64
	BulbOffset    float64
	ShoulderDip   float64
	ShoulderPower float64
	BaseStretch   float64
	Samples       int
	Fill          color.NRGBA

	Letter      string
	FontSize    float64
	LetterDrop  float64
	LetterColor color.NRGBA

	PlusDX, PlusDY float64
	PlusArm        float64
	PlusThickness  float64
	PlusMinThick   int
	PlusColor      color.NRGBA

	Fonts glyph.Chain
}

// ShieldConfig is the legacy shield-and-letter icon.
var ShieldConfig = ShieldLayout{
	Design: 1024,

	BgTop:    color.NRGBA{15, 50, 180, 255},
	BgBottom: color.NRGBA{35, 95, 225, 255},

	Left:           190,
	Right:          834,
	Top:            120,
	RectBottom:     580,
	PointY:         900,
	Border:         26,
	InnerPointLift: 15,
	CornerRadius:   55,
	SkirtDepth:     40,
	SkirtOverlap:   1,

	Outline:     color.NRGBA{255, 255, 255, 255},
	InnerTop:    color.NRGBA{22, 75, 210, 255},
	InnerBottom: color.NRGBA{12, 45, 170, 255},

	Letter:       "G",
	FontSize:     280,
	LetterTop:    195,
	ShadowOffset: 3,
	Shadow:       color.NRGBA{10, 40, 140, 255},
	LetterColor:  color.NRGBA{255, 255, 255, 255},

	DropTop:      630,
	DropBottom:   810,
	DropRadius:   55,
	DropInset:    5,
	GapAbove:     2,
	GapBelow:     10,
	DropColor:    color.NRGBA{96, 180, 255, 255},
	Shine:        Box{-32, -22, -10, 8},
	ShineColor:   color.NRGBA{170, 215, 255, 255},
	Sparkle:      Box{-28, -16, -18, -6},
	SparkleColor: color.NRGBA{220, 240, 255, 255},

	Fonts: glyph.Chain{glyph.File(glyph.DejaVuSansBold), glyph.GoBold, glyph.Bitmap{}},
}

// DropletConfig is the rounded-tile droplet-and-letter icon.
var DropletConfig = DropletLayout{
	BgTop:        color.NRGBA{37, 99, 235, 255},
	BgBottom:     color.NRGBA{30, 64, 175, 255},
	CornerRadius: 0.22,

	CX:            0.5,
	CY:            0.52,
	Height:        0.52,
	Width:         0.36,
	TipRise:       0.48,
	BulbOffset:    0.1,
	ShoulderDip:   0.3,
	ShoulderPower: 0.7,
	BaseStretch:   1.1,
	Samples:       40,
	Fill:          color.NRGBA{255, 255, 255, 240},

	Letter:      "G",
	FontSize:    0.26,
	LetterDrop:  0.04,
	LetterColor: color.NRGBA{37, 99, 235, 255},

	PlusDX:        0.08,
	PlusDY:        -0.1,
	PlusArm:       0.04,
	PlusThickness: 0.015,
	PlusMinThick:  2,
	PlusColor:     color.NRGBA{37, 99, 235, 200},

	Fonts: glyph.Chain{
		glyph.File(glyph.DejaVuSansBold),
		glyph.File(glyph.LiberationSansBold),
		glyph.GoBold,
		glyph.Bitmap{},
	},
}
