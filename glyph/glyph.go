// Copyright 2026 The GoutGuard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glyph loads font faces, falling back through an ordered list of
// candidate fonts, and measures and draws text on an image.
package glyph

import (
	"image"
	"image/color"
	"image/draw"
	"os"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/xerrors"
)

// Well known system font locations.
const (
	DejaVuSansBold     = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
	LiberationSansBold = "/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf"
)

// Source is one attempt at obtaining a font face.
type Source interface {
	// Face returns a face whose em square is size pixels tall.
	Face(size float64) (font.Face, error)
	String() string
}

// File is a TrueType or OpenType font file on the local filesystem.
type File string

func (f File) String() string { return string(f) }

// Face satisfies the Source interface.
func (f File) Face(size float64) (font.Face, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, err
	}
	return parseFace(data, size)
}

// Embedded is a TrueType or OpenType font compiled into the binary.
type Embedded struct {
	Name string
	Data []byte
}

func (e Embedded) String() string { return e.Name }

// Face satisfies the Source interface.
func (e Embedded) Face(size float64) (font.Face, error) {
	return parseFace(e.Data, size)
}

func parseFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, xerrors.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, xerrors.Errorf("create face: %w", err)
	}
	return face, nil
}

// Bitmap is the minimal built-in 7×13 bitmap face. It ignores the requested
// size and never fails.
type Bitmap struct{}

func (Bitmap) String() string { return "basicfont 7x13" }

// Face satisfies the Source interface.
func (Bitmap) Face(size float64) (font.Face, error) {
	return basicfont.Face7x13, nil
}

// GoBold is the Go Bold font, always available.
var GoBold = Embedded{Name: "Go Bold", Data: gobold.TTF}

// Chain is an ordered list of font sources. The first source to succeed wins.
type Chain []Source

// Face returns a face from the first source in c that succeeds, along with
// that source. Failures are logged and skipped. If every source fails, or c
// is empty, Face returns the Bitmap face.
func (c Chain) Face(size float64, logger *zap.Logger) (font.Face, Source) {
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, src := range c {
		face, err := src.Face(size)
		if err == nil {
			logger.Debug("font loaded", zap.Stringer("font", src), zap.Float64("size", size))
			return face, src
		}
		logger.Warn("font unavailable", zap.Stringer("font", src), zap.Error(err))
	}
	face, _ := Bitmap{}.Face(size)
	return face, Bitmap{}
}

// Measure returns the ink bounds of s drawn with face, relative to a dot at
// the origin. The Y axis grows downwards, so Min.Y is negative for glyphs
// above the baseline.
func Measure(face font.Face, s string) fixed.Rectangle26_6 {
	b, _ := font.BoundString(face, s)
	return b
}

// Ascent returns the distance from the top of a line of text to its baseline.
func Ascent(face font.Face) fixed.Int26_6 {
	return face.Metrics().Ascent
}

// Draw draws s onto dst in color c, with the baseline origin at dot.
func Draw(dst draw.Image, face font.Face, s string, dot fixed.Point26_6, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(s)
}
