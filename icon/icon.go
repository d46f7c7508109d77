// Copyright 2026 The GoutGuard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package icon draws the GoutGuard application icon.
//
// Two designs exist. The legacy Shield design is a white shield with a
// shadowed letter and a water drop on a blue gradient; it is fully opaque.
// The Droplet design is a rounded blue tile with transparent corners, a white
// teardrop, a blue letter and a small plus sign.
//
// Rendering is deterministic: the same size, style and font resource always
// produce the same pixels.
package icon

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/goutguard/icongen/glyph"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Style selects an icon design.
type Style uint8

const (
	Shield Style = iota
	Droplet
)

func (s Style) String() string {
	switch s {
	case Shield:
		return "shield"
	case Droplet:
		return "droplet"
	}
	return fmt.Sprintf("Style(%d)", uint8(s))
}

// Renderer draws icons.
//
// The zero value is usable: it tries each style's own font candidates and
// discards log output.
type Renderer struct {
	// Fonts, if non-nil, replaces the font candidates of every style.
	Fonts glyph.Chain

	Logger *zap.Logger
}

// Render returns the size×size icon of the given style. It panics if size is
// not positive.
func (r *Renderer) Render(size int, style Style) *image.RGBA {
	if size <= 0 {
		panic(fmt.Sprintf("icon: non-positive size %d", size))
	}
	start := time.Now()

	var m *image.RGBA
	switch style {
	case Shield:
		m = r.renderShield(&ShieldConfig, size)
	case Droplet:
		m = r.renderDroplet(&DropletConfig, size)
	default:
		panic(fmt.Sprintf("icon: unknown style %v", style))
	}

	r.logger().Debug("rendered icon",
		zap.Stringer("style", style),
		zap.Int("size", size),
		zap.Duration("elapsed", time.Since(start)))
	return m
}

func (r *Renderer) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// face loads a face for text size px, from r.Fonts if set and otherwise from
// candidates.
func (r *Renderer) face(candidates glyph.Chain, px float64) font.Face {
	c := candidates
	if r.Fonts != nil {
		c = r.Fonts
	}
	face, _ := c.Face(px, r.logger())
	return face
}

func fx(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
