// Copyright 2026 The GoutGuard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package emit renders icons and writes them as PNG files to a fixed list of
// targets under a project root.
package emit

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/goutguard/icongen/icon"
	"github.com/goutguard/icongen/resample"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// Target is an output file: a slash-separated path relative to the project
// root, and the edge length of the square icon written there.
type Target struct {
	Path string
	Size int
}

// ShieldTargets are the files written by the legacy shield generator.
var ShieldTargets = []Target{
	{"app-icon-1024.png", 1024},
	{"public/icon-512.png", 512},
	{"public/icon-192.png", 192},
	{"ios/App/App/Assets.xcassets/AppIcon.appiconset/AppIcon-512@2x.png", 1024},
}

// DropletTargets are the files written by the droplet generator. They overlap
// ShieldTargets; whichever generator runs last wins.
var DropletTargets = []Target{
	{"public/icon-512.png", 512},
	{"public/icon-192.png", 192},
	{"app-icon-1024.png", 1024},
}

// Emitter writes icons to targets.
type Emitter struct {
	// Root is the project root. Empty means the current directory.
	Root string

	Renderer *icon.Renderer

	// Resampler derives smaller shield icons from the full size one. Nil
	// means resample.Lanczos.
	Resampler resample.Resampler

	// Out receives one line per file written. Nil discards them.
	Out io.Writer

	Logger *zap.Logger
}

// Emit renders style for every target and writes the files in order. It
// stops at the first error.
//
// The Shield style is rendered once, at the largest target size. Targets of
// that size receive identical bytes and smaller ones are downsampled from it.
// The Droplet style is rendered afresh for each target.
func (e *Emitter) Emit(style icon.Style, targets []Target) error {
	if len(targets) == 0 {
		return nil
	}
	if style == icon.Shield {
		return e.emitDerived(style, targets)
	}
	for _, t := range targets {
		data, err := EncodePNG(e.renderer().Render(t.Size, style))
		if err != nil {
			return xerrors.Errorf("encode %s: %w", t.Path, err)
		}
		if err := e.write(t, data); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) emitDerived(style icon.Style, targets []Target) error {
	full := targets[0].Size
	for _, t := range targets[1:] {
		if t.Size > full {
			full = t.Size
		}
	}
	master := e.renderer().Render(full, style)
	masterData, err := EncodePNG(master)
	if err != nil {
		return xerrors.Errorf("encode %dx%d master: %w", full, full, err)
	}

	for _, t := range targets {
		data := masterData
		if t.Size != full {
			small := resample.Flatten(e.resampler().Resize(master, t.Size))
			if data, err = EncodePNG(small); err != nil {
				return xerrors.Errorf("encode %s: %w", t.Path, err)
			}
		}
		if err := e.write(t, data); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the filesystem path of t.
func (e *Emitter) Path(t Target) string {
	return filepath.Join(e.Root, filepath.FromSlash(t.Path))
}

func (e *Emitter) write(t Target, data []byte) error {
	name := e.Path(t)
	if err := os.MkdirAll(filepath.Dir(name), 0777); err != nil {
		return xerrors.Errorf("write %s: %w", t.Path, err)
	}
	if err := os.WriteFile(name, data, 0666); err != nil {
		return xerrors.Errorf("write %s: %w", t.Path, err)
	}
	e.logger().Debug("wrote icon",
		zap.String("path", name),
		zap.Int("size", t.Size),
		zap.Int("bytes", len(data)))
	if e.Out != nil {
		fmt.Fprintf(e.Out, "Saved %s (%dx%d)\n", t.Path, t.Size, t.Size)
	}
	return nil
}

func (e *Emitter) renderer() *icon.Renderer {
	if e.Renderer == nil {
		return &icon.Renderer{Logger: e.Logger}
	}
	return e.Renderer
}

func (e *Emitter) resampler() resample.Resampler {
	if e.Resampler == nil {
		return resample.Lanczos{}
	}
	return e.Resampler
}

func (e *Emitter) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// EncodePNG returns the PNG encoding of m. Fully opaque images are encoded
// without an alpha channel.
func EncodePNG(m image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
