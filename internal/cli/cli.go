// Copyright 2026 The GoutGuard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli holds the command line plumbing shared by the icon generators.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/goutguard/icongen/emit"
	"github.com/goutguard/icongen/icon"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Command describes one generator.
type Command struct {
	Name    string
	Style   icon.Style
	Targets []emit.Target
	// Done is printed after every target has been written.
	Done string
}

// Run parses args, writes every target and returns the process exit code.
func (c *Command) Run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(c.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	root := fs.String("root", ".", "project `directory` that output paths are relative to")
	verbose := fs.Bool("v", false, "log each rendering and file write")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [-root dir] [-v]\n", c.Name)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return 2
	}

	logger := NewLogger(stderr, *verbose)
	defer logger.Sync()

	e := &emit.Emitter{
		Root:     *root,
		Renderer: &icon.Renderer{Logger: logger},
		Out:      stdout,
		Logger:   logger,
	}
	if err := e.Emit(c.Style, c.Targets); err != nil {
		logger.Error("icon generation failed", zap.Stringer("style", c.Style), zap.Error(err))
		return 1
	}
	fmt.Fprintln(stdout, c.Done)
	return 0
}

// NewLogger returns a console logger writing to w. It logs warnings and
// errors, and debug messages too when verbose is set.
func NewLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}
