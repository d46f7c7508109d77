// Copyright 2026 The GoutGuard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The gen-icon command draws the legacy GoutGuard shield icon and writes it,
// as opaque RGB PNG files, to the web and iOS icon locations of a project.
//
// The icon is rendered once at 1024×1024. The 512 and 192 pixel web icons are
// downsampled from it and the iOS asset is an exact copy.
//
// Example usage:
//
//	gen-icon -root ~/GoutGuard
package main

import (
	"os"

	"github.com/goutguard/icongen/emit"
	"github.com/goutguard/icongen/icon"
	"github.com/goutguard/icongen/internal/cli"
)

func main() {
	cmd := &cli.Command{
		Name:    "gen-icon",
		Style:   icon.Shield,
		Targets: emit.ShieldTargets,
		Done:    "Icons generated successfully",
	}
	os.Exit(cmd.Run(os.Args[1:], os.Stdout, os.Stderr))
}
