// Copyright 2026 The GoutGuard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The gen-new-icon command draws the GoutGuard droplet icon, a rounded tile
// with transparent corners, and writes it as RGBA PNG files at 512, 192 and
// 1024 pixels. Each size is rendered separately.
//
// It writes some of the same files as gen-icon; the last one run wins.
package main

import (
	"os"

	"github.com/goutguard/icongen/emit"
	"github.com/goutguard/icongen/icon"
	"github.com/goutguard/icongen/internal/cli"
)

func main() {
	cmd := &cli.Command{
		Name:    "gen-new-icon",
		Style:   icon.Droplet,
		Targets: emit.DropletTargets,
		Done:    "Done!",
	}
	os.Exit(cmd.Run(os.Args[1:], os.Stdout, os.Stderr))
}
