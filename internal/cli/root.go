// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package cli implements the pl2 command-line tool.
package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenPSG/pl2"
	"github.com/OpenPSG/pl2/native"
)

// rootCmd is the base command for pl2.
var rootCmd = &cobra.Command{
	Use:   "pl2",
	Short: "Inspect Plexon PL2 recordings",
	Long: "Read channel data and metadata from Plexon PL2 files using the\n" +
		"vendor PL2 reader library.",
	SilenceUsage: true,
}

var libraryPath string

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&libraryPath, "library", "",
		"path to the PL2 reader shared library (default from "+configPath()+")")
	rootCmd.AddCommand(infoCmd, adCmd, spikesCmd, eventsCmd, startStopCmd, exportCmd)
}

// newReader loads the native reader library and wraps it in a pl2.Reader.
func newReader() (*pl2.Reader, error) {
	path := libraryPath
	if path == "" {
		path = LoadConfig().LibraryPath
	}
	drv, err := native.Open(path)
	if err != nil {
		return nil, err
	}
	return pl2.NewReader(drv), nil
}

// parseSelector interprets a channel argument: a bare integer is a
// zero-based global index, "source:channel" is a source pair, anything else
// is a channel name.
func parseSelector(arg string) pl2.Selector {
	if i, err := strconv.Atoi(arg); err == nil {
		return pl2.ByIndex(i)
	}
	if src, ch, ok := strings.Cut(arg, ":"); ok {
		s, err1 := strconv.Atoi(src)
		c, err2 := strconv.Atoi(ch)
		if err1 == nil && err2 == nil {
			return pl2.BySource(s, c)
		}
	}
	return pl2.ByName(arg)
}
