// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var head int

func init() {
	for _, cmd := range []*cobra.Command{adCmd, spikesCmd, eventsCmd} {
		cmd.Flags().IntVar(&head, "head", 10, "number of leading entries to print (0 for all)")
	}
}

// limit returns n capped by the --head flag.
func limit(n int) int {
	if head > 0 && head < n {
		return head
	}
	return n
}

var adCmd = &cobra.Command{
	Use:   "ad <file.pl2> <channel>",
	Short: "Read continuous analog data from a channel",
	Long: "Read continuous analog data from a channel. The channel may be a\n" +
		"zero-based global index, a channel name, or source:channel.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newReader()
		if err != nil {
			return err
		}

		rec, err := r.Analog(args[0], parseSelector(args[1]))
		if err != nil {
			return err
		}

		fmt.Printf("Frequency: %g Hz\n", rec.Frequency)
		fmt.Printf("Samples:   %d in %d fragment(s)\n", rec.Count, len(rec.Fragments))
		for _, f := range rec.Fragments {
			fmt.Printf("  fragment at %.6f s, %d samples\n", f.Start, f.Count)
		}
		for i := 0; i < limit(len(rec.Values)); i++ {
			fmt.Printf("%.9f\n", rec.Values[i])
		}
		return nil
	},
}

var spikesCmd = &cobra.Command{
	Use:   "spikes <file.pl2> <channel>",
	Short: "Read spike waveforms from a channel",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newReader()
		if err != nil {
			return err
		}

		rec, err := r.Spikes(args[0], parseSelector(args[1]))
		if err != nil {
			return err
		}

		fmt.Printf("Spikes: %d\n", rec.Count)
		for i := 0; i < limit(len(rec.Timestamps)); i++ {
			fmt.Printf("%.6f s  unit %d  %v\n", rec.Timestamps[i], rec.Units[i], rec.Waveforms[i])
		}
		return nil
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events <file.pl2> <channel>",
	Short: "Read digital events from a channel",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newReader()
		if err != nil {
			return err
		}

		rec, err := r.Events(args[0], parseSelector(args[1]))
		if err != nil {
			return err
		}

		fmt.Printf("Events: %d\n", rec.Count)
		for i := 0; i < limit(len(rec.Timestamps)); i++ {
			fmt.Printf("%.6f s  value %d\n", rec.Timestamps[i], rec.Values[i])
		}
		return nil
	},
}

var startStopCmd = &cobra.Command{
	Use:   "startstop <file.pl2>",
	Short: "Read the recording start/stop channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newReader()
		if err != nil {
			return err
		}

		rec, err := r.StartStop(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Start/stop events: %d\n", rec.Count)
		for i := range rec.Timestamps {
			fmt.Printf("%.6f s  code %d\n", rec.Timestamps[i], rec.Values[i])
		}
		return nil
	},
}
