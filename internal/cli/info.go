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

	"github.com/OpenPSG/pl2"
)

var infoCmd = &cobra.Command{
	Use:   "info <file.pl2>",
	Short: "Show file metadata and channel counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newReader()
		if err != nil {
			return err
		}

		s, err := r.Open(args[0])
		if err != nil {
			return err
		}
		defer s.Close()

		fi := s.FileInfo()
		fmt.Printf("Creator:             %s %s\n", fi.CreatorSoftwareName, fi.CreatorSoftwareVersion)
		if !fi.CreatorTime.IsZero() {
			fmt.Printf("Created:             %s\n", fi.CreatorTime.Format("2006-01-02 15:04:05"))
		}
		if fi.ReprocessorSoftwareName != "" {
			fmt.Printf("Reprocessed by:      %s %s\n", fi.ReprocessorSoftwareName, fi.ReprocessorSoftwareVersion)
		}
		fmt.Printf("Timestamp frequency: %g Hz\n", fi.TimestampFrequency)
		fmt.Printf("Recording start:     %.6f s\n", fi.RecordingStart())
		fmt.Printf("Duration:            %.6f s\n", fi.RecordingDuration())
		fmt.Printf("Spike channels:      %d total, %d recorded\n", fi.TotalSpikeChannels, fi.RecordedSpikeChannels)
		fmt.Printf("Analog channels:     %d total, %d recorded\n", fi.TotalAnalogChannels, fi.RecordedAnalogChannels)
		fmt.Printf("Digital channels:    %d\n", fi.DigitalChannels)

		sum, err := s.Summary()
		if err != nil {
			return err
		}

		if len(sum.Spikes) > 0 {
			fmt.Println("\nSpike channels with data:")
			for _, ch := range sum.Spikes {
				fmt.Printf("  %3d  %-16s %d waveforms (%d unsorted)\n",
					ch.Channel, ch.Name, totalSpikes(ch.UnitCounts), ch.UnitCounts[0])
			}
		}
		if len(sum.Events) > 0 {
			fmt.Println("\nEvent channels with data:")
			for _, ch := range sum.Events {
				fmt.Printf("  %3d  %-16s %d events\n", ch.Channel, ch.Name, ch.Count)
			}
		}
		if len(sum.Analog) > 0 {
			fmt.Println("\nAnalog channels with data:")
			for _, ch := range sum.Analog {
				fmt.Printf("  %3d  %-16s %d samples\n", ch.Channel, ch.Name, ch.Count)
			}
		}
		return nil
	},
}

func totalSpikes(unitCounts [pl2.MaxUnits]uint64) uint64 {
	var total uint64
	for _, c := range unitCounts {
		total += c
	}
	return total
}
