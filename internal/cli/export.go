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
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/OpenPSG/pl2"
)

const exportSchema = `
CREATE TABLE IF NOT EXISTS file_info (
	path                TEXT NOT NULL,
	creator             TEXT NOT NULL,
	timestamp_frequency REAL NOT NULL,
	recording_start     REAL NOT NULL,
	duration            REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS spike_channels (
	channel   INTEGER NOT NULL,
	name      TEXT NOT NULL,
	waveforms INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS spikes (
	channel_name TEXT NOT NULL,
	timestamp    REAL NOT NULL,
	unit         INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS event_channels (
	channel INTEGER NOT NULL,
	name    TEXT NOT NULL,
	events  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS events (
	channel_name TEXT NOT NULL,
	timestamp    REAL NOT NULL,
	value        INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS analog_channels (
	channel INTEGER NOT NULL,
	name    TEXT NOT NULL,
	samples INTEGER NOT NULL
);
`

var exportCmd = &cobra.Command{
	Use:   "export <file.pl2> <out.sqlite>",
	Short: "Export spike and event data to a SQLite database",
	Long: "Export the file summary, spike timestamps with unit assignments,\n" +
		"and digital events to a SQLite database for downstream analysis.\n" +
		"Analog channels are listed but their samples are not exported.",
	Args: cobra.ExactArgs(2),
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

		sum, err := s.Summary()
		if err != nil {
			return err
		}

		db, err := sql.Open("sqlite", args[1])
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		if _, err := db.Exec(exportSchema); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer tx.Rollback()

		fi := s.FileInfo()
		if _, err := tx.Exec(`INSERT INTO file_info (path, creator, timestamp_frequency, recording_start, duration) VALUES (?, ?, ?, ?, ?)`,
			args[0], fi.CreatorSoftwareName, fi.TimestampFrequency, fi.RecordingStart(), fi.RecordingDuration()); err != nil {
			return fmt.Errorf("insert file info: %w", err)
		}

		for _, ch := range sum.Spikes {
			if _, err := tx.Exec(`INSERT INTO spike_channels (channel, name, waveforms) VALUES (?, ?, ?)`,
				ch.Channel, ch.Name, totalSpikes(ch.UnitCounts)); err != nil {
				return fmt.Errorf("insert spike channel %s: %w", ch.Name, err)
			}

			rec, err := s.Spikes(pl2.ByName(ch.Name))
			if err != nil {
				return err
			}
			for i := range rec.Timestamps {
				if _, err := tx.Exec(`INSERT INTO spikes (channel_name, timestamp, unit) VALUES (?, ?, ?)`,
					ch.Name, rec.Timestamps[i], rec.Units[i]); err != nil {
					return fmt.Errorf("insert spike: %w", err)
				}
			}
		}

		for _, ch := range sum.Events {
			if _, err := tx.Exec(`INSERT INTO event_channels (channel, name, events) VALUES (?, ?, ?)`,
				ch.Channel, ch.Name, ch.Count); err != nil {
				return fmt.Errorf("insert event channel %s: %w", ch.Name, err)
			}

			rec, err := s.Events(pl2.ByName(ch.Name))
			if err != nil {
				return err
			}
			for i := range rec.Timestamps {
				if _, err := tx.Exec(`INSERT INTO events (channel_name, timestamp, value) VALUES (?, ?, ?)`,
					ch.Name, rec.Timestamps[i], rec.Values[i]); err != nil {
					return fmt.Errorf("insert event: %w", err)
				}
			}
		}

		for _, ch := range sum.Analog {
			if _, err := tx.Exec(`INSERT INTO analog_channels (channel, name, samples) VALUES (?, ?, ?)`,
				ch.Channel, ch.Name, ch.Count); err != nil {
				return fmt.Errorf("insert analog channel %s: %w", ch.Name, err)
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}

		fmt.Printf("Exported %d spike, %d event, %d analog channel(s) to %s\n",
			len(sum.Spikes), len(sum.Events), len(sum.Analog), args[1])
		return nil
	},
}
