// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package pl2_test

import "github.com/OpenPSG/pl2"

// fakeDriver is an in-memory pl2.Driver serving one synthetic file. It
// mimics the native reader's conventions: success booleans with a
// last-error string, zero-based channel indices, and raw buffers filled up
// to the actual counts with the remainder left as structural zeros.
type fakeDriver struct {
	path    string
	info    pl2.FileInfo
	analog  []fakeAnalog
	spikes  []fakeSpike
	digital []fakeDigital

	ssTicks  []int64
	ssValues []uint16

	next    pl2.Handle
	open    map[pl2.Handle]bool
	lastErr string

	// Fault injection.
	padFragments   bool // report NumFragments equal to capacity, zero-count tail included
	overflowSpikes bool // report one more spike than the descriptor declares
}

type fakeAnalog struct {
	info       pl2.AnalogChannelInfo
	fragTicks  []int64
	fragCounts []uint64
	values     []int16
}

type fakeSpike struct {
	info   pl2.SpikeChannelInfo
	ticks  []uint64
	units  []uint16
	values []int16
}

type fakeDigital struct {
	info   pl2.DigitalChannelInfo
	ticks  []int64
	values []uint16
}

var _ pl2.Driver = (*fakeDriver)(nil)

func (d *fakeDriver) OpenFile(path string) (pl2.Handle, bool) {
	if path != d.path {
		d.lastErr = "file not found: " + path
		return 0, false
	}
	if d.open == nil {
		d.open = make(map[pl2.Handle]bool)
	}
	d.next++
	d.open[d.next] = true
	return d.next, true
}

func (d *fakeDriver) CloseFile(h pl2.Handle) {
	delete(d.open, h)
}

func (d *fakeDriver) CloseAllFiles() {
	d.open = make(map[pl2.Handle]bool)
}

func (d *fakeDriver) LastError() string {
	return d.lastErr
}

func (d *fakeDriver) FileInfo(h pl2.Handle) (pl2.FileInfo, bool) {
	if !d.open[h] {
		d.lastErr = "invalid file handle"
		return pl2.FileInfo{}, false
	}
	return d.info, true
}

func (d *fakeDriver) AnalogChannelInfo(h pl2.Handle, index int) (pl2.AnalogChannelInfo, bool) {
	if !d.open[h] || index < 0 || index >= len(d.analog) {
		d.lastErr = "invalid analog channel index"
		return pl2.AnalogChannelInfo{}, false
	}
	return d.analog[index].info, true
}

func (d *fakeDriver) SpikeChannelInfo(h pl2.Handle, index int) (pl2.SpikeChannelInfo, bool) {
	if !d.open[h] || index < 0 || index >= len(d.spikes) {
		d.lastErr = "invalid spike channel index"
		return pl2.SpikeChannelInfo{}, false
	}
	return d.spikes[index].info, true
}

func (d *fakeDriver) DigitalChannelInfo(h pl2.Handle, index int) (pl2.DigitalChannelInfo, bool) {
	if !d.open[h] || index < 0 || index >= len(d.digital) {
		d.lastErr = "invalid digital channel index"
		return pl2.DigitalChannelInfo{}, false
	}
	return d.digital[index].info, true
}

func (d *fakeDriver) AnalogChannelData(h pl2.Handle, index int, raw *pl2.RawAnalogData) bool {
	if !d.open[h] || index < 0 || index >= len(d.analog) {
		d.lastErr = "invalid analog channel index"
		return false
	}
	ch := d.analog[index]
	copy(raw.FragmentTicks, ch.fragTicks)
	copy(raw.FragmentCounts, ch.fragCounts)
	copy(raw.Values, ch.values)
	raw.NumFragments = uint64(len(ch.fragTicks))
	raw.NumPoints = uint64(len(ch.values))
	if d.padFragments {
		raw.NumFragments = uint64(len(raw.FragmentTicks))
	}
	return true
}

func (d *fakeDriver) SpikeChannelData(h pl2.Handle, index int, raw *pl2.RawSpikeData) bool {
	if !d.open[h] || index < 0 || index >= len(d.spikes) {
		d.lastErr = "invalid spike channel index"
		return false
	}
	ch := d.spikes[index]
	copy(raw.Ticks, ch.ticks)
	copy(raw.Units, ch.units)
	copy(raw.Values, ch.values)
	raw.NumSpikes = uint64(len(ch.ticks))
	if d.overflowSpikes {
		raw.NumSpikes = ch.info.Spikes + 1
	}
	return true
}

func (d *fakeDriver) DigitalChannelData(h pl2.Handle, index int, raw *pl2.RawEventData) bool {
	if !d.open[h] || index < 0 || index >= len(d.digital) {
		d.lastErr = "invalid digital channel index"
		return false
	}
	ch := d.digital[index]
	copy(raw.Ticks, ch.ticks)
	copy(raw.Values, ch.values)
	raw.NumEvents = uint64(len(ch.ticks))
	return true
}

func (d *fakeDriver) StartStopChannelInfo(h pl2.Handle) (uint64, bool) {
	if !d.open[h] {
		d.lastErr = "invalid file handle"
		return 0, false
	}
	return uint64(len(d.ssTicks)), true
}

func (d *fakeDriver) StartStopChannelData(h pl2.Handle, raw *pl2.RawEventData) bool {
	if !d.open[h] {
		d.lastErr = "invalid file handle"
		return false
	}
	copy(raw.Ticks, d.ssTicks)
	copy(raw.Values, d.ssValues)
	raw.NumEvents = uint64(len(d.ssTicks))
	return true
}

// openCount reports how many handles are still open, for leak checks.
func (d *fakeDriver) openCount() int {
	return len(d.open)
}

const testFile = "testdata/session1.pl2"

// newTestDriver builds a synthetic recording: 40 kHz timestamp clock, three
// analog channels (one disabled), three spike channels (one disabled), two
// digital channels (one empty), and a start/stop pair.
func newTestDriver() *fakeDriver {
	wb01 := make([]int16, 100)
	for i := range wb01 {
		wb01[i] = int16(i + 1)
	}

	d := &fakeDriver{
		path: testFile,
		info: pl2.FileInfo{
			CreatorSoftwareName:    "OmniPlex",
			CreatorSoftwareVersion: "1.19.0",
			TimestampFrequency:     40000,
			TotalSpikeChannels:     3,
			RecordedSpikeChannels:  2,
			TotalAnalogChannels:    3,
			RecordedAnalogChannels: 2,
			DigitalChannels:        2,
			MinimumTrodality:       1,
			MaximumTrodality:       1,
			StartRecordingTick:     0,
			DurationTicks:          400000,
		},
	}

	d.analog = []fakeAnalog{
		{
			info: pl2.AnalogChannelInfo{
				Name: "WB01", Source: 3, Channel: 1,
				Enabled: true, RecordingEnabled: true,
				Units: "mV", SamplesPerSecond: 40000, Coeff: 0.001,
				SourceTrodality: 1, Trode: 1, ChannelInTrode: 1,
				Samples: 100, MaxFragments: 1,
			},
			fragTicks:  []int64{0},
			fragCounts: []uint64{100},
			values:     wb01,
		},
		{
			info: pl2.AnalogChannelInfo{
				Name: "FP01", Source: 4, Channel: 1,
				Enabled: true, RecordingEnabled: true,
				Units: "mV", SamplesPerSecond: 1000, Coeff: 0.002,
				SourceTrodality: 1, Trode: 1, ChannelInTrode: 1,
				Samples: 5, MaxFragments: 4,
			},
			fragTicks:  []int64{0, 8000},
			fragCounts: []uint64{3, 2},
			values:     []int16{10, 20, 30, -10, -20},
		},
		{
			info: pl2.AnalogChannelInfo{
				Name: "WB02", Source: 3, Channel: 2,
				Units: "mV", SamplesPerSecond: 40000, Coeff: 0.001,
				SourceTrodality: 1, Trode: 2, ChannelInTrode: 1,
			},
		},
	}

	spk01 := pl2.SpikeChannelInfo{
		Name: "SPK01", Source: 6, Channel: 1,
		Enabled: true, RecordingEnabled: true,
		Units: "mV", SamplesPerSecond: 40000, Coeff: 0.01,
		SamplesPerSpike: 3, Threshold: -40, PreThresholdSamples: 1,
		SortEnabled: true, SortedUnits: 1,
		SourceTrodality: 1, Trode: 1, ChannelInTrode: 1,
		Spikes: 2,
	}
	spk01.UnitCounts[0] = 1
	spk01.UnitCounts[1] = 1

	spk03 := pl2.SpikeChannelInfo{
		Name: "SPK03", Source: 7, Channel: 3,
		Enabled: true, RecordingEnabled: true,
		Units: "mV", SamplesPerSecond: 40000, Coeff: 0.01,
		SamplesPerSpike: 3, Threshold: -45,
		SortEnabled: true, SortedUnits: 1,
		SourceTrodality: 1, Trode: 3, ChannelInTrode: 1,
		Spikes: 1,
	}
	spk03.UnitCounts[1] = 1

	d.spikes = []fakeSpike{
		{
			info:   spk01,
			ticks:  []uint64{40000, 80000},
			units:  []uint16{0, 1},
			values: []int16{1, 2, 3, 4, 5, 6},
		},
		{
			info: pl2.SpikeChannelInfo{
				Name: "SPK02", Source: 6, Channel: 2,
				Units: "mV", SamplesPerSecond: 40000, Coeff: 0.01,
				SamplesPerSpike: 3,
				SourceTrodality: 1, Trode: 2, ChannelInTrode: 1,
			},
		},
		{
			info:   spk03,
			ticks:  []uint64{120000},
			units:  []uint16{1},
			values: []int16{7, 8, 9},
		},
	}

	d.digital = []fakeDigital{
		{
			info: pl2.DigitalChannelInfo{
				Name: "EVT01", Source: 10, Channel: 1,
				Enabled: true, RecordingEnabled: true,
				Events: 3,
			},
			ticks:  []int64{20000, 40000, 60000},
			values: []uint16{11, 22, 33},
		},
		{
			info: pl2.DigitalChannelInfo{
				Name: "EVT02", Source: 10, Channel: 2,
				Enabled: true, RecordingEnabled: true,
			},
		},
	}

	d.ssTicks = []int64{0, 400000}
	d.ssValues = []uint16{1, 2}

	return d
}
