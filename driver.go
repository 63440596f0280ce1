// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package pl2

// Handle identifies one open file inside the native reader. It is owned by
// exactly one Session and is invalid after the session closes.
type Handle int32

// RawAnalogData receives the flat analog arrays filled by the native
// reader. The slices are allocated by the fetcher from descriptor capacity
// fields; the reader fills a prefix and reports the actual counts.
type RawAnalogData struct {
	NumFragments   uint64   // Actual number of fragments returned
	NumPoints      uint64   // Actual number of samples returned
	FragmentTicks  []int64  // Fragment start times in ticks, len MaxFragments
	FragmentCounts []uint64 // Samples per fragment, len MaxFragments
	Values         []int16  // Raw sample codes, len Samples
}

// RawSpikeData receives the flat spike arrays filled by the native reader.
type RawSpikeData struct {
	NumSpikes uint64   // Actual number of waveforms returned
	Ticks     []uint64 // Waveform timestamps in ticks, len Spikes
	Units     []uint16 // Sort unit per waveform, len Spikes
	Values    []int16  // Raw waveform codes, len Spikes*SamplesPerSpike
}

// RawEventData receives the flat event arrays filled by the native reader.
type RawEventData struct {
	NumEvents uint64   // Actual number of events returned
	Ticks     []int64  // Event timestamps in ticks, len Events
	Values    []uint16 // Strobed word per event, len Events
}

// Driver is the capability set of the native PL2 reader library. All calls
// are synchronous and blocking, and follow the native success convention: a
// false return means failure, with a description available from LastError.
//
// Channel access is by zero-based global index only; name and source
// addressing is layered on top by the session's resolver, so that all three
// addressing forms share a single ground-truth path.
//
// A Driver may serve multiple independently opened handles concurrently,
// but concurrent use of one handle is undefined.
type Driver interface {
	// OpenFile opens a PL2 file and returns a handle to it.
	OpenFile(path string) (Handle, bool)
	// CloseFile releases one handle. Calling it with an already released
	// handle is undefined; Session guards against it.
	CloseFile(h Handle)
	// CloseAllFiles releases every handle the native reader holds. It is a
	// process-wide administrative cleanup, not part of normal operation.
	CloseAllFiles()
	// LastError returns the native reader's description of the most recent
	// failure, or an empty string.
	LastError() string

	// FileInfo returns the file-level summary for an open handle.
	FileInfo(h Handle) (FileInfo, bool)

	// AnalogChannelInfo returns the descriptor of the analog channel at a
	// zero-based global index. The Index field is set by the caller.
	AnalogChannelInfo(h Handle, index int) (AnalogChannelInfo, bool)
	// SpikeChannelInfo returns the descriptor of the spike channel at a
	// zero-based global index.
	SpikeChannelInfo(h Handle, index int) (SpikeChannelInfo, bool)
	// DigitalChannelInfo returns the descriptor of the digital channel at a
	// zero-based global index.
	DigitalChannelInfo(h Handle, index int) (DigitalChannelInfo, bool)

	// AnalogChannelData fills raw with the analog channel's fragment and
	// sample arrays. The caller allocates the slices.
	AnalogChannelData(h Handle, index int, raw *RawAnalogData) bool
	// SpikeChannelData fills raw with the spike channel's timestamp, unit
	// and waveform arrays.
	SpikeChannelData(h Handle, index int, raw *RawSpikeData) bool
	// DigitalChannelData fills raw with the event channel's timestamp and
	// value arrays.
	DigitalChannelData(h Handle, index int, raw *RawEventData) bool

	// StartStopChannelInfo returns the number of recording start/stop
	// events in the file.
	StartStopChannelInfo(h Handle) (uint64, bool)
	// StartStopChannelData fills raw with the start/stop event arrays.
	StartStopChannelData(h Handle, raw *RawEventData) bool
}
