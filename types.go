// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package pl2

import "time"

// MaxUnits is the number of sort-unit buckets tracked per spike channel.
// Bucket 0 counts unsorted waveforms, buckets 1 through 255 count sorted
// units A, B, C and so on.
const MaxUnits = 256

// ChannelKind identifies one of the three channel families stored in a
// PL2 file.
type ChannelKind int

const (
	KindAnalog  ChannelKind = iota // continuously sampled analog channels
	KindSpike                      // thresholded spike waveform channels
	KindDigital                    // digital event channels
)

// String returns the human-readable name of the channel kind.
func (k ChannelKind) String() string {
	switch k {
	case KindAnalog:
		return "analog"
	case KindSpike:
		return "spike"
	case KindDigital:
		return "digital"
	default:
		return "unknown"
	}
}

// FileInfo is the file-level summary recorded once per PL2 file.
type FileInfo struct {
	CreatorComment             string    // Free-form comment set by the recording software
	CreatorSoftwareName        string    // Name of the recording software
	CreatorSoftwareVersion     string    // Version of the recording software
	CreatorTime                time.Time // When the file was created
	ReprocessorComment         string    // Comment set by reprocessing software, if any
	ReprocessorSoftwareName    string    // Name of the reprocessing software, if any
	ReprocessorSoftwareVersion string    // Version of the reprocessing software, if any
	ReprocessorTime            time.Time // When the file was reprocessed, if ever
	TimestampFrequency         float64   // Ticks per second for all timestamps in the file
	TotalSpikeChannels         uint32    // Number of spike channel headers
	RecordedSpikeChannels      uint32    // Number of spike channels with recorded data
	TotalAnalogChannels        uint32    // Number of analog channel headers
	RecordedAnalogChannels     uint32    // Number of analog channels with recorded data
	DigitalChannels            uint32    // Number of digital event channels
	MinimumTrodality           uint32    // Smallest trodality among all sources
	MaximumTrodality           uint32    // Largest trodality among all sources
	NonOmniPlexSources         uint32    // Number of non-OmniPlex acquisition sources
	StartRecordingTick         uint64    // Recording start, in timestamp ticks
	DurationTicks              uint64    // Recording duration, in timestamp ticks
}

// RecordingStart returns the recording start time in seconds.
func (fi FileInfo) RecordingStart() float64 {
	return float64(fi.StartRecordingTick) / fi.TimestampFrequency
}

// RecordingDuration returns the recording duration in seconds.
func (fi FileInfo) RecordingDuration() float64 {
	return float64(fi.DurationTicks) / fi.TimestampFrequency
}

// AnalogChannelInfo describes one continuously sampled analog channel.
type AnalogChannelInfo struct {
	Name             string  // Channel name (e.g. WB01)
	Source           uint32  // Numeric id of the acquisition source
	Channel          uint32  // One-based channel number within the source
	Index            int     // Zero-based global channel index
	Enabled          bool    // Channel was enabled during acquisition
	RecordingEnabled bool    // Channel data was recorded
	Units            string  // Physical unit label (e.g. mV)
	SamplesPerSecond float64 // Digitization frequency
	Coeff            float64 // Raw code to physical unit conversion coefficient
	SourceTrodality  uint32  // Trodality of the owning source
	Trode            uint16  // One-based trode number
	ChannelInTrode   uint16  // One-based channel number within the trode
	Samples          uint64  // Total number of recorded samples
	MaxFragments     uint64  // Upper bound on the number of fragments
}

// SpikeChannelInfo describes one spike waveform channel.
type SpikeChannelInfo struct {
	Name                string           // Channel name (e.g. SPK01)
	Source              uint32           // Numeric id of the acquisition source
	Channel             uint32           // One-based channel number within the source
	Index               int              // Zero-based global channel index
	Enabled             bool             // Channel was enabled during acquisition
	RecordingEnabled    bool             // Channel data was recorded
	Units               string           // Physical unit label (e.g. mV)
	SamplesPerSecond    float64          // Digitization frequency
	Coeff               float64          // Raw code to physical unit conversion coefficient
	SamplesPerSpike     uint32           // Samples in each spike waveform
	Threshold           int32            // Detection threshold, in raw codes
	PreThresholdSamples uint32           // Samples captured before the threshold crossing
	SortEnabled         bool             // Spike sorting was enabled
	SortMethod          uint32           // Sorting method code
	SortedUnits         uint32           // Number of sorted units
	SortRangeStart      uint32           // First sample of the sort range
	SortRangeEnd        uint32           // Last sample of the sort range
	UnitCounts          [MaxUnits]uint64 // Waveform count per sort unit
	SourceTrodality     uint32           // Trodality of the owning source
	Trode               uint16           // One-based trode number
	ChannelInTrode      uint16           // One-based channel number within the trode
	Spikes              uint64           // Total number of recorded waveforms
}

// DigitalChannelInfo describes one digital event channel.
type DigitalChannelInfo struct {
	Name             string // Channel name (e.g. EVT01)
	Source           uint32 // Numeric id of the acquisition source
	Channel          uint32 // One-based channel number within the source
	Index            int    // Zero-based global channel index
	Enabled          bool   // Channel was enabled during acquisition
	RecordingEnabled bool   // Channel data was recorded
	Events           uint64 // Total number of recorded events
}

// Fragment is one contiguous run of continuously sampled analog values.
// A discontinuity in acquisition starts a new fragment.
type Fragment struct {
	Start float64 // Start time of the fragment, in seconds
	Count uint64  // Number of samples in the fragment
}

// AnalogRecord holds the full contents of one analog channel, converted to
// physical units.
type AnalogRecord struct {
	Frequency float64    // Digitization frequency of the channel
	Count     uint64     // Total number of samples across all fragments
	Fragments []Fragment // Fragments in recording order, zero-count padding removed
	Values    []float64  // All samples in volts, concatenated across fragments
}

// SpikeRecord holds the full contents of one spike channel, converted to
// physical units.
type SpikeRecord struct {
	Count      uint64      // Number of spike waveforms
	Timestamps []float64   // Waveform timestamps in seconds, in recording order
	Units      []uint16    // Sort unit per waveform (0 = unsorted, 1 = unit A, ...)
	Waveforms  [][]float64 // One row per spike, SamplesPerSpike values each, in volts
}

// EventRecord holds the full contents of one digital event channel.
type EventRecord struct {
	Count      uint64    // Number of events
	Timestamps []float64 // Event timestamps in seconds, in recording order
	Values     []uint16  // Strobed word per event; fixed sentinel on non-strobed channels
}

// StartStopRecord holds the recording start/stop event channel.
type StartStopRecord struct {
	Count      uint64    // Number of start/stop events
	Timestamps []float64 // Event timestamps in seconds
	Values     []uint16  // Event codes (start or stop)
}

// SpikeChannelSummary is one row of the spike section of a file summary.
type SpikeChannelSummary struct {
	Channel    uint32           // One-based channel number within its source
	Name       string           // Channel name
	UnitCounts [MaxUnits]uint64 // Waveform count per sort unit
}

// EventChannelSummary is one row of the event section of a file summary.
type EventChannelSummary struct {
	Channel uint32 // One-based channel number within its source
	Name    string // Channel name
	Count   uint64 // Number of events
}

// AnalogChannelSummary is one row of the analog section of a file summary.
type AnalogChannelSummary struct {
	Channel uint32 // One-based channel number within its source
	Name    string // Channel name
	Count   uint64 // Number of samples
}

// Summary enumerates the channels of a file that carry data: enabled spike
// channels, event channels with at least one event, and enabled analog
// channels.
type Summary struct {
	Spikes []SpikeChannelSummary
	Events []EventChannelSummary
	Analog []AnalogChannelSummary
}
