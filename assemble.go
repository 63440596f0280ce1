// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package pl2

// Record assembly. The raw arrays returned by the native reader are flat
// and padded to their declared capacity; assembly trims the structural
// padding, reshapes waveforms, and scales everything to physical units. No
// sorting, deduplication, or unit filtering happens here.

// assembleAnalog builds an AnalogRecord from raw fragment and sample
// arrays. Fragment entries with a zero sample count are structural padding
// and are dropped; a fragment legitimately starting at tick 0 survives
// because trimming keys on the count, not the timestamp.
func assembleAnalog(ci AnalogChannelInfo, info FileInfo, raw *RawAnalogData) (*AnalogRecord, error) {
	if err := checkTickFrequency(info.TimestampFrequency); err != nil {
		return nil, err
	}
	if ci.SamplesPerSecond <= 0 {
		return nil, &ConversionError{Reason: "analog channel " + ci.Name + " has no usable sampling frequency"}
	}

	var fragments []Fragment
	for i := uint64(0); i < raw.NumFragments; i++ {
		if raw.FragmentCounts[i] == 0 {
			continue
		}
		fragments = append(fragments, Fragment{
			Start: TicksToSeconds(raw.FragmentTicks[i], info.TimestampFrequency),
			Count: raw.FragmentCounts[i],
		})
	}

	return &AnalogRecord{
		Frequency: ci.SamplesPerSecond,
		Count:     raw.NumPoints,
		Fragments: fragments,
		Values:    SamplesToVolts(raw.Values[:raw.NumPoints], ci.Coeff),
	}, nil
}

// assembleSpikes builds a SpikeRecord from flat spike arrays. The value
// buffer is partitioned into NumSpikes contiguous rows of SamplesPerSpike
// codes each, preserving the native reader's ordering.
func assembleSpikes(ci SpikeChannelInfo, info FileInfo, raw *RawSpikeData) (*SpikeRecord, error) {
	if err := checkTickFrequency(info.TimestampFrequency); err != nil {
		return nil, err
	}

	n := raw.NumSpikes
	perSpike := uint64(ci.SamplesPerSpike)

	timestamps := make([]float64, n)
	for i := uint64(0); i < n; i++ {
		timestamps[i] = float64(raw.Ticks[i]) / info.TimestampFrequency
	}

	units := make([]uint16, n)
	copy(units, raw.Units[:n])

	flat := SamplesToVolts(raw.Values[:n*perSpike], ci.Coeff)
	waveforms := make([][]float64, n)
	for i := uint64(0); i < n; i++ {
		waveforms[i] = flat[i*perSpike : (i+1)*perSpike]
	}

	return &SpikeRecord{
		Count:      n,
		Timestamps: timestamps,
		Units:      units,
		Waveforms:  waveforms,
	}, nil
}

// assembleEvents builds an EventRecord from flat event arrays. Timestamps
// are scaled to seconds; values are logical codes and pass through
// unconverted.
func assembleEvents(info FileInfo, raw *RawEventData) (*EventRecord, error) {
	if err := checkTickFrequency(info.TimestampFrequency); err != nil {
		return nil, err
	}

	n := raw.NumEvents
	timestamps := make([]float64, n)
	for i := uint64(0); i < n; i++ {
		timestamps[i] = TicksToSeconds(raw.Ticks[i], info.TimestampFrequency)
	}

	values := make([]uint16, n)
	copy(values, raw.Values[:n])

	return &EventRecord{
		Count:      n,
		Timestamps: timestamps,
		Values:     values,
	}, nil
}
