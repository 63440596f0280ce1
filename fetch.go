// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package pl2

// Raw data fetching. Buffer sizes are derived strictly from descriptor
// capacity fields; the native reader fills a prefix and reports actual
// counts. An actual count above the declared capacity means the file
// metadata and the native library disagree, which is never truncated away.

func (s *Session) fetchAnalog(ci AnalogChannelInfo) (*RawAnalogData, error) {
	raw := &RawAnalogData{
		FragmentTicks:  make([]int64, ci.MaxFragments),
		FragmentCounts: make([]uint64, ci.MaxFragments),
		Values:         make([]int16, ci.Samples),
	}
	if !s.drv.AnalogChannelData(s.handle, ci.Index, raw) {
		return nil, s.nativeErr("read analog channel data")
	}
	if raw.NumFragments > ci.MaxFragments {
		return nil, &BufferOverflowError{Kind: KindAnalog, Field: "fragments", Capacity: ci.MaxFragments, Actual: raw.NumFragments}
	}
	if raw.NumPoints > ci.Samples {
		return nil, &BufferOverflowError{Kind: KindAnalog, Field: "samples", Capacity: ci.Samples, Actual: raw.NumPoints}
	}
	return raw, nil
}

func (s *Session) fetchSpikes(ci SpikeChannelInfo) (*RawSpikeData, error) {
	raw := &RawSpikeData{
		Ticks:  make([]uint64, ci.Spikes),
		Units:  make([]uint16, ci.Spikes),
		Values: make([]int16, ci.Spikes*uint64(ci.SamplesPerSpike)),
	}
	if !s.drv.SpikeChannelData(s.handle, ci.Index, raw) {
		return nil, s.nativeErr("read spike channel data")
	}
	if raw.NumSpikes > ci.Spikes {
		return nil, &BufferOverflowError{Kind: KindSpike, Field: "spikes", Capacity: ci.Spikes, Actual: raw.NumSpikes}
	}
	return raw, nil
}

func (s *Session) fetchEvents(ci DigitalChannelInfo) (*RawEventData, error) {
	raw := &RawEventData{
		Ticks:  make([]int64, ci.Events),
		Values: make([]uint16, ci.Events),
	}
	if !s.drv.DigitalChannelData(s.handle, ci.Index, raw) {
		return nil, s.nativeErr("read digital channel data")
	}
	if raw.NumEvents > ci.Events {
		return nil, &BufferOverflowError{Kind: KindDigital, Field: "events", Capacity: ci.Events, Actual: raw.NumEvents}
	}
	return raw, nil
}

func (s *Session) fetchStartStop() (*RawEventData, error) {
	count, ok := s.drv.StartStopChannelInfo(s.handle)
	if !ok {
		return nil, s.nativeErr("read start/stop channel info")
	}
	raw := &RawEventData{
		Ticks:  make([]int64, count),
		Values: make([]uint16, count),
	}
	if !s.drv.StartStopChannelData(s.handle, raw) {
		return nil, s.nativeErr("read start/stop channel data")
	}
	if raw.NumEvents > count {
		return nil, &BufferOverflowError{Kind: KindDigital, Field: "events", Capacity: count, Actual: raw.NumEvents}
	}
	return raw, nil
}
