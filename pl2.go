// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package pl2 provides typed, unit-converted access to multi-channel
// neurophysiology recordings stored in Plexon PL2 files. The binary
// container itself is parsed by the vendor's native reader library, reached
// through the Driver interface; this package resolves channels, sizes and
// fills raw buffers, converts digitizer codes and tick counts to volts and
// seconds, and reassembles flat arrays into per-fragment, per-spike, and
// per-event records.
package pl2

// Analog reads the full contents of one analog channel. The channel may be
// selected by global index, by name, or by source. The file is opened and
// closed within the call.
func (r *Reader) Analog(path string, sel Selector) (*AnalogRecord, error) {
	s, err := r.Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Analog(sel)
}

// Spikes reads the full contents of one spike channel. The file is opened
// and closed within the call.
func (r *Reader) Spikes(path string, sel Selector) (*SpikeRecord, error) {
	s, err := r.Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Spikes(sel)
}

// Events reads the full contents of one digital event channel. The file is
// opened and closed within the call.
func (r *Reader) Events(path string, sel Selector) (*EventRecord, error) {
	s, err := r.Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Events(sel)
}

// StartStop reads the recording start/stop event channel. The file is
// opened and closed within the call.
func (r *Reader) StartStop(path string) (*StartStopRecord, error) {
	s, err := r.Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.StartStop()
}

// Info reads the file summary: enabled spike channels with their per-unit
// waveform counts, event channels holding at least one event, and enabled
// analog channels with their sample counts. The file is opened and closed
// within the call.
func (r *Reader) Info(path string) (*Summary, error) {
	s, err := r.Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Summary()
}

// Analog reads one analog channel from the open session.
func (s *Session) Analog(sel Selector) (*AnalogRecord, error) {
	ci, err := s.AnalogChannel(sel)
	if err != nil {
		return nil, err
	}
	raw, err := s.fetchAnalog(ci)
	if err != nil {
		return nil, err
	}
	return assembleAnalog(ci, s.info, raw)
}

// Spikes reads one spike channel from the open session.
func (s *Session) Spikes(sel Selector) (*SpikeRecord, error) {
	ci, err := s.SpikeChannel(sel)
	if err != nil {
		return nil, err
	}
	raw, err := s.fetchSpikes(ci)
	if err != nil {
		return nil, err
	}
	return assembleSpikes(ci, s.info, raw)
}

// Events reads one digital event channel from the open session.
func (s *Session) Events(sel Selector) (*EventRecord, error) {
	ci, err := s.DigitalChannel(sel)
	if err != nil {
		return nil, err
	}
	raw, err := s.fetchEvents(ci)
	if err != nil {
		return nil, err
	}
	return assembleEvents(s.info, raw)
}

// StartStop reads the recording start/stop channel from the open session.
func (s *Session) StartStop() (*StartStopRecord, error) {
	raw, err := s.fetchStartStop()
	if err != nil {
		return nil, err
	}
	rec, err := assembleEvents(s.info, raw)
	if err != nil {
		return nil, err
	}
	return &StartStopRecord{Count: rec.Count, Timestamps: rec.Timestamps, Values: rec.Values}, nil
}

// Summary scans all channels of all three kinds once and collects the ones
// that carry data. Spike and analog channels are included when enabled,
// event channels when they hold at least one event.
func (s *Session) Summary() (*Summary, error) {
	sum := &Summary{}

	for i := 0; i < int(s.info.TotalSpikeChannels); i++ {
		ci, ok := s.drv.SpikeChannelInfo(s.handle, i)
		if !ok {
			return nil, s.nativeErr("read spike channel info")
		}
		if ci.Enabled {
			sum.Spikes = append(sum.Spikes, SpikeChannelSummary{
				Channel:    ci.Channel,
				Name:       ci.Name,
				UnitCounts: ci.UnitCounts,
			})
		}
	}

	for i := 0; i < int(s.info.DigitalChannels); i++ {
		ci, ok := s.drv.DigitalChannelInfo(s.handle, i)
		if !ok {
			return nil, s.nativeErr("read digital channel info")
		}
		if ci.Events > 0 {
			sum.Events = append(sum.Events, EventChannelSummary{
				Channel: ci.Channel,
				Name:    ci.Name,
				Count:   ci.Events,
			})
		}
	}

	for i := 0; i < int(s.info.TotalAnalogChannels); i++ {
		ci, ok := s.drv.AnalogChannelInfo(s.handle, i)
		if !ok {
			return nil, s.nativeErr("read analog channel info")
		}
		if ci.Enabled {
			sum.Analog = append(sum.Analog, AnalogChannelSummary{
				Channel: ci.Channel,
				Name:    ci.Name,
				Count:   ci.Samples,
			})
		}
	}

	return sum, nil
}
