// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package pl2

// Channel resolution. All three selector forms terminate in the by-index
// driver call: an index selector is validated directly, while name and
// source selectors scan the channel catalog for a matching identity. This
// single path guarantees that equivalent selectors produce field-for-field
// identical descriptors, including the global index.

// AnalogChannel resolves an analog channel descriptor.
func (s *Session) AnalogChannel(sel Selector) (AnalogChannelInfo, error) {
	if sel.form == byIndex {
		ci, ok := s.drv.AnalogChannelInfo(s.handle, sel.index)
		if !ok {
			return AnalogChannelInfo{}, &ChannelNotFoundError{Kind: KindAnalog, Selector: sel}
		}
		ci.Index = sel.index
		return ci, nil
	}

	for i := 0; i < int(s.info.TotalAnalogChannels); i++ {
		ci, ok := s.drv.AnalogChannelInfo(s.handle, i)
		if !ok {
			continue
		}
		if sel.matches(ci.Name, ci.Source, ci.Channel) {
			ci.Index = i
			return ci, nil
		}
	}
	return AnalogChannelInfo{}, &ChannelNotFoundError{Kind: KindAnalog, Selector: sel}
}

// SpikeChannel resolves a spike channel descriptor.
func (s *Session) SpikeChannel(sel Selector) (SpikeChannelInfo, error) {
	if sel.form == byIndex {
		ci, ok := s.drv.SpikeChannelInfo(s.handle, sel.index)
		if !ok {
			return SpikeChannelInfo{}, &ChannelNotFoundError{Kind: KindSpike, Selector: sel}
		}
		ci.Index = sel.index
		return ci, nil
	}

	for i := 0; i < int(s.info.TotalSpikeChannels); i++ {
		ci, ok := s.drv.SpikeChannelInfo(s.handle, i)
		if !ok {
			continue
		}
		if sel.matches(ci.Name, ci.Source, ci.Channel) {
			ci.Index = i
			return ci, nil
		}
	}
	return SpikeChannelInfo{}, &ChannelNotFoundError{Kind: KindSpike, Selector: sel}
}

// DigitalChannel resolves a digital event channel descriptor.
func (s *Session) DigitalChannel(sel Selector) (DigitalChannelInfo, error) {
	if sel.form == byIndex {
		ci, ok := s.drv.DigitalChannelInfo(s.handle, sel.index)
		if !ok {
			return DigitalChannelInfo{}, &ChannelNotFoundError{Kind: KindDigital, Selector: sel}
		}
		ci.Index = sel.index
		return ci, nil
	}

	for i := 0; i < int(s.info.DigitalChannels); i++ {
		ci, ok := s.drv.DigitalChannelInfo(s.handle, i)
		if !ok {
			continue
		}
		if sel.matches(ci.Name, ci.Source, ci.Channel) {
			ci.Index = i
			return ci, nil
		}
	}
	return DigitalChannelInfo{}, &ChannelNotFoundError{Kind: KindDigital, Selector: sel}
}
