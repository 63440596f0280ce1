// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package pl2

import "fmt"

// OpenError is returned when a PL2 file cannot be opened. Detail carries the
// native reader's last-error text when available.
type OpenError struct {
	Path   string
	Detail string
}

func (e *OpenError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("pl2: open %s: native reader reported failure", e.Path)
	}
	return fmt.Sprintf("pl2: open %s: %s", e.Path, e.Detail)
}

// ChannelNotFoundError is returned when a selector does not resolve to a
// channel of the requested kind.
type ChannelNotFoundError struct {
	Kind     ChannelKind
	Selector Selector
}

func (e *ChannelNotFoundError) Error() string {
	return fmt.Sprintf("pl2: %s channel %s not found", e.Kind, e.Selector)
}

// BufferOverflowError is returned when the native reader reports more items
// than the channel descriptor declared capacity for. It signals an
// inconsistency between the file metadata and the native library; results
// are never silently truncated.
type BufferOverflowError struct {
	Kind     ChannelKind
	Field    string // which count overflowed (fragments, samples, spikes, events)
	Capacity uint64
	Actual   uint64
}

func (e *BufferOverflowError) Error() string {
	return fmt.Sprintf("pl2: %s channel data: native reader returned %d %s, descriptor capacity is %d",
		e.Kind, e.Actual, e.Field, e.Capacity)
}

// ConversionError is returned when a descriptor or file summary is too
// malformed to scale values to physical units.
type ConversionError struct {
	Reason string
}

func (e *ConversionError) Error() string {
	return "pl2: " + e.Reason
}
