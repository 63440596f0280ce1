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

type selectorForm int

const (
	byIndex selectorForm = iota
	byName
	bySource
)

// Selector addresses one channel of a given kind. The three forms are
// equivalent: resolving the same physical channel by index, by name, or by
// source yields identical descriptors.
type Selector struct {
	form    selectorForm
	index   int
	name    string
	source  uint32
	channel uint32
}

// ByIndex selects a channel by its zero-based global index.
func ByIndex(index int) Selector {
	return Selector{form: byIndex, index: index}
}

// ByName selects a channel by its name. Matching is exact and
// case-sensitive.
func ByName(name string) Selector {
	return Selector{form: byName, name: name}
}

// BySource selects a channel by its acquisition source id and its one-based
// channel number within that source.
func BySource(source, channel int) Selector {
	return Selector{form: bySource, source: uint32(source), channel: uint32(channel)}
}

// String describes the selector for error messages.
func (sel Selector) String() string {
	switch sel.form {
	case byIndex:
		return fmt.Sprintf("index %d", sel.index)
	case byName:
		return fmt.Sprintf("%q", sel.name)
	case bySource:
		return fmt.Sprintf("source %d channel %d", sel.source, sel.channel)
	default:
		return "invalid selector"
	}
}

// matches reports whether a channel with the given identity satisfies a
// name or source selector.
func (sel Selector) matches(name string, source, channel uint32) bool {
	switch sel.form {
	case byName:
		return sel.name == name
	case bySource:
		return sel.source == source && sel.channel == channel
	default:
		return false
	}
}
