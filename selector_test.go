// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package pl2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/OpenPSG/pl2"
)

func TestSelectorString(t *testing.T) {
	assert.Equal(t, "index 3", pl2.ByIndex(3).String())
	assert.Equal(t, `"SPK01"`, pl2.ByName("SPK01").String())
	assert.Equal(t, "source 7 channel 3", pl2.BySource(7, 3).String())
}

func TestChannelNotFoundErrorMessage(t *testing.T) {
	err := &pl2.ChannelNotFoundError{Kind: pl2.KindSpike, Selector: pl2.ByName("DoesNotExist")}
	assert.Equal(t, `pl2: spike channel "DoesNotExist" not found`, err.Error())
}
