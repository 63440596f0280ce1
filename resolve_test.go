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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenPSG/pl2"
)

// The three addressing forms must resolve the same physical channel to a
// field-for-field identical descriptor, for every channel of every kind.
func TestResolveEquivalence(t *testing.T) {
	drv := newTestDriver()
	r := pl2.NewReader(drv)

	s, err := r.Open(testFile)
	require.NoError(t, err)
	defer s.Close()

	t.Run("analog", func(t *testing.T) {
		for i := 0; i < int(s.FileInfo().TotalAnalogChannels); i++ {
			byIndex, err := s.AnalogChannel(pl2.ByIndex(i))
			require.NoError(t, err)

			byName, err := s.AnalogChannel(pl2.ByName(byIndex.Name))
			require.NoError(t, err)
			assert.Equal(t, byIndex, byName)

			bySource, err := s.AnalogChannel(pl2.BySource(int(byIndex.Source), int(byIndex.Channel)))
			require.NoError(t, err)
			assert.Equal(t, byIndex, bySource)
		}
	})

	t.Run("spike", func(t *testing.T) {
		for i := 0; i < int(s.FileInfo().TotalSpikeChannels); i++ {
			byIndex, err := s.SpikeChannel(pl2.ByIndex(i))
			require.NoError(t, err)

			byName, err := s.SpikeChannel(pl2.ByName(byIndex.Name))
			require.NoError(t, err)
			assert.Equal(t, byIndex, byName)

			bySource, err := s.SpikeChannel(pl2.BySource(int(byIndex.Source), int(byIndex.Channel)))
			require.NoError(t, err)
			assert.Equal(t, byIndex, bySource)
		}
	})

	t.Run("digital", func(t *testing.T) {
		for i := 0; i < int(s.FileInfo().DigitalChannels); i++ {
			byIndex, err := s.DigitalChannel(pl2.ByIndex(i))
			require.NoError(t, err)

			byName, err := s.DigitalChannel(pl2.ByName(byIndex.Name))
			require.NoError(t, err)
			assert.Equal(t, byIndex, byName)

			bySource, err := s.DigitalChannel(pl2.BySource(int(byIndex.Source), int(byIndex.Channel)))
			require.NoError(t, err)
			assert.Equal(t, byIndex, bySource)
		}
	})
}

func TestResolveSpikeChannelIdentity(t *testing.T) {
	drv := newTestDriver()
	r := pl2.NewReader(drv)

	s, err := r.Open(testFile)
	require.NoError(t, err)
	defer s.Close()

	byName, err := s.SpikeChannel(pl2.ByName("SPK03"))
	require.NoError(t, err)
	byIndex, err := s.SpikeChannel(pl2.ByIndex(2))
	require.NoError(t, err)
	bySource, err := s.SpikeChannel(pl2.BySource(7, 3))
	require.NoError(t, err)

	assert.Equal(t, byIndex.Channel, byName.Channel)
	assert.Equal(t, byIndex.UnitCounts, byName.UnitCounts)
	assert.Equal(t, byIndex.Channel, bySource.Channel)
	assert.Equal(t, byIndex.UnitCounts, bySource.UnitCounts)
	assert.Equal(t, 2, byName.Index)
}

func TestResolveNotFound(t *testing.T) {
	drv := newTestDriver()
	r := pl2.NewReader(drv)

	s, err := r.Open(testFile)
	require.NoError(t, err)
	defer s.Close()

	for _, sel := range []pl2.Selector{
		pl2.ByName("DoesNotExist"),
		pl2.ByIndex(99),
		pl2.BySource(99, 1),
	} {
		_, err := s.AnalogChannel(sel)
		var notFound *pl2.ChannelNotFoundError
		require.ErrorAs(t, err, &notFound, "selector %s", sel)
		assert.Equal(t, pl2.KindAnalog, notFound.Kind)

		_, err = s.SpikeChannel(sel)
		require.ErrorAs(t, err, &notFound, "selector %s", sel)

		_, err = s.DigitalChannel(sel)
		require.ErrorAs(t, err, &notFound, "selector %s", sel)
	}
}

// A failed query must not leak its file handle.
func TestNotFoundLeavesNoOpenHandle(t *testing.T) {
	drv := newTestDriver()
	r := pl2.NewReader(drv)

	_, err := r.Spikes(testFile, pl2.ByName("DoesNotExist"))
	var notFound *pl2.ChannelNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, 0, drv.openCount())
}

// Name matching is exact and case-sensitive.
func TestResolveNameCaseSensitive(t *testing.T) {
	drv := newTestDriver()
	r := pl2.NewReader(drv)

	s, err := r.Open(testFile)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.AnalogChannel(pl2.ByName("wb01"))
	var notFound *pl2.ChannelNotFoundError
	require.ErrorAs(t, err, &notFound)
}
