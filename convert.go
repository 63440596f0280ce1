// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package pl2

// SampleToVolts converts one raw digitizer code to volts using the
// channel's conversion coefficient.
func SampleToVolts(raw int16, coeff float64) float64 {
	return float64(raw) * coeff
}

// SamplesToVolts converts a sequence of raw digitizer codes to volts.
func SamplesToVolts(raw []int16, coeff float64) []float64 {
	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = float64(v) * coeff
	}
	return out
}

// TicksToSeconds converts a timestamp tick count to seconds using the
// file's timestamp frequency.
func TicksToSeconds(tick int64, frequency float64) float64 {
	return float64(tick) / frequency
}

// checkTickFrequency rejects summaries that cannot scale timestamps.
func checkTickFrequency(frequency float64) error {
	if frequency <= 0 {
		return &ConversionError{Reason: "file summary has no usable timestamp frequency"}
	}
	return nil
}
