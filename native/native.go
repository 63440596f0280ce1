// SPDX-License-Identifier: MPL-2.0
/*
 * Copyright (C) 2024 Damian Peckett <damian@pecke.tt>.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

// Package native binds the vendor PL2 reader shared library (Plexon's
// PL2FileReader, shipped with the C++ PL2 Offline Files SDK) and exposes it
// as a pl2.Driver. All entry points are bound once when the library is
// loaded; calls are synchronous foreign calls with no suspension points.
package native

import (
	"bytes"
	"fmt"
	"time"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/OpenPSG/pl2"
)

// ctm mirrors the C struct tm used in the vendor headers.
type ctm struct {
	Sec   int32
	Min   int32
	Hour  int32
	Mday  int32
	Mon   int32
	Year  int32
	Wday  int32
	Yday  int32
	Isdst int32
}

// cFileInfo mirrors PL2FileInfo. Field order and widths must match the
// vendor header exactly.
type cFileInfo struct {
	CreatorComment                  [256]byte
	CreatorSoftwareName             [64]byte
	CreatorSoftwareVersion          [16]byte
	CreatorDateTime                 ctm
	CreatorDateTimeMilliseconds     int32
	TimestampFrequency              float64
	NumberOfChannelHeaders          uint32
	TotalNumberOfSpikeChannels      uint32
	NumberOfRecordedSpikeChannels   uint32
	TotalNumberOfAnalogChannels     uint32
	NumberOfRecordedAnalogChannels  uint32
	NumberOfDigitalChannels         uint32
	MinimumTrodality                uint32
	MaximumTrodality                uint32
	NumberOfNonOmniPlexSources      uint32
	Unused                          int32
	ReprocessorComment              [256]byte
	ReprocessorSoftwareName         [64]byte
	ReprocessorSoftwareVersion      [16]byte
	ReprocessorDateTime             ctm
	ReprocessorDateTimeMilliseconds int32
	StartRecordingTime              uint64
	DurationOfRecording             uint64
}

// cAnalogChannelInfo mirrors PL2AnalogChannelInfo.
type cAnalogChannelInfo struct {
	Name                     [64]byte
	Source                   uint32
	Channel                  uint32
	ChannelEnabled           uint32
	ChannelRecordingEnabled  uint32
	Units                    [16]byte
	SamplesPerSecond         float64
	CoeffToConvertToUnits    float64
	SourceTrodality          uint32
	OneBasedTrode            uint16
	OneBasedChannelInTrode   uint16
	NumberOfValues           uint64
	MaximumNumberOfFragments uint64
}

// cSpikeChannelInfo mirrors PL2SpikeChannelInfo.
type cSpikeChannelInfo struct {
	Name                    [64]byte
	Source                  uint32
	Channel                 uint32
	ChannelEnabled          uint32
	ChannelRecordingEnabled uint32
	Units                   [16]byte
	SamplesPerSecond        float64
	CoeffToConvertToUnits   float64
	SamplesPerSpike         uint32
	Threshold               int32
	PreThresholdSamples     uint32
	SortEnabled             uint32
	SortMethod              uint32
	NumberOfUnits           uint32
	SortRangeStart          uint32
	SortRangeEnd            uint32
	UnitCounts              [256]uint64
	SourceTrodality         uint32
	OneBasedTrode           uint16
	OneBasedChannelInTrode  uint16
	NumberOfSpikes          uint64
}

// cDigitalChannelInfo mirrors PL2DigitalChannelInfo.
type cDigitalChannelInfo struct {
	Name                    [64]byte
	Source                  uint32
	Channel                 uint32
	ChannelEnabled          uint32
	ChannelRecordingEnabled uint32
	NumberOfEvents          uint64
}

// Driver is a pl2.Driver backed by the vendor shared library.
type Driver struct {
	openFile         func(path string, handle unsafe.Pointer) int32
	closeFile        func(handle int32)
	closeAllFiles    func()
	getLastError     func(buf unsafe.Pointer, size int32) int32
	getFileInfo      func(handle int32, info unsafe.Pointer) int32
	getAnalogInfo    func(handle, index int32, info unsafe.Pointer) int32
	getSpikeInfo     func(handle, index int32, info unsafe.Pointer) int32
	getDigitalInfo   func(handle, index int32, info unsafe.Pointer) int32
	getAnalogData    func(handle, index int32, numFragments, numPoints, fragmentTicks, fragmentCounts, values unsafe.Pointer) int32
	getSpikeData     func(handle, index int32, numSpikes, ticks, units, values unsafe.Pointer) int32
	getDigitalData   func(handle, index int32, numEvents, ticks, values unsafe.Pointer) int32
	getStartStopInfo func(handle int32, numEvents unsafe.Pointer) int32
	getStartStopData func(handle int32, numEvents, ticks, values unsafe.Pointer) int32
}

var _ pl2.Driver = (*Driver)(nil)

// Open loads the vendor shared library at the given path and binds every
// entry point the driver needs.
func Open(libraryPath string) (*Driver, error) {
	lib, err := loadLibrary(libraryPath)
	if err != nil {
		return nil, fmt.Errorf("load PL2 reader library %s: %w", libraryPath, err)
	}

	d := &Driver{}
	purego.RegisterLibFunc(&d.openFile, lib, "PL2_OpenFile")
	purego.RegisterLibFunc(&d.closeFile, lib, "PL2_CloseFile")
	purego.RegisterLibFunc(&d.closeAllFiles, lib, "PL2_CloseAllFiles")
	purego.RegisterLibFunc(&d.getLastError, lib, "PL2_GetLastError")
	purego.RegisterLibFunc(&d.getFileInfo, lib, "PL2_GetFileInfo")
	purego.RegisterLibFunc(&d.getAnalogInfo, lib, "PL2_GetAnalogChannelInfo")
	purego.RegisterLibFunc(&d.getSpikeInfo, lib, "PL2_GetSpikeChannelInfo")
	purego.RegisterLibFunc(&d.getDigitalInfo, lib, "PL2_GetDigitalChannelInfo")
	purego.RegisterLibFunc(&d.getAnalogData, lib, "PL2_GetAnalogChannelData")
	purego.RegisterLibFunc(&d.getSpikeData, lib, "PL2_GetSpikeChannelData")
	purego.RegisterLibFunc(&d.getDigitalData, lib, "PL2_GetDigitalChannelData")
	purego.RegisterLibFunc(&d.getStartStopInfo, lib, "PL2_GetStartStopChannelInfo")
	purego.RegisterLibFunc(&d.getStartStopData, lib, "PL2_GetStartStopChannelData")
	return d, nil
}

// OpenFile opens a PL2 file and returns its native handle.
func (d *Driver) OpenFile(path string) (pl2.Handle, bool) {
	var h int32
	res := d.openFile(path, unsafe.Pointer(&h))
	return pl2.Handle(h), res != 0 && h > 0
}

// CloseFile releases one native handle.
func (d *Driver) CloseFile(h pl2.Handle) {
	d.closeFile(int32(h))
}

// CloseAllFiles releases every handle the native reader holds.
func (d *Driver) CloseAllFiles() {
	d.closeAllFiles()
}

// LastError returns the native reader's description of the most recent
// failure.
func (d *Driver) LastError() string {
	buf := make([]byte, 256)
	if d.getLastError(unsafe.Pointer(&buf[0]), int32(len(buf))) == 0 {
		return ""
	}
	return cstring(buf[:])
}

// FileInfo fetches and converts the file-level summary.
func (d *Driver) FileInfo(h pl2.Handle) (pl2.FileInfo, bool) {
	var ci cFileInfo
	if d.getFileInfo(int32(h), unsafe.Pointer(&ci)) == 0 {
		return pl2.FileInfo{}, false
	}
	return pl2.FileInfo{
		CreatorComment:             cstring(ci.CreatorComment[:]),
		CreatorSoftwareName:        cstring(ci.CreatorSoftwareName[:]),
		CreatorSoftwareVersion:     cstring(ci.CreatorSoftwareVersion[:]),
		CreatorTime:                tmToTime(ci.CreatorDateTime, ci.CreatorDateTimeMilliseconds),
		ReprocessorComment:         cstring(ci.ReprocessorComment[:]),
		ReprocessorSoftwareName:    cstring(ci.ReprocessorSoftwareName[:]),
		ReprocessorSoftwareVersion: cstring(ci.ReprocessorSoftwareVersion[:]),
		ReprocessorTime:            tmToTime(ci.ReprocessorDateTime, ci.ReprocessorDateTimeMilliseconds),
		TimestampFrequency:         ci.TimestampFrequency,
		TotalSpikeChannels:         ci.TotalNumberOfSpikeChannels,
		RecordedSpikeChannels:      ci.NumberOfRecordedSpikeChannels,
		TotalAnalogChannels:        ci.TotalNumberOfAnalogChannels,
		RecordedAnalogChannels:     ci.NumberOfRecordedAnalogChannels,
		DigitalChannels:            ci.NumberOfDigitalChannels,
		MinimumTrodality:           ci.MinimumTrodality,
		MaximumTrodality:           ci.MaximumTrodality,
		NonOmniPlexSources:         ci.NumberOfNonOmniPlexSources,
		StartRecordingTick:         ci.StartRecordingTime,
		DurationTicks:              ci.DurationOfRecording,
	}, true
}

// AnalogChannelInfo fetches and converts one analog channel descriptor.
func (d *Driver) AnalogChannelInfo(h pl2.Handle, index int) (pl2.AnalogChannelInfo, bool) {
	var ci cAnalogChannelInfo
	if d.getAnalogInfo(int32(h), int32(index), unsafe.Pointer(&ci)) == 0 {
		return pl2.AnalogChannelInfo{}, false
	}
	return pl2.AnalogChannelInfo{
		Name:             cstring(ci.Name[:]),
		Source:           ci.Source,
		Channel:          ci.Channel,
		Enabled:          ci.ChannelEnabled != 0,
		RecordingEnabled: ci.ChannelRecordingEnabled != 0,
		Units:            cstring(ci.Units[:]),
		SamplesPerSecond: ci.SamplesPerSecond,
		Coeff:            ci.CoeffToConvertToUnits,
		SourceTrodality:  ci.SourceTrodality,
		Trode:            ci.OneBasedTrode,
		ChannelInTrode:   ci.OneBasedChannelInTrode,
		Samples:          ci.NumberOfValues,
		MaxFragments:     ci.MaximumNumberOfFragments,
	}, true
}

// SpikeChannelInfo fetches and converts one spike channel descriptor.
func (d *Driver) SpikeChannelInfo(h pl2.Handle, index int) (pl2.SpikeChannelInfo, bool) {
	var ci cSpikeChannelInfo
	if d.getSpikeInfo(int32(h), int32(index), unsafe.Pointer(&ci)) == 0 {
		return pl2.SpikeChannelInfo{}, false
	}
	return pl2.SpikeChannelInfo{
		Name:                cstring(ci.Name[:]),
		Source:              ci.Source,
		Channel:             ci.Channel,
		Enabled:             ci.ChannelEnabled != 0,
		RecordingEnabled:    ci.ChannelRecordingEnabled != 0,
		Units:               cstring(ci.Units[:]),
		SamplesPerSecond:    ci.SamplesPerSecond,
		Coeff:               ci.CoeffToConvertToUnits,
		SamplesPerSpike:     ci.SamplesPerSpike,
		Threshold:           ci.Threshold,
		PreThresholdSamples: ci.PreThresholdSamples,
		SortEnabled:         ci.SortEnabled != 0,
		SortMethod:          ci.SortMethod,
		SortedUnits:         ci.NumberOfUnits,
		SortRangeStart:      ci.SortRangeStart,
		SortRangeEnd:        ci.SortRangeEnd,
		UnitCounts:          ci.UnitCounts,
		SourceTrodality:     ci.SourceTrodality,
		Trode:               ci.OneBasedTrode,
		ChannelInTrode:      ci.OneBasedChannelInTrode,
		Spikes:              ci.NumberOfSpikes,
	}, true
}

// DigitalChannelInfo fetches and converts one digital channel descriptor.
func (d *Driver) DigitalChannelInfo(h pl2.Handle, index int) (pl2.DigitalChannelInfo, bool) {
	var ci cDigitalChannelInfo
	if d.getDigitalInfo(int32(h), int32(index), unsafe.Pointer(&ci)) == 0 {
		return pl2.DigitalChannelInfo{}, false
	}
	return pl2.DigitalChannelInfo{
		Name:             cstring(ci.Name[:]),
		Source:           ci.Source,
		Channel:          ci.Channel,
		Enabled:          ci.ChannelEnabled != 0,
		RecordingEnabled: ci.ChannelRecordingEnabled != 0,
		Events:           ci.NumberOfEvents,
	}, true
}

// AnalogChannelData fills the caller-allocated raw buffers.
func (d *Driver) AnalogChannelData(h pl2.Handle, index int, raw *pl2.RawAnalogData) bool {
	return d.getAnalogData(int32(h), int32(index),
		unsafe.Pointer(&raw.NumFragments),
		unsafe.Pointer(&raw.NumPoints),
		slicePtr(raw.FragmentTicks),
		slicePtr(raw.FragmentCounts),
		slicePtr(raw.Values)) != 0
}

// SpikeChannelData fills the caller-allocated raw buffers.
func (d *Driver) SpikeChannelData(h pl2.Handle, index int, raw *pl2.RawSpikeData) bool {
	return d.getSpikeData(int32(h), int32(index),
		unsafe.Pointer(&raw.NumSpikes),
		slicePtr(raw.Ticks),
		slicePtr(raw.Units),
		slicePtr(raw.Values)) != 0
}

// DigitalChannelData fills the caller-allocated raw buffers.
func (d *Driver) DigitalChannelData(h pl2.Handle, index int, raw *pl2.RawEventData) bool {
	return d.getDigitalData(int32(h), int32(index),
		unsafe.Pointer(&raw.NumEvents),
		slicePtr(raw.Ticks),
		slicePtr(raw.Values)) != 0
}

// StartStopChannelInfo returns the number of start/stop events.
func (d *Driver) StartStopChannelInfo(h pl2.Handle) (uint64, bool) {
	var n uint64
	if d.getStartStopInfo(int32(h), unsafe.Pointer(&n)) == 0 {
		return 0, false
	}
	return n, true
}

// StartStopChannelData fills the caller-allocated raw buffers.
func (d *Driver) StartStopChannelData(h pl2.Handle, raw *pl2.RawEventData) bool {
	return d.getStartStopData(int32(h),
		unsafe.Pointer(&raw.NumEvents),
		slicePtr(raw.Ticks),
		slicePtr(raw.Values)) != 0
}

// slicePtr returns a pointer to the first element of s, or nil for an
// empty slice (a zero-capacity channel has nothing for the native side to
// write).
func slicePtr[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

// cstring returns the bytes before the first NUL as a string. Names on the
// wire are fixed-width ASCII, null-terminated.
func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// tmToTime converts a C struct tm plus milliseconds to a time.Time.
func tmToTime(t ctm, ms int32) time.Time {
	if t.Year == 0 && t.Mon == 0 && t.Mday == 0 {
		return time.Time{}
	}
	return time.Date(int(t.Year)+1900, time.Month(t.Mon+1), int(t.Mday),
		int(t.Hour), int(t.Min), int(t.Sec), int(ms)*int(time.Millisecond), time.UTC)
}
