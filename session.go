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

// Reader provides read-only access to PL2 files through a native reader
// driver. It is stateless; each query opens its own session.
type Reader struct {
	drv Driver
}

// NewReader returns a Reader backed by the given driver. The driver must
// not be nil; production code uses the binding in the native package.
func NewReader(drv Driver) *Reader {
	return &Reader{drv: drv}
}

// Open opens a PL2 file and fetches its file-level summary. The returned
// session owns the native handle until Close is called.
func (r *Reader) Open(path string) (*Session, error) {
	h, ok := r.drv.OpenFile(path)
	if !ok {
		return nil, &OpenError{Path: path, Detail: r.drv.LastError()}
	}

	info, ok := r.drv.FileInfo(h)
	if !ok {
		r.drv.CloseFile(h)
		return nil, &OpenError{Path: path, Detail: r.drv.LastError()}
	}

	return &Session{drv: r.drv, handle: h, info: info}, nil
}

// CloseAll releases every handle held by the native reader. It is a
// last-resort cleanup for abnormal termination; normal queries close their
// own handles.
func (r *Reader) CloseAll() {
	r.drv.CloseAllFiles()
}

// Session is one open PL2 file. It owns exactly one native handle and the
// cached file-level summary. A session must not be used concurrently.
type Session struct {
	drv    Driver
	handle Handle
	info   FileInfo
	closed bool
}

// FileInfo returns the summary fetched when the session was opened.
func (s *Session) FileInfo() FileInfo {
	return s.info
}

// Close releases the native handle. It is safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.drv.CloseFile(s.handle)
}

// nativeErr wraps a failed native call with the reader's last-error text.
func (s *Session) nativeErr(op string) error {
	if detail := s.drv.LastError(); detail != "" {
		return fmt.Errorf("pl2: %s: %s", op, detail)
	}
	return fmt.Errorf("pl2: %s: native reader reported failure", op)
}
