// Copyright 2026 The scanfmt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package buffer

import (
	"errors"
	"io"
)

// StreamBuffer is the non-contiguous scan buffer variant backed by an
// io.Reader. It stands in for spec.md's variants 2-4 (forward range,
// single-pass input range, file): Go's io.Reader does not distinguish a
// rewindable multi-pass range from a single-pass one, so both are served by
// the same implementation here; FileBuffer (file.go) is a thin wrapper that
// additionally tries the OS's one-byte ungetc-style putback before falling
// back to this buffer's own storage.
//
// Per spec.md's second Open Question ("refuse to consume more than the
// guaranteed one-character putback... or always buffer"), StreamBuffer
// always buffers: every byte it has ever read from src is kept in data for
// the lifetime of one scan call, so Sync never fails and no live iterator
// can be invalidated. This trades memory for simplicity and correctness.
type StreamBuffer struct {
	src       io.Reader
	data      []byte
	chunkSize int
	sourceErr error
	eof       bool
}

// NewStream builds a StreamBuffer reading from src in chunkSize-byte
// increments (a chunkSize <= 0 selects a 4096-byte default).
func NewStream(src io.Reader, chunkSize int) *StreamBuffer {
	if chunkSize <= 0 {
		chunkSize = 4096
	}
	return &StreamBuffer{src: src, chunkSize: chunkSize}
}

func (b *StreamBuffer) Fill() bool {
	if b.eof {
		return false
	}
	chunk := make([]byte, b.chunkSize)
	n, err := b.src.Read(chunk)
	if n > 0 {
		b.data = append(b.data, chunk[:n]...)
	}
	if err != nil {
		b.eof = true
		if !errors.Is(err, io.EOF) {
			b.sourceErr = err
		}
		return n > 0
	}
	return n > 0
}

// Sync always succeeds: see the "always buffer" note on StreamBuffer.
func (b *StreamBuffer) Sync(pos int) bool { return true }

func (b *StreamBuffer) SegmentStartingAt(pos int) []byte {
	if pos < 0 || pos > len(b.data) {
		return nil
	}
	return b.data[pos:]
}

func (b *StreamBuffer) ByteAt(pos int) (byte, bool) {
	for pos >= len(b.data) {
		if !b.Fill() {
			return 0, false
		}
	}
	if pos < 0 {
		return 0, false
	}
	return b.data[pos], true
}

func (b *StreamBuffer) IsContiguous() bool { return false }

func (b *StreamBuffer) Contiguous() []byte { return nil }

func (b *StreamBuffer) Buffered() int { return len(b.data) }

func (b *StreamBuffer) SourceError() error { return b.sourceErr }

func (b *StreamBuffer) Begin() Iterator { return NewIterator(b, 0) }

// Prelude returns the still-buffered-but-unconsumed bytes from pos onward.
// Callers materializing a "remaining source" tail for a single-pass source
// graft this prelude onto whatever remains unread in the underlying reader
// (see spec.md's glossary entry for "Prelude").
func (b *StreamBuffer) Prelude(pos int) []byte {
	return b.SegmentStartingAt(pos)
}

// UnderlyingReader returns the io.Reader this buffer pulls from, so a caller
// materializing a tail can keep reading past whatever this buffer already
// consumed.
func (b *StreamBuffer) UnderlyingReader() io.Reader { return b.src }
