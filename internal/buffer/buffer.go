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

// Package buffer implements the scan buffer: a uniform forward-iterator view
// over contiguous strings and streaming sources (io.Reader / files), with a
// putback/sync protocol that lets scanners speculatively read and unread.
//
// The design follows spec.md §3/§4.C. One simplification from the original
// four source-kind variants is made deliberately: Go does not distinguish a
// multi-pass "forward range" from a single-pass "input range" the way the
// originating library's range abstraction does, so both collapse onto
// StreamBuffer (an io.Reader adapter); ContiguousBuffer remains the
// zero-copy variant for strings/[]byte, and FileBuffer is StreamBuffer
// wrapping an *os.File with OS-level putback used opportunistically. See
// DESIGN.md for the full rationale.
package buffer

// Buffer is the scan buffer contract every source-kind variant satisfies.
type Buffer interface {
	// Fill extends the buffered view by at least one code unit. It returns
	// false on EOF; on a recoverable source error it also returns false but
	// SourceError() becomes non-nil. Fill is a no-op (always returns false)
	// for contiguous buffers.
	Fill() bool

	// Sync signals that the caller will not rewind earlier than pos. It
	// returns false only if the underlying source cannot honor the request
	// (fatal to the current scan call).
	Sync(pos int) bool

	// SegmentStartingAt returns the bytes available starting at the logical
	// position pos, without triggering a Fill. Callers that need more data
	// than is currently available should Fill and retry.
	SegmentStartingAt(pos int) []byte

	// ByteAt returns the byte at logical position pos, filling as needed.
	// ok is false at EOF or on a source error.
	ByteAt(pos int) (b byte, ok bool)

	// IsContiguous reports whether the whole source is available as one
	// contiguous slice up front (true for ContiguousBuffer).
	IsContiguous() bool

	// Contiguous returns the whole source as one slice. Only valid when
	// IsContiguous() is true.
	Contiguous() []byte

	// Buffered returns the number of logical positions currently
	// dereferenceable, i.e. len(putback)+len(current view).
	Buffered() int

	// SourceError distinguishes a Fill() false return caused by an I/O
	// failure from one caused by ordinary EOF.
	SourceError() error

	// Begin returns an iterator positioned at the start of the buffer.
	Begin() Iterator
}

// Iterator is a position into a Buffer. Iterators are cheap value types;
// copying one and advancing the copy does not affect the original.
//
// Per spec.md's Design Notes and its first Open Question, Iterator exposes
// an explicit AtEnd (rather than overloading == against a sentinel with a
// hidden Fill side effect) and a fallible Advance, which is the spec's own
// suggested resolution for languages where equality-with-side-effects would
// be surprising.
type Iterator struct {
	buf Buffer
	pos int
}

// NewIterator builds an iterator over buf at logical position pos.
func NewIterator(buf Buffer, pos int) Iterator { return Iterator{buf: buf, pos: pos} }

// Pos returns the iterator's logical position.
func (it Iterator) Pos() int { return it.pos }

// Buffer returns the buffer this iterator walks.
func (it Iterator) Buffer() Buffer { return it.buf }

// AtEnd reports whether the iterator is at the end of the source, filling
// the buffer as needed to find out.
func (it Iterator) AtEnd() bool {
	if it.pos < it.buf.Buffered() {
		return false
	}
	for it.buf.Buffered() <= it.pos {
		if !it.buf.Fill() {
			return true
		}
	}
	return false
}

// Deref returns the byte at the iterator's current position. ok is false at
// EOF or on a source error.
func (it Iterator) Deref() (byte, bool) {
	return it.buf.ByteAt(it.pos)
}

// Advance returns a new iterator n bytes ahead of it. ok is false if fewer
// than n bytes are available (Fill is attempted as needed).
func (it Iterator) Advance(n int) (Iterator, bool) {
	target := it.pos + n
	for it.buf.Buffered() < target {
		if !it.buf.Fill() {
			return it, false
		}
	}
	return Iterator{buf: it.buf, pos: target}, true
}

// Sub returns the raw bytes between two iterators of the same buffer.
func Sub(from, to Iterator) []byte {
	seg := from.buf.SegmentStartingAt(from.pos)
	n := to.pos - from.pos
	if n < 0 || n > len(seg) {
		return seg
	}
	return seg[:n]
}
