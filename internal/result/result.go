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

// Package result implements spec.md §4 component I: turning a terminal
// buffer.Iterator position into the user-visible "tail of source". Per the
// Design Notes' "Ranges subrange as return value" entry, an owning
// (contiguous) source materializes an owning tail, while a streaming
// source materializes a Prelude (already-buffered, not-yet-consumed bytes)
// grafted onto whatever the underlying reader has not produced yet.
package result

import (
	"bytes"
	"io"

	"github.com/scanfmt/scanfmt/internal/buffer"
)

// Tail is the unconsumed remainder of a scan's source.
type Tail struct {
	// Prelude is the portion of the tail scanfmt had already pulled into
	// its own buffer before the scan stopped.
	Prelude []byte
	// Reader, when non-nil, is the underlying stream scanfmt had not yet
	// read from; it continues exactly where Prelude leaves off.
	Reader io.Reader
}

// Materialize builds the Tail for buf at the position it stopped (either
// the end of a successful scan, or the failing field's start position).
func Materialize(buf buffer.Buffer, it buffer.Iterator) Tail {
	prelude := append([]byte(nil), buf.SegmentStartingAt(it.Pos())...)
	switch b := buf.(type) {
	case *buffer.FileBuffer:
		return Tail{Prelude: prelude, Reader: b.Handle()}
	case *buffer.StreamBuffer:
		return Tail{Prelude: prelude, Reader: b.UnderlyingReader()}
	default:
		return Tail{Prelude: prelude}
	}
}

// String returns the buffered prelude as a string. For a streaming tail
// this is only the portion scanfmt had already read, not the full
// remainder of the underlying reader; callers that need the full remainder
// should use AsReader.
func (t Tail) String() string { return string(t.Prelude) }

// Bytes returns the buffered prelude.
func (t Tail) Bytes() []byte { return t.Prelude }

// AsReader returns an io.Reader yielding Prelude followed by whatever
// remains unread on the underlying stream, or just Prelude for a
// contiguous (non-streaming) source.
func (t Tail) AsReader() io.Reader {
	if t.Reader == nil {
		return bytes.NewReader(t.Prelude)
	}
	return io.MultiReader(bytes.NewReader(t.Prelude), t.Reader)
}

// Empty reports whether the tail carries no buffered bytes and (for
// streaming tails) no further reader to drain.
func (t Tail) Empty() bool { return len(t.Prelude) == 0 && t.Reader == nil }
