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

import "io"

// FileBuffer is the file-backed scan buffer variant (spec.md §4.C, variant
// 4). It wraps an io.Reader-like handle; when it also exposes io.ByteScanner
// (UnreadByte), FileBuffer opportunistically pushes a single byte back onto
// the handle on Sync so a caller that stops reading entirely can resume from
// the handle itself instead of through scanfmt's tail value. Any rewind
// deeper than one byte falls back to StreamBuffer's own always-buffered
// storage, which is what actually backs every ByteAt/SegmentStartingAt call.
type FileBuffer struct {
	*StreamBuffer
	handle      io.Reader
	byteScanner io.ByteScanner
	pushedBack  bool
}

// NewFile builds a FileBuffer over handle, using a 4096-byte read chunk.
func NewFile(handle io.Reader) *FileBuffer {
	fb := &FileBuffer{StreamBuffer: NewStream(handle, 4096), handle: handle}
	fb.byteScanner, _ = handle.(io.ByteScanner)
	return fb
}

// Sync behaves like StreamBuffer.Sync (always succeeds, always-buffered),
// and additionally attempts the opportunistic one-byte unget described on
// FileBuffer when pos is exactly one byte behind what has been consumed and
// the handle supports it.
func (fb *FileBuffer) Sync(pos int) bool {
	if fb.byteScanner != nil && !fb.pushedBack && pos == fb.Buffered()-1 {
		if err := fb.byteScanner.UnreadByte(); err == nil {
			fb.pushedBack = true
		}
	}
	return fb.StreamBuffer.Sync(pos)
}

// Handle returns the original reader passed to NewFile.
func (fb *FileBuffer) Handle() io.Reader { return fb.handle }
