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

package scanfmt

import (
	"fmt"
	"os"
	"sync"
)

// stdinMu serializes every Input/Prompt call against every other one, per
// spec.md §5 "Shared state": "a single global scan-file object guarded by a
// mutex... guarantees that a stdin read-then-putback sequence is atomic
// w.r.t. other input() callers."
var stdinMu sync.Mutex

// Input reads from os.Stdin under format, serialized against concurrent
// Input/Prompt callers.
func Input(format string, dests ...any) (Result, error) {
	stdinMu.Lock()
	defer stdinMu.Unlock()
	return Scan(os.Stdin, format, dests...)
}

// Prompt writes msg to stdout, flushes it, then behaves exactly like Input.
func Prompt(msg, format string, dests ...any) (Result, error) {
	fmt.Print(msg)
	return Input(format, dests...)
}
