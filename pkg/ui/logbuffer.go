// SPDX-License-Identifier: Apache-2.0
package ui

// LogBuffer is a bounded FIFO of display log lines. When full, appending
// evicts the oldest entry. The zero value is unusable; construct with
// NewLogBuffer.
type LogBuffer struct {
	lines []string
	cap   int
}

// NewLogBuffer creates a buffer holding at most capacity lines.
func NewLogBuffer(capacity int) *LogBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &LogBuffer{cap: capacity}
}

// Add appends a line, evicting the oldest when at capacity.
func (b *LogBuffer) Add(line string) {
	b.lines = append(b.lines, line)
	if len(b.lines) > b.cap {
		b.lines = b.lines[1:]
	}
}

// Lines returns the buffered lines, oldest first. The returned slice is a
// copy; callers may not mutate buffer state through it.
func (b *LogBuffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// Len returns the number of buffered lines.
func (b *LogBuffer) Len() int {
	return len(b.lines)
}
