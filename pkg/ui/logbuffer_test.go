// SPDX-License-Identifier: Apache-2.0
package ui

import (
	"fmt"
	"testing"
)

func TestLogBuffer_EvictsOldestFirst(t *testing.T) {
	buf := NewLogBuffer(10)

	for i := 0; i < 25; i++ {
		buf.Add(fmt.Sprintf("line %d", i))
	}

	lines := buf.Lines()
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	if lines[0] != "line 15" {
		t.Errorf("oldest retained line = %q, want line 15", lines[0])
	}
	if lines[9] != "line 24" {
		t.Errorf("newest line = %q, want line 24", lines[9])
	}
}

func TestLogBuffer_UnderCapacity(t *testing.T) {
	buf := NewLogBuffer(10)
	buf.Add("only one")

	if buf.Len() != 1 {
		t.Errorf("Len() = %d, want 1", buf.Len())
	}
	if buf.Lines()[0] != "only one" {
		t.Errorf("Lines()[0] = %q", buf.Lines()[0])
	}
}

func TestLogBuffer_LinesReturnsCopy(t *testing.T) {
	buf := NewLogBuffer(3)
	buf.Add("a")

	lines := buf.Lines()
	lines[0] = "mutated"

	if buf.Lines()[0] != "a" {
		t.Error("Lines() must return a copy")
	}
}
