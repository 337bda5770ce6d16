// Package testutil holds helpers shared by the chess package tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/donessie94/terminalChessAI/internal/chess"
)

// byFromTo sorts moves by source square, then destination.
var byFromTo = cmpopts.SortSlices(func(a, b chess.Move) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	return a.To < b.To
})

// AssertEqual reports a cmp diff when got differs from want. An optional
// format string and arguments label the failure.
func AssertEqual(t *testing.T, got, want interface{}, label ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s(-want +got):\n%s", prefix(label), diff)
	}
}

// AssertSameMoves reports a diff when the two lists do not hold the same
// moves. Order is ignored and nil equals empty.
func AssertSameMoves(t *testing.T, got, want []chess.Move, label ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, byFromTo, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%smove lists differ (-want +got):\n%s", prefix(label), diff)
	}
}

// AssertTrue fails unless cond holds.
func AssertTrue(t *testing.T, cond bool, label ...interface{}) {
	t.Helper()
	if !cond {
		t.Errorf("%sgot false", prefix(label))
	}
}

// AssertFalse fails if cond holds.
func AssertFalse(t *testing.T, cond bool, label ...interface{}) {
	t.Helper()
	if cond {
		t.Errorf("%sgot true", prefix(label))
	}
}

// prefix renders a failure label followed by ": ", or nothing.
func prefix(label []interface{}) string {
	if len(label) == 0 {
		return ""
	}
	format, ok := label[0].(string)
	if !ok {
		return fmt.Sprint(label[0]) + ": "
	}
	return fmt.Sprintf(format, label[1:]...) + ": "
}
