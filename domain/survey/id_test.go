package survey

import (
	"testing"
)

// TestNewRunIDUniqueness tests that NewRunID generates unique identifiers
func TestNewRunIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[RunID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewRunID()
		if id.IsEmpty() {
			t.Errorf("Generated empty run ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate run ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique run IDs, got %d", numIDs, len(ids))
	}
}

// TestRunIDString tests run ID string conversion
func TestRunIDString(t *testing.T) {
	id := RunID("run-123")
	if id.String() != "run-123" {
		t.Errorf("Expected String() to return 'run-123', got '%s'", id.String())
	}
}

// TestRunIDIsEmpty tests run ID emptiness check
func TestRunIDIsEmpty(t *testing.T) {
	emptyID := RunID("")
	if !emptyID.IsEmpty() {
		t.Error("Expected empty run ID to be empty")
	}

	nonEmptyID := RunID("not-empty")
	if nonEmptyID.IsEmpty() {
		t.Error("Expected non-empty run ID to not be empty")
	}
}
