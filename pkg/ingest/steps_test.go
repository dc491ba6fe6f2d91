package ingest

import (
	"math"
	"testing"
)

func TestSteps(t *testing.T) {
	steps := Steps()

	if len(steps) != 6 {
		t.Fatalf("step count = %d, want 6", len(steps))
	}

	if steps[0].Name != "Validating PDF files..." {
		t.Errorf("first step = %q", steps[0].Name)
	}
	if steps[5].Name != "Finalizing project setup..." {
		t.Errorf("last step = %q", steps[5].Name)
	}

	// Progress climbs monotonically and ends at exactly 1.0.
	prev := 0.0
	for i, s := range steps {
		if s.Progress <= prev {
			t.Errorf("step %d progress %f not increasing (prev %f)", i, s.Progress, prev)
		}
		prev = s.Progress
	}
	if steps[5].Progress != 1.0 {
		t.Errorf("final progress = %f, want 1.0", steps[5].Progress)
	}

	if math.Abs(steps[0].Progress-1.0/6.0) > 1e-9 {
		t.Errorf("first progress = %f, want 1/6", steps[0].Progress)
	}
}
