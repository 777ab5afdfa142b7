package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRunPauseMenu(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, "pause_menu", 60, 600, zerolog.Nop()); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"reveal: 4 entities, longest 300ms",
		// A 60 TPS tick is 16666666ns, so 300ms takes 19 ticks and the
		// back hide (150ms delay + 175ms) takes 20.
		"reveal complete after 19 ticks",
		"back: hide complete after 20 ticks",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRunUnknownPrefab(t *testing.T) {
	if err := run(&bytes.Buffer{}, "does_not_exist", 60, 10, zerolog.Nop()); err == nil {
		t.Fatalf("expected an error for a missing prefab")
	}
}
