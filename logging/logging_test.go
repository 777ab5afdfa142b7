package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewTagsComponent(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "engine")
	log.Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"component":"engine"`) {
		t.Fatalf("expected component field, got: %s", out)
	}
	if !strings.Contains(out, "hello") {
		t.Fatalf("expected message, got: %s", out)
	}
}

func TestNopIsSilent(t *testing.T) {
	log := Nop()
	// Nop must not panic and must report disabled levels.
	log.Info().Msg("ignored")
	if log.Debug().Enabled() {
		t.Fatalf("nop logger should not enable debug events")
	}
}
