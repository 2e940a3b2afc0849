package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_LevelFilteringAndIdempotence(t *testing.T) {
	var buf bytes.Buffer
	log := Init(Options{Level: "warn", Output: &buf})

	log.Info().Msg("below threshold")
	if buf.Len() != 0 {
		t.Fatalf("info must be filtered at warn level: %s", buf.String())
	}

	log.Warn().Msg("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("warn event missing from output: %s", buf.String())
	}

	// Later Init calls must not rebuild the logger.
	again := Init(Options{Level: "debug"})
	again.Debug().Msg("still filtered")
	if strings.Contains(buf.String(), "still filtered") {
		t.Fatalf("second Init must not change the level: %s", buf.String())
	}
}
