package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		value string
		env   string
		want  slog.Level
	}{
		{value: "debug", want: slog.LevelDebug},
		{value: "info", env: "development", want: slog.LevelInfo},
		{value: " WARN ", want: slog.LevelWarn},
		{value: "error", want: slog.LevelError},
		{value: "fatal", want: LevelCritical},
		{value: "", env: "development", want: slog.LevelDebug},
		{value: "", env: "production", want: slog.LevelInfo},
		{value: "nonsense", want: slog.LevelInfo},
	}

	for _, tc := range cases {
		if got := ParseLevel(tc.value, tc.env); got != tc.want {
			t.Fatalf("ParseLevel(%q, %q) = %v, want %v", tc.value, tc.env, got, tc.want)
		}
	}
}

func TestCriticalLevelName(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo, "json")

	log.Critical("db: unreachable", "host", "localhost")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if record["level"] != "CRITICAL" {
		t.Fatalf("expected CRITICAL level, got %v", record["level"])
	}
	if record["app"] != "petcare" {
		t.Fatalf("expected app attribute, got %v", record["app"])
	}
}

func TestBusinessErrorSkipsNil(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelDebug, "text")

	log.BusinessError("ignored", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}

	log.BusinessError("users.get: user not found", errors.New("user not found"), "user_id", 7)
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "user_id=7") {
		t.Fatalf("unexpected output %q", out)
	}
}
