package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"info", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Errorf("parseLevel(%q) got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestInit(t *testing.T) {
	if err := Init("debug", ""); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Log == nil || Sugar == nil {
		t.Error("Init left loggers unset")
	}
	Sync()
}
