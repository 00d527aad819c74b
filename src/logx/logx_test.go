package logx

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestGetLoggerLevelByString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"info", zapcore.InfoLevel},
		{"error", zapcore.ErrorLevel},
		{"fatal", zapcore.FatalLevel},
		{"", zapcore.DebugLevel},
		{"verbose", zapcore.DebugLevel},
	}
	for _, tt := range tests {
		if got := GetLoggerLevelByString(tt.in); got != tt.want {
			t.Errorf("GetLoggerLevelByString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogxWritesJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := NewLogx(zapcore.InfoLevel, false, false)
	l.InitLogger(&buf)
	l.Named("control").Infof("move from %s to %s", "e2", "e4")
	l.Debugf("hidden")
	_ = l.Sync()

	out := buf.String()
	if !strings.Contains(out, `"MESSAGE":"move from e2 to e4"`) {
		t.Fatalf("missing message in %q", out)
	}
	if !strings.Contains(out, `"NAME":"control"`) {
		t.Fatalf("missing logger name in %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry leaked at info level: %q", out)
	}
}

func TestNopDiscards(t *testing.T) {
	t.Parallel()
	l := NewNop()
	l.Errorf("nothing %d", 1)
	l.Named("x").Warn("still nothing")
}

func TestDPanicf(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		dev       bool
		wantPanic bool
	}{
		{"production logs", false, false},
		{"development panics", true, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			l := NewLogx(zapcore.InfoLevel, tt.dev, false)
			l.InitLogger(&buf)

			panicked := func() (p bool) {
				defer func() { p = recover() != nil }()
				l.DPanicf("quadrant %d outside %s", 17, "e8")
				return false
			}()
			if panicked != tt.wantPanic {
				t.Fatalf("panicked = %v, want %v", panicked, tt.wantPanic)
			}
			if out := buf.String(); !strings.Contains(out, "quadrant 17 outside e8") {
				t.Errorf("entry not written: %q", out)
			}
		})
	}
}
