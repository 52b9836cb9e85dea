package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_Defaults(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level info, got %v", logger.Level())
	}
	if logger.Format() != FormatJSON {
		t.Errorf("expected default format json, got %v", logger.Format())
	}

	logger.Info("hello", slog.String("key", "value"))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}
	if rec["msg"] != "hello" {
		t.Errorf("expected msg=hello, got %v", rec["msg"])
	}
	if rec["key"] != "value" {
		t.Errorf("expected key=value, got %v", rec["key"])
	}
	if rec["level"] != "INFO" {
		t.Errorf("expected level=INFO, got %v", rec["level"])
	}
}

func TestLogger_ZeroValue_Discards(t *testing.T) {
	var logger Logger

	logger.Info("nothing")
	logger.With(slog.String("a", "b")).ErrorContext(context.Background(), "nothing")

	if logger.Enabled(context.Background(), LevelError) {
		t.Error("zero logger should not be enabled")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func(Logger, string, ...slog.Attr)
		minLevel Level
		logged   bool
	}{
		{"trace at trace", Logger.Trace, LevelTrace, true},
		{"trace at debug", Logger.Trace, LevelDebug, false},
		{"debug at info", Logger.Debug, LevelInfo, false},
		{"info at info", Logger.Info, LevelInfo, true},
		{"warn at error", Logger.Warn, LevelError, false},
		{"error at debug", Logger.Error, LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(Make(&buf, WithLevel(tt.minLevel)), "test message")

			if got := buf.Len() > 0; got != tt.logged {
				t.Errorf("expected logged=%v, got output %q", tt.logged, buf.String())
			}
		})
	}
}

func TestLogger_TraceLevelName(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithLevel(LevelTrace), WithFormat(FormatText)).Trace("deep")

	if !strings.Contains(buf.String(), "level=TRACE") {
		t.Errorf("expected level=TRACE, got %q", buf.String())
	}
}

func TestLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatText)).With(slog.String("component", "engine"))

	logger.Info("ready")

	if !strings.Contains(buf.String(), "component=engine") {
		t.Errorf("expected component attribute, got %q", buf.String())
	}
}

func TestLogger_Wrap_OverridesConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf).Wrap(WithFormat(FormatText), WithTimeLayout("none"))

	logger.Info("plain")

	out := buf.String()
	if strings.HasPrefix(out, "{") {
		t.Errorf("expected text output, got %q", out)
	}
	if strings.Contains(out, "time=") {
		t.Errorf("expected no timestamp, got %q", out)
	}
}

func TestLogger_WithCaller(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithCaller(true)).Info("where")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("expected caller file in output, got %q", buf.String())
	}
}

func TestLogger_Pretty_Colourises(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithFormat(FormatText), WithPretty(true)).
		With(slog.String("a", "b")).
		Warn("careful", slog.Bool("ok", true))

	out := buf.String()
	for _, want := range []string{"careful", ansiGray + "a" + ansiReset, "WARN", "true"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}
}

func TestLogger_ConcurrentCalls(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf, WithFormat(FormatText), WithPretty(true))

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("concurrent", slog.Int("id", id))
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 100 {
		t.Errorf("expected 100 log lines, got %d", len(lines))
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"Info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if got := ParseFormat(" TEXT "); got != FormatText {
		t.Errorf("expected text, got %v", got)
	}
	if got := ParseFormat("yaml"); got != DefaultFormat {
		t.Errorf("expected default format, got %v", got)
	}
}

func TestResolveLayout(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"RFC3339", "2006-01-02T15:04:05Z07:00"},
		{"Kitchen", "3:04PM"},
		{"none", ""},
		{"", ""},
		{"2006/01/02", "2006/01/02"},
	}

	for _, tt := range tests {
		if got := resolveLayout(tt.in); got != tt.want {
			t.Errorf("resolveLayout(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfig_DefaultLogger(t *testing.T) {
	original := Default()
	defer func() {
		defaultMu.Lock()
		defaultLog = original
		defaultMu.Unlock()
	}()

	var buf bytes.Buffer
	Config(WithOutput(&buf), WithLevel(LevelDebug), WithFormat(FormatText))

	Debug("package debug", slog.String("key", "value"))

	if !strings.Contains(buf.String(), "package debug") {
		t.Errorf("expected default logger output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "key=value") {
		t.Errorf("expected attribute, got %q", buf.String())
	}
}
