package obslog

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestParseSeverityDefaultsToInfo(t *testing.T) {
	cases := map[string]Severity{
		"debug":   Debug,
		"info":    Info,
		"warn":    Warn,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
		"":        Info,
	}
	for in, want := range cases {
		if got := parseSeverity(in); got != want {
			t.Errorf("parseSeverity(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSeverityString(t *testing.T) {
	if Debug.String() != "debug" || Warn.String() != "warn" || Error.String() != "error" {
		t.Errorf("unexpected Severity.String() values")
	}
}

// captureStderr redirects os.Stderr for the duration of fn and returns
// everything written to it.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()

	w.Close()
	var sb strings.Builder
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestLoggerWritesAtOrAboveMinLevel(t *testing.T) {
	viper.Set("log.level", "warn")
	viper.Set("log.buffer", 16)
	defer viper.Set("log.level", "")
	defer viper.Set("log.buffer", 0)

	out := captureStderr(t, func() {
		l := New("testmod")
		l.Debug("should not appear")
		l.Info("should not appear either")
		l.Warn("warn line %d", 1)
		l.Error("error line")
		l.Close()
	})

	if strings.Contains(out, "should not appear") {
		t.Errorf("expected sub-threshold messages to be dropped, got:\n%s", out)
	}
	if !strings.Contains(out, "warn line 1") {
		t.Errorf("expected the warn line to be written, got:\n%s", out)
	}
	if !strings.Contains(out, "error line") {
		t.Errorf("expected the error line to be written, got:\n%s", out)
	}
	if !strings.Contains(out, "testmod") {
		t.Errorf("expected the module tag to appear in output, got:\n%s", out)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	viper.Set("log.level", "info")
	viper.Set("log.buffer", 4)
	defer viper.Set("log.level", "")
	defer viper.Set("log.buffer", 0)

	l := New("idempotent")
	l.Info("one")
	l.Close()
	l.Close() // must not panic or block
}
