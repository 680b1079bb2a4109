package dgl

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	t.Run("verbosity", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&buf, LevelInfo)
		l.Log("hidden")
		l.Verbose("hidden")
		l.Info("shown")
		l.Warning("shown too")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("message below verbosity was emitted:\n%s", out)
		}
		for _, want := range []string{"level=INFO", "level=WARNING", "lib=dgl"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in output:\n%s", want, out)
			}
		}
	})

	t.Run("quiet", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewLogger(&buf, LevelQuiet)
		l.Exit = func(int) {}
		l.Critical("hidden")
		l.Fatal("shown")
		if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "level=FATAL") {
			t.Errorf("unexpected output:\n%s", out)
		}
	})

	t.Run("fatal exits", func(t *testing.T) {
		var code int
		l := Discard()
		l.Exit = func(c int) { code = c }
		l.Fatal("boom")
		if code != 2 {
			t.Errorf("expected exit code 2, got %d", code)
		}
	})

	t.Run("nil", func(t *testing.T) {
		ctx := NewContext(nil, nil, nil)
		if ctx.Logger().Enabled(LevelFatal) {
			t.Error("nil logger should discard")
		}
		ctx.SetDrawPage(1) // warns into the discarding logger
	})
}

func TestLevelName(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelFatal, "FATAL"},
		{LevelCritical, "CRITICAL"},
		{LevelWarning, "WARNING"},
		{LevelInfo, "INFO"},
		{LevelLog, "LOG"},
		{LevelVerboseLog, "VERBOSE"},
	}
	for _, test := range tests {
		if v := levelName(test.level); v != test.want {
			t.Errorf("level %d: expected %s, got %s", test.level, test.want, v)
		}
	}
}
