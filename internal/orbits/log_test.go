package orbits

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLoggerLevels(t *testing.T) {
	cases := map[string]logrus.Level{
		"debug": logrus.DebugLevel,
		"INFO":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
		"bogus": logrus.InfoLevel,
	}
	for in, want := range cases {
		if got := NewLogger(in).GetLevel(); got != want {
			t.Fatalf("NewLogger(%q) level %v, want %v", in, got, want)
		}
	}
}

func TestDebugLogGatedByDebug(t *testing.T) {
	old, oldDebug := Logger(), Debug
	defer func() { SetLogger(old); Debug = oldDebug }()

	var buf bytes.Buffer
	l := NewLogger("debug")
	l.SetOutput(&buf)
	SetLogger(l)

	Debug = false
	DebugLog("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("debug output written while Debug is off: %q", buf.String())
	}
	Debug = true
	DebugLog("shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Fatalf("debug output missing: %q", buf.String())
	}
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("SetLogger(nil) must restore a logger")
	}
}

func TestDebugLogOnceLogsAtMostOnce(t *testing.T) {
	old, oldDebug := Logger(), Debug
	defer func() { SetLogger(old); Debug = oldDebug }()

	var buf bytes.Buffer
	l := NewLogger("debug")
	l.SetOutput(&buf)
	SetLogger(l)
	Debug = true

	DebugLogOnce("first %d", 1)
	DebugLogOnce("second %d", 2)
	if strings.Contains(buf.String(), "second 2") {
		t.Fatalf("DebugLogOnce logged twice: %q", buf.String())
	}
}
