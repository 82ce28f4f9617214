package orbits

import (
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var (
	loggerPtr atomic.Pointer[logrus.Logger]
	once      sync.Once
)

func init() {
	loggerPtr.Store(NewLogger("info"))
}

// NewLogger returns a text logger writing to stderr at the given level
// (debug, info, warn, error). Unknown levels fall back to info.
func NewLogger(level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	switch strings.ToLower(level) {
	case "debug":
		l.SetLevel(logrus.DebugLevel)
	case "warn":
		l.SetLevel(logrus.WarnLevel)
	case "error":
		l.SetLevel(logrus.ErrorLevel)
	default:
		l.SetLevel(logrus.InfoLevel)
	}
	return l
}

// SetLogger replaces the package logger. Passing nil restores the default.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = NewLogger("info")
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger.
func Logger() *logrus.Logger {
	return loggerPtr.Load()
}

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	Logger().Debugf(format, args...)
}

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		Logger().Debugf(format, args...)
	})
}
