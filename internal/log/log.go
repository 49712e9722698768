// Package log provides the diagnostic channel used by the sweep engine to
// report non-fatal conditions (NumericWarning) without aborting the
// clipping operation. Its logging calls never return an error and never
// stop the sweep.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"
)

var mu sync.Mutex
var wr io.Writer
var tty bool
var LogJSON = false
var logger *zap.SugaredLogger

// Level controls which diagnostics are emitted.
// 0: silent  - do not log
// 1: normal  - info and warnings
// 2: verbose - also per-event sweep tracing
var Level = 1

// SetOutput sets the destination for non-JSON log lines.
func SetOutput(w io.Writer) {
	f, ok := w.(*os.File)
	tty = ok && term.IsTerminal(int(f.Fd()))
	wr = w
}

// Build constructs the zap logger backing JSON output.
func Build() error {
	zcfg := zap.NewProductionConfig()
	zcfg.Level.SetLevel(zap.DebugLevel)
	zcfg.DisableCaller = true
	core, err := zcfg.Build()
	if err != nil {
		return err
	}
	logger = core.Sugar()
	return nil
}

// Set installs a caller-provided zap logger, overriding Build.
func Set(sl *zap.SugaredLogger) {
	logger = sl
}

// Get returns the installed zap logger, or nil if none was built.
func Get() *zap.SugaredLogger {
	return logger
}

func init() {
	SetOutput(os.Stderr)
}

func log(level int, tag, color string, format string, args ...interface{}) {
	if Level < level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if LogJSON && logger != nil {
		switch tag {
		case "ERRO":
			logger.Error(msg)
		case "WARN":
			logger.Warn(msg)
		case "DEBU":
			logger.Debug(msg)
		default:
			logger.Info(msg)
		}
		return
	}
	s := []byte(time.Now().Format("2006/01/02 15:04:05"))
	s = append(s, ' ')
	if tty {
		s = append(s, color...)
	}
	s = append(s, '[')
	s = append(s, tag...)
	s = append(s, ']')
	if tty {
		s = append(s, "\x1b[0m"...)
	}
	s = append(s, ' ')
	s = append(s, msg...)
	if s[len(s)-1] != '\n' {
		s = append(s, '\n')
	}
	mu.Lock()
	wr.Write(s)
	mu.Unlock()
}

// Infof logs a level-1 informational line.
func Infof(format string, args ...interface{}) {
	log(1, "INFO", "\x1b[36m", format, args...)
}

// Warnf logs a NumericWarning: a rounding-error branch was hit and repaired.
// Non-fatal, per §7 of the design: it never aborts the sweep.
func Warnf(format string, args ...interface{}) {
	log(1, "WARN", "\x1b[33m", format, args...)
}

// Errorf logs a level-1 error line. The sweep has no error path of its own;
// this exists for callers embedding the engine in a larger diagnostic flow.
func Errorf(format string, args ...interface{}) {
	log(1, "ERRO", "\x1b[1m\x1b[31m", format, args...)
}

// Debugf logs a level-2 sweep trace line (one event at a time).
func Debugf(format string, args ...interface{}) {
	log(2, "DEBU", "\x1b[35m", format, args...)
}
