// Package logx is the viewer's diagnostics sink. It writes JSON lines so a
// debug log can be tailed while the TUI owns the terminal. Output is
// discarded unless the host wires a writer (see the --debug flag).
package logx

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "debug"
	}
}

var (
	mu       sync.RWMutex
	minLevel           = LevelWarn
	out      io.Writer = io.Discard
)

// SetOutput sets the destination for logs.
func SetOutput(w io.Writer) { mu.Lock(); out = w; mu.Unlock() }

// SetMinLevel sets the minimum level to emit.
func SetMinLevel(l Level) { mu.Lock(); minLevel = l; mu.Unlock() }

// ToFile opens path for appending and routes all logs there at debug level.
// The caller owns closing the returned file.
func ToFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	SetOutput(f)
	SetMinLevel(LevelDebug)
	return f, nil
}

// Debugf logs a debug message.
func Debugf(format string, args ...any) { emit(LevelDebug, fmt.Sprintf(format, args...)) }

// Infof logs an info message.
func Infof(format string, args ...any) { emit(LevelInfo, fmt.Sprintf(format, args...)) }

// Warnf logs a warning message.
func Warnf(format string, args ...any) { emit(LevelWarn, fmt.Sprintf(format, args...)) }

// Errorf logs an error message.
func Errorf(format string, args ...any) { emit(LevelError, fmt.Sprintf(format, args...)) }

type entry struct {
	TS    string `json:"ts"`
	Level string `json:"level"`
	Msg   string `json:"msg"`
}

func emit(lvl Level, msg string) {
	mu.RLock()
	ml := minLevel
	w := out
	mu.RUnlock()
	if lvl < ml {
		return
	}
	e := entry{
		TS:    time.Now().Format(time.RFC3339Nano),
		Level: lvl.String(),
		Msg:   msg,
	}
	b, err := json.Marshal(e)
	if err != nil {
		// fallback to plain message
		_, _ = io.WriteString(w, msg+"\n")
		return
	}
	b = append(b, '\n')
	_, _ = w.Write(b)
}
