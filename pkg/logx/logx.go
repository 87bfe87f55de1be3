// Package logx is a small leveled logger shared across the service.
package logx

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	current atomic.Int32
	std     = log.New(os.Stderr, "", log.LstdFlags)
)

func init() {
	current.Store(int32(LevelInfo))
}

// SetLevel sets the minimum level that gets emitted.
func SetLevel(l Level) { current.Store(int32(l)) }

func enabled(l Level) bool { return int32(l) >= current.Load() }

func emit(l Level, tag, msg string) {
	if enabled(l) {
		std.Printf("[%s] %s", tag, msg)
	}
}

func Debug(msg string) { emit(LevelDebug, "DEBUG", msg) }
func Info(msg string)  { emit(LevelInfo, "INFO", msg) }
func Warn(msg string)  { emit(LevelWarn, "WARN", msg) }
func Error(msg string) { emit(LevelError, "ERROR", msg) }

func Debugf(format string, args ...any) { Debug(fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any)  { Info(fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any)  { Warn(fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { Error(fmt.Sprintf(format, args...)) }

// Fatal logs at error level and exits.
func Fatal(msg string) {
	emit(LevelError, "FATAL", msg)
	os.Exit(1)
}

func Fatalf(format string, args ...any) { Fatal(fmt.Sprintf(format, args...)) }
