// Package logger is a small leveled logger shared by the emulator core.
//
// It exists so the CPU, PPU and DMA packages can report interrupt
// dispatch, vblank NMI and DMA arming without importing the
// standard log package directly everywhere, and so a host can silence
// or redirect it in one place. At the default level it is silent and
// never sits on the hot path of CPU.Step or PPU.Run.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Level is the logging verbosity.
type Level int

const (
	LevelOff Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// Logger writes leveled, per-subsystem-gated lines to a writer.
type Logger struct {
	level      Level
	writer     io.Writer
	cpuEnabled bool
	ppuEnabled bool
	dmaEnabled bool
}

var global *Logger

// Init installs the package-level logger. filename == "" logs to stdout.
func Init(level Level, filename string) error {
	var w io.Writer = os.Stdout
	if filename != "" {
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("logger: create log file: %w", err)
		}
		w = f
	}
	global = &Logger{level: level, writer: w}
	return nil
}

// EnableCPU toggles CPU-subsystem logging.
func EnableCPU(enabled bool) {
	if global != nil {
		global.cpuEnabled = enabled
	}
}

// EnablePPU toggles PPU-subsystem logging.
func EnablePPU(enabled bool) {
	if global != nil {
		global.ppuEnabled = enabled
	}
}

// EnableDMA toggles DMA-subsystem logging.
func EnableDMA(enabled bool) {
	if global != nil {
		global.dmaEnabled = enabled
	}
}

func timestamp() string {
	return time.Now().Format("15:04:05.000")
}

// CPU logs a CPU-subsystem message at Debug level.
func CPU(format string, args ...interface{}) {
	if global != nil && global.cpuEnabled && global.level >= LevelDebug {
		fmt.Fprintf(global.writer, "[%s] CPU: %s\n", timestamp(), fmt.Sprintf(format, args...))
	}
}

// PPU logs a PPU-subsystem message at Trace level.
func PPU(format string, args ...interface{}) {
	if global != nil && global.ppuEnabled && global.level >= LevelTrace {
		fmt.Fprintf(global.writer, "[%s] PPU: %s\n", timestamp(), fmt.Sprintf(format, args...))
	}
}

// DMA logs a DMA-subsystem message at Debug level.
func DMA(format string, args ...interface{}) {
	if global != nil && global.dmaEnabled && global.level >= LevelDebug {
		fmt.Fprintf(global.writer, "[%s] DMA: %s\n", timestamp(), fmt.Sprintf(format, args...))
	}
}

// Info logs a general informational message.
func Info(format string, args ...interface{}) {
	if global != nil && global.level >= LevelInfo {
		fmt.Fprintf(global.writer, "[%s] INFO: %s\n", timestamp(), fmt.Sprintf(format, args...))
	}
}

// Error logs an error-level message.
func Error(format string, args ...interface{}) {
	if global != nil && global.level >= LevelError {
		fmt.Fprintf(global.writer, "[%s] ERROR: %s\n", timestamp(), fmt.Sprintf(format, args...))
	}
}

// LevelFromString parses a level name, defaulting to LevelInfo.
func LevelFromString(s string) Level {
	switch s {
	case "off":
		return LevelOff
	case "error":
		return LevelError
	case "warn":
		return LevelWarn
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	case "trace":
		return LevelTrace
	default:
		return LevelInfo
	}
}

// Close releases any file opened by Init.
func Close() {
	if global == nil {
		return
	}
	if f, ok := global.writer.(*os.File); ok && f != os.Stdout && f != os.Stderr {
		f.Close()
	}
}
