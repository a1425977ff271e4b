package logging

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Log levels, lowest verbosity first.
const (
	None    = 0
	Error   = 1
	Warning = 2
	Info    = 3
	Debug   = 4
)

// DefaultLevel keeps diagnostics quiet so only the report lines reach the console.
const DefaultLevel = Warning

var level atomic.Int32

var prefixes = map[int]string{
	Error:   "[ERROR] ",
	Warning: "[WARN]  ",
	Info:    "[INFO]  ",
	Debug:   "[DEBUG] ",
}

func init() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	log.SetOutput(os.Stderr)
	level.Store(DefaultLevel)
}

// SetLevel sets the global logging level.
func SetLevel(l int) {
	level.Store(int32(l))
	Logf(Debug, "Log level set to %s", LevelName(l))
}

// GetLevel returns the current logging level.
func GetLevel() int {
	return int(level.Load())
}

// Enabled reports whether messages at l would be written.
func Enabled(l int) bool {
	return l != None && int32(l) <= level.Load()
}

// ParseLevel converts a level name to its numeric value.
// Unknown names return DefaultLevel and an error.
func ParseLevel(name string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return None, nil
	case "error":
		return Error, nil
	case "warn", "warning":
		return Warning, nil
	case "info":
		return Info, nil
	case "debug":
		return Debug, nil
	}
	return DefaultLevel, fmt.Errorf("invalid log level '%s'", name)
}

// LevelName is the inverse of ParseLevel.
func LevelName(l int) string {
	switch l {
	case None:
		return "none"
	case Error:
		return "error"
	case Warning:
		return "warn"
	case Info:
		return "info"
	case Debug:
		return "debug"
	}
	return fmt.Sprintf("level(%d)", l)
}

// SetupLogging parses name and installs the resulting level, falling back to
// DefaultLevel with a warning when the name is not recognised.
func SetupLogging(name string) int {
	l, err := ParseLevel(name)
	if err != nil {
		l = DefaultLevel
		SetLevel(l)
		Logf(Warning, "%v, using '%s'", err, LevelName(l))
		return l
	}
	SetLevel(l)
	return l
}

// Logf writes a formatted message when l is enabled.
func Logf(l int, format string, v ...interface{}) {
	if !Enabled(l) {
		return
	}
	// Depth 2 attributes the line to the caller of Logf.
	log.Output(2, prefixes[l]+fmt.Sprintf(format, v...))
}
