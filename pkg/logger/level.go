package logger

import "log/slog"

// Level selects which records reach the log file.
type Level int

const (
	// LevelDebug writes everything, rule evaluation included.
	LevelDebug Level = iota

	// LevelInfo writes command summaries.
	LevelInfo

	// LevelError writes failures only.
	LevelError
)

var levels = [...]struct {
	name string
	slog slog.Level
}{
	LevelDebug: {"DEBUG", slog.LevelDebug},
	LevelInfo:  {"INFO", slog.LevelInfo},
	LevelError: {"ERROR", slog.LevelError},
}

func (l Level) valid() bool {
	return l >= 0 && int(l) < len(levels)
}

// String returns the upper-case level name.
func (l Level) String() string {
	if !l.valid() {
		return "UNKNOWN"
	}

	return levels[l].name
}

// ToSlogLevel converts l to the slog threshold. Unknown levels map to info.
func (l Level) ToSlogLevel() slog.Level {
	if !l.valid() {
		return slog.LevelInfo
	}

	return levels[l].slog
}

// LevelFromFlags maps --trace to debug and --debug to info.
func LevelFromFlags(debug, trace bool) Level {
	switch {
	case trace:
		return LevelDebug
	case debug:
		return LevelInfo
	default:
		return LevelError
	}
}
