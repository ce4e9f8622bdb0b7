// Package logger provides the application's leveled logger, a thin wrapper
// around zap. It supports three levels: off (no output), normal
// (info/warn/error), and verbose (includes debug). The logger is safe for
// concurrent use.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

// LevelFromString maps config strings to a Level. Unknown values get
// LevelNormal.
func LevelFromString(s string) Level {
	switch s {
	case "off":
		return LevelOff
	case "verbose", "debug":
		return LevelVerbose
	default:
		return LevelNormal
	}
}

// Logger is a leveled printf-style logger backed by zap.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New creates a logger with the given level, writing to the given output.
// If out is nil, os.Stderr is used. LevelOff returns a no-op logger.
func New(level Level, out io.Writer) *Logger {
	if level == LevelOff {
		return &Logger{sugar: zap.NewNop().Sugar()}
	}
	if out == nil {
		out = os.Stderr
	}

	zapLevel := zapcore.InfoLevel
	if level == LevelVerbose {
		zapLevel = zapcore.DebugLevel
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    shortLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("15:04:05.000"),
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(out),
		zapLevel,
	)
	return &Logger{sugar: zap.New(core).Sugar()}
}

func shortLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	switch l {
	case zapcore.DebugLevel:
		enc.AppendString("DBG")
	case zapcore.InfoLevel:
		enc.AppendString("INF")
	case zapcore.WarnLevel:
		enc.AppendString("WRN")
	case zapcore.ErrorLevel:
		enc.AppendString("ERR")
	default:
		enc.AppendString(l.CapitalString())
	}
}

// Debug logs a message at debug level (only visible in verbose mode).
func (l *Logger) Debug(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

// Info logs a message at info level.
func (l *Logger) Info(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

// Error logs a message at error level.
func (l *Logger) Error(format string, args ...any) {
	l.sugar.Errorf(format, args...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}
