// Package logger builds the zap loggers used across the module.
// Until a global logger is set, every named logger discards its output.
package logger

import (
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logger type handed out by this package.
type Logger = zap.SugaredLogger

// Level is a logging priority.
type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
	LevelPanic = zapcore.PanicLevel
)

// ErrGlobalLoggerAlreadyInitialized is returned when SetGlobalLogger is called more than once.
var ErrGlobalLoggerAlreadyInitialized = errors.New("global logger already initialized")

var (
	mu          sync.RWMutex
	global      *Logger
	level       = zap.NewAtomicLevel()
	initialized atomic.Bool
)

// NewRootLogger creates a root logger from cfg. Its level follows SetLevel.
func NewRootLogger(cfg Config) (*Logger, error) {
	lvl := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, errors.Wrapf(err, "invalid log level %q", cfg.Level)
		}
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = DefaultCfg.Encoding
	}
	outputPaths := cfg.OutputPaths
	if len(outputPaths) == 0 {
		outputPaths = DefaultCfg.OutputPaths
	}

	zapCfg := zap.Config{
		Level:             lvl,
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       outputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	root, err := zapCfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "unable to build root logger")
	}

	mu.Lock()
	level = lvl
	mu.Unlock()

	return root.Sugar(), nil
}

// NewRootLoggerFromConfiguration creates a root logger from the logger.* settings in src.
func NewRootLoggerFromConfiguration(src Source) (*Logger, error) {
	return NewRootLogger(ConfigFromSource(src))
}

// SetGlobalLogger sets root as the parent of every logger created by NewLogger.
func SetGlobalLogger(root *Logger) error {
	mu.Lock()
	defer mu.Unlock()

	if initialized.Load() {
		return ErrGlobalLoggerAlreadyInitialized
	}

	global = root
	initialized.Store(true)

	return nil
}

// ReplaceGlobalLogger swaps the global logger for root and returns a function that restores the previous one.
func ReplaceGlobalLogger(root *Logger) (restore func()) {
	mu.Lock()
	previous, wasInitialized := global, initialized.Load()
	global = root
	initialized.Store(root != nil)
	mu.Unlock()

	return func() {
		mu.Lock()
		defer mu.Unlock()

		global = previous
		initialized.Store(wasInitialized)
	}
}

// NewLogger returns a logger named name below the global logger.
func NewLogger(name string) *Logger {
	mu.RLock()
	defer mu.RUnlock()

	if global == nil {
		return zap.NewNop().Sugar()
	}

	return global.Named(name)
}

// SetLevel changes the level of the last root logger created by NewRootLogger.
func SetLevel(l Level) {
	mu.RLock()
	defer mu.RUnlock()

	level.SetLevel(l)
}
