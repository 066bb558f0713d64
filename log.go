package sprig

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Two named loggers: "sprig" for the engine itself and "app" for programs
// built on it. Both are no-ops until InitLogging is called.
var (
	coreLogger   = zap.NewNop()
	clientLogger = zap.NewNop()
)

// CoreLogger returns the engine logger.
func CoreLogger() *zap.Logger { return coreLogger }

// ClientLogger returns the logger intended for application code.
func ClientLogger() *zap.Logger { return clientLogger }

// InitLogging builds the core and client loggers from cfg. It replaces any
// previously installed loggers; call it once at program start.
func InitLogging(cfg LogConfig) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("sprig: log level %q: %w", cfg.Level, err)
	}

	encoding := cfg.Encoding
	if encoding == "" {
		encoding = "console"
	}
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	if encoding == "json" {
		encoderCfg = zap.NewProductionEncoderConfig()
	}

	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	base, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("sprig: build logger: %w", err)
	}
	SetLoggers(base.Named("sprig"), base.Named("app"))
	return nil
}

// SetLoggers installs explicit loggers. Nil arguments fall back to no-op loggers.
func SetLoggers(core, client *zap.Logger) {
	if core == nil {
		core = zap.NewNop()
	}
	if client == nil {
		client = zap.NewNop()
	}
	coreLogger = core
	clientLogger = client
}

// SyncLogging flushes buffered log entries. Errors from syncing stderr are
// ignored; some platforms report EINVAL for it.
func SyncLogging() {
	_ = coreLogger.Sync()
	_ = clientLogger.Sync()
}
