package logger

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"ctc-webbase/config"
)

var (
	instance *zap.Logger
	once     sync.Once
)

// Init builds the process logger. Release mode writes JSON, and rotates
// through lumberjack when a file path is configured; debug mode writes
// colored console output to stdout.
func Init(cfg *config.Config) *zap.Logger {
	once.Do(func() {
		instance = build(cfg)
		zap.ReplaceGlobals(instance)
	})
	return instance
}

func build(cfg *config.Config) *zap.Logger {
	level := zap.NewAtomicLevelAt(parseLevel(cfg.Log.Level))

	var encoder zapcore.Encoder
	if cfg.App.Mode == config.ModeRelease {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(ec)
	}

	var sink zapcore.WriteSyncer = zapcore.AddSync(os.Stdout)
	if cfg.App.Mode == config.ModeRelease && cfg.Log.FilePath != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Log.FilePath,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   cfg.Log.Compress,
		})
	}

	opts := []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}
	if cfg.App.Mode == config.ModeRelease {
		opts = append(opts, zap.AddCaller())
	}

	return zap.New(zapcore.NewCore(encoder, sink, level), opts...).With(
		zap.String("app_name", cfg.App.Name),
		zap.String("env", string(cfg.App.Mode)),
	)
}

// Get returns the process logger, or a no-op logger before Init.
func Get() *zap.Logger {
	if instance == nil {
		return zap.NewNop()
	}
	return instance
}

// New returns a child logger tagged with the module name.
func New(module string) *zap.Logger {
	return Get().With(zap.String("module", module))
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
