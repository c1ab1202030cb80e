// Package logger builds the application's zap logger.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config describes where and how much to log.
type Config struct {
	ServiceName string
	IsProd      bool
	// FilePath receives a plain "LEVEL: message" line for every entry logged
	// at exactly FileLevel. Empty disables the file sink.
	FilePath  string
	FileLevel string
}

// NewLogger returns a JSON stdout logger, teed to the log file when configured.
// The returned func closes the file.
func NewLogger(cfg Config) (*zap.Logger, func() error, error) {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	level := zapcore.DebugLevel
	if cfg.IsProd {
		encoderConfig = zap.NewProductionEncoderConfig()
		level = zapcore.InfoLevel
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(os.Stdout), level),
	}
	closeFn := func() error { return nil }

	if cfg.FilePath != "" {
		fileCore, closeFile, err := newFileCore(cfg.FilePath, cfg.FileLevel)
		if err != nil {
			return nil, nil, err
		}
		cores = append(cores, fileCore)
		closeFn = closeFile
	}

	l := zap.New(zapcore.NewTee(cores...))
	if cfg.ServiceName != "" {
		l = l.With(zap.String("service", cfg.ServiceName))
	}
	return l, closeFn, nil
}

func newFileCore(path, level string) (zapcore.Core, func() error, error) {
	fileLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log file level %q: %w", level, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeLevel:      func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) { enc.AppendString(l.CapitalString() + ":") },
		ConsoleSeparator: " ",
	}
	onlyFileLevel := zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l == fileLevel })

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(f), onlyFileLevel)
	return core, f.Close, nil
}
