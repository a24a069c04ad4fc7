package utils

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const loggerMessageKey = "message"

// consoleEncoderConfig strips every key except the message so diagnostics read as plain terminal text.
func consoleEncoderConfig() zapcore.EncoderConfig {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.TimeKey = ""
	encoderConfig.LevelKey = ""
	encoderConfig.NameKey = ""
	encoderConfig.CallerKey = ""
	encoderConfig.MessageKey = loggerMessageKey
	encoderConfig.StacktraceKey = ""
	return encoderConfig
}

// NewApplicationLogger constructs a zap logger configured for human-readable console output on stderr.
func NewApplicationLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.EncoderConfig = consoleEncoderConfig()
	return config.Build()
}

// NewWriterLogger builds the same console logger on top of an arbitrary writer.
func NewWriterLogger(writer io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(consoleEncoderConfig()),
		zapcore.AddSync(writer),
		zap.InfoLevel,
	)
	return zap.New(core)
}
