package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates the application logger. Output goes to stderr so transcripts
// and diagnostics never mix on stdout.
func New(verbose bool) (*zap.SugaredLogger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	log, err := config.Build()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}

// MustNew creates the application logger and panics if it fails.
func MustNew(verbose bool) *zap.SugaredLogger {
	log, err := New(verbose)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return log
}
