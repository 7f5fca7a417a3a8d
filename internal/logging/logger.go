// Package logging provides structured logging using uber/zap.
//
// Production builds write JSON; development builds write colored console
// lines at debug level.
//
//	logger, err := logging.ForService(cfg.Logging.Level, cfg.Logging.Development)
//	logger.Info("Loaded uncertainty budget", zap.Int("inputs", n))
//	logger.WithRequest(requestID).Debug("Tool executed", zap.String("tool", toolID))
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RequestKey is the field name carrying the request ID.
const RequestKey = "request_id"

// Logger wraps zap.Logger.
type Logger struct {
	*zap.Logger
}

// Config defines logger configuration.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Development bool
	OutputPaths []string
}

// DefaultConfig logs info and above as JSON to stdout.
func DefaultConfig() Config {
	return Config{Level: "info", OutputPaths: []string{"stdout"}}
}

// DevelopmentConfig logs everything to stdout in console form.
func DevelopmentConfig() Config {
	return Config{Level: "debug", Development: true, OutputPaths: []string{"stdout"}}
}

// ForService picks the configuration the server runs with. Development
// mode always logs at debug level.
func ForService(level string, development bool) (*Logger, error) {
	if development {
		return New(DevelopmentConfig())
	}
	cfg := DefaultConfig()
	cfg.Level = level
	return New(cfg)
}

// New builds a logger. Sampling is off so every tool call is recorded.
func New(cfg Config) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	var zcfg zap.Config
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.TimeKey = "timestamp"
		zcfg.EncoderConfig.MessageKey = "message"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zcfg.Sampling = nil
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if len(cfg.OutputPaths) > 0 {
		zcfg.OutputPaths = cfg.OutputPaths
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{Logger: logger}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Named returns a child logger for one component.
func (l *Logger) Named(component string) *Logger {
	return &Logger{Logger: l.Logger.Named(component)}
}

// WithRequest tags every entry with a request ID. An empty ID returns l.
func (l *Logger) WithRequest(requestID string) *Logger {
	if requestID == "" {
		return l
	}
	return &Logger{Logger: l.Logger.With(zap.String(RequestKey, requestID))}
}
