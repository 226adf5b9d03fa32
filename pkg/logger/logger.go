package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field keys shared by every component that logs about a session, workflow or alert
const (
	KeySessionID  = "session_id"
	KeyWorkflowID = "workflow_id"
	KeyAlertID    = "alert_id"
)

// Logger wraps zap.Logger to provide structured logging
type Logger struct {
	*zap.Logger
}

// New creates a logger. format "json" selects the production encoder, anything
// else the coloured console encoder. An unknown level falls back to info.
func New(level, format string) (*Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	var config zap.Config
	if format == "json" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	zapLogger, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return nil, err
	}
	return &Logger{zapLogger}, nil
}

// NewForTesting creates a debug-level development logger
func NewForTesting() *Logger {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	zapLogger, _ := config.Build()
	return &Logger{zapLogger}
}

// NewNop returns a logger that discards everything, for CLI output that must stay clean
func NewNop() *Logger {
	return &Logger{zap.NewNop()}
}

// With adds structured context to the logger
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{l.Logger.With(fields...)}
}

// ForSession scopes the logger to one session
func (l *Logger) ForSession(id string) *Logger {
	return l.With(SessionID(id))
}

// ForWorkflow scopes the logger to one workflow run of an alert
func (l *Logger) ForWorkflow(workflowID, alertID string) *Logger {
	return l.With(WorkflowID(workflowID), AlertID(alertID))
}

// Errorf logs a formatted message at error level
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Sugar().Errorf(format, args...)
}

var defaultLogger = NewNop()

// SetDefault sets the logger returned by Default
func SetDefault(logger *Logger) {
	defaultLogger = logger
}

// Default returns the process logger. It discards output until SetDefault is called.
func Default() *Logger {
	return defaultLogger
}

func SessionID(id string) zap.Field {
	return zap.String(KeySessionID, id)
}

func WorkflowID(id string) zap.Field {
	return zap.String(KeyWorkflowID, id)
}

func AlertID(id string) zap.Field {
	return zap.String(KeyAlertID, id)
}

func String(key, value string) zap.Field {
	return zap.String(key, value)
}

func Int(key string, value int) zap.Field {
	return zap.Int(key, value)
}

func Duration(key string, value time.Duration) zap.Field {
	return zap.Duration(key, value)
}

func Any(key string, value interface{}) zap.Field {
	return zap.Any(key, value)
}

func Err(err error) zap.Field {
	return zap.Error(err)
}
