package logger

import (
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/deppfellow/phonecustody/internal/config"
)

func TestGetPgxTraceLogLevel(t *testing.T) {
	cases := map[zerolog.Level]tracelog.LogLevel{
		zerolog.TraceLevel:    tracelog.LogLevelTrace,
		zerolog.DebugLevel:    tracelog.LogLevelDebug,
		zerolog.InfoLevel:     tracelog.LogLevelInfo,
		zerolog.WarnLevel:     tracelog.LogLevelWarn,
		zerolog.ErrorLevel:    tracelog.LogLevelError,
		zerolog.Disabled:      tracelog.LogLevelNone,
		zerolog.NoLevel:       tracelog.LogLevelNone,
	}

	for in, want := range cases {
		assert.Equal(t, want, GetPgxTraceLogLevel(in), "level %s", in)
	}
}

func TestNewLoggerWithService_Level(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	l := NewLoggerWithService(cfg, nil)
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
}

func TestNewLoggerService_DisabledWithoutLicense(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()

	svc := NewLoggerService(cfg)
	assert.Nil(t, svc.GetApplication())

	var nilSvc *LoggerService
	assert.Nil(t, nilSvc.GetApplication())
	nilSvc.Shutdown()
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	l := zerolog.Nop()
	assert.Equal(t, l, WithTraceContext(l, nil))
}
