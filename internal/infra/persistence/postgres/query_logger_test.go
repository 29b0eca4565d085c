package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"hospital/config"
	deliverycontext "hospital/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestQueryLogger(buf *bytes.Buffer, debug bool) *queryLogger {
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: 50 * time.Millisecond}}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newQueryLogger(base, cfg).(*queryLogger)
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "patients"`, 3
}

func TestQueryLogger_Trace(t *testing.T) {
	tests := []struct {
		name     string
		debug    bool
		begin    time.Time
		err      error
		contains []string
		empty    bool
	}{
		{
			name:     "failure is logged as error",
			begin:    time.Now(),
			err:      errors.New("connection reset"),
			contains: []string{"level=ERROR", "query failed", "connection reset"},
		},
		{
			name:  "record not found is silent",
			begin: time.Now(),
			err:   gorm.ErrRecordNotFound,
			empty: true,
		},
		{
			name:     "slow query is a warning",
			begin:    time.Now().Add(-time.Second),
			contains: []string{"level=WARN", "slow query", "threshold=50ms"},
		},
		{
			name:  "fast query is silent outside debug",
			begin: time.Now(),
			empty: true,
		},
		{
			name:     "debug mode logs every query",
			debug:    true,
			begin:    time.Now(),
			contains: []string{"level=DEBUG", "rows=3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newTestQueryLogger(&buf, tt.debug)

			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if tt.empty {
				assert.Empty(t, buf.String())

				return
			}
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newTestQueryLogger(&base, false)
	ctx := deliverycontext.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&scoped, nil)).With("request_id", "req-1"))

	l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-1")
}

func TestQueryLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	l := newTestQueryLogger(&buf, true).LogMode(gormlogger.Silent)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, buf.String())
}
