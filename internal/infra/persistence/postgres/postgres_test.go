package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportPoolWait(t *testing.T) {
	tests := []struct {
		name     string
		prev     sql.DBStats
		cur      sql.DBStats
		contains string
		empty    bool
	}{
		{
			name:  "no new waits",
			prev:  sql.DBStats{WaitCount: 4},
			cur:   sql.DBStats{WaitCount: 4},
			empty: true,
		},
		{
			name:     "short waits are debug",
			prev:     sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond},
			cur:      sql.DBStats{WaitCount: 3, WaitDuration: 5 * time.Millisecond},
			contains: "level=DEBUG",
		},
		{
			name:     "long waits are warnings",
			cur:      sql.DBStats{WaitCount: 2, WaitDuration: 200 * time.Millisecond, InUse: 10},
			contains: "level=WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			reportPoolWait(context.Background(), logger, tt.prev, tt.cur)

			if tt.empty {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.contains)
			assert.Contains(t, buf.String(), "Database pool contention")
		})
	}
}
