package postgres

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"petnfc/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_RequiresPostgresConfig(t *testing.T) {
	_, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres configuration is required")
}

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: 100 * time.Millisecond}

	tests := []struct {
		name       string
		cur        sql.DBStats
		wantWaited bool
		wantLevel  slog.Level
	}{
		{
			name: "no new waits",
			cur:  sql.DBStats{WaitCount: 10, WaitDuration: 100 * time.Millisecond},
		},
		{
			name:       "short waits are debug",
			cur:        sql.DBStats{WaitCount: 12, WaitDuration: 110 * time.Millisecond},
			wantWaited: true,
			wantLevel:  slog.LevelDebug,
		},
		{
			name:       "long waits are warnings",
			cur:        sql.DBStats{WaitCount: 11, WaitDuration: 200 * time.Millisecond},
			wantWaited: true,
			wantLevel:  slog.LevelWarn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, attrs, waited := poolWait(prev, tt.cur)

			assert.Equal(t, tt.wantWaited, waited)
			if !tt.wantWaited {
				assert.Nil(t, attrs)

				return
			}
			assert.Equal(t, tt.wantLevel, level)
			require.NotEmpty(t, attrs)
			assert.Equal(t, "waitCountDelta", attrs[0].Key)
			assert.Equal(t, tt.cur.WaitCount-prev.WaitCount, attrs[0].Value.Int64())
		})
	}
}
