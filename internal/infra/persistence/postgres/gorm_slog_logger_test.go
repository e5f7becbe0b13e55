package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
)

func newTraceLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	cfg.Env.Log.SlowQuery = 100 * time.Millisecond

	return newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg), &buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var line map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &line))

	return line
}

func sqlFn() (string, int64) { return `SELECT * FROM "users"`, 1 }

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("fast query quiet outside debug", func(t *testing.T) {
		l, buf := newTraceLogger(false)

		l.Trace(context.Background(), time.Now(), sqlFn, nil)

		assert.Empty(t, buf.String())
	})

	t.Run("slow query warns", func(t *testing.T) {
		l, buf := newTraceLogger(false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		line := lastLine(t, buf)
		assert.Equal(t, "GORM slow query", line["msg"])
		assert.Equal(t, "WARN", line["level"])
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		l, buf := newTraceLogger(false)

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("unique violation warns", func(t *testing.T) {
		l, buf := newTraceLogger(false)

		l.Trace(context.Background(), time.Now(), sqlFn, &pgconn.PgError{Code: pgerrcode.UniqueViolation})

		assert.Equal(t, "GORM unique violation", lastLine(t, buf)["msg"])
	})

	t.Run("failure uses request logger", func(t *testing.T) {
		l, buf := newTraceLogger(false)
		base := slog.New(slog.NewJSONHandler(buf, nil)).With(slog.String("request_id", "req-9"))
		ctx := deliverycontext.WithLogger(context.Background(), base)

		l.Trace(ctx, time.Now(), sqlFn, errors.New("connection refused"))

		line := lastLine(t, buf)
		assert.Equal(t, "GORM query failed", line["msg"])
		assert.Equal(t, "req-9", line["request_id"])
		assert.Equal(t, "connection refused", line["error"])
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newTraceLogger(true)

		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}
