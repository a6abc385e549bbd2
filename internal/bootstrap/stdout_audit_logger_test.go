package bootstrap_test

import (
	"context"
	"testing"

	"github.com/PhoorinS/leave-system-dfd/internal/bootstrap"
	"github.com/PhoorinS/leave-system-dfd/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func captureAuditLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func TestStdoutAuditLogger_Log(t *testing.T) {
	t.Run("emits the entry fields", func(t *testing.T) {
		logs := captureAuditLogs(t)

		bootstrap.NewStdoutAuditLogger().Log(context.Background(), bootstrap.AuditLog{
			Action:  "LEAVE_REVIEW",
			Message: "leave request reviewed",
			Meta:    map[string]any{"id": "1756700000000"},
		})

		entries := logs.All()
		assert.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "LEAVE_REVIEW", fields["action"])
		assert.Equal(t, "leave request reviewed", fields["message"])
		assert.NotContains(t, fields, "request_id")
	})

	t.Run("tags the event with the request id when present", func(t *testing.T) {
		logs := captureAuditLogs(t)
		ctx := contextutil.WithRequestID(context.Background(), "req-123")

		bootstrap.NewStdoutAuditLogger().Log(ctx, bootstrap.AuditLog{Action: "LEAVE_REVIEW"})

		entries := logs.All()
		assert.Len(t, entries, 1)
		assert.Equal(t, "req-123", entries[0].ContextMap()["request_id"])
	})
}
