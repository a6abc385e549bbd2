package bootstrap

import (
	"context"
	"time"

	"github.com/PhoorinS/leave-system-dfd/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit events to the process log. With the
// spreadsheet as the only datastore there is nowhere durable to persist an
// audit trail, so the log stream is it; deployments that need more can
// provide another AuditLogger.
type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

// Log emits the entry, tagging it with the originating request id when the
// context carries one so a decision can be tied back to its HTTP request.
func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	zap.L().Named("audit").Info("audit event", fields...)
}
