package bootstrap

import "context"

// AuditLog is one auditable event: an admin decision, a server lifecycle
// change, anything an operator may need to trace later.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
