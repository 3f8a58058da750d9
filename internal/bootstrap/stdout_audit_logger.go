package bootstrap

import (
	"context"
	"time"

	"go-timeoff/internal/shared/contextutil"

	"go.uber.org/zap"
)

// ZapAuditLogger writes audit entries to a dedicated "audit" logger.
type ZapAuditLogger struct {
	logger *zap.Logger
}

func NewZapAuditLogger(logger ...*zap.Logger) *ZapAuditLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &ZapAuditLogger{logger: l}
}

func (l *ZapAuditLogger) Log(ctx context.Context, entry AuditLog) {
	l.logger.Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("action", entry.Action),
		zap.String("actor_id", entry.ActorID),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
