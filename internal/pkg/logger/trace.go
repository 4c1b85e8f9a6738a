package logger

import (
	"Inkwell/internal/pkg/consts"
	"context"
	log "log/slog"
)

// TraceIDKey 定义 Context 中的 Key
const TraceIDKey = "trace_id"

// ContextHandler 包装器，从 ctx 中提取 trace_id 与匿名会话标识，附加到每条日志
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			r.AddAttrs(log.String(TraceIDKey, traceID))
		}
		if sessionID, ok := ctx.Value(consts.SessionIDKey).(string); ok && sessionID != "" {
			r.AddAttrs(log.String(consts.SessionIDKey, sessionID))
		}
	}
	return h.Handler.Handle(ctx, r)
}
