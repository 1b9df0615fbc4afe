package logx

import (
	"context"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/schema"
)

type contextKey int

const (
	sessionKey contextKey = iota
	transportKey
)

// Ctx returns the logger bound to the provided context.
func Ctx(ctx context.Context) pslog.Logger {
	return pslog.Ctx(ctx)
}

// WithSession annotates the logger with the session id if present.
func WithSession(ctx context.Context, sessionID schema.SessionID) pslog.Logger {
	log := pslog.Ctx(ctx)
	if sessionID != "" {
		if current, ok := ctx.Value(sessionKey).(schema.SessionID); ok && current == sessionID {
			return log
		}
		log = log.With("session", sessionID)
	}
	return log
}

// WithSessionTransport annotates the logger with session and transport.
func WithSessionTransport(ctx context.Context, sessionID schema.SessionID, transport string) pslog.Logger {
	log := WithSession(ctx, sessionID)
	if transport != "" {
		if current, ok := ctx.Value(transportKey).(string); ok && current == transport {
			return log
		}
		log = log.With("transport", transport)
	}
	return log
}

// WithRemote annotates the logger with the remote address when available.
func WithRemote(log pslog.Logger, remote string) pslog.Logger {
	if remote != "" {
		log = log.With("remote", remote)
	}
	return log
}

// ContextWithSession stores the session marker on the context for log de-duplication.
func ContextWithSession(ctx context.Context, sessionID schema.SessionID) context.Context {
	if ctx == nil || sessionID == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionKey, sessionID)
}

// ContextWithTransport stores the transport marker on the context.
func ContextWithTransport(ctx context.Context, transport string) context.Context {
	if ctx == nil || transport == "" {
		return ctx
	}
	return context.WithValue(ctx, transportKey, transport)
}

// ContextWithSessionLogger attaches the logger and session/transport markers to the context.
func ContextWithSessionLogger(ctx context.Context, log pslog.Logger, sessionID schema.SessionID, transport string) context.Context {
	ctx = pslog.ContextWithLogger(ctx, log)
	return ContextWithTransport(ContextWithSession(ctx, sessionID), transport)
}

// CopyContextFields copies session/transport markers from src to dst.
func CopyContextFields(dst context.Context, src context.Context) context.Context {
	if src == nil {
		return dst
	}
	if id, ok := src.Value(sessionKey).(schema.SessionID); ok && id != "" {
		dst = ContextWithSession(dst, id)
	}
	if transport, ok := src.Value(transportKey).(string); ok && transport != "" {
		dst = ContextWithTransport(dst, transport)
	}
	return dst
}
