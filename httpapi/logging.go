package httpapi

import (
	"net/http"
	"strings"
	"time"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/schema"
)

// statusWriter remembers the status and body size of a response.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (w *statusWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.bytes += int64(n)
	return n, err
}

// Flush keeps SSE working through the wrapper.
func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

type sessionLookupFunc func(*http.Request) schema.SessionID

// noisyRequest reports requests that fire on every keystroke or asset load.
func noisyRequest(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/assets/") || r.URL.Path == "/api/key" || r.URL.Path == "/api/input"
}

func withRequestLogging(next http.Handler, lookup sessionLookupFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		if sw.status == 0 {
			sw.status = http.StatusOK
		}

		log := pslog.Ctx(r.Context()).With("remote", clientIP(r))
		if lookup != nil {
			if id := lookup(r); id != "" {
				log = log.With("session", id)
			}
		}
		fields := []any{
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", sw.status,
			"bytes", sw.bytes,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if noisyRequest(r) {
			log.Debug("http request", fields...)
			return
		}
		log.Info("http request", fields...)
		log.Trace("http request details", "ua", r.UserAgent())
	})
}

// clientIP prefers the first X-Forwarded-For hop.
func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	return r.RemoteAddr
}
