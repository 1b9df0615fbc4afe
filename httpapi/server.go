package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/core"
	"pkt.systems/termfolio/internal/logx"
	"pkt.systems/termfolio/schema"
)

// Server serves the browser terminal and its JSON API.
type Server struct {
	cfg      Config
	factory  TerminalFactory
	sessions *sessionStore
	hub      *Hub
	basePath string
	assets   *pageAssets
}

// NewServer constructs an HTTP server.
func NewServer(cfg Config, factory TerminalFactory, hub *Hub) *Server {
	ttl := time.Duration(cfg.SessionTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if strings.TrimSpace(cfg.SessionCookie) == "" {
		cfg.SessionCookie = "termfolio_session"
	}
	if hub == nil {
		hub = NewHub(cfg.HubHistory)
	}
	store := newSessionStore(ttl)
	store.onClose = hub.Remove
	return &Server{
		cfg:      cfg,
		factory:  factory,
		sessions: store,
		hub:      hub,
		basePath: normalizeBasePath(cfg.BasePath),
		assets:   mustPageAssets(buildBaseHref(cfg.BaseURL, cfg.BasePath)),
	}
}

// SetBaseContext sets the parent context for session lifetimes.
func (s *Server) SetBaseContext(ctx context.Context) {
	if s == nil || ctx == nil {
		return
	}
	s.sessions.setBaseContext(ctx)
}

// Handler returns an http.Handler for the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.assets.serveIndex)
	mux.Handle("GET /assets/", s.assets.fileHandler())

	mux.HandleFunc("POST /api/session", s.handleSession)
	mux.HandleFunc("POST /api/logout", s.handleLogout)
	mux.HandleFunc("GET /api/view", s.requireSession(s.handleView))
	mux.HandleFunc("POST /api/key", s.requireSession(s.handleKey))
	mux.HandleFunc("POST /api/input", s.requireSession(s.handleInput))
	mux.HandleFunc("POST /api/resize", s.requireSession(s.handleResize))
	mux.HandleFunc("POST /api/scroll", s.requireSession(s.handleScroll))
	mux.HandleFunc("GET /api/stream", s.requireSession(s.handleStream))

	return mountAt(s.basePath, withRequestLogging(mux, s.lookupSession))
}

// mountAt serves h below prefix and redirects the bare prefix to prefix/.
func mountAt(prefix string, h http.Handler) http.Handler {
	if prefix == "" {
		return h
	}
	root := http.NewServeMux()
	root.Handle(prefix+"/", http.StripPrefix(prefix, h))
	root.HandleFunc(prefix, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, prefix+"/", http.StatusTemporaryRedirect)
	})
	return root
}

type sessionResponse struct {
	SessionID schema.SessionID    `json:"session_id"`
	Resumed   bool                `json:"resumed"`
	View      schema.ViewSnapshot `json:"view"`
}

type sizePayload struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// handleSession resumes the session named by the cookie or starts a new one.
// A session that ended with exit is replaced.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	var size sizePayload
	if !decodeBody(w, r, &size, true) {
		return
	}
	log := logx.Ctx(r.Context())
	if entry, token, ok := s.currentSession(r); ok {
		if !entry.terminal.Closed() {
			s.applySize(entry, size)
			writeJSON(w, http.StatusOK, sessionResponse{SessionID: entry.id, Resumed: true, View: entry.terminal.Snapshot()})
			log.Info("http session resumed", "session", entry.id)
			return
		}
		s.sessions.delete(token)
	}
	s.sessions.sweep()

	token, entry, err := s.startSession()
	if err != nil {
		log.Error("http session create failed", "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.applySize(entry, size)
	view := entry.terminal.Snapshot()
	if s.cfg.Boot {
		view.Booting = true
		go func() { _ = entry.terminal.Boot() }()
	}
	http.SetCookie(w, s.cookie(token, entry.expiresAt))
	writeJSON(w, http.StatusOK, sessionResponse{SessionID: entry.id, View: view})
	log.Info("http session started", "session", entry.id, "boot", s.cfg.Boot)
}

func (s *Server) startSession() (string, session, error) {
	if s.factory == nil {
		return "", session{}, errors.New("terminal factory not configured")
	}
	return s.sessions.create(func(ctx context.Context, id schema.SessionID) (*core.Terminal, error) {
		return s.factory(ctx, id, core.RendererFunc(s.hub.Renderer(ctx, id)))
	})
}

// cookie builds the session cookie; a zero expiry clears it.
func (s *Server) cookie(token string, expires time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     s.cfg.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if expires.IsZero() {
		c.MaxAge = -1
	} else {
		c.Expires = expires
	}
	return c
}

func (s *Server) applySize(entry session, size sizePayload) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	if err := entry.terminal.Resize(size.Width, size.Height); err != nil {
		logx.WithSession(entry.ctx, entry.id).Debug("http session resize ignored", "err", err)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	log := logx.Ctx(r.Context())
	if entry, token, ok := s.currentSession(r); ok {
		log = log.With("session", entry.id)
		s.sessions.delete(token)
	}
	http.SetCookie(w, s.cookie("", time.Time{}))
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	log.Info("http logout")
}

// respond answers a terminal operation with the fresh view.
func respond(w http.ResponseWriter, r *http.Request, sess session, op string, err error) {
	if err != nil {
		logx.Ctx(r.Context()).Debug("http "+op+" rejected", "err", err)
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, sess.terminal.Snapshot())
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request, sess session) {
	respond(w, r, sess, "view", nil)
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request, sess session) {
	var key schema.Key
	if !decodeBody(w, r, &key, false) {
		return
	}
	if key.Kind == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: key kind is required", schema.ErrInvalidRequest))
		return
	}
	respond(w, r, sess, "key", sess.terminal.HandleKey(detachedContext(r.Context(), sess), key))
}

func (s *Server) handleInput(w http.ResponseWriter, r *http.Request, sess session) {
	var payload struct {
		Text   string `json:"text"`
		Cursor *int   `json:"cursor"`
		Submit bool   `json:"submit"`
	}
	if !decodeBody(w, r, &payload, false) {
		return
	}
	var err error
	switch {
	case payload.Submit:
		err = sess.terminal.Submit(detachedContext(r.Context(), sess), payload.Text)
	case payload.Cursor != nil:
		err = sess.terminal.UpdateInput(payload.Text, *payload.Cursor)
	default:
		err = sess.terminal.UpdateInput(payload.Text, utf8.RuneCountInString(payload.Text))
	}
	respond(w, r, sess, "input", err)
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request, sess session) {
	var size sizePayload
	if !decodeBody(w, r, &size, false) {
		return
	}
	respond(w, r, sess, "resize", sess.terminal.Resize(size.Width, size.Height))
}

func (s *Server) handleScroll(w http.ResponseWriter, r *http.Request, sess session) {
	var payload struct {
		Delta int `json:"delta"`
	}
	if !decodeBody(w, r, &payload, false) {
		return
	}
	sess.terminal.Scroll(payload.Delta)
	respond(w, r, sess, "scroll", nil)
}

// handleStream pushes frames over SSE. A client resuming with Last-Event-ID
// gets the missed frames from the hub history; otherwise it starts from the
// current view.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request, sess session) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, errors.New("stream unsupported"))
		return
	}
	log := logx.Ctx(r.Context())
	header := w.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")

	lastID := lastEventID(r)
	events, unsubscribe, seq := s.hub.Subscribe(sess.id)
	defer unsubscribe()

	var backlog []StreamEvent
	if lastID > 0 && lastID <= seq {
		for _, event := range s.hub.Replay(sess.id, lastID) {
			if event.Seq <= seq {
				backlog = append(backlog, event)
			}
		}
	} else {
		view := sess.terminal.Snapshot()
		backlog = append(backlog, StreamEvent{Type: eventView, View: &view, Timestamp: time.Now()})
	}
	for _, event := range backlog {
		_ = writeEvent(w, event)
	}
	flusher.Flush()
	log.Info("http stream opened", "last_id", lastID, "replay", len(backlog))

	for {
		select {
		case <-r.Context().Done():
			log.Info("http stream closed")
			return
		case <-sess.ctx.Done():
			log.Info("http stream closed", "reason", "session ended")
			return
		case event, ok := <-events:
			if !ok {
				log.Info("http stream closed", "reason", "session removed")
				return
			}
			if err := writeEvent(w, event); err != nil {
				log.Debug("http stream write failed", "err", err)
				return
			}
			flusher.Flush()
			if event.Type == eventClosed {
				return
			}
		}
	}
}

// currentSession resolves the cookie to a live session.
func (s *Server) currentSession(r *http.Request) (session, string, bool) {
	cookie, err := r.Cookie(s.cfg.SessionCookie)
	if err != nil || cookie.Value == "" {
		return session{}, "", false
	}
	entry, ok := s.sessions.get(cookie.Value)
	return entry, cookie.Value, ok
}

func (s *Server) lookupSession(r *http.Request) schema.SessionID {
	entry, _, _ := s.currentSession(r)
	return entry.id
}

func (s *Server) requireSession(next func(http.ResponseWriter, *http.Request, session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entry, _, ok := s.currentSession(r)
		if !ok {
			logx.Ctx(r.Context()).Warn("http session rejected", "remote", clientIP(r))
			writeError(w, http.StatusUnauthorized, schema.ErrSessionNotFound)
			return
		}
		log := logx.Ctx(r.Context()).With("session", entry.id)
		next(w, r.WithContext(logx.ContextWithSessionLogger(r.Context(), log, entry.id, "http")), entry)
	}
}

// detachedContext moves request-scoped logging onto the session lifetime so
// work started by a request, such as the panic sequence, outlives it.
func detachedContext(ctx context.Context, sess session) context.Context {
	if sess.ctx == nil {
		return ctx
	}
	return logx.CopyContextFields(pslog.ContextWithLogger(sess.ctx, pslog.Ctx(ctx)), ctx)
}
