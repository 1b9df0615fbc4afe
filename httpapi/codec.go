package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"pkt.systems/termfolio/internal/logx"
	"pkt.systems/termfolio/schema"
)

// decodeBody reads a strict JSON body into payload. An empty body is
// accepted only when optional is set. On failure it answers 400 and
// returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, payload any, optional bool) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(payload)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	logx.Ctx(r.Context()).Warn("http request decode failed", "path", r.URL.Path, "err", err)
	writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %v", schema.ErrInvalidRequest, err))
	return false
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusFor maps terminal errors onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, schema.ErrInputDisabled):
		return http.StatusConflict
	case errors.Is(err, schema.ErrSessionClosed):
		return http.StatusGone
	case errors.Is(err, schema.ErrSessionNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, schema.ErrUnknownKey),
		errors.Is(err, schema.ErrInvalidDimensions),
		errors.Is(err, schema.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeEvent emits one SSE frame. The hub sequence doubles as the event id
// so reconnecting clients can resume with Last-Event-ID.
func writeEvent(w io.Writer, event StreamEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if event.Seq > 0 {
		if _, err := fmt.Fprintf(w, "id: %d\n", event.Seq); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}

// lastEventID returns the resume point sent by a reconnecting client, or 0.
func lastEventID(r *http.Request) uint64 {
	id, err := strconv.ParseUint(r.Header.Get("Last-Event-ID"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
