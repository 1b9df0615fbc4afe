package core

import (
	"crypto/rand"
	"encoding/hex"

	"pkt.systems/termfolio/schema"
)

// NewSessionID returns a random session identifier.
func NewSessionID() schema.SessionID {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "session-unknown"
	}
	return schema.SessionID(hex.EncodeToString(buf[:]))
}
