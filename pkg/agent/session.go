package agent

import (
	"math/rand/v2"
	"strconv"
	"time"
)

// SessionHandle pairs the opaque user and session identifiers that correlate
// a client call with server-side conversation state. The agent treats a
// repeated session identifier as continuing the same conversation, so a fresh
// handle must be generated for every independent planning or chat request.
type SessionHandle struct {
	UserID    string
	SessionID string
}

// NewSessionHandle generates a fresh handle for one logical interaction.
func NewSessionHandle() SessionHandle {
	return SessionHandle{
		UserID:    NewUserID(),
		SessionID: NewSessionID(),
	}
}

// NewUserID returns a new opaque user identifier, e.g. "u_1717171717171_k3x9p0q2z".
func NewUserID() string {
	return newID("u_")
}

// NewSessionID returns a new opaque session identifier, e.g. "s_1717171717171_k3x9p0q2z".
func NewSessionID() string {
	return newID("s_")
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// newID composes a role prefix, a millisecond timestamp, and a short random
// base-36 suffix. Unique enough to avoid collision across calls; no external
// state and no failure mode.
func newID(prefix string) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = base36[rand.IntN(len(base36))]
	}
	return prefix + strconv.FormatInt(time.Now().UnixMilli(), 10) + "_" + string(suffix)
}
