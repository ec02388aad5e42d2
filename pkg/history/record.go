// Package history persists completed agent exchanges so generations and chat
// answers can be browsed after the fact.
package history

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Kind distinguishes the two exchange types the agent supports.
type Kind string

const (
	KindItinerary Kind = "itinerary"
	KindChat      Kind = "chat"
)

// Record is one completed exchange: the prompt that was sent and the
// normalized result that came back.
type Record struct {
	// ID is content-addressed: SHA-256 over kind, prompt and result.
	// Replaying an identical exchange produces the same ID and deduplicates.
	ID string `json:"id"`

	Kind   Kind            `json:"kind"`
	Prompt string          `json:"prompt"`
	Result json.RawMessage `json:"result"`

	CreatedAt time.Time `json:"created_at"`
}

// NewRecord builds a record and computes its content-addressed ID.
func NewRecord(kind Kind, prompt string, result json.RawMessage) *Record {
	r := &Record{
		Kind:      kind,
		Prompt:    prompt,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}
	r.ID = r.computeID()
	return r
}

// computeID hashes the identity-bearing fields. CreatedAt is deliberately
// excluded so identical exchanges collapse to one record.
func (r *Record) computeID() string {
	type input struct {
		Kind   Kind            `json:"kind"`
		Prompt string          `json:"prompt"`
		Result json.RawMessage `json:"result"`
	}

	// Canonical JSON encoding for deterministic hashing
	data, err := json.Marshal(input{Kind: r.Kind, Prompt: r.Prompt, Result: r.Result})
	if err != nil {
		panic("failed to marshal hash input: " + err.Error())
	}

	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
