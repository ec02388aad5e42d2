// Package agent is the HTTP client for the external travel agent service.
// It builds the agent's request envelope, sends single request/response calls
// to /run, and normalizes whatever loosely structured reply comes back into
// one of the typed results in pkg/trip.
package agent

// Part is one fragment of a message or conversation turn: free text, or
// nothing we care about (tool payloads are skipped during extraction).
type Part struct {
	Text string `json:"text,omitempty"`
}

// Message is the user message sent to the agent.
type Message struct {
	Role  string `json:"role"`  // Always "user" for outgoing messages
	Parts []Part `json:"parts"` // One or more content parts
}

// RunRequest is the envelope POSTed to {base}/run for both chat and
// itinerary generation.
type RunRequest struct {
	AppName    string  `json:"appName"`
	UserID     string  `json:"userId"`
	SessionID  string  `json:"sessionId"`
	NewMessage Message `json:"newMessage"`
}

// TurnContent is the content of one conversation turn in the agent's reply.
type TurnContent struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// ConversationTurn is one exchange unit in the agent's reply. A single /run
// call can produce several turns (tool calls, intermediate reasoning); only
// the final turn is expected to hold the answer.
type ConversationTurn struct {
	Content TurnContent `json:"content"`
}
