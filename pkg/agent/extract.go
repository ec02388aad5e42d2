package agent

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/numaan0/travel-genius/pkg/trip"
)

// ErrNoStructuredResponse is returned when no extraction strategy yields a
// usable result. It is always surfaced on the itinerary path; the assistant
// path falls back to plain text first.
var ErrNoStructuredResponse = errors.New("no valid structured response received from agent")

// stateEnvelope is the shape the agent service uses when it has explicitly
// marked structured output in session state.
type stateEnvelope struct {
	State struct {
		TravelItinerary   json.RawMessage `json:"travel_itinerary"`
		AssistantResponse json.RawMessage `json:"assistant_response"`
	} `json:"state"`
}

// ExtractItinerary normalizes a raw /run response into a TravelItinerary.
// Strategies are tried in strict priority order, short-circuiting on the
// first success:
//
//  1. an explicit state.travel_itinerary field is trusted as-is
//  2. conversation turns are scanned newest-first for embedded JSON carrying
//     a non-empty dailyPlans array
//
// There is no plain-text fallback for itineraries: anything else is
// ErrNoStructuredResponse.
func ExtractItinerary(raw []byte) (*trip.TravelItinerary, error) {
	if state := stateValue(raw, func(e stateEnvelope) json.RawMessage { return e.State.TravelItinerary }); state != nil {
		var it trip.TravelItinerary
		if err := json.Unmarshal(state, &it); err != nil {
			return nil, fmt.Errorf("state.travel_itinerary is malformed: %w", err)
		}
		return &it, nil
	}

	for _, text := range turnTexts(raw) {
		if it := itineraryFromText(text); it != nil {
			return it, nil
		}
	}

	return nil, ErrNoStructuredResponse
}

// ExtractAssistant normalizes a raw /run response into an AssistantResponse.
// Same priority order as ExtractItinerary, with one extra strategy: when no
// JSON-shaped payload is found anywhere, the latest turn's trimmed text is
// wrapped verbatim as the answer.
func ExtractAssistant(raw []byte) (*trip.AssistantResponse, error) {
	if state := stateValue(raw, func(e stateEnvelope) json.RawMessage { return e.State.AssistantResponse }); state != nil {
		var ar trip.AssistantResponse
		if err := json.Unmarshal(state, &ar); err != nil {
			return nil, fmt.Errorf("state.assistant_response is malformed: %w", err)
		}
		return &ar, nil
	}

	texts := turnTexts(raw)
	for _, text := range texts {
		if ar := assistantFromText(text); ar != nil {
			return ar, nil
		}
	}

	// Plain-text fallback: the most recent non-empty turn text, as-is.
	for _, text := range texts {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return &trip.AssistantResponse{Answer: trimmed, Emoji: "💬"}, nil
		}
	}

	return nil, ErrNoStructuredResponse
}

// stateValue returns the selected state field when the response carries one,
// or nil. A JSON null counts as absent.
func stateValue(raw []byte, pick func(stateEnvelope) json.RawMessage) json.RawMessage {
	var env stateEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil
	}
	v := pick(env)
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return nil
	}
	return v
}

// turnTexts collects the text parts of a turn-shaped response, newest turn
// first. A single turn object is treated as a one-element sequence. Parts
// within a turn keep their original order.
func turnTexts(raw []byte) []string {
	var turns []ConversationTurn
	if err := json.Unmarshal(raw, &turns); err != nil {
		var single ConversationTurn
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil
		}
		turns = []ConversationTurn{single}
	}

	var texts []string
	for i := len(turns) - 1; i >= 0; i-- {
		for _, part := range turns[i].Content.Parts {
			if part.Text != "" {
				texts = append(texts, part.Text)
			}
		}
	}
	return texts
}

// itineraryFromText extracts an itinerary from one candidate text blob, or
// nil. Acceptance requires a non-empty dailyPlans array.
func itineraryFromText(text string) *trip.TravelItinerary {
	span := firstJSONObject(stripFences(text))
	if span == "" {
		return nil
	}
	var it trip.TravelItinerary
	if err := json.Unmarshal([]byte(span), &it); err != nil {
		return nil
	}
	if len(it.DailyPlans) == 0 {
		return nil
	}
	return &it
}

// assistantFromText extracts an assistant answer from one candidate text
// blob, or nil. Acceptance requires a non-empty answer or a day key; a day
// that is explicitly null still counts, mirroring the agent's loose contract.
func assistantFromText(text string) *trip.AssistantResponse {
	span := firstJSONObject(stripFences(text))
	if span == "" {
		return nil
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(span), &keys); err != nil {
		return nil
	}
	var ar trip.AssistantResponse
	if err := json.Unmarshal([]byte(span), &ar); err != nil {
		return nil
	}
	if _, hasDay := keys["day"]; ar.Answer == "" && !hasDay {
		return nil
	}
	return &ar
}

// stripFences removes markdown code-fence markers, both the tagged
// (```json) and bare (```) forms.
func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// firstJSONObject returns the first balanced {...} span in text, tracking
// string literals so braces inside quoted values don't terminate the match.
// Returns "" when no complete object is present.
func firstJSONObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}
	return ""
}
