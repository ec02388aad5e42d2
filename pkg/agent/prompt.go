package agent

import (
	"errors"
	"fmt"
	"strings"
)

// Travel personalities the planner form offers. The prompt carries the
// personality verbatim; unknown values are not rejected.
const (
	PersonalityAdventure = "adventure"
	PersonalityLuxury    = "luxury"
	PersonalityCultural  = "cultural"
	PersonalityParty     = "party"
)

// KnownPersonality reports whether p is one of the four personas the
// planner's quiz can produce.
func KnownPersonality(p string) bool {
	switch p {
	case PersonalityAdventure, PersonalityLuxury, PersonalityCultural, PersonalityParty:
		return true
	}
	return false
}

// TripRequest is the planner form input an itinerary is generated from.
type TripRequest struct {
	Destination string   `json:"destination"`
	Budget      int      `json:"budget"`    // Total budget in the smallest currency unit
	Days        int      `json:"days"`      // Trip length, 1-based day numbering in the result
	GroupSize   int      `json:"groupSize"` // Number of travelers
	Personality string   `json:"personality"`
	Preferences []string `json:"preferences"`
}

// Validate mirrors the planner form's submit guard: destination, budget and
// day count are required; group size defaults to a single traveler.
func (r *TripRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return errors.New("destination is required")
	}
	if r.Budget <= 0 {
		return errors.New("budget must be positive")
	}
	if r.Days <= 0 {
		return errors.New("days must be positive")
	}
	if r.GroupSize < 1 {
		r.GroupSize = 1
	}
	if r.Personality == "" {
		r.Personality = PersonalityAdventure
	}
	return nil
}

// Prompt builds the natural-language instruction the agent expects. The
// wording is load-bearing: the agent's planner is tuned for this phrasing.
func (r TripRequest) Prompt() string {
	prefs := "no specific preferences"
	if len(r.Preferences) > 0 {
		prefs = strings.Join(r.Preferences, ", ")
	}
	return fmt.Sprintf("Create a complete %d-day travel itinerary for %s with budget ₹%d for %d %s %s.",
		r.Days, r.Destination, r.Budget, r.GroupSize, r.Personality, prefs)
}
