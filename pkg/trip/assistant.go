package trip

// AssistantResponse is the root result of a free-form question about a trip.
// Day and Activity stay nil when the answer is not tied to a specific
// itinerary entry. Note that Day can arrive as an explicit JSON null from the
// agent and is still treated as a valid (unset) value.
type AssistantResponse struct {
	Answer   string  `json:"answer"`
	Day      *int    `json:"day"`
	Activity *string `json:"activity"`
	Emoji    string  `json:"emoji"`
}
