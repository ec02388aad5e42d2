// Package trip defines the typed result shapes the travel agent can produce:
// a full multi-day itinerary or a short assistant answer.
package trip

// ActivityType categorizes a single itinerary activity. The agent is asked to
// stick to the known set but its literal output is not guaranteed, so values
// are carried as open strings and Known reports whether one is recognized.
type ActivityType string

const (
	ActivityAdventure  ActivityType = "adventure"
	ActivityFood       ActivityType = "food"
	ActivityCultural   ActivityType = "cultural"
	ActivityInstagram  ActivityType = "instagram"
	ActivityAttraction ActivityType = "attraction"
	ActivityTransport  ActivityType = "transport"
)

// Known reports whether the activity type is one of the six values the
// presentation layer renders with a dedicated icon.
func (t ActivityType) Known() bool {
	switch t {
	case ActivityAdventure, ActivityFood, ActivityCultural,
		ActivityInstagram, ActivityAttraction, ActivityTransport:
		return true
	}
	return false
}

// Activity is a single itinerary entry.
type Activity struct {
	ID          string       `json:"id"`          // Unique identifier for the activity
	Title       string       `json:"title"`       // Activity title, usually with an emoji
	Description string       `json:"description"` // Free-text description
	Cost        int          `json:"cost"`        // Cost in the smallest currency unit, non-negative
	Duration    string       `json:"duration"`    // Free text (e.g. "3-4 hours")
	Type        ActivityType `json:"type"`        // Category, see ActivityType
	Timing      string       `json:"timing"`      // Time slot hint (e.g. "9:00 AM - 1:00 PM")
	Rating      float64      `json:"rating"`      // 0.0-5.0
}

// DailyWeatherSummary is the weather outlook for a single day of the trip.
type DailyWeatherSummary struct {
	Condition       string   `json:"condition"`       // e.g. "Sunny", "Partly Cloudy"
	OutdoorScore    int      `json:"outdoorScore"`    // Suitability for outdoor activities (1-10)
	IndoorScore     int      `json:"indoorScore"`     // Suitability for indoor activities (1-10)
	Recommendations []string `json:"recommendations"` // Weather-specific tips for the day
}

// DailyPlan is one day of the itinerary. Day numbers are expected to be
// unique and contiguous from 1, but the agent's output is not validated
// beyond the itinerary-level acceptance check.
type DailyPlan struct {
	Day            int                 `json:"day"`
	Activities     []Activity          `json:"activities"`
	WeatherSummary DailyWeatherSummary `json:"weatherSummary"`
}

// OverallWeatherSummary aggregates weather across the whole trip.
type OverallWeatherSummary struct {
	OverallScore       int      `json:"overallScore"`
	SuitableForOutdoor bool     `json:"suitableForOutdoor"`
	Alerts             []string `json:"alerts"`
	Recommendations    []string `json:"recommendations"`
}

// TravelItinerary is the root result of itinerary generation. The only field
// checked before the object is trusted is DailyPlans being non-empty.
type TravelItinerary struct {
	TripTitle           string                `json:"tripTitle"`
	TotalEstimatedCost  int                   `json:"totalEstimatedCost"`
	DailyPlans          []DailyPlan           `json:"dailyPlans"`
	WeatherOptimized    bool                  `json:"weatherOptimized"`
	SustainabilityScore float64               `json:"sustainabilityScore"`
	WeatherSummary      OverallWeatherSummary `json:"weatherSummary"`
	AIRecommendations   []string              `json:"aiRecommendations"`
	InstagramSpots      []string              `json:"instagramSpots"`
	GeneratedBy         string                `json:"generatedBy"`
	GeneratedAt         string                `json:"generatedAt"`
}
