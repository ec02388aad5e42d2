package trip

// CostBreakdown is the fixed allocation the planner displays alongside an
// itinerary: 40% accommodation, 30% activities, 20% transport, 10% food.
type CostBreakdown struct {
	Accommodation int `json:"accommodation"`
	Activities    int `json:"activities"`
	Transport     int `json:"transport"`
	Food          int `json:"food"`
}

// AllocateBudget splits a total budget by the fixed 40/30/20/10 percentages.
// The food share absorbs integer-division remainders so the four parts always
// sum to the total.
func AllocateBudget(total int) CostBreakdown {
	b := CostBreakdown{
		Accommodation: total * 40 / 100,
		Activities:    total * 30 / 100,
		Transport:     total * 20 / 100,
	}
	b.Food = total - b.Accommodation - b.Activities - b.Transport
	return b
}
