package plancmder

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const itineraryState = `{
	"state": {
		"travel_itinerary": {
			"tripTitle": "Goa Adventure Week",
			"totalEstimatedCost": 43500,
			"dailyPlans": [
				{
					"day": 1,
					"activities": [
						{"id": "act-1", "title": "🏖️ Baga Beach", "type": "attraction", "cost": 0, "timing": "10:00 AM - 1:00 PM", "description": "Start slow with sand and shacks"}
					],
					"weatherSummary": {"condition": "Sunny"}
				},
				{
					"day": 2,
					"activities": [
						{"id": "act-2", "title": "🤿 Scuba at Grande Island", "type": "adventure", "cost": 4500}
					]
				}
			],
			"aiRecommendations": ["Carry cash for beach shacks"]
		}
	}
}`

var _ = Describe("Plan Command", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	startAgent := func(runBody string, runStatus int) *httptest.Server {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /apps/", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{}`)
		})
		mux.HandleFunc("POST /run", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(runStatus)
			fmt.Fprint(w, runBody)
		})

		srv := httptest.NewServer(mux)
		DeferCleanup(srv.Close)
		return srv
	}

	runPlan := func(args ...string) (string, string, error) {
		var out, errOut bytes.Buffer

		cmd := NewPlanCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)
		cmd.SetArgs(args)
		err := cmd.ExecuteContext(ctx)

		return out.String(), errOut.String(), err
	}

	It("renders a generated itinerary", func() {
		srv := startAgent(itineraryState, http.StatusOK)

		out, errOut, err := runPlan("Goa", "--agent", srv.URL, "--budget", "45000", "--days", "2", "--plain")
		Expect(err).NotTo(HaveOccurred())

		Expect(out).To(ContainSubstring("Goa Adventure Week"))
		Expect(out).To(ContainSubstring("Estimated total: ₹43500"))
		Expect(out).To(ContainSubstring("Day 1 — Sunny"))
		Expect(out).To(ContainSubstring("🤿 Scuba at Grande Island"))
		Expect(out).To(ContainSubstring("Carry cash for beach shacks"))

		// Progress goes to stderr, not stdout.
		Expect(errOut).To(ContainSubstring("🚀 Generating your itinerary..."))
		Expect(out).NotTo(ContainSubstring("Generating your itinerary"))
	})

	It("shows the budget split for the requested budget", func() {
		srv := startAgent(itineraryState, http.StatusOK)

		out, _, err := runPlan("Goa", "--agent", srv.URL, "--budget", "45000", "--days", "2", "--plain")
		Expect(err).NotTo(HaveOccurred())

		Expect(out).To(ContainSubstring("accommodation ₹18000"))
		Expect(out).To(ContainSubstring("food ₹4500"))
	})

	It("requires the budget and days flags", func() {
		_, _, err := runPlan("Goa")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("required"))
	})

	It("rejects a non-positive budget before calling the agent", func() {
		_, _, err := runPlan("Goa", "--agent", "http://localhost:1", "--budget", "0", "--days", "2", "--plain")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("budget"))
	})

	It("fails when the agent returns nothing usable", func() {
		srv := startAgent(`[]`, http.StatusOK)

		_, _, err := runPlan("Goa", "--agent", srv.URL, "--budget", "45000", "--days", "2", "--plain")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("could not generate itinerary"))
	})

	It("fails when the agent is unreachable", func() {
		_, _, err := runPlan("Goa", "--agent", "http://localhost:1", "--budget", "45000", "--days", "2", "--plain")
		Expect(err).To(HaveOccurred())
	})
})
