package askcmder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Ask Command", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	startAgent := func(runBody string) *httptest.Server {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /run", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, runBody)
		})

		srv := httptest.NewServer(mux)
		DeferCleanup(srv.Close)
		return srv
	}

	stateWith := func(answer map[string]any) string {
		body, err := json.Marshal(map[string]any{
			"state": map[string]any{"assistant_response": answer},
		})
		Expect(err).NotTo(HaveOccurred())
		return string(body)
	}

	runAsk := func(args ...string) (string, string, error) {
		var out, errOut bytes.Buffer

		cmd := NewAskCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)
		cmd.SetArgs(args)
		err := cmd.ExecuteContext(ctx)

		return out.String(), errOut.String(), err
	}

	It("prints the assistant's answer", func() {
		srv := startAgent(stateWith(map[string]any{
			"answer": "Pack light cottons and sunscreen.",
			"day":    nil,
			"emoji":  "🎒",
		}))

		out, errOut, err := runAsk("what", "should", "I", "pack?", "--agent", srv.URL, "--plain")
		Expect(err).NotTo(HaveOccurred())

		Expect(out).To(ContainSubstring("🎒 Pack light cottons and sunscreen."))
		Expect(errOut).To(ContainSubstring("💬 Processing your question..."))
		Expect(errOut).To(ContainSubstring("✅ Response received!"))
	})

	It("tags answers tied to a specific day and activity", func() {
		srv := startAgent(stateWith(map[string]any{
			"answer":   "Swap the beach for the spice plantation.",
			"day":      2,
			"activity": "Spice plantation tour",
			"emoji":    "🌿",
		}))

		out, _, err := runAsk("rainy day plan?", "--agent", srv.URL, "--plain")
		Expect(err).NotTo(HaveOccurred())

		Expect(out).To(ContainSubstring("Day 2 · Spice plantation tour"))
		Expect(out).To(ContainSubstring("Swap the beach for the spice plantation."))
	})

	It("joins multiple words into one question", func() {
		var gotPrompt string
		mux := http.NewServeMux()
		mux.HandleFunc("POST /run", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				NewMessage struct {
					Parts []struct {
						Text string `json:"text"`
					} `json:"parts"`
				} `json:"newMessage"`
			}
			Expect(json.NewDecoder(r.Body).Decode(&body)).To(Succeed())
			gotPrompt = body.NewMessage.Parts[0].Text
			fmt.Fprint(w, stateWith(map[string]any{"answer": "ok"}))
		})
		capture := httptest.NewServer(mux)
		DeferCleanup(capture.Close)

		_, _, err := runAsk("best", "month", "for", "Goa", "--agent", capture.URL, "--plain")
		Expect(err).NotTo(HaveOccurred())
		Expect(gotPrompt).To(Equal("best month for Goa"))
	})

	It("requires a question", func() {
		_, _, err := runAsk("--agent", "http://localhost:1")
		Expect(err).To(HaveOccurred())
	})

	It("fails when the agent is unreachable", func() {
		_, _, err := runAsk("anything", "--agent", "http://localhost:1", "--plain")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("could not get response"))
	})
})
