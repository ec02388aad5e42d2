package history_test

import (
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/numaan0/travel-genius/pkg/history"
)

var _ = Describe("Record", func() {
	result := json.RawMessage(`{"answer":"pack light","day":null,"activity":null,"emoji":"🎒"}`)

	Describe("NewRecord", func() {
		It("computes a non-empty ID", func() {
			rec := history.NewRecord(history.KindChat, "what to pack?", result)

			Expect(rec.ID).NotTo(BeEmpty())
		})

		It("stamps the creation time", func() {
			rec := history.NewRecord(history.KindChat, "what to pack?", result)

			Expect(rec.CreatedAt).To(BeTemporally("~", time.Now(), time.Minute))
		})

		It("produces the same ID for identical exchanges", func() {
			rec1 := history.NewRecord(history.KindChat, "what to pack?", result)
			rec2 := history.NewRecord(history.KindChat, "what to pack?", result)

			Expect(rec1.ID).To(Equal(rec2.ID))
		})

		It("produces different IDs for different prompts", func() {
			rec1 := history.NewRecord(history.KindChat, "what to pack?", result)
			rec2 := history.NewRecord(history.KindChat, "where to eat?", result)

			Expect(rec1.ID).NotTo(Equal(rec2.ID))
		})

		It("produces different IDs for different kinds", func() {
			rec1 := history.NewRecord(history.KindChat, "same prompt", result)
			rec2 := history.NewRecord(history.KindItinerary, "same prompt", result)

			Expect(rec1.ID).NotTo(Equal(rec2.ID))
		})

		It("ignores the creation time when hashing", func() {
			rec1 := history.NewRecord(history.KindChat, "what to pack?", result)
			time.Sleep(5 * time.Millisecond)
			rec2 := history.NewRecord(history.KindChat, "what to pack?", result)

			Expect(rec1.ID).To(Equal(rec2.ID))
			Expect(rec1.CreatedAt).NotTo(Equal(rec2.CreatedAt))
		})
	})
})
