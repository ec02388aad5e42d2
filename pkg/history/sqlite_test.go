package history_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/numaan0/travel-genius/pkg/history"
)

var _ = Describe("SQLiteStorer", func() {
	var (
		storer *history.SQLiteStorer
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		storer, err = history.NewSQLiteStorer(":memory:")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(storer.Close()).To(Succeed())
	})

	It("creates the database file on disk", func() {
		path := filepath.Join(GinkgoT().TempDir(), "history.db")

		fileStorer, err := history.NewSQLiteStorer(path)
		Expect(err).NotTo(HaveOccurred())
		defer fileStorer.Close()

		rec := history.NewRecord(history.KindChat, "persisted?", json.RawMessage(`{"answer":"yes"}`))
		Expect(fileStorer.Put(ctx, rec)).To(Succeed())

		_, err = os.Stat(path)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Put and Get", func() {
		It("round-trips a record", func() {
			rec := history.NewRecord(history.KindItinerary, "3 days in Goa", json.RawMessage(`{"dailyPlans":[{"day":1}]}`))

			Expect(storer.Put(ctx, rec)).To(Succeed())

			retrieved, err := storer.Get(ctx, rec.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(retrieved.ID).To(Equal(rec.ID))
			Expect(retrieved.Kind).To(Equal(history.KindItinerary))
			Expect(retrieved.Prompt).To(Equal("3 days in Goa"))
			Expect([]byte(retrieved.Result)).To(MatchJSON(`{"dailyPlans":[{"day":1}]}`))
			Expect(retrieved.CreatedAt.UTC()).To(BeTemporally("~", rec.CreatedAt.UTC(), time.Millisecond))
		})

		It("returns ErrNotFound for an unknown ID", func() {
			_, err := storer.Get(ctx, "nonexistent")
			Expect(err).To(HaveOccurred())

			var notFoundErr history.ErrNotFound
			Expect(err).To(BeAssignableToTypeOf(notFoundErr))
		})

		It("is idempotent for duplicate puts", func() {
			rec := history.NewRecord(history.KindChat, "dedup me", json.RawMessage(`{"answer":"ok"}`))

			Expect(storer.Put(ctx, rec)).To(Succeed())
			Expect(storer.Put(ctx, rec)).To(Succeed())

			records, err := storer.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
		})

		It("rejects nil records", func() {
			err := storer.Put(ctx, nil)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("nil record"))
		})
	})

	Describe("List and ListKind", func() {
		It("returns records newest first", func() {
			older := history.NewRecord(history.KindChat, "first", json.RawMessage(`{"answer":"1"}`))
			older.CreatedAt = time.Now().UTC().Add(-time.Hour)
			newer := history.NewRecord(history.KindChat, "second", json.RawMessage(`{"answer":"2"}`))

			Expect(storer.Put(ctx, older)).To(Succeed())
			Expect(storer.Put(ctx, newer)).To(Succeed())

			records, err := storer.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].Prompt).To(Equal("second"))
			Expect(records[1].Prompt).To(Equal("first"))
		})

		It("filters by kind", func() {
			chat := history.NewRecord(history.KindChat, "a question", json.RawMessage(`{"answer":"ok"}`))
			itinerary := history.NewRecord(history.KindItinerary, "a trip", json.RawMessage(`{"dailyPlans":[]}`))

			Expect(storer.Put(ctx, chat)).To(Succeed())
			Expect(storer.Put(ctx, itinerary)).To(Succeed())

			records, err := storer.ListKind(ctx, history.KindChat)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Kind).To(Equal(history.KindChat))
		})

		It("returns no records on an empty store", func() {
			records, err := storer.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(BeEmpty())
		})
	})
})
