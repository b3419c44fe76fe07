package models_test

import (
	"errors"
	"time"

	"github.com/argusmon/argus-core/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Suspension", func() {
	Describe("SuspensionRecord", func() {
		var record *models.SuspensionRecord

		BeforeEach(func() {
			var err error
			record, err = models.NewSuspensionRecord("admin", "alice", models.SubSystemAPI, 100, 100)
			Expect(err).NotTo(HaveOccurred())
		})

		It("accepts positive timestamps and -1 only", func() {
			Expect(record.AddInfraction(200)).To(Succeed())
			Expect(record.AddInfraction(models.IndefiniteTimestamp)).To(Succeed())
			Expect(errors.Is(record.AddInfraction(0), models.ErrInvalidArgument)).To(BeTrue())
			Expect(errors.Is(record.AddInfraction(-2), models.ErrInvalidArgument)).To(BeTrue())
			Expect(record.InfractionHistory).To(Equal([]int64{100, 200, -1}))
		})

		It("counts strictly after start with no upper bound", func() {
			Expect(record.AddInfraction(200)).To(Succeed())
			Expect(record.AddInfraction(300)).To(Succeed())
			Expect(record.CountSince(100)).To(Equal(2))
			Expect(record.CountSince(99)).To(Equal(3))
			Expect(record.CountSince(300)).To(Equal(0))
		})

		It("is suspended before suspendedUntil or indefinitely", func() {
			record.SuspendedUntil = 1000
			Expect(record.IsSuspended(999)).To(BeTrue())
			Expect(record.IsSuspended(1000)).To(BeFalse())

			record.SuspendedUntil = models.IndefiniteTimestamp
			Expect(record.IsSuspended(1 << 60)).To(BeTrue())
			Expect(record.IsSuspendedIndefinitely()).To(BeTrue())
		})

		It("counts across subsystems when none is given", func() {
			other, err := models.NewSuspensionRecord("admin", "alice", models.SubSystemPosting, 150, 150)
			Expect(err).NotTo(HaveOccurred())
			records := []*models.SuspensionRecord{record, other}
			Expect(models.CountRecordInfractions(records, "", 0)).To(Equal(2))
			Expect(models.CountRecordInfractions(records, models.SubSystemPosting, 0)).To(Equal(1))
		})
	})

	Describe("Infraction", func() {
		It("counts strictly inside the window", func() {
			infractions := []*models.Infraction{
				{InfractionTimestamp: 100},
				{InfractionTimestamp: 150},
				{InfractionTimestamp: 200},
			}
			Expect(models.CountInfractions(infractions, 100, 200)).To(Equal(1))
			Expect(models.CountInfractions(infractions, 99, 201)).To(Equal(3))
		})

		It("treats -1 as an indefinite suspension", func() {
			i := &models.Infraction{ExpirationTimestamp: models.IndefiniteTimestamp}
			Expect(i.IsSuspended(time.Now().UnixMilli())).To(BeTrue())
			i.ExpirationTimestamp = 10
			Expect(i.IsSuspended(9)).To(BeTrue())
			Expect(i.IsSuspended(10)).To(BeFalse())
		})
	})

	Describe("DefaultSuspensionLevels", func() {
		It("escalates over five levels", func() {
			levels := models.DefaultSuspensionLevels(models.SubSystemAPI)
			hour := time.Hour.Milliseconds()
			Expect(levels.Levels).To(Equal(map[int]int64{
				1: hour, 2: 10 * hour, 3: 24 * hour, 4: 72 * hour, 5: 240 * hour,
			}))
			Expect(levels.InfractionCounts()).To(Equal([]int{1, 2, 3, 4, 5}))
		})
	})

	Describe("ParseSubSystem", func() {
		It("ignores case", func() {
			s, err := models.ParseSubSystem("posting")
			Expect(err).NotTo(HaveOccurred())
			Expect(s).To(Equal(models.SubSystemPosting))
		})
	})
})
