package models_test

import (
	"github.com/argusmon/argus-core/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Locks", func() {
	It("renders interlock keys as lowercase hex", func() {
		lock := &models.GlobalInterlock{LockTime: 1_700_000_000_123}
		Expect(lock.Key()).To(Equal("18bcfe5687b"))
	})

	It("floors to the beginning of the minute", func() {
		Expect(models.ToBeginOfMinute(120_000)).To(Equal(int64(120_000)))
		Expect(models.ToBeginOfMinute(179_999)).To(Equal(int64(120_000)))
	})

	It("reports the claimed range", func() {
		lock := &models.DistributedSchedulingLock{CurrentIndex: 300, JobCount: 250}
		start, end := lock.ClaimedRange(100)
		Expect(start).To(Equal(int64(200)))
		Expect(end).To(Equal(int64(300)))
		Expect(lock.HasUnclaimedJobs(100)).To(BeTrue())
		lock.CurrentIndex = 400
		Expect(lock.HasUnclaimedJobs(100)).To(BeFalse())
	})

	It("names lock types", func() {
		Expect(models.AlertScheduling.String()).To(Equal("ALERT_SCHEDULING"))
	})
})
