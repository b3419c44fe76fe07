package schedule_test

import (
	"context"
	"errors"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/argusmon/argus-core/fakes"
	"github.com/argusmon/argus-core/models"
	"github.com/argusmon/argus-core/schedule"
)

var _ = Describe("Claimer", func() {
	var (
		claimer   *schedule.Claimer
		lockDB    *fakes.FakeSchedulingLockDB
		counter   *fakes.FakeJobCounter
		collector *fakes.FakeSchedulerCollector
		retry     schedule.RetryConfig
		ctx       context.Context
		claim     *schedule.Claim
		err       error
		lock      *models.DistributedSchedulingLock
	)

	BeforeEach(func() {
		ctx = context.Background()
		lockDB = &fakes.FakeSchedulingLockDB{}
		counter = &fakes.FakeJobCounter{}
		collector = &fakes.FakeSchedulerCollector{}
		retry = schedule.RetryConfig{MaxAttempts: 3, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
		lock = &models.DistributedSchedulingLock{ID: 1, JobCount: 25, CurrentIndex: 20, NextScheduleStartTime: 1_700_000_060_000, Version: 3}
	})

	JustBeforeEach(func() {
		claimer = schedule.NewClaimer(lagertest.NewTestLogger("claimer-test"), lockDB, counter, collector,
			models.AlertScheduling, 10, time.Minute, retry)
		claim, err = claimer.Claim(ctx)
	})

	Context("when a block is claimed", func() {
		BeforeEach(func() {
			lockDB.UpdateAndGetReturns(lock, true, nil)
		})

		It("returns the claimed range and window", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(claim.Claimed).To(BeTrue())
			Expect(claim.Start).To(Equal(int64(10)))
			Expect(claim.End).To(Equal(int64(20)))
			Expect(claim.WindowStart).To(Equal(int64(1_700_000_000_000)))
			Expect(claim.Lock).To(Equal(lock))
			Expect(collector.IncClaimsCallCount()).To(Equal(1))

			_, lockType, blockSize, refreshInterval, jobCounter := lockDB.UpdateAndGetArgsForCall(0)
			Expect(lockType).To(Equal(models.AlertScheduling))
			Expect(blockSize).To(Equal(int64(10)))
			Expect(refreshInterval).To(Equal(time.Minute))
			Expect(jobCounter).To(Equal(counter))
		})
	})

	Context("when the window is exhausted", func() {
		BeforeEach(func() {
			lockDB.UpdateAndGetReturns(lock, false, nil)
		})

		It("reports nothing claimed", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(claim.Claimed).To(BeFalse())
			Expect(collector.IncClaimsCallCount()).To(BeZero())
		})
	})

	Context("when a concurrent writer wins the version check", func() {
		BeforeEach(func() {
			lockDB.UpdateAndGetReturnsOnCall(0, nil, false, models.ErrOptimisticLockConflict)
			lockDB.UpdateAndGetReturnsOnCall(1, lock, true, nil)
		})

		It("retries the claim", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(claim.Claimed).To(BeTrue())
			Expect(lockDB.UpdateAndGetCallCount()).To(Equal(2))
			Expect(collector.IncLockConflictsCallCount()).To(Equal(1))
		})
	})

	Context("when conflicts persist", func() {
		BeforeEach(func() {
			lockDB.UpdateAndGetReturns(nil, false, models.ErrOptimisticLockConflict)
		})

		It("gives up after the configured attempts", func() {
			Expect(err).To(MatchError(models.ErrOptimisticLockConflict))
			Expect(lockDB.UpdateAndGetCallCount()).To(Equal(3))
			Expect(collector.IncLockConflictsCallCount()).To(Equal(3))
		})
	})

	Context("when the store fails", func() {
		BeforeEach(func() {
			lockDB.UpdateAndGetReturns(nil, false, errors.New("connection reset"))
		})

		It("does not retry", func() {
			Expect(err).To(MatchError("connection reset"))
			Expect(lockDB.UpdateAndGetCallCount()).To(Equal(1))
		})
	})

	Context("when the context is cancelled", func() {
		BeforeEach(func() {
			var cancel context.CancelFunc
			ctx, cancel = context.WithCancel(context.Background())
			cancel()
			lockDB.UpdateAndGetReturns(nil, false, models.ErrOptimisticLockConflict)
		})

		It("stops retrying", func() {
			Expect(err).To(HaveOccurred())
			Expect(lockDB.UpdateAndGetCallCount()).To(Equal(1))
		})
	})
})
