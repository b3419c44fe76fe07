package scheduler_test

import (
	"context"
	"errors"
	"os"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tedsuo/ifrit"

	"github.com/argusmon/argus-core/alerting"
	"github.com/argusmon/argus-core/fakes"
	"github.com/argusmon/argus-core/models"
	"github.com/argusmon/argus-core/schedule"
	"github.com/argusmon/argus-core/scheduler"
)

var _ = Describe("Runner", func() {
	var (
		runner    *scheduler.Runner
		claimer   *fakes.FakeBlockClaimer
		lister    *fakes.FakeDueAlertLister
		processor *fakes.FakeAlertProcessor
		collector *fakes.FakeSchedulerCollector
		fclock    *fakeclock.FakeClock
		ctx       context.Context
		due       []*models.Alert
	)

	const windowStart = int64(1_700_000_040_000)

	block := func(start, end int64) *schedule.Claim {
		return &schedule.Claim{Start: start, End: end, Claimed: true, WindowStart: windowStart}
	}

	BeforeEach(func() {
		ctx = context.Background()
		claimer = &fakes.FakeBlockClaimer{}
		lister = &fakes.FakeDueAlertLister{}
		processor = &fakes.FakeAlertProcessor{}
		collector = &fakes.FakeSchedulerCollector{}
		fclock = fakeclock.NewFakeClock(time.UnixMilli(1_700_000_045_000))

		due = nil
		for id := int64(1); id <= 5; id++ {
			due = append(due, &models.Alert{Entity: models.Entity{ID: id}})
		}
		lister.DueAlertsReturns(due, nil)
		processor.ProcessStub = func(_ context.Context, alerts []*models.Alert) alerting.ProcessResult {
			return alerting.ProcessResult{Evaluated: len(alerts), Sent: 1}
		}

		runner = scheduler.NewRunner(lagertest.NewTestLogger("scheduler-test"), fclock, claimer, lister, processor, collector, 5*time.Second)
	})

	Describe("ClaimAndProcess", func() {
		Context("when blocks are claimed until the window is exhausted", func() {
			BeforeEach(func() {
				claimer.ClaimReturnsOnCall(0, block(0, 2), nil)
				claimer.ClaimReturnsOnCall(1, block(4, 6), nil)
				claimer.ClaimReturnsOnCall(2, &schedule.Claim{Claimed: false}, nil)
			})

			It("processes the alerts of every claimed block", func() {
				result := runner.ClaimAndProcess(ctx)
				Expect(result).To(Equal(alerting.ProcessResult{Evaluated: 3, Sent: 2}))
				Expect(claimer.ClaimCallCount()).To(Equal(3))

				Expect(processor.ProcessCallCount()).To(Equal(2))
				_, first := processor.ProcessArgsForCall(0)
				Expect(first).To(Equal(due[0:2]))
				_, second := processor.ProcessArgsForCall(1)
				Expect(second).To(Equal(due[4:5]))

				_, since := lister.DueAlertsArgsForCall(0)
				Expect(since).To(Equal(windowStart))

				Expect(collector.AddEvaluatedAlertsCallCount()).To(Equal(2))
				Expect(collector.AddEvaluatedAlertsArgsForCall(1)).To(Equal(1))
				Expect(collector.AddSentNotificationsArgsForCall(0)).To(Equal(1))
			})
		})

		Context("when a block is past the end of the due list", func() {
			BeforeEach(func() {
				claimer.ClaimReturnsOnCall(0, block(10, 12), nil)
				claimer.ClaimReturnsOnCall(1, &schedule.Claim{Claimed: false}, nil)
			})

			It("processes nothing", func() {
				Expect(runner.ClaimAndProcess(ctx)).To(Equal(alerting.ProcessResult{}))
				Expect(processor.ProcessCallCount()).To(BeZero())
				Expect(claimer.ClaimCallCount()).To(Equal(2))
			})
		})

		Context("when the claim fails", func() {
			BeforeEach(func() {
				claimer.ClaimReturns(nil, models.ErrOptimisticLockConflict)
			})

			It("stops for this pass", func() {
				runner.ClaimAndProcess(ctx)
				Expect(claimer.ClaimCallCount()).To(Equal(1))
				Expect(processor.ProcessCallCount()).To(BeZero())
			})
		})

		Context("when the due alerts cannot be listed", func() {
			BeforeEach(func() {
				claimer.ClaimReturns(block(0, 2), nil)
				lister.DueAlertsReturns(nil, errors.New("db down"))
			})

			It("stops for this pass", func() {
				runner.ClaimAndProcess(ctx)
				Expect(claimer.ClaimCallCount()).To(Equal(1))
				Expect(processor.ProcessCallCount()).To(BeZero())
			})
		})
	})

	Describe("Run", func() {
		var process ifrit.Process

		BeforeEach(func() {
			claimer.ClaimReturns(&schedule.Claim{Claimed: false}, nil)
		})

		JustBeforeEach(func() {
			process = ifrit.Invoke(runner)
		})

		AfterEach(func() {
			process.Signal(os.Interrupt)
			Eventually(process.Wait()).Should(Receive(BeNil()))
		})

		It("claims on every tick", func() {
			Consistently(claimer.ClaimCallCount).Should(BeZero())

			fclock.WaitForWatcherAndIncrement(5 * time.Second)
			Eventually(claimer.ClaimCallCount).Should(Equal(1))

			Eventually(func() int {
				fclock.Increment(5 * time.Second)
				return claimer.ClaimCallCount()
			}).Should(BeNumerically(">=", 2))
		})
	})
})
