package sync_test

import (
	"errors"
	"os"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tedsuo/ifrit"

	"github.com/argusmon/argus-core/fakes"
	"github.com/argusmon/argus-core/models"
	. "github.com/argusmon/argus-core/sync"
)

var _ = Describe("InterlockMaintainer", func() {
	var (
		maintainer    *InterlockMaintainer
		interlockDB   *fakes.FakeInterlockDB
		collector     *fakes.FakeSchedulerCollector
		fclock        *fakeclock.FakeClock
		process       ifrit.Process
		acquiredCount int
		lostChan      chan struct{}
		conf          InterlockConfig
	)

	BeforeEach(func() {
		interlockDB = &fakes.FakeInterlockDB{}
		collector = &fakes.FakeSchedulerCollector{}
		fclock = fakeclock.NewFakeClock(time.UnixMilli(1_700_000_000_000))
		acquiredCount = 0
		lostChan = make(chan struct{}, 1)
		conf = InterlockConfig{Enabled: true, LockType: 7, Expiration: 30 * time.Second, RefreshInterval: 10 * time.Second}
	})

	JustBeforeEach(func() {
		maintainer = NewInterlockMaintainer(lagertest.NewTestLogger("interlock-test"), fclock, interlockDB, collector, conf, "10.0.0.1",
			func() { acquiredCount++ },
			func() { lostChan <- struct{}{} })
		process = ifrit.Background(maintainer)
	})

	AfterEach(func() {
		process.Signal(os.Interrupt)
		Eventually(process.Wait()).Should(Receive(BeNil()))
	})

	Context("when the lock is free", func() {
		BeforeEach(func() {
			interlockDB.ObtainLockReturns("18bcfe56800", nil)
			interlockDB.RefreshLockReturns("18bcfe56801", nil)
		})

		It("becomes ready holding the lock and refreshes it", func() {
			Eventually(process.Ready()).Should(BeClosed())
			Expect(maintainer.Held()).To(BeTrue())
			Expect(acquiredCount).To(Equal(1))
			Expect(collector.IncInterlockAcquiredCallCount()).To(Equal(1))

			_, lockType, expiration, note := interlockDB.ObtainLockArgsForCall(0)
			Expect(lockType).To(Equal(int64(7)))
			Expect(expiration).To(Equal(30 * time.Second))
			Expect(note).To(Equal("10.0.0.1"))

			fclock.WaitForWatcherAndIncrement(10 * time.Second)
			Eventually(interlockDB.RefreshLockCallCount).Should(Equal(1))
			_, _, key, _ := interlockDB.RefreshLockArgsForCall(0)
			Expect(key).To(Equal("18bcfe56800"))

			fclock.WaitForWatcherAndIncrement(10 * time.Second)
			Eventually(interlockDB.RefreshLockCallCount).Should(Equal(2))
			_, _, key, _ = interlockDB.RefreshLockArgsForCall(1)
			Expect(key).To(Equal("18bcfe56801"))
		})

		It("releases the lock on signal", func() {
			Eventually(process.Ready()).Should(BeClosed())
			process.Signal(os.Interrupt)
			Eventually(process.Wait()).Should(Receive(BeNil()))

			Expect(interlockDB.ReleaseLockCallCount()).To(Equal(1))
			_, _, key := interlockDB.ReleaseLockArgsForCall(0)
			Expect(key).To(Equal("18bcfe56800"))
			Expect(maintainer.Held()).To(BeFalse())
		})
	})

	Context("when a competitor holds the lock", func() {
		BeforeEach(func() {
			interlockDB.ObtainLockReturnsOnCall(0, "", models.ErrLockUnavailable)
			interlockDB.ObtainLockReturnsOnCall(1, "18bcfe56800", nil)
		})

		It("stays on standby until the lock can be obtained", func() {
			Consistently(process.Ready()).ShouldNot(BeClosed())
			Expect(maintainer.Held()).To(BeFalse())

			fclock.WaitForWatcherAndIncrement(10 * time.Second)
			Eventually(process.Ready()).Should(BeClosed())
			Expect(maintainer.Held()).To(BeTrue())
			Expect(interlockDB.ObtainLockCallCount()).To(Equal(2))
		})

		It("does not release a lock it does not hold", func() {
			process.Signal(os.Interrupt)
			Eventually(process.Wait()).Should(Receive(BeNil()))
			Expect(interlockDB.ReleaseLockCallCount()).To(BeZero())
		})
	})

	Context("when a refresh fails", func() {
		BeforeEach(func() {
			interlockDB.ObtainLockReturnsOnCall(0, "18bcfe56800", nil)
			interlockDB.ObtainLockReturnsOnCall(1, "", models.ErrLockUnavailable)
			interlockDB.RefreshLockReturns("", models.ErrLockNotOwned)
		})

		It("reports the lost lock and tries to win it back", func() {
			Eventually(process.Ready()).Should(BeClosed())

			fclock.WaitForWatcherAndIncrement(10 * time.Second)
			Eventually(lostChan).Should(Receive())
			Eventually(maintainer.Held).Should(BeFalse())
			Expect(collector.IncInterlockLostCallCount()).To(Equal(1))

			fclock.WaitForWatcherAndIncrement(10 * time.Second)
			Eventually(interlockDB.ObtainLockCallCount).Should(Equal(2))
		})
	})

	Context("when the store fails", func() {
		BeforeEach(func() {
			interlockDB.ObtainLockReturns("", errors.New("connection refused"))
		})

		It("keeps retrying", func() {
			fclock.WaitForWatcherAndIncrement(10 * time.Second)
			Eventually(interlockDB.ObtainLockCallCount).Should(Equal(2))
			Expect(maintainer.Held()).To(BeFalse())
		})
	})
})
