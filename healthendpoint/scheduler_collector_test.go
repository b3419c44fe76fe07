package healthendpoint_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"

	. "github.com/argusmon/argus-core/healthendpoint"
)

var _ = Describe("SchedulerCollector", func() {
	var collector SchedulerCollector

	BeforeEach(func() {
		collector = NewSchedulerCollector("argus", "scheduler")
	})

	It("counts claims, conflicts and interlock transitions", func() {
		collector.IncClaims()
		collector.IncClaims()
		collector.IncLockConflicts()
		collector.IncInterlockAcquired()

		expected := `
# HELP argus_scheduler_claims_total Number of job blocks claimed from the scheduling lock
# TYPE argus_scheduler_claims_total counter
argus_scheduler_claims_total 2
# HELP argus_scheduler_lock_conflicts_total Number of scheduling lock updates lost to a concurrent writer
# TYPE argus_scheduler_lock_conflicts_total counter
argus_scheduler_lock_conflicts_total 1
# HELP argus_scheduler_interlock_acquired_total Number of times the global interlock was acquired
# TYPE argus_scheduler_interlock_acquired_total counter
argus_scheduler_interlock_acquired_total 1
`
		Expect(testutil.CollectAndCompare(collector, strings.NewReader(expected),
			"argus_scheduler_claims_total", "argus_scheduler_lock_conflicts_total", "argus_scheduler_interlock_acquired_total")).To(Succeed())
	})

	It("adds evaluation results", func() {
		collector.AddEvaluatedAlerts(5)
		collector.AddFailedAlerts(1)
		collector.AddSentNotifications(3)

		expected := `
# HELP argus_scheduler_sent_notifications_total Number of notification events delivered
# TYPE argus_scheduler_sent_notifications_total counter
argus_scheduler_sent_notifications_total 3
`
		Expect(testutil.CollectAndCompare(collector, strings.NewReader(expected), "argus_scheduler_sent_notifications_total")).To(Succeed())
		Expect(testutil.CollectAndCount(collector)).To(Equal(7))
	})
})
