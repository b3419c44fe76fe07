package healthendpoint

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SchedulerCollector counts what the scheduler and the interlock maintainer do.
type SchedulerCollector interface {
	prometheus.Collector
	IncClaims()
	IncLockConflicts()
	IncInterlockAcquired()
	IncInterlockLost()
	AddEvaluatedAlerts(n int)
	AddFailedAlerts(n int)
	AddSentNotifications(n int)
}

type schedulerCollector struct {
	claims            prometheus.Counter
	lockConflicts     prometheus.Counter
	interlockAcquired prometheus.Counter
	interlockLost     prometheus.Counter
	evaluatedAlerts   prometheus.Counter
	failedAlerts      prometheus.Counter
	sentNotifications prometheus.Counter
}

func NewSchedulerCollector(namespace, subSystem string) SchedulerCollector {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      name,
			Help:      help,
		})
	}
	return &schedulerCollector{
		claims:            counter("claims_total", "Number of job blocks claimed from the scheduling lock"),
		lockConflicts:     counter("lock_conflicts_total", "Number of scheduling lock updates lost to a concurrent writer"),
		interlockAcquired: counter("interlock_acquired_total", "Number of times the global interlock was acquired"),
		interlockLost:     counter("interlock_lost_total", "Number of times a held global interlock was lost"),
		evaluatedAlerts:   counter("evaluated_alerts_total", "Number of alerts evaluated"),
		failedAlerts:      counter("failed_alerts_total", "Number of alerts whose evaluation failed"),
		sentNotifications: counter("sent_notifications_total", "Number of notification events delivered"),
	}
}

func (c *schedulerCollector) counters() []prometheus.Counter {
	return []prometheus.Counter{c.claims, c.lockConflicts, c.interlockAcquired, c.interlockLost, c.evaluatedAlerts, c.failedAlerts, c.sentNotifications}
}

func (c *schedulerCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, counter := range c.counters() {
		ch <- counter.Desc()
	}
}

func (c *schedulerCollector) Collect(ch chan<- prometheus.Metric) {
	for _, counter := range c.counters() {
		ch <- counter
	}
}

func (c *schedulerCollector) IncClaims()            { c.claims.Inc() }
func (c *schedulerCollector) IncLockConflicts()     { c.lockConflicts.Inc() }
func (c *schedulerCollector) IncInterlockAcquired() { c.interlockAcquired.Inc() }
func (c *schedulerCollector) IncInterlockLost()     { c.interlockLost.Inc() }

func (c *schedulerCollector) AddEvaluatedAlerts(n int)   { c.evaluatedAlerts.Add(float64(n)) }
func (c *schedulerCollector) AddFailedAlerts(n int)      { c.failedAlerts.Add(float64(n)) }
func (c *schedulerCollector) AddSentNotifications(n int) { c.sentNotifications.Add(float64(n)) }
