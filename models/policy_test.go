package models_test

import (
	"errors"

	"github.com/argusmon/argus-core/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Policy", func() {
	var policy *models.Policy

	BeforeEach(func() {
		policy = &models.Policy{
			Service:     "argus",
			Name:        "datapoints",
			Owners:      []string{"ops"},
			Users:       []string{"alice"},
			TriggerType: models.GreaterThan,
			Aggregator:  models.AggregatorSum,
			Threshold:   []float64{100},
			TimeUnit:    "5min",
			CronEntry:   "*/5 * * * *",
			SuspensionLevels: []*models.SuspensionLevel{
				{LevelNumber: 2, InfractionCount: 3, SuspensionTime: 7200},
				{LevelNumber: 1, InfractionCount: 1, SuspensionTime: 3600},
			},
		}
	})

	It("is valid", func() {
		Expect(policy.Validate()).To(Succeed())
	})

	It("names its metric after the service and subsystem", func() {
		Expect(policy.MetricName()).To(Equal("argus:datapoints"))
		policy.SubSystem = "posting"
		Expect(policy.MetricName()).To(Equal("argus.posting:datapoints"))
	})

	It("orders suspension levels by level number", func() {
		levels := policy.SortedSuspensionLevels()
		Expect(levels[0].LevelNumber).To(Equal(1))
		Expect(levels[1].LevelNumber).To(Equal(2))
		Expect(policy.SuspensionLadder()).To(Equal(map[int]int64{1: 3600, 3: 7200}))
	})

	It("rejects a bad cron entry", func() {
		policy.CronEntry = "every day"
		Expect(errors.Is(policy.Validate(), models.ErrInvalidArgument)).To(BeTrue())
	})

	It("rejects duplicate level numbers", func() {
		policy.SuspensionLevels[0].LevelNumber = 1
		Expect(errors.Is(policy.Validate(), models.ErrInvalidArgument)).To(BeTrue())
	})

	It("rejects non positive levels", func() {
		policy.SuspensionLevels[0].LevelNumber = 0
		Expect(errors.Is(policy.Validate(), models.ErrInvalidArgument)).To(BeTrue())
	})

	It("evaluates with a band when two thresholds are configured", func() {
		policy.TriggerType = models.NotBetween
		policy.Threshold = []float64{10, 20}
		value := 25.0
		fired, err := policy.EvaluateValue(&value)
		Expect(err).NotTo(HaveOccurred())
		Expect(fired).To(BeTrue())
	})

	DescribeTable("parses the time unit",
		func(unit string, expected int64) {
			policy.TimeUnit = unit
			Expect(policy.TimeUnitMillis()).To(Equal(expected))
		},
		Entry("minutes", "5m", int64(300_000)),
		Entry("long minutes", "5min", int64(300_000)),
		Entry("days", "1d", int64(86_400_000)),
		Entry("bare millis", "1500", int64(1500)),
	)

	It("rejects an unknown time unit", func() {
		policy.TimeUnit = "5y"
		_, err := policy.TimeUnitMillis()
		Expect(err).To(MatchError(models.ErrInvalidArgument))
	})
})
