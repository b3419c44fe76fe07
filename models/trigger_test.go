package models_test

import (
	"errors"

	"github.com/argusmon/argus-core/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func float(v float64) *float64 {
	return &v
}

var _ = Describe("Trigger", func() {
	Describe("Evaluate", func() {
		DescribeTable("comparisons at the boundaries",
			func(triggerType models.TriggerType, threshold float64, secondary *float64, value float64, expected bool) {
				fired, err := models.Evaluate(triggerType, threshold, secondary, &value)
				Expect(err).NotTo(HaveOccurred())
				Expect(fired).To(Equal(expected))
			},
			Entry("greater than, equal value", models.GreaterThan, 5.0, nil, 5.0, false),
			Entry("greater than, larger value", models.GreaterThan, 5.0, nil, 5.1, true),
			Entry("greater than or eq, equal value", models.GreaterThanOrEq, 5.0, nil, 5.0, true),
			Entry("greater than or eq, smaller value", models.GreaterThanOrEq, 5.0, nil, 4.9, false),
			Entry("less than, equal value", models.LessThan, 5.0, nil, 5.0, false),
			Entry("less than, smaller value", models.LessThan, 5.0, nil, 4.9, true),
			Entry("less than or eq, equal value", models.LessThanOrEq, 5.0, nil, 5.0, true),
			Entry("less than or eq, larger value", models.LessThanOrEq, 5.0, nil, 5.1, false),
			Entry("equal", models.Equal, 5.0, nil, 5.0, true),
			Entry("equal, different value", models.Equal, 5.0, nil, 6.0, false),
			Entry("not equal", models.NotEqual, 5.0, nil, 5.0, false),
			Entry("not equal, different value", models.NotEqual, 5.0, nil, 6.0, true),
			Entry("between, lower bound", models.Between, 3.0, float(7), 3.0, true),
			Entry("between, upper bound", models.Between, 3.0, float(7), 7.0, true),
			Entry("between, outside", models.Between, 3.0, float(7), 7.1, false),
			Entry("between, reversed thresholds", models.Between, 7.0, float(3), 5.0, true),
			Entry("not between, lower bound", models.NotBetween, 3.0, float(7), 3.0, false),
			Entry("not between, upper bound", models.NotBetween, 3.0, float(7), 7.0, false),
			Entry("not between, below", models.NotBetween, 3.0, float(7), 2.9, true),
			Entry("not between, above", models.NotBetween, 7.0, float(3), 7.1, true),
		)

		It("rejects a nil value", func() {
			_, err := models.Evaluate(models.GreaterThan, 1, nil, nil)
			Expect(errors.Is(err, models.ErrInvalidArgument)).To(BeTrue())
		})

		It("fires NO_DATA only when the value is missing", func() {
			fired, err := models.Evaluate(models.NoData, 0, nil, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(fired).To(BeTrue())

			fired, err = models.Evaluate(models.NoData, 0, nil, float(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(fired).To(BeFalse())
		})

		It("rejects an unknown type", func() {
			_, err := models.Evaluate(models.TriggerType("SIDEWAYS"), 1, nil, float(1))
			Expect(errors.Is(err, models.ErrUnsupportedTriggerType)).To(BeTrue())
		})

		It("rejects a range type without a secondary threshold", func() {
			_, err := models.Evaluate(models.Between, 1, nil, float(1))
			Expect(errors.Is(err, models.ErrInvalidArgument)).To(BeTrue())
		})

		It("rejects a nil trigger", func() {
			var trigger *models.Trigger
			_, err := trigger.Evaluate(float(1))
			Expect(errors.Is(err, models.ErrInvalidArgument)).To(BeTrue())
		})
	})

	Describe("ParseTriggerType", func() {
		It("ignores case", func() {
			t, err := models.ParseTriggerType("greater_than_or_eq")
			Expect(err).NotTo(HaveOccurred())
			Expect(t).To(Equal(models.GreaterThanOrEq))
		})

		It("fails for an unknown name", func() {
			_, err := models.ParseTriggerType("bogus")
			Expect(errors.Is(err, models.ErrUnsupportedTriggerType)).To(BeTrue())
		})
	})

	Describe("NewTrigger", func() {
		var alert *models.Alert

		BeforeEach(func() {
			var err error
			alert, err = models.NewAlert("owner", "alert", "-1h:scope:metric:avg", "* * * * *", 1000)
			Expect(err).NotTo(HaveOccurred())
		})

		It("requires a secondary threshold for range types", func() {
			_, err := models.NewTrigger(alert, models.NotBetween, "range", 1, 0)
			Expect(errors.Is(err, models.ErrInvalidArgument)).To(BeTrue())

			t, err := models.NewRangeTrigger(alert, models.NotBetween, "range", 1, float(2), 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(t.CreatedBy).To(Equal("owner"))
		})

		It("rejects negative inertia", func() {
			_, err := models.NewTrigger(alert, models.GreaterThan, "t", 1, -1)
			Expect(errors.Is(err, models.ErrInvalidArgument)).To(BeTrue())
		})

		It("rejects an empty name", func() {
			_, err := models.NewTrigger(alert, models.GreaterThan, "", 1, 0)
			Expect(errors.Is(err, models.ErrInvalidArgument)).To(BeTrue())
		})
	})
})
