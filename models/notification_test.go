package models_test

import (
	"encoding/json"
	"errors"

	"github.com/argusmon/argus-core/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Notification", func() {
	var (
		alert        *models.Alert
		trigger      *models.Trigger
		metric       *models.Metric
		notification *models.Notification
		now          int64
	)

	BeforeEach(func() {
		var err error
		now = 1_700_000_000_000
		alert, err = models.NewAlert("owner", "alert", "-1h:scope:metric:avg", "* * * * *", now)
		Expect(err).NotTo(HaveOccurred())
		trigger, err = models.NewTrigger(alert, models.GreaterThan, "trigger", 1, 0)
		Expect(err).NotTo(HaveOccurred())
		trigger.ID = 42
		notification, err = models.NewNotification("notification", alert, "email", []string{"ops@example.com"}, 1000)
		Expect(err).NotTo(HaveOccurred())
		metric = models.NewMetric("scope", "metric")
		metric.Tags["host"] = "a"
	})

	Context("cooldown", func() {
		It("is on cooldown until the clock passes the expiration", func() {
			Expect(notification.SetCooldownExpiration(trigger, metric, now+1000)).To(Succeed())

			onCooldown, err := notification.OnCooldown(trigger, metric, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(onCooldown).To(BeTrue())

			onCooldown, _ = notification.OnCooldown(trigger, metric, now+1000)
			Expect(onCooldown).To(BeTrue())

			onCooldown, _ = notification.OnCooldown(trigger, metric, now+1001)
			Expect(onCooldown).To(BeFalse())
		})

		It("defaults to an expiration of zero", func() {
			expiration, err := notification.CooldownExpiration(trigger, metric)
			Expect(err).NotTo(HaveOccurred())
			Expect(expiration).To(BeZero())

			onCooldown, _ := notification.OnCooldown(trigger, metric, now)
			Expect(onCooldown).To(BeFalse())
		})

		It("rejects a negative expiration", func() {
			err := notification.SetCooldownExpiration(trigger, metric, -1)
			Expect(errors.Is(err, models.ErrInvalidArgument)).To(BeTrue())
		})

		It("requires a trigger and a metric", func() {
			err := notification.SetCooldownExpiration(nil, metric, now)
			Expect(errors.Is(err, models.ErrInvalidArgument)).To(BeTrue())
			_, err = notification.OnCooldown(trigger, nil, now)
			Expect(errors.Is(err, models.ErrInvalidArgument)).To(BeTrue())
		})

		It("tracks metrics independently regardless of tag order", func() {
			same := models.NewMetric("scope", "metric")
			same.Tags["host"] = "a"
			other := models.NewMetric("scope", "metric")
			other.Tags["host"] = "b"

			Expect(notification.SetCooldownExpiration(trigger, metric, now+1000)).To(Succeed())

			onCooldown, _ := notification.OnCooldown(trigger, same, now)
			Expect(onCooldown).To(BeTrue())
			onCooldown, _ = notification.OnCooldown(trigger, other, now)
			Expect(onCooldown).To(BeFalse())
		})
	})

	Context("active status", func() {
		It("defaults to inactive", func() {
			active, err := notification.IsActive(trigger, metric)
			Expect(err).NotTo(HaveOccurred())
			Expect(active).To(BeFalse())
		})

		It("round trips", func() {
			Expect(notification.SetActive(trigger, metric, true)).To(Succeed())
			active, _ := notification.IsActive(trigger, metric)
			Expect(active).To(BeTrue())

			Expect(notification.SetActive(trigger, metric, false)).To(Succeed())
			active, _ = notification.IsActive(trigger, metric)
			Expect(active).To(BeFalse())
		})

		It("keys unsaved triggers by id zero", func() {
			unsaved, err := models.NewTrigger(alert, models.LessThan, "unsaved", 1, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(notification.SetActive(unsaved, metric, true)).To(Succeed())

			Expect(notification.ActiveStatuses()).To(HaveKeyWithValue(
				models.NotificationStateKey{TriggerID: 0, MetricHash: metric.IdentityHash()}, true))
		})
	})

	Context("validation", func() {
		It("rejects a negative cooldown period", func() {
			_, err := models.NewNotification("n", alert, "email", nil, -1)
			Expect(errors.Is(err, models.ErrInvalidArgument)).To(BeTrue())
		})

		It("rejects severity levels outside 1-5", func() {
			Expect(errors.Is(notification.SetSeverityLevel(0), models.ErrInvalidArgument)).To(BeTrue())
			Expect(errors.Is(notification.SetSeverityLevel(6), models.ErrInvalidArgument)).To(BeTrue())
			Expect(notification.SetSeverityLevel(1)).To(Succeed())
		})

		It("defaults the severity level to 5", func() {
			Expect(notification.SeverityLevel).To(Equal(5))
		})

		It("rejects malformed metrics to annotate", func() {
			err := notification.SetMetricsToAnnotate([]string{"scope:metric{host=a}", "nocolon"})
			Expect(errors.Is(err, models.ErrInvalidArgument)).To(BeTrue())
			Expect(notification.MetricsToAnnotate).To(BeEmpty())

			Expect(notification.SetMetricsToAnnotate([]string{"scope:metric{host=a,dc=*}"})).To(Succeed())
			Expect(notification.MetricsToAnnotate).To(ConsistOf("scope:metric{host=a,dc=*}"))
		})
	})

	Context("JSON", func() {
		It("excludes the state maps and lists trigger ids", func() {
			notification.SetTriggers([]*models.Trigger{trigger})
			notification.CustomText = "runbook"
			Expect(notification.SetCooldownExpiration(trigger, metric, now)).To(Succeed())

			data, err := json.Marshal(notification)
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(MatchJSON(`{
				"id": "0",
				"name": "notification",
				"notifier": "email",
				"cooldownPeriod": 1000,
				"srActionable": false,
				"severityLevel": 5,
				"customText": "runbook",
				"subscriptions": ["ops@example.com"],
				"metricsToAnnotate": [],
				"triggers": ["42"]
			}`))
		})
	})
})
