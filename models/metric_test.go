package models_test

import (
	"github.com/argusmon/argus-core/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Metric", func() {
	Describe("Identifier", func() {
		It("sorts tags by key", func() {
			m := models.NewMetric("scope", "metric")
			m.Tags["z"] = "1"
			m.Tags["a"] = "2"
			Expect(m.Identifier()).To(Equal("scope:metric{a=2,z=1}"))
		})

		It("prefixes the namespace and omits empty tags", func() {
			m := models.NewMetric("scope", "metric")
			m.Namespace = "ns"
			Expect(m.Identifier()).To(Equal("ns:scope:metric"))
		})
	})

	Describe("LatestValue", func() {
		It("returns the datapoint with the greatest timestamp", func() {
			m := models.NewMetric("scope", "metric")
			m.Datapoints[3000] = 3
			m.Datapoints[1000] = 1
			ts, v := m.LatestValue()
			Expect(ts).To(Equal(int64(3000)))
			Expect(*v).To(Equal(3.0))
		})

		It("returns nil without datapoints", func() {
			_, v := models.NewMetric("scope", "metric").LatestValue()
			Expect(v).To(BeNil())
		})
	})

	Describe("ParseMetricToAnnotate", func() {
		It("parses scope, metric and tags", func() {
			m := models.ParseMetricToAnnotate("system.dc1 : cpu.user { host=web1 , dc=* }")
			Expect(m).NotTo(BeNil())
			Expect(m.Scope).To(Equal("system.dc1"))
			Expect(m.Name).To(Equal("cpu.user"))
			Expect(m.Tags).To(Equal(map[string]string{"host": "web1", "dc": "*"}))
		})

		It("accepts a trailing namespace", func() {
			m := models.ParseMetricToAnnotate("scope:metric:ns")
			Expect(m).NotTo(BeNil())
			Expect(m.Namespace).To(Equal("ns"))
		})

		It("rejects malformed expressions", func() {
			Expect(models.ParseMetricToAnnotate("")).To(BeNil())
			Expect(models.ParseMetricToAnnotate("metric")).To(BeNil())
			Expect(models.ParseMetricToAnnotate("scope:metric{host}")).To(BeNil())
		})
	})
})
