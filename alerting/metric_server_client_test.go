package alerting_test

import (
	"context"
	"net/http"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/ghttp"

	. "github.com/argusmon/argus-core/alerting"
	"github.com/argusmon/argus-core/models"
)

var _ = Describe("MetricServerClient", func() {
	var (
		fakeMetricServer *ghttp.Server
		logger           *lagertest.TestLogger
		client           *MetricServerClient
		metrics          []*models.Metric
		err              error
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("metric-server-client-test")
		fakeMetricServer = ghttp.NewServer()
		client = NewMetricServerClient(logger, fakeMetricServer.URL(), &http.Client{})
	})

	AfterEach(func() {
		fakeMetricServer.Close()
	})

	JustBeforeEach(func() {
		metrics, err = client.QueryMetrics(context.Background(), "-1h:argus:cpu{host=*}")
	})

	Context("when the metric server returns metrics", func() {
		BeforeEach(func() {
			fakeMetricServer.RouteToHandler(http.MethodGet, MetricsPath, ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodGet, MetricsPath, "expression=-1h%3Aargus%3Acpu%7Bhost%3D%2A%7D"),
				ghttp.RespondWith(http.StatusOK, `[
					{"scope":"argus","metric":"cpu","tags":{"host":"a"},"datapoints":{"1000":1.5,"2000":2.5}},
					{"scope":"argus","metric":"cpu","tags":{"host":"b"}}
				]`),
			))
		})

		It("decodes every series", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(metrics).To(HaveLen(2))
			Expect(metrics[0].Identifier()).To(Equal("argus:cpu{host=a}"))
			Expect(metrics[0].Datapoints).To(Equal(map[int64]float64{1000: 1.5, 2000: 2.5}))
		})

		It("gives series without datapoints an empty map", func() {
			Expect(metrics[1].Datapoints).NotTo(BeNil())
			Expect(metrics[1].Datapoints).To(BeEmpty())
		})

		It("rejects an empty expression without a request", func() {
			_, err := client.QueryMetrics(context.Background(), "")
			Expect(err).To(MatchError(models.ErrInvalidArgument))
			Expect(fakeMetricServer.ReceivedRequests()).To(HaveLen(1))
		})
	})

	Context("when the response contains null series", func() {
		BeforeEach(func() {
			fakeMetricServer.RouteToHandler(http.MethodGet, MetricsPath, ghttp.RespondWith(http.StatusOK, `[
				null,
				{"scope":"argus","metric":"cpu","tags":{"host":"a"},"datapoints":{"1000":1.5}}
			]`))
		})

		It("skips them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(metrics).To(HaveLen(1))
			Expect(metrics[0].Identifier()).To(Equal("argus:cpu{host=a}"))
			Expect(logger).To(gbytes.Say("skipped-null-series"))
		})
	})

	Context("when the metric server fails", func() {
		BeforeEach(func() {
			fakeMetricServer.RouteToHandler(http.MethodGet, MetricsPath, ghttp.RespondWith(http.StatusInternalServerError, "boom"))
		})

		It("returns an error", func() {
			Expect(err).To(MatchError(ContainSubstring("status 500")))
			Expect(logger).To(gbytes.Say("unexpected-status"))
		})
	})

	Context("when the response is not json", func() {
		BeforeEach(func() {
			fakeMetricServer.RouteToHandler(http.MethodGet, MetricsPath, ghttp.RespondWith(http.StatusOK, "not-json"))
		})

		It("returns a parse error", func() {
			Expect(err).To(MatchError("failed to parse metric server response"))
		})
	})

	Context("when the metric server is unreachable", func() {
		BeforeEach(func() {
			fakeMetricServer.Close()
		})

		It("returns an error", func() {
			Expect(err).To(HaveOccurred())
			Expect(logger).To(gbytes.Say("request-failed"))
		})
	})
})
