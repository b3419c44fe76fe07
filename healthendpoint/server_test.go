package healthendpoint_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/gorilla/mux"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/argusmon/argus-core/healthendpoint"
	"github.com/argusmon/argus-core/helpers"
	"github.com/argusmon/argus-core/testhelpers"
)

type testPinger struct {
	err error
}

func (p *testPinger) Ping() error {
	return p.err
}

var _ = Describe("HealthRouter", func() {
	var (
		router   *mux.Router
		config   helpers.HealthConfig
		checkers []healthendpoint.Checker
		pinger   *testPinger
		registry *prometheus.Registry
	)

	serve := func(path string, withAuth bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if withAuth {
			req.SetBasicAuth("health-user", "health-pass")
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	BeforeEach(func() {
		pinger = &testPinger{}
		config = helpers.HealthConfig{
			BasicAuth:             helpers.BasicAuth{Username: "health-user", Password: "health-pass"},
			ReadinessCheckEnabled: true,
		}
		registry = prometheus.NewRegistry()
		collector := healthendpoint.NewSchedulerCollector("argus", "scheduler")
		collector.IncClaims()
		Expect(registry.Register(collector)).To(Succeed())
	})

	JustBeforeEach(func() {
		checkers = []healthendpoint.Checker{
			healthendpoint.DbChecker("argus_db", pinger),
			healthendpoint.InterlockChecker(func() bool { return true }),
		}
		var err error
		router, err = healthendpoint.NewHealthRouter(config, checkers, lagertest.NewTestLogger("health-test"), registry)
		Expect(err).NotTo(HaveOccurred())
	})

	Context("with basic auth configured", func() {
		It("requires credentials for metrics", func() {
			Expect(serve("/metrics", false).Code).To(Equal(http.StatusUnauthorized))

			rec := serve("/metrics", true)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring("argus_scheduler_claims_total 1"))
		})

		It("serves readiness without credentials", func() {
			rec := serve(healthendpoint.ReadinessPath, false)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))
			Expect(rec.Body.String()).To(MatchJSON(`{
				"overall_status":"UP",
				"checks":[
					{"name":"argus_db","type":"database","status":"UP"},
					{"name":"global_interlock","type":"lock","status":"ACTIVE"}
				]}`))
		})
	})

	Context("served over http", func() {
		var server *httptest.Server

		JustBeforeEach(func() {
			server = httptest.NewServer(router)
		})

		AfterEach(func() {
			server.Close()
		})

		It("checks the credentials", func() {
			testhelpers.CheckHealthAuth(server.Client(), server.URL+"/metrics", "", "", http.StatusUnauthorized)
			testhelpers.CheckHealthAuth(server.Client(), server.URL+"/metrics", "health-user", "wrong", http.StatusUnauthorized)
			testhelpers.CheckHealthAuth(server.Client(), server.URL+"/metrics", "health-user", "health-pass", http.StatusOK)
		})
	})

	Context("when the database is down", func() {
		BeforeEach(func() {
			pinger.err = errors.New("connection refused")
		})

		It("reports not ready", func() {
			rec := serve(healthendpoint.ReadinessPath, false)
			Expect(rec.Code).To(Equal(http.StatusServiceUnavailable))
			var body map[string]interface{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body["overall_status"]).To(Equal("DOWN"))
		})
	})

	Context("without basic auth", func() {
		BeforeEach(func() {
			config.BasicAuth = helpers.BasicAuth{}
		})

		It("serves metrics openly", func() {
			Expect(serve("/anything", false).Code).To(Equal(http.StatusOK))
		})
	})

	Context("when readiness is disabled", func() {
		BeforeEach(func() {
			config.ReadinessCheckEnabled = false
			config.BasicAuth = helpers.BasicAuth{}
		})

		It("answers the readiness path with metrics", func() {
			rec := serve(healthendpoint.ReadinessPath, false)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring("argus_scheduler_claims_total"))
		})
	})
})
