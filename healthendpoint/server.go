package healthendpoint

import (
	"net/http"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"

	"github.com/argusmon/argus-core/helpers"
)

const ReadinessPath = "/health/readiness"

// NewServerWithBasicAuth serves /health/readiness unauthenticated and every other
// path as prometheus metrics behind basic auth when credentials are configured.
func NewServerWithBasicAuth(conf helpers.HealthConfig, healthCheckers []Checker, logger lager.Logger, gatherer prometheus.Gatherer) (ifrit.Runner, error) {
	healthRouter, err := NewHealthRouter(conf, healthCheckers, logger, gatherer)
	if err != nil {
		return nil, err
	}
	return helpers.NewHTTPServer(logger, conf.ServerConfig, healthRouter)
}

func NewHealthRouter(conf helpers.HealthConfig, healthCheckers []Checker, logger lager.Logger, gatherer prometheus.Gatherer) (*mux.Router, error) {
	router := mux.NewRouter()
	if conf.ReadinessCheckEnabled {
		router.Handle(ReadinessPath, readiness(healthCheckers)).Methods(http.MethodGet)
	}

	promHandler := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	if conf.BasicAuth.IsEmpty() {
		router.PathPrefix("").Handler(promHandler)
		return router, nil
	}

	basicAuthentication, err := helpers.CreateBasicAuthMiddleware(logger, conf.BasicAuth)
	if err != nil {
		return nil, err
	}
	everything := router.PathPrefix("").Subrouter()
	everything.Use(basicAuthentication.BasicAuthenticationMiddleware)
	everything.PathPrefix("").Handler(promHandler)
	return router, nil
}
