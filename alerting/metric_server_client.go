package alerting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"code.cloudfoundry.org/lager/v3"

	"github.com/argusmon/argus-core/models"
)

const MetricsPath = "/v1/metrics"

// MetricQuerier resolves an alert expression into the time series it selects.
type MetricQuerier interface {
	QueryMetrics(ctx context.Context, expression string) ([]*models.Metric, error)
}

type MetricServerClient struct {
	httpClient *http.Client
	logger     lager.Logger
	url        string
}

func NewMetricServerClient(logger lager.Logger, url string, httpClient *http.Client) *MetricServerClient {
	return &MetricServerClient{
		logger:     logger.Session("metric-server-client"),
		url:        url,
		httpClient: httpClient,
	}
}

func (c *MetricServerClient) QueryMetrics(ctx context.Context, expression string) ([]*models.Metric, error) {
	logger := c.logger.Session("query-metrics", lager.Data{"expression": expression})
	if expression == "" {
		return nil, models.InvalidArgumentf("expression cannot be empty")
	}

	reqURL := c.url + MetricsPath + "?" + url.Values{"expression": []string{expression}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("request-failed", err, lager.Data{"url": reqURL})
		return nil, fmt.Errorf("failed to retrieve metrics from metric server: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		logger.Error("unexpected-status", nil, lager.Data{"statusCode": resp.StatusCode})
		return nil, fmt.Errorf("metric server returned status %d", resp.StatusCode)
	}

	var metrics []*models.Metric
	err = json.NewDecoder(resp.Body).Decode(&metrics)
	if err != nil {
		logger.Error("failed-to-parse-response", err)
		return nil, errors.New("failed to parse metric server response")
	}
	series := make([]*models.Metric, 0, len(metrics))
	for _, m := range metrics {
		if m == nil {
			logger.Info("skipped-null-series")
			continue
		}
		if m.Datapoints == nil {
			m.Datapoints = map[int64]float64{}
		}
		series = append(series, m)
	}
	logger.Debug("retrieved-metrics", lager.Data{"count": len(series)})
	return series, nil
}
