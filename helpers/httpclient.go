package helpers

import (
	"net"
	"net/http"
	"time"

	"github.com/argusmon/argus-core/models"
)

// CreateHTTPClient builds a client for the metric server. Client certificates are
// used only when both a cert and a key file are configured.
func CreateHTTPClient(tlsCerts *models.TLSCerts, timeout time.Duration) (*http.Client, error) {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		IdleConnTimeout:     5 * time.Second,
		MaxIdleConnsPerHost: 200,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	tlsConfig, err := tlsCerts.CreateClientConfig()
	if err != nil {
		return nil, err
	}
	if tlsConfig != nil {
		transport.TLSClientConfig = tlsConfig
	}

	return &http.Client{Transport: transport, Timeout: timeout}, nil
}
