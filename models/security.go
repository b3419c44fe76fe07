package models

import (
	"crypto/tls"

	"code.cloudfoundry.org/tlsconfig"
)

type TLSCerts struct {
	KeyFile    string `yaml:"key_file" json:"keyFile"`
	CertFile   string `yaml:"cert_file" json:"certFile"`
	CACertFile string `yaml:"ca_file" json:"caCertFile"`
}

// CreateClientConfig returns nil without error when no identity is configured.
func (t *TLSCerts) CreateClientConfig() (*tls.Config, error) {
	if t == nil || t.CertFile == "" || t.KeyFile == "" {
		return nil, nil
	}
	client := tlsconfig.Build(tlsconfig.WithInternalServiceDefaults(), tlsconfig.WithIdentityFromFile(t.CertFile, t.KeyFile))
	if t.CACertFile != "" {
		return client.Client(tlsconfig.WithAuthorityFromFile(t.CACertFile))
	}
	return client.Client()
}

func (t *TLSCerts) CreateServerConfig() (*tls.Config, error) {
	if t == nil || t.CertFile == "" || t.KeyFile == "" {
		return nil, nil
	}
	build := tlsconfig.Build(tlsconfig.WithInternalServiceDefaults(), tlsconfig.WithIdentityFromFile(t.CertFile, t.KeyFile))
	if t.CACertFile != "" {
		return build.Server(tlsconfig.WithClientAuthenticationFromFile(t.CACertFile))
	}
	return build.Server()
}
