package db_test

import (
	"bytes"
	"time"

	"github.com/argusmon/argus-core/db"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v2"
)

var _ = Describe("DatabaseConfig", func() {
	decode := func(configBytes string) (*db.DatabaseConfig, error) {
		conf := &db.DatabaseConfig{}
		dec := yaml.NewDecoder(bytes.NewBufferString(configBytes))
		dec.SetStrict(true)
		return conf, dec.Decode(conf)
	}

	It("decodes pool settings and durations", func() {
		conf, err := decode(`
url: "sqlite:///tmp/argus.db"
max_open_connections: 5
max_idle_connections: 2
connection_max_lifetime: 60s
connection_max_idletime: 1m
`)
		Expect(err).NotTo(HaveOccurred())
		Expect(conf).To(Equal(&db.DatabaseConfig{
			URL:                   "sqlite:///tmp/argus.db",
			MaxOpenConnections:    5,
			MaxIdleConnections:    2,
			ConnectionMaxLifetime: 60 * time.Second,
			ConnectionMaxIdleTime: time.Minute,
		}))
	})

	DescribeTable("rejects malformed values",
		func(configBytes string, message string) {
			_, err := decode(configBytes)
			Expect(err).To(BeAssignableToTypeOf(&yaml.TypeError{}))
			Expect(err).To(MatchError(MatchRegexp(message)))
		},
		Entry("max_open_connections", `max_open_connections: NOT-INTEGER-VALUE`, "cannot unmarshal .* into int"),
		Entry("connection_max_lifetime", `connection_max_lifetime: 60k`, "cannot unmarshal .* into time.Duration"),
	)

	It("rejects unknown fields", func() {
		_, err := decode(`unknown_field: 1`)
		Expect(err).To(HaveOccurred())
	})
})
