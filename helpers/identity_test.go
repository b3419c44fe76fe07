package helpers_test

import (
	"net"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/argusmon/argus-core/helpers"
)

var _ = Describe("ResolveInstanceIdentity", func() {
	It("uses the override as hostname", func() {
		identity := helpers.ResolveInstanceIdentity("127.0.0.1")
		Expect(identity.Hostname).To(Equal("127.0.0.1"))
		Expect(identity.IPAddr).To(Equal("127.0.0.1"))
	})

	It("falls back to the loopback address when the host does not resolve", func() {
		identity := helpers.ResolveInstanceIdentity("no-such-host.invalid")
		Expect(identity.Hostname).To(Equal("no-such-host.invalid"))
		Expect(identity.IPAddr).To(Equal("127.0.0.1"))
	})

	It("resolves the local host", func() {
		identity := helpers.ResolveInstanceIdentity("")
		Expect(identity.Hostname).NotTo(BeEmpty())
		Expect(net.ParseIP(identity.IPAddr)).NotTo(BeNil())
	})
})
