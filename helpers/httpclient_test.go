package helpers_test

import (
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	"github.com/argusmon/argus-core/helpers"
	"github.com/argusmon/argus-core/models"
)

var _ = Describe("CreateHTTPClient", func() {
	var fakeServer *ghttp.Server

	BeforeEach(func() {
		fakeServer = ghttp.NewServer()
		fakeServer.RouteToHandler(http.MethodGet, "/", ghttp.RespondWith(http.StatusOK, "successful"))
	})

	AfterEach(func() {
		fakeServer.Close()
	})

	It("creates a plain client when no certificates are configured", func() {
		client, err := helpers.CreateHTTPClient(&models.TLSCerts{}, 5*time.Second)
		Expect(err).NotTo(HaveOccurred())
		Expect(client.Timeout).To(Equal(5 * time.Second))

		resp, err := client.Get(fakeServer.URL())
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
	})

	It("accepts nil certificates", func() {
		_, err := helpers.CreateHTTPClient(nil, time.Second)
		Expect(err).NotTo(HaveOccurred())
	})

	It("fails when the certificate files do not exist", func() {
		_, err := helpers.CreateHTTPClient(&models.TLSCerts{CertFile: "/no/such/cert", KeyFile: "/no/such/key"}, time.Second)
		Expect(err).To(HaveOccurred())
	})
})
