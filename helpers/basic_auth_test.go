package helpers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/argusmon/argus-core/helpers"
)

var handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

var _ = Describe("BasicAuthenticationMiddleware", func() {
	var (
		server   *httptest.Server
		ba       helpers.BasicAuth
		resp     *http.Response
		username string
		password string
		logger   *lagertest.TestLogger
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("basic-auth-test")
		ba = helpers.BasicAuth{Username: "username", Password: "password"}
	})

	AfterEach(func() {
		server.Close()
	})

	JustBeforeEach(func() {
		bam, err := helpers.CreateBasicAuthMiddleware(logger, ba)
		Expect(err).NotTo(HaveOccurred())

		server = httptest.NewServer(bam.BasicAuthenticationMiddleware(handler))

		req, err := http.NewRequest(http.MethodGet, server.URL+"/some-protected-endpoint", nil)
		Expect(err).NotTo(HaveOccurred())
		req.SetBasicAuth(username, password)

		resp, err = http.DefaultClient.Do(req)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
	})

	When("credentials are correct", func() {
		BeforeEach(func() {
			username = "username"
			password = "password"
		})

		It("should return 200", func() {
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		})
	})

	When("credentials are incorrect", func() {
		BeforeEach(func() {
			username = "wrong-username"
			password = "wrong-password"
		})

		It("should return 401", func() {
			Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		})
	})

	When("hashes are configured", func() {
		BeforeEach(func() {
			usernameHash, err := bcrypt.GenerateFromPassword([]byte("hashed-user"), bcrypt.MinCost)
			Expect(err).NotTo(HaveOccurred())
			passwordHash, err := bcrypt.GenerateFromPassword([]byte("hashed-pass"), bcrypt.MinCost)
			Expect(err).NotTo(HaveOccurred())
			ba = helpers.BasicAuth{UsernameHash: string(usernameHash), PasswordHash: string(passwordHash)}
			username = "hashed-user"
			password = "hashed-pass"
		})

		It("should return 200", func() {
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		})
	})

	When("the configured password is longer than bcrypt accepts", func() {
		BeforeEach(func() {
			ba.Password = strings.Repeat("p", 80)
			username = "username"
			password = strings.Repeat("p", 72)
		})

		It("only uses the first 72 characters", func() {
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(logger.LogMessages()).To(ContainElement("basic-auth-test.warning-configured-password-too-long-using-only-first-72-characters"))
		})
	})
})
