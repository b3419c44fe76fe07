package testhelpers

import (
	"net/http"

	. "github.com/onsi/gomega"
)

func CheckHealthAuth(client *http.Client, url string, username, password string, expectedStatus int) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	Expect(err).NotTo(HaveOccurred())

	if username != "" || password != "" {
		req.SetBasicAuth(username, password)
	}

	resp, err := client.Do(req)
	Expect(err).NotTo(HaveOccurred())

	defer func() { _ = resp.Body.Close() }()
	Expect(resp.StatusCode).To(Equal(expectedStatus))
}
