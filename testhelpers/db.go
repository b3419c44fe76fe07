package testhelpers

import (
	"os"
	"path/filepath"

	. "github.com/onsi/gomega"
)

// GetDbUrl returns $DBURL, or a sqlite database file in a fresh directory that the
// caller removes with the returned cleanup.
func GetDbUrl() (string, func()) {
	dbUrl := os.Getenv("DBURL")
	if dbUrl != "" {
		return dbUrl, func() {}
	}
	tmpDir, err := os.MkdirTemp("", "argus-db")
	Expect(err).NotTo(HaveOccurred())
	dbUrl = "sqlite://" + filepath.Join(tmpDir, "argus.db") + "?_pragma=busy_timeout(10000)&_pragma=foreign_keys(1)&_txlock=immediate"
	return dbUrl, func() { _ = os.RemoveAll(tmpDir) }
}
