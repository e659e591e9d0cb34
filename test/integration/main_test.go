package integration_test

import (
	"fmt"
	"os"
	"sync"
	"testing"

	"jobmarket_backend/test/helpers"
)

var (
	globalTestServer *helpers.TestServer
	serverOnce       sync.Once
	userSeq          int
	userSeqMu        sync.Mutex
)

// GetTestServer starts the shared test server on first use. The suite needs
// a real Postgres; it is skipped entirely when DATABASE_URL is not set.
func GetTestServer(t *testing.T) *helpers.TestServer {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL is not set; skipping integration tests")
	}

	serverOnce.Do(func() {
		os.Setenv("SERVER_ENV", "test")
		if os.Getenv("JWT_SECRET") == "" {
			os.Setenv("JWT_SECRET", "integration-test-secret")
		}
		globalTestServer = helpers.NewTestServer(t)
	})
	return globalTestServer
}

// uniqueUsername keeps parallel tests from colliding on the unique index.
func uniqueUsername(prefix string) string {
	userSeqMu.Lock()
	defer userSeqMu.Unlock()
	userSeq++
	return fmt.Sprintf("%s_%d", prefix, userSeq)
}

func TestMain(m *testing.M) {
	code := m.Run()
	if globalTestServer != nil {
		globalTestServer.Close()
	}
	os.Exit(code)
}
