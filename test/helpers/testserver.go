package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobmarket_backend/database"
	"jobmarket_backend/internal/app"
	"jobmarket_backend/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer connects to the test database named by DATABASE_URL, runs
// migrations and starts the full router under httptest.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	log.Printf("test server started, database ready")

	return &TestServer{Server: server, DB: db}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// ClearTables truncates the mutable tables between tests. The seeded
// reference catalogs stay.
func (ts *TestServer) ClearTables(t *testing.T) {
	err := ts.DB.Exec("TRUNCATE TABLE users, issued_tokens, jobs, job_categories, user_skills, applications RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("failed to clear tables: %v", err)
	}
}

// SendRequest performs a JSON request against the running test server.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
