package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"jobmarket_backend/internal/models"

	"github.com/stretchr/testify/require"
)

// RegisterAndLogin registers a fresh user through the API and returns the
// bearer token the registration response carries.
func RegisterAndLogin(t *testing.T, ts *TestServer, username, password string, role models.UserRole) string {
	t.Helper()

	body := map[string]interface{}{
		"username": username,
		"password": password,
		"fullName": "Test " + username,
		"email":    username + "@test.local",
		"city":     "Almaty",
		"role":     string(role),
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "registration should succeed: "+bodyStr)

	var authResp struct {
		AccessToken string `json:"accessToken"`
		TokenType   string `json:"tokenType"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &authResp))
	require.Equal(t, "Bearer", authResp.TokenType)
	require.NotEmpty(t, authResp.AccessToken)

	return authResp.AccessToken
}

// FirstPaymentTypeID returns a seeded payment type id.
func FirstPaymentTypeID(t *testing.T, ts *TestServer) string {
	t.Helper()

	var pt models.PaymentType
	require.NoError(t, ts.DB.First(&pt).Error)
	return pt.ID
}

// CreateJob posts a minimal valid job as the given employer token and
// returns the created job's id.
func CreateJob(t *testing.T, ts *TestServer, token, title string) string {
	t.Helper()

	body := map[string]interface{}{
		"title":         title,
		"description":   "integration test job",
		"dateFrom":      "2026-09-01",
		"dateTo":        "2026-09-05",
		"type":          "contract",
		"location":      "Almaty",
		"paymentAmount": 100.0,
		"paymentTypeId": FirstPaymentTypeID(t, ts),
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/jobs", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, fmt.Sprintf("job creation should succeed: %s", bodyStr))

	var jobResp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &jobResp))
	require.NotEmpty(t, jobResp.ID)

	return jobResp.ID
}
