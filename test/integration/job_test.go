package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobmarket_backend/internal/models"
	"jobmarket_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobLifecycle(t *testing.T) {
	ts := GetTestServer(t)

	employerToken := helpers.RegisterAndLogin(t, ts, uniqueUsername("job_emp"), "password123", models.UserRoleEmployer)
	jobID := helpers.CreateJob(t, ts, employerToken, "Paint the fence")

	// Anonymous read works.
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/jobs/"+jobID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Paint the fence")

	// Update by the owner.
	updateBody := map[string]interface{}{
		"title":         "Paint the fence white",
		"description":   "integration test job",
		"dateFrom":      "2026-09-01",
		"dateTo":        "2026-09-05",
		"type":          "contract",
		"location":      "Almaty",
		"paymentAmount": 150.0,
		"paymentTypeId": helpers.FirstPaymentTypeID(t, ts),
	}
	res, bodyStr = ts.SendRequest(t, http.MethodPut, "/api/jobs/"+jobID, employerToken, updateBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Paint the fence white")

	// Delete, then the job is gone.
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/jobs/"+jobID, employerToken, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/jobs/"+jobID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestJobCreate_FreelancerForbidden(t *testing.T) {
	ts := GetTestServer(t)

	freelancerToken := helpers.RegisterAndLogin(t, ts, uniqueUsername("job_frl"), "password123", models.UserRoleFreelancer)

	body := map[string]interface{}{
		"title":         "Should not exist",
		"description":   "x",
		"dateFrom":      "2026-09-01",
		"dateTo":        "2026-09-05",
		"type":          "contract",
		"location":      "Almaty",
		"paymentAmount": 100.0,
		"paymentTypeId": helpers.FirstPaymentTypeID(t, ts),
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/jobs", freelancerToken, body)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestJobUpdate_NotOwnerForbidden(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken := helpers.RegisterAndLogin(t, ts, uniqueUsername("job_owner"), "password123", models.UserRoleEmployer)
	otherToken := helpers.RegisterAndLogin(t, ts, uniqueUsername("job_other"), "password123", models.UserRoleEmployer)
	jobID := helpers.CreateJob(t, ts, ownerToken, "Owner's job")

	body := map[string]interface{}{
		"title":         "Hijacked",
		"description":   "x",
		"dateFrom":      "2026-09-01",
		"dateTo":        "2026-09-05",
		"type":          "contract",
		"location":      "Almaty",
		"paymentAmount": 100.0,
		"paymentTypeId": helpers.FirstPaymentTypeID(t, ts),
	}
	res, _ := ts.SendRequest(t, http.MethodPut, "/api/jobs/"+jobID, otherToken, body)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestJobSearch_Pagination(t *testing.T) {
	ts := GetTestServer(t)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/jobs?page=0&size=2", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var page struct {
		Content       []json.RawMessage `json:"content"`
		TotalElements int64             `json:"totalElements"`
		TotalPages    int               `json:"totalPages"`
		Page          int               `json:"page"`
		Size          int               `json:"size"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &page))
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 2, page.Size)
	assert.LessOrEqual(t, len(page.Content), 2)
}

func TestJobSearch_UnknownTypeTolerated(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/jobs?type=definitely_not_a_type", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
