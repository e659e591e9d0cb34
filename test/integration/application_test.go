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

func applyToJob(t *testing.T, ts *helpers.TestServer, token, jobID string) string {
	t.Helper()

	body := map[string]interface{}{"jobId": jobID, "message": "I want this job"}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/applications", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "application should be created: "+bodyStr)

	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
	return resp.ID
}

func TestApplicationFlow(t *testing.T) {
	ts := GetTestServer(t)

	employerToken := helpers.RegisterAndLogin(t, ts, uniqueUsername("app_emp"), "password123", models.UserRoleEmployer)
	freelancerToken := helpers.RegisterAndLogin(t, ts, uniqueUsername("app_frl"), "password123", models.UserRoleFreelancer)
	jobID := helpers.CreateJob(t, ts, employerToken, "Application flow job")

	appID := applyToJob(t, ts, freelancerToken, jobID)

	// The employer sees the pending application on their job.
	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/jobs/"+jobID+"/applications", employerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, appID)
	assert.Contains(t, bodyStr, "pending")

	// The employer accepts it.
	statusBody := map[string]interface{}{"status": "accepted"}
	res, bodyStr = ts.SendRequest(t, http.MethodPut, "/api/applications/"+appID+"/status", employerToken, statusBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "accepted")

	// Accepting again is a no-op reported as not found.
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/applications/"+appID+"/status", employerToken, statusBody)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestApplication_DuplicateConflict(t *testing.T) {
	ts := GetTestServer(t)

	employerToken := helpers.RegisterAndLogin(t, ts, uniqueUsername("dup_emp"), "password123", models.UserRoleEmployer)
	freelancerToken := helpers.RegisterAndLogin(t, ts, uniqueUsername("dup_frl"), "password123", models.UserRoleFreelancer)
	jobID := helpers.CreateJob(t, ts, employerToken, "Duplicate application job")

	applyToJob(t, ts, freelancerToken, jobID)

	body := map[string]interface{}{"jobId": jobID, "message": "again"}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/applications", freelancerToken, body)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestApplication_WithdrawAndReapply(t *testing.T) {
	ts := GetTestServer(t)

	employerToken := helpers.RegisterAndLogin(t, ts, uniqueUsername("wd_emp"), "password123", models.UserRoleEmployer)
	freelancerToken := helpers.RegisterAndLogin(t, ts, uniqueUsername("wd_frl"), "password123", models.UserRoleFreelancer)
	jobID := helpers.CreateJob(t, ts, employerToken, "Withdraw job")

	appID := applyToJob(t, ts, freelancerToken, jobID)

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/applications/"+appID, freelancerToken, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	// Deleting twice fails.
	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/applications/"+appID, freelancerToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// After withdrawal a new application goes through.
	applyToJob(t, ts, freelancerToken, jobID)
}

func TestApplication_EmployerCannotApply(t *testing.T) {
	ts := GetTestServer(t)

	employerToken := helpers.RegisterAndLogin(t, ts, uniqueUsername("noapp_emp"), "password123", models.UserRoleEmployer)
	jobID := helpers.CreateJob(t, ts, employerToken, "No employer applications")

	body := map[string]interface{}{"jobId": jobID, "message": "myself"}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/applications", employerToken, body)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestApplication_ListOwn(t *testing.T) {
	ts := GetTestServer(t)

	employerToken := helpers.RegisterAndLogin(t, ts, uniqueUsername("list_emp"), "password123", models.UserRoleEmployer)
	freelancerToken := helpers.RegisterAndLogin(t, ts, uniqueUsername("list_frl"), "password123", models.UserRoleFreelancer)
	jobID := helpers.CreateJob(t, ts, employerToken, "Listing job")

	appID := applyToJob(t, ts, freelancerToken, jobID)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/applications", freelancerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, appID)

	// Alias route returns the same list.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/freelancer/applications", freelancerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, appID)

	// The employer sees it through the employer listing.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/applications/employer", employerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, appID)
}

func TestApplication_AnonymousRejected(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/applications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
