package routes

import (
	"net/http"
	"testing"

	"jobmarket_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDecide_PublicRoutes(t *testing.T) {
	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/register"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodGet, "/api/auth/validate"},
		{http.MethodGet, "/api/jobs"},
		{http.MethodGet, "/api/jobs/6c1a0f5e"},
		{http.MethodGet, "/api/categories/"},
		{http.MethodGet, "/api/categories/6c1a0f5e"},
		{http.MethodGet, "/api/skills"},
		{http.MethodGet, "/api/payment-types/"},
		{http.MethodGet, "/docs/index.html"},
	}
	for _, tc := range cases {
		access := Decide(tc.method, tc.path)
		assert.True(t, access.Public, "%s %s should be public", tc.method, tc.path)
	}
}

func TestDecide_OptionsAlwaysPublic(t *testing.T) {
	access := Decide(http.MethodOptions, "/api/applications")
	assert.True(t, access.Public)
}

func TestDecide_JobApplicationsNotPublic(t *testing.T) {
	// These sit under the public /api/jobs/* prefix but need a principal.
	access := Decide(http.MethodGet, "/api/jobs/abc/applications")
	assert.False(t, access.Public)
	assert.Empty(t, access.Roles)

	access = Decide(http.MethodPost, "/api/jobs/abc/applications")
	assert.False(t, access.Public)
	assert.True(t, access.AllowsRole(models.UserRoleFreelancer))
	assert.False(t, access.AllowsRole(models.UserRoleEmployer))
}

func TestDecide_RoleRules(t *testing.T) {
	access := Decide(http.MethodPost, "/api/jobs")
	assert.False(t, access.Public)
	assert.True(t, access.AllowsRole(models.UserRoleEmployer))
	assert.False(t, access.AllowsRole(models.UserRoleFreelancer))

	access = Decide(http.MethodGet, "/api/employer/jobs")
	assert.True(t, access.AllowsRole(models.UserRoleEmployer))
	assert.False(t, access.AllowsRole(models.UserRoleFreelancer))

	access = Decide(http.MethodGet, "/api/freelancer/applications")
	assert.True(t, access.AllowsRole(models.UserRoleFreelancer))
	assert.False(t, access.AllowsRole(models.UserRoleEmployer))

	access = Decide(http.MethodPost, "/api/applications")
	assert.True(t, access.AllowsRole(models.UserRoleFreelancer))
	assert.False(t, access.AllowsRole(models.UserRoleEmployer))
}

func TestDecide_DefaultAuthenticated(t *testing.T) {
	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/applications"},
		{http.MethodPut, "/api/jobs/abc"},
		{http.MethodDelete, "/api/jobs/abc"},
		{http.MethodGet, "/api/users/profile"},
		{http.MethodGet, "/api/unknown"},
		{http.MethodGet, "/health"},
	}
	for _, tc := range cases {
		access := Decide(tc.method, tc.path)
		assert.False(t, access.Public, "%s %s should require auth", tc.method, tc.path)
		assert.Empty(t, access.Roles, "%s %s should allow any role", tc.method, tc.path)
	}
}

func TestMatchPattern(t *testing.T) {
	assert.True(t, matchPattern("/api/jobs", "/api/jobs"))
	assert.True(t, matchPattern("/api/jobs/*", "/api/jobs/123"))
	assert.False(t, matchPattern("/api/jobs/*", "/api/jobs/123/applications"))
	assert.True(t, matchPattern("/api/jobs/*/applications", "/api/jobs/123/applications"))
	assert.True(t, matchPattern("/api/auth/**", "/api/auth/a/b/c"))
	assert.False(t, matchPattern("/api/jobs/*", "/api/jobs"))
	assert.False(t, matchPattern("/api/jobs", "/api/skills"))
}
