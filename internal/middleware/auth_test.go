package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jobmarket_backend/internal/auth"
	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	repositories.UserRepository
	users map[string]*models.User
}

func (s *stubUserRepo) FindByID(id string) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func newAuthTestRouter(tm *auth.TokenManager, repo repositories.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(tm, repo))
	r.Use(Authorize())

	r.GET("/api/jobs", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/applications", func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"userId": user.ID})
	})
	r.POST("/api/jobs", func(c *gin.Context) { c.Status(http.StatusCreated) })
	return r
}

func issue(t *testing.T, tm *auth.TokenManager, user *models.User) string {
	token, err := tm.Issue(user.ID, user.Role)
	require.NoError(t, err)
	return token
}

func TestAuthorize_PublicRouteWithoutToken(t *testing.T) {
	tm := auth.NewTokenManager("secret", 60)
	router := newAuthTestRouter(tm, &stubUserRepo{users: map[string]*models.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthorize_ProtectedRouteWithoutToken(t *testing.T) {
	tm := auth.NewTokenManager("secret", 60)
	router := newAuthTestRouter(tm, &stubUserRepo{users: map[string]*models.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorize_ProtectedRouteWithToken(t *testing.T) {
	tm := auth.NewTokenManager("secret", 60)
	user := &models.User{Role: models.UserRoleFreelancer}
	user.ID = "u-1"
	router := newAuthTestRouter(tm, &stubUserRepo{users: map[string]*models.User{"u-1": user}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, tm, user))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u-1")
}

func TestAuthorize_RoleMismatch(t *testing.T) {
	tm := auth.NewTokenManager("secret", 60)
	user := &models.User{Role: models.UserRoleFreelancer}
	user.ID = "u-1"
	router := newAuthTestRouter(tm, &stubUserRepo{users: map[string]*models.User{"u-1": user}})

	// POST /api/jobs is employer-only.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/jobs", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, tm, user))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthenticate_InvalidTokenStaysAnonymous(t *testing.T) {
	tm := auth.NewTokenManager("secret", 60)
	router := newAuthTestRouter(tm, &stubUserRepo{users: map[string]*models.User{}})

	// Garbage token on a public route: request still succeeds.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Same token on a protected route: 401, not 500.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_TokenForDeletedUser(t *testing.T) {
	tm := auth.NewTokenManager("secret", 60)
	user := &models.User{Role: models.UserRoleFreelancer}
	user.ID = "gone"
	// Repo has no such user, simulating a deleted account.
	router := newAuthTestRouter(tm, &stubUserRepo{users: map[string]*models.User{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	req.Header.Set("Authorization", "Bearer "+issue(t, tm, user))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
