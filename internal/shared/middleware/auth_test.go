package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"blogchat-backend/pkg/jwt"
)

func newGateRouter(t *testing.T, manager *jwt.Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/user-only", RequireRole(manager, RoleUser), func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": claims.UserID})
	})
	router.GET("/author-only", RequireRole(manager, RoleAuthor), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/any", RequireAuth(manager), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doGet(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestGateRejectsMissingToken(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour)
	router := newGateRouter(t, manager)

	require.Equal(t, http.StatusUnauthorized, doGet(router, "/user-only", "").Code)
	require.Equal(t, http.StatusUnauthorized, doGet(router, "/user-only", "Basic abc").Code)
	require.Equal(t, http.StatusUnauthorized, doGet(router, "/any", "").Code)
}

func TestGateRejectsInvalidToken(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour)
	router := newGateRouter(t, manager)

	require.Equal(t, http.StatusUnauthorized, doGet(router, "/user-only", "Bearer garbage").Code)

	// Signed with a different secret.
	other := jwt.NewManager("other", time.Hour)
	token, err := other.Generate("1", "ana", RoleUser)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, doGet(router, "/user-only", "Bearer "+token).Code)
}

func TestGateRejectsExpiredToken(t *testing.T) {
	expired := jwt.NewManager("secret", -time.Minute)
	router := newGateRouter(t, jwt.NewManager("secret", time.Hour))

	token, err := expired.Generate("1", "ana", RoleUser)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, doGet(router, "/user-only", "Bearer "+token).Code)
}

func TestGateEnforcesRole(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour)
	router := newGateRouter(t, manager)

	userToken, err := manager.Generate("1", "ana", RoleUser)
	require.NoError(t, err)
	authorToken, err := manager.Generate("2", "bob", RoleAuthor)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, doGet(router, "/user-only", "Bearer "+userToken).Code)
	require.Equal(t, http.StatusForbidden, doGet(router, "/user-only", "Bearer "+authorToken).Code)

	require.Equal(t, http.StatusOK, doGet(router, "/author-only", "Bearer "+authorToken).Code)
	require.Equal(t, http.StatusForbidden, doGet(router, "/author-only", "Bearer "+userToken).Code)
}

func TestRequireAuthAcceptsEitherRole(t *testing.T) {
	manager := jwt.NewManager("secret", time.Hour)
	router := newGateRouter(t, manager)

	for _, role := range []string{RoleUser, RoleAuthor} {
		token, err := manager.Generate("1", "ana", role)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, doGet(router, "/any", "Bearer "+token).Code)
	}
}
