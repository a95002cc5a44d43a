package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"blogchat-backend/internal/domains/account"
	accountService "blogchat-backend/internal/domains/account/service"
	"blogchat-backend/internal/shared/middleware"
	"blogchat-backend/pkg/jwt"
)

// memRepo is an in-memory account.Repository for end-to-end handler tests.
type memRepo struct {
	users map[string]*account.User
}

func (m *memRepo) CreateUser(_ context.Context, u *account.User) error {
	if _, exists := m.users[u.Username]; exists {
		return account.ErrUsernameTaken
	}
	m.users[u.Username] = u
	return nil
}

func (m *memRepo) FindPrincipalByUsername(_ context.Context, username string) (*account.Principal, error) {
	u, ok := m.users[username]
	if !ok {
		return nil, account.ErrPrincipalNotFound
	}
	return &account.Principal{ID: u.ID, Username: u.Username, Role: account.RoleUser, PasswordHash: u.PasswordHash}, nil
}

func (m *memRepo) FindUserByID(_ context.Context, id uuid.UUID) (*account.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, account.ErrUserNotFound
}

func (m *memRepo) UpdateUserProfile(_ context.Context, id uuid.UUID, about, picture *string) (*account.User, error) {
	u, err := m.FindUserByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	if about != nil {
		u.About = about
	}
	if picture != nil {
		u.Picture = picture
	}
	return u, nil
}

func (m *memRepo) ListUsers(_ context.Context) ([]account.User, error) {
	var users []account.User
	for _, u := range m.users {
		users = append(users, *u)
	}
	return users, nil
}

func newAuthRouter(t *testing.T) (*gin.Engine, *jwt.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := jwt.NewManager("test-secret", 8*time.Hour)
	svc := accountService.NewAccountService(&memRepo{users: map[string]*account.User{}}, manager)
	h := NewAccountHandler(svc)

	router := gin.New()
	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)
	router.GET("/dashboard/posts", middleware.RequireRole(manager, middleware.RoleAuthor), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, manager
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestSignupLoginScenario(t *testing.T) {
	router, _ := newAuthRouter(t)

	// Signup succeeds once.
	resp := postJSON(router, "/signup", gin.H{
		"username":        "ana",
		"password":        "Abcdef1!",
		"confirmPassword": "Abcdef1!",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	// A second signup with the same username conflicts.
	resp = postJSON(router, "/signup", gin.H{
		"username":        "ana",
		"password":        "Abcdef1!",
		"confirmPassword": "Abcdef1!",
	})
	require.Equal(t, http.StatusConflict, resp.Code)

	// Login returns a token whose decoded role is "user".
	resp = postJSON(router, "/login", gin.H{"username": "ana", "password": "Abcdef1!"})
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Message string `json:"message"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	require.Equal(t, "Auth Passed", payload.Message)
	require.NotEmpty(t, payload.Data.Token)

	claims, err := jwt.NewManager("test-secret", time.Hour).Validate(payload.Data.Token)
	require.NoError(t, err)
	require.Equal(t, "user", claims.Role)

	// Wrong password is a 401.
	resp = postJSON(router, "/login", gin.H{"username": "ana", "password": "Nope1!aaa"})
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	// Unknown username is a 401.
	resp = postJSON(router, "/login", gin.H{"username": "ghost", "password": "Abcdef1!"})
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	// A user token does not pass the author gate.
	req := httptest.NewRequest(http.MethodGet, "/dashboard/posts", nil)
	req.Header.Set("Authorization", "Bearer "+payload.Data.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSignupValidationFailureListsFields(t *testing.T) {
	router, _ := newAuthRouter(t)

	resp := postJSON(router, "/signup", gin.H{
		"username":        "ana7",
		"password":        "weak",
		"confirmPassword": "different",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var payload struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	require.Equal(t, "VALIDATION_FAILED", payload.Error.Code)
	require.Contains(t, payload.Error.Details, "username")
	require.Contains(t, payload.Error.Details, "password")
	require.Contains(t, payload.Error.Details, "confirmPassword")
}
