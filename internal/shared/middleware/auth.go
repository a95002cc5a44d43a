package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"blogchat-backend/internal/shared/response"
	"blogchat-backend/pkg/jwt"
)

// Context keys set by the auth middleware.
const (
	ContextClaims      = "claims"
	ContextPrincipalID = "principalID"
	ContextRole        = "role"
)

// Roles a bearer token can carry.
const (
	RoleUser   = "user"
	RoleAuthor = "author"
)

// RequireRole gates a route on a valid bearer token carrying exactly the
// given role. Missing or invalid tokens get 401, a wrong role gets 403.
// The gate never consults storage; the role is trusted from the signed
// token.
func RequireRole(manager *jwt.Manager, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, manager)
		if !ok {
			return
		}

		if claims.Role != role {
			response.Forbidden(c, "Forbidden: requires "+role+" role")
			c.Abort()
			return
		}

		attachClaims(c, claims)
		c.Next()
	}
}

// RequireAuth gates a route on any valid bearer token, regardless of role.
func RequireAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, manager)
		if !ok {
			return
		}

		attachClaims(c, claims)
		c.Next()
	}
}

// authenticate extracts and verifies the bearer token. On failure it writes
// the 401 response, aborts, and returns ok=false.
func authenticate(c *gin.Context, manager *jwt.Manager) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		response.Unauthorized(c, "No or invalid token")
		c.Abort()
		return nil, false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := manager.Validate(token)
	if err != nil {
		response.Unauthorized(c, "Token verification failed")
		c.Abort()
		return nil, false
	}

	return claims, true
}

func attachClaims(c *gin.Context, claims *jwt.Claims) {
	c.Set(ContextClaims, claims)
	c.Set(ContextPrincipalID, claims.UserID)
	c.Set(ContextRole, claims.Role)
}

// ClaimsFromContext returns the claims attached by the auth middleware.
func ClaimsFromContext(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(ContextClaims)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}
