package httptransport

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"melodia-server-go/internal/domain/auth"
)

const claimsContextKey = "authClaims"

type matchKind int

const (
	matchExact matchKind = iota
	matchPrefix
)

type allowRule struct {
	kind    matchKind
	pattern string
}

// allowRules is evaluated in order. The auth and doc paths match by
// prefix; the root and the raw openapi document match exactly.
var allowRules = []allowRule{
	{matchPrefix, "/auth/signup"},
	{matchPrefix, "/auth/login"},
	{matchPrefix, "/auth/refresh"},
	{matchPrefix, "/doc"},
	{matchExact, "/openapi.json"},
	{matchExact, "/"},
}

func pathAllowed(path string) bool {
	for _, rule := range allowRules {
		switch rule.kind {
		case matchExact:
			if path == rule.pattern {
				return true
			}
		case matchPrefix:
			if strings.HasPrefix(path, rule.pattern) {
				return true
			}
		}
	}
	return false
}

// Guard gates every route outside the allow list behind a valid bearer
// access token. On success the claim set is attached to the request
// context for downstream handlers.
func Guard(manager *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pathAllowed(c.Request.URL.Path) {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			RespondError(c, http.StatusUnauthorized, "Authorization header is missing", "Unauthorized")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			RespondError(c, http.StatusUnauthorized, "Invalid authorization scheme. Use Bearer token", "Unauthorized")
			return
		}

		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			RespondError(c, http.StatusUnauthorized, "Invalid or expired access token", "Unauthorized")
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the identity attached by the Guard, if any.
func ClaimsFromContext(c *gin.Context) (*auth.ClaimSet, bool) {
	v, ok := c.Get(claimsContextKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.ClaimSet)
	return claims, ok
}
