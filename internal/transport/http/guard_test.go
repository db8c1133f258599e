package httptransport

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melodia-server-go/internal/domain/auth"
	"melodia-server-go/internal/domain/user"
	"melodia-server-go/internal/platform/storage"
	platformtesting "melodia-server-go/internal/platform/testing"
)

func setupGuardEngine(t *testing.T) (*gin.Engine, *auth.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := user.NewService(storage.NewMemoryUserStore(), user.NewHasher())
	issuer := auth.NewIssuer(auth.IssuerConfig{
		AccessSecret:    "access-secret",
		RefreshSecret:   "refresh-secret",
		AccessLifetime:  time.Minute,
		RefreshLifetime: time.Hour,
	})
	manager := auth.NewManager(users, issuer, auth.NewMemoryLedger(), platformtesting.SetupTestLogger(t))

	engine := gin.New()
	engine.Use(Guard(manager))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.POST("/auth/signup", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/doc", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/artist", func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"login": claims.Login})
	})

	return engine, manager
}

func doRequest(engine *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestGuardAllowsOpenPaths(t *testing.T) {
	engine, _ := setupGuardEngine(t)

	assert.Equal(t, http.StatusOK, doRequest(engine, http.MethodGet, "/", "").Code)
	assert.Equal(t, http.StatusOK, doRequest(engine, http.MethodPost, "/auth/signup", "").Code)
	assert.Equal(t, http.StatusOK, doRequest(engine, http.MethodGet, "/doc", "").Code)
}

func TestGuardRequiresHeader(t *testing.T) {
	engine, _ := setupGuardEngine(t)

	w := doRequest(engine, http.MethodGet, "/artist", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header is missing")
}

func TestGuardRejectsWrongScheme(t *testing.T) {
	engine, _ := setupGuardEngine(t)

	for _, header := range []string{"Basic abc", "Bearer", "Bearer ", "token-without-scheme"} {
		w := doRequest(engine, http.MethodGet, "/artist", header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestGuardRejectsInvalidToken(t *testing.T) {
	engine, _ := setupGuardEngine(t)

	w := doRequest(engine, http.MethodGet, "/artist", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired access token")
}

func TestGuardAcceptsValidToken(t *testing.T) {
	engine, manager := setupGuardEngine(t)
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()

	_, err := manager.Signup(ctx, "alice", "secret123")
	require.NoError(t, err)
	pair, err := manager.Login(ctx, "alice", "secret123")
	require.NoError(t, err)

	w := doRequest(engine, http.MethodGet, "/artist", "Bearer "+pair.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestGuardRejectsRefreshTokenAsBearer(t *testing.T) {
	engine, manager := setupGuardEngine(t)
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()

	_, err := manager.Signup(ctx, "alice", "secret123")
	require.NoError(t, err)
	pair, err := manager.Login(ctx, "alice", "secret123")
	require.NoError(t, err)

	w := doRequest(engine, http.MethodGet, "/artist", "Bearer "+pair.RefreshToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
