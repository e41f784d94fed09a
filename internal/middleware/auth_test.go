package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thereayou/blabla/pkg/auth"
)

func newAuthTestRouter(mgr *auth.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(mgr), func(c *gin.Context) {
		userID := c.MustGet(UserIDKey).(uuid.UUID)
		c.JSON(http.StatusOK, gin.H{"id": userID.String()})
	})
	return r
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	mgr := auth.NewJWTManager("test-secret", time.Hour)
	r := newAuthTestRouter(mgr)

	id := uuid.New()
	tok, err := mgr.Generate(id.String())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id.String())
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	t.Parallel()

	mgr := auth.NewJWTManager("test-secret", time.Hour)
	r := newAuthTestRouter(mgr)

	expired, err := auth.NewJWTManager("test-secret", -time.Minute).Generate(uuid.NewString())
	require.NoError(t, err)

	// subject не uuid — токен валиден криптографически, но бесполезен
	badSubject, err := mgr.Generate("not-a-uuid")
	require.NoError(t, err)

	cases := map[string]string{
		"missing":      "",
		"not bearer":   "Basic abc",
		"garbage":      "Bearer not.a.jwt",
		"expired":      "Bearer " + expired,
		"bad subject":  "Bearer " + badSubject,
		"wrong secret": "Bearer " + mustToken(t, "other-secret"),
	}

	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}

func mustToken(t *testing.T, secret string) string {
	t.Helper()
	tok, err := auth.NewJWTManager(secret, time.Hour).Generate(uuid.NewString())
	require.NoError(t, err)
	return tok
}
