package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-reservation/internal/model"
	"github.com/iliyamo/hotel-room-reservation/internal/utils"
)

const testSecret = "test-secret"

func protectedServer(mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"user_id": c.Get("user_id"),
			"role":    c.Get("role"),
		})
	}, mw...)
	return e
}

func get(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, model.RoleUser, 15)
	require.NoError(t, err)

	e := protectedServer(JWTAuth(testSecret))
	rec := get(e, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"role":"USER"`)
}

func TestJWTAuthRejectsMissingAndGarbage(t *testing.T) {
	e := protectedServer(JWTAuth(testSecret))

	rec := get(e, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = get(e, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 7, model.RoleUser, 15)
	require.NoError(t, err)

	e := protectedServer(JWTAuth(testSecret))
	rec := get(e, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, model.RoleUser, -1)
	require.NoError(t, err)

	e := protectedServer(JWTAuth(testSecret))
	rec := get(e, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	admin, err := utils.NewAccessToken(testSecret, 1, model.RoleAdmin, 15)
	require.NoError(t, err)
	user, err := utils.NewAccessToken(testSecret, 2, model.RoleUser, 15)
	require.NoError(t, err)

	e := protectedServer(JWTAuth(testSecret), RequireRole(model.RoleAdmin))

	rec := get(e, "Bearer "+admin.Token)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(e, "Bearer "+user.Token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
