package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_secret"

func mustMakeJWT(t *testing.T, secret string, sub int64, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"iat":  1,
		"exp":  9999999999,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}
	return s
}

// contextに入った値をそのまま返すハンドラで検証する
func runWithAuth(t *testing.T, authz string) (*httptest.ResponseRecorder, int64, model.Role) {
	t.Helper()

	e := echo.New()
	cfg := config.Config{JWTSecret: testSecret}

	var gotUserID int64
	var gotRole model.Role

	h := middleware.AuthJWT(cfg)(func(c echo.Context) error {
		gotUserID, _ = c.Get(middleware.CtxUserIDKey).(int64)
		gotRole, _ = c.Get(middleware.CtxUserRoleKey).(model.Role)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()

	err := h(e.NewContext(req, rec))
	assert.NoError(t, err)

	return rec, gotUserID, gotRole
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	rec, _, _ := runWithAuth(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_NotBearer(t *testing.T) {
	rec, _, _ := runWithAuth(t, "Basic abcdef")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	token := mustMakeJWT(t, "another_secret", 7, "CUSTOMER")
	rec, _, _ := runWithAuth(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ValidToken_SetsUserAndRole(t *testing.T) {
	token := mustMakeJWT(t, testSecret, 7, "DELIVERY_CREW")
	rec, userID, role := runWithAuth(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), userID)
	assert.Equal(t, model.RoleDeliveryCrew, role)
}

// 未知ロールは401にせず、RoleUnknownで通してusecase側の403に任せる
func TestAuthJWT_UnknownRolePassesThrough(t *testing.T) {
	token := mustMakeJWT(t, testSecret, 7, "SOMETHING_ELSE")
	rec, userID, role := runWithAuth(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), userID)
	assert.Equal(t, model.RoleUnknown, role)
}
