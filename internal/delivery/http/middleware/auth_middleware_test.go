package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vaultd/config"
	"vaultd/internal/domain/service"
	mockService "vaultd/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authTestMocks struct {
	tokenSvc *mockService.MockTokenService
	hasher   *mockService.MockSecretHasher
}

func newAuthMiddlewareForTest(t *testing.T) (*AuthMiddleware, *authTestMocks) {
	t.Helper()

	mocks := &authTestMocks{
		tokenSvc: mockService.NewMockTokenService(t),
		hasher:   mockService.NewMockSecretHasher(t),
	}
	cfg := &config.Config{
		InternalAuth: &config.InternalAuthConfig{
			TokenHash: "$2a$10$stored-token-hash",
			JWTSecret: "test-secret",
		},
	}

	return NewAuthMiddleware(mocks.tokenSvc, mocks.hasher, cfg), mocks
}

func invokeAuthenticate(t *testing.T, m *AuthMiddleware, req *http.Request) (*httptest.ResponseRecorder, bool, string) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	caller := ""
	handler := m.Authenticate(func(c echo.Context) error {
		called = true
		caller = CallerIdentity(c)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, called, caller
}

func TestAuthenticate_ValidInternalToken(t *testing.T) {
	m, mocks := newAuthMiddlewareForTest(t)
	mocks.hasher.EXPECT().Check("plain-internal-token", "$2a$10$stored-token-hash").Return(true)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("x-internal-token", "plain-internal-token")

	rec, called, caller := invokeAuthenticate(t, m, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "internal", caller)
}

func TestAuthenticate_InvalidInternalToken(t *testing.T) {
	m, mocks := newAuthMiddlewareForTest(t)
	mocks.hasher.EXPECT().Check("wrong-token", "$2a$10$stored-token-hash").Return(false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("x-internal-token", "wrong-token")

	rec, called, _ := invokeAuthenticate(t, m, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ValidBearerToken(t *testing.T) {
	m, mocks := newAuthMiddlewareForTest(t)
	mocks.tokenSvc.EXPECT().ValidateToken("signed-jwt").Return(&service.Claims{
		Caller: "workflow-engine",
		Scopes: []string{"credentials:read"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer signed-jwt")

	rec, called, caller := invokeAuthenticate(t, m, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "workflow-engine", caller)
}

func TestAuthenticate_InvalidBearerToken(t *testing.T) {
	m, mocks := newAuthMiddlewareForTest(t)
	mocks.tokenSvc.EXPECT().ValidateToken("expired-jwt").Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired-jwt")

	rec, called, _ := invokeAuthenticate(t, m, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MissingCredentials(t *testing.T) {
	m, _ := newAuthMiddlewareForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rec, called, _ := invokeAuthenticate(t, m, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MalformedAuthorizationHeader(t *testing.T) {
	m, _ := newAuthMiddlewareForTest(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	rec, called, _ := invokeAuthenticate(t, m, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireScope_GrantsMatchingScope(t *testing.T) {
	m, _ := newAuthMiddlewareForTest(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set(ContextKeyCaller, "workflow-engine")
	c.Set(ContextKeyScopes, []string{"credentials:read"})

	called := false
	handler := m.RequireScope("credentials:read")(func(c echo.Context) error {
		called = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.True(t, called)
}

func TestRequireScope_RejectsMissingScope(t *testing.T) {
	m, _ := newAuthMiddlewareForTest(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set(ContextKeyCaller, "workflow-engine")
	c.Set(ContextKeyScopes, []string{"credentials:read"})

	called := false
	handler := m.RequireScope("apps:write")(func(c echo.Context) error {
		called = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireScope_InternalTokenBypassesScopes(t *testing.T) {
	m, _ := newAuthMiddlewareForTest(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set(ContextKeyCaller, "internal")
	c.Set(ContextKeyScopes, []string{})

	called := false
	handler := m.RequireScope("apps:write")(func(c echo.Context) error {
		called = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.True(t, called)
}
