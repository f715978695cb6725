package middleware

import (
	"strings"

	"vaultd/config"
	"vaultd/internal/delivery/http/response"
	"vaultd/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by the authentication middleware.
const (
	ContextKeyCaller = "caller"
	ContextKeyScopes = "scopes"
)

// internalTokenHeader carries the static shared token of internal callers.
const internalTokenHeader = "x-internal-token"

// AuthMiddleware authenticates internal callers. Two credentials are
// accepted: the static internal token (compared against its bcrypt hash, so
// configuration never stores the plaintext) or a signed service-account JWT.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	hasher   service.SecretHasher
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, hasher service.SecretHasher, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, hasher: hasher, cfg: cfg}
}

// Authenticate validates the internal token header or a Bearer JWT. On
// success the caller identity is set on the context for audit attribution.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := c.Request().Header.Get(internalTokenHeader); token != "" {
			if m.cfg.InternalAuth == nil || m.cfg.InternalAuth.TokenHash == "" {
				return response.Unauthorized(c, "UNAUTHORIZED", "Internal token authentication is not configured")
			}
			if !m.hasher.Check(token, m.cfg.InternalAuth.TokenHash) {
				return response.Unauthorized(c, "UNAUTHORIZED", "Invalid internal token")
			}

			c.Set(ContextKeyCaller, "internal")
			c.Set(ContextKeyScopes, []string{})

			return next(c)
		}

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Missing internal token or Authorization header")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(ContextKeyCaller, claims.Caller)
		c.Set(ContextKeyScopes, claims.Scopes)

		return next(c)
	}
}

// RequireScope is a middleware factory that checks for a token scope. It must
// be used after Authenticate. Static internal token callers carry no scopes
// and pass every check.
func (m *AuthMiddleware) RequireScope(requiredScope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if caller, _ := c.Get(ContextKeyCaller).(string); caller == "internal" {
				return next(c)
			}

			scopes, ok := c.Get(ContextKeyScopes).([]string)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: scope information missing")
			}

			for _, scope := range scopes {
				if scope == requiredScope {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredScope+"' scope")
		}
	}
}

// CallerIdentity returns the authenticated caller name for audit trails.
func CallerIdentity(c echo.Context) string {
	caller, _ := c.Get(ContextKeyCaller).(string)
	if caller == "" {
		return "unknown"
	}

	return caller
}
