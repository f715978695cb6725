package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ExchangeStyle selects how client credentials are presented during the
// authorization-code exchange.
type ExchangeStyle int

const (
	// ExchangeStyleForm sends client_id and client_secret as form fields.
	ExchangeStyleForm ExchangeStyle = iota
	// ExchangeStyleBasicAuth sends client credentials via HTTP Basic auth,
	// with a JSON body. Notion requires this.
	ExchangeStyleBasicAuth
)

// TokenResponse is the normalized result of a code exchange or token refresh.
// A nil RefreshToken means the provider did not return one; callers must keep
// any previously stored refresh token in that case.
type TokenResponse struct {
	AccessToken  string
	RefreshToken *string
	ExpiresAt    *time.Time // nil when the provider issues non-expiring tokens.
	Scopes       []string
	Raw          map[string]any // Provider-specific extras, e.g. Notion's workspace fields.
}

// AccountInfo identifies the third-party account a connection is bound to.
// When the identity endpoint fails the flow still completes with the unknown
// placeholder rather than aborting.
type AccountInfo struct {
	ID          string
	Email       string
	DisplayName string
}

// UnknownAccount is used when the provider identity lookup fails.
var UnknownAccount = AccountInfo{ID: "unknown", Email: "unknown"}

// ProviderConfig carries the per-app settings a provider needs for one flow
// step. The client secret is plaintext here; it is decrypted immediately
// before the upstream call and not retained.
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string
}

// Provider encapsulates the protocol quirks of one third-party OAuth service.
type Provider interface {
	// Name returns the service machine name, e.g. "google".
	Name() string

	// AuthorizationURL builds the provider authorize URL for a flow keyed by state.
	AuthorizationURL(cfg ProviderConfig, state string) (string, error)

	// ExchangeCode trades an authorization code for tokens.
	ExchangeCode(ctx context.Context, cfg ProviderConfig, code string) (*TokenResponse, error)

	// Refresh obtains a new access token from a refresh token.
	Refresh(ctx context.Context, cfg ProviderConfig, refreshToken string) (*TokenResponse, error)

	// FetchAccountInfo resolves the authenticated account behind an access token.
	// Implementations return UnknownAccount instead of an error when the
	// identity endpoint is unavailable.
	FetchAccountInfo(ctx context.Context, accessToken string, tok *TokenResponse) AccountInfo

	// SupportsRefresh reports whether the provider issues refresh tokens at all.
	SupportsRefresh() bool
}

// ProviderRegistry resolves providers by service name.
type ProviderRegistry interface {
	// Get returns the provider for a service name, or an error for unknown services.
	Get(serviceName string) (Provider, error)

	// Names returns all registered service names.
	Names() []string
}

// StateStore holds pending authorization states for the duration of one
// OAuth round-trip. States are single-use: Consume removes the record so a
// replayed callback cannot match it again.
type StateStore interface {
	// Put stores a pending state record.
	Put(state string, rec *StateRecord)

	// Consume removes and returns the record for a state token.
	// The second return is false when the state is unknown or already used.
	Consume(state string) (*StateRecord, bool)

	// Sweep drops all records past their expiry and returns how many were removed.
	Sweep(now time.Time) int

	// Len returns the number of pending records.
	Len() int
}

// StateRecord is the payload kept per pending authorization.
type StateRecord struct {
	OwnerID     uuid.UUID
	ServiceName string
	ReturnURL   string
	OAuthAppID  uuid.UUID
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// Expired reports whether the record is past its absolute expiry.
func (r *StateRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
