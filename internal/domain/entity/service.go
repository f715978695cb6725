package entity

import "time"

// OAuthType classifies how a third-party service authenticates.
type OAuthType string

const (
	// OAuthTypeOAuth2 marks services using the OAuth2 authorization-code flow.
	OAuthTypeOAuth2 OAuthType = "oauth2"
	// OAuthTypeAPIKey marks services authenticated with a static API key.
	OAuthTypeAPIKey OAuthType = "api_key"
	// OAuthTypeNone marks services without credential-based authentication.
	OAuthTypeNone OAuthType = "none"
)

// Service is a catalog entry for a third-party service that connections can
// be created against. Only active oauth2 services participate in refresh
// scanning.
type Service struct {
	ID          int64
	Name        string // Machine name, e.g. "google", "notion". Unique.
	DisplayName string // Human-readable name shown in listings.
	OAuthType   OAuthType
	IsActive    bool
	CreatedAt   time.Time
}
