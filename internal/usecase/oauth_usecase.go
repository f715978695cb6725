package usecase

import (
	"context"

	"github.com/google/uuid"
)

// OAuthUsecase defines the interface for the OAuth authorization flow and
// application management.
type OAuthUsecase interface {
	// GenerateAuthorizationURL starts an authorization round-trip: it resolves
	// the OAuth application, registers a single-use state and builds the
	// provider authorize URL.
	GenerateAuthorizationURL(ctx context.Context, input *AuthorizeInput) (*AuthorizeOutput, error)

	// HandleCallback completes the round-trip: it consumes the state, exchanges
	// the code, resolves the account identity and stores the connection.
	HandleCallback(ctx context.Context, input *CallbackInput) (*CallbackOutput, error)

	// UpsertApplication registers or rotates an OAuth application. The client
	// secret is encrypted before it reaches storage.
	UpsertApplication(ctx context.Context, input *UpsertApplicationInput) (uuid.UUID, error)

	// ListApplications lists active applications, optionally scoped to an owner.
	// Client secrets are never included.
	ListApplications(ctx context.Context, ownerID *uuid.UUID) ([]*OAuthAppSummary, error)
}

// --- Input DTOs ---

// AuthorizeInput defines the data required to start an authorization flow.
type AuthorizeInput struct {
	OwnerID     uuid.UUID
	ServiceName string
	ReturnURL   string // Destination after the callback; defaults to the connections page.
}

// CallbackInput carries the provider redirect parameters.
type CallbackInput struct {
	ServiceName string
	Code        string
	State       string
}

// UpsertApplicationInput defines the data required to register an OAuth
// application. ClientSecret is plaintext and encrypted on the way in.
type UpsertApplicationInput struct {
	OwnerID      *uuid.UUID `json:"owner_id,omitempty"` // nil registers a global app.
	ServiceName  string     `json:"service_name"`
	AppName      string     `json:"app_name"`
	ClientID     string     `json:"client_id"`
	ClientSecret string     `json:"client_secret"`
	RedirectURI  string     `json:"redirect_uri"`
	Scopes       []string   `json:"scopes,omitempty"`
}

// --- Output DTOs ---

// Application kinds reported when starting an authorization flow.
const (
	AppTypeGlobal = "global" // shared application, no owner
	AppTypeClient = "client" // owner-scoped application
)

// AuthorizeOutput is the result of starting an authorization flow.
type AuthorizeOutput struct {
	AuthURL string
	State   string
	AppType string // AppTypeGlobal or AppTypeClient
}

// CallbackOutput is the result of a completed authorization flow.
type CallbackOutput struct {
	ConnectionID uuid.UUID
	ReturnURL    string
	AccountEmail string
}

// OAuthAppSummary is one row of an application listing, without the secret.
type OAuthAppSummary struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     *uuid.UUID `json:"owner_id,omitempty"`
	IsGlobal    bool       `json:"is_global"`
	ServiceName string     `json:"service_name"`
	AppName     string     `json:"app_name"`
	ClientID    string     `json:"client_id"`
	RedirectURI string     `json:"redirect_uri"`
	Scopes      []string   `json:"scopes,omitempty"`
}
