package entity

import (
	"time"

	"github.com/google/uuid"
)

// OAuthApp is the registration of a third-party OAuth application: the client
// credentials this vault presents to a provider during authorization and token
// exchange. An app is either global (OwnerID nil) or scoped to a single owner;
// owner-scoped apps shadow the global one for the same service.
//
// ClientSecret holds the encrypted storage form, never plaintext. App configs
// are re-read from persistence on every flow step so that rotation takes
// effect immediately.
type OAuthApp struct {
	ID           uuid.UUID
	OwnerID      *uuid.UUID // nil for a global app available to every owner.
	ServiceName  string
	AppName      string
	ClientID     string
	ClientSecret string // Encrypted with the master key.
	RedirectURI  string
	Scopes       []string // Default scopes requested during authorization.
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsGlobal reports whether this app serves all owners.
func (a *OAuthApp) IsGlobal() bool {
	return a.OwnerID == nil
}
