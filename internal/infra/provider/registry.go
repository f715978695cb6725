package provider

import (
	"net/http"
	"net/url"
	"sort"

	"vaultd/config"
	domainerrors "vaultd/internal/domain/errors"
	"vaultd/internal/domain/service"
)

// registry maps service names to their providers. The set is fixed at
// startup; adding a service means adding a definition here plus a catalog row.
type registry struct {
	providers map[string]service.Provider
}

// NewRegistry is the constructor for the provider registry. All providers
// share one HTTP client bounded by the configured upstream timeout.
func NewRegistry(cfg *config.Config) service.ProviderRegistry {
	client := &http.Client{Timeout: cfg.OAuth.ProviderTimeout}

	defs := []definition{
		{
			name:            "notion",
			authURL:         "https://api.notion.com/v1/oauth/authorize",
			tokenURL:        "https://api.notion.com/v1/oauth/token",
			style:           service.ExchangeStyleBasicAuth,
			extraAuthParams: url.Values{"owner": {"user"}},
			supportsRefresh: false,
			identity:        notionIdentity,
		},
		{
			name:     "google",
			authURL:  "https://accounts.google.com/o/oauth2/v2/auth",
			tokenURL: "https://oauth2.googleapis.com/token",
			style:    service.ExchangeStyleForm,
			// Without offline access and forced consent Google only issues a
			// refresh token on the very first authorization.
			extraAuthParams: url.Values{"access_type": {"offline"}, "prompt": {"consent"}},
			supportsRefresh: true,
			identity:        googleIdentity,
		},
		{
			name:            "microsoft",
			authURL:         "https://login.microsoftonline.com/common/oauth2/v2.0/authorize",
			tokenURL:        "https://login.microsoftonline.com/common/oauth2/v2.0/token",
			style:           service.ExchangeStyleForm,
			supportsRefresh: true,
			identity:        microsoftIdentity,
		},
		{
			name:            "slack",
			authURL:         "https://slack.com/oauth/v2/authorize",
			tokenURL:        "https://slack.com/api/oauth.v2.access",
			style:           service.ExchangeStyleForm,
			supportsRefresh: true,
			identity:        slackIdentity,
		},
		{
			name:            "linkedin",
			authURL:         "https://www.linkedin.com/oauth/v2/authorization",
			tokenURL:        "https://www.linkedin.com/oauth/v2/accessToken",
			style:           service.ExchangeStyleForm,
			supportsRefresh: true,
			identity:        linkedinIdentity,
		},
		{
			name:            "facebook",
			authURL:         "https://www.facebook.com/v18.0/dialog/oauth",
			tokenURL:        "https://graph.facebook.com/v18.0/oauth/access_token",
			style:           service.ExchangeStyleForm,
			supportsRefresh: true,
			identity:        facebookIdentity,
		},
	}

	providers := make(map[string]service.Provider, len(defs))
	for _, def := range defs {
		providers[def.name] = newProvider(def, client)
	}

	return &registry{providers: providers}
}

// Get returns the provider for a service name.
func (r *registry) Get(serviceName string) (service.Provider, error) {
	p, ok := r.providers[serviceName]
	if !ok {
		return nil, domainerrors.ErrServiceNotFound.WrapMessage("no provider for " + serviceName)
	}
	return p, nil
}

// Names returns all registered service names, sorted.
func (r *registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
