// Package provider implements the per-service OAuth strategies. Each
// third-party service shares the same authorization-code skeleton but differs
// in endpoints, credential presentation and identity lookup; a definition
// captures those differences and one generic implementation drives them all.
package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainerrors "vaultd/internal/domain/errors"
	"vaultd/internal/domain/service"

	"github.com/pkg/errors"
)

// identityFunc resolves the account behind a freshly issued access token.
// It never fails the flow: lookup errors degrade to the unknown placeholder.
type identityFunc func(ctx context.Context, client *http.Client, accessToken string, tok *service.TokenResponse) service.AccountInfo

// definition captures everything service-specific about one provider.
type definition struct {
	name            string
	authURL         string
	tokenURL        string
	style           service.ExchangeStyle
	extraAuthParams url.Values
	supportsRefresh bool
	identity        identityFunc
}

// httpProvider is the generic implementation of service.Provider driven by a
// definition. All upstream calls share one client with the configured timeout.
type httpProvider struct {
	def    definition
	client *http.Client
}

func newProvider(def definition, client *http.Client) service.Provider {
	return &httpProvider{def: def, client: client}
}

// Name returns the service machine name.
func (p *httpProvider) Name() string {
	return p.def.name
}

// SupportsRefresh reports whether the provider issues refresh tokens at all.
func (p *httpProvider) SupportsRefresh() bool {
	return p.def.supportsRefresh
}

// AuthorizationURL builds the provider authorize URL for one flow.
func (p *httpProvider) AuthorizationURL(cfg service.ProviderConfig, state string) (string, error) {
	base, err := url.Parse(p.def.authURL)
	if err != nil {
		return "", errors.Wrap(err, "parsing authorization endpoint")
	}

	params := url.Values{}
	params.Set("client_id", cfg.ClientID)
	params.Set("redirect_uri", cfg.RedirectURI)
	params.Set("response_type", "code")
	params.Set("scope", strings.Join(cfg.Scopes, " "))
	params.Set("state", state)
	for key, values := range p.def.extraAuthParams {
		for _, v := range values {
			params.Add(key, v)
		}
	}

	base.RawQuery = params.Encode()

	return base.String(), nil
}

// ExchangeCode trades an authorization code for tokens.
func (p *httpProvider) ExchangeCode(ctx context.Context, cfg service.ProviderConfig, code string) (*service.TokenResponse, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", cfg.RedirectURI)

	return p.tokenCall(ctx, cfg, form)
}

// Refresh obtains a new access token from a refresh token.
func (p *httpProvider) Refresh(ctx context.Context, cfg service.ProviderConfig, refreshToken string) (*service.TokenResponse, error) {
	if !p.def.supportsRefresh {
		return nil, domainerrors.ErrUpstreamFailed.WrapMessage(p.def.name + " does not issue refresh tokens")
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)

	return p.tokenCall(ctx, cfg, form)
}

// FetchAccountInfo resolves the authenticated account behind an access token.
func (p *httpProvider) FetchAccountInfo(ctx context.Context, accessToken string, tok *service.TokenResponse) service.AccountInfo {
	if p.def.identity == nil {
		return service.UnknownAccount
	}

	return p.def.identity(ctx, p.client, accessToken, tok)
}

// tokenCall posts a form to the token endpoint and normalizes the response.
// Client credentials go in the form or in a Basic auth header depending on
// the provider; Notion only accepts the latter.
func (p *httpProvider) tokenCall(ctx context.Context, cfg service.ProviderConfig, form url.Values) (*service.TokenResponse, error) {
	if p.def.style == service.ExchangeStyleForm {
		form.Set("client_id", cfg.ClientID)
		form.Set("client_secret", cfg.ClientSecret)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.def.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "building token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if p.def.style == service.ExchangeStyleBasicAuth {
		req.SetBasicAuth(cfg.ClientID, cfg.ClientSecret)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, domainerrors.ErrUpstreamFailed.WrapMessage(p.def.name + " token endpoint unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, domainerrors.ErrUpstreamFailed.WrapMessage("reading token response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The upstream error body may describe the request, never our
		// credentials, so passing its status through is safe.
		return nil, domainerrors.ErrUpstreamFailed.WrapMessage(
			p.def.name + " token endpoint returned " + resp.Status)
	}

	return parseTokenResponse(body, time.Now())
}

// parseTokenResponse normalizes a provider token payload. A missing
// refresh_token stays nil so callers keep any previously stored one, and a
// missing expires_in means the token does not expire.
func parseTokenResponse(body []byte, now time.Time) (*service.TokenResponse, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, domainerrors.ErrUpstreamFailed.WrapMessage("token response is not valid JSON")
	}

	accessToken, _ := raw["access_token"].(string)
	if accessToken == "" {
		return nil, domainerrors.ErrUpstreamFailed.WrapMessage("token response has no access_token")
	}

	tok := &service.TokenResponse{
		AccessToken: accessToken,
		Raw:         raw,
	}

	if rt, ok := raw["refresh_token"].(string); ok && rt != "" {
		tok.RefreshToken = &rt
	}

	if expiresIn, ok := raw["expires_in"].(float64); ok && expiresIn > 0 {
		expiresAt := now.Add(time.Duration(expiresIn) * time.Second)
		tok.ExpiresAt = &expiresAt
	}

	if scope, ok := raw["scope"].(string); ok && scope != "" {
		// Slack joins scopes with commas, everyone else with spaces.
		tok.Scopes = strings.FieldsFunc(scope, func(r rune) bool {
			return r == ' ' || r == ','
		})
	}

	return tok, nil
}
