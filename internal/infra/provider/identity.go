package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"vaultd/internal/domain/service"
)

// fetchJSON performs an authenticated GET and decodes the JSON body. A nil
// return means the lookup failed and the caller should fall back to the
// unknown placeholder.
func fetchJSON(ctx context.Context, client *http.Client, endpoint, accessToken string, headers map[string]string) map[string]any {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil
	}

	return data
}

func str(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}

func nested(data map[string]any, keys ...string) map[string]any {
	for _, key := range keys {
		next, ok := data[key].(map[string]any)
		if !ok {
			return nil
		}
		data = next
	}
	return data
}

func notionIdentity(ctx context.Context, client *http.Client, accessToken string, _ *service.TokenResponse) service.AccountInfo {
	data := fetchJSON(ctx, client, "https://api.notion.com/v1/users/me", accessToken,
		map[string]string{"Notion-Version": "2022-06-28"})
	if data == nil {
		return service.UnknownAccount
	}

	email := str(nested(data, "person"), "email")
	if email == "" {
		// Bot tokens carry the workspace owner's identity instead.
		email = str(nested(data, "bot", "owner", "user", "person"), "email")
	}

	return service.AccountInfo{
		ID:          str(data, "id"),
		Email:       email,
		DisplayName: str(data, "name"),
	}
}

func googleIdentity(ctx context.Context, client *http.Client, accessToken string, _ *service.TokenResponse) service.AccountInfo {
	data := fetchJSON(ctx, client, "https://www.googleapis.com/oauth2/v2/userinfo", accessToken, nil)
	if data == nil {
		return service.UnknownAccount
	}

	return service.AccountInfo{
		ID:          str(data, "id"),
		Email:       str(data, "email"),
		DisplayName: str(data, "name"),
	}
}

func microsoftIdentity(ctx context.Context, client *http.Client, accessToken string, _ *service.TokenResponse) service.AccountInfo {
	data := fetchJSON(ctx, client, "https://graph.microsoft.com/v1.0/me", accessToken, nil)
	if data == nil {
		return service.UnknownAccount
	}

	email := str(data, "mail")
	if email == "" {
		email = str(data, "userPrincipalName")
	}

	return service.AccountInfo{
		ID:          str(data, "id"),
		Email:       email,
		DisplayName: str(data, "displayName"),
	}
}

func slackIdentity(ctx context.Context, client *http.Client, accessToken string, _ *service.TokenResponse) service.AccountInfo {
	data := fetchJSON(ctx, client, "https://slack.com/api/users.identity", accessToken, nil)
	if data == nil {
		return service.UnknownAccount
	}

	user := nested(data, "user")
	if user == nil {
		return service.UnknownAccount
	}

	return service.AccountInfo{
		ID:          str(user, "id"),
		Email:       str(user, "email"),
		DisplayName: str(user, "name"),
	}
}

func linkedinIdentity(ctx context.Context, client *http.Client, accessToken string, _ *service.TokenResponse) service.AccountInfo {
	data := fetchJSON(ctx, client, "https://api.linkedin.com/v2/me", accessToken, nil)
	if data == nil {
		return service.UnknownAccount
	}

	name := str(data, "localizedFirstName")
	if last := str(data, "localizedLastName"); last != "" {
		name += " " + last
	}

	// LinkedIn exposes the email only through a separate permissioned
	// endpoint, so the profile ID is the identifier here.
	return service.AccountInfo{
		ID:          str(data, "id"),
		Email:       "linkedin@user",
		DisplayName: name,
	}
}

func facebookIdentity(ctx context.Context, client *http.Client, accessToken string, _ *service.TokenResponse) service.AccountInfo {
	data := fetchJSON(ctx, client, "https://graph.facebook.com/me?fields=id,name,email", accessToken, nil)
	if data == nil {
		return service.UnknownAccount
	}

	return service.AccountInfo{
		ID:          str(data, "id"),
		Email:       str(data, "email"),
		DisplayName: str(data, "name"),
	}
}
