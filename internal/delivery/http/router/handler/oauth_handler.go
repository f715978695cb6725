package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"vaultd/config"
	"vaultd/internal/delivery/http/response"
	domainerrors "vaultd/internal/domain/errors"
	"vaultd/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OAuthHandler holds dependencies for the OAuth flow handlers.
type OAuthHandler struct {
	uc     usecase.OAuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler, injected by Fx.
func NewOAuthHandler(uc usecase.OAuthUsecase, cfg *config.Config, logger *slog.Logger) *OAuthHandler {
	return &OAuthHandler{uc: uc, cfg: cfg, logger: logger}
}

// Connect starts an authorization flow for a service. With redirect=true the
// caller's browser is sent straight to the provider; otherwise the authorize
// URL is returned as JSON for the dashboard to follow.
func (h *OAuthHandler) Connect(c echo.Context) error {
	ownerID, err := uuid.Parse(c.QueryParam("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	input := &usecase.AuthorizeInput{
		OwnerID:     ownerID,
		ServiceName: c.Param("service"),
		ReturnURL:   c.QueryParam("returnUrl"),
	}

	output, err := h.uc.GenerateAuthorizationURL(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, output.AuthURL)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"authUrl": output.AuthURL,
		"state":   output.State,
		"appType": output.AppType,
	}, "Authorization URL generated")
}

// Callback completes an authorization flow. The provider redirects the user's
// browser here, so every outcome answers with a redirect back to the
// dashboard instead of a JSON error.
func (h *OAuthHandler) Callback(c echo.Context) error {
	serviceName := c.Param("service")

	if denied := c.QueryParam("error"); denied != "" {
		h.logger.Warn("OAuth authorization denied by provider",
			slog.String("service", serviceName),
			slog.String("error", denied),
		)

		return h.redirectFailure(c, denied)
	}

	input := &usecase.CallbackInput{
		ServiceName: serviceName,
		Code:        c.QueryParam("code"),
		State:       c.QueryParam("state"),
	}
	if input.Code == "" || input.State == "" {
		return h.redirectFailure(c, "missing_parameters")
	}

	output, err := h.uc.HandleCallback(c.Request().Context(), input)
	if err != nil {
		h.logger.Warn("OAuth callback failed",
			slog.String("service", serviceName),
			slog.Any("error", err),
		)

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return h.redirectFailure(c, strings.ToLower(appErr.ErrorCode()))
		}

		return h.redirectFailure(c, "oauth_failed")
	}

	query := url.Values{}
	query.Set("success", "true")
	query.Set("service", serviceName)
	if output.AccountEmail != "" {
		query.Set("account", output.AccountEmail)
	}

	return c.Redirect(http.StatusFound, appendQuery(output.ReturnURL, query))
}

// UpsertApplication registers or rotates an OAuth application.
func (h *OAuthHandler) UpsertApplication(c echo.Context) error {
	var input *usecase.UpsertApplicationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid application input")
	}

	appID, err := h.uc.UpsertApplication(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"appId": appID}, "Application saved")
}

// ListApplications lists active OAuth applications without client secrets.
// An ownerId query scopes the listing to one owner plus global applications.
func (h *OAuthHandler) ListApplications(c echo.Context) error {
	var ownerID *uuid.UUID
	if raw := c.QueryParam("ownerId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid owner id")
		}
		ownerID = &parsed
	}

	apps, err := h.uc.ListApplications(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, apps, "Applications listed")
}

func (h *OAuthHandler) redirectFailure(c echo.Context, reason string) error {
	query := url.Values{}
	query.Set("error", reason)

	return c.Redirect(http.StatusFound, appendQuery(h.cfg.OAuth.FallbackRedirectURL, query))
}

func appendQuery(base string, query url.Values) string {
	separator := "?"
	if strings.Contains(base, "?") {
		separator = "&"
	}

	return base + separator + query.Encode()
}
