package handler

import (
	"log/slog"
	"net/http"

	"vaultd/internal/delivery/http/middleware"
	"vaultd/internal/delivery/http/response"
	domainerrors "vaultd/internal/domain/errors"
	"vaultd/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CredentialHandler holds dependencies for credential store handlers.
type CredentialHandler struct {
	uc     usecase.CredentialUsecase
	logger *slog.Logger
}

// NewCredentialHandler is the constructor for CredentialHandler, injected by Fx.
func NewCredentialHandler(uc usecase.CredentialUsecase, logger *slog.Logger) *CredentialHandler {
	return &CredentialHandler{uc: uc, logger: logger}
}

// GetCredentials returns decrypted credentials for an owner and service.
// The response never contains the refresh token.
func (h *CredentialHandler) GetCredentials(c echo.Context) error {
	ownerID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	ip := c.RealIP()
	input := &usecase.GetCredentialsInput{
		OwnerID:     ownerID,
		ServiceName: c.Param("serviceName"),
		AccessedBy:  middleware.CallerIdentity(c),
		IPAddress:   &ip,
	}

	output, err := h.uc.GetCredentials(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Credentials retrieved")
}

// ListConnections returns metadata for all active connections of an owner.
func (h *CredentialHandler) ListConnections(c echo.Context) error {
	ownerID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	summaries, err := h.uc.ListConnections(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summaries, "Connections listed")
}

// ConnectionStatus reports the health of a single connection.
func (h *CredentialHandler) ConnectionStatus(c echo.Context) error {
	connectionID, err := uuid.Parse(c.Param("connectionId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid connection id")
	}

	status, err := h.uc.ConnectionStatus(c.Request().Context(), connectionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "Connection status retrieved")
}

// StoreConnection stores a manually entered connection.
func (h *CredentialHandler) StoreConnection(c echo.Context) error {
	var input *usecase.StoreConnectionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid connection input")
	}

	connectionID, err := h.uc.StoreConnection(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"connectionId": connectionID}, "Connection stored")
}

// UpdateTokens applies a partial token update to a connection.
func (h *CredentialHandler) UpdateTokens(c echo.Context) error {
	connectionID, err := uuid.Parse(c.Param("connectionId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid connection id")
	}

	var input *usecase.UpdateTokensInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token update input")
	}
	if input == nil || (input.AccessToken == nil && input.RefreshToken == nil && input.ExpiresAt == nil) {
		return errors.WithStack(domainerrors.ErrValidationFailed.WrapMessage("token update requires at least one field"))
	}

	if err := h.uc.UpdateTokens(c.Request().Context(), connectionID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"connectionId": connectionID}, "Tokens updated")
}

// Deactivate revokes a connection.
func (h *CredentialHandler) Deactivate(c echo.Context) error {
	connectionID, err := uuid.Parse(c.Param("connectionId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid connection id")
	}

	if err := h.uc.Deactivate(c.Request().Context(), connectionID, middleware.CallerIdentity(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"connectionId": connectionID}, "Connection deactivated")
}
