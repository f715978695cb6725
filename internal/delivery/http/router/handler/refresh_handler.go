package handler

import (
	"log/slog"
	"net/http"

	"vaultd/internal/delivery/http/response"
	"vaultd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RefreshHandler holds dependencies for the manual refresh trigger.
type RefreshHandler struct {
	uc     usecase.RefreshUsecase
	logger *slog.Logger
}

// NewRefreshHandler is the constructor for RefreshHandler, injected by Fx.
func NewRefreshHandler(uc usecase.RefreshUsecase, logger *slog.Logger) *RefreshHandler {
	return &RefreshHandler{uc: uc, logger: logger}
}

// RefreshDueConnections runs one refresh batch on demand. The scheduler runs
// the same batch on its interval; this endpoint exists for operators.
func (h *RefreshHandler) RefreshDueConnections(c echo.Context) error {
	report, err := h.uc.RefreshDueConnections(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, report, "Refresh batch completed")
}
