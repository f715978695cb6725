package impl

import (
	"context"
	"log/slog"
	"time"

	"vaultd/config"
	"vaultd/internal/domain/constants"
	"vaultd/internal/domain/entity"
	domainerrors "vaultd/internal/domain/errors"
	"vaultd/internal/domain/repository"
	"vaultd/internal/domain/service"
	"vaultd/internal/usecase"

	"github.com/pkg/errors"
)

// errorTypeRefreshFailed classifies refresh failures in the error ledger.
const errorTypeRefreshFailed = "refresh_failed"

// refreshService implements the RefreshUsecase interface.
type refreshService struct {
	txManager repository.TransactionManager
	registry  service.ProviderRegistry
	encryptor service.Encryptor
	publisher service.EventPublisher
	logger    *slog.Logger
	window    time.Duration
}

// NewRefreshService is the constructor for refreshService.
func NewRefreshService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	registry service.ProviderRegistry,
	encryptor service.Encryptor,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.RefreshUsecase {
	return &refreshService{
		txManager: txManager,
		registry:  registry,
		encryptor: encryptor,
		publisher: publisher,
		logger:    logger,
		window:    cfg.Refresh.Window,
	}
}

// RefreshDueConnections refreshes every active connection whose access token
// expires inside the refresh window. Each connection is handled on its own:
// a failed refresh is recorded in the error ledger and the batch moves on.
func (srv *refreshService) RefreshDueConnections(ctx context.Context) (*usecase.RefreshReport, error) {
	now := time.Now()
	deadline := now.Add(srv.window)

	var due []*entity.Connection
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewConnectionRepository().FindDueForRefresh(ctx, deadline)
		if err != nil {
			return errors.Wrap(err, "failed to find due connections")
		}
		due = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan for due connections")
	}

	srv.logger.Info("Token refresh sweep", "due", len(due), "deadline", deadline)

	report := &usecase.RefreshReport{
		Processed: len(due),
		Results:   make([]*usecase.RefreshResult, 0, len(due)),
	}
	for _, conn := range due {
		report.Results = append(report.Results, srv.refreshOne(ctx, conn))
	}

	return report, nil
}

// refreshOne refreshes a single connection and records the outcome. It never
// returns an error; failures land in the result and the error ledger.
func (srv *refreshService) refreshOne(ctx context.Context, conn *entity.Connection) *usecase.RefreshResult {
	result := &usecase.RefreshResult{
		ConnectionID: conn.ID,
		Status:       usecase.RefreshStatusSuccess,
	}

	tok, err := srv.callProvider(ctx, conn)
	if err == nil {
		err = srv.applyRefreshedTokens(ctx, conn, tok)
		if err == nil {
			result.NewExpiresAt = tok.ExpiresAt
			srv.logger.Info("Refreshed connection",
				"connectionID", conn.ID,
				"service", conn.ServiceName,
				"newExpiresAt", tok.ExpiresAt,
			)

			return result
		}
	}

	result.Status = usecase.RefreshStatusError
	result.Error = err.Error()
	srv.logger.Warn("Token refresh failed",
		"connectionID", conn.ID,
		"service", conn.ServiceName,
		"error", err,
	)
	srv.recordFailure(ctx, conn, err)

	return result
}

// callProvider decrypts the stored refresh token and performs the upstream
// refresh call with the connection's application credentials.
func (srv *refreshService) callProvider(ctx context.Context, conn *entity.Connection) (*service.TokenResponse, error) {
	provider, err := srv.registry.Get(conn.ServiceName)
	if err != nil {
		return nil, err
	}
	if !provider.SupportsRefresh() {
		return nil, errors.Wrap(domainerrors.ErrUpstreamFailed, "provider does not issue refresh tokens")
	}
	if conn.RefreshToken == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "connection has no refresh token")
	}
	if conn.OAuthAppID == nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthConfigNotFound, "connection has no oauth application")
	}

	cfg, err := srv.appConfig(ctx, conn)
	if err != nil {
		return nil, err
	}

	refreshToken, err := srv.encryptor.DecryptString(*conn.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt refresh token")
	}

	return provider.Refresh(ctx, *cfg, refreshToken)
}

// appConfig loads and decrypts the application credentials for one refresh call.
func (srv *refreshService) appConfig(ctx context.Context, conn *entity.Connection) (*service.ProviderConfig, error) {
	var app *entity.OAuthApp
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewOAuthAppRepository().FindByID(ctx, *conn.OAuthAppID)
		if err != nil {
			if errors.Is(err, repository.ErrOAuthAppNotFound) {
				return errors.Wrap(domainerrors.ErrOAuthConfigNotFound, "application no longer exists")
			}

			return errors.Wrap(err, "failed to load oauth application")
		}
		app = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	clientSecret, err := srv.encryptor.DecryptString(app.ClientSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt client secret")
	}

	return &service.ProviderConfig{
		ClientID:     app.ClientID,
		ClientSecret: clientSecret,
		RedirectURI:  app.RedirectURI,
		Scopes:       app.Scopes,
	}, nil
}

// applyRefreshedTokens persists the new tokens and closes any open failure
// records. A response without a rotated refresh token keeps the stored one.
func (srv *refreshService) applyRefreshedTokens(ctx context.Context, conn *entity.Connection, tok *service.TokenResponse) error {
	encryptedAccess, err := srv.encryptor.EncryptString(tok.AccessToken)
	if err != nil {
		return errors.Wrap(err, "failed to encrypt access token")
	}

	patch := repository.TokenPatch{
		AccessToken: &encryptedAccess,
		ExpiresAt:   tok.ExpiresAt,
	}
	if tok.RefreshToken != nil {
		encryptedRefresh, err := srv.encryptor.EncryptString(*tok.RefreshToken)
		if err != nil {
			return errors.Wrap(err, "failed to encrypt refresh token")
		}
		patch.RefreshToken = &encryptedRefresh
	}

	now := time.Now()

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewConnectionRepository().UpdateTokens(ctx, conn.ID, patch); err != nil {
			return errors.Wrap(err, "failed to update tokens")
		}
		if err := repoFactory.NewRefreshErrorRepository().Resolve(ctx, conn.ID, now); err != nil {
			return errors.Wrap(err, "failed to resolve refresh errors")
		}

		return repoFactory.NewAuditLogRepository().AppendAccess(ctx, &entity.AccessLog{
			ConnectionID: conn.ID,
			AccessType:   entity.AccessRefresh,
			AccessedBy:   "system",
		})
	})
}

// recordFailure updates the error ledger and raises an alert event once the
// open record crosses the retry threshold. Ledger failures are logged only;
// the sweep result already carries the refresh error itself.
func (srv *refreshService) recordFailure(ctx context.Context, conn *entity.Connection, cause error) {
	var record *entity.RefreshError
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		rec, err := repoFactory.NewRefreshErrorRepository().
			RecordFailure(ctx, conn.ID, errorTypeRefreshFailed, cause.Error(), time.Now())
		if err != nil {
			return errors.Wrap(err, "failed to record refresh failure")
		}
		record = rec

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to update refresh error ledger",
			"connectionID", conn.ID,
			"error", err,
		)

		return
	}

	if !record.NeedsAttention() {
		return
	}

	srv.logger.Error("Connection needs attention",
		"connectionID", conn.ID,
		"service", conn.ServiceName,
		"retryCount", record.RetryCount,
	)
	srv.publishEvent(ctx, &service.AuditEvent{
		EventType:    constants.EventTypeRefreshAlert,
		ConnectionID: conn.ID.String(),
		OwnerID:      conn.OwnerID.String(),
		ServiceName:  conn.ServiceName,
		Action:       errorTypeRefreshFailed,
		Success:      false,
		Detail:       cause.Error(),
		OccurredAt:   time.Now().Unix(),
	})
}

// publishEvent forwards an audit event, logging instead of failing when the
// publisher is unavailable.
func (srv *refreshService) publishEvent(ctx context.Context, event *service.AuditEvent) {
	if err := srv.publisher.PublishAuditEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish audit event",
			"eventType", event.EventType,
			"action", event.Action,
			"error", err,
		)
	}
}
