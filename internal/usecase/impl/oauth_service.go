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

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultReturnURL is where users land after a callback when the flow was
// started without an explicit destination.
const defaultReturnURL = "/connections"

// oauthService implements the OAuthUsecase interface.
type oauthService struct {
	txManager repository.TransactionManager
	registry  service.ProviderRegistry
	states    service.StateStore
	encryptor service.Encryptor
	publisher service.EventPublisher
	logger    *slog.Logger
	stateTTL  time.Duration
}

// NewOAuthService is the constructor for oauthService.
func NewOAuthService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	registry service.ProviderRegistry,
	states service.StateStore,
	encryptor service.Encryptor,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.OAuthUsecase {
	return &oauthService{
		txManager: txManager,
		registry:  registry,
		states:    states,
		encryptor: encryptor,
		publisher: publisher,
		logger:    logger,
		stateTTL:  cfg.OAuth.StateTTL,
	}
}

// GenerateAuthorizationURL starts an authorization round-trip.
func (srv *oauthService) GenerateAuthorizationURL(ctx context.Context, input *usecase.AuthorizeInput) (*usecase.AuthorizeOutput, error) {
	srv.logger.Info("Starting OAuth authorization",
		"ownerID", input.OwnerID,
		"service", input.ServiceName,
	)

	provider, err := srv.registry.Get(input.ServiceName)
	if err != nil {
		return nil, err
	}

	var app *entity.OAuthApp
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewOAuthAppRepository().ResolveForOwner(ctx, input.OwnerID, input.ServiceName)
		if err != nil {
			if errors.Is(err, repository.ErrOAuthAppNotFound) {
				return errors.Wrap(domainerrors.ErrOAuthConfigNotFound, "no application configured")
			}

			return errors.Wrap(err, "failed to resolve oauth application")
		}
		app = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start authorization")
	}

	srv.recordUsage(ctx, app.ID, input.OwnerID, "authorize", true, "")

	returnURL := input.ReturnURL
	if returnURL == "" {
		returnURL = defaultReturnURL
	}

	// The state is the CSRF anchor of the whole flow: random, single-use and
	// short-lived.
	state := uuid.NewString()
	now := time.Now()
	srv.states.Put(state, &service.StateRecord{
		OwnerID:     input.OwnerID,
		ServiceName: input.ServiceName,
		ReturnURL:   returnURL,
		OAuthAppID:  app.ID,
		CreatedAt:   now,
		ExpiresAt:   now.Add(srv.stateTTL),
	})

	// Only the public client ID goes into the URL; the secret stays encrypted
	// until the token exchange.
	authURL, err := provider.AuthorizationURL(service.ProviderConfig{
		ClientID:    app.ClientID,
		RedirectURI: app.RedirectURI,
		Scopes:      app.Scopes,
	}, state)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build authorization url")
	}

	appType := usecase.AppTypeClient
	if app.IsGlobal() {
		appType = usecase.AppTypeGlobal
	}

	return &usecase.AuthorizeOutput{AuthURL: authURL, State: state, AppType: appType}, nil
}

// HandleCallback completes the authorization round-trip. The state is
// consumed before any validation so a replayed callback can never match
// again, regardless of how this attempt ends.
func (srv *oauthService) HandleCallback(ctx context.Context, input *usecase.CallbackInput) (*usecase.CallbackOutput, error) {
	rec, ok := srv.states.Consume(input.State)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrOAuthStateInvalid, "state not found")
	}

	now := time.Now()
	if rec.Expired(now) {
		srv.recordUsage(ctx, rec.OAuthAppID, rec.OwnerID, "token_exchange", false, "state expired")

		return nil, errors.Wrap(domainerrors.ErrOAuthStateExpired, "state past its ttl")
	}
	if rec.ServiceName != input.ServiceName {
		srv.recordUsage(ctx, rec.OAuthAppID, rec.OwnerID, "token_exchange", false, "service mismatch")

		return nil, errors.Wrap(domainerrors.ErrOAuthServiceMismatch, "callback service mismatch")
	}

	provider, err := srv.registry.Get(input.ServiceName)
	if err != nil {
		return nil, err
	}

	// Re-read the application so a rotated client secret takes effect on the
	// exchange even when the flow started before the rotation.
	cfg, err := srv.providerConfig(ctx, rec.OAuthAppID)
	if err != nil {
		return nil, err
	}

	tok, err := provider.ExchangeCode(ctx, *cfg, input.Code)
	if err != nil {
		srv.recordUsage(ctx, rec.OAuthAppID, rec.OwnerID, "token_exchange", false, err.Error())

		return nil, errors.Wrap(err, "code exchange failed")
	}

	// Identity lookup is best effort: the connection is still stored when the
	// provider cannot tell us who authorized it.
	account := provider.FetchAccountInfo(ctx, tok.AccessToken, tok)

	connectionID, err := srv.storeCallbackConnection(ctx, rec, cfg, tok, account)
	if err != nil {
		srv.recordUsage(ctx, rec.OAuthAppID, rec.OwnerID, "token_exchange", false, err.Error())

		return nil, err
	}

	srv.recordUsage(ctx, rec.OAuthAppID, rec.OwnerID, "token_exchange", true, "")
	srv.publishEvent(ctx, &service.AuditEvent{
		EventType:    constants.EventTypeOAuthAppUsage,
		ConnectionID: connectionID.String(),
		OAuthAppID:   rec.OAuthAppID.String(),
		OwnerID:      rec.OwnerID.String(),
		ServiceName:  rec.ServiceName,
		Action:       "connection_created",
		Success:      true,
		OccurredAt:   time.Now().Unix(),
	})

	return &usecase.CallbackOutput{
		ConnectionID: connectionID,
		ReturnURL:    rec.ReturnURL,
		AccountEmail: account.Email,
	}, nil
}

// UpsertApplication registers or rotates an OAuth application.
func (srv *oauthService) UpsertApplication(ctx context.Context, input *usecase.UpsertApplicationInput) (uuid.UUID, error) {
	if input.ServiceName == "" || input.AppName == "" || input.ClientID == "" || input.ClientSecret == "" {
		return uuid.Nil, errors.Wrap(domainerrors.ErrValidationFailed, "missing required application fields")
	}
	if _, err := srv.registry.Get(input.ServiceName); err != nil {
		return uuid.Nil, err
	}

	encryptedSecret, err := srv.encryptor.EncryptString(input.ClientSecret)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to encrypt client secret")
	}

	app := &entity.OAuthApp{
		OwnerID:      input.OwnerID,
		ServiceName:  input.ServiceName,
		AppName:      input.AppName,
		ClientID:     input.ClientID,
		ClientSecret: encryptedSecret,
		RedirectURI:  input.RedirectURI,
		Scopes:       input.Scopes,
		IsActive:     true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewOAuthAppRepository().Upsert(ctx, app)
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to upsert oauth application")
	}

	srv.logger.Info("OAuth application registered",
		"service", input.ServiceName,
		"appID", app.ID,
		"global", app.IsGlobal(),
	)

	return app.ID, nil
}

// ListApplications lists active applications without their secrets.
func (srv *oauthService) ListApplications(ctx context.Context, ownerID *uuid.UUID) ([]*usecase.OAuthAppSummary, error) {
	var summaries []*usecase.OAuthAppSummary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		apps, err := repoFactory.NewOAuthAppRepository().ListActive(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to list oauth applications")
		}

		summaries = make([]*usecase.OAuthAppSummary, 0, len(apps))
		for _, app := range apps {
			summaries = append(summaries, &usecase.OAuthAppSummary{
				ID:          app.ID,
				OwnerID:     app.OwnerID,
				IsGlobal:    app.IsGlobal(),
				ServiceName: app.ServiceName,
				AppName:     app.AppName,
				ClientID:    app.ClientID,
				RedirectURI: app.RedirectURI,
				Scopes:      app.Scopes,
			})
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list oauth applications")
	}

	return summaries, nil
}

// providerConfig loads an application and decrypts its client secret for one
// upstream call. The plaintext secret lives only in the returned struct.
func (srv *oauthService) providerConfig(ctx context.Context, appID uuid.UUID) (*service.ProviderConfig, error) {
	var app *entity.OAuthApp

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewOAuthAppRepository().FindByID(ctx, appID)
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

// storeCallbackConnection encrypts the exchanged tokens and persists the
// connection, then appends the creation audit entries best effort.
func (srv *oauthService) storeCallbackConnection(
	ctx context.Context,
	rec *service.StateRecord,
	cfg *service.ProviderConfig,
	tok *service.TokenResponse,
	account service.AccountInfo,
) (uuid.UUID, error) {
	var connectionID uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		svc, err := findActiveService(ctx, repoFactory.NewServiceRepository(), rec.ServiceName)
		if err != nil {
			return err
		}

		connectionName := account.DisplayName
		if connectionName == "" {
			connectionName = account.Email
		}
		connectionName += " - " + rec.ServiceName

		accountIdentifier := account.Email
		if accountIdentifier == "" || accountIdentifier == service.UnknownAccount.Email {
			accountIdentifier = account.ID
		}

		appID := rec.OAuthAppID
		conn := &entity.Connection{
			OwnerID:           rec.OwnerID,
			ServiceID:         svc.ID,
			ServiceName:       svc.Name,
			Name:              connectionName,
			TokenExpiresAt:    tok.ExpiresAt,
			Scopes:            cfg.Scopes,
			AccountIdentifier: accountIdentifier,
			OAuthAppID:        &appID,
			KeyVersion:        srv.encryptor.KeyVersion(),
			IsActive:          true,
		}

		encryptedAccess, err := srv.encryptor.EncryptString(tok.AccessToken)
		if err != nil {
			return errors.Wrap(err, "failed to encrypt access token")
		}
		conn.AccessToken = &encryptedAccess

		if tok.RefreshToken != nil {
			encryptedRefresh, err := srv.encryptor.EncryptString(*tok.RefreshToken)
			if err != nil {
				return errors.Wrap(err, "failed to encrypt refresh token")
			}
			conn.RefreshToken = &encryptedRefresh
		}

		if err := repoFactory.NewConnectionRepository().Create(ctx, conn); err != nil {
			return errors.Wrap(err, "failed to create connection")
		}
		connectionID = conn.ID

		return nil
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to store oauth connection")
	}

	srv.recordCallbackAudit(ctx, rec, connectionID)

	return connectionID, nil
}

// recordCallbackAudit appends the creation audit entries in their own
// transaction. The connection is already committed, so a failed write is
// logged, never returned.
func (srv *oauthService) recordCallbackAudit(ctx context.Context, rec *service.StateRecord, connectionID uuid.UUID) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		auditRepo := repoFactory.NewAuditLogRepository()
		if err := auditRepo.AppendAccess(ctx, &entity.AccessLog{
			ConnectionID: connectionID,
			AccessType:   entity.AccessCreate,
			AccessedBy:   "api",
		}); err != nil {
			return err
		}

		return auditRepo.AppendOAuthUsage(ctx, &entity.OAuthUsageLog{
			OAuthAppID: rec.OAuthAppID,
			OwnerID:    rec.OwnerID,
			Action:     "connection_created",
			Success:    true,
		})
	})
	if err != nil {
		srv.logger.Warn("Failed to append connection audit entries",
			"connectionID", connectionID,
			"appID", rec.OAuthAppID,
			"error", err,
		)
	}
}

// recordUsage appends an application usage entry outside the main
// transaction. Failures are logged, never propagated.
func (srv *oauthService) recordUsage(ctx context.Context, appID, ownerID uuid.UUID, action string, success bool, errorMessage string) {
	var msg *string
	if errorMessage != "" {
		msg = &errorMessage
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewAuditLogRepository().AppendOAuthUsage(ctx, &entity.OAuthUsageLog{
			OAuthAppID:   appID,
			OwnerID:      ownerID,
			Action:       action,
			Success:      success,
			ErrorMessage: msg,
		})
	})
	if err != nil {
		srv.logger.Warn("Failed to record oauth usage",
			"action", action,
			"appID", appID,
			"error", err,
		)
	}
}

// publishEvent forwards an audit event, logging instead of failing when the
// publisher is unavailable.
func (srv *oauthService) publishEvent(ctx context.Context, event *service.AuditEvent) {
	if err := srv.publisher.PublishAuditEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish audit event",
			"eventType", event.EventType,
			"action", event.Action,
			"error", err,
		)
	}
}
