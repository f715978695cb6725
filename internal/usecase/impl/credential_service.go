// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"vaultd/internal/domain/constants"
	"vaultd/internal/domain/entity"
	domainerrors "vaultd/internal/domain/errors"
	"vaultd/internal/domain/repository"
	"vaultd/internal/domain/service"
	"vaultd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	txManager repository.TransactionManager
	encryptor service.Encryptor
	hasher    service.IdentifierHasher
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(
	txManager repository.TransactionManager,
	encryptor service.Encryptor,
	hasher service.IdentifierHasher,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CredentialUsecase {
	return &credentialService{
		txManager: txManager,
		encryptor: encryptor,
		hasher:    hasher,
		publisher: publisher,
		logger:    logger,
	}
}

// StoreConnection encrypts and persists a manually entered connection.
func (srv *credentialService) StoreConnection(ctx context.Context, input *usecase.StoreConnectionInput) (uuid.UUID, error) {
	srv.logger.Info("Storing manual connection",
		"ownerID", input.OwnerID,
		"service", input.ServiceName,
	)

	if input.AccessToken == nil && input.RefreshToken == nil && input.APIKey == nil && input.Secret == nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrConnectionEmpty, "no credential fields provided")
	}

	var connectionID uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		svc, err := findActiveService(ctx, repoFactory.NewServiceRepository(), input.ServiceName)
		if err != nil {
			return err
		}

		conn := &entity.Connection{
			OwnerID:           input.OwnerID,
			ServiceID:         svc.ID,
			ServiceName:       svc.Name,
			Name:              input.ConnectionName,
			TokenExpiresAt:    input.TokenExpiresAt,
			Scopes:            input.Scopes,
			AccountIdentifier: input.AccountIdentifier,
			KeyVersion:        srv.encryptor.KeyVersion(),
			IsActive:          true,
		}

		if conn.AccessToken, err = srv.encryptField(input.AccessToken); err != nil {
			return err
		}
		if conn.RefreshToken, err = srv.encryptField(input.RefreshToken); err != nil {
			return err
		}
		if conn.APIKey, err = srv.encryptField(input.APIKey); err != nil {
			return err
		}
		if conn.Secret, err = srv.encryptField(input.Secret); err != nil {
			return err
		}

		if err := repoFactory.NewConnectionRepository().Create(ctx, conn); err != nil {
			return errors.Wrap(err, "failed to create connection")
		}
		connectionID = conn.ID

		return nil
	})
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to store connection")
	}

	srv.appendAccess(ctx, &entity.AccessLog{
		ConnectionID: connectionID,
		AccessType:   entity.AccessCreate,
		AccessedBy:   "api",
	})

	srv.publishEvent(ctx, &service.AuditEvent{
		EventType:    constants.EventTypeCredentialAccess,
		ConnectionID: connectionID.String(),
		OwnerID:      input.OwnerID.String(),
		ServiceName:  input.ServiceName,
		Action:       string(entity.AccessCreate),
		Success:      true,
		Detail:       srv.hasher.HashIdentifier(input.AccountIdentifier),
		OccurredAt:   time.Now().Unix(),
	})

	return connectionID, nil
}

// GetCredentials returns the decrypted credentials of the latest active
// connection for an owner and service, recording the access on the way out.
func (srv *credentialService) GetCredentials(ctx context.Context, input *usecase.GetCredentialsInput) (*usecase.CredentialsOutput, error) {
	srv.logger.Debug("Reading credentials",
		"ownerID", input.OwnerID,
		"service", input.ServiceName,
		"accessedBy", input.AccessedBy,
	)

	var output *usecase.CredentialsOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		connRepo := repoFactory.NewConnectionRepository()

		conn, err := connRepo.FindActiveByOwnerAndService(ctx, input.OwnerID, input.ServiceName)
		if err != nil {
			if errors.Is(err, repository.ErrConnectionNotFound) {
				return errors.Wrap(domainerrors.ErrConnectionNotFound, "no active connection")
			}

			return errors.Wrap(err, "failed to find connection")
		}

		now := time.Now()
		creds := usecase.DecryptedCredential{}
		if creds.AccessToken, err = srv.decryptField(conn.AccessToken); err != nil {
			return err
		}
		if creds.APIKey, err = srv.decryptField(conn.APIKey); err != nil {
			return err
		}

		output = &usecase.CredentialsOutput{
			ConnectionID: conn.ID,
			Credentials:  creds,
			Metadata: usecase.CredentialMetadata{
				AccountIdentifier: conn.AccountIdentifier,
				Scopes:            conn.Scopes,
				TokenExpired:      conn.TokenExpiresAt != nil && conn.TokenExpiresAt.Before(now),
				TokenExpiresAt:    conn.TokenExpiresAt,
			},
		}

		return connRepo.TouchLastUsed(ctx, conn.ID, now)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get credentials")
	}

	srv.appendAccess(ctx, &entity.AccessLog{
		ConnectionID: output.ConnectionID,
		AccessType:   entity.AccessRead,
		AccessedBy:   input.AccessedBy,
		IPAddress:    input.IPAddress,
	})

	srv.publishEvent(ctx, &service.AuditEvent{
		EventType:    constants.EventTypeCredentialAccess,
		ConnectionID: output.ConnectionID.String(),
		OwnerID:      input.OwnerID.String(),
		ServiceName:  input.ServiceName,
		Action:       string(entity.AccessRead),
		Success:      true,
		OccurredAt:   time.Now().Unix(),
	})

	return output, nil
}

// ListConnections returns metadata for all active connections of an owner.
func (srv *credentialService) ListConnections(ctx context.Context, ownerID uuid.UUID) ([]*usecase.ConnectionSummary, error) {
	var summaries []*usecase.ConnectionSummary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		connections, err := repoFactory.NewConnectionRepository().ListByOwner(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to list connections")
		}

		serviceRepo := repoFactory.NewServiceRepository()
		now := time.Now()
		summaries = make([]*usecase.ConnectionSummary, 0, len(connections))
		for _, conn := range connections {
			summary := &usecase.ConnectionSummary{
				ID:                conn.ID,
				ServiceName:       conn.ServiceName,
				ConnectionName:    conn.Name,
				AccountIdentifier: conn.AccountIdentifier,
				TokenExpiresAt:    conn.TokenExpiresAt,
				LastUsedAt:        conn.LastUsedAt,
				Status:            conn.Status(now),
			}
			if svc, err := serviceRepo.FindByID(ctx, conn.ServiceID); err == nil {
				summary.ServiceDisplayName = svc.DisplayName
			}
			summaries = append(summaries, summary)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connections")
	}

	return summaries, nil
}

// ConnectionStatus reports the health of a single connection.
func (srv *credentialService) ConnectionStatus(ctx context.Context, connectionID uuid.UUID) (*usecase.ConnectionStatusOutput, error) {
	var output *usecase.ConnectionStatusOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		conn, err := repoFactory.NewConnectionRepository().FindByID(ctx, connectionID)
		if err != nil {
			if errors.Is(err, repository.ErrConnectionNotFound) {
				return errors.Wrap(domainerrors.ErrConnectionNotFound, "connection not found")
			}

			return errors.Wrap(err, "failed to find connection")
		}

		errorCount, err := repoFactory.NewRefreshErrorRepository().CountUnresolved(ctx, connectionID)
		if err != nil {
			return errors.Wrap(err, "failed to count refresh errors")
		}

		output = &usecase.ConnectionStatusOutput{
			ID:             conn.ID,
			ServiceName:    conn.ServiceName,
			IsActive:       conn.IsActive,
			Status:         conn.Status(time.Now()),
			TokenExpiresAt: conn.TokenExpiresAt,
			LastUsedAt:     conn.LastUsedAt,
			ErrorCount:     errorCount,
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get connection status")
	}

	return output, nil
}

// UpdateTokens encrypts and applies a partial token update.
func (srv *credentialService) UpdateTokens(ctx context.Context, connectionID uuid.UUID, input *usecase.UpdateTokensInput) error {
	srv.logger.Info("Updating connection tokens", "connectionID", connectionID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		patch := repository.TokenPatch{ExpiresAt: input.ExpiresAt}

		var err error
		if patch.AccessToken, err = srv.encryptField(input.AccessToken); err != nil {
			return err
		}
		if patch.RefreshToken, err = srv.encryptField(input.RefreshToken); err != nil {
			return err
		}

		if err := repoFactory.NewConnectionRepository().UpdateTokens(ctx, connectionID, patch); err != nil {
			if errors.Is(err, repository.ErrConnectionNotFound) {
				return errors.Wrap(domainerrors.ErrConnectionNotFound, "connection not found")
			}

			return errors.Wrap(err, "failed to update tokens")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to update connection tokens")
	}

	srv.appendAccess(ctx, &entity.AccessLog{
		ConnectionID: connectionID,
		AccessType:   entity.AccessRefresh,
		AccessedBy:   "api",
	})

	return nil
}

// Deactivate revokes a connection without deleting its audit trail.
func (srv *credentialService) Deactivate(ctx context.Context, connectionID uuid.UUID, accessedBy string) error {
	srv.logger.Info("Deactivating connection", "connectionID", connectionID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewConnectionRepository().Deactivate(ctx, connectionID); err != nil {
			if errors.Is(err, repository.ErrConnectionNotFound) {
				return errors.Wrap(domainerrors.ErrConnectionNotFound, "connection not found")
			}

			return errors.Wrap(err, "failed to deactivate connection")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to deactivate connection")
	}

	srv.appendAccess(ctx, &entity.AccessLog{
		ConnectionID: connectionID,
		AccessType:   entity.AccessRevoke,
		AccessedBy:   accessedBy,
	})

	srv.publishEvent(ctx, &service.AuditEvent{
		EventType:    constants.EventTypeCredentialAccess,
		ConnectionID: connectionID.String(),
		Action:       string(entity.AccessRevoke),
		Success:      true,
		OccurredAt:   time.Now().Unix(),
	})

	return nil
}

// encryptField seals an optional plaintext field, passing nil through.
func (srv *credentialService) encryptField(plaintext *string) (*string, error) {
	if plaintext == nil {
		return nil, nil
	}

	sealed, err := srv.encryptor.EncryptString(*plaintext)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt credential field")
	}

	return &sealed, nil
}

// decryptField opens an optional stored field, passing nil through.
func (srv *credentialService) decryptField(stored *string) (*string, error) {
	if stored == nil {
		return nil, nil
	}

	plaintext, err := srv.encryptor.DecryptString(*stored)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt credential field")
	}

	return &plaintext, nil
}

// appendAccess writes an access log entry in its own transaction. The primary
// operation has already committed, so a failed write is logged, never returned.
func (srv *credentialService) appendAccess(ctx context.Context, accessLog *entity.AccessLog) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewAuditLogRepository().AppendAccess(ctx, accessLog)
	})
	if err != nil {
		srv.logger.Warn("Failed to append access log",
			"connectionID", accessLog.ConnectionID,
			"accessType", accessLog.AccessType,
			"error", err,
		)
	}
}

// publishEvent forwards an audit event, logging instead of failing when the
// publisher is unavailable.
func (srv *credentialService) publishEvent(ctx context.Context, event *service.AuditEvent) {
	if err := srv.publisher.PublishAuditEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish audit event",
			"eventType", event.EventType,
			"action", event.Action,
			"error", err,
		)
	}
}

// findActiveService resolves a service by name, rejecting unknown or inactive ones.
func findActiveService(ctx context.Context, serviceRepo repository.ServiceRepository, name string) (*entity.Service, error) {
	svc, err := serviceRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrServiceNotFound, "unknown service")
		}

		return nil, errors.Wrap(err, "failed to find service")
	}
	if !svc.IsActive {
		return nil, errors.Wrap(domainerrors.ErrServiceNotFound, "service is inactive")
	}

	return svc, nil
}
