// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"vaultd/internal/domain/entity"
	domainerrors "vaultd/internal/domain/errors"
	"vaultd/internal/domain/repository"
	"vaultd/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// connectionRepository implements the domain.ConnectionRepository interface using GORM.
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository is the constructor for connectionRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewConnectionRepository(db *gorm.DB) repository.ConnectionRepository {
	return &connectionRepository{db: db}
}

// Create persists a new connection entity to the database.
func (repo *connectionRepository) Create(ctx context.Context, conn *entity.Connection) error {
	connM := fromConnectionDomain(conn)

	if err := repo.db.WithContext(ctx).Create(connM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrServiceNotFound.WrapMessage("connection references an unknown service")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required connection fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create connection")
	}

	// Propagate generated values back to the entity.
	conn.ID = connM.ID
	conn.CreatedAt = connM.CreatedAt
	conn.UpdatedAt = connM.UpdatedAt

	return nil
}

// FindByID retrieves a single connection by its unique ID.
func (repo *connectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Connection, error) {
	var connM model.ConnectionModel
	err := repo.db.WithContext(ctx).
		Preload("Service").
		Where("id = ?", id).
		First(&connM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find connection by id")
	}

	return toConnectionDomain(&connM), nil
}

// FindActiveByOwnerAndService retrieves the most recently created active
// connection for an owner and service.
func (repo *connectionRepository) FindActiveByOwnerAndService(ctx context.Context, ownerID uuid.UUID, serviceName string) (*entity.Connection, error) {
	var connM model.ConnectionModel
	err := repo.db.WithContext(ctx).
		Preload("Service").
		Joins("JOIN services ON services.id = client_connections.service_id").
		Where("client_connections.owner_id = ? AND services.name = ? AND client_connections.is_active = ?",
			ownerID, serviceName, true).
		Order("client_connections.created_at DESC").
		First(&connM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active connection")
	}

	return toConnectionDomain(&connM), nil
}

// ListByOwner retrieves all active connections for an owner.
func (repo *connectionRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Connection, error) {
	var models []*model.ConnectionModel
	err := repo.db.WithContext(ctx).
		Preload("Service").
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list connections by owner")
	}

	connections := make([]*entity.Connection, 0, len(models))
	for _, m := range models {
		connections = append(connections, toConnectionDomain(m))
	}

	return connections, nil
}

// FindDueForRefresh retrieves active oauth2 connections holding a refresh
// token whose access token expires before the deadline.
func (repo *connectionRepository) FindDueForRefresh(ctx context.Context, deadline time.Time) ([]*entity.Connection, error) {
	var models []*model.ConnectionModel
	err := repo.db.WithContext(ctx).
		Preload("Service").
		Joins("JOIN services ON services.id = client_connections.service_id").
		Where("client_connections.is_active = ?", true).
		Where("client_connections.token_expires_at < ?", deadline).
		Where("client_connections.encrypted_refresh_token IS NOT NULL").
		Where("services.oauth_type = ?", string(entity.OAuthTypeOAuth2)).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find connections due for refresh")
	}

	connections := make([]*entity.Connection, 0, len(models))
	for _, m := range models {
		connections = append(connections, toConnectionDomain(m))
	}

	return connections, nil
}

// UpdateTokens applies a partial token update. Nil patch fields are left
// untouched so a refresh response without a new refresh token keeps the
// stored one.
func (repo *connectionRepository) UpdateTokens(ctx context.Context, id uuid.UUID, patch repository.TokenPatch) error {
	updates := map[string]any{}
	if patch.AccessToken != nil {
		updates["encrypted_access_token"] = *patch.AccessToken
	}
	if patch.RefreshToken != nil {
		updates["encrypted_refresh_token"] = *patch.RefreshToken
	}
	if patch.ExpiresAt != nil {
		updates["token_expires_at"] = *patch.ExpiresAt
	}
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ConnectionModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update tokens")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConnectionNotFound
	}

	return nil
}

// TouchLastUsed records that the connection's credentials were just read.
func (repo *connectionRepository) TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ConnectionModel{}).
		Where("id = ?", id).
		Update("last_used_at", at).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to touch last_used_at")
	}

	return nil
}

// Deactivate marks a connection inactive. Rows are never deleted.
func (repo *connectionRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConnectionModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate connection")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConnectionNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toConnectionDomain converts a GORM ConnectionModel to a domain Connection entity.
func toConnectionDomain(data *model.ConnectionModel) *entity.Connection {
	if data == nil {
		return nil
	}

	conn := &entity.Connection{
		ID:                data.ID,
		OwnerID:           data.OwnerID,
		ServiceID:         data.ServiceID,
		Name:              data.ConnectionName,
		AccessToken:       data.EncryptedAccessToken,
		RefreshToken:      data.EncryptedRefreshToken,
		APIKey:            data.EncryptedAPIKey,
		Secret:            data.EncryptedSecret,
		TokenExpiresAt:    data.TokenExpiresAt,
		Scopes:            splitScopes(data.Scopes),
		AccountIdentifier: data.AccountIdentifier,
		OAuthAppID:        data.OAuthAppID,
		KeyVersion:        data.KeyVersion,
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
		LastUsedAt:        data.LastUsedAt,
	}
	if data.Service != nil {
		conn.ServiceName = data.Service.Name
	}

	return conn
}

// fromConnectionDomain converts a domain Connection entity to a GORM ConnectionModel.
func fromConnectionDomain(data *entity.Connection) *model.ConnectionModel {
	if data == nil {
		return nil
	}

	return &model.ConnectionModel{
		ID:                    data.ID,
		OwnerID:               data.OwnerID,
		ServiceID:             data.ServiceID,
		ConnectionName:        data.Name,
		EncryptedAccessToken:  data.AccessToken,
		EncryptedRefreshToken: data.RefreshToken,
		EncryptedAPIKey:       data.APIKey,
		EncryptedSecret:       data.Secret,
		TokenExpiresAt:        data.TokenExpiresAt,
		Scopes:                joinScopes(data.Scopes),
		AccountIdentifier:     data.AccountIdentifier,
		OAuthAppID:            data.OAuthAppID,
		KeyVersion:            data.KeyVersion,
		IsActive:              data.IsActive,
		LastUsedAt:            data.LastUsedAt,
	}
}

func splitScopes(scopes string) []string {
	if scopes == "" {
		return nil
	}
	return strings.Fields(scopes)
}

func joinScopes(scopes []string) string {
	return strings.Join(scopes, " ")
}
