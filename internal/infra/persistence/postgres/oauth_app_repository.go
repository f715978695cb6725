package postgres

import (
	"context"

	"vaultd/internal/domain/entity"
	domainerrors "vaultd/internal/domain/errors"
	"vaultd/internal/domain/repository"
	"vaultd/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// oauthAppRepository implements the domain.OAuthAppRepository interface using GORM.
type oauthAppRepository struct {
	db *gorm.DB
}

// NewOAuthAppRepository is the constructor for oauthAppRepository.
func NewOAuthAppRepository(db *gorm.DB) repository.OAuthAppRepository {
	return &oauthAppRepository{db: db}
}

// FindByID retrieves a single OAuth application by its unique ID.
func (repo *oauthAppRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.OAuthApp, error) {
	var appM model.OAuthAppModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&appM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOAuthAppNotFound
		}

		return nil, errors.Wrap(err, "failed to find oauth application by id")
	}

	return toOAuthAppDomain(&appM), nil
}

// ResolveForOwner retrieves the active application for a service. An app
// scoped to the owner shadows the global one.
func (repo *oauthAppRepository) ResolveForOwner(ctx context.Context, ownerID uuid.UUID, serviceName string) (*entity.OAuthApp, error) {
	var appM model.OAuthAppModel
	err := repo.db.WithContext(ctx).
		Where("service_name = ? AND is_active = ?", serviceName, true).
		Where("owner_id = ? OR owner_id IS NULL", ownerID).
		// Owner-scoped rows sort before global ones.
		Order("owner_id IS NULL, created_at DESC").
		First(&appM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOAuthAppNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve oauth application")
	}

	return toOAuthAppDomain(&appM), nil
}

// ListActive retrieves all active applications, optionally filtered to one owner.
func (repo *oauthAppRepository) ListActive(ctx context.Context, ownerID *uuid.UUID) ([]*entity.OAuthApp, error) {
	query := repo.db.WithContext(ctx).Where("is_active = ?", true)
	if ownerID != nil {
		query = query.Where("owner_id = ? OR owner_id IS NULL", *ownerID)
	}

	var models []*model.OAuthAppModel
	err := query.Order("owner_id IS NULL DESC, service_name").Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list oauth applications")
	}

	apps := make([]*entity.OAuthApp, 0, len(models))
	for _, m := range models {
		apps = append(apps, toOAuthAppDomain(m))
	}

	return apps, nil
}

// Upsert inserts the application or updates the existing row with the same
// (service, owner) scope.
func (repo *oauthAppRepository) Upsert(ctx context.Context, app *entity.OAuthApp) error {
	appM := fromOAuthAppDomain(app)

	// A partial unique index over a nullable owner column rules out
	// ON CONFLICT here, so the scope lookup is explicit.
	var existing model.OAuthAppModel
	query := repo.db.WithContext(ctx).Where("service_name = ?", app.ServiceName)
	if app.OwnerID == nil {
		query = query.Where("owner_id IS NULL")
	} else {
		query = query.Where("owner_id = ?", *app.OwnerID)
	}

	err := query.First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := repo.db.WithContext(ctx).Create(appM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create oauth application")
		}
		app.ID = appM.ID
		app.CreatedAt = appM.CreatedAt
		app.UpdatedAt = appM.UpdatedAt

		return nil
	case err != nil:
		return errors.Wrap(err, "failed to look up oauth application scope")
	}

	updates := map[string]any{
		"app_name":                appM.AppName,
		"client_id":               appM.ClientID,
		"encrypted_client_secret": appM.EncryptedClientSecret,
		"redirect_uri":            appM.RedirectURI,
		"scopes":                  appM.Scopes,
		"is_active":               appM.IsActive,
	}
	err = repo.db.WithContext(ctx).
		Model(&model.OAuthAppModel{}).
		Where("id = ?", existing.ID).
		Updates(updates).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update oauth application")
	}

	app.ID = existing.ID

	return nil
}

// Deactivate marks an application inactive without deleting it.
func (repo *oauthAppRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OAuthAppModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate oauth application")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOAuthAppNotFound
	}

	return nil
}

// toOAuthAppDomain converts a GORM OAuthAppModel to a domain OAuthApp entity.
func toOAuthAppDomain(data *model.OAuthAppModel) *entity.OAuthApp {
	if data == nil {
		return nil
	}

	return &entity.OAuthApp{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		ServiceName:  data.ServiceName,
		AppName:      data.AppName,
		ClientID:     data.ClientID,
		ClientSecret: data.EncryptedClientSecret,
		RedirectURI:  data.RedirectURI,
		Scopes:       splitScopes(data.Scopes),
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromOAuthAppDomain converts a domain OAuthApp entity to a GORM OAuthAppModel.
func fromOAuthAppDomain(data *entity.OAuthApp) *model.OAuthAppModel {
	if data == nil {
		return nil
	}

	return &model.OAuthAppModel{
		ID:                    data.ID,
		OwnerID:               data.OwnerID,
		ServiceName:           data.ServiceName,
		AppName:               data.AppName,
		ClientID:              data.ClientID,
		EncryptedClientSecret: data.ClientSecret,
		RedirectURI:           data.RedirectURI,
		Scopes:                joinScopes(data.Scopes),
		IsActive:              data.IsActive,
	}
}
