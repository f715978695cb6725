package postgres

import (
	"context"

	"vaultd/internal/domain/entity"
	domainerrors "vaultd/internal/domain/errors"
	"vaultd/internal/domain/repository"
	"vaultd/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// serviceRepository implements the domain.ServiceRepository interface using GORM.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

// FindByName retrieves a single service by its unique machine name.
func (repo *serviceRepository) FindByName(ctx context.Context, name string) (*entity.Service, error) {
	var svcM model.ServiceModel
	err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&svcM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by name")
	}

	return toServiceDomain(&svcM), nil
}

// FindByID retrieves a single service by its ID.
func (repo *serviceRepository) FindByID(ctx context.Context, id int64) (*entity.Service, error) {
	var svcM model.ServiceModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&svcM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by id")
	}

	return toServiceDomain(&svcM), nil
}

// ListActive retrieves all active services.
func (repo *serviceRepository) ListActive(ctx context.Context) ([]*entity.Service, error) {
	var models []*model.ServiceModel
	err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_name").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active services")
	}

	services := make([]*entity.Service, 0, len(models))
	for _, m := range models {
		services = append(services, toServiceDomain(m))
	}

	return services, nil
}

// Upsert inserts the service or updates the existing row with the same name.
func (repo *serviceRepository) Upsert(ctx context.Context, svc *entity.Service) error {
	svcM := fromServiceDomain(svc)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "oauth_type", "is_active"}),
		}).
		Create(svcM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert service")
	}

	svc.ID = svcM.ID
	svc.CreatedAt = svcM.CreatedAt

	return nil
}

// toServiceDomain converts a GORM ServiceModel to a domain Service entity.
func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	return &entity.Service{
		ID:          data.ID,
		Name:        data.Name,
		DisplayName: data.DisplayName,
		OAuthType:   entity.OAuthType(data.OAuthType),
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
	}
}

// fromServiceDomain converts a domain Service entity to a GORM ServiceModel.
func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	if data == nil {
		return nil
	}

	return &model.ServiceModel{
		ID:          data.ID,
		Name:        data.Name,
		DisplayName: data.DisplayName,
		OAuthType:   string(data.OAuthType),
		IsActive:    data.IsActive,
	}
}
