package impl

import (
	"context"
	"testing"
	"time"

	"vaultd/internal/domain/constants"
	"vaultd/internal/domain/entity"
	"vaultd/internal/domain/repository"
	"vaultd/internal/domain/service"
	mockRepo "vaultd/internal/mocks/repository"
	mockService "vaultd/internal/mocks/service"
	"vaultd/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type refreshServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	registry  *mockService.MockProviderRegistry
	encryptor *mockService.MockEncryptor
	publisher *mockService.MockEventPublisher
}

func newRefreshServiceMocks(t *testing.T) (*refreshServiceMocks, usecase.RefreshUsecase) {
	m := &refreshServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		registry:  mockService.NewMockProviderRegistry(t),
		encryptor: mockService.NewMockEncryptor(t),
		publisher: mockService.NewMockEventPublisher(t),
	}
	svc := NewRefreshService(newTestConfig(), m.txManager, m.registry, m.encryptor, m.publisher, newDiscardLogger())

	return m, svc
}

func dueConnection(serviceName string) *entity.Connection {
	appID := uuid.New()
	expiry := time.Now().Add(30 * time.Minute)

	return &entity.Connection{
		ID:             uuid.New(),
		OwnerID:        uuid.New(),
		ServiceName:    serviceName,
		AccessToken:    strPtr("1:aa:bb:cc"),
		RefreshToken:   strPtr("1:11:22:33"),
		TokenExpiresAt: &expiry,
		OAuthAppID:     &appID,
		IsActive:       true,
	}
}

func expectScan(t *testing.T, m *refreshServiceMocks, ctx context.Context, due []*entity.Connection) {
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)
			mockConnRepo.EXPECT().FindDueForRefresh(ctx, mock.AnythingOfType("time.Time")).Return(due, nil)

			return fn(mockFactory)
		}).
		Once()
}

func expectAppLoad(t *testing.T, m *refreshServiceMocks, ctx context.Context, app *entity.OAuthApp) {
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAppRepo := mockRepo.NewMockOAuthAppRepository(t)

			mockFactory.EXPECT().NewOAuthAppRepository().Return(mockAppRepo)
			mockAppRepo.EXPECT().FindByID(ctx, app.ID).Return(app, nil)

			return fn(mockFactory)
		}).
		Once()
}

func TestRefreshService_RefreshDueConnections_Success(t *testing.T) {
	m, svc := newRefreshServiceMocks(t)

	ctx := context.Background()
	conn := dueConnection("google")
	app := &entity.OAuthApp{ID: *conn.OAuthAppID, ServiceName: "google", ClientID: "cid", ClientSecret: "1:s1:s2:s3", IsActive: true}
	newExpiry := time.Now().Add(time.Hour)
	tok := &service.TokenResponse{AccessToken: "fresh-access", ExpiresAt: &newExpiry}

	expectScan(t, m, ctx, []*entity.Connection{conn})
	expectAppLoad(t, m, ctx, app)

	provider := mockService.NewMockProvider(t)
	m.registry.EXPECT().Get("google").Return(provider, nil)
	provider.EXPECT().SupportsRefresh().Return(true)
	provider.EXPECT().Refresh(ctx, mock.AnythingOfType("service.ProviderConfig"), "refresh-plain").Return(tok, nil)

	m.encryptor.EXPECT().DecryptString("1:s1:s2:s3").Return("secret", nil)
	m.encryptor.EXPECT().DecryptString("1:11:22:33").Return("refresh-plain", nil)
	m.encryptor.EXPECT().EncryptString("fresh-access").Return("1:f1:f2:f3", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)
			mockErrorRepo := mockRepo.NewMockRefreshErrorRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)
			mockFactory.EXPECT().NewRefreshErrorRepository().Return(mockErrorRepo)
			mockFactory.EXPECT().NewAuditLogRepository().Return(mockAuditRepo)

			mockConnRepo.EXPECT().UpdateTokens(ctx, conn.ID, mock.AnythingOfType("repository.TokenPatch")).
				Run(func(ctx context.Context, id uuid.UUID, patch repository.TokenPatch) {
					assert.Equal(t, "1:f1:f2:f3", *patch.AccessToken)
					// No rotated refresh token in the response keeps the stored one.
					assert.Nil(t, patch.RefreshToken)
					assert.Equal(t, &newExpiry, patch.ExpiresAt)
				}).
				Return(nil)
			mockErrorRepo.EXPECT().Resolve(ctx, conn.ID, mock.AnythingOfType("time.Time")).Return(nil)
			mockAuditRepo.EXPECT().AppendAccess(ctx, mock.AnythingOfType("*entity.AccessLog")).
				Run(func(ctx context.Context, log *entity.AccessLog) {
					assert.Equal(t, entity.AccessRefresh, log.AccessType)
					assert.Equal(t, "system", log.AccessedBy)
				}).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()

	report, err := svc.RefreshDueConnections(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Processed)
	require.Len(t, report.Results, 1)
	assert.Equal(t, usecase.RefreshStatusSuccess, report.Results[0].Status)
	assert.Equal(t, conn.ID, report.Results[0].ConnectionID)
	assert.Equal(t, &newExpiry, report.Results[0].NewExpiresAt)
}

func TestRefreshService_RefreshDueConnections_RotatedRefreshToken(t *testing.T) {
	m, svc := newRefreshServiceMocks(t)

	ctx := context.Background()
	conn := dueConnection("microsoft")
	app := &entity.OAuthApp{ID: *conn.OAuthAppID, ServiceName: "microsoft", ClientID: "cid", ClientSecret: "1:s1:s2:s3", IsActive: true}
	tok := &service.TokenResponse{AccessToken: "fresh-access", RefreshToken: strPtr("rotated-refresh")}

	expectScan(t, m, ctx, []*entity.Connection{conn})
	expectAppLoad(t, m, ctx, app)

	provider := mockService.NewMockProvider(t)
	m.registry.EXPECT().Get("microsoft").Return(provider, nil)
	provider.EXPECT().SupportsRefresh().Return(true)
	provider.EXPECT().Refresh(ctx, mock.AnythingOfType("service.ProviderConfig"), "refresh-plain").Return(tok, nil)

	m.encryptor.EXPECT().DecryptString("1:s1:s2:s3").Return("secret", nil)
	m.encryptor.EXPECT().DecryptString("1:11:22:33").Return("refresh-plain", nil)
	m.encryptor.EXPECT().EncryptString("fresh-access").Return("1:f1:f2:f3", nil)
	m.encryptor.EXPECT().EncryptString("rotated-refresh").Return("1:n1:n2:n3", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)
			mockErrorRepo := mockRepo.NewMockRefreshErrorRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)
			mockFactory.EXPECT().NewRefreshErrorRepository().Return(mockErrorRepo)
			mockFactory.EXPECT().NewAuditLogRepository().Return(mockAuditRepo)

			mockConnRepo.EXPECT().UpdateTokens(ctx, conn.ID, mock.AnythingOfType("repository.TokenPatch")).
				Run(func(ctx context.Context, id uuid.UUID, patch repository.TokenPatch) {
					require.NotNil(t, patch.RefreshToken)
					assert.Equal(t, "1:n1:n2:n3", *patch.RefreshToken)
				}).
				Return(nil)
			mockErrorRepo.EXPECT().Resolve(ctx, conn.ID, mock.AnythingOfType("time.Time")).Return(nil)
			mockAuditRepo.EXPECT().AppendAccess(ctx, mock.AnythingOfType("*entity.AccessLog")).Return(nil)

			return fn(mockFactory)
		}).
		Once()

	report, err := svc.RefreshDueConnections(ctx)

	require.NoError(t, err)
	assert.Equal(t, usecase.RefreshStatusSuccess, report.Results[0].Status)
}

func TestRefreshService_RefreshDueConnections_FailureIsIsolated(t *testing.T) {
	m, svc := newRefreshServiceMocks(t)

	ctx := context.Background()
	broken := dueConnection("google")
	healthy := dueConnection("microsoft")
	brokenApp := &entity.OAuthApp{ID: *broken.OAuthAppID, ServiceName: "google", ClientID: "cid", ClientSecret: "1:s1:s2:s3", IsActive: true}
	healthyApp := &entity.OAuthApp{ID: *healthy.OAuthAppID, ServiceName: "microsoft", ClientID: "cid", ClientSecret: "1:s1:s2:s3", IsActive: true}
	newExpiry := time.Now().Add(time.Hour)
	tok := &service.TokenResponse{AccessToken: "fresh-access", ExpiresAt: &newExpiry}

	expectScan(t, m, ctx, []*entity.Connection{broken, healthy})

	googleProvider := mockService.NewMockProvider(t)
	microsoftProvider := mockService.NewMockProvider(t)
	m.registry.EXPECT().Get("google").Return(googleProvider, nil)
	m.registry.EXPECT().Get("microsoft").Return(microsoftProvider, nil)
	googleProvider.EXPECT().SupportsRefresh().Return(true)
	microsoftProvider.EXPECT().SupportsRefresh().Return(true)

	m.encryptor.EXPECT().DecryptString("1:s1:s2:s3").Return("secret", nil)
	m.encryptor.EXPECT().DecryptString("1:11:22:33").Return("refresh-plain", nil)
	m.encryptor.EXPECT().EncryptString("fresh-access").Return("1:f1:f2:f3", nil)

	googleProvider.EXPECT().Refresh(ctx, mock.AnythingOfType("service.ProviderConfig"), "refresh-plain").
		Return(nil, assert.AnError)
	microsoftProvider.EXPECT().Refresh(ctx, mock.AnythingOfType("service.ProviderConfig"), "refresh-plain").
		Return(tok, nil)

	// Broken connection: app load then failure ledger.
	expectAppLoad(t, m, ctx, brokenApp)
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockErrorRepo := mockRepo.NewMockRefreshErrorRepository(t)

			mockFactory.EXPECT().NewRefreshErrorRepository().Return(mockErrorRepo)
			mockErrorRepo.EXPECT().
				RecordFailure(ctx, broken.ID, "refresh_failed", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
				Return(&entity.RefreshError{ConnectionID: broken.ID, ErrorType: "refresh_failed", RetryCount: 2}, nil)

			return fn(mockFactory)
		}).
		Once()

	// Healthy connection: app load then token update.
	expectAppLoad(t, m, ctx, healthyApp)
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)
			mockErrorRepo := mockRepo.NewMockRefreshErrorRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)
			mockFactory.EXPECT().NewRefreshErrorRepository().Return(mockErrorRepo)
			mockFactory.EXPECT().NewAuditLogRepository().Return(mockAuditRepo)

			mockConnRepo.EXPECT().UpdateTokens(ctx, healthy.ID, mock.AnythingOfType("repository.TokenPatch")).Return(nil)
			mockErrorRepo.EXPECT().Resolve(ctx, healthy.ID, mock.AnythingOfType("time.Time")).Return(nil)
			mockAuditRepo.EXPECT().AppendAccess(ctx, mock.AnythingOfType("*entity.AccessLog")).Return(nil)

			return fn(mockFactory)
		}).
		Once()

	report, err := svc.RefreshDueConnections(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Processed)
	require.Len(t, report.Results, 2)
	assert.Equal(t, usecase.RefreshStatusError, report.Results[0].Status)
	assert.NotEmpty(t, report.Results[0].Error)
	assert.Equal(t, usecase.RefreshStatusSuccess, report.Results[1].Status)
}

func TestRefreshService_RefreshDueConnections_AlertPastRetryThreshold(t *testing.T) {
	m, svc := newRefreshServiceMocks(t)

	ctx := context.Background()
	conn := dueConnection("google")
	app := &entity.OAuthApp{ID: *conn.OAuthAppID, ServiceName: "google", ClientID: "cid", ClientSecret: "1:s1:s2:s3", IsActive: true}

	expectScan(t, m, ctx, []*entity.Connection{conn})
	expectAppLoad(t, m, ctx, app)

	provider := mockService.NewMockProvider(t)
	m.registry.EXPECT().Get("google").Return(provider, nil)
	provider.EXPECT().SupportsRefresh().Return(true)
	provider.EXPECT().Refresh(ctx, mock.AnythingOfType("service.ProviderConfig"), "refresh-plain").
		Return(nil, assert.AnError)

	m.encryptor.EXPECT().DecryptString("1:s1:s2:s3").Return("secret", nil)
	m.encryptor.EXPECT().DecryptString("1:11:22:33").Return("refresh-plain", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockErrorRepo := mockRepo.NewMockRefreshErrorRepository(t)

			mockFactory.EXPECT().NewRefreshErrorRepository().Return(mockErrorRepo)
			mockErrorRepo.EXPECT().
				RecordFailure(ctx, conn.ID, "refresh_failed", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
				Return(&entity.RefreshError{ConnectionID: conn.ID, ErrorType: "refresh_failed", RetryCount: entity.AlertRetryThreshold + 1}, nil)

			return fn(mockFactory)
		}).
		Once()

	var alert *service.AuditEvent
	m.publisher.EXPECT().PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Run(func(ctx context.Context, event *service.AuditEvent) {
			alert = event
		}).
		Return(nil)

	report, err := svc.RefreshDueConnections(ctx)

	require.NoError(t, err)
	assert.Equal(t, usecase.RefreshStatusError, report.Results[0].Status)
	require.NotNil(t, alert)
	assert.Equal(t, constants.EventTypeRefreshAlert, alert.EventType)
	assert.Equal(t, conn.ID.String(), alert.ConnectionID)
	assert.False(t, alert.Success)
}

func TestRefreshService_RefreshDueConnections_NothingDue(t *testing.T) {
	m, svc := newRefreshServiceMocks(t)

	ctx := context.Background()
	expectScan(t, m, ctx, nil)

	report, err := svc.RefreshDueConnections(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, report.Processed)
	assert.Empty(t, report.Results)
}

func TestRefreshService_RefreshDueConnections_UnsupportedProvider(t *testing.T) {
	m, svc := newRefreshServiceMocks(t)

	ctx := context.Background()
	conn := dueConnection("notion")

	expectScan(t, m, ctx, []*entity.Connection{conn})

	provider := mockService.NewMockProvider(t)
	m.registry.EXPECT().Get("notion").Return(provider, nil)
	provider.EXPECT().SupportsRefresh().Return(false)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockErrorRepo := mockRepo.NewMockRefreshErrorRepository(t)

			mockFactory.EXPECT().NewRefreshErrorRepository().Return(mockErrorRepo)
			mockErrorRepo.EXPECT().
				RecordFailure(ctx, conn.ID, "refresh_failed", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
				Return(&entity.RefreshError{ConnectionID: conn.ID, ErrorType: "refresh_failed", RetryCount: 1}, nil)

			return fn(mockFactory)
		}).
		Once()

	report, err := svc.RefreshDueConnections(ctx)

	require.NoError(t, err)
	assert.Equal(t, usecase.RefreshStatusError, report.Results[0].Status)
}
