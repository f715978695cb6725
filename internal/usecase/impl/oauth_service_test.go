package impl

import (
	"context"
	"testing"
	"time"

	"vaultd/internal/domain/entity"
	domainerrors "vaultd/internal/domain/errors"
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

type oauthServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	registry  *mockService.MockProviderRegistry
	states    *mockService.MockStateStore
	encryptor *mockService.MockEncryptor
	publisher *mockService.MockEventPublisher
}

func newOAuthServiceMocks(t *testing.T) (*oauthServiceMocks, usecase.OAuthUsecase) {
	m := &oauthServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		registry:  mockService.NewMockProviderRegistry(t),
		states:    mockService.NewMockStateStore(t),
		encryptor: mockService.NewMockEncryptor(t),
		publisher: mockService.NewMockEventPublisher(t),
	}
	svc := NewOAuthService(newTestConfig(), m.txManager, m.registry, m.states, m.encryptor, m.publisher, newDiscardLogger())

	return m, svc
}

// expectOAuthUsageWrite registers the follow-up transaction that records an
// application usage entry outside the primary operation.
func expectOAuthUsageWrite(t *testing.T, txManager *mockRepo.MockTransactionManager, appendErr error, check func(usageLog *entity.OAuthUsageLog)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().NewAuditLogRepository().Return(mockAuditRepo)
			mockAuditRepo.EXPECT().AppendOAuthUsage(ctx, mock.AnythingOfType("*entity.OAuthUsageLog")).
				Run(func(ctx context.Context, usageLog *entity.OAuthUsageLog) {
					if check != nil {
						check(usageLog)
					}
				}).
				Return(appendErr)

			return fn(mockFactory)
		}).
		Once()
}

func TestOAuthService_GenerateAuthorizationURL_Success(t *testing.T) {
	m, svc := newOAuthServiceMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	appID := uuid.New()
	app := &entity.OAuthApp{
		ID:          appID,
		ServiceName: "google",
		ClientID:    "client-id",
		RedirectURI: "https://vault.example.com/api/oauth/callback/google",
		Scopes:      []string{"calendar.readonly"},
		IsActive:    true,
	}

	provider := mockService.NewMockProvider(t)
	m.registry.EXPECT().Get("google").Return(provider, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAppRepo := mockRepo.NewMockOAuthAppRepository(t)

			mockFactory.EXPECT().NewOAuthAppRepository().Return(mockAppRepo)
			mockAppRepo.EXPECT().ResolveForOwner(ctx, ownerID, "google").Return(app, nil)

			return fn(mockFactory)
		}).
		Once()
	expectOAuthUsageWrite(t, m.txManager, nil, func(usageLog *entity.OAuthUsageLog) {
		assert.Equal(t, appID, usageLog.OAuthAppID)
		assert.Equal(t, ownerID, usageLog.OwnerID)
		assert.Equal(t, "authorize", usageLog.Action)
		assert.True(t, usageLog.Success)
	})

	var storedState string
	var storedRec *service.StateRecord
	m.states.EXPECT().Put(mock.AnythingOfType("string"), mock.AnythingOfType("*service.StateRecord")).
		Run(func(state string, rec *service.StateRecord) {
			storedState = state
			storedRec = rec
		})

	provider.EXPECT().
		AuthorizationURL(service.ProviderConfig{
			ClientID:    "client-id",
			RedirectURI: "https://vault.example.com/api/oauth/callback/google",
			Scopes:      []string{"calendar.readonly"},
		}, mock.AnythingOfType("string")).
		Return("https://accounts.google.com/o/oauth2/v2/auth?client_id=client-id", nil)

	output, err := svc.GenerateAuthorizationURL(ctx, &usecase.AuthorizeInput{
		OwnerID:     ownerID,
		ServiceName: "google",
		ReturnURL:   "/after",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth?client_id=client-id", output.AuthURL)
	assert.Equal(t, storedState, output.State)
	assert.Equal(t, usecase.AppTypeGlobal, output.AppType)
	require.NotNil(t, storedRec)
	assert.Equal(t, ownerID, storedRec.OwnerID)
	assert.Equal(t, "google", storedRec.ServiceName)
	assert.Equal(t, "/after", storedRec.ReturnURL)
	assert.Equal(t, appID, storedRec.OAuthAppID)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), storedRec.ExpiresAt, 5*time.Second)
}

func TestOAuthService_GenerateAuthorizationURL_DefaultReturnURL(t *testing.T) {
	m, svc := newOAuthServiceMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	app := &entity.OAuthApp{ID: uuid.New(), OwnerID: &ownerID, ServiceName: "notion", ClientID: "cid", IsActive: true}

	provider := mockService.NewMockProvider(t)
	m.registry.EXPECT().Get("notion").Return(provider, nil)
	provider.EXPECT().AuthorizationURL(mock.AnythingOfType("service.ProviderConfig"), mock.AnythingOfType("string")).Return("https://api.notion.com/v1/oauth/authorize", nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAppRepo := mockRepo.NewMockOAuthAppRepository(t)

			mockFactory.EXPECT().NewOAuthAppRepository().Return(mockAppRepo)
			mockAppRepo.EXPECT().ResolveForOwner(ctx, ownerID, "notion").Return(app, nil)

			return fn(mockFactory)
		}).
		Once()
	expectOAuthUsageWrite(t, m.txManager, nil, nil)

	var storedRec *service.StateRecord
	m.states.EXPECT().Put(mock.AnythingOfType("string"), mock.AnythingOfType("*service.StateRecord")).
		Run(func(state string, rec *service.StateRecord) {
			storedRec = rec
		})

	output, err := svc.GenerateAuthorizationURL(ctx, &usecase.AuthorizeInput{OwnerID: ownerID, ServiceName: "notion"})

	require.NoError(t, err)
	require.NotNil(t, storedRec)
	assert.Equal(t, defaultReturnURL, storedRec.ReturnURL)
	// An owner-scoped application reports itself as such to the caller.
	assert.Equal(t, usecase.AppTypeClient, output.AppType)
}

func TestOAuthService_GenerateAuthorizationURL_NoApplication(t *testing.T) {
	m, svc := newOAuthServiceMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()

	provider := mockService.NewMockProvider(t)
	m.registry.EXPECT().Get("google").Return(provider, nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAppRepo := mockRepo.NewMockOAuthAppRepository(t)

			mockFactory.EXPECT().NewOAuthAppRepository().Return(mockAppRepo)
			mockAppRepo.EXPECT().ResolveForOwner(ctx, ownerID, "google").Return(nil, repository.ErrOAuthAppNotFound)

			return fn(mockFactory)
		})

	_, err := svc.GenerateAuthorizationURL(ctx, &usecase.AuthorizeInput{OwnerID: ownerID, ServiceName: "google"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthConfigNotFound)
}

func TestOAuthService_GenerateAuthorizationURL_UnknownService(t *testing.T) {
	m, svc := newOAuthServiceMocks(t)

	m.registry.EXPECT().Get("myspace").Return(nil, domainerrors.ErrServiceNotFound)

	_, err := svc.GenerateAuthorizationURL(context.Background(), &usecase.AuthorizeInput{
		OwnerID:     uuid.New(),
		ServiceName: "myspace",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}

func TestOAuthService_HandleCallback_UnknownState(t *testing.T) {
	m, svc := newOAuthServiceMocks(t)

	m.states.EXPECT().Consume("bogus").Return(nil, false)

	_, err := svc.HandleCallback(context.Background(), &usecase.CallbackInput{
		ServiceName: "google",
		Code:        "code",
		State:       "bogus",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
}

func TestOAuthService_HandleCallback_ExpiredState(t *testing.T) {
	m, svc := newOAuthServiceMocks(t)

	appID := uuid.New()
	rec := &service.StateRecord{
		OwnerID:     uuid.New(),
		ServiceName: "google",
		OAuthAppID:  appID,
		CreatedAt:   time.Now().Add(-time.Hour),
		ExpiresAt:   time.Now().Add(-50 * time.Minute),
	}
	m.states.EXPECT().Consume("stale").Return(rec, true)

	// The rejected callback still leaves a failed usage entry behind.
	expectOAuthUsageWrite(t, m.txManager, nil, func(usageLog *entity.OAuthUsageLog) {
		assert.Equal(t, appID, usageLog.OAuthAppID)
		assert.Equal(t, "token_exchange", usageLog.Action)
		assert.False(t, usageLog.Success)
		require.NotNil(t, usageLog.ErrorMessage)
	})

	_, err := svc.HandleCallback(context.Background(), &usecase.CallbackInput{
		ServiceName: "google",
		Code:        "code",
		State:       "stale",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateExpired)
}

func TestOAuthService_HandleCallback_ServiceMismatch(t *testing.T) {
	m, svc := newOAuthServiceMocks(t)

	appID := uuid.New()
	rec := &service.StateRecord{
		OwnerID:     uuid.New(),
		ServiceName: "google",
		OAuthAppID:  appID,
		ExpiresAt:   time.Now().Add(5 * time.Minute),
	}
	m.states.EXPECT().Consume("state-1").Return(rec, true)

	expectOAuthUsageWrite(t, m.txManager, nil, func(usageLog *entity.OAuthUsageLog) {
		assert.Equal(t, appID, usageLog.OAuthAppID)
		assert.Equal(t, "token_exchange", usageLog.Action)
		assert.False(t, usageLog.Success)
	})

	_, err := svc.HandleCallback(context.Background(), &usecase.CallbackInput{
		ServiceName: "slack",
		Code:        "code",
		State:       "state-1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthServiceMismatch)
}

func TestOAuthService_HandleCallback_Success(t *testing.T) {
	m, svc := newOAuthServiceMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	appID := uuid.New()
	connectionID := uuid.New()
	expiry := time.Now().Add(time.Hour)

	rec := &service.StateRecord{
		OwnerID:     ownerID,
		ServiceName: "google",
		ReturnURL:   "/after",
		OAuthAppID:  appID,
		ExpiresAt:   time.Now().Add(5 * time.Minute),
	}
	app := &entity.OAuthApp{
		ID:           appID,
		ServiceName:  "google",
		ClientID:     "client-id",
		ClientSecret: "1:aa:bb:cc",
		RedirectURI:  "https://vault.example.com/api/oauth/callback/google",
		Scopes:       []string{"calendar.readonly"},
		IsActive:     true,
	}
	tok := &service.TokenResponse{
		AccessToken:  "new-access",
		RefreshToken: strPtr("new-refresh"),
		ExpiresAt:    &expiry,
	}
	cfg := service.ProviderConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "https://vault.example.com/api/oauth/callback/google",
		Scopes:       []string{"calendar.readonly"},
	}

	m.states.EXPECT().Consume("state-1").Return(rec, true)

	provider := mockService.NewMockProvider(t)
	m.registry.EXPECT().Get("google").Return(provider, nil)
	provider.EXPECT().ExchangeCode(ctx, cfg, "auth-code").Return(tok, nil)
	provider.EXPECT().FetchAccountInfo(ctx, "new-access", tok).
		Return(service.AccountInfo{ID: "acc-1", Email: "alice@example.com", DisplayName: "Alice"})

	m.encryptor.EXPECT().DecryptString("1:aa:bb:cc").Return("client-secret", nil)
	m.encryptor.EXPECT().EncryptString("new-access").Return("1:a1:a2:a3", nil)
	m.encryptor.EXPECT().EncryptString("new-refresh").Return("1:r1:r2:r3", nil)
	m.encryptor.EXPECT().KeyVersion().Return(1)

	// Load the application config.
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAppRepo := mockRepo.NewMockOAuthAppRepository(t)

			mockFactory.EXPECT().NewOAuthAppRepository().Return(mockAppRepo)
			mockAppRepo.EXPECT().FindByID(ctx, appID).Return(app, nil)

			return fn(mockFactory)
		}).
		Once()

	// Persist the connection.
	var created *entity.Connection
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().NewServiceRepository().Return(mockServiceRepo)
			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)

			mockServiceRepo.EXPECT().FindByName(ctx, "google").
				Return(&entity.Service{ID: 1, Name: "google", DisplayName: "Google", OAuthType: entity.OAuthTypeOAuth2, IsActive: true}, nil)
			mockConnRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Connection")).
				Run(func(ctx context.Context, conn *entity.Connection) {
					conn.ID = connectionID
					created = conn
				}).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()

	// Creation audit entries follow the committed connection.
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().NewAuditLogRepository().Return(mockAuditRepo)
			mockAuditRepo.EXPECT().AppendAccess(ctx, mock.AnythingOfType("*entity.AccessLog")).
				Run(func(ctx context.Context, accessLog *entity.AccessLog) {
					assert.Equal(t, connectionID, accessLog.ConnectionID)
					assert.Equal(t, entity.AccessCreate, accessLog.AccessType)
				}).
				Return(nil)
			mockAuditRepo.EXPECT().AppendOAuthUsage(ctx, mock.AnythingOfType("*entity.OAuthUsageLog")).
				Run(func(ctx context.Context, usageLog *entity.OAuthUsageLog) {
					assert.Equal(t, "connection_created", usageLog.Action)
					assert.True(t, usageLog.Success)
				}).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()

	// Usage entry for the completed exchange.
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().NewAuditLogRepository().Return(mockAuditRepo)
			mockAuditRepo.EXPECT().AppendOAuthUsage(ctx, mock.AnythingOfType("*entity.OAuthUsageLog")).
				Run(func(ctx context.Context, log *entity.OAuthUsageLog) {
					assert.Equal(t, "token_exchange", log.Action)
					assert.True(t, log.Success)
				}).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()

	m.publisher.EXPECT().PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).Return(nil)

	output, err := svc.HandleCallback(ctx, &usecase.CallbackInput{
		ServiceName: "google",
		Code:        "auth-code",
		State:       "state-1",
	})

	require.NoError(t, err)
	assert.Equal(t, connectionID, output.ConnectionID)
	assert.Equal(t, "/after", output.ReturnURL)
	assert.Equal(t, "alice@example.com", output.AccountEmail)

	require.NotNil(t, created)
	assert.Equal(t, "Alice - google", created.Name)
	assert.Equal(t, "alice@example.com", created.AccountIdentifier)
	assert.Equal(t, "1:a1:a2:a3", *created.AccessToken)
	assert.Equal(t, "1:r1:r2:r3", *created.RefreshToken)
	require.NotNil(t, created.OAuthAppID)
	assert.Equal(t, appID, *created.OAuthAppID)
	assert.Equal(t, 1, created.KeyVersion)
}

func TestOAuthService_HandleCallback_AuditFailureDoesNotAbort(t *testing.T) {
	m, svc := newOAuthServiceMocks(t)

	ctx := context.Background()
	appID := uuid.New()
	connectionID := uuid.New()

	rec := &service.StateRecord{
		OwnerID:     uuid.New(),
		ServiceName: "google",
		ReturnURL:   "/after",
		OAuthAppID:  appID,
		ExpiresAt:   time.Now().Add(5 * time.Minute),
	}
	app := &entity.OAuthApp{ID: appID, ServiceName: "google", ClientID: "cid", ClientSecret: "1:aa:bb:cc", IsActive: true}
	tok := &service.TokenResponse{AccessToken: "new-access"}

	m.states.EXPECT().Consume("state-1").Return(rec, true)

	provider := mockService.NewMockProvider(t)
	m.registry.EXPECT().Get("google").Return(provider, nil)
	provider.EXPECT().ExchangeCode(ctx, mock.AnythingOfType("service.ProviderConfig"), "auth-code").Return(tok, nil)
	provider.EXPECT().FetchAccountInfo(ctx, "new-access", tok).
		Return(service.AccountInfo{ID: "acc-1", Email: "alice@example.com", DisplayName: "Alice"})

	m.encryptor.EXPECT().DecryptString("1:aa:bb:cc").Return("client-secret", nil)
	m.encryptor.EXPECT().EncryptString("new-access").Return("1:a1:a2:a3", nil)
	m.encryptor.EXPECT().KeyVersion().Return(1)

	// Load the application config.
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAppRepo := mockRepo.NewMockOAuthAppRepository(t)

			mockFactory.EXPECT().NewOAuthAppRepository().Return(mockAppRepo)
			mockAppRepo.EXPECT().FindByID(ctx, appID).Return(app, nil)

			return fn(mockFactory)
		}).
		Once()

	// Persist the connection.
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().NewServiceRepository().Return(mockServiceRepo)
			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)

			mockServiceRepo.EXPECT().FindByName(ctx, "google").
				Return(&entity.Service{ID: 1, Name: "google", OAuthType: entity.OAuthTypeOAuth2, IsActive: true}, nil)
			mockConnRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Connection")).
				Run(func(ctx context.Context, conn *entity.Connection) {
					conn.ID = connectionID
				}).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()

	// The creation audit write fails.
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().NewAuditLogRepository().Return(mockAuditRepo)
			mockAuditRepo.EXPECT().AppendAccess(ctx, mock.AnythingOfType("*entity.AccessLog")).Return(assert.AnError)

			return fn(mockFactory)
		}).
		Once()

	expectOAuthUsageWrite(t, m.txManager, nil, func(usageLog *entity.OAuthUsageLog) {
		assert.Equal(t, "token_exchange", usageLog.Action)
		assert.True(t, usageLog.Success)
	})

	m.publisher.EXPECT().PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).Return(nil)

	// The connection is already committed; a failed audit write never turns
	// the callback into an error.
	output, err := svc.HandleCallback(ctx, &usecase.CallbackInput{
		ServiceName: "google",
		Code:        "auth-code",
		State:       "state-1",
	})

	require.NoError(t, err)
	assert.Equal(t, connectionID, output.ConnectionID)
}

func TestOAuthService_HandleCallback_ExchangeFailed(t *testing.T) {
	m, svc := newOAuthServiceMocks(t)

	ctx := context.Background()
	appID := uuid.New()
	rec := &service.StateRecord{
		OwnerID:     uuid.New(),
		ServiceName: "google",
		OAuthAppID:  appID,
		ExpiresAt:   time.Now().Add(5 * time.Minute),
	}
	app := &entity.OAuthApp{ID: appID, ServiceName: "google", ClientID: "cid", ClientSecret: "1:aa:bb:cc", IsActive: true}

	m.states.EXPECT().Consume("state-1").Return(rec, true)

	provider := mockService.NewMockProvider(t)
	m.registry.EXPECT().Get("google").Return(provider, nil)
	m.encryptor.EXPECT().DecryptString("1:aa:bb:cc").Return("secret", nil)
	provider.EXPECT().ExchangeCode(ctx, mock.AnythingOfType("service.ProviderConfig"), "bad-code").
		Return(nil, domainerrors.ErrUpstreamFailed)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAppRepo := mockRepo.NewMockOAuthAppRepository(t)

			mockFactory.EXPECT().NewOAuthAppRepository().Return(mockAppRepo)
			mockAppRepo.EXPECT().FindByID(ctx, appID).Return(app, nil)

			return fn(mockFactory)
		}).
		Once()

	// The failed exchange still leaves a usage entry behind.
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().NewAuditLogRepository().Return(mockAuditRepo)
			mockAuditRepo.EXPECT().AppendOAuthUsage(ctx, mock.AnythingOfType("*entity.OAuthUsageLog")).
				Run(func(ctx context.Context, log *entity.OAuthUsageLog) {
					assert.Equal(t, "token_exchange", log.Action)
					assert.False(t, log.Success)
					require.NotNil(t, log.ErrorMessage)
				}).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()

	_, err := svc.HandleCallback(ctx, &usecase.CallbackInput{
		ServiceName: "google",
		Code:        "bad-code",
		State:       "state-1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailed)
}

func TestOAuthService_UpsertApplication_Success(t *testing.T) {
	m, svc := newOAuthServiceMocks(t)

	ctx := context.Background()
	appID := uuid.New()

	provider := mockService.NewMockProvider(t)
	m.registry.EXPECT().Get("slack").Return(provider, nil)
	m.encryptor.EXPECT().EncryptString("plain-secret").Return("1:aa:bb:cc", nil)

	var stored *entity.OAuthApp
	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAppRepo := mockRepo.NewMockOAuthAppRepository(t)

			mockFactory.EXPECT().NewOAuthAppRepository().Return(mockAppRepo)
			mockAppRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.OAuthApp")).
				Run(func(ctx context.Context, app *entity.OAuthApp) {
					app.ID = appID
					stored = app
				}).
				Return(nil)

			return fn(mockFactory)
		})

	id, err := svc.UpsertApplication(ctx, &usecase.UpsertApplicationInput{
		ServiceName:  "slack",
		AppName:      "team-bot",
		ClientID:     "client-id",
		ClientSecret: "plain-secret",
		RedirectURI:  "https://vault.example.com/api/oauth/callback/slack",
	})

	require.NoError(t, err)
	assert.Equal(t, appID, id)
	require.NotNil(t, stored)
	assert.Equal(t, "1:aa:bb:cc", stored.ClientSecret)
	assert.Nil(t, stored.OwnerID)
	assert.True(t, stored.IsActive)
}

func TestOAuthService_UpsertApplication_MissingFields(t *testing.T) {
	_, svc := newOAuthServiceMocks(t)

	_, err := svc.UpsertApplication(context.Background(), &usecase.UpsertApplicationInput{
		ServiceName: "slack",
		AppName:     "team-bot",
		ClientID:    "client-id",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOAuthService_ListApplications_OmitsSecrets(t *testing.T) {
	m, svc := newOAuthServiceMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	apps := []*entity.OAuthApp{
		{ID: uuid.New(), ServiceName: "google", AppName: "global", ClientID: "cid-1", ClientSecret: "1:aa:bb:cc", IsActive: true},
		{ID: uuid.New(), OwnerID: &ownerID, ServiceName: "slack", AppName: "scoped", ClientID: "cid-2", ClientSecret: "1:dd:ee:ff", IsActive: true},
	}

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAppRepo := mockRepo.NewMockOAuthAppRepository(t)

			mockFactory.EXPECT().NewOAuthAppRepository().Return(mockAppRepo)
			mockAppRepo.EXPECT().ListActive(ctx, (*uuid.UUID)(nil)).Return(apps, nil)

			return fn(mockFactory)
		})

	summaries, err := svc.ListApplications(ctx, nil)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.True(t, summaries[0].IsGlobal)
	assert.False(t, summaries[1].IsGlobal)
	assert.Equal(t, "cid-1", summaries[0].ClientID)
}
