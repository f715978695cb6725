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

func newCredentialServiceMocks(t *testing.T) (*mockRepo.MockTransactionManager, *mockService.MockEncryptor, *mockService.MockIdentifierHasher, *mockService.MockEventPublisher, usecase.CredentialUsecase) {
	txManager := mockRepo.NewMockTransactionManager(t)
	encryptor := mockService.NewMockEncryptor(t)
	hasher := mockService.NewMockIdentifierHasher(t)
	publisher := mockService.NewMockEventPublisher(t)
	svc := NewCredentialService(txManager, encryptor, hasher, publisher, newDiscardLogger())

	return txManager, encryptor, hasher, publisher, svc
}

// expectAccessLogWrite registers the follow-up transaction that records the
// access log after the primary operation has committed.
func expectAccessLogWrite(t *testing.T, txManager *mockRepo.MockTransactionManager, appendErr error, check func(accessLog *entity.AccessLog)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().NewAuditLogRepository().Return(mockAuditRepo)
			mockAuditRepo.EXPECT().AppendAccess(ctx, mock.AnythingOfType("*entity.AccessLog")).
				Run(func(ctx context.Context, accessLog *entity.AccessLog) {
					if check != nil {
						check(accessLog)
					}
				}).
				Return(appendErr)

			return fn(mockFactory)
		}).
		Once()
}

func TestCredentialService_StoreConnection_Success(t *testing.T) {
	txManager, encryptor, hasher, publisher, svc := newCredentialServiceMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	connectionID := uuid.New()
	catalogEntry := &entity.Service{ID: 7, Name: "notion", DisplayName: "Notion", OAuthType: entity.OAuthTypeAPIKey, IsActive: true}

	encryptor.EXPECT().KeyVersion().Return(1)
	encryptor.EXPECT().EncryptString("token-plain").Return("1:aa:bb:cc", nil)
	encryptor.EXPECT().EncryptString("key-plain").Return("1:dd:ee:ff", nil)
	hasher.EXPECT().HashIdentifier("alice@example.com").Return("fingerprint")
	publisher.EXPECT().PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).Return(nil)

	var created *entity.Connection
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().NewServiceRepository().Return(mockServiceRepo)
			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)

			mockServiceRepo.EXPECT().FindByName(ctx, "notion").Return(catalogEntry, nil)
			mockConnRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Connection")).
				Run(func(ctx context.Context, conn *entity.Connection) {
					conn.ID = connectionID
					created = conn
				}).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()
	expectAccessLogWrite(t, txManager, nil, func(accessLog *entity.AccessLog) {
		assert.Equal(t, connectionID, accessLog.ConnectionID)
		assert.Equal(t, entity.AccessCreate, accessLog.AccessType)
	})

	id, err := svc.StoreConnection(ctx, &usecase.StoreConnectionInput{
		OwnerID:           ownerID,
		ServiceName:       "notion",
		ConnectionName:    "workspace",
		AccessToken:       strPtr("token-plain"),
		APIKey:            strPtr("key-plain"),
		AccountIdentifier: "alice@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, connectionID, id)
	require.NotNil(t, created)
	assert.Equal(t, ownerID, created.OwnerID)
	assert.Equal(t, int64(7), created.ServiceID)
	assert.Equal(t, "1:aa:bb:cc", *created.AccessToken)
	assert.Equal(t, "1:dd:ee:ff", *created.APIKey)
	assert.Nil(t, created.RefreshToken)
	assert.Equal(t, 1, created.KeyVersion)
	assert.True(t, created.IsActive)
}

func TestCredentialService_StoreConnection_NoSecrets(t *testing.T) {
	_, _, _, _, svc := newCredentialServiceMocks(t)

	_, err := svc.StoreConnection(context.Background(), &usecase.StoreConnectionInput{
		OwnerID:     uuid.New(),
		ServiceName: "notion",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConnectionEmpty)
}

func TestCredentialService_StoreConnection_UnknownService(t *testing.T) {
	txManager, _, _, _, svc := newCredentialServiceMocks(t)

	ctx := context.Background()
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)

			mockFactory.EXPECT().NewServiceRepository().Return(mockServiceRepo)
			mockServiceRepo.EXPECT().FindByName(ctx, "doesnotexist").Return(nil, repository.ErrServiceNotFound)

			return fn(mockFactory)
		})

	_, err := svc.StoreConnection(ctx, &usecase.StoreConnectionInput{
		OwnerID:     uuid.New(),
		ServiceName: "doesnotexist",
		AccessToken: strPtr("token"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}

func TestCredentialService_StoreConnection_InactiveService(t *testing.T) {
	txManager, _, _, _, svc := newCredentialServiceMocks(t)

	ctx := context.Background()
	catalogEntry := &entity.Service{ID: 3, Name: "slack", IsActive: false}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)

			mockFactory.EXPECT().NewServiceRepository().Return(mockServiceRepo)
			mockServiceRepo.EXPECT().FindByName(ctx, "slack").Return(catalogEntry, nil)

			return fn(mockFactory)
		})

	_, err := svc.StoreConnection(ctx, &usecase.StoreConnectionInput{
		OwnerID:     uuid.New(),
		ServiceName: "slack",
		AccessToken: strPtr("token"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}

func TestCredentialService_GetCredentials_Success(t *testing.T) {
	txManager, encryptor, _, publisher, svc := newCredentialServiceMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	connectionID := uuid.New()
	expiry := time.Now().Add(time.Hour)
	conn := &entity.Connection{
		ID:                connectionID,
		OwnerID:           ownerID,
		ServiceName:       "google",
		AccessToken:       strPtr("1:aa:bb:cc"),
		RefreshToken:      strPtr("1:11:22:33"),
		APIKey:            strPtr("1:dd:ee:ff"),
		TokenExpiresAt:    &expiry,
		Scopes:            []string{"calendar.readonly"},
		AccountIdentifier: "alice@example.com",
		IsActive:          true,
	}

	// The stored refresh token must never be decrypted on a read; the mock
	// would fail the test on an unexpected DecryptString call.
	encryptor.EXPECT().DecryptString("1:aa:bb:cc").Return("token-plain", nil)
	encryptor.EXPECT().DecryptString("1:dd:ee:ff").Return("key-plain", nil)
	publisher.EXPECT().PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).Return(nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)

			mockConnRepo.EXPECT().FindActiveByOwnerAndService(ctx, ownerID, "google").Return(conn, nil)
			mockConnRepo.EXPECT().TouchLastUsed(ctx, connectionID, mock.AnythingOfType("time.Time")).Return(nil)

			return fn(mockFactory)
		}).
		Once()
	expectAccessLogWrite(t, txManager, nil, func(accessLog *entity.AccessLog) {
		assert.Equal(t, connectionID, accessLog.ConnectionID)
		assert.Equal(t, entity.AccessRead, accessLog.AccessType)
		assert.Equal(t, "n8n", accessLog.AccessedBy)
		require.NotNil(t, accessLog.IPAddress)
		assert.Equal(t, "10.0.0.9", *accessLog.IPAddress)
	})

	output, err := svc.GetCredentials(ctx, &usecase.GetCredentialsInput{
		OwnerID:     ownerID,
		ServiceName: "google",
		AccessedBy:  "n8n",
		IPAddress:   strPtr("10.0.0.9"),
	})

	require.NoError(t, err)
	assert.Equal(t, connectionID, output.ConnectionID)
	assert.Equal(t, "token-plain", *output.Credentials.AccessToken)
	assert.Equal(t, "key-plain", *output.Credentials.APIKey)
	assert.Equal(t, "alice@example.com", output.Metadata.AccountIdentifier)
	assert.False(t, output.Metadata.TokenExpired)
	assert.Equal(t, &expiry, output.Metadata.TokenExpiresAt)
}

func TestCredentialService_GetCredentials_NotFound(t *testing.T) {
	txManager, _, _, _, svc := newCredentialServiceMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)
			mockConnRepo.EXPECT().FindActiveByOwnerAndService(ctx, ownerID, "google").Return(nil, repository.ErrConnectionNotFound)

			return fn(mockFactory)
		})

	_, err := svc.GetCredentials(ctx, &usecase.GetCredentialsInput{
		OwnerID:     ownerID,
		ServiceName: "google",
		AccessedBy:  "n8n",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConnectionNotFound)
}

func TestCredentialService_GetCredentials_ExpiredToken(t *testing.T) {
	txManager, encryptor, _, publisher, svc := newCredentialServiceMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	expiry := time.Now().Add(-time.Hour)
	conn := &entity.Connection{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		ServiceName:    "google",
		AccessToken:    strPtr("1:aa:bb:cc"),
		TokenExpiresAt: &expiry,
		IsActive:       true,
	}

	encryptor.EXPECT().DecryptString("1:aa:bb:cc").Return("token-plain", nil)
	publisher.EXPECT().PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).Return(nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)

			mockConnRepo.EXPECT().FindActiveByOwnerAndService(ctx, ownerID, "google").Return(conn, nil)
			mockConnRepo.EXPECT().TouchLastUsed(ctx, conn.ID, mock.AnythingOfType("time.Time")).Return(nil)

			return fn(mockFactory)
		}).
		Once()
	expectAccessLogWrite(t, txManager, nil, nil)

	output, err := svc.GetCredentials(ctx, &usecase.GetCredentialsInput{
		OwnerID:     ownerID,
		ServiceName: "google",
		AccessedBy:  "n8n",
	})

	// Expired credentials are still returned; the caller sees the flag and
	// decides whether to trigger a refresh.
	require.NoError(t, err)
	assert.True(t, output.Metadata.TokenExpired)
	assert.Equal(t, "token-plain", *output.Credentials.AccessToken)
}

func TestCredentialService_GetCredentials_AuditFailureDoesNotAbortRead(t *testing.T) {
	txManager, encryptor, _, publisher, svc := newCredentialServiceMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	conn := &entity.Connection{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		ServiceName: "google",
		AccessToken: strPtr("1:aa:bb:cc"),
		IsActive:    true,
	}

	encryptor.EXPECT().DecryptString("1:aa:bb:cc").Return("token-plain", nil)
	publisher.EXPECT().PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).Return(nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)

			mockConnRepo.EXPECT().FindActiveByOwnerAndService(ctx, ownerID, "google").Return(conn, nil)
			mockConnRepo.EXPECT().TouchLastUsed(ctx, conn.ID, mock.AnythingOfType("time.Time")).Return(nil)

			return fn(mockFactory)
		}).
		Once()
	expectAccessLogWrite(t, txManager, assert.AnError, nil)

	output, err := svc.GetCredentials(ctx, &usecase.GetCredentialsInput{
		OwnerID:     ownerID,
		ServiceName: "google",
		AccessedBy:  "n8n",
	})

	// The access log is best effort; a failed write never withholds the
	// already committed read.
	require.NoError(t, err)
	assert.Equal(t, "token-plain", *output.Credentials.AccessToken)
}

func TestCredentialService_StoreConnection_AuditFailureDoesNotAbortStore(t *testing.T) {
	txManager, encryptor, hasher, publisher, svc := newCredentialServiceMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	connectionID := uuid.New()
	catalogEntry := &entity.Service{ID: 7, Name: "notion", DisplayName: "Notion", OAuthType: entity.OAuthTypeAPIKey, IsActive: true}

	encryptor.EXPECT().KeyVersion().Return(1)
	encryptor.EXPECT().EncryptString("key-plain").Return("1:dd:ee:ff", nil)
	hasher.EXPECT().HashIdentifier("").Return("fingerprint")
	publisher.EXPECT().PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).Return(nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().NewServiceRepository().Return(mockServiceRepo)
			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)

			mockServiceRepo.EXPECT().FindByName(ctx, "notion").Return(catalogEntry, nil)
			mockConnRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Connection")).
				Run(func(ctx context.Context, conn *entity.Connection) {
					conn.ID = connectionID
				}).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()
	expectAccessLogWrite(t, txManager, assert.AnError, nil)

	id, err := svc.StoreConnection(ctx, &usecase.StoreConnectionInput{
		OwnerID:     ownerID,
		ServiceName: "notion",
		APIKey:      strPtr("key-plain"),
	})

	require.NoError(t, err)
	assert.Equal(t, connectionID, id)
}

func TestCredentialService_GetCredentials_DecryptFailure(t *testing.T) {
	txManager, encryptor, _, _, svc := newCredentialServiceMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	conn := &entity.Connection{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		ServiceName: "google",
		AccessToken: strPtr("1:aa:bb:cc"),
		IsActive:    true,
	}

	encryptor.EXPECT().DecryptString("1:aa:bb:cc").Return("", domainerrors.ErrDecryptionFailed)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)
			mockConnRepo.EXPECT().FindActiveByOwnerAndService(ctx, ownerID, "google").Return(conn, nil)

			return fn(mockFactory)
		})

	_, err := svc.GetCredentials(ctx, &usecase.GetCredentialsInput{
		OwnerID:     ownerID,
		ServiceName: "google",
		AccessedBy:  "n8n",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDecryptionFailed)
}

func TestCredentialService_ListConnections(t *testing.T) {
	txManager, _, _, _, svc := newCredentialServiceMocks(t)

	ctx := context.Background()
	ownerID := uuid.New()
	pastExpiry := time.Now().Add(-time.Hour)
	connections := []*entity.Connection{
		{ID: uuid.New(), ServiceID: 1, ServiceName: "google", Name: "Alice - google", IsActive: true},
		{ID: uuid.New(), ServiceID: 2, ServiceName: "notion", Name: "workspace", TokenExpiresAt: &pastExpiry, IsActive: true},
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)
			mockServiceRepo := mockRepo.NewMockServiceRepository(t)

			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)
			mockFactory.EXPECT().NewServiceRepository().Return(mockServiceRepo)

			mockConnRepo.EXPECT().ListByOwner(ctx, ownerID).Return(connections, nil)
			mockServiceRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.Service{ID: 1, Name: "google", DisplayName: "Google"}, nil)
			mockServiceRepo.EXPECT().FindByID(ctx, int64(2)).Return(&entity.Service{ID: 2, Name: "notion", DisplayName: "Notion"}, nil)

			return fn(mockFactory)
		})

	summaries, err := svc.ListConnections(ctx, ownerID)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Google", summaries[0].ServiceDisplayName)
	assert.Equal(t, entity.StatusValid, summaries[0].Status)
	assert.Equal(t, entity.StatusExpired, summaries[1].Status)
}

func TestCredentialService_ConnectionStatus(t *testing.T) {
	txManager, _, _, _, svc := newCredentialServiceMocks(t)

	ctx := context.Background()
	connectionID := uuid.New()
	pastExpiry := time.Now().Add(-time.Minute)
	conn := &entity.Connection{
		ID:             connectionID,
		ServiceName:    "google",
		RefreshToken:   strPtr("1:11:22:33"),
		TokenExpiresAt: &pastExpiry,
		IsActive:       true,
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)
			mockErrorRepo := mockRepo.NewMockRefreshErrorRepository(t)

			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)
			mockFactory.EXPECT().NewRefreshErrorRepository().Return(mockErrorRepo)

			mockConnRepo.EXPECT().FindByID(ctx, connectionID).Return(conn, nil)
			mockErrorRepo.EXPECT().CountUnresolved(ctx, connectionID).Return(2, nil)

			return fn(mockFactory)
		})

	output, err := svc.ConnectionStatus(ctx, connectionID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusRefreshNeeded, output.Status)
	assert.True(t, output.IsActive)
	assert.Equal(t, 2, output.ErrorCount)
}

func TestCredentialService_UpdateTokens_KeepsStoredRefreshToken(t *testing.T) {
	txManager, encryptor, _, _, svc := newCredentialServiceMocks(t)

	ctx := context.Background()
	connectionID := uuid.New()
	expiry := time.Now().Add(time.Hour)

	encryptor.EXPECT().EncryptString("new-access").Return("1:aa:bb:cc", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)

			mockConnRepo.EXPECT().UpdateTokens(ctx, connectionID, mock.AnythingOfType("repository.TokenPatch")).
				Run(func(ctx context.Context, id uuid.UUID, patch repository.TokenPatch) {
					assert.Equal(t, "1:aa:bb:cc", *patch.AccessToken)
					assert.Nil(t, patch.RefreshToken)
					assert.Equal(t, &expiry, patch.ExpiresAt)
				}).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()
	expectAccessLogWrite(t, txManager, nil, func(accessLog *entity.AccessLog) {
		assert.Equal(t, entity.AccessRefresh, accessLog.AccessType)
	})

	err := svc.UpdateTokens(ctx, connectionID, &usecase.UpdateTokensInput{
		AccessToken: strPtr("new-access"),
		ExpiresAt:   &expiry,
	})

	require.NoError(t, err)
}

func TestCredentialService_Deactivate_Success(t *testing.T) {
	txManager, _, _, publisher, svc := newCredentialServiceMocks(t)

	ctx := context.Background()
	connectionID := uuid.New()

	var published *service.AuditEvent
	publisher.EXPECT().PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Run(func(ctx context.Context, event *service.AuditEvent) {
			published = event
		}).
		Return(nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)
			mockConnRepo.EXPECT().Deactivate(ctx, connectionID).Return(nil)

			return fn(mockFactory)
		}).
		Once()
	expectAccessLogWrite(t, txManager, nil, func(accessLog *entity.AccessLog) {
		assert.Equal(t, entity.AccessRevoke, accessLog.AccessType)
		assert.Equal(t, "dashboard", accessLog.AccessedBy)
	})

	err := svc.Deactivate(ctx, connectionID, "dashboard")

	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, string(entity.AccessRevoke), published.Action)
}

func TestCredentialService_Deactivate_PublishFailureIsNotFatal(t *testing.T) {
	txManager, _, _, publisher, svc := newCredentialServiceMocks(t)

	ctx := context.Background()
	connectionID := uuid.New()

	publisher.EXPECT().PublishAuditEvent(ctx, mock.AnythingOfType("*service.AuditEvent")).
		Return(assert.AnError)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockConnRepo := mockRepo.NewMockConnectionRepository(t)

			mockFactory.EXPECT().NewConnectionRepository().Return(mockConnRepo)
			mockConnRepo.EXPECT().Deactivate(ctx, connectionID).Return(nil)

			return fn(mockFactory)
		}).
		Once()
	expectAccessLogWrite(t, txManager, nil, nil)

	err := svc.Deactivate(ctx, connectionID, "dashboard")

	require.NoError(t, err)
}
