package main

import (
	"context"
	"log/slog"
	"os"

	"vaultd/config"
	"vaultd/internal/delivery"
	"vaultd/internal/delivery/http"
	"vaultd/internal/delivery/http/middleware"
	"vaultd/internal/delivery/http/router/handler"
	"vaultd/internal/delivery/scheduler"
	"vaultd/internal/domain/entity"
	"vaultd/internal/domain/repository"
	"vaultd/internal/infra/auth"
	"vaultd/internal/infra/encryption"
	logs "vaultd/internal/infra/log"
	"vaultd/internal/infra/oauthstate"
	"vaultd/internal/infra/persistence/postgres"
	"vaultd/internal/infra/provider"
	"vaultd/internal/infra/pubsub"
	"vaultd/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedServiceCatalog,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			encryption.New,
			encryption.NewIdentifierHasher,
			oauthstate.New,
			provider.NewRegistry,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialService,
			impl.NewOAuthService,
			impl.NewRefreshService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCredentialHandler,
			handler.NewOAuthHandler,
			handler.NewRefreshHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedServiceCatalog upserts the built-in service catalog so a fresh database
// knows every supported service before the first connection arrives.
func seedServiceCatalog(ctx context.Context, txManager repository.TransactionManager, logger *slog.Logger) error {
	services := []*entity.Service{
		{Name: "google", DisplayName: "Google", OAuthType: entity.OAuthTypeOAuth2, IsActive: true},
		{Name: "notion", DisplayName: "Notion", OAuthType: entity.OAuthTypeOAuth2, IsActive: true},
		{Name: "microsoft", DisplayName: "Microsoft", OAuthType: entity.OAuthTypeOAuth2, IsActive: true},
		{Name: "slack", DisplayName: "Slack", OAuthType: entity.OAuthTypeOAuth2, IsActive: true},
		{Name: "linkedin", DisplayName: "LinkedIn", OAuthType: entity.OAuthTypeOAuth2, IsActive: true},
		{Name: "facebook", DisplayName: "Facebook", OAuthType: entity.OAuthTypeOAuth2, IsActive: true},
		{Name: "openai", DisplayName: "OpenAI", OAuthType: entity.OAuthTypeAPIKey, IsActive: true},
		{Name: "airtable", DisplayName: "Airtable", OAuthType: entity.OAuthTypeAPIKey, IsActive: true},
	}

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		serviceRepo := factory.NewServiceRepository()
		for _, svc := range services {
			if err := serviceRepo.Upsert(ctx, svc); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Service catalog seeded", slog.Int("services", len(services)))

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
