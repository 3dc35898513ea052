package main

import (
	"context"
	"log/slog"
	"os"

	"ideaforge/config"
	"ideaforge/internal/delivery"
	"ideaforge/internal/delivery/http"
	"ideaforge/internal/delivery/http/middleware"
	"ideaforge/internal/delivery/http/router/handler"
	"ideaforge/internal/infra/auth"
	logs "ideaforge/internal/infra/log"
	"ideaforge/internal/infra/payment"
	"ideaforge/internal/infra/persistence/postgres"
	"ideaforge/internal/usecase/impl"

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewProjectRepository,
			postgres.NewCollaborationRepository,
			postgres.NewCommentRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTVerifier,
			payment.NewStripePaymentService,
			postgres.NewAdminChecker,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewProjectService,
			impl.NewCollaborationService,
			impl.NewCommentService,
			impl.NewNotificationService,
			impl.NewTransactionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProjectHandler,
			handler.NewCollaborationHandler,
			handler.NewCommentHandler,
			handler.NewNotificationHandler,
			handler.NewTransactionHandler,
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
		),
	)
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
