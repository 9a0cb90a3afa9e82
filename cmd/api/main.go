package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/badgerpadel/community-backend/api/controllers"
	"github.com/badgerpadel/community-backend/api/routes"
	"github.com/badgerpadel/community-backend/internal/applications"
	"github.com/badgerpadel/community-backend/internal/auth"
	"github.com/badgerpadel/community-backend/internal/memberships"
	"github.com/badgerpadel/community-backend/internal/partners"
	"github.com/badgerpadel/community-backend/internal/users"
	"github.com/badgerpadel/community-backend/pkg/auth/session"
	"github.com/badgerpadel/community-backend/pkg/config"
	"github.com/badgerpadel/community-backend/pkg/db"
	"github.com/badgerpadel/community-backend/pkg/logger"
	"github.com/badgerpadel/community-backend/pkg/metrics"
	"github.com/badgerpadel/community-backend/pkg/migrate"
	"github.com/badgerpadel/community-backend/pkg/pubsub"
	"github.com/badgerpadel/community-backend/pkg/redis"
	"github.com/badgerpadel/community-backend/pkg/storage/gcs"
)

const shutdownGrace = 15 * time.Second

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	requireResource(ctx, logg, "redis", err)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(ctx, "error closing redis", err)
		}
	}()

	gcsClient, err := gcs.NewClient(ctx, cfg.GCS, cfg.GCP, logg)
	requireResource(ctx, logg, "object storage", err)

	healthDeps := []controllers.Dependency{
		{Name: "database", Pinger: dbClient},
		{Name: "redis", Pinger: redisClient},
		{Name: "storage", Pinger: gcsClient},
	}

	var events applications.EventPublisher
	if cfg.FeatureFlags.PublishEvents {
		pubsubClient, err := pubsub.NewClient(ctx, cfg.GCP, cfg.PubSub, logg)
		requireResource(ctx, logg, "pubsub", err)
		defer pubsubClient.Close()

		publisher, err := applications.NewPubSubPublisher(pubsubClient.PartnerEventsPublisher())
		requireResource(ctx, logg, "partner events publisher", err)
		events = publisher
		healthDeps = append(healthDeps, controllers.Dependency{Name: "pubsub", Pinger: pubsubClient})
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	requireResource(ctx, logg, "session manager", err)

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       users.NewRepository(dbClient.DB()),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	requireResource(ctx, logg, "auth service", err)

	registerService, err := auth.NewRegisterService(auth.RegisterServiceParams{
		DB:             dbClient,
		PasswordConfig: cfg.Password,
	})
	requireResource(ctx, logg, "register service", err)

	partnerRepo := partners.NewRepository(dbClient.DB())
	partnerService, err := partners.NewService(partnerRepo, gcsClient)
	requireResource(ctx, logg, "partner service", err)

	applicationService, err := applications.NewService(applications.ServiceParams{
		Repo:     applications.NewRepository(dbClient.DB()),
		Partners: partnerRepo,
		Events:   events,
		Logger:   logg,
	})
	requireResource(ctx, logg, "application service", err)

	membershipService, err := memberships.NewService(memberships.ServiceParams{
		Repo:    memberships.NewRepository(dbClient.DB()),
		Users:   users.NewRepository(dbClient.DB()),
		Storage: gcsClient,
		Config:  cfg.Membership,
	})
	requireResource(ctx, logg, "membership service", err)

	httpMetrics := metrics.NewHTTPMetrics()

	router := routes.NewRouter(routes.Params{
		Config:             cfg,
		Logger:             logg,
		Metrics:            httpMetrics,
		Redis:              redisClient,
		Sessions:           sessionManager,
		AuthService:        authService,
		RegisterService:    registerService,
		PartnerService:     partnerService,
		ApplicationService: applicationService,
		MembershipService:  membershipService,
		HealthDeps:         healthDeps,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	runCtx = logg.WithFields(runCtx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(runCtx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(runCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-runCtx.Done():
		logg.Info(runCtx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(runCtx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, "resource not working: "+resource, err)
	os.Exit(1)
}
