package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dev-mohitbeniwal/mobility/audit"
	"github.com/dev-mohitbeniwal/mobility/auth"
	"github.com/dev-mohitbeniwal/mobility/config"
	"github.com/dev-mohitbeniwal/mobility/controller"
	"github.com/dev-mohitbeniwal/mobility/dao"
	"github.com/dev-mohitbeniwal/mobility/db"
	logger "github.com/dev-mohitbeniwal/mobility/logging"
	"github.com/dev-mohitbeniwal/mobility/pdp/engine"
	"github.com/dev-mohitbeniwal/mobility/router"
	"github.com/dev-mohitbeniwal/mobility/secret"
	"github.com/dev-mohitbeniwal/mobility/service"
	"github.com/dev-mohitbeniwal/mobility/util"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()
	cfg := config.GetConfig()

	if err := db.InitMongo(); err != nil {
		return err
	}
	defer db.CloseMongo()

	if err := db.InitNeo4j(); err != nil {
		return err
	}
	defer db.CloseNeo4j()

	if err := db.InitRedis(); err != nil {
		return err
	}
	defer db.CloseRedis()

	store := dao.NewStore(db.MongoDatabase, db.Neo4jDriver)
	if err := store.GuardianDAO.EnsureUniqueConstraints(ctx); err != nil {
		return fmt.Errorf("failed to create guardian constraints: %w", err)
	}

	eventBus := util.NewEventBus()
	eventBus.Start(ctx)

	auditRepository, err := audit.NewElasticsearchRepository(cfg.Elasticsearch.URL)
	if err != nil {
		return fmt.Errorf("failed to create audit repository: %w", err)
	}

	codec, err := secret.NewCodec(cfg.Codec.Secret, cfg.Codec.KeySalt, cfg.Codec.Salt, cfg.Codec.Pepper)
	if err != nil {
		return fmt.Errorf("failed to create QR codec: %w", err)
	}
	adminTokens, err := auth.NewAdminTokens(cfg.Auth.Admin.JWTSecret, cfg.Auth.Admin.TokenTTL)
	if err != nil {
		return fmt.Errorf("failed to create admin token issuer: %w", err)
	}
	keys := auth.NewKeyCache(cfg.Auth.Firebase.JWKSURL, auth.KeyCacheOptions{
		TTL:                cfg.Auth.Firebase.KeyCacheTTL,
		FetchTimeout:       cfg.Auth.Firebase.FetchTimeout,
		MinRefreshInterval: cfg.Auth.Firebase.MinRefreshInterval,
	})
	verifier := auth.NewVerifier(cfg.Auth.VerifyTimeout,
		adminTokens,
		auth.NewFirebaseAuthenticator(cfg.Auth.Firebase.ProjectID, keys),
	)

	gate, err := engine.NewRoleGate()
	if err != nil {
		return fmt.Errorf("failed to load role policy: %w", err)
	}

	var sender util.SMSSender
	if cfg.SMS.Enabled {
		sender = util.NewTwilioSender(cfg.SMS.AccountSID, cfg.SMS.AuthToken, cfg.SMS.From)
	}

	services := service.InitializeServices(service.Dependencies{
		Store:           store,
		Engine:          engine.NewEngine(store, gate, config.GetDuration("pdp.lookupTimeout")),
		AuditService:    audit.NewService(auditRepository),
		Codec:           codec,
		AdminTokens:     adminTokens,
		PasswordHasher:  secret.NewPasswordHasher(cfg.Password.Pepper, cfg.Password.Cost),
		ValidationUtil:  util.NewValidationUtil(),
		CacheService:    util.NewCacheService(db.RedisClient, cfg.Redis.DefaultCacheTTL),
		NotificationSvc: util.NewNotificationService(sender, cfg.SMS.AlertRecipient),
		EventBus:        eventBus,
	})

	gin.SetMode(gin.ReleaseMode)
	handler := router.SetupRouter(controller.InitializeControllers(services), verifier, router.Options{
		AllowedOrigins:    cfg.Server.AllowedOrigins,
		RateLimitClient:   db.RedisClient,
		RateLimitRequests: cfg.RateLimit.Requests,
		RateLimitDuration: cfg.RateLimit.Window,
		HealthCheck: func(ctx context.Context) error {
			if err := db.MongoClient.Ping(ctx, nil); err != nil {
				return fmt.Errorf("mongo: %w", err)
			}
			if err := db.Neo4jDriver.VerifyConnectivity(ctx); err != nil {
				return fmt.Errorf("neo4j: %w", err)
			}
			return db.RedisClient.Ping(ctx).Err()
		},
	})

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: handler,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	err = g.Wait()
	eventBus.Wait()
	logger.Info("Server exiting")
	return err
}
