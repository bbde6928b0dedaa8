package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rishi-ann/redlix-portal/internal/authn"
	"github.com/rishi-ann/redlix-portal/internal/config"
	"github.com/rishi-ann/redlix-portal/internal/database"
	"github.com/rishi-ann/redlix-portal/internal/handler"
	"github.com/rishi-ann/redlix-portal/internal/jobs"
	"github.com/rishi-ann/redlix-portal/internal/metrics"
	"github.com/rishi-ann/redlix-portal/internal/middleware"
	"github.com/rishi-ann/redlix-portal/internal/model"
	"github.com/rishi-ann/redlix-portal/internal/redis"
	"github.com/rishi-ann/redlix-portal/internal/repository"
	"github.com/rishi-ann/redlix-portal/internal/service"
	"github.com/rishi-ann/redlix-portal/internal/session"
	"github.com/rishi-ann/redlix-portal/internal/util"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info().Msg("database connected")

	if migrateOnStart {
		applied, err := db.Migrate(ctx)
		if err != nil {
			return err
		}
		log.Info().Int("applied", applied).Msg("migrations complete")
	}

	redisClient, err := redis.NewClient(cfg.RedisURL)
	if err != nil {
		return err
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected")

	clientRepo := repository.NewClientRepository(db.DB)
	developerRepo := repository.NewDeveloperRepository(db.DB)
	credentialRepo := repository.NewCredentialRepository(db.DB)
	taskRepo := repository.NewTaskRepository(db.DB)
	reportRepo := repository.NewReportRepository(db.DB)
	inquiryRepo := repository.NewInquiryRepository(db.DB)
	projectRequestRepo := repository.NewProjectRequestRepository(db.DB)
	documentRepo := repository.NewDocumentRepository(db.DB)
	oauthStateRepo := repository.NewOAuthStateRepository(db.DB)

	var sealer *util.Sealer
	if cfg.DocumentEncryptionKey != "" {
		sealer, err = util.NewSealer(cfg.DocumentEncryptionKey)
		if err != nil {
			return err
		}
	}

	var federated authn.FederatedAuthenticator
	if cfg.OIDCEnabled() {
		oidcCtx, oidcCancel := context.WithTimeout(ctx, config.DBPingTimeout)
		provider, err := authn.NewOIDCAuthenticator(oidcCtx, cfg)
		oidcCancel()
		if err != nil {
			return err
		}
		federated = provider
		log.Info().Str("issuer", cfg.OIDCIssuer).Msg("federated login enabled")
	}

	clientService := service.NewClientService(clientRepo, service.NewClientIDGenerator(clientRepo))
	documentService := service.NewDocumentService(documentRepo, clientRepo, sealer, cfg.MaxDocumentBytes)
	adminService := service.NewAdminService(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminPasswordHash)
	developerService := service.NewDeveloperService(developerRepo, authn.NewLocalAuthenticator(credentialRepo))
	oauthService := service.NewOAuthService(federated, oauthStateRepo, developerService)
	taskService := service.NewTaskService(taskRepo)
	reportService := service.NewReportService(reportRepo, clientService)
	inquiryService := service.NewInquiryService(inquiryRepo, projectRequestRepo)

	codec := session.NewCodec(cfg.SessionSecret, cfg.IsProduction(), session.NewRedisRevocationStore(redisClient.Client))
	rateLimiter := service.NewRateLimiter(redisClient.Client)
	loginLimit := func(role model.Role) func(http.Handler) http.Handler {
		return middleware.NewLoginRateLimiter(rateLimiter, role).Handler
	}

	adminHandler := handler.NewAdminHandler(
		adminService, clientService, developerService, taskService,
		reportService, inquiryService, documentService, codec, loginLimit(model.RoleAdmin),
	)
	developerHandler := handler.NewDeveloperHandler(
		developerService, clientService, taskService, reportService,
		documentService, codec, loginLimit(model.RoleDeveloper),
	)
	clientHandler := handler.NewClientHandler(
		clientService, taskService, documentService, codec, loginLimit(model.RoleClient),
	)
	publicHandler := handler.NewPublicHandler(inquiryService)
	authHandler := handler.NewAuthHandler(oauthService, codec)
	documentHandler := handler.NewDocumentHandler(documentService, codec)

	bodyLimitMiddleware := middleware.NewBodyLimitMiddleware(middleware.DefaultMaxBodySize, cfg.MaxBodyBytes())
	securityHeadersMiddleware := middleware.NewSecurityHeadersMiddleware(cfg.IsProduction())
	gate := middleware.NewGate(codec)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(config.ServerRequestTimeout))
	r.Use(bodyLimitMiddleware.Handler)
	r.Use(securityHeadersMiddleware.Handler)
	r.Use(gate.Handler)

	r.Method(http.MethodGet, "/health", handler.NewHealthHandler(db, redisClient))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Mount("/admin", adminHandler.Routes())
		r.Mount("/developer", developerHandler.Routes())
		r.Mount("/client", clientHandler.Routes())
		r.Mount("/auth", authHandler.Routes())
		r.Mount("/documents", documentHandler.Routes())
		r.Mount("/", publicHandler.Routes())
	})

	r.NotFound(handler.NewSPAHandler(cfg.StaticDir).ServeHTTP)

	cleanupJob := jobs.NewCleanupJob(oauthStateRepo, config.CleanupJobInterval)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.AppEnv).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
	return nil
}
