package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"aihub/config"
	_ "aihub/docs"
	"aihub/internal/adapters/auth"
	"aihub/internal/adapters/email"
	delivery "aihub/internal/delivery/http"
	"aihub/internal/delivery/http/controllers"
	"aihub/internal/delivery/http/middleware"
	"aihub/internal/domain"
	"aihub/internal/repository/postgres"
	"aihub/internal/services"
)

const serviceTimeout = 5 * time.Second

// @title AI Hub API
// @version 1.0
// @description Backend for the AI research consortium website: events, registrations, contact and collaboration intake, newsletter, team pages, and admin management.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	logger := config.NewLogger()

	// database
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("db ping: %v", err)
	}
	logger.Info("connected to postgres")

	// run migrations
	if migration, err := os.ReadFile("db/migrations/001_init.sql"); err != nil {
		logger.Warn("migration file not found, skipping", "err", err)
	} else if _, err := db.Exec(string(migration)); err != nil {
		logger.Warn("migration warning", "err", err)
	} else {
		logger.Info("migration applied")
	}

	// repositories
	eventRepo := postgres.NewEventRepository(db)
	regRepo := postgres.NewRegistrationRepository(db)
	userRepo := postgres.NewUserRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	newsletterRepo := postgres.NewNewsletterRepository(db)
	collaborationRepo := postgres.NewCollaborationRepository(db)
	teamRepo := postgres.NewTeamRepository(db)

	// adapters
	jwt := auth.NewJWT(cfg.JWTSecret)
	hasher := auth.NewBcryptHasher(12)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mail.SESRegion,
			AccessKeyID:        cfg.Mail.SESAccessKeyID,
			SecretAccessKey:    cfg.Mail.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Mail.SESInsecureSkipTLS,
		},
	})
	if err != nil {
		log.Fatalf("mailer: %v", err)
	}
	renderer := email.NewTemplateRenderer()

	// services
	emailService := services.NewEmailService(mailer, renderer, cfg.Mail.OperatorAddress, logger)
	eventService := services.NewEventService(eventRepo, serviceTimeout)
	registrationService := services.NewRegistrationService(
		eventRepo, regRepo, emailService,
		domain.RegistrationPolicy{
			UseEffectiveStatus:            cfg.Registration.UseEffectiveStatus,
			AllowReactivationOverCapacity: cfg.Registration.AllowReactivationOverCapacity,
		},
		logger, serviceTimeout,
	)
	authService := services.NewAuthService(userRepo, hasher, jwt, cfg.JWTExpiry, serviceTimeout)
	contactService := services.NewContactService(contactRepo, emailService, logger, serviceTimeout)
	newsletterService := services.NewNewsletterService(newsletterRepo, serviceTimeout)
	collaborationService := services.NewCollaborationService(collaborationRepo, serviceTimeout)
	teamService := services.NewTeamService(teamRepo, serviceTimeout)
	adminService := services.NewAdminService(
		contactRepo, newsletterRepo, eventRepo, regRepo, userRepo, collaborationRepo, serviceTimeout,
	)

	if created, err := eventService.SeedIfEmpty(context.Background()); err != nil {
		logger.Warn("event seed failed", "err", err)
	} else if len(created) > 0 {
		logger.Info("seeded events", "count", len(created))
	}

	// delivery
	mux := delivery.NewRouter(delivery.RouterDeps{
		Events:         controllers.NewEventController(logger, eventService),
		Registrations:  controllers.NewRegistrationController(logger, registrationService),
		Contact:        controllers.NewContactController(logger, contactService),
		Newsletter:     controllers.NewNewsletterController(logger, newsletterService),
		Collaborations: controllers.NewCollaborationController(logger, collaborationService),
		Team:           controllers.NewTeamController(logger, teamService),
		Auth:           controllers.NewAuthController(logger, authService),
		Admin:          controllers.NewAdminController(logger, adminService, authService),
		Verifier:       jwt,
		IntakeLimit:    middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
	})

	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSOrigins, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}
