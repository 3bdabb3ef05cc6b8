package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"mezcaltasting/config"
	"mezcaltasting/internal/adapters/auth"
	"mezcaltasting/internal/adapters/blogger"
	"mezcaltasting/internal/adapters/commentstore"
	"mezcaltasting/internal/adapters/email"
	"mezcaltasting/internal/adapters/rest"
	delivery "mezcaltasting/internal/delivery/http"
	"mezcaltasting/internal/delivery/http/controllers"
	"mezcaltasting/internal/delivery/http/middleware"
	"mezcaltasting/internal/services"
)

// @title Mezcal Tasting API
// @version 1.0
// @description Front service for the mezcal tasting app: calendar, registrations, store reservations, forum and landing-page content.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	httpClient := &http.Client{Timeout: 15 * time.Second}

	// Backend REST adapter and repositories.
	backend := rest.NewClient(cfg.BackendURL, httpClient, logger)
	experienceRepo := rest.NewExperienceRepository(backend)
	beverageRepo := rest.NewBeverageRepository(backend)
	categoryRepo := rest.NewCategoryRepository(backend)
	userRepo := rest.NewUserRepository(backend)
	reservationRepo := rest.NewReservationRepository(backend)
	homeRepo := rest.NewHomeInfoRepository(backend)

	// Local comment storage.
	db, err := commentstore.Open(cfg.CommentDBPath)
	if err != nil {
		logger.Error("failed to open comment database", "path", cfg.CommentDBPath, "err", err)
		os.Exit(1)
	}
	defer db.Close()
	comments, err := commentstore.New(db)
	if err != nil {
		logger.Error("failed to initialize comment store", "err", err)
		os.Exit(1)
	}

	// External blog.
	blog := blogger.NewHTTPFetcher(httpClient, cfg.BloggerBlogID, cfg.BloggerAPIKey)

	// Verification tokens and confirmation mail.
	issuer := auth.NewJWTIssuer(cfg.VerificationSecret)
	verifier := auth.NewJWTVerifier(cfg.VerificationSecret)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailerProvider,
		FromAddress: cfg.MailerFromAddress,
		FromName:    cfg.MailerFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	renderer := email.NewTemplateRenderer()

	// Services.
	roster := services.NewAttendeeRoster()
	experienceService := services.NewExperienceService(experienceRepo)
	calendarService := services.NewCalendarService(experienceRepo)
	registrationService := services.NewRegistrationService(experienceRepo, userRepo, roster, mailer, renderer, logger)
	storeService := services.NewStoreService(beverageRepo, userRepo, reservationRepo, issuer, logger)
	forumService := services.NewForumService(blog, comments)
	homeService := services.NewHomeService(homeRepo)

	// Controllers.
	calendarController := controllers.NewCalendarController(logger, calendarService)
	experienceController := controllers.NewExperienceController(logger, experienceService, roster, userRepo)
	registrationController := controllers.NewRegistrationController(logger, registrationService)
	storeController := controllers.NewStoreController(logger, storeService, categoryRepo, beverageRepo, userRepo)
	forumController := controllers.NewForumController(logger, forumService)
	homeController := controllers.NewHomeController(logger, homeService)

	mux := delivery.NewRouter(
		logger,
		calendarController,
		experienceController,
		registrationController,
		storeController,
		forumController,
		homeController,
		verifier,
	)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	addr := ":" + cfg.Port
	logger.Info("server starting",
		"addr", addr,
		"environment", cfg.Environment,
		"backend_url", cfg.BackendURL,
	)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
