package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	httpapi "github.com/accountability-atlas/user-service/internal/api/http"
	"github.com/accountability-atlas/user-service/internal/api/http/handler"
	"github.com/accountability-atlas/user-service/internal/config"
	"github.com/accountability-atlas/user-service/internal/event"
	"github.com/accountability-atlas/user-service/internal/logger"
	"github.com/accountability-atlas/user-service/internal/model"
	"github.com/accountability-atlas/user-service/internal/password"
	"github.com/accountability-atlas/user-service/internal/repository/postgres"
	"github.com/accountability-atlas/user-service/internal/service"
	"github.com/accountability-atlas/user-service/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)

	key, err := token.GenerateKeyPair()
	if err != nil {
		logger.Fatal("failed to generate signing keypair", "error", err)
	}
	signer, err := token.NewRSA(key, cfg.JWT.AccessTokenTTL)
	if err != nil {
		logger.Fatal("failed to initialize token signer", "error", err)
	}

	hasher := password.NewBcrypt(password.DefaultCost)

	publisher, err := newPublisher(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize event publisher", "error", err)
	}

	registrationService := service.NewRegistration(userRepo, hasher, publisher, logger)
	authService := service.NewAuth(userRepo, sessionRepo, hasher, signer, cfg.JWT.RefreshTokenTTL, logger)
	usersService := service.NewUsers(userRepo, publisher, logger)
	bootstrap := service.NewBootstrap(userRepo, logger)

	if err := bootstrap.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.PasswordHash); err != nil {
		logger.Fatal("failed to seed admin user", "error", err)
	}

	authHandler := handler.NewAuth(registrationService, authService, cfg.JWT.AccessTokenTTL, logger)
	usersHandler := handler.NewUsers(usersService, logger)
	jwksHandler := handler.NewJWKS(signer)

	router := httpapi.NewRouter(authHandler, usersHandler, jwksHandler, signer)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTP.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", err)
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", server.Addr)
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newPublisher(ctx context.Context, cfg *config.Config, logger *logger.Logger) (model.EventPublisher, error) {
	switch cfg.Events.Backend {
	case "log":
		return event.NewLoggingPublisher(logger), nil
	case "sqs":
		if cfg.SQS.QueueURL == "" {
			return nil, fmt.Errorf("sqs backend requires SQS_QUEUE_URL")
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.SQS.Region))
		if err != nil {
			return nil, fmt.Errorf("failed to load aws config: %w", err)
		}
		client := sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
			if cfg.SQS.Endpoint != "" {
				o.BaseEndpoint = &cfg.SQS.Endpoint
			}
		})
		return event.NewSQSPublisher(client, cfg.SQS.QueueURL, logger), nil
	default:
		return nil, fmt.Errorf("unknown events backend %q", cfg.Events.Backend)
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
