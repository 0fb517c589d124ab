package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/saeedpay/wallet-ledger/internal/config"
	"github.com/saeedpay/wallet-ledger/internal/db"
	"github.com/saeedpay/wallet-ledger/internal/handlers"
	"github.com/saeedpay/wallet-ledger/internal/jwt"
	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/metrics"
	"github.com/saeedpay/wallet-ledger/internal/middlewares"
	"github.com/saeedpay/wallet-ledger/internal/reference"
	"github.com/saeedpay/wallet-ledger/internal/repositories"
	"github.com/saeedpay/wallet-ledger/internal/services"
	"github.com/saeedpay/wallet-ledger/internal/worker"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/saeedpay/wallet-ledger/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title wallet-ledger API
// @version 1.0.0
// @description Wallet ledger service: user wallets, P2P transfers, merchant payment requests, credit authorization holds and bank card management
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// cardStore joins the card read and write repositories into the surface
// the validation runner needs.
type cardStore struct {
	*repositories.BankCardReadRepository
	*repositories.BankCardWriteRepository
}

// transactionStore joins ledger writes with reference-code lookups.
type transactionStore struct {
	*repositories.TransactionWriteRepository
	*repositories.TransactionReadRepository
}

// authorizationStore joins hold creation with reference-code lookups.
type authorizationStore struct {
	*repositories.AuthorizationWriteRepository
	*repositories.AuthorizationReadRepository
}

// run initializes the logger, database, Redis, Kafka, background workers
// and the HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	metrics.Init()

	// Connect to PostgreSQL
	dsn := cfg.PostgresDSN()
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PGHost, cfg.PGPort)

	conn, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer conn.Close()
	conn.SetMaxOpenConns(cfg.PGMaxOpenConns)
	conn.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := conn.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	if err := db.Migrate(ctx, conn); err != nil {
		logger.Log.Fatal("failed to apply migrations:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for ledger events
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBrokers...),
		Topic:    cfg.KafkaTransactionTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	tokener := jwt.New(cfg.JWTSecretKey, cfg.JWTExp)

	// Initialize repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)

	userReadRepo := repositories.NewUserReadRepository(conn)
	userWriteRepo := repositories.NewUserWriteRepository(conn, txGetter)
	walletReadRepo := repositories.NewWalletReadRepository(conn)
	walletWriteRepo := repositories.NewWalletWriteRepository(conn, txGetter)
	txnReadRepo := repositories.NewTransactionReadRepository(conn)
	txnWriteRepo := repositories.NewTransactionWriteRepository(conn, txGetter)
	transferReadRepo := repositories.NewTransferReadRepository(conn)
	transferWriteRepo := repositories.NewTransferWriteRepository(conn, txGetter)
	paymentReadRepo := repositories.NewPaymentRequestReadRepository(conn)
	paymentWriteRepo := repositories.NewPaymentRequestWriteRepository(conn, txGetter)
	authReadRepo := repositories.NewAuthorizationReadRepository(conn)
	authWriteRepo := repositories.NewAuthorizationWriteRepository(conn, txGetter)
	cardReadRepo := repositories.NewBankCardReadRepository(conn)
	cardWriteRepo := repositories.NewBankCardWriteRepository(conn, txGetter)
	otpRepo := repositories.NewOTPRepository(rdb, cfg.OTPTTL)

	txns := transactionStore{txnWriteRepo, txnReadRepo}
	auths := authorizationStore{authWriteRepo, authReadRepo}

	refs := reference.NewGenerator(8)

	// Background card validation
	pool := worker.NewPool(cfg.CardWorkers)
	defer pool.Stop()

	var validator services.CardValidator = services.NewProductionCardValidator()
	if cfg.CardValidatorMock {
		validator = services.NewSandboxCardValidator(2 * time.Second)
	}
	runner := services.NewCardValidationRunner(
		validator,
		cardStore{cardReadRepo, cardWriteRepo},
		pool,
		services.NewRetryPolicy(cfg.CardRetryMaxAttempts, cfg.CardRetryBackoffBase),
		cfg.CardStaleThreshold,
	)

	// Initialize services
	walletService := services.NewWalletService(walletReadRepo, walletWriteRepo, txnReadRepo, refs)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, walletService, tokener)
	transferService := services.NewTransferService(
		transferReadRepo, transferWriteRepo, walletReadRepo, walletWriteRepo,
		txns, refs, kafkaWriter, cfg.TransferExpiry,
	)
	otpService := services.NewOTPService(otpRepo, cfg.OTPDigits)
	paymentService := services.NewPaymentService(
		paymentReadRepo, paymentWriteRepo, walletReadRepo, walletWriteRepo,
		txns, auths, userReadRepo, otpService, refs, kafkaWriter,
		cfg.PaymentRequestExpiry, cfg.AuthorizationExpiry,
	)
	creditService := services.NewCreditService(
		authReadRepo, authWriteRepo, paymentWriteRepo, walletReadRepo,
		walletWriteRepo, txns, refs, kafkaWriter,
	)
	cardService := services.NewBankCardService(cardReadRepo, cardWriteRepo, runner)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes. Registration runs inside a transaction so the
		// user insert and the default wallets commit or roll back together.
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(conn))
			handlers.RegisterRegisterHandler(r, handlers.NewRegisterHandler(authService))
		})
		handlers.RegisterLoginHandler(r, handlers.NewLoginHandler(authService))

		// Protected routes; money movements additionally run inside a
		// per-request transaction.
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))

			handlers.RegisterListWalletsHandler(r, handlers.NewListWalletsHandler(walletService, tokener))
			handlers.RegisterListTransactionsHandler(r, handlers.NewListTransactionsHandler(walletService, tokener))
			handlers.RegisterSendOTPHandler(r, handlers.NewSendOTPHandler(otpService, userReadRepo, tokener))
			handlers.RegisterCardHandlers(r,
				handlers.NewCreateCardHandler(cardService, tokener),
				handlers.NewListCardsHandler(cardService, tokener),
				handlers.NewSetDefaultCardHandler(cardService, tokener),
				handlers.NewEditCardHandler(cardService, tokener),
				handlers.NewDeleteCardHandler(cardService, tokener),
			)

			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(conn))

				handlers.RegisterTransferHandlers(r,
					handlers.NewCreateTransferHandler(transferService, tokener),
					handlers.NewConfirmTransferHandler(transferService, tokener),
					handlers.NewRejectTransferHandler(transferService, tokener),
					handlers.NewGetTransferHandler(transferService, tokener),
				)
				handlers.RegisterPaymentHandlers(r,
					handlers.NewCreatePaymentHandler(paymentService, tokener),
					handlers.NewGetPaymentHandler(paymentService, tokener),
					handlers.NewPayHandler(paymentService, tokener),
				)
				handlers.RegisterCreditHandlers(r,
					handlers.NewSettleAuthorizationHandler(creditService, tokener),
					handlers.NewReleaseAuthorizationHandler(creditService, tokener),
				)
			})
		})
	})

	r.Handle("/metrics", metrics.Handler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	// Background sweeps for stale pendings
	sweepCtx, stopSweeps := context.WithCancel(ctx)
	defer stopSweeps()
	go sweep(sweepCtx, cfg.SweepInterval, "transfers", transferService.ExpirePending)
	go sweep(sweepCtx, cfg.SweepInterval, "payment requests", paymentService.ExpireStale)
	go sweep(sweepCtx, cfg.SweepInterval, "authorizations", creditService.ExpireStale)
	go sweep(sweepCtx, cfg.SweepInterval, "card validations", runner.SweepStale)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// sweep runs fn on every tick until the context is cancelled.
func sweep(ctx context.Context, interval time.Duration, name string, fn func(context.Context) (int, error)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := fn(ctx)
			if err != nil {
				logger.Log.Errorw("sweep failed", "target", name, "err", err)
				continue
			}
			if n > 0 {
				logger.Log.Infow("sweep finished", "target", name, "expired", n)
			}
		}
	}
}
