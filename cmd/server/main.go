package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cardwallet.backend/internal/config"
	"cardwallet.backend/internal/infrastructure/bank"
	"cardwallet.backend/internal/infrastructure/jobs"
	"cardwallet.backend/internal/infrastructure/processor"
	"cardwallet.backend/internal/infrastructure/repositories"
	"cardwallet.backend/internal/interfaces/http/handlers"
	"cardwallet.backend/internal/interfaces/http/middleware"
	"cardwallet.backend/internal/usecases"
	"cardwallet.backend/pkg/logger"
	"cardwallet.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("Connected to PostgreSQL via GORM")
	}

	// Initialize repositories
	walletRepo := repositories.NewWalletRepository(db)
	auditRepo := repositories.NewWalletAuditRepository(db)
	txnRepo := repositories.NewTransactionRepository(db)
	clientProxyRepo := repositories.NewClientCardProxyRepository(db)
	customerProxyRepo := repositories.NewCustomerCardProxyRepository(db)
	recipientRepo := repositories.NewEtransferRecipientRepository(db)
	etransferRepo := repositories.NewEtransferRepository(db)
	payeeRepo := repositories.NewBillPayeeRepository(db)
	billPaymentRepo := repositories.NewBillPaymentRepository(db)
	feeRepo := repositories.NewFeeRepository(db)
	storeRepo := repositories.NewStoreRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey, cfg.Security.SessionTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}
	resetStore := redis.NewResetStore(cfg.Security.AccessCodeTTL)

	// Initialize partner clients
	processorClient := processor.NewClient(processor.Config{
		BaseURL:      cfg.Processor.BaseURL,
		UserID:       cfg.Processor.UserID,
		Password:     cfg.Processor.Password,
		SourceID:     cfg.Processor.SourceID,
		ClientID:     cfg.Processor.ClientID,
		SubProgramID: cfg.Processor.SubProgramID,
		PackageID:    cfg.Processor.PackageID,
		Timeout:      cfg.Processor.Timeout,
	})
	bankClient := bank.NewClient(bank.Config{
		BaseURL:        cfg.Bank.BaseURL,
		AuthToken:      cfg.Bank.AuthToken,
		CustomerNumber: cfg.Bank.CustomerNumber,
		Timeout:        cfg.Bank.Timeout,
	})

	// Initialize usecases
	walletUsecase := usecases.NewWalletUsecase(walletRepo, auditRepo, storeRepo, clientRepo, uow)
	payoutUsecase := usecases.NewPayoutUsecase(customerProxyRepo, walletRepo, auditRepo, txnRepo, uow, processorClient)
	cardUsecase := usecases.NewCardUsecase(clientProxyRepo, customerProxyRepo, customerRepo, uow, processorClient)
	etransferUsecase := usecases.NewEtransferUsecase(recipientRepo, etransferRepo, customerProxyRepo, customerRepo, feeRepo, processorClient, bankClient)
	billPaymentUsecase := usecases.NewBillPaymentUsecase(payeeRepo, billPaymentRepo, customerProxyRepo, customerRepo, feeRepo, processorClient, bankClient)

	// Initialize handlers
	walletHandler := handlers.NewWalletHandler(walletUsecase)
	payoutHandler := handlers.NewPayoutHandler(payoutUsecase)
	cardHandler := handlers.NewCardHandler(cardUsecase)
	cardPoolHandler := handlers.NewCardPoolHandler(cardUsecase)
	etransferHandler := handlers.NewEtransferHandler(etransferUsecase)
	billPaymentHandler := handlers.NewBillPaymentHandler(billPaymentUsecase)
	sessionHandler := handlers.NewSessionHandler(sessionStore, resetStore, customerRepo)

	sessionAuth := middleware.SessionAuthMiddleware(sessionStore)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reconciler := jobs.NewStalePayoutReconciler(txnRepo, cfg.Reconciler.MaxAge, cfg.Reconciler.Interval)
	go reconciler.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		walletHandler:      walletHandler,
		payoutHandler:      payoutHandler,
		cardHandler:        cardHandler,
		cardPoolHandler:    cardPoolHandler,
		etransferHandler:   etransferHandler,
		billPaymentHandler: billPaymentHandler,
		sessionHandler:     sessionHandler,
		sessionAuth:        sessionAuth,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		reconciler.Stop()
		cancel()
	}()

	// Start server
	log.Printf("Card wallet backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
