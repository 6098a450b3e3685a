package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/snapchallan/rewards/internal/config"
	"github.com/snapchallan/rewards/internal/database"
	"github.com/snapchallan/rewards/internal/handlers"
	"github.com/snapchallan/rewards/internal/logger"
	"github.com/snapchallan/rewards/internal/payout"
	"github.com/snapchallan/rewards/internal/repository"
	"github.com/snapchallan/rewards/internal/service"
	"go.uber.org/zap"
)

type App struct {
	server     *http.Server
	db         *sql.DB
	dispatcher *service.PayoutDispatcher
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	if err := logger.Initialize("debug"); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	violationRepo := repository.NewViolationRepository(db)

	payoutClient := payout.NewClient(cfg.PayoutGatewayAddress)

	userService := service.NewUserService(userRepo)
	walletService := service.NewWalletService(ledgerRepo)
	withdrawalService := service.NewWithdrawalService(withdrawalRepo)
	violationService := service.NewViolationService(violationRepo)
	rewardService := service.NewRewardService(violationRepo, ledgerRepo)

	dispatcher := service.NewPayoutDispatcher(withdrawalRepo, payoutClient, cfg.DispatchInterval, cfg.WithdrawalSLA)

	handler := handlers.NewHandler(userService, walletService, withdrawalService, violationService, rewardService, cfg.SecretKey)
	r := handlers.NewRouter(handler, cfg.SecretKey, cfg.InternalKey)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	return &App{
		server:     server,
		db:         db,
		dispatcher: dispatcher,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	go a.dispatcher.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
