package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/givehope/givehope/internal/adapter/repo"
	"github.com/givehope/givehope/internal/donate"
	"github.com/givehope/givehope/internal/http/handlers"
	"github.com/givehope/givehope/internal/http/httpapi"
	"github.com/givehope/givehope/internal/infra"
	"github.com/givehope/givehope/internal/nav"
	"github.com/givehope/givehope/internal/seed"
	"github.com/givehope/givehope/internal/session"
)

func main() {
	// .env is optional; environment variables win.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	data, err := seed.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load seed data")
	}

	campaigns := repo.NewCampaignRepository(data.Campaigns)
	donations := repo.NewDonationRepository(data.Donations)
	receipts := repo.NewReceiptRepository(data.Receipts)
	users := repo.NewUserRepository(data.Users)

	sessions := session.NewManager(cfg.JWTSecret, cfg.TokenTTL, users)
	donateSvc := donate.NewService(campaigns, donations, receipts, logger)

	app := &handlers.App{
		Logger:    logger,
		Campaigns: campaigns,
		Donations: donations,
		Receipts:  receipts,
		Users:     users,
		Sessions:  sessions,
		Donate:    donateSvc,
		Nav:       nav.NewStore(),
	}

	router := httpapi.NewRouter(app, logger, httpapi.Options{
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != os.ErrClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
