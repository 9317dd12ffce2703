package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finbot-service/internal/application"
	"finbot-service/internal/bootstrap"
	"finbot-service/internal/config"
	httpserver "finbot-service/internal/infrastructure/http"
	"finbot-service/internal/infrastructure/logx"
	"finbot-service/internal/infrastructure/telegram"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	logger := logx.L()
	cfg := config.Load()

	if cfg.BotToken == "" {
		logger.Fatal("BOT_TOKEN environment variable is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	portfolioStore, ping, cleanup, err := bootstrap.BuildStore(ctx, cfg)
	if err != nil {
		logger.Fatal("bootstrap store", zap.Error(err))
	}
	defer cleanup()

	market := bootstrap.BuildMarket(cfg)
	portfolio := application.NewPortfolioService(portfolioStore, market)

	bot, err := telegram.NewBot(cfg.BotToken, market, portfolio)
	if err != nil {
		logger.Fatal("bootstrap bot", zap.Error(err))
	}

	srv := httpserver.NewServer(market, portfolio)
	if ping != nil {
		srv = srv.WithPing(ping)
	}
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httpserver.NewRouter(srv),
	}

	// Keep-alive listener for the hosting platform's health check.
	go func() {
		logger.Info("server started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	go func() {
		if err := bot.Run(ctx); err != nil {
			logger.Fatal("bot exited", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	cancel()
	shutdownCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("bot stopped")
}
