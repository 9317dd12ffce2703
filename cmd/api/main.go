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

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

// cmd/api serves the JSON quotes API without the Telegram transport.
func main() {
	logger := logx.L()
	cfg := config.Load()

	ctx := context.Background()
	portfolioStore, ping, cleanup, err := bootstrap.BuildStore(ctx, cfg)
	if err != nil {
		logger.Fatal("bootstrap store", zap.Error(err))
	}
	defer cleanup()

	market := bootstrap.BuildMarket(cfg)
	portfolio := application.NewPortfolioService(portfolioStore, market)

	srv := httpserver.NewServer(market, portfolio)
	if ping != nil {
		srv = srv.WithPing(ping)
	}
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httpserver.NewRouter(srv),
	}

	go func() {
		logger.Info("server started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("server stopped")
}
