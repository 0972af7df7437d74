package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GlebRadaev/taskearn/internal/app"
)

//	@title			taskearn API
//	@version		1.0
//	@description	Wallet ledger and task lifecycle service

//	@host		localhost:8080
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Identity provider token: "Bearer <jwt>"
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	if err := run(ctx, cancel); err != nil {
		logExit(err)
		os.Exit(1)
	}
	zap.L().Info("taskearn stopped cleanly")
}

// logExit writes the final error once. Before the application configures zap the global
// logger is a no-op, so early start-up failures go through zerolog instead.
func logExit(err error) (viaZap bool) {
	if zap.L().Core().Enabled(zapcore.ErrorLevel) {
		zap.L().Error("taskearn exited", zap.Error(err))
		return true
	}
	log.Error().Err(err).Msg("taskearn exited")
	return false
}

func run(ctx context.Context, cancel context.CancelFunc) error {
	application := app.New()
	if err := application.Start(ctx); err != nil {
		cancel()
		return err
	}
	return application.Wait(cancel)
}
