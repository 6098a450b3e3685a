package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/snapchallan/rewards/internal/app"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := app.NewApp()
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	if err := a.Run(ctx); err != nil {
		log.Fatalf("failed to start app: %v", err)
	}

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}
}
