package api

import (
	"context"
	"log"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"trial-shop/app"
	"trial-shop/config"
)

var (
	handler http.Handler
	once    sync.Once
)

func initApp() {
	once.Do(func() {
		cfg := config.FromEnv()
		cfg.AppEnv = "production"

		logger, err := config.NewLogger(cfg)
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}

		a, err := app.New(context.Background(), cfg, logger)
		if err != nil {
			logger.Fatal("Failed to initialize app", zap.Error(err))
		}
		handler = a.Router
	})
}

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	handler.ServeHTTP(w, r)
}
