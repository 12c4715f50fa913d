package handler

import (
	"net/http"
	"salondash/config"
	"salondash/di"
	"salondash/shared/logger"
	"sync"
)

var (
	service http.Handler
	once    sync.Once
)

// Handler is the serverless entry point. The service graph is built once per warm instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.UseJSON(cfg)

		logger.SetLogLevel(cfg)

		service = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	service.ServeHTTP(w, r)
}
