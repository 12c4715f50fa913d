package main

import (
	"salondash/config"
	"salondash/di"
	"salondash/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.UseJSON(cfg)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
