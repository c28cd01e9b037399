package handler

import (
	"net/http"

	"tavola/config"
	"tavola/di"
	"tavola/shared/logger"
	"tavola/transport/http/response"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler, err := di.InitializeService()
	if err != nil {
		logger.ErrorWithStack(err)
		response.WithUnhealthy(w)

		return
	}

	handler.ServeHTTP(w, r)
}
