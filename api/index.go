package handler

import (
	"net/http"

	"bookinn/config"
	"bookinn/di"
	"bookinn/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Adaptor()(w, r)
}
