package main

import (
	"log/slog"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"

	"github.com/quotelane/quotelane-backend/api"
	"github.com/quotelane/quotelane-backend/usecases"
	"github.com/quotelane/quotelane-backend/utils"
)

func initRouter(conf AppConfiguration, uc usecases.Usecases, logger *slog.Logger) *gin.Engine {
	if conf.env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	tracer := otel.Tracer("quotelane-backend")

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowHeaders:    []string{"Content-Type", "X-Organization-Id"},
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE"},
	}))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))
	r.Use(utils.StoreOpenTelemetryTracerInContextMiddleware(tracer))

	api.New(uc).Routes(r)

	return r
}
