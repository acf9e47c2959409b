//go:build wireinject
// +build wireinject

package main

import (
	"metricsgateway/internal/app"
	"metricsgateway/internal/biz"
	"metricsgateway/internal/conf"
	"metricsgateway/internal/server"
	"metricsgateway/internal/service"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// initApp 初始化应用
func initApp(config *conf.Config, logger *zap.Logger) (*app.App, error) {
	wire.Build(
		// Data 层
		provideSeriesRepository,

		// Biz 层
		biz.NewSeriesUsecase,

		// Service 层
		service.NewMetricsService,

		// Server 层
		server.NewHTTPServer,

		// App
		app.NewApp,
	)

	return nil, nil
}
