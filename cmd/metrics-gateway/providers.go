package main

import (
	"metricsgateway/internal/conf"
	"metricsgateway/internal/data"
	"metricsgateway/internal/domain"

	"go.uber.org/zap"
)

// provideSeriesRepository 按配置选择查询执行策略
func provideSeriesRepository(config *conf.Config, logger *zap.Logger) domain.SeriesRepository {
	if config.Mock.Enabled {
		logger.Info("mock data mode enabled")
		return data.NewMockGateway(logger)
	}

	return data.NewClickHouseGateway(&data.ClickHouseConfig{
		Host:     config.ClickHouse.Host,
		Username: config.ClickHouse.Username,
		Password: config.ClickHouse.Password,
		Database: config.ClickHouse.Database,
		Timeout:  config.ClickHouse.QueryTimeout,
	}, logger)
}
