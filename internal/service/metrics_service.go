package service

import (
	"context"

	"metricsgateway/internal/biz"
	"metricsgateway/internal/domain"
)

// MetricsService 指标网关服务实现
type MetricsService struct {
	seriesUc *biz.SeriesUsecase
}

// NewMetricsService 创建指标网关服务
func NewMetricsService(seriesUc *biz.SeriesUsecase) *MetricsService {
	return &MetricsService{
		seriesUc: seriesUc,
	}
}

// GetSeries 查询单个指标的时间序列
func (s *MetricsService) GetSeries(ctx context.Context, metricID string, dateRange domain.DateRange) (domain.Series, error) {
	return s.seriesUc.GetSeries(ctx, metricID, dateRange)
}

// GetAllSeries 查询全部指标的时间序列
func (s *MetricsService) GetAllSeries(ctx context.Context, dateRange domain.DateRange) map[domain.MetricKey]domain.Series {
	return s.seriesUc.GetAllSeries(ctx, dateRange)
}
