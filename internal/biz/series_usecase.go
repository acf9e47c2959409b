package biz

import (
	"context"
	"fmt"
	"sync"

	"metricsgateway/internal/domain"

	"go.uber.org/zap"
)

// SeriesUsecase 指标时间序列用例
type SeriesUsecase struct {
	repo   domain.SeriesRepository
	logger *zap.Logger
}

// NewSeriesUsecase 创建时间序列用例
func NewSeriesUsecase(repo domain.SeriesRepository, logger *zap.Logger) *SeriesUsecase {
	return &SeriesUsecase{
		repo:   repo,
		logger: logger,
	}
}

// GetSeries 查询单个指标，未知标识返回 ErrUnknownMetric
func (uc *SeriesUsecase) GetSeries(ctx context.Context, metricID string, dateRange domain.DateRange) (domain.Series, error) {
	def, ok := domain.Lookup(metricID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownMetric, metricID)
	}

	rows, err := uc.repo.QueryRows(ctx, def.Query, dateRange.Params())
	if err != nil {
		return nil, err
	}

	return shape(rows), nil
}

// GetAllSeries 并发查询全部指标。单个指标失败只记录日志并降级为空序列，
// 不影响其余指标。
func (uc *SeriesUsecase) GetAllSeries(ctx context.Context, dateRange domain.DateRange) map[domain.MetricKey]domain.Series {
	defs := domain.Definitions()
	results := make([]domain.Series, len(defs))

	var wg sync.WaitGroup
	for i, def := range defs {
		wg.Add(1)
		go func(i int, def domain.Definition) {
			defer wg.Done()

			rows, err := uc.repo.QueryRows(ctx, def.Query, dateRange.Params())
			if err != nil {
				uc.logger.Error("metric query failed",
					zap.String("metric", string(def.Key)),
					zap.Error(err),
				)
				results[i] = domain.Series{}
				return
			}
			results[i] = shape(rows)
		}(i, def)
	}
	wg.Wait()

	series := make(map[domain.MetricKey]domain.Series, len(defs))
	for i, def := range defs {
		series[def.Key] = results[i]
	}
	return series
}

// shape 原始行转换为数据点，date 原样透传，value 缺失时按 0 处理
func shape(rows []domain.Row) domain.Series {
	series := make(domain.Series, 0, len(rows))
	for _, row := range rows {
		point := domain.DataPoint{Date: row.Date}
		if row.Value != nil {
			point.Value = *row.Value
		}
		series = append(series, point)
	}
	return series
}
