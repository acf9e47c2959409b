package data

import (
	"context"
	"math"
	"math/rand"
	"strings"

	"metricsgateway/internal/domain"

	"go.uber.org/zap"
)

// MockGateway 开发模式下合成数据，不访问真实后端
type MockGateway struct {
	logger *zap.Logger
}

// NewMockGateway 创建模拟数据网关
func NewMockGateway(logger *zap.Logger) *MockGateway {
	return &MockGateway{logger: logger}
}

// QueryRows 按查询特征合成范围内每天一行数据
func (g *MockGateway) QueryRows(ctx context.Context, query string, params map[string]string) ([]domain.Row, error) {
	dateRange := domain.DateRange{From: params["from"], To: params["to"]}
	days, err := dateRange.Days()
	if err != nil {
		return nil, err
	}

	mockRange := mockRangeFor(query)

	rows := make([]domain.Row, 0, len(days))
	for _, day := range days {
		value := mockRange.Min + rand.Float64()*(mockRange.Max-mockRange.Min)
		if mockRange.Integer {
			value = math.Floor(value)
		}
		v := value
		rows = append(rows, domain.Row{Date: day, Value: &v})
	}

	g.logger.Debug("mock rows generated",
		zap.String("from", dateRange.From),
		zap.String("to", dateRange.To),
		zap.Int("rows", len(rows)),
	)

	return rows, nil
}

// mockRangeFor 根据查询文本中的特征子串推断指标的取值范围。
// countIf 必须先于 count() 匹配，errorRate 查询两者都包含。
func mockRangeFor(query string) domain.MockRange {
	switch {
	case strings.Contains(query, "countIf(exception"):
		return lookupMockRange(domain.MetricErrorRate)
	case strings.Contains(query, "sum(read_bytes)"):
		return lookupMockRange(domain.MetricDataSize)
	case strings.Contains(query, "avg(query_duration_ms)"):
		return lookupMockRange(domain.MetricQueryDuration)
	case strings.Contains(query, "count()"):
		return lookupMockRange(domain.MetricQueryCount)
	default:
		return domain.FallbackMockRange
	}
}

func lookupMockRange(key domain.MetricKey) domain.MockRange {
	def, ok := domain.Lookup(string(key))
	if !ok {
		return domain.FallbackMockRange
	}
	return def.Mock
}
