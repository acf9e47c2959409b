package domain

import "context"

// Row 后端返回的原始行。Value 为空时由上层按 0 处理。
type Row struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// SeriesRepository 查询执行器契约，实现为真实 ClickHouse 或模拟数据
type SeriesRepository interface {
	QueryRows(ctx context.Context, query string, params map[string]string) ([]Row, error)
}
