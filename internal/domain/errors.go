package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownMetric 未知指标标识
	ErrUnknownMetric = errors.New("unknown metric")

	// ErrMissingClickHouseConfig ClickHouse 连接配置缺失
	ErrMissingClickHouseConfig = errors.New("clickhouse configuration missing")
)

// BackendError ClickHouse 返回的错误响应，保留原始报文用于诊断
type BackendError struct {
	StatusCode int
	Payload    string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("clickhouse returned %d: %s", e.StatusCode, e.Payload)
}
