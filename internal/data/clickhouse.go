package data

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"metricsgateway/internal/domain"
	"metricsgateway/internal/monitoring"

	"go.uber.org/zap"
)

// defaultQueryTimeout 单次查询的超时上限
const defaultQueryTimeout = 8 * time.Second

// maxErrorPayload 错误报文读取上限
const maxErrorPayload = 16 * 1024

// ClickHouseConfig ClickHouse HTTP 接口配置
type ClickHouseConfig struct {
	Host     string // 完整 URL，例如 https://ch.example.com:8443
	Username string
	Password string
	Database string // 可选，作为 database 参数传递
	Timeout  time.Duration
}

// ClickHouseGateway 通过 HTTP 接口执行查询
type ClickHouseGateway struct {
	config *ClickHouseConfig
	client *http.Client
	logger *zap.Logger
}

// NewClickHouseGateway 创建 ClickHouse 查询网关
func NewClickHouseGateway(config *ClickHouseConfig, logger *zap.Logger) *ClickHouseGateway {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}

	return &ClickHouseGateway{
		config: config,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// QueryRows 执行查询并解析 JSONEachRow 结果。
// 日期等参数通过 param_* 绑定，不拼接进查询文本。
func (g *ClickHouseGateway) QueryRows(ctx context.Context, query string, params map[string]string) ([]domain.Row, error) {
	if g.config.Host == "" || g.config.Username == "" || g.config.Password == "" {
		return nil, domain.ErrMissingClickHouseConfig
	}

	values := url.Values{}
	values.Set("query", query)
	values.Set("default_format", "JSONEachRow")
	if g.config.Database != "" {
		values.Set("database", g.config.Database)
	}
	for name, value := range params {
		values.Set("param_"+name, value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.Host+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build clickhouse request: %w", err)
	}
	req.SetBasicAuth(g.config.Username, g.config.Password)

	start := time.Now()
	resp, err := g.client.Do(req)
	monitoring.BackendQueryDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		monitoring.BackendQueriesTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("clickhouse request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorPayload))
		monitoring.BackendQueriesTotal.WithLabelValues("error").Inc()
		g.logger.Error("ClickHouse query failed",
			zap.Int("status", resp.StatusCode),
		)
		return nil, &domain.BackendError{
			StatusCode: resp.StatusCode,
			Payload:    strings.TrimSpace(string(payload)),
		}
	}

	rows, err := decodeRows(resp.Body)
	if err != nil {
		monitoring.BackendQueriesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	monitoring.BackendQueriesTotal.WithLabelValues("ok").Inc()
	return rows, nil
}

// decodeRows 逐行解析 JSONEachRow 响应
func decodeRows(body io.Reader) ([]domain.Row, error) {
	rows := make([]domain.Row, 0)
	decoder := json.NewDecoder(body)
	for {
		var row domain.Row
		if err := decoder.Decode(&row); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("decode clickhouse response: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
