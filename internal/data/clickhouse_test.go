package data

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"metricsgateway/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(host string) *ClickHouseConfig {
	return &ClickHouseConfig{
		Host:     host,
		Username: "default",
		Password: "secret",
		Timeout:  2 * time.Second,
	}
}

func TestClickHouseGateway_QueryRows(t *testing.T) {
	var captured *http.Request
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		w.Write([]byte(`{"date":"2023-03-20","value":120}
{"date":"2023-03-21","value":98.5}
{"date":"2023-03-22","value":null}
`))
	}))
	defer backend.Close()

	gateway := NewClickHouseGateway(testConfig(backend.URL), zap.NewNop())

	rows, err := gateway.QueryRows(context.Background(), "SELECT 1", map[string]string{
		"from": "2023-03-20",
		"to":   "2023-03-22",
	})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// 请求走 HTTP 接口约定：POST、basic auth、查询与格式作为请求参数
	require.NotNil(t, captured)
	assert.Equal(t, http.MethodPost, captured.Method)

	username, password, ok := captured.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "default", username)
	assert.Equal(t, "secret", password)

	query := captured.URL.Query()
	assert.Equal(t, "SELECT 1", query.Get("query"))
	assert.Equal(t, "JSONEachRow", query.Get("default_format"))
	assert.Equal(t, "2023-03-20", query.Get("param_from"))
	assert.Equal(t, "2023-03-22", query.Get("param_to"))

	// 行解析：value 为 null 时指针为空
	assert.Equal(t, "2023-03-20", rows[0].Date)
	require.NotNil(t, rows[0].Value)
	assert.Equal(t, 120.0, *rows[0].Value)
	assert.Nil(t, rows[2].Value)
}

func TestClickHouseGateway_DatabaseParam(t *testing.T) {
	var database string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		database = r.URL.Query().Get("database")
		w.Write([]byte(""))
	}))
	defer backend.Close()

	config := testConfig(backend.URL)
	config.Database = "analytics"
	gateway := NewClickHouseGateway(config, zap.NewNop())

	_, err := gateway.QueryRows(context.Background(), "SELECT 1", nil)
	require.NoError(t, err)
	assert.Equal(t, "analytics", database)
}

func TestClickHouseGateway_BackendError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Code: 62. DB::Exception: Syntax error"))
	}))
	defer backend.Close()

	gateway := NewClickHouseGateway(testConfig(backend.URL), zap.NewNop())

	_, err := gateway.QueryRows(context.Background(), "SELECT nonsense", nil)
	require.Error(t, err)

	var backendErr *domain.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusInternalServerError, backendErr.StatusCode)
	assert.Contains(t, backendErr.Payload, "DB::Exception")
}

func TestClickHouseGateway_MissingConfig(t *testing.T) {
	testCases := []struct {
		name   string
		config *ClickHouseConfig
	}{
		{"NoHost", &ClickHouseConfig{Username: "u", Password: "p"}},
		{"NoUsername", &ClickHouseConfig{Host: "http://localhost:8123", Password: "p"}},
		{"NoPassword", &ClickHouseConfig{Host: "http://localhost:8123", Username: "u"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gateway := NewClickHouseGateway(tc.config, zap.NewNop())

			// 配置缺失时不发起网络调用，直接失败
			_, err := gateway.QueryRows(context.Background(), "SELECT 1", nil)
			assert.ErrorIs(t, err, domain.ErrMissingClickHouseConfig)
		})
	}
}

func TestClickHouseGateway_TransportError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // 立即关闭，制造连接失败

	gateway := NewClickHouseGateway(testConfig(backend.URL), zap.NewNop())

	_, err := gateway.QueryRows(context.Background(), "SELECT 1", nil)
	require.Error(t, err)

	// 传输层失败是普通错误，不是后端错误
	var backendErr *domain.BackendError
	assert.False(t, errors.As(err, &backendErr))
}
