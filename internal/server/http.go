package server

import (
	"errors"
	"net/http"
	"time"

	"metricsgateway/internal/conf"
	"metricsgateway/internal/domain"
	"metricsgateway/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HTTPServer HTTP 服务器
type HTTPServer struct {
	engine  *gin.Engine
	service *service.MetricsService
	config  *conf.Config
	logger  *zap.Logger
}

// NewHTTPServer 创建 HTTP 服务器
func NewHTTPServer(srv *service.MetricsService, config *conf.Config, logger *zap.Logger) *HTTPServer {
	// 设置 Gin 模式
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	s := &HTTPServer{
		engine:  engine,
		service: srv,
		config:  config,
		logger:  logger,
	}

	// 注册中间件
	s.registerMiddlewares()

	// 注册路由
	s.registerRoutes()

	return s
}

// registerMiddlewares 注册中间件
func (s *HTTPServer) registerMiddlewares() {
	// Recovery 中间件
	s.engine.Use(gin.Recovery())

	// 请求 ID 中间件
	s.engine.Use(RequestID())

	// 请求日志中间件
	s.engine.Use(s.requestLogger())

	// CORS 中间件，OPTIONS 预检在此直接返回，不经过鉴权
	s.engine.Use(CORS())

	// API Key 鉴权中间件
	s.engine.Use(APIKeyAuth(s.config.Auth.Header, s.config.Auth.APIKey))
}

// registerRoutes 注册路由
func (s *HTTPServer) registerRoutes() {
	s.engine.GET("/metrics", s.getMetrics)

	// 健康检查
	s.engine.GET("/health", s.healthCheck)
	s.engine.GET("/ready", s.readinessCheck)
}

// getMetrics 查询指标时间序列。metricId 省略时返回全部指标。
func (s *HTTPServer) getMetrics(c *gin.Context) {
	dateRange := domain.DefaultDateRange(time.Now())
	if from := c.Query("from"); from != "" {
		dateRange.From = from
	}
	if to := c.Query("to"); to != "" {
		dateRange.To = to
	}

	metricID := c.Query("metricId")
	if metricID == "" {
		c.JSON(http.StatusOK, s.service.GetAllSeries(c.Request.Context(), dateRange))
		return
	}

	series, err := s.service.GetSeries(c.Request.Context(), metricID, dateRange)
	if err != nil {
		s.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// handleServiceError 服务层错误映射为 HTTP 响应
func (s *HTTPServer) handleServiceError(c *gin.Context, err error) {
	var backendErr *domain.BackendError

	switch {
	case errors.Is(err, domain.ErrUnknownMetric):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "InvalidMetric",
			Message: err.Error(),
		})
	case errors.As(err, &backendErr):
		s.logger.Error("ClickHouse error",
			zap.String("path", c.Request.URL.Path),
			zap.Int("backend_status", backendErr.StatusCode),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "ClickHouseError",
			Message: "ClickHouse query failed",
			Details: backendErr.Payload,
		})
	default:
		s.logger.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "ServerError",
			Message: err.Error(),
		})
	}
}

// healthCheck 健康检查
func (s *HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": s.config.Observability.ServiceName,
		"time":    time.Now().Format(time.RFC3339),
	})
}

// readinessCheck 就绪检查
func (s *HTTPServer) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ready": true,
		"mock":  s.config.Mock.Enabled,
		"time":  time.Now().Format(time.RFC3339),
	})
}

// Engine 返回 Gin 引擎
func (s *HTTPServer) Engine() *gin.Engine {
	return s.engine
}
