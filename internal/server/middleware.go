package server

import (
	"net/http"
	"strconv"
	"time"

	"metricsgateway/internal/monitoring"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// unauthenticatedPaths 免鉴权路径，供探活使用
var unauthenticatedPaths = map[string]bool{
	"/health": true,
	"/ready":  true,
}

// RequestID 请求 ID 中间件，透传或生成 X-Request-ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// CORS 跨域中间件。预检请求直接返回空 200，不进入后续中间件。
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// APIKeyAuth 静态 API Key 鉴权中间件，逐字节精确比较
func APIKeyAuth(header, apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if unauthenticatedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		if c.GetHeader(header) != apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "Unauthorized",
				Message: "Invalid or missing API key",
			})
			return
		}

		c.Next()
	}
}

// requestLogger 请求日志中间件
func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		monitoring.RequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()
		monitoring.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(latency.Seconds())

		s.logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}
