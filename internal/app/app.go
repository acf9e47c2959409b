package app

import (
	"metricsgateway/internal/server"

	"go.uber.org/zap"
)

// App 应用程序
type App struct {
	Logger     *zap.Logger
	HTTPServer *server.HTTPServer
}

// NewApp 创建应用程序
func NewApp(logger *zap.Logger, httpServer *server.HTTPServer) *App {
	return &App{
		Logger:     logger,
		HTTPServer: httpServer,
	}
}

// Cleanup 清理资源。出站调用无常驻连接，目前只记录日志。
func (a *App) Cleanup() error {
	a.Logger.Info("Cleaning up resources...")
	return nil
}
