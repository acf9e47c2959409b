package conf

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey API Key 未配置
var ErrMissingAPIKey = errors.New("API_KEY is required")

// Config 应用配置，启动时构建一次，之后只读
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	ClickHouse    ClickHouseConfig    `mapstructure:"clickhouse"`
	Auth          AuthConfig          `mapstructure:"auth"`
	Mock          MockConfig          `mapstructure:"mock"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	HTTPPort        int           `mapstructure:"http_port"`
	MetricsPort     int           `mapstructure:"metrics_port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ClickHouseConfig ClickHouse 配置。Host 为完整 URL，Port 已并入其中，
// 仅为兼容旧部署保留。
type ClickHouseConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Username     string        `mapstructure:"username"`
	Password     string        `mapstructure:"password"`
	Database     string        `mapstructure:"database"`
	QueryTimeout time.Duration `mapstructure:"query_timeout"`
}

// AuthConfig 认证配置
type AuthConfig struct {
	APIKey string `mapstructure:"api_key"`
	Header string `mapstructure:"header"`
}

// MockConfig 模拟数据配置
type MockConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// ObservabilityConfig 可观测性配置
type ObservabilityConfig struct {
	ServiceName    string `mapstructure:"service_name"`
	ServiceVersion string `mapstructure:"service_version"`
	Environment    string `mapstructure:"environment"`
	LogLevel       string `mapstructure:"log_level"`
	LogFormat      string `mapstructure:"log_format"`
}

// Load 加载配置
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// 设置配置文件
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("metrics-gateway")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	// 自动从环境变量读取
	v.AutomaticEnv()

	// 配置文件可选，仅环境变量也能启动
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// 解析配置
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// 从环境变量覆盖敏感配置
	if host := os.Getenv("CLICKHOUSE_HOST"); host != "" {
		config.ClickHouse.Host = host
	}
	if username := os.Getenv("CLICKHOUSE_USER"); username != "" {
		config.ClickHouse.Username = username
	}
	if password := os.Getenv("CLICKHOUSE_PASSWORD"); password != "" {
		config.ClickHouse.Password = password
	}
	if database := os.Getenv("CLICKHOUSE_DATABASE"); database != "" {
		config.ClickHouse.Database = database
	}
	if key := os.Getenv("API_KEY"); key != "" {
		config.Auth.APIKey = key
	}

	// NODE_ENV 与 USE_MOCK_DATA 同时满足才启用模拟数据
	if os.Getenv("NODE_ENV") == "development" && os.Getenv("USE_MOCK_DATA") == "true" {
		config.Mock.Enabled = true
	}

	if config.Auth.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &config, nil
}

// setDefaults 设置默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("clickhouse.query_timeout", 8*time.Second)
	v.SetDefault("auth.header", "X-API-Key")
	v.SetDefault("observability.service_name", "metrics-gateway")
	v.SetDefault("observability.service_version", "dev")
	v.SetDefault("observability.environment", "production")
	v.SetDefault("observability.log_level", "info")
	v.SetDefault("observability.log_format", "json")
}
