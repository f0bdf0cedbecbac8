package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config 全局配置（包含服务器与客户端两部分）
type Config struct {
	Server ServerConfig
	Client ClientConfig
}

// ServerConfig 服务器配置项
type ServerConfig struct {
	Host          string        // 监听主机，空串表示监听所有本地接口
	MaxKeyLength  int           // 查询关键字最大长度，超出部分被截断
	MaxLineBytes  int           // 单行查询的最大字节数，超出部分被截断
	ListenBacklog int           // 监听队列长度（Go 的 net.Listen 不暴露该参数，仅作记录）
	IdleTimeout   time.Duration // 空闲超时，0 表示不超时
}

// ClientConfig 客户端配置项
type ClientConfig struct {
	Server      string        // 服务器地址
	DialTimeout time.Duration // 连接超时
}

// 默认值。MaxKeyLength 的默认上限 5 短得不寻常，
// 会截断较长的合法查询词，部署时应按需调大。
const (
	DefaultMaxKeyLength  = 5
	DefaultMaxLineBytes  = 1000
	DefaultListenBacklog = 5
)

// LoadConfig 从指定路径加载 .env 配置（若存在），并填充默认值
func LoadConfig(configPath string) (*Config, error) {
	// 如果配置文件存在，则加载它
	if _, err := os.Stat(configPath); err == nil {
		if err := godotenv.Load(configPath); err != nil {
			return nil, fmt.Errorf("failed to load config file: %v", err)
		}
	}

	config := &Config{}

	// 服务器配置
	config.Server = ServerConfig{
		Host:          getEnvString("MDB_HOST", ""),
		MaxKeyLength:  getEnvInt("MDB_MAX_KEY_LENGTH", DefaultMaxKeyLength),
		MaxLineBytes:  getEnvInt("MDB_MAX_LINE_BYTES", DefaultMaxLineBytes),
		ListenBacklog: getEnvInt("MDB_LISTEN_BACKLOG", DefaultListenBacklog),
		IdleTimeout:   time.Duration(getEnvInt("MDB_IDLE_TIMEOUT_SECONDS", 0)) * time.Second,
	}

	// 客户端配置
	config.Client = ClientConfig{
		Server:      getEnvString("MDB_CLIENT_SERVER", "127.0.0.1:9000"),
		DialTimeout: time.Duration(getEnvInt("MDB_CLIENT_DIAL_TIMEOUT_MS", 500)) * time.Millisecond,
	}

	return config, nil
}

// GetListenAddr 返回指定端口的监听地址
func (c *Config) GetListenAddr(port int) string {
	return fmt.Sprintf("%s:%d", c.Server.Host, port)
}

// ===== 环境变量读取辅助 =====
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
