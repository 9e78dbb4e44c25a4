// Package config 负责加载和管理应用程序的配置
// 使用 viper 库支持 YAML 配置文件和环境变量覆盖，启动时先加载 .env 文件
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 偏好存储驱动
const (
	DriverMemory = "memory"
	DriverBolt   = "bolt"
	DriverRedis  = "redis"
)

// ErrUnknownDriver 未知的偏好存储驱动
var ErrUnknownDriver = errors.New("unknown preferences driver")

// Config 是应用程序的根配置结构
// 包含所有子配置模块
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`      // 服务器配置
	Redis       RedisConfig       `mapstructure:"redis"`       // Redis 配置
	Preferences PreferencesConfig `mapstructure:"preferences"` // 偏好存储配置
	Store       StoreConfig       `mapstructure:"store"`       // 状态容器配置
	Translation TranslationConfig `mapstructure:"translation"` // 翻译桩配置
	Layout      LayoutConfig      `mapstructure:"layout"`      // 面板布局配置
	Log         LogConfig         `mapstructure:"log"`         // 日志配置
}

// ServerConfig 服务器相关配置
type ServerConfig struct {
	Port int      `mapstructure:"port"` // 监听端口，默认 8080
	Mode string   `mapstructure:"mode"` // 运行模式: debug / release
	CORS []string `mapstructure:"cors"` // CORS 允许的域名
}

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Host     string `mapstructure:"host"`      // Redis 主机地址
	Port     int    `mapstructure:"port"`      // Redis 端口
	Username string `mapstructure:"username"`  // Redis 用户名
	Password string `mapstructure:"password"`  // Redis 密码
	DB       int    `mapstructure:"db"`        // 数据库索引 (0-15)
	PoolSize int    `mapstructure:"pool_size"` // 连接池大小
}

// PreferencesConfig 偏好存储配置
type PreferencesConfig struct {
	Driver   string `mapstructure:"driver"`    // memory / bolt / redis
	BoltPath string `mapstructure:"bolt_path"` // bolt 数据文件路径
}

// StoreConfig 状态容器配置
type StoreConfig struct {
	ReplyDelay         time.Duration `mapstructure:"reply_delay"`          // 模拟买家回复延迟
	SuggestionDelay    time.Duration `mapstructure:"suggestion_delay"`     // 回复建议重新生成延迟
	CancelStaleReplies bool          `mapstructure:"cancel_stale_replies"` // 切换买家时是否取消未送达的回复
}

// TranslationConfig 翻译桩配置
type TranslationConfig struct {
	TranslateDelay time.Duration `mapstructure:"translate_delay"` // 模拟翻译延迟
	DetectDelay    time.Duration `mapstructure:"detect_delay"`    // 模拟语言检测延迟
}

// LayoutConfig 面板布局配置
type LayoutConfig struct {
	BuyerListMin     int `mapstructure:"buyer_list_min"`
	BuyerListMax     int `mapstructure:"buyer_list_max"`
	BuyerListDefault int `mapstructure:"buyer_list_default"`
	BuyerInfoMin     int `mapstructure:"buyer_info_min"`
	BuyerInfoMax     int `mapstructure:"buyer_info_max"`
	BuyerInfoDefault int `mapstructure:"buyer_info_default"`
	MobileBreakpoint int `mapstructure:"mobile_breakpoint"` // 低于该宽度隐藏两侧面板
	TabletBreakpoint int `mapstructure:"tablet_breakpoint"` // 低于该宽度只显示买家列表
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug/info/warn/error
	Format string `mapstructure:"format"` // 日志格式: json/text
}

// Load 从指定路径加载配置文件
// 支持环境变量覆盖配置项
// 参数:
//   - configPath: 配置文件目录路径 (如 "./configs")
//
// 返回:
//   - *Config: 配置对象
//   - error: 如果加载失败则返回错误
func Load(configPath string) (*Config, error) {
	// .env 不存在时直接使用系统环境变量
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	// 启用环境变量
	v.AutomaticEnv()
	// 将环境变量中的 _ 映射到配置的 .
	// 例如: REDIS_HOST -> redis.host
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	bindEnvVariables(v)
	setDefaults(v)

	// 读取配置文件（如果不存在则使用默认值和环境变量）
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 检查配置的一致性
func (c *Config) Validate() error {
	switch c.Preferences.Driver {
	case DriverMemory, DriverBolt, DriverRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.Preferences.Driver)
	}

	l := c.Layout
	if l.BuyerListMin > l.BuyerListMax || l.BuyerListDefault < l.BuyerListMin || l.BuyerListDefault > l.BuyerListMax {
		return fmt.Errorf("invalid buyer list bounds: %d <= %d <= %d", l.BuyerListMin, l.BuyerListDefault, l.BuyerListMax)
	}
	if l.BuyerInfoMin > l.BuyerInfoMax || l.BuyerInfoDefault < l.BuyerInfoMin || l.BuyerInfoDefault > l.BuyerInfoMax {
		return fmt.Errorf("invalid buyer info bounds: %d <= %d <= %d", l.BuyerInfoMin, l.BuyerInfoDefault, l.BuyerInfoMax)
	}
	if l.MobileBreakpoint > l.TabletBreakpoint {
		return fmt.Errorf("mobile breakpoint %d exceeds tablet breakpoint %d", l.MobileBreakpoint, l.TabletBreakpoint)
	}
	return nil
}

// bindEnvVariables 绑定环境变量到配置项
func bindEnvVariables(v *viper.Viper) {
	// 服务器配置
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// Redis 配置
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.username", "REDIS_USERNAME")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// 偏好存储
	v.BindEnv("preferences.driver", "PREFERENCES_DRIVER")
	v.BindEnv("preferences.bolt_path", "PREFERENCES_BOLT_PATH")

	// 状态容器
	v.BindEnv("store.reply_delay", "STORE_REPLY_DELAY")
	v.BindEnv("store.suggestion_delay", "STORE_SUGGESTION_DELAY")
	v.BindEnv("store.cancel_stale_replies", "STORE_CANCEL_STALE_REPLIES")

	// 日志
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
}

// setDefaults 设置配置项的默认值
// 当配置文件中没有指定某个值时，将使用这里设置的默认值
func setDefaults(v *viper.Viper) {
	// 服务器默认配置
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors", []string{"http://localhost:3000", "http://localhost:5173"})

	// Redis 默认配置
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	// 偏好存储默认配置
	v.SetDefault("preferences.driver", DriverBolt)
	v.SetDefault("preferences.bolt_path", "./data/preferences.db")

	// 状态容器默认配置
	v.SetDefault("store.reply_delay", "2s")
	v.SetDefault("store.suggestion_delay", "500ms")
	v.SetDefault("store.cancel_stale_replies", false)

	// 翻译桩默认配置
	v.SetDefault("translation.translate_delay", "500ms")
	v.SetDefault("translation.detect_delay", "300ms")

	// 布局默认配置
	v.SetDefault("layout.buyer_list_min", 240)
	v.SetDefault("layout.buyer_list_max", 400)
	v.SetDefault("layout.buyer_list_default", 280)
	v.SetDefault("layout.buyer_info_min", 280)
	v.SetDefault("layout.buyer_info_max", 500)
	v.SetDefault("layout.buyer_info_default", 320)
	v.SetDefault("layout.mobile_breakpoint", 768)
	v.SetDefault("layout.tablet_breakpoint", 1200)

	// 日志默认配置
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
