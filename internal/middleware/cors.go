package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// wildcardOrigin 允许任意来源
const wildcardOrigin = "*"

// CORSConfig CORS 跨域配置
type CORSConfig struct {
	AllowOrigins     []string // 允许的来源；单独的 "*" 表示任意来源
	AllowMethods     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	AllowCredentials bool // 来源为 "*" 时不会生效
	MaxAge           int  // 预检结果缓存秒数
}

// DefaultCORSConfig 工作台视图使用的默认配置
// 任意来源，不携带凭据
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins: []string{wildcardOrigin},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        86400,
	}
}

// CORSConfigForOrigins 只允许 origins 中的来源，origins 为空时允许任意来源
func CORSConfigForOrigins(origins []string) CORSConfig {
	cfg := DefaultCORSConfig()
	if len(origins) > 0 {
		cfg.AllowOrigins = append([]string(nil), origins...)
	}
	return cfg
}

// matchOrigin 返回应写入 Access-Control-Allow-Origin 的值，不允许时返回空串
func (cfg CORSConfig) matchOrigin(origin string) string {
	for _, o := range cfg.AllowOrigins {
		if o == wildcardOrigin {
			return wildcardOrigin
		}
		if origin != "" && o == origin {
			return origin
		}
	}
	return ""
}

// CORSMiddleware 创建 CORS 跨域中间件
// 参数:
//   - config: CORS 配置，不传时使用 DefaultCORSConfig
//
// 返回:
//   - gin.HandlerFunc: Gin 中间件函数
func CORSMiddleware(config ...CORSConfig) gin.HandlerFunc {
	cfg := DefaultCORSConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	methods := strings.Join(cfg.AllowMethods, ", ")
	headers := strings.Join(cfg.AllowHeaders, ", ")
	expose := strings.Join(cfg.ExposeHeaders, ", ")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(c *gin.Context) {
		allowOrigin := cfg.matchOrigin(c.GetHeader("Origin"))

		if allowOrigin != "" {
			c.Header("Access-Control-Allow-Origin", allowOrigin)
			if allowOrigin != wildcardOrigin {
				c.Header("Vary", "Origin")
				// 浏览器拒绝 "*" 与凭据同时出现
				if cfg.AllowCredentials {
					c.Header("Access-Control-Allow-Credentials", "true")
				}
			}
			if expose != "" {
				c.Header("Access-Control-Expose-Headers", expose)
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", methods)
			c.Header("Access-Control-Allow-Headers", headers)
			if cfg.MaxAge > 0 {
				c.Header("Access-Control-Max-Age", maxAge)
			}
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
