// Package middleware 提供 HTTP 请求的中间件
package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"seller-workspace/pkg/response"
)

// LoggerMiddleware 创建请求日志中间件
// 记录每个请求的方法、路径、状态码和耗时，日志级别按状态码区分
// 返回:
//   - gin.HandlerFunc: Gin 中间件函数
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		evt := eventForStatus(status).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("client_ip", c.ClientIP()).
			Str("latency", formatLatency(time.Since(start)))

		if msg := c.Errors.ByType(gin.ErrorTypePrivate).String(); msg != "" {
			evt = evt.Str("error", msg)
		}
		evt.Msg("HTTP request")
	}
}

// eventForStatus 根据状态码选择日志级别
// 5xx 为 error，4xx 为 warn，其余为 info
func eventForStatus(status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}

// formatLatency 格式化耗时
// 小于 1ms 显示原始值，小于 1s 截断到微秒，否则截断到毫秒
func formatLatency(latency time.Duration) string {
	switch {
	case latency < time.Millisecond:
		return latency.String()
	case latency < time.Second:
		return latency.Truncate(time.Microsecond).String()
	default:
		return latency.Truncate(time.Millisecond).String()
	}
}

// RecoveryMiddleware 创建 panic 恢复中间件
// 捕获处理器中的 panic，防止程序崩溃
// 返回:
//   - gin.HandlerFunc: Gin 中间件函数
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("panic", err).Str("path", c.Request.URL.Path).Msg("Recovered from panic")

				c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
					Code:    response.CodeInternalError,
					Message: "服务器内部错误",
				})
			}
		}()

		c.Next()
	}
}
