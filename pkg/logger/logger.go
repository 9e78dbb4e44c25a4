// Package logger 初始化全局 zerolog 日志
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init 根据配置初始化全局日志
// 参数:
//   - level: 日志级别 debug/info/warn/error，无法识别时使用 info
//   - format: text 输出带颜色的控制台格式，其他值输出 JSON
func Init(level, format string) {
	InitWithWriter(os.Stderr, level, format)
}

// InitWithWriter 与 Init 相同，但输出到指定 writer
func InitWithWriter(w io.Writer, level, format string) {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if format == "text" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}
