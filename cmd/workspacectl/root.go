package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seller-workspace/internal/client"
)

var rootCmd = &cobra.Command{
	Use:   "workspacectl",
	Short: "跨境卖家工作台命令行客户端",
	Long: `workspacectl 通过 HTTP API 操作运行中的工作台服务端。

服务器地址按以下顺序确定：--server 参数、WORKSPACE_SERVER 环境变量、
~/.seller-workspace/config.yaml 中的 server.url，默认 http://localhost:8080。`,
	SilenceUsage: true,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// 全局参数
	rootCmd.PersistentFlags().StringP("server", "s", "", "服务器地址 (默认: http://localhost:8080)")
	rootCmd.PersistentFlags().Duration("timeout", client.DefaultTimeout, "单次请求超时时间")
	_ = viper.BindPFlag("server.url", rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

func initConfig() {
	viper.SetDefault("server.url", "http://localhost:8080")
	viper.SetEnvPrefix("workspace")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = viper.BindEnv("server.url", "WORKSPACE_SERVER")

	if home, err := os.UserHomeDir(); err == nil {
		viper.SetConfigFile(filepath.Join(home, ".seller-workspace", "config.yaml"))
		viper.SetConfigType("yaml")
		// 配置文件是可选的
		_ = viper.ReadInConfig()
	}
}

func newClient() *client.Client {
	return client.NewClient(viper.GetString("server.url"))
}

func requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout := viper.GetDuration("timeout")
	if timeout <= 0 {
		timeout = client.DefaultTimeout
	}
	return context.WithTimeout(cmd.Context(), timeout)
}

func formatTime(t time.Time) string {
	return t.Local().Format("01-02 15:04")
}
