// Package main 是服务端的入口点
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"seller-workspace/internal/cache"
	"seller-workspace/internal/config"
	"seller-workspace/internal/handler"
	"seller-workspace/internal/layout"
	"seller-workspace/internal/middleware"
	"seller-workspace/internal/preference"
	"seller-workspace/internal/resource"
	"seller-workspace/internal/service"
	"seller-workspace/internal/settings"
	"seller-workspace/internal/store"
	"seller-workspace/internal/translation"
	"seller-workspace/internal/websocket"
	"seller-workspace/pkg/logger"
)

func main() {
	// 加载配置
	cfg, err := config.Load("./configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	// 初始化偏好存储
	prefs, closePrefs, redisCache, err := openPreferences(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Preferences.Driver).Msg("Failed to open preferences")
	}
	log.Info().Str("driver", cfg.Preferences.Driver).Msg("Preferences ready")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// 初始化布局管理器，恢复上次保存的面板宽度
	layoutMgr := layout.NewManager(layout.ConfigFrom(cfg.Layout), prefs)
	restored := layoutMgr.Restore(ctx)
	log.Info().
		Int("buyer_list_width", restored.BuyerListWidth).
		Int("buyer_info_width", restored.BuyerInfoWidth).
		Msg("Layout restored")

	// 初始化 WebSocket Hub
	wsHub := websocket.NewHub(layoutMgr, redisCache)
	go wsHub.Run(ctx) // 在单独的 goroutine 中运行
	go wsHub.RelayRemoteEvents(ctx)

	// 初始化状态容器，状态变更通过 Hub 推送给所有视图
	st := store.New(
		store.WithDelays(cfg.Store.ReplyDelay, cfg.Store.SuggestionDelay),
		store.WithCancelStaleReplies(cfg.Store.CancelStaleReplies),
		store.WithNotifier(wsHub),
	)

	// 初始化 Service 层
	workspace := service.NewWorkspaceService(st)
	agentSettings := settings.NewService(prefs)
	translator := translation.NewService(cfg.Translation.TranslateDelay, cfg.Translation.DetectDelay)
	library := resource.NewLibrary()

	// 初始化 Handler 层
	handlers := &handler.Handlers{
		Buyer:       handler.NewBuyerHandler(workspace),
		Message:     handler.NewMessageHandler(workspace),
		Suggestion:  handler.NewSuggestionHandler(workspace),
		Settings:    handler.NewSettingsHandler(st, agentSettings),
		Translation: handler.NewTranslationHandler(translator),
		Layout:      handler.NewLayoutHandler(layoutMgr, wsHub.NotifyLayout),
		Resource:    handler.NewResourceHandler(library),
	}
	wsHandler := websocket.NewHandler(wsHub, cfg.Server.CORS)

	// 设置 Gin 模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建 Gin 引擎
	router := gin.New()

	// 全局中间件
	router.Use(middleware.RecoveryMiddleware()) // 恢复 panic
	router.Use(middleware.LoggerMiddleware())   // 请求日志
	router.Use(middleware.CORSMiddleware(middleware.CORSConfigForOrigins(cfg.Server.CORS)))

	// 注册路由
	handler.RegisterRoutes(router, handlers)
	wsHandler.RegisterRoutes(router)

	// 创建 HTTP 服务器
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// 在 goroutine 中启动服务器
	go func() {
		log.Info().Str("addr", addr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 创建关闭上下文，设置超时
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 关闭 HTTP 服务器
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// 取消挂起的延迟任务，关闭所有视图连接
	st.Stop()
	stop()

	// 关闭偏好存储
	if err := closePrefs(); err != nil {
		log.Error().Err(err).Msg("Failed to close preferences")
	}

	log.Info().Msg("Server exited")
}

// openPreferences 按配置的驱动打开偏好存储
// 返回:
//   - preference.Store: 偏好存储
//   - func() error: 关闭函数
//   - *cache.RedisCache: 只有 redis 驱动时非 nil，同时用于在线状态和跨实例广播
//   - error: 打开失败
func openPreferences(cfg *config.Config) (preference.Store, func() error, *cache.RedisCache, error) {
	switch cfg.Preferences.Driver {
	case config.DriverMemory:
		return preference.NewMemoryStore(), func() error { return nil }, nil, nil

	case config.DriverBolt:
		db, err := preference.OpenBolt(cfg.Preferences.BoltPath)
		if err != nil {
			return nil, nil, nil, err
		}
		return db, db.Close, nil, nil

	case config.DriverRedis:
		rc, err := cache.NewRedisCache(cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		return rc, rc.Close, rc, nil
	}
	return nil, nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Preferences.Driver)
}
