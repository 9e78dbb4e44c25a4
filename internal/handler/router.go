package handler

import (
	"github.com/gin-gonic/gin"

	"seller-workspace/pkg/response"
)

// Handlers 所有 HTTP 处理器
type Handlers struct {
	Buyer       *BuyerHandler
	Message     *MessageHandler
	Suggestion  *SuggestionHandler
	Settings    *SettingsHandler
	Translation *TranslationHandler
	Layout      *LayoutHandler
	Resource    *ResourceHandler
}

// RegisterRoutes 注册 /health 和 /api/v1 下的全部路由
func RegisterRoutes(router *gin.Engine, h *Handlers) {
	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// 买家
	buyers := v1.Group("/buyers")
	{
		buyers.GET("", h.Buyer.ListBuyers)
		buyers.GET("/:id", h.Buyer.GetBuyer)
		buyers.POST("/:id/select", h.Buyer.SelectBuyer)
		buyers.POST("/:id/clear-unread", h.Buyer.ClearUnread)
	}

	// 消息和商品
	v1.GET("/messages", h.Message.ListMessages)
	v1.POST("/messages", h.Message.SendMessage)
	products := v1.Group("/products")
	{
		products.GET("", h.Message.ListProducts)
		products.GET("/recommended", h.Message.RecommendedProducts)
		products.GET("/:id", h.Message.GetProduct)
		products.POST("/:id/send", h.Message.SendProduct)
	}

	// 回复建议
	suggestions := v1.Group("/suggestions")
	{
		suggestions.GET("", h.Suggestion.ListSuggestions)
		suggestions.POST("/generate", h.Suggestion.GenerateSuggestions)
		suggestions.POST("/:id/send", h.Suggestion.SendSuggestion)
	}

	// 设置
	settings := v1.Group("/settings")
	{
		settings.GET("/ai", h.Settings.GetAISettings)
		settings.PATCH("/ai", h.Settings.UpdateAISettings)
		settings.GET("/user", h.Settings.GetUserSettings)
		settings.PATCH("/user", h.Settings.UpdateUserSettings)
		settings.GET("/agent", h.Settings.GetAgentSettings)
		settings.PUT("/agent", h.Settings.SaveAgentSettings)
		settings.DELETE("/agent", h.Settings.ResetAgentSettings)
		settings.POST("/agent/questions", h.Settings.AddQuestion)
		settings.POST("/agent/questions/:id/toggle", h.Settings.ToggleQuestion)
		settings.POST("/agent/auto-replies/:id/toggle", h.Settings.ToggleAutoReply)
	}

	// 翻译
	v1.POST("/translate", h.Translation.Translate)
	v1.POST("/detect-language", h.Translation.DetectLanguage)
	v1.GET("/languages/:name", h.Translation.LanguageCode)

	// 布局
	layout := v1.Group("/layout")
	{
		layout.GET("", h.Layout.GetLayout)
		layout.POST("/resize", h.Layout.Resize)
		layout.POST("/viewport", h.Layout.ApplyViewport)
		layout.POST("/toggle/:pane", h.Layout.Toggle)
	}

	// 资料库
	resources := v1.Group("/resources")
	{
		resources.GET("", h.Resource.ListItems)
		resources.GET("/categories", h.Resource.ListCategories)
		resources.POST("/categories", h.Resource.AddCategory)
		resources.POST("/categories/:id/upload", h.Resource.Upload)
	}
}
