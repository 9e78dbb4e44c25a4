package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"seller-workspace/internal/model"
	"seller-workspace/internal/settings"
	"seller-workspace/internal/store"
	"seller-workspace/pkg/response"
)

// SettingsHandler 设置请求处理器
// AI 设置和用户设置保存在状态容器中，客服 agent 设置持久化在偏好存储中
type SettingsHandler struct {
	store  *store.Store
	agents *settings.Service
}

// NewSettingsHandler 创建 SettingsHandler 实例
func NewSettingsHandler(st *store.Store, agents *settings.Service) *SettingsHandler {
	return &SettingsHandler{store: st, agents: agents}
}

// AddQuestionRequest 添加自定义问题请求
type AddQuestionRequest struct {
	Text string `json:"text"`
}

// GetAISettings 获取 AI 设置
// @Router /api/v1/settings/ai [get]
func (h *SettingsHandler) GetAISettings(c *gin.Context) {
	response.Success(c, h.store.AISettings())
}

// UpdateAISettings 部分更新 AI 设置
// @Router /api/v1/settings/ai [patch]
func (h *SettingsHandler) UpdateAISettings(c *gin.Context) {
	var patch model.AISettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	h.store.UpdateAISettings(patch)
	response.Success(c, h.store.AISettings())
}

// GetUserSettings 获取用户设置
// @Router /api/v1/settings/user [get]
func (h *SettingsHandler) GetUserSettings(c *gin.Context) {
	response.Success(c, h.store.UserSettings())
}

// UpdateUserSettings 浅合并更新用户设置
// @Router /api/v1/settings/user [patch]
func (h *SettingsHandler) UpdateUserSettings(c *gin.Context) {
	var patch model.UserSettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	h.store.UpdateUserSettings(patch)
	response.Success(c, h.store.UserSettings())
}

// GetAgentSettings 获取客服 agent 设置，未保存过时返回默认值
// @Router /api/v1/settings/agent [get]
func (h *SettingsHandler) GetAgentSettings(c *gin.Context) {
	response.Success(c, h.agents.Load(c.Request.Context()))
}

// SaveAgentSettings 保存客服 agent 设置
// @Router /api/v1/settings/agent [put]
func (h *SettingsHandler) SaveAgentSettings(c *gin.Context) {
	var s model.AgentSettings
	if err := c.ShouldBindJSON(&s); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	h.save(c, s)
}

// ResetAgentSettings 恢复默认设置
// @Router /api/v1/settings/agent [delete]
func (h *SettingsHandler) ResetAgentSettings(c *gin.Context) {
	s, err := h.agents.Reset(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SuccessWithMessage(c, "settings reset", s)
}

// AddQuestion 添加自定义买家诉求问题并保存
// @Router /api/v1/settings/agent/questions [post]
func (h *SettingsHandler) AddQuestion(c *gin.Context) {
	var req AddQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	s, ok := settings.AddQuestion(h.agents.Load(c.Request.Context()), req.Text)
	if !ok {
		response.BadRequest(c, "question text must not be empty")
		return
	}
	h.save(c, s)
}

// ToggleQuestion 切换问题的启用状态并保存
// @Router /api/v1/settings/agent/questions/{id}/toggle [post]
func (h *SettingsHandler) ToggleQuestion(c *gin.Context) {
	s := settings.ToggleQuestion(h.agents.Load(c.Request.Context()), c.Param("id"))
	h.save(c, s)
}

// ToggleAutoReply 切换自动回复问题的启用状态并保存
// @Router /api/v1/settings/agent/auto-replies/{id}/toggle [post]
func (h *SettingsHandler) ToggleAutoReply(c *gin.Context) {
	s := settings.ToggleAutoReply(h.agents.Load(c.Request.Context()), c.Param("id"))
	h.save(c, s)
}

func (h *SettingsHandler) save(c *gin.Context, s model.AgentSettings) {
	if err := h.agents.Save(c.Request.Context(), s); err != nil {
		h.handleError(c, err)
		return
	}
	response.SuccessWithMessage(c, "settings saved", s)
}

func (h *SettingsHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, settings.ErrInvalidSettings):
		response.ErrorWithCode(c, 400, response.CodeSettingsInvalid, err.Error())
	case errors.Is(err, settings.ErrSaveFailed):
		response.ErrorWithCode(c, 500, response.CodeSettingsSave, "failed to save settings")
	default:
		response.InternalError(c, "failed to save settings")
	}
}
