package handler

import (
	"github.com/gin-gonic/gin"

	"seller-workspace/internal/service"
	"seller-workspace/pkg/response"
)

// SuggestionHandler 回复建议请求处理器
type SuggestionHandler struct {
	workspace *service.WorkspaceService
}

// NewSuggestionHandler 创建 SuggestionHandler 实例
func NewSuggestionHandler(workspace *service.WorkspaceService) *SuggestionHandler {
	return &SuggestionHandler{workspace: workspace}
}

// ListSuggestions 获取当前的回复建议
// @Router /api/v1/suggestions [get]
func (h *SuggestionHandler) ListSuggestions(c *gin.Context) {
	response.Success(c, h.workspace.Store().ReplySuggestions())
}

// GenerateSuggestions 立即为当前买家重新生成回复建议
// @Router /api/v1/suggestions/generate [post]
func (h *SuggestionHandler) GenerateSuggestions(c *gin.Context) {
	response.Success(c, h.workspace.GenerateSuggestions())
}

// SendSuggestion 发送一条回复建议，未知 ID 不做任何事
// @Router /api/v1/suggestions/{id}/send [post]
func (h *SuggestionHandler) SendSuggestion(c *gin.Context) {
	snap, err := h.workspace.SendSuggestion(c.Param("id"))
	if err != nil {
		response.InternalError(c, "failed to render conversation")
		return
	}
	response.Accepted(c, snap)
}
