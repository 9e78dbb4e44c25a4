package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"seller-workspace/internal/layout"
	"seller-workspace/internal/model"
	"seller-workspace/pkg/response"
)

// LayoutHandler 三栏布局请求处理器
type LayoutHandler struct {
	layout *layout.Manager
	notify func(model.PaneLayout)
}

// NewLayoutHandler 创建 LayoutHandler 实例
// 参数:
//   - mgr: 布局管理器
//   - notify: 布局变化后的回调，通常是把新布局广播给所有视图，可以为 nil
func NewLayoutHandler(mgr *layout.Manager, notify func(model.PaneLayout)) *LayoutHandler {
	if notify == nil {
		notify = func(model.PaneLayout) {}
	}
	return &LayoutHandler{layout: mgr, notify: notify}
}

// ResizeRequest 调整面板宽度请求
type ResizeRequest struct {
	Pane  layout.Pane `json:"pane"`
	Delta int         `json:"delta"`
}

// ViewportRequest 视口宽度变化请求
type ViewportRequest struct {
	Width int `json:"width"`
}

// GetLayout 获取当前布局
// @Router /api/v1/layout [get]
func (h *LayoutHandler) GetLayout(c *gin.Context) {
	response.Success(c, h.layout.Layout())
}

// Resize 按增量调整面板宽度，结果会被限制在面板的宽度范围内
// @Router /api/v1/layout/resize [post]
func (h *LayoutHandler) Resize(c *gin.Context) {
	var req ResizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	l, err := h.layout.Resize(c.Request.Context(), req.Pane, req.Delta)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.notify(l)
	response.Success(c, l)
}

// ApplyViewport 根据视口宽度显示或隐藏侧栏
// @Router /api/v1/layout/viewport [post]
func (h *LayoutHandler) ApplyViewport(c *gin.Context) {
	var req ViewportRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Width <= 0 {
		response.BadRequest(c, "width must be positive")
		return
	}

	l := h.layout.ApplyViewport(req.Width)
	h.notify(l)
	response.Success(c, l)
}

// Toggle 切换侧栏的显示状态
// @Router /api/v1/layout/toggle/{pane} [post]
func (h *LayoutHandler) Toggle(c *gin.Context) {
	l, err := h.layout.Toggle(layout.Pane(c.Param("pane")))
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.notify(l)
	response.Success(c, l)
}

func (h *LayoutHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, layout.ErrUnknownPane) {
		response.BadRequest(c, "unknown pane")
		return
	}
	response.InternalError(c, "failed to update layout")
}
