// Package handler 提供 HTTP 请求处理器
package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"seller-workspace/internal/service"
	"seller-workspace/pkg/response"
)

// BuyerHandler 买家列表请求处理器
type BuyerHandler struct {
	workspace *service.WorkspaceService
}

// NewBuyerHandler 创建 BuyerHandler 实例
func NewBuyerHandler(workspace *service.WorkspaceService) *BuyerHandler {
	return &BuyerHandler{workspace: workspace}
}

// ListBuyers 获取买家列表
// @Summary 获取买家列表
// @Description 按名称或国家搜索，并按等级筛选（all / important / spam）
// @Tags 买家
// @Produce json
// @Param search query string false "搜索词"
// @Param level query string false "买家等级"
// @Success 200 {object} response.Response{data=[]service.BuyerView}
// @Router /api/v1/buyers [get]
func (h *BuyerHandler) ListBuyers(c *gin.Context) {
	level, err := service.ParseLevel(c.Query("level"))
	if err != nil {
		response.BadRequest(c, "invalid level")
		return
	}

	response.Success(c, h.workspace.ListBuyers(c.Query("search"), level))
}

// GetBuyer 获取买家详情
// @Router /api/v1/buyers/{id} [get]
func (h *BuyerHandler) GetBuyer(c *gin.Context) {
	buyer, err := h.workspace.GetBuyer(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, buyer)
}

// SelectBuyer 切换当前会话
// 不存在的买家同样会被选中，返回的快照为空状态
// @Router /api/v1/buyers/{id}/select [post]
func (h *BuyerHandler) SelectBuyer(c *gin.Context) {
	snap, err := h.workspace.SelectBuyer(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Accepted(c, snap)
}

// ClearUnread 清零买家未读数
// 未知买家不做任何事，data 为 null
// @Router /api/v1/buyers/{id}/clear-unread [post]
func (h *BuyerHandler) ClearUnread(c *gin.Context) {
	buyer, err := h.workspace.ClearUnread(c.Param("id"))
	if err != nil && !errors.Is(err, service.ErrBuyerNotFound) {
		h.handleError(c, err)
		return
	}
	response.Accepted(c, buyer)
}

func (h *BuyerHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBuyerNotFound):
		response.NotFound(c, response.CodeBuyerNotFound, "buyer not found")
	default:
		response.InternalError(c, "failed to load conversation")
	}
}
