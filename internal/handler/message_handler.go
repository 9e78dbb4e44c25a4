package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"seller-workspace/internal/service"
	"seller-workspace/pkg/response"
)

// MessageHandler 会话消息和商品推荐请求处理器
type MessageHandler struct {
	workspace *service.WorkspaceService
}

// NewMessageHandler 创建 MessageHandler 实例
func NewMessageHandler(workspace *service.WorkspaceService) *MessageHandler {
	return &MessageHandler{workspace: workspace}
}

// SendMessageRequest 发送消息请求
type SendMessageRequest struct {
	Content string `json:"content"`
}

// ListMessages 获取会话消息
// buyer_id 为空时返回当前会话
// @Summary 获取会话消息
// @Tags 消息
// @Produce json
// @Param buyer_id query string false "买家ID"
// @Success 200 {object} response.Response{data=[]service.MessageView}
// @Router /api/v1/messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	buyerID := c.Query("buyer_id")
	if buyerID == "" {
		buyerID = h.workspace.Store().SelectedBuyerID()
	}

	msgs, err := h.workspace.Conversation(buyerID)
	if err != nil {
		response.InternalError(c, "failed to render conversation")
		return
	}
	response.Success(c, msgs)
}

// SendMessage 以卖家身份向当前买家发送消息
// 空白内容或未选中买家时不做任何事，同样返回 202
// @Router /api/v1/messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	snap, err := h.workspace.SendMessage(req.Content)
	if err != nil {
		response.InternalError(c, "failed to render conversation")
		return
	}
	response.Accepted(c, snap)
}

// SendProduct 向当前买家推荐商品
// 未知商品或未选中买家时不做任何事，同样返回 202
// @Router /api/v1/products/{id}/send [post]
func (h *MessageHandler) SendProduct(c *gin.Context) {
	snap, err := h.workspace.SendProduct(c.Param("id"))
	if err != nil {
		response.InternalError(c, "failed to render conversation")
		return
	}
	response.Accepted(c, snap)
}

// ListProducts 获取商品目录
// @Router /api/v1/products [get]
func (h *MessageHandler) ListProducts(c *gin.Context) {
	response.Success(c, h.workspace.Store().Products())
}

// GetProduct 获取商品详情
// @Router /api/v1/products/{id} [get]
func (h *MessageHandler) GetProduct(c *gin.Context) {
	product, err := h.workspace.Product(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.NotFound(c, response.CodeProductNotFound, "product not found")
			return
		}
		response.InternalError(c, "failed to load product")
		return
	}
	response.Success(c, product)
}

// RecommendedProducts 获取推荐商品
// @Router /api/v1/products/recommended [get]
func (h *MessageHandler) RecommendedProducts(c *gin.Context) {
	response.Success(c, h.workspace.Store().RecommendedProducts())
}
