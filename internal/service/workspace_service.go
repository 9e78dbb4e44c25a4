// Package service 提供业务逻辑层
// 在状态容器之上组装界面需要的视图数据
package service

import (
	"errors"
	"fmt"

	"seller-workspace/internal/model"
	"seller-workspace/internal/store"
)

// 业务错误定义
var (
	ErrBuyerNotFound   = errors.New("buyer not found")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidLevel    = errors.New("invalid buyer level")
)

// BuyerView 买家列表项
type BuyerView struct {
	model.Buyer
	Flag     string           `json:"flag"`     // 国旗 emoji
	Level    model.BuyerLevel `json:"level"`    // 买家等级
	Selected bool             `json:"selected"` // 是否为当前会话
}

// MessageView 聊天框中渲染的一条消息
type MessageView struct {
	model.Message
	Align model.BubbleAlign `json:"align"`
	Label string            `json:"label"`
}

// Snapshot 动作执行后的工作台快照
// 延迟效果（买家回复、建议刷新）不会出现在快照中，需要通过 WebSocket 事件获取
type Snapshot struct {
	SelectedBuyerID string                  `json:"selected_buyer_id"`
	Buyer           *BuyerView              `json:"buyer,omitempty"`
	Messages        []MessageView           `json:"messages"`
	Suggestions     []model.ReplySuggestion `json:"suggestions"`
}

// WorkspaceService 工作台服务
type WorkspaceService struct {
	store *store.Store
}

// NewWorkspaceService 创建 WorkspaceService 实例
func NewWorkspaceService(st *store.Store) *WorkspaceService {
	return &WorkspaceService{store: st}
}

// Store 返回底层状态容器
func (s *WorkspaceService) Store() *store.Store {
	return s.store
}

// ParseLevel 解析买家等级筛选参数，空字符串视为 all
func ParseLevel(raw string) (model.BuyerLevel, error) {
	switch model.BuyerLevel(raw) {
	case "", model.BuyerLevelAll:
		return model.BuyerLevelAll, nil
	case model.BuyerLevelImportant, model.BuyerLevelSpam:
		return model.BuyerLevel(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidLevel, raw)
}

// ListBuyers 按搜索词和等级筛选买家
func (s *WorkspaceService) ListBuyers(search string, level model.BuyerLevel) []BuyerView {
	selected := s.store.SelectedBuyerID()
	buyers := s.store.FilterBuyers(search, level)

	out := make([]BuyerView, 0, len(buyers))
	for _, b := range buyers {
		out = append(out, newBuyerView(b, selected))
	}
	return out
}

// GetBuyer 获取单个买家
func (s *WorkspaceService) GetBuyer(buyerID string) (*BuyerView, error) {
	b, ok := s.store.Buyer(buyerID)
	if !ok {
		return nil, ErrBuyerNotFound
	}
	view := newBuyerView(b, s.store.SelectedBuyerID())
	return &view, nil
}

// Conversation 返回某个买家的会话消息
// 遇到无法识别的发送方类型时返回错误，而不是按默认样式渲染
func (s *WorkspaceService) Conversation(buyerID string) ([]MessageView, error) {
	msgs := s.store.MessagesFor(buyerID)
	out := make([]MessageView, 0, len(msgs))
	for _, m := range msgs {
		view, err := RenderMessage(m)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

// RenderMessage 计算消息的气泡位置和标签
func RenderMessage(m model.Message) (MessageView, error) {
	align, err := m.SenderType.Align()
	if err != nil {
		return MessageView{}, fmt.Errorf("render message %s: %w", m.ID, err)
	}
	label, err := m.SenderType.Label()
	if err != nil {
		return MessageView{}, fmt.Errorf("render message %s: %w", m.ID, err)
	}
	return MessageView{Message: m, Align: align, Label: label}, nil
}

// SelectBuyer 切换当前会话
func (s *WorkspaceService) SelectBuyer(buyerID string) (*Snapshot, error) {
	s.store.SelectBuyer(buyerID)
	return s.Snapshot()
}

// ClearUnread 清零买家未读数
func (s *WorkspaceService) ClearUnread(buyerID string) (*BuyerView, error) {
	s.store.ClearUnreadMessages(buyerID)
	return s.GetBuyer(buyerID)
}

// SendMessage 向当前买家发送消息
func (s *WorkspaceService) SendMessage(content string) (*Snapshot, error) {
	s.store.SendMessage(content)
	return s.Snapshot()
}

// SendProduct 向当前买家推荐商品
func (s *WorkspaceService) SendProduct(productID string) (*Snapshot, error) {
	s.store.SendProduct(productID)
	return s.Snapshot()
}

// GenerateSuggestions 立即重新生成回复建议
func (s *WorkspaceService) GenerateSuggestions() []model.ReplySuggestion {
	s.store.GenerateReplySuggestions()
	return s.store.ReplySuggestions()
}

// SendSuggestion 发送一条回复建议
func (s *WorkspaceService) SendSuggestion(suggestionID string) (*Snapshot, error) {
	s.store.SendSuggestion(suggestionID)
	return s.Snapshot()
}

// Product 按 ID 查找商品
func (s *WorkspaceService) Product(productID string) (*model.ProductInfo, error) {
	for _, p := range s.store.Products() {
		if p.ID == productID {
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// Snapshot 返回当前会话的快照
func (s *WorkspaceService) Snapshot() (*Snapshot, error) {
	selected := s.store.SelectedBuyerID()
	snap := &Snapshot{
		SelectedBuyerID: selected,
		Messages:        []MessageView{},
		Suggestions:     s.store.ReplySuggestions(),
	}
	if selected == "" {
		return snap, nil
	}

	if b, ok := s.store.Buyer(selected); ok {
		view := newBuyerView(b, selected)
		snap.Buyer = &view
	}
	msgs, err := s.Conversation(selected)
	if err != nil {
		return nil, err
	}
	snap.Messages = msgs
	return snap, nil
}

func newBuyerView(b model.Buyer, selected string) BuyerView {
	return BuyerView{
		Buyer:    b,
		Flag:     store.CountryFlag(b.CountryCode),
		Level:    store.BuyerLevelOf(b.ID),
		Selected: b.ID == selected,
	}
}
