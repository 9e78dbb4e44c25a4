// Package store 是工作台的应用状态容器
// 持有买家、消息、当前选中买家、推荐商品、回复建议和设置，
// 所有视图通过它读取数据、派发动作，并通过 Notifier 订阅变更。
//
// 动作的前置条件不满足时（未选中买家、空内容、未知 ID）一律静默忽略，
// Store 没有错误通道。
package store

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"seller-workspace/internal/mock"
	"seller-workspace/internal/model"
)

// 默认延迟
const (
	DefaultReplyDelay      = 2 * time.Second
	DefaultSuggestionDelay = 500 * time.Millisecond
)

// SellerID 当前商户的发送者标识
const SellerID = "seller-1"

// BuyerReplyContent 模拟买家回复的固定内容
const BuyerReplyContent = "OK, I understand. Thank you for your reply!"

// Store 应用状态容器
type Store struct {
	mu sync.RWMutex

	buyers      []model.Buyer
	messages    []model.Message
	selected    string // 空字符串表示未选中任何买家
	catalog     []model.ProductInfo
	recommended []string
	suggestions []model.ReplySuggestion
	aiSettings  model.AISettings
	user        model.UserSettings

	scheduler          Scheduler
	notifier           Notifier
	now                func() time.Time
	entropy            *ulid.MonotonicEntropy
	replyDelay         time.Duration
	suggestionDelay    time.Duration
	cancelStaleReplies bool
}

// Option Store 的可选配置
type Option func(*Store)

// WithScheduler 指定延迟任务调度器
func WithScheduler(s Scheduler) Option {
	return func(st *Store) { st.scheduler = s }
}

// WithNotifier 指定状态变更的接收方
func WithNotifier(n Notifier) Option {
	return func(st *Store) { st.notifier = n }
}

// WithClock 指定时间来源
func WithClock(now func() time.Time) Option {
	return func(st *Store) { st.now = now }
}

// WithDelays 指定模拟回复延迟和建议重新生成延迟
func WithDelays(reply, suggestion time.Duration) Option {
	return func(st *Store) {
		st.replyDelay = reply
		st.suggestionDelay = suggestion
	}
}

// WithCancelStaleReplies 切换买家时取消上一个买家尚未送达的模拟回复
// 默认关闭：回复任务即使在切换会话后也会照常执行
func WithCancelStaleReplies(enabled bool) Option {
	return func(st *Store) { st.cancelStaleReplies = enabled }
}

// WithSeed 替换种子数据
func WithSeed(buyers []model.Buyer, catalog []model.ProductInfo, recommendedIDs []string) Option {
	return func(st *Store) {
		st.buyers = buyers
		st.catalog = catalog
		st.recommended = recommendedIDs
	}
}

// New 创建 Store，默认使用 mock 种子数据并选中第一个买家
func New(opts ...Option) *Store {
	s := &Store{
		buyers:          mock.Buyers(),
		messages:        mock.Messages(),
		catalog:         mock.Products(),
		recommended:     append([]string(nil), mock.RecommendedProductIDs...),
		aiSettings:      DefaultAISettings(),
		user:            DefaultUserSettings(),
		notifier:        discardNotifier{},
		now:             time.Now,
		replyDelay:      DefaultReplyDelay,
		suggestionDelay: DefaultSuggestionDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.scheduler == nil {
		s.scheduler = NewTimerScheduler()
	}
	if s.notifier == nil {
		s.notifier = discardNotifier{}
	}
	s.entropy = ulid.Monotonic(rand.New(rand.NewSource(s.now().UnixNano())), 0)
	if len(s.buyers) > 0 {
		s.selected = s.buyers[0].ID
	}
	return s
}

// DefaultAISettings 返回默认 AI 设置
func DefaultAISettings() model.AISettings {
	return model.AISettings{
		Enabled:            true,
		AutoReply:          false,
		SupportedLanguages: []string{"en", "es", "fr", "ja", "zh"},
		CustomPrompts:      []string{},
		SelectedQuestions:  []string{"Product Specifications", "Pricing Inquiries", "Shipping Time", "Payment Methods"},
	}
}

// DefaultUserSettings 返回默认用户设置
func DefaultUserSettings() model.UserSettings {
	return model.UserSettings{
		Language: "en",
		Notifications: model.Notifications{
			Email:   true,
			Browser: true,
			Mobile:  false,
		},
		AISettings: DefaultAISettings(),
		Theme:      model.ThemeLight,
	}
}

// Stop 取消所有挂起的延迟任务
func (s *Store) Stop() {
	s.scheduler.Stop()
}

// ==================== 动作 ====================

// SelectBuyer 选中买家
// 同时清零该买家的未读数，并在短暂延迟后为其重新生成回复建议。
// 不存在的 ID 同样会被接受，视图会显示空状态。
func (s *Store) SelectBuyer(buyerID string) {
	s.mu.Lock()
	prev := s.selected
	s.selected = buyerID
	events := []Event{s.event(EventBuyerSelected, buyerID, nil)}
	if s.clearUnreadLocked(buyerID) {
		events = append(events, s.event(EventBuyersUpdated, buyerID, nil))
	}
	s.mu.Unlock()

	if s.cancelStaleReplies && prev != "" && prev != buyerID {
		if n := s.scheduler.Cancel(TaskKey{BuyerID: prev, Kind: TaskReply}); n > 0 {
			log.Debug().Str("buyer_id", prev).Int("cancelled", n).Msg("Cancelled pending replies")
		}
	}

	s.emit(events...)
	s.scheduleSuggestions(buyerID)
}

// ClearUnreadMessages 清零买家的未读数
func (s *Store) ClearUnreadMessages(buyerID string) {
	s.mu.Lock()
	found := s.clearUnreadLocked(buyerID)
	s.mu.Unlock()

	if found {
		s.emit(s.event(EventBuyersUpdated, buyerID, nil))
	}
}

// SendMessage 以卖家身份发送消息
// 未选中买家或内容去除空白后为空时不做任何事。
// 发送后会在 replyDelay 之后模拟一条买家回复。
func (s *Store) SendMessage(content string) {
	if strings.TrimSpace(content) == "" {
		return
	}

	s.mu.Lock()
	buyerID := s.selected
	if buyerID == "" {
		s.mu.Unlock()
		return
	}
	msg := s.newMessageLocked(buyerID, SellerID, model.SenderSeller, content, model.MessageStatusSent)
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	s.emit(s.event(EventMessageCreated, buyerID, msg.Clone()))

	s.scheduler.Schedule(TaskKey{BuyerID: buyerID, Kind: TaskReply}, s.replyDelay, func() {
		s.deliverReply(buyerID)
	})
}

// deliverReply 追加模拟的买家回复
// 按买家 ID 定位，而不是按当前选中的买家
func (s *Store) deliverReply(buyerID string) {
	s.mu.Lock()
	reply := s.newMessageLocked(buyerID, buyerID, model.SenderBuyer, BuyerReplyContent, model.MessageStatusDelivered)
	reply.TranslatedContent = BuyerReplyContent
	s.messages = append(s.messages, reply)

	counts, err := reply.SenderType.CountsAsUnread()
	if err != nil {
		log.Error().Err(err).Str("message_id", reply.ID).Msg("Failed to classify reply")
	}
	for i := range s.buyers {
		b := &s.buyers[i]
		if b.ID != buyerID {
			continue
		}
		b.LastMessage = reply.Content
		b.LastMessageTime = reply.Timestamp
		if s.selected == buyerID {
			b.UnreadCount = 0
		} else if counts {
			b.UnreadCount++
		}
		break
	}
	s.mu.Unlock()

	log.Debug().Str("buyer_id", buyerID).Str("message_id", reply.ID).Msg("Simulated buyer reply delivered")

	s.emit(
		s.event(EventMessageCreated, buyerID, reply.Clone()),
		s.event(EventBuyersUpdated, buyerID, nil),
	)
	s.scheduleSuggestions(buyerID)
}

// SendProduct 向当前买家推荐商品
// 消息携带一个商品附件，附件中是完整的商品快照
func (s *Store) SendProduct(productID string) {
	s.mu.Lock()
	buyerID := s.selected
	if buyerID == "" {
		s.mu.Unlock()
		return
	}
	product, ok := s.productLocked(productID)
	if !ok {
		s.mu.Unlock()
		return
	}

	content := fmt.Sprintf("I would like to recommend our %s. It's priced at %s %s and we have %d units in stock.",
		product.Name, product.Price, product.Currency, product.Stock)
	msg := s.newMessageLocked(buyerID, SellerID, model.SenderSeller, content, model.MessageStatusSent)

	url := ""
	if len(product.Images) > 0 {
		url = product.Images[0]
	}
	snapshot := product.Clone()
	msg.Attachments = []model.Attachment{
		{
			ID:          newAttachmentID(),
			Type:        model.AttachmentProduct,
			URL:         url,
			Name:        product.Name,
			ProductInfo: &snapshot,
		},
	}
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	s.emit(s.event(EventMessageCreated, buyerID, msg.Clone()))
	s.scheduleSuggestions(buyerID)
}

// GenerateReplySuggestions 根据当前买家的资料重新生成回复建议
// 新列表整体替换旧列表
func (s *Store) GenerateReplySuggestions() {
	s.mu.Lock()
	if s.selected == "" {
		s.mu.Unlock()
		return
	}
	buyer, ok := s.buyerLocked(s.selected)
	if !ok {
		s.mu.Unlock()
		return
	}
	s.suggestions = buildSuggestions(buyer)
	buyerID := buyer.ID
	s.mu.Unlock()

	s.emit(s.event(EventSuggestionsUpdated, buyerID, nil))
}

// SendSuggestion 发送一条回复建议的内容
func (s *Store) SendSuggestion(suggestionID string) {
	s.mu.RLock()
	content, found := "", false
	for _, sug := range s.suggestions {
		if sug.ID == suggestionID {
			content, found = sug.Content, true
			break
		}
	}
	s.mu.RUnlock()

	if found {
		s.SendMessage(content)
	}
}

// UpdateAISettings 浅合并 AI 设置
func (s *Store) UpdateAISettings(patch model.AISettingsPatch) {
	s.mu.Lock()
	applyAIPatch(&s.aiSettings, patch)
	s.mu.Unlock()

	s.emit(s.event(EventSettingsUpdated, "", "ai"))
}

// UpdateUserSettings 浅合并用户设置
func (s *Store) UpdateUserSettings(patch model.UserSettingsPatch) {
	s.mu.Lock()
	if patch.Language != nil {
		s.user.Language = *patch.Language
	}
	if patch.Notifications != nil {
		s.user.Notifications = *patch.Notifications
	}
	if patch.AISettings != nil {
		s.user.AISettings = patch.AISettings.Clone()
	}
	if patch.Theme != nil {
		s.user.Theme = *patch.Theme
	}
	s.mu.Unlock()

	s.emit(s.event(EventSettingsUpdated, "", "user"))
}

func applyAIPatch(dst *model.AISettings, patch model.AISettingsPatch) {
	if patch.Enabled != nil {
		dst.Enabled = *patch.Enabled
	}
	if patch.AutoReply != nil {
		dst.AutoReply = *patch.AutoReply
	}
	if patch.SupportedLanguages != nil {
		dst.SupportedLanguages = append([]string(nil), (*patch.SupportedLanguages)...)
	}
	if patch.CustomPrompts != nil {
		dst.CustomPrompts = append([]string(nil), (*patch.CustomPrompts)...)
	}
	if patch.SelectedQuestions != nil {
		dst.SelectedQuestions = append([]string(nil), (*patch.SelectedQuestions)...)
	}
}

// ==================== 查询 ====================
// 查询方法都返回副本，调用方修改不会影响 Store

// Buyers 返回所有买家
func (s *Store) Buyers() []model.Buyer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Buyer, len(s.buyers))
	for i, b := range s.buyers {
		out[i] = b.Clone()
	}
	return out
}

// Buyer 按 ID 查找买家
func (s *Store) Buyer(buyerID string) (model.Buyer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.buyerLocked(buyerID)
	if !ok {
		return model.Buyer{}, false
	}
	return b.Clone(), true
}

// SelectedBuyerID 返回当前选中的买家 ID，未选中时返回空字符串
func (s *Store) SelectedBuyerID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// SelectedBuyer 返回当前选中的买家
func (s *Store) SelectedBuyer() (model.Buyer, bool) {
	return s.Buyer(s.SelectedBuyerID())
}

// Messages 返回全部消息，按插入顺序
func (s *Store) Messages() []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Message, len(s.messages))
	for i, m := range s.messages {
		out[i] = m.Clone()
	}
	return out
}

// MessagesFor 返回某个买家的会话消息
func (s *Store) MessagesFor(buyerID string) []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Message, 0)
	for _, m := range s.messages {
		if m.BuyerID == buyerID {
			out = append(out, m.Clone())
		}
	}
	return out
}

// ReplySuggestions 返回当前的回复建议
func (s *Store) ReplySuggestions() []model.ReplySuggestion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ReplySuggestion{}, s.suggestions...)
}

// Products 返回完整的商品目录
func (s *Store) Products() []model.ProductInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ProductInfo, len(s.catalog))
	for i, p := range s.catalog {
		out[i] = p.Clone()
	}
	return out
}

// RecommendedProducts 返回推荐商品
func (s *Store) RecommendedProducts() []model.ProductInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ProductInfo, 0, len(s.recommended))
	for _, id := range s.recommended {
		if p, ok := s.productLocked(id); ok {
			out = append(out, p.Clone())
		}
	}
	return out
}

// AISettings 返回 AI 设置
func (s *Store) AISettings() model.AISettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.aiSettings.Clone()
}

// UserSettings 返回用户设置
func (s *Store) UserSettings() model.UserSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.user
	out.AISettings = s.user.AISettings.Clone()
	return out
}

// ==================== 内部方法 ====================

func (s *Store) clearUnreadLocked(buyerID string) bool {
	for i := range s.buyers {
		if s.buyers[i].ID == buyerID {
			s.buyers[i].UnreadCount = 0
			return true
		}
	}
	return false
}

func (s *Store) buyerLocked(buyerID string) (model.Buyer, bool) {
	for _, b := range s.buyers {
		if b.ID == buyerID {
			return b, true
		}
	}
	return model.Buyer{}, false
}

func (s *Store) productLocked(productID string) (model.ProductInfo, bool) {
	for _, p := range s.catalog {
		if p.ID == productID {
			return p, true
		}
	}
	return model.ProductInfo{}, false
}

// newMessageLocked 创建消息，调用方需持有写锁（ULID 熵源不是并发安全的）
func (s *Store) newMessageLocked(buyerID, senderID string, senderType model.SenderType, content, status string) model.Message {
	now := s.now()
	return model.Message{
		ID:         ulid.MustNew(ulid.Timestamp(now), s.entropy).String(),
		BuyerID:    buyerID,
		SenderID:   senderID,
		SenderType: senderType,
		Content:    content,
		Timestamp:  now,
		Status:     status,
	}
}

func (s *Store) scheduleSuggestions(buyerID string) {
	s.scheduler.Schedule(TaskKey{BuyerID: buyerID, Kind: TaskSuggestions}, s.suggestionDelay, s.GenerateReplySuggestions)
}

func (s *Store) event(t EventType, buyerID string, payload interface{}) Event {
	return Event{
		Type:      t,
		BuyerID:   buyerID,
		Payload:   payload,
		Timestamp: s.now(),
	}
}

func (s *Store) emit(events ...Event) {
	for _, evt := range events {
		s.notifier.Notify(evt)
	}
}
