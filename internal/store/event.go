package store

import (
	"time"
)

// EventType 状态变更事件类型
type EventType string

const (
	EventBuyerSelected      EventType = "buyer.selected"
	EventBuyersUpdated      EventType = "buyers.updated"
	EventMessageCreated     EventType = "message.created"
	EventSuggestionsUpdated EventType = "suggestions.updated"
	EventSettingsUpdated    EventType = "settings.updated"
)

// Event 状态变更事件
// 视图收到事件后重新读取自己关心的数据
type Event struct {
	Type      EventType   `json:"type"`
	BuyerID   string      `json:"buyer_id,omitempty"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Notifier 接收状态变更事件
// 实现方不能在 Notify 中回调 Store 的写操作
type Notifier interface {
	Notify(evt Event)
}

// NotifierFunc 函数适配器
type NotifierFunc func(evt Event)

// Notify 实现 Notifier
func (f NotifierFunc) Notify(evt Event) {
	f(evt)
}

// MultiNotifier 把事件依次分发给多个接收方
type MultiNotifier []Notifier

// Notify 实现 Notifier
func (m MultiNotifier) Notify(evt Event) {
	for _, n := range m {
		if n != nil {
			n.Notify(evt)
		}
	}
}

type discardNotifier struct{}

func (discardNotifier) Notify(Event) {}
