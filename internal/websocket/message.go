// Package websocket 提供 WebSocket 通信功能
// 把状态变更推送给所有打开的工作台视图，并接收分隔条拖动手势
package websocket

import (
	"time"

	"seller-workspace/internal/layout"
)

// MessageType 消息类型常量
const (
	// 视图 → 服务端
	TypeHeartbeat      = "heartbeat"       // 心跳
	TypeDividerPress   = "divider:press"   // 按下分隔条
	TypeDividerMove    = "divider:move"    // 拖动分隔条
	TypeDividerRelease = "divider:release" // 松开分隔条

	// 服务端 → 视图
	TypeLayoutUpdated = "layout.updated" // 布局变化
	// 状态容器的事件直接使用事件类型作为消息类型，例如 message.created

	// 通用
	TypeError = "error" // 错误消息
	TypePong  = "pong"  // 心跳响应
)

// Message WebSocket 消息结构
// 所有消息都使用这个统一的结构
type Message struct {
	Type      string      `json:"type"`                 // 消息类型
	Payload   interface{} `json:"payload"`              // 消息内容
	Timestamp int64       `json:"timestamp"`            // 时间戳（毫秒）
	MessageID string      `json:"message_id,omitempty"` // 消息ID，用于追踪
}

// NewMessage 创建新消息
func NewMessage(msgType string, payload interface{}) *Message {
	return &Message{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UnixMilli(),
	}
}

// ==================== Payload 类型定义 ====================

// DividerPayload 分隔条手势 Payload
type DividerPayload struct {
	Pane layout.Pane `json:"pane"` // buyer-list / buyer-info
	X    int         `json:"x"`
	Y    int         `json:"y"`
}

// ErrorPayload 错误消息 Payload
type ErrorPayload struct {
	Code    int    `json:"code"`    // 错误码
	Message string `json:"message"` // 错误信息
}

// remoteEnvelope 跨实例广播的事件
// Origin 用于忽略本实例自己发布的事件
type remoteEnvelope struct {
	Origin  string   `json:"origin"`
	Message *Message `json:"message"`
}
