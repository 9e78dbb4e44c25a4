// Package model 定义了工作台中共享的数据结构
package model

import (
	"fmt"
	"time"
)

// SenderType 消息发送方类型
// 这是一个封闭的枚举：新增类型时必须同时补全所有 switch 分支
type SenderType string

const (
	SenderBuyer  SenderType = "buyer"  // 买家
	SenderSeller SenderType = "seller" // 卖家（当前商户）
	SenderSystem SenderType = "system" // 系统消息
	SenderAI     SenderType = "ai"     // AI 助手
)

// MessageStatus 消息状态常量
const (
	MessageStatusSent      = "sent"
	MessageStatusDelivered = "delivered"
	MessageStatusRead      = "read"
)

// AttachmentType 附件类型常量
const (
	AttachmentImage    = "image"
	AttachmentDocument = "document"
	AttachmentProduct  = "product"
)

// Attachment 消息附件
// 商品附件会携带完整的商品快照
type Attachment struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	URL         string       `json:"url"`
	Name        string       `json:"name"`
	Size        int64        `json:"size,omitempty"`
	ProductInfo *ProductInfo `json:"product_info,omitempty"`
}

// Message 会话中的一条消息
// 消息创建后只追加，不修改也不删除
type Message struct {
	// ID 消息唯一标识（ULID，字典序即插入顺序）
	ID string `json:"id"`

	// BuyerID 所属买家
	BuyerID string `json:"buyer_id"`

	// SenderID 发送者标识，卖家固定为 "seller-1"
	SenderID   string     `json:"sender_id"`
	SenderType SenderType `json:"sender_type"`

	Content           string `json:"content"`
	TranslatedContent string `json:"translated_content,omitempty"`

	Timestamp time.Time `json:"timestamp"`

	// Status sent / delivered / read
	Status string `json:"status"`

	Attachments []Attachment `json:"attachments,omitempty"`
}

// Clone 返回消息的深拷贝
func (m Message) Clone() Message {
	out := m
	if m.Attachments != nil {
		out.Attachments = make([]Attachment, len(m.Attachments))
		for i, a := range m.Attachments {
			if a.ProductInfo != nil {
				p := a.ProductInfo.Clone()
				a.ProductInfo = &p
			}
			out.Attachments[i] = a
		}
	}
	return out
}

// BubbleAlign 消息气泡在聊天框中的位置
type BubbleAlign string

const (
	AlignLeft   BubbleAlign = "left"
	AlignRight  BubbleAlign = "right"
	AlignCenter BubbleAlign = "center"
)

// Align 返回该发送方类型的气泡位置
func (t SenderType) Align() (BubbleAlign, error) {
	switch t {
	case SenderBuyer:
		return AlignLeft, nil
	case SenderSeller:
		return AlignRight, nil
	case SenderSystem:
		return AlignCenter, nil
	case SenderAI:
		return AlignRight, nil
	}
	return "", fmt.Errorf("unknown sender type %q", string(t))
}

// Label 返回该发送方类型在界面上的标签
func (t SenderType) Label() (string, error) {
	switch t {
	case SenderBuyer:
		return "Buyer", nil
	case SenderSeller:
		return "You", nil
	case SenderSystem:
		return "System", nil
	case SenderAI:
		return "AI Assistant", nil
	}
	return "", fmt.Errorf("unknown sender type %q", string(t))
}

// CountsAsUnread 该类型的消息是否计入卖家的未读数
func (t SenderType) CountsAsUnread() (bool, error) {
	switch t {
	case SenderBuyer:
		return true, nil
	case SenderSeller, SenderSystem, SenderAI:
		return false, nil
	}
	return false, fmt.Errorf("unknown sender type %q", string(t))
}
