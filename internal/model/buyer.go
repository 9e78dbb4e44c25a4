// Package model 定义了工作台中共享的数据结构
// 这些结构体只描述数据形状，不包含业务行为
package model

import (
	"time"
)

// BuyerStatus 买家状态常量
const (
	BuyerStatusActive   = "active"   // 活跃
	BuyerStatusInactive = "inactive" // 不活跃
)

// BuyerLevel 买家等级，用于买家列表筛选
type BuyerLevel string

const (
	BuyerLevelAll       BuyerLevel = "all"       // 全部（普通买家）
	BuyerLevelImportant BuyerLevel = "important" // 重要客户
	BuyerLevelSpam      BuyerLevel = "spam"      // 垃圾信息
)

// PurchaseInfo 买家的采购意向
type PurchaseInfo struct {
	Products           []string `json:"products"`            // 意向商品
	Quantity           int      `json:"quantity"`            // 采购数量
	DestinationCountry string   `json:"destination_country"` // 目的国家
	Budget             string   `json:"budget"`              // 预算，例如 "$5000"
}

// Buyer 跨境买家
// 由种子数据初始化，运行时只会原地修改未读数和最后一条消息
type Buyer struct {
	// ID 买家唯一标识
	ID string `json:"id"`

	// Name 买家姓名
	Name string `json:"name"`

	// Avatar 头像地址
	Avatar string `json:"avatar"`

	// Country 国家名称，CountryCode 为两位国家代码（用于生成国旗）
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`

	// Language 买家使用的语言名称，例如 "Spanish"
	Language string `json:"language"`

	// LastMessage 最后一条消息及其时间
	LastMessage     string    `json:"last_message"`
	LastMessageTime time.Time `json:"last_message_time"`

	// UnreadCount 未读消息数，始终 >= 0
	UnreadCount int `json:"unread_count"`

	PurchaseInfo       PurchaseInfo `json:"purchase_info"`
	CommunicationFocus []string     `json:"communication_focus"`

	// Status active / inactive
	Status string `json:"status"`

	Online        bool    `json:"online"`
	OrderCount    int     `json:"order_count,omitempty"`
	TotalSpent    float64 `json:"total_spent,omitempty"`
	CustomerSince string  `json:"customer_since,omitempty"`
}

// Clone 返回买家的深拷贝，切片字段不与原值共享
func (b Buyer) Clone() Buyer {
	out := b
	out.PurchaseInfo.Products = append([]string(nil), b.PurchaseInfo.Products...)
	out.CommunicationFocus = append([]string(nil), b.CommunicationFocus...)
	return out
}
