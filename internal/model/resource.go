package model

import (
	"time"
)

// ResourceCategory 资料库分类
type ResourceCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ResourceItem 资料库中的一份资料
type ResourceItem struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	CategoryID string    `json:"category_id"`
	FileName   string    `json:"file_name"`
	FileType   string    `json:"file_type"`
	Size       int64     `json:"size"`
	Tags       []string  `json:"tags,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
