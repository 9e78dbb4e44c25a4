// Package preference 保存界面偏好等少量本地状态
// 例如面板宽度和 agent 设置，值一律按字符串存取
package preference

import (
	"context"
	"errors"
	"sync"
)

// 偏好键
const (
	KeyBuyerListWidth = "buyerListWidth"
	KeyBuyerInfoWidth = "buyerInfoWidth"
	KeyAISettings     = "aiSettings"
)

// ErrClosed 存储已关闭
var ErrClosed = errors.New("preference store closed")

// Store 偏好存储
// Get 在键不存在时返回 ok=false 且 err=nil
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore 基于 map 的偏好存储
// 用于测试，以及没有配置持久化驱动时的兜底
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get 实现 Store
func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set 实现 Store
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Delete 实现 Store
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
