package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"seller-workspace/internal/cache"
	"seller-workspace/internal/layout"
	"seller-workspace/internal/model"
	"seller-workspace/internal/store"
)

// presenceTimeout 更新 Redis 在线状态的超时时间
const presenceTimeout = 5 * time.Second

// Hub 是 WebSocket 连接的中心管理器
// 负责：
// 1. 管理所有视图连接
// 2. 把状态容器的事件广播给所有视图
// 3. 把分隔条手势转交给布局管理器
// Hub 实现 store.Notifier。
type Hub struct {
	// 已注册的视图连接
	clients map[*Client]bool

	// 注册通道
	register chan *Client

	// 注销通道
	unregister chan *Client

	// done 在 Run 退出后关闭，之后的注册和注销直接丢弃
	done chan struct{}

	// 互斥锁，保护 clients
	mu sync.RWMutex

	// 依赖
	layout *layout.Manager
	cache  *cache.RedisCache // 可以为 nil，此时不做在线状态和跨实例广播

	// instanceID 本实例标识，用于跨实例广播去重
	instanceID string
}

// NewHub 创建 Hub 实例
// 参数:
//   - layoutMgr: 布局管理器，处理分隔条拖动
//   - redisCache: Redis 缓存，为 nil 时只在本实例内广播
func NewHub(layoutMgr *layout.Manager, redisCache *cache.RedisCache) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		layout:     layoutMgr,
		cache:      redisCache,
		instanceID: uuid.NewString(),
	}
}

// Run 启动 Hub 的主循环，ctx 取消后关闭所有连接并退出
// 应该在单独的 goroutine 中运行
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

// registerClient 注册客户端
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	count := len(h.clients)
	h.mu.Unlock()

	if h.cache != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), presenceTimeout)
			defer cancel()
			if err := h.cache.SetViewOnline(ctx, client.id); err != nil {
				log.Warn().Err(err).Str("view_id", client.id).Msg("Failed to set view online")
			}
		}()
	}

	log.Info().Str("view_id", client.id).Int("views", count).Msg("Workspace view registered")
}

// unregisterClient 注销客户端
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	_, exists := h.clients[client]
	delete(h.clients, client)
	h.mu.Unlock()

	if !exists {
		return
	}

	if h.cache != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), presenceTimeout)
			defer cancel()
			if err := h.cache.SetViewOffline(ctx, client.id); err != nil {
				log.Warn().Err(err).Str("view_id", client.id).Msg("Failed to set view offline")
			}
		}()
	}

	client.Close()
	log.Info().Str("view_id", client.id).Msg("Workspace view unregistered")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[*Client]bool)
	h.mu.Unlock()

	for c := range clients {
		c.Close()
	}
}

// Register 注册客户端（供外部调用）
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		client.Close()
	}
}

// Unregister 注销客户端（供外部调用）
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ClientCount 返回已注册的视图数量
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Notify 实现 store.Notifier
// 事件会广播给本实例的所有视图，并在配置了 Redis 时发布给其他实例
func (h *Hub) Notify(evt store.Event) {
	msg := &Message{
		Type:      string(evt.Type),
		Payload:   evt,
		Timestamp: evt.Timestamp.UnixMilli(),
	}
	h.Broadcast(msg)
	h.publish(msg)
}

// NotifyLayout 广播布局变化
func (h *Hub) NotifyLayout(l model.PaneLayout) {
	msg := NewMessage(TypeLayoutUpdated, l)
	h.Broadcast(msg)
	h.publish(msg)
}

// Broadcast 向本实例的所有视图发送消息
func (h *Hub) Broadcast(msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Str("type", msg.Type).Msg("Failed to encode broadcast")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.sendRaw(data)
	}
}

func (h *Hub) publish(msg *Message) {
	if h.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), presenceTimeout)
	defer cancel()
	if err := h.cache.PublishEvent(ctx, remoteEnvelope{Origin: h.instanceID, Message: msg}); err != nil {
		log.Warn().Err(err).Str("type", msg.Type).Msg("Failed to publish event")
	}
}

// RelayRemoteEvents 订阅其他实例发布的事件并转发给本实例的视图
// 阻塞直到 ctx 取消；未配置 Redis 时立即返回
func (h *Hub) RelayRemoteEvents(ctx context.Context) {
	if h.cache == nil {
		return
	}
	sub := h.cache.SubscribeEvents(ctx)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-ch:
			if !ok {
				return
			}
			var env remoteEnvelope
			if err := json.Unmarshal([]byte(m.Payload), &env); err != nil {
				log.Warn().Err(err).Msg("Ignoring malformed remote event")
				continue
			}
			if env.Origin == h.instanceID || env.Message == nil {
				continue
			}
			h.Broadcast(env.Message)
		}
	}
}

// handleHeartbeat 处理心跳消息
func (h *Hub) handleHeartbeat(client *Client) {
	if h.cache == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), presenceTimeout)
		defer cancel()
		if err := h.cache.UpdateViewHeartbeat(ctx, client.id); err != nil {
			log.Warn().Err(err).Str("view_id", client.id).Msg("Failed to update heartbeat")
		}
	}()
}

// resize 调整面板宽度并广播新布局
func (h *Hub) resize(pane layout.Pane, delta int) {
	l, err := h.layout.Resize(context.Background(), pane, delta)
	if err != nil {
		log.Warn().Err(err).Msg("Ignoring resize for unknown pane")
		return
	}
	h.NotifyLayout(l)
}
