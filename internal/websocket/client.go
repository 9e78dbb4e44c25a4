package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"seller-workspace/internal/layout"
	"seller-workspace/pkg/response"
)

// Client 表示一个工作台视图的 WebSocket 连接
type Client struct {
	id   string          // 连接ID
	hub  *Hub            // 所属的 Hub
	conn *websocket.Conn // WebSocket 连接
	send chan []byte     // 发送消息的通道

	// 每个分隔条一个手势跟踪器，只在 ReadPump 中访问
	trackers map[layout.Pane]*layout.DragTracker

	closeOnce sync.Once
	closed    chan struct{}
}

// 连接配置常量
const (
	// 写超时时间
	writeWait = 10 * time.Second

	// 等待 Pong 响应的超时时间
	pongWait = 60 * time.Second

	// 发送 Ping 的间隔（必须小于 pongWait）
	pingPeriod = (pongWait * 9) / 10

	// 消息最大大小（64KB）
	maxMessageSize = 64 * 1024
)

// NewClient 创建新的客户端
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	c := &Client{
		id:     uuid.NewString(),
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 256),
		closed: make(chan struct{}),
	}
	c.trackers = map[layout.Pane]*layout.DragTracker{
		layout.PaneBuyerList: layout.NewDragTracker(layout.Horizontal, func(delta int) {
			hub.resize(layout.PaneBuyerList, delta)
		}),
		layout.PaneBuyerInfo: layout.NewDragTracker(layout.Horizontal, func(delta int) {
			hub.resize(layout.PaneBuyerInfo, delta)
		}),
	}
	return c
}

// ID 返回连接ID
func (c *Client) ID() string {
	return c.id
}

// ReadPump 读取 WebSocket 消息的 goroutine
// 每个客户端连接启动一个 ReadPump
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))

	// 每次收到 Pong，重置读取超时
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("view_id", c.id).Msg("WebSocket read error")
			}
			break
		}

		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Warn().Err(err).Str("view_id", c.id).Msg("Failed to parse message")
			c.sendError(response.CodeBadRequest, "invalid message")
			continue
		}

		c.handleMessage(&msg)
	}
}

// WritePump 写入 WebSocket 消息的 goroutine
// 负责从 send 通道读取消息并写入 WebSocket，同时定期发送 Ping
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.closed:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

// SendMessage 向客户端发送消息
func (c *Client) SendMessage(msg *Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	c.sendRaw(data)
	return nil
}

// sendRaw 非阻塞发送，缓冲区满时丢弃
func (c *Client) sendRaw(data []byte) {
	select {
	case <-c.closed:
		return
	default:
	}

	select {
	case c.send <- data:
	default:
		log.Warn().Str("view_id", c.id).Msg("Client send buffer full, dropping message")
	}
}

func (c *Client) sendError(code int, message string) {
	c.SendMessage(NewMessage(TypeError, &ErrorPayload{Code: code, Message: message}))
}

// inboundMessage 视图发来的消息，Payload 延迟解析
type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// handleMessage 处理接收到的消息
func (c *Client) handleMessage(msg *inboundMessage) {
	switch msg.Type {
	case TypeHeartbeat:
		c.hub.handleHeartbeat(c)
		c.SendMessage(NewMessage(TypePong, nil))

	case TypeDividerPress, TypeDividerMove, TypeDividerRelease:
		var p DividerPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			c.sendError(response.CodeBadRequest, "invalid divider payload")
			return
		}
		tracker, ok := c.trackers[p.Pane]
		if !ok {
			c.sendError(response.CodeBadRequest, "unknown pane")
			return
		}
		switch msg.Type {
		case TypeDividerPress:
			tracker.Press(p.X, p.Y)
		case TypeDividerMove:
			tracker.Move(p.X, p.Y)
		case TypeDividerRelease:
			tracker.Release()
		}

	default:
		log.Debug().Str("type", msg.Type).Msg("Unknown message type")
		c.sendError(response.CodeBadRequest, "unknown message type")
	}
}

// Close 关闭客户端连接，可以重复调用
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.closed)
	})
}
