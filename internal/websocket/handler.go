package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Handler 处理 WebSocket 连接
type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewHandler 创建 WebSocket Handler
// 参数:
//   - hub: 连接管理器
//   - allowedOrigins: 允许的 Origin，为空或包含 "*" 时不做检查
func NewHandler(hub *Hub, allowedOrigins []string) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		// 非浏览器客户端不带 Origin
		return origin == "" || len(set) == 0 || set[origin]
	}
}

// HandleWorkspaceWS 处理工作台视图的 WebSocket 连接
// 路由: GET /ws/workspace
func (h *Handler) HandleWorkspaceWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to upgrade connection")
		return
	}

	client := NewClient(h.hub, conn)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	log.Debug().Str("view_id", client.ID()).Msg("Workspace WebSocket connected")
}

// RegisterRoutes 注册 WebSocket 路由
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	ws := r.Group("/ws")
	{
		ws.GET("/workspace", h.HandleWorkspaceWS)
	}
}
