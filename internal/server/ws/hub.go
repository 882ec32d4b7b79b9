package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/inkroute/inkroute/internal/domain/model"
	pkgAuth "github.com/inkroute/inkroute/internal/pkg/auth"
)

const (
	// authTimeout bounds how long a fresh connection may stay unauthenticated.
	authTimeout = 5 * time.Second

	pingInterval   = 30 * time.Second
	pongWait       = 60 * time.Second
	writeWait      = 10 * time.Second
	maxMessageSize = 8192

	sendBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// AuthFunc validates the token from the subscriber's first frame.
type AuthFunc func(token string) (*pkgAuth.Claims, error)

// SnapshotFunc produces the role-filtered order list sent right after a
// successful subscribe, so clients re-render from state instead of diffing.
type SnapshotFunc func(ctx context.Context, userID int64, role model.Role) ([]model.Order, error)

// Client is one authenticated WebSocket subscriber.
type Client struct {
	id     string
	userID int64
	role   model.Role
	conn   *websocket.Conn
	send   chan []byte
	hub    *Hub
}

// Hub fans order events out to connected role surfaces.
type Hub struct {
	clients    map[string]*Client
	mu         sync.RWMutex
	register   chan *Client
	unregister chan *Client
	auth       AuthFunc
	snapshot   SnapshotFunc
	logger     *slog.Logger
}

// NewHub constructs the hub. Run must be started before serving connections.
func NewHub(auth AuthFunc, snapshot SnapshotFunc, logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client, 16),
		unregister: make(chan *Client, 16),
		auth:       auth,
		snapshot:   snapshot,
		logger:     logger,
	}
}

// Run owns the client registry until the context ends.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.id] = client
			h.mu.Unlock()
			h.logger.Info("ws client subscribed",
				slog.Int64("user_id", client.userID), slog.String("role", string(client.role)))
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.id]; ok {
				delete(h.clients, client.id)
				close(client.send)
			}
			h.mu.Unlock()
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, client := range h.clients {
		close(client.send)
		delete(h.clients, id)
	}
}

// envelope is the wire frame for every push.
type envelope struct {
	Type   string            `json:"type"`
	Event  *model.OrderEvent `json:"event,omitempty"`
	Orders []model.Order     `json:"orders,omitempty"`
}

// Publish routes one order event to its audience: the order's participants,
// every admin, and for ready announcements the whole rider feed.
func (h *Hub) Publish(event model.OrderEvent) {
	if event.Order == nil {
		return
	}
	payload, err := json.Marshal(envelope{Type: "order_event", Event: &event})
	if err != nil {
		h.logger.Error("marshal order event", slog.String("error", err.Error()))
		return
	}

	recipients := map[int64]struct{}{
		event.Order.CustomerID:   {},
		event.Order.VendorUserID: {},
	}
	if event.Order.RiderID != nil {
		recipients[*event.Order.RiderID] = struct{}{}
	}
	riderFeed := event.Type == model.EventOrderReady

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		_, participant := recipients[client.userID]
		if !participant && client.role != model.RoleAdmin && !(riderFeed && client.role == model.RoleRider) {
			continue
		}
		h.deliver(client, payload)
	}
}

// deliver drops slow consumers instead of blocking the publisher.
func (h *Hub) deliver(client *Client, payload []byte) {
	select {
	case client.send <- payload:
	default:
		h.logger.Warn("ws send buffer full, dropping client", slog.Int64("user_id", client.userID))
		select {
		case h.unregister <- client:
		default:
		}
	}
}

// ConnectedUsers reports which of the given user ids have a live socket.
func (h *Hub) ConnectedUsers(userIDs ...int64) []int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	online := make(map[int64]struct{})
	for _, client := range h.clients {
		online[client.userID] = struct{}{}
	}
	var result []int64
	for _, id := range userIDs {
		if _, ok := online[id]; ok {
			result = append(result, id)
		}
	}
	return result
}

// ServeWS upgrades the request and performs the auth-first handshake: the
// client's opening frame must carry its token.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("ws upgrade failed", slog.String("error", err.Error()))
		return
	}

	_ = conn.SetReadDeadline(time.Now().Add(authTimeout))

	var authMsg struct {
		Token string `json:"token"`
	}
	if err := conn.ReadJSON(&authMsg); err != nil {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseProtocolError, "auth timeout"))
		_ = conn.Close()
		return
	}

	claims, err := h.auth(authMsg.Token)
	if err != nil {
		_ = conn.WriteJSON(map[string]string{"error": "invalid token"})
		_ = conn.Close()
		return
	}

	client := &Client{
		id:     uuid.NewString(),
		userID: claims.UserID,
		role:   claims.Role,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		hub:    h,
	}

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Queue the snapshot before the client is visible to the registry: the
	// send channel is still private here, so registry shutdown cannot close
	// it mid-send, and the snapshot always precedes the first delta.
	if h.snapshot != nil {
		orders, err := h.snapshot(r.Context(), claims.UserID, claims.Role)
		if err != nil {
			h.logger.Error("ws snapshot failed",
				slog.Int64("user_id", claims.UserID), slog.String("error", err.Error()))
		} else if payload, err := json.Marshal(envelope{Type: "snapshot", Orders: orders}); err == nil {
			h.deliver(client, payload)
		}
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump drains the socket until the peer goes away. Inbound frames beyond
// the auth handshake are ignored; all writes flow through HTTP.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Debug("ws read error", slog.String("error", err.Error()))
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
