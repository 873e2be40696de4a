package realtime

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"bidtrack/internal/domain/entities"
	"bidtrack/internal/usecase/interfaces"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for dev simplicity
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client represents a single connected WebSocket client
type Client struct {
	Hub  *Hub
	Conn *websocket.Conn
	Send chan []byte
}

// Hub maintains the set of active clients and pushes notification events to
// them as workflow transitions land. Dashboards subscribe via GET /ws?token=.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex // lock just in case if doing manual iter
	log        zerolog.Logger
}

var _ interfaces.IRealtimeBroadcaster = (*Hub)(nil)

// notificationMessage is the JSON envelope pushed to connected clients.
type notificationMessage struct {
	Type string                `json:"type"`
	Data entities.Notification `json:"data"`
}

// NewHub initializes a new WS Hub instance
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		log:        log,
	}
}

// Run starts the core dispatch loop for WebSocket events
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.log.Debug().Msg("websocket client connected")
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.log.Debug().Msg("websocket client disconnected")
			}
			h.mu.Unlock()
		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastNotification queues a notification for delivery to every connected
// client. It never blocks: when the hub is saturated the event is dropped,
// the persisted notification remains the source of truth.
func (h *Hub) BroadcastNotification(n entities.Notification) {
	data, err := json.Marshal(notificationMessage{Type: "notification", Data: n})
	if err != nil {
		h.log.Warn().Err(err).Str("notification_id", n.ID).Msg("websocket: failed to marshal notification")
		return
	}
	select {
	case h.broadcast <- data:
	default:
		h.log.Debug().Str("notification_id", n.ID).Msg("websocket: broadcast buffer full, dropping event")
	}
}

// writePump handles writing messages from the Hub to the WebSocket connection
func (c *Client) writePump() {
	defer func() {
		_ = c.Conn.Close()
	}()
	for message := range c.Send {
		w, err := c.Conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		_, _ = w.Write(message)

		// Fast track writing queued messages
		n := len(c.Send)
		for i := 0; i < n; i++ {
			_, _ = w.Write([]byte{'\n'})
			_, _ = w.Write(<-c.Send)
		}

		if err := w.Close(); err != nil {
			return
		}
	}
	_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump pumps messages from the WebSocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		_ = c.Conn.Close()
	}()
	for {
		// Just reading to keep connection alive or handle client messages if necessary
		_, _, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.log.Debug().Err(err).Msg("websocket read error")
			}
			break
		}
	}
}

// ServeWS authenticates the peer via the token query param and upgrades the
// connection. Browsers cannot set an Authorization header on the websocket
// handshake, so the token travels as a query parameter.
func ServeWS(hub *Hub, verifier interfaces.ITokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("token")
		if tokenString == "" {
			hub.log.Debug().Msg("websocket connection rejected: missing token")
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		user, err := verifier.Verify(c.Request.Context(), tokenString)
		if err != nil {
			hub.log.Debug().Err(err).Msg("websocket connection rejected: invalid token")
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if !entities.ValidRole(user.Role) {
			hub.log.Debug().Str("role", string(user.Role)).Msg("websocket connection rejected: unknown role")
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			hub.log.Warn().Err(err).Msg("websocket upgrade failed")
			return
		}
		client := &Client{Hub: hub, Conn: conn, Send: make(chan []byte, 256)}
		client.Hub.register <- client

		// Allow collection of memory referenced by the caller by doing all work in new goroutines
		go client.writePump()
		go client.readPump()
	}
}
