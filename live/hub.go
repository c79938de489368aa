package live

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Message is the envelope for every frame pushed to live viewers.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
	ScrimID int         `json:"scrim_id,omitempty"`
}

const (
	MessageLeaderboardUpdate = "LEADERBOARD_UPDATED"
	MessageScrimStatus       = "SCRIM_STATUS_CHANGED"
)

type Client struct {
	Hub      *Hub
	Conn     *websocket.Conn
	Send     chan []byte
	Room     string
	isClosed bool
	mu       sync.Mutex
}

// Hub fans messages out to viewers grouped by scrim room. One goroutine
// owns the register/unregister loop; broadcasts take the read lock only.
type Hub struct {
	Register   chan *Client
	Unregister chan *Client
	rooms      map[string]map[*Client]bool
	mu         sync.RWMutex
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

// RoomForScrim names the hub room that carries one scrim's updates.
func RoomForScrim(scrimID int) string {
	return "scrim:" + strconv.Itoa(scrimID)
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			if _, ok := h.rooms[client.Room]; !ok {
				h.rooms[client.Room] = make(map[*Client]bool)
			}
			h.rooms[client.Room][client] = true
			h.logger.Debug("live client joined",
				slog.String("room", client.Room),
				slog.Int("viewers", len(h.rooms[client.Room])),
			)
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.Room]; ok {
				if _, okClient := clients[client]; okClient {
					client.mu.Lock()
					if !client.isClosed {
						close(client.Send)
						client.isClosed = true
					}
					client.mu.Unlock()
					delete(clients, client)
					if len(clients) == 0 {
						delete(h.rooms, client.Room)
					}
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastToScrim pushes a message to every viewer of the scrim's room.
// Slow clients whose send buffer is full are skipped, not blocked on.
func (h *Hub) BroadcastToScrim(scrimID int, message Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.rooms[RoomForScrim(scrimID)]
	if !ok {
		return
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("failed to marshal live message",
			slog.Int("scrim_id", scrimID),
			slog.Any("error", err),
		)
		return
	}

	for client := range clients {
		client.mu.Lock()
		if client.isClosed {
			client.mu.Unlock()
			continue
		}
		select {
		case client.Send <- messageBytes:
		default:
			h.logger.Warn("dropping frame for slow live client", slog.Int("scrim_id", scrimID))
		}
		client.mu.Unlock()
	}
}

// ViewerCount reports how many clients currently watch the scrim.
func (h *Hub) ViewerCount(scrimID int) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[RoomForScrim(scrimID)])
}

// ReadPump drains inbound frames to keep the connection's pong handler
// running. Viewers are read-only; anything they send is discarded.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error { c.Conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
		c.mu.Lock()
		c.isClosed = true
		c.mu.Unlock()
	}()
	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Flush whatever queued while we held the writer.
			n := len(c.Send)
			for i := 0; i < n; i++ {
				w.Write(<-c.Send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
