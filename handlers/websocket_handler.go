package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Adfay-Inc/Puntus/live"
	"github.com/Adfay-Inc/Puntus/services"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin filtering is handled by the CORS layer; live viewing is
		// public read-only data.
		return true
	},
}

type WebSocketHandler struct {
	hub          *live.Hub
	scrimService services.ScrimService
	logger       *slog.Logger
}

func NewWebSocketHandler(hub *live.Hub, scrimService services.ScrimService, logger *slog.Logger) *WebSocketHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebSocketHandler{hub: hub, scrimService: scrimService, logger: logger}
}

// ServeScrim upgrades the connection and subscribes the client to the
// scrim's live room. Clients connect to /ws/scrims/{scrimID}.
func (h *WebSocketHandler) ServeScrim(w http.ResponseWriter, r *http.Request) {
	scrimID, err := getIDFromURL(r, "scrimID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if _, err := h.scrimService.GetScrimByID(r.Context(), scrimID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed",
			slog.Int("scrim_id", scrimID),
			slog.Any("error", err),
		)
		return
	}

	client := &live.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: live.RoomForScrim(scrimID),
	}
	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
