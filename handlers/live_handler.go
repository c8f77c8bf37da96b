package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/passa-a-bola/platform/live"
	"github.com/passa-a-bola/platform/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The SPA is served from a different origin in every deployment;
		// access control happens at the API layer, not here.
		return true
	},
}

type LiveHandler struct {
	hub                 *live.Hub
	registrationService *services.RegistrationService
	logger              *slog.Logger
}

func NewLiveHandler(hub *live.Hub, rs *services.RegistrationService, logger *slog.Logger) *LiveHandler {
	return &LiveHandler{hub: hub, registrationService: rs, logger: logger}
}

// ServeWs upgrades the connection and attaches it to the capacity feed.
// The current capacity snapshot is sent immediately so the page renders
// without waiting for the next registration.
func (h *LiveHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("failed to upgrade live connection", slog.Any("error", err))
		return
	}

	var initial []byte
	if state, err := h.registrationService.Capacity(r.Context()); err == nil {
		initial, _ = json.Marshal(live.Message{Type: live.TypeCapacityUpdated, Payload: state})
	} else {
		h.logger.Error("failed to load capacity snapshot for live client", slog.Any("error", err))
	}

	client := live.NewClient(h.hub, conn)
	client.Register(initial)
}
