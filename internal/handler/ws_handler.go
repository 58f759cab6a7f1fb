// Package handler adapts the websocket transport to the presence
// coordinator: it upgrades connections, assigns connection IDs, and
// dispatches inbound events by their type field.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/AdityaSingh6666/Chat-Room/internal/config"
	"github.com/AdityaSingh6666/Chat-Room/internal/domain"
	"github.com/AdityaSingh6666/Chat-Room/internal/hub"
	"github.com/AdityaSingh6666/Chat-Room/internal/service"
	"github.com/AdityaSingh6666/Chat-Room/pkg/log"
)

type WSHandler struct {
	hub      *hub.Hub
	service  service.PresenceService
	wsCfg    config.WebSocketConfig
	upgrader websocket.Upgrader
}

func NewWSHandler(h *hub.Hub, svc service.PresenceService, cfg *config.Config) *WSHandler {
	origins := newOriginChecker(cfg.Server.AllowedOrigins)

	return &WSHandler{
		hub:     h,
		service: svc,
		wsCfg:   cfg.WebSocket,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     origins.check,
		},
	}
}

func (h *WSHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.L().Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := hub.NewClient(uuid.New().String(), h.hub, conn, h.wsCfg)
	h.hub.Register(client)

	ctx := context.Background()
	h.service.HandleConnect(ctx, client.ID)

	go client.WritePump()
	go func() {
		client.ReadPump(h.handleEvent)
		h.service.HandleDisconnect(ctx, client.ID)
	}()
}

func (h *WSHandler) handleEvent(client *hub.Client, message []byte) {
	var base domain.BaseEvent
	if err := json.Unmarshal(message, &base); err != nil {
		log.L().Debug().Str(log.FieldConnID, client.ID).Err(err).Msg("dropping malformed event")
		return
	}

	ctx := context.Background()

	switch base.Type {
	case domain.EventEnterRoom:
		var evt domain.EnterRoomEvent
		if err := json.Unmarshal(message, &evt); err != nil {
			log.L().Debug().Str(log.FieldConnID, client.ID).Err(err).Msg("dropping malformed enterRoom event")
			return
		}
		h.service.HandleEnterRoom(ctx, client.ID, evt.Name, evt.Room)

	case domain.EventMessage:
		var evt domain.MessageEvent
		if err := json.Unmarshal(message, &evt); err != nil {
			log.L().Debug().Str(log.FieldConnID, client.ID).Err(err).Msg("dropping malformed message event")
			return
		}
		h.service.HandleMessage(ctx, client.ID, evt.Name, evt.Text)

	case domain.EventActivity:
		var evt domain.ActivityEvent
		if err := json.Unmarshal(message, &evt); err != nil {
			log.L().Debug().Str(log.FieldConnID, client.ID).Err(err).Msg("dropping malformed activity event")
			return
		}
		h.service.HandleActivity(ctx, client.ID, evt.Name)

	default:
		log.L().Debug().Str(log.FieldConnID, client.ID).Str("event_type", base.Type).Msg("dropping unknown event type")
	}
}

func (h *WSHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/ws", h.HandleWebSocket)
}
