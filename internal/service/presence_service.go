package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/AdityaSingh6666/Chat-Room/internal/audit"
	"github.com/AdityaSingh6666/Chat-Room/internal/domain"
	"github.com/AdityaSingh6666/Chat-Room/internal/registry"
	"github.com/AdityaSingh6666/Chat-Room/pkg/log"
)

type presenceService struct {
	registry *registry.Registry
	rooms    *registry.RoomIndex
	router   Router

	// Serializes every transition end to end, so the multi-step enterRoom
	// broadcast sequence is never interleaved with another transition and
	// no reader sees a user in two rooms or none.
	mu sync.Mutex
}

func NewPresenceService(reg *registry.Registry, rooms *registry.RoomIndex, router Router) PresenceService {
	return &presenceService{
		registry: reg,
		rooms:    rooms,
		router:   router,
	}
}

// HandleConnect greets the new connection privately. No identity exists
// yet, so no roster or room-list updates fire.
func (s *presenceService) HandleConnect(ctx context.Context, connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.router.SendTo(connID, domain.NewAdminMessage("Welcome to the Chat App !!"))
	audit.Log(ctx, audit.ActionConnect, connID, "client connected")
}

// HandleEnterRoom moves the connection into a room, treating a switch (and
// a re-entry of the same room) as a full leave plus join. Broadcast order:
// old room's leave notice and refreshed roster, then the private welcome,
// join notice, new roster, and the global room list.
func (s *presenceService) HandleEnterRoom(ctx context.Context, connID, name, room string) {
	if name == "" || room == "" {
		log.Ctx(ctx).Debug().Str(log.FieldConnID, connID).Msg("enterRoom refused: missing name or room")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, hadPrev := s.registry.Get(connID)

	if hadPrev {
		s.router.SendToRoom(prev.Room, domain.NewAdminMessage(fmt.Sprintf("%s has left the chat", name)), connID)
	}

	user := s.registry.Upsert(connID, name, room)

	// The old room's roster must be recomputed after the upsert so the
	// departed identity is excluded.
	if hadPrev {
		s.router.SendToRoom(prev.Room, domain.NewUsersList(s.rooms.MembersOf(prev.Room)), "")
	}

	s.router.SendTo(connID, domain.NewAdminMessage(fmt.Sprintf("Welcome to %s chat room", user.Room)))
	s.router.SendToRoom(user.Room, domain.NewAdminMessage(fmt.Sprintf("%s has joined the room", user.Name)), connID)
	s.router.SendToRoom(user.Room, domain.NewUsersList(s.rooms.MembersOf(user.Room)), "")
	s.router.SendToAll(domain.NewRoomList(s.rooms.ActiveRooms()))

	audit.LogWithDetail(ctx, audit.ActionEnterRoom, connID, user.Room, "user entered room")
}

// HandleMessage broadcasts a chat message to the sender's whole room,
// sender included. A sender with no room is a stale event and is dropped.
func (s *presenceService) HandleMessage(ctx context.Context, connID, name, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.registry.Get(connID)
	if !ok {
		log.Ctx(ctx).Debug().Str(log.FieldConnID, connID).Msg("message dropped: sender not in a room")
		return
	}

	s.router.SendToRoom(user.Room, domain.NewMessage(name, text), "")
	audit.LogWithDetail(ctx, audit.ActionMessage, connID, user.Room, "message broadcast")
}

// HandleActivity relays the typing hint to the rest of the sender's room.
// Carries no state; roomless senders are dropped.
func (s *presenceService) HandleActivity(ctx context.Context, connID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.registry.Get(connID)
	if !ok {
		return
	}

	s.router.SendToRoom(user.Room, domain.NewActivity(name), connID)
}

// HandleDisconnect removes the identity and, if one existed, tells the old
// room and refreshes the global room list. Disconnecting before ever
// joining a room produces no broadcasts.
func (s *presenceService) HandleDisconnect(ctx context.Context, connID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.registry.Get(connID)
	s.registry.Remove(connID)
	if !ok {
		return
	}

	s.router.SendToRoom(user.Room, domain.NewAdminMessage(fmt.Sprintf("%s has left the chat", user.Name)), "")
	s.router.SendToRoom(user.Room, domain.NewUsersList(s.rooms.MembersOf(user.Room)), "")
	s.router.SendToAll(domain.NewRoomList(s.rooms.ActiveRooms()))

	audit.LogWithDetail(ctx, audit.ActionDisconnect, connID, user.Room, "user disconnected")
}
