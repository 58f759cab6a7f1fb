package registry

import (
	"sort"

	"github.com/AdityaSingh6666/Chat-Room/internal/domain"
)

// RoomIndex is a read projection over the registry. Rooms have no storage
// of their own: a room exists exactly as long as some identity names it,
// so every query recomputes from the latest registry snapshot.
type RoomIndex struct {
	registry *Registry
}

func NewRoomIndex(reg *Registry) *RoomIndex {
	return &RoomIndex{registry: reg}
}

// MembersOf returns every identity currently in the room.
func (ix *RoomIndex) MembersOf(room string) []domain.User {
	var members []domain.User
	for _, user := range ix.registry.All() {
		if user.Room == room {
			members = append(members, user)
		}
	}
	return members
}

// ActiveRooms returns the de-duplicated, sorted set of occupied room names.
// A room drops out the instant its last member leaves.
func (ix *RoomIndex) ActiveRooms() []string {
	seen := make(map[string]struct{})
	var rooms []string
	for _, user := range ix.registry.All() {
		if _, ok := seen[user.Room]; ok {
			continue
		}
		seen[user.Room] = struct{}{}
		rooms = append(rooms, user.Room)
	}
	sort.Strings(rooms)
	return rooms
}
