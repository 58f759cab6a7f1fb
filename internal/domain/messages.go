package domain

import "time"

// WebSocket event types from client.
const (
	EventEnterRoom = "enterRoom"
	EventMessage   = "message"
	EventActivity  = "activity"
)

// WebSocket event types to client.
const (
	EventUsersList = "usersList"
	EventRoomList  = "roomList"
)

// AdminName is the reserved sender name for system notices.
const AdminName = "Admin"

// BaseEvent carries the type discriminator shared by all events.
type BaseEvent struct {
	Type string `json:"type"`
}

// Client -> Server events

type EnterRoomEvent struct {
	Type string `json:"type"`
	Name string `json:"name"`
	Room string `json:"room"`
}

type MessageEvent struct {
	Type string `json:"type"`
	Name string `json:"name"`
	Text string `json:"text"`
}

// ActivityEvent is the typing hint; the same shape goes both directions.
type ActivityEvent struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Server -> Client events

type MessageOut struct {
	Type      string `json:"type"`
	Name      string `json:"name"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type UsersListEvent struct {
	Type  string `json:"type"`
	Users []User `json:"users"`
}

type RoomListEvent struct {
	Type  string   `json:"type"`
	Rooms []string `json:"rooms"`
}

// NewMessage builds an outbound chat message stamped with the current time.
// Provenance is the sender's display name only; nothing ties the message
// back to a connection.
func NewMessage(name, text string) *MessageOut {
	return &MessageOut{
		Type:      EventMessage,
		Name:      name,
		Text:      text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// NewAdminMessage builds a system notice from the reserved Admin sender.
func NewAdminMessage(text string) *MessageOut {
	return NewMessage(AdminName, text)
}

func NewActivity(name string) *ActivityEvent {
	return &ActivityEvent{Type: EventActivity, Name: name}
}

func NewUsersList(users []User) *UsersListEvent {
	if users == nil {
		users = []User{}
	}
	return &UsersListEvent{Type: EventUsersList, Users: users}
}

func NewRoomList(rooms []string) *RoomListEvent {
	if rooms == nil {
		rooms = []string{}
	}
	return &RoomListEvent{Type: EventRoomList, Rooms: rooms}
}
