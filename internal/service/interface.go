package service

import "context"

// PresenceService coordinates the lifecycle of every connection: connect,
// room entry and switching, chat messages, typing activity, disconnect.
type PresenceService interface {
	HandleConnect(ctx context.Context, connID string)
	HandleEnterRoom(ctx context.Context, connID, name, room string)
	HandleMessage(ctx context.Context, connID, name, text string)
	HandleActivity(ctx context.Context, connID, name string)
	HandleDisconnect(ctx context.Context, connID string)
}

// Router is the outbound side of the transport: fire-and-forget delivery to
// one connection, one room, or everyone. Delivery failures are never
// reported back; a dead peer surfaces later as its own disconnect.
type Router interface {
	SendTo(connID string, event any)
	SendToRoom(room string, event any, exclude string)
	SendToAll(event any)
}
