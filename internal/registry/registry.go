// Package registry holds the in-memory identity registry: the single source
// of truth mapping live connections to their (name, room) pair, plus the
// room index derived from it. State lives for the lifetime of the process.
package registry

import (
	"sync"

	"github.com/AdityaSingh6666/Chat-Room/internal/domain"
)

// Registry maps connection IDs to user identities. Entries are replaced
// wholesale on room changes so readers never observe a half-updated user.
type Registry struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func New() *Registry {
	return &Registry{users: make(map[string]domain.User)}
}

// Upsert binds the identity to the connection, replacing any prior entry
// for the same connection ID in one step.
func (r *Registry) Upsert(connID, name, room string) domain.User {
	user := domain.User{ID: connID, Name: name, Room: room}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[connID] = user
	return user
}

// Remove deletes the identity for the connection. Removing an absent
// connection is a no-op.
func (r *Registry) Remove(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, connID)
}

// Get returns the identity bound to the connection, if any.
func (r *Registry) Get(connID string) (domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[connID]
	return user, ok
}

// All returns a snapshot of every registered identity.
func (r *Registry) All() []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users
}
