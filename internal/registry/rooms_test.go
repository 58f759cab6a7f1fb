package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomIndex_MembersOf(t *testing.T) {
	reg := New()
	ix := NewRoomIndex(reg)

	reg.Upsert("conn-1", "alice", "lobby")
	reg.Upsert("conn-2", "bob", "lobby")
	reg.Upsert("conn-3", "carol", "games")

	members := ix.MembersOf("lobby")
	require.Len(t, members, 2)
	for _, m := range members {
		assert.Equal(t, "lobby", m.Room)
	}

	assert.Empty(t, ix.MembersOf("nowhere"))
}

func TestRoomIndex_MembersReflectSwitch(t *testing.T) {
	reg := New()
	ix := NewRoomIndex(reg)

	reg.Upsert("conn-1", "alice", "lobby")
	reg.Upsert("conn-1", "alice", "games")

	assert.Empty(t, ix.MembersOf("lobby"))
	require.Len(t, ix.MembersOf("games"), 1)
}

func TestRoomIndex_ActiveRooms(t *testing.T) {
	reg := New()
	ix := NewRoomIndex(reg)

	assert.Empty(t, ix.ActiveRooms())

	reg.Upsert("conn-1", "alice", "lobby")
	reg.Upsert("conn-2", "bob", "lobby")
	reg.Upsert("conn-3", "carol", "games")

	assert.Equal(t, []string{"games", "lobby"}, ix.ActiveRooms())
}

func TestRoomIndex_RoomDisappearsWithLastMember(t *testing.T) {
	reg := New()
	ix := NewRoomIndex(reg)

	reg.Upsert("conn-1", "alice", "lobby")
	require.Equal(t, []string{"lobby"}, ix.ActiveRooms())

	reg.Remove("conn-1")
	assert.Empty(t, ix.ActiveRooms())
}
