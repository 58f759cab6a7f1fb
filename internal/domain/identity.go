package domain

// User is the identity bound to one live connection: the display name the
// client declared and the room it currently occupies. A user exists only
// while its connection is open; there is no persisted account behind it.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Room string `json:"room"`
}
