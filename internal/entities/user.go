package entities

import "time"

// User is a registered account. Credential handling lives outside this
// service; users exist here so games can validate their participants.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
