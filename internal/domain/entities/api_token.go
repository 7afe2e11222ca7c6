package entities

import "time"

// APIToken is an opaque bearer token issued at login and resolved back to a
// user on every authenticated request.
type APIToken struct {
	Token     string    `gorm:"primaryKey;size:64" json:"token"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
