package entities

import "time"

// Role is the single role carried by a user. Roles form a strict hierarchy;
// the ordering lives in the permissions package, not here.
type Role string

const (
	RoleStakeholder    Role = "stakeholder"
	RoleTeamMember     Role = "team_member"
	RoleProjectManager Role = "project_manager"
	RoleAdmin          Role = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleStakeholder, RoleTeamMember, RoleProjectManager, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
