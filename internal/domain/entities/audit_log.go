package entities

import "time"

// AuditAction is the kind of mutation an audit entry records.
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// Entity type labels used in audit entries.
const (
	EntityTypeProject     = "project"
	EntityTypeBudgetItem  = "budget_item"
	EntityTypeProjectPlan = "project_plan"
)

// AuditLog is an append-only record of a mutation. Entries reference their
// subject by id only and must survive its deletion; the application never
// updates or deletes them.
type AuditLog struct {
	ID         string      `gorm:"type:uuid;primaryKey" json:"id"`
	EntityType string      `gorm:"size:50;not null;index" json:"entity_type"`
	EntityID   string      `gorm:"size:64;not null;index" json:"entity_id"`
	UserID     string      `gorm:"type:uuid;index" json:"user_id"`
	Action     AuditAction `gorm:"type:varchar(20);not null" json:"action"`
	Changes    string      `gorm:"type:text" json:"changes,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

// AuditLogFilter narrows and pages an audit trail query. Zero values mean
// "no constraint".
type AuditLogFilter struct {
	EntityType string
	EntityID   string
	UserID     string
	From       time.Time
	To         time.Time
	Limit      int
	Offset     int
}
