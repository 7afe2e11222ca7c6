package response

import (
	"encoding/json"
	"time"

	"projectdesk/internal/domain/entities"
)

type AuditLogResponse struct {
	ID         string          `json:"id"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	UserID     string          `json:"user_id"`
	Action     string          `json:"action"`
	Changes    json.RawMessage `json:"changes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func FromAuditLog(a entities.AuditLog) AuditLogResponse {
	res := AuditLogResponse{
		ID:         a.ID,
		EntityType: a.EntityType,
		EntityID:   a.EntityID,
		UserID:     a.UserID,
		Action:     string(a.Action),
		CreatedAt:  a.CreatedAt,
	}
	if a.Changes != "" && json.Valid([]byte(a.Changes)) {
		res.Changes = json.RawMessage(a.Changes)
	}
	return res
}

func FromAuditLogs(entries []entities.AuditLog) []AuditLogResponse {
	out := make([]AuditLogResponse, 0, len(entries))
	for _, a := range entries {
		out = append(out, FromAuditLog(a))
	}
	return out
}
