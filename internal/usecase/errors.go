package usecase

import (
	"encoding/json"
	"errors"

	"projectdesk/internal/domain/entities"

	"github.com/google/uuid"
)

// Sentinels shared across usecases. Authorization and validation failures are
// detected before any write; no partial mutation ever occurs past them.
var (
	ErrUnauthorized = errors.New("unauthorized")
)

// newAuditLog builds the audit entry a mutating repository persists in the
// same transaction as the entity write.
func newAuditLog(entityType, entityID string, actor *entities.User, action entities.AuditAction, changes any) entities.AuditLog {
	entry := entities.AuditLog{
		ID:         uuid.NewString(),
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
	}
	if actor != nil {
		entry.UserID = actor.ID
	}
	if changes != nil {
		if b, err := json.Marshal(changes); err == nil {
			entry.Changes = string(b)
		}
	}
	return entry
}
