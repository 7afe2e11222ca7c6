package permissions

import "projectdesk/internal/domain/entities"

// Capability is a named permission checked against a role rank.
type Capability string

const (
	CapabilityApprove       Capability = "approve"
	CapabilityDelete        Capability = "delete"
	CapabilityCreateProject Capability = "create_project"
	CapabilityViewAuditLogs Capability = "view_audit_logs"
	CapabilityExport        Capability = "export"
	CapabilityEdit          Capability = "edit"
	CapabilityManageUsers   Capability = "manage_users"
	CapabilityViewAnalytics Capability = "view_analytics"
)

// Role ranks form a strict order; a capability is granted when the user's
// rank meets the capability's minimum.
const (
	RankStakeholder    = 1
	RankTeamMember     = 2
	RankProjectManager = 3
	RankAdmin          = 4
)

var roleRanks = map[entities.Role]int{
	entities.RoleStakeholder:    RankStakeholder,
	entities.RoleTeamMember:     RankTeamMember,
	entities.RoleProjectManager: RankProjectManager,
	entities.RoleAdmin:          RankAdmin,
}

// RoleRank returns the rank of a role, or 0 for an unknown role.
func RoleRank(r entities.Role) int {
	return roleRanks[r]
}

// DefaultCapabilityTable is the capability -> minimum rank table the service
// runs with. Thresholds are data handed to the engine, not conditionals
// scattered through handlers.
func DefaultCapabilityTable() map[Capability]int {
	return map[Capability]int{
		CapabilityApprove:       RankProjectManager,
		CapabilityDelete:        RankProjectManager,
		CapabilityCreateProject: RankProjectManager,
		CapabilityViewAuditLogs: RankProjectManager,
		CapabilityExport:        RankProjectManager,
		CapabilityEdit:          RankTeamMember,
		CapabilityManageUsers:   RankAdmin,
		CapabilityViewAnalytics: RankStakeholder,
	}
}

// Engine answers capability checks. It is a pure function of the injected
// table and the given user; it performs no I/O and holds no mutable state.
type Engine struct {
	minRank map[Capability]int
}

func NewEngine(table map[Capability]int) *Engine {
	minRank := make(map[Capability]int, len(table))
	for c, r := range table {
		minRank[c] = r
	}
	return &Engine{minRank: minRank}
}

// Can reports whether user holds the capability by rank alone. A nil user
// fails every capability, including view_analytics. An unknown capability is
// never granted.
func (e *Engine) Can(user *entities.User, c Capability) bool {
	if user == nil {
		return false
	}
	min, ok := e.minRank[c]
	if !ok {
		return false
	}
	return RoleRank(user.Role) >= min
}

// CanOn is the resource-scoped check. Edit additionally passes when the user
// owns the resource, regardless of rank. Delete (and everything else) has no
// ownership override; only rank matters.
func (e *Engine) CanOn(user *entities.User, c Capability, ownerID string) bool {
	if user == nil {
		return false
	}
	if c == CapabilityEdit && ownerID != "" && user.ID == ownerID {
		return true
	}
	return e.Can(user, c)
}
