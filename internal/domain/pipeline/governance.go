package pipeline

import "habita_crm/internal/domain/entities"

// Actor identifies who is asking for an operation. Authentication itself
// lives outside the core; the gate only needs the role.

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperador Role = "operador"
)

type Actor struct {
	ID   string
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// GatedAction is an operation that destroys data or moves a lead backward.
type GatedAction string

const (
	ActionExclusao  GatedAction = "exclusao"
	ActionRegressao GatedAction = "regressao"
)

// RequiresApproval decides whether the action must be parked as an
// ApprovalRequest instead of being applied immediately. Administrators
// bypass the gate entirely.
func RequiresApproval(_ GatedAction, actor Actor) bool {
	return !actor.IsAdmin()
}

// IsRegression reports whether moving the lead to target would be a
// backward move. Unknown phases are never regressions; they fail phase
// validation elsewhere.
func IsRegression(lead entities.Lead, target entities.Phase) bool {
	ti := entities.PhaseIndex(target)
	ci := entities.PhaseIndex(lead.CurrentPhase)
	return ti >= 0 && ci >= 0 && ti < ci
}
