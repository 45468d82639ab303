package entities

import "time"

// ApprovalType tags the gated action a non-admin asked for.

type ApprovalType string

const (
	ApprovalTypeExclusao  ApprovalType = "exclusao"
	ApprovalTypeRegressao ApprovalType = "regressao"
)

type ApprovalStatus string

const (
	ApprovalStatusPendente ApprovalStatus = "pendente"
	ApprovalStatusAprovado ApprovalStatus = "aprovado"
	ApprovalStatusNegado   ApprovalStatus = "negado"
)

// ApprovalRequest records a delete/regress action awaiting an
// administrator. Approval applies the underlying action; denial only flips
// the status. A request with no administrator around stays pending
// indefinitely.
//
// Storage model (DynamoDB):
//   - PK: id
type ApprovalRequest struct {
	ID          string       `json:"id"`
	Type        ApprovalType `json:"type"`
	LeadID      string       `json:"lead_id"`
	TargetPhase Phase        `json:"target_phase,omitempty"` // regressions only
	RequestedBy string       `json:"requested_by"`
	Motive      string       `json:"motive,omitempty"`

	Status    ApprovalStatus `json:"status"`
	DecidedBy string         `json:"decided_by,omitempty"`
	DecidedAt *time.Time     `json:"decided_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
