package response

import (
	"time"

	"habita_crm/internal/domain/entities"
	"habita_crm/internal/usecase"
)

type ApprovalResponse struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	LeadID      string     `json:"lead_id"`
	TargetPhase string     `json:"target_phase,omitempty"`
	RequestedBy string     `json:"requested_by"`
	Motive      string     `json:"motive,omitempty"`
	Status      string     `json:"status"`
	DecidedBy   string     `json:"decided_by,omitempty"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromApproval(req entities.ApprovalRequest) ApprovalResponse {
	return ApprovalResponse{
		ID:          req.ID,
		Type:        string(req.Type),
		LeadID:      req.LeadID,
		TargetPhase: string(req.TargetPhase),
		RequestedBy: req.RequestedBy,
		Motive:      req.Motive,
		Status:      string(req.Status),
		DecidedBy:   req.DecidedBy,
		DecidedAt:   req.DecidedAt,
		CreatedAt:   req.CreatedAt,
	}
}

func FromApprovals(reqs []entities.ApprovalRequest) []ApprovalResponse {
	out := make([]ApprovalResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, FromApproval(r))
	}
	return out
}

// GateResponse tells the caller whether the gated action happened now or
// was parked for an administrator.
type GateResponse struct {
	Applied bool              `json:"applied"`
	Request *ApprovalResponse `json:"request,omitempty"`
}

func FromGateResult(res usecase.GateResult) GateResponse {
	out := GateResponse{Applied: res.Applied}
	if res.Request.ID != "" {
		r := FromApproval(res.Request)
		out.Request = &r
	}
	return out
}
