package response

import (
	"habita_crm/internal/usecase"
)

// Monetary figures travel as decimal strings to keep the wire format
// rounding-safe.

type DashboardResponse struct {
	PhaseDistribution map[string]int `json:"phase_distribution"`
	VGVIntake         string         `json:"vgv_intake"`
	VGVInApproval     string         `json:"vgv_in_approval"`
	TotalCommission   string         `json:"total_commission"`
	UrgentLeads       int            `json:"urgent_leads"`
}

func FromDashboardSummary(s usecase.DashboardSummary) DashboardResponse {
	dist := make(map[string]int, len(s.PhaseDistribution))
	for phase, count := range s.PhaseDistribution {
		dist[string(phase)] = count
	}
	return DashboardResponse{
		PhaseDistribution: dist,
		VGVIntake:         s.VGVIntake.String(),
		VGVInApproval:     s.VGVInApproval.String(),
		TotalCommission:   s.TotalCommission.String(),
		UrgentLeads:       s.UrgentLeads,
	}
}

type BrokerCommissionResponse struct {
	BrokerID   string `json:"broker_id"`
	Rate       string `json:"rate"`
	Received   string `json:"received"`
	Receivable string `json:"receivable"`
}

func FromBrokerCommission(c usecase.BrokerCommission) BrokerCommissionResponse {
	return BrokerCommissionResponse{
		BrokerID:   c.BrokerID,
		Rate:       c.Rate.String(),
		Received:   c.Received.String(),
		Receivable: c.Receivable.String(),
	}
}
