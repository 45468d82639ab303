package response

import (
	"time"

	"habita_crm/internal/domain/entities"
	"habita_crm/internal/domain/pipeline"
)

const businessDateLayout = "2006-01-02"

type HistoryEntryResponse struct {
	Phase          string     `json:"phase"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Status         string     `json:"status"`
	Motive         string     `json:"motive,omitempty"`
	AppraisalValue string     `json:"appraisal_value,omitempty"`
	VisitDate      string     `json:"visit_date,omitempty"`
	InspectionDate string     `json:"inspection_date,omitempty"`
	RegistryDate   string     `json:"registry_date,omitempty"`
}

type OverrideRecordResponse struct {
	At      time.Time `json:"at"`
	ActorID string    `json:"actor_id"`
	Summary string    `json:"summary"`
}

// LeadResponse carries the stored lead plus the derived urgency overlay.
// Urgent never replaces Status on the wire; clients overlay it for
// priority display.
type LeadResponse struct {
	ID                    string                   `json:"id"`
	ClientID              string                   `json:"client_id"`
	BrokerID              string                   `json:"broker_id,omitempty"`
	PropertyID            string                   `json:"property_id"`
	BankID                string                   `json:"bank_id,omitempty"`
	ConstructionCompanyID string                   `json:"construction_company_id,omitempty"`
	CurrentPhase          string                   `json:"current_phase"`
	Status                string                   `json:"status"`
	Urgent                bool                     `json:"urgent"`
	CreatedAt             time.Time                `json:"created_at"`
	History               []HistoryEntryResponse   `json:"history"`
	Motive                string                   `json:"motive,omitempty"`
	AppraisalValue        string                   `json:"appraisal_value,omitempty"`
	VisitDate             string                   `json:"visit_date,omitempty"`
	InspectionDate        string                   `json:"inspection_date,omitempty"`
	RegistryDate          string                   `json:"registry_date,omitempty"`
	InternalMessage       string                   `json:"internal_message,omitempty"`
	Overrides             []OverrideRecordResponse `json:"overrides,omitempty"`
}

func FromLead(l entities.Lead, now time.Time) LeadResponse {
	res := LeadResponse{
		ID:                    l.ID,
		ClientID:              l.ClientID,
		BrokerID:              l.BrokerID,
		PropertyID:            l.PropertyID,
		BankID:                l.BankID,
		ConstructionCompanyID: l.ConstructionCompanyID,
		CurrentPhase:          string(l.CurrentPhase),
		Status:                string(l.Status),
		Urgent:                pipeline.IsUrgent(l, now),
		CreatedAt:             l.CreatedAt,
		Motive:                l.Motive,
		InternalMessage:       l.InternalMessage,
	}
	if l.AppraisalValue != nil {
		res.AppraisalValue = l.AppraisalValue.String()
	}
	res.VisitDate = formatBusinessDate(l.VisitDate)
	res.InspectionDate = formatBusinessDate(l.InspectionDate)
	res.RegistryDate = formatBusinessDate(l.RegistryDate)

	res.History = make([]HistoryEntryResponse, 0, len(l.History))
	for _, e := range l.History {
		entry := HistoryEntryResponse{
			Phase:          string(e.Phase),
			StartDate:      e.StartDate,
			EndDate:        e.EndDate,
			Status:         string(e.Status),
			Motive:         e.Motive,
			VisitDate:      formatBusinessDate(e.VisitDate),
			InspectionDate: formatBusinessDate(e.InspectionDate),
			RegistryDate:   formatBusinessDate(e.RegistryDate),
		}
		if e.AppraisalValue != nil {
			entry.AppraisalValue = e.AppraisalValue.String()
		}
		res.History = append(res.History, entry)
	}

	for _, o := range l.Overrides {
		res.Overrides = append(res.Overrides, OverrideRecordResponse{At: o.At, ActorID: o.ActorID, Summary: o.Summary})
	}
	return res
}

func FromLeads(leads []entities.Lead, now time.Time) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, FromLead(l, now))
	}
	return out
}

func formatBusinessDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(businessDateLayout)
}
