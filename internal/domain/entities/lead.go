package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// LeadStatus represents a lead's stored pipeline status.
//
// "urgente" exists in the wire vocabulary for compatibility with older
// clients, but the engine never assigns nor persists it: urgency is a
// derived read-side overlay (see pipeline.IsUrgent).

type LeadStatus string

const (
	LeadStatusEmAndamento LeadStatus = "em_andamento"
	LeadStatusConcluido   LeadStatus = "concluido"
	LeadStatusPendente    LeadStatus = "pendente"
	LeadStatusCancelado   LeadStatus = "cancelado"
	LeadStatusReprovado   LeadStatus = "reprovado"
	LeadStatusUrgente     LeadStatus = "urgente"
)

var ErrMissingPropertyLink = errors.New("client has no linked property")

// HistoryEntry records the time a lead spent in one occurrence of a phase.
//
// Invariants:
//   - at most one entry has no EndDate (the currently open occurrence);
//   - entries are append-only and ordered by StartDate; they are never
//     deleted or reordered.
type HistoryEntry struct {
	Phase     Phase      `json:"phase"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Status    LeadStatus `json:"status"`
	Motive    string     `json:"motive,omitempty"`

	// Phase-specific outcome data, merged onto the entry when it closes.
	AppraisalValue *decimal.Decimal `json:"appraisal_value,omitempty"`
	VisitDate      *time.Time       `json:"visit_date,omitempty"`
	InspectionDate *time.Time       `json:"inspection_date,omitempty"`
	RegistryDate   *time.Time       `json:"registry_date,omitempty"`
}

// OverrideRecord is the audit trail of an admin override. Overrides do not
// append phase history entries; they are direct corrections.
type OverrideRecord struct {
	At      time.Time `json:"at"`
	ActorID string    `json:"actor_id"`
	Summary string    `json:"summary"`
}

// Lead is the aggregate root of the financing pipeline.
//
// It references a Client, Broker, Property, Bank and ConstructionCompany by
// id only; joins happen at read time, the referenced records are never
// embedded.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants:
//   - CurrentPhase equals the phase of the most recent history entry;
//   - History[0].Phase is always the first phase;
//   - len(History) >= 1 after creation.
type Lead struct {
	ID                    string `json:"id"`
	ClientID              string `json:"client_id"`
	BrokerID              string `json:"broker_id"`
	PropertyID            string `json:"property_id"`
	BankID                string `json:"bank_id"`
	ConstructionCompanyID string `json:"construction_company_id"`

	CurrentPhase Phase          `json:"current_phase"`
	Status       LeadStatus     `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	History      []HistoryEntry `json:"history"`

	Motive          string           `json:"motive,omitempty"`
	AppraisalValue  *decimal.Decimal `json:"appraisal_value,omitempty"`
	VisitDate       *time.Time       `json:"visit_date,omitempty"`
	InspectionDate  *time.Time       `json:"inspection_date,omitempty"`
	RegistryDate    *time.Time       `json:"registry_date,omitempty"`
	InternalMessage string           `json:"internal_message,omitempty"`

	Overrides []OverrideRecord `json:"overrides,omitempty"`
}

// NewLead creates a lead at the first phase with a single open history
// entry dated now. The property link is mandatory: a lead cannot exist
// without a property to value it.
func NewLead(id, clientID, propertyID, brokerID, bankID, companyID string, now time.Time) (Lead, error) {
	if propertyID == "" {
		return Lead{}, ErrMissingPropertyLink
	}

	return Lead{
		ID:                    id,
		ClientID:              clientID,
		BrokerID:              brokerID,
		PropertyID:            propertyID,
		BankID:                bankID,
		ConstructionCompanyID: companyID,
		CurrentPhase:          FirstPhase(),
		Status:                LeadStatusEmAndamento,
		CreatedAt:             now,
		History: []HistoryEntry{{
			Phase:     FirstPhase(),
			StartDate: now,
			Status:    LeadStatusEmAndamento,
		}},
	}, nil
}

// OpenEntry returns a pointer to the entry without an EndDate, or nil when
// the lead is parked (last entry closed with a non-completing outcome).
func (l *Lead) OpenEntry() *HistoryEntry {
	for i := len(l.History) - 1; i >= 0; i-- {
		if l.History[i].EndDate == nil {
			return &l.History[i]
		}
	}
	return nil
}

// CurrentEntryStart is the reference instant for staleness: the start of
// the open entry, falling back to the last entry for parked leads (they
// keep aging while waiting for follow-up).
func (l *Lead) CurrentEntryStart() time.Time {
	if open := l.OpenEntry(); open != nil {
		return open.StartDate
	}
	if n := len(l.History); n > 0 {
		return l.History[n-1].StartDate
	}
	return l.CreatedAt
}

// Clone returns a deep copy. The transition engine mutates copies only.
func (l Lead) Clone() Lead {
	out := l
	out.History = make([]HistoryEntry, len(l.History))
	copy(out.History, l.History)
	if l.Overrides != nil {
		out.Overrides = make([]OverrideRecord, len(l.Overrides))
		copy(out.Overrides, l.Overrides)
	}
	return out
}
