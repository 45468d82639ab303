package pipeline

import (
	"fmt"
	"strings"
	"time"

	"habita_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// OverridePatch is a field-by-field replacement applied by an
// administrator. Nil fields are untouched; set fields replace the current
// value unconditionally, bypassing the ordered-advancement rule.
type OverridePatch struct {
	CurrentPhase          *entities.Phase
	Status                *entities.LeadStatus
	ClientID              *string
	BrokerID              *string
	PropertyID            *string
	BankID                *string
	ConstructionCompanyID *string
	Motive                *string
	InternalMessage       *string
	AppraisalValue        *decimal.Decimal
	VisitDate             *time.Time
	InspectionDate        *time.Time
	RegistryDate          *time.Time
}

// AdminOverride applies the patch and records it on the lead's override
// audit trail. It never appends or closes phase history entries: an
// override is a correction, not a pipeline transition.
func AdminOverride(lead entities.Lead, patch OverridePatch, actorID string, now time.Time) (entities.Lead, error) {
	if patch.CurrentPhase != nil && !entities.IsValidPhase(*patch.CurrentPhase) {
		return entities.Lead{}, fmt.Errorf("%w: %q", ErrUnknownPhase, *patch.CurrentPhase)
	}

	next := lead.Clone()
	var changed []string

	if patch.CurrentPhase != nil {
		next.CurrentPhase = *patch.CurrentPhase
		changed = append(changed, "current_phase="+string(*patch.CurrentPhase))
	}
	if patch.Status != nil {
		next.Status = *patch.Status
		changed = append(changed, "status="+string(*patch.Status))
	}
	if patch.ClientID != nil {
		next.ClientID = *patch.ClientID
		changed = append(changed, "client_id")
	}
	if patch.BrokerID != nil {
		next.BrokerID = *patch.BrokerID
		changed = append(changed, "broker_id")
	}
	if patch.PropertyID != nil {
		next.PropertyID = *patch.PropertyID
		changed = append(changed, "property_id")
	}
	if patch.BankID != nil {
		next.BankID = *patch.BankID
		changed = append(changed, "bank_id")
	}
	if patch.ConstructionCompanyID != nil {
		next.ConstructionCompanyID = *patch.ConstructionCompanyID
		changed = append(changed, "construction_company_id")
	}
	if patch.Motive != nil {
		next.Motive = *patch.Motive
		changed = append(changed, "motive")
	}
	if patch.InternalMessage != nil {
		next.InternalMessage = *patch.InternalMessage
		changed = append(changed, "internal_message")
	}
	if patch.AppraisalValue != nil {
		v := *patch.AppraisalValue
		next.AppraisalValue = &v
		changed = append(changed, "appraisal_value")
	}
	if patch.VisitDate != nil {
		d := *patch.VisitDate
		next.VisitDate = &d
		changed = append(changed, "visit_date")
	}
	if patch.InspectionDate != nil {
		d := *patch.InspectionDate
		next.InspectionDate = &d
		changed = append(changed, "inspection_date")
	}
	if patch.RegistryDate != nil {
		d := *patch.RegistryDate
		next.RegistryDate = &d
		changed = append(changed, "registry_date")
	}

	if len(changed) > 0 {
		next.Overrides = append(next.Overrides, entities.OverrideRecord{
			At:      now,
			ActorID: actorID,
			Summary: strings.Join(changed, ", "),
		})
	}
	return next, nil
}
