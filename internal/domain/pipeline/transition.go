// Package pipeline is the sole authority over a lead's phase, status and
// history. Every function takes a lead snapshot and returns a new one;
// persistence and broadcast are the caller's concern.
package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"habita_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTransition  = errors.New("outcome not allowed for this phase")
	ErrMissingMotive      = errors.New("non-completing outcome requires a motive")
	ErrMissingPhaseDate   = errors.New("completing this phase requires a date")
	ErrAppraisalRequired  = errors.New("completing engineering requires the appraisal decision, value and date")
	ErrUnknownPhase       = errors.New("unknown phase")
	ErrUnknownOutcome     = errors.New("unknown outcome")
	ErrEmptyHistory       = errors.New("lead has no history")
)

// allowedOutcomes is the per-phase outcome vocabulary. The asymmetries are
// deliberate business rules, not accidents: credit approval is the only
// phase that can reject; funds release cannot be cancelled once reached.
var allowedOutcomes = map[entities.Phase][]entities.LeadStatus{
	entities.PhaseSimulacaoDocumentacao: {entities.LeadStatusConcluido, entities.LeadStatusCancelado},
	entities.PhaseAprovacaoCredito:      {entities.LeadStatusConcluido, entities.LeadStatusCancelado, entities.LeadStatusReprovado, entities.LeadStatusPendente},
	entities.PhaseVisitaImovel:          {entities.LeadStatusConcluido, entities.LeadStatusPendente, entities.LeadStatusCancelado},
	entities.PhaseEngenharia:            {entities.LeadStatusConcluido, entities.LeadStatusPendente},
	entities.PhaseEmissaoContrato:       {entities.LeadStatusConcluido, entities.LeadStatusPendente, entities.LeadStatusCancelado},
	entities.PhaseAssinaturaContrato:    {entities.LeadStatusConcluido, entities.LeadStatusPendente, entities.LeadStatusCancelado},
	entities.PhaseCartorio:              {entities.LeadStatusConcluido, entities.LeadStatusPendente, entities.LeadStatusCancelado},
	entities.PhaseLiberacaoRecurso:      {entities.LeadStatusConcluido, entities.LeadStatusPendente},
}

// AllowedOutcomes returns the outcome vocabulary for a phase.
func AllowedOutcomes(phase entities.Phase) []entities.LeadStatus {
	out := make([]entities.LeadStatus, len(allowedOutcomes[phase]))
	copy(out, allowedOutcomes[phase])
	return out
}

func outcomeAllowed(phase entities.Phase, outcome entities.LeadStatus) bool {
	for _, o := range allowedOutcomes[phase] {
		if o == outcome {
			return true
		}
	}
	return false
}

// Extras carries the phase-specific data an operator attaches to an
// outcome. Nil fields are left untouched.
type Extras struct {
	Motive         string
	Appraised      *bool // engineering sub-decision: was the property appraised?
	AppraisalValue *decimal.Decimal
	VisitDate      *time.Time
	InspectionDate *time.Time
	RegistryDate   *time.Time
}

// AdvancePhase closes the current history entry with the given outcome and,
// when the outcome is "concluido", moves the lead one phase forward (or
// marks the whole lead concluded at the final phase). Any other outcome
// parks the lead in the same phase for manual follow-up.
func AdvancePhase(lead entities.Lead, outcome entities.LeadStatus, now time.Time, ex Extras) (entities.Lead, error) {
	if len(lead.History) == 0 {
		return entities.Lead{}, ErrEmptyHistory
	}
	// Funds release completed is the terminal state; nothing moves a lead
	// out of it. Cancelled and rejected leads are merely parked and may be
	// re-advanced below.
	if lead.Status == entities.LeadStatusConcluido && entities.IsFinalPhase(lead.CurrentPhase) {
		return entities.Lead{}, fmt.Errorf("%w: lead already concluded", ErrInvalidTransition)
	}
	if !entities.IsValidPhase(lead.CurrentPhase) {
		return entities.Lead{}, fmt.Errorf("%w: %q", ErrUnknownPhase, lead.CurrentPhase)
	}
	switch outcome {
	case entities.LeadStatusConcluido, entities.LeadStatusPendente, entities.LeadStatusCancelado, entities.LeadStatusReprovado:
	default:
		return entities.Lead{}, fmt.Errorf("%w: %q", ErrUnknownOutcome, outcome)
	}
	if !outcomeAllowed(lead.CurrentPhase, outcome) {
		return entities.Lead{}, fmt.Errorf("%w: phase=%s outcome=%s", ErrInvalidTransition, lead.CurrentPhase, outcome)
	}
	if outcome != entities.LeadStatusConcluido && strings.TrimSpace(ex.Motive) == "" {
		return entities.Lead{}, ErrMissingMotive
	}
	if outcome == entities.LeadStatusConcluido {
		if err := checkCompletionData(lead.CurrentPhase, ex); err != nil {
			return entities.Lead{}, err
		}
	}

	next := lead.Clone()

	// A parked lead has no open entry; re-advancing it opens a new
	// occurrence of the same phase so the audit log stays append-only.
	cur := next.OpenEntry()
	if cur == nil {
		next.History = append(next.History, entities.HistoryEntry{
			Phase:     next.CurrentPhase,
			StartDate: now,
			Status:    entities.LeadStatusEmAndamento,
		})
		cur = &next.History[len(next.History)-1]
	}

	end := now
	cur.EndDate = &end
	cur.Status = outcome
	cur.Motive = strings.TrimSpace(ex.Motive)
	mergeExtras(cur, &next, ex)

	if outcome != entities.LeadStatusConcluido {
		next.Status = outcome
		next.Motive = strings.TrimSpace(ex.Motive)
		return next, nil
	}

	if entities.IsFinalPhase(next.CurrentPhase) {
		next.Status = entities.LeadStatusConcluido
		return next, nil
	}

	np, _ := entities.NextPhase(next.CurrentPhase)
	next.CurrentPhase = np
	next.Status = entities.LeadStatusEmAndamento
	next.History = append(next.History, entities.HistoryEntry{
		Phase:     np,
		StartDate: now,
		Status:    entities.LeadStatusEmAndamento,
	})
	return next, nil
}

// checkCompletionData enforces the mandatory per-phase data on "concluido".
func checkCompletionData(phase entities.Phase, ex Extras) error {
	switch phase {
	case entities.PhaseVisitaImovel:
		if ex.VisitDate == nil {
			return fmt.Errorf("%w: visit date", ErrMissingPhaseDate)
		}
	case entities.PhaseCartorio:
		if ex.RegistryDate == nil {
			return fmt.Errorf("%w: registry date", ErrMissingPhaseDate)
		}
	case entities.PhaseEngenharia:
		if ex.Appraised == nil || !*ex.Appraised || ex.AppraisalValue == nil || ex.InspectionDate == nil {
			return ErrAppraisalRequired
		}
	}
	return nil
}

func mergeExtras(entry *entities.HistoryEntry, lead *entities.Lead, ex Extras) {
	if ex.AppraisalValue != nil {
		v := *ex.AppraisalValue
		entry.AppraisalValue = &v
		lead.AppraisalValue = &v
	}
	if ex.VisitDate != nil {
		d := *ex.VisitDate
		entry.VisitDate = &d
		lead.VisitDate = &d
	}
	if ex.InspectionDate != nil {
		d := *ex.InspectionDate
		entry.InspectionDate = &d
		lead.InspectionDate = &d
	}
	if ex.RegistryDate != nil {
		d := *ex.RegistryDate
		entry.RegistryDate = &d
		lead.RegistryDate = &d
	}
}
