package request

import (
	"errors"
	"strings"
	"time"

	"habita_crm/internal/domain/entities"
	"habita_crm/internal/domain/pipeline"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownOutcome = errors.New("unknown outcome")
	ErrBadDate        = errors.New("dates must be formatted YYYY-MM-DD")
)

// businessDateLayout is the format operators type for visit, inspection
// and registry dates.
const businessDateLayout = "2006-01-02"

type CreateLeadRequest struct {
	ClientID string `json:"client_id" binding:"required"`
}

func (r CreateLeadRequest) ResolveClientID() string {
	return strings.TrimSpace(r.ClientID)
}

// AdvanceLeadRequest carries the outcome the operator picked for the
// current phase plus the phase-specific data some outcomes require.
type AdvanceLeadRequest struct {
	Outcome        string           `json:"outcome" binding:"required"`
	Motive         string           `json:"motive"`
	Appraised      *bool            `json:"appraised"`
	AppraisalValue *decimal.Decimal `json:"appraisal_value"`
	VisitDate      string           `json:"visit_date"`
	InspectionDate string           `json:"inspection_date"`
	RegistryDate   string           `json:"registry_date"`
}

func (r AdvanceLeadRequest) ResolveOutcome() (entities.LeadStatus, error) {
	outcome := entities.LeadStatus(strings.TrimSpace(r.Outcome))
	switch outcome {
	case entities.LeadStatusConcluido, entities.LeadStatusPendente, entities.LeadStatusCancelado, entities.LeadStatusReprovado:
		return outcome, nil
	}
	return "", ErrUnknownOutcome
}

func (r AdvanceLeadRequest) ResolveExtras() (pipeline.Extras, error) {
	ex := pipeline.Extras{
		Motive:         strings.TrimSpace(r.Motive),
		Appraised:      r.Appraised,
		AppraisalValue: r.AppraisalValue,
	}

	var err error
	if ex.VisitDate, err = parseBusinessDate(r.VisitDate); err != nil {
		return pipeline.Extras{}, err
	}
	if ex.InspectionDate, err = parseBusinessDate(r.InspectionDate); err != nil {
		return pipeline.Extras{}, err
	}
	if ex.RegistryDate, err = parseBusinessDate(r.RegistryDate); err != nil {
		return pipeline.Extras{}, err
	}
	return ex, nil
}

// OverrideLeadRequest is the admin correction payload. Absent fields stay
// untouched.
type OverrideLeadRequest struct {
	CurrentPhase          *string          `json:"current_phase"`
	Status                *string          `json:"status"`
	ClientID              *string          `json:"client_id"`
	BrokerID              *string          `json:"broker_id"`
	PropertyID            *string          `json:"property_id"`
	BankID                *string          `json:"bank_id"`
	ConstructionCompanyID *string          `json:"construction_company_id"`
	Motive                *string          `json:"motive"`
	InternalMessage       *string          `json:"internal_message"`
	AppraisalValue        *decimal.Decimal `json:"appraisal_value"`
	VisitDate             *string          `json:"visit_date"`
	InspectionDate        *string          `json:"inspection_date"`
	RegistryDate          *string          `json:"registry_date"`
}

func (r OverrideLeadRequest) ResolvePatch() (pipeline.OverridePatch, error) {
	patch := pipeline.OverridePatch{
		ClientID:              r.ClientID,
		BrokerID:              r.BrokerID,
		PropertyID:            r.PropertyID,
		BankID:                r.BankID,
		ConstructionCompanyID: r.ConstructionCompanyID,
		Motive:                r.Motive,
		InternalMessage:       r.InternalMessage,
		AppraisalValue:        r.AppraisalValue,
	}
	if r.CurrentPhase != nil {
		p := entities.Phase(strings.TrimSpace(*r.CurrentPhase))
		patch.CurrentPhase = &p
	}
	if r.Status != nil {
		s := entities.LeadStatus(strings.TrimSpace(*r.Status))
		patch.Status = &s
	}

	var err error
	if r.VisitDate != nil {
		if patch.VisitDate, err = parseBusinessDate(*r.VisitDate); err != nil {
			return pipeline.OverridePatch{}, err
		}
	}
	if r.InspectionDate != nil {
		if patch.InspectionDate, err = parseBusinessDate(*r.InspectionDate); err != nil {
			return pipeline.OverridePatch{}, err
		}
	}
	if r.RegistryDate != nil {
		if patch.RegistryDate, err = parseBusinessDate(*r.RegistryDate); err != nil {
			return pipeline.OverridePatch{}, err
		}
	}
	return patch, nil
}

type RegressLeadRequest struct {
	TargetPhase string `json:"target_phase" binding:"required"`
	Motive      string `json:"motive"`
}

func (r RegressLeadRequest) ResolveTargetPhase() entities.Phase {
	return entities.Phase(strings.TrimSpace(r.TargetPhase))
}

// DeleteLeadRequest is an optional body on DELETE, carrying the motive
// filed with a gated deletion request.
type DeleteLeadRequest struct {
	Motive string `json:"motive"`
}

func parseBusinessDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(businessDateLayout, s)
	if err != nil {
		return nil, ErrBadDate
	}
	return &d, nil
}
