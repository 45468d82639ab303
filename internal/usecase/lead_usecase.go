package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"habita_crm/internal/domain/entities"
	"habita_crm/internal/domain/pipeline"
	"habita_crm/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidLeadID     = errors.New("invalid lead id")
	ErrInvalidClientID   = errors.New("invalid client id")
	ErrNotAuthorized     = errors.New("action requires administrator role")
	ErrNotARegression    = errors.New("target phase is not earlier than the current phase")
	ErrInvalidTarget     = errors.New("invalid target phase")
)

// GateResult tells the caller whether a gated action was applied
// immediately (admin) or parked as an approval request (operator).
type GateResult struct {
	Applied bool
	Request entities.ApprovalRequest
}

// ILeadUseCase exposes the pipeline operations the UI drives:
//   - create a lead from a client with a linked property
//   - advance the current phase with an outcome
//   - admin override
//   - gated deletion and regression
type ILeadUseCase interface {
	CreateLead(ctx context.Context, clientID string) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	Advance(ctx context.Context, leadID string, outcome entities.LeadStatus, extras pipeline.Extras) (entities.Lead, error)
	Override(ctx context.Context, leadID string, patch pipeline.OverridePatch, actor pipeline.Actor) (entities.Lead, error)
	RequestDeletion(ctx context.Context, leadID string, actor pipeline.Actor, motive string) (GateResult, error)
	RequestRegression(ctx context.Context, leadID string, target entities.Phase, actor pipeline.Actor, motive string) (GateResult, error)
}

type LeadUseCase struct {
	leads      interfaces.ILeadRepository
	clients    interfaces.IReferenceRepository[entities.Client]
	approvals  interfaces.IApprovalRepository
	clock      interfaces.Clock
	stream     interfaces.ILeadStream
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(
	leads interfaces.ILeadRepository,
	clients interfaces.IReferenceRepository[entities.Client],
	approvals interfaces.IApprovalRepository,
	clock interfaces.Clock,
	stream interfaces.ILeadStream,
) *LeadUseCase {
	return &LeadUseCase{leads: leads, clients: clients, approvals: approvals, clock: clock, stream: stream}
}

func (u *LeadUseCase) CreateLead(ctx context.Context, clientID string) (entities.Lead, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Lead{}, ErrInvalidClientID
	}

	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Lead{}, err
	}
	if client.ID == "" {
		return entities.Lead{}, ErrClientNotFound
	}

	lead, err := entities.NewLead(
		uuid.NewString(),
		client.ID,
		client.PropertyID,
		client.BrokerID,
		client.BankID,
		client.ConstructionCompanyID,
		u.clock.Now(),
	)
	if err != nil {
		return entities.Lead{}, err
	}

	created, err := u.leads.Create(ctx, lead)
	if err != nil {
		return entities.Lead{}, err
	}
	log.Printf("[lead][usecase] created lead_id=%s client_id=%s phase=%s", created.ID, clientID, created.CurrentPhase)
	u.broadcast(ctx)
	return created, nil
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	lead, err := u.leads.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return lead, nil
}

func (u *LeadUseCase) List(ctx context.Context) ([]entities.Lead, error) {
	return u.leads.List(ctx)
}

func (u *LeadUseCase) Advance(ctx context.Context, leadID string, outcome entities.LeadStatus, extras pipeline.Extras) (entities.Lead, error) {
	lead, err := u.GetByID(ctx, leadID)
	if err != nil {
		return entities.Lead{}, err
	}

	next, err := pipeline.AdvancePhase(lead, outcome, u.clock.Now(), extras)
	if err != nil {
		return entities.Lead{}, err
	}

	updated, err := u.leads.Update(ctx, next)
	if err != nil {
		return entities.Lead{}, err
	}
	log.Printf("[lead][usecase] advanced lead_id=%s outcome=%s phase=%s status=%s", updated.ID, outcome, updated.CurrentPhase, updated.Status)
	u.broadcast(ctx)
	return updated, nil
}

func (u *LeadUseCase) Override(ctx context.Context, leadID string, patch pipeline.OverridePatch, actor pipeline.Actor) (entities.Lead, error) {
	if !actor.IsAdmin() {
		return entities.Lead{}, ErrNotAuthorized
	}

	lead, err := u.GetByID(ctx, leadID)
	if err != nil {
		return entities.Lead{}, err
	}

	next, err := pipeline.AdminOverride(lead, patch, actor.ID, u.clock.Now())
	if err != nil {
		return entities.Lead{}, err
	}

	updated, err := u.leads.Update(ctx, next)
	if err != nil {
		return entities.Lead{}, err
	}
	log.Printf("[lead][usecase] override lead_id=%s actor=%s", updated.ID, actor.ID)
	u.broadcast(ctx)
	return updated, nil
}

func (u *LeadUseCase) RequestDeletion(ctx context.Context, leadID string, actor pipeline.Actor, motive string) (GateResult, error) {
	lead, err := u.GetByID(ctx, leadID)
	if err != nil {
		return GateResult{}, err
	}

	if !pipeline.RequiresApproval(pipeline.ActionExclusao, actor) {
		if err := u.leads.Delete(ctx, lead.ID); err != nil {
			return GateResult{}, err
		}
		log.Printf("[lead][usecase] deleted lead_id=%s actor=%s", lead.ID, actor.ID)
		u.broadcast(ctx)
		return GateResult{Applied: true}, nil
	}

	req := entities.ApprovalRequest{
		ID:          uuid.NewString(),
		Type:        entities.ApprovalTypeExclusao,
		LeadID:      lead.ID,
		RequestedBy: actor.ID,
		Motive:      strings.TrimSpace(motive),
		Status:      entities.ApprovalStatusPendente,
		CreatedAt:   u.clock.Now(),
	}
	created, err := u.approvals.Create(ctx, req)
	if err != nil {
		return GateResult{}, err
	}
	log.Printf("[lead][usecase] deletion parked for approval lead_id=%s request_id=%s", lead.ID, created.ID)
	return GateResult{Request: created}, nil
}

func (u *LeadUseCase) RequestRegression(ctx context.Context, leadID string, target entities.Phase, actor pipeline.Actor, motive string) (GateResult, error) {
	if !entities.IsValidPhase(target) {
		return GateResult{}, ErrInvalidTarget
	}

	lead, err := u.GetByID(ctx, leadID)
	if err != nil {
		return GateResult{}, err
	}
	if !pipeline.IsRegression(lead, target) {
		return GateResult{}, ErrNotARegression
	}

	if !pipeline.RequiresApproval(pipeline.ActionRegressao, actor) {
		updated, err := u.Override(ctx, leadID, pipeline.OverridePatch{CurrentPhase: &target}, actor)
		if err != nil {
			return GateResult{}, err
		}
		log.Printf("[lead][usecase] regressed lead_id=%s phase=%s actor=%s", updated.ID, target, actor.ID)
		return GateResult{Applied: true}, nil
	}

	req := entities.ApprovalRequest{
		ID:          uuid.NewString(),
		Type:        entities.ApprovalTypeRegressao,
		LeadID:      lead.ID,
		TargetPhase: target,
		RequestedBy: actor.ID,
		Motive:      strings.TrimSpace(motive),
		Status:      entities.ApprovalStatusPendente,
		CreatedAt:   u.clock.Now(),
	}
	created, err := u.approvals.Create(ctx, req)
	if err != nil {
		return GateResult{}, err
	}
	log.Printf("[lead][usecase] regression parked for approval lead_id=%s request_id=%s target=%s", lead.ID, created.ID, target)
	return GateResult{Request: created}, nil
}

// broadcast pushes the latest full collection to subscribers. A failed
// re-read only skips the push; the mutation already landed.
func (u *LeadUseCase) broadcast(ctx context.Context) {
	if u.stream == nil {
		return
	}
	leads, err := u.leads.List(ctx)
	if err != nil {
		log.Printf("[lead][usecase] snapshot reload failed err=%v", err)
		return
	}
	u.stream.Publish(leads)
}
