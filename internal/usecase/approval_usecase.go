package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"habita_crm/internal/domain/entities"
	"habita_crm/internal/domain/pipeline"
	"habita_crm/internal/usecase/interfaces"
)

var (
	ErrApprovalNotFound    = errors.New("approval request not found")
	ErrInvalidApprovalID   = errors.New("invalid approval request id")
	ErrAlreadyDenied       = errors.New("approval request already denied")
	ErrAlreadyApproved     = errors.New("approval request already approved")
	ErrUnknownApprovalType = errors.New("unknown approval request type")
)

// IApprovalUseCase drives the governance gate: listing pending requests
// and deciding them. Approving applies the gated effect (delete or regress
// via admin override); denying only discards the request.
type IApprovalUseCase interface {
	ListByStatus(ctx context.Context, status entities.ApprovalStatus) ([]entities.ApprovalRequest, error)
	Approve(ctx context.Context, requestID string, actor pipeline.Actor) (entities.ApprovalRequest, error)
	Deny(ctx context.Context, requestID string, actor pipeline.Actor) (entities.ApprovalRequest, error)
}

type ApprovalUseCase struct {
	approvals interfaces.IApprovalRepository
	leads     interfaces.ILeadRepository
	clock     interfaces.Clock
	stream    interfaces.ILeadStream
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(
	approvals interfaces.IApprovalRepository,
	leads interfaces.ILeadRepository,
	clock interfaces.Clock,
	stream interfaces.ILeadStream,
) *ApprovalUseCase {
	return &ApprovalUseCase{approvals: approvals, leads: leads, clock: clock, stream: stream}
}

func (u *ApprovalUseCase) ListByStatus(ctx context.Context, status entities.ApprovalStatus) ([]entities.ApprovalRequest, error) {
	return u.approvals.ListByStatus(ctx, status)
}

// Approve applies the gated action and marks the request approved.
// Idempotent: re-approving an already approved request is a no-op success.
func (u *ApprovalUseCase) Approve(ctx context.Context, requestID string, actor pipeline.Actor) (entities.ApprovalRequest, error) {
	req, err := u.load(ctx, requestID, actor)
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if req.Status == entities.ApprovalStatusAprovado {
		return req, nil
	}
	if req.Status == entities.ApprovalStatusNegado {
		return entities.ApprovalRequest{}, ErrAlreadyDenied
	}

	switch req.Type {
	case entities.ApprovalTypeExclusao:
		if err := u.applyDeletion(ctx, req); err != nil {
			return entities.ApprovalRequest{}, err
		}
	case entities.ApprovalTypeRegressao:
		if err := u.applyRegression(ctx, req, actor); err != nil {
			return entities.ApprovalRequest{}, err
		}
	default:
		return entities.ApprovalRequest{}, ErrUnknownApprovalType
	}

	return u.decide(ctx, req, entities.ApprovalStatusAprovado, actor)
}

// Deny discards the request without touching the lead.
func (u *ApprovalUseCase) Deny(ctx context.Context, requestID string, actor pipeline.Actor) (entities.ApprovalRequest, error) {
	req, err := u.load(ctx, requestID, actor)
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if req.Status == entities.ApprovalStatusNegado {
		return req, nil
	}
	if req.Status == entities.ApprovalStatusAprovado {
		return entities.ApprovalRequest{}, ErrAlreadyApproved
	}
	return u.decide(ctx, req, entities.ApprovalStatusNegado, actor)
}

func (u *ApprovalUseCase) load(ctx context.Context, requestID string, actor pipeline.Actor) (entities.ApprovalRequest, error) {
	if !actor.IsAdmin() {
		return entities.ApprovalRequest{}, ErrNotAuthorized
	}
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ApprovalRequest{}, ErrInvalidApprovalID
	}

	req, err := u.approvals.GetByID(ctx, requestID)
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	if req.ID == "" {
		return entities.ApprovalRequest{}, ErrApprovalNotFound
	}
	return req, nil
}

func (u *ApprovalUseCase) applyDeletion(ctx context.Context, req entities.ApprovalRequest) error {
	lead, err := u.leads.GetByID(ctx, req.LeadID)
	if err != nil {
		return err
	}
	// Lead already gone: the effect holds, approving stays idempotent.
	if lead.ID == "" {
		return nil
	}
	if err := u.leads.Delete(ctx, lead.ID); err != nil {
		return err
	}
	log.Printf("[approval][usecase] deletion applied lead_id=%s request_id=%s", req.LeadID, req.ID)
	u.broadcast(ctx)
	return nil
}

func (u *ApprovalUseCase) applyRegression(ctx context.Context, req entities.ApprovalRequest, actor pipeline.Actor) error {
	lead, err := u.leads.GetByID(ctx, req.LeadID)
	if err != nil {
		return err
	}
	if lead.ID == "" {
		return ErrLeadNotFound
	}

	target := req.TargetPhase
	next, err := pipeline.AdminOverride(lead, pipeline.OverridePatch{CurrentPhase: &target}, actor.ID, u.clock.Now())
	if err != nil {
		return err
	}
	if _, err := u.leads.Update(ctx, next); err != nil {
		return err
	}
	log.Printf("[approval][usecase] regression applied lead_id=%s target=%s request_id=%s", req.LeadID, target, req.ID)
	u.broadcast(ctx)
	return nil
}

func (u *ApprovalUseCase) decide(ctx context.Context, req entities.ApprovalRequest, status entities.ApprovalStatus, actor pipeline.Actor) (entities.ApprovalRequest, error) {
	now := u.clock.Now()
	req.Status = status
	req.DecidedBy = actor.ID
	req.DecidedAt = &now

	updated, err := u.approvals.Update(ctx, req)
	if err != nil {
		return entities.ApprovalRequest{}, err
	}
	log.Printf("[approval][usecase] decided request_id=%s status=%s actor=%s", updated.ID, status, actor.ID)
	return updated, nil
}

func (u *ApprovalUseCase) broadcast(ctx context.Context) {
	if u.stream == nil {
		return
	}
	leads, err := u.leads.List(ctx)
	if err != nil {
		log.Printf("[approval][usecase] snapshot reload failed err=%v", err)
		return
	}
	u.stream.Publish(leads)
}
