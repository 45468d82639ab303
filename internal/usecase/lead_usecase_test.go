package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"habita_crm/internal/domain/entities"
	"habita_crm/internal/domain/pipeline"
	mock_interfaces "habita_crm/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

type leadFixture struct {
	leads     *mock_interfaces.MockILeadRepository
	clients   *mock_interfaces.MockIReferenceRepository[entities.Client]
	approvals *mock_interfaces.MockIApprovalRepository
	stream    *mock_interfaces.MockILeadStream
	uc        *LeadUseCase
}

func newLeadFixture(t *testing.T) leadFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := leadFixture{
		leads:     mock_interfaces.NewMockILeadRepository(ctrl),
		clients:   mock_interfaces.NewMockIReferenceRepository[entities.Client](ctrl),
		approvals: mock_interfaces.NewMockIApprovalRepository(ctrl),
		stream:    mock_interfaces.NewMockILeadStream(ctrl),
	}
	f.uc = NewLeadUseCase(f.leads, f.clients, f.approvals, fixedClock{t: testNow}, f.stream)
	return f
}

func storedLead(t *testing.T) entities.Lead {
	t.Helper()
	lead, err := entities.NewLead("lead-1", "client-1", "prop-1", "broker-1", "bank-1", "comp-1", testNow.Add(-48*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return lead
}

func TestLeadUseCase_CreateLead(t *testing.T) {
	t.Run("invalid client id", func(t *testing.T) {
		f := newLeadFixture(t)
		_, err := f.uc.CreateLead(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		f := newLeadFixture(t)
		f.clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{}, nil)

		_, err := f.uc.CreateLead(context.Background(), "client-1")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("client without property link", func(t *testing.T) {
		f := newLeadFixture(t)
		f.clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1"}, nil)

		_, err := f.uc.CreateLead(context.Background(), "client-1")
		if !errors.Is(err, entities.ErrMissingPropertyLink) {
			t.Fatalf("expected ErrMissingPropertyLink, got %v", err)
		}
	})

	t.Run("create success broadcasts", func(t *testing.T) {
		f := newLeadFixture(t)
		client := entities.Client{
			ID:                    "client-1",
			PropertyID:            "prop-1",
			BrokerID:              "broker-1",
			BankID:                "bank-1",
			ConstructionCompanyID: "comp-1",
		}
		f.clients.EXPECT().GetByID(gomock.Any(), "client-1").Return(client, nil)
		f.leads.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Lead{})).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if l.ID == "" || l.ClientID != "client-1" || l.PropertyID != "prop-1" {
					t.Fatalf("unexpected lead: %+v", l)
				}
				if l.CurrentPhase != entities.FirstPhase() || len(l.History) != 1 {
					t.Fatalf("lead must start at intake with one entry: %+v", l)
				}
				return l, nil
			},
		)
		f.leads.EXPECT().List(gomock.Any()).Return([]entities.Lead{{ID: "lead-1"}}, nil)
		f.stream.EXPECT().Publish(gomock.Len(1))

		created, err := f.uc.CreateLead(context.Background(), " client-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestLeadUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newLeadFixture(t)
		_, err := f.uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidLeadID) {
			t.Fatalf("expected ErrInvalidLeadID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newLeadFixture(t)
		f.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{}, nil)

		_, err := f.uc.GetByID(context.Background(), "lead-1")
		if !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})
}

func TestLeadUseCase_Advance(t *testing.T) {
	t.Run("persists transition and broadcasts", func(t *testing.T) {
		f := newLeadFixture(t)
		lead := storedLead(t)

		f.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil)
		f.leads.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Lead{})).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if l.CurrentPhase != entities.PhaseAprovacaoCredito {
					t.Fatalf("expected aprovacao_credito, got %s", l.CurrentPhase)
				}
				if l.History[0].EndDate == nil || !l.History[0].EndDate.Equal(testNow) {
					t.Fatalf("closed entry must use the injected clock")
				}
				return l, nil
			},
		)
		f.leads.EXPECT().List(gomock.Any()).Return([]entities.Lead{}, nil)
		f.stream.EXPECT().Publish(gomock.Any())

		updated, err := f.uc.Advance(context.Background(), "lead-1", entities.LeadStatusConcluido, pipeline.Extras{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.LeadStatusEmAndamento {
			t.Fatalf("expected em_andamento, got %s", updated.Status)
		}
	})

	t.Run("transition error does not persist", func(t *testing.T) {
		f := newLeadFixture(t)
		lead := storedLead(t)

		f.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil)

		_, err := f.uc.Advance(context.Background(), "lead-1", entities.LeadStatusReprovado, pipeline.Extras{Motive: "x"})
		if !errors.Is(err, pipeline.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestLeadUseCase_Override(t *testing.T) {
	t.Run("operator rejected", func(t *testing.T) {
		f := newLeadFixture(t)
		actor := pipeline.Actor{ID: "op-1", Role: pipeline.RoleOperador}

		_, err := f.uc.Override(context.Background(), "lead-1", pipeline.OverridePatch{}, actor)
		if !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("admin patch audited", func(t *testing.T) {
		f := newLeadFixture(t)
		lead := storedLead(t)
		actor := pipeline.Actor{ID: "admin-1", Role: pipeline.RoleAdmin}
		msg := "correcao manual"

		f.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil)
		f.leads.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Lead{})).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if l.InternalMessage != msg {
					t.Fatalf("patch not applied: %+v", l)
				}
				if len(l.Overrides) != 1 || l.Overrides[0].ActorID != "admin-1" {
					t.Fatalf("override must be audited: %+v", l.Overrides)
				}
				return l, nil
			},
		)
		f.leads.EXPECT().List(gomock.Any()).Return([]entities.Lead{}, nil)
		f.stream.EXPECT().Publish(gomock.Any())

		_, err := f.uc.Override(context.Background(), "lead-1", pipeline.OverridePatch{InternalMessage: &msg}, actor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLeadUseCase_RequestDeletion(t *testing.T) {
	t.Run("admin deletes immediately", func(t *testing.T) {
		f := newLeadFixture(t)
		lead := storedLead(t)
		actor := pipeline.Actor{ID: "admin-1", Role: pipeline.RoleAdmin}

		f.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil)
		f.leads.EXPECT().Delete(gomock.Any(), "lead-1").Return(nil)
		f.leads.EXPECT().List(gomock.Any()).Return([]entities.Lead{}, nil)
		f.stream.EXPECT().Publish(gomock.Any())

		res, err := f.uc.RequestDeletion(context.Background(), "lead-1", actor, "duplicado")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Applied {
			t.Fatalf("admin deletion must be applied immediately")
		}
	})

	t.Run("operator parks an approval request", func(t *testing.T) {
		f := newLeadFixture(t)
		lead := storedLead(t)
		actor := pipeline.Actor{ID: "op-1", Role: pipeline.RoleOperador}

		f.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil)
		f.approvals.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ApprovalRequest{})).DoAndReturn(
			func(_ context.Context, r entities.ApprovalRequest) (entities.ApprovalRequest, error) {
				if r.Type != entities.ApprovalTypeExclusao || r.LeadID != "lead-1" {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.Status != entities.ApprovalStatusPendente || r.RequestedBy != "op-1" || r.Motive != "duplicado" {
					t.Fatalf("unexpected request: %+v", r)
				}
				return r, nil
			},
		)

		res, err := f.uc.RequestDeletion(context.Background(), "lead-1", actor, " duplicado ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Applied {
			t.Fatalf("operator deletion must be gated")
		}
		if res.Request.ID == "" {
			t.Fatalf("expected generated request id")
		}
	})
}

func TestLeadUseCase_RequestRegression(t *testing.T) {
	t.Run("invalid target phase", func(t *testing.T) {
		f := newLeadFixture(t)
		actor := pipeline.Actor{ID: "admin-1", Role: pipeline.RoleAdmin}

		_, err := f.uc.RequestRegression(context.Background(), "lead-1", entities.Phase("nao_existe"), actor, "x")
		if !errors.Is(err, ErrInvalidTarget) {
			t.Fatalf("expected ErrInvalidTarget, got %v", err)
		}
	})

	t.Run("forward move is not a regression", func(t *testing.T) {
		f := newLeadFixture(t)
		lead := storedLead(t)
		actor := pipeline.Actor{ID: "admin-1", Role: pipeline.RoleAdmin}

		f.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil)

		_, err := f.uc.RequestRegression(context.Background(), "lead-1", entities.PhaseCartorio, actor, "x")
		if !errors.Is(err, ErrNotARegression) {
			t.Fatalf("expected ErrNotARegression, got %v", err)
		}
	})

	t.Run("admin regresses via override", func(t *testing.T) {
		f := newLeadFixture(t)
		lead := storedLead(t)
		lead.CurrentPhase = entities.PhaseEngenharia
		actor := pipeline.Actor{ID: "admin-1", Role: pipeline.RoleAdmin}

		f.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil).Times(2)
		f.leads.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Lead{})).DoAndReturn(
			func(_ context.Context, l entities.Lead) (entities.Lead, error) {
				if l.CurrentPhase != entities.PhaseAprovacaoCredito {
					t.Fatalf("expected aprovacao_credito, got %s", l.CurrentPhase)
				}
				if len(l.Overrides) != 1 {
					t.Fatalf("regression must be audited as an override")
				}
				return l, nil
			},
		)
		f.leads.EXPECT().List(gomock.Any()).Return([]entities.Lead{}, nil)
		f.stream.EXPECT().Publish(gomock.Any())

		res, err := f.uc.RequestRegression(context.Background(), "lead-1", entities.PhaseAprovacaoCredito, actor, "documentos vencidos")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Applied {
			t.Fatalf("admin regression must be applied immediately")
		}
	})

	t.Run("operator parks an approval request", func(t *testing.T) {
		f := newLeadFixture(t)
		lead := storedLead(t)
		lead.CurrentPhase = entities.PhaseEngenharia
		actor := pipeline.Actor{ID: "op-1", Role: pipeline.RoleOperador}

		f.leads.EXPECT().GetByID(gomock.Any(), "lead-1").Return(lead, nil)
		f.approvals.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ApprovalRequest{})).DoAndReturn(
			func(_ context.Context, r entities.ApprovalRequest) (entities.ApprovalRequest, error) {
				if r.Type != entities.ApprovalTypeRegressao || r.TargetPhase != entities.PhaseAprovacaoCredito {
					t.Fatalf("unexpected request: %+v", r)
				}
				return r, nil
			},
		)

		res, err := f.uc.RequestRegression(context.Background(), "lead-1", entities.PhaseAprovacaoCredito, actor, "documentos vencidos")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Applied {
			t.Fatalf("operator regression must be gated")
		}
	})
}
