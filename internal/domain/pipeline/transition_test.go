package pipeline

import (
	"errors"
	"testing"
	"time"

	"habita_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var baseTime = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newLeadAt(t *testing.T, phase entities.Phase) entities.Lead {
	t.Helper()
	lead, err := entities.NewLead("lead-1", "client-1", "prop-1", "broker-1", "bank-1", "comp-1", baseTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Walk the lead forward with real transitions so history invariants hold.
	now := baseTime
	for lead.CurrentPhase != phase {
		now = now.Add(time.Hour)
		lead = completeCurrentPhase(t, lead, now)
	}
	return lead
}

func completeCurrentPhase(t *testing.T, lead entities.Lead, now time.Time) entities.Lead {
	t.Helper()
	ex := Extras{}
	switch lead.CurrentPhase {
	case entities.PhaseVisitaImovel:
		d := now
		ex.VisitDate = &d
	case entities.PhaseCartorio:
		d := now
		ex.RegistryDate = &d
	case entities.PhaseEngenharia:
		ok := true
		v := decimal.NewFromInt(450000)
		d := now
		ex.Appraised = &ok
		ex.AppraisalValue = &v
		ex.InspectionDate = &d
	}
	next, err := AdvancePhase(lead, entities.LeadStatusConcluido, now, ex)
	if err != nil {
		t.Fatalf("advancing from %s: %v", lead.CurrentPhase, err)
	}
	return next
}

func TestAdvancePhase_Concluido(t *testing.T) {
	lead := newLeadAt(t, entities.PhaseSimulacaoDocumentacao)
	now := baseTime.Add(time.Hour)

	next, err := AdvancePhase(lead, entities.LeadStatusConcluido, now, Extras{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.CurrentPhase != entities.PhaseAprovacaoCredito {
		t.Fatalf("expected aprovacao_credito, got %s", next.CurrentPhase)
	}
	if next.Status != entities.LeadStatusEmAndamento {
		t.Fatalf("expected em_andamento, got %s", next.Status)
	}
	if len(next.History) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(next.History))
	}

	closed := next.History[0]
	if closed.EndDate == nil || !closed.EndDate.Equal(now) || closed.Status != entities.LeadStatusConcluido {
		t.Fatalf("first entry not closed correctly: %+v", closed)
	}
	open := next.History[1]
	if open.Phase != entities.PhaseAprovacaoCredito || open.EndDate != nil || !open.StartDate.Equal(now) {
		t.Fatalf("unexpected open entry: %+v", open)
	}

	// Input snapshot is untouched.
	if lead.CurrentPhase != entities.PhaseSimulacaoDocumentacao || lead.History[0].EndDate != nil {
		t.Fatalf("AdvancePhase mutated its input")
	}
}

func TestAdvancePhase_SkippingIsImpossible(t *testing.T) {
	// The engine only ever moves to NextPhase; there is no input that names a
	// target. Completing the first phase can only land on the second.
	lead := newLeadAt(t, entities.PhaseSimulacaoDocumentacao)
	next, err := AdvancePhase(lead, entities.LeadStatusConcluido, baseTime.Add(time.Hour), Extras{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := entities.NextPhase(entities.PhaseSimulacaoDocumentacao); next.CurrentPhase != got {
		t.Fatalf("advance must be single-step, got %s", next.CurrentPhase)
	}
}

func TestAdvancePhase_FinalPhaseConcluido(t *testing.T) {
	lead := newLeadAt(t, entities.PhaseLiberacaoRecurso)
	now := baseTime.Add(24 * time.Hour)

	next, err := AdvancePhase(lead, entities.LeadStatusConcluido, now, Extras{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.CurrentPhase != entities.PhaseLiberacaoRecurso {
		t.Fatalf("completing the final phase must not move the lead, got %s", next.CurrentPhase)
	}
	if next.Status != entities.LeadStatusConcluido {
		t.Fatalf("expected concluido, got %s", next.Status)
	}
	if next.OpenEntry() != nil {
		t.Fatalf("concluded lead must not have an open entry")
	}
	if len(next.History) != len(lead.History) {
		t.Fatalf("final completion must not append a new entry")
	}
}

func TestAdvancePhase_ConcludedLeadIsTerminal(t *testing.T) {
	lead := newLeadAt(t, entities.PhaseLiberacaoRecurso)
	done, err := AdvancePhase(lead, entities.LeadStatusConcluido, baseTime.Add(24*time.Hour), Extras{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, outcome := range []entities.LeadStatus{
		entities.LeadStatusConcluido,
		entities.LeadStatusPendente,
	} {
		next, err := AdvancePhase(done, outcome, baseTime.Add(48*time.Hour), Extras{Motive: "tentativa tardia"})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("outcome %s on a concluded lead: expected ErrInvalidTransition, got %v", outcome, err)
		}
		if next.ID != "" {
			t.Fatalf("failed advance must return zero lead")
		}
	}
	if len(done.History) != len(lead.History) {
		t.Fatalf("rejected advance must not touch history")
	}
}

func TestAdvancePhase_NonConcluidoParksLead(t *testing.T) {
	lead := newLeadAt(t, entities.PhaseAprovacaoCredito)
	now := baseTime.Add(2 * time.Hour)

	next, err := AdvancePhase(lead, entities.LeadStatusReprovado, now, Extras{Motive: "renda insuficiente"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.CurrentPhase != entities.PhaseAprovacaoCredito {
		t.Fatalf("non-completing outcome must not move the lead, got %s", next.CurrentPhase)
	}
	if next.Status != entities.LeadStatusReprovado {
		t.Fatalf("expected reprovado, got %s", next.Status)
	}
	if next.Motive != "renda insuficiente" {
		t.Fatalf("expected motive on lead, got %q", next.Motive)
	}

	last := next.History[len(next.History)-1]
	if last.EndDate == nil || last.Status != entities.LeadStatusReprovado || last.Motive != "renda insuficiente" {
		t.Fatalf("closed entry must carry outcome and motive: %+v", last)
	}
	if next.OpenEntry() != nil {
		t.Fatalf("parked lead must not have an open entry")
	}
}

func TestAdvancePhase_MotiveRequiredForNonConcluido(t *testing.T) {
	lead := newLeadAt(t, entities.PhaseAprovacaoCredito)

	for _, motive := range []string{"", "   "} {
		_, err := AdvancePhase(lead, entities.LeadStatusPendente, baseTime.Add(time.Hour), Extras{Motive: motive})
		if !errors.Is(err, ErrMissingMotive) {
			t.Fatalf("motive %q: expected ErrMissingMotive, got %v", motive, err)
		}
	}

	// Concluido needs no motive.
	if _, err := AdvancePhase(lead, entities.LeadStatusConcluido, baseTime.Add(time.Hour), Extras{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAdvancePhase_ReAdvanceParkedLead(t *testing.T) {
	lead := newLeadAt(t, entities.PhaseAprovacaoCredito)
	parked, err := AdvancePhase(lead, entities.LeadStatusPendente, baseTime.Add(time.Hour), Extras{Motive: "aguardando documentos"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := baseTime.Add(48 * time.Hour)
	next, err := AdvancePhase(parked, entities.LeadStatusConcluido, now, Extras{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.CurrentPhase != entities.PhaseVisitaImovel {
		t.Fatalf("expected visita_imovel, got %s", next.CurrentPhase)
	}
	// The re-advance records a second occurrence of the same phase instead of
	// rewriting the parked one.
	if len(next.History) != len(parked.History)+2 {
		t.Fatalf("expected %d entries, got %d", len(parked.History)+2, len(next.History))
	}
	reopened := next.History[len(next.History)-2]
	if reopened.Phase != entities.PhaseAprovacaoCredito || reopened.Status != entities.LeadStatusConcluido {
		t.Fatalf("unexpected reopened entry: %+v", reopened)
	}
}

func TestAdvancePhase_ReAdvanceCancelledLead(t *testing.T) {
	// Cancelled (and rejected) leads are parked, not terminal: the ordinary
	// advance path reopens them with a fresh occurrence of the same phase.
	lead := newLeadAt(t, entities.PhaseAprovacaoCredito)
	parked, err := AdvancePhase(lead, entities.LeadStatusCancelado, baseTime.Add(time.Hour), Extras{Motive: "desistencia do comprador"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	next, err := AdvancePhase(parked, entities.LeadStatusConcluido, baseTime.Add(72*time.Hour), Extras{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.CurrentPhase != entities.PhaseVisitaImovel {
		t.Fatalf("expected visita_imovel, got %s", next.CurrentPhase)
	}
	if next.Status != entities.LeadStatusEmAndamento {
		t.Fatalf("expected em_andamento, got %s", next.Status)
	}
	if len(next.History) != len(parked.History)+2 {
		t.Fatalf("expected %d entries, got %d", len(parked.History)+2, len(next.History))
	}
}

func TestAdvancePhase_OutcomeVocabulary(t *testing.T) {
	t.Run("reprovado only at credit approval", func(t *testing.T) {
		for _, phase := range entities.Phases() {
			lead := newLeadAt(t, phase)
			_, err := AdvancePhase(lead, entities.LeadStatusReprovado, baseTime.Add(200*time.Hour), Extras{Motive: "x"})
			if phase == entities.PhaseAprovacaoCredito {
				if err != nil {
					t.Fatalf("phase %s: unexpected error: %v", phase, err)
				}
				continue
			}
			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("phase %s: expected ErrInvalidTransition, got %v", phase, err)
			}
		}
	})

	t.Run("funds release cannot be cancelled", func(t *testing.T) {
		lead := newLeadAt(t, entities.PhaseLiberacaoRecurso)
		_, err := AdvancePhase(lead, entities.LeadStatusCancelado, baseTime.Add(200*time.Hour), Extras{Motive: "x"})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("first phase cannot be parked pending", func(t *testing.T) {
		lead := newLeadAt(t, entities.PhaseSimulacaoDocumentacao)
		_, err := AdvancePhase(lead, entities.LeadStatusPendente, baseTime.Add(time.Hour), Extras{Motive: "x"})
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("unknown outcome", func(t *testing.T) {
		lead := newLeadAt(t, entities.PhaseSimulacaoDocumentacao)
		_, err := AdvancePhase(lead, entities.LeadStatus("urgente"), baseTime.Add(time.Hour), Extras{Motive: "x"})
		if !errors.Is(err, ErrUnknownOutcome) {
			t.Fatalf("expected ErrUnknownOutcome, got %v", err)
		}
	})
}

func TestAdvancePhase_CompletionData(t *testing.T) {
	t.Run("visit date required", func(t *testing.T) {
		lead := newLeadAt(t, entities.PhaseVisitaImovel)
		_, err := AdvancePhase(lead, entities.LeadStatusConcluido, baseTime.Add(time.Hour), Extras{})
		if !errors.Is(err, ErrMissingPhaseDate) {
			t.Fatalf("expected ErrMissingPhaseDate, got %v", err)
		}

		d := baseTime.Add(time.Hour)
		next, err := AdvancePhase(lead, entities.LeadStatusConcluido, d, Extras{VisitDate: &d})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.VisitDate == nil || !next.VisitDate.Equal(d) {
			t.Fatalf("visit date not recorded on lead")
		}
		closed := next.History[len(next.History)-2]
		if closed.VisitDate == nil || !closed.VisitDate.Equal(d) {
			t.Fatalf("visit date not recorded on closed entry")
		}
	})

	t.Run("registry date required", func(t *testing.T) {
		lead := newLeadAt(t, entities.PhaseCartorio)
		_, err := AdvancePhase(lead, entities.LeadStatusConcluido, baseTime.Add(time.Hour), Extras{})
		if !errors.Is(err, ErrMissingPhaseDate) {
			t.Fatalf("expected ErrMissingPhaseDate, got %v", err)
		}
	})

	t.Run("engineering appraisal required", func(t *testing.T) {
		lead := newLeadAt(t, entities.PhaseEngenharia)
		d := baseTime.Add(time.Hour)
		v := decimal.NewFromInt(450000)
		yes, no := true, false

		cases := []struct {
			name string
			ex   Extras
		}{
			{name: "nothing", ex: Extras{}},
			{name: "not appraised", ex: Extras{Appraised: &no, AppraisalValue: &v, InspectionDate: &d}},
			{name: "no value", ex: Extras{Appraised: &yes, InspectionDate: &d}},
			{name: "no inspection date", ex: Extras{Appraised: &yes, AppraisalValue: &v}},
		}
		for _, tc := range cases {
			if _, err := AdvancePhase(lead, entities.LeadStatusConcluido, d, tc.ex); !errors.Is(err, ErrAppraisalRequired) {
				t.Fatalf("%s: expected ErrAppraisalRequired, got %v", tc.name, err)
			}
		}

		next, err := AdvancePhase(lead, entities.LeadStatusConcluido, d, Extras{Appraised: &yes, AppraisalValue: &v, InspectionDate: &d})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.AppraisalValue == nil || !next.AppraisalValue.Equal(v) {
			t.Fatalf("appraisal value not recorded, got %v", next.AppraisalValue)
		}
	})
}

func TestAdvancePhase_HistoryStaysOrdered(t *testing.T) {
	lead := newLeadAt(t, entities.PhaseLiberacaoRecurso)
	done, err := AdvancePhase(lead, entities.LeadStatusConcluido, baseTime.Add(100*time.Hour), Extras{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(done.History) != len(entities.Phases()) {
		t.Fatalf("expected one entry per phase, got %d", len(done.History))
	}
	open := 0
	for i, e := range done.History {
		if e.Phase != entities.Phases()[i] {
			t.Fatalf("entry %d: expected %s, got %s", i, entities.Phases()[i], e.Phase)
		}
		if i > 0 && e.StartDate.Before(done.History[i-1].StartDate) {
			t.Fatalf("entry %d starts before its predecessor", i)
		}
		if e.EndDate == nil {
			open++
		}
	}
	if open != 0 {
		t.Fatalf("expected no open entries on a concluded lead, got %d", open)
	}
}

func TestAdvancePhase_InvalidInputs(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		_, err := AdvancePhase(entities.Lead{CurrentPhase: entities.FirstPhase()}, entities.LeadStatusConcluido, baseTime, Extras{})
		if !errors.Is(err, ErrEmptyHistory) {
			t.Fatalf("expected ErrEmptyHistory, got %v", err)
		}
	})

	t.Run("unknown phase", func(t *testing.T) {
		lead := newLeadAt(t, entities.PhaseSimulacaoDocumentacao)
		lead.CurrentPhase = entities.Phase("nao_existe")
		_, err := AdvancePhase(lead, entities.LeadStatusConcluido, baseTime, Extras{})
		if !errors.Is(err, ErrUnknownPhase) {
			t.Fatalf("expected ErrUnknownPhase, got %v", err)
		}
	})
}

func TestAllowedOutcomes(t *testing.T) {
	got := AllowedOutcomes(entities.PhaseAprovacaoCredito)
	if len(got) != 4 {
		t.Fatalf("expected 4 outcomes at credit approval, got %d", len(got))
	}
	got[0] = entities.LeadStatus("hackeado")
	if AllowedOutcomes(entities.PhaseAprovacaoCredito)[0] == "hackeado" {
		t.Fatalf("AllowedOutcomes must return a copy")
	}
}
