package entities

import "testing"

func TestPhaseOrder(t *testing.T) {
	want := []Phase{
		PhaseSimulacaoDocumentacao,
		PhaseAprovacaoCredito,
		PhaseVisitaImovel,
		PhaseEngenharia,
		PhaseEmissaoContrato,
		PhaseAssinaturaContrato,
		PhaseCartorio,
		PhaseLiberacaoRecurso,
	}

	got := Phases()
	if len(got) != len(want) {
		t.Fatalf("expected %d phases, got %d", len(want), len(got))
	}
	for i, p := range want {
		if got[i] != p {
			t.Fatalf("phase %d: expected %s, got %s", i, p, got[i])
		}
	}
}

func TestPhasesReturnsCopy(t *testing.T) {
	got := Phases()
	got[0] = Phase("hackeado")
	if Phases()[0] != PhaseSimulacaoDocumentacao {
		t.Fatalf("Phases must not expose the internal order")
	}
}

func TestPhaseIndex(t *testing.T) {
	if i := PhaseIndex(PhaseSimulacaoDocumentacao); i != 0 {
		t.Fatalf("expected 0, got %d", i)
	}
	if i := PhaseIndex(PhaseLiberacaoRecurso); i != 7 {
		t.Fatalf("expected 7, got %d", i)
	}
	if i := PhaseIndex(Phase("nao_existe")); i != -1 {
		t.Fatalf("expected -1 for unknown phase, got %d", i)
	}
}

func TestNextPhase(t *testing.T) {
	next, ok := NextPhase(PhaseSimulacaoDocumentacao)
	if !ok || next != PhaseAprovacaoCredito {
		t.Fatalf("expected aprovacao_credito, got %s ok=%v", next, ok)
	}

	if _, ok := NextPhase(PhaseLiberacaoRecurso); ok {
		t.Fatalf("final phase must not have a successor")
	}

	if _, ok := NextPhase(Phase("nao_existe")); ok {
		t.Fatalf("unknown phase must not have a successor")
	}
}

func TestFirstAndFinalPhase(t *testing.T) {
	if FirstPhase() != PhaseSimulacaoDocumentacao {
		t.Fatalf("unexpected first phase: %s", FirstPhase())
	}
	if FinalPhase() != PhaseLiberacaoRecurso {
		t.Fatalf("unexpected final phase: %s", FinalPhase())
	}
	if !IsFinalPhase(PhaseLiberacaoRecurso) || IsFinalPhase(PhaseCartorio) {
		t.Fatalf("IsFinalPhase misclassified")
	}
}

func TestIsValidPhase(t *testing.T) {
	for _, p := range Phases() {
		if !IsValidPhase(p) {
			t.Fatalf("expected %s to be valid", p)
		}
	}
	if IsValidPhase(Phase("urgente")) {
		t.Fatalf("statuses are not phases")
	}
}
