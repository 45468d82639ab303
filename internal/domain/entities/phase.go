package entities

// Phase is one of the 8 fixed stages of the financing pipeline.
//
// Domain notes:
//   - The order is global and fixed; a lead always occupies exactly one phase.
//   - Normal advancement moves strictly one step forward; only an admin
//     override may place a lead elsewhere.

type Phase string

const (
	PhaseSimulacaoDocumentacao Phase = "simulacao_documentacao"
	PhaseAprovacaoCredito      Phase = "aprovacao_credito"
	PhaseVisitaImovel          Phase = "visita_imovel"
	PhaseEngenharia            Phase = "engenharia"
	PhaseEmissaoContrato       Phase = "emissao_contrato"
	PhaseAssinaturaContrato    Phase = "assinatura_contrato"
	PhaseCartorio              Phase = "cartorio"
	PhaseLiberacaoRecurso      Phase = "liberacao_recurso"
)

// orderedPhases is the single source of truth for pipeline order.
var orderedPhases = [...]Phase{
	PhaseSimulacaoDocumentacao,
	PhaseAprovacaoCredito,
	PhaseVisitaImovel,
	PhaseEngenharia,
	PhaseEmissaoContrato,
	PhaseAssinaturaContrato,
	PhaseCartorio,
	PhaseLiberacaoRecurso,
}

// Phases returns the pipeline phases in order. Callers get a fresh slice.
func Phases() []Phase {
	out := make([]Phase, len(orderedPhases))
	copy(out, orderedPhases[:])
	return out
}

// PhaseIndex returns the zero-based position of p in the pipeline, or -1
// when p is not a known phase.
func PhaseIndex(p Phase) int {
	for i, candidate := range orderedPhases {
		if candidate == p {
			return i
		}
	}
	return -1
}

// NextPhase returns the phase after p. ok is false when p is the final
// phase or unknown.
func NextPhase(p Phase) (next Phase, ok bool) {
	i := PhaseIndex(p)
	if i < 0 || i == len(orderedPhases)-1 {
		return "", false
	}
	return orderedPhases[i+1], true
}

// FirstPhase is where every lead starts.
func FirstPhase() Phase {
	return orderedPhases[0]
}

// FinalPhase is the funds-release stage that closes the pipeline.
func FinalPhase() Phase {
	return orderedPhases[len(orderedPhases)-1]
}

func IsFinalPhase(p Phase) bool {
	return p == FinalPhase()
}

func IsValidPhase(p Phase) bool {
	return PhaseIndex(p) >= 0
}
