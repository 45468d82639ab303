package finance

import (
	"testing"
	"time"

	"habita_crm/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func leadAt(id, propertyID, brokerID string, phase entities.Phase) entities.Lead {
	return entities.Lead{
		ID:           id,
		PropertyID:   propertyID,
		BrokerID:     brokerID,
		CurrentPhase: phase,
		Status:       entities.LeadStatusEmAndamento,
		CreatedAt:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestPhaseDistribution(t *testing.T) {
	leads := []entities.Lead{
		leadAt("l1", "p1", "b1", entities.PhaseSimulacaoDocumentacao),
		leadAt("l2", "p2", "b1", entities.PhaseSimulacaoDocumentacao),
		leadAt("l3", "p3", "b2", entities.PhaseEngenharia),
		leadAt("l4", "p4", "b2", entities.Phase("nao_existe")),
	}

	dist := PhaseDistribution(leads)
	if len(dist) != 8 {
		t.Fatalf("expected all 8 phases in the distribution, got %d", len(dist))
	}
	if dist[entities.PhaseSimulacaoDocumentacao] != 2 {
		t.Fatalf("expected 2 at intake, got %d", dist[entities.PhaseSimulacaoDocumentacao])
	}
	if dist[entities.PhaseEngenharia] != 1 {
		t.Fatalf("expected 1 at engineering, got %d", dist[entities.PhaseEngenharia])
	}
	if dist[entities.PhaseCartorio] != 0 {
		t.Fatalf("empty phase must still be present with zero")
	}
}

func TestCommission(t *testing.T) {
	// 1.5% of 450000 = 6750.
	got := Commission(decimal.NewFromInt(450000), decimal.NewFromFloat(1.5))
	if !got.Equal(decimal.NewFromInt(6750)) {
		t.Fatalf("expected 6750, got %s", got)
	}

	// Whole-number rates: 5% of 300000 = 15000.
	got = Commission(decimal.NewFromInt(300000), decimal.NewFromInt(5))
	if !got.Equal(decimal.NewFromInt(15000)) {
		t.Fatalf("expected 15000, got %s", got)
	}
}

func TestValueAtPhase(t *testing.T) {
	leads := []entities.Lead{
		leadAt("l1", "p1", "b1", entities.PhaseVisitaImovel),
		leadAt("l2", "p2", "b1", entities.PhaseVisitaImovel),
		leadAt("l3", "p-missing", "b1", entities.PhaseVisitaImovel),
		leadAt("l4", "p1", "b1", entities.PhaseCartorio),
	}
	props := map[string]entities.Property{
		"p1": {ID: "p1", Value: decimal.NewFromInt(400000)},
		"p2": {ID: "p2", Value: decimal.NewFromInt(250000)},
	}

	got := ValueAtPhase(leads, props, entities.PhaseVisitaImovel)
	if !got.Equal(decimal.NewFromInt(650000)) {
		t.Fatalf("expected 650000, got %s", got)
	}
}

func TestVGVBuckets(t *testing.T) {
	leads := []entities.Lead{
		leadAt("l1", "p1", "b1", entities.PhaseSimulacaoDocumentacao),
		leadAt("l2", "p2", "b1", entities.PhaseAprovacaoCredito),
		leadAt("l3", "p3", "b1", entities.PhaseLiberacaoRecurso),
		leadAt("l4", "p-missing", "b1", entities.PhaseAprovacaoCredito),
		leadAt("l5", "p1", "b1", entities.Phase("nao_existe")),
	}
	props := map[string]entities.Property{
		"p1": {ID: "p1", Value: decimal.NewFromInt(100000)},
		"p2": {ID: "p2", Value: decimal.NewFromInt(200000)},
		"p3": {ID: "p3", Value: decimal.NewFromInt(300000)},
	}

	intake, inApproval := VGVBuckets(leads, props)
	if !intake.Equal(decimal.NewFromInt(100000)) {
		t.Fatalf("expected intake 100000, got %s", intake)
	}
	if !inApproval.Equal(decimal.NewFromInt(500000)) {
		t.Fatalf("expected in-approval 500000, got %s", inApproval)
	}
}

func TestTotalCommission(t *testing.T) {
	leads := []entities.Lead{
		leadAt("l1", "p1", "b1", entities.PhaseSimulacaoDocumentacao), // not eligible
		leadAt("l2", "p2", "b1", entities.PhaseEngenharia),
		leadAt("l3", "p3", "b2", entities.PhaseLiberacaoRecurso),
		leadAt("l4", "p-missing", "b1", entities.PhaseEngenharia), // skipped join
		leadAt("l5", "p2", "b-missing", entities.PhaseEngenharia), // skipped join
	}
	props := map[string]entities.Property{
		"p1": {ID: "p1", Value: decimal.NewFromInt(100000)},
		"p2": {ID: "p2", Value: decimal.NewFromInt(450000)},
		"p3": {ID: "p3", Value: decimal.NewFromInt(200000)},
	}
	brokers := map[string]entities.Broker{
		"b1": {ID: "b1", CommissionRate: decimal.NewFromFloat(1.5)},
		"b2": {ID: "b2", CommissionRate: decimal.NewFromInt(2)},
	}

	got := TotalCommission(leads, props, brokers, entities.Phases()[1:])
	// 1.5% of 450000 + 2% of 200000 = 6750 + 4000.
	if !got.Equal(decimal.NewFromInt(10750)) {
		t.Fatalf("expected 10750, got %s", got)
	}
}

func TestBrokerCommissionSplit(t *testing.T) {
	leads := []entities.Lead{
		leadAt("l1", "p1", "b1", entities.PhaseSimulacaoDocumentacao), // intake: neither bucket
		leadAt("l2", "p2", "b1", entities.PhaseEngenharia),            // receivable
		leadAt("l3", "p3", "b1", entities.PhaseLiberacaoRecurso),      // received
		leadAt("l4", "p2", "b2", entities.PhaseEngenharia),            // other broker
		leadAt("l5", "p-missing", "b1", entities.PhaseEngenharia),     // skipped join
	}
	props := map[string]entities.Property{
		"p1": {ID: "p1", Value: decimal.NewFromInt(100000)},
		"p2": {ID: "p2", Value: decimal.NewFromInt(450000)},
		"p3": {ID: "p3", Value: decimal.NewFromInt(200000)},
	}
	rate := decimal.NewFromFloat(1.5)

	received, receivable := BrokerCommissionSplit(leads, props, "b1", rate)
	if !received.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("expected received 3000, got %s", received)
	}
	if !receivable.Equal(decimal.NewFromInt(6750)) {
		t.Fatalf("expected receivable 6750, got %s", receivable)
	}
}
