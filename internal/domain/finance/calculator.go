// Package finance holds the read-side monetary projections over the lead
// collection joined with reference data. Everything here is pure: callers
// pass immutable snapshots, leads with unresolved joins contribute zero.
package finance

import (
	"github.com/shopspring/decimal"

	"habita_crm/internal/domain/entities"
)

var oneHundred = decimal.NewFromInt(100)

// PhaseDistribution counts leads per phase. All 8 phases are present in
// the result even when zero, so charts render a stable axis.
func PhaseDistribution(leads []entities.Lead) map[entities.Phase]int {
	dist := make(map[entities.Phase]int, 8)
	for _, p := range entities.Phases() {
		dist[p] = 0
	}
	for _, l := range leads {
		if _, ok := dist[l.CurrentPhase]; ok {
			dist[l.CurrentPhase]++
		}
	}
	return dist
}

// ValueAtPhase sums property values of leads currently at the given phase.
// Leads whose property cannot be resolved are skipped.
func ValueAtPhase(leads []entities.Lead, properties map[string]entities.Property, phase entities.Phase) decimal.Decimal {
	total := decimal.Zero
	for _, l := range leads {
		if l.CurrentPhase != phase {
			continue
		}
		prop, ok := properties[l.PropertyID]
		if !ok {
			continue
		}
		total = total.Add(prop.Value)
	}
	return total
}

// VGVBuckets splits the aggregate property value (VGV) into the intake
// bucket (first phase) and the in-approval bucket (everything after it).
func VGVBuckets(leads []entities.Lead, properties map[string]entities.Property) (intake, inApproval decimal.Decimal) {
	intake = decimal.Zero
	inApproval = decimal.Zero
	for _, l := range leads {
		prop, ok := properties[l.PropertyID]
		if !ok {
			continue
		}
		if l.CurrentPhase == entities.FirstPhase() {
			intake = intake.Add(prop.Value)
		} else if entities.IsValidPhase(l.CurrentPhase) {
			inApproval = inApproval.Add(prop.Value)
		}
	}
	return intake, inApproval
}

// Commission is property value times the broker's whole-number percent
// rate: value * rate / 100.
func Commission(value, rate decimal.Decimal) decimal.Decimal {
	return value.Mul(rate).Div(oneHundred)
}

// TotalCommission accumulates commission for leads whose current phase is
// in eligiblePhases and whose property and broker both resolve. Missing
// joins are skipped, never an error.
func TotalCommission(leads []entities.Lead, properties map[string]entities.Property, brokers map[string]entities.Broker, eligiblePhases []entities.Phase) decimal.Decimal {
	eligible := make(map[entities.Phase]bool, len(eligiblePhases))
	for _, p := range eligiblePhases {
		eligible[p] = true
	}

	total := decimal.Zero
	for _, l := range leads {
		if !eligible[l.CurrentPhase] {
			continue
		}
		prop, ok := properties[l.PropertyID]
		if !ok {
			continue
		}
		broker, ok := brokers[l.BrokerID]
		if !ok {
			continue
		}
		total = total.Add(Commission(prop.Value, broker.CommissionRate))
	}
	return total
}

// BrokerCommissionSplit partitions one broker's pipeline into commission
// already received (leads at the final phase, funds released) and
// commission receivable (leads past intake but not yet released). Intake
// leads contribute to neither bucket.
func BrokerCommissionSplit(leads []entities.Lead, properties map[string]entities.Property, brokerID string, rate decimal.Decimal) (received, receivable decimal.Decimal) {
	received = decimal.Zero
	receivable = decimal.Zero
	for _, l := range leads {
		if l.BrokerID != brokerID {
			continue
		}
		prop, ok := properties[l.PropertyID]
		if !ok {
			continue
		}
		c := Commission(prop.Value, rate)
		switch {
		case entities.IsFinalPhase(l.CurrentPhase):
			received = received.Add(c)
		case l.CurrentPhase != entities.FirstPhase() && entities.IsValidPhase(l.CurrentPhase):
			receivable = receivable.Add(c)
		}
	}
	return received, receivable
}
