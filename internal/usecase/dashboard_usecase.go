package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"habita_crm/internal/domain/entities"
	"habita_crm/internal/domain/finance"
	"habita_crm/internal/domain/pipeline"
	"habita_crm/internal/usecase/interfaces"
)

var (
	ErrBrokerNotFound   = errors.New("broker not found")
	ErrInvalidBrokerID  = errors.New("invalid broker id")
)

// DashboardSummary is the read-side projection behind the main screen.
type DashboardSummary struct {
	PhaseDistribution map[entities.Phase]int
	VGVIntake         decimal.Decimal
	VGVInApproval     decimal.Decimal
	TotalCommission   decimal.Decimal
	UrgentLeads       int
}

// BrokerCommission is the per-broker received/receivable split.
type BrokerCommission struct {
	BrokerID   string
	Rate       decimal.Decimal
	Received   decimal.Decimal
	Receivable decimal.Decimal
}

// IDashboardUseCase recomputes the monetary projections eagerly from the
// latest snapshots on every call; there is no incremental aggregation.
type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
	BrokerCommission(ctx context.Context, brokerID string) (BrokerCommission, error)
	UrgentLeads(ctx context.Context) ([]entities.Lead, error)
}

type DashboardUseCase struct {
	leads      interfaces.ILeadRepository
	properties interfaces.IReferenceRepository[entities.Property]
	brokers    interfaces.IReferenceRepository[entities.Broker]
	clock      interfaces.Clock
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	leads interfaces.ILeadRepository,
	properties interfaces.IReferenceRepository[entities.Property],
	brokers interfaces.IReferenceRepository[entities.Broker],
	clock interfaces.Clock,
) *DashboardUseCase {
	return &DashboardUseCase{leads: leads, properties: properties, brokers: brokers, clock: clock}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	leads, err := u.leads.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	properties, err := u.propertiesByID(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	brokers, err := u.brokersByID(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	intake, inApproval := finance.VGVBuckets(leads, properties)

	// Commission accrues once a lead is past intake.
	eligible := entities.Phases()[1:]

	urgent := 0
	now := u.clock.Now()
	for _, l := range leads {
		if pipeline.IsUrgent(l, now) {
			urgent++
		}
	}

	return DashboardSummary{
		PhaseDistribution: finance.PhaseDistribution(leads),
		VGVIntake:         intake,
		VGVInApproval:     inApproval,
		TotalCommission:   finance.TotalCommission(leads, properties, brokers, eligible),
		UrgentLeads:       urgent,
	}, nil
}

func (u *DashboardUseCase) BrokerCommission(ctx context.Context, brokerID string) (BrokerCommission, error) {
	brokerID = strings.TrimSpace(brokerID)
	if brokerID == "" {
		return BrokerCommission{}, ErrInvalidBrokerID
	}

	broker, err := u.brokers.GetByID(ctx, brokerID)
	if err != nil {
		return BrokerCommission{}, err
	}
	if broker.ID == "" {
		return BrokerCommission{}, ErrBrokerNotFound
	}

	leads, err := u.leads.List(ctx)
	if err != nil {
		return BrokerCommission{}, err
	}
	properties, err := u.propertiesByID(ctx)
	if err != nil {
		return BrokerCommission{}, err
	}

	received, receivable := finance.BrokerCommissionSplit(leads, properties, broker.ID, broker.CommissionRate)
	return BrokerCommission{
		BrokerID:   broker.ID,
		Rate:       broker.CommissionRate,
		Received:   received,
		Receivable: receivable,
	}, nil
}

func (u *DashboardUseCase) UrgentLeads(ctx context.Context) ([]entities.Lead, error) {
	leads, err := u.leads.List(ctx)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	urgent := make([]entities.Lead, 0)
	for _, l := range leads {
		if pipeline.IsUrgent(l, now) {
			urgent = append(urgent, l)
		}
	}
	return urgent, nil
}

func (u *DashboardUseCase) propertiesByID(ctx context.Context) (map[string]entities.Property, error) {
	list, err := u.properties.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]entities.Property, len(list))
	for _, p := range list {
		out[p.ID] = p
	}
	return out, nil
}

func (u *DashboardUseCase) brokersByID(ctx context.Context) (map[string]entities.Broker, error) {
	list, err := u.brokers.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]entities.Broker, len(list))
	for _, b := range list {
		out[b.ID] = b
	}
	return out, nil
}
