package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reference entities are flat records maintained by the administrative
// screens. The pipeline only reads them, joining by id into lead-derived
// projections.

// Client links the person being financed to the property they are buying
// and to the parties involved in the deal.
type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	CPF   string `json:"cpf,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	PropertyID            string `json:"property_id,omitempty"`
	BrokerID              string `json:"broker_id,omitempty"`
	BankID                string `json:"bank_id,omitempty"`
	ConstructionCompanyID string `json:"construction_company_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Broker earns CommissionRate percent of the property value on each deal.
// Rates are whole-number percents: 1.5 means 1.5%.
type Broker struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CRECI          string          `json:"creci,omitempty"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	CreatedAt      time.Time       `json:"created_at"`
}

type Property struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	Address               string          `json:"address,omitempty"`
	Value                 decimal.Decimal `json:"value"`
	ConstructionCompanyID string          `json:"construction_company_id,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
}

type Bank struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ConstructionCompany struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CNPJ      string    `json:"cnpj,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
