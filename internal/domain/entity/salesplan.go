package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un sales plan.
const (
	PlanDraft     = "draft"
	PlanSubmitted = "submitted"
	PlanApproved  = "approved"
	PlanRejected  = "rejected"
)

// SalesPlan es el plan comercial de un AM para una cuenta clave.
type SalesPlan struct {
	ID           string
	CustomerID   string
	AMID         string // id_sales del AM responsable
	Title        string
	Period       string // ej. "2026-Q1"
	TargetAmount decimal.Decimal
	Status       string // draft, submitted, approved, rejected
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AMProfile es el perfil público de un Account Manager.
type AMProfile struct {
	ID        string
	NIK       string
	IDSales   string
	Name      string
	Email     string
	Phone     string
	Witel     string
	Region    string
	Position  string
	PhotoRef  string // referencia opaca a la foto de perfil
	CreatedAt time.Time
	UpdatedAt time.Time
}
