package dto

import "github.com/shopspring/decimal"

// SalesPlanResponse representación pública de un sales plan.
type SalesPlanResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer_id"`
	AMID         string          `json:"am_id"`
	Title        string          `json:"title"`
	Period       string          `json:"period"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes,omitempty"`
}

// UpsertSalesPlanRequest alta/edición de sales plan.
type UpsertSalesPlanRequest struct {
	CustomerID   string          `json:"customer_id"`
	Title        string          `json:"title"`
	Period       string          `json:"period"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes"`
}

// AMProfileResponse perfil público de un AM.
type AMProfileResponse struct {
	ID       string `json:"id"`
	NIK      string `json:"nik"`
	IDSales  string `json:"id_sales"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Witel    string `json:"witel,omitempty"`
	Region   string `json:"region,omitempty"`
	Position string `json:"position,omitempty"`
	PhotoRef string `json:"photo_ref,omitempty"`
}

// UpsertAMProfileRequest alta/edición de perfil de AM.
type UpsertAMProfileRequest struct {
	NIK      string `json:"nik"`
	IDSales  string `json:"id_sales"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Witel    string `json:"witel"`
	Region   string `json:"region"`
	Position string `json:"position"`
	PhotoRef string `json:"photo_ref"`
}
