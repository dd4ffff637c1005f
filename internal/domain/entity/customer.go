package entity

import "time"

// Customer es una cuenta clave (cliente corporativo) gestionada por un AM.
type Customer struct {
	ID        string
	NIPNAS    string // número de cliente corporativo
	Name      string
	Witel     string // unidad territorial (wilayah telekomunikasi)
	Region    string
	Segment   string // B2B, enterprise, government, ...
	Address   string
	AMID      string // AM responsable (id_sales)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contact es una persona de contacto dentro de un Customer.
type Contact struct {
	ID         string
	CustomerID string
	Name       string
	Position   string
	Email      string
	Phone      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
