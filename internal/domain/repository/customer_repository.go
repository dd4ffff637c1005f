package repository

import "github.com/jhoicas/crm-kam-api/internal/domain/entity"

// CustomerFilter criterios de listado de cuentas clave.
type CustomerFilter struct {
	Search string // ya normalizado por el caso de uso
	Witel  string
	AMID   string
	Limit  int
	Offset int
}

// CustomerRepository puerto de persistencia para Customer.
type CustomerRepository interface {
	List(f CustomerFilter) ([]*entity.Customer, error)
	GetByID(id string) (*entity.Customer, error)
	Create(c *entity.Customer) error
	Update(c *entity.Customer) error
}

// ContactFilter criterios de listado de contactos.
type ContactFilter struct {
	Search     string
	CustomerID string
	Limit      int
	Offset     int
}

// ContactRepository puerto de persistencia para Contact.
type ContactRepository interface {
	List(f ContactFilter) ([]*entity.Contact, error)
	GetByID(id string) (*entity.Contact, error)
	Create(c *entity.Contact) error
	Update(c *entity.Contact) error
	Delete(id string) error
}
