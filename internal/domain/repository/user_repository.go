package repository

import "github.com/jhoicas/crm-kam-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// ListManagers devuelve los managers activos (para el formulario de
	// registro).
	ListManagers() ([]*entity.User, error)
	// ListPending devuelve cuentas en estado pending; managerID vacío lista
	// todas (vista admin), no vacío filtra por manager asignado.
	ListPending(managerID string) ([]*entity.User, error)
}
