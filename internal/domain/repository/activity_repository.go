package repository

import "github.com/jhoicas/crm-kam-api/internal/domain/entity"

// ActivityRepository puerto de persistencia para Activity.
type ActivityRepository interface {
	ListByAM(amID string) ([]*entity.Activity, error)
	GetByID(id string) (*entity.Activity, error)
	Create(a *entity.Activity) error
	Update(a *entity.Activity) error
	Delete(id string) error
}

// SalesPlanRepository puerto de persistencia para SalesPlan.
type SalesPlanRepository interface {
	ListByAM(amID string) ([]*entity.SalesPlan, error)
	ListByCustomer(customerID string) ([]*entity.SalesPlan, error)
	// ListAll vista de manager: todos los planes, paginados.
	ListAll(limit, offset int) ([]*entity.SalesPlan, error)
	GetByID(id string) (*entity.SalesPlan, error)
	Create(p *entity.SalesPlan) error
	Update(p *entity.SalesPlan) error
	Delete(id string) error
}

// AMProfileRepository puerto de persistencia para perfiles de AM.
type AMProfileRepository interface {
	List(limit, offset int) ([]*entity.AMProfile, error)
	// GetByKey busca por NIK o por IDSales; cualquiera de los dos puede ir
	// vacío.
	GetByKey(nik, idSales string) (*entity.AMProfile, error)
	Create(p *entity.AMProfile) error
	Update(p *entity.AMProfile) error
}
