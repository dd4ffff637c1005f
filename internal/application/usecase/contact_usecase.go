package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-kam-api/internal/application/dto"
	"github.com/jhoicas/crm-kam-api/internal/domain"
	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
	"github.com/jhoicas/crm-kam-api/internal/domain/repository"
)

// ContactUseCase casos de uso de contactos de cuentas clave.
type ContactUseCase struct {
	repo repository.ContactRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

// List lista contactos con búsqueda y filtro por cuenta.
func (uc *ContactUseCase) List(search, customerID string, limit, offset int) ([]*dto.ContactResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(repository.ContactFilter{
		Search:     NormalizeSearch(search),
		CustomerID: customerID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContactResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toContactResponse(c))
	}
	return out, nil
}

// GetByID devuelve un contacto o ErrNotFound.
func (uc *ContactUseCase) GetByID(id string) (*dto.ContactResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toContactResponse(c), nil
}

// Create crea un contacto.
func (uc *ContactUseCase) Create(in dto.UpsertContactRequest) (*dto.ContactResponse, error) {
	if in.Name == "" || in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Contact{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Name:       in.Name,
		Position:   in.Position,
		Email:      in.Email,
		Phone:      in.Phone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toContactResponse(c), nil
}

// Update edita un contacto existente.
func (uc *ContactUseCase) Update(id string, in dto.UpsertContactRequest) (*dto.ContactResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		c.Name = in.Name
	}
	c.Position = in.Position
	c.Email = in.Email
	c.Phone = in.Phone
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toContactResponse(c), nil
}

// Delete elimina un contacto.
func (uc *ContactUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toContactResponse(c *entity.Contact) *dto.ContactResponse {
	return &dto.ContactResponse{
		ID:         c.ID,
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Position:   c.Position,
		Email:      c.Email,
		Phone:      c.Phone,
	}
}
