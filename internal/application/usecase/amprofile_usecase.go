package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-kam-api/internal/application/dto"
	"github.com/jhoicas/crm-kam-api/internal/domain"
	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
	"github.com/jhoicas/crm-kam-api/internal/domain/repository"
)

// AMProfileUseCase casos de uso de perfiles de Account Manager.
type AMProfileUseCase struct {
	repo repository.AMProfileRepository
}

// NewAMProfileUseCase construye el caso de uso.
func NewAMProfileUseCase(repo repository.AMProfileRepository) *AMProfileUseCase {
	return &AMProfileUseCase{repo: repo}
}

// List perfiles paginados (vista manager/account-managers).
func (uc *AMProfileUseCase) List(limit, offset int) ([]*dto.AMProfileResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AMProfileResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toAMProfileResponse(p))
	}
	return out, nil
}

// Detail busca por NIK o IDSales (al menos uno requerido).
func (uc *AMProfileUseCase) Detail(nik, idSales string) (*dto.AMProfileResponse, error) {
	if nik == "" && idSales == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByKey(nik, idSales)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toAMProfileResponse(p), nil
}

// Create registra un perfil de AM.
func (uc *AMProfileUseCase) Create(in dto.UpsertAMProfileRequest) (*dto.AMProfileResponse, error) {
	if in.Name == "" || (in.NIK == "" && in.IDSales == "") {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.GetByKey(in.NIK, in.IDSales); existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	p := &entity.AMProfile{
		ID:        uuid.New().String(),
		NIK:       in.NIK,
		IDSales:   in.IDSales,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Witel:     in.Witel,
		Region:    in.Region,
		Position:  in.Position,
		PhotoRef:  in.PhotoRef,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toAMProfileResponse(p), nil
}

// Update edita el perfil identificado por NIK/IDSales.
func (uc *AMProfileUseCase) Update(nik, idSales string, in dto.UpsertAMProfileRequest) (*dto.AMProfileResponse, error) {
	p, err := uc.repo.GetByKey(nik, idSales)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		p.Name = in.Name
	}
	p.Email = in.Email
	p.Phone = in.Phone
	if in.Witel != "" {
		p.Witel = in.Witel
	}
	if in.Region != "" {
		p.Region = in.Region
	}
	p.Position = in.Position
	if in.PhotoRef != "" {
		p.PhotoRef = in.PhotoRef
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toAMProfileResponse(p), nil
}

func toAMProfileResponse(p *entity.AMProfile) *dto.AMProfileResponse {
	return &dto.AMProfileResponse{
		ID:       p.ID,
		NIK:      p.NIK,
		IDSales:  p.IDSales,
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		Witel:    p.Witel,
		Region:   p.Region,
		Position: p.Position,
		PhotoRef: p.PhotoRef,
	}
}
