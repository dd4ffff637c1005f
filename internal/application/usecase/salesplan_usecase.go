package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-kam-api/internal/application/dto"
	"github.com/jhoicas/crm-kam-api/internal/domain"
	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
	"github.com/jhoicas/crm-kam-api/internal/domain/repository"
)

// SalesPlanUseCase casos de uso de sales plans. Los montos objetivo son
// decimal.Decimal de extremo a extremo (NUMERIC en DB), nunca float.
type SalesPlanUseCase struct {
	repo repository.SalesPlanRepository
}

// NewSalesPlanUseCase construye el caso de uso.
func NewSalesPlanUseCase(repo repository.SalesPlanRepository) *SalesPlanUseCase {
	return &SalesPlanUseCase{repo: repo}
}

// ListByAM planes del AM autenticado.
func (uc *SalesPlanUseCase) ListByAM(amID string) ([]*dto.SalesPlanResponse, error) {
	list, err := uc.repo.ListByAM(amID)
	if err != nil {
		return nil, err
	}
	return toSalesPlanResponses(list), nil
}

// ListByCustomer planes de una cuenta clave.
func (uc *SalesPlanUseCase) ListByCustomer(customerID string) ([]*dto.SalesPlanResponse, error) {
	list, err := uc.repo.ListByCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return toSalesPlanResponses(list), nil
}

// ListAll vista de manager: todos los planes, paginados.
func (uc *SalesPlanUseCase) ListAll(limit, offset int) ([]*dto.SalesPlanResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListAll(limit, offset)
	if err != nil {
		return nil, err
	}
	return toSalesPlanResponses(list), nil
}

// GetByID devuelve un plan o ErrNotFound.
func (uc *SalesPlanUseCase) GetByID(id string) (*dto.SalesPlanResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toSalesPlanResponse(p), nil
}

// Create crea un plan en estado draft (salvo que se indique otro).
func (uc *SalesPlanUseCase) Create(amID string, in dto.UpsertSalesPlanRequest) (*dto.SalesPlanResponse, error) {
	if in.Title == "" || in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TargetAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.PlanDraft
	}
	now := time.Now()
	p := &entity.SalesPlan{
		ID:           uuid.New().String(),
		CustomerID:   in.CustomerID,
		AMID:         amID,
		Title:        in.Title,
		Period:       in.Period,
		TargetAmount: in.TargetAmount,
		Status:       status,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toSalesPlanResponse(p), nil
}

// Update edita un plan existente.
func (uc *SalesPlanUseCase) Update(id string, in dto.UpsertSalesPlanRequest) (*dto.SalesPlanResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.TargetAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Title != "" {
		p.Title = in.Title
	}
	if in.Period != "" {
		p.Period = in.Period
	}
	if !in.TargetAmount.IsZero() {
		p.TargetAmount = in.TargetAmount
	}
	if in.Status != "" {
		p.Status = in.Status
	}
	p.Notes = in.Notes
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toSalesPlanResponse(p), nil
}

// Delete elimina un plan.
func (uc *SalesPlanUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toSalesPlanResponse(p *entity.SalesPlan) *dto.SalesPlanResponse {
	return &dto.SalesPlanResponse{
		ID:           p.ID,
		CustomerID:   p.CustomerID,
		AMID:         p.AMID,
		Title:        p.Title,
		Period:       p.Period,
		TargetAmount: p.TargetAmount,
		Status:       p.Status,
		Notes:        p.Notes,
	}
}

func toSalesPlanResponses(list []*entity.SalesPlan) []*dto.SalesPlanResponse {
	out := make([]*dto.SalesPlanResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toSalesPlanResponse(p))
	}
	return out
}
