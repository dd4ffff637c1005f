package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-kam-api/internal/application/dto"
	"github.com/jhoicas/crm-kam-api/internal/domain"
	domactivity "github.com/jhoicas/crm-kam-api/internal/domain/activity"
	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
	"github.com/jhoicas/crm-kam-api/internal/domain/outlook"
	"github.com/jhoicas/crm-kam-api/internal/domain/repository"
)

// ActivityUseCase casos de uso de actividades de AM. Todos los métodos que
// dependen del reloj reciben `now` explícito: el caso de uso nunca lee el
// reloj global, de modo que una misma petición clasifica toda la colección
// contra el mismo instante.
type ActivityUseCase struct {
	repo repository.ActivityRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// List devuelve las actividades del AM filtradas por estado derivado
// ("all" para todas) y los contadores agregados de la colección completa.
func (uc *ActivityUseCase) List(amID, statusFilter string, now time.Time) (*dto.ActivityListResponse, error) {
	all, err := uc.repo.ListByAM(amID)
	if err != nil {
		return nil, err
	}
	if statusFilter == "" {
		statusFilter = domactivity.FilterAll
	}
	counts := domactivity.Aggregate(all, now)
	filtered := domactivity.FilterByStatus(all, statusFilter, now)

	out := make([]*dto.ActivityResponse, 0, len(filtered))
	for _, a := range filtered {
		out = append(out, toActivityResponse(a, now))
	}
	return &dto.ActivityListResponse{Data: out, Counts: counts}, nil
}

// GetByID devuelve una actividad decorada con su estado derivado.
func (uc *ActivityUseCase) GetByID(id string, now time.Time) (*dto.ActivityResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return toActivityResponse(a, now), nil
}

// Create registra una actividad nueva del AM.
func (uc *ActivityUseCase) Create(amID, createdBy string, in dto.UpsertActivityRequest, now time.Time) (*dto.ActivityResponse, error) {
	if in.Title == "" || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ActivityUpcoming
	}
	if status != entity.ActivityUpcoming && status != entity.ActivityCompleted {
		return nil, domain.ErrInvalidInput
	}
	a := &entity.Activity{
		ID:              uuid.New().String(),
		AMID:            amID,
		Title:           in.Title,
		Type:            in.Type,
		Date:            in.Date,
		Time:            in.Time,
		DurationMinutes: in.DurationMinutes,
		Location:        in.Location,
		Topic:           in.Topic,
		Description:     in.Description,
		Outcome:         in.Outcome,
		WithCustomer:    in.WithCustomer,
		Customer:        in.Customer,
		Invitees:        in.Invitees,
		Status:          status,
		CreatedBy:       createdBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toActivityResponse(a, now), nil
}

// Update edita los campos de la actividad. Los documentos de evidencia van
// por UpdateDocuments, que aplica la ventana de 7 días.
func (uc *ActivityUseCase) Update(id string, in dto.UpsertActivityRequest, now time.Time) (*dto.ActivityResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != "" {
		a.Title = in.Title
	}
	if in.Date != "" {
		a.Date = in.Date
	}
	a.Time = in.Time
	a.Type = in.Type
	a.DurationMinutes = in.DurationMinutes
	a.Location = in.Location
	a.Topic = in.Topic
	a.Description = in.Description
	a.Outcome = in.Outcome
	a.WithCustomer = in.WithCustomer
	a.Customer = in.Customer
	a.Invitees = in.Invitees
	if in.Status != "" {
		if in.Status != entity.ActivityUpcoming && in.Status != entity.ActivityCompleted {
			return nil, domain.ErrInvalidInput
		}
		a.Status = in.Status
	}
	a.UpdatedAt = now
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toActivityResponse(a, now), nil
}

// Delete elimina una actividad.
func (uc *ActivityUseCase) Delete(id string) error {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// UpdateDocuments adjunta/reemplaza las referencias de evidencia (proof y
// MoM). Solo es posible dentro de la ventana de edición: actividad pasada,
// con cliente y a lo sumo 7 días de antigüedad. Vencida la ventana devuelve
// ErrEditWindowClosed y no hay vía de excepción.
func (uc *ActivityUseCase) UpdateDocuments(id string, in dto.UpdateDocumentsRequest, now time.Time) (*dto.ActivityResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if !domactivity.DocsEditable(a, now) {
		return nil, domain.ErrEditWindowClosed
	}
	if in.ProofRef != "" {
		a.ProofRef = in.ProofRef
	}
	if in.MomRef != "" {
		a.MomRef = in.MomRef
	}
	a.UpdatedAt = now
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toActivityResponse(a, now), nil
}

// OutlookLink construye el deeplink de calendario de la actividad y la marca
// como añadida a Outlook. Si el enlace no puede construirse (sin fecha), se
// devuelve el marcador heredado "#" sin marcar la actividad.
func (uc *ActivityUseCase) OutlookLink(id string, now time.Time) (*dto.OutlookLinkResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	url, err := outlook.Build(a)
	if err != nil {
		return &dto.OutlookLinkResponse{URL: outlook.Placeholder, OutlookAdded: a.OutlookAdded}, nil
	}
	if !a.OutlookAdded {
		a.OutlookAdded = true
		a.UpdatedAt = now
		if err := uc.repo.Update(a); err != nil {
			return nil, err
		}
	}
	return &dto.OutlookLinkResponse{URL: url, OutlookAdded: true}, nil
}

func toActivityResponse(a *entity.Activity, now time.Time) *dto.ActivityResponse {
	computed := domactivity.ComputedStatus(a, now)
	return &dto.ActivityResponse{
		ID:              a.ID,
		AMID:            a.AMID,
		Title:           a.Title,
		Type:            a.Type,
		Date:            a.Date,
		Time:            a.Time,
		DurationMinutes: a.DurationMinutes,
		Location:        a.Location,
		Topic:           a.Topic,
		Description:     a.Description,
		Outcome:         a.Outcome,
		WithCustomer:    a.WithCustomer,
		Customer:        a.Customer,
		Invitees:        a.Invitees,
		Status:          a.Status,
		ComputedStatus:  computed,
		StatusLabel:     domactivity.StatusLabels[computed],
		ProofRef:        a.ProofRef,
		MomRef:          a.MomRef,
		OutlookAdded:    a.OutlookAdded,
		DocsEditable:    domactivity.DocsEditable(a, now),
	}
}
