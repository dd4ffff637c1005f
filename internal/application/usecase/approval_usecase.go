package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/crm-kam-api/internal/application/dto"
	"github.com/jhoicas/crm-kam-api/internal/domain"
	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
	"github.com/jhoicas/crm-kam-api/internal/domain/repository"
)

// ApprovalTxRunner ejecuta la decisión de aprobación de forma atómica: el
// cambio de estado de la cuenta y su registro de auditoría van en la misma
// transacción.
type ApprovalTxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		log repository.ApprovalLogRepository,
	) error) error
}

// ApprovalUseCase bandejas de aprobación de cuentas pendientes. La bandeja
// del admin ve todas; la del manager solo las cuentas que lo eligieron como
// manager al registrarse.
type ApprovalUseCase struct {
	userRepo repository.UserRepository
	tx       ApprovalTxRunner
}

// NewApprovalUseCase construye el caso de uso.
func NewApprovalUseCase(userRepo repository.UserRepository, tx ApprovalTxRunner) *ApprovalUseCase {
	return &ApprovalUseCase{userRepo: userRepo, tx: tx}
}

// PendingForAdmin todas las cuentas pendientes.
func (uc *ApprovalUseCase) PendingForAdmin() ([]dto.ApprovalItemDTO, error) {
	return uc.pending("")
}

// PendingForManager cuentas pendientes asignadas al manager.
func (uc *ApprovalUseCase) PendingForManager(managerID string) ([]dto.ApprovalItemDTO, error) {
	if managerID == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.pending(managerID)
}

func (uc *ApprovalUseCase) pending(managerID string) ([]dto.ApprovalItemDTO, error) {
	list, err := uc.userRepo.ListPending(managerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ApprovalItemDTO, 0, len(list))
	for _, u := range list {
		out = append(out, dto.ApprovalItemDTO{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Name:      u.Name,
			Role:      u.Role,
			ManagerID: u.ManagerID,
			Witel:     u.Witel,
			Region:    u.Region,
		})
	}
	return out, nil
}

// Approve activa la cuenta pendiente y registra la decisión.
func (uc *ApprovalUseCase) Approve(ctx context.Context, userID, decidedBy string) error {
	return uc.decide(ctx, userID, decidedBy, entity.DecisionApproved, entity.StatusActive)
}

// Reject rechaza la cuenta pendiente y registra la decisión.
func (uc *ApprovalUseCase) Reject(ctx context.Context, userID, decidedBy string) error {
	return uc.decide(ctx, userID, decidedBy, entity.DecisionRejected, entity.StatusRejected)
}

func (uc *ApprovalUseCase) decide(ctx context.Context, userID, decidedBy, decision, newStatus string) error {
	if userID == "" {
		return domain.ErrInvalidInput
	}
	return uc.tx.Run(ctx, func(users repository.UserRepository, log repository.ApprovalLogRepository) error {
		u, err := users.GetByID(userID)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrNotFound
		}
		if u.Status != entity.StatusPending {
			return domain.ErrConflict
		}
		now := time.Now()
		u.Status = newStatus
		u.UpdatedAt = now
		if err := users.Update(u); err != nil {
			return err
		}
		return log.Record(&entity.ApprovalDecision{
			ID:        uuid.New().String(),
			UserID:    userID,
			DecidedBy: decidedBy,
			Decision:  decision,
			DecidedAt: now,
		})
	})
}
