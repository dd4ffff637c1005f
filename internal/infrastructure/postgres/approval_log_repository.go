package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
	"github.com/jhoicas/crm-kam-api/internal/domain/repository"
)

var _ repository.ApprovalLogRepository = (*ApprovalLogRepo)(nil)

// ApprovalLogRepo registro de auditoría de decisiones de aprobación.
type ApprovalLogRepo struct {
	db dbtx
}

// NewApprovalLogRepository construye el adaptador de persistencia de auditoría.
func NewApprovalLogRepository(pool *pgxpool.Pool) *ApprovalLogRepo {
	return &ApprovalLogRepo{db: pool}
}

// newApprovalLogRepoTx variante sobre una transacción en curso.
func newApprovalLogRepoTx(tx pgx.Tx) *ApprovalLogRepo {
	return &ApprovalLogRepo{db: tx}
}

// Record persiste una decisión.
func (r *ApprovalLogRepo) Record(d *entity.ApprovalDecision) error {
	query := `
		INSERT INTO approval_log (id, user_id, decided_by, decision, decided_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query,
		d.ID, d.UserID, d.DecidedBy, d.Decision, d.DecidedAt,
	)
	if err != nil {
		return fmt.Errorf("insert approval decision: %w", err)
	}
	return nil
}

// ListByUser historial de decisiones sobre una cuenta, la más reciente primero.
func (r *ApprovalLogRepo) ListByUser(userID string) ([]*entity.ApprovalDecision, error) {
	query := `
		SELECT id, user_id, decided_by, decision, decided_at
		FROM approval_log WHERE user_id = $1 ORDER BY decided_at DESC`
	rows, err := r.db.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list approval decisions: %w", err)
	}
	defer rows.Close()
	var list []*entity.ApprovalDecision
	for rows.Next() {
		var d entity.ApprovalDecision
		if err := rows.Scan(&d.ID, &d.UserID, &d.DecidedBy, &d.Decision, &d.DecidedAt); err != nil {
			return nil, fmt.Errorf("scan approval decision: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
