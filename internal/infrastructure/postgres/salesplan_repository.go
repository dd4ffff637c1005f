package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
	"github.com/jhoicas/crm-kam-api/internal/domain/repository"
)

var _ repository.SalesPlanRepository = (*SalesPlanRepo)(nil)

const salesPlanColumns = `id, customer_id, am_id, title, period, target_amount, status, notes, created_at, updated_at`

// SalesPlanRepo implementación del puerto SalesPlanRepository sobre PostgreSQL.
// target_amount es NUMERIC: el codec pgx-shopspring-decimal registrado en el
// pool lo escanea directo a decimal.Decimal.
type SalesPlanRepo struct {
	db dbtx
}

// NewSalesPlanRepository construye el adaptador de persistencia para sales plans.
func NewSalesPlanRepository(pool *pgxpool.Pool) *SalesPlanRepo {
	return &SalesPlanRepo{db: pool}
}

// ListByAM planes del AM, los más recientes primero.
func (r *SalesPlanRepo) ListByAM(amID string) ([]*entity.SalesPlan, error) {
	query := `SELECT ` + salesPlanColumns + ` FROM sales_plans WHERE am_id = $1 ORDER BY created_at DESC`
	return r.queryMany(query, "list sales plans by am", amID)
}

// ListByCustomer planes de una cuenta clave.
func (r *SalesPlanRepo) ListByCustomer(customerID string) ([]*entity.SalesPlan, error) {
	query := `SELECT ` + salesPlanColumns + ` FROM sales_plans WHERE customer_id = $1 ORDER BY created_at DESC`
	return r.queryMany(query, "list sales plans by customer", customerID)
}

// ListAll todos los planes paginados (vista manager).
func (r *SalesPlanRepo) ListAll(limit, offset int) ([]*entity.SalesPlan, error) {
	query := `SELECT ` + salesPlanColumns + ` FROM sales_plans ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryMany(query, "list sales plans", limit, offset)
}

// GetByID obtiene un plan por ID.
func (r *SalesPlanRepo) GetByID(id string) (*entity.SalesPlan, error) {
	query := `SELECT ` + salesPlanColumns + ` FROM sales_plans WHERE id = $1`
	var p entity.SalesPlan
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.CustomerID, &p.AMID, &p.Title, &p.Period, &p.TargetAmount, &p.Status, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales plan by id: %w", err)
	}
	return &p, nil
}

// Create persiste un plan.
func (r *SalesPlanRepo) Create(p *entity.SalesPlan) error {
	query := `
		INSERT INTO sales_plans (id, customer_id, am_id, title, period, target_amount, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.CustomerID, p.AMID, p.Title, p.Period, p.TargetAmount, p.Status, p.Notes,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sales plan: %w", err)
	}
	return nil
}

// Update actualiza un plan.
func (r *SalesPlanRepo) Update(p *entity.SalesPlan) error {
	query := `
		UPDATE sales_plans SET title = $2, period = $3, target_amount = $4, status = $5, notes = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.Title, p.Period, p.TargetAmount, p.Status, p.Notes, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sales plan: %w", err)
	}
	return nil
}

// Delete elimina un plan por ID.
func (r *SalesPlanRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM sales_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sales plan: %w", err)
	}
	return nil
}

func (r *SalesPlanRepo) queryMany(query, op string, args ...any) ([]*entity.SalesPlan, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.SalesPlan
	for rows.Next() {
		var p entity.SalesPlan
		if err := rows.Scan(
			&p.ID, &p.CustomerID, &p.AMID, &p.Title, &p.Period, &p.TargetAmount, &p.Status, &p.Notes,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sales plan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
