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

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

const activityColumns = `id, am_id, title, type, activity_date, activity_time, duration_minutes,
		location, topic, description, outcome, with_customer, customer, invitees, status,
		proof_ref, mom_ref, outlook_added, created_by, created_at, updated_at`

// ActivityRepo implementación del puerto ActivityRepository sobre PostgreSQL.
// activity_date y activity_time se guardan como texto plano tal como llegan
// del cliente; el motor de estados en dominio es quien los interpreta.
// invitees es TEXT[] (el driver pgx escanea directo a []string).
type ActivityRepo struct {
	db dbtx
}

// NewActivityRepository construye el adaptador de persistencia para actividades.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepo {
	return &ActivityRepo{db: pool}
}

// ListByAM lista las actividades del AM, las más recientes primero por fecha
// de creación. El orden cronológico por fecha de actividad lo aplica el caso
// de uso junto con el cálculo de estados.
func (r *ActivityRepo) ListByAM(amID string) ([]*entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE am_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(context.Background(), query, amID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	return scanActivities(rows)
}

// GetByID obtiene una actividad por ID.
func (r *ActivityRepo) GetByID(id string) (*entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`
	var a entity.Activity
	err := r.db.QueryRow(context.Background(), query, id).Scan(activityFields(&a)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity by id: %w", err)
	}
	return &a, nil
}

// Create persiste una actividad.
func (r *ActivityRepo) Create(a *entity.Activity) error {
	query := `
		INSERT INTO activities (id, am_id, title, type, activity_date, activity_time, duration_minutes,
			location, topic, description, outcome, with_customer, customer, invitees, status,
			proof_ref, mom_ref, outlook_added, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.db.Exec(context.Background(), query,
		a.ID, a.AMID, a.Title, a.Type, a.Date, a.Time, a.DurationMinutes,
		a.Location, a.Topic, a.Description, a.Outcome, a.WithCustomer, a.Customer, a.Invitees, a.Status,
		a.ProofRef, a.MomRef, a.OutlookAdded, a.CreatedBy, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// Update actualiza una actividad.
func (r *ActivityRepo) Update(a *entity.Activity) error {
	query := `
		UPDATE activities SET title = $2, type = $3, activity_date = $4, activity_time = $5,
			duration_minutes = $6, location = $7, topic = $8, description = $9, outcome = $10,
			with_customer = $11, customer = $12, invitees = $13, status = $14,
			proof_ref = $15, mom_ref = $16, outlook_added = $17, updated_at = $18
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		a.ID, a.Title, a.Type, a.Date, a.Time,
		a.DurationMinutes, a.Location, a.Topic, a.Description, a.Outcome,
		a.WithCustomer, a.Customer, a.Invitees, a.Status,
		a.ProofRef, a.MomRef, a.OutlookAdded, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update activity: %w", err)
	}
	return nil
}

// Delete elimina una actividad por ID.
func (r *ActivityRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return nil
}

func activityFields(a *entity.Activity) []any {
	return []any{
		&a.ID, &a.AMID, &a.Title, &a.Type, &a.Date, &a.Time, &a.DurationMinutes,
		&a.Location, &a.Topic, &a.Description, &a.Outcome, &a.WithCustomer, &a.Customer, &a.Invitees, &a.Status,
		&a.ProofRef, &a.MomRef, &a.OutlookAdded, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	}
}

func scanActivities(rows pgx.Rows) ([]*entity.Activity, error) {
	var list []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(activityFields(&a)...); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
