package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
	"github.com/jhoicas/crm-kam-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only para los dashboards. Devuelve filas
// crudas: los estados derivados de actividades los calcula el caso de uso
// con un único snapshot de `now`.
type AnalyticsRepo struct {
	db dbtx
}

// NewAnalyticsRepository construye el adaptador de consultas de dashboards.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{db: pool}
}

// ListAMsByManager devuelve los AM activos asignados al manager.
func (r *AnalyticsRepo) ListAMsByManager(ctx context.Context, managerID string) ([]*entity.User, error) {
	query := `
		SELECT id, name, id_sales, witel, region
		FROM users
		WHERE manager_id = $1 AND role = $2 AND status = $3
		ORDER BY name`
	rows, err := r.db.Query(ctx, query, managerID, entity.RoleSales, entity.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list ams by manager: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.IDSales, &u.Witel, &u.Region); err != nil {
			return nil, fmt.Errorf("scan am: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// ActivitiesByAMs devuelve las actividades de los AM indicados agrupadas por
// am_id. Lista vacía devuelve mapa vacío sin tocar la DB.
func (r *AnalyticsRepo) ActivitiesByAMs(ctx context.Context, amIDs []string) (map[string][]*entity.Activity, error) {
	out := make(map[string][]*entity.Activity)
	if len(amIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT ` + activityColumns + `
		FROM activities WHERE am_id = ANY($1)
		ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, amIDs)
	if err != nil {
		return nil, fmt.Errorf("list activities by ams: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(activityFields(&a)...); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out[a.AMID] = append(out[a.AMID], &a)
	}
	return out, rows.Err()
}

// RevenueByRegion agrega sales plans por región/witel. target_amount es
// NUMERIC y se escanea a decimal.Decimal (codec registrado en el pool).
func (r *AnalyticsRepo) RevenueByRegion(ctx context.Context) ([]repository.RegionRevenue, error) {
	query := `
		SELECT region, witel, COUNT(*), COALESCE(SUM(target_amount), 0)
		FROM sales_plans sp
		JOIN customers c ON c.id = sp.customer_id
		GROUP BY region, witel
		ORDER BY region, witel`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("revenue by region: %w", err)
	}
	defer rows.Close()
	var list []repository.RegionRevenue
	for rows.Next() {
		var rr repository.RegionRevenue
		if err := rows.Scan(&rr.Region, &rr.Witel, &rr.PlanCount, &rr.TargetTotal); err != nil {
			return nil, fmt.Errorf("scan region revenue: %w", err)
		}
		list = append(list, rr)
	}
	return list, rows.Err()
}
