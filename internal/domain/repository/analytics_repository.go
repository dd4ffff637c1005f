package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
)

// RegionRevenue agregado de planes comerciales por región/witel. Los montos
// son NUMERIC en DB y decimal.Decimal en dominio (nunca float).
type RegionRevenue struct {
	Region      string          `json:"region"`
	Witel       string          `json:"witel"`
	PlanCount   int             `json:"plan_count"`
	TargetTotal decimal.Decimal `json:"target_total"`
}

// AnalyticsRepository consultas read-only para los dashboards de manager y
// ejecutivo. Los estados derivados de actividades NO se calculan en SQL: el
// repositorio devuelve las filas crudas y el caso de uso aplica el motor de
// estados con un único `now`.
type AnalyticsRepository interface {
	ListAMsByManager(ctx context.Context, managerID string) ([]*entity.User, error)
	ActivitiesByAMs(ctx context.Context, amIDs []string) (map[string][]*entity.Activity, error)
	RevenueByRegion(ctx context.Context) ([]RegionRevenue, error)
}

// ApprovalLogRepository registro de auditoría de decisiones de aprobación.
type ApprovalLogRepository interface {
	Record(d *entity.ApprovalDecision) error
	ListByUser(userID string) ([]*entity.ApprovalDecision, error)
}
