// Package analytics contiene los casos de uso de los dashboards de manager y
// ejecutivo.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/crm-kam-api/internal/application/dto"
	domactivity "github.com/jhoicas/crm-kam-api/internal/domain/activity"
	"github.com/jhoicas/crm-kam-api/internal/domain/repository"
)

// DashboardUseCase resume la actividad del equipo (manager) y el pipeline
// por región (ejecutivo).
//
// Fuente de datos: AnalyticsRepository (consultas read-only). Los estados
// derivados no se calculan en SQL: el repositorio devuelve filas crudas y
// aquí se aplica el motor de estados con un único snapshot de `now`.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// ManagerSummary contadores de actividad por AM del equipo del manager.
// Todas las actividades del equipo se clasifican contra el mismo `now`.
func (uc *DashboardUseCase) ManagerSummary(ctx context.Context, managerID string, now time.Time) (*dto.ManagerSummaryDTO, error) {
	ams, err := uc.analyticsRepo.ListAMsByManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: equipo del manager: %w", err)
	}
	ids := make([]string, 0, len(ams))
	for _, am := range ams {
		ids = append(ids, am.IDSales)
	}
	byAM, err := uc.analyticsRepo.ActivitiesByAMs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("dashboard: actividades del equipo: %w", err)
	}

	out := &dto.ManagerSummaryDTO{ManagerID: managerID, Team: make([]dto.AMSummaryDTO, 0, len(ams))}
	for _, am := range ams {
		acts := byAM[am.IDSales]
		counts := domactivity.Aggregate(acts, now)
		completed := 0
		for _, a := range acts {
			if domactivity.ComputedStatus(a, now) == domactivity.StatusCompleted {
				completed++
			}
		}
		out.Team = append(out.Team, dto.AMSummaryDTO{
			AMID:      am.ID,
			Name:      am.Name,
			IDSales:   am.IDSales,
			Witel:     am.Witel,
			Total:     len(acts),
			Counts:    counts,
			Completed: completed,
		})
		out.Totals.NeedsUpdate += counts.NeedsUpdate
		out.Totals.Upcoming += counts.Upcoming
	}
	return out, nil
}

// ExecutiveSummary rollup de sales plans por región/witel.
func (uc *DashboardUseCase) ExecutiveSummary(ctx context.Context) (*dto.ExecutiveSummaryDTO, error) {
	regions, err := uc.analyticsRepo.RevenueByRegion(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: pipeline por región: %w", err)
	}
	return &dto.ExecutiveSummaryDTO{Regions: regions}, nil
}
