package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/crm-kam-api/internal/domain"
	domactivity "github.com/jhoicas/crm-kam-api/internal/domain/activity"
	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
	"github.com/jhoicas/crm-kam-api/internal/domain/repository"
)

// ActivityReportGenerator puerto de generación del reporte PDF de actividades
// del AM. La implementación vive en infraestructura (Maroto).
type ActivityReportGenerator interface {
	GenerateActivityReport(ctx context.Context, am *entity.User, activities []*entity.Activity, now time.Time) ([]byte, error)
}

// ReportUseCase genera el reporte de actividades del AM autenticado.
type ReportUseCase struct {
	activityRepo repository.ActivityRepository
	userRepo     repository.UserRepository
	generator    ActivityReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	activityRepo repository.ActivityRepository,
	userRepo repository.UserRepository,
	generator ActivityReportGenerator,
) *ReportUseCase {
	return &ReportUseCase{activityRepo: activityRepo, userRepo: userRepo, generator: generator}
}

// ActivityReport arma el PDF con todas las actividades del AM, ordenadas
// cronológicamente y clasificadas contra un único `now`. El ámbito es el
// id_sales del usuario, o su ID cuando no tiene uno (cuentas admin): el mismo
// criterio con el que se crean las actividades.
func (uc *ReportUseCase) ActivityReport(ctx context.Context, userID string, now time.Time) ([]byte, error) {
	u, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	amID := u.IDSales
	if amID == "" {
		amID = u.ID
	}
	all, err := uc.activityRepo.ListByAM(amID)
	if err != nil {
		return nil, err
	}
	sorted := domactivity.FilterByStatus(all, domactivity.FilterAll, now)
	return uc.generator.GenerateActivityReport(ctx, u, sorted, now)
}
