package dto

import (
	"github.com/jhoicas/crm-kam-api/internal/domain/activity"
	"github.com/jhoicas/crm-kam-api/internal/domain/repository"
)

// AMSummaryDTO contadores de actividad de un AM para el dashboard de manager.
type AMSummaryDTO struct {
	AMID      string          `json:"am_id"`
	Name      string          `json:"name"`
	IDSales   string          `json:"id_sales"`
	Witel     string          `json:"witel,omitempty"`
	Total     int             `json:"total_activities"`
	Counts    activity.Counts `json:"counts"`
	Completed int             `json:"completed"`
}

// ManagerSummaryDTO resumen del equipo de un manager.
type ManagerSummaryDTO struct {
	ManagerID string          `json:"manager_id"`
	Team      []AMSummaryDTO  `json:"team"`
	Totals    activity.Counts `json:"totals"`
}

// ExecutiveSummaryDTO rollup por región para el dashboard ejecutivo.
type ExecutiveSummaryDTO struct {
	Regions []repository.RegionRevenue `json:"regions"`
}

// ApprovalItemDTO cuenta pendiente en las bandejas de aprobación.
type ApprovalItemDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	ManagerID string `json:"manager_id,omitempty"`
	Witel     string `json:"witel,omitempty"`
	Region    string `json:"region,omitempty"`
}

// ApprovalDecisionRequest cuerpo de aprobación (rechazo no lleva cuerpo).
type ApprovalDecisionRequest struct {
	ApprovedBy string `json:"approved_by"`
}
