package dto

import "github.com/jhoicas/crm-kam-api/internal/domain/activity"

// ActivityResponse una actividad decorada con su estado derivado. El campo
// computed_status se recalcula en cada consulta, nunca se persiste.
type ActivityResponse struct {
	ID              string   `json:"id"`
	AMID            string   `json:"am_id"`
	Title           string   `json:"title"`
	Type            string   `json:"type"`
	Date            string   `json:"date"`
	Time            string   `json:"time,omitempty"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	Location        string   `json:"location,omitempty"`
	Topic           string   `json:"topic,omitempty"`
	Description     string   `json:"description,omitempty"`
	Outcome         string   `json:"outcome,omitempty"`
	WithCustomer    bool     `json:"with_customer"`
	Customer        string   `json:"customer,omitempty"`
	Invitees        []string `json:"invitees,omitempty"`
	Status          string   `json:"status"`
	ComputedStatus  string   `json:"computed_status"`
	StatusLabel     string   `json:"status_label"`
	ProofRef        string   `json:"proof_ref,omitempty"`
	MomRef          string   `json:"mom_ref,omitempty"`
	OutlookAdded    bool     `json:"outlook_added"`
	DocsEditable    bool     `json:"docs_editable"`
}

// ActivityListResponse listado filtrado + contadores agregados de la
// colección completa (los completados no cuentan en ninguno).
type ActivityListResponse struct {
	Data   []*ActivityResponse `json:"data"`
	Counts activity.Counts     `json:"counts"`
}

// UpsertActivityRequest alta/edición de actividad.
type UpsertActivityRequest struct {
	Title           string   `json:"title"`
	Type            string   `json:"type"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	DurationMinutes int      `json:"duration_minutes"`
	Location        string   `json:"location"`
	Topic           string   `json:"topic"`
	Description     string   `json:"description"`
	Outcome         string   `json:"outcome"`
	WithCustomer    bool     `json:"with_customer"`
	Customer        string   `json:"customer"`
	Invitees        []string `json:"invitees"`
	Status          string   `json:"status"`
}

// UpdateDocumentsRequest referencias de evidencia dentro de la ventana de
// edición de 7 días.
type UpdateDocumentsRequest struct {
	ProofRef string `json:"proof_ref"`
	MomRef   string `json:"mom_ref"`
}

// OutlookLinkResponse deeplink de calendario para una actividad. Url vale
// "#" si el enlace no pudo construirse (contrato heredado del cliente SPA).
type OutlookLinkResponse struct {
	URL          string `json:"url"`
	OutlookAdded bool   `json:"outlook_added"`
}
