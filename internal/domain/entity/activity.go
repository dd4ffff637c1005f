package entity

import "time"

// Estados almacenados de una actividad. El estado derivado "perlu update"
// (needs_update) nunca se persiste: se calcula a partir de fecha y hora.
const (
	ActivityUpcoming  = "upcoming"
	ActivityCompleted = "completed"
)

// Activity es una actividad registrada por un AM: visita, reunión, llamada.
// Date y Time se guardan como texto plano ("2006-01-02" y "15:04") tal como
// llegan del cliente; el motor de estados es quien los interpreta.
type Activity struct {
	ID              string
	AMID            string // id_sales del AM dueño de la actividad
	Title           string
	Type            string // Meeting, Visit, Call, Internal Meeting, ...
	Date            string // "2006-01-02", obligatorio
	Time            string // "15:04", opcional
	DurationMinutes int    // 0 = usar duración por defecto
	Location        string
	Topic           string
	Description     string
	Outcome         string
	WithCustomer    bool
	Customer        string   // nombre del cliente si WithCustomer
	Invitees        []string // correos o nombres, orden preservado
	Status          string   // upcoming | completed (almacenado)
	ProofRef        string   // referencia opaca al documento de evidencia
	MomRef          string   // referencia opaca al Minutes of Meeting
	OutlookAdded    bool
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
