// Package activity implementa el motor de estados derivados de actividades.
//
// El estado almacenado de una actividad solo puede ser "upcoming" o
// "completed". El estado que ve el usuario (¿akan datang?, ¿perlu update?,
// ¿selesai?) se deriva en cada consulta a partir del estado almacenado, la
// fecha/hora de la actividad y el reloj. Todas las funciones son puras:
// reciben `now` como parámetro y nunca leen el reloj global, de modo que una
// misma pasada clasifica toda la colección contra el mismo instante.
package activity

import (
	"math"
	"sort"
	"time"

	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
)

// Estados derivados de una actividad.
const (
	StatusUpcoming    = "upcoming"
	StatusNeedsUpdate = "needs_update"
	StatusCompleted   = "completed"

	// FilterAll acepta cualquier estado en FilterByStatus.
	FilterAll = "all"
)

// StatusLabels etiquetas de presentación por estado derivado.
var StatusLabels = map[string]string{
	StatusUpcoming:    "Akan Datang",
	StatusNeedsUpdate: "Perlu Update",
	StatusCompleted:   "Selesai",
}

// editWindowDays días durante los que los documentos de evidencia siguen
// siendo editables después de la actividad.
const editWindowDays = 7

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// ParseInstant combina Date y Time de la actividad en un instante UTC.
// Si Time está vacío se asume "00:00". Devuelve ok=false si la fecha o la
// hora no se pueden interpretar; nunca entra en pánico.
func ParseInstant(a *entity.Activity) (time.Time, bool) {
	if a == nil || a.Date == "" {
		return time.Time{}, false
	}
	hhmm := a.Time
	if hhmm == "" {
		hhmm = "00:00"
	}
	t, err := time.ParseInLocation(dateTimeLayout, a.Date+" "+hhmm, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ComputedStatus deriva el estado de la actividad contra el instante `now`.
//
//   - completed almacenado gana siempre, con o sin fecha válida.
//   - fecha/hora no interpretable → upcoming (error absorbido localmente).
//   - instante pasado → needs_update.
//   - instante futuro → upcoming.
func ComputedStatus(a *entity.Activity, now time.Time) string {
	if a != nil && a.Status == entity.ActivityCompleted {
		return StatusCompleted
	}
	instant, ok := ParseInstant(a)
	if !ok {
		return StatusUpcoming
	}
	if instant.Before(now) {
		return StatusNeedsUpdate
	}
	return StatusUpcoming
}

// Counts contadores agregados de una colección de actividades. Las
// completadas no cuentan en ninguno de los dos.
type Counts struct {
	NeedsUpdate int `json:"needs_update"`
	Upcoming    int `json:"upcoming"`
}

// Aggregate recorre la colección una sola vez y cuenta los estados derivados
// needs_update y upcoming contra un único snapshot de `now`.
func Aggregate(list []*entity.Activity, now time.Time) Counts {
	var c Counts
	for _, a := range list {
		switch ComputedStatus(a, now) {
		case StatusNeedsUpdate:
			c.NeedsUpdate++
		case StatusUpcoming:
			c.Upcoming++
		}
	}
	return c
}

// FilterByStatus devuelve las actividades cuyo estado derivado coincide con
// status ("all" devuelve todas). El resultado queda ordenado ascendente por
// instante; las actividades sin fecha interpretable conservan su orden
// relativo al final (orden estable entre llamadas, posición no garantizada
// dentro de la secuencia fechada).
func FilterByStatus(list []*entity.Activity, status string, now time.Time) []*entity.Activity {
	out := make([]*entity.Activity, 0, len(list))
	for _, a := range list {
		if status == FilterAll || ComputedStatus(a, now) == status {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ti, oki := ParseInstant(out[i])
		tj, okj := ParseInstant(out[j])
		if oki && okj {
			return ti.Before(tj)
		}
		// Sin instante: al final, conservando orden de entrada.
		return oki && !okj
	})
	return out
}

// DocsEditable indica si los documentos de evidencia (proof / MoM) de la
// actividad siguen siendo editables en `now`: la actividad ya pasó, requiere
// evidencia (WithCustomer) y no han transcurrido más de 7 días.
//
// El conteo de días usa techo sobre el tiempo transcurrido: exactamente
// 7×24h sigue siendo editable (ceil(7.0) == 7); un minuto más ya no
// (ceil(7.00x) == 8). Pasada la ventana no existe vía de excepción.
func DocsEditable(a *entity.Activity, now time.Time) bool {
	if a == nil || !a.WithCustomer {
		return false
	}
	instant, ok := ParseInstant(a)
	if !ok {
		return false
	}
	if !instant.Before(now) {
		return false
	}
	elapsed := now.Sub(instant)
	days := int(math.Ceil(elapsed.Hours() / 24))
	return days <= editWindowDays
}
