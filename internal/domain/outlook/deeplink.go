// Package outlook construye deeplinks de composición de eventos para el
// calendario corporativo (Outlook en la web).
package outlook

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
)

const composeBase = "https://outlook.office.com/calendar/0/deeplink/compose"

// Placeholder valor heredado que el cliente SPA espera cuando no se puede
// construir el enlace. La capa HTTP lo usa al mapear errores; ningún caller
// nuevo debería apoyarse en él.
const Placeholder = "#"

// Valores por defecto cuando la actividad no los trae.
const (
	defaultHour     = 9
	defaultDuration = 60 * time.Minute
)

// ErrMissingDate la actividad no tiene fecha: sin fecha no hay evento.
var ErrMissingDate = errors.New("outlook: actividad sin fecha")

// ErrInvalidStart la combinación fecha+hora no produce un instante válido.
var ErrInvalidStart = errors.New("outlook: instante de inicio inválido")

// Build genera la URL de composición del evento para la actividad.
//
// Reglas:
//   - Date es obligatoria; Time inválida o ausente cae a 09:00.
//   - La duración es DurationMinutes, o 60 minutos si no está definida.
//   - startdt/enddt van como instantes ISO-8601 UTC.
//   - attendees solo se emite si hay invitados (unidos por ";").
//
// A diferencia del cliente original, el fallo se señala con error en vez del
// centinela "#": el caller no puede olvidarse de comprobarlo.
func Build(a *entity.Activity) (string, error) {
	if a == nil || a.Date == "" {
		return "", ErrMissingDate
	}

	hour, minute := parseClock(a.Time)
	start, err := time.ParseInLocation("2006-01-02 15:04",
		fmt.Sprintf("%s %02d:%02d", a.Date, hour, minute), time.UTC)
	if err != nil {
		return "", ErrInvalidStart
	}

	duration := defaultDuration
	if a.DurationMinutes > 0 {
		duration = time.Duration(a.DurationMinutes) * time.Minute
	}
	end := start.Add(duration)

	subject := a.Title
	if subject == "" {
		subject = "Aktivitas AM"
	}

	params := url.Values{}
	params.Set("path", "/calendar/action/compose")
	params.Set("rru", "addevent")
	params.Set("subject", subject)
	params.Set("body", eventBody(a))
	params.Set("location", a.Location)
	params.Set("startdt", start.UTC().Format(time.RFC3339))
	params.Set("enddt", end.UTC().Format(time.RFC3339))
	if len(a.Invitees) > 0 {
		params.Set("attendees", strings.Join(a.Invitees, ";"))
	}

	return composeBase + "?" + params.Encode(), nil
}

// eventBody arma el cuerpo del evento con la plantilla fija del cliente.
func eventBody(a *entity.Activity) string {
	desc := a.Description
	if desc == "" {
		desc = "Tidak ada deskripsi"
	}
	return fmt.Sprintf("Topik: %s\nCustomer: %s\nLokasi: %s\nHasil: %s\n\n%s",
		orDash(a.Topic), orDash(a.Customer), orDash(a.Location), orDash(a.Outcome), desc)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// parseClock interpreta "HH:mm"; cada componente inválido cae a su valor por
// defecto (09:00), igual que el cliente original.
func parseClock(hhmm string) (hour, minute int) {
	hour, minute = defaultHour, 0
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hour, minute
	}
	if h, err := strconv.Atoi(parts[0]); err == nil && h >= 0 && h <= 23 {
		hour = h
	}
	if m, err := strconv.Atoi(parts[1]); err == nil && m >= 0 && m <= 59 {
		minute = m
	}
	return hour, minute
}
