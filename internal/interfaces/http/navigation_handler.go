package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-kam-api/internal/application/dto"
	"github.com/jhoicas/crm-kam-api/internal/domain/entity"
	"github.com/jhoicas/crm-kam-api/internal/domain/routing"
)

// SessionReader es lo que la navegación necesita del Session Store: leer la
// identidad de la sesión actual (nil si no existe o está corrupta).
type SessionReader interface {
	Load(ctx context.Context, sessionID string) (*entity.Identity, error)
}

// NavigationHandler expone la puerta de autorización: el cliente pregunta por
// un path y recibe la decisión (render / redirect) calculada contra la tabla
// canónica de rutas y la sesión actual.
type NavigationHandler struct {
	table    *routing.Table
	sessions SessionReader
}

// NewNavigationHandler construye el handler de navegación.
func NewNavigationHandler(table *routing.Table, sessions SessionReader) *NavigationHandler {
	return &NavigationHandler{table: table, sessions: sessions}
}

// Decide godoc
// @Summary      Decisión de la puerta de autorización para un path
// @Tags         navigation
// @Produce      json
// @Param        path  query  string  true  "path de la SPA a evaluar"
// @Success      200  {object}  routing.Outcome
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/navigation [get]
func (h *NavigationHandler) Decide(c *fiber.Ctx) error {
	path := c.Query("path")
	if path == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query param path requerido"})
	}

	// Identidad opcional: token ausente o sesión destruida = no autenticado.
	var id *entity.Identity
	if sessionID := GetSessionID(c); sessionID != "" {
		loaded, err := h.sessions.Load(c.Context(), sessionID)
		if err != nil {
			return respondError(c, err)
		}
		id = loaded
	}

	return c.JSON(h.table.Decide(path, id))
}
