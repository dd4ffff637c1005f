package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-kam-api/internal/application/dto"
	"github.com/jhoicas/crm-kam-api/internal/application/usecase"
	"github.com/jhoicas/crm-kam-api/internal/domain"
	"github.com/jhoicas/crm-kam-api/internal/domain/repository"
)

// ActivityHandler maneja las actividades del AM autenticado. Cada petición
// toma un único snapshot de reloj (`now`) que clasifica toda la colección.
type ActivityHandler struct {
	uc       *usecase.ActivityUseCase
	reportUC *usecase.ReportUseCase
	users    repository.UserRepository
}

// NewActivityHandler construye el handler de actividades.
func NewActivityHandler(uc *usecase.ActivityUseCase, reportUC *usecase.ReportUseCase, users repository.UserRepository) *ActivityHandler {
	return &ActivityHandler{uc: uc, reportUC: reportUC, users: users}
}

// amID resuelve el id_sales del usuario autenticado, la clave bajo la que se
// guardan sus actividades. Cuentas sin id_sales (admin) usan su propio ID.
func (h *ActivityHandler) amID(c *fiber.Ctx) (string, error) {
	u, err := h.users.GetByID(GetUserID(c))
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", domain.ErrUserNotFound
	}
	if u.IDSales == "" {
		return u.ID, nil
	}
	return u.IDSales, nil
}

// List godoc
// @Summary      Listar actividades del AM con estado derivado y contadores
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "all | upcoming | needs_update | completed"
// @Success      200  {object}  dto.ActivityListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/activities [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	amID, err := h.amID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.List(amID, c.Query("status"), time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de actividad
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la actividad"
// @Success      200  {object}  dto.ActivityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activities/{id} [get]
func (h *ActivityHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"), time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar actividad
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpsertActivityRequest  true  "title y date requeridos"
// @Success      201  {object}  dto.ActivityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/activities [post]
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var in dto.UpsertActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	amID, err := h.amID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(amID, GetUserID(c), in, time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar actividad
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID de la actividad"
// @Param        body  body  dto.UpsertActivityRequest  true  "campos a editar"
// @Success      200  {object}  dto.ActivityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activities/{id} [put]
func (h *ActivityHandler) Update(c *fiber.Ctx) error {
	var in dto.UpsertActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in, time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar actividad
// @Tags         activities
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la actividad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activities/{id} [delete]
func (h *ActivityHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Outlook godoc
// @Summary      Deeplink de calendario Outlook para la actividad
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la actividad"
// @Success      200  {object}  dto.OutlookLinkResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/activities/{id}/outlook [post]
func (h *ActivityHandler) Outlook(c *fiber.Ctx) error {
	out, err := h.uc.OutlookLink(c.Params("id"), time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Documents godoc
// @Summary      Adjuntar evidencia (proof/MoM) dentro de la ventana de 7 días
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                      true  "ID de la actividad"
// @Param        body  body  dto.UpdateDocumentsRequest  true  "referencias de documentos"
// @Success      200  {object}  dto.ActivityResponse
// @Failure      409  {object}  dto.ErrorResponse  "ventana de edición vencida"
// @Router       /api/activities/{id}/documents [put]
func (h *ActivityHandler) Documents(c *fiber.Ctx) error {
	var in dto.UpdateDocumentsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateDocuments(c.Params("id"), in, time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReportPDF godoc
// @Summary      Reporte PDF de actividades del AM
// @Tags         activities
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}  binary
// @Router       /api/activities/report/pdf [get]
func (h *ActivityHandler) ReportPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.reportUC.ActivityReport(c.Context(), GetUserID(c), time.Now().UTC())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="laporan-aktivitas.pdf"`)
	return c.Send(pdfBytes)
}
