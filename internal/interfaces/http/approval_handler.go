package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-kam-api/internal/application/usecase"
)

// ApprovalHandler maneja las bandejas de aprobación de cuentas pendientes.
// La bandeja del admin ve todas las cuentas; la del manager solo las que lo
// eligieron al registrarse.
type ApprovalHandler struct {
	uc *usecase.ApprovalUseCase
}

// NewApprovalHandler construye el handler de aprobaciones.
func NewApprovalHandler(uc *usecase.ApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{uc: uc}
}

// PendingAdmin godoc
// @Summary      Bandeja de aprobación del admin (todas las cuentas pendientes)
// @Tags         approvals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ApprovalItemDTO
// @Router       /api/admin/approval [get]
func (h *ApprovalHandler) PendingAdmin(c *fiber.Ctx) error {
	out, err := h.uc.PendingForAdmin()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PendingManager godoc
// @Summary      Bandeja de aprobación del manager (sus cuentas asignadas)
// @Tags         approvals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ApprovalItemDTO
// @Router       /api/manager/approval [get]
func (h *ApprovalHandler) PendingManager(c *fiber.Ctx) error {
	out, err := h.uc.PendingForManager(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar cuenta pendiente (la activa y registra la decisión)
// @Tags         approvals
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la cuenta pendiente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "la cuenta ya no está pendiente"
// @Router       /api/admin/approval/{id}/approve [post]
func (h *ApprovalHandler) Approve(c *fiber.Ctx) error {
	if err := h.uc.Approve(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reject godoc
// @Summary      Rechazar cuenta pendiente
// @Tags         approvals
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la cuenta pendiente"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/approval/{id}/reject [post]
func (h *ApprovalHandler) Reject(c *fiber.Ctx) error {
	if err := h.uc.Reject(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
