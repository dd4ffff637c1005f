package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-kam-api/internal/application/dto"
	"github.com/jhoicas/crm-kam-api/internal/application/usecase"
	"github.com/jhoicas/crm-kam-api/internal/domain"
	"github.com/jhoicas/crm-kam-api/internal/domain/repository"
)

// SalesPlanHandler maneja los sales plans del AM autenticado; la vista de
// manager lista todos los planes.
type SalesPlanHandler struct {
	uc    *usecase.SalesPlanUseCase
	users repository.UserRepository
}

// NewSalesPlanHandler construye el handler de sales plans.
func NewSalesPlanHandler(uc *usecase.SalesPlanUseCase, users repository.UserRepository) *SalesPlanHandler {
	return &SalesPlanHandler{uc: uc, users: users}
}

func (h *SalesPlanHandler) amID(c *fiber.Ctx) (string, error) {
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
// @Summary      Listar sales plans del AM (o de una cuenta clave)
// @Tags         sales-plans
// @Produce      json
// @Security     BearerAuth
// @Param        customer_id  query  string  false  "filtrar por cuenta clave"
// @Success      200  {array}  dto.SalesPlanResponse
// @Router       /api/sales-plans [get]
func (h *SalesPlanHandler) List(c *fiber.Ctx) error {
	if customerID := c.Query("customer_id"); customerID != "" {
		out, err := h.uc.ListByCustomer(customerID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	amID, err := h.amID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListByAM(amID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listar todos los sales plans (vista manager)
// @Tags         sales-plans
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo de resultados"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.SalesPlanResponse
// @Router       /api/manager/sales-plans [get]
func (h *SalesPlanHandler) ListAll(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.ListAll(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de sales plan
// @Tags         sales-plans
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del plan"
// @Success      200  {object}  dto.SalesPlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-plans/{id} [get]
func (h *SalesPlanHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear sales plan
// @Tags         sales-plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpsertSalesPlanRequest  true  "title y customer_id requeridos"
// @Success      201  {object}  dto.SalesPlanResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales-plans [post]
func (h *SalesPlanHandler) Create(c *fiber.Ctx) error {
	var in dto.UpsertSalesPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	amID, err := h.amID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(amID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar sales plan
// @Tags         sales-plans
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                      true  "ID del plan"
// @Param        body  body  dto.UpsertSalesPlanRequest  true  "campos a editar"
// @Success      200  {object}  dto.SalesPlanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-plans/{id} [put]
func (h *SalesPlanHandler) Update(c *fiber.Ctx) error {
	var in dto.UpsertSalesPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar sales plan
// @Tags         sales-plans
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del plan"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-plans/{id} [delete]
func (h *SalesPlanHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
