package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/crm-kam-api/internal/application/dto"
	"github.com/jhoicas/crm-kam-api/internal/application/usecase"
)

// AMProfileHandler maneja los perfiles públicos de Account Manager.
type AMProfileHandler struct {
	uc *usecase.AMProfileUseCase
}

// NewAMProfileHandler construye el handler de perfiles.
func NewAMProfileHandler(uc *usecase.AMProfileUseCase) *AMProfileHandler {
	return &AMProfileHandler{uc: uc}
}

// List godoc
// @Summary      Listar perfiles de AM
// @Tags         am-profiles
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo de resultados"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.AMProfileResponse
// @Router       /api/profile/am [get]
func (h *AMProfileHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Detail godoc
// @Summary      Detalle de perfil por NIK o ID Sales
// @Tags         am-profiles
// @Produce      json
// @Security     BearerAuth
// @Param        nik       query  string  false  "NIK del AM"
// @Param        id_sales  query  string  false  "ID Sales del AM"
// @Success      200  {object}  dto.AMProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profile/am/detail [get]
func (h *AMProfileHandler) Detail(c *fiber.Ctx) error {
	out, err := h.uc.Detail(c.Query("nik"), c.Query("id_sales"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear perfil de AM
// @Tags         am-profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpsertAMProfileRequest  true  "name y (nik o id_sales) requeridos"
// @Success      201  {object}  dto.AMProfileResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/profile/am [post]
func (h *AMProfileHandler) Create(c *fiber.Ctx) error {
	var in dto.UpsertAMProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar perfil de AM (identificado por NIK o ID Sales)
// @Tags         am-profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        nik       query  string                      false  "NIK del AM"
// @Param        id_sales  query  string                      false  "ID Sales del AM"
// @Param        body      body   dto.UpsertAMProfileRequest  true   "campos a editar"
// @Success      200  {object}  dto.AMProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profile/am/detail [put]
func (h *AMProfileHandler) Update(c *fiber.Ctx) error {
	var in dto.UpsertAMProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Query("nik"), c.Query("id_sales"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
