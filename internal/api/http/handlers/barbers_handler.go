package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/barbershop-service/internal/api/dto"
	"github.com/spec-kit/barbershop-service/internal/service"
)

// BarbersHandler manages barber endpoints.
type BarbersHandler struct {
	service   *service.BarberService
	validator *Validator
}

// NewBarbersHandler constructs handler.
func NewBarbersHandler(barberService *service.BarberService, validator *Validator) *BarbersHandler {
	return &BarbersHandler{service: barberService, validator: validator}
}

// Create POST /barbers.
func (h *BarbersHandler) Create(c *fiber.Ctx) error {
	var req dto.BarberRequest
	if err := h.validator.Bind(c, &req); err != nil {
		return err
	}
	barber, err := h.service.Create(c.UserContext(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.BarberResponse{ID: barber.ID, Name: barber.Name}})
}

// List GET /barbers.
func (h *BarbersHandler) List(c *fiber.Ctx) error {
	barbers, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.BarberResponse, 0, len(barbers))
	for _, b := range barbers {
		items = append(items, dto.BarberResponse{ID: b.ID, Name: b.Name})
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /barbers/:id.
func (h *BarbersHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	barber, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.BarberResponse{ID: barber.ID, Name: barber.Name}})
}

// Update PATCH /barbers/:id.
func (h *BarbersHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.BarberRequest
	if err := h.validator.Bind(c, &req); err != nil {
		return err
	}
	barber, err := h.service.Update(c.UserContext(), id, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.BarberResponse{ID: barber.ID, Name: barber.Name}})
}

// Delete DELETE /barbers/:id.
func (h *BarbersHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "barber deleted"}})
}
