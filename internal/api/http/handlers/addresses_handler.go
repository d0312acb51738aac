package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/barbershop-service/internal/api/dto"
	"github.com/spec-kit/barbershop-service/internal/domain"
	"github.com/spec-kit/barbershop-service/internal/service"
)

// AddressesHandler manages address endpoints.
type AddressesHandler struct {
	service   *service.AddressService
	validator *Validator
}

// NewAddressesHandler constructs handler.
func NewAddressesHandler(addressService *service.AddressService, validator *Validator) *AddressesHandler {
	return &AddressesHandler{service: addressService, validator: validator}
}

// Create POST /addresses.
func (h *AddressesHandler) Create(c *fiber.Ctx) error {
	var req dto.AddressRequest
	if err := h.validator.Bind(c, &req); err != nil {
		return err
	}
	addr, err := h.service.Create(c.UserContext(), addressFromRequest(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": addressResponse(addr)})
}

// List GET /addresses.
func (h *AddressesHandler) List(c *fiber.Ctx) error {
	addrs, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": addressResponses(addrs)})
}

// Get GET /addresses/:id.
func (h *AddressesHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	addr, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": addressResponse(addr)})
}

// ListByClient GET /addresses/client/:clientID.
func (h *AddressesHandler) ListByClient(c *fiber.Ctx) error {
	clientID, err := paramID(c, "clientID")
	if err != nil {
		return err
	}
	addrs, err := h.service.ListByClient(c.UserContext(), clientID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": addressResponses(addrs)})
}

// Update PATCH /addresses/:id replaces the whole record.
func (h *AddressesHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.AddressRequest
	if err := h.validator.Bind(c, &req); err != nil {
		return err
	}
	addr, err := h.service.Update(c.UserContext(), id, addressFromRequest(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": addressResponse(addr)})
}

// Delete DELETE /addresses/:id.
func (h *AddressesHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "address deleted"}})
}

func addressFromRequest(req dto.AddressRequest) *domain.Address {
	return &domain.Address{
		ClientID:     req.ClientID,
		Street:       req.Street,
		Number:       req.Number,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		Complement:   req.Complement,
	}
}

func addressResponse(a *domain.Address) dto.AddressResponse {
	return dto.AddressResponse{
		ID:           a.ID,
		ClientID:     a.ClientID,
		Street:       a.Street,
		Number:       a.Number,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		Complement:   a.Complement,
	}
}

func addressResponses(addrs []domain.Address) []dto.AddressResponse {
	items := make([]dto.AddressResponse, 0, len(addrs))
	for i := range addrs {
		items = append(items, addressResponse(&addrs[i]))
	}
	return items
}
