package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/barbershop-service/internal/api/dto"
	"github.com/spec-kit/barbershop-service/internal/domain"
	"github.com/spec-kit/barbershop-service/internal/service"
)

// ClientsHandler manages client endpoints.
type ClientsHandler struct {
	service   *service.ClientService
	validator *Validator
}

// NewClientsHandler constructs handler.
func NewClientsHandler(clientService *service.ClientService, validator *Validator) *ClientsHandler {
	return &ClientsHandler{service: clientService, validator: validator}
}

// Create POST /clients.
func (h *ClientsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := h.validator.Bind(c, &req); err != nil {
		return err
	}
	client, err := h.service.Create(c.UserContext(), &domain.Client{CPF: req.CPF, Name: req.Name, Phone: req.Phone})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": clientResponse(client)})
}

// GetByCPF GET /clients/cpf/:cpf.
func (h *ClientsHandler) GetByCPF(c *fiber.Ctx) error {
	client, err := h.service.GetByCPF(c.UserContext(), c.Params("cpf"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": clientResponse(client)})
}

// Get GET /clients/:id.
func (h *ClientsHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	client, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": clientResponse(client)})
}

// Update PATCH /clients/:id.
func (h *ClientsHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateClientRequest
	if err := h.validator.Bind(c, &req); err != nil {
		return err
	}
	client, err := h.service.Update(c.UserContext(), id, domain.ClientPatch{CPF: req.CPF, Name: req.Name, Phone: req.Phone})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": clientResponse(client)})
}

// Delete DELETE /clients/:id.
func (h *ClientsHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	client, err := h.service.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": clientResponse(client)})
}

func clientResponse(c *domain.Client) dto.ClientResponse {
	return dto.ClientResponse{ID: c.ID, CPF: c.CPF, Name: c.Name, Phone: c.Phone}
}
