package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/barbershop-service/internal/api/dto"
	"github.com/spec-kit/barbershop-service/internal/domain"
	"github.com/spec-kit/barbershop-service/internal/service"
)

// SubscriptionsHandler manages subscription endpoints.
type SubscriptionsHandler struct {
	service   *service.SubscriptionService
	validator *Validator
}

// NewSubscriptionsHandler constructs handler.
func NewSubscriptionsHandler(subscriptionService *service.SubscriptionService, validator *Validator) *SubscriptionsHandler {
	return &SubscriptionsHandler{service: subscriptionService, validator: validator}
}

// Create POST /subscriptions.
func (h *SubscriptionsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSubscriptionRequest
	if err := h.validator.Bind(c, &req); err != nil {
		return err
	}
	// Layout already checked by the validator.
	start, _ := time.Parse(dto.DateLayout, req.StartDate)
	end, _ := time.Parse(dto.DateLayout, req.EndDate)

	sub, err := h.service.Create(c.UserContext(), &domain.Subscription{
		ClientID:      req.ClientID,
		StartDate:     start,
		EndDate:       end,
		Duration:      req.Duration,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": subscriptionResponse(sub)})
}

// Get GET /subscriptions/:id.
func (h *SubscriptionsHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	sub, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": subscriptionResponse(sub)})
}

// ListByClient GET /subscriptions/client/:clientID.
func (h *SubscriptionsHandler) ListByClient(c *fiber.Ctx) error {
	clientID, err := paramID(c, "clientID")
	if err != nil {
		return err
	}
	subs, err := h.service.ListByClient(c.UserContext(), clientID)
	if err != nil {
		return err
	}
	items := make([]dto.SubscriptionResponse, 0, len(subs))
	for i := range subs {
		items = append(items, subscriptionResponse(&subs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PATCH /subscriptions/:id.
func (h *SubscriptionsHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateSubscriptionRequest
	if err := h.validator.Bind(c, &req); err != nil {
		return err
	}

	patch := domain.SubscriptionPatch{ClientID: req.ClientID, Duration: req.Duration}
	if req.StartDate != nil {
		start, _ := time.Parse(dto.DateLayout, *req.StartDate)
		patch.StartDate = &start
	}
	if req.EndDate != nil {
		end, _ := time.Parse(dto.DateLayout, *req.EndDate)
		patch.EndDate = &end
	}
	if req.PaymentMethod != nil {
		method := domain.PaymentMethod(*req.PaymentMethod)
		patch.PaymentMethod = &method
	}

	sub, err := h.service.Update(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": subscriptionResponse(sub)})
}

// Delete DELETE /subscriptions/:id.
func (h *SubscriptionsHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	sub, err := h.service.Delete(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": subscriptionResponse(sub)})
}

func subscriptionResponse(s *domain.Subscription) dto.SubscriptionResponse {
	return dto.SubscriptionResponse{
		ID:            s.ID,
		ClientID:      s.ClientID,
		StartDate:     s.StartDate.Format(dto.DateLayout),
		EndDate:       s.EndDate.Format(dto.DateLayout),
		Duration:      s.Duration,
		PaymentMethod: string(s.PaymentMethod),
	}
}
