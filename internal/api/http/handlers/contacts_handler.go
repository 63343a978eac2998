package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/contact-service/internal/api/dto"
	"github.com/spec-kit/contact-service/internal/domain"
	"github.com/spec-kit/contact-service/internal/service"
)

// ContactsHandler serves the contacts resource.
type ContactsHandler struct {
	service *service.ContactService
}

// NewContactsHandler constructs handler.
func NewContactsHandler(contactService *service.ContactService) *ContactsHandler {
	return &ContactsHandler{service: contactService}
}

// List handles GET /api/contacts.
func (h *ContactsHandler) List(c *fiber.Ctx) error {
	contacts, err := h.service.List(c.UserContext(), domain.ContactFilter{Search: c.Query("search")})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(contacts),
		"data":    contacts,
	})
}

// Get handles GET /api/contacts/:id.
func (h *ContactsHandler) Get(c *fiber.Ctx) error {
	contact, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", contact)
}

// Create handles POST /api/contacts.
func (h *ContactsHandler) Create(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	contact, err := h.service.Create(c.UserContext(), req.Patch())
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, "Contact created successfully", contact)
}

// Update handles PUT /api/contacts/:id.
func (h *ContactsHandler) Update(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	contact, err := h.service.Update(c.UserContext(), c.Params("id"), req.Patch())
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "Contact updated successfully", contact)
}

// Delete handles DELETE /api/contacts/:id.
func (h *ContactsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return ok(c, http.StatusOK, "Contact deleted successfully", nil)
}
