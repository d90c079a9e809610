package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/barbersalon/salon-api/models"
	"github.com/barbersalon/salon-api/store"
	"github.com/barbersalon/salon-api/utils"
)

type ContactController struct {
	messages store.ContactStore
}

func NewContactController(messages store.ContactStore) *ContactController {
	return &ContactController{messages: messages}
}

// SendMessage accepts a contact-form submission.
func (ctl *ContactController) SendMessage(c *fiber.Ctx) error {
	msg := new(models.ContactMessage)
	if err := c.BodyParser(msg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	switch {
	case strings.TrimSpace(msg.Name) == "":
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Name is required", Field: "name"})
	case strings.TrimSpace(msg.Email) == "" || !strings.Contains(msg.Email, "@"):
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Please enter a valid email address", Field: "email"})
	case strings.TrimSpace(msg.Subject) == "":
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Subject is required", Field: "subject"})
	case strings.TrimSpace(msg.Message) == "":
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Message is required", Field: "message"})
	}

	msg.ID = 0
	msg.IsRead = false
	msg.RespondedAt = nil
	if msg.PreferredContactMethod == "" {
		msg.PreferredContactMethod = models.ContactByEmail
	}
	if msg.MessageType == "" {
		msg.MessageType = models.MessageGeneral
	}

	if err := ctl.messages.CreateContactMessage(c.UserContext(), msg); err != nil {
		return internalError(c, "create contact message", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Thank you for your message. We will get back to you soon.",
	})
}

// ListMessages serves the admin inbox, newest first.
func (ctl *ContactController) ListMessages(c *fiber.Ctx) error {
	msgs, err := ctl.messages.ListContactMessages(c.UserContext())
	if err != nil {
		return internalError(c, "list contact messages", err)
	}
	return c.JSON(msgs)
}

func (ctl *ContactController) MarkRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid message id",
		})
	}
	if err := ctl.messages.MarkContactMessageRead(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Message not found",
			})
		}
		return internalError(c, "mark message read", err)
	}
	return c.JSON(fiber.Map{"success": true})
}
