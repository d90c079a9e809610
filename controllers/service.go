package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/barbersalon/salon-api/models"
	"github.com/barbersalon/salon-api/store"
	"github.com/barbersalon/salon-api/utils"
)

type ServiceController struct {
	services store.ServiceStore
}

func NewServiceController(services store.ServiceStore) *ServiceController {
	return &ServiceController{services: services}
}

// List returns the catalog, optionally narrowed by ?category=.
func (ctl *ServiceController) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if raw := c.Query("category"); raw != "" {
		category := models.ServiceCategory(raw)
		if !category.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Unknown service category",
				Field:   "category",
			})
		}
		services, err := ctl.services.ListServicesByCategory(ctx, category)
		if err != nil {
			return internalError(c, "list services by category", err)
		}
		return c.JSON(services)
	}

	services, err := ctl.services.ListServices(ctx)
	if err != nil {
		return internalError(c, "list services", err)
	}
	return c.JSON(services)
}

func (ctl *ServiceController) Popular(c *fiber.Ctx) error {
	services, err := ctl.services.ListPopularServices(c.UserContext())
	if err != nil {
		return internalError(c, "list popular services", err)
	}
	return c.JSON(services)
}

// Categories returns every category with its display label for the catalog
// filter UI.
func (ctl *ServiceController) Categories(c *fiber.Ctx) error {
	type category struct {
		Value       models.ServiceCategory `json:"value"`
		DisplayName string                 `json:"display_name"`
	}
	out := make([]category, 0, len(models.ServiceCategories))
	for _, cat := range models.ServiceCategories {
		out = append(out, category{Value: cat, DisplayName: models.CategoryDisplayNames[cat]})
	}
	return c.JSON(out)
}

func (ctl *ServiceController) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service id",
		})
	}
	service, err := ctl.services.GetServiceByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Service not found",
			})
		}
		return internalError(c, "get service", err)
	}
	return c.JSON(service)
}

func (ctl *ServiceController) Create(c *fiber.Ctx) error {
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if msg, field := validateService(service); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: msg, Field: field})
	}
	service.ID = 0
	if err := ctl.services.CreateService(c.UserContext(), service); err != nil {
		return internalError(c, "create service", err)
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

func (ctl *ServiceController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service id",
		})
	}
	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if msg, field := validateService(service); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: msg, Field: field})
	}
	service.ID = uint(id)
	if err := ctl.services.UpdateService(c.UserContext(), service); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Service not found",
			})
		}
		return internalError(c, "update service", err)
	}
	return c.JSON(service)
}

func (ctl *ServiceController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid service id",
		})
	}
	if err := ctl.services.DeleteService(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Service not found",
			})
		}
		return internalError(c, "delete service", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func validateService(s *models.Service) (msg, field string) {
	switch {
	case strings.TrimSpace(s.Name) == "":
		return "Service name is required", "name"
	case strings.TrimSpace(s.Price) == "":
		return "Price is required", "price"
	case s.DurationMinutes < 15 || s.DurationMinutes > 300:
		return "Duration must be between 15 and 300 minutes", "duration_minutes"
	case !s.Category.Valid():
		return "Unknown service category", "category"
	}
	return "", ""
}
