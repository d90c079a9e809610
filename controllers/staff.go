package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/barbersalon/salon-api/models"
	"github.com/barbersalon/salon-api/store"
	"github.com/barbersalon/salon-api/utils"
)

type StaffController struct {
	staff store.StaffStore
}

func NewStaffController(staff store.StaffStore) *StaffController {
	return &StaffController{staff: staff}
}

// List returns the public staff directory: active members only, optionally
// narrowed by ?role=.
func (ctl *StaffController) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if role := c.Query("role"); role != "" {
		staff, err := ctl.staff.ListStaffByRole(ctx, role)
		if err != nil {
			return internalError(c, "list staff by role", err)
		}
		return c.JSON(staff)
	}

	staff, err := ctl.staff.ListActiveStaff(ctx)
	if err != nil {
		return internalError(c, "list staff", err)
	}
	return c.JSON(staff)
}

// ListAll includes deactivated members; admin surface only.
func (ctl *StaffController) ListAll(c *fiber.Ctx) error {
	staff, err := ctl.staff.ListStaffMembers(c.UserContext())
	if err != nil {
		return internalError(c, "list all staff", err)
	}
	return c.JSON(staff)
}

func (ctl *StaffController) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid staff member id",
		})
	}
	member, err := ctl.staff.GetStaffMemberByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Staff member not found",
			})
		}
		return internalError(c, "get staff member", err)
	}
	return c.JSON(member)
}

func (ctl *StaffController) Create(c *fiber.Ctx) error {
	member := new(models.StaffMember)
	if err := c.BodyParser(member); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if strings.TrimSpace(member.FullName) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Full name is required",
			Field:   "full_name",
		})
	}
	member.ID = 0
	if err := ctl.staff.CreateStaffMember(c.UserContext(), member); err != nil {
		return internalError(c, "create staff member", err)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

func (ctl *StaffController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid staff member id",
		})
	}
	member := new(models.StaffMember)
	if err := c.BodyParser(member); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	member.ID = uint(id)
	if err := ctl.staff.UpdateStaffMember(c.UserContext(), member); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Staff member not found",
			})
		}
		return internalError(c, "update staff member", err)
	}
	return c.JSON(member)
}

func (ctl *StaffController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid staff member id",
		})
	}
	if err := ctl.staff.DeleteStaffMember(c.UserContext(), uint(id)); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Staff member not found",
			})
		}
		return internalError(c, "delete staff member", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (ctl *StaffController) Gallery(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid staff member id",
		})
	}
	gallery, err := ctl.staff.StaffGallery(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Staff member not found",
			})
		}
		return internalError(c, "get staff gallery", err)
	}
	return c.JSON(gallery)
}

func (ctl *StaffController) AddGalleryImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid staff member id",
		})
	}
	img := new(models.GalleryImage)
	if err := c.BodyParser(img); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if strings.TrimSpace(img.ImageURL) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Image URL is required",
			Field:   "image_url",
		})
	}
	img.ID = 0
	img.StaffMemberID = uint(id)
	if err := ctl.staff.AddGalleryImage(c.UserContext(), img); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Staff member not found",
			})
		}
		return internalError(c, "add gallery image", err)
	}
	return c.Status(fiber.StatusCreated).JSON(img)
}

func (ctl *StaffController) RemoveGalleryImage(c *fiber.Ctx) error {
	imageID, err := c.ParamsInt("imageId")
	if err != nil || imageID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid image id",
		})
	}
	if err := ctl.staff.RemoveGalleryImage(c.UserContext(), uint(imageID)); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Gallery image not found",
			})
		}
		return internalError(c, "remove gallery image", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
