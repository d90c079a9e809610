package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/barbersalon/salon-api/availability"
	"github.com/barbersalon/salon-api/cache"
	"github.com/barbersalon/salon-api/models"
	"github.com/barbersalon/salon-api/store"
	"github.com/barbersalon/salon-api/utils"
)

// AdminController covers the back-office surface: booking management and the
// dashboard overview.
type AdminController struct {
	bookings store.BookingStore
	services store.ServiceStore
	staff    store.StaffStore
	messages store.ContactStore
	engine   *availability.Engine
	slots    *cache.SlotCache
}

func NewAdminController(st store.Store, engine *availability.Engine, slots *cache.SlotCache) *AdminController {
	return &AdminController{
		bookings: st,
		services: st,
		staff:    st,
		messages: st,
		engine:   engine,
		slots:    slots,
	}
}

// ListBookings returns all bookings, newest first, optionally filtered by
// ?status= or ?date=.
func (ctl *AdminController) ListBookings(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if raw := c.Query("status"); raw != "" {
		status := models.BookingStatus(raw)
		if !status.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Unknown booking status",
				Field:   "status",
			})
		}
		bookings, err := ctl.bookings.ListBookingsByStatus(ctx, status)
		if err != nil {
			return internalError(c, "list bookings by status", err)
		}
		return c.JSON(bookings)
	}

	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse(models.DateLayout, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "date must be in YYYY-MM-DD format",
				Field:   "date",
			})
		}
		bookings, err := ctl.bookings.ListBookingsByDate(ctx, date)
		if err != nil {
			return internalError(c, "list bookings by date", err)
		}
		return c.JSON(bookings)
	}

	bookings, err := ctl.bookings.ListBookings(ctx)
	if err != nil {
		return internalError(c, "list bookings", err)
	}
	return c.JSON(bookings)
}

func (ctl *AdminController) ConfirmBooking(c *fiber.Ctx) error {
	return ctl.setStatus(c, models.StatusConfirmed)
}

func (ctl *AdminController) CancelBooking(c *fiber.Ctx) error {
	return ctl.setStatus(c, models.StatusCancelled)
}

func (ctl *AdminController) CompleteBooking(c *fiber.Ctx) error {
	return ctl.setStatus(c, models.StatusCompleted)
}

// setStatus applies the target status unconditionally; there is no transition
// guard, so re-applying a status or cancelling a completed booking succeeds.
func (ctl *AdminController) setStatus(c *fiber.Ctx, status models.BookingStatus) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking id",
		})
	}
	ctx := c.UserContext()

	booking, err := ctl.bookings.GetBookingByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Booking not found",
			})
		}
		return internalError(c, "get booking", err)
	}

	if err := ctl.bookings.UpdateBookingStatus(ctx, uint(id), status); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Booking not found",
			})
		}
		return internalError(c, "update booking status", err)
	}

	// Cancelling frees the slot; any status change may affect the cached grid.
	ctl.slots.Invalidate(ctx, booking.AppointmentDate, booking.StaffMemberID)

	return c.JSON(fiber.Map{"success": true, "status": status})
}

// UpdateBooking reschedules or corrects an existing booking. Reference,
// status and creation timestamp stay as they are; status changes go through
// the confirm/cancel/complete endpoints.
func (ctl *AdminController) UpdateBooking(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking id",
		})
	}
	ctx := c.UserContext()

	existing, err := ctl.bookings.GetBookingByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Booking not found",
			})
		}
		return internalError(c, "get booking", err)
	}

	var req createBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if msg, field := validateBookingRequest(&req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: msg,
			Field:   field,
		})
	}
	date, err := time.Parse(models.DateLayout, req.AppointmentDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Appointment date must be in YYYY-MM-DD format",
			Field:   "appointment_date",
		})
	}
	if _, err := time.Parse(models.TimeLayout, req.AppointmentTime); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Appointment time must be in HH:MM format",
			Field:   "appointment_time",
		})
	}

	if _, err := ctl.services.GetServiceByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Selected service was not found",
				Field:   "service_id",
			})
		}
		return internalError(c, "update booking", err)
	}
	staffMember, err := ctl.staff.GetStaffMemberByID(ctx, req.StaffMemberID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Selected staff member was not found",
				Field:   "staff_member_id",
			})
		}
		return internalError(c, "update booking", err)
	}
	if !staffMember.IsActive {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Selected staff member is not taking bookings",
			Field:   "staff_member_id",
		})
	}

	updated := *existing
	updated.FirstName = req.FirstName
	updated.LastName = req.LastName
	updated.Email = req.Email
	updated.PhoneNumber = req.PhoneNumber
	updated.ServiceID = req.ServiceID
	updated.StaffMemberID = req.StaffMemberID
	updated.AppointmentDate = models.DateOnly(date)
	updated.AppointmentTime = req.AppointmentTime
	updated.SpecialRequests = req.SpecialRequests
	updated.Service = nil
	updated.StaffMember = nil

	// Only re-check availability when the slot actually moves; the booking's
	// own current slot must not count as a conflict.
	moved := updated.StaffMemberID != existing.StaffMemberID ||
		updated.AppointmentTime != existing.AppointmentTime ||
		!models.SameDate(updated.AppointmentDate, existing.AppointmentDate)
	if moved {
		available, err := ctl.engine.IsTimeSlotAvailable(ctx, updated.AppointmentDateTime(), updated.ServiceID, updated.StaffMemberID)
		if err != nil {
			return internalError(c, "check availability", err)
		}
		if !available {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "This time slot is not available. Please select a different time.",
				Field:   "appointment_time",
			})
		}
	}

	if err := ctl.bookings.UpdateBooking(ctx, &updated); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Booking not found",
			})
		}
		return internalError(c, "update booking", err)
	}

	ctl.slots.Invalidate(ctx, existing.AppointmentDate, existing.StaffMemberID)
	ctl.slots.Invalidate(ctx, updated.AppointmentDate, updated.StaffMemberID)

	return c.JSON(updated)
}

func (ctl *AdminController) DeleteBooking(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking id",
		})
	}
	ctx := c.UserContext()

	booking, err := ctl.bookings.GetBookingByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Booking not found",
			})
		}
		return internalError(c, "get booking", err)
	}
	if err := ctl.bookings.DeleteBooking(ctx, uint(id)); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Booking not found",
			})
		}
		return internalError(c, "delete booking", err)
	}

	ctl.slots.Invalidate(ctx, booking.AppointmentDate, booking.StaffMemberID)
	return c.SendStatus(fiber.StatusNoContent)
}

// Dashboard aggregates booking counts by status plus inbox state.
func (ctl *AdminController) Dashboard(c *fiber.Ctx) error {
	ctx := c.UserContext()

	bookings, err := ctl.bookings.ListBookings(ctx)
	if err != nil {
		return internalError(c, "dashboard bookings", err)
	}

	var stats struct {
		TotalBookings  int       `json:"total_bookings"`
		PendingCount   int       `json:"pending_count"`
		ConfirmedCount int       `json:"confirmed_count"`
		CompletedCount int       `json:"completed_count"`
		CancelledCount int       `json:"cancelled_count"`
		UpcomingCount  int       `json:"upcoming_count"`
		UnreadMessages int       `json:"unread_messages"`
		LastUpdated    time.Time `json:"last_updated"`
	}

	now := time.Now()
	stats.TotalBookings = len(bookings)
	for i := range bookings {
		switch bookings[i].Status {
		case models.StatusPending:
			stats.PendingCount++
		case models.StatusConfirmed:
			stats.ConfirmedCount++
		case models.StatusCompleted:
			stats.CompletedCount++
		case models.StatusCancelled:
			stats.CancelledCount++
		}
		if bookings[i].IsUpcoming(now) {
			stats.UpcomingCount++
		}
	}

	msgs, err := ctl.messages.ListContactMessages(ctx)
	if err != nil {
		return internalError(c, "dashboard messages", err)
	}
	for i := range msgs {
		if !msgs[i].IsRead {
			stats.UnreadMessages++
		}
	}

	stats.LastUpdated = now
	return c.JSON(stats)
}
