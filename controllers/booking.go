package controllers

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/barbersalon/salon-api/availability"
	"github.com/barbersalon/salon-api/cache"
	"github.com/barbersalon/salon-api/models"
	"github.com/barbersalon/salon-api/store"
	"github.com/barbersalon/salon-api/utils"
)

type BookingController struct {
	bookings store.BookingStore
	services store.ServiceStore
	staff    store.StaffStore
	engine   *availability.Engine
	slots    *cache.SlotCache
}

func NewBookingController(st store.Store, engine *availability.Engine, slots *cache.SlotCache) *BookingController {
	return &BookingController{
		bookings: st,
		services: st,
		staff:    st,
		engine:   engine,
		slots:    slots,
	}
}

type createBookingRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	ServiceID       uint   `json:"service_id"`
	StaffMemberID   uint   `json:"staff_member_id"`
	AppointmentDate string `json:"appointment_date"` // "2006-01-02"
	AppointmentTime string `json:"appointment_time"` // "15:04"
	SpecialRequests string `json:"special_requests"`
}

// Create validates a booking request, checks the slot and persists the
// booking as pending. The availability check and the insert are separate
// store calls; only CONSISTENCY_MODE=transactional closes that window.
func (ctl *BookingController) Create(c *fiber.Ctx) error {
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

	today := models.DateOnly(time.Now())
	if !models.DateOnly(date).After(today) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Appointment date must be in the future",
			Field:   "appointment_date",
		})
	}

	ctx := c.UserContext()

	if _, err := ctl.services.GetServiceByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Selected service was not found",
				Field:   "service_id",
			})
		}
		return internalError(c, "create booking", err)
	}

	staffMember, err := ctl.staff.GetStaffMemberByID(ctx, req.StaffMemberID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Selected staff member was not found",
				Field:   "staff_member_id",
			})
		}
		return internalError(c, "create booking", err)
	}
	if !staffMember.IsActive {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Selected staff member is not taking bookings",
			Field:   "staff_member_id",
		})
	}

	booking := &models.Booking{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		ServiceID:       req.ServiceID,
		StaffMemberID:   req.StaffMemberID,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		SpecialRequests: req.SpecialRequests,
	}

	available, err := ctl.engine.IsTimeSlotAvailable(ctx, booking.AppointmentDateTime(), req.ServiceID, req.StaffMemberID)
	if err != nil {
		return internalError(c, "check availability", err)
	}
	if !available {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "This time slot is not available. Please select a different time.",
			Field:   "appointment_time",
		})
	}

	if err := ctl.bookings.CreateBooking(ctx, booking); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "This time slot is not available. Please select a different time.",
				Field:   "appointment_time",
			})
		}
		return internalError(c, "create booking", err)
	}

	ctl.slots.Invalidate(ctx, booking.AppointmentDate, booking.StaffMemberID)

	go func(b models.Booking) {
		if err := utils.SendBookingConfirmation(&b); err != nil {
			log.Printf("confirmation email for %s not sent: %v", b.Reference, err)
		}
	}(*booking)

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// Get returns one booking, the payload behind the confirmation page.
func (ctl *BookingController) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid booking id",
		})
	}

	booking, err := ctl.bookings.GetBookingByID(c.UserContext(), uint(id))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Booking not found",
			})
		}
		return internalError(c, "get booking", err)
	}
	return c.JSON(booking)
}

// AvailableTimeSlots serves the slot picker: remaining labels for a date,
// service and staff member.
func (ctl *BookingController) AvailableTimeSlots(c *fiber.Ctx) error {
	date, err := time.Parse(models.DateLayout, c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "date must be in YYYY-MM-DD format",
		})
	}
	serviceID := c.QueryInt("service_id")
	staffID := c.QueryInt("staff_id")
	if staffID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "staff_id is required",
		})
	}

	ctx := c.UserContext()

	if slots, ok := ctl.slots.Get(ctx, date, uint(staffID)); ok {
		return c.JSON(fiber.Map{"success": true, "timeSlots": slots})
	}

	slots, err := ctl.engine.AvailableTimeSlots(ctx, date, uint(serviceID), uint(staffID))
	if err != nil {
		log.Printf("list available slots: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "An error occurred while loading time slots",
		})
	}

	ctl.slots.Set(ctx, date, uint(staffID), slots)
	return c.JSON(fiber.Map{"success": true, "timeSlots": slots})
}

// Upcoming lists non-cancelled future bookings, soonest first, optionally
// narrowed to one customer email.
func (ctl *BookingController) Upcoming(c *fiber.Ctx) error {
	bookings, err := ctl.bookings.ListUpcomingBookings(c.UserContext(), time.Now())
	if err != nil {
		return internalError(c, "list upcoming bookings", err)
	}

	if email := c.Query("email"); email != "" {
		filtered := make([]models.Booking, 0, len(bookings))
		for i := range bookings {
			if strings.EqualFold(bookings[i].Email, email) {
				filtered = append(filtered, bookings[i])
			}
		}
		bookings = filtered
	}
	return c.JSON(bookings)
}

func validateBookingRequest(req *createBookingRequest) (msg, field string) {
	switch {
	case strings.TrimSpace(req.FirstName) == "":
		return "First name is required", "first_name"
	case strings.TrimSpace(req.LastName) == "":
		return "Last name is required", "last_name"
	case strings.TrimSpace(req.Email) == "":
		return "Email is required", "email"
	case !strings.Contains(req.Email, "@"):
		return "Please enter a valid email address", "email"
	case strings.TrimSpace(req.PhoneNumber) == "":
		return "Phone number is required", "phone_number"
	case req.ServiceID == 0:
		return "Please select a service", "service_id"
	case req.StaffMemberID == 0:
		return "Please select a staff member", "staff_member_id"
	case req.AppointmentDate == "":
		return "Please select a date", "appointment_date"
	case req.AppointmentTime == "":
		return "Please select a time", "appointment_time"
	}
	return "", ""
}

// internalError logs the cause and returns a generic payload so internals
// never reach the client.
func internalError(c *fiber.Ctx, op string, err error) error {
	log.Printf("%s: %v", op, err)
	return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
		Message: "An unexpected error occurred. Please try again.",
	})
}
