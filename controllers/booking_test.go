package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbersalon/salon-api/availability"
	"github.com/barbersalon/salon-api/models"
	"github.com/barbersalon/salon-api/store"
)

// newBookingApp wires the booking endpoints against a fresh in-memory store
// seeded with one service and two active staff members.
func newBookingApp(t *testing.T) (*fiber.App, *store.Memory) {
	t.Helper()
	ctx := context.Background()
	st := store.NewMemory(false)

	require.NoError(t, st.CreateService(ctx, &models.Service{
		Name:            "Classic Cut",
		Category:        models.CategoryHairMen,
		Price:           "R250.00",
		DurationMinutes: 30,
	}))
	require.NoError(t, st.CreateStaffMember(ctx, &models.StaffMember{
		FullName: "Michael Rodriguez", Role: "Master Barber", IsActive: true, SortOrder: 1,
	}))
	require.NoError(t, st.CreateStaffMember(ctx, &models.StaffMember{
		FullName: "Sarah Johnson", Role: "Hair Stylist", IsActive: true, SortOrder: 2,
	}))
	require.NoError(t, st.CreateStaffMember(ctx, &models.StaffMember{
		FullName: "Retired Bob", Role: "Barber", IsActive: false, SortOrder: 3,
	}))

	app := fiber.New()
	ctl := NewBookingController(st, availability.NewEngine(st), nil)
	app.Get("/bookings/slots", ctl.AvailableTimeSlots)
	app.Get("/bookings/upcoming", ctl.Upcoming)
	app.Get("/bookings/:id", ctl.Get)
	app.Post("/bookings", ctl.Create)
	return app, st
}

func bookingPayload(staffID uint, date, slot string) map[string]any {
	return map[string]any{
		"first_name":       "Jane",
		"last_name":        "Smith",
		"email":            "jane.smith@example.com",
		"phone_number":     "+27987654321",
		"service_id":       1,
		"staff_member_id":  staffID,
		"appointment_date": date,
		"appointment_time": slot,
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (*http.Response, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestCreateBooking(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(models.DateLayout)

	t.Run("Success", func(t *testing.T) {
		app, _ := newBookingApp(t)
		resp, raw := doJSON(t, app, http.MethodPost, "/bookings", bookingPayload(1, tomorrow, "10:00"))
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var got models.Booking
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, uint(1), got.ID)
		assert.Equal(t, models.StatusPending, got.Status)
		assert.Contains(t, got.Reference, "BK-")
		assert.Equal(t, "10:00", got.AppointmentTime)
	})

	t.Run("MissingFieldRejected", func(t *testing.T) {
		app, _ := newBookingApp(t)
		payload := bookingPayload(1, tomorrow, "10:00")
		payload["first_name"] = ""
		resp, raw := doJSON(t, app, http.MethodPost, "/bookings", payload)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(raw), "first_name")
	})

	t.Run("TodayRejected", func(t *testing.T) {
		app, _ := newBookingApp(t)
		today := time.Now().Format(models.DateLayout)
		resp, raw := doJSON(t, app, http.MethodPost, "/bookings", bookingPayload(1, today, "17:00"))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(raw), "future")
	})

	t.Run("BadDateFormatRejected", func(t *testing.T) {
		app, _ := newBookingApp(t)
		resp, _ := doJSON(t, app, http.MethodPost, "/bookings", bookingPayload(1, "10/06/2030", "10:00"))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UnknownServiceRejected", func(t *testing.T) {
		app, _ := newBookingApp(t)
		payload := bookingPayload(1, tomorrow, "10:00")
		payload["service_id"] = 42
		resp, raw := doJSON(t, app, http.MethodPost, "/bookings", payload)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(raw), "service")
	})

	t.Run("InactiveStaffRejected", func(t *testing.T) {
		app, _ := newBookingApp(t)
		resp, raw := doJSON(t, app, http.MethodPost, "/bookings", bookingPayload(3, tomorrow, "10:00"))
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(raw), "not taking bookings")
	})

	t.Run("DoubleBookingConflicts", func(t *testing.T) {
		app, _ := newBookingApp(t)
		resp, _ := doJSON(t, app, http.MethodPost, "/bookings", bookingPayload(1, tomorrow, "10:00"))
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)

		resp, raw := doJSON(t, app, http.MethodPost, "/bookings", bookingPayload(1, tomorrow, "10:00"))
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		assert.Contains(t, string(raw), "not available")

		// Same slot with another staff member is fine.
		resp, _ = doJSON(t, app, http.MethodPost, "/bookings", bookingPayload(2, tomorrow, "10:00"))
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})
}

func TestGetBooking(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(models.DateLayout)

	t.Run("Found", func(t *testing.T) {
		app, _ := newBookingApp(t)
		resp, _ := doJSON(t, app, http.MethodPost, "/bookings", bookingPayload(1, tomorrow, "10:00"))
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)

		resp, raw := doJSON(t, app, http.MethodGet, "/bookings/1", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var got models.Booking
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, "Jane", got.FirstName)
	})

	t.Run("NotFound", func(t *testing.T) {
		app, _ := newBookingApp(t)
		resp, _ := doJSON(t, app, http.MethodGet, "/bookings/42", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("InvalidID", func(t *testing.T) {
		app, _ := newBookingApp(t)
		resp, _ := doJSON(t, app, http.MethodGet, "/bookings/0", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestAvailableTimeSlots(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(models.DateLayout)

	slotsFor := func(t *testing.T, app *fiber.App, staffID uint) []string {
		t.Helper()
		url := fmt.Sprintf("/bookings/slots?date=%s&service_id=1&staff_id=%d", tomorrow, staffID)
		resp, raw := doJSON(t, app, http.MethodGet, url, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var body struct {
			Success   bool     `json:"success"`
			TimeSlots []string `json:"timeSlots"`
		}
		require.NoError(t, json.Unmarshal(raw, &body))
		require.True(t, body.Success)
		return body.TimeSlots
	}

	t.Run("FullGridWhenFree", func(t *testing.T) {
		app, _ := newBookingApp(t)
		slots := slotsFor(t, app, 1)
		require.Len(t, slots, 18)
		assert.Equal(t, "09:00", slots[0])
		assert.Equal(t, "17:30", slots[len(slots)-1])
	})

	t.Run("BookedSlotDisappears", func(t *testing.T) {
		app, _ := newBookingApp(t)
		resp, _ := doJSON(t, app, http.MethodPost, "/bookings", bookingPayload(1, tomorrow, "10:00"))
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)

		slots := slotsFor(t, app, 1)
		assert.Len(t, slots, 17)
		assert.NotContains(t, slots, "10:00")
		// Staff member two keeps the full grid.
		assert.Len(t, slotsFor(t, app, 2), 18)
	})

	t.Run("MissingStaffID", func(t *testing.T) {
		app, _ := newBookingApp(t)
		resp, _ := doJSON(t, app, http.MethodGet, "/bookings/slots?date="+tomorrow, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("BadDate", func(t *testing.T) {
		app, _ := newBookingApp(t)
		resp, _ := doJSON(t, app, http.MethodGet, "/bookings/slots?date=soon&staff_id=1", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestUpcomingBookings(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(models.DateLayout)
	dayAfter := time.Now().AddDate(0, 0, 2).Format(models.DateLayout)

	app, _ := newBookingApp(t)
	resp, _ := doJSON(t, app, http.MethodPost, "/bookings", bookingPayload(1, dayAfter, "09:00"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	second := bookingPayload(2, tomorrow, "16:00")
	second["email"] = "other@example.com"
	resp, _ = doJSON(t, app, http.MethodPost, "/bookings", second)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	t.Run("SoonestFirst", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodGet, "/bookings/upcoming", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var got []models.Booking
		require.NoError(t, json.Unmarshal(raw, &got))
		require.Len(t, got, 2)
		assert.Equal(t, "16:00", got[0].AppointmentTime)
		assert.Equal(t, "09:00", got[1].AppointmentTime)
	})

	t.Run("EmailFilter", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodGet, "/bookings/upcoming?email=OTHER@example.com", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var got []models.Booking
		require.NoError(t, json.Unmarshal(raw, &got))
		require.Len(t, got, 1)
		assert.Equal(t, "other@example.com", got[0].Email)
	})
}
