package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbersalon/salon-api/availability"
	"github.com/barbersalon/salon-api/models"
	"github.com/barbersalon/salon-api/store"
)

// newAdminApp registers the admin handlers without the auth guard so the
// handlers can be exercised directly.
func newAdminApp(t *testing.T) (*fiber.App, *store.Memory) {
	t.Helper()
	ctx := context.Background()
	st := store.NewMemory(false)
	require.NoError(t, st.CreateService(ctx, &models.Service{
		Name: "Classic Cut", Category: models.CategoryHairMen, Price: "R250.00", DurationMinutes: 30,
	}))
	require.NoError(t, st.CreateStaffMember(ctx, &models.StaffMember{
		FullName: "Michael Rodriguez", Role: "Master Barber", IsActive: true, SortOrder: 1,
	}))
	require.NoError(t, st.CreateStaffMember(ctx, &models.StaffMember{
		FullName: "Sarah Johnson", Role: "Hair Stylist", IsActive: true, SortOrder: 2,
	}))

	ctl := NewAdminController(st, availability.NewEngine(st), nil)
	contact := NewContactController(st)

	app := fiber.New()
	app.Get("/admin/dashboard", ctl.Dashboard)
	app.Get("/admin/bookings", ctl.ListBookings)
	app.Patch("/admin/bookings/:id/confirm", ctl.ConfirmBooking)
	app.Patch("/admin/bookings/:id/cancel", ctl.CancelBooking)
	app.Patch("/admin/bookings/:id/complete", ctl.CompleteBooking)
	app.Put("/admin/bookings/:id", ctl.UpdateBooking)
	app.Delete("/admin/bookings/:id", ctl.DeleteBooking)
	app.Get("/admin/messages", contact.ListMessages)
	app.Patch("/admin/messages/:id/read", contact.MarkRead)
	return app, st
}

func seedAdminBooking(t *testing.T, st *store.Memory, staffID uint, date time.Time, slot string) *models.Booking {
	t.Helper()
	b := &models.Booking{
		FirstName:       "Jane",
		LastName:        "Smith",
		Email:           "jane.smith@example.com",
		PhoneNumber:     "+27987654321",
		ServiceID:       1,
		StaffMemberID:   staffID,
		AppointmentDate: date,
		AppointmentTime: slot,
	}
	require.NoError(t, st.CreateBooking(context.Background(), b))
	return b
}

func TestAdminBookingStatus(t *testing.T) {
	tomorrow := models.DateOnly(time.Now().AddDate(0, 0, 1))

	t.Run("ConfirmThenCancel", func(t *testing.T) {
		app, st := newAdminApp(t)
		b := seedAdminBooking(t, st, 1, tomorrow, "10:00")

		resp, _ := doJSON(t, app, http.MethodPatch, "/admin/bookings/1/confirm", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		got, err := st.GetBookingByID(context.Background(), b.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusConfirmed, got.Status)

		resp, _ = doJSON(t, app, http.MethodPatch, "/admin/bookings/1/cancel", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		got, err = st.GetBookingByID(context.Background(), b.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, got.Status)

		// No transition guard: cancelling twice still succeeds.
		resp, _ = doJSON(t, app, http.MethodPatch, "/admin/bookings/1/cancel", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Complete", func(t *testing.T) {
		app, st := newAdminApp(t)
		seedAdminBooking(t, st, 1, tomorrow, "10:00")
		resp, _ := doJSON(t, app, http.MethodPatch, "/admin/bookings/1/complete", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		got, err := st.GetBookingByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCompleted, got.Status)
	})

	t.Run("UnknownID", func(t *testing.T) {
		app, _ := newAdminApp(t)
		resp, _ := doJSON(t, app, http.MethodPatch, "/admin/bookings/42/confirm", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		resp, _ = doJSON(t, app, http.MethodPatch, "/admin/bookings/42/cancel", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("InvalidID", func(t *testing.T) {
		app, _ := newAdminApp(t)
		resp, _ := doJSON(t, app, http.MethodPatch, "/admin/bookings/0/confirm", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Delete", func(t *testing.T) {
		app, st := newAdminApp(t)
		seedAdminBooking(t, st, 1, tomorrow, "10:00")
		resp, _ := doJSON(t, app, http.MethodDelete, "/admin/bookings/1", nil)
		require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
		_, err := st.GetBookingByID(context.Background(), 1)
		assert.ErrorIs(t, err, models.ErrNotFound)

		resp, _ = doJSON(t, app, http.MethodDelete, "/admin/bookings/1", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestAdminUpdateBooking(t *testing.T) {
	tomorrow := models.DateOnly(time.Now().AddDate(0, 0, 1))
	ctx := context.Background()

	payload := func(staffID uint, slot string) map[string]any {
		return map[string]any{
			"first_name":       "Jane",
			"last_name":        "Smith-Jones",
			"email":            "jane.smith@example.com",
			"phone_number":     "+27987654321",
			"service_id":       1,
			"staff_member_id":  staffID,
			"appointment_date": tomorrow.Format(models.DateLayout),
			"appointment_time": slot,
		}
	}

	t.Run("Reschedule", func(t *testing.T) {
		app, st := newAdminApp(t)
		b := seedAdminBooking(t, st, 1, tomorrow, "10:00")
		require.NoError(t, st.UpdateBookingStatus(ctx, b.ID, models.StatusConfirmed))
		before, err := st.GetBookingByID(ctx, b.ID)
		require.NoError(t, err)

		resp, _ := doJSON(t, app, http.MethodPut, "/admin/bookings/1", payload(2, "14:30"))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		got, err := st.GetBookingByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, uint(2), got.StaffMemberID)
		assert.Equal(t, "14:30", got.AppointmentTime)
		assert.Equal(t, "Smith-Jones", got.LastName)
		// Reference, status and the creation timestamp survive an edit.
		assert.Equal(t, before.Reference, got.Reference)
		assert.Equal(t, models.StatusConfirmed, got.Status)
		assert.True(t, before.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("EditWithoutMovingKeepsSlot", func(t *testing.T) {
		app, st := newAdminApp(t)
		b := seedAdminBooking(t, st, 1, tomorrow, "10:00")

		// The booking's own slot must not read as a conflict.
		resp, _ := doJSON(t, app, http.MethodPut, "/admin/bookings/1", payload(1, "10:00"))
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		got, err := st.GetBookingByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "Smith-Jones", got.LastName)
		assert.Equal(t, "10:00", got.AppointmentTime)
	})

	t.Run("MoveOntoTakenSlotConflicts", func(t *testing.T) {
		app, st := newAdminApp(t)
		seedAdminBooking(t, st, 1, tomorrow, "10:00")
		seedAdminBooking(t, st, 1, tomorrow, "11:00")

		resp, raw := doJSON(t, app, http.MethodPut, "/admin/bookings/2", payload(1, "10:00"))
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		assert.Contains(t, string(raw), "not available")
	})

	t.Run("UnknownBooking", func(t *testing.T) {
		app, _ := newAdminApp(t)
		resp, _ := doJSON(t, app, http.MethodPut, "/admin/bookings/42", payload(1, "10:00"))
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("UnknownService", func(t *testing.T) {
		app, st := newAdminApp(t)
		seedAdminBooking(t, st, 1, tomorrow, "10:00")
		body := payload(1, "10:00")
		body["service_id"] = 42
		resp, raw := doJSON(t, app, http.MethodPut, "/admin/bookings/1", body)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(raw), "service")
	})

	t.Run("MissingField", func(t *testing.T) {
		app, st := newAdminApp(t)
		seedAdminBooking(t, st, 1, tomorrow, "10:00")
		body := payload(1, "10:00")
		body["email"] = ""
		resp, _ := doJSON(t, app, http.MethodPut, "/admin/bookings/1", body)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestAdminListBookings(t *testing.T) {
	tomorrow := models.DateOnly(time.Now().AddDate(0, 0, 1))
	dayAfter := models.DateOnly(time.Now().AddDate(0, 0, 2))

	app, st := newAdminApp(t)
	seedAdminBooking(t, st, 1, tomorrow, "10:00")
	b2 := seedAdminBooking(t, st, 1, dayAfter, "11:00")
	require.NoError(t, st.UpdateBookingStatus(context.Background(), b2.ID, models.StatusConfirmed))

	t.Run("All", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodGet, "/admin/bookings", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var got []models.Booking
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Len(t, got, 2)
	})

	t.Run("ByStatus", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodGet, "/admin/bookings?status=confirmed", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var got []models.Booking
		require.NoError(t, json.Unmarshal(raw, &got))
		require.Len(t, got, 1)
		assert.Equal(t, b2.ID, got[0].ID)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/admin/bookings?status=waiting", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ByDate", func(t *testing.T) {
		resp, raw := doJSON(t, app, http.MethodGet, "/admin/bookings?date="+tomorrow.Format(models.DateLayout), nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var got []models.Booking
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Len(t, got, 1)
	})
}

func TestAdminDashboard(t *testing.T) {
	tomorrow := models.DateOnly(time.Now().AddDate(0, 0, 1))
	ctx := context.Background()

	app, st := newAdminApp(t)
	seedAdminBooking(t, st, 1, tomorrow, "09:00")
	confirmed := seedAdminBooking(t, st, 1, tomorrow, "10:00")
	require.NoError(t, st.UpdateBookingStatus(ctx, confirmed.ID, models.StatusConfirmed))
	cancelled := seedAdminBooking(t, st, 1, tomorrow, "11:00")
	require.NoError(t, st.UpdateBookingStatus(ctx, cancelled.ID, models.StatusCancelled))
	require.NoError(t, st.CreateContactMessage(ctx, &models.ContactMessage{
		Name: "Pat", Email: "pat@example.com", Subject: "Hours", Message: "Open Sundays?",
	}))

	resp, raw := doJSON(t, app, http.MethodGet, "/admin/dashboard", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats struct {
		TotalBookings  int `json:"total_bookings"`
		PendingCount   int `json:"pending_count"`
		ConfirmedCount int `json:"confirmed_count"`
		CancelledCount int `json:"cancelled_count"`
		UpcomingCount  int `json:"upcoming_count"`
		UnreadMessages int `json:"unread_messages"`
	}
	require.NoError(t, json.Unmarshal(raw, &stats))
	assert.Equal(t, 3, stats.TotalBookings)
	assert.Equal(t, 1, stats.PendingCount)
	assert.Equal(t, 1, stats.ConfirmedCount)
	assert.Equal(t, 1, stats.CancelledCount)
	assert.Equal(t, 2, stats.UpcomingCount)
	assert.Equal(t, 1, stats.UnreadMessages)
}

func TestAdminMessages(t *testing.T) {
	app, st := newAdminApp(t)
	msg := &models.ContactMessage{Name: "Pat", Email: "pat@example.com", Subject: "Hours", Message: "Open Sundays?"}
	require.NoError(t, st.CreateContactMessage(context.Background(), msg))

	resp, _ := doJSON(t, app, http.MethodPatch, "/admin/messages/1/read", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, raw := doJSON(t, app, http.MethodGet, "/admin/messages", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got []models.ContactMessage
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Len(t, got, 1)
	assert.True(t, got[0].IsRead)

	resp, _ = doJSON(t, app, http.MethodPatch, "/admin/messages/42/read", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
