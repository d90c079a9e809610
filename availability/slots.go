// Package availability computes which of the salon's fixed daily time slots
// remain bookable for a staff member on a given date.
package availability

import (
	"context"
	"time"

	"github.com/barbersalon/salon-api/models"
	"github.com/barbersalon/salon-api/store"
)

// BusinessHours is the fixed slot set: every half hour from 09:00 through
// 17:30, identical for every day and every staff member. Slots are not derived
// from staff schedules or service duration.
var BusinessHours = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
}

// Engine answers slot availability questions against the booking store.
type Engine struct {
	bookings store.BookingStore
}

func NewEngine(bookings store.BookingStore) *Engine {
	return &Engine{bookings: bookings}
}

// AvailableTimeSlots returns the business-hour labels not taken by a
// non-cancelled booking for the staff member on the date, in business-hour
// order. serviceID is accepted for interface symmetry; the slot grid does not
// depend on the service.
func (e *Engine) AvailableTimeSlots(ctx context.Context, date time.Time, serviceID, staffID uint) ([]string, error) {
	existing, err := e.bookings.ListBookingsByStaffAndDate(ctx, staffID, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(existing))
	for i := range existing {
		if existing[i].Status != models.StatusCancelled {
			taken[existing[i].AppointmentTime] = true
		}
	}

	slots := make([]string, 0, len(BusinessHours))
	for _, s := range BusinessHours {
		if !taken[s] {
			slots = append(slots, s)
		}
	}
	return slots, nil
}

// IsTimeSlotAvailable reports whether the instant's slot is free for the staff
// member: false iff a non-cancelled booking matches the instant's date, its
// "HH:mm" label and the staff id. serviceID is unused, as above.
func (e *Engine) IsTimeSlotAvailable(ctx context.Context, at time.Time, serviceID, staffID uint) (bool, error) {
	label := at.Format(models.TimeLayout)

	existing, err := e.bookings.ListBookingsByStaffAndDate(ctx, staffID, at)
	if err != nil {
		return false, err
	}
	for i := range existing {
		if existing[i].Status != models.StatusCancelled && existing[i].AppointmentTime == label {
			return false, nil
		}
	}
	return true, nil
}
