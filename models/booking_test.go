package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentDateTime(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("CombinesDateAndSlot", func(t *testing.T) {
		b := Booking{AppointmentDate: date, AppointmentTime: "14:30"}
		got := b.AppointmentDateTime()
		assert.Equal(t, time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC), got)
	})

	t.Run("IgnoresStrayTimePartOnDate", func(t *testing.T) {
		b := Booking{AppointmentDate: date.Add(11 * time.Hour), AppointmentTime: "09:00"}
		got := b.AppointmentDateTime()
		assert.Equal(t, time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC), got)
	})

	t.Run("MalformedLabelFallsBackToDate", func(t *testing.T) {
		b := Booking{AppointmentDate: date, AppointmentTime: "half past two"}
		assert.Equal(t, date, b.AppointmentDateTime())
	})
}

func TestIsUpcoming(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("FutureAndNotCancelled", func(t *testing.T) {
		b := Booking{AppointmentDate: now, AppointmentTime: "16:00", Status: StatusPending}
		assert.True(t, b.IsUpcoming(now))
	})

	t.Run("PastSlotSameDay", func(t *testing.T) {
		b := Booking{AppointmentDate: now, AppointmentTime: "09:00", Status: StatusConfirmed}
		assert.False(t, b.IsUpcoming(now))
	})

	t.Run("CancelledNeverUpcoming", func(t *testing.T) {
		b := Booking{AppointmentDate: now.AddDate(0, 0, 1), AppointmentTime: "10:00", Status: StatusCancelled}
		assert.False(t, b.IsUpcoming(now))
	})
}

func TestStatusAndCategoryValidity(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, BookingStatus("waiting").Valid())

	assert.True(t, CategoryNails.Valid())
	assert.False(t, ServiceCategory("tattoos").Valid())

	// Display labels stay out of domain comparisons.
	assert.Equal(t, "Cancelled", StatusDisplayNames[StatusCancelled])
	assert.Equal(t, "Nail Services", CategoryDisplayNames[CategoryNails])
}

func TestDateHelpers(t *testing.T) {
	a := time.Date(2024, 6, 10, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 6, 10, 0, 1, 0, 0, time.UTC)
	c := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(a, b))
	assert.False(t, SameDate(a, c))
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), DateOnly(a))
}
