package models

import "time"

// TimeLayout is the wire format for appointment time-of-day labels.
const TimeLayout = "15:04"

// DateLayout is the wire format for appointment dates.
const DateLayout = "2006-01-02"

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// StatusDisplayNames holds user-facing labels, kept apart from domain logic.
var StatusDisplayNames = map[BookingStatus]string{
	StatusPending:   "Pending",
	StatusConfirmed: "Confirmed",
	StatusCompleted: "Completed",
	StatusCancelled: "Cancelled",
}

func (s BookingStatus) Valid() bool {
	_, ok := StatusDisplayNames[s]
	return ok
}

// Booking is an appointment request for one staff member at one time slot.
// There is no state-machine guard on Status: any status may be re-applied or
// replaced by an administrative action, including cancelling a completed
// booking.
type Booking struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	Reference       string        `json:"reference" gorm:"uniqueIndex"`
	FirstName       string        `json:"first_name"`
	LastName        string        `json:"last_name"`
	Email           string        `json:"email"`
	PhoneNumber     string        `json:"phone_number"`
	ServiceID       uint          `json:"service_id"`
	Service         *Service      `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	StaffMemberID   uint          `json:"staff_member_id"`
	StaffMember     *StaffMember  `json:"staff_member,omitempty" gorm:"foreignKey:StaffMemberID"`
	AppointmentDate time.Time     `json:"appointment_date" gorm:"index"` // calendar date, time part zeroed
	AppointmentTime string        `json:"appointment_time"`              // slot label, "HH:mm"
	SpecialRequests string        `json:"special_requests"`
	Status          BookingStatus `json:"status" gorm:"index"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (b *Booking) FullName() string {
	return b.FirstName + " " + b.LastName
}

// AppointmentDateTime combines the calendar date and the slot label into the
// appointment instant. A malformed label yields the bare date.
func (b *Booking) AppointmentDateTime() time.Time {
	t, err := time.Parse(TimeLayout, b.AppointmentTime)
	if err != nil {
		return DateOnly(b.AppointmentDate)
	}
	d := DateOnly(b.AppointmentDate)
	return d.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
}

// IsUpcoming reports whether the appointment instant lies after now and the
// booking has not been cancelled.
func (b *Booking) IsUpcoming(now time.Time) bool {
	return b.Status != StatusCancelled && b.AppointmentDateTime().After(now)
}

// DateOnly strips the time-of-day portion, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether two instants fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
