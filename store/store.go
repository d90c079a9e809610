// Package store defines the persistence interfaces the controllers are built
// against, with two interchangeable backends: a Postgres/GORM store and an
// in-memory store used for tests and zero-dependency deployments.
package store

import (
	"context"
	"time"

	"github.com/barbersalon/salon-api/models"
)

// BookingStore persists appointment bookings.
//
// CreateBooking assigns the id, forces status to pending, stamps the creation
// time and generates the confirmation reference. Reads return bookings ordered
// by creation time descending unless stated otherwise. Lookups and status
// updates on unknown ids return models.ErrNotFound.
type BookingStore interface {
	CreateBooking(ctx context.Context, b *models.Booking) error
	GetBookingByID(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	ListBookingsByDate(ctx context.Context, date time.Time) ([]models.Booking, error)
	ListBookingsByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error)
	// ListUpcomingBookings returns non-cancelled bookings whose appointment
	// instant is after now, ascending by that instant.
	ListUpcomingBookings(ctx context.Context, now time.Time) ([]models.Booking, error)
	// ListBookingsByStaffAndDate returns every booking for the staff member on
	// the given calendar date, regardless of status.
	ListBookingsByStaffAndDate(ctx context.Context, staffID uint, date time.Time) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, b *models.Booking) error
	UpdateBookingStatus(ctx context.Context, id uint, status models.BookingStatus) error
	DeleteBooking(ctx context.Context, id uint) error
}

// ServiceStore persists the service catalog. ListServices orders by category,
// sort order, then name; the narrower listings order by sort order then name.
type ServiceStore interface {
	CreateService(ctx context.Context, s *models.Service) error
	GetServiceByID(ctx context.Context, id uint) (*models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	ListServicesByCategory(ctx context.Context, category models.ServiceCategory) ([]models.Service, error)
	ListPopularServices(ctx context.Context) ([]models.Service, error)
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id uint) error
}

// StaffStore persists the staff directory. Listings order by sort order then
// full name; ListActiveStaff and ListStaffByRole exclude deactivated members.
type StaffStore interface {
	CreateStaffMember(ctx context.Context, m *models.StaffMember) error
	GetStaffMemberByID(ctx context.Context, id uint) (*models.StaffMember, error)
	ListStaffMembers(ctx context.Context) ([]models.StaffMember, error)
	ListActiveStaff(ctx context.Context) ([]models.StaffMember, error)
	ListStaffByRole(ctx context.Context, role string) ([]models.StaffMember, error)
	UpdateStaffMember(ctx context.Context, m *models.StaffMember) error
	DeleteStaffMember(ctx context.Context, id uint) error
	StaffGallery(ctx context.Context, staffID uint) ([]models.GalleryImage, error)
	AddGalleryImage(ctx context.Context, img *models.GalleryImage) error
	RemoveGalleryImage(ctx context.Context, imageID uint) error
}

type ContactStore interface {
	CreateContactMessage(ctx context.Context, m *models.ContactMessage) error
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)
	MarkContactMessageRead(ctx context.Context, id uint) error
}

type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Store is the full persistence surface a backend provides.
type Store interface {
	BookingStore
	ServiceStore
	StaffStore
	ContactStore
	UserStore
}
