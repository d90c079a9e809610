package store

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/barbersalon/salon-api/models"
	"github.com/barbersalon/salon-api/utils"
)

// categoryOrder sorts catalog categories in display order rather than
// alphabetically.
const categoryOrder = "CASE category " +
	"WHEN 'hair_men' THEN 0 " +
	"WHEN 'hair_women' THEN 1 " +
	"WHEN 'nails' THEN 2 " +
	"WHEN 'skin_beauty' THEN 3 " +
	"ELSE 4 END"

// Gorm is the Postgres-backed Store.
type Gorm struct {
	db            *gorm.DB
	transactional bool
}

// NewGorm wraps an open GORM handle. With transactional set, booking creation
// re-checks the slot conflict inside a transaction with a row lock and fails
// with models.ErrConflict; otherwise the handler-level check-then-create
// sequence is the only guard.
func NewGorm(db *gorm.DB, transactional bool) *Gorm {
	return &Gorm{db: db, transactional: transactional}
}

var _ Store = (*Gorm)(nil)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return err
}

// --- bookings ---

func (g *Gorm) CreateBooking(ctx context.Context, b *models.Booking) error {
	b.Status = models.StatusPending
	b.AppointmentDate = models.DateOnly(b.AppointmentDate)
	if b.Reference == "" {
		b.Reference = utils.GenerateReference()
	}
	b.Service = nil
	b.StaffMember = nil

	db := g.db.WithContext(ctx)
	err := db.Transaction(func(tx *gorm.DB) error {
		if g.transactional {
			var existing models.Booking
			err := tx.Raw(`
				SELECT *
				FROM bookings
				WHERE staff_member_id = ? AND appointment_date = ? AND appointment_time = ? AND status <> ?
				FOR UPDATE
				LIMIT 1
			`, b.StaffMemberID, b.AppointmentDate, b.AppointmentTime, models.StatusCancelled).
				Scan(&existing).Error
			if err != nil {
				return err
			}
			if existing.ID != 0 {
				return models.ErrConflict
			}
		}
		return tx.Create(b).Error
	})
	if err != nil {
		return err
	}
	return db.Preload("Service").Preload("StaffMember").First(b, b.ID).Error
}

func (g *Gorm) GetBookingByID(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	err := g.db.WithContext(ctx).
		Preload("Service").Preload("StaffMember").
		First(&b, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (g *Gorm) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	err := g.db.WithContext(ctx).
		Preload("Service").Preload("StaffMember").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (g *Gorm) ListBookingsByDate(ctx context.Context, date time.Time) ([]models.Booking, error) {
	var out []models.Booking
	err := g.db.WithContext(ctx).
		Preload("Service").Preload("StaffMember").
		Where("appointment_date = ?", models.DateOnly(date)).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (g *Gorm) ListBookingsByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	var out []models.Booking
	err := g.db.WithContext(ctx).
		Preload("Service").Preload("StaffMember").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (g *Gorm) ListUpcomingBookings(ctx context.Context, now time.Time) ([]models.Booking, error) {
	// The appointment instant is date + time label, so the date filter is only
	// a coarse cut; the exact comparison happens here.
	var rows []models.Booking
	err := g.db.WithContext(ctx).
		Preload("Service").Preload("StaffMember").
		Where("status <> ?", models.StatusCancelled).
		Where("appointment_date >= ?", models.DateOnly(now)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]models.Booking, 0, len(rows))
	for i := range rows {
		if rows[i].IsUpcoming(now) {
			out = append(out, rows[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppointmentDateTime().Before(out[j].AppointmentDateTime())
	})
	return out, nil
}

func (g *Gorm) ListBookingsByStaffAndDate(ctx context.Context, staffID uint, date time.Time) ([]models.Booking, error) {
	var out []models.Booking
	err := g.db.WithContext(ctx).
		Where("staff_member_id = ? AND appointment_date = ?", staffID, models.DateOnly(date)).
		Find(&out).Error
	return out, err
}

func (g *Gorm) UpdateBooking(ctx context.Context, b *models.Booking) error {
	db := g.db.WithContext(ctx)
	var existing models.Booking
	if err := db.First(&existing, b.ID).Error; err != nil {
		return notFound(err)
	}
	b.AppointmentDate = models.DateOnly(b.AppointmentDate)
	b.CreatedAt = existing.CreatedAt
	b.Service = nil
	b.StaffMember = nil
	// Save writes every column, so fields cleared to their zero value stick.
	return db.Save(b).Error
}

func (g *Gorm) UpdateBookingStatus(ctx context.Context, id uint, status models.BookingStatus) error {
	res := g.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (g *Gorm) DeleteBooking(ctx context.Context, id uint) error {
	res := g.db.WithContext(ctx).Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// --- services ---

func (g *Gorm) CreateService(ctx context.Context, s *models.Service) error {
	return g.db.WithContext(ctx).Create(s).Error
}

func (g *Gorm) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := g.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func (g *Gorm) ListServices(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	err := g.db.WithContext(ctx).
		Order(categoryOrder).Order("sort_order").Order("name").
		Find(&out).Error
	return out, err
}

func (g *Gorm) ListServicesByCategory(ctx context.Context, category models.ServiceCategory) ([]models.Service, error) {
	var out []models.Service
	err := g.db.WithContext(ctx).
		Where("category = ?", category).
		Order("sort_order").Order("name").
		Find(&out).Error
	return out, err
}

func (g *Gorm) ListPopularServices(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	err := g.db.WithContext(ctx).
		Where("is_popular = ?", true).
		Order("sort_order").Order("name").
		Find(&out).Error
	return out, err
}

func (g *Gorm) UpdateService(ctx context.Context, s *models.Service) error {
	db := g.db.WithContext(ctx)
	var existing models.Service
	if err := db.First(&existing, s.ID).Error; err != nil {
		return notFound(err)
	}
	s.CreatedAt = existing.CreatedAt
	// Save writes every column; Updates with a struct would skip zero values
	// and never clear is_popular, sort_order or description.
	return db.Save(s).Error
}

func (g *Gorm) DeleteService(ctx context.Context, id uint) error {
	res := g.db.WithContext(ctx).Delete(&models.Service{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// --- staff ---

func withSortOrder(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order")
}

func (g *Gorm) CreateStaffMember(ctx context.Context, m *models.StaffMember) error {
	return g.db.WithContext(ctx).Create(m).Error
}

func (g *Gorm) GetStaffMemberByID(ctx context.Context, id uint) (*models.StaffMember, error) {
	var m models.StaffMember
	err := g.db.WithContext(ctx).
		Preload("Specializations", withSortOrder).
		Preload("Gallery", withSortOrder).
		First(&m, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

func (g *Gorm) ListStaffMembers(ctx context.Context) ([]models.StaffMember, error) {
	var out []models.StaffMember
	err := g.db.WithContext(ctx).
		Preload("Specializations", withSortOrder).
		Preload("Gallery", withSortOrder).
		Order("sort_order").Order("full_name").
		Find(&out).Error
	return out, err
}

func (g *Gorm) ListActiveStaff(ctx context.Context) ([]models.StaffMember, error) {
	var out []models.StaffMember
	err := g.db.WithContext(ctx).
		Preload("Specializations", withSortOrder).
		Preload("Gallery", withSortOrder).
		Where("is_active = ?", true).
		Order("sort_order").Order("full_name").
		Find(&out).Error
	return out, err
}

func (g *Gorm) ListStaffByRole(ctx context.Context, role string) ([]models.StaffMember, error) {
	var out []models.StaffMember
	err := g.db.WithContext(ctx).
		Preload("Specializations", withSortOrder).
		Preload("Gallery", withSortOrder).
		Where("is_active = ? AND LOWER(role) = LOWER(?)", true, role).
		Order("sort_order").Order("full_name").
		Find(&out).Error
	return out, err
}

func (g *Gorm) UpdateStaffMember(ctx context.Context, m *models.StaffMember) error {
	var existing models.StaffMember
	if err := g.db.WithContext(ctx).First(&existing, m.ID).Error; err != nil {
		return notFound(err)
	}
	m.CreatedAt = existing.CreatedAt
	return g.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(m).Error
}

func (g *Gorm) DeleteStaffMember(ctx context.Context, id uint) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.StaffMember{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}
		if err := tx.Where("staff_member_id = ?", id).Delete(&models.Specialization{}).Error; err != nil {
			return err
		}
		return tx.Where("staff_member_id = ?", id).Delete(&models.GalleryImage{}).Error
	})
}

func (g *Gorm) StaffGallery(ctx context.Context, staffID uint) ([]models.GalleryImage, error) {
	var m models.StaffMember
	if err := g.db.WithContext(ctx).First(&m, staffID).Error; err != nil {
		return nil, notFound(err)
	}
	var out []models.GalleryImage
	err := g.db.WithContext(ctx).
		Where("staff_member_id = ?", staffID).
		Order("sort_order").
		Find(&out).Error
	return out, err
}

func (g *Gorm) AddGalleryImage(ctx context.Context, img *models.GalleryImage) error {
	var m models.StaffMember
	if err := g.db.WithContext(ctx).First(&m, img.StaffMemberID).Error; err != nil {
		return notFound(err)
	}
	return g.db.WithContext(ctx).Create(img).Error
}

func (g *Gorm) RemoveGalleryImage(ctx context.Context, imageID uint) error {
	res := g.db.WithContext(ctx).Delete(&models.GalleryImage{}, imageID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// --- contact messages ---

func (g *Gorm) CreateContactMessage(ctx context.Context, m *models.ContactMessage) error {
	if m.SubmittedAt.IsZero() {
		m.SubmittedAt = time.Now()
	}
	return g.db.WithContext(ctx).Create(m).Error
}

func (g *Gorm) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var out []models.ContactMessage
	err := g.db.WithContext(ctx).Order("submitted_at DESC").Find(&out).Error
	return out, err
}

func (g *Gorm) MarkContactMessageRead(ctx context.Context, id uint) error {
	res := g.db.WithContext(ctx).Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_read": true, "responded_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// --- users ---

func (g *Gorm) CreateUser(ctx context.Context, u *models.User) error {
	return g.db.WithContext(ctx).Create(u).Error
}

func (g *Gorm) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := g.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}
