package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/barbersalon/salon-api/models"
	"github.com/barbersalon/salon-api/utils"
)

// Memory is a list-backed Store guarded by a single mutex. It backs the test
// suite and the STORE_BACKEND=memory deployment mode.
type Memory struct {
	mu            sync.Mutex
	transactional bool

	bookings []models.Booking
	services []models.Service
	staff    []models.StaffMember
	messages []models.ContactMessage
	users    []models.User
}

// NewMemory returns an empty in-memory store. With transactional set, booking
// creation re-checks the slot conflict under the store lock and fails with
// models.ErrConflict instead of double-booking.
func NewMemory(transactional bool) *Memory {
	return &Memory{transactional: transactional}
}

var _ Store = (*Memory)(nil)

// --- bookings ---

func (m *Memory) CreateBooking(ctx context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.transactional {
		for i := range m.bookings {
			e := &m.bookings[i]
			if e.Status != models.StatusCancelled &&
				e.StaffMemberID == b.StaffMemberID &&
				e.AppointmentTime == b.AppointmentTime &&
				models.SameDate(e.AppointmentDate, b.AppointmentDate) {
				return models.ErrConflict
			}
		}
	}

	var maxID uint
	for i := range m.bookings {
		if m.bookings[i].ID > maxID {
			maxID = m.bookings[i].ID
		}
	}
	b.ID = maxID + 1
	b.Status = models.StatusPending
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	b.AppointmentDate = models.DateOnly(b.AppointmentDate)
	if b.Reference == "" {
		b.Reference = utils.GenerateReference()
	}
	b.Service = m.serviceByID(b.ServiceID)
	b.StaffMember = m.staffByID(b.StaffMemberID)

	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *Memory) GetBookingByID(ctx context.Context, id uint) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			b := m.bookings[i]
			b.Service = m.serviceByID(b.ServiceID)
			b.StaffMember = m.staffByID(b.StaffMemberID)
			return &b, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *Memory) ListBookings(ctx context.Context) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.copyBookings(func(b *models.Booking) bool { return true })
	sortByCreatedDesc(out)
	return out, nil
}

func (m *Memory) ListBookingsByDate(ctx context.Context, date time.Time) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.copyBookings(func(b *models.Booking) bool {
		return models.SameDate(b.AppointmentDate, date)
	})
	sortByCreatedDesc(out)
	return out, nil
}

func (m *Memory) ListBookingsByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.copyBookings(func(b *models.Booking) bool { return b.Status == status })
	sortByCreatedDesc(out)
	return out, nil
}

func (m *Memory) ListUpcomingBookings(ctx context.Context, now time.Time) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.copyBookings(func(b *models.Booking) bool { return b.IsUpcoming(now) })
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppointmentDateTime().Before(out[j].AppointmentDateTime())
	})
	return out, nil
}

func (m *Memory) ListBookingsByStaffAndDate(ctx context.Context, staffID uint, date time.Time) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.copyBookings(func(b *models.Booking) bool {
		return b.StaffMemberID == staffID && models.SameDate(b.AppointmentDate, date)
	})
	return out, nil
}

func (m *Memory) UpdateBooking(ctx context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == b.ID {
			b.CreatedAt = m.bookings[i].CreatedAt
			b.UpdatedAt = time.Now()
			b.AppointmentDate = models.DateOnly(b.AppointmentDate)
			m.bookings[i] = *b
			return nil
		}
	}
	return models.ErrNotFound
}

func (m *Memory) UpdateBookingStatus(ctx context.Context, id uint, status models.BookingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings[i].Status = status
			m.bookings[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return models.ErrNotFound
}

func (m *Memory) DeleteBooking(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (m *Memory) copyBookings(keep func(*models.Booking) bool) []models.Booking {
	out := make([]models.Booking, 0)
	for i := range m.bookings {
		if keep(&m.bookings[i]) {
			b := m.bookings[i]
			b.Service = m.serviceByID(b.ServiceID)
			b.StaffMember = m.staffByID(b.StaffMemberID)
			out = append(out, b)
		}
	}
	return out
}

func sortByCreatedDesc(bs []models.Booking) {
	sort.SliceStable(bs, func(i, j int) bool {
		return bs[i].CreatedAt.After(bs[j].CreatedAt)
	})
}

// --- services ---

func (m *Memory) CreateService(ctx context.Context, s *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var maxID uint
	for i := range m.services {
		if m.services[i].ID > maxID {
			maxID = m.services[i].ID
		}
	}
	s.ID = maxID + 1
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	m.services = append(m.services, *s)
	return nil
}

func (m *Memory) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.serviceByID(id)
	if s == nil {
		return nil, models.ErrNotFound
	}
	return s, nil
}

func (m *Memory) ListServices(ctx context.Context) ([]models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.Service(nil), m.services...)
	order := make(map[models.ServiceCategory]int, len(models.ServiceCategories))
	for i, c := range models.ServiceCategories {
		order[c] = i
	}
	sort.SliceStable(out, func(i, j int) bool {
		if order[out[i].Category] != order[out[j].Category] {
			return order[out[i].Category] < order[out[j].Category]
		}
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *Memory) ListServicesByCategory(ctx context.Context, category models.ServiceCategory) ([]models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Service, 0)
	for i := range m.services {
		if m.services[i].Category == category {
			out = append(out, m.services[i])
		}
	}
	sortServices(out)
	return out, nil
}

func (m *Memory) ListPopularServices(ctx context.Context) ([]models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Service, 0)
	for i := range m.services {
		if m.services[i].IsPopular {
			out = append(out, m.services[i])
		}
	}
	sortServices(out)
	return out, nil
}

func (m *Memory) UpdateService(ctx context.Context, s *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.services {
		if m.services[i].ID == s.ID {
			s.CreatedAt = m.services[i].CreatedAt
			s.UpdatedAt = time.Now()
			m.services[i] = *s
			return nil
		}
	}
	return models.ErrNotFound
}

func (m *Memory) DeleteService(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.services {
		if m.services[i].ID == id {
			m.services = append(m.services[:i], m.services[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (m *Memory) serviceByID(id uint) *models.Service {
	for i := range m.services {
		if m.services[i].ID == id {
			s := m.services[i]
			return &s
		}
	}
	return nil
}

func sortServices(ss []models.Service) {
	sort.SliceStable(ss, func(i, j int) bool {
		if ss[i].SortOrder != ss[j].SortOrder {
			return ss[i].SortOrder < ss[j].SortOrder
		}
		return ss[i].Name < ss[j].Name
	})
}

// --- staff ---

func (m *Memory) CreateStaffMember(ctx context.Context, sm *models.StaffMember) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var maxID uint
	for i := range m.staff {
		if m.staff[i].ID > maxID {
			maxID = m.staff[i].ID
		}
	}
	sm.ID = maxID + 1
	sm.CreatedAt = time.Now()
	sm.UpdatedAt = sm.CreatedAt
	for i := range sm.Specializations {
		sm.Specializations[i].StaffMemberID = sm.ID
	}
	for i := range sm.Gallery {
		sm.Gallery[i].StaffMemberID = sm.ID
	}
	m.staff = append(m.staff, *sm)
	return nil
}

func (m *Memory) GetStaffMemberByID(ctx context.Context, id uint) (*models.StaffMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sm := m.staffByID(id)
	if sm == nil {
		return nil, models.ErrNotFound
	}
	return sm, nil
}

func (m *Memory) ListStaffMembers(ctx context.Context) ([]models.StaffMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.StaffMember(nil), m.staff...)
	sortStaff(out)
	return out, nil
}

func (m *Memory) ListActiveStaff(ctx context.Context) ([]models.StaffMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.StaffMember, 0)
	for i := range m.staff {
		if m.staff[i].IsActive {
			out = append(out, m.staff[i])
		}
	}
	sortStaff(out)
	return out, nil
}

func (m *Memory) ListStaffByRole(ctx context.Context, role string) ([]models.StaffMember, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.StaffMember, 0)
	for i := range m.staff {
		if m.staff[i].IsActive && strings.EqualFold(m.staff[i].Role, role) {
			out = append(out, m.staff[i])
		}
	}
	sortStaff(out)
	return out, nil
}

func (m *Memory) UpdateStaffMember(ctx context.Context, sm *models.StaffMember) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.staff {
		if m.staff[i].ID == sm.ID {
			sm.CreatedAt = m.staff[i].CreatedAt
			sm.UpdatedAt = time.Now()
			m.staff[i] = *sm
			return nil
		}
	}
	return models.ErrNotFound
}

func (m *Memory) DeleteStaffMember(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.staff {
		if m.staff[i].ID == id {
			m.staff = append(m.staff[:i], m.staff[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (m *Memory) StaffGallery(ctx context.Context, staffID uint) ([]models.GalleryImage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sm := m.staffByID(staffID)
	if sm == nil {
		return nil, models.ErrNotFound
	}
	out := append([]models.GalleryImage(nil), sm.Gallery...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (m *Memory) AddGalleryImage(ctx context.Context, img *models.GalleryImage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.staff {
		if m.staff[i].ID == img.StaffMemberID {
			var maxID uint
			for j := range m.staff {
				for _, g := range m.staff[j].Gallery {
					if g.ID > maxID {
						maxID = g.ID
					}
				}
			}
			img.ID = maxID + 1
			m.staff[i].Gallery = append(m.staff[i].Gallery, *img)
			return nil
		}
	}
	return models.ErrNotFound
}

func (m *Memory) RemoveGalleryImage(ctx context.Context, imageID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.staff {
		for j := range m.staff[i].Gallery {
			if m.staff[i].Gallery[j].ID == imageID {
				g := m.staff[i].Gallery
				m.staff[i].Gallery = append(g[:j], g[j+1:]...)
				return nil
			}
		}
	}
	return models.ErrNotFound
}

func (m *Memory) staffByID(id uint) *models.StaffMember {
	for i := range m.staff {
		if m.staff[i].ID == id {
			sm := m.staff[i]
			sm.Specializations = append([]models.Specialization(nil), sm.Specializations...)
			sm.Gallery = append([]models.GalleryImage(nil), sm.Gallery...)
			return &sm
		}
	}
	return nil
}

func sortStaff(ms []models.StaffMember) {
	sort.SliceStable(ms, func(i, j int) bool {
		if ms[i].SortOrder != ms[j].SortOrder {
			return ms[i].SortOrder < ms[j].SortOrder
		}
		return ms[i].FullName < ms[j].FullName
	})
}

// --- contact messages ---

func (m *Memory) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var maxID uint
	for i := range m.messages {
		if m.messages[i].ID > maxID {
			maxID = m.messages[i].ID
		}
	}
	msg.ID = maxID + 1
	msg.SubmittedAt = time.Now()
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *Memory) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.ContactMessage(nil), m.messages...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}

func (m *Memory) MarkContactMessageRead(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.messages {
		if m.messages[i].ID == id {
			m.messages[i].IsRead = true
			now := time.Now()
			m.messages[i].RespondedAt = &now
			return nil
		}
	}
	return models.ErrNotFound
}

// --- users ---

func (m *Memory) CreateUser(ctx context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var maxID uint
	for i := range m.users {
		if m.users[i].ID > maxID {
			maxID = m.users[i].ID
		}
	}
	u.ID = maxID + 1
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.users = append(m.users, *u)
	return nil
}

func (m *Memory) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if strings.EqualFold(m.users[i].Email, email) {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}
