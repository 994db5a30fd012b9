package handlers

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"salonbook/internal/booking"
	"salonbook/internal/models"
	"salonbook/internal/repository"

	"github.com/google/uuid"
)

// fakeBase satisfies the embedded repository.Repository interface for the
// in-memory fakes; transactions just run the function.
type fakeBase struct{}

func (fakeBase) Transaction(_ context.Context, fn func(tx *sql.Tx) error) error { return fn(nil) }
func (fakeBase) DB() *sql.DB                                                    { return nil }

// ── fake SalonRepository ──

type fakeSalonRepo struct {
	fakeBase
	salons map[uuid.UUID]*models.Salon
}

func newFakeSalonRepo() *fakeSalonRepo {
	return &fakeSalonRepo{salons: make(map[uuid.UUID]*models.Salon)}
}

func (f *fakeSalonRepo) Create(_ context.Context, salon *models.Salon) error {
	for _, s := range f.salons {
		if strings.EqualFold(s.Email, salon.Email) {
			return repository.ErrEmailExists
		}
	}
	if salon.Timezone == "" {
		salon.Timezone = "UTC"
	}
	if _, err := time.LoadLocation(salon.Timezone); err != nil {
		return repository.ErrInvalidTimezone
	}
	salon.ID = uuid.New()
	salon.CreatedAt = time.Now().UTC()
	salon.UpdatedAt = salon.CreatedAt
	f.salons[salon.ID] = salon
	return nil
}

func (f *fakeSalonRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Salon, error) {
	if s, ok := f.salons[id]; ok {
		return s, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSalonRepo) GetByEmail(_ context.Context, email string) (*models.Salon, error) {
	for _, s := range f.salons {
		if strings.EqualFold(s.Email, email) {
			return s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSalonRepo) UpdateTimezone(_ context.Context, id uuid.UUID, timezone string) error {
	s, ok := f.salons[id]
	if !ok {
		return repository.ErrNotFound
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return repository.ErrInvalidTimezone
	}
	s.Timezone = timezone
	return nil
}

// ── fake CustomerRepository ──

type fakeCustomerRepo struct {
	fakeBase
	customers map[uuid.UUID]*models.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*models.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *models.Customer) error {
	customer.ID = uuid.New()
	customer.CreatedAt = time.Now().UTC()
	customer.UpdatedAt = customer.CreatedAt
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Customer, error) {
	if c, ok := f.customers[id]; ok {
		return c, nil
	}
	return nil, repository.ErrNotFound
}

// ── fake SubscriptionRepository ──

type fakeSubscriptionRepo struct {
	fakeBase
	subscriptions map[uuid.UUID]*models.Subscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subscriptions: make(map[uuid.UUID]*models.Subscription)}
}

func (f *fakeSubscriptionRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Subscription, error) {
	if s, ok := f.subscriptions[id]; ok {
		return s, nil
	}
	return nil, repository.ErrNotFound
}

// ── fake AvailabilityRepository ──

type fakeAvailabilityRepo struct {
	fakeBase
	rules map[uuid.UUID][]models.AvailabilityRule // keyed by salon ID
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{rules: make(map[uuid.UUID][]models.AvailabilityRule)}
}

func (f *fakeAvailabilityRepo) Replace(_ context.Context, salonID uuid.UUID, rules []models.AvailabilityRule) ([]models.AvailabilityRule, error) {
	now := time.Now().UTC()
	saved := make([]models.AvailabilityRule, 0, len(rules))
	for _, rule := range rules {
		rule.ID = uuid.New()
		rule.SalonID = salonID
		rule.DayName = models.DayName(rule.DayOfWeek)
		rule.CreatedAt = now
		rule.UpdatedAt = now
		saved = append(saved, rule)
	}
	sort.Slice(saved, func(i, j int) bool { return saved[i].DayOfWeek < saved[j].DayOfWeek })
	f.rules[salonID] = saved
	return saved, nil
}

func (f *fakeAvailabilityRepo) ListBySalon(_ context.Context, salonID uuid.UUID) ([]models.AvailabilityRule, error) {
	return f.rules[salonID], nil
}

func (f *fakeAvailabilityRepo) UpdateRule(_ context.Context, id, salonID uuid.UUID, patch models.UpdateAvailabilityRequest) (*models.AvailabilityRule, error) {
	rules := f.rules[salonID]
	for i := range rules {
		if rules[i].ID != id {
			continue
		}
		if patch.IsWorkingDay != nil {
			rules[i].IsWorkingDay = *patch.IsWorkingDay
		}
		if patch.StartTime != nil {
			rules[i].StartTime = *patch.StartTime
		}
		if patch.EndTime != nil {
			rules[i].EndTime = *patch.EndTime
		}
		if patch.SlotDuration != nil {
			rules[i].SlotDuration = *patch.SlotDuration
		}
		rules[i].UpdatedAt = time.Now().UTC()
		return &rules[i], nil
	}
	return nil, repository.ErrNotFound
}

// ── fake AppointmentRepository ──

type fakeAppointmentRepo struct {
	fakeBase
	appointments map[uuid.UUID]*models.Appointment
	customers    *fakeCustomerRepo
}

func newFakeAppointmentRepo(customers *fakeCustomerRepo) *fakeAppointmentRepo {
	return &fakeAppointmentRepo{
		appointments: make(map[uuid.UUID]*models.Appointment),
		customers:    customers,
	}
}

func (f *fakeAppointmentRepo) CreateIfFree(_ context.Context, apt *models.Appointment, window time.Duration) error {
	start := apt.RequestedTime.UTC()
	end := start.Add(window)
	for _, other := range f.appointments {
		if other.SalonID != apt.SalonID || other.Status != models.StatusConfirmed {
			continue
		}
		occupied := other.EffectiveTime()
		if occupied.Before(end) && start.Before(occupied.Add(window)) {
			return repository.ErrSlotTaken
		}
	}
	apt.ID = uuid.New()
	apt.Status = models.StatusPending
	apt.RequestedTime = start
	apt.CreatedAt = time.Now().UTC()
	apt.UpdatedAt = apt.CreatedAt
	f.appointments[apt.ID] = apt
	return nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	if a, ok := f.appointments[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAppointmentRepo) GetBySalon(_ context.Context, id, salonID uuid.UUID) (*models.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok || a.SalonID != salonID {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointmentRepo) ListBySalon(_ context.Context, salonID uuid.UUID, filter repository.AppointmentFilter) ([]models.Appointment, error) {
	var result []models.Appointment
	for _, a := range f.appointments {
		if a.SalonID != salonID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		cp := *a
		if c, ok := f.customers.customers[a.CustomerID]; ok {
			cp.CustomerName = c.Name
			cp.CustomerEmail = c.Email
			cp.CustomerPhone = c.Phone
		}
		result = append(result, cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RequestedTime.After(result[j].RequestedTime) })
	return result, nil
}

func (f *fakeAppointmentRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]models.Appointment, error) {
	var result []models.Appointment
	for _, a := range f.appointments {
		if a.CustomerID == customerID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RequestedTime.After(result[j].RequestedTime) })
	return result, nil
}

func (f *fakeAppointmentRepo) ListCommittedTimes(_ context.Context, salonID uuid.UUID) ([]time.Time, error) {
	var times []time.Time
	for _, a := range f.appointments {
		if a.SalonID != salonID {
			continue
		}
		if a.Status == models.StatusConfirmed || a.Status == models.StatusRescheduleProposed {
			times = append(times, a.EffectiveTime())
		}
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	return times, nil
}

func (f *fakeAppointmentRepo) ApplyTransition(_ context.Context, id uuid.UUID, from models.AppointmentStatus, change booking.Change) (*models.Appointment, error) {
	a, ok := f.appointments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if a.Status != from {
		return nil, repository.ErrConflict
	}
	a.Status = change.Status
	a.RequestedTime = change.RequestedTime
	a.ProposedTime = change.ProposedTime
	a.UpdatedAt = time.Now().UTC()
	cp := *a
	return &cp, nil
}

func (f *fakeAppointmentRepo) ListDueReminders(_ context.Context, from, to time.Time) ([]models.Appointment, error) {
	var result []models.Appointment
	for _, a := range f.appointments {
		if a.Status != models.StatusConfirmed || a.ReminderSentAt != nil {
			continue
		}
		if a.RequestedTime.Before(from) || !a.RequestedTime.Before(to) {
			continue
		}
		cp := *a
		if c, ok := f.customers.customers[a.CustomerID]; ok {
			cp.CustomerName = c.Name
			cp.CustomerEmail = c.Email
			cp.CustomerPhone = c.Phone
		}
		result = append(result, cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RequestedTime.Before(result[j].RequestedTime) })
	return result, nil
}

func (f *fakeAppointmentRepo) MarkReminded(_ context.Context, id uuid.UUID, at time.Time) error {
	a, ok := f.appointments[id]
	if !ok {
		return repository.ErrNotFound
	}
	a.ReminderSentAt = &at
	return nil
}
