package appointment

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/audit"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/domain/scheduling"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/notification"
)

// fakeRepo is an in-memory scheduling.Repository for use case tests.
type fakeRepo struct {
	clients  map[uint]*models.Client
	services map[uint]*models.Service
	staff    map[uint]*models.StaffProfile
	hours    map[uint]map[int]*models.WorkingHours

	appointments map[uint]*models.Appointment
	nextID       uint

	staffConflict  bool
	clientConflict bool
	checkerErr     error
	updateErr      error

	createdChecked []*models.Appointment
	updatedChecked []*models.Appointment
	updated        []*models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:      map[uint]*models.Client{},
		services:     map[uint]*models.Service{},
		staff:        map[uint]*models.StaffProfile{},
		hours:        map[uint]map[int]*models.WorkingHours{},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

func (f *fakeRepo) GetClient(ctx context.Context, id uint, _ scheduling.QueryMode) (*models.Client, error) {
	if c, ok := f.clients[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetService(ctx context.Context, id uint) (*models.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetStaffProfile(ctx context.Context, id uint) (*models.StaffProfile, error) {
	if s, ok := f.staff[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetWorkingHours(ctx context.Context, staffID uint, dayOfWeek int) (*models.WorkingHours, error) {
	if byDay, ok := f.hours[staffID]; ok {
		return byDay[dayOfWeek], nil
	}
	return nil, nil
}

func (f *fakeRepo) HasStaffConflict(ctx context.Context, staffID uint, start, end time.Time, excludeID uint) (bool, error) {
	if f.checkerErr != nil {
		return false, f.checkerErr
	}
	return f.staffConflict, nil
}

func (f *fakeRepo) HasClientConflict(ctx context.Context, clientID uint, start, end time.Time, excludeID uint) (bool, error) {
	if f.checkerErr != nil {
		return false, f.checkerErr
	}
	return f.clientConflict, nil
}

func (f *fakeRepo) CreateAppointmentChecked(ctx context.Context, ap *models.Appointment) error {
	ap.ID = f.nextID
	f.nextID++
	f.appointments[ap.ID] = ap
	f.createdChecked = append(f.createdChecked, ap)
	return nil
}

func (f *fakeRepo) UpdateAppointmentChecked(ctx context.Context, ap *models.Appointment) error {
	f.appointments[ap.ID] = ap
	f.updatedChecked = append(f.updatedChecked, ap)
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint, _ scheduling.QueryMode) (*models.Appointment, error) {
	if ap, ok := f.appointments[id]; ok {
		return ap, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.appointments[ap.ID] = ap
	f.updated = append(f.updated, ap)
	return nil
}

func (f *fakeRepo) ListActiveAppointmentsForDay(ctx context.Context, staffID uint, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.StaffProfileID != staffID {
			continue
		}
		if ap.ScheduledStartTime.Before(dayStart) || !ap.ScheduledStartTime.Before(dayEnd) {
			continue
		}
		active := false
		for _, s := range scheduling.ActiveStatuses() {
			if ap.Status == s {
				active = true
				break
			}
		}
		if active {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, staffID uint, start, end time.Time, status string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if staffID > 0 && ap.StaffProfileID != staffID {
			continue
		}
		if status != "" && ap.Status != status {
			continue
		}
		if ap.ScheduledStartTime.Before(start) || !ap.ScheduledStartTime.Before(end) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

var _ scheduling.Repository = (*fakeRepo)(nil)

type fakeNotifier struct {
	events []notification.Event
}

func (f *fakeNotifier) Dispatch(ev notification.Event) {
	f.events = append(f.events, ev)
}

type fakeAuditor struct {
	events []audit.Event
}

func (f *fakeAuditor) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}
