package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/domain/scheduling"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/httperr"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// scoped applies the explicit soft-delete query mode.
func (r *SchedulingGormRepository) scoped(ctx context.Context, mode scheduling.QueryMode) *gorm.DB {
	q := r.db.WithContext(ctx)
	if mode == scheduling.IncludingDeleted {
		return q.Unscoped()
	}
	return q
}

// --------------------------------------------------
// External collaborators
// --------------------------------------------------

func (r *SchedulingGormRepository) GetClient(
	ctx context.Context,
	id uint,
	mode scheduling.QueryMode,
) (*models.Client, error) {

	var client models.Client
	if err := r.scoped(ctx, mode).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *SchedulingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *SchedulingGormRepository) GetStaffProfile(
	ctx context.Context,
	id uint,
) (*models.StaffProfile, error) {

	var staff models.StaffProfile
	if err := r.db.WithContext(ctx).First(&staff, id).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *SchedulingGormRepository) GetWorkingHours(
	ctx context.Context,
	staffID uint,
	dayOfWeek int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	err := r.db.WithContext(ctx).
		Where("staff_profile_id = ? AND day_of_week = ?", staffID, dayOfWeek).
		First(&wh).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wh, nil
}

// --------------------------------------------------
// Conflict checking
// --------------------------------------------------

// The occupancy predicate is owned by the domain: OccupyingStatuses keeps
// completed and no_show bookings claiming their historical interval.
func (r *SchedulingGormRepository) conflictQuery(
	ctx context.Context,
	column string,
	subjectID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) *gorm.DB {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(column+" = ?", subjectID).
		Where("status IN ?", scheduling.OccupyingStatuses()).
		Where("scheduled_start_time < ? AND scheduled_end_time > ?", end, start)

	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

func (r *SchedulingGormRepository) HasStaffConflict(
	ctx context.Context,
	staffID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) (bool, error) {

	var count int64
	if err := r.conflictQuery(ctx, "staff_profile_id", staffID, start, end, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SchedulingGormRepository) HasClientConflict(
	ctx context.Context,
	clientID uint,
	start time.Time,
	end time.Time,
	excludeID uint,
) (bool, error) {

	var count int64
	if err := r.conflictQuery(ctx, "client_id", clientID, start, end, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *SchedulingGormRepository) checkedWrite(
	ctx context.Context,
	ap *models.Appointment,
	excludeID uint,
	write func(tx *gorm.DB) error,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		for _, subject := range []struct {
			column string
			id     uint
		}{
			{"staff_profile_id", ap.StaffProfileID},
			{"client_id", ap.ClientID},
		} {
			var conflicts []models.Appointment
			q := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where(subject.column+" = ?", subject.id).
				Where("status IN ?", scheduling.OccupyingStatuses()).
				Where("scheduled_start_time < ? AND scheduled_end_time > ?",
					ap.ScheduledEndTime, ap.ScheduledStartTime)

			if excludeID > 0 {
				q = q.Where("id <> ?", excludeID)
			}

			if err := q.Find(&conflicts).Error; err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return httperr.ErrBusiness(httperr.CodeTimeConflict)
			}
		}

		return write(tx)
	})

	// The gist exclusion constraint is the storage-level backstop; surface
	// its violation as the same rejection as the in-transaction scan.
	if httperr.IsExclusionConflict(err) {
		return httperr.ErrBusiness(httperr.CodeTimeConflict)
	}
	return err
}

func (r *SchedulingGormRepository) CreateAppointmentChecked(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.checkedWrite(ctx, ap, 0, func(tx *gorm.DB) error {
		return tx.Create(ap).Error
	})
}

func (r *SchedulingGormRepository) UpdateAppointmentChecked(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.checkedWrite(ctx, ap, ap.ID, func(tx *gorm.DB) error {
		return tx.Save(ap).Error
	})
}

func (r *SchedulingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
	mode scheduling.QueryMode,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.scoped(ctx, mode).
		Preload("Client").
		Preload("Service").
		Preload("StaffProfile").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *SchedulingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *SchedulingGormRepository) ListActiveAppointmentsForDay(
	ctx context.Context,
	staffID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "scheduled_start_time", "scheduled_end_time", "status").
		Where("staff_profile_id = ?", staffID).
		Where("status IN ?", scheduling.ActiveStatuses()).
		Where("scheduled_start_time >= ? AND scheduled_start_time < ?", dayStart, dayEnd).
		Order("scheduled_start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *SchedulingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	staffID uint,
	start time.Time,
	end time.Time,
	status string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("StaffProfile").
		Where("scheduled_start_time >= ? AND scheduled_start_time < ?", start, end)

	if staffID > 0 {
		q = q.Where("staff_profile_id = ?", staffID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var aps []models.Appointment
	if err := q.Order("scheduled_start_time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ scheduling.Repository = (*SchedulingGormRepository)(nil)
