package reminder

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/config"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/domain/scheduling"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/notification"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/timezone"
)

// Scheduler sends a reminder once per confirmed appointment, shortly
// before its start. Dedup comes from the notifications table, so a
// restart does not re-send.
type Scheduler struct {
	db          *gorm.DB
	notifier    *notification.Service
	dispatcher  *notification.Dispatcher
	tz          string
	leadMinutes int

	cron *cron.Cron
}

func NewScheduler(
	db *gorm.DB,
	notifier *notification.Service,
	dispatcher *notification.Dispatcher,
	cfg *config.Config,
) *Scheduler {
	return &Scheduler{
		db:          db,
		notifier:    notifier,
		dispatcher:  dispatcher,
		tz:          cfg.SalonTimezone,
		leadMinutes: cfg.ReminderLeadMinutes,
		cron:        cron.New(),
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("* * * * *", s.run); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("reminder scheduler started, lead time %d minutes", s.leadMinutes)
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) run() {
	ctx := context.Background()
	now := timezone.NowIn(s.tz)

	// the job fires every minute; a 5-minute window around the lead time
	// tolerates missed ticks without reminding twice (the notifications
	// table is the real dedupe)
	windowStart := now.Add(time.Duration(s.leadMinutes-5) * time.Minute)
	windowEnd := now.Add(time.Duration(s.leadMinutes+5) * time.Minute)

	var appointments []models.Appointment
	err := s.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("StaffProfile").
		Where("status = ?", string(scheduling.StatusConfirmed)).
		Where("scheduled_start_time BETWEEN ? AND ?", windowStart, windowEnd).
		Find(&appointments).Error
	if err != nil {
		log.Printf("reminder: failed to load upcoming appointments: %v", err)
		return
	}

	for _, ap := range appointments {
		sent, err := s.notifier.HasReminder(ctx, ap.ID)
		if err != nil {
			log.Printf("reminder: dedupe check failed for appointment %d: %v", ap.ID, err)
			continue
		}
		if sent {
			continue
		}

		apID := ap.ID
		s.dispatcher.Dispatch(notification.Event{
			Kind:          models.NotificationKindReminder,
			Client:        ap.Client,
			AppointmentID: &apID,
			Details: notification.Details{
				ServiceName:     ap.Service.Name,
				StaffName:       ap.StaffProfile.FullName(),
				StartTime:       ap.ScheduledStartTime,
				DurationMinutes: ap.Service.DurationMinutes,
				Price:           ap.Price,
			},
		})
	}
}
