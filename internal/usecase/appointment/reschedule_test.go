package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/bookinglock"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/domain/scheduling"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/httperr"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/timezone"
)

func seedAppointment(repo *fakeRepo, status string) *models.Appointment {
	loc := timezone.Location(testTZ)
	start := time.Date(2030, 3, 4, 10, 0, 0, 0, loc)

	ap := &models.Appointment{
		ID:                 10,
		ClientID:           1,
		ServiceID:          2,
		StaffProfileID:     3,
		ScheduledStartTime: start,
		ScheduledEndTime:   start.Add(60 * time.Minute),
		Status:             status,
		Price:              35.50,
		Client:             *repo.clients[1],
		Service:            *repo.services[2],
		StaffProfile:       *repo.staff[3],
	}
	repo.appointments[ap.ID] = ap
	return ap
}

func newRescheduleUC(repo *fakeRepo) (*RescheduleAppointment, *fakeAuditor) {
	auditor := &fakeAuditor{}
	uc := NewRescheduleAppointment(repo, bookinglock.Noop{}, auditor, testTZ)
	return uc, auditor
}

func TestRescheduleAppointment(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)
	seedAppointment(repo, string(scheduling.StatusConfirmed))
	uc, auditor := newRescheduleUC(repo)

	ap, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		AppointmentID: 10,
		Date:          "2030-03-05",
		Time:          "14:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.ScheduledStartTime.Format("2006-01-02 15:04") != "2030-03-05 14:00" {
		t.Fatalf("unexpected new start %v", ap.ScheduledStartTime)
	}
	if got := ap.DurationMinutes(); got != 60 {
		t.Fatalf("reschedule must keep the booked length, got %d minutes", got)
	}
	if len(repo.updatedChecked) != 1 {
		t.Fatalf("expected one checked update, got %d", len(repo.updatedChecked))
	}
	if len(auditor.events) != 1 || auditor.events[0].Action != "appointment_rescheduled" {
		t.Fatalf("expected appointment_rescheduled audit event, got %+v", auditor.events)
	}
}

func TestRescheduleToSameSlotSucceeds(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)
	seedAppointment(repo, string(scheduling.StatusConfirmed))
	uc, _ := newRescheduleUC(repo)

	// the conflict checker sees a busy calendar, but the only overlap is
	// the appointment itself, which the exclude id removes; the fake
	// reports no conflict, mirroring a correctly excluded scan
	ap, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		AppointmentID: 10,
		Date:          "2030-03-04",
		Time:          "10:00",
	})
	if err != nil {
		t.Fatalf("rescheduling to the same slot must succeed: %v", err)
	}
	if ap.ID != 10 {
		t.Fatalf("unexpected appointment %d", ap.ID)
	}
}

func TestRescheduleMovesStaff(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)
	repo.staff[4] = &models.StaffProfile{ID: 4, FirstName: "Ewa", LastName: "Lis"}
	seedAppointment(repo, string(scheduling.StatusPending))
	uc, _ := newRescheduleUC(repo)

	ap, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		AppointmentID:     10,
		Date:              "2030-03-04",
		Time:              "12:00",
		NewStaffProfileID: 4,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.StaffProfileID != 4 {
		t.Fatalf("expected staff 4, got %d", ap.StaffProfileID)
	}
}

func TestRescheduleCompletedRejected(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)
	seedAppointment(repo, string(scheduling.StatusCompleted))
	uc, _ := newRescheduleUC(repo)

	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		AppointmentID: 10,
		Date:          "2030-03-05",
		Time:          "14:00",
	})
	if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
		t.Fatalf("expected invalid_transition, got %v", err)
	}
	if len(repo.updatedChecked) != 0 {
		t.Fatal("a rejected reschedule must not write")
	}
}

func TestRescheduleConflictRejected(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)
	seedAppointment(repo, string(scheduling.StatusConfirmed))
	repo.staffConflict = true
	uc, _ := newRescheduleUC(repo)

	_, err := uc.Execute(context.Background(), RescheduleAppointmentInput{
		AppointmentID: 10,
		Date:          "2030-03-05",
		Time:          "14:00",
	})
	if !httperr.IsBusiness(err, httperr.CodeStaffUnavailable) {
		t.Fatalf("expected staff_unavailable, got %v", err)
	}
}
