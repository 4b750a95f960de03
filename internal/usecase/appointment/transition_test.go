package appointment

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/domain/scheduling"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/httperr"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
)

func newTransitionUC(repo *fakeRepo) (*TransitionAppointment, *fakeNotifier, *fakeAuditor) {
	notifier := &fakeNotifier{}
	auditor := &fakeAuditor{}
	uc := NewTransitionAppointment(repo, notifier, auditor, testTZ)
	return uc, notifier, auditor
}

func TestConfirmDispatchesConfirmation(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)
	seedAppointment(repo, string(scheduling.StatusPending))
	uc, notifier, auditor := newTransitionUC(repo)

	ap, err := uc.Execute(context.Background(), TransitionAppointmentInput{
		AppointmentID: 10,
		Target:        string(scheduling.StatusConfirmed),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != string(scheduling.StatusConfirmed) {
		t.Fatalf("expected confirmed, got %s", ap.Status)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected one persisted update, got %d", len(repo.updated))
	}
	if len(notifier.events) != 1 || notifier.events[0].Kind != models.NotificationKindConfirmation {
		t.Fatalf("expected confirmation event, got %+v", notifier.events)
	}
	if len(auditor.events) != 1 || auditor.events[0].Action != "appointment_confirmed" {
		t.Fatalf("expected appointment_confirmed audit event, got %+v", auditor.events)
	}
}

func TestCancelRecordsReasonAndNotifies(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)
	seedAppointment(repo, string(scheduling.StatusConfirmed))
	uc, notifier, _ := newTransitionUC(repo)

	ap, err := uc.Execute(context.Background(), TransitionAppointmentInput{
		AppointmentID: 10,
		Target:        string(scheduling.StatusCancelled),
		Reason:        "client request",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.CancellationReason != "client request" {
		t.Fatalf("expected recorded reason, got %q", ap.CancellationReason)
	}
	if len(notifier.events) != 1 || notifier.events[0].Kind != models.NotificationKindCancellation {
		t.Fatalf("expected cancellation event, got %+v", notifier.events)
	}
	if notifier.events[0].Details.CancellationReason != "client request" {
		t.Fatalf("expected reason in details, got %+v", notifier.events[0].Details)
	}
}

func TestCheckInSilent(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)
	seedAppointment(repo, string(scheduling.StatusConfirmed))
	uc, notifier, _ := newTransitionUC(repo)

	ap, err := uc.Execute(context.Background(), TransitionAppointmentInput{
		AppointmentID: 10,
		Target:        string(scheduling.StatusCheckedIn),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.ActualStartTime == nil {
		t.Fatal("check-in must stamp the actual start time")
	}
	if len(notifier.events) != 0 {
		t.Fatalf("check-in must not notify, got %+v", notifier.events)
	}
}

func TestInvalidTransitionLeavesEntityUntouched(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)
	seedAppointment(repo, string(scheduling.StatusPending))
	uc, notifier, _ := newTransitionUC(repo)

	_, err := uc.Execute(context.Background(), TransitionAppointmentInput{
		AppointmentID: 10,
		Target:        string(scheduling.StatusCompleted),
	})
	if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
		t.Fatalf("expected invalid_transition, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Fatal("a rejected transition must not write")
	}
	if len(notifier.events) != 0 {
		t.Fatal("a rejected transition must not notify")
	}
	if got := repo.appointments[10].Status; got != string(scheduling.StatusPending) {
		t.Fatalf("entity status must be unchanged, got %s", got)
	}
}

func TestRebookingIntoTakenSlotIsTimeConflict(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)
	seedAppointment(repo, string(scheduling.StatusCancelled))
	repo.updateErr = &pgconn.PgError{Code: "23P01"}
	uc, notifier, auditor := newTransitionUC(repo)

	_, err := uc.Execute(context.Background(), TransitionAppointmentInput{
		AppointmentID: 10,
		Target:        string(scheduling.StatusPending),
	})
	if !httperr.IsBusiness(err, httperr.CodeTimeConflict) {
		t.Fatalf("expected time_conflict, got %v", err)
	}
	if len(notifier.events) != 0 {
		t.Fatalf("a rejected rebooking must not notify, got %+v", notifier.events)
	}
	if len(auditor.events) != 0 {
		t.Fatalf("a rejected rebooking must not audit, got %+v", auditor.events)
	}
}

func TestUnknownTargetStatus(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)
	seedAppointment(repo, string(scheduling.StatusPending))
	uc, _, _ := newTransitionUC(repo)

	_, err := uc.Execute(context.Background(), TransitionAppointmentInput{
		AppointmentID: 10,
		Target:        "archived",
	})
	if !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
		t.Fatalf("expected invalid_transition for unknown status, got %v", err)
	}
}
