package appointment

import (
	"context"
	"testing"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/bookinglock"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/domain/scheduling"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/httperr"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
)

const testTZ = "Europe/Warsaw"

func seedCollaborators(repo *fakeRepo) {
	repo.clients[1] = &models.Client{ID: 1, FirstName: "Anna", LastName: "Kowalska", Email: "anna@example.com"}
	repo.services[2] = &models.Service{
		ID: 2, Name: "Classic Manicure", Active: true,
		DurationMinutes: 45, PreparationMinutes: 5, CleanupMinutes: 10,
		Price: 35.50,
	}
	repo.staff[3] = &models.StaffProfile{ID: 3, FirstName: "Maria", LastName: "Nowak"}
}

func newCreateUC(repo *fakeRepo) (*CreateAppointment, *fakeNotifier, *fakeAuditor) {
	notifier := &fakeNotifier{}
	auditor := &fakeAuditor{}
	uc := NewCreateAppointment(repo, bookinglock.Noop{}, notifier, auditor, testTZ)
	return uc, notifier, auditor
}

func TestCreateAppointment(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)
	uc, notifier, auditor := newCreateUC(repo)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:       1,
		ServiceID:      2,
		StaffProfileID: 3,
		Date:           "2030-03-04",
		Time:           "10:00",
		Notes:          "first visit",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != string(scheduling.StatusPending) {
		t.Fatalf("expected pending status, got %s", ap.Status)
	}
	// 45 service + 5 prep + 10 cleanup
	if got := ap.DurationMinutes(); got != 60 {
		t.Fatalf("expected 60 booked minutes, got %d", got)
	}
	if ap.Price != 35.50 {
		t.Fatalf("expected price snapshot 35.50, got %v", ap.Price)
	}

	if len(repo.createdChecked) != 1 {
		t.Fatalf("expected one checked create, got %d", len(repo.createdChecked))
	}
	if len(notifier.events) != 1 || notifier.events[0].Kind != models.NotificationKindConfirmation {
		t.Fatalf("expected one confirmation event, got %+v", notifier.events)
	}
	if len(auditor.events) != 1 || auditor.events[0].Action != "appointment_created" {
		t.Fatalf("expected appointment_created audit event, got %+v", auditor.events)
	}
}

func TestCreateAppointmentInPastPersistsNothing(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)
	uc, notifier, _ := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:       1,
		ServiceID:      2,
		StaffProfileID: 3,
		Date:           "2020-03-04",
		Time:           "10:00",
	})
	if !httperr.IsBusiness(err, httperr.CodePastTime) {
		t.Fatalf("expected past_time, got %v", err)
	}

	if len(repo.createdChecked) != 0 {
		t.Fatal("a rejected booking must not persist an appointment")
	}
	if len(notifier.events) != 0 {
		t.Fatal("a rejected booking must not send notifications")
	}
}

func TestCreateAppointmentStaffConflict(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)
	repo.staffConflict = true
	uc, _, _ := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 2, StaffProfileID: 3,
		Date: "2030-03-04", Time: "10:00",
	})
	if !httperr.IsBusiness(err, httperr.CodeStaffUnavailable) {
		t.Fatalf("expected staff_unavailable, got %v", err)
	}
}

func TestCreateAppointmentUnknownClient(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)
	uc, _, _ := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 99, ServiceID: 2, StaffProfileID: 3,
		Date: "2030-03-04", Time: "10:00",
	})
	if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestCreateAppointmentInactiveService(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)
	repo.services[2].Active = false
	uc, _, _ := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, ServiceID: 2, StaffProfileID: 3,
		Date: "2030-03-04", Time: "10:00",
	})
	if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not_found for inactive service, got %v", err)
	}
}
