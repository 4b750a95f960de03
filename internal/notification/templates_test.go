package notification

import (
	"strings"
	"testing"
	"time"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
)

func testDetails() (*models.Client, Details) {
	client := &models.Client{ID: 1, FirstName: "Anna", LastName: "Kowalska", Email: "anna@example.com"}
	return client, Details{
		ServiceName:     "Classic Manicure",
		StaffName:       "Maria Nowak",
		StartTime:       time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
		Price:           35.50,
	}
}

func TestConfirmationMessage(t *testing.T) {
	client, d := testDetails()
	subject, body := confirmationMessage(client, d)

	if subject != "Appointment Confirmation" {
		t.Fatalf("unexpected subject %q", subject)
	}
	for _, want := range []string{"Dear Anna", "Classic Manicure", "2026-03-02 14:00", "Maria Nowak", "45 minutes", "$35.50"} {
		if !strings.Contains(body, want) {
			t.Fatalf("confirmation body missing %q:\n%s", want, body)
		}
	}
}

func TestCancellationMessageDefaultReason(t *testing.T) {
	client, d := testDetails()
	_, body := cancellationMessage(client, d)

	if !strings.Contains(body, "No reason provided") {
		t.Fatalf("expected default cancellation reason, got:\n%s", body)
	}

	d.CancellationReason = "staff illness"
	_, body = cancellationMessage(client, d)
	if !strings.Contains(body, "staff illness") {
		t.Fatalf("expected explicit cancellation reason, got:\n%s", body)
	}
}

func TestReminderMessage(t *testing.T) {
	client, d := testDetails()
	subject, body := reminderMessage(client, d)

	if subject != "Appointment Reminder" {
		t.Fatalf("unexpected subject %q", subject)
	}
	if !strings.Contains(body, "upcoming appointment") {
		t.Fatalf("reminder body missing lead-in:\n%s", body)
	}
}
