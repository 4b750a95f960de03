package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/domain/scheduling"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/httperr"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/timezone"
)

func TestGetAvailability(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)

	// 2030-03-04 is a Monday
	repo.hours[3] = map[int]*models.WorkingHours{
		1: {
			StaffProfileID: 3,
			DayOfWeek:      1,
			StartTime:      "09:00",
			EndTime:        "12:00",
			IsAvailable:    true,
		},
	}

	uc := NewGetAvailability(repo, testTZ)
	date := time.Date(2030, 3, 4, 0, 0, 0, 0, timezone.Location(testTZ))

	slots, err := uc.Execute(context.Background(), 3, 2, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 60 total minutes on a 09:00-12:00 day, 30-minute grid
	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00"}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %+v", len(want), len(slots), slots)
	}
	for i, w := range want {
		if slots[i].Start != w {
			t.Fatalf("slot %d: expected %s, got %s", i, w, slots[i].Start)
		}
	}
}

func TestGetAvailabilitySkipsBookedSlots(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)
	repo.hours[3] = map[int]*models.WorkingHours{
		1: {
			StaffProfileID: 3,
			DayOfWeek:      1,
			StartTime:      "09:00",
			EndTime:        "12:00",
			IsAvailable:    true,
		},
	}

	loc := timezone.Location(testTZ)
	start := time.Date(2030, 3, 4, 9, 30, 0, 0, loc)
	repo.appointments[1] = &models.Appointment{
		ID:                 1,
		StaffProfileID:     3,
		ScheduledStartTime: start,
		ScheduledEndTime:   start.Add(30 * time.Minute),
		Status:             string(scheduling.StatusConfirmed),
	}

	uc := NewGetAvailability(repo, testTZ)
	date := time.Date(2030, 3, 4, 0, 0, 0, 0, loc)

	slots, err := uc.Execute(context.Background(), 3, 2, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range slots {
		// any 60-minute slot overlapping 09:30-10:00 must be gone
		if s.Start == "09:00" || s.Start == "09:30" {
			t.Fatalf("slot %s overlaps a confirmed booking", s.Start)
		}
	}
}

func TestGetAvailabilityNoTemplateMeansNoSlots(t *testing.T) {
	repo := newFakeRepo()
	seedCollaborators(repo)

	uc := NewGetAvailability(repo, testTZ)
	date := time.Date(2030, 3, 4, 0, 0, 0, 0, timezone.Location(testTZ))

	slots, err := uc.Execute(context.Background(), 3, 2, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots without a template, got %+v", slots)
	}
}

func TestGetAvailabilityUnknownService(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, testTZ)
	date := time.Date(2030, 3, 4, 0, 0, 0, 0, timezone.Location(testTZ))

	_, err := uc.Execute(context.Background(), 3, 99, date)
	if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}
