package notification

import (
	"context"
	"testing"
	"time"

	"github.com/krystiangaleczka-tech/beautysalonapp/internal/models"
)

type blockingNotifier struct {
	release chan struct{}
	seen    chan string
}

func (b *blockingNotifier) send(kind string) error {
	b.seen <- kind
	<-b.release
	return nil
}

func (b *blockingNotifier) SendAppointmentConfirmation(ctx context.Context, client *models.Client, id *uint, d Details) error {
	return b.send(models.NotificationKindConfirmation)
}

func (b *blockingNotifier) SendAppointmentCancellation(ctx context.Context, client *models.Client, id *uint, d Details) error {
	return b.send(models.NotificationKindCancellation)
}

func (b *blockingNotifier) SendAppointmentReminder(ctx context.Context, client *models.Client, id *uint, d Details) error {
	return b.send(models.NotificationKindReminder)
}

func TestDispatchNeverBlocks(t *testing.T) {
	n := &blockingNotifier{
		release: make(chan struct{}),
		seen:    make(chan string, 16),
	}
	d := newDispatcher(n, 1)

	// first event occupies the worker, second fills the queue, third is
	// dropped; none of the calls may block the caller
	done := make(chan struct{})
	go func() {
		for i := 0; i < 3; i++ {
			d.Dispatch(Event{Kind: models.NotificationKindConfirmation, Client: models.Client{ID: uint(i + 1)}})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}

	close(n.release)
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	n := &blockingNotifier{
		release: make(chan struct{}),
		seen:    make(chan string, 16),
	}
	close(n.release) // non-blocking sends

	d := newDispatcher(n, 8)
	d.Dispatch(Event{Kind: models.NotificationKindConfirmation, Client: models.Client{ID: 1}})
	d.Dispatch(Event{Kind: models.NotificationKindCancellation, Client: models.Client{ID: 1}})

	for _, want := range []string{models.NotificationKindConfirmation, models.NotificationKindCancellation} {
		select {
		case got := <-n.seen:
			if got != want {
				t.Fatalf("expected %s, got %s", want, got)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}
