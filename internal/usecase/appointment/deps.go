package appointment

import (
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/audit"
	"github.com/krystiangaleczka-tech/beautysalonapp/internal/notification"
)

// Notifier and Auditor are the fire-and-forget sinks the use cases write
// to; both are satisfied by the real dispatchers.
type Notifier interface {
	Dispatch(notification.Event)
}

type Auditor interface {
	Dispatch(audit.Event)
}
