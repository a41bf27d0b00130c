// internal/notify/notifier.go
package notify

import (
	"context"

	"github.com/researchsync/researchsync/internal/model"
)

// Kind identifies a notification event.
type Kind string

const (
	KindMembershipInvited   Kind = "membership_invited"
	KindTaskAssigned        Kind = "task_assigned"
	KindDeadlineAlert       Kind = "deadline_alert"
	KindAccountVerification Kind = "account_verification"
)

// Payload carries the event-specific fields. Only the fields relevant to
// the Kind are set.
type Payload struct {
	WorkspaceName   string
	InviterName     string
	TaskTitle       string
	VerificationURL string
}

// Notifier delivers best-effort notifications to users. Implementations
// never return delivery failures to the caller; the workflows treat every
// Notify call as fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, kind Kind, recipient *model.User, payload Payload)
}
