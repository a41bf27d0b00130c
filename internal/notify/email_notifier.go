// internal/notify/email_notifier.go
package notify

import (
	"context"
	"log/slog"

	"github.com/researchsync/researchsync/internal/email"
	"github.com/researchsync/researchsync/internal/model"
)

// EmailNotifier delivers notifications as rendered emails. Send failures are
// logged and swallowed: a lost email never rolls back the workflow write
// that triggered it.
type EmailNotifier struct {
	emails       *email.Service
	dashboardURL string
}

func NewEmailNotifier(emails *email.Service, dashboardURL string) *EmailNotifier {
	return &EmailNotifier{
		emails:       emails,
		dashboardURL: dashboardURL,
	}
}

type templateData struct {
	Name            string
	WorkspaceName   string
	InviterName     string
	TaskTitle       string
	DashboardURL    string
	VerificationURL string
}

func (n *EmailNotifier) Notify(ctx context.Context, kind Kind, recipient *model.User, payload Payload) {
	var subject, templateName string
	switch kind {
	case KindMembershipInvited:
		subject = "ResearchSync - Workspace Invitation"
		templateName = "workspace_invitation"
	case KindTaskAssigned:
		subject = "ResearchSync - New Task Assigned"
		templateName = "task_assigned"
	case KindDeadlineAlert:
		subject = "ResearchSync - Task Deadline Alert"
		templateName = "deadline_alert"
	case KindAccountVerification:
		subject = "ResearchSync - Email Verification"
		templateName = "account_verification"
	default:
		slog.WarnContext(ctx, "Unknown notification kind", "kind", kind)
		return
	}

	data := email.EmailData{
		To:           recipient.Email,
		FromName:     "ResearchSync",
		Subject:      subject,
		TemplateName: templateName,
		TemplateData: templateData{
			Name:            recipient.DisplayName(),
			WorkspaceName:   payload.WorkspaceName,
			InviterName:     payload.InviterName,
			TaskTitle:       payload.TaskTitle,
			DashboardURL:    n.dashboardURL,
			VerificationURL: payload.VerificationURL,
		},
	}

	if err := n.emails.Send(data); err != nil {
		slog.ErrorContext(ctx, "Failed to send notification email",
			"kind", kind, "recipient", recipient.Email, "error", err)
	}
}
