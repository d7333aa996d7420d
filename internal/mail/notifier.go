package mail

import (
	"context"
	"fmt"

	"skillforge/internal/content"
	"skillforge/internal/models"
)

// Notifier emails the institute's notification addresses when a lead
// comes in. Recipients are read from the stored site state at send time
// so address changes take effect without a restart.
type Notifier struct {
	sender Sender
	states content.Store
}

func NewNotifier(sender Sender, states content.Store) *Notifier {
	return &Notifier{sender: sender, states: states}
}

// NotifyLead sends the new-lead alert. If no notification addresses are
// configured it does nothing.
func (n *Notifier) NotifyLead(ctx context.Context, lead *models.Lead) error {
	raw, err := n.states.Load()
	if err != nil {
		return fmt.Errorf("load site state: %w", err)
	}
	recipients := content.Reconcile(raw).Site.NotificationEmails
	if len(recipients) == 0 {
		return nil
	}

	subject, body := LeadAlert(lead)
	return n.sender.Send(ctx, SendRequest{
		To:      recipients,
		Subject: subject,
		HTML:    body,
		ReplyTo: lead.Email,
	})
}
