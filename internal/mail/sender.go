// Package mail delivers transactional email: new-lead alerts to the
// institute staff and password reset links to admin users. Delivery goes
// through the Sender interface so the app runs without an email provider
// configured.
package mail

import "context"

// SendRequest is one outbound email.
type SendRequest struct {
	To      []string
	From    string
	Subject string
	HTML    string
	ReplyTo string
}

// Sender delivers email through an external provider.
type Sender interface {
	Send(ctx context.Context, req SendRequest) error
}
