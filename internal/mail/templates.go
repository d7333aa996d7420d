package mail

import (
	"fmt"
	"html"
	"strings"

	"skillforge/internal/models"
)

// LeadAlert builds the notification email for a new lead submission.
func LeadAlert(lead *models.Lead) (subject, body string) {
	subject = fmt.Sprintf("New %s enquiry from %s", lead.Source, lead.FullName)

	var b strings.Builder
	b.WriteString("<h2>New enquiry received</h2>")
	b.WriteString("<table cellpadding=\"6\">")
	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "<tr><td><strong>%s</strong></td><td>%s</td></tr>",
			html.EscapeString(label), html.EscapeString(value))
	}
	row("Name", lead.FullName)
	row("Email", lead.Email)
	row("Phone", lead.Phone)
	if lead.Course != nil {
		row("Course", *lead.Course)
	}
	if lead.Message != nil {
		row("Message", *lead.Message)
	}
	row("Source", string(lead.Source))
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<p>Submitted %s</p>", lead.CreatedAt.Format("2 Jan 2006 15:04 MST"))

	return subject, b.String()
}

// PasswordReset builds the reset link email.
func PasswordReset(resetURL string) (subject, body string) {
	subject = "Reset your password"
	body = fmt.Sprintf(
		"<p>A password reset was requested for your account.</p>"+
			"<p><a href=%q>Reset password</a></p>"+
			"<p>The link expires in one hour. If you did not request this, ignore this email.</p>",
		resetURL)
	return subject, body
}
