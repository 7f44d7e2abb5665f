package mailer

import (
	"fmt"
	"time"
)

// TemplateLoginAlert notifies a user that their account just signed in.
const TemplateLoginAlert = "login_alert"

// NewLoginAlertJob builds the queue payload for a login notification.
func NewLoginAlertJob(to, name, ip, userAgent string, at time.Time) EmailJob {
	return EmailJob{
		To:       to,
		Template: TemplateLoginAlert,
		Data: map[string]any{
			"Name":      name,
			"IP":        ip,
			"UserAgent": userAgent,
			"Time":      at.UTC().Format(time.RFC1123),
		},
	}
}

// RenderLoginAlert produces subject and plaintext body for the worker.
func RenderLoginAlert(data map[string]any) (subject, text string) {
	name, _ := data["Name"].(string)
	ip, _ := data["IP"].(string)
	ua, _ := data["UserAgent"].(string)
	at, _ := data["Time"].(string)
	subject = "New login to your account"
	text = fmt.Sprintf(
		"Hi %s,\n\nA new login to your account was detected.\n\nTime: %s\nIP address: %s\nDevice: %s\n\nIf this was you, no action is needed. Otherwise, change your password immediately.\n",
		name, at, ip, ua,
	)
	return subject, text
}
