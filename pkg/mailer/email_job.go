package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending
// email. The worker renders Template with Data; Subject/Text/HTML act
// as a raw fallback when Template is empty.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "login_alert"
	Data     map[string]any `json:"data,omitempty"`
}
