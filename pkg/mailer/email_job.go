package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending a
// booking-confirmation email. HTML is optional; Text is the fallback body.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "booking_confirmation"
	Data     map[string]any `json:"data,omitempty"`
}
