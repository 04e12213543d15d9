package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// BookingConfirmation is the template name understood by Render.
const BookingConfirmation = "booking_confirmation"

var bookingConfirmationHTML = template.Must(template.New(BookingConfirmation).Parse(`
<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>Your booking is confirmed</h2>
  <p>Hi {{.Name}},</p>
  <p>Thanks for booking the <strong>{{.BicycleName}}</strong> for {{.Date}}.</p>
  <p>Order status: <strong>{{.OrderStatus}}</strong>. Total: ${{.Price}}.</p>
  <p>The Yokoo Bicycle team</p>
</body>
</html>
`))

// Render renders the named template with data, returning subject, text and
// html bodies.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case BookingConfirmation:
		var buf bytes.Buffer
		if err = bookingConfirmationHTML.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = "Your Yokoo Bicycle booking"
		text = fmt.Sprintf("Your booking for %v on %v is confirmed.", data["BicycleName"], data["Date"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
