package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_BookingConfirmation(t *testing.T) {
	subject, text, html, err := Render(BookingConfirmation, map[string]any{
		"Name":        "Rider",
		"BicycleName": "Yokoo Sprinter",
		"Date":        "2024-06-01",
		"Price":       349.99,
		"OrderStatus": "pending",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, subject)
	assert.Contains(t, text, "Yokoo Sprinter")
	assert.Contains(t, html, "Yokoo Sprinter")
	assert.Contains(t, html, "Rider")
	assert.Contains(t, html, "pending")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("password_reset", nil)
	assert.Error(t, err)
}
