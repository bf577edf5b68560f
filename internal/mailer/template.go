package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/simontuck/gdc2025-website-sub001/internal/model"
)

// confirmationTmpl renders the booking confirmation email from a
// resolved receipt. Styling is inlined because mail clients strip
// stylesheets.
var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, Helvetica, sans-serif; color: #1a1a2e; max-width: 600px; margin: 0 auto;">
  <h1 style="font-size: 20px;">Thank you for your booking</h1>
  <p>Your payment has been received. Keep this email as your receipt.</p>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><td style="padding: 6px 0; color: #666;">Order number</td><td style="padding: 6px 0;"><strong>{{.OrderNumber}}</strong></td></tr>
    <tr><td style="padding: 6px 0; color: #666;">Product</td><td style="padding: 6px 0;">{{.ProductName}}</td></tr>
    <tr><td style="padding: 6px 0; color: #666;">Amount</td><td style="padding: 6px 0;">{{.Amount}}</td></tr>
    <tr><td style="padding: 6px 0; color: #666;">Payment date</td><td style="padding: 6px 0;">{{.PaymentDate}}</td></tr>
    <tr><td style="padding: 6px 0; color: #666;">Status</td><td style="padding: 6px 0;">{{.Status}}</td></tr>
  </table>
{{- with .RoomDetails}}
  <h2 style="font-size: 16px; margin-top: 24px;">Room reservation</h2>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><td style="padding: 6px 0; color: #666;">Room</td><td style="padding: 6px 0;">{{.RoomName}}</td></tr>
    <tr><td style="padding: 6px 0; color: #666;">Date</td><td style="padding: 6px 0;">{{.Date}}</td></tr>
    <tr><td style="padding: 6px 0; color: #666;">Time</td><td style="padding: 6px 0;">{{.TimeRange}}</td></tr>
    <tr><td style="padding: 6px 0; color: #666;">Duration</td><td style="padding: 6px 0;">{{.Duration}}</td></tr>
  </table>
{{- end}}
  <p style="margin-top: 24px; color: #666; font-size: 12px;">
    Geneva Dialogue Conference 2025 · If anything on this receipt looks wrong, just reply to this email.
  </p>
</body>
</html>`))

// RenderConfirmation produces the subject and HTML body of the booking
// confirmation email for a resolved receipt.
func RenderConfirmation(rcpt *model.PaymentReceipt) (subject, html string, err error) {
	if rcpt == nil {
		return "", "", fmt.Errorf("render confirmation: nil receipt")
	}
	var b strings.Builder
	if err := confirmationTmpl.Execute(&b, rcpt); err != nil {
		return "", "", fmt.Errorf("render confirmation: %w", err)
	}
	subject = "Your GDC 2025 booking confirmation"
	if rcpt.OrderNumber != "" {
		subject += " - " + rcpt.OrderNumber
	}
	return subject, b.String(), nil
}
