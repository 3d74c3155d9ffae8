package libs

import (
	"context"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"trial-shop/models"
)

type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// PurchaseMailer notifies the researcher whenever a participant completes a
// purchase. Other actions are ignored.
type PurchaseMailer struct {
	dialer mailDialer
	from   string
	to     string
}

func NewPurchaseMailer(host string, port int, user, pass, from, to string) *PurchaseMailer {
	if from == "" {
		from = user
	}
	return &PurchaseMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
		to:     to,
	}
}

func (m *PurchaseMailer) Name() string { return "mail" }

func (m *PurchaseMailer) Append(ctx context.Context, rec models.ActionRecord) error {
	if rec.Action != models.ActionPurchaseComplete {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("Purchase completed - participant %s", rec.ParticipantID))
	msg.SetBody("text/html", purchaseBody(rec))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func purchaseBody(rec models.ActionRecord) string {
	var b strings.Builder
	b.WriteString("<h2>Purchase completed</h2>")
	fmt.Fprintf(&b, "<p><strong>Participant:</strong> %s<br><strong>Time:</strong> %s<br><strong>Total:</strong> %d</p>",
		html.EscapeString(rec.ParticipantID), rec.Timestamp.Format("2006-01-02 15:04:05 MST"), rec.TotalPrice)
	b.WriteString("<table border=\"1\" cellpadding=\"4\"><tr><th>Product</th><th>Room</th><th>Breakfast</th><th>Qty</th><th>Subtotal</th></tr>")
	for i := range rec.ProductNames {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%d</td></tr>",
			html.EscapeString(rec.ProductNames[i]), html.EscapeString(rec.RoomTypes[i]),
			html.EscapeString(rec.BreakfastOptions[i]), rec.Quantities[i], rec.Subtotals[i])
	}
	b.WriteString("</table>")
	return b.String()
}
