package libs

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"trial-shop/models"
)

type fakeDialer struct {
	sent []*gomail.Message
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return nil
}

func TestPurchaseMailer_SendsOnPurchase(t *testing.T) {
	d := &fakeDialer{}
	m := &PurchaseMailer{dialer: d, from: "shop@example.com", to: "lab@example.com"}

	rec := models.NewActionRecord("r-1", time.Now(), "P-01", models.ActionPurchaseComplete, models.PageConfirm, 1000,
		[]models.CartViewItem{{Name: "<Harbor>", RoomType: "double", Quantity: 4, Subtotal: 400}})
	require.NoError(t, m.Append(context.Background(), rec))

	require.Len(t, d.sent, 1)
	assert.Equal(t, []string{"lab@example.com"}, d.sent[0].GetHeader("To"))
	assert.Contains(t, d.sent[0].GetHeader("Subject")[0], "P-01")

	var buf bytes.Buffer
	_, err := d.sent[0].WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Purchase completed")
}

func TestPurchaseMailer_IgnoresOtherActions(t *testing.T) {
	d := &fakeDialer{}
	m := &PurchaseMailer{dialer: d, to: "lab@example.com"}

	rec := models.NewActionRecord("r-2", time.Now(), "P-01", models.ActionCartViewed, models.PageCart, 0, nil)
	require.NoError(t, m.Append(context.Background(), rec))
	assert.Empty(t, d.sent)
}

func TestPurchaseBody_EscapesHTML(t *testing.T) {
	rec := models.NewActionRecord("r-3", time.Now(), "P-01", models.ActionPurchaseComplete, models.PageConfirm, 400,
		[]models.CartViewItem{{Name: "<Harbor>", RoomType: "double", Quantity: 4, Subtotal: 400}})

	body := purchaseBody(rec)
	assert.Contains(t, body, "&lt;Harbor&gt;")
	assert.NotContains(t, body, "<Harbor>")
	assert.Contains(t, body, "<td>400</td>")
}

func TestStaticImages_URL(t *testing.T) {
	images := NewStaticImages("/static/images/")

	assert.Equal(t, "/static/images/hotel1_1.jpg", images.URL("hotel1_1"))
	assert.Empty(t, images.URL(""))
}
