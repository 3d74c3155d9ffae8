package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trial-shop/metrics"
	"trial-shop/models"
	"trial-shop/repositories"
)

type checkoutFixture struct {
	svc      *CheckoutService
	sink     *recordingSink
	sessions *repositories.MemorySessionRepository
	metrics  *metrics.Registry
	loader   *staticLoader
}

func newCheckoutFixture(t *testing.T, extra ...ActionSink) *checkoutFixture {
	t.Helper()

	reg := metrics.NewRegistry()
	sink := &recordingSink{}
	sessions := repositories.NewMemorySessionRepository(time.Hour)
	loader := &staticLoader{catalog: hotelCatalog()}
	actions := NewActionLogger(zap.NewNop(), reg, time.Second, append([]ActionSink{sink}, extra...)...)
	svc := NewCheckoutService(sessions, NewCatalogService(loader, prefixImages{}), actions, reg, zap.NewNop())

	return &checkoutFixture{svc: svc, sink: sink, sessions: sessions, metrics: reg, loader: loader}
}

func qty(n int) *int { return &n }

func TestCheckout_FullPurchase(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	sess, err := f.svc.Start(ctx, " p 01 ")
	require.NoError(t, err)
	assert.Equal(t, "P-01", sess.ParticipantID)
	assert.Equal(t, models.StateBrowsing, sess.State)

	list, err := f.svc.ViewList(ctx, sess)
	require.NoError(t, err)
	assert.Len(t, list.Products, 2)
	assert.Equal(t, "/static/images/hotel1_1.jpg", list.Products[0].ImageURL)

	_, err = f.svc.ViewDetail(ctx, sess, "1")
	require.NoError(t, err)

	count, err := f.svc.AddItem(ctx, sess, models.AddItemRequest{ProductID: "1", RoomType: "double", BreakfastOption: "buffet", Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	count, err = f.svc.AddItem(ctx, sess, models.AddItemRequest{ProductID: "2", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	view, err := f.svc.ViewCart(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, models.StateCartReview, sess.State)
	assert.Equal(t, 1000, view.Total)
	assert.Equal(t, "/static/images/hotel1_double_1.jpg", view.Items[0].ImageURL)

	_, err = f.svc.Proceed(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, models.StateConfirming, sess.State)

	receipt, err := f.svc.Purchase(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, 1000, receipt.Total)
	assert.Equal(t, models.StateCompleted, sess.State)
	assert.True(t, sess.Cart.IsEmpty())

	done, err := f.svc.ViewCompletion(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, "P-01", done.ParticipantID)
	require.NotNil(t, done.Receipt)
	assert.Equal(t, 1000, done.Receipt.Total)

	purchases := f.sink.byAction(models.ActionPurchaseComplete)
	require.Len(t, purchases, 1)
	assert.Equal(t, 1000, purchases[0].TotalPrice)
	assert.Equal(t, []string{"Harbor View", "Garden Inn"}, purchases[0].ProductNames)
	assert.Equal(t, []int{4, 3}, purchases[0].Quantities)
	assert.Equal(t, []int{400, 600}, purchases[0].Subtotals)
	assert.Equal(t, []string{"double", ""}, purchases[0].RoomTypes)
	assert.Equal(t, []string{"buffet", ""}, purchases[0].BreakfastOptions)
	assert.Equal(t, "P-01", purchases[0].ParticipantID)

	assert.Equal(t, []string{
		models.ActionSessionStarted,
		models.ActionListViewed,
		models.ActionDetailViewed,
		models.ActionAddedToCart,
		models.ActionAddedToCart,
		models.ActionCartViewed,
		models.ActionProceeded,
		models.ActionPurchaseComplete,
		models.ActionCompletionViewed,
	}, f.sink.actions())

	stored, err := f.sessions.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StateCompleted, stored.State)
	assert.True(t, stored.Cart.IsEmpty())

	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Purchases))
	assert.Equal(t, 1000.0, testutil.ToFloat64(f.metrics.PurchaseValue))
}

func TestCheckout_BackKeepsCart(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	sess, err := f.svc.Start(ctx, "P02")
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, sess, models.AddItemRequest{ProductID: "2", Quantity: 2})
	require.NoError(t, err)
	_, err = f.svc.ViewCart(ctx, sess)
	require.NoError(t, err)
	_, err = f.svc.Proceed(ctx, sess)
	require.NoError(t, err)

	confirm, err := f.svc.ViewConfirm(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, 400, confirm.Total)

	view, err := f.svc.Back(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, models.StateCartReview, sess.State)
	assert.Equal(t, 400, view.Total)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)

	back := f.sink.byAction(models.ActionReturnedToCart)
	require.Len(t, back, 1)
	assert.Equal(t, models.PageConfirm, back[0].Page)
	assert.Empty(t, f.sink.byAction(models.ActionPurchaseComplete))
}

func TestCheckout_UpdateItem(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	sess, err := f.svc.Start(ctx, "P03")
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, sess, models.AddItemRequest{ProductID: "2", Quantity: 1})
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, sess, models.AddItemRequest{ProductID: "1", RoomType: "single", BreakfastOption: "none", Quantity: 1})
	require.NoError(t, err)
	_, err = f.svc.ViewCart(ctx, sess)
	require.NoError(t, err)

	view, err := f.svc.UpdateItem(ctx, sess, models.UpdateItemRequest{ProductID: "2", Quantity: qty(5)})
	require.NoError(t, err)
	assert.Equal(t, 1100, view.Total)

	view, err = f.svc.UpdateItem(ctx, sess, models.UpdateItemRequest{ProductID: "1", RoomType: "single", BreakfastOption: "none", Quantity: qty(0)})
	require.NoError(t, err)
	assert.Equal(t, 1000, view.Total)
	assert.Len(t, view.Items, 1)

	view, err = f.svc.UpdateItem(ctx, sess, models.UpdateItemRequest{ProductID: "1", RoomType: "double", Quantity: qty(3)})
	require.NoError(t, err, "unknown triple is a no-op")
	assert.Equal(t, 1000, view.Total)

	_, err = f.svc.UpdateItem(ctx, sess, models.UpdateItemRequest{ProductID: "2"})
	assert.True(t, models.IsValidationError(err))

	updates := f.sink.byAction(models.ActionQuantityUpdated)
	require.Len(t, updates, 3)
	assert.Equal(t, []int{5}, updates[0].Quantities)
	assert.Equal(t, []int{0}, updates[1].Quantities)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.CartMutations.WithLabelValues("remove")))
}

func TestCheckout_AddItemRejectsBadInput(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	sess, err := f.svc.Start(ctx, "P04")
	require.NoError(t, err)

	_, err = f.svc.AddItem(ctx, sess, models.AddItemRequest{ProductID: "99", Quantity: 1})
	assert.True(t, models.IsNotFound(err))

	_, err = f.svc.AddItem(ctx, sess, models.AddItemRequest{ProductID: "1", RoomType: "penthouse", BreakfastOption: "none", Quantity: 1})
	assert.True(t, models.IsValidationError(err))

	_, err = f.svc.AddItem(ctx, sess, models.AddItemRequest{ProductID: "2", Quantity: 0})
	assert.True(t, models.IsValidationError(err))

	assert.True(t, sess.Cart.IsEmpty())
	assert.Empty(t, f.sink.byAction(models.ActionAddedToCart))
}

func TestCheckout_IllegalTransitions(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	sess, err := f.svc.Start(ctx, "P05")
	require.NoError(t, err)

	_, err = f.svc.Purchase(ctx, sess)
	assert.True(t, models.IsIllegalTransition(err))
	_, err = f.svc.ViewConfirm(ctx, sess)
	assert.True(t, models.IsIllegalTransition(err))
	_, err = f.svc.ViewCompletion(ctx, sess)
	assert.True(t, models.IsIllegalTransition(err))

	_, err = f.svc.ViewCart(ctx, sess)
	require.NoError(t, err)
	_, err = f.svc.Proceed(ctx, sess)
	require.NoError(t, err)

	_, err = f.svc.AddItem(ctx, sess, models.AddItemRequest{ProductID: "2", Quantity: 1})
	var it *models.IllegalTransitionError
	require.ErrorAs(t, err, &it)
	assert.Equal(t, models.StateConfirming, it.From)
	assert.Equal(t, models.StateConfirming, sess.State)
	assert.True(t, sess.Cart.IsEmpty())

	assert.Empty(t, f.sink.byAction(models.ActionPurchaseComplete))
	assert.Empty(t, f.sink.byAction(models.ActionAddedToCart))
}

func TestCheckout_EmptyCartPurchase(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	sess, err := f.svc.Start(ctx, "P06")
	require.NoError(t, err)
	_, err = f.svc.ViewCart(ctx, sess)
	require.NoError(t, err)
	_, err = f.svc.Proceed(ctx, sess)
	require.NoError(t, err)

	receipt, err := f.svc.Purchase(ctx, sess)
	require.NoError(t, err)
	assert.Zero(t, receipt.Total)

	purchases := f.sink.byAction(models.ActionPurchaseComplete)
	require.Len(t, purchases, 1)
	assert.Empty(t, purchases[0].ProductNames)
}

func TestCheckout_SinkFailureDoesNotBlockPurchase(t *testing.T) {
	f := newCheckoutFixture(t, failingSink{})
	ctx := context.Background()

	sess, err := f.svc.Start(ctx, "P07")
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, sess, models.AddItemRequest{ProductID: "2", Quantity: 1})
	require.NoError(t, err)
	_, err = f.svc.ViewCart(ctx, sess)
	require.NoError(t, err)
	_, err = f.svc.Proceed(ctx, sess)
	require.NoError(t, err)

	receipt, err := f.svc.Purchase(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, 200, receipt.Total)
	assert.Equal(t, models.StateCompleted, sess.State)
	assert.Positive(t, testutil.ToFloat64(f.metrics.SinkFailures.WithLabelValues("broken")))
}

func TestCheckout_ResetAfterCompletion(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	sess, err := f.svc.Start(ctx, "P08")
	require.NoError(t, err)
	_, err = f.svc.ViewCart(ctx, sess)
	require.NoError(t, err)
	_, err = f.svc.Proceed(ctx, sess)
	require.NoError(t, err)
	_, err = f.svc.Purchase(ctx, sess)
	require.NoError(t, err)

	require.NoError(t, f.svc.Reset(ctx, sess))
	assert.Equal(t, models.StateBrowsing, sess.State)
	assert.Nil(t, sess.LastPurchase)
	assert.Len(t, f.sink.byAction(models.ActionSessionReset), 1)
}

func TestCheckout_CatalogFailure(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	sess, err := f.svc.Start(ctx, "P09")
	require.NoError(t, err)

	f.loader.err = models.ErrCatalogInvalid
	_, err = f.svc.ViewList(ctx, sess)
	assert.True(t, errors.Is(err, models.ErrCatalogInvalid))
	assert.Empty(t, f.sink.byAction(models.ActionListViewed))
}

func TestCheckout_StartRejectsBadParticipant(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.Start(context.Background(), "   ")
	assert.True(t, models.IsValidationError(err))
	assert.Empty(t, f.sink.actions())
}

func withoutProduct(catalog *models.Catalog, id string) *models.Catalog {
	var kept []models.Product
	for _, p := range catalog.Products() {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return models.NewCatalog(kept)
}

func TestCheckout_PurchaseAfterProductLeavesCatalog(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	sess, err := f.svc.Start(ctx, "P10")
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, sess, models.AddItemRequest{ProductID: "1", RoomType: "single", BreakfastOption: "none", Quantity: 2})
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, sess, models.AddItemRequest{ProductID: "2", Quantity: 3})
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, sess, models.AddItemRequest{ProductID: "1", RoomType: "double", BreakfastOption: "buffet", Quantity: 1})
	require.NoError(t, err)

	f.loader.catalog = withoutProduct(hotelCatalog(), "2")

	view, err := f.svc.ViewCart(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, 300, view.Total)
	assert.Equal(t, 6, view.ItemCount, "vanished item still counts until the next update")
	assert.Len(t, view.Items, 2)

	_, err = f.svc.Proceed(ctx, sess)
	require.NoError(t, err)
	receipt, err := f.svc.Purchase(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, 300, receipt.Total)

	purchases := f.sink.byAction(models.ActionPurchaseComplete)
	require.Len(t, purchases, 1)
	rec := purchases[0]
	assert.Equal(t, 300, rec.TotalPrice)
	assert.Equal(t, []string{"Harbor View", "Harbor View"}, rec.ProductNames)
	assert.Equal(t, []int{2, 1}, rec.Quantities)
	assert.Equal(t, []int{200, 100}, rec.Subtotals)
	assert.Equal(t, []string{"single", "double"}, rec.RoomTypes)
	assert.Equal(t, []string{"none", "buffet"}, rec.BreakfastOptions)
	for _, n := range []int{len(rec.Quantities), len(rec.Subtotals), len(rec.RoomTypes), len(rec.BreakfastOptions)} {
		assert.Equal(t, len(rec.ProductNames), n)
	}
}

func TestCheckout_UpdateDropsVanishedProducts(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	sess, err := f.svc.Start(ctx, "P11")
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, sess, models.AddItemRequest{ProductID: "1", RoomType: "single", BreakfastOption: "none", Quantity: 1})
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, sess, models.AddItemRequest{ProductID: "2", Quantity: 3})
	require.NoError(t, err)
	_, err = f.svc.ViewCart(ctx, sess)
	require.NoError(t, err)

	f.loader.catalog = withoutProduct(hotelCatalog(), "2")

	view, err := f.svc.UpdateItem(ctx, sess, models.UpdateItemRequest{ProductID: "1", RoomType: "single", BreakfastOption: "none", Quantity: qty(2)})
	require.NoError(t, err)
	assert.Equal(t, 200, view.Total)
	assert.Equal(t, 2, view.ItemCount)

	stored, err := f.sessions.Get(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, stored.Cart.Items, 1)
	assert.Equal(t, "1", stored.Cart.Items[0].ProductID)

	_, err = f.svc.Proceed(ctx, sess)
	require.NoError(t, err)
	receipt, err := f.svc.Purchase(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, 200, receipt.Total)
	assert.Equal(t, 2, receipt.ItemCount)
}

func TestCheckout_QuantityCap(t *testing.T) {
	f := newCheckoutFixture(t)
	ctx := context.Background()

	sess, err := f.svc.Start(ctx, "P12")
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, sess, models.AddItemRequest{ProductID: "2", Quantity: models.MaxQuantity})
	require.NoError(t, err)

	_, err = f.svc.AddItem(ctx, sess, models.AddItemRequest{ProductID: "2", Quantity: 1})
	assert.True(t, models.IsValidationError(err))

	_, err = f.svc.ViewCart(ctx, sess)
	require.NoError(t, err)
	_, err = f.svc.UpdateItem(ctx, sess, models.UpdateItemRequest{ProductID: "2", Quantity: qty(models.MaxQuantity + 1)})
	assert.True(t, models.IsValidationError(err))

	stored, err := f.sessions.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MaxQuantity, stored.Cart.Count())
	assert.Len(t, f.sink.byAction(models.ActionAddedToCart), 1)
	assert.Empty(t, f.sink.byAction(models.ActionQuantityUpdated))
}
