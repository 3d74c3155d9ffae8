package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trial-shop/metrics"
	"trial-shop/models"
	"trial-shop/repositories"
	"trial-shop/utils"
)

// CheckoutService drives a session through browse, cart, confirm and complete.
// Every method loads the catalog once, applies one transition, saves the
// session and then logs exactly one action record.
type CheckoutService struct {
	sessions repositories.SessionRepository
	catalog  *CatalogService
	actions  *ActionLogger
	metrics  *metrics.Registry
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

func NewCheckoutService(sessions repositories.SessionRepository, catalog *CatalogService, actions *ActionLogger, reg *metrics.Registry, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		sessions: sessions,
		catalog:  catalog,
		actions:  actions,
		metrics:  reg,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Session looks up an existing session. ErrSessionNotFound means the caller
// has to start a new one.
func (s *CheckoutService) Session(ctx context.Context, id string) (*models.Session, error) {
	return s.sessions.Get(ctx, id)
}

func (s *CheckoutService) Start(ctx context.Context, participantID string) (*models.Session, error) {
	pid, err := utils.FormatParticipantID(participantID)
	if err != nil {
		return nil, err
	}

	sess := models.NewSession(s.newID(), pid, s.now())
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	s.record(ctx, sess, models.ActionSessionStarted, models.PageStart, 0, nil)
	return sess, nil
}

// Reset gives the session a fresh empty cart and puts it back to browsing.
func (s *CheckoutService) Reset(ctx context.Context, sess *models.Session) error {
	sess.Cart.Clear()
	sess.State = models.StateBrowsing
	sess.LastPurchase = nil
	if err := s.save(ctx, sess); err != nil {
		return err
	}

	s.metrics.CartMutations.WithLabelValues("clear").Inc()
	s.record(ctx, sess, models.ActionSessionReset, models.PageStart, 0, nil)
	return nil
}

func (s *CheckoutService) ViewList(ctx context.Context, sess *models.Session) (*models.ProductListData, error) {
	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.transition(sess, models.EventViewList); err != nil {
		return nil, err
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	view := sess.Cart.View(catalog)
	s.record(ctx, sess, models.ActionListViewed, models.PageProductList, view.Total, nil)
	return &models.ProductListData{Products: catalog.Products(), CartCount: view.ItemCount}, nil
}

func (s *CheckoutService) ViewDetail(ctx context.Context, sess *models.Session, productID string) (*models.ProductDetailData, error) {
	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := models.Transition(sess.State, models.EventViewDetail); err != nil {
		return nil, err
	}
	product, ok := catalog.Lookup(productID)
	if !ok {
		return nil, &models.NotFoundError{ProductID: productID}
	}

	sess.State = models.StateBrowsing
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	view := sess.Cart.View(catalog)
	viewed := models.NewCartViewItem(product, models.LineItem{ProductID: product.ID})
	s.record(ctx, sess, models.ActionDetailViewed, models.PageProductDetail, view.Total, []models.CartViewItem{viewed})
	return &models.ProductDetailData{Product: product, CartCount: view.ItemCount}, nil
}

func (s *CheckoutService) ViewCart(ctx context.Context, sess *models.Session) (*models.CartView, error) {
	return s.cartStep(ctx, sess, models.EventViewCart, models.PageCart)
}

// AddItem validates the request against the catalog and merges it into the
// cart. It returns the cart's item count after the add.
func (s *CheckoutService) AddItem(ctx context.Context, sess *models.Session, req models.AddItemRequest) (int, error) {
	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.transition(sess, models.EventAddItem); err != nil {
		return 0, err
	}

	product, ok := catalog.Lookup(req.ProductID)
	if !ok {
		return 0, &models.NotFoundError{ProductID: req.ProductID}
	}
	if err := product.ValidateVariant(req.RoomType, req.BreakfastOption); err != nil {
		return 0, err
	}

	count, err := sess.Cart.Add(req.Key(), req.Quantity)
	if err != nil {
		return 0, err
	}
	if err := s.save(ctx, sess); err != nil {
		return 0, err
	}
	s.metrics.CartMutations.WithLabelValues("add").Inc()

	view := sess.Cart.View(catalog)
	added := models.NewCartViewItem(product, models.LineItem{
		ProductID:       product.ID,
		RoomType:        req.RoomType,
		BreakfastOption: req.BreakfastOption,
		Quantity:        req.Quantity,
	})
	s.record(ctx, sess, models.ActionAddedToCart, models.PageProductDetail, view.Total, []models.CartViewItem{added})
	return count, nil
}

// UpdateItem replaces the quantity of a line item; zero or less removes it.
// Updating an item that is not in the cart is accepted and changes nothing.
// Items whose product has left the catalog are dropped on every update.
func (s *CheckoutService) UpdateItem(ctx context.Context, sess *models.Session, req models.UpdateItemRequest) (*models.CartView, error) {
	if req.Quantity == nil {
		return nil, models.NewValidationError("quantity", "quantity is required")
	}

	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.transition(sess, models.EventUpdateQuantity); err != nil {
		return nil, err
	}

	qty := *req.Quantity
	if err := sess.Cart.Update(req.Key(), qty); err != nil {
		return nil, err
	}
	if n := sess.Cart.Prune(catalog); n > 0 {
		s.logger.Info("dropped items no longer in catalog",
			zap.String("participant_id", sess.ParticipantID),
			zap.Int("items", n),
		)
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	op := "update"
	if qty <= 0 {
		op = "remove"
		qty = 0
	}
	s.metrics.CartMutations.WithLabelValues(op).Inc()

	view := sess.Cart.View(catalog)
	s.catalog.decorate(view.Items)

	var items []models.CartViewItem
	if product, ok := catalog.Lookup(req.ProductID); ok {
		items = append(items, models.NewCartViewItem(product, models.LineItem{
			ProductID:       product.ID,
			RoomType:        req.RoomType,
			BreakfastOption: req.BreakfastOption,
			Quantity:        qty,
		}))
	}
	s.record(ctx, sess, models.ActionQuantityUpdated, models.PageCart, view.Total, items)
	return &view, nil
}

func (s *CheckoutService) Proceed(ctx context.Context, sess *models.Session) (*models.CartView, error) {
	return s.cartStep(ctx, sess, models.EventProceed, models.PageCart)
}

// ViewConfirm renders the confirmation page without changing state.
func (s *CheckoutService) ViewConfirm(ctx context.Context, sess *models.Session) (*models.CartView, error) {
	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := models.Transition(sess.State, models.EventViewConfirm); err != nil {
		return nil, err
	}

	view := sess.Cart.View(catalog)
	s.catalog.decorate(view.Items)
	return &view, nil
}

// Back returns from confirmation to the cart. The cart is not touched.
func (s *CheckoutService) Back(ctx context.Context, sess *models.Session) (*models.CartView, error) {
	return s.cartStep(ctx, sess, models.EventBack, models.PageConfirm)
}

// Purchase snapshots the priced cart, clears it and completes the session.
// An empty cart may be purchased.
func (s *CheckoutService) Purchase(ctx context.Context, sess *models.Session) (*models.Receipt, error) {
	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.transition(sess, models.EventPurchase); err != nil {
		return nil, err
	}

	view := sess.Cart.View(catalog)
	s.catalog.decorate(view.Items)
	receipt := &models.Receipt{CartView: view, PurchasedAt: s.now()}

	sess.Cart.Clear()
	sess.LastPurchase = receipt
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	s.metrics.CartMutations.WithLabelValues("clear").Inc()
	s.metrics.Purchases.Inc()
	s.metrics.PurchaseValue.Add(float64(view.Total))

	s.record(ctx, sess, models.ActionPurchaseComplete, models.PageConfirm, view.Total, view.Items)
	return receipt, nil
}

func (s *CheckoutService) ViewCompletion(ctx context.Context, sess *models.Session) (*models.CompletionData, error) {
	if err := s.transition(sess, models.EventViewCompletion); err != nil {
		return nil, err
	}

	total := 0
	var items []models.CartViewItem
	if sess.LastPurchase != nil {
		total = sess.LastPurchase.Total
		items = sess.LastPurchase.Items
	}
	s.record(ctx, sess, models.ActionCompletionViewed, models.PageComplete, total, items)
	return &models.CompletionData{ParticipantID: sess.ParticipantID, Receipt: sess.LastPurchase}, nil
}

// cartStep applies a transition that shows the whole cart and logs it.
func (s *CheckoutService) cartStep(ctx context.Context, sess *models.Session, event models.CheckoutEvent, page string) (*models.CartView, error) {
	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.transition(sess, event); err != nil {
		return nil, err
	}
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	view := sess.Cart.View(catalog)
	s.catalog.decorate(view.Items)
	s.record(ctx, sess, models.ActionLabel(event), page, view.Total, view.Items)
	return &view, nil
}

func (s *CheckoutService) transition(sess *models.Session, event models.CheckoutEvent) error {
	next, err := models.Transition(sess.State, event)
	if err != nil {
		return err
	}
	sess.State = next
	return nil
}

func (s *CheckoutService) save(ctx context.Context, sess *models.Session) error {
	sess.UpdatedAt = s.now()
	if err := s.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session %s: %w", sess.ID, err)
	}
	return nil
}

func (s *CheckoutService) record(ctx context.Context, sess *models.Session, action, page string, total int, items []models.CartViewItem) {
	rec := models.NewActionRecord(s.newID(), s.now(), sess.ParticipantID, action, page, total, items)
	s.actions.Log(ctx, rec)
}
