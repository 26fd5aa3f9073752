package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// ProductLookup is the slice of the product repository carts need
type ProductLookup interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

var errProductNotFound = shared.NewFieldError("PRODUCT_NOT_FOUND", "product_id",
	"No product with the given ID was found.")

// CartService manages anonymous carts. A cart id is a bearer token: whoever
// holds it can read and change the cart until it expires.
type CartService struct {
	cartRepo cart.CartRepository
	products ProductLookup
	ttl      time.Duration
	metrics  *telemetry.BusinessMetrics
	logger   *zap.Logger
	now      func() time.Time
}

// CartServiceOption configures a CartService
type CartServiceOption func(*CartService)

// WithCartLogger sets the logger
func WithCartLogger(logger *zap.Logger) CartServiceOption {
	return func(s *CartService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCartMetrics records purges on the business metrics
func WithCartMetrics(metrics *telemetry.BusinessMetrics) CartServiceOption {
	return func(s *CartService) {
		s.metrics = metrics
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) CartServiceOption {
	return func(s *CartService) {
		s.now = now
	}
}

// NewCartService creates a new CartService. Carts older than ttl are treated
// as missing; a zero ttl keeps carts forever.
func NewCartService(cartRepo cart.CartRepository, products ProductLookup, ttl time.Duration, opts ...CartServiceOption) *CartService {
	s := &CartService{
		cartRepo: cartRepo,
		products: products,
		ttl:      ttl,
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create opens a new empty cart
func (s *CartService) Create(ctx context.Context) (*CartResponse, error) {
	c := cart.NewCart()
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToCartResponse(c)
	return &resp, nil
}

// Get returns a cart with its lines and totals
func (s *CartService) Get(ctx context.Context, cartID uuid.UUID) (*CartResponse, error) {
	c, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	resp := ToCartResponse(c)
	return &resp, nil
}

// Delete removes a cart and its lines
func (s *CartService) Delete(ctx context.Context, cartID uuid.UUID) error {
	if _, err := s.load(ctx, cartID); err != nil {
		return err
	}
	return s.cartRepo.Delete(ctx, cartID)
}

// ListItems returns the lines of a cart
func (s *CartService) ListItems(ctx context.Context, cartID uuid.UUID) ([]CartItemResponse, error) {
	c, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return ToCartResponse(c).Items, nil
}

// GetItem returns one line of a cart
func (s *CartService) GetItem(ctx context.Context, cartID, itemID uuid.UUID) (*CartItemResponse, error) {
	c, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	item := c.Item(itemID)
	if item == nil {
		return nil, cart.ErrCartItemNotFound
	}
	resp := ToCartItemResponse(item)
	return &resp, nil
}

// AddItem puts a product in the cart. Adding a product that already has a
// line increases that line's quantity.
func (s *CartService) AddItem(ctx context.Context, cartID uuid.UUID, req AddCartItemRequest) (*CartItemResponse, error) {
	c, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	exists, err := s.products.ExistsByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errProductNotFound
	}

	item, err := c.AddItem(req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}

	// the stored quantity wins over the in-memory merge when requests race
	if err := s.cartRepo.MergeItem(ctx, item, req.Quantity); err != nil {
		return nil, err
	}

	resp := ToCartItemResponse(item)
	return &resp, nil
}

// UpdateItem replaces the quantity of a line
func (s *CartService) UpdateItem(ctx context.Context, cartID, itemID uuid.UUID, req UpdateCartItemRequest) (*CartItemResponse, error) {
	c, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	item, err := c.UpdateItemQuantity(itemID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.SaveItem(ctx, item); err != nil {
		return nil, err
	}

	resp := ToCartItemResponse(item)
	return &resp, nil
}

// RemoveItem deletes a line from the cart
func (s *CartService) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	c, err := s.load(ctx, cartID)
	if err != nil {
		return err
	}
	if err := c.RemoveItem(itemID); err != nil {
		return err
	}
	return s.cartRepo.DeleteItem(ctx, cartID, itemID)
}

// PurgeExpired deletes every cart older than the configured TTL
func (s *CartService) PurgeExpired(ctx context.Context) (int64, error) {
	if s.ttl <= 0 {
		return 0, nil
	}

	cutoff := s.now().Add(-s.ttl)
	removed, err := s.cartRepo.DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	s.metrics.RecordCartsPurged(ctx, removed)
	s.logger.Info("expired carts purged",
		zap.Int64("removed", removed),
		zap.Time("cutoff", cutoff))
	return removed, nil
}

// load fetches a cart and hides expired ones
func (s *CartService) load(ctx context.Context, cartID uuid.UUID) (*cart.Cart, error) {
	c, err := s.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, cart.ErrCartNotFound
		}
		return nil, err
	}
	if c.IsExpired(s.ttl, s.now()) {
		return nil, cart.ErrCartNotFound
	}
	return c, nil
}
