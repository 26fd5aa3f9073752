package persistence

import (
	"context"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/order"
	"gorm.io/gorm"
)

// txRepositories hands out repositories bound to one *gorm.DB transaction
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) Carts() cart.CartRepository {
	return NewGormCartRepository(r.tx)
}

func (r txRepositories) Customers() identity.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

func (r txRepositories) Orders() order.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

func (r txRepositories) Users() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

// GormTransactor implements order.CheckoutTransactor on top of gorm
// transactions. Accounts exposes the same transactor as an
// identity.AccountTransactor.
type GormTransactor struct {
	db *gorm.DB
}

var (
	_ order.CheckoutTransactor   = (*GormTransactor)(nil)
	_ identity.AccountTransactor = accountTransactor{}
)

// NewGormTransactor creates a new GormTransactor
func NewGormTransactor(db *gorm.DB) *GormTransactor {
	return &GormTransactor{db: db}
}

// WithinTx runs fn with checkout repositories sharing one transaction.
// The transaction commits only if fn returns nil.
func (t *GormTransactor) WithinTx(ctx context.Context, fn func(repos order.CheckoutRepositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})
}

// Accounts returns the registration view of the transactor
func (t *GormTransactor) Accounts() identity.AccountTransactor {
	return accountTransactor{t}
}

type accountTransactor struct {
	t *GormTransactor
}

func (a accountTransactor) WithinTx(ctx context.Context, fn func(repos identity.AccountRepositories) error) error {
	return a.t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepositories{tx: tx})
	})
}
