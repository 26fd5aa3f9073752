package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID loads a customer with the linked user
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Customer, error) {
	var customer identity.Customer
	if err := r.db.WithContext(ctx).Preload("User").First(&customer, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

// FindByUserID loads the customer linked to an account
func (r *GormCustomerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*identity.Customer, error) {
	var customer identity.Customer
	if err := r.db.WithContext(ctx).Preload("User").First(&customer, "user_id = ?", userID).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

// FindAll lists customers with their users
func (r *GormCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Customer, error) {
	var customers []identity.Customer
	query := r.applyFilter(r.db.WithContext(ctx).Model(&identity.Customer{}).Preload("User"), filter)
	query = paginate(query, filter, CustomerSortFields, "customers.created_at")
	if err := query.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// Count counts customers matching the filter
func (r *GormCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&identity.Customer{}), filter).Count(&count).Error
	return count, err
}

// ExistsByID checks if a customer exists
func (r *GormCustomerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, r.db, &identity.Customer{}, "id = ?", id)
}

// Save creates or updates the customer row without touching the user or addresses
func (r *GormCustomerRepository) Save(ctx context.Context, customer *identity.Customer) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Save(customer).Error)
}

// applyFilter narrows by membership and by a search over the linked user's names
func (r *GormCustomerRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if m, ok := filter.Filters["membership"]; ok {
		query = query.Where("customers.membership = ?", m)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		users := r.db.Model(&identity.User{}).Select("id").
			Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(username) LIKE ?", pattern, pattern, pattern)
		query = query.Where("customers.user_id IN (?)", users)
	}
	return query
}

// GormAddressRepository implements AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// FindByCustomer lists a customer's addresses
func (r *GormAddressRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]identity.Address, error) {
	var addresses []identity.Address
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Order("created_at").Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

// Save creates or updates an address
func (r *GormAddressRepository) Save(ctx context.Context, address *identity.Address) error {
	return translate(r.db.WithContext(ctx).Save(address).Error)
}

// Delete removes one of a customer's addresses
func (r *GormAddressRepository) Delete(ctx context.Context, customerID, id uuid.UUID) error {
	return requireAffected(r.db.WithContext(ctx).Delete(&identity.Address{}, "customer_id = ? AND id = ?", customerID, id))
}
