package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

var errInvalidBirthDate = shared.NewFieldError("INVALID_BIRTH_DATE", "birth_date",
	"Date has wrong format. Use YYYY-MM-DD.")

// CustomerService manages customer profiles and their addresses
type CustomerService struct {
	customerRepo identity.CustomerRepository
	addressRepo  identity.AddressRepository
	logger       *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo identity.CustomerRepository, addressRepo identity.AddressRepository, logger *zap.Logger) *CustomerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerService{customerRepo: customerRepo, addressRepo: addressRepo, logger: logger}
}

// Me returns the profile of the signed-in user
func (s *CustomerService) Me(ctx context.Context, userID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.byUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// UpdateMe applies a partial update to the signed-in user's profile.
// Only staff may change their membership.
func (s *CustomerService) UpdateMe(ctx context.Context, userID uuid.UUID, isStaff bool, req UpdateCustomerRequest) (*CustomerResponse, error) {
	if req.Membership != nil && !isStaff {
		return nil, errMembershipStaffOnly
	}
	customer, err := s.byUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, customer, req)
}

// List returns customer profiles, for staff
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) ([]CustomerResponse, int64, error) {
	domainFilter := shared.NewFilter(filter.Page, filter.PageSize, filter.Ordering, filter.Search)
	if filter.Membership != "" {
		domainFilter.Filters["membership"] = filter.Membership
	}

	customers, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.customerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	items := make([]CustomerResponse, len(customers))
	for i := range customers {
		items[i] = ToCustomerResponse(&customers[i])
	}
	return items, total, nil
}

// GetByID returns any customer profile, for staff
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// Update applies a partial update to any customer, for staff
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, customer, req)
}

// ListAddresses returns the signed-in user's addresses
func (s *CustomerService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]AddressResponse, error) {
	customer, err := s.byUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	addresses, err := s.addressRepo.FindByCustomer(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	items := make([]AddressResponse, len(addresses))
	for i := range addresses {
		items[i] = ToAddressResponse(&addresses[i])
	}
	return items, nil
}

// AddAddress stores a new address for the signed-in user
func (s *CustomerService) AddAddress(ctx context.Context, userID uuid.UUID, req AddressRequest) (*AddressResponse, error) {
	customer, err := s.byUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	address, err := customer.AddAddress(req.Street, req.City)
	if err != nil {
		return nil, err
	}
	if err := s.addressRepo.Save(ctx, address); err != nil {
		return nil, err
	}
	resp := ToAddressResponse(address)
	return &resp, nil
}

// RemoveAddress deletes one of the signed-in user's addresses
func (s *CustomerService) RemoveAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	customer, err := s.byUser(ctx, userID)
	if err != nil {
		return err
	}
	return s.addressRepo.Delete(ctx, customer.ID, addressID)
}

func (s *CustomerService) update(ctx context.Context, customer *identity.Customer, req UpdateCustomerRequest) (*CustomerResponse, error) {
	phone, birthDate := customer.Phone, customer.BirthDate
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.BirthDate != nil {
		parsed, err := parseBirthDate(*req.BirthDate)
		if err != nil {
			return nil, err
		}
		birthDate = parsed
	}
	if err := customer.UpdateProfile(phone, birthDate); err != nil {
		return nil, err
	}
	if req.Membership != nil {
		if err := customer.ChangeMembership(identity.Membership(*req.Membership)); err != nil {
			return nil, err
		}
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

func (s *CustomerService) byUser(ctx context.Context, userID uuid.UUID) (*identity.Customer, error) {
	customer, err := s.customerRepo.FindByUserID(ctx, userID)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, identity.ErrCustomerNotFound
	}
	return customer, err
}

func parseBirthDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, errInvalidBirthDate
	}
	return &d, nil
}
