package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/infrastructure/auth"
)

// RegisterRequest creates an account and its customer profile
type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=1,max=150"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	Email     string `json:"email" binding:"required,email,max=254"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
}

// LoginRequest exchanges credentials for a token pair
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest exchanges a refresh token for a new pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest optionally carries the refresh token to revoke alongside
// the access token
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UserResponse represents an account in API responses
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsStaff   bool      `json:"is_staff"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken           string        `json:"access_token"`
	RefreshToken          string        `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time     `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time     `json:"refresh_token_expires_at"`
	TokenType             string        `json:"token_type"`
	User                  *UserResponse `json:"user,omitempty"`
}

// UpdateCustomerRequest is a partial profile update. BirthDate uses
// YYYY-MM-DD; an empty string clears it.
type UpdateCustomerRequest struct {
	Phone      *string `json:"phone" binding:"omitempty,max=255"`
	BirthDate  *string `json:"birth_date"`
	Membership *string `json:"membership" binding:"omitempty,oneof=B S G"`
}

// CustomerListFilter holds list query parameters for customers
type CustomerListFilter struct {
	Membership string `form:"membership" binding:"omitempty,oneof=B S G"`
	Search     string `form:"search"`
	Ordering   string `form:"ordering"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// CustomerResponse represents a customer profile
type CustomerResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Phone           string    `json:"phone"`
	BirthDate       *string   `json:"birth_date"`
	Membership      string    `json:"membership"`
	MembershipLabel string    `json:"membership_label"`
}

// AddressRequest adds a postal address
type AddressRequest struct {
	Street string `json:"street" binding:"required,max=255"`
	City   string `json:"city" binding:"required,max=255"`
}

// AddressResponse represents a postal address
type AddressResponse struct {
	ID     uuid.UUID `json:"id"`
	Street string    `json:"street"`
	City   string    `json:"city"`
}

// ToUserResponse converts an account
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsStaff:   u.IsStaff,
	}
}

// ToTokenResponse converts an issued pair
func ToTokenResponse(pair *auth.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
	}
}

// ToCustomerResponse converts a customer profile
func ToCustomerResponse(c *identity.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:              c.ID,
		UserID:          c.UserID,
		FirstName:       c.FirstName(),
		LastName:        c.LastName(),
		Phone:           c.Phone,
		Membership:      string(c.Membership),
		MembershipLabel: c.Membership.Label(),
	}
	if c.BirthDate != nil {
		d := c.BirthDate.Format(time.DateOnly)
		resp.BirthDate = &d
	}
	return resp
}

// ToAddressResponse converts an address
func ToAddressResponse(a *identity.Address) AddressResponse {
	return AddressResponse{ID: a.ID, Street: a.Street, City: a.City}
}
