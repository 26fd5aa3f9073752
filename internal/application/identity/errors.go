package identity

import "github.com/storefront/backend/internal/domain/shared"

// Account errors. The HTTP layer reports the *_EXISTS codes as 409 and the
// credential and token codes as 401.
var (
	ErrUsernameExists     = shared.NewFieldError("USERNAME_EXISTS", "username", "A user with that username already exists.")
	ErrEmailExists        = shared.NewFieldError("EMAIL_EXISTS", "email", "A user with that email already exists.")
	ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "No active account found with the given credentials")
	ErrTokenExpired       = shared.NewDomainError("TOKEN_EXPIRED", "Token has expired")
	ErrTokenInvalid       = shared.NewDomainError("TOKEN_INVALID", "Token is invalid")
	ErrTokenMaxRefresh    = shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	ErrTokenRevoked       = shared.NewDomainError("TOKEN_REVOKED", "Token has been revoked")

	errMembershipStaffOnly = shared.NewDomainError("FORBIDDEN", "Only staff can change membership")
)
