package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// AuthService handles registration and token issuance
type AuthService struct {
	accounts   identity.AccountTransactor
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	publisher  shared.EventPublisher
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service. blacklist may be nil,
// in which case logout is a no-op.
func NewAuthService(
	accounts identity.AccountTransactor,
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		accounts:   accounts,
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		publisher:  publisher,
		logger:     logger,
	}
}

// Register creates the account and its bronze customer profile in one
// transaction
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "auth", "register")
	defer span.End()
	telemetry.SetAttributes(span, telemetry.SpanAttrUsername, req.Username)

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user *identity.User
	err := s.accounts.WithinTx(ctx, func(repos identity.AccountRepositories) error {
		taken, err := repos.Users().ExistsByUsername(ctx, username)
		if err != nil {
			return err
		}
		if taken {
			return ErrUsernameExists
		}
		taken, err = repos.Users().ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailExists
		}

		u, err := identity.NewUser(username, req.Password, email, req.FirstName, req.LastName)
		if err != nil {
			return err
		}
		if err := repos.Users().Save(ctx, u); err != nil {
			// a concurrent registration can still win the unique index
			if errors.Is(err, shared.ErrAlreadyExists) {
				return ErrUsernameExists
			}
			return err
		}

		customer, err := identity.NewCustomer(u.ID)
		if err != nil {
			return err
		}
		if err := repos.Customers().Save(ctx, customer); err != nil {
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	if err := shared.PublishDomainEvents(ctx, s.publisher, user); err != nil {
		s.logger.Warn("failed to publish user registered event", zap.Error(err))
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("login for unknown user", zap.String("username", req.Username))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("invalid password attempt", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	pair, err := s.jwtService.GenerateTokenPair(auth.Subject{
		UserID:   user.ID,
		Username: user.Username,
		IsStaff:  user.IsStaff,
	})
	if err != nil {
		s.logger.Error("failed to generate token pair", zap.Error(err))
		return nil, err
	}

	user.RecordLogin()
	if err := s.userRepo.Save(ctx, user); err != nil {
		// the login itself succeeded
		s.logger.Error("failed to record last login", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	s.logger.Info("user logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := ToTokenResponse(pair)
	userResp := ToUserResponse(user)
	resp.User = &userResp
	return &resp, nil
}

// Refresh exchanges a refresh token for a new pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*TokenResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, tokenError(err)
	}
	if err := s.checkRevoked(ctx, claims); err != nil {
		return nil, err
	}

	pair, err := s.jwtService.RefreshTokenPair(req.RefreshToken)
	if err != nil {
		return nil, tokenError(err)
	}

	// the used refresh token must not be exchanged twice
	s.revoke(ctx, claims)

	resp := ToTokenResponse(pair)
	return &resp, nil
}

// Logout revokes the access token in use and, when given, the refresh token
func (s *AuthService) Logout(ctx context.Context, access *auth.Claims, req LogoutRequest) error {
	if s.blacklist == nil {
		return nil
	}
	if access != nil {
		if err := s.blacklist.Revoke(ctx, access.ID, access.GetRemainingTTL()); err != nil {
			return err
		}
	}
	if req.RefreshToken != "" {
		claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
		if err != nil {
			return tokenError(err)
		}
		if access != nil && claims.UserID != access.UserID {
			return ErrTokenInvalid
		}
		if err := s.blacklist.Revoke(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
			return err
		}
	}

	if access != nil {
		s.logger.Info("user logged out", zap.String("user_id", access.UserID))
	}
	return nil
}

// CurrentUser returns the account behind a token
func (s *AuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *AuthService) checkRevoked(ctx context.Context, claims *auth.Claims) error {
	if s.blacklist == nil || claims.ID == "" {
		return nil
	}
	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return err
	}
	if revoked {
		return ErrTokenRevoked
	}
	return nil
}

func (s *AuthService) revoke(ctx context.Context, claims *auth.Claims) {
	if s.blacklist == nil || claims.ID == "" {
		return
	}
	if err := s.blacklist.Revoke(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Warn("failed to revoke refresh token", zap.Error(err))
	}
}

// tokenError maps JWT validation failures onto domain errors
func tokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return ErrTokenExpired
	case errors.Is(err, auth.ErrMaxRefreshExceeded):
		return ErrTokenMaxRefresh
	case errors.Is(err, auth.ErrTokenRevoked):
		return ErrTokenRevoked
	}
	return ErrTokenInvalid
}
