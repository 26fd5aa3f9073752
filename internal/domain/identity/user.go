package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/storefront/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor used when hashing passwords
var BcryptCost = 12

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_\-.@+]+$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// User is a storefront account
// It is the aggregate root for authentication
type User struct {
	shared.BaseAggregateRoot
	Username     string `gorm:"type:varchar(150);not null;uniqueIndex"`
	Email        string `gorm:"type:varchar(254);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	FirstName    string `gorm:"type:varchar(150)"`
	LastName     string `gorm:"type:varchar(150)"`
	IsStaff      bool   `gorm:"not null;default:false"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new account with a hashed password
func NewUser(username, password, email, firstName, lastName string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          username,
		Email:             email,
		PasswordHash:      passwordHash,
		FirstName:         strings.TrimSpace(firstName),
		LastName:          strings.TrimSpace(lastName),
	}
	user.AddDomainEvent(NewUserRegisteredEvent(user))

	return user, nil
}

// SetPassword replaces the password hash
func (u *User) SetPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = hash
	u.Touch()
	u.IncrementVersion()
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// GrantStaff marks the account as staff
func (u *User) GrantStaff() {
	u.IsStaff = true
	u.Touch()
}

// RecordLogin stamps the last successful login
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
}

// FullName joins first and last name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func validateUsername(username string) error {
	if username == "" {
		return shared.NewFieldError("INVALID_USERNAME", "username", "Username cannot be empty")
	}
	if len(username) > 150 {
		return shared.NewFieldError("INVALID_USERNAME", "username", "Username cannot exceed 150 characters")
	}
	if !usernamePattern.MatchString(username) {
		return shared.NewFieldError("INVALID_USERNAME", "username", "Username may contain only letters, numbers, and @/./+/-/_ characters")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return shared.NewFieldError("INVALID_PASSWORD", "password", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.NewFieldError("INVALID_PASSWORD", "password", "Password cannot exceed 72 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewFieldError("INVALID_EMAIL", "email", "Email cannot be empty")
	}
	if len(email) > 254 || !emailPattern.MatchString(email) {
		return shared.NewFieldError("INVALID_EMAIL", "email", "Enter a valid email address")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
