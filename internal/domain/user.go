package domain

import (
	"context"
	"time"
)

// Role values. Signup always produces a member; elevation to admin happens
// only through the admin role mutation.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// ValidRole reports whether r is a known role.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleMember
}

// User represents an account. PasswordHash and Salt never leave the server.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Image        string    `json:"image,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	JobTitle     string    `json:"jobTitle,omitempty"`
	Organization string    `json:"organization,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TokenClaims is what the verifier extracts from a bearer token.
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}

// PasswordHasher handles salt generation, hashing, and verification.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues signed tokens for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email, role string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, user *User) error
	UpdateRole(ctx context.Context, id, role string) error
	CountAll(ctx context.Context) (int, error)
}

// AuthResult bundles a sanitized user with a freshly issued token.
type AuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// AuthService defines signup, login, and profile operations.
type AuthService interface {
	SignUp(ctx context.Context, email, password, name string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, userID string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateUserRole(ctx context.Context, id, role string) (*User, error)
}
