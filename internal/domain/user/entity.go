package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName  = errors.New("user name cannot be empty")
	ErrEmptyEmail = errors.New("user email cannot be empty")
)

// Role represents the user's role
type Role string

// Status represents the user's state
type Status string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusBlocked  Status = "blocked"
)

// User is a system account tied to a branch
type User struct {
	ID          string    `json:"id"`
	BranchID    string    `json:"branch_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Password    string    `json:"-"` // never serialized
	Role        Role      `json:"role"`
	Status      Status    `json:"status"`
	LastLoginAt time.Time `json:"last_login_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewUser creates an active user with a hashed password
func NewUser(branchID, name, email, password string, role Role) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}

	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		BranchID:  branchID,
		Name:      name,
		Email:     email,
		Role:      role,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// SetPassword hashes and stores the password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsActive reports whether the user may log in
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// IsAdmin reports whether the user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasAccessToBranch reports whether the user may act for the given
// branch. Administrators have access to every branch.
func (u *User) HasAccessToBranch(branchID string) bool {
	if u.IsAdmin() {
		return true
	}
	return u.BranchID == branchID
}
