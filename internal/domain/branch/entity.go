package branch

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("branch name cannot be empty")
	ErrEmptyCode = errors.New("branch code cannot be empty")
)

// Status represents the branch state
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Branch is one store location. Every inventory document (product,
// order, opname, movement) is owned by exactly one branch.
type Branch struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	IsMain    bool      `json:"is_main"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBranch creates a new active branch
func NewBranch(code, name, address, phone string, isMain bool) (*Branch, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Branch{
		ID:        uuid.New().String(),
		Code:      code,
		Name:      name,
		Address:   address,
		Phone:     phone,
		IsMain:    isMain,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsActive reports whether the branch is active
func (b *Branch) IsActive() bool {
	return b.Status == StatusActive
}

// Update changes the branch master data
func (b *Branch) Update(code, name, address, phone string, isMain bool) error {
	if code == "" {
		return ErrEmptyCode
	}
	if name == "" {
		return ErrEmptyName
	}

	b.Code = code
	b.Name = name
	b.Address = address
	b.Phone = phone
	b.IsMain = isMain
	b.UpdatedAt = time.Now()

	return nil
}

// Deactivate marks the branch inactive
func (b *Branch) Deactivate() {
	b.Status = StatusInactive
	b.UpdatedAt = time.Now()
}
