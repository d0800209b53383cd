package supplier

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("supplier name cannot be empty")
)

// Status represents the supplier state
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Supplier is a goods supplier registered for a branch
type Supplier struct {
	ID            string    `json:"id"`
	BranchID      string    `json:"branch_id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewSupplier creates a new active supplier
func NewSupplier(branchID, name, contactPerson, phone, email, address string) (*Supplier, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Supplier{
		ID:            uuid.New().String(),
		BranchID:      branchID,
		Name:          name,
		ContactPerson: contactPerson,
		Phone:         phone,
		Email:         email,
		Address:       address,
		Status:        StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Update changes the supplier master data
func (s *Supplier) Update(name, contactPerson, phone, email, address string) error {
	if name == "" {
		return ErrEmptyName
	}

	s.Name = name
	s.ContactPerson = contactPerson
	s.Phone = phone
	s.Email = email
	s.Address = address
	s.UpdatedAt = time.Now()

	return nil
}
