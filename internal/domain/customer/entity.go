package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("customer name cannot be empty")
)

// Status represents the customer state
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Customer is a buyer registered for a branch
type Customer struct {
	ID             string     `json:"id"`
	BranchID       string     `json:"branch_id"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	Email          string     `json:"email"`
	Address        string     `json:"address"`
	Status         Status     `json:"status"`
	LastPurchaseAt *time.Time `json:"last_purchase_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewCustomer creates a new active customer
func NewCustomer(branchID, name, phone, email, address string) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Customer{
		ID:        uuid.New().String(),
		BranchID:  branchID,
		Name:      name,
		Phone:     phone,
		Email:     email,
		Address:   address,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update changes the customer master data
func (c *Customer) Update(name, phone, email, address string) error {
	if name == "" {
		return ErrEmptyName
	}

	c.Name = name
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.UpdatedAt = time.Now()

	return nil
}

// UpdateLastPurchase stamps the most recent confirmed sale
func (c *Customer) UpdateLastPurchase() {
	now := time.Now()
	c.LastPurchaseAt = &now
	c.UpdatedAt = now
}
