package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrMemberNotFound indicates that the member is not found or belongs to another owner.
var ErrMemberNotFound = errors.New("member not found")

// Member holds data of a single congregation member.
type Member struct {
	ID          uuid.UUID  `json:"id"`
	Owner       string     `json:"owner"`
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	BirthDate   time.Time  `json:"birth_date"`
	BaptismDate *time.Time `json:"baptism_date,omitempty"`
	Status      bool       `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateMemberParams is the input data to create a member.
type CreateMemberParams struct {
	Owner       string
	Name        string
	Email       string
	Phone       string
	BirthDate   time.Time
	BaptismDate *time.Time
	Status      bool
}

// UpdateMemberParams is the input data to update a member. Nil fields
// are left unchanged.
type UpdateMemberParams struct {
	Name        *string
	Email       *string
	Phone       *string
	BirthDate   *time.Time
	BaptismDate *time.Time
	Status      *bool
}
