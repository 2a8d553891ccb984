package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrMinistryNotFound indicates that the ministry is not found or belongs to another owner.
	ErrMinistryNotFound = errors.New("ministry not found")
	// ErrLeaderNotFound indicates that the referenced leader member does not exist.
	ErrLeaderNotFound = errors.New("leader member not found")
)

// Ministry holds data of a named sub-group led by a member.
type Ministry struct {
	ID          uuid.UUID `json:"id"`
	Owner       string    `json:"owner"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      bool      `json:"status"`
	LeaderID    uuid.UUID `json:"leader_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateMinistryParams is the input data to create a ministry.
type CreateMinistryParams struct {
	Owner       string
	Name        string
	Description string
	Status      bool
	LeaderID    uuid.UUID
}

// UpdateMinistryParams is the input data to update a ministry. Nil
// fields are left unchanged.
type UpdateMinistryParams struct {
	Name        *string
	Description *string
	Status      *bool
	LeaderID    *uuid.UUID
}
