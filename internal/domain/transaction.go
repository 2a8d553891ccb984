package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrTransactionNotFound indicates that the transaction is not found or belongs to another owner.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrZeroValue indicates a transaction with a zero value.
	ErrZeroValue = errors.New("transaction value must not be zero")
	// ErrAmbiguousReference indicates a transaction referencing both a member and a ministry.
	ErrAmbiguousReference = errors.New("transaction cannot reference both a member and a ministry")
)

// Transaction holds a single monetary movement. Value is a signed
// amount in cents: positive for inflows, negative for outflows.
type Transaction struct {
	ID          uuid.UUID  `json:"id"`
	Owner       string     `json:"owner"`
	Value       int64      `json:"value"`
	Date        time.Time  `json:"date"`
	Description string     `json:"description,omitempty"`
	Categories  []string   `json:"categories"`
	MemberID    *uuid.UUID `json:"member_id,omitempty"`
	MinistryID  *uuid.UUID `json:"ministry_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateTransactionParams is the input data to create a transaction.
type CreateTransactionParams struct {
	Owner       string
	Value       int64
	Date        time.Time
	Description string
	Categories  []string
	MemberID    *uuid.UUID
	MinistryID  *uuid.UUID
}
