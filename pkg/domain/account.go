package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountID uniquely identifies a tenant account.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type AccountID uuid.UUID

// String returns the canonical textual form of the id.
func (id AccountID) String() string { return uuid.UUID(id).String() }

// ProjectID identifies a project (a tracked website) owned by an account.
type ProjectID uuid.UUID

// String returns the canonical textual form of the id.
func (id ProjectID) String() string { return uuid.UUID(id).String() }

// Account is a tenant with a plan and a credit balance. Credits are only
// enforced when the plan is metered.
type Account struct {
	ID      AccountID `json:"id"`
	Plan    string    `json:"plan"`
	Metered bool      `json:"metered"`
	// Credits is the remaining balance. One credit pays for one crawled page.
	Credits int64 `json:"credits"`

	CreatedAt time.Time `json:"createdAt"`
}

// CanAfford reports whether the account may reserve the given number of credits.
func (a Account) CanAfford(amount int64) bool {
	return !a.Metered || a.Credits >= amount
}
