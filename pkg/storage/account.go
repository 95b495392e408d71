package storage

import (
	"context"
	"seoaudit/pkg/domain"
)

// AccountStorage gives access to tenant accounts and their credit balance.
type AccountStorage interface {
	// StoreAccounts inserts accounts, or replaces plan, metering and balance of
	// existing ones, and returns the stored rows.
	StoreAccounts(ctx context.Context, accounts ...domain.Account) ([]domain.Account, error)
	// AccountByID returns the account, or nil if it does not exist.
	AccountByID(ctx context.Context, id domain.AccountID) (*domain.Account, error)
	// DeductCredits atomically lowers the balance by amount. It returns false
	// and changes nothing when the balance is lower than amount.
	DeductCredits(ctx context.Context, id domain.AccountID, amount int64) (bool, error)
}
