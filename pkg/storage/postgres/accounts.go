package postgres

import (
	"context"
	"fmt"
	"seoaudit/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	accountsTable = "accounts"
)

// StoreAccounts upserts accounts by id. Existing accounts get their plan,
// metering flag and balance replaced.
func (p *PgSQL) StoreAccounts(ctx context.Context, accounts ...domain.Account) ([]domain.Account, error) {
	if len(accounts) == 0 {
		return nil, nil
	}

	rows := make([]PgAccount, len(accounts))
	for i := range accounts {
		rows[i].FromDomain(accounts[i])
	}

	var result []PgAccount
	if err := p.Builder.Insert(accountsTable).
		Rows(rows).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"plan":    goqu.L("EXCLUDED.plan"),
			"metered": goqu.L("EXCLUDED.metered"),
			"credits": goqu.L("EXCLUDED.credits"),
		})).
		Returning(&PgAccount{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store accounts into pg: %w", err)
	}

	out := make([]domain.Account, 0, len(result))
	for i := range result {
		out = append(out, *result[i].ToDomain())
	}

	return out, nil
}

// AccountByID returns an account by its id, or nil when it does not exist.
func (p *PgSQL) AccountByID(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.From(accountsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch account by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeductCredits lowers the balance in a single conditional statement so that
// concurrent reservations can never overdraw an account.
func (p *PgSQL) DeductCredits(ctx context.Context, id domain.AccountID, amount int64) (bool, error) {
	res, err := p.Builder.Update(accountsTable).
		Set(goqu.Record{
			"credits": goqu.L("credits - ?", amount),
		}).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("credits").Gte(amount),
		).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not deduct credits in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n == 1, nil
}
