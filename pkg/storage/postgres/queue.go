package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"seoaudit/pkg/serrors"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// Enqueue inserts a new River job using the underlying database handle and
// returns its id.
//
// Behavior:
//   - If PgSQL is currently operating inside a transaction (DB is a *sql.Tx), the
//     job is inserted using InsertTx so that it participates in the surrounding
//     transaction and will only become visible upon a successful commit.
//   - Otherwise, the job is inserted using a client bound to the *sql.DB, making
//     the operation immediately visible once the insert succeeds.
func (p *PgSQL) Enqueue(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (int64, error) {
	tx, ok := p.DB.(*sql.Tx)
	if ok {
		riverClient, err := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if err != nil {
			return 0, fmt.Errorf("could not create river queue client: %w", err)
		}

		res, err := riverClient.InsertTx(ctx, tx, args, opts)
		if err != nil {
			return 0, fmt.Errorf("could not insert job: %w", err)
		}

		return res.Job.ID, nil
	}

	riverClient, err := river.NewClient(riverdatabasesql.New(p.DB.(*sql.DB)), &river.Config{})
	if err != nil {
		return 0, fmt.Errorf("could not create river queue client: %w", err)
	}

	res, err := riverClient.Insert(ctx, args, opts)
	if err != nil {
		return 0, fmt.Errorf("could not insert job: %w", err)
	}

	return res.Job.ID, nil
}

// CancelQueued cancels the River job with the given id, inside the surrounding
// transaction when there is one. River notifies the client running the job so
// that its context gets cancelled.
func (p *PgSQL) CancelQueued(ctx context.Context, id int64) error {
	var err error
	if tx, ok := p.DB.(*sql.Tx); ok {
		var riverClient *river.Client[*sql.Tx]
		riverClient, err = river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if err != nil {
			return fmt.Errorf("could not create river queue client: %w", err)
		}
		_, err = riverClient.JobCancelTx(ctx, tx, id)
	} else {
		var riverClient *river.Client[*sql.Tx]
		riverClient, err = river.NewClient(riverdatabasesql.New(p.DB.(*sql.DB)), &river.Config{})
		if err != nil {
			return fmt.Errorf("could not create river queue client: %w", err)
		}
		_, err = riverClient.JobCancel(ctx, id)
	}

	if errors.Is(err, rivertype.ErrNotFound) {
		return serrors.With(serrors.ErrNotFound, "queued task %d not found", id)
	}
	if err != nil {
		return fmt.Errorf("could not cancel job: %w", err)
	}

	return nil
}
