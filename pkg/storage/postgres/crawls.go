package postgres

import (
	"context"
	"fmt"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	crawlJobsTable = "crawl_jobs"
)

// crawlStatusPredecessors lists, per target status, the statuses a crawl may
// move from.
var crawlStatusPredecessors = map[domain.CrawlStatus][]string{ //nolint: gochecknoglobals
	domain.CrawlStatusAnalyzing: {string(domain.CrawlStatusCrawling)},
	domain.CrawlStatusCompleted: {string(domain.CrawlStatusAnalyzing)},
	domain.CrawlStatusFailed:    {string(domain.CrawlStatusCrawling), string(domain.CrawlStatusAnalyzing)},
}

func (p *PgSQL) StoreCrawlJobs(ctx context.Context, crawls ...domain.CrawlJob) ([]domain.CrawlJob, error) {
	if len(crawls) == 0 {
		return nil, nil
	}

	rows := make([]PgCrawlJob, len(crawls))
	for i := range crawls {
		rows[i].FromDomain(crawls[i])
	}

	var result []PgCrawlJob
	if err := p.Builder.Insert(crawlJobsTable).
		Rows(rows).
		Returning(&PgCrawlJob{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store crawl jobs into pg: %w", err)
	}

	return pgCrawlJobsToDomain(result), nil
}

// CrawlJobByID returns a crawl by its id, or nil when it does not exist.
func (p *PgSQL) CrawlJobByID(ctx context.Context, id domain.CrawlJobID) (*domain.CrawlJob, error) {
	var row PgCrawlJob
	found, err := p.Builder.From(crawlJobsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch crawl job by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateCrawlJobByID updates a non-terminal crawl. Counters are merged with
// GREATEST and status changes are guarded by the allowed predecessors, so the
// statement matches no row when the transition is not allowed.
func (p *PgSQL) UpdateCrawlJobByID(ctx context.Context,
	id domain.CrawlJobID,
	updates storage.CrawlJobUpdates) (*domain.CrawlJob, error) {
	w := []goqu.Expression{goqu.I("id").Eq(uuid.UUID(id))}

	rec := goqu.Record{}
	if updates.Status != nil {
		from, ok := crawlStatusPredecessors[*updates.Status]
		if !ok {
			return nil, nil
		}

		rec["status"] = string(*updates.Status)
		w = append(w, goqu.I("status").In(from))
	} else {
		w = append(w, goqu.I("status").NotIn(
			string(domain.CrawlStatusCompleted),
			string(domain.CrawlStatusFailed),
		))
	}
	if updates.Progress != nil {
		rec["progress"] = goqu.L("GREATEST(progress, ?)", *updates.Progress)
	}
	if updates.PagesCrawled != nil {
		rec["pages_crawled"] = goqu.L("GREATEST(pages_crawled, ?)", *updates.PagesCrawled)
	}
	if updates.PagesDiscovered != nil {
		rec["pages_discovered"] = goqu.L("GREATEST(pages_discovered, ?)", *updates.PagesDiscovered)
	}
	if updates.ErrorMessage != nil {
		rec["error_message"] = *updates.ErrorMessage
	}
	if updates.QueueJobID != nil {
		rec["queue_job_id"] = *updates.QueueJobID
	}
	if updates.StartedAt != nil {
		rec["started_at"] = *updates.StartedAt
	}
	if updates.CompletedAt != nil {
		rec["completed_at"] = *updates.CompletedAt
	}
	if len(rec) == 0 {
		return p.CrawlJobByID(ctx, id)
	}

	var row PgCrawlJob
	found, err := p.Builder.Update(crawlJobsTable).
		Set(rec).
		Where(w...).
		Returning(&PgCrawlJob{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update crawl job in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ListCrawlJobs returns a page of crawls of a project ordered by created_at DESC, id DESC.
func (p *PgSQL) ListCrawlJobs(ctx context.Context,
	accountID domain.AccountID,
	projectID domain.ProjectID,
	cursor time.Time,
	limit uint) (storage.ProjectCrawls, error) {
	if limit == 0 {
		limit = defaultListLimit
	}

	w := []goqu.Expression{
		goqu.I("account_id").Eq(uuid.UUID(accountID)),
		goqu.I("project_id").Eq(uuid.UUID(projectID)),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	var rows []PgCrawlJob
	if err := p.Builder.From(crawlJobsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.ProjectCrawls{}, fmt.Errorf("could not fetch project crawls from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		nextCursor = &rows[len(rows)-1].CreatedAt
	}

	return storage.ProjectCrawls{
		CrawlJobs:  pgCrawlJobsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// StaleCrawlJobs returns running crawls started before startedBefore.
func (p *PgSQL) StaleCrawlJobs(ctx context.Context,
	startedBefore time.Time,
	limit uint) ([]domain.CrawlJob, error) {
	if limit == 0 {
		limit = defaultListLimit
	}

	var rows []PgCrawlJob
	if err := p.Builder.From(crawlJobsTable).
		Where(
			goqu.I("status").NotIn(string(domain.CrawlStatusCompleted), string(domain.CrawlStatusFailed)),
			goqu.I("started_at").IsNotNull(),
			goqu.I("started_at").Lt(startedBefore),
		).
		Order(goqu.I("started_at").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch stale crawl jobs from pg: %w", err)
	}

	return pgCrawlJobsToDomain(rows), nil
}

func pgCrawlJobsToDomain(rows []PgCrawlJob) []domain.CrawlJob {
	out := make([]domain.CrawlJob, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
