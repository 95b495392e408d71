package storage

import (
	"context"
	"seoaudit/pkg/domain"
	"time"
)

// CrawlJobUpdates describes a set of optional fields that can be applied to an
// existing crawl. Only non-nil fields will be updated.
type CrawlJobUpdates struct {
	// Status is only applied when the stored status allows the transition.
	Status *domain.CrawlStatus
	// Progress, PagesCrawled and PagesDiscovered never decrease.
	Progress        *int
	PagesCrawled    *int
	PagesDiscovered *int
	ErrorMessage    *string
	QueueJobID      *int64
	StartedAt       *time.Time
	CompletedAt     *time.Time
}

// ProjectCrawls groups a page of crawls together with an optional NextCursor.
type ProjectCrawls struct {
	CrawlJobs  []domain.CrawlJob
	NextCursor *time.Time
}

// CrawlStorage defines operations on crawls, crawled pages and their links.
type CrawlStorage interface {
	// StoreCrawlJobs inserts one or more crawls and returns the stored rows.
	StoreCrawlJobs(ctx context.Context, crawls ...domain.CrawlJob) ([]domain.CrawlJob, error)
	// CrawlJobByID returns the crawl, or nil if it does not exist.
	CrawlJobByID(ctx context.Context, id domain.CrawlJobID) (*domain.CrawlJob, error)
	// UpdateCrawlJobByID applies updates to a non-terminal crawl and returns the
	// updated row. It returns nil when the crawl does not exist, is terminal, or
	// cannot take the requested status transition.
	UpdateCrawlJobByID(ctx context.Context, id domain.CrawlJobID, updates CrawlJobUpdates) (*domain.CrawlJob, error)
	// ListCrawlJobs returns a page of a project's crawls owned by accountID and
	// created before the optional cursor, newest first.
	ListCrawlJobs(ctx context.Context,
		accountID domain.AccountID,
		projectID domain.ProjectID,
		cursor time.Time,
		limit uint) (ProjectCrawls, error)
	// StaleCrawlJobs returns up to limit non-terminal crawls whose traversal
	// started before startedBefore, oldest first.
	StaleCrawlJobs(ctx context.Context, startedBefore time.Time, limit uint) ([]domain.CrawlJob, error)

	// StoreCrawledPage inserts a page together with its links. A second page
	// with the same URL in the same crawl fails with serrors.ErrConflict.
	StoreCrawledPage(ctx context.Context, page domain.CrawledPage, links []domain.Link) (*domain.CrawledPage, error)
	// CrawledPagesByCrawlJob returns every page of a crawl in insertion order.
	CrawledPagesByCrawlJob(ctx context.Context, id domain.CrawlJobID) ([]domain.CrawledPage, error)
	// LinksByPage returns the links of a page, internal ones first.
	LinksByPage(ctx context.Context, id domain.PageID) ([]domain.Link, error)
	// MarkBrokenLinks flags the internal links of a crawl whose target was
	// crawled with a status code of 400 or above, and returns how many changed.
	MarkBrokenLinks(ctx context.Context, id domain.CrawlJobID) (int64, error)
}
