package crawl

import (
	"context"
	"seoaudit/pkg/domain"
)

// Crawler starts, runs and reads website crawls.
//
//go:generate mockgen -package mockcrawl -source=interface.go -destination=mock/mockcrawl.go *
type Crawler interface {
	// StartCrawl validates the request, reserves credits, stores the crawl and
	// enqueues its traversal. It returns as soon as the crawl is queued.
	StartCrawl(ctx context.Context, req StartRequest) (*domain.CrawlJob, error)
	// Run executes a stored crawl: traversal, analysis and status updates.
	Run(ctx context.Context, id domain.CrawlJobID) error
	Crawl(ctx context.Context, accountID domain.AccountID, id domain.CrawlJobID) (*domain.CrawlJob, error)
	ProjectCrawls(ctx context.Context,
		accountID domain.AccountID,
		projectID domain.ProjectID,
		cursor string,
		limit uint) ([]domain.CrawlJob, string, error)
	Pages(ctx context.Context, accountID domain.AccountID, id domain.CrawlJobID) ([]domain.CrawledPage, error)
	Audit(ctx context.Context, accountID domain.AccountID, id domain.CrawlJobID) (*domain.AuditReport, error)
	// Cancel fails a running crawl and cancels its queued traversal.
	Cancel(ctx context.Context, accountID domain.AccountID, id domain.CrawlJobID) error
}

// Analyzer scores the pages of a finished traversal.
type Analyzer interface {
	Analyze(ctx context.Context, crawlID domain.CrawlJobID, projectID domain.ProjectID) (*domain.AnalysisSummary, error)
}
