package tasks

import (
	"context"
	"errors"
	"seoaudit/internal/crawl"
	"seoaudit/internal/orchestrator"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/logger"

	"go.uber.org/zap"
)

// crawlTotal is the total_items of a crawl job; its progress mirrors the
// crawl's percentage.
const crawlTotal = 100

type crawlInput struct {
	ProjectID domain.ProjectID `json:"project_id" validate:"required"`
	Domain    string           `json:"domain" validate:"required"`
	MaxPages  int              `json:"max_pages" validate:"required,min=1"`
}

// CrawlResult is the result of a crawl job.
type CrawlResult struct {
	CrawlJobID    domain.CrawlJobID `json:"crawl_job_id"`
	OverallScore  int               `json:"overall_score"`
	TotalIssues   int               `json:"total_issues"`
	PagesAnalyzed int               `json:"pages_analyzed"`
}

func (d Deps) runCrawl(ctx context.Context, job domain.Job, progress orchestrator.ProgressFunc) (any, error) {
	var in crawlInput
	if err := decode(job, &in); err != nil {
		return nil, err
	}

	created, err := d.Crawls.CreateCrawl(ctx, crawl.StartRequest{
		AccountID: job.AccountID,
		ProjectID: in.ProjectID,
		Domain:    in.Domain,
		MaxPages:  in.MaxPages,
	})
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "crawl job created crawl", zap.String("crawl_job_id", created.ID.String()))

	// a cancelled job stops the crawl through its context
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	summary, err := d.Crawls.Execute(ctx, created.ID, func(ctx context.Context, c domain.CrawlJob) {
		if err := progress(ctx, c.Progress, crawlTotal); err != nil {
			cancel(err)
		}
	})
	if err != nil {
		if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
			return nil, cause
		}

		return nil, err
	}

	return CrawlResult{
		CrawlJobID:    created.ID,
		OverallScore:  summary.OverallScore,
		TotalIssues:   summary.TotalIssues,
		PagesAnalyzed: summary.PagesAnalyzed,
	}, nil
}
