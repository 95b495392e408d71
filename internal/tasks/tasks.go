// Package tasks implements the handlers of the generic job types and registers
// them with the orchestrator.
package tasks

import (
	"context"
	"encoding/json"
	"seoaudit/internal/crawl"
	"seoaudit/internal/orchestrator"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/pagefetch"
	"seoaudit/pkg/research"
	"seoaudit/pkg/serrors"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint: gochecknoglobals

// CrawlRunner creates crawls and runs them inline.
//
//go:generate mockgen -package mocktasks -source=tasks.go -destination=mock/mocktasks.go *
type CrawlRunner interface {
	CreateCrawl(ctx context.Context, req crawl.StartRequest) (*domain.CrawlJob, error)
	Execute(ctx context.Context, id domain.CrawlJobID, onProgress crawl.ProgressFunc) (*domain.AnalysisSummary, error)
}

// Deps are the collaborators of the handlers. A nil research client disables
// the job types that need it: they are left unregistered and fail as
// unsupported.
type Deps struct {
	Crawls    CrawlRunner
	Fetcher   pagefetch.Fetcher
	Keywords  research.KeywordClient
	Backlinks research.BacklinkClient
	SERP      research.SERPClient

	// BacklinkRate is the number of backlink lookups per second. Zero or less
	// disables pacing.
	BacklinkRate float64
	// ItemDeadline bounds a single bulk_analysis item.
	ItemDeadline time.Duration
	// ExternalLinkCap is applied when deriving bulk_analysis pages.
	ExternalLinkCap int
}

// Register installs a handler for every job type deps can serve.
func Register(o *orchestrator.Orchestrator, deps Deps) {
	if deps.Crawls != nil {
		o.Register(domain.JobTypeCrawl, deps.runCrawl)
	}
	if deps.Keywords != nil {
		o.Register(domain.JobTypeKeywordResearch, deps.keywordResearch)
	}
	o.Register(domain.JobTypeKeywordClustering, keywordClustering)
	if deps.Backlinks != nil {
		o.Register(domain.JobTypeCompetitorAnalysis, deps.competitorAnalysis)
	}
	if deps.SERP != nil {
		o.Register(domain.JobTypeSERPTracking, deps.serpTracking)
	}
	if deps.Fetcher != nil {
		o.Register(domain.JobTypeBulkAnalysis, deps.bulkAnalysis)
	}
}

// decode unmarshals and validates the input of job into v.
func decode(job domain.Job, v any) error {
	if err := json.Unmarshal(job.InputData, v); err != nil {
		return serrors.Wrap(serrors.ErrValidation, err, "invalid %s input", job.Type)
	}
	if err := validate.Struct(v); err != nil {
		return serrors.Wrap(serrors.ErrValidation, err, "invalid %s input", job.Type)
	}

	return nil
}
