package tasks

import (
	"context"
	"net/url"
	"seoaudit/internal/analysis"
	"seoaudit/internal/crawl"
	"seoaudit/internal/orchestrator"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/serrors"
)

type bulkItem struct {
	URL string `json:"url" validate:"required,max=2048"`
}

type bulkAnalysisInput struct {
	Items []bulkItem `json:"items" validate:"required,min=1,max=500,dive"`
}

// PageAnalysis is the single-page audit of one bulk_analysis item.
type PageAnalysis struct {
	URL          string             `json:"url"`
	StatusCode   int                `json:"status_code"`
	OverallScore int                `json:"overall_score"`
	Issues       []domain.PageIssue `json:"issues"`
}

func (d Deps) bulkAnalysis(ctx context.Context, job domain.Job, progress orchestrator.ProgressFunc) (any, error) {
	var in bulkAnalysisInput
	if err := decode(job, &in); err != nil {
		return nil, err
	}

	return orchestrator.RunBatch(ctx, in.Items, d.ItemDeadline, progress, d.analyzeURL)
}

func (d Deps) analyzeURL(ctx context.Context, item bulkItem) (any, error) {
	target, err := crawl.NormalizeDomain(item.URL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrValidation, err, "invalid url")
	}

	origin, err := url.Parse(target)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrValidation, err, "invalid url")
	}

	fetched, err := d.Fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, err
	}

	page, _, _ := crawl.DerivePage(origin, domain.CrawlJobID{}, fetched, d.ExternalLinkCap)
	findings := analysis.AnalyzePage(page, false)

	out := PageAnalysis{
		URL:          page.URL,
		StatusCode:   page.StatusCode,
		OverallScore: analysis.Score(findings).Overall,
		Issues:       make([]domain.PageIssue, 0, len(findings)),
	}
	for _, f := range findings {
		out.Issues = append(out.Issues, f.Issue)
	}

	return out, nil
}
