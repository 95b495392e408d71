// Package analysis scores the pages of a crawl against a fixed rule set and
// synthesizes prioritized recommendations from the detected issues.
package analysis

import (
	"context"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/logger"
	"seoaudit/pkg/serrors"
	"seoaudit/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "seoaudit/internal/analysis"

// Engine runs analyses. It is safe for concurrent use.
type Engine struct {
	storage storage.Storage
	tracer  trace.Tracer
	scores  metric.Int64Histogram
}

// New returns an Engine persisting its results in strg. Telemetry goes to the
// global OpenTelemetry providers.
func New(strg storage.Storage) *Engine {
	scores, err := otel.Meter(instrumentationName).Int64Histogram("audit.overall_score",
		metric.WithDescription("Overall score of finished analyses."),
		metric.WithExplicitBucketBoundaries(10, 20, 30, 40, 50, 60, 70, 80, 90, 100))
	if err != nil {
		otel.Handle(err)
	}

	return &Engine{
		storage: strg,
		tracer:  otel.Tracer(instrumentationName),
		scores:  scores,
	}
}

// Analyze scores every page of a crawl and replaces its audit score, issues and
// recommendations in one transaction. Re-running it on unchanged pages yields
// the same results.
func (e *Engine) Analyze(ctx context.Context,
	crawlID domain.CrawlJobID,
	projectID domain.ProjectID) (_ *domain.AnalysisSummary, err error) {
	ctx, span := e.tracer.Start(ctx, "analysis.analyze",
		trace.WithAttributes(attribute.String("crawl_job_id", crawlID.String())))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	pages, err := e.storage.CrawledPagesByCrawlJob(ctx, crawlID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrPersistence, err, "could not load crawled pages")
	}
	if len(pages) == 0 {
		return nil, serrors.With(serrors.ErrNoPagesFound, "crawl %s has no pages", crawlID)
	}

	multiPage := len(pages) > 1
	var findings []Finding
	for _, page := range pages {
		findings = append(findings, AnalyzePage(page, multiPage)...)
	}

	issues := make([]domain.PageIssue, len(findings))
	for i, f := range findings {
		issues[i] = f.Issue
	}
	score := auditScore(crawlID, projectID, len(pages), findings)
	recommendations := Recommend(crawlID, projectID, issues)

	err = e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.DeleteAuditResults(ctx, crawlID); err != nil {
			return err
		}
		if _, err := tx.StoreAuditScore(ctx, score); err != nil {
			return err
		}
		if err := tx.StorePageIssues(ctx, issues...); err != nil {
			return err
		}

		return tx.StoreRecommendations(ctx, recommendations...)
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrPersistence, err, "could not store audit results")
	}

	if e.scores != nil {
		e.scores.Record(ctx, int64(score.OverallScore))
	}
	span.SetAttributes(attribute.Int("audit.overall_score", score.OverallScore))
	logger.Info(ctx, "analysis finished",
		zap.String("crawl_job_id", crawlID.String()),
		zap.Int("overall_score", score.OverallScore),
		zap.Int("issues", len(issues)),
		zap.Int("pages", len(pages)))

	return &domain.AnalysisSummary{
		OverallScore:  score.OverallScore,
		TotalIssues:   len(issues),
		PagesAnalyzed: len(pages),
	}, nil
}
