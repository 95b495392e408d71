package storage

import (
	"context"
	"seoaudit/pkg/domain"
)

// AuditStorage persists the results of an analysis. Callers write a complete
// result set inside one transaction.
type AuditStorage interface {
	// DeleteAuditResults removes the score, issues and recommendations of a crawl.
	DeleteAuditResults(ctx context.Context, id domain.CrawlJobID) error
	// StoreAuditScore inserts the score snapshot of a crawl.
	StoreAuditScore(ctx context.Context, score domain.AuditScore) (*domain.AuditScore, error)
	// StorePageIssues bulk inserts issues.
	StorePageIssues(ctx context.Context, issues ...domain.PageIssue) error
	// StoreRecommendations bulk inserts recommendations.
	StoreRecommendations(ctx context.Context, recommendations ...domain.Recommendation) error

	// AuditScoreByCrawlJob returns the score of a crawl, or nil if it was not analyzed.
	AuditScoreByCrawlJob(ctx context.Context, id domain.CrawlJobID) (*domain.AuditScore, error)
	// PageIssuesByCrawlJob returns the issues of a crawl in detection order.
	PageIssuesByCrawlJob(ctx context.Context, id domain.CrawlJobID) ([]domain.PageIssue, error)
	// RecommendationsByCrawlJob returns the recommendations of a crawl.
	RecommendationsByCrawlJob(ctx context.Context, id domain.CrawlJobID) ([]domain.Recommendation, error)
}
