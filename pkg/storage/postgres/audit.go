package postgres

import (
	"context"
	"fmt"
	"seoaudit/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	auditScoresTable     = "audit_scores"
	pageIssuesTable      = "page_issues"
	recommendationsTable = "recommendations"
)

// DeleteAuditResults removes every analysis artifact of a crawl so that a new
// analysis can replace them.
func (p *PgSQL) DeleteAuditResults(ctx context.Context, id domain.CrawlJobID) error {
	for _, table := range []string{pageIssuesTable, recommendationsTable, auditScoresTable} {
		if _, err := p.Builder.Delete(table).
			Where(goqu.I("crawl_job_id").Eq(uuid.UUID(id))).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not delete %s from pg: %w", table, err)
		}
	}

	return nil
}

func (p *PgSQL) StoreAuditScore(ctx context.Context, score domain.AuditScore) (*domain.AuditScore, error) {
	var row PgAuditScore
	if err := row.FromDomain(score); err != nil {
		return nil, err
	}

	var stored PgAuditScore
	if _, err := p.Builder.Insert(auditScoresTable).
		Rows(row).
		Returning(&PgAuditScore{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store audit score into pg: %w", err)
	}

	return stored.ToDomain()
}

// StorePageIssues bulk inserts issues with a single statement.
func (p *PgSQL) StorePageIssues(ctx context.Context, issues ...domain.PageIssue) error {
	if len(issues) == 0 {
		return nil
	}

	rows := make([]PgPageIssue, len(issues))
	for i := range issues {
		rows[i].FromDomain(issues[i])
	}

	if _, err := p.Builder.Insert(pageIssuesTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store page issues into pg: %w", err)
	}

	return nil
}

// StoreRecommendations bulk inserts recommendations with a single statement.
func (p *PgSQL) StoreRecommendations(ctx context.Context, recommendations ...domain.Recommendation) error {
	if len(recommendations) == 0 {
		return nil
	}

	rows := make([]PgRecommendation, len(recommendations))
	for i := range recommendations {
		rows[i].FromDomain(recommendations[i])
	}

	if _, err := p.Builder.Insert(recommendationsTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store recommendations into pg: %w", err)
	}

	return nil
}

// AuditScoreByCrawlJob returns the score of a crawl, or nil when it has not been analyzed.
func (p *PgSQL) AuditScoreByCrawlJob(ctx context.Context, id domain.CrawlJobID) (*domain.AuditScore, error) {
	var row PgAuditScore
	found, err := p.Builder.From(auditScoresTable).
		Where(goqu.I("crawl_job_id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch audit score from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) PageIssuesByCrawlJob(ctx context.Context, id domain.CrawlJobID) ([]domain.PageIssue, error) {
	var rows []PgPageIssue
	if err := p.Builder.From(pageIssuesTable).
		Where(goqu.I("crawl_job_id").Eq(uuid.UUID(id))).
		Order(goqu.I("seq").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch page issues from pg: %w", err)
	}

	out := make([]domain.PageIssue, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) RecommendationsByCrawlJob(ctx context.Context, id domain.CrawlJobID) ([]domain.Recommendation, error) {
	var rows []PgRecommendation
	if err := p.Builder.From(recommendationsTable).
		Where(goqu.I("crawl_job_id").Eq(uuid.UUID(id))).
		Order(goqu.I("seq").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch recommendations from pg: %w", err)
	}

	out := make([]domain.Recommendation, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}
