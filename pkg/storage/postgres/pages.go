package postgres

import (
	"context"
	"fmt"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/serrors"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	crawledPagesTable = "crawled_pages"
	pageLinksTable    = "page_links"
)

// StoreCrawledPage inserts a page and its links atomically. The (crawl, url)
// unique constraint turns a duplicate visit into serrors.ErrConflict.
func (p *PgSQL) StoreCrawledPage(ctx context.Context,
	page domain.CrawledPage,
	links []domain.Link) (*domain.CrawledPage, error) {
	if page.ID == domain.PageID(uuid.Nil) {
		page.ID = domain.PageID(uuid.New())
	}

	var row PgCrawledPage
	row.FromDomain(page)

	var stored PgCrawledPage
	err := p.inTx(ctx, func(tx *PgSQL) error {
		if _, err := tx.Builder.Insert(crawledPagesTable).
			Rows(row).
			Returning(&PgCrawledPage{}).
			Executor().ScanStructContext(ctx, &stored); err != nil {
			if isUniqueViolation(err) {
				return serrors.Wrap(serrors.ErrConflict, err, "page %s already crawled", page.URL)
			}

			return fmt.Errorf("could not store crawled page into pg: %w", err)
		}

		if len(links) == 0 {
			return nil
		}

		linkRows := make([]PgLink, len(links))
		for i, l := range links {
			linkRows[i] = PgLink{
				PageID:     row.ID,
				Kind:       string(l.Kind),
				TargetURL:  l.TargetURL,
				AnchorText: l.AnchorText,
				IsBroken:   l.IsBroken,
			}
		}

		if _, err := tx.Builder.Insert(pageLinksTable).
			Rows(linkRows).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not store page links into pg: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return stored.ToDomain(), nil
}

// CrawledPagesByCrawlJob returns the pages of a crawl in insertion order.
func (p *PgSQL) CrawledPagesByCrawlJob(ctx context.Context, id domain.CrawlJobID) ([]domain.CrawledPage, error) {
	var rows []PgCrawledPage
	if err := p.Builder.From(crawledPagesTable).
		Where(goqu.I("crawl_job_id").Eq(uuid.UUID(id))).
		Order(goqu.I("seq").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch crawled pages from pg: %w", err)
	}

	out := make([]domain.CrawledPage, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) LinksByPage(ctx context.Context, id domain.PageID) ([]domain.Link, error) {
	var rows []PgLink
	if err := p.Builder.From(pageLinksTable).
		Where(goqu.I("page_id").Eq(uuid.UUID(id))).
		Order(goqu.I("kind").Desc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch page links from pg: %w", err)
	}

	out := make([]domain.Link, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

// MarkBrokenLinks flags internal links pointing at pages of the same crawl that
// answered with a client or server error.
func (p *PgSQL) MarkBrokenLinks(ctx context.Context, id domain.CrawlJobID) (int64, error) {
	crawlPages := p.Builder.From(crawledPagesTable).
		Select("id").
		Where(goqu.I("crawl_job_id").Eq(uuid.UUID(id)))
	brokenTargets := p.Builder.From(crawledPagesTable).
		Select("url").
		Where(
			goqu.I("crawl_job_id").Eq(uuid.UUID(id)),
			goqu.I("status_code").Gte(400),
		)

	res, err := p.Builder.Update(pageLinksTable).
		Set(goqu.Record{"is_broken": true}).
		Where(
			goqu.I("kind").Eq(string(domain.LinkKindInternal)),
			goqu.I("is_broken").IsFalse(),
			goqu.I("page_id").In(crawlPages),
			goqu.I("target_url").In(brokenTargets),
		).Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not mark broken links in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n, nil
}
