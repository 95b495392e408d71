package memory

import (
	"context"
	"slices"
	"time"

	"seoaudit/pkg/domain"
	"seoaudit/pkg/serrors"
	"seoaudit/pkg/storage"

	"github.com/google/uuid"
)

func (s *Store) StoreCrawlJobs(_ context.Context, crawls ...domain.CrawlJob) ([]domain.CrawlJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range crawls {
		if _, ok := s.st.crawls[c.ID]; ok {
			return nil, serrors.With(serrors.ErrConflict, "crawl job %s already exists", c.ID)
		}
	}

	out := make([]domain.CrawlJob, 0, len(crawls))
	for _, c := range crawls {
		c.CreatedAt = time.Now().UTC()
		s.st.crawls[c.ID] = c
		s.st.crawlList = append(s.st.crawlList, c.ID)
		out = append(out, c)
	}

	return out, nil
}

func (s *Store) CrawlJobByID(_ context.Context, id domain.CrawlJobID) (*domain.CrawlJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.st.crawls[id]
	if !ok {
		return nil, nil
	}

	return &c, nil
}

func (s *Store) UpdateCrawlJobByID(_ context.Context,
	id domain.CrawlJobID,
	updates storage.CrawlJobUpdates) (*domain.CrawlJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.st.crawls[id]
	if !ok || c.Status.IsTerminal() {
		return nil, nil
	}
	if updates.Status != nil {
		if !c.Status.CanTransition(*updates.Status) {
			return nil, nil
		}
		c.Status = *updates.Status
	}

	c.Progress = maxPtr(c.Progress, updates.Progress)
	c.PagesCrawled = maxPtr(c.PagesCrawled, updates.PagesCrawled)
	c.PagesDiscovered = maxPtr(c.PagesDiscovered, updates.PagesDiscovered)
	if c.PagesCrawled > c.MaxPages {
		return nil, serrors.With(serrors.ErrPersistence, "pages crawled %d exceeds max pages %d", c.PagesCrawled, c.MaxPages)
	}
	if updates.ErrorMessage != nil {
		c.ErrorMessage = *updates.ErrorMessage
	}
	if updates.QueueJobID != nil {
		c.QueueJobID = *updates.QueueJobID
	}
	if updates.StartedAt != nil {
		c.StartedAt = *updates.StartedAt
	}
	if updates.CompletedAt != nil {
		c.CompletedAt = *updates.CompletedAt
	}
	s.st.crawls[id] = c

	return &c, nil
}

func (s *Store) ListCrawlJobs(_ context.Context,
	accountID domain.AccountID,
	projectID domain.ProjectID,
	cursor time.Time,
	limit uint) (storage.ProjectCrawls, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit == 0 {
		limit = defaultListLimit
	}

	var out storage.ProjectCrawls
	for _, id := range slices.Backward(s.st.crawlList) {
		c := s.st.crawls[id]
		if c.AccountID != accountID || c.ProjectID != projectID || (!cursor.IsZero() && !c.CreatedAt.Before(cursor)) {
			continue
		}

		if uint(len(out.CrawlJobs)) == limit {
			last := out.CrawlJobs[len(out.CrawlJobs)-1].CreatedAt
			out.NextCursor = &last

			break
		}
		out.CrawlJobs = append(out.CrawlJobs, c)
	}

	return out, nil
}

func (s *Store) StaleCrawlJobs(_ context.Context,
	startedBefore time.Time,
	limit uint) ([]domain.CrawlJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit == 0 {
		limit = defaultListLimit
	}

	var out []domain.CrawlJob
	for _, id := range s.st.crawlList {
		c := s.st.crawls[id]
		if c.Status.IsTerminal() || c.StartedAt.IsZero() || !c.StartedAt.Before(startedBefore) {
			continue
		}
		out = append(out, c)
	}
	slices.SortStableFunc(out, func(a, b domain.CrawlJob) int { return a.StartedAt.Compare(b.StartedAt) })
	if uint(len(out)) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (s *Store) StoreCrawledPage(_ context.Context,
	page domain.CrawledPage,
	links []domain.Link) (*domain.CrawledPage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pageKey{crawl: page.CrawlJobID, url: page.URL}
	if _, ok := s.st.pageKeys[key]; ok {
		return nil, serrors.With(serrors.ErrConflict, "page %s already crawled", page.URL)
	}

	if page.ID == domain.PageID(uuid.Nil) {
		page.ID = domain.PageID(uuid.New())
	}
	page.CreatedAt = time.Now().UTC()

	stored := make([]domain.Link, 0, len(links))
	for _, l := range links {
		l.PageID = page.ID
		stored = append(stored, l)
	}

	s.st.pageKeys[key] = struct{}{}
	s.st.pages = append(s.st.pages, page)
	s.st.links[page.ID] = stored

	return &page, nil
}

func (s *Store) CrawledPagesByCrawlJob(_ context.Context, id domain.CrawlJobID) ([]domain.CrawledPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.CrawledPage
	for _, p := range s.st.pages {
		if p.CrawlJobID == id {
			out = append(out, p)
		}
	}

	return out, nil
}

func (s *Store) LinksByPage(_ context.Context, id domain.PageID) ([]domain.Link, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	links := slices.Clone(s.st.links[id])
	slices.SortStableFunc(links, func(a, b domain.Link) int {
		switch {
		case a.Kind == b.Kind:
			return 0
		case a.Kind == domain.LinkKindInternal:
			return -1
		default:
			return 1
		}
	})

	return links, nil
}

func (s *Store) MarkBrokenLinks(_ context.Context, id domain.CrawlJobID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	broken := make(map[string]struct{})
	var pageIDs []domain.PageID
	for _, p := range s.st.pages {
		if p.CrawlJobID != id {
			continue
		}
		pageIDs = append(pageIDs, p.ID)
		if p.StatusCode >= 400 {
			broken[p.URL] = struct{}{}
		}
	}

	var n int64
	for _, pid := range pageIDs {
		links := s.st.links[pid]
		for i := range links {
			if _, ok := broken[links[i].TargetURL]; ok && links[i].Kind == domain.LinkKindInternal && !links[i].IsBroken {
				links[i].IsBroken = true
				n++
			}
		}
	}

	return n, nil
}

func maxPtr(current int, next *int) int {
	if next != nil && *next > current {
		return *next
	}

	return current
}
