package memory

import (
	"context"
	"slices"
	"time"

	"seoaudit/pkg/domain"
	"seoaudit/pkg/serrors"

	"github.com/google/uuid"
)

func (s *Store) DeleteAuditResults(_ context.Context, id domain.CrawlJobID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.st.scores, id)
	s.st.issues = slices.DeleteFunc(s.st.issues, func(i domain.PageIssue) bool { return i.CrawlJobID == id })
	s.st.recs = slices.DeleteFunc(s.st.recs, func(r domain.Recommendation) bool { return r.CrawlJobID == id })

	return nil
}

func (s *Store) StoreAuditScore(_ context.Context, score domain.AuditScore) (*domain.AuditScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.st.scores[score.CrawlJobID]; ok {
		return nil, serrors.With(serrors.ErrConflict, "crawl %s already has a score", score.CrawlJobID)
	}
	if score.ID == uuid.Nil {
		score.ID = uuid.New()
	}
	score.CreatedAt = time.Now().UTC()
	s.st.scores[score.CrawlJobID] = score

	return &score, nil
}

func (s *Store) StorePageIssues(_ context.Context, issues ...domain.PageIssue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	for _, i := range issues {
		if i.ID == uuid.Nil {
			i.ID = uuid.New()
		}
		i.CreatedAt = now
		s.st.issues = append(s.st.issues, i)
	}

	return nil
}

func (s *Store) StoreRecommendations(_ context.Context, recommendations ...domain.Recommendation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	for _, r := range recommendations {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		r.CreatedAt = now
		s.st.recs = append(s.st.recs, r)
	}

	return nil
}

func (s *Store) AuditScoreByCrawlJob(_ context.Context, id domain.CrawlJobID) (*domain.AuditScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	score, ok := s.st.scores[id]
	if !ok {
		return nil, nil
	}

	return &score, nil
}

func (s *Store) PageIssuesByCrawlJob(_ context.Context, id domain.CrawlJobID) ([]domain.PageIssue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.PageIssue
	for _, i := range s.st.issues {
		if i.CrawlJobID == id {
			out = append(out, i)
		}
	}

	return out, nil
}

func (s *Store) RecommendationsByCrawlJob(_ context.Context, id domain.CrawlJobID) ([]domain.Recommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Recommendation
	for _, r := range s.st.recs {
		if r.CrawlJobID == id {
			out = append(out, r)
		}
	}

	return out, nil
}
