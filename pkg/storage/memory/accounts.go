package memory

import (
	"context"
	"time"

	"seoaudit/pkg/domain"
)

func (s *Store) StoreAccounts(_ context.Context, accounts ...domain.Account) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Account, 0, len(accounts))
	for _, a := range accounts {
		if existing, ok := s.st.accounts[a.ID]; ok {
			a.CreatedAt = existing.CreatedAt
		} else {
			a.CreatedAt = time.Now().UTC()
		}
		s.st.accounts[a.ID] = a
		out = append(out, a)
	}

	return out, nil
}

func (s *Store) AccountByID(_ context.Context, id domain.AccountID) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.st.accounts[id]
	if !ok {
		return nil, nil
	}

	return &a, nil
}

func (s *Store) DeductCredits(_ context.Context, id domain.AccountID, amount int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.st.accounts[id]
	if !ok || a.Credits < amount {
		return false, nil
	}

	a.Credits -= amount
	s.st.accounts[id] = a

	return true, nil
}
