package memory

import (
	"context"
	"slices"
	"time"

	"seoaudit/pkg/domain"
	"seoaudit/pkg/serrors"
	"seoaudit/pkg/storage"
)

const defaultListLimit = 20

func (s *Store) StoreJobs(_ context.Context, jobs ...domain.Job) ([]domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range jobs {
		if _, ok := s.st.jobs[j.ID]; ok {
			return nil, serrors.With(serrors.ErrConflict, "job %s already exists", j.ID)
		}
	}

	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		j.CreatedAt = time.Now().UTC()
		j.ResultData = nil
		j.ErrorMessage = ""
		s.st.jobs[j.ID] = j
		s.st.jobOrder = append(s.st.jobOrder, j.ID)
		out = append(out, j)
	}

	return out, nil
}

func (s *Store) JobByID(_ context.Context, id domain.JobID) (*domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.st.jobs[id]
	if !ok {
		return nil, nil
	}

	return &j, nil
}

func (s *Store) UpdateJobByID(_ context.Context, id domain.JobID, updates storage.JobUpdates) (*domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.st.jobs[id]
	if !ok || j.Status.IsTerminal() {
		return nil, nil
	}

	if updates.Status != nil {
		j.Status = *updates.Status
	}
	if updates.TotalItems != nil {
		j.TotalItems = *updates.TotalItems
	}
	if updates.Progress != nil && *updates.Progress > j.Progress {
		j.Progress = *updates.Progress
	}
	if updates.ResultData != nil {
		j.ResultData = slices.Clone(updates.ResultData)
	}
	if updates.ErrorMessage != nil {
		j.ErrorMessage = *updates.ErrorMessage
	}
	if updates.QueueJobID != nil {
		j.QueueJobID = *updates.QueueJobID
	}
	if updates.StartedAt != nil {
		j.StartedAt = *updates.StartedAt
	}
	if updates.CompletedAt != nil {
		j.CompletedAt = *updates.CompletedAt
	}
	s.st.jobs[id] = j

	return &j, nil
}

func (s *Store) ListJobs(_ context.Context,
	accountID domain.AccountID,
	filter storage.JobFilter,
	cursor time.Time,
	limit uint) (storage.AccountJobs, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit == 0 {
		limit = defaultListLimit
	}

	var out storage.AccountJobs
	for _, id := range slices.Backward(s.st.jobOrder) {
		j := s.st.jobs[id]
		if j.AccountID != accountID ||
			(filter.Status != "" && j.Status != filter.Status) ||
			(filter.Type != "" && j.Type != filter.Type) ||
			(!cursor.IsZero() && !j.CreatedAt.Before(cursor)) {
			continue
		}

		if uint(len(out.Jobs)) == limit {
			last := out.Jobs[len(out.Jobs)-1].CreatedAt
			out.NextCursor = &last

			break
		}
		out.Jobs = append(out.Jobs, j)
	}

	return out, nil
}
