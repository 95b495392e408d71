package memory_test

import (
	"context"
	"errors"
	"testing"

	"seoaudit/pkg/domain"
	"seoaudit/pkg/serrors"
	"seoaudit/pkg/storage"
	"seoaudit/pkg/storage/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type testArgs struct{}

func (testArgs) Kind() string { return "test" }

func ptr[T any](v T) *T { return &v }

func newCrawl(t *testing.T, s *memory.Store) domain.CrawlJob {
	t.Helper()

	res, err := s.StoreCrawlJobs(context.Background(), domain.CrawlJob{
		ID:        domain.CrawlJobID(uuid.New()),
		ProjectID: domain.ProjectID(uuid.New()),
		StartURL:  "https://example.com/",
		Status:    domain.CrawlStatusCrawling,
		MaxPages:  2,
	})
	require.NoError(t, err)

	return res[0]
}

func TestStore_WithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	accountID := domain.AccountID(uuid.New())
	_, err := s.StoreAccounts(ctx, domain.Account{ID: accountID, Metered: true, Credits: 10})
	require.NoError(t, err)

	err = s.WithTx(ctx, func(tx storage.AllStorage) error {
		ok, err := tx.DeductCredits(ctx, accountID, 5)
		require.NoError(t, err)
		require.True(t, ok)
		_, err = tx.Enqueue(ctx, testArgs{}, nil)
		require.NoError(t, err)

		return errors.New("boom")
	})
	require.Error(t, err)

	acc, err := s.AccountByID(ctx, accountID)
	require.NoError(t, err)
	require.EqualValues(t, 10, acc.Credits)
	require.Empty(t, s.Queued())

	require.NoError(t, s.WithTx(ctx, func(tx storage.AllStorage) error {
		_, err := tx.Enqueue(ctx, testArgs{}, nil)

		return err
	}))
	require.Len(t, s.Queued(), 1)
}

func TestStore_BeginInsideTx(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	tx, err := s.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.(storage.Storage).Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	require.NoError(t, tx.Commit())
	require.ErrorIs(t, tx.Commit(), storage.ErrNotInTx)
}

func TestStore_CrawlGuards(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	crawl := newCrawl(t, s)

	got, err := s.UpdateCrawlJobByID(ctx, crawl.ID, storage.CrawlJobUpdates{Status: ptr(domain.CrawlStatusCompleted)})
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = s.UpdateCrawlJobByID(ctx, crawl.ID, storage.CrawlJobUpdates{Progress: ptr(45), PagesCrawled: ptr(1)})
	require.NoError(t, err)
	require.Equal(t, 45, got.Progress)

	got, err = s.UpdateCrawlJobByID(ctx, crawl.ID, storage.CrawlJobUpdates{Progress: ptr(20)})
	require.NoError(t, err)
	require.Equal(t, 45, got.Progress)

	_, err = s.UpdateCrawlJobByID(ctx, crawl.ID, storage.CrawlJobUpdates{PagesCrawled: ptr(3)})
	require.ErrorIs(t, err, serrors.ErrPersistence)

	got, err = s.UpdateCrawlJobByID(ctx, crawl.ID, storage.CrawlJobUpdates{Status: ptr(domain.CrawlStatusFailed)})
	require.NoError(t, err)
	require.Equal(t, domain.CrawlStatusFailed, got.Status)

	got, err = s.UpdateCrawlJobByID(ctx, crawl.ID, storage.CrawlJobUpdates{Progress: ptr(90)})
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestStore_PagesAndLinks(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	crawl := newCrawl(t, s)

	home, err := s.StoreCrawledPage(ctx, domain.CrawledPage{CrawlJobID: crawl.ID, URL: "https://example.com/", StatusCode: 200},
		[]domain.Link{
			{Kind: domain.LinkKindExternal, TargetURL: "https://other.org/"},
			{Kind: domain.LinkKindInternal, TargetURL: "https://example.com/gone"},
		})
	require.NoError(t, err)
	_, err = s.StoreCrawledPage(ctx, domain.CrawledPage{CrawlJobID: crawl.ID, URL: "https://example.com/gone", StatusCode: 410}, nil)
	require.NoError(t, err)

	_, err = s.StoreCrawledPage(ctx, domain.CrawledPage{CrawlJobID: crawl.ID, URL: "https://example.com/"}, nil)
	require.ErrorIs(t, err, serrors.ErrConflict)

	// same URL in another crawl is fine
	other := newCrawl(t, s)
	_, err = s.StoreCrawledPage(ctx, domain.CrawledPage{CrawlJobID: other.ID, URL: "https://example.com/"}, nil)
	require.NoError(t, err)

	n, err := s.MarkBrokenLinks(ctx, crawl.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	links, err := s.LinksByPage(ctx, home.ID)
	require.NoError(t, err)
	require.Len(t, links, 2)
	require.Equal(t, domain.LinkKindInternal, links[0].Kind)
	require.True(t, links[0].IsBroken)

	pages, err := s.CrawledPagesByCrawlJob(ctx, crawl.ID)
	require.NoError(t, err)
	require.Len(t, pages, 2)
}

func TestStore_JobProgressAndTerminal(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	id := domain.JobID(uuid.New())
	_, err := s.StoreJobs(ctx, domain.Job{ID: id, Type: domain.JobTypeBulkAnalysis, Status: domain.JobStatusPending})
	require.NoError(t, err)

	got, err := s.UpdateJobByID(ctx, id, storage.JobUpdates{Progress: ptr(3), TotalItems: ptr(5)})
	require.NoError(t, err)
	require.Equal(t, 3, got.Progress)

	got, err = s.UpdateJobByID(ctx, id, storage.JobUpdates{Progress: ptr(2), Status: ptr(domain.JobStatusCompleted)})
	require.NoError(t, err)
	require.Equal(t, 3, got.Progress)

	got, err = s.UpdateJobByID(ctx, id, storage.JobUpdates{Status: ptr(domain.JobStatusProcessing)})
	require.NoError(t, err)
	require.Nil(t, got)
}
