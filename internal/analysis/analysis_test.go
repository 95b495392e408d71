package analysis_test

import (
	"context"
	"errors"
	"os"
	"seoaudit/internal/analysis"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/logger"
	"seoaudit/pkg/serrors"
	"seoaudit/pkg/storage"
	"seoaudit/pkg/storage/memory"
	mockstorage "seoaudit/pkg/storage/mock"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)

	os.Exit(m.Run())
}

func storePages(t *testing.T, strg storage.Storage, crawlID domain.CrawlJobID, pages ...domain.CrawledPage) {
	t.Helper()

	for _, p := range pages {
		p.CrawlJobID = crawlID
		_, err := strg.StoreCrawledPage(context.Background(), p, nil)
		require.NoError(t, err)
	}
}

func TestEngine_Analyze(t *testing.T) {
	ctx := context.Background()
	strg := memory.New()
	crawlID := domain.CrawlJobID(uuid.New())
	projectID := domain.ProjectID(uuid.New())

	home := cleanPage("https://example.com/")
	noTitle := cleanPage("https://example.com/a")
	noTitle.Title = ""
	alsoNoTitle := cleanPage("https://example.com/b")
	alsoNoTitle.Title = ""
	storePages(t, strg, crawlID, home, noTitle, alsoNoTitle)

	summary, err := analysis.New(strg).Analyze(ctx, crawlID, projectID)
	require.NoError(t, err)
	require.Equal(t, 3, summary.PagesAnalyzed)
	require.Equal(t, 2, summary.TotalIssues)

	score, err := strg.AuditScoreByCrawlJob(ctx, crawlID)
	require.NoError(t, err)
	require.NotNil(t, score)
	require.Equal(t, projectID, score.ProjectID)
	require.Equal(t, summary.OverallScore, score.OverallScore)
	require.Equal(t, 2, score.CriticalIssues)
	require.Equal(t, 3, score.PagesAnalyzed)
	require.Less(t, score.OnPageScore, 100)
	require.Equal(t, 100, score.TechnicalScore)

	issues, err := strg.PageIssuesByCrawlJob(ctx, crawlID)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	for _, i := range issues {
		require.Equal(t, analysis.IssueMissingTitle, i.IssueType)
		require.Equal(t, crawlID, i.CrawlJobID)
	}

	recs, err := strg.RecommendationsByCrawlJob(ctx, crawlID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "2 pages missing title tags", recs[0].Title)
}

func TestEngine_Analyze_ReplacesPreviousResults(t *testing.T) {
	ctx := context.Background()
	strg := memory.New()
	crawlID := domain.CrawlJobID(uuid.New())
	projectID := domain.ProjectID(uuid.New())

	p := cleanPage("https://example.com/")
	p.H1 = ""
	storePages(t, strg, crawlID, p)

	engine := analysis.New(strg)
	first, err := engine.Analyze(ctx, crawlID, projectID)
	require.NoError(t, err)
	second, err := engine.Analyze(ctx, crawlID, projectID)
	require.NoError(t, err)
	require.Equal(t, first, second)

	issues, err := strg.PageIssuesByCrawlJob(ctx, crawlID)
	require.NoError(t, err)
	require.Len(t, issues, first.TotalIssues)

	recs, err := strg.RecommendationsByCrawlJob(ctx, crawlID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
}

func TestEngine_Analyze_NoPages(t *testing.T) {
	strg := memory.New()

	_, err := analysis.New(strg).Analyze(context.Background(),
		domain.CrawlJobID(uuid.New()), domain.ProjectID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNoPagesFound)
}

func TestEngine_Analyze_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	crawlID := domain.CrawlJobID(uuid.New())

	strg.EXPECT().CrawledPagesByCrawlJob(gomock.Any(), crawlID).Return(nil, errors.New("connection reset"))

	_, err := analysis.New(strg).Analyze(context.Background(), crawlID, domain.ProjectID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrPersistence)
}

func TestEngine_Analyze_StoreFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)
	crawlID := domain.CrawlJobID(uuid.New())

	page := cleanPage("https://example.com/")
	page.CrawlJobID = crawlID
	page.Title = ""

	strg.EXPECT().CrawledPagesByCrawlJob(gomock.Any(), crawlID).Return([]domain.CrawledPage{page}, nil)
	strg.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(tx)
		})
	tx.EXPECT().DeleteAuditResults(gomock.Any(), crawlID).Return(nil)
	tx.EXPECT().StoreAuditScore(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))

	_, err := analysis.New(strg).Analyze(context.Background(), crawlID, domain.ProjectID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrPersistence)
}
