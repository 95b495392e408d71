package crawl_test

import (
	"context"
	"fmt"
	"os"
	"seoaudit/internal/analysis"
	"seoaudit/internal/crawl"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/logger"
	"seoaudit/pkg/pagefetch"
	mockpagefetch "seoaudit/pkg/pagefetch/mock"
	"seoaudit/pkg/serrors"
	"seoaudit/pkg/storage"
	"seoaudit/pkg/storage/memory"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const origin = "https://example.com"

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)

	os.Exit(m.Run())
}

// site maps URLs to fetch results; missing URLs fail to fetch.
type site map[string]*pagefetch.Page

func htmlPage(url string, status int, hrefs ...string) *pagefetch.Page {
	links := make([]pagefetch.Link, 0, len(hrefs))
	var body strings.Builder
	for _, h := range hrefs {
		links = append(links, pagefetch.Link{Href: h, Text: "link"})
		fmt.Fprintf(&body, `<a href="%s">link</a>`, h)
	}

	return &pagefetch.Page{
		URL:         url,
		StatusCode:  status,
		Title:       "A page title that is long enough to pass",
		Description: strings.Repeat("d", 130),
		H1:          "Heading",
		Markdown:    strings.Repeat("word ", 400),
		HTML:        `<html><head><link rel="canonical" href="` + url + `"></head><body>` + body.String() + `</body></html>`,
		Links:       links,
		LoadTime:    200 * time.Millisecond,
	}
}

type fixture struct {
	store   *memory.Store
	engine  *crawl.Engine
	account domain.Account
	project domain.ProjectID

	mu      sync.Mutex
	fetched []string
}

func newFixture(t *testing.T, s site, options crawl.Options) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	fetcher := mockpagefetch.NewMockFetcher(ctrl)
	f := &fixture{store: memory.New(), project: domain.ProjectID(uuid.New())}

	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, url string) (*pagefetch.Page, error) {
			f.mu.Lock()
			f.fetched = append(f.fetched, url)
			f.mu.Unlock()

			if err := ctx.Err(); err != nil {
				return nil, serrors.Wrap(serrors.ErrFetchFailed, err, "cancelled")
			}
			page, ok := s[url]
			if !ok {
				return nil, serrors.With(serrors.ErrFetchFailed, "connection refused")
			}

			return page, nil
		}).AnyTimes()

	accounts, err := f.store.StoreAccounts(context.Background(), domain.Account{
		ID:      domain.AccountID(uuid.New()),
		Plan:    "pro",
		Metered: true,
		Credits: 100,
	})
	require.NoError(t, err)
	f.account = accounts[0]
	f.engine = crawl.New(f.store, fetcher, analysis.New(f.store), nil, options)

	return f
}

func (f *fixture) create(t *testing.T, maxPages int) *domain.CrawlJob {
	t.Helper()

	c, err := f.engine.CreateCrawl(context.Background(), crawl.StartRequest{
		AccountID: f.account.ID,
		ProjectID: f.project,
		Domain:    "example.com",
		MaxPages:  maxPages,
	})
	require.NoError(t, err)

	return c
}

func (f *fixture) crawlByID(t *testing.T, id domain.CrawlJobID) *domain.CrawlJob {
	t.Helper()

	c, err := f.store.CrawlJobByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, c)

	return c
}

func TestEngine_StartCrawl(t *testing.T) {
	f := newFixture(t, site{}, crawl.Options{})

	c, err := f.engine.StartCrawl(context.Background(), crawl.StartRequest{
		AccountID: f.account.ID,
		ProjectID: f.project,
		Domain:    "Example.com",
		MaxPages:  30,
	})
	require.NoError(t, err)
	require.Equal(t, "https://example.com/", c.StartURL)
	require.Equal(t, domain.CrawlStatusCrawling, c.Status)
	require.NotZero(t, c.QueueJobID)

	queued := f.store.Queued()
	require.Len(t, queued, 1)
	require.Equal(t, crawl.JobArgs{CrawlJobID: c.ID}, queued[0].Args)
	require.Equal(t, c.QueueJobID, queued[0].ID)

	account, err := f.store.AccountByID(context.Background(), f.account.ID)
	require.NoError(t, err)
	require.Equal(t, int64(70), account.Credits)
}

func TestEngine_StartCrawl_InsufficientCredits(t *testing.T) {
	f := newFixture(t, site{}, crawl.Options{})

	_, err := f.engine.StartCrawl(context.Background(), crawl.StartRequest{
		AccountID: f.account.ID,
		ProjectID: f.project,
		Domain:    "example.com",
		MaxPages:  101,
	})
	require.ErrorIs(t, err, serrors.ErrInsufficientCredits)

	crawls, err := f.store.ListCrawlJobs(context.Background(), f.account.ID, f.project, time.Time{}, 10)
	require.NoError(t, err)
	require.Empty(t, crawls.CrawlJobs)
	require.Empty(t, f.store.Queued())

	account, err := f.store.AccountByID(context.Background(), f.account.ID)
	require.NoError(t, err)
	require.Equal(t, int64(100), account.Credits)
}

func TestEngine_StartCrawl_UnmeteredIsNotCharged(t *testing.T) {
	f := newFixture(t, site{}, crawl.Options{})
	accounts, err := f.store.StoreAccounts(context.Background(), domain.Account{
		ID:   domain.AccountID(uuid.New()),
		Plan: "enterprise",
	})
	require.NoError(t, err)

	_, err = f.engine.StartCrawl(context.Background(), crawl.StartRequest{
		AccountID: accounts[0].ID,
		ProjectID: f.project,
		Domain:    "example.com",
		MaxPages:  5000,
	})
	require.NoError(t, err)

	account, err := f.store.AccountByID(context.Background(), accounts[0].ID)
	require.NoError(t, err)
	require.Zero(t, account.Credits)
}

func TestEngine_StartCrawl_Validation(t *testing.T) {
	f := newFixture(t, site{}, crawl.Options{})

	cases := []crawl.StartRequest{
		{AccountID: f.account.ID, ProjectID: f.project, Domain: "example.com", MaxPages: 0},
		{AccountID: f.account.ID, ProjectID: f.project, Domain: "", MaxPages: 10},
		{AccountID: f.account.ID, ProjectID: f.project, Domain: "ftp://example.com", MaxPages: 10},
		{AccountID: f.account.ID, Domain: "example.com", MaxPages: 10},
	}
	for _, req := range cases {
		_, err := f.engine.StartCrawl(context.Background(), req)
		require.ErrorIs(t, err, serrors.ErrValidation, "%+v", req)
	}

	_, err := f.engine.StartCrawl(context.Background(), crawl.StartRequest{
		AccountID: domain.AccountID(uuid.New()),
		ProjectID: f.project,
		Domain:    "example.com",
		MaxPages:  1,
	})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestEngine_Execute(t *testing.T) {
	s := site{
		origin + "/":  htmlPage(origin+"/", 200, "/a", "/b", "/a", "https://other.org/", "mailto:x@example.com"),
		origin + "/a": htmlPage(origin+"/a", 200, "/", "/b"),
		origin + "/b": htmlPage(origin+"/b", 404, "/"),
	}
	f := newFixture(t, s, crawl.Options{})
	c := f.create(t, 10)

	var (
		mu       sync.Mutex
		observed []domain.CrawlJob
	)
	summary, err := f.engine.Execute(context.Background(), c.ID, func(_ context.Context, c domain.CrawlJob) {
		mu.Lock()
		observed = append(observed, c)
		mu.Unlock()
	})
	require.NoError(t, err)
	require.Equal(t, 3, summary.PagesAnalyzed)

	got := f.crawlByID(t, c.ID)
	require.Equal(t, domain.CrawlStatusCompleted, got.Status)
	require.Equal(t, 100, got.Progress)
	require.Equal(t, 3, got.PagesCrawled)
	require.Equal(t, 3, got.PagesDiscovered)
	require.False(t, got.StartedAt.IsZero())
	require.False(t, got.CompletedAt.IsZero())

	pages, err := f.store.CrawledPagesByCrawlJob(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, pages, 3)
	require.Equal(t, origin+"/", pages[0].URL, "seed first")
	require.Equal(t, 3, pages[0].InternalLinksCount)
	require.Equal(t, 1, pages[0].ExternalLinksCount)

	links, err := f.store.LinksByPage(context.Background(), pages[1].ID)
	require.NoError(t, err)
	var broken int
	for _, l := range links {
		if l.IsBroken {
			require.Equal(t, origin+"/b", l.TargetURL)
			broken++
		}
	}
	require.Equal(t, 1, broken)

	score, err := f.store.AuditScoreByCrawlJob(context.Background(), c.ID)
	require.NoError(t, err)
	require.NotNil(t, score)
	require.Equal(t, summary.OverallScore, score.OverallScore)

	last := 0
	for _, o := range observed {
		require.GreaterOrEqual(t, o.Progress, last)
		last = o.Progress
		if o.Status == domain.CrawlStatusCrawling {
			require.LessOrEqual(t, o.Progress, 90)
		}
	}
	require.Equal(t, domain.CrawlStatusAnalyzing, observed[len(observed)-2].Status)
	require.Equal(t, domain.CrawlStatusCompleted, observed[len(observed)-1].Status)
}

func TestEngine_Execute_TrailingSlashIsDistinct(t *testing.T) {
	s := site{
		origin + "/":   htmlPage(origin+"/", 200, "/a", "/a/"),
		origin + "/a":  htmlPage(origin+"/a", 200, "/a/"),
		origin + "/a/": htmlPage(origin+"/a/", 200, "/a"),
	}
	f := newFixture(t, s, crawl.Options{})
	c := f.create(t, 10)

	_, err := f.engine.Execute(context.Background(), c.ID, nil)
	require.NoError(t, err)

	got := f.crawlByID(t, c.ID)
	require.Equal(t, 3, got.PagesCrawled)

	pages, err := f.store.CrawledPagesByCrawlJob(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, pages, 3)
	urls := make([]string, 0, len(pages))
	for _, p := range pages {
		urls = append(urls, p.URL)
	}
	require.ElementsMatch(t, []string{origin + "/", origin + "/a", origin + "/a/"}, urls)
	require.ElementsMatch(t, urls, f.fetched)
}

func TestEngine_Execute_PageBudget(t *testing.T) {
	s := site{}
	for i := range 10 {
		u := fmt.Sprintf("%s/p%d", origin, i)
		s[u] = htmlPage(u, 200, fmt.Sprintf("/p%d", i+1), fmt.Sprintf("/p%d", i+2))
	}
	s[origin+"/"] = htmlPage(origin+"/", 200, "/p0", "/p1", "/p2", "/p3")

	f := newFixture(t, s, crawl.Options{HardPageCap: 4})
	c := f.create(t, 6)

	_, err := f.engine.Execute(context.Background(), c.ID, nil)
	require.NoError(t, err)

	got := f.crawlByID(t, c.ID)
	require.Equal(t, 4, got.PagesCrawled)
	require.Len(t, f.fetched, 4)
}

func TestEngine_Execute_FetchFailureIsSkipped(t *testing.T) {
	s := site{
		origin + "/":  htmlPage(origin+"/", 200, "/gone", "/ok"),
		origin + "/ok": htmlPage(origin+"/ok", 200),
	}
	f := newFixture(t, s, crawl.Options{})
	c := f.create(t, 2)

	_, err := f.engine.Execute(context.Background(), c.ID, nil)
	require.NoError(t, err)

	got := f.crawlByID(t, c.ID)
	require.Equal(t, domain.CrawlStatusCompleted, got.Status)
	require.Equal(t, 2, got.PagesCrawled)
	require.ElementsMatch(t, []string{origin + "/", origin + "/gone", origin + "/ok"}, f.fetched)
}

func TestEngine_Execute_SeedNotFound(t *testing.T) {
	s := site{origin + "/": htmlPage(origin+"/", 404)}
	f := newFixture(t, s, crawl.Options{})
	c := f.create(t, 5)

	summary, err := f.engine.Execute(context.Background(), c.ID, nil)
	require.NoError(t, err)
	require.Equal(t, 1, summary.PagesAnalyzed)

	issues, err := f.store.PageIssuesByCrawlJob(context.Background(), c.ID)
	require.NoError(t, err)
	require.Contains(t, issueTypes(issues), analysis.IssueHTTPError)
}

func TestEngine_Execute_SeedUnreachable(t *testing.T) {
	f := newFixture(t, site{}, crawl.Options{})
	c := f.create(t, 5)

	_, err := f.engine.Execute(context.Background(), c.ID, nil)
	require.ErrorIs(t, err, serrors.ErrNoPagesFound)

	got := f.crawlByID(t, c.ID)
	require.Equal(t, domain.CrawlStatusFailed, got.Status)
	require.NotEmpty(t, got.ErrorMessage)
}

func TestEngine_Execute_ConcurrentFetchesKeepInvariants(t *testing.T) {
	s := site{}
	var hrefs []string
	for i := range 30 {
		hrefs = append(hrefs, fmt.Sprintf("/p%d", i))
	}
	s[origin+"/"] = htmlPage(origin+"/", 200, hrefs...)
	for _, h := range hrefs {
		// every page links to every other page
		s[origin+h] = htmlPage(origin+h, 200, hrefs...)
	}

	f := newFixture(t, s, crawl.Options{Concurrency: 4})
	c := f.create(t, 20)

	_, err := f.engine.Execute(context.Background(), c.ID, nil)
	require.NoError(t, err)

	got := f.crawlByID(t, c.ID)
	require.Equal(t, 20, got.PagesCrawled)

	pages, err := f.store.CrawledPagesByCrawlJob(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, pages, 20)
	seen := make(map[string]struct{})
	for _, p := range pages {
		_, dup := seen[p.URL]
		require.False(t, dup, p.URL)
		seen[p.URL] = struct{}{}
	}
}

func TestEngine_Execute_ContextCancelled(t *testing.T) {
	s := site{origin + "/": htmlPage(origin+"/", 200, "/a")}
	f := newFixture(t, s, crawl.Options{PacingDelay: time.Hour})
	c := f.create(t, 5)

	ctx, cancel := context.WithCancel(context.Background())
	_, err := f.engine.Execute(ctx, c.ID, func(_ context.Context, c domain.CrawlJob) {
		if c.PagesCrawled == 1 {
			cancel()
		}
	})
	require.ErrorIs(t, err, context.Canceled)

	got := f.crawlByID(t, c.ID)
	require.Equal(t, domain.CrawlStatusFailed, got.Status)
	require.Equal(t, "crawl cancelled", got.ErrorMessage)
	require.Equal(t, 1, got.PagesCrawled)
}

func TestEngine_Execute_Deadline(t *testing.T) {
	s := site{origin + "/": htmlPage(origin+"/", 200, "/a")}
	f := newFixture(t, s, crawl.Options{PacingDelay: time.Hour, Deadline: 100 * time.Millisecond})
	c := f.create(t, 5)

	_, err := f.engine.Execute(context.Background(), c.ID, nil)
	require.Error(t, err)

	got := f.crawlByID(t, c.ID)
	require.Equal(t, domain.CrawlStatusFailed, got.Status)
	require.Equal(t, "crawl deadline exceeded", got.ErrorMessage)
}

func TestEngine_Cancel(t *testing.T) {
	f := newFixture(t, site{origin + "/": htmlPage(origin+"/", 200)}, crawl.Options{})

	c, err := f.engine.StartCrawl(context.Background(), crawl.StartRequest{
		AccountID: f.account.ID,
		ProjectID: f.project,
		Domain:    "example.com",
		MaxPages:  5,
	})
	require.NoError(t, err)

	err = f.engine.Cancel(context.Background(), domain.AccountID(uuid.New()), c.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	require.NoError(t, f.engine.Cancel(context.Background(), f.account.ID, c.ID))
	require.Equal(t, []int64{c.QueueJobID}, f.store.Cancelled())

	got := f.crawlByID(t, c.ID)
	require.Equal(t, domain.CrawlStatusFailed, got.Status)
	require.Equal(t, "crawl cancelled", got.ErrorMessage)

	// a worker picking the crawl up afterwards does nothing
	require.NoError(t, f.engine.Run(context.Background(), c.ID))
	require.Empty(t, f.fetched)

	err = f.engine.Cancel(context.Background(), f.account.ID, c.ID)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestEngine_Run_Twice(t *testing.T) {
	f := newFixture(t, site{origin + "/": htmlPage(origin+"/", 200)}, crawl.Options{})
	c := f.create(t, 1)

	require.NoError(t, f.engine.Run(context.Background(), c.ID))
	require.NoError(t, f.engine.Run(context.Background(), c.ID))
	require.Len(t, f.fetched, 1)

	err := f.engine.Run(context.Background(), domain.CrawlJobID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestEngine_Reads(t *testing.T) {
	f := newFixture(t, site{origin + "/": htmlPage(origin+"/", 200)}, crawl.Options{})
	c := f.create(t, 1)
	ctx := context.Background()
	stranger := domain.AccountID(uuid.New())

	_, err := f.engine.Audit(ctx, f.account.ID, c.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	require.NoError(t, f.engine.Run(ctx, c.ID))

	got, err := f.engine.Crawl(ctx, f.account.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, domain.CrawlStatusCompleted, got.Status)
	_, err = f.engine.Crawl(ctx, stranger, c.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	pages, err := f.engine.Pages(ctx, f.account.ID, c.ID)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	_, err = f.engine.Pages(ctx, stranger, c.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	report, err := f.engine.Audit(ctx, f.account.ID, c.ID)
	require.NoError(t, err)
	require.Equal(t, 1, report.Score.PagesAnalyzed)

	crawls, next, err := f.engine.ProjectCrawls(ctx, f.account.ID, f.project, "", 10)
	require.NoError(t, err)
	require.Len(t, crawls, 1)
	require.Empty(t, next)

	crawls, _, err = f.engine.ProjectCrawls(ctx, stranger, f.project, "", 10)
	require.NoError(t, err)
	require.Empty(t, crawls)

	_, _, err = f.engine.ProjectCrawls(ctx, f.account.ID, f.project, "yesterday", 10)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestEngine_FailStale(t *testing.T) {
	f := newFixture(t, site{}, crawl.Options{Deadline: time.Hour})
	ctx := context.Background()

	interrupted := f.create(t, 1)
	running := f.create(t, 1)
	queued := f.create(t, 1)

	longAgo := time.Now().Add(-2 * time.Hour).UTC()
	recently := time.Now().Add(-time.Minute).UTC()
	_, err := f.store.UpdateCrawlJobByID(ctx, interrupted.ID, storage.CrawlJobUpdates{StartedAt: &longAgo})
	require.NoError(t, err)
	_, err = f.store.UpdateCrawlJobByID(ctx, running.ID, storage.CrawlJobUpdates{StartedAt: &recently})
	require.NoError(t, err)

	n, err := f.engine.FailStale(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	got := f.crawlByID(t, interrupted.ID)
	require.Equal(t, domain.CrawlStatusFailed, got.Status)
	require.Equal(t, "crawl interrupted", got.ErrorMessage)
	require.False(t, got.CompletedAt.IsZero())
	require.Equal(t, domain.CrawlStatusCrawling, f.crawlByID(t, running.ID).Status)
	require.Equal(t, domain.CrawlStatusCrawling, f.crawlByID(t, queued.ID).Status)

	// the rescued queue job finds the crawl finished
	require.NoError(t, f.engine.Run(ctx, interrupted.ID))

	n, err = f.engine.FailStale(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestEngine_FailStale_DisabledWithoutDeadline(t *testing.T) {
	f := newFixture(t, site{}, crawl.Options{})
	ctx := context.Background()

	c := f.create(t, 1)
	longAgo := time.Now().Add(-48 * time.Hour).UTC()
	_, err := f.store.UpdateCrawlJobByID(ctx, c.ID, storage.CrawlJobUpdates{StartedAt: &longAgo})
	require.NoError(t, err)

	n, err := f.engine.FailStale(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Equal(t, domain.CrawlStatusCrawling, f.crawlByID(t, c.ID).Status)
}

func TestEngine_ProjectCrawls_OtherAccountsDoNotShortenPages(t *testing.T) {
	f := newFixture(t, site{}, crawl.Options{})
	ctx := context.Background()

	own := []*domain.CrawlJob{f.create(t, 1), f.create(t, 1)}
	// newer crawls of another account under the same project id
	for range 3 {
		_, err := f.store.StoreCrawlJobs(ctx, domain.CrawlJob{
			ID:        domain.CrawlJobID(uuid.New()),
			AccountID: domain.AccountID(uuid.New()),
			ProjectID: f.project,
			StartURL:  origin + "/",
			Status:    domain.CrawlStatusCrawling,
			MaxPages:  1,
		})
		require.NoError(t, err)
	}

	crawls, next, err := f.engine.ProjectCrawls(ctx, f.account.ID, f.project, "", 2)
	require.NoError(t, err)
	require.Empty(t, next)
	require.Len(t, crawls, 2)
	require.ElementsMatch(t, []domain.CrawlJobID{own[0].ID, own[1].ID},
		[]domain.CrawlJobID{crawls[0].ID, crawls[1].ID})
}

func issueTypes(issues []domain.PageIssue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.IssueType)
	}

	return out
}
