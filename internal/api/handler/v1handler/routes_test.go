package v1handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"seoaudit/internal/api/handler/v1handler"
	"seoaudit/internal/crawl"
	mockcrawl "seoaudit/internal/crawl/mock"
	mockorchestrator "seoaudit/internal/orchestrator/mock"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/notify"
	"seoaudit/pkg/serrors"
	"seoaudit/pkg/storage"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeEvents struct {
	events []notify.Event
	// keepOpen leaves the channel open after the queued events
	keepOpen bool
	table    string
	id       string
}

func (f *fakeEvents) Subscribe(_ context.Context, table, id string) (<-chan notify.Event, func(), error) {
	f.table, f.id = table, id
	ch := make(chan notify.Event, len(f.events))
	for _, ev := range f.events {
		ch <- ev
	}
	if !f.keepOpen {
		close(ch)
	}

	return ch, func() {}, nil
}

type apiFixture struct {
	router    http.Handler
	crawler   *mockcrawl.MockCrawler
	jobs      *mockorchestrator.MockJobs
	events    *fakeEvents
	accountID domain.AccountID
	token     string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	f := &apiFixture{
		crawler:   mockcrawl.NewMockCrawler(ctrl),
		jobs:      mockorchestrator.NewMockJobs(ctrl),
		events:    &fakeEvents{},
		accountID: domain.AccountID(uuid.New()),
	}
	now := time.Now()
	f.token = signJWTRS256(t, priv, f.accountID.String(), now, now.Add(time.Hour))

	h := v1handler.New(v1handler.Deps{Crawler: f.crawler, Jobs: f.jobs, Events: f.events})
	r := chi.NewRouter()
	r.Use(sh.Middleware(h))
	h.Routes(r)
	h.StreamRoutes(r)
	f.router = r

	return f
}

func (f *apiFixture) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, v1handler.Envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+f.token)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var env v1handler.Envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestRoutes_RequireBearerToken(t *testing.T) {
	f := newAPIFixture(t)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var env v1handler.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.False(t, env.Success)
	require.Equal(t, serrors.ErrUnauthorized.Error(), env.Code)
}

func TestStartCrawl(t *testing.T) {
	f := newAPIFixture(t)
	projectID := uuid.New()
	crawlID := domain.CrawlJobID(uuid.New())

	f.crawler.EXPECT().StartCrawl(gomock.Any(), crawl.StartRequest{
		AccountID: f.accountID,
		ProjectID: domain.ProjectID(projectID),
		Domain:    "example.com",
		MaxPages:  25,
	}).Return(&domain.CrawlJob{ID: crawlID, Status: domain.CrawlStatusCrawling}, nil)

	rec, env := f.do(t, http.MethodPost, "/projects/"+projectID.String()+"/crawls",
		`{"domain":"example.com","max_pages":25}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.True(t, env.Success)
	data := env.Data.(map[string]any)
	require.Equal(t, crawlID.String(), data["crawl_job_id"])
	require.Equal(t, "crawling", data["status"])
}

func TestStartCrawl_Errors(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodPost, "/projects/not-a-uuid/crawls", `{"domain":"example.com","max_pages":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "BAD_REQUEST", env.Code)

	rec, _ = f.do(t, http.MethodPost, "/projects/"+uuid.NewString()+"/crawls", `{"domain":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	f.crawler.EXPECT().StartCrawl(gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrInsufficientCredits, "not enough credits"))
	rec, env = f.do(t, http.MethodPost, "/projects/"+uuid.NewString()+"/crawls",
		`{"domain":"example.com","max_pages":5000}`)
	require.Equal(t, http.StatusPaymentRequired, rec.Code)
	require.Equal(t, "not enough credits", env.Message)
}

func TestListCrawls_Paging(t *testing.T) {
	f := newAPIFixture(t)
	projectID := uuid.New()

	f.crawler.EXPECT().ProjectCrawls(gomock.Any(), f.accountID, domain.ProjectID(projectID), "c1", uint(5)).
		Return([]domain.CrawlJob{{ID: domain.CrawlJobID(uuid.New())}}, "c2", nil)

	rec, env := f.do(t, http.MethodGet, "/projects/"+projectID.String()+"/crawls?cursor=c1&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := env.Data.(map[string]any)
	require.Len(t, data["items"], 1)
	require.Equal(t, "c2", data["next_cursor"])

	rec, _ = f.do(t, http.MethodGet, "/projects/"+projectID.String()+"/crawls?limit=1000", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCrawl_OtherAccountIsNotFound(t *testing.T) {
	f := newAPIFixture(t)
	id := uuid.New()

	f.crawler.EXPECT().Crawl(gomock.Any(), f.accountID, domain.CrawlJobID(id)).
		Return(nil, serrors.With(serrors.ErrNotFound, "crawl not found"))

	rec, env := f.do(t, http.MethodGet, "/crawls/"+id.String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "crawl not found", env.Message)
}

func TestGetAudit(t *testing.T) {
	f := newAPIFixture(t)
	id := uuid.New()

	f.crawler.EXPECT().Audit(gomock.Any(), f.accountID, domain.CrawlJobID(id)).
		Return(&domain.AuditReport{Score: &domain.AuditScore{OverallScore: 87}}, nil)

	rec, env := f.do(t, http.MethodGet, "/crawls/"+id.String()+"/audit", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)
}

func TestCancelCrawl(t *testing.T) {
	f := newAPIFixture(t)
	id := domain.CrawlJobID(uuid.New())

	gomock.InOrder(
		f.crawler.EXPECT().Cancel(gomock.Any(), f.accountID, id).Return(nil),
		f.crawler.EXPECT().Crawl(gomock.Any(), f.accountID, id).
			Return(&domain.CrawlJob{ID: id, Status: domain.CrawlStatusFailed, ErrorMessage: "crawl cancelled"}, nil),
	)

	rec, env := f.do(t, http.MethodPost, "/crawls/"+id.String()+"/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "failed", env.Data.(map[string]any)["status"])
}

func TestCreateJob(t *testing.T) {
	f := newAPIFixture(t)
	jobID := domain.JobID(uuid.New())

	f.jobs.EXPECT().Create(gomock.Any(), f.accountID, domain.JobTypeKeywordClustering, gomock.Any()).
		DoAndReturn(func(_ context.Context, accountID domain.AccountID, jobType domain.JobType,
			input json.RawMessage) (*domain.Job, error) {
			require.JSONEq(t, `{"keywords":["seo tools"]}`, string(input))

			return &domain.Job{ID: jobID, AccountID: accountID, Type: jobType, Status: domain.JobStatusPending}, nil
		})

	rec, env := f.do(t, http.MethodPost, "/jobs",
		`{"job_type":"keyword_clustering","input":{"keywords":["seo tools"]}}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, jobID.String(), env.Data.(map[string]any)["id"])
}

func TestCreateJob_Validation(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodPost, "/jobs", `{"input":{}}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "VALIDATION", env.Code)

	rec, _ = f.do(t, http.MethodPost, "/jobs", `{"job_type":"crawl","unknown":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListJobs_Filter(t *testing.T) {
	f := newAPIFixture(t)

	f.jobs.EXPECT().AccountJobs(gomock.Any(), f.accountID,
		storage.JobFilter{Status: domain.JobStatusFailed, Type: domain.JobTypeSERPTracking}, "", uint(v1handler.DefaultLimit)).
		Return(nil, "", nil)

	rec, env := f.do(t, http.MethodGet, "/jobs?status=failed&job_type=serp_tracking", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := env.Data.(map[string]any)
	require.Empty(t, data["items"])
	require.NotContains(t, data, "next_cursor")

	rec, _ = f.do(t, http.MethodGet, "/jobs?status=sleeping", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelJob_Conflict(t *testing.T) {
	f := newAPIFixture(t)
	id := domain.JobID(uuid.New())

	f.jobs.EXPECT().Cancel(gomock.Any(), f.accountID, id).
		Return(nil, serrors.With(serrors.ErrConflict, "job already completed"))

	rec, env := f.do(t, http.MethodPost, "/jobs/"+id.String()+"/cancel", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "job already completed", env.Message)
}

func TestStreamEvents(t *testing.T) {
	f := newAPIFixture(t)
	id := domain.JobID(uuid.New())

	f.jobs.EXPECT().Job(gomock.Any(), f.accountID, id).
		Return(&domain.Job{ID: id, Status: domain.JobStatusProcessing, Progress: 1, TotalItems: 4}, nil).
		Times(2)
	f.events.events = []notify.Event{
		{Table: notify.TableJobs, ID: id.String(), Status: "processing", Progress: 2, Total: 4},
		{Table: notify.TableJobs, ID: id.String(), Status: "completed", Progress: 4, Total: 4},
		{Table: notify.TableJobs, ID: id.String(), Status: "completed", Progress: 4, Total: 4},
	}

	rec, _ := f.do(t, http.MethodGet, "/events/jobs/"+id.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	require.Equal(t, notify.TableJobs, f.events.table)
	require.Equal(t, id.String(), f.events.id)

	body := rec.Body.String()
	// snapshot, one progress event, then the stream stops at the first terminal event
	require.Equal(t, 3, strings.Count(body, "event: jobs\n"))
	require.Contains(t, body, `"progress":1`)
	require.Contains(t, body, `"status":"completed"`)
}

func TestStreamEvents_TerminalSnapshotEndsStream(t *testing.T) {
	f := newAPIFixture(t)
	id := domain.CrawlJobID(uuid.New())

	f.crawler.EXPECT().Crawl(gomock.Any(), f.accountID, id).
		Return(&domain.CrawlJob{ID: id, Status: domain.CrawlStatusCompleted, Progress: 100}, nil)
	f.events.events = []notify.Event{{Table: notify.TableCrawlJobs, Status: "completed"}}

	rec, _ := f.do(t, http.MethodGet, "/events/crawl_jobs/"+id.String(), "")
	require.Equal(t, 1, strings.Count(rec.Body.String(), "event: crawl_jobs\n"))
}

func TestStreamEvents_ChangeBeforeSubscribeIsNotLost(t *testing.T) {
	f := newAPIFixture(t)
	id := domain.JobID(uuid.New())

	// the job finishes between the ownership check and the subscription, so
	// its terminal event is never delivered
	gomock.InOrder(
		f.jobs.EXPECT().Job(gomock.Any(), f.accountID, id).
			Return(&domain.Job{ID: id, Status: domain.JobStatusProcessing, Progress: 3, TotalItems: 4}, nil),
		f.jobs.EXPECT().Job(gomock.Any(), f.accountID, id).
			Return(&domain.Job{ID: id, Status: domain.JobStatusCompleted, Progress: 4, TotalItems: 4}, nil),
	)
	f.events.keepOpen = true

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req := httptest.NewRequestWithContext(ctx, http.MethodGet, "/events/jobs/"+id.String(), nil)
	req.Header.Set("Authorization", "Bearer "+f.token)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.NoError(t, ctx.Err(), "stream did not end")
	body := rec.Body.String()
	require.Equal(t, 1, strings.Count(body, "event: jobs\n"))
	require.Contains(t, body, `"status":"completed"`)
}

func TestStreamEvents_UnknownTable(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/events/projects/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "NOT_FOUND", env.Code)
}
