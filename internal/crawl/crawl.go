// Package crawl starts website crawls, runs their breadth-first traversal and
// hands the fetched pages over to the analysis.
package crawl

import (
	"context"
	"errors"
	"seoaudit/internal/config"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/logger"
	"seoaudit/pkg/metrics"
	"seoaudit/pkg/notify"
	"seoaudit/pkg/pagefetch"
	"seoaudit/pkg/serrors"
	"seoaudit/pkg/storage"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	instrumentationName = "seoaudit/internal/crawl"

	defaultHardPageCap     = 2000
	defaultExternalLinkCap = 50

	// crawlingProgressCap is the progress reported when the traversal ends;
	// the rest is reserved for the analysis.
	crawlingProgressCap = 90

	cancelledMessage   = "crawl cancelled"
	interruptedMessage = "crawl interrupted"

	// staleGrace is added to the crawl deadline before a running crawl is
	// considered interrupted.
	staleGrace      = 5 * time.Minute
	staleSweepBatch = 100
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint: gochecknoglobals

// Options configure crawl budgets, pacing and fan-out.
type Options struct {
	// HardPageCap bounds the page budget of every crawl.
	HardPageCap int
	// PacingDelay is the minimum delay between two fetch starts of one crawl.
	PacingDelay time.Duration
	// ExternalLinkCap bounds the external links stored per page.
	ExternalLinkCap int
	// Concurrency is the number of fetches one crawl may have in flight.
	Concurrency int
	// Deadline bounds a whole crawl including its analysis. Zero disables it.
	Deadline time.Duration
	// StaleAfter is how long after its start a crawl that is still running
	// is failed as interrupted. It defaults to Deadline plus a grace period;
	// zero with no Deadline disables the sweep.
	StaleAfter time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		HardPageCap:     cfg.Crawler.HardPageCap,
		PacingDelay:     cfg.Crawler.PacingDelay,
		ExternalLinkCap: cfg.Crawler.ExternalLinkCap,
		Concurrency:     cfg.Crawler.Concurrency,
		Deadline:        cfg.Crawler.Deadline,
		StaleAfter:      cfg.Crawler.StaleAfter,
	}
}

func (o Options) withDefaults() Options {
	if o.HardPageCap <= 0 {
		o.HardPageCap = defaultHardPageCap
	}
	if o.ExternalLinkCap <= 0 {
		o.ExternalLinkCap = defaultExternalLinkCap
	}
	if o.Concurrency <= 0 {
		o.Concurrency = 1
	}
	if o.StaleAfter <= 0 && o.Deadline > 0 {
		o.StaleAfter = o.Deadline + staleGrace
	}

	return o
}

// StartRequest asks for a crawl of Domain on behalf of an account.
type StartRequest struct {
	AccountID domain.AccountID `validate:"required"`
	ProjectID domain.ProjectID `validate:"required"`
	Domain    string           `validate:"required,max=2048"`
	MaxPages  int              `validate:"required,min=1"`
}

// Engine implements Crawler. It is safe for concurrent use; every crawl keeps
// its traversal state to itself.
type Engine struct {
	options   Options
	storage   storage.Storage
	fetcher   pagefetch.Fetcher
	analyzer  Analyzer
	publisher *notify.Publisher
	tracer    trace.Tracer
}

var _ Crawler = (*Engine)(nil)

// New creates an Engine. publisher may be nil, in which case no change events
// are published.
func New(strg storage.Storage,
	fetcher pagefetch.Fetcher,
	analyzer Analyzer,
	publisher *notify.Publisher,
	options Options) *Engine {
	return &Engine{
		options:   options.withDefaults(),
		storage:   strg,
		fetcher:   fetcher,
		analyzer:  analyzer,
		publisher: publisher,
		tracer:    otel.Tracer(instrumentationName),
	}
}

// StartCrawl reserves the credits of the crawl, stores it in crawling status
// and enqueues its traversal, all in one transaction. Nothing is stored when
// the account cannot pay for MaxPages.
func (e *Engine) StartCrawl(ctx context.Context, req StartRequest) (*domain.CrawlJob, error) {
	crawl, err := e.newCrawl(req)
	if err != nil {
		return nil, err
	}

	var stored *domain.CrawlJob
	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := reserveCredits(ctx, tx, crawl.AccountID, int64(crawl.MaxPages)); err != nil {
			return err
		}

		queueID, err := tx.Enqueue(ctx, JobArgs{CrawlJobID: crawl.ID}, nil)
		if err != nil {
			return serrors.Wrap(serrors.ErrPersistence, err, "could not enqueue crawl")
		}
		crawl.QueueJobID = queueID

		stored, err = storeCrawl(ctx, tx, crawl)

		return err
	}); err != nil {
		return nil, err
	}

	logger.Info(ctx, "crawl started",
		zap.String("crawl_job_id", stored.ID.String()),
		zap.String("start_url", stored.StartURL),
		zap.Int("max_pages", stored.MaxPages))
	e.publisher.PublishLogged(ctx, notify.CrawlEvent(*stored))

	return stored, nil
}

// CreateCrawl is StartCrawl without the enqueue, for callers that run the
// traversal themselves with Execute.
func (e *Engine) CreateCrawl(ctx context.Context, req StartRequest) (*domain.CrawlJob, error) {
	crawl, err := e.newCrawl(req)
	if err != nil {
		return nil, err
	}

	var stored *domain.CrawlJob
	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := reserveCredits(ctx, tx, crawl.AccountID, int64(crawl.MaxPages)); err != nil {
			return err
		}

		var err error
		stored, err = storeCrawl(ctx, tx, crawl)

		return err
	}); err != nil {
		return nil, err
	}

	return stored, nil
}

func (e *Engine) newCrawl(req StartRequest) (domain.CrawlJob, error) {
	if err := validate.Struct(req); err != nil {
		return domain.CrawlJob{}, serrors.Wrap(serrors.ErrValidation, err, "invalid crawl request")
	}

	startURL, err := NormalizeDomain(req.Domain)
	if err != nil {
		return domain.CrawlJob{}, serrors.Wrap(serrors.ErrValidation, err, "invalid domain")
	}

	return domain.CrawlJob{
		ID:        domain.CrawlJobID(uuid.New()),
		AccountID: req.AccountID,
		ProjectID: req.ProjectID,
		StartURL:  startURL,
		Status:    domain.CrawlStatusCrawling,
		MaxPages:  req.MaxPages,
	}, nil
}

// reserveCredits deducts amount from a metered account. Unmetered accounts are
// never charged.
func reserveCredits(ctx context.Context, tx storage.AllStorage, id domain.AccountID, amount int64) error {
	account, err := tx.AccountByID(ctx, id)
	if err != nil {
		return serrors.Wrap(serrors.ErrPersistence, err, "could not load account")
	}
	if account == nil {
		return serrors.With(serrors.ErrNotFound, "account not found")
	}
	if !account.CanAfford(amount) {
		return serrors.With(serrors.ErrInsufficientCredits,
			"crawl needs %d credits, %d left", amount, account.Credits)
	}
	if !account.Metered {
		return nil
	}

	ok, err := tx.DeductCredits(ctx, id, amount)
	if err != nil {
		return serrors.Wrap(serrors.ErrPersistence, err, "could not deduct credits")
	}
	if !ok {
		return serrors.With(serrors.ErrInsufficientCredits, "crawl needs %d credits", amount)
	}

	return nil
}

func storeCrawl(ctx context.Context, tx storage.AllStorage, crawl domain.CrawlJob) (*domain.CrawlJob, error) {
	res, err := tx.StoreCrawlJobs(ctx, crawl)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrPersistence, err, "could not store crawl job")
	}

	return &res[0], nil
}

// Crawl returns a crawl owned by accountID.
func (e *Engine) Crawl(ctx context.Context, accountID domain.AccountID, id domain.CrawlJobID) (*domain.CrawlJob, error) {
	crawl, err := e.storage.CrawlJobByID(ctx, id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrPersistence, err, "could not get crawl job")
	}
	if crawl == nil || crawl.AccountID != accountID {
		return nil, serrors.With(serrors.ErrNotFound, "crawl job not found")
	}

	return crawl, nil
}

// ProjectCrawls returns a page of a project's crawls, newest first. It supports
// cursor-based pagination using an RFC3339 timestamp string and returns the
// next cursor when more results are available.
func (e *Engine) ProjectCrawls(ctx context.Context,
	accountID domain.AccountID,
	projectID domain.ProjectID,
	cursor string,
	limit uint) ([]domain.CrawlJob, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := e.storage.ListCrawlJobs(ctx, accountID, projectID, cursorTime, limit)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrPersistence, err, "could not list crawl jobs")
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339Nano)
	}

	return page.CrawlJobs, next, nil
}

// Pages returns the pages crawled so far, including those of failed crawls.
func (e *Engine) Pages(ctx context.Context,
	accountID domain.AccountID,
	id domain.CrawlJobID) ([]domain.CrawledPage, error) {
	if _, err := e.Crawl(ctx, accountID, id); err != nil {
		return nil, err
	}

	pages, err := e.storage.CrawledPagesByCrawlJob(ctx, id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrPersistence, err, "could not get crawled pages")
	}

	return pages, nil
}

// Audit returns the analysis results of a crawl. It is NOT_FOUND until the
// analysis has been stored.
func (e *Engine) Audit(ctx context.Context,
	accountID domain.AccountID,
	id domain.CrawlJobID) (*domain.AuditReport, error) {
	if _, err := e.Crawl(ctx, accountID, id); err != nil {
		return nil, err
	}

	score, err := e.storage.AuditScoreByCrawlJob(ctx, id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrPersistence, err, "could not get audit score")
	}
	if score == nil {
		return nil, serrors.With(serrors.ErrNotFound, "audit not available yet")
	}

	issues, err := e.storage.PageIssuesByCrawlJob(ctx, id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrPersistence, err, "could not get page issues")
	}
	recommendations, err := e.storage.RecommendationsByCrawlJob(ctx, id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrPersistence, err, "could not get recommendations")
	}

	return &domain.AuditReport{Score: score, Issues: issues, Recommendations: recommendations}, nil
}

// Cancel marks a running crawl failed and cancels its queued traversal. A
// traversal that is already running notices the cancellation through its
// context or its next status write. Credits are not refunded.
func (e *Engine) Cancel(ctx context.Context, accountID domain.AccountID, id domain.CrawlJobID) error {
	crawl, err := e.Crawl(ctx, accountID, id)
	if err != nil {
		return err
	}
	if crawl.Status.IsTerminal() {
		return serrors.With(serrors.ErrConflict, "crawl job is already %s", crawl.Status)
	}

	failed := domain.CrawlStatusFailed
	message := cancelledMessage
	now := time.Now().UTC()
	updated, err := e.storage.UpdateCrawlJobByID(ctx, id, storage.CrawlJobUpdates{
		Status:       &failed,
		ErrorMessage: &message,
		CompletedAt:  &now,
	})
	if err != nil {
		return serrors.Wrap(serrors.ErrPersistence, err, "could not cancel crawl job")
	}
	if updated == nil {
		return serrors.With(serrors.ErrConflict, "crawl job finished before it could be cancelled")
	}
	metrics.CrawlsFinished.WithLabelValues(string(failed)).Inc()
	e.publisher.PublishLogged(ctx, notify.CrawlEvent(*updated))

	if crawl.QueueJobID != 0 {
		if err := e.storage.CancelQueued(ctx, crawl.QueueJobID); err != nil && !errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "could not cancel queued crawl",
				zap.String("crawl_job_id", id.String()),
				zap.Int64("queue_job_id", crawl.QueueJobID),
				zap.Error(err))
		}
	}

	logger.Info(ctx, "crawl cancelled", zap.String("crawl_job_id", id.String()))

	return nil
}
