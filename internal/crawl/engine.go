package crawl

import (
	"context"
	"errors"
	"net/url"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/logger"
	"seoaudit/pkg/metrics"
	"seoaudit/pkg/notify"
	"seoaudit/pkg/pagefetch"
	"seoaudit/pkg/serrors"
	"seoaudit/pkg/storage"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ProgressFunc observes every status or progress write of a running crawl.
type ProgressFunc func(ctx context.Context, crawl domain.CrawlJob)

// errStopped is returned when the crawl row refused a write because it already
// reached a terminal status, usually because the crawl was cancelled.
var errStopped = serrors.With(serrors.ErrConflict, "crawl job is no longer running") //nolint: gochecknoglobals

// Run executes a stored crawl. It is what the queue worker calls. A crawl that
// was cancelled before or during its traversal is not an error.
func (e *Engine) Run(ctx context.Context, id domain.CrawlJobID) error {
	_, err := e.Execute(ctx, id, nil)
	if errors.Is(err, errStopped) {
		return nil
	}

	return err
}

// Execute traverses the site of a crawl, analyzes the fetched pages and moves
// the crawl to completed. Any failure moves it to failed with the error
// message; pages fetched so far are kept.
func (e *Engine) Execute(ctx context.Context,
	id domain.CrawlJobID,
	onProgress ProgressFunc) (_ *domain.AnalysisSummary, err error) {
	crawl, err := e.storage.CrawlJobByID(ctx, id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrPersistence, err, "could not load crawl job")
	}
	if crawl == nil {
		return nil, serrors.With(serrors.ErrNotFound, "crawl job %s not found", id)
	}
	if crawl.Status.IsTerminal() {
		logger.Info(ctx, "crawl already finished", zap.String("crawl_job_id", id.String()))

		return nil, errStopped
	}
	if crawl.Status != domain.CrawlStatusCrawling || !crawl.StartedAt.IsZero() {
		return nil, serrors.With(serrors.ErrConflict, "crawl job %s is %s and cannot be run again", id, crawl.Status)
	}

	ctx = logger.WithFields(ctx,
		zap.String("crawl_job_id", id.String()),
		zap.String("project_id", crawl.ProjectID.String()))
	ctx, span := e.tracer.Start(ctx, "crawl.run", trace.WithAttributes(
		attribute.String("crawl_job_id", id.String()),
		attribute.String("start_url", crawl.StartURL)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if e.options.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.options.Deadline)
		defer cancel()
	}

	started := time.Now()
	summary, err := e.execute(ctx, crawl, onProgress)
	if err != nil {
		e.fail(ctx, crawl.ID, err, onProgress)

		return nil, err
	}
	metrics.CrawlDuration.Observe(time.Since(started).Seconds())
	span.SetAttributes(attribute.Int("audit.overall_score", summary.OverallScore))

	return summary, nil
}

func (e *Engine) execute(ctx context.Context,
	crawl *domain.CrawlJob,
	onProgress ProgressFunc) (*domain.AnalysisSummary, error) {
	now := time.Now().UTC()
	if _, err := e.update(ctx, crawl.ID, storage.CrawlJobUpdates{StartedAt: &now}, onProgress); err != nil {
		return nil, err
	}
	logger.Info(ctx, "crawl traversal started", zap.String("start_url", crawl.StartURL))

	crawled, err := e.traverse(ctx, crawl, onProgress)
	if err != nil {
		return nil, err
	}

	broken, err := e.storage.MarkBrokenLinks(ctx, crawl.ID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrPersistence, err, "could not mark broken links")
	}

	analyzing := domain.CrawlStatusAnalyzing
	if _, err := e.update(ctx, crawl.ID, storage.CrawlJobUpdates{Status: &analyzing}, onProgress); err != nil {
		return nil, err
	}
	logger.Info(ctx, "crawl traversal finished",
		zap.Int("pages_crawled", crawled),
		zap.Int64("broken_links", broken))

	summary, err := e.analyzer.Analyze(ctx, crawl.ID, crawl.ProjectID)
	if err != nil {
		return nil, err
	}

	completed := domain.CrawlStatusCompleted
	progress := 100
	now = time.Now().UTC()
	if _, err := e.update(context.WithoutCancel(ctx), crawl.ID, storage.CrawlJobUpdates{
		Status:      &completed,
		Progress:    &progress,
		CompletedAt: &now,
	}, onProgress); err != nil {
		return nil, err
	}
	metrics.CrawlsFinished.WithLabelValues(string(completed)).Inc()
	logger.Info(ctx, "crawl completed", zap.Int("overall_score", summary.OverallScore))

	return summary, nil
}

// update applies updates and notifies subscribers and onProgress. It returns
// errStopped when the crawl row is terminal.
func (e *Engine) update(ctx context.Context,
	id domain.CrawlJobID,
	updates storage.CrawlJobUpdates,
	onProgress ProgressFunc) (*domain.CrawlJob, error) {
	updated, err := e.storage.UpdateCrawlJobByID(ctx, id, updates)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrPersistence, err, "could not update crawl job")
	}
	if updated == nil {
		return nil, errStopped
	}

	e.publisher.PublishLogged(ctx, notify.CrawlEvent(*updated))
	if onProgress != nil {
		onProgress(ctx, *updated)
	}

	return updated, nil
}

// FailStale fails crawls that are still running long after they started. Their
// traversal was interrupted, usually by a process exit, and their queue job is
// never retried. It returns how many crawls were failed.
func (e *Engine) FailStale(ctx context.Context) (int, error) {
	if e.options.StaleAfter <= 0 {
		return 0, nil
	}

	stale, err := e.storage.StaleCrawlJobs(ctx, time.Now().Add(-e.options.StaleAfter), staleSweepBatch)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrPersistence, err, "could not list stale crawl jobs")
	}

	failed := domain.CrawlStatusFailed
	message := interruptedMessage
	var n int
	for _, c := range stale {
		now := time.Now().UTC()
		_, err := e.update(ctx, c.ID, storage.CrawlJobUpdates{
			Status:       &failed,
			ErrorMessage: &message,
			CompletedAt:  &now,
		}, nil)
		if errors.Is(err, errStopped) {
			continue
		}
		if err != nil {
			return n, err
		}

		n++
		metrics.CrawlsFinished.WithLabelValues(string(failed)).Inc()
		logger.Warn(ctx, "crawl interrupted",
			zap.String("crawl_job_id", c.ID.String()),
			zap.Time("started_at", c.StartedAt))
	}

	return n, nil
}

// fail records cause on the crawl row. Cancellation and deadlines get a fixed
// message since their error text is not meaningful to users.
func (e *Engine) fail(ctx context.Context, id domain.CrawlJobID, cause error, onProgress ProgressFunc) {
	if errors.Is(cause, errStopped) {
		logger.Info(ctx, "crawl stopped, it was finished elsewhere")

		return
	}

	message := cause.Error()
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded), errors.Is(cause, serrors.ErrTimeout):
		message = "crawl deadline exceeded"
	case ctx.Err() != nil:
		message = cancelledMessage
	}

	ctx = context.WithoutCancel(ctx)
	failed := domain.CrawlStatusFailed
	now := time.Now().UTC()
	if _, err := e.update(ctx, id, storage.CrawlJobUpdates{
		Status:       &failed,
		ErrorMessage: &message,
		CompletedAt:  &now,
	}, onProgress); err != nil {
		if !errors.Is(err, errStopped) {
			logger.Error(ctx, "could not mark crawl failed", zap.Error(err))
		}

		return
	}
	metrics.CrawlsFinished.WithLabelValues(string(failed)).Inc()
	logger.Warn(ctx, "crawl failed", zap.String("reason", message), zap.Error(cause))
}

type fetchResult struct {
	url  string
	page *pagefetch.Page
	err  error
	// paced is false when the fetch never started because pacing was interrupted.
	paced bool
}

// traverse runs the breadth-first traversal and returns the number of stored
// pages. It is the single owner of the frontier, the visited set and the
// counters; fetches run on up to Concurrency goroutines and report back here.
func (e *Engine) traverse(ctx context.Context, crawl *domain.CrawlJob, onProgress ProgressFunc) (int, error) {
	origin, err := url.Parse(crawl.StartURL)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrValidation, err, "invalid start URL")
	}

	budget := min(crawl.MaxPages, e.options.HardPageCap)
	limiter := rate.NewLimiter(rate.Inf, 1)
	if e.options.PacingDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(e.options.PacingDelay), 1)
	}

	var (
		frontier   = []string{crawl.StartURL}
		visited    = make(map[string]struct{})
		discovered = map[string]struct{}{crawl.StartURL: {}}
		results    = make(chan fetchResult, e.options.Concurrency)
		inFlight   int
		crawled    int
		stopErr    error
	)

	for {
		// reserve budget before each fetch so failed fetches can give it back
		for stopErr == nil && inFlight < e.options.Concurrency && crawled+inFlight < budget && len(frontier) > 0 {
			if err := ctx.Err(); err != nil {
				stopErr = err

				break
			}

			next := frontier[0]
			frontier = frontier[1:]
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}

			inFlight++
			go func(target string) {
				results <- e.fetch(ctx, limiter, target)
			}(next)
		}

		if inFlight == 0 {
			break
		}

		res := <-results
		inFlight--

		switch {
		case !res.paced:
			if stopErr == nil {
				stopErr = ctx.Err()
			}
			if stopErr == nil {
				stopErr = serrors.Wrap(serrors.ErrTimeout, res.err, "crawl deadline reached")
			}
		case res.err != nil:
			metrics.FetchFailures.Inc()
			logger.Warn(ctx, "could not fetch page", zap.String("url", res.url), zap.Error(res.err))
		case stopErr != nil:
			// draining; a stopped crawl stores nothing more
		default:
			page, links, follow := DerivePage(origin, crawl.ID, res.page, e.options.ExternalLinkCap)
			if _, err := e.storage.StoreCrawledPage(ctx, page, links); err != nil {
				stopErr = serrors.Wrap(serrors.ErrPersistence, err, "could not store page %s", page.URL)

				continue
			}
			metrics.PagesFetched.WithLabelValues(metrics.StatusClass(page.StatusCode)).Inc()
			crawled++

			for _, target := range follow {
				discovered[target] = struct{}{}
				if _, seen := visited[target]; !seen && len(frontier) < budget {
					frontier = append(frontier, target)
				}
			}

			progress := crawled * crawlingProgressCap / budget
			pagesDiscovered := len(discovered)
			if _, err := e.update(ctx, crawl.ID, storage.CrawlJobUpdates{
				Progress:        &progress,
				PagesCrawled:    &crawled,
				PagesDiscovered: &pagesDiscovered,
			}, onProgress); err != nil {
				stopErr = err
			}
		}
	}

	if stopErr != nil {
		return crawled, stopErr
	}

	return crawled, nil
}

func (e *Engine) fetch(ctx context.Context, limiter *rate.Limiter, target string) fetchResult {
	if err := limiter.Wait(ctx); err != nil {
		return fetchResult{url: target, err: err}
	}

	page, err := e.fetcher.Fetch(ctx, target)

	return fetchResult{url: target, page: page, err: err, paced: true}
}
