package v1handler

import (
	"errors"
	"fmt"
	"net/http"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/logger"
	"seoaudit/pkg/notify"
	"seoaudit/pkg/serrors"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	heartbeatInterval = 15 * time.Second
	writeDeadline     = 30 * time.Second
)

// StreamEvents streams the progress of one job or crawl as server-sent
// events. The first event is a snapshot of the row; the stream ends after an
// event with a terminal status.
func (h *Handler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	table := chi.URLParam(r, "table")
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if h.deps.Events == nil {
		h.writeError(w, r, serrors.With(serrors.ErrUnavailable, "event stream is not configured"))

		return
	}

	accountID := GetAccountIDFromContext(ctx)
	snapshot, err := h.snapshot(r, table, accountID, id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var events <-chan notify.Event
	if !isTerminal(snapshot) {
		var unsubscribe func()
		events, unsubscribe, err = h.deps.Events.Subscribe(ctx, table, id.String())
		if err != nil {
			h.writeError(w, r, serrors.Wrap(serrors.ErrUnavailable, err, "could not subscribe to events"))

			return
		}
		defer unsubscribe()

		// the row may have changed before the subscription was confirmed
		if snapshot, err = h.snapshot(r, table, accountID, id); err != nil {
			h.writeError(w, r, err)

			return
		}
	}

	rc := http.NewResponseController(w)
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	send := func(write func() error) bool {
		if err := rc.SetWriteDeadline(time.Now().Add(writeDeadline)); err != nil &&
			!errors.Is(err, http.ErrNotSupported) {
			return false
		}
		if err := write(); err != nil {
			logger.Debug(ctx, "event stream closed", zap.Error(err))

			return false
		}

		return rc.Flush() == nil
	}
	sendEvent := func(ev notify.Event) bool {
		return send(func() error {
			b, err := ev.MarshalJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", table, b)

			return err
		})
	}

	if !sendEvent(snapshot) || isTerminal(snapshot) {
		return
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			if !send(func() error {
				_, err := fmt.Fprint(w, ": ping\n\n")

				return err
			}) {
				return
			}
		case ev, ok := <-events:
			if !ok || !sendEvent(ev) || isTerminal(ev) {
				return
			}
		}
	}
}

// snapshot reads the current state of the row, checking that it belongs to
// accountID.
func (h *Handler) snapshot(r *http.Request, table string, accountID domain.AccountID, id uuid.UUID) (notify.Event, error) {
	switch table {
	case notify.TableJobs:
		job, err := h.deps.Jobs.Job(r.Context(), accountID, domain.JobID(id))
		if err != nil {
			return notify.Event{}, err
		}

		return notify.JobEvent(*job), nil
	case notify.TableCrawlJobs:
		c, err := h.deps.Crawler.Crawl(r.Context(), accountID, domain.CrawlJobID(id))
		if err != nil {
			return notify.Event{}, err
		}

		return notify.CrawlEvent(*c), nil
	default:
		return notify.Event{}, serrors.With(serrors.ErrNotFound, "unknown table %q", table)
	}
}

func isTerminal(ev notify.Event) bool {
	if ev.Table == notify.TableJobs {
		return domain.JobStatus(ev.Status).IsTerminal()
	}

	return domain.CrawlStatus(ev.Status).IsTerminal()
}
