// Package memory provides an in-memory storage.Storage used by tests and by
// local one-off audits. It mirrors the semantics of the PostgreSQL backend:
// monotonic counters, guarded status transitions, unique page URLs per crawl
// and rollback of failed transactions.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"seoaudit/pkg/domain"
	"seoaudit/pkg/serrors"
	"seoaudit/pkg/storage"

	"github.com/riverqueue/river"
)

// QueuedTask is a task recorded by Enqueue.
type QueuedTask struct {
	ID   int64
	Args river.JobArgs
	Opts *river.InsertOpts
}

type pageKey struct {
	crawl domain.CrawlJobID
	url   string
}

type state struct {
	accounts  map[domain.AccountID]domain.Account
	jobs      map[domain.JobID]domain.Job
	jobOrder  []domain.JobID
	crawls    map[domain.CrawlJobID]domain.CrawlJob
	crawlList []domain.CrawlJobID
	pages     []domain.CrawledPage
	pageKeys  map[pageKey]struct{}
	links     map[domain.PageID][]domain.Link
	scores    map[domain.CrawlJobID]domain.AuditScore
	issues    []domain.PageIssue
	recs      []domain.Recommendation
	queue     []QueuedTask
	queueSeq  int64
	cancelled []int64
}

func newState() *state {
	return &state{
		accounts: make(map[domain.AccountID]domain.Account),
		jobs:     make(map[domain.JobID]domain.Job),
		crawls:   make(map[domain.CrawlJobID]domain.CrawlJob),
		pageKeys: make(map[pageKey]struct{}),
		links:    make(map[domain.PageID][]domain.Link),
		scores:   make(map[domain.CrawlJobID]domain.AuditScore),
	}
}

// clone copies the state deep enough for rollback: rows are values, so copying
// the containers is sufficient.
func (s *state) clone() *state {
	links := make(map[domain.PageID][]domain.Link, len(s.links))
	for k, v := range s.links {
		links[k] = slices.Clone(v)
	}

	return &state{
		accounts:  maps.Clone(s.accounts),
		jobs:      maps.Clone(s.jobs),
		jobOrder:  slices.Clone(s.jobOrder),
		crawls:    maps.Clone(s.crawls),
		crawlList: slices.Clone(s.crawlList),
		pages:     slices.Clone(s.pages),
		pageKeys:  maps.Clone(s.pageKeys),
		links:     links,
		scores:    maps.Clone(s.scores),
		issues:    slices.Clone(s.issues),
		recs:      slices.Clone(s.recs),
		queue:     slices.Clone(s.queue),
		queueSeq:  s.queueSeq,
		cancelled: slices.Clone(s.cancelled),
	}
}

// Store is a mutex-guarded in-memory storage.
type Store struct {
	mu sync.RWMutex
	st *state

	// txMu serializes transactions; a failed transaction restores the
	// snapshot taken when it began.
	txMu sync.Mutex
}

var _ storage.Storage = (*Store)(nil)

// New returns an empty Store.
func New() *Store {
	return &Store{st: newState()}
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

// Begin starts a transaction. Other transactions block until it is committed
// or rolled back.
func (s *Store) Begin(_ context.Context) (storage.TxStorage, error) {
	s.txMu.Lock()

	s.mu.RLock()
	snapshot := s.st.clone()
	s.mu.RUnlock()

	return &tx{Store: s, snapshot: snapshot}, nil
}

// WithTx runs cb in a transaction and rolls every change back when cb fails.
func (s *Store) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	t, err := s.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(t); err != nil {
		_ = t.Rollback()

		return err
	}

	return t.Commit()
}

// Queued returns the tasks enqueued so far.
func (s *Store) Queued() []QueuedTask {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.st.queue)
}

func (s *Store) Enqueue(_ context.Context, args river.JobArgs, opts *river.InsertOpts) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st.queueSeq++
	s.st.queue = append(s.st.queue, QueuedTask{ID: s.st.queueSeq, Args: args, Opts: opts})

	return s.st.queueSeq, nil
}

// Cancelled returns the ids passed to CancelQueued.
func (s *Store) Cancelled() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.st.cancelled)
}

func (s *Store) CancelQueued(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id <= 0 || id > s.st.queueSeq {
		return serrors.With(serrors.ErrNotFound, "queued task %d not found", id)
	}
	s.st.cancelled = append(s.st.cancelled, id)

	return nil
}

type tx struct {
	*Store

	snapshot *state
	done     bool
}

func (t *tx) Commit() error {
	if t.done {
		return storage.ErrNotInTx
	}
	t.done = true
	t.txMu.Unlock()

	return nil
}

func (t *tx) Rollback() error {
	if t.done {
		return storage.ErrNotInTx
	}
	t.done = true

	t.mu.Lock()
	t.st = t.snapshot
	t.mu.Unlock()
	t.txMu.Unlock()

	return nil
}

// Begin on a transaction fails like the PostgreSQL backend does.
func (t *tx) Begin(_ context.Context) (storage.TxStorage, error) {
	return nil, storage.ErrAlreadyInTx
}

// WithTx on a transaction joins it.
func (t *tx) WithTx(_ context.Context, cb func(storage storage.AllStorage) error) error {
	return cb(t)
}
