// Package v1handler implements the version 1 HTTP API: crawls, generic jobs
// and their progress stream. Every response uses the same envelope,
// {"success":true,"data":...} or {"success":false,"error":...,"code":...}.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"seoaudit/internal/crawl"
	"seoaudit/internal/orchestrator"
	"seoaudit/pkg/logger"
	"seoaudit/pkg/notify"
	"seoaudit/pkg/serrors"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	// DefaultLimit is the page size of listings when none is requested.
	DefaultLimit = 20
	// MaxLimit bounds the page size of listings.
	MaxLimit = 100

	maxBodyBytes = 1 << 20
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint: gochecknoglobals

// EventSource streams row-change events. *notify.Publisher implements it.
type EventSource interface {
	Subscribe(ctx context.Context, table, id string) (<-chan notify.Event, func(), error)
}

// Deps are the services behind the v1 routes.
type Deps struct {
	Crawler crawl.Crawler
	Jobs    orchestrator.Jobs
	Events  EventSource
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers the request/response v1 routes on r.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/projects/{projectID}/crawls", func(r chi.Router) {
		r.Post("/", h.StartCrawl)
		r.Get("/", h.ListCrawls)
	})
	r.Route("/crawls/{id}", func(r chi.Router) {
		r.Get("/", h.GetCrawl)
		r.Get("/pages", h.ListPages)
		r.Get("/audit", h.GetAudit)
		r.Post("/cancel", h.CancelCrawl)
	})
	r.Route("/jobs", func(r chi.Router) {
		r.Post("/", h.CreateJob)
		r.Get("/", h.ListJobs)
		r.Get("/{id}", h.GetJob)
		r.Post("/{id}/cancel", h.CancelJob)
	})
}

// StreamRoutes registers the long-lived streaming routes on r. They must not
// be mounted behind a request timeout.
func (h *Handler) StreamRoutes(r chi.Router) {
	r.Get("/events/{table}/{id}", h.StreamEvents)
}

// Envelope is the body of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// ErrorResponse is an error rendered for the client.
type ErrorResponse struct {
	StatusCode int
	Response   Envelope
}

// Page is a cursor-paginated listing.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}

var statusByKind = []struct { //nolint: gochecknoglobals
	kind    serrors.Kind
	status  int
	message string
}{
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrNoPagesFound, http.StatusNotFound, "no pages found"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrForbidden, http.StatusForbidden, "forbidden"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrUnsupportedJobType, http.StatusBadRequest, "unsupported job type"},
	{serrors.ErrValidation, http.StatusUnprocessableEntity, "invalid input"},
	{serrors.ErrInsufficientCredits, http.StatusPaymentRequired, "insufficient credits"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrRateLimited, http.StatusTooManyRequests, "too many requests"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
	{serrors.ErrFetchFailed, http.StatusServiceUnavailable, "could not fetch page"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "timed out"},
}

// NewError maps err to a status code and a client-safe message. The outermost
// kind of err decides the status. Errors of an unknown kind are logged and
// reported as internal errors without details.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	var (
		kind    serrors.Kind
		message string
	)
	var se *serrors.Error
	if errors.As(err, &se) {
		kind, message = se.Kind(), se.Message()
	} else {
		_ = errors.As(err, &kind)
	}

	for _, m := range statusByKind {
		if kind != m.kind {
			continue
		}
		if message == "" {
			message = m.message
		}
		logger.Debug(ctx, "request failed", zap.Error(err))

		return &ErrorResponse{
			StatusCode: m.status,
			Response:   Envelope{Message: message, Code: m.kind.Error()},
		}
	}

	logger.Error(ctx, "request failed with internal error", zap.Error(err))

	return &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Response:   Envelope{Message: "internal error", Code: serrors.ErrInternal.Error()},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, res.Response)
}

func writeData(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, Envelope{Success: true, Data: data})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if err := validate.Struct(v); err != nil {
		return serrors.With(serrors.ErrValidation, "invalid request: %s", err)
	}

	return nil
}

// pageParams reads the cursor and limit query parameters.
func pageParams(r *http.Request) (string, uint, error) {
	limit := uint(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || n == 0 || n > MaxLimit {
			return "", 0, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit)
		}
		limit = uint(n)
	}

	return r.URL.Query().Get("cursor"), limit, nil
}
