package v1handler

import (
	"net/http"
	"seoaudit/internal/crawl"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// StartCrawlRequest is the body of POST /projects/{projectID}/crawls.
type StartCrawlRequest struct {
	Domain   string `json:"domain" validate:"required,max=2048"`
	MaxPages int    `json:"max_pages" validate:"required,min=1"`
}

// StartCrawlResponse identifies a queued crawl.
type StartCrawlResponse struct {
	CrawlJobID domain.CrawlJobID  `json:"crawl_job_id"`
	Status     domain.CrawlStatus `json:"status"`
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name)
	}

	return id, nil
}

// StartCrawl queues a crawl of a project's domain.
func (h *Handler) StartCrawl(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	var req StartCrawlRequest
	if err = decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Crawler.StartCrawl(r.Context(), crawl.StartRequest{
		AccountID: GetAccountIDFromContext(r.Context()),
		ProjectID: domain.ProjectID(projectID),
		Domain:    req.Domain,
		MaxPages:  req.MaxPages,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeData(r.Context(), w, http.StatusAccepted, StartCrawlResponse{CrawlJobID: c.ID, Status: c.Status})
}

// ListCrawls returns a page of a project's crawls, newest first.
func (h *Handler) ListCrawls(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuidParam(r, "projectID")
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	cursor, limit, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	crawls, next, err := h.deps.Crawler.ProjectCrawls(r.Context(),
		GetAccountIDFromContext(r.Context()),
		domain.ProjectID(projectID),
		cursor,
		limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if crawls == nil {
		crawls = []domain.CrawlJob{}
	}

	writeData(r.Context(), w, http.StatusOK, Page[domain.CrawlJob]{Items: crawls, NextCursor: next})
}

func (h *Handler) GetCrawl(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Crawler.Crawl(r.Context(), GetAccountIDFromContext(r.Context()), domain.CrawlJobID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeData(r.Context(), w, http.StatusOK, c)
}

func (h *Handler) ListPages(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	pages, err := h.deps.Crawler.Pages(r.Context(), GetAccountIDFromContext(r.Context()), domain.CrawlJobID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if pages == nil {
		pages = []domain.CrawledPage{}
	}

	writeData(r.Context(), w, http.StatusOK, pages)
}

// GetAudit returns the score, issues and recommendations of an analyzed crawl.
func (h *Handler) GetAudit(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	report, err := h.deps.Crawler.Audit(r.Context(), GetAccountIDFromContext(r.Context()), domain.CrawlJobID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeData(r.Context(), w, http.StatusOK, report)
}

// CancelCrawl fails a running crawl and returns its final row.
func (h *Handler) CancelCrawl(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	accountID := GetAccountIDFromContext(r.Context())
	if err = h.deps.Crawler.Cancel(r.Context(), accountID, domain.CrawlJobID(id)); err != nil {
		h.writeError(w, r, err)

		return
	}

	c, err := h.deps.Crawler.Crawl(r.Context(), accountID, domain.CrawlJobID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeData(r.Context(), w, http.StatusOK, c)
}
