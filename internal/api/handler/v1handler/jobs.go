package v1handler

import (
	"encoding/json"
	"net/http"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/serrors"
	"seoaudit/pkg/storage"
	"slices"
)

// CreateJobRequest is the body of POST /jobs. Input is handed to the job
// handler as is.
type CreateJobRequest struct {
	JobType domain.JobType  `json:"job_type" validate:"required"`
	Input   json.RawMessage `json:"input"`
}

// CreateJob stores and queues a job.
func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req CreateJobRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	job, err := h.deps.Jobs.Create(r.Context(), GetAccountIDFromContext(r.Context()), req.JobType, req.Input)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeData(r.Context(), w, http.StatusAccepted, job)
}

// ListJobs returns a page of the account's jobs, optionally filtered by status
// and type.
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := pageParams(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	filter := storage.JobFilter{
		Status: domain.JobStatus(r.URL.Query().Get("status")),
		Type:   domain.JobType(r.URL.Query().Get("job_type")),
	}
	if filter.Status != "" && !slices.Contains(jobStatuses, filter.Status) {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "unknown status %q", filter.Status))

		return
	}
	if filter.Type != "" && !slices.Contains(domain.JobTypes, filter.Type) {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "unknown job_type %q", filter.Type))

		return
	}

	jobs, next, err := h.deps.Jobs.AccountJobs(r.Context(), GetAccountIDFromContext(r.Context()), filter, cursor, limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}

	writeData(r.Context(), w, http.StatusOK, Page[domain.Job]{Items: jobs, NextCursor: next})
}

var jobStatuses = []domain.JobStatus{ //nolint: gochecknoglobals
	domain.JobStatusPending,
	domain.JobStatusProcessing,
	domain.JobStatusCompleted,
	domain.JobStatusFailed,
	domain.JobStatusCancelled,
}

func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	job, err := h.deps.Jobs.Job(r.Context(), GetAccountIDFromContext(r.Context()), domain.JobID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeData(r.Context(), w, http.StatusOK, job)
}

// CancelJob cancels a job that has not finished yet.
func (h *Handler) CancelJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	job, err := h.deps.Jobs.Cancel(r.Context(), GetAccountIDFromContext(r.Context()), domain.JobID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeData(r.Context(), w, http.StatusOK, job)
}
