package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JobID uniquely identifies a generic background job.
type JobID uuid.UUID

// String returns the canonical textual form of the id.
func (id JobID) String() string { return uuid.UUID(id).String() }

// JobType selects the handler that executes a job.
type JobType string

const (
	JobTypeCrawl              JobType = "crawl"
	JobTypeKeywordResearch    JobType = "keyword_research"
	JobTypeKeywordClustering  JobType = "keyword_clustering"
	JobTypeCompetitorAnalysis JobType = "competitor_analysis"
	JobTypeSERPTracking       JobType = "serp_tracking"
	JobTypeBulkAnalysis       JobType = "bulk_analysis"
)

// JobTypes lists every job type known to the system.
var JobTypes = []JobType{ //nolint: gochecknoglobals
	JobTypeCrawl,
	JobTypeKeywordResearch,
	JobTypeKeywordClustering,
	JobTypeCompetitorAnalysis,
	JobTypeSERPTracking,
	JobTypeBulkAnalysis,
}

// JobStatus represents the lifecycle state of a job.
type JobStatus string

const (
	// JobStatusPending indicates the job was created and waits for a worker.
	JobStatusPending JobStatus = "pending"
	// JobStatusProcessing indicates a worker claimed the job and runs its handler.
	JobStatusProcessing JobStatus = "processing"
	// JobStatusCompleted indicates the handler succeeded; ResultData is set.
	JobStatusCompleted JobStatus = "completed"
	// JobStatusFailed indicates the handler failed; ErrorMessage is set.
	JobStatusFailed JobStatus = "failed"
	// JobStatusCancelled indicates the job was cancelled before it could finish.
	JobStatusCancelled JobStatus = "cancelled"
)

// IsTerminal reports whether no further transition is possible from s.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed || s == JobStatusCancelled
}

// Job is a generic unit of deferred work.
//
// Progress never decreases while the job is processing and never exceeds
// TotalItems. ResultData and ErrorMessage are mutually exclusive and both stay
// empty until a terminal status is reached.
type Job struct {
	ID        JobID     `json:"id"`
	AccountID AccountID `json:"accountId"`
	Type      JobType   `json:"jobType"`
	Status    JobStatus `json:"status"`

	Progress   int `json:"progress"`
	TotalItems int `json:"totalItems"`

	InputData    json.RawMessage `json:"inputData,omitempty"`
	ResultData   json.RawMessage `json:"resultData,omitempty"`
	ErrorMessage string          `json:"errorMessage,omitempty"`

	// QueueJobID is the id of the queue task executing this job, if any.
	QueueJobID int64 `json:"-"`

	CreatedAt   time.Time `json:"createdAt"`
	StartedAt   time.Time `json:"startedAt,omitzero"`
	CompletedAt time.Time `json:"completedAt,omitzero"`
}

// BatchItemResult is the outcome of one item of a batch job.
type BatchItemResult struct {
	Item    json.RawMessage `json:"item"`
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
}

// BatchResult is the result payload of a batch job. A batch completes even when
// some of its items failed.
type BatchResult struct {
	Total      int               `json:"total"`
	Successful int               `json:"successful"`
	Failed     int               `json:"failed"`
	Items      []BatchItemResult `json:"items"`
}
