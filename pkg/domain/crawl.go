package domain

import (
	"time"

	"github.com/google/uuid"
)

// CrawlJobID uniquely identifies a website crawl.
type CrawlJobID uuid.UUID

// String returns the canonical textual form of the id.
func (id CrawlJobID) String() string { return uuid.UUID(id).String() }

// PageID uniquely identifies a crawled page.
type PageID uuid.UUID

// String returns the canonical textual form of the id.
func (id PageID) String() string { return uuid.UUID(id).String() }

// CrawlStatus represents the lifecycle state of a crawl.
// It only moves forward: crawling -> analyzing -> completed, and failed can be
// reached from any non-terminal state.
type CrawlStatus string

const (
	CrawlStatusCrawling  CrawlStatus = "crawling"
	CrawlStatusAnalyzing CrawlStatus = "analyzing"
	CrawlStatusCompleted CrawlStatus = "completed"
	CrawlStatusFailed    CrawlStatus = "failed"
)

// IsTerminal reports whether no further transition is possible from s.
func (s CrawlStatus) IsTerminal() bool {
	return s == CrawlStatusCompleted || s == CrawlStatusFailed
}

// CanTransition reports whether a crawl may move from s to next.
func (s CrawlStatus) CanTransition(next CrawlStatus) bool {
	if s.IsTerminal() {
		return false
	}

	switch next {
	case CrawlStatusFailed:
		return true
	case CrawlStatusAnalyzing:
		return s == CrawlStatusCrawling
	case CrawlStatusCompleted:
		return s == CrawlStatusAnalyzing
	default:
		return false
	}
}

// CrawlJob tracks one website crawl and its analysis.
type CrawlJob struct {
	ID        CrawlJobID  `json:"id"`
	AccountID AccountID   `json:"accountId"`
	ProjectID ProjectID   `json:"projectId"`
	StartURL  string      `json:"startUrl"`
	Status    CrawlStatus `json:"status"`

	MaxPages int `json:"maxPages"`
	// Progress is a percentage. Crawling reports at most 90, the last 10 are
	// reserved for the analysis.
	Progress        int `json:"progress"`
	PagesCrawled    int `json:"pagesCrawled"`
	PagesDiscovered int `json:"pagesDiscovered"`

	ErrorMessage string `json:"errorMessage,omitempty"`
	QueueJobID   int64  `json:"-"`

	CreatedAt   time.Time `json:"createdAt"`
	StartedAt   time.Time `json:"startedAt,omitzero"`
	CompletedAt time.Time `json:"completedAt,omitzero"`
}

// CrawledPage is one fetched URL within a crawl. Pages are created once per
// unique URL and never mutated afterwards.
type CrawledPage struct {
	ID         PageID     `json:"id"`
	CrawlJobID CrawlJobID `json:"crawlJobId"`

	URL             string `json:"url"`
	StatusCode      int    `json:"statusCode"`
	Title           string `json:"title"`
	MetaDescription string `json:"metaDescription"`
	H1              string `json:"h1"`
	Content         string `json:"-"`
	WordCount       int    `json:"wordCount"`
	LoadTimeMS      int64  `json:"loadTimeMs"`

	InternalLinksCount int `json:"internalLinksCount"`
	ExternalLinksCount int `json:"externalLinksCount"`
	ImagesCount        int `json:"imagesCount"`
	ImagesWithoutAlt   int `json:"imagesWithoutAlt"`
	HTMLSizeBytes      int `json:"htmlSizeBytes"`

	HasCanonical    bool   `json:"hasCanonical"`
	CanonicalURL    string `json:"canonicalUrl,omitempty"`
	MetaRobots      string `json:"metaRobots,omitempty"`
	HasSchemaMarkup bool   `json:"hasSchemaMarkup"`

	CreatedAt time.Time `json:"createdAt"`
}

// LinkKind tells whether a link stays on the crawled site.
type LinkKind string

const (
	LinkKindInternal LinkKind = "internal"
	LinkKindExternal LinkKind = "external"
)

// Link is an outbound link found on a crawled page.
type Link struct {
	PageID     PageID   `json:"pageId"`
	Kind       LinkKind `json:"kind"`
	TargetURL  string   `json:"targetUrl"`
	AnchorText string   `json:"anchorText,omitempty"`
	IsBroken   bool     `json:"isBroken"`
}
