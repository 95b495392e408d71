package domain

import (
	"time"

	"github.com/google/uuid"
)

// IssueCategory groups page issues by the score they affect.
type IssueCategory string

const (
	CategoryTechnical   IssueCategory = "technical"
	CategoryOnPage      IssueCategory = "on-page"
	CategoryContent     IssueCategory = "content"
	CategoryPerformance IssueCategory = "performance"
	CategoryMobile      IssueCategory = "mobile"
)

// Severity ranks an issue by urgency.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// PageIssue is one defect detected on one page.
type PageIssue struct {
	ID         uuid.UUID  `json:"id"`
	PageID     PageID     `json:"pageId"`
	CrawlJobID CrawlJobID `json:"crawlJobId"`
	PageURL    string     `json:"pageUrl,omitempty"`

	IssueType       string        `json:"issueType"`
	Category        IssueCategory `json:"category"`
	Severity        Severity      `json:"severity"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Recommendation  string        `json:"recommendation"`
	AffectedElement string        `json:"affectedElement,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// CategoryScore is the score and weight of one category in the overall score.
type CategoryScore struct {
	Score  int     `json:"score"`
	Weight float64 `json:"weight"`
}

// AuditScore is the scoring snapshot of one crawl. There is exactly one per crawl.
type AuditScore struct {
	ID         uuid.UUID  `json:"id"`
	CrawlJobID CrawlJobID `json:"crawlJobId"`
	ProjectID  ProjectID  `json:"projectId"`

	OverallScore     int `json:"overallScore"`
	TechnicalScore   int `json:"technicalScore"`
	OnPageScore      int `json:"onpageScore"`
	ContentScore     int `json:"contentScore"`
	PerformanceScore int `json:"performanceScore"`
	MobileScore      int `json:"mobileScore"`

	TotalIssues    int `json:"totalIssues"`
	CriticalIssues int `json:"criticalIssues"`
	HighIssues     int `json:"highIssues"`
	MediumIssues   int `json:"mediumIssues"`
	LowIssues      int `json:"lowIssues"`
	PagesAnalyzed  int `json:"pagesAnalyzed"`

	ScoreBreakdown map[IssueCategory]CategoryScore `json:"scoreBreakdown"`

	CreatedAt time.Time `json:"createdAt"`
}

// Priority is the tier of a recommendation.
type Priority string

const (
	PriorityQuickWin   Priority = "quick-win"
	PriorityHighImpact Priority = "high-impact"
	PriorityLongTerm   Priority = "long-term"
)

// Recommendation is an aggregated action derived from issue patterns, such as
// "32 pages missing title tags".
type Recommendation struct {
	ID         uuid.UUID  `json:"id"`
	CrawlJobID CrawlJobID `json:"crawlJobId"`
	ProjectID  ProjectID  `json:"projectId"`

	Priority             Priority      `json:"priority"`
	Category             IssueCategory `json:"category"`
	Title                string        `json:"title"`
	Description          string        `json:"description"`
	Impact               string        `json:"impact"`
	Effort               string        `json:"effort"`
	AffectedPagesCount   int           `json:"affectedPagesCount"`
	EstimatedImprovement string        `json:"estimatedImprovement"`
	ImplementationGuide  string        `json:"implementationGuide"`

	CreatedAt time.Time `json:"createdAt"`
}

// AnalysisSummary is what an analysis run returns to its caller.
type AnalysisSummary struct {
	OverallScore  int `json:"overallScore"`
	TotalIssues   int `json:"totalIssues"`
	PagesAnalyzed int `json:"pagesAnalyzed"`
}

// AuditReport bundles the analysis results of one crawl.
type AuditReport struct {
	Score           *AuditScore      `json:"score"`
	Issues          []PageIssue      `json:"issues"`
	Recommendations []Recommendation `json:"recommendations"`
}
