package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"seoaudit/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgAccount struct {
	ID        uuid.UUID `db:"id"`
	Plan      string    `db:"plan"`
	Metered   bool      `db:"metered"`
	Credits   int64     `db:"credits"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgAccount) ToDomain() *domain.Account {
	return &domain.Account{
		ID:        domain.AccountID(p.ID),
		Plan:      p.Plan,
		Metered:   p.Metered,
		Credits:   p.Credits,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgAccount) FromDomain(a domain.Account) {
	*p = PgAccount{
		ID:      uuid.UUID(a.ID),
		Plan:    a.Plan,
		Metered: a.Metered,
		Credits: a.Credits,
	}
}

type PgJob struct {
	ID         uuid.UUID `db:"id"`
	AccountID  uuid.UUID `db:"account_id"`
	JobType    string    `db:"job_type"`
	Status     string    `db:"status"`
	Progress   int       `db:"progress"`
	TotalItems int       `db:"total_items"`

	InputData    json.RawMessage `db:"input_data"`
	ResultData   json.RawMessage `db:"result_data"   goqu:"skipinsert"`
	ErrorMessage sql.NullString  `db:"error_message" goqu:"skipinsert"`
	QueueJobID   sql.NullInt64   `db:"queue_job_id"`

	CreatedAt   time.Time    `db:"created_at"   goqu:"skipinsert"`
	StartedAt   sql.NullTime `db:"started_at"   goqu:"skipinsert"`
	CompletedAt sql.NullTime `db:"completed_at" goqu:"skipinsert"`
}

func (p *PgJob) ToDomain() *domain.Job {
	return &domain.Job{
		ID:           domain.JobID(p.ID),
		AccountID:    domain.AccountID(p.AccountID),
		Type:         domain.JobType(p.JobType),
		Status:       domain.JobStatus(p.Status),
		Progress:     p.Progress,
		TotalItems:   p.TotalItems,
		InputData:    p.InputData,
		ResultData:   p.ResultData,
		ErrorMessage: p.ErrorMessage.String,
		QueueJobID:   p.QueueJobID.Int64,
		CreatedAt:    p.CreatedAt,
		StartedAt:    p.StartedAt.Time,
		CompletedAt:  p.CompletedAt.Time,
	}
}

func (p *PgJob) FromDomain(job domain.Job) {
	input := job.InputData
	if len(input) == 0 {
		input = json.RawMessage(`{}`)
	}

	*p = PgJob{
		ID:         uuid.UUID(job.ID),
		AccountID:  uuid.UUID(job.AccountID),
		JobType:    string(job.Type),
		Status:     string(job.Status),
		Progress:   job.Progress,
		TotalItems: job.TotalItems,
		InputData:  input,
		QueueJobID: sql.NullInt64{Int64: job.QueueJobID, Valid: job.QueueJobID != 0},
	}
}

type PgCrawlJob struct {
	ID              uuid.UUID `db:"id"`
	AccountID       uuid.UUID `db:"account_id"`
	ProjectID       uuid.UUID `db:"project_id"`
	StartURL        string    `db:"start_url"`
	Status          string    `db:"status"`
	MaxPages        int       `db:"max_pages"`
	Progress        int       `db:"progress"`
	PagesCrawled    int       `db:"pages_crawled"`
	PagesDiscovered int       `db:"pages_discovered"`

	ErrorMessage sql.NullString `db:"error_message" goqu:"skipinsert"`
	QueueJobID   sql.NullInt64  `db:"queue_job_id"`

	CreatedAt   time.Time    `db:"created_at"   goqu:"skipinsert"`
	StartedAt   sql.NullTime `db:"started_at"`
	CompletedAt sql.NullTime `db:"completed_at" goqu:"skipinsert"`
}

func (p *PgCrawlJob) ToDomain() *domain.CrawlJob {
	return &domain.CrawlJob{
		ID:              domain.CrawlJobID(p.ID),
		AccountID:       domain.AccountID(p.AccountID),
		ProjectID:       domain.ProjectID(p.ProjectID),
		StartURL:        p.StartURL,
		Status:          domain.CrawlStatus(p.Status),
		MaxPages:        p.MaxPages,
		Progress:        p.Progress,
		PagesCrawled:    p.PagesCrawled,
		PagesDiscovered: p.PagesDiscovered,
		ErrorMessage:    p.ErrorMessage.String,
		QueueJobID:      p.QueueJobID.Int64,
		CreatedAt:       p.CreatedAt,
		StartedAt:       p.StartedAt.Time,
		CompletedAt:     p.CompletedAt.Time,
	}
}

func (p *PgCrawlJob) FromDomain(c domain.CrawlJob) {
	*p = PgCrawlJob{
		ID:              uuid.UUID(c.ID),
		AccountID:       uuid.UUID(c.AccountID),
		ProjectID:       uuid.UUID(c.ProjectID),
		StartURL:        c.StartURL,
		Status:          string(c.Status),
		MaxPages:        c.MaxPages,
		Progress:        c.Progress,
		PagesCrawled:    c.PagesCrawled,
		PagesDiscovered: c.PagesDiscovered,
		QueueJobID:      sql.NullInt64{Int64: c.QueueJobID, Valid: c.QueueJobID != 0},
		StartedAt:       sql.NullTime{Time: c.StartedAt, Valid: !c.StartedAt.IsZero()},
	}
}

type PgCrawledPage struct {
	ID         uuid.UUID `db:"id"`
	CrawlJobID uuid.UUID `db:"crawl_job_id"`

	URL             string `db:"url"`
	StatusCode      int    `db:"status_code"`
	Title           string `db:"title"`
	MetaDescription string `db:"meta_description"`
	H1              string `db:"h1"`
	Content         string `db:"content"`
	WordCount       int    `db:"word_count"`
	LoadTimeMS      int64  `db:"load_time_ms"`

	InternalLinksCount int `db:"internal_links_count"`
	ExternalLinksCount int `db:"external_links_count"`
	ImagesCount        int `db:"images_count"`
	ImagesWithoutAlt   int `db:"images_without_alt"`
	HTMLSizeBytes      int `db:"html_size_bytes"`

	HasCanonical    bool           `db:"has_canonical"`
	CanonicalURL    sql.NullString `db:"canonical_url"`
	MetaRobots      sql.NullString `db:"meta_robots"`
	HasSchemaMarkup bool           `db:"has_schema_markup"`

	Seq       int64     `db:"seq"        goqu:"skipinsert"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgCrawledPage) ToDomain() *domain.CrawledPage {
	return &domain.CrawledPage{
		ID:                 domain.PageID(p.ID),
		CrawlJobID:         domain.CrawlJobID(p.CrawlJobID),
		URL:                p.URL,
		StatusCode:         p.StatusCode,
		Title:              p.Title,
		MetaDescription:    p.MetaDescription,
		H1:                 p.H1,
		Content:            p.Content,
		WordCount:          p.WordCount,
		LoadTimeMS:         p.LoadTimeMS,
		InternalLinksCount: p.InternalLinksCount,
		ExternalLinksCount: p.ExternalLinksCount,
		ImagesCount:        p.ImagesCount,
		ImagesWithoutAlt:   p.ImagesWithoutAlt,
		HTMLSizeBytes:      p.HTMLSizeBytes,
		HasCanonical:       p.HasCanonical,
		CanonicalURL:       p.CanonicalURL.String,
		MetaRobots:         p.MetaRobots.String,
		HasSchemaMarkup:    p.HasSchemaMarkup,
		CreatedAt:          p.CreatedAt,
	}
}

func (p *PgCrawledPage) FromDomain(page domain.CrawledPage) {
	*p = PgCrawledPage{
		ID:                 uuid.UUID(page.ID),
		CrawlJobID:         uuid.UUID(page.CrawlJobID),
		URL:                page.URL,
		StatusCode:         page.StatusCode,
		Title:              page.Title,
		MetaDescription:    page.MetaDescription,
		H1:                 page.H1,
		Content:            page.Content,
		WordCount:          page.WordCount,
		LoadTimeMS:         page.LoadTimeMS,
		InternalLinksCount: page.InternalLinksCount,
		ExternalLinksCount: page.ExternalLinksCount,
		ImagesCount:        page.ImagesCount,
		ImagesWithoutAlt:   page.ImagesWithoutAlt,
		HTMLSizeBytes:      page.HTMLSizeBytes,
		HasCanonical:       page.HasCanonical,
		CanonicalURL:       sql.NullString{String: page.CanonicalURL, Valid: page.CanonicalURL != ""},
		MetaRobots:         sql.NullString{String: page.MetaRobots, Valid: page.MetaRobots != ""},
		HasSchemaMarkup:    page.HasSchemaMarkup,
	}
}

type PgLink struct {
	ID         int64     `db:"id"          goqu:"skipinsert"`
	PageID     uuid.UUID `db:"page_id"`
	Kind       string    `db:"kind"`
	TargetURL  string    `db:"target_url"`
	AnchorText string    `db:"anchor_text"`
	IsBroken   bool      `db:"is_broken"`
}

func (p *PgLink) ToDomain() domain.Link {
	return domain.Link{
		PageID:     domain.PageID(p.PageID),
		Kind:       domain.LinkKind(p.Kind),
		TargetURL:  p.TargetURL,
		AnchorText: p.AnchorText,
		IsBroken:   p.IsBroken,
	}
}

type PgPageIssue struct {
	ID              uuid.UUID      `db:"id"`
	PageID          uuid.UUID      `db:"page_id"`
	CrawlJobID      uuid.UUID      `db:"crawl_job_id"`
	PageURL         string         `db:"page_url"`
	IssueType       string         `db:"issue_type"`
	Category        string         `db:"category"`
	Severity        string         `db:"severity"`
	Title           string         `db:"title"`
	Description     string         `db:"description"`
	Recommendation  string         `db:"recommendation"`
	AffectedElement sql.NullString `db:"affected_element"`
	Seq             int64          `db:"seq"        goqu:"skipinsert"`
	CreatedAt       time.Time      `db:"created_at" goqu:"skipinsert"`
}

func (p *PgPageIssue) ToDomain() domain.PageIssue {
	return domain.PageIssue{
		ID:              p.ID,
		PageID:          domain.PageID(p.PageID),
		CrawlJobID:      domain.CrawlJobID(p.CrawlJobID),
		PageURL:         p.PageURL,
		IssueType:       p.IssueType,
		Category:        domain.IssueCategory(p.Category),
		Severity:        domain.Severity(p.Severity),
		Title:           p.Title,
		Description:     p.Description,
		Recommendation:  p.Recommendation,
		AffectedElement: p.AffectedElement.String,
		CreatedAt:       p.CreatedAt,
	}
}

func (p *PgPageIssue) FromDomain(i domain.PageIssue) {
	id := i.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	*p = PgPageIssue{
		ID:              id,
		PageID:          uuid.UUID(i.PageID),
		CrawlJobID:      uuid.UUID(i.CrawlJobID),
		PageURL:         i.PageURL,
		IssueType:       i.IssueType,
		Category:        string(i.Category),
		Severity:        string(i.Severity),
		Title:           i.Title,
		Description:     i.Description,
		Recommendation:  i.Recommendation,
		AffectedElement: sql.NullString{String: i.AffectedElement, Valid: i.AffectedElement != ""},
	}
}

type PgAuditScore struct {
	ID               uuid.UUID       `db:"id"`
	CrawlJobID       uuid.UUID       `db:"crawl_job_id"`
	ProjectID        uuid.UUID       `db:"project_id"`
	OverallScore     int             `db:"overall_score"`
	TechnicalScore   int             `db:"technical_score"`
	OnPageScore      int             `db:"onpage_score"`
	ContentScore     int             `db:"content_score"`
	PerformanceScore int             `db:"performance_score"`
	MobileScore      int             `db:"mobile_score"`
	TotalIssues      int             `db:"total_issues"`
	CriticalIssues   int             `db:"critical_issues"`
	HighIssues       int             `db:"high_issues"`
	MediumIssues     int             `db:"medium_issues"`
	LowIssues        int             `db:"low_issues"`
	PagesAnalyzed    int             `db:"pages_analyzed"`
	ScoreBreakdown   json.RawMessage `db:"score_breakdown"`
	CreatedAt        time.Time       `db:"created_at" goqu:"skipinsert"`
}

func (p *PgAuditScore) ToDomain() (*domain.AuditScore, error) {
	var breakdown map[domain.IssueCategory]domain.CategoryScore
	if err := json.Unmarshal(p.ScoreBreakdown, &breakdown); err != nil {
		return nil, fmt.Errorf("could not unmarshal score breakdown: %w", err)
	}

	return &domain.AuditScore{
		ID:               p.ID,
		CrawlJobID:       domain.CrawlJobID(p.CrawlJobID),
		ProjectID:        domain.ProjectID(p.ProjectID),
		OverallScore:     p.OverallScore,
		TechnicalScore:   p.TechnicalScore,
		OnPageScore:      p.OnPageScore,
		ContentScore:     p.ContentScore,
		PerformanceScore: p.PerformanceScore,
		MobileScore:      p.MobileScore,
		TotalIssues:      p.TotalIssues,
		CriticalIssues:   p.CriticalIssues,
		HighIssues:       p.HighIssues,
		MediumIssues:     p.MediumIssues,
		LowIssues:        p.LowIssues,
		PagesAnalyzed:    p.PagesAnalyzed,
		ScoreBreakdown:   breakdown,
		CreatedAt:        p.CreatedAt,
	}, nil
}

func (p *PgAuditScore) FromDomain(s domain.AuditScore) error {
	breakdown, err := json.Marshal(s.ScoreBreakdown)
	if err != nil {
		return fmt.Errorf("could not marshal score breakdown: %w", err)
	}

	id := s.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	*p = PgAuditScore{
		ID:               id,
		CrawlJobID:       uuid.UUID(s.CrawlJobID),
		ProjectID:        uuid.UUID(s.ProjectID),
		OverallScore:     s.OverallScore,
		TechnicalScore:   s.TechnicalScore,
		OnPageScore:      s.OnPageScore,
		ContentScore:     s.ContentScore,
		PerformanceScore: s.PerformanceScore,
		MobileScore:      s.MobileScore,
		TotalIssues:      s.TotalIssues,
		CriticalIssues:   s.CriticalIssues,
		HighIssues:       s.HighIssues,
		MediumIssues:     s.MediumIssues,
		LowIssues:        s.LowIssues,
		PagesAnalyzed:    s.PagesAnalyzed,
		ScoreBreakdown:   breakdown,
	}

	return nil
}

type PgRecommendation struct {
	ID                   uuid.UUID `db:"id"`
	CrawlJobID           uuid.UUID `db:"crawl_job_id"`
	ProjectID            uuid.UUID `db:"project_id"`
	Priority             string    `db:"priority"`
	Category             string    `db:"category"`
	Title                string    `db:"title"`
	Description          string    `db:"description"`
	Impact               string    `db:"impact"`
	Effort               string    `db:"effort"`
	AffectedPagesCount   int       `db:"affected_pages_count"`
	EstimatedImprovement string    `db:"estimated_improvement"`
	ImplementationGuide  string    `db:"implementation_guide"`
	Seq                  int64     `db:"seq"        goqu:"skipinsert"`
	CreatedAt            time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgRecommendation) ToDomain() domain.Recommendation {
	return domain.Recommendation{
		ID:                   p.ID,
		CrawlJobID:           domain.CrawlJobID(p.CrawlJobID),
		ProjectID:            domain.ProjectID(p.ProjectID),
		Priority:             domain.Priority(p.Priority),
		Category:             domain.IssueCategory(p.Category),
		Title:                p.Title,
		Description:          p.Description,
		Impact:               p.Impact,
		Effort:               p.Effort,
		AffectedPagesCount:   p.AffectedPagesCount,
		EstimatedImprovement: p.EstimatedImprovement,
		ImplementationGuide:  p.ImplementationGuide,
		CreatedAt:            p.CreatedAt,
	}
}

func (p *PgRecommendation) FromDomain(r domain.Recommendation) {
	id := r.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	*p = PgRecommendation{
		ID:                   id,
		CrawlJobID:           uuid.UUID(r.CrawlJobID),
		ProjectID:            uuid.UUID(r.ProjectID),
		Priority:             string(r.Priority),
		Category:             string(r.Category),
		Title:                r.Title,
		Description:          r.Description,
		Impact:               r.Impact,
		Effort:               r.Effort,
		AffectedPagesCount:   r.AffectedPagesCount,
		EstimatedImprovement: r.EstimatedImprovement,
		ImplementationGuide:  r.ImplementationGuide,
	}
}
