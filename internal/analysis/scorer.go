package analysis

import (
	"seoaudit/pkg/domain"
)

const (
	maxScore = 100
	// weights are percentages and sum up to 100
	weightTotal = 100
)

// categoryWeights are the shares of each category in the overall score.
var categoryWeights = map[domain.IssueCategory]int{ //nolint: gochecknoglobals
	domain.CategoryTechnical:   25,
	domain.CategoryOnPage:      30,
	domain.CategoryContent:     20,
	domain.CategoryPerformance: 15,
	domain.CategoryMobile:      10,
}

// Scores are the clamped category scores and the weighted overall score.
type Scores struct {
	Technical   int
	OnPage      int
	Content     int
	Performance int
	Mobile      int
	Overall     int
}

// Score accumulates the deductions of findings per category, starting every
// category at 100 and clamping to [0, 100].
func Score(findings []Finding) Scores {
	deductions := make(map[domain.IssueCategory]int, len(categoryWeights))
	for _, f := range findings {
		deductions[f.Issue.Category] += f.Deduction
	}

	category := func(c domain.IssueCategory) int {
		return max(0, min(maxScore, maxScore-deductions[c]))
	}

	s := Scores{
		Technical:   category(domain.CategoryTechnical),
		OnPage:      category(domain.CategoryOnPage),
		Content:     category(domain.CategoryContent),
		Performance: category(domain.CategoryPerformance),
		Mobile:      category(domain.CategoryMobile),
	}
	s.Overall = Overall(s.Technical, s.OnPage, s.Content, s.Performance, s.Mobile)

	return s
}

// Overall combines category scores with the fixed weights and rounds half up,
// in integer arithmetic so the result never depends on float representation.
func Overall(technical, onPage, content, performance, mobile int) int {
	sum := categoryWeights[domain.CategoryTechnical]*technical +
		categoryWeights[domain.CategoryOnPage]*onPage +
		categoryWeights[domain.CategoryContent]*content +
		categoryWeights[domain.CategoryPerformance]*performance +
		categoryWeights[domain.CategoryMobile]*mobile

	return (sum + weightTotal/2) / weightTotal
}

// Breakdown returns the per-category score and weight.
func (s Scores) Breakdown() map[domain.IssueCategory]domain.CategoryScore {
	scores := map[domain.IssueCategory]int{
		domain.CategoryTechnical:   s.Technical,
		domain.CategoryOnPage:      s.OnPage,
		domain.CategoryContent:     s.Content,
		domain.CategoryPerformance: s.Performance,
		domain.CategoryMobile:      s.Mobile,
	}

	out := make(map[domain.IssueCategory]domain.CategoryScore, len(scores))
	for c, score := range scores {
		out[c] = domain.CategoryScore{
			Score:  score,
			Weight: float64(categoryWeights[c]) / weightTotal,
		}
	}

	return out
}

// auditScore builds the score snapshot of a crawl.
func auditScore(crawl domain.CrawlJobID,
	project domain.ProjectID,
	pages int,
	findings []Finding) domain.AuditScore {
	s := Score(findings)
	out := domain.AuditScore{
		CrawlJobID:       crawl,
		ProjectID:        project,
		OverallScore:     s.Overall,
		TechnicalScore:   s.Technical,
		OnPageScore:      s.OnPage,
		ContentScore:     s.Content,
		PerformanceScore: s.Performance,
		MobileScore:      s.Mobile,
		TotalIssues:      len(findings),
		PagesAnalyzed:    pages,
		ScoreBreakdown:   s.Breakdown(),
	}

	for _, f := range findings {
		switch f.Issue.Severity {
		case domain.SeverityCritical:
			out.CriticalIssues++
		case domain.SeverityHigh:
			out.HighIssues++
		case domain.SeverityMedium:
			out.MediumIssues++
		case domain.SeverityLow:
			out.LowIssues++
		}
	}

	return out
}
