package analysis

import (
	"fmt"
	"seoaudit/pkg/domain"
)

type recommendationTemplate struct {
	issueTypes  []string
	priority    domain.Priority
	category    domain.IssueCategory
	title       string // formatted with the number of affected pages
	description string
	impact      string
	effort      string
	improvement string
	guide       string
}

// templates are evaluated in order; a template emits one recommendation when
// at least one page has one of its issue types.
var templates = []recommendationTemplate{ //nolint: gochecknoglobals
	{
		issueTypes:  []string{IssueMissingTitle},
		priority:    domain.PriorityQuickWin,
		category:    domain.CategoryOnPage,
		title:       "%d pages missing title tags",
		description: "Pages without a title get an auto-generated headline in search results and rank poorly.",
		impact:      "high",
		effort:      "low",
		improvement: "+5-15% click-through rate",
		guide:       "Add a unique <title> of 30 to 60 characters to each page, leading with its main keyword.",
	},
	{
		issueTypes:  []string{IssueMissingDescription},
		priority:    domain.PriorityQuickWin,
		category:    domain.CategoryOnPage,
		title:       "%d pages missing meta descriptions",
		description: "Without a meta description search engines choose a snippet that may not sell the page.",
		impact:      "medium",
		effort:      "low",
		improvement: "+3-10% click-through rate",
		guide:       "Write a 120 to 160 character summary with a call to action for each page.",
	},
	{
		issueTypes:  []string{IssueMissingH1},
		priority:    domain.PriorityQuickWin,
		category:    domain.CategoryOnPage,
		title:       "%d pages missing an H1 heading",
		description: "The H1 tells visitors and search engines what a page is about.",
		impact:      "medium",
		effort:      "low",
		improvement: "+2-5 on-page score",
		guide:       "Add exactly one H1 per page that matches the page's search intent.",
	},
	{
		issueTypes:  []string{IssueTitleTooShort, IssueTitleTooLong},
		priority:    domain.PriorityQuickWin,
		category:    domain.CategoryOnPage,
		title:       "%d pages with poorly sized titles",
		description: "Short titles waste ranking potential and long titles get truncated in results.",
		impact:      "medium",
		effort:      "low",
		improvement: "+2-8% click-through rate",
		guide:       "Keep titles between 30 and 60 characters.",
	},
	{
		issueTypes:  []string{IssueDescriptionTooShort, IssueDescriptionTooLong},
		priority:    domain.PriorityQuickWin,
		category:    domain.CategoryOnPage,
		title:       "%d pages with poorly sized meta descriptions",
		description: "Descriptions outside 120 to 160 characters are padded or truncated by search engines.",
		impact:      "low",
		effort:      "low",
		improvement: "+1-5% click-through rate",
		guide:       "Rewrite descriptions to fit between 120 and 160 characters.",
	},
	{
		issueTypes:  []string{IssueImagesWithoutAlt},
		priority:    domain.PriorityQuickWin,
		category:    domain.CategoryOnPage,
		title:       "%d pages with images missing alt text",
		description: "Alt text makes images accessible and lets them rank in image search.",
		impact:      "medium",
		effort:      "low",
		improvement: "+5-10% image search traffic",
		guide:       "Add descriptive alt attributes to content images and alt=\"\" to decorative ones.",
	},
	{
		issueTypes:  []string{IssueHTTPError},
		priority:    domain.PriorityHighImpact,
		category:    domain.CategoryTechnical,
		title:       "%d pages returning error status codes",
		description: "Broken pages waste crawl budget and lose the authority of links pointing at them.",
		impact:      "high",
		effort:      "medium",
		improvement: "+10-20 technical score",
		guide:       "Restore the pages or 301-redirect them to the closest working URL and fix internal links.",
	},
	{
		issueTypes:  []string{IssueMissingCanonical},
		priority:    domain.PriorityHighImpact,
		category:    domain.CategoryTechnical,
		title:       "%d pages without canonical tags",
		description: "Without canonical URLs duplicate variants of a page split its ranking signals.",
		impact:      "medium",
		effort:      "low",
		improvement: "+3-8 technical score",
		guide:       "Add a self-referencing <link rel=\"canonical\"> to every indexable page.",
	},
	{
		issueTypes:  []string{IssueSlowPage},
		priority:    domain.PriorityHighImpact,
		category:    domain.CategoryPerformance,
		title:       "%d slow-loading pages",
		description: "Slow pages hurt rankings and conversion, especially on mobile.",
		impact:      "high",
		effort:      "high",
		improvement: "+10-25 performance score",
		guide:       "Optimize images, enable compression and caching, and defer non-critical scripts.",
	},
	{
		issueTypes:  []string{IssueMissingSchema},
		priority:    domain.PriorityLongTerm,
		category:    domain.CategoryTechnical,
		title:       "%d pages without structured data",
		description: "Structured data makes pages eligible for rich results.",
		impact:      "medium",
		effort:      "medium",
		improvement: "+5-15% click-through rate from rich results",
		guide:       "Add JSON-LD markup for the organization, articles, products or FAQs as appropriate.",
	},
	{
		issueTypes:  []string{IssueLargeHTML},
		priority:    domain.PriorityLongTerm,
		category:    domain.CategoryPerformance,
		title:       "%d pages with oversized HTML",
		description: "Large documents take longer to download and parse.",
		impact:      "low",
		effort:      "medium",
		improvement: "+2-5 performance score",
		guide:       "Move inline scripts and styles to cached files and remove unused markup.",
	},
	{
		issueTypes:  []string{IssueThinContent},
		priority:    domain.PriorityLongTerm,
		category:    domain.CategoryContent,
		title:       "%d pages with thin content",
		description: "Pages with little text rarely satisfy search intent.",
		impact:      "high",
		effort:      "high",
		improvement: "+10-30% organic traffic to improved pages",
		guide:       "Expand key pages to at least 300 words of original, useful content or merge thin pages.",
	},
	{
		issueTypes:  []string{IssueFewInternalLinks},
		priority:    domain.PriorityLongTerm,
		category:    domain.CategoryOnPage,
		title:       "%d pages with weak internal linking",
		description: "Pages with few internal links are hard to discover and receive little authority.",
		impact:      "medium",
		effort:      "medium",
		improvement: "+5-10% crawl coverage",
		guide:       "Link related pages to each other with descriptive anchor text.",
	},
}

// Recommend synthesizes recommendations from issue patterns. Counts are the
// number of distinct pages having any issue type of a template.
func Recommend(crawl domain.CrawlJobID, project domain.ProjectID, issues []domain.PageIssue) []domain.Recommendation {
	pagesByType := make(map[string]map[domain.PageID]struct{})
	for _, issue := range issues {
		if pagesByType[issue.IssueType] == nil {
			pagesByType[issue.IssueType] = make(map[domain.PageID]struct{})
		}
		pagesByType[issue.IssueType][issue.PageID] = struct{}{}
	}

	var out []domain.Recommendation
	for _, t := range templates {
		pages := make(map[domain.PageID]struct{})
		for _, it := range t.issueTypes {
			for id := range pagesByType[it] {
				pages[id] = struct{}{}
			}
		}
		if len(pages) == 0 {
			continue
		}

		out = append(out, domain.Recommendation{
			CrawlJobID:           crawl,
			ProjectID:            project,
			Priority:             t.priority,
			Category:             t.category,
			Title:                fmt.Sprintf(t.title, len(pages)),
			Description:          t.description,
			Impact:               t.impact,
			Effort:               t.effort,
			AffectedPagesCount:   len(pages),
			EstimatedImprovement: t.improvement,
			ImplementationGuide:  t.guide,
		})
	}

	return out
}
