package analysis

import (
	"fmt"
	"seoaudit/pkg/domain"
	"strings"
	"unicode/utf8"
)

// Issue types detected by the rule pass.
const (
	IssueMissingTitle        = "missing_title"
	IssueTitleTooShort       = "title_too_short"
	IssueTitleTooLong        = "title_too_long"
	IssueMissingDescription  = "missing_meta_description"
	IssueDescriptionTooShort = "meta_description_too_short"
	IssueDescriptionTooLong  = "meta_description_too_long"
	IssueMissingH1           = "missing_h1"
	IssueThinContent         = "thin_content"
	IssueImagesWithoutAlt    = "images_without_alt"
	IssueHTTPError           = "http_error"
	IssueMissingCanonical    = "missing_canonical"
	IssueMissingSchema       = "missing_schema"
	IssueSlowPage            = "slow_page"
	IssueFewInternalLinks    = "few_internal_links"
	IssueLargeHTML           = "large_html"
)

// Rule thresholds. Length bounds are inclusive and counted in characters.
const (
	minTitleLength          = 30
	maxTitleLength          = 60
	minDescriptionLength    = 120
	maxDescriptionLength    = 160
	minWordCount            = 300
	manyImagesWithoutAlt    = 3
	maxAltDeduction         = 5
	slowLoadMS              = 3000
	verySlowLoadMS          = 5000
	maxLoadTimeDeduction    = 15
	minInternalLinks        = 3
	maxHTMLSizeBytes        = 100000
	affectedElementMaxRunes = 120
)

// Finding is an issue together with the points it deducts from its category.
type Finding struct {
	Issue     domain.PageIssue
	Deduction int
}

type rule func(page domain.CrawledPage, multiPage bool) *Finding

// rules run in this order for every page; issue order follows it.
var rules = []rule{ //nolint: gochecknoglobals
	titleRule,
	descriptionRule,
	h1Rule,
	wordCountRule,
	altRule,
	statusRule,
	canonicalRule,
	schemaRule,
	loadTimeRule,
	internalLinksRule,
	htmlSizeRule,
}

// AnalyzePage runs every rule against page. multiPage tells whether the crawl
// produced more than one page, which enables the canonical check.
func AnalyzePage(page domain.CrawledPage, multiPage bool) []Finding {
	var out []Finding
	for _, r := range rules {
		if f := r(page, multiPage); f != nil {
			f.Issue.PageID = page.ID
			f.Issue.CrawlJobID = page.CrawlJobID
			f.Issue.PageURL = page.URL
			out = append(out, *f)
		}
	}

	return out
}

func finding(issueType string,
	category domain.IssueCategory,
	severity domain.Severity,
	deduction int,
	title, description, recommendation, element string) *Finding {
	return &Finding{
		Issue: domain.PageIssue{
			IssueType:       issueType,
			Category:        category,
			Severity:        severity,
			Title:           title,
			Description:     description,
			Recommendation:  recommendation,
			AffectedElement: excerpt(element),
		},
		Deduction: deduction,
	}
}

func excerpt(s string) string {
	if utf8.RuneCountInString(s) <= affectedElementMaxRunes {
		return s
	}

	return string([]rune(s)[:affectedElementMaxRunes]) + "..."
}

func titleRule(p domain.CrawledPage, _ bool) *Finding {
	title := strings.TrimSpace(p.Title)
	n := utf8.RuneCountInString(title)
	switch {
	case n == 0:
		return finding(IssueMissingTitle, domain.CategoryOnPage, domain.SeverityCritical, 5,
			"Missing title tag",
			"The page has no <title>. Search engines show the title as the result headline.",
			"Add a unique, descriptive title between 30 and 60 characters.", "")
	case n < minTitleLength:
		return finding(IssueTitleTooShort, domain.CategoryOnPage, domain.SeverityMedium, 2,
			"Title too short",
			fmt.Sprintf("The title is %d characters long, shorter than %d.", n, minTitleLength),
			"Expand the title with the page's main keyword and a clear benefit.", title)
	case n > maxTitleLength:
		return finding(IssueTitleTooLong, domain.CategoryOnPage, domain.SeverityLow, 1,
			"Title too long",
			fmt.Sprintf("The title is %d characters long and will be truncated after %d.", n, maxTitleLength),
			"Shorten the title and keep the important words first.", title)
	}

	return nil
}

func descriptionRule(p domain.CrawledPage, _ bool) *Finding {
	desc := strings.TrimSpace(p.MetaDescription)
	n := utf8.RuneCountInString(desc)
	switch {
	case n == 0:
		return finding(IssueMissingDescription, domain.CategoryOnPage, domain.SeverityHigh, 4,
			"Missing meta description",
			"The page has no meta description, so search engines pick a snippet themselves.",
			"Write a meta description between 120 and 160 characters that summarizes the page.", "")
	case n < minDescriptionLength:
		return finding(IssueDescriptionTooShort, domain.CategoryOnPage, domain.SeverityMedium, 2,
			"Meta description too short",
			fmt.Sprintf("The meta description is %d characters long, shorter than %d.", n, minDescriptionLength),
			"Extend the description with a call to action and supporting details.", desc)
	case n > maxDescriptionLength:
		return finding(IssueDescriptionTooLong, domain.CategoryOnPage, domain.SeverityLow, 1,
			"Meta description too long",
			fmt.Sprintf("The meta description is %d characters long and will be truncated after %d.",
				n, maxDescriptionLength),
			"Trim the description to 160 characters.", desc)
	}

	return nil
}

func h1Rule(p domain.CrawledPage, _ bool) *Finding {
	if strings.TrimSpace(p.H1) != "" {
		return nil
	}

	return finding(IssueMissingH1, domain.CategoryOnPage, domain.SeverityHigh, 4,
		"Missing H1 heading",
		"The page has no <h1> heading describing its main topic.",
		"Add a single H1 that states what the page is about.", "")
}

func wordCountRule(p domain.CrawledPage, _ bool) *Finding {
	if p.WordCount >= minWordCount {
		return nil
	}

	return finding(IssueThinContent, domain.CategoryContent, domain.SeverityMedium, 3,
		"Thin content",
		fmt.Sprintf("The page has %d words, fewer than %d.", p.WordCount, minWordCount),
		"Add useful, original content that covers the topic in depth.", "")
}

func altRule(p domain.CrawledPage, _ bool) *Finding {
	if p.ImagesWithoutAlt <= 0 {
		return nil
	}

	severity := domain.SeverityMedium
	if p.ImagesWithoutAlt > manyImagesWithoutAlt {
		severity = domain.SeverityHigh
	}

	return finding(IssueImagesWithoutAlt, domain.CategoryOnPage, severity, min(p.ImagesWithoutAlt, maxAltDeduction),
		"Images without alt text",
		fmt.Sprintf("%d of %d images have no alt attribute.", p.ImagesWithoutAlt, p.ImagesCount),
		"Describe every meaningful image with an alt attribute; use alt=\"\" for decorative ones.", "")
}

func statusRule(p domain.CrawledPage, _ bool) *Finding {
	if p.StatusCode == 200 {
		return nil
	}

	return finding(IssueHTTPError, domain.CategoryTechnical, domain.SeverityCritical, 10,
		"Page does not return 200",
		fmt.Sprintf("The page responded with HTTP status %d.", p.StatusCode),
		"Fix the page or redirect it permanently to a working URL, and update links pointing at it.",
		fmt.Sprintf("HTTP %d", p.StatusCode))
}

func canonicalRule(p domain.CrawledPage, multiPage bool) *Finding {
	if !multiPage || p.HasCanonical {
		return nil
	}

	return finding(IssueMissingCanonical, domain.CategoryTechnical, domain.SeverityMedium, 2,
		"Missing canonical tag",
		"The page does not declare a canonical URL, so duplicates may compete with it.",
		"Add <link rel=\"canonical\"> pointing at the preferred URL of the page.", "")
}

func schemaRule(p domain.CrawledPage, _ bool) *Finding {
	if p.HasSchemaMarkup {
		return nil
	}

	return finding(IssueMissingSchema, domain.CategoryTechnical, domain.SeverityLow, 1,
		"Missing structured data",
		"No schema.org structured data was found on the page.",
		"Add JSON-LD structured data matching the page type.", "")
}

func loadTimeRule(p domain.CrawledPage, _ bool) *Finding {
	if p.LoadTimeMS <= slowLoadMS {
		return nil
	}

	severity := domain.SeverityMedium
	if p.LoadTimeMS > verySlowLoadMS {
		severity = domain.SeverityHigh
	}

	return finding(IssueSlowPage, domain.CategoryPerformance, severity,
		int(min(p.LoadTimeMS/1000, maxLoadTimeDeduction)),
		"Slow page",
		fmt.Sprintf("The page took %d ms to load.", p.LoadTimeMS),
		"Compress assets, enable caching and reduce server response time.",
		fmt.Sprintf("%d ms", p.LoadTimeMS))
}

func internalLinksRule(p domain.CrawledPage, _ bool) *Finding {
	if p.InternalLinksCount >= minInternalLinks {
		return nil
	}

	return finding(IssueFewInternalLinks, domain.CategoryOnPage, domain.SeverityLow, 1,
		"Few internal links",
		fmt.Sprintf("The page links to %d other pages of the site.", p.InternalLinksCount),
		"Link to related pages to help visitors and crawlers discover content.", "")
}

func htmlSizeRule(p domain.CrawledPage, _ bool) *Finding {
	if p.HTMLSizeBytes <= maxHTMLSizeBytes {
		return nil
	}

	return finding(IssueLargeHTML, domain.CategoryPerformance, domain.SeverityLow, 1,
		"Large HTML document",
		fmt.Sprintf("The HTML is %d bytes, more than %d.", p.HTMLSizeBytes, maxHTMLSizeBytes),
		"Remove inline scripts and styles and unused markup.",
		fmt.Sprintf("%d bytes", p.HTMLSizeBytes))
}
