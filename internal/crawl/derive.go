package crawl

import (
	"net/url"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/pagefetch"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DerivePage builds the stored page of a fetch result and splits its outbound
// links into internal and external ones. At most externalCap external links
// are returned; the counts on the page are computed before the cap.
func DerivePage(origin *url.URL, crawlID domain.CrawlJobID, fetched *pagefetch.Page, externalCap int) (
	domain.CrawledPage, []domain.Link, []string) {
	page := domain.CrawledPage{
		CrawlJobID:      crawlID,
		URL:             fetched.URL,
		StatusCode:      fetched.StatusCode,
		Title:           fetched.Title,
		MetaDescription: fetched.Description,
		H1:              fetched.H1,
		Content:         fetched.Markdown,
		WordCount:       len(strings.Fields(fetched.Markdown)),
		LoadTimeMS:      fetched.LoadTime.Milliseconds(),
		HTMLSizeBytes:   len(fetched.HTML),
		HasSchemaMarkup: strings.Contains(fetched.HTML, "application/ld+json") ||
			strings.Contains(fetched.HTML, "schema.org"),
	}

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(fetched.HTML)); err == nil {
		imgs := doc.Find("img")
		page.ImagesCount = imgs.Length()
		imgs.Each(func(_ int, s *goquery.Selection) {
			if _, ok := s.Attr("alt"); !ok {
				page.ImagesWithoutAlt++
			}
		})

		doc.Find(`link[rel="canonical"][href]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			page.HasCanonical = true
			page.CanonicalURL, _ = s.Attr("href")

			return false
		})

		if robots, ok := doc.Find(`meta[name="robots"]`).First().Attr("content"); ok {
			page.MetaRobots = strings.TrimSpace(robots)
		}
	}

	var (
		links    []domain.Link
		external int
		follow   []string
	)
	for _, l := range fetched.Links {
		target, internal, ok := ResolveLink(origin, l.Href)
		if !ok {
			continue
		}

		if internal {
			page.InternalLinksCount++
			follow = append(follow, target)
			links = append(links, domain.Link{
				Kind:       domain.LinkKindInternal,
				TargetURL:  target,
				AnchorText: l.Text,
			})

			continue
		}

		page.ExternalLinksCount++
		if external < externalCap {
			external++
			links = append(links, domain.Link{
				Kind:       domain.LinkKindExternal,
				TargetURL:  target,
				AnchorText: l.Text,
			})
		}
	}

	return page, links, follow
}
