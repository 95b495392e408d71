package tasks

import (
	"context"
	"net/url"
	"seoaudit/internal/orchestrator"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/research"
	"seoaudit/pkg/serrors"
	"strings"
)

type serpTrackingInput struct {
	Domain   string   `json:"domain" validate:"required,fqdn"`
	Keywords []string `json:"keywords" validate:"required,min=1,max=200,dive,required,max=200"`
	Location string   `json:"location" validate:"max=100"`
}

// Ranking is the best position of the tracked domain for one keyword. Position
// is nil when the domain is not in the results.
type Ranking struct {
	Keyword  string `json:"keyword"`
	Position *int   `json:"position"`
	URL      string `json:"url,omitempty"`
}

// SERPTrackingResult lists rankings in keyword order.
type SERPTrackingResult struct {
	Domain   string    `json:"domain"`
	Rankings []Ranking `json:"rankings"`
	Ranked   int       `json:"ranked"`
}

func (d Deps) serpTracking(ctx context.Context, job domain.Job, progress orchestrator.ProgressFunc) (any, error) {
	var in serpTrackingInput
	if err := decode(job, &in); err != nil {
		return nil, err
	}

	result := SERPTrackingResult{Domain: in.Domain, Rankings: make([]Ranking, 0, len(in.Keywords))}
	if err := progress(ctx, 0, len(in.Keywords)); err != nil {
		return nil, err
	}
	for i, keyword := range in.Keywords {
		results, err := d.SERP.SERP(ctx, keyword, in.Location)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not get results for %q", keyword)
		}

		ranking := FindRanking(in.Domain, results)
		ranking.Keyword = keyword
		if ranking.Position != nil {
			result.Ranked++
		}
		result.Rankings = append(result.Rankings, ranking)

		if err := progress(ctx, i+1, len(in.Keywords)); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// FindRanking returns the best position of domainName or one of its
// subdomains in results.
func FindRanking(domainName string, results []research.SERPResult) Ranking {
	domainName = strings.ToLower(strings.TrimPrefix(domainName, "www."))

	var best Ranking
	for _, r := range results {
		host := strings.ToLower(r.Domain)
		if host == "" {
			if u, err := url.Parse(r.URL); err == nil {
				host = strings.ToLower(u.Hostname())
			}
		}
		if host != domainName && !strings.HasSuffix(host, "."+domainName) {
			continue
		}
		if best.Position == nil || r.Position < *best.Position {
			position := r.Position
			best.Position = &position
			best.URL = r.URL
		}
	}

	return best
}
