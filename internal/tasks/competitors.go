package tasks

import (
	"cmp"
	"context"
	"seoaudit/internal/orchestrator"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/research"
	"seoaudit/pkg/serrors"
	"slices"
	"strings"

	"golang.org/x/time/rate"
)

type competitorAnalysisInput struct {
	Domain      string   `json:"domain" validate:"required,fqdn"`
	Competitors []string `json:"competitors" validate:"required,min=1,max=20,dive,required,fqdn"`
}

// DomainProfile is the backlink summary of one domain.
type DomainProfile struct {
	Domain           string `json:"domain"`
	DomainRating     int    `json:"domain_rating"`
	TotalBacklinks   int    `json:"total_backlinks"`
	ReferringDomains int    `json:"referring_domains"`
}

// LinkGap is a referring domain that links to competitors but not to the
// analyzed domain.
type LinkGap struct {
	ReferringDomain string   `json:"referring_domain"`
	Competitors     []string `json:"competitors"`
}

// CompetitorAnalysisResult compares the backlink profile of a domain with its
// competitors. LinkGap is ordered by the number of competitors, most first.
type CompetitorAnalysisResult struct {
	Domain      DomainProfile   `json:"domain"`
	Competitors []DomainProfile `json:"competitors"`
	LinkGap     []LinkGap       `json:"link_gap"`
}

func (d Deps) competitorAnalysis(ctx context.Context, job domain.Job, progress orchestrator.ProgressFunc) (any, error) {
	var in competitorAnalysisInput
	if err := decode(job, &in); err != nil {
		return nil, err
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if d.BacklinkRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(d.BacklinkRate), 1)
	}

	domains := append([]string{in.Domain}, in.Competitors...)
	profiles := make([]research.BacklinkProfile, 0, len(domains))
	if err := progress(ctx, 0, len(domains)); err != nil {
		return nil, err
	}
	for i, name := range domains {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
		profile, err := d.Backlinks.BacklinkProfile(ctx, name)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not get backlinks of %s", name)
		}
		profiles = append(profiles, *profile)

		if err := progress(ctx, i+1, len(domains)); err != nil {
			return nil, err
		}
	}

	result := CompetitorAnalysisResult{
		Domain:      summarize(in.Domain, profiles[0]),
		Competitors: make([]DomainProfile, 0, len(in.Competitors)),
	}
	for i, p := range profiles[1:] {
		result.Competitors = append(result.Competitors, summarize(in.Competitors[i], p))
	}
	result.LinkGap = FindLinkGap(profiles[0], profiles[1:])

	return result, nil
}

func summarize(name string, p research.BacklinkProfile) DomainProfile {
	return DomainProfile{
		Domain:           name,
		DomainRating:     p.DomainRating,
		TotalBacklinks:   p.TotalBacklinks,
		ReferringDomains: len(p.ReferringDomains),
	}
}

// FindLinkGap returns the referring domains of competitors that do not link to
// target. Domains are compared case-insensitively.
func FindLinkGap(target research.BacklinkProfile, competitors []research.BacklinkProfile) []LinkGap {
	linked := make(map[string]struct{}, len(target.ReferringDomains))
	for _, rd := range target.ReferringDomains {
		linked[strings.ToLower(rd)] = struct{}{}
	}

	gaps := make(map[string]*LinkGap)
	for _, c := range competitors {
		for _, rd := range c.ReferringDomains {
			rd = strings.ToLower(rd)
			if _, ok := linked[rd]; ok {
				continue
			}
			gap, ok := gaps[rd]
			if !ok {
				gap = &LinkGap{ReferringDomain: rd}
				gaps[rd] = gap
			}
			if !slices.Contains(gap.Competitors, c.Domain) {
				gap.Competitors = append(gap.Competitors, c.Domain)
			}
		}
	}

	out := make([]LinkGap, 0, len(gaps))
	for _, g := range gaps {
		out = append(out, *g)
	}
	slices.SortFunc(out, func(a, b LinkGap) int {
		if n := cmp.Compare(len(b.Competitors), len(a.Competitors)); n != 0 {
			return n
		}

		return strings.Compare(a.ReferringDomain, b.ReferringDomain)
	})

	return out
}
