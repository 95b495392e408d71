package tasks

import (
	"cmp"
	"context"
	"errors"
	"seoaudit/internal/orchestrator"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/logger"
	"seoaudit/pkg/research"
	"seoaudit/pkg/serrors"
	"slices"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

type keywordResearchInput struct {
	Keywords []string `json:"keywords" validate:"required,min=1,max=200,dive,required,max=200"`
	Location string   `json:"location" validate:"max=100"`
	Language string   `json:"language" validate:"max=20"`
}

// KeywordResearchResult lists the metrics found for the requested keywords.
// Keywords the vendor does not know are listed in NotFound.
type KeywordResearchResult struct {
	Keywords []research.KeywordMetrics `json:"keywords"`
	NotFound []string                  `json:"not_found,omitempty"`
}

func (d Deps) keywordResearch(ctx context.Context, job domain.Job, progress orchestrator.ProgressFunc) (any, error) {
	var in keywordResearchInput
	if err := decode(job, &in); err != nil {
		return nil, err
	}

	result := KeywordResearchResult{Keywords: make([]research.KeywordMetrics, 0, len(in.Keywords))}
	if err := progress(ctx, 0, len(in.Keywords)); err != nil {
		return nil, err
	}

	for i, keyword := range in.Keywords {
		metrics, err := d.Keywords.KeywordMetrics(ctx, keyword, in.Location, in.Language)
		switch {
		case errors.Is(err, serrors.ErrNotFound):
			result.NotFound = append(result.NotFound, keyword)
		case err != nil:
			return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not research keyword %q", keyword)
		default:
			result.Keywords = append(result.Keywords, *metrics)
		}

		if err := progress(ctx, i+1, len(in.Keywords)); err != nil {
			return nil, err
		}
	}
	logger.Info(ctx, "keyword research finished",
		zap.Int("found", len(result.Keywords)),
		zap.Int("not_found", len(result.NotFound)))

	return result, nil
}

type keywordClusteringInput struct {
	Keywords        []string `json:"keywords" validate:"required,min=1,max=5000,dive,required,max=200"`
	MinSharedTokens int      `json:"min_shared_tokens" validate:"min=0,max=10"`
}

// KeywordCluster is a group of keywords sharing significant tokens. Label is
// the token shared by most members.
type KeywordCluster struct {
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

// KeywordClusteringResult lists clusters by size, largest first.
type KeywordClusteringResult struct {
	Clusters []KeywordCluster `json:"clusters"`
}

func keywordClustering(ctx context.Context, job domain.Job, progress orchestrator.ProgressFunc) (any, error) {
	var in keywordClusteringInput
	if err := decode(job, &in); err != nil {
		return nil, err
	}
	if in.MinSharedTokens == 0 {
		in.MinSharedTokens = 1
	}

	if err := progress(ctx, 0, 1); err != nil {
		return nil, err
	}
	result := ClusterKeywords(in.Keywords, in.MinSharedTokens)
	if err := progress(ctx, 1, 1); err != nil {
		return nil, err
	}

	return result, nil
}

// stopWords are skipped when tokenizing keywords.
var stopWords = map[string]struct{}{ //nolint: gochecknoglobals
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {}, "by": {},
	"for": {}, "from": {}, "how": {}, "in": {}, "is": {}, "it": {}, "of": {}, "on": {},
	"or": {}, "the": {}, "to": {}, "what": {}, "when": {}, "where": {}, "who": {},
	"why": {}, "with": {}, "vs": {}, "near": {}, "me": {}, "my": {}, "your": {},
}

// significantTokens returns the distinct lowercase tokens of keyword that are
// not stop words.
func significantTokens(keyword string) []string {
	fields := strings.FieldsFunc(strings.ToLower(keyword), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, stop := stopWords[f]; stop || len(f) < 2 {
			continue
		}
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}

	return out
}

// ClusterKeywords groups keywords that share at least minShared significant
// tokens, transitively. Duplicate keywords (case-insensitive) are merged. The
// result is deterministic for a given input order.
func ClusterKeywords(keywords []string, minShared int) KeywordClusteringResult {
	var (
		unique []string
		tokens [][]string
		seen   = make(map[string]struct{}, len(keywords))
	)
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		key := strings.ToLower(k)
		if _, ok := seen[key]; ok || k == "" {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, k)
		tokens = append(tokens, significantTokens(k))
	}

	uf := newUnionFind(len(unique))
	if minShared == 1 {
		// index by token instead of comparing every pair
		first := make(map[string]int)
		for i, ts := range tokens {
			for _, t := range ts {
				if j, ok := first[t]; ok {
					uf.union(i, j)
				} else {
					first[t] = i
				}
			}
		}
	} else {
		for i := range tokens {
			for j := i + 1; j < len(tokens); j++ {
				if shared(tokens[i], tokens[j]) >= minShared {
					uf.union(i, j)
				}
			}
		}
	}

	groups := make(map[int][]int)
	var roots []int
	for i := range unique {
		r := uf.find(i)
		if _, ok := groups[r]; !ok {
			roots = append(roots, r)
		}
		groups[r] = append(groups[r], i)
	}

	clusters := make([]KeywordCluster, 0, len(roots))
	for _, r := range roots {
		members := groups[r]
		counts := make(map[string]int)
		cluster := KeywordCluster{Keywords: make([]string, 0, len(members))}
		for _, m := range members {
			cluster.Keywords = append(cluster.Keywords, unique[m])
			for _, t := range tokens[m] {
				counts[t]++
			}
		}
		cluster.Label = label(counts, unique[members[0]])
		clusters = append(clusters, cluster)
	}
	slices.SortStableFunc(clusters, func(a, b KeywordCluster) int {
		return cmp.Compare(len(b.Keywords), len(a.Keywords))
	})

	return KeywordClusteringResult{Clusters: clusters}
}

func shared(a, b []string) int {
	n := 0
	for _, t := range a {
		if slices.Contains(b, t) {
			n++
		}
	}

	return n
}

// label picks the most frequent token, the alphabetically first on ties. A
// cluster without tokens is labelled with its first keyword.
func label(counts map[string]int, fallback string) string {
	best, bestCount := "", 0
	for t, c := range counts {
		if c > bestCount || (c == bestCount && t < best) {
			best, bestCount = t, c
		}
	}
	if best == "" {
		return strings.ToLower(fallback)
	}

	return best
}

type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

func (uf *unionFind) find(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}

	return i
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	switch {
	case ra == rb:
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
}
