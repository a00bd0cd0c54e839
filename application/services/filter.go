package services

import (
	"strings"

	"superviseme/domain/core/entities"
	"superviseme/domain/core/valueobjects"
)

// Filter derives read-only views of the cluster index. Every method returns
// a fresh mapping; the base index is never mutated, so filters compose:
// confidence first, then search over its result.
type Filter struct{}

// NewFilter creates a new filter engine
func NewFilter() *Filter {
	return &Filter{}
}

// ByConfidence keeps only supervisors at the given level, dropping clusters
// left empty. The subcategory sequence and high/medium counters are carried
// over unrecomputed: they describe the whole field, not the filtered subset.
// "all" returns a structurally equal copy.
func (f *Filter) ByConfidence(index map[string]*entities.ClusterEntry, level valueobjects.Confidence) map[string]*entities.ClusterEntry {
	view := make(map[string]*entities.ClusterEntry, len(index))

	for name, entry := range index {
		if level == valueobjects.ConfidenceAll {
			view[name] = entry.WithSupervisors(entry.Supervisors)
			continue
		}

		var kept []entities.SupervisorSummary
		for _, s := range entry.Supervisors {
			if s.Confidence == level {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			continue
		}
		view[name] = entry.WithSupervisors(kept)
	}

	return view
}

// BySearch filters a view by case-insensitive substring match. The matching
// policy is asymmetric on purpose: a hit on the cluster name or any
// subcategory name means the whole field is relevant, so the cluster is kept
// with its full supervisor list. Otherwise the cluster survives only through
// individually matching supervisors, and only those are kept. An empty term
// is the identity transform.
func (f *Filter) BySearch(view map[string]*entities.ClusterEntry, term string) map[string]*entities.ClusterEntry {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return view
	}

	result := make(map[string]*entities.ClusterEntry)

	for name, entry := range view {
		if containsFold(name, term) || anyMatches(entry.Subcategories, term) {
			result[name] = entry
			continue
		}

		var matched []entities.SupervisorSummary
		for _, s := range entry.Supervisors {
			if containsFold(s.Name, term) || anyMatches(s.Subcategories, term) {
				matched = append(matched, s)
			}
		}
		if len(matched) > 0 {
			result[name] = entry.WithSupervisors(matched)
		}
	}

	return result
}

// containsFold expects term to be lowercased already
func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}

func anyMatches(names []string, term string) bool {
	for _, name := range names {
		if containsFold(name, term) {
			return true
		}
	}
	return false
}
