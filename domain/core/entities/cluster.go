package entities

import (
	"sort"

	"superviseme/domain/core/valueobjects"
)

// SupervisorSummary is the per-cluster projection of a supervisor: one entry
// per (supervisor, assignment) pair, carrying only what the cluster view needs
type SupervisorSummary struct {
	Name          string                  `json:"name"`
	Confidence    valueobjects.Confidence `json:"confidence"`
	EvidenceCount int                     `json:"evidence_count"`
	Subcategories []string                `json:"subcategories"`
	ThesisCount   int                     `json:"thesis_count"`
	Timestamp     string                  `json:"timestamp,omitempty"`
}

// HasSubcategory reports whether this supervisor's assignment includes the
// given subcategory name
func (s SupervisorSummary) HasSubcategory(name string) bool {
	for _, sub := range s.Subcategories {
		if sub == name {
			return true
		}
	}
	return false
}

// ClusterEntry groups every supervisor assigned to one top-level research
// area. Built once per dataset load; filters derive new entries and never
// mutate an existing one.
type ClusterEntry struct {
	Name             string              `json:"name"`
	Supervisors      []SupervisorSummary `json:"supervisors"`
	Subcategories    []string            `json:"subcategories"`
	HighConfidence   int                 `json:"high_confidence"`
	MediumConfidence int                 `json:"medium_confidence"`
	TotalSupervisors int                 `json:"total_supervisors"`

	subcatSet map[string]struct{}
}

// NewClusterEntry creates an empty cluster for a top-level area name
func NewClusterEntry(name string) *ClusterEntry {
	return &ClusterEntry{
		Name:      name,
		subcatSet: make(map[string]struct{}),
	}
}

// Add appends a supervisor summary, unions its subcategories into the
// cluster's set and maintains the confidence counters. TotalSupervisors
// tracks the sequence length.
func (c *ClusterEntry) Add(summary SupervisorSummary) {
	c.Supervisors = append(c.Supervisors, summary)
	c.TotalSupervisors = len(c.Supervisors)

	for _, sub := range summary.Subcategories {
		c.subcatSet[sub] = struct{}{}
	}

	switch summary.Confidence {
	case valueobjects.ConfidenceHigh:
		c.HighConfidence++
	case valueobjects.ConfidenceMedium:
		c.MediumConfidence++
	}
}

// Finalize freezes the cluster after the last Add: the subcategory set
// becomes a lexicographically sorted sequence and supervisors are ordered by
// confidence descending, then evidence count descending. Beyond that the
// sort is stable, so encounter order breaks remaining ties.
func (c *ClusterEntry) Finalize() {
	c.Subcategories = make([]string, 0, len(c.subcatSet))
	for sub := range c.subcatSet {
		c.Subcategories = append(c.Subcategories, sub)
	}
	sort.Strings(c.Subcategories)

	sort.SliceStable(c.Supervisors, func(i, j int) bool {
		a, b := c.Supervisors[i], c.Supervisors[j]
		if a.Confidence.Rank() != b.Confidence.Rank() {
			return a.Confidence.Rank() > b.Confidence.Rank()
		}
		return a.EvidenceCount > b.EvidenceCount
	})
}

// WithSupervisors derives a new entry holding only the given subset of this
// cluster's supervisors. The subcategory sequence and confidence counters are
// carried over untouched: they describe the field as a whole, not the subset.
func (c *ClusterEntry) WithSupervisors(kept []SupervisorSummary) *ClusterEntry {
	return &ClusterEntry{
		Name:             c.Name,
		Supervisors:      kept,
		Subcategories:    c.Subcategories,
		HighConfidence:   c.HighConfidence,
		MediumConfidence: c.MediumConfidence,
		TotalSupervisors: len(kept),
	}
}

// SupervisorsIn returns the supervisors whose assignment in this cluster
// includes the given subcategory
func (c *ClusterEntry) SupervisorsIn(subcategory string) []SupervisorSummary {
	var members []SupervisorSummary
	for _, s := range c.Supervisors {
		if s.HasSubcategory(subcategory) {
			members = append(members, s)
		}
	}
	return members
}
