package services

import (
	"sort"

	"github.com/dominikbraun/graph"

	"superviseme/domain/core/entities"
)

// ClusterOverlap is one pair of research areas sharing subcategories
type ClusterOverlap struct {
	Source              string   `json:"source"`
	Target              string   `json:"target"`
	SharedSubcategories []string `json:"shared_subcategories"`
	SharedCount         int      `json:"shared_count"`
}

// OverlapReport describes which research areas blend into each other
type OverlapReport struct {
	Pairs   []ClusterOverlap `json:"pairs"`
	Degrees map[string]int   `json:"degrees"`
}

// Overlap computes cross-cluster analytics over the index: a weighted
// undirected graph of clusters where an edge means shared subcategory names.
// Read-only, rebuilt per call; cheap at this dataset scale.
type Overlap struct{}

// NewOverlap creates a new overlap analyzer
func NewOverlap() *Overlap {
	return &Overlap{}
}

// Analyze builds the overlap graph and reports its edges sorted by shared
// subcategory count descending, then source/target name
func (o *Overlap) Analyze(index map[string]*entities.ClusterEntry) (*OverlapReport, error) {
	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	sort.Strings(names)

	g := graph.New(graph.StringHash, graph.Weighted())
	for _, name := range names {
		if err := g.AddVertex(name); err != nil {
			return nil, err
		}
	}

	shared := make(map[[2]string][]string)
	for i, a := range names {
		for _, b := range names[i+1:] {
			common := intersect(index[a].Subcategories, index[b].Subcategories)
			if len(common) == 0 {
				continue
			}
			if err := g.AddEdge(a, b, graph.EdgeWeight(len(common))); err != nil {
				return nil, err
			}
			shared[[2]string{a, b}] = common
		}
	}

	edges, err := g.Edges()
	if err != nil {
		return nil, err
	}

	report := &OverlapReport{Degrees: make(map[string]int, len(names))}
	for _, name := range names {
		report.Degrees[name] = 0
	}
	for _, edge := range edges {
		a, b := edge.Source, edge.Target
		if a > b {
			a, b = b, a
		}
		report.Pairs = append(report.Pairs, ClusterOverlap{
			Source:              a,
			Target:              b,
			SharedSubcategories: shared[[2]string{a, b}],
			SharedCount:         edge.Properties.Weight,
		})
		report.Degrees[a]++
		report.Degrees[b]++
	}

	sort.Slice(report.Pairs, func(i, j int) bool {
		if report.Pairs[i].SharedCount != report.Pairs[j].SharedCount {
			return report.Pairs[i].SharedCount > report.Pairs[j].SharedCount
		}
		if report.Pairs[i].Source != report.Pairs[j].Source {
			return report.Pairs[i].Source < report.Pairs[j].Source
		}
		return report.Pairs[i].Target < report.Pairs[j].Target
	})

	return report, nil
}

// intersect returns the sorted common elements of two sorted slices
func intersect(a, b []string) []string {
	var common []string
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			common = append(common, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return common
}
