package aggregates

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"superviseme/domain/core/entities"
	"superviseme/domain/core/valueobjects"
)

// Sentinel errors for operations invoked against the wrong node or state.
// None of them leaves the graph in a partially applied state.
var (
	ErrNodeNotFound     = errors.New("node not found in graph")
	ErrNotExpandable    = errors.New("node kind does not support expansion")
	ErrAlreadyExpanded  = errors.New("node is already expanded")
	ErrAlreadyCollapsed = errors.New("node is already collapsed")
)

// Link is a containment edge between two graph nodes
// (cluster→subcategory or subcategory→supervisor)
type Link struct {
	Source valueobjects.NodeID `json:"source"`
	Target valueobjects.NodeID `json:"target"`
}

// Graph is the aggregate root for the visualization graph. It owns the node
// and link collections and enforces the consistency rules between them:
// links never outlive their endpoints, subcategory nodes exist only under an
// expanded cluster, supervisor nodes only under an expanded subcategory.
//
// The graph is built lazily from a cluster index it never mutates: expansion
// materializes children on demand, collapse removes whole subtrees.
type Graph struct {
	index     map[string]*entities.ClusterEntry
	nodes     map[valueobjects.NodeID]*entities.GraphNode
	links     map[string]*Link
	version   int
	updatedAt time.Time
}

// NewGraph creates a graph over a cluster index and initializes it to the
// all-collapsed state
func NewGraph(index map[string]*entities.ClusterEntry) (*Graph, error) {
	if len(index) == 0 {
		return nil, errors.New("cluster index required")
	}
	g := &Graph{index: index}
	g.Initialize()
	return g, nil
}

// Initialize resets the graph to exactly one collapsed node per cluster and
// no links. Idempotent: calling it twice yields the identical node set, so
// it doubles as the full reset behind collapse-all.
func (g *Graph) Initialize() {
	g.nodes = make(map[valueobjects.NodeID]*entities.GraphNode, len(g.index))
	g.links = make(map[string]*Link)

	for name, entry := range g.index {
		node := entities.NewClusterNode(name, entry.TotalSupervisors)
		g.nodes[node.ID] = node
	}

	g.touch()
}

// Expand materializes the children of a collapsed cluster or subcategory
// node. Node identifiers are derived from the hierarchy path, so re-expansion
// after a collapse recreates identical identifiers for identical data.
func (g *Graph) Expand(id valueobjects.NodeID) error {
	node, exists := g.nodes[id]
	if !exists {
		return ErrNodeNotFound
	}
	if !node.Kind.Expandable() {
		return ErrNotExpandable
	}
	if node.Expanded {
		return ErrAlreadyExpanded
	}

	entry, ok := g.index[node.Cluster]
	if !ok {
		return fmt.Errorf("cluster %q: %w", node.Cluster, ErrNodeNotFound)
	}

	switch node.Kind {
	case valueobjects.KindCluster:
		for _, sub := range entry.Subcategories {
			child := entities.NewSubcategoryNode(node.Cluster, sub, len(entry.SupervisorsIn(sub)))
			g.addNode(child)
			g.addLink(node.ID, child.ID)
		}
	case valueobjects.KindSubcategory:
		for _, s := range entry.SupervisorsIn(node.Subcategory) {
			child := entities.NewSupervisorNode(node.Cluster, node.Subcategory, s)
			g.addNode(child)
			g.addLink(node.ID, child.ID)
		}
	}

	node.Expanded = true
	g.touch()
	return nil
}

// Collapse removes the whole subtree under an expanded node. For a cluster
// that includes supervisor nodes beneath its subcategories regardless of
// their own expand state.
func (g *Graph) Collapse(id valueobjects.NodeID) error {
	node, exists := g.nodes[id]
	if !exists {
		return ErrNodeNotFound
	}
	if !node.Kind.Expandable() {
		return ErrNotExpandable
	}
	if !node.Expanded {
		return ErrAlreadyCollapsed
	}

	switch node.Kind {
	case valueobjects.KindCluster:
		for childID, child := range g.nodes {
			if child.Cluster == node.Cluster && !childID.Equals(id) {
				g.removeNode(childID)
			}
		}
	case valueobjects.KindSubcategory:
		for childID, child := range g.nodes {
			if child.Kind == valueobjects.KindSupervisor &&
				child.Cluster == node.Cluster &&
				child.Subcategory == node.Subcategory {
				g.removeNode(childID)
			}
		}
	}

	node.Expanded = false
	g.touch()
	return nil
}

// ExpandAll expands every collapsed cluster, then every collapsed
// subcategory. Two passes: subcategory nodes only exist once their cluster
// has been expanded.
func (g *Graph) ExpandAll() {
	for _, id := range g.collapsedOfKind(valueobjects.KindCluster) {
		// Only the already-expanded guard can fire here, and the snapshot
		// excludes those nodes.
		_ = g.Expand(id)
	}
	for _, id := range g.collapsedOfKind(valueobjects.KindSubcategory) {
		_ = g.Expand(id)
	}
}

// CollapseAll resets the graph to its initial state. A full rebuild from the
// index, not a recursive collapse walk.
func (g *Graph) CollapseAll() {
	g.Initialize()
}

// Node retrieves a node by ID
func (g *Graph) Node(id valueobjects.NodeID) (*entities.GraphNode, error) {
	node, exists := g.nodes[id]
	if !exists {
		return nil, ErrNodeNotFound
	}
	return node, nil
}

// HasNode checks membership without an error
func (g *Graph) HasNode(id valueobjects.NodeID) bool {
	_, exists := g.nodes[id]
	return exists
}

// Nodes returns the current nodes ordered by identifier, so renders and
// layout seeding are deterministic
func (g *Graph) Nodes() []*entities.GraphNode {
	nodes := make([]*entities.GraphNode, 0, len(g.nodes))
	for _, node := range g.nodes {
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].ID.String() < nodes[j].ID.String()
	})
	return nodes
}

// Links returns the current links ordered by source, then target
func (g *Graph) Links() []*Link {
	links := make([]*Link, 0, len(g.links))
	for _, link := range g.links {
		links = append(links, link)
	}
	sort.Slice(links, func(i, j int) bool {
		if links[i].Source.String() != links[j].Source.String() {
			return links[i].Source.String() < links[j].Source.String()
		}
		return links[i].Target.String() < links[j].Target.String()
	})
	return links
}

// NodeCount returns the number of nodes currently materialized
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// LinkCount returns the number of links currently materialized
func (g *Graph) LinkCount() int {
	return len(g.links)
}

// Version increments on every mutation; callers can use it to detect stale
// renders
func (g *Graph) Version() int {
	return g.version
}

// UpdatedAt returns when the graph last changed
func (g *Graph) UpdatedAt() time.Time {
	return g.updatedAt
}

// Validate checks the aggregate invariants: no orphaned links, every cluster
// node present, children only under an expanded parent
func (g *Graph) Validate() error {
	for _, link := range g.links {
		if _, exists := g.nodes[link.Source]; !exists {
			return fmt.Errorf("link references missing source node %s", link.Source)
		}
		if _, exists := g.nodes[link.Target]; !exists {
			return fmt.Errorf("link references missing target node %s", link.Target)
		}
	}

	for name := range g.index {
		if !g.HasNode(valueobjects.ClusterNodeID(name)) {
			return fmt.Errorf("cluster node missing for %q", name)
		}
	}

	for _, node := range g.nodes {
		switch node.Kind {
		case valueobjects.KindSubcategory:
			parent, exists := g.nodes[valueobjects.ClusterNodeID(node.Cluster)]
			if !exists || !parent.Expanded {
				return fmt.Errorf("subcategory node %s exists under a collapsed cluster", node.ID)
			}
		case valueobjects.KindSupervisor:
			parent, exists := g.nodes[valueobjects.SubcategoryNodeID(node.Cluster, node.Subcategory)]
			if !exists || !parent.Expanded {
				return fmt.Errorf("supervisor node %s exists under a collapsed subcategory", node.ID)
			}
		}
	}

	return nil
}

// Private helpers

func (g *Graph) addNode(node *entities.GraphNode) {
	if _, exists := g.nodes[node.ID]; exists {
		return
	}
	g.nodes[node.ID] = node
}

func (g *Graph) addLink(source, target valueobjects.NodeID) {
	key := g.makeLinkKey(source, target)
	if _, exists := g.links[key]; exists {
		return
	}
	g.links[key] = &Link{Source: source, Target: target}
}

// removeNode deletes a node together with every link touching it, so the
// link set stays a subset of valid node pairs within a single operation
func (g *Graph) removeNode(id valueobjects.NodeID) {
	delete(g.nodes, id)
	for key, link := range g.links {
		if link.Source.Equals(id) || link.Target.Equals(id) {
			delete(g.links, key)
		}
	}
}

func (g *Graph) collapsedOfKind(kind valueobjects.NodeKind) []valueobjects.NodeID {
	var ids []valueobjects.NodeID
	for id, node := range g.nodes {
		if node.Kind == kind && !node.Expanded {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

func (g *Graph) makeLinkKey(source, target valueobjects.NodeID) string {
	return source.String() + "->" + target.String()
}

func (g *Graph) touch() {
	g.version++
	g.updatedAt = time.Now()
}
