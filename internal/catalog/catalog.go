package catalog

import (
	"fmt"
	"sort"
)

// Catalog holds the fixed node sequence with precomputed indices.
// It is built once at startup and read-only afterwards; construction
// fails fast on any structural problem.
type Catalog struct {
	nodes    []PathNode
	byID     map[string]*PathNode
	sequence []string // node IDs sorted by Order
}

// New builds a Catalog from the given nodes, validating the full
// structure. A malformed catalog is a configuration error: the caller
// should abort startup, not retry.
func New(nodes []PathNode) (*Catalog, error) {
	if err := validateNodes(nodes); err != nil {
		return nil, err
	}

	c := &Catalog{
		nodes: make([]PathNode, len(nodes)),
		byID:  make(map[string]*PathNode, len(nodes)),
	}
	copy(c.nodes, nodes)

	sort.Slice(c.nodes, func(i, j int) bool {
		return c.nodes[i].Order < c.nodes[j].Order
	})

	for i := range c.nodes {
		c.byID[c.nodes[i].ID] = &c.nodes[i]
		c.sequence = append(c.sequence, c.nodes[i].ID)
	}

	return c, nil
}

// Node returns the node with the given ID.
func (c *Catalog) Node(id string) (PathNode, error) {
	n, ok := c.byID[id]
	if !ok {
		return PathNode{}, fmt.Errorf("catalog: node not found: %q", id)
	}
	return *n, nil
}

// Has reports whether a node with the given ID exists.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Sequence returns the node IDs in curriculum order.
func (c *Catalog) Sequence() []string {
	out := make([]string, len(c.sequence))
	copy(out, c.sequence)
	return out
}

// First returns the first node of the sequence.
func (c *Catalog) First() PathNode {
	return c.nodes[0]
}

// Len returns the number of nodes.
func (c *Catalog) Len() int {
	return len(c.nodes)
}

// NextNode returns the ID of the node following current in the sequence.
// The second return is false when current is the last node (or unknown).
func (c *Catalog) NextNode(current string) (string, bool) {
	for i, id := range c.sequence {
		if id == current {
			if i+1 < len(c.sequence) {
				return c.sequence[i+1], true
			}
			return "", false
		}
	}
	return "", false
}

// Nodes returns a copy of all nodes in curriculum order.
func (c *Catalog) Nodes() []PathNode {
	out := make([]PathNode, len(c.nodes))
	copy(out, c.nodes)
	return out
}

// PrerequisitesMet reports whether every prerequisite of the given node
// is present in the completed set.
func (c *Catalog) PrerequisitesMet(id string, completed map[string]bool) bool {
	n, ok := c.byID[id]
	if !ok {
		return false
	}
	for _, p := range n.Prerequisites {
		if !completed[p] {
			return false
		}
	}
	return true
}
