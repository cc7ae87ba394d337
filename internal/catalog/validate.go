package catalog

import (
	"fmt"
	"strings"
)

// validateNodes performs all structural checks on the given node set.
// Returns a combined error describing all problems found, or nil if valid.
func validateNodes(nodes []PathNode) error {
	var errs []string

	if len(nodes) == 0 {
		return fmt.Errorf("catalog validation failed:\n  no nodes defined")
	}

	idSet := make(map[string]bool, len(nodes))
	orderSet := make(map[int]string, len(nodes))

	// Duplicate IDs and duplicate order positions.
	for _, n := range nodes {
		if n.ID == "" {
			errs = append(errs, "node with empty ID")
			continue
		}
		if idSet[n.ID] {
			errs = append(errs, fmt.Sprintf("duplicate node ID: %q", n.ID))
		}
		idSet[n.ID] = true

		if prev, ok := orderSet[n.Order]; ok {
			errs = append(errs, fmt.Sprintf("nodes %q and %q share order %d", prev, n.ID, n.Order))
		}
		orderSet[n.Order] = n.ID
	}

	// Dangling prerequisites.
	for _, n := range nodes {
		for _, p := range n.Prerequisites {
			if !idSet[p] {
				errs = append(errs, fmt.Sprintf("node %q references nonexistent prerequisite %q", n.ID, p))
			}
		}
	}

	// Every node must define all three channels completely.
	for _, n := range nodes {
		for _, ch := range AllChannels() {
			if _, ok := n.ChannelTasks[ch]; !ok {
				errs = append(errs, fmt.Sprintf("node %q missing channel %s task", n.ID, ch))
			} else if n.ChannelTasks[ch].Description == "" {
				errs = append(errs, fmt.Sprintf("node %q channel %s task has empty description", n.ID, ch))
			}
			if h, ok := n.EstimatedHours[ch]; !ok || h <= 0 {
				errs = append(errs, fmt.Sprintf("node %q channel %s: estimated hours must be > 0", n.ID, ch))
			}
			if d, ok := n.DifficultyLevel[ch]; !ok || d < 1 || d > 10 {
				errs = append(errs, fmt.Sprintf("node %q channel %s: difficulty must be in 1..10", n.ID, ch))
			}
		}
		if n.BaseWeeks <= 0 {
			errs = append(errs, fmt.Sprintf("node %q: base weeks must be > 0", n.ID))
		}
	}

	// Cycle check (Kahn's algorithm over prerequisite edges).
	inDegree := make(map[string]int, len(nodes))
	adj := make(map[string][]string)
	for _, n := range nodes {
		inDegree[n.ID] = len(n.Prerequisites)
		for _, p := range n.Prerequisites {
			adj[p] = append(adj[p], n.ID)
		}
	}

	var queue []string
	for _, n := range nodes {
		if inDegree[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range adj[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if visited < len(nodes) {
		var cycleNodes []string
		for _, n := range nodes {
			if inDegree[n.ID] > 0 {
				cycleNodes = append(cycleNodes, n.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving nodes: %s", strings.Join(cycleNodes, ", ")))
	}

	hasRoot := false
	for _, n := range nodes {
		if len(n.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no root nodes found (at least one node must have no prerequisites)")
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
