package catalog

import (
	"strings"
	"testing"
)

// minimalNode builds a structurally valid node for validation tests.
func minimalNode(id string, order int, prereqs ...string) PathNode {
	tasks := make(map[Channel]ChannelTask)
	hours := make(map[Channel]int)
	diff := make(map[Channel]int)
	for i, ch := range AllChannels() {
		tasks[ch] = ChannelTask{Description: "task " + id}
		hours[ch] = 4 * (i + 1)
		diff[ch] = 3 * (i + 1)
	}
	return PathNode{
		ID:              id,
		Name:            id,
		Order:           order,
		Prerequisites:   prereqs,
		ChannelTasks:    tasks,
		EstimatedHours:  hours,
		DifficultyLevel: diff,
		BaseWeeks:       1,
	}
}

func TestValidateDanglingPrerequisite(t *testing.T) {
	nodes := []PathNode{
		minimalNode("a", 1),
		minimalNode("b", 2, "ghost"),
	}
	_, err := New(nodes)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite")
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error should name the missing prerequisite: %v", err)
	}
}

func TestValidateDuplicateID(t *testing.T) {
	nodes := []PathNode{
		minimalNode("a", 1),
		minimalNode("a", 2),
	}
	if _, err := New(nodes); err == nil {
		t.Fatal("expected error for duplicate ID")
	}
}

func TestValidateMissingChannelTask(t *testing.T) {
	n := minimalNode("a", 1)
	delete(n.ChannelTasks, ChannelC)
	if _, err := New([]PathNode{n}); err == nil {
		t.Fatal("expected error for missing channel task")
	}
}

func TestValidateCycle(t *testing.T) {
	nodes := []PathNode{
		minimalNode("a", 1, "b"),
		minimalNode("b", 2, "a"),
		minimalNode("root", 3),
	}
	_, err := New(nodes)
	if err == nil {
		t.Fatal("expected error for prerequisite cycle")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention the cycle: %v", err)
	}
}

func TestValidateEmptyCatalog(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestValidateBadDifficulty(t *testing.T) {
	n := minimalNode("a", 1)
	n.DifficultyLevel[ChannelB] = 11
	if _, err := New([]PathNode{n}); err == nil {
		t.Fatal("expected error for out-of-range difficulty")
	}
}
