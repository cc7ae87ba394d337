package catalog

import (
	"testing"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if c.Len() != 7 {
		t.Errorf("expected 7 nodes, got %d", c.Len())
	}

	seq := c.Sequence()
	want := []string{
		"api_calling", "model_deployment", "no_code_ai",
		"rag_system", "ui_design", "frontend_dev", "backend_dev",
	}
	for i, id := range want {
		if seq[i] != id {
			t.Errorf("sequence[%d] = %q, want %q", i, seq[i], id)
		}
	}

	if c.First().ID != "api_calling" {
		t.Errorf("First() = %q, want api_calling", c.First().ID)
	}
}

func TestNextNode(t *testing.T) {
	c := MustDefault()

	tests := []struct {
		current string
		want    string
		ok      bool
	}{
		{"api_calling", "model_deployment", true},
		{"rag_system", "ui_design", true},
		{"backend_dev", "", false},
		{"unknown_node", "", false},
	}

	for _, tt := range tests {
		got, ok := c.NextNode(tt.current)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NextNode(%q) = (%q, %v), want (%q, %v)", tt.current, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNodeLookup(t *testing.T) {
	c := MustDefault()

	n, err := c.Node("rag_system")
	if err != nil {
		t.Fatalf("Node(rag_system) error: %v", err)
	}
	if n.Hours(ChannelB) != 16 {
		t.Errorf("rag_system hours[B] = %d, want 16", n.Hours(ChannelB))
	}
	if n.Difficulty(ChannelC) != 10 {
		t.Errorf("rag_system difficulty[C] = %d, want 10", n.Difficulty(ChannelC))
	}

	if _, err := c.Node("nope"); err == nil {
		t.Error("expected error for unknown node")
	}
}

func TestChannelOrdering(t *testing.T) {
	tests := []struct {
		ch          Channel
		above, below Channel
	}{
		{ChannelA, ChannelB, ChannelA},
		{ChannelB, ChannelC, ChannelA},
		{ChannelC, ChannelC, ChannelB},
	}
	for _, tt := range tests {
		if got := tt.ch.Above(); got != tt.above {
			t.Errorf("%s.Above() = %s, want %s", tt.ch, got, tt.above)
		}
		if got := tt.ch.Below(); got != tt.below {
			t.Errorf("%s.Below() = %s, want %s", tt.ch, got, tt.below)
		}
	}
}

func TestPrerequisitesMet(t *testing.T) {
	c := MustDefault()

	if !c.PrerequisitesMet("api_calling", nil) {
		t.Error("root node should have prerequisites met with empty set")
	}
	if c.PrerequisitesMet("rag_system", map[string]bool{"api_calling": true}) {
		t.Error("rag_system requires no_code_ai")
	}
	if !c.PrerequisitesMet("model_deployment", map[string]bool{"api_calling": true}) {
		t.Error("model_deployment should be unlocked after api_calling")
	}
}
