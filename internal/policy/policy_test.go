package policy

import (
	"testing"

	"github.com/akoirala/pathwise/internal/catalog"
)

func TestDecide(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name        string
		mastery     float64
		frustration float64
		retries     int
		want        Decision
	}{
		{"high mastery low frustration", 0.90, 0.10, 0, DecisionUpgrade},
		{"high mastery at frustration ceiling", 0.90, 0.20, 0, DecisionKeep},
		{"high mastery high frustration", 0.90, 0.50, 0, DecisionKeep},
		{"mastery at upgrade boundary", 0.85, 0.10, 0, DecisionKeep},
		{"mid mastery", 0.70, 0.10, 0, DecisionKeep},
		{"low mastery", 0.40, 0.10, 0, DecisionDowngrade},
		{"low mastery high frustration", 0.40, 0.90, 0, DecisionDowngrade},
		{"mastery at pass boundary", 0.60, 0.10, 0, DecisionKeep},
		{"retries exhausted", 0.70, 0.10, 3, DecisionDowngrade},
		{"retries below limit", 0.70, 0.10, 2, DecisionKeep},
		{"perfect score", 1.0, 0.0, 0, DecisionUpgrade},
		{"zero score", 0.0, 0.0, 0, DecisionDowngrade},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(th, tt.mastery, tt.frustration, tt.retries)
			if got != tt.want {
				t.Errorf("Decide(%.2f, %.2f, %d) = %s, want %s",
					tt.mastery, tt.frustration, tt.retries, got, tt.want)
			}
		})
	}
}

// TestDowngradePrecedence asserts the safety bias: with thresholds bent so
// both branches textually apply, downgrade wins.
func TestDowngradePrecedence(t *testing.T) {
	th := Thresholds{
		UpgradeMastery:     0.50,
		UpgradeFrustration: 1.0,
		PassMastery:        0.90, // overlaps the upgrade band
		MaxRetries:         3,
	}
	if got := Decide(th, 0.80, 0.0, 0); got != DecisionDowngrade {
		t.Errorf("overlapping thresholds: got %s, want %s", got, DecisionDowngrade)
	}
}

// TestDowngradeRegardlessOfFrustration covers the invariant that mastery
// below the pass floor downgrades no matter what frustration reads.
func TestDowngradeRegardlessOfFrustration(t *testing.T) {
	th := DefaultThresholds()
	for _, f := range []float64{0.0, 0.1, 0.5, 1.0} {
		if got := Decide(th, 0.59, f, 0); got != DecisionDowngrade {
			t.Errorf("mastery 0.59 frustration %.1f: got %s, want downgrade", f, got)
		}
	}
}

func TestApplySaturates(t *testing.T) {
	tests := []struct {
		ch   catalog.Channel
		d    Decision
		want catalog.Channel
	}{
		{catalog.ChannelA, DecisionUpgrade, catalog.ChannelB},
		{catalog.ChannelB, DecisionUpgrade, catalog.ChannelC},
		{catalog.ChannelC, DecisionUpgrade, catalog.ChannelC},
		{catalog.ChannelC, DecisionDowngrade, catalog.ChannelB},
		{catalog.ChannelB, DecisionDowngrade, catalog.ChannelA},
		{catalog.ChannelA, DecisionDowngrade, catalog.ChannelA},
		{catalog.ChannelB, DecisionKeep, catalog.ChannelB},
	}

	for _, tt := range tests {
		if got := Apply(tt.ch, tt.d); got != tt.want {
			t.Errorf("Apply(%s, %s) = %s, want %s", tt.ch, tt.d, got, tt.want)
		}
	}
}
