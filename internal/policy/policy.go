// Package policy implements the channel decision rule evaluated after
// every graded submission: upgrade, keep, or downgrade with scaffolding.
// The decision is a pure function of the latest mastery, the running
// frustration level, and the retry count on the current node.
package policy

import "github.com/akoirala/pathwise/internal/catalog"

// Decision is the outcome of the path decision rule.
type Decision string

const (
	DecisionUpgrade   Decision = "upgrade"
	DecisionKeep      Decision = "keep"
	DecisionDowngrade Decision = "downgrade_with_scaffold"
)

// DisplayName returns a human-readable label for a decision.
func (d Decision) DisplayName() string {
	switch d {
	case DecisionUpgrade:
		return "Upgrade"
	case DecisionKeep:
		return "Keep"
	case DecisionDowngrade:
		return "Downgrade with scaffold"
	default:
		return string(d)
	}
}

// Thresholds holds the decision constants. The defaults mirror the
// course's calibration; they are carried as configuration rather than
// literals so a recalibration does not touch the rule itself.
type Thresholds struct {
	// UpgradeMastery is the mastery floor (exclusive) for an upgrade.
	UpgradeMastery float64
	// UpgradeFrustration is the frustration ceiling (exclusive) for an upgrade.
	UpgradeFrustration float64
	// PassMastery is the mastery floor below which a downgrade triggers.
	PassMastery float64
	// MaxRetries is the retry count at which a downgrade triggers
	// regardless of mastery.
	MaxRetries int
}

// DefaultThresholds returns the standard decision calibration.
func DefaultThresholds() Thresholds {
	return Thresholds{
		UpgradeMastery:     0.85,
		UpgradeFrustration: 0.20,
		PassMastery:        0.60,
		MaxRetries:         3,
	}
}

// Decide applies the decision rule. mastery and frustration are in 0..1;
// retries is the retry count for the student's current node.
//
// The downgrade branch is checked first: if the thresholds were ever
// reconfigured so that both branches could apply, the safety-biased
// downgrade wins.
func Decide(t Thresholds, mastery, frustration float64, retries int) Decision {
	if mastery < t.PassMastery || retries >= t.MaxRetries {
		return DecisionDowngrade
	}
	if mastery > t.UpgradeMastery && frustration < t.UpgradeFrustration {
		return DecisionUpgrade
	}
	return DecisionKeep
}

// Apply maps a decision onto a channel. Upgrade and downgrade saturate
// at the ends of the A < B < C ordering; Keep is a no-op.
func Apply(ch catalog.Channel, d Decision) catalog.Channel {
	switch d {
	case DecisionUpgrade:
		return ch.Above()
	case DecisionDowngrade:
		return ch.Below()
	default:
		return ch
	}
}
