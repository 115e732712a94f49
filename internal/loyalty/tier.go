// Package loyalty holds the pure rules of the loyalty program: tier
// placement, milestone detection, reward sources and discount computation.
// Nothing in this package touches storage.
package loyalty

import (
	"fmt"
	"strings"
)

// Tier is a loyalty rank derived from cumulative visits.
type Tier string

const (
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

// Tiers lists every tier from lowest to highest.
var Tiers = []Tier{TierBronze, TierSilver, TierGold}

// ParseTier validates a stored or user supplied tier name.
func ParseTier(s string) (Tier, error) {
	switch t := Tier(strings.ToLower(strings.TrimSpace(s))); t {
	case TierBronze, TierSilver, TierGold:
		return t, nil
	default:
		return "", fmt.Errorf("unknown tier %q", s)
	}
}

// Rank orders tiers; bronze is 0.
func (t Tier) Rank() int {
	switch t {
	case TierSilver:
		return 1
	case TierGold:
		return 2
	default:
		return 0
	}
}

// DisplayName returns the capitalised tier name used in reward titles.
func (t Tier) DisplayName() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// TierRange is the visit range of one tier. Max is informational and nil for
// the open-ended top tier.
type TierRange struct {
	Min int  `json:"min"`
	Max *int `json:"max,omitempty"`
}

// Thresholds maps visit counts to tiers.
type Thresholds struct {
	Bronze TierRange `json:"bronze"`
	Silver TierRange `json:"silver"`
	Gold   TierRange `json:"gold"`
}

// DefaultThresholds is bronze 0-9, silver 10-19, gold 20+.
func DefaultThresholds() Thresholds {
	bronzeMax, silverMax := 9, 19
	return Thresholds{
		Bronze: TierRange{Min: 0, Max: &bronzeMax},
		Silver: TierRange{Min: 10, Max: &silverMax},
		Gold:   TierRange{Min: 20},
	}
}

// Validate rejects threshold sets that cannot order the tiers.
func (t Thresholds) Validate() error {
	if t.Bronze.Min != 0 {
		return fmt.Errorf("bronze minimum must be 0, got %d", t.Bronze.Min)
	}
	if t.Silver.Min <= 0 {
		return fmt.Errorf("silver minimum must be positive, got %d", t.Silver.Min)
	}
	if t.Gold.Min <= t.Silver.Min {
		return fmt.Errorf("gold minimum %d must exceed silver minimum %d", t.Gold.Min, t.Silver.Min)
	}
	return nil
}

// Min returns the minimum visit count of a tier.
func (t Thresholds) Min(tier Tier) int {
	switch tier {
	case TierGold:
		return t.Gold.Min
	case TierSilver:
		return t.Silver.Min
	default:
		return t.Bronze.Min
	}
}

// TierOf places a visit count in a tier. Gold is checked first, so a count
// meeting the gold minimum is gold even if it also falls in silver's range.
func TierOf(visits int, t Thresholds) Tier {
	switch {
	case visits >= t.Gold.Min:
		return TierGold
	case visits >= t.Silver.Min:
		return TierSilver
	default:
		return TierBronze
	}
}

// NextTier returns the tier above t, if any.
func NextTier(t Tier) (Tier, bool) {
	switch t {
	case TierBronze:
		return TierSilver, true
	case TierSilver:
		return TierGold, true
	default:
		return "", false
	}
}

// Progress describes how far a customer is from the next tier.
type Progress struct {
	Current       Tier `json:"current_tier"`
	Next          Tier `json:"next_tier,omitempty"`
	VisitsToNext  int  `json:"visits_to_next"`
	AtHighestTier bool `json:"at_highest_tier"`
}

// ProgressOf computes tier progress for a visit count.
func ProgressOf(visits int, t Thresholds) Progress {
	current := TierOf(visits, t)
	next, ok := NextTier(current)
	if !ok {
		return Progress{Current: current, AtHighestTier: true}
	}
	remaining := t.Min(next) - visits
	if remaining < 0 {
		remaining = 0
	}
	return Progress{Current: current, Next: next, VisitsToNext: remaining}
}

// Transition is a change of tier.
type Transition struct {
	From Tier `json:"from"`
	To   Tier `json:"to"`
}

// Key names the transition the way graduation rewards are configured,
// e.g. "bronze_to_silver".
func (tr Transition) Key() string {
	return string(tr.From) + "_to_" + string(tr.To)
}

// IsUpgrade reports whether the transition moves up.
func (tr Transition) IsUpgrade() bool {
	return tr.To.Rank() > tr.From.Rank()
}
