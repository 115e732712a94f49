package loyalty

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind discriminates what produced a reward.
type Kind string

const (
	KindMilestone   Kind = "milestone"
	KindTierUpgrade Kind = "tier_upgrade"
	KindReferral    Kind = "referral"
	KindBirthday    Kind = "birthday"
)

// Source is the tagged union of reward origins. Each variant carries only the
// data relevant to its kind.
type Source interface {
	Kind() Kind
	isSource()
}

// Milestone is a reward for reaching an exact visit count.
type Milestone struct {
	Visits int
}

// TierUpgrade is a graduation reward for moving between tiers.
type TierUpgrade struct {
	From Tier
	To   Tier
}

// Referral is a reward for the referrer of ReferredID.
type Referral struct {
	ReferredID uuid.UUID
}

// Birthday is a once-per-year birthday reward.
type Birthday struct {
	Year int
}

func (Milestone) Kind() Kind   { return KindMilestone }
func (TierUpgrade) Kind() Kind { return KindTierUpgrade }
func (Referral) Kind() Kind    { return KindReferral }
func (Birthday) Kind() Kind    { return KindBirthday }

func (Milestone) isSource()   {}
func (TierUpgrade) isSource() {}
func (Referral) isSource()    {}
func (Birthday) isSource()    {}

// BenefitType is how a reward discounts an order.
type BenefitType string

const (
	BenefitFixed      BenefitType = "fixed"
	BenefitPercentage BenefitType = "percentage"
)

// Benefit is exactly one of a fixed amount or a percentage.
type Benefit struct {
	Type   BenefitType
	Amount decimal.Decimal
}

// Fixed builds a fixed-value benefit.
func Fixed(amount decimal.Decimal) Benefit {
	return Benefit{Type: BenefitFixed, Amount: amount}
}

// Percentage builds a percentage benefit.
func Percentage(pct decimal.Decimal) Benefit {
	return Benefit{Type: BenefitPercentage, Amount: pct}
}

// Columns splits the benefit into the nullable reward_value and
// discount_percentage columns.
func (b Benefit) Columns() (value *decimal.Decimal, pct *decimal.Decimal) {
	amount := b.Amount
	if b.Type == BenefitPercentage {
		return nil, &amount
	}
	return &amount, nil
}

// RewardDefinition configures the reward granted for a tier transition.
// Title and Description may contain {tier}, replaced with the new tier's name.
type RewardDefinition struct {
	Type        BenefitType     `json:"type"`
	Value       decimal.Decimal `json:"value"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
}

// Validate rejects definitions that cannot produce a usable reward.
func (d RewardDefinition) Validate() error {
	switch d.Type {
	case BenefitFixed:
		if !d.Value.IsPositive() {
			return fmt.Errorf("fixed reward value must be positive, got %s", d.Value)
		}
	case BenefitPercentage:
		if !d.Value.IsPositive() || d.Value.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("percentage must be in (0, 100], got %s", d.Value)
		}
	default:
		return fmt.Errorf("unknown reward type %q", d.Type)
	}
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("reward title is required")
	}
	return nil
}

// Benefit returns the definition's discount.
func (d RewardDefinition) Benefit() Benefit {
	return Benefit{Type: d.Type, Amount: d.Value}
}

// Render interpolates the tier name into the title and description templates.
func (d RewardDefinition) Render(tier Tier) (title, description string) {
	r := strings.NewReplacer("{tier}", tier.DisplayName())
	return r.Replace(d.Title), r.Replace(d.Description)
}
