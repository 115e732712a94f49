// Package settings holds the typed loyalty program configuration. Every field
// has a compile-time default; stored entries override whole sections.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"loyalty-server/internal/loyalty"

	"github.com/shopspring/decimal"
)

// Setting keys
const (
	KeyTierThresholds    = "tier_thresholds"
	KeyTierDiscounts     = "tier_discounts"
	KeyGraduationRewards = "graduation_rewards"
	KeyMilestoneConfig   = "milestone_config"
	KeyReferralReward    = "referral_reward"
	KeyRewardExpiration  = "reward_expiration"
	KeyBirthdayReward    = "birthday_reward"
	KeyFeatures          = "features"
)

var ErrUnknownKey = errors.New("unknown setting key")

// MilestoneConfig controls milestone rewards.
type MilestoneConfig struct {
	EveryVisits int             `json:"every_visits"`
	RewardValue decimal.Decimal `json:"reward_value"`
}

// ReferralReward is the fixed value granted to a referrer.
type ReferralReward struct {
	Value decimal.Decimal `json:"value"`
}

// RewardExpiration is the validity window of new rewards. Zero days means
// rewards never expire.
type RewardExpiration struct {
	Days int `json:"days"`
}

// BirthdayReward controls the yearly birthday reward.
type BirthdayReward struct {
	Enabled bool            `json:"enabled"`
	Value   decimal.Decimal `json:"value"`
}

// Features toggles optional reward sources.
type Features struct {
	Referrals       bool `json:"referrals"`
	Milestones      bool `json:"milestones"`
	BirthdayRewards bool `json:"birthday_rewards"`
}

// Settings is the full effective configuration.
type Settings struct {
	TierThresholds    loyalty.Thresholds                  `json:"tier_thresholds"`
	TierDiscounts     map[loyalty.Tier]decimal.Decimal    `json:"tier_discounts"`
	GraduationRewards map[string]loyalty.RewardDefinition `json:"graduation_rewards"`
	Milestone         MilestoneConfig                     `json:"milestone_config"`
	Referral          ReferralReward                      `json:"referral_reward"`
	Expiration        RewardExpiration                    `json:"reward_expiration"`
	Birthday          BirthdayReward                      `json:"birthday_reward"`
	Features          Features                            `json:"features"`
}

// Defaults returns the configuration used when nothing is stored.
func Defaults() Settings {
	return Settings{
		TierThresholds: loyalty.DefaultThresholds(),
		TierDiscounts: map[loyalty.Tier]decimal.Decimal{
			loyalty.TierBronze: decimal.Zero,
			loyalty.TierSilver: decimal.NewFromInt(5),
			loyalty.TierGold:   decimal.NewFromInt(10),
		},
		GraduationRewards: map[string]loyalty.RewardDefinition{
			"bronze_to_silver": {
				Type:        loyalty.BenefitFixed,
				Value:       decimal.NewFromInt(10),
				Title:       "Welcome to {tier}!",
				Description: "Congratulations on reaching {tier} tier. Enjoy 10.00 off your next order.",
			},
			"silver_to_gold": {
				Type:        loyalty.BenefitPercentage,
				Value:       decimal.NewFromInt(15),
				Title:       "Welcome to {tier}!",
				Description: "Congratulations on reaching {tier} tier. Enjoy 15% off your next order.",
			},
		},
		Milestone: MilestoneConfig{
			EveryVisits: loyalty.DefaultMilestoneEvery,
			RewardValue: decimal.NewFromInt(10),
		},
		Referral:   ReferralReward{Value: decimal.NewFromInt(15)},
		Expiration: RewardExpiration{Days: 90},
		Birthday:   BirthdayReward{Enabled: true, Value: decimal.NewFromInt(10)},
		Features:   Features{Referrals: true, Milestones: true, BirthdayRewards: true},
	}
}

// section decodes one stored key onto s. Decoding starts from the current
// value of the section so absent fields of struct sections keep their value.
type section func(raw []byte, s *Settings) error

var sections = map[string]section{
	KeyTierThresholds: func(raw []byte, s *Settings) error {
		v := s.TierThresholds
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		if err := v.Validate(); err != nil {
			return err
		}
		s.TierThresholds = v
		return nil
	},
	KeyTierDiscounts: func(raw []byte, s *Settings) error {
		var v map[string]decimal.Decimal
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		out := make(map[loyalty.Tier]decimal.Decimal, len(v))
		for name, pct := range v {
			tier, err := loyalty.ParseTier(name)
			if err != nil {
				return err
			}
			if pct.IsNegative() || pct.GreaterThan(decimal.NewFromInt(100)) {
				return fmt.Errorf("discount for %s must be within [0, 100], got %s", tier, pct)
			}
			out[tier] = pct
		}
		s.TierDiscounts = out
		return nil
	},
	KeyGraduationRewards: func(raw []byte, s *Settings) error {
		var v map[string]loyalty.RewardDefinition
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		for key, def := range v {
			if !isTransitionKey(key) {
				return fmt.Errorf("unknown tier transition %q", key)
			}
			if err := def.Validate(); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
		s.GraduationRewards = v
		return nil
	},
	KeyMilestoneConfig: func(raw []byte, s *Settings) error {
		v := s.Milestone
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		if v.EveryVisits <= 0 {
			return fmt.Errorf("every_visits must be positive, got %d", v.EveryVisits)
		}
		if !v.RewardValue.IsPositive() {
			return fmt.Errorf("reward_value must be positive, got %s", v.RewardValue)
		}
		s.Milestone = v
		return nil
	},
	KeyReferralReward: func(raw []byte, s *Settings) error {
		v := s.Referral
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		if !v.Value.IsPositive() {
			return fmt.Errorf("value must be positive, got %s", v.Value)
		}
		s.Referral = v
		return nil
	},
	KeyRewardExpiration: func(raw []byte, s *Settings) error {
		v := s.Expiration
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		if v.Days < 0 {
			return fmt.Errorf("days must not be negative, got %d", v.Days)
		}
		s.Expiration = v
		return nil
	},
	KeyBirthdayReward: func(raw []byte, s *Settings) error {
		v := s.Birthday
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		if v.Enabled && !v.Value.IsPositive() {
			return fmt.Errorf("value must be positive, got %s", v.Value)
		}
		s.Birthday = v
		return nil
	},
	KeyFeatures: func(raw []byte, s *Settings) error {
		v := s.Features
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		s.Features = v
		return nil
	},
}

func isTransitionKey(key string) bool {
	for i := 0; i+1 < len(loyalty.Tiers); i++ {
		if key == (loyalty.Transition{From: loyalty.Tiers[i], To: loyalty.Tiers[i+1]}).Key() {
			return true
		}
	}
	return false
}

// Keys lists every recognised setting key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// KeyError reports a stored entry that could not be applied.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("setting %s: %v", e.Key, e.Err)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// FromEntries overlays stored entries on the defaults. Unknown keys and
// invalid values are skipped, leaving the default in place, and reported in
// the returned slice so callers can log them.
func FromEntries(entries map[string][]byte) (Settings, []error) {
	s := Defaults()
	var errs []error
	for _, key := range sortedKeys(entries) {
		decode, ok := sections[key]
		if !ok {
			errs = append(errs, &KeyError{Key: key, Err: ErrUnknownKey})
			continue
		}
		if err := decode(entries[key], &s); err != nil {
			errs = append(errs, &KeyError{Key: key, Err: err})
		}
	}
	return s, errs
}

// Validate checks a value an admin wants to store under key.
func Validate(key string, raw []byte) error {
	decode, ok := sections[key]
	if !ok {
		return &KeyError{Key: key, Err: ErrUnknownKey}
	}
	s := Defaults()
	if err := decode(raw, &s); err != nil {
		return &KeyError{Key: key, Err: err}
	}
	return nil
}

func sortedKeys(m map[string][]byte) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GraduationReward returns the reward configured for a tier transition.
func (s Settings) GraduationReward(tr loyalty.Transition) (loyalty.RewardDefinition, bool) {
	def, ok := s.GraduationRewards[tr.Key()]
	return def, ok
}

// TierDiscount returns the standing discount percentage of a tier.
func (s Settings) TierDiscount(tier loyalty.Tier) decimal.Decimal {
	return s.TierDiscounts[tier]
}

// ExpiresAt returns the expiration of a reward created at now, or nil when
// rewards never expire.
func (s Settings) ExpiresAt(now time.Time) *time.Time {
	if s.Expiration.Days <= 0 {
		return nil
	}
	t := now.AddDate(0, 0, s.Expiration.Days)
	return &t
}
