package processor

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"loyalty-server/internal/events"
	"loyalty-server/internal/loyalty"
	loyaltyProcessor "loyalty-server/internal/loyalty/processor"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/settings"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type ReferralProcessor struct {
	store   ReferralStore
	rewards RewardGranter
	logger  *observability.Logger
}

func New(referralStore ReferralStore, rewards RewardGranter, logger *observability.Logger) ReferralProcessor {
	return ReferralProcessor{
		store:   referralStore,
		rewards: rewards,
		logger:  logger,
	}
}

// Resolution is the result of a referral code that resolved to a referrer
type Resolution struct {
	Referral store.Referral
	Reward   store.Reward
}

// Events returns the domain events for a committed resolution
func (r Resolution) Events() []events.Event {
	return []events.Event{
		events.ReferralCreated(r.Referral),
		events.RewardEarned(r.Reward),
	}
}

// ResolveTx links a new profile to the owner of code and rewards the owner.
// It runs inside the signup transaction. A code that is blank, unknown, or
// owned by the new profile itself resolves to nil without an error so signup
// is never blocked.
func (p *ReferralProcessor) ResolveTx(ctx context.Context, q store.LoyaltyQueries, cfg settings.Settings, referred store.Profile, code string) (*Resolution, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referred_id", Value: referred.ID.String()},
		observability.Field{Key: "referral_code", Value: code},
	)

	if !cfg.Features.Referrals {
		p.logger.Debug(ctx, "referrals disabled, ignoring referral code")
		return nil, nil
	}

	referrer, err := q.GetProfileByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "referral code did not resolve")
			return nil, nil
		}
		p.logger.Error(ctx, "failed to look up referral code", err)
		return nil, err
	}
	if referrer.ID == referred.ID {
		p.logger.Info(ctx, "ignoring self-referral")
		return nil, nil
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "referrer_id", Value: referrer.ID.String()})

	referral, err := q.CreateReferral(ctx, store.CreateReferralParams{
		ReferrerID:    referrer.ID,
		ReferredID:    referred.ID,
		ReferralCode:  code,
		RewardGranted: true,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create referral", err)
		return nil, err
	}

	value := cfg.Referral.Value
	reward, err := p.rewards.GrantTx(ctx, q, cfg, referrer.ID, loyaltyProcessor.Grant{
		Source:      loyalty.Referral{ReferredID: referred.ID},
		Benefit:     loyalty.Fixed(value),
		Title:       "Referral Reward",
		Description: fmt.Sprintf("Thanks for bringing %s! Enjoy %s off your next order.", referredName(referred), value.StringFixed(2)),
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "referral resolved")
	return &Resolution{Referral: referral, Reward: reward}, nil
}

func referredName(p store.Profile) string {
	if p.FullName != nil && strings.TrimSpace(*p.FullName) != "" {
		return strings.TrimSpace(*p.FullName)
	}
	return "a friend"
}

// ListReferralsRequest represents parameters for listing referrals
type ListReferralsRequest struct {
	Page  int
	Limit int
}

// ListReferralsResponse represents the paginated response for referrals
type ListReferralsResponse struct {
	Referrals  []store.Referral `json:"referrals"`
	Pagination Pagination       `json:"pagination"`
}

// Pagination represents pagination metadata
type Pagination struct {
	HasMore    bool `json:"has_more"`
	TotalCount int  `json:"total_count"`
}

// ListReferrals retrieves the referrals a customer made
func (p *ReferralProcessor) ListReferrals(ctx context.Context, referrerID uuid.UUID, req ListReferralsRequest) (ListReferralsResponse, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "referrer_id", Value: referrerID.String()})

	if _, err := p.store.GetProfileByID(ctx, referrerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ListReferralsResponse{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get referrer", err)
		return ListReferralsResponse{}, err
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}
	offset := (req.Page - 1) * req.Limit

	referrals, err := p.store.ListReferralsByReferrer(ctx, referrerID, req.Limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list referrals", err)
		return ListReferralsResponse{}, err
	}
	if referrals == nil {
		referrals = []store.Referral{}
	}

	totalCount, err := p.store.CountReferralsByReferrer(ctx, referrerID)
	if err != nil {
		p.logger.Error(ctx, "failed to count referrals", err)
		return ListReferralsResponse{}, err
	}

	return ListReferralsResponse{
		Referrals: referrals,
		Pagination: Pagination{
			HasMore:    req.Page*req.Limit < totalCount,
			TotalCount: totalCount,
		},
	}, nil
}

// ReferralLink is what a customer shares to invite a friend
type ReferralLink struct {
	Code string `json:"referral_code"`
	URL  string `json:"referral_url"`
}

// GetReferralLink builds the customer's signup link on baseURL
func (p *ReferralProcessor) GetReferralLink(ctx context.Context, userID uuid.UUID, baseURL string) (ReferralLink, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	profile, err := p.store.GetProfileByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ReferralLink{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get profile", err)
		return ReferralLink{}, err
	}

	link := url.URL{Path: "/signup"}
	if base, err := url.Parse(strings.TrimRight(baseURL, "/")); err == nil {
		link = *base
		link.Path += "/signup"
	}
	query := link.Query()
	query.Set("ref", profile.ReferralCode)
	link.RawQuery = query.Encode()

	return ReferralLink{Code: profile.ReferralCode, URL: link.String()}, nil
}
