package processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"loyalty-server/internal/events"
	"loyalty-server/internal/loyalty"
	"loyalty-server/internal/observability"
	referralProcessor "loyalty-server/internal/referral/processor"
	"loyalty-server/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrProfileExists     = errors.New("profile already exists")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrInvalidUserID     = errors.New("user id is required")
	ErrRoleNotGrantable  = errors.New("role cannot be granted or revoked")
	ErrDateOfBirthFuture = errors.New("date of birth is in the future")
	ErrSelfRevoke        = errors.New("admins cannot revoke their own admin role")
)

type ProfileProcessor struct {
	store    ProfileStore
	resolver ReferralResolver
	settings SettingsLoader
	events   EventPublisher
	validate *validator.Validate
	logger   *observability.Logger
	now      func() time.Time
}

func New(profileStore ProfileStore, resolver ReferralResolver, settingsLoader SettingsLoader, publisher EventPublisher, logger *observability.Logger) ProfileProcessor {
	return ProfileProcessor{
		store:    profileStore,
		resolver: resolver,
		settings: settingsLoader,
		events:   publisher,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// CreateProfileRequest is what the identity provider hands over at signup
type CreateProfileRequest struct {
	UserID       uuid.UUID
	Email        string
	FullName     *string
	Phone        *string
	DateOfBirth  *time.Time
	ReferralCode *string
}

// CreateProfile creates the customer profile for a new identity and resolves
// the referral code it signed up with. An unusable referral code never fails
// the signup.
func (p *ProfileProcessor) CreateProfile(ctx context.Context, req CreateProfileRequest) (store.Profile, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: req.UserID.String()})

	if req.UserID == uuid.Nil {
		return store.Profile{}, ErrInvalidUserID
	}
	email := strings.TrimSpace(req.Email)
	if err := p.validate.Var(email, "required,email"); err != nil {
		return store.Profile{}, ErrInvalidEmail
	}
	if req.DateOfBirth != nil && req.DateOfBirth.After(p.now()) {
		return store.Profile{}, ErrDateOfBirthFuture
	}

	cfg, err := p.settings.Load(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to load settings", err)
		return store.Profile{}, err
	}

	var (
		profile    store.Profile
		resolution *referralProcessor.Resolution
	)
	err = p.store.InTx(ctx, func(q store.LoyaltyQueries) error {
		code, err := referralProcessor.GenerateCode(ctx, q)
		if err != nil {
			p.logger.Error(ctx, "failed to generate referral code", err)
			return err
		}

		profile, err = q.CreateProfile(ctx, store.CreateProfileParams{
			ID:           req.UserID,
			Email:        email,
			FullName:     trimmed(req.FullName),
			Phone:        trimmed(req.Phone),
			DateOfBirth:  req.DateOfBirth,
			ReferralCode: code,
			Roles:        store.StringArray{store.RoleCustomer},
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return ErrProfileExists
			}
			p.logger.Error(ctx, "failed to create profile", err)
			return err
		}

		if err := q.EnsureCustomerStats(ctx, profile.ID); err != nil {
			p.logger.Error(ctx, "failed to create customer stats", err)
			return err
		}

		if req.ReferralCode == nil {
			return nil
		}
		resolution, err = p.resolver.ResolveTx(ctx, q, cfg, profile, *req.ReferralCode)
		if err != nil {
			return err
		}
		if resolution != nil {
			profile, err = q.SetProfileReferredBy(ctx, profile.ID, resolution.Referral.ReferralCode)
			if err != nil {
				p.logger.Error(ctx, "failed to record referred_by", err)
				return err
			}
		}
		return nil
	})
	if err != nil {
		return store.Profile{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "referral_code", Value: profile.ReferralCode}), "profile created")
	if resolution != nil {
		p.events.Publish(ctx, resolution.Events()...)
	}
	return profile, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// GetProfile retrieves a profile by id
func (p *ProfileProcessor) GetProfile(ctx context.Context, id uuid.UUID) (store.Profile, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "profile_id", Value: id.String()})

	profile, err := p.store.GetProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Profile{}, ErrProfileNotFound
		}
		p.logger.Error(ctx, "failed to get profile", err)
		return store.Profile{}, err
	}
	return profile, nil
}

// ProfileStats summarises a customer's standing in the program
type ProfileStats struct {
	TotalVisits   int             `json:"total_visits"`
	CurrentTier   string          `json:"current_tier"`
	NextTier      *string         `json:"next_tier"`
	VisitsToNext  int             `json:"visits_to_next_tier"`
	NextMilestone int             `json:"next_milestone"`
	TierDiscount  decimal.Decimal `json:"tier_discount_percentage"`
}

// GetProfileStats reports visits, tier and progress. A customer with no
// stats row yet starts from zero.
func (p *ProfileProcessor) GetProfileStats(ctx context.Context, id uuid.UUID) (ProfileStats, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "profile_id", Value: id.String()})

	if _, err := p.GetProfile(ctx, id); err != nil {
		return ProfileStats{}, err
	}

	cfg, err := p.settings.Load(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to load settings", err)
		return ProfileStats{}, err
	}

	visits := 0
	stats, err := p.store.GetCustomerStats(ctx, id)
	switch {
	case err == nil:
		visits = stats.TotalVisits
	case errors.Is(err, store.ErrNotFound):
	default:
		p.logger.Error(ctx, "failed to get customer stats", err)
		return ProfileStats{}, err
	}

	progress := loyalty.ProgressOf(visits, cfg.TierThresholds)
	result := ProfileStats{
		TotalVisits:  visits,
		CurrentTier:  string(progress.Current),
		VisitsToNext: progress.VisitsToNext,
		TierDiscount: cfg.TierDiscount(progress.Current),
	}
	if !progress.AtHighestTier {
		next := string(progress.Next)
		result.NextTier = &next
	}
	if cfg.Features.Milestones {
		result.NextMilestone = loyalty.NextMilestone(visits, cfg.Milestone.EveryVisits)
	}
	return result, nil
}

// UpdateProfileRequest holds the editable contact fields; nil leaves a field as is
type UpdateProfileRequest struct {
	FullName    *string
	Phone       *string
	DateOfBirth *time.Time
}

// UpdateProfile edits a profile's contact details
func (p *ProfileProcessor) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (store.Profile, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "profile_id", Value: id.String()})

	if req.DateOfBirth != nil && req.DateOfBirth.After(p.now()) {
		return store.Profile{}, ErrDateOfBirthFuture
	}

	profile, err := p.store.UpdateProfile(ctx, id, store.UpdateProfileParams{
		FullName:    trimmed(req.FullName),
		Phone:       trimmed(req.Phone),
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Profile{}, ErrProfileNotFound
		}
		p.logger.Error(ctx, "failed to update profile", err)
		return store.Profile{}, err
	}
	return profile, nil
}

func grantable(role string) bool {
	return role == store.RoleStaff || role == store.RoleAdmin
}

// AddRole grants staff or admin to a profile. Granting a role the profile
// already holds changes nothing and publishes nothing.
func (p *ProfileProcessor) AddRole(ctx context.Context, profileID uuid.UUID, role string, grantedBy uuid.UUID) (store.Profile, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profileID.String()},
		observability.Field{Key: "role", Value: role},
		observability.Field{Key: "granted_by", Value: grantedBy.String()},
	)

	if !grantable(role) {
		return store.Profile{}, ErrRoleNotGrantable
	}

	current, err := p.GetProfile(ctx, profileID)
	if err != nil {
		return store.Profile{}, err
	}
	if current.Roles.Contains(role) {
		return current, nil
	}

	profile, err := p.store.AddProfileRole(ctx, profileID, role)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Profile{}, ErrProfileNotFound
		}
		p.logger.Error(ctx, "failed to add role", err)
		return store.Profile{}, err
	}

	p.logger.Info(ctx, "role granted")
	p.events.Publish(ctx, events.ProfileRoleAdded(profileID, role, grantedBy))
	return profile, nil
}

// RemoveRole revokes staff or admin. The customer role is permanent.
func (p *ProfileProcessor) RemoveRole(ctx context.Context, profileID uuid.UUID, role string, revokedBy uuid.UUID) (store.Profile, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "profile_id", Value: profileID.String()},
		observability.Field{Key: "role", Value: role},
		observability.Field{Key: "revoked_by", Value: revokedBy.String()},
	)

	if !grantable(role) {
		return store.Profile{}, ErrRoleNotGrantable
	}
	// Keeps at least the caller able to administer
	if role == store.RoleAdmin && profileID == revokedBy {
		return store.Profile{}, ErrSelfRevoke
	}

	profile, err := p.store.RemoveProfileRole(ctx, profileID, role)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Profile{}, ErrProfileNotFound
		}
		p.logger.Error(ctx, "failed to remove role", err)
		return store.Profile{}, err
	}

	p.logger.Info(ctx, "role revoked")
	return profile, nil
}

// ListProfiles returns a page of profiles, newest first
func (p *ProfileProcessor) ListProfiles(ctx context.Context, page, limit int) ([]store.Profile, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	profiles, err := p.store.ListProfiles(ctx, limit, (page-1)*limit)
	if err != nil {
		p.logger.Error(ctx, "failed to list profiles", err)
		return nil, err
	}
	if profiles == nil {
		profiles = []store.Profile{}
	}
	return profiles, nil
}
