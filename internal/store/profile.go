package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const profileColumns = `id, email, full_name, phone, date_of_birth, referral_code, referred_by, roles, created_at, updated_at`

// CreateProfileParams represents parameters for creating a profile
type CreateProfileParams struct {
	ID           uuid.UUID
	Email        string
	FullName     *string
	Phone        *string
	DateOfBirth  *time.Time
	ReferralCode string
	ReferredBy   *string
	Roles        StringArray
}

const sqlCreateProfile = `
INSERT INTO profiles (id, email, full_name, phone, date_of_birth, referral_code, referred_by, roles)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + profileColumns

// CreateProfile inserts a profile. Returns ErrDuplicate if the id, email or
// referral code is already taken.
func (s *Store) CreateProfile(ctx context.Context, params CreateProfileParams) (Profile, error) {
	roles := params.Roles
	if len(roles) == 0 {
		roles = StringArray{RoleCustomer}
	}

	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlCreateProfile,
		params.ID,
		params.Email,
		params.FullName,
		params.Phone,
		params.DateOfBirth,
		params.ReferralCode,
		params.ReferredBy,
		roles)
	if err != nil {
		if isUniqueViolation(err) {
			return Profile{}, ErrDuplicate
		}
		return Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

const sqlGetProfileByID = `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

// GetProfileByID retrieves a profile by ID
func (s *Store) GetProfileByID(ctx context.Context, id uuid.UUID) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlGetProfileByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("failed to get profile by id: %w", err)
	}
	return profile, nil
}

const sqlGetProfileByEmail = `SELECT ` + profileColumns + ` FROM profiles WHERE lower(email) = lower($1)`

// GetProfileByEmail retrieves a profile by email, case-insensitively
func (s *Store) GetProfileByEmail(ctx context.Context, email string) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlGetProfileByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("failed to get profile by email: %w", err)
	}
	return profile, nil
}

const sqlGetProfileByReferralCode = `SELECT ` + profileColumns + ` FROM profiles WHERE referral_code = $1`

// GetProfileByReferralCode retrieves the profile owning a referral code
func (s *Store) GetProfileByReferralCode(ctx context.Context, code string) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlGetProfileByReferralCode, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("failed to get profile by referral code: %w", err)
	}
	return profile, nil
}

const sqlReferralCodeExists = `SELECT EXISTS(SELECT 1 FROM profiles WHERE referral_code = $1)`

// ReferralCodeExists reports whether a referral code is already assigned
func (s *Store) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	if err := s.db.GetContext(ctx, &exists, sqlReferralCodeExists, code); err != nil {
		return false, fmt.Errorf("failed to check referral code: %w", err)
	}
	return exists, nil
}

const sqlAddProfileRole = `
UPDATE profiles
SET roles = CASE WHEN $2 = ANY(roles) THEN roles ELSE array_append(roles, $2) END,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + profileColumns

// AddProfileRole grants a role. Adding a role the profile already has is a no-op.
func (s *Store) AddProfileRole(ctx context.Context, id uuid.UUID, role string) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlAddProfileRole, id, role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("failed to add profile role: %w", err)
	}
	return profile, nil
}

const sqlRemoveProfileRole = `
UPDATE profiles
SET roles = array_remove(roles, $2), updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + profileColumns

// RemoveProfileRole revokes a role
func (s *Store) RemoveProfileRole(ctx context.Context, id uuid.UUID, role string) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlRemoveProfileRole, id, role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("failed to remove profile role: %w", err)
	}
	return profile, nil
}

// UpdateProfileParams holds the caller-editable profile fields. Nil fields
// are left unchanged.
type UpdateProfileParams struct {
	FullName    *string
	Phone       *string
	DateOfBirth *time.Time
}

const sqlUpdateProfile = `
UPDATE profiles
SET full_name = COALESCE($2, full_name),
    phone = COALESCE($3, phone),
    date_of_birth = COALESCE($4, date_of_birth),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + profileColumns

// UpdateProfile updates contact details of a profile
func (s *Store) UpdateProfile(ctx context.Context, id uuid.UUID, params UpdateProfileParams) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlUpdateProfile, id, params.FullName, params.Phone, params.DateOfBirth)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

const sqlSetProfileReferredBy = `
UPDATE profiles
SET referred_by = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND referred_by IS NULL
RETURNING ` + profileColumns

// SetProfileReferredBy records the referral code a profile signed up with.
// It only succeeds once per profile.
func (s *Store) SetProfileReferredBy(ctx context.Context, id uuid.UUID, code string) (Profile, error) {
	var profile Profile
	err := s.db.GetContext(ctx, &profile, sqlSetProfileReferredBy, id, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, fmt.Errorf("failed to set profile referred_by: %w", err)
	}
	return profile, nil
}

const sqlListProfiles = `
SELECT ` + profileColumns + `
FROM profiles
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

// ListProfiles returns profiles newest first
func (s *Store) ListProfiles(ctx context.Context, limit, offset int) ([]Profile, error) {
	var profiles []Profile
	if err := s.db.SelectContext(ctx, &profiles, sqlListProfiles, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

const sqlListProfilesWithBirthday = `
SELECT ` + profileColumns + `
FROM profiles
WHERE date_of_birth IS NOT NULL
  AND EXTRACT(MONTH FROM date_of_birth) = $1
  AND EXTRACT(DAY FROM date_of_birth) = $2
ORDER BY id
`

// ListProfilesWithBirthday returns profiles born on the given month and day
func (s *Store) ListProfilesWithBirthday(ctx context.Context, month, day int) ([]Profile, error) {
	var profiles []Profile
	if err := s.db.SelectContext(ctx, &profiles, sqlListProfilesWithBirthday, month, day); err != nil {
		return nil, fmt.Errorf("failed to list profiles with birthday: %w", err)
	}
	return profiles, nil
}
