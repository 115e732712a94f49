package settings

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

const cacheKey = "loyalty:settings:v1"

// Service reads settings through an optional cache and applies admin writes.
type Service struct {
	store  SettingStore
	cache  Cache
	ttl    time.Duration
	logger *observability.Logger
}

// NewService creates a settings service. cache may be nil.
func NewService(settingStore SettingStore, cache Cache, ttl time.Duration, logger *observability.Logger) *Service {
	return &Service{
		store:  settingStore,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Load returns the effective settings. Missing or invalid entries fall back
// to their defaults; only a failure to read the store is an error.
func (s *Service) Load(ctx context.Context) (Settings, error) {
	entries, err := s.entries(ctx)
	if err != nil {
		return Settings{}, err
	}

	cfg, errs := FromEntries(entries)
	for _, e := range errs {
		var keyErr *KeyError
		if errors.As(e, &keyErr) {
			s.logger.WarnWithError(observability.WithFields(ctx, observability.Field{Key: "setting_key", Value: keyErr.Key}),
				"ignoring invalid stored setting, using default", keyErr.Err)
		}
	}
	return cfg, nil
}

func (s *Service) entries(ctx context.Context) (map[string][]byte, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey); err == nil {
			var cached map[string]json.RawMessage
			if err := json.Unmarshal(raw, &cached); err == nil {
				entries := make(map[string][]byte, len(cached))
				for k, v := range cached {
					entries[k] = v
				}
				return entries, nil
			}
		}
	}

	rows, err := s.store.ListSettings(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to list settings", err)
		return nil, err
	}

	entries := make(map[string][]byte, len(rows))
	cached := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		entries[row.Key] = row.Value
		cached[row.Key] = json.RawMessage(row.Value)
	}

	if s.cache != nil {
		if raw, err := json.Marshal(cached); err == nil {
			if err := s.cache.Set(ctx, cacheKey, raw, s.ttl); err != nil {
				s.logger.WarnWithError(ctx, "failed to cache settings", err)
			}
		}
	}
	return entries, nil
}

// Stored returns the raw stored rows for the admin surface
func (s *Service) Stored(ctx context.Context) ([]store.Setting, error) {
	rows, err := s.store.ListSettings(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to list settings", err)
		return nil, err
	}
	return rows, nil
}

// Update validates and stores a value, then drops the cached entries.
func (s *Service) Update(ctx context.Context, key string, value json.RawMessage, updatedBy uuid.UUID) (store.Setting, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "setting_key", Value: key},
		observability.Field{Key: "updated_by", Value: updatedBy.String()},
	)

	if err := Validate(key, value); err != nil {
		return store.Setting{}, err
	}

	row, err := s.store.UpsertSetting(ctx, key, store.RawJSON(value), &updatedBy)
	if err != nil {
		s.logger.Error(ctx, "failed to store setting", err)
		return store.Setting{}, err
	}

	s.invalidate(ctx)
	s.logger.Info(ctx, "setting updated")
	return row, nil
}

// Reset deletes a stored value so its default applies again.
func (s *Service) Reset(ctx context.Context, key string) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "setting_key", Value: key})

	if _, ok := sections[key]; !ok {
		return &KeyError{Key: key, Err: ErrUnknownKey}
	}
	if err := s.store.DeleteSetting(ctx, key); err != nil {
		s.logger.Error(ctx, "failed to delete setting", err)
		return err
	}

	s.invalidate(ctx)
	s.logger.Info(ctx, "setting reset to default")
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKey); err != nil {
		s.logger.WarnWithError(ctx, "failed to invalidate settings cache", err)
	}
}
