package handler

import (
	"context"
	"encoding/json"

	"loyalty-server/internal/settings"
	"loyalty-server/internal/store"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks_test.go -package=handler

// SettingsService is the settings store as seen by the HTTP layer
type SettingsService interface {
	Load(ctx context.Context) (settings.Settings, error)
	Stored(ctx context.Context) ([]store.Setting, error)
	Update(ctx context.Context, key string, value json.RawMessage, updatedBy uuid.UUID) (store.Setting, error)
	Reset(ctx context.Context, key string) error
}
