// Package theme owns the live theme choice: loading it at startup, exposing it
// to the UI and persisting changes.
package theme

import (
	"context"
	"errors"
	"fmt"

	"github.com/opencode-ai/atlas/internal/db"
	"github.com/opencode-ai/atlas/internal/models"
	"github.com/rs/zerolog"
)

// StorageKey is the settings key holding the last chosen theme.
const StorageKey = "@app_theme"

// ErrInvalidTheme is returned when saving an identifier outside the known set.
var ErrInvalidTheme = errors.New("invalid theme identifier")

// Store is a durable key/value store. Get returns db.ErrSettingNotFound for
// keys that were never written.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Persister loads and saves the theme choice.
type Persister interface {
	Load(ctx context.Context) (models.ThemeID, bool)
	Save(ctx context.Context, id models.ThemeID) error
}

// Gateway persists the theme choice in a Store.
type Gateway struct {
	store  Store
	logger zerolog.Logger
}

// NewGateway creates a Gateway backed by store.
func NewGateway(store Store, logger zerolog.Logger) *Gateway {
	return &Gateway{store: store, logger: logger}
}

// Load returns the persisted theme. Missing, unknown and unreadable values are
// all reported as absent.
func (g *Gateway) Load(ctx context.Context) (models.ThemeID, bool) {
	if g.store == nil {
		return "", false
	}

	value, err := g.store.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, db.ErrSettingNotFound) {
			g.logger.Warn().Err(err).Str("key", StorageKey).Msg("failed to read theme choice")
		}
		return "", false
	}

	// Stored values are written by Save and must match exactly.
	id := models.ThemeID(value)
	if !id.Valid() {
		g.logger.Warn().Str("key", StorageKey).Str("value", value).Msg("ignoring unknown persisted theme")
		return "", false
	}
	return id, true
}

// Save writes id under StorageKey.
func (g *Gateway) Save(ctx context.Context, id models.ThemeID) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, id)
	}
	if g.store == nil {
		return errors.New("theme store is not configured")
	}

	if err := g.store.Set(ctx, StorageKey, id.String()); err != nil {
		g.logger.Warn().Err(err).Str("theme", id.String()).Msg("failed to persist theme choice")
		return fmt.Errorf("failed to persist theme: %w", err)
	}
	return nil
}
