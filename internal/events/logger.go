// Package events provides helper functions for logging Atlas events.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opencode-ai/atlas/internal/models"
)

// ThemeEntityID is the entity all theme.changed events are filed under.
const ThemeEntityID = "theme"

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// LogThemeChanged records a persisted theme change.
func LogThemeChanged(ctx context.Context, repo Repository, from, to models.ThemeID, source string) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if !to.Valid() {
		return fmt.Errorf("invalid theme %q", to)
	}

	payload, err := json.Marshal(models.ThemeChangedPayload{
		From:   from,
		To:     to,
		Source: source,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal theme payload: %w", err)
	}

	return repo.Create(ctx, &models.Event{
		Type:       models.EventTypeThemeChanged,
		EntityType: models.EntityTypePreference,
		EntityID:   ThemeEntityID,
		Payload:    payload,
	})
}

// LogLayoutSwitched records a navigation composition change for a UI session.
func LogLayoutSwitched(ctx context.Context, repo Repository, sessionID, from, to string, width int) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if sessionID == "" {
		return fmt.Errorf("session id is required")
	}

	payload, err := json.Marshal(models.LayoutSwitchedPayload{
		From:  from,
		To:    to,
		Width: width,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal layout payload: %w", err)
	}

	return repo.Create(ctx, &models.Event{
		Type:       models.EventTypeLayoutSwitched,
		EntityType: models.EntityTypeSession,
		EntityID:   sessionID,
		Payload:    payload,
	})
}

// LogError records a non-fatal failure, such as a theme choice that could not
// be saved.
func LogError(ctx context.Context, repo Repository, source string, cause error) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if cause == nil {
		return nil
	}

	payload, err := json.Marshal(models.ErrorPayload{
		Error:   cause.Error(),
		Context: source,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal error payload: %w", err)
	}

	return repo.Create(ctx, &models.Event{
		Type:       models.EventTypeError,
		EntityType: models.EntityTypeSystem,
		EntityID:   source,
		Payload:    payload,
	})
}

// DecodeThemeChanged extracts the payload of a theme.changed event.
func DecodeThemeChanged(event *models.Event) (models.ThemeChangedPayload, error) {
	var payload models.ThemeChangedPayload
	if event == nil || event.Type != models.EventTypeThemeChanged {
		return payload, fmt.Errorf("not a theme.changed event")
	}
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to decode theme payload: %w", err)
	}
	return payload, nil
}
