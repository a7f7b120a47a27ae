package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencode-ai/atlas/internal/db"
	"github.com/opencode-ai/atlas/internal/models"
	"github.com/opencode-ai/atlas/internal/theme"
	"github.com/rs/zerolog"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(context.Background(), db.Config{Path: filepath.Join(t.TempDir(), "atlas.db")})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func withJSONOutput(t *testing.T, enabled bool) {
	t.Helper()
	original := jsonOutput
	jsonOutput = enabled
	t.Cleanup(func() { jsonOutput = original })
}

func TestWriteThemeList(t *testing.T) {
	withJSONOutput(t, false)

	var out bytes.Buffer
	if err := writeThemeList(&out); err != nil {
		t.Fatalf("writeThemeList failed: %v", err)
	}

	text := out.String()
	for _, id := range models.AllThemeIDs() {
		if !strings.Contains(text, id.String()) {
			t.Errorf("expected %q in list output:\n%s", id, text)
		}
	}
	if !strings.Contains(text, "classic (default)") {
		t.Errorf("expected default marker, got:\n%s", text)
	}
}

func TestWriteThemeListJSON(t *testing.T) {
	withJSONOutput(t, true)

	var out bytes.Buffer
	if err := writeThemeList(&out); err != nil {
		t.Fatalf("writeThemeList failed: %v", err)
	}

	var infos []themeInfo
	if err := json.Unmarshal(out.Bytes(), &infos); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(infos) != len(models.AllThemeIDs()) {
		t.Fatalf("expected %d themes, got %d", len(models.AllThemeIDs()), len(infos))
	}
	if infos[0].ID != models.ThemeClassic || infos[0].Dark {
		t.Errorf("unexpected first theme: %+v", infos[0])
	}
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	withJSONOutput(t, false)
	database := setupTestDB(t)
	settings := db.NewSettingsRepository(database)
	gateway := theme.NewGateway(settings, zerolog.Nop())

	var out bytes.Buffer
	err := setTheme(context.Background(), &out, gateway, nil, "sepia")

	var preflight *PreflightError
	if !errors.As(err, &preflight) {
		t.Fatalf("expected PreflightError, got %v", err)
	}
	if !strings.Contains(preflight.Hint, `"ocean"`) {
		t.Errorf("expected hint to list themes, got %q", preflight.Hint)
	}
	if _, err := settings.Get(context.Background(), theme.StorageKey); !errors.Is(err, db.ErrSettingNotFound) {
		t.Errorf("expected nothing persisted, got %v", err)
	}
}

func TestSetThemePersistsAndRecords(t *testing.T) {
	withJSONOutput(t, false)
	database := setupTestDB(t)
	gateway := theme.NewGateway(db.NewSettingsRepository(database), zerolog.Nop())
	eventRepo := db.NewEventRepository(database)
	ctx := context.Background()

	var out bytes.Buffer
	if err := setTheme(ctx, &out, gateway, eventRepo, " Forest "); err != nil {
		t.Fatalf("setTheme failed: %v", err)
	}
	if got := out.String(); got != "Theme set to forest\n" {
		t.Errorf("unexpected output %q", got)
	}

	id, found := gateway.Load(ctx)
	if !found || id != models.ThemeForest {
		t.Fatalf("expected forest persisted, got %q (found=%v)", id, found)
	}

	// Setting the same theme again does not add history.
	out.Reset()
	if err := setTheme(ctx, &out, gateway, eventRepo, "forest"); err != nil {
		t.Fatalf("setTheme failed: %v", err)
	}

	out.Reset()
	if err := writeThemeHistory(ctx, &out, eventRepo, 10); err != nil {
		t.Fatalf("writeThemeHistory failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one change, got:\n%s", out.String())
	}
	if !strings.Contains(lines[1], "forest") || !strings.Contains(lines[1], "cli") {
		t.Errorf("unexpected history row %q", lines[1])
	}
}

func TestWriteThemeHistoryEmpty(t *testing.T) {
	withJSONOutput(t, false)
	database := setupTestDB(t)

	var out bytes.Buffer
	if err := writeThemeHistory(context.Background(), &out, db.NewEventRepository(database), 10); err != nil {
		t.Fatalf("writeThemeHistory failed: %v", err)
	}
	if !strings.Contains(out.String(), "No theme changes recorded") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestWriteThemeGet(t *testing.T) {
	withJSONOutput(t, true)
	database := setupTestDB(t)
	gateway := theme.NewGateway(db.NewSettingsRepository(database), zerolog.Nop())
	ctx := context.Background()

	decode := func(out *bytes.Buffer) themeStatus {
		t.Helper()
		var status themeStatus
		if err := json.Unmarshal(out.Bytes(), &status); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		return status
	}

	var out bytes.Buffer
	if err := writeThemeGet(ctx, &out, gateway, theme.StaticHint(theme.SchemeDark)); err != nil {
		t.Fatalf("writeThemeGet failed: %v", err)
	}
	status := decode(&out)
	if status.ID != models.ThemeDark || status.Persisted {
		t.Errorf("expected first-run dark from hint, got %+v", status)
	}

	if err := gateway.Save(ctx, models.ThemeOcean); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	out.Reset()
	if err := writeThemeGet(ctx, &out, gateway, theme.StaticHint(theme.SchemeDark)); err != nil {
		t.Fatalf("writeThemeGet failed: %v", err)
	}
	status = decode(&out)
	if status.ID != models.ThemeOcean || !status.Persisted {
		t.Errorf("expected persisted ocean, got %+v", status)
	}
}

func TestResetTheme(t *testing.T) {
	withJSONOutput(t, false)
	database := setupTestDB(t)
	settings := db.NewSettingsRepository(database)
	gateway := theme.NewGateway(settings, zerolog.Nop())
	ctx := context.Background()

	var out bytes.Buffer
	if err := resetTheme(ctx, &out, settings); err != nil {
		t.Fatalf("resetTheme failed: %v", err)
	}
	if out.String() != "No saved theme\n" {
		t.Errorf("unexpected output %q", out.String())
	}

	if err := gateway.Save(ctx, models.ThemeDark); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	out.Reset()
	if err := resetTheme(ctx, &out, settings); err != nil {
		t.Fatalf("resetTheme failed: %v", err)
	}
	if out.String() != "Saved theme cleared\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	if _, found := gateway.Load(ctx); found {
		t.Error("expected theme to be cleared")
	}
}
