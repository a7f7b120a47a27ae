package theme

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/opencode-ai/atlas/internal/db"
	"github.com/opencode-ai/atlas/internal/events"
	"github.com/opencode-ai/atlas/internal/models"
	"github.com/opencode-ai/atlas/internal/tui/styles"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	values  map[string]string
	getErr  error
	setErr  error
	setCall int
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}}
}

func (s *fakeStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", s.getErr
	}
	value, ok := s.values[key]
	if !ok {
		return "", db.ErrSettingNotFound
	}
	return value, nil
}

func (s *fakeStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCall++
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

func (s *fakeStore) saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setCall
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []*models.Event
}

func (r *fakeRecorder) Create(ctx context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func setupStore(t *testing.T) (*db.DB, *db.SettingsRepository) {
	t.Helper()
	database, err := db.Open(context.Background(), db.Config{Path: filepath.Join(t.TempDir(), "atlas.db")})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSettingsRepository(database)
}

func newTestProvider(store Store, opts ...Option) *Provider {
	opts = append([]Option{WithLogger(zerolog.Nop())}, opts...)
	return NewProvider(NewGateway(store, zerolog.Nop()), opts...)
}

// run executes cmd synchronously and feeds the result back to the provider,
// the way the bubbletea runtime would.
func run(t *testing.T, p *Provider, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	p.Update(msg)
	return msg
}

func startProvider(t *testing.T, store Store, opts ...Option) *Provider {
	t.Helper()
	p := newTestProvider(store, opts...)
	run(t, p, p.Init())
	require.True(t, p.Ready())
	return p
}

func TestProviderStartsLoading(t *testing.T) {
	p := newTestProvider(newFakeStore())
	require.Equal(t, StateLoading, p.State())
	require.False(t, p.Ready())
	require.Equal(t, models.ThemeClassic, p.CurrentID())
}

func TestProviderInitIssuesSingleLoad(t *testing.T) {
	p := newTestProvider(newFakeStore())
	require.NotNil(t, p.Init())
	require.Nil(t, p.Init())
}

func TestProviderLoadsPersistedTheme(t *testing.T) {
	store := newFakeStore()
	store.values[StorageKey] = "forest"

	p := startProvider(t, store, WithSchemeHint(StaticHint(SchemeLight)))
	require.Equal(t, models.ThemeForest, p.CurrentID())
	require.Equal(t, styles.ForestTheme, p.Current())
	require.True(t, p.Value().IsDark)
}

func TestProviderFirstRunUsesSchemeHint(t *testing.T) {
	tests := []struct {
		hint string
		want models.ThemeID
	}{
		{SchemeLight, models.ThemeLight},
		{SchemeDark, models.ThemeDark},
		{"", models.ThemeClassic},
		{"auto", models.ThemeClassic},
		{"purple", models.ThemeClassic},
	}

	for _, tt := range tests {
		t.Run(tt.hint, func(t *testing.T) {
			_, store := setupStore(t)
			gw := NewGateway(store, zerolog.Nop())

			_, found := gw.Load(context.Background())
			require.False(t, found, "fresh store should have no theme")

			p := startProvider(t, store, WithSchemeHint(StaticHint(tt.hint)))
			require.Equal(t, tt.want, p.CurrentID())
		})
	}
}

func TestProviderUpdateNeverCallsHint(t *testing.T) {
	calls := 0
	hint := func() string {
		calls++
		return SchemeDark
	}
	p := newTestProvider(newFakeStore(), WithSchemeHint(hint))

	msg := p.Init()()
	require.Equal(t, 1, calls)
	loaded, ok := msg.(LoadedMsg)
	require.True(t, ok)
	require.Equal(t, SchemeDark, loaded.Hint)

	p.Update(loaded)
	require.Equal(t, 1, calls)
	require.Equal(t, models.ThemeDark, p.CurrentID())

	// A hand-built message without a hint selects the default, hint untouched.
	q := newTestProvider(newFakeStore(), WithSchemeHint(hint))
	_ = q.Init()
	q.Update(LoadedMsg{ProviderID: q.ID()})
	require.Equal(t, 1, calls)
	require.Equal(t, models.ThemeClassic, q.CurrentID())
}

func TestProviderHintSkippedWhenPersisted(t *testing.T) {
	calls := 0
	hint := func() string {
		calls++
		return SchemeLight
	}
	store := newFakeStore()
	store.values[StorageKey] = "ocean"

	p := startProvider(t, store, WithSchemeHint(hint))
	require.Zero(t, calls)
	require.Equal(t, models.ThemeOcean, p.CurrentID())
}

func TestProviderCorruptValueFallsBackToDefault(t *testing.T) {
	store := newFakeStore()
	store.values[StorageKey] = "sepia"

	p := startProvider(t, store)
	require.Equal(t, StateReady, p.State())
	require.Equal(t, models.ThemeClassic, p.CurrentID())
}

func TestProviderStoreErrorFallsBack(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("disk on fire")

	p := startProvider(t, store, WithSchemeHint(StaticHint(SchemeDark)))
	require.Equal(t, models.ThemeDark, p.CurrentID())
}

func TestProviderNilPersister(t *testing.T) {
	p := NewProvider(nil, WithLogger(zerolog.Nop()))
	run(t, p, p.Init())
	require.True(t, p.Ready())
	require.Nil(t, p.Set(models.ThemeDark))
	require.Equal(t, models.ThemeDark, p.CurrentID())
}

func TestProviderSetUpdatesSynchronously(t *testing.T) {
	store := newFakeStore()
	p := startProvider(t, store)

	cmd := p.Set(models.ThemeOcean)
	require.NotNil(t, cmd)

	// Visible before the save has run.
	value := p.Value()
	require.Equal(t, models.ThemeOcean, value.ID)
	require.Equal(t, styles.OceanTheme, value.Theme)
	require.True(t, value.IsDark)
	require.Equal(t, styles.OceanTheme, p.Styles().Theme)
	require.Zero(t, store.saves())

	msg := run(t, p, cmd)
	saved, ok := msg.(SavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.Err)
	require.Equal(t, "ocean", store.values[StorageKey])
}

func TestProviderSetIsIdempotent(t *testing.T) {
	store := newFakeStore()
	p := startProvider(t, store)

	run(t, p, p.Set(models.ThemeDark))
	before := p.Value()

	require.Nil(t, p.Set(models.ThemeDark))
	after := p.Value()

	require.Equal(t, before.ID, after.ID)
	require.Equal(t, before.Theme, after.Theme)
	require.Equal(t, before.IsDark, after.IsDark)
	require.Equal(t, 1, store.saves())
}

func TestProviderSetUnknownSelectsDefault(t *testing.T) {
	store := newFakeStore()
	store.values[StorageKey] = "ocean"
	p := startProvider(t, store)

	run(t, p, p.Set("sepia"))
	require.Equal(t, models.ThemeClassic, p.CurrentID())
	require.Equal(t, "classic", store.values[StorageKey])
}

func TestProviderLastSetWins(t *testing.T) {
	store := newFakeStore()
	p := startProvider(t, store)

	first := p.Set(models.ThemeDark)
	second := p.Set(models.ThemeForest)
	require.Equal(t, models.ThemeForest, p.CurrentID())

	// Saves complete out of order; storage holds whichever finished last.
	run(t, p, second)
	run(t, p, first)
	require.Equal(t, models.ThemeForest, p.CurrentID())
	require.Equal(t, 2, store.saves())
}

func TestProviderSaveFailureKeepsChoice(t *testing.T) {
	store := newFakeStore()
	p := startProvider(t, store)
	store.setErr = errors.New("read-only filesystem")

	msg := run(t, p, p.Set(models.ThemeLight))
	saved, ok := msg.(SavedMsg)
	require.True(t, ok)
	require.Error(t, saved.Err)
	require.Equal(t, models.ThemeLight, p.CurrentID())
	require.True(t, p.Ready())
}

func TestProviderRecordsSaveFailure(t *testing.T) {
	store := newFakeStore()
	recorder := &fakeRecorder{}
	p := startProvider(t, store, WithRecorder(recorder))
	store.setErr = errors.New("read-only filesystem")

	run(t, p, p.Set(models.ThemeOcean))
	require.Len(t, recorder.events, 1)
	require.Equal(t, models.EventTypeError, recorder.events[0].Type)
	require.Equal(t, "theme.save", recorder.events[0].EntityID)
}

func TestProviderSetWhileLoadingWins(t *testing.T) {
	store := newFakeStore()
	store.values[StorageKey] = "ocean"
	p := newTestProvider(store)

	load := p.Init()
	run(t, p, p.Set(models.ThemeForest))
	run(t, p, load)

	require.True(t, p.Ready())
	require.Equal(t, models.ThemeForest, p.CurrentID())
}

func TestProviderSetDefaultWhileLoadingPersists(t *testing.T) {
	store := newFakeStore()
	store.values[StorageKey] = "ocean"
	p := newTestProvider(store)

	load := p.Init()
	require.NotNil(t, p.Set(models.ThemeClassic))
	require.Nil(t, p.Set(models.ThemeClassic))
	run(t, p, load)
	require.Equal(t, models.ThemeClassic, p.CurrentID())
}

func TestProviderIgnoresLoadAfterClose(t *testing.T) {
	store := newFakeStore()
	store.values[StorageKey] = "dark"
	p := newTestProvider(store)

	load := p.Init()
	p.Close()
	run(t, p, load)

	require.True(t, p.Closed())
	require.Equal(t, StateLoading, p.State())
	require.Equal(t, models.ThemeClassic, p.CurrentID())
	require.Nil(t, p.Set(models.ThemeOcean))
	require.Nil(t, p.Init())
}

func TestProviderIgnoresForeignMessages(t *testing.T) {
	store := newFakeStore()
	store.values[StorageKey] = "dark"
	a := newTestProvider(store)
	b := newTestProvider(store)

	msg := a.Init()()
	b.Update(msg)
	require.False(t, b.Ready())

	a.Update(msg)
	require.True(t, a.Ready())

	// A second load result for the same provider is ignored.
	a.Update(LoadedMsg{ProviderID: a.ID(), ID: models.ThemeOcean, Found: true})
	require.Equal(t, models.ThemeDark, a.CurrentID())
}

func TestProviderRoundTripAcrossRestart(t *testing.T) {
	for _, id := range models.AllThemeIDs() {
		t.Run(string(id), func(t *testing.T) {
			_, store := setupStore(t)
			require.NoError(t, NewGateway(store, zerolog.Nop()).Save(context.Background(), id))

			restarted := startProvider(t, store, WithSchemeHint(StaticHint(SchemeLight)))
			require.Equal(t, id, restarted.CurrentID())
		})
	}
}

func TestProviderSetPersistsAcrossRestart(t *testing.T) {
	_, store := setupStore(t)

	first := startProvider(t, store)
	run(t, first, first.Set(models.ThemeOcean))
	first.Close()

	second := startProvider(t, store)
	require.Equal(t, models.ThemeOcean, second.CurrentID())
}

func TestProviderRecordsChanges(t *testing.T) {
	recorder := &fakeRecorder{}
	p := startProvider(t, newFakeStore(), WithRecorder(recorder))

	run(t, p, p.Set(models.ThemeDark))
	run(t, p, p.Cycle())

	require.Len(t, recorder.events, 2)
	payload, err := events.DecodeThemeChanged(recorder.events[1])
	require.NoError(t, err)
	require.Equal(t, models.ThemeDark, payload.From)
	require.Equal(t, models.ThemeLight, payload.To)
}

func TestProviderValueSetterRoutesThroughProvider(t *testing.T) {
	p := startProvider(t, newFakeStore())
	value := p.Value()

	run(t, p, value.Set(models.ThemeForest))
	require.Equal(t, models.ThemeForest, p.CurrentID())
}

func TestStateString(t *testing.T) {
	require.Equal(t, "loading", StateLoading.String())
	require.Equal(t, "ready", StateReady.String())
	require.Equal(t, "unknown", State(9).String())
}
