package theme

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/opencode-ai/atlas/internal/events"
	"github.com/opencode-ai/atlas/internal/logging"
	"github.com/opencode-ai/atlas/internal/models"
	"github.com/opencode-ai/atlas/internal/tui/styles"
	"github.com/rs/zerolog"
)

// State is the provider lifecycle state.
type State int

const (
	// StateLoading waits for the persisted choice. Nothing should be rendered.
	StateLoading State = iota
	// StateReady exposes the current theme.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// DefaultTimeout bounds a single load or save.
const DefaultTimeout = 2 * time.Second

// LoadedMsg carries the result of the startup load. Hint is the system color
// scheme, read inside the load command when nothing was persisted.
type LoadedMsg struct {
	ProviderID string
	ID         models.ThemeID
	Found      bool
	Hint       string
}

// SavedMsg reports the outcome of persisting a choice.
type SavedMsg struct {
	ProviderID string
	ID         models.ThemeID
	Err        error
}

// Value is the read-only view of the current theme handed to the UI.
type Value struct {
	Theme  styles.Theme
	ID     models.ThemeID
	IsDark bool

	// Set changes the theme; see Provider.Set.
	Set func(models.ThemeID) tea.Cmd
}

// Provider owns the current theme. All methods must be called from the
// bubbletea Update loop; loads and saves run as commands and report back
// through LoadedMsg and SavedMsg.
type Provider struct {
	id        string
	persister Persister
	hint      HintFunc
	recorder  events.Repository
	logger    zerolog.Logger
	timeout   time.Duration

	state       State
	current     models.ThemeID
	styles      styles.Styles
	loadIssued  bool
	userChanged bool
	closed      bool
}

// Option configures a Provider.
type Option func(*Provider)

// WithSchemeHint sets the system color scheme hint consulted on first run.
// It runs inside the load command, never on the Update loop.
func WithSchemeHint(hint HintFunc) Option {
	return func(p *Provider) {
		if hint != nil {
			p.hint = hint
		}
	}
}

// WithRecorder logs persisted changes to the event log.
func WithRecorder(repo events.Repository) Option {
	return func(p *Provider) {
		p.recorder = repo
	}
}

// WithLogger overrides the component logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// WithTimeout bounds each load and save.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Provider) {
		if timeout > 0 {
			p.timeout = timeout
		}
	}
}

// NewProvider creates a Provider in StateLoading showing the default theme.
func NewProvider(persister Persister, opts ...Option) *Provider {
	p := &Provider{
		id:        uuid.New().String(),
		persister: persister,
		hint:      StaticHint(""),
		logger:    logging.Component("theme"),
		timeout:   DefaultTimeout,
		state:     StateLoading,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.apply(models.DefaultThemeID)
	return p
}

// ID identifies this provider instance in its messages.
func (p *Provider) ID() string {
	return p.id
}

// State returns the lifecycle state.
func (p *Provider) State() State {
	return p.state
}

// Ready reports whether the startup load has completed.
func (p *Provider) Ready() bool {
	return p.state == StateReady
}

// Current returns the active theme definition.
func (p *Provider) Current() styles.Theme {
	return p.styles.Theme
}

// CurrentID returns the active theme identifier.
func (p *Provider) CurrentID() models.ThemeID {
	return p.current
}

// Styles returns lipgloss styles for the active theme.
func (p *Provider) Styles() styles.Styles {
	return p.styles
}

// Value returns a snapshot of the current theme plus the setter.
func (p *Provider) Value() Value {
	return Value{
		Theme:  p.styles.Theme,
		ID:     p.current,
		IsDark: p.styles.Theme.IsDark,
		Set:    p.Set,
	}
}

// Init issues the one-shot startup load. Later calls return nil.
func (p *Provider) Init() tea.Cmd {
	if p.loadIssued || p.closed {
		return nil
	}
	p.loadIssued = true

	providerID := p.id
	persister := p.persister
	hint := p.hint
	timeout := p.timeout

	return func() tea.Msg {
		msg := LoadedMsg{ProviderID: providerID}
		if persister != nil {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			msg.ID, msg.Found = persister.Load(ctx)
		}
		if !msg.Found && hint != nil {
			msg.Hint = hint()
		}
		return msg
	}
}

// Update applies provider messages. Messages addressed to another provider,
// or arriving after Close, are dropped.
func (p *Provider) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case LoadedMsg:
		p.handleLoaded(msg)
	case SavedMsg:
		if msg.ProviderID != p.id || p.closed {
			return nil
		}
		if msg.Err == nil {
			p.logger.Debug().Str("theme", msg.ID.String()).Msg("theme choice saved")
		}
	}
	return nil
}

func (p *Provider) handleLoaded(msg LoadedMsg) {
	if msg.ProviderID != p.id || p.closed {
		p.logger.Debug().Str("provider", msg.ProviderID).Msg("discarding stale theme load")
		return
	}
	if p.state == StateReady {
		return
	}

	// A choice made while loading wins over whatever was on disk.
	if !p.userChanged {
		p.apply(StartupTheme(msg.ID, msg.Found, msg.Hint))
	}
	p.state = StateReady

	p.logger.Debug().
		Str("theme", p.current.String()).
		Bool("persisted", msg.Found).
		Msg("theme ready")
}

// Set switches to id immediately and returns a command that persists it.
// Unknown identifiers select the default theme. Re-selecting the current
// theme is a no-op and returns nil.
func (p *Provider) Set(id models.ThemeID) tea.Cmd {
	if p.closed {
		return nil
	}

	next := models.NormalizeThemeID(string(id))
	if next != id {
		p.logger.Debug().Str("requested", string(id)).Str("theme", next.String()).Msg("unknown theme requested")
	}

	loading := p.state == StateLoading
	if next == p.current && (!loading || p.userChanged) {
		return nil
	}
	if loading {
		p.userChanged = true
	}

	previous := p.current
	p.apply(next)
	return p.saveCmd(previous, next)
}

// Cycle switches to the next theme in display order.
func (p *Provider) Cycle() tea.Cmd {
	return p.Set(models.NextThemeID(p.current))
}

// Close tears the provider down. Pending load results are discarded and Set
// becomes a no-op.
func (p *Provider) Close() {
	p.closed = true
}

// Closed reports whether Close was called.
func (p *Provider) Closed() bool {
	return p.closed
}

func (p *Provider) apply(id models.ThemeID) {
	p.current = id
	p.styles = styles.BuildStyles(styles.ResolveID(id))
}

func (p *Provider) saveCmd(previous, next models.ThemeID) tea.Cmd {
	if p.persister == nil {
		return nil
	}

	providerID := p.id
	persister := p.persister
	recorder := p.recorder
	logger := p.logger
	timeout := p.timeout

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := persister.Save(ctx, next); err != nil {
			logger.Warn().Err(err).Str("theme", next.String()).Msg("theme change kept for this session only")
			if recorder != nil {
				if logErr := events.LogError(ctx, recorder, "theme.save", err); logErr != nil {
					logger.Debug().Err(logErr).Msg("failed to record save failure")
				}
			}
			return SavedMsg{ProviderID: providerID, ID: next, Err: err}
		}

		if recorder != nil {
			if err := events.LogThemeChanged(ctx, recorder, previous, next, "ui"); err != nil {
				logger.Warn().Err(err).Msg("failed to record theme change")
			}
		}
		return SavedMsg{ProviderID: providerID, ID: next}
	}
}
